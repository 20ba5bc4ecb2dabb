// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mergerule

import (
	"github.com/gx-org/sptensor/build/fmterr"
	"github.com/gx-org/sptensor/build/ir"
	"github.com/gx-org/sptensor/lower/schedule"
)

type builder struct {
	v     *ir.IndexVar
	sched *schedule.Schedule
}

// Build returns the merge rule of an expression for a loop variable.
//
// The rule is undefined (nil) if the expression does not depend on v.
// Sums and differences merge their operands with an Or,
// products and quotients with an And. An operand that does not depend
// on v does not constrain the iteration: the rule of the other operand
// is returned unchanged.
//
// Build returns an error if the expression contains a node without
// merge semantics (unary operators, literals, parentheses, other binary
// operators) or if the schedule is inconsistent with the expression.
func Build(expr ir.Expr, v *ir.IndexVar, sched *schedule.Schedule) (Rule, error) {
	b := &builder{v: v, sched: sched}
	return b.build(expr)
}

func (b *builder) build(expr ir.Expr) (Rule, error) {
	switch exprT := expr.(type) {
	case *ir.Access:
		return b.buildAccess(exprT)
	case *ir.BinaryExpr:
		switch {
		case exprT.IsAdditive():
			return b.buildBinary(exprT, func(x, y Rule) Rule { return NewOr(x, y, exprT) })
		case exprT.IsMultiplicative():
			return b.buildBinary(exprT, func(x, y Rule) Rule { return NewAnd(x, y, exprT) })
		}
		return nil, b.unsupported(expr, "binary operator "+exprT.Op.String())
	case *ir.UnaryExpr:
		return nil, b.unsupported(expr, "unary operator "+exprT.Op.String())
	case *ir.NumberLit:
		return nil, b.unsupported(expr, "number literal")
	case *ir.ParenExpr:
		return nil, b.unsupported(expr, "parenthesized expression")
	}
	return nil, fmterr.Internalf("cannot compute the merge rule of %T: expression type not supported", expr)
}

func (b *builder) unsupported(expr ir.Expr, what string) error {
	return fmterr.Errorf(b.sched.FSet(), expr.Source(), "cannot compute how to iterate over %s for index variable %s: %s not supported", expr.String(), b.v.Name, what)
}

func (b *builder) buildAccess(access *ir.Access) (Rule, error) {
	if !access.Indexes(b.v) {
		return nil, nil
	}
	path, err := b.sched.Path(access)
	if err != nil {
		return nil, err
	}
	pos, ok := path.Locate(b.v)
	if !ok {
		return nil, fmterr.Internal(fmterr.Errorf(b.sched.FSet(), access.Source(), "index variable %s of %s not found in tensor path %s", b.v.Name, access.String(), path.String()))
	}
	return NewStep(path.Step(pos), access), nil
}

func (b *builder) buildBinary(expr *ir.BinaryExpr, merge func(x, y Rule) Rule) (Rule, error) {
	x, err := b.build(expr.X)
	if err != nil {
		return nil, err
	}
	y, err := b.build(expr.Y)
	if err != nil {
		return nil, err
	}
	switch {
	case x != nil && y != nil:
		return merge(x, y), nil
	case x != nil:
		return x, nil
	default:
		// Undefined if both operands are undefined.
		return y, nil
	}
}
