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

// Package builder builds the intermediate representation (IR) of an index expression.
//
// Index expressions are written in Go syntax where a tensor access is a call
// of the tensor with its index variables, for example:
//
//	A(i, j) * x(j) + b(i)
//
// The source is first parsed into a [go/ast] tree. The builder then resolves
// tensor names against the tensors declared in the builder and interns index
// variables by name. Errors are accumulated to report all of them to the user.
package builder

import (
	"go/ast"
	"go/parser"
	"go/token"
	"iter"

	"github.com/gx-org/sptensor/base/ordered"
	"github.com/gx-org/sptensor/build/fmterr"
	"github.com/gx-org/sptensor/build/ir"
	"github.com/pkg/errors"
)

// Builder represents a build session from text to
// the intermediate representation.
type Builder struct {
	tensors *ordered.Map[string, *ir.Tensor]
	vars    *ordered.Map[string, *ir.IndexVar]
}

// New returns a new build session.
func New() *Builder {
	return &Builder{
		tensors: ordered.NewMap[string, *ir.Tensor](),
		vars:    ordered.NewMap[string, *ir.IndexVar](),
	}
}

// Declare a tensor that can be used in expressions.
func (b *Builder) Declare(tensor *ir.Tensor) error {
	if _, exists := b.tensors.Load(tensor.Name); exists {
		return errors.Errorf("tensor %s declared more than once", tensor.Name)
	}
	if tensor.Format.Order() != tensor.Order() {
		return errors.Errorf("tensor %s has %d axes but its format %s has %d levels", tensor.Name, tensor.Order(), tensor.Format, tensor.Format.Order())
	}
	b.tensors.Store(tensor.Name, tensor)
	return nil
}

// Tensor returns a declared tensor given its name.
func (b *Builder) Tensor(name string) (*ir.Tensor, bool) {
	return b.tensors.Load(name)
}

// Tensors returns all the declared tensors in declaration order.
func (b *Builder) Tensors() iter.Seq[*ir.Tensor] {
	return b.tensors.Values()
}

// Var returns an index variable used by one of the parsed expressions.
func (b *Builder) Var(name string) (*ir.IndexVar, bool) {
	return b.vars.Load(name)
}

func (b *Builder) indexVar(name string) *ir.IndexVar {
	v, _ := b.vars.LoadOrStore(name, func() *ir.IndexVar {
		return ir.NewIndexVar(name)
	})
	return v
}

// filename is the name given to expressions in the file set.
const filename = "expr"

// Parse an index expression.
// The returned file set maps positions in the IR to the source.
func (b *Builder) Parse(src string) (ir.Expr, *token.FileSet, error) {
	fset := token.NewFileSet()
	astExpr, err := parser.ParseExprFrom(fset, filename, src, parser.SkipObjectResolution)
	if err != nil {
		return nil, fset, err
	}
	var errs fmterr.Errors
	scope := &parseScope{bld: b, errs: errs.NewAppender(fset)}
	expr, ok := processExpr(scope, astExpr)
	if !ok {
		if errs.Empty() {
			errs.Append(fmterr.Internalf("cannot build %q but no error has been reported", src))
		}
		return nil, fset, errs.ToError()
	}
	return expr, fset, nil
}

type parseScope struct {
	bld  *Builder
	errs *fmterr.Appender
}

func (s *parseScope) err() *fmterr.Appender {
	return s.errs
}

func processExpr(scope *parseScope, expr ast.Expr) (ir.Expr, bool) {
	switch exprT := expr.(type) {
	case *ast.CallExpr:
		return processAccess(scope, exprT)
	case *ast.Ident:
		return processScalarAccess(scope, exprT)
	case *ast.BinaryExpr:
		return processBinaryExpr(scope, exprT)
	case *ast.UnaryExpr:
		return processUnaryExpr(scope, exprT)
	case *ast.BasicLit:
		return processBasicLit(scope, exprT)
	case *ast.ParenExpr:
		// Parentheses only group operands: the IR tree keeps the grouping.
		return processExpr(scope, exprT.X)
	default:
		return nil, scope.err().Appendf(expr, "%T not supported in index expressions", expr)
	}
}
