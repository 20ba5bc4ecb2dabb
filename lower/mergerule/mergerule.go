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

// Package mergerule computes how the storage levels of tensors indexed by
// the same loop variable are co-iterated.
//
// A merge rule is a boolean-algebra tree over tensor path steps:
//   - a Step iterates over one level of one tensor,
//   - an And intersects the coordinates of its operands
//     (a zero in either operand of a product yields a zero),
//   - an Or takes the union of the coordinates of its operands
//     (a nonzero in either operand of a sum yields a nonzero).
//
// The undefined merge rule is represented by a nil Rule. It is the rule of
// an expression that does not vary with the loop variable.
//
// Rules are immutable once built. Sub-rules are shared between rules,
// not copied, and rules are compared by identity when stored in maps.
package mergerule

import (
	"github.com/gx-org/sptensor/build/ir"
	"github.com/gx-org/sptensor/lower/schedule"
)

type (
	// Rule is a merge rule node: one of *Step, *And or *Or.
	Rule interface {
		// rule marks a structure as a merge rule.
		// It prevents external implementations of the interface.
		rule()

		// Source returns the sub-expression from which the rule has been derived.
		Source() ir.Expr

		String() string
	}

	// Step iterates over one level of a tensor.
	Step struct {
		PathStep schedule.TensorPathStep
		Src      ir.Expr
	}

	// And merges its operands by intersecting their coordinates.
	And struct {
		X, Y Rule
		Src  ir.Expr
	}

	// Or merges its operands by taking the union of their coordinates.
	Or struct {
		X, Y Rule
		Src  ir.Expr
	}
)

var (
	_ Rule = (*Step)(nil)
	_ Rule = (*And)(nil)
	_ Rule = (*Or)(nil)
)

// NewStep returns a new rule iterating over a tensor path step.
func NewStep(step schedule.TensorPathStep, src ir.Expr) *Step {
	return &Step{PathStep: step, Src: src}
}

// NewAnd returns a new intersection of two rules.
func NewAnd(x, y Rule, src ir.Expr) *And {
	return &And{X: x, Y: y, Src: src}
}

// NewOr returns a new union of two rules.
func NewOr(x, y Rule, src ir.Expr) *Or {
	return &Or{X: x, Y: y, Src: src}
}

// Defined returns true if r is a merge rule, false if r is the undefined rule.
func Defined(r Rule) bool {
	return r != nil
}

func (*Step) rule() {}

// Source returns the tensor access from which the step has been derived.
func (r *Step) Source() ir.Expr { return r.Src }

func (*And) rule() {}

// Source returns the multiplicative expression from which the rule has been derived.
func (r *And) Source() ir.Expr { return r.Src }

func (*Or) rule() {}

// Source returns the additive expression from which the rule has been derived.
func (r *Or) Source() ir.Expr { return r.Src }

// Equal returns true if two rules have the same structure,
// the same steps and have been derived from the same sub-expressions.
// Contrary to ==, two rules built separately can be equal.
func Equal(a, b Rule) bool {
	switch aT := a.(type) {
	case nil:
		return b == nil
	case *Step:
		bT, ok := b.(*Step)
		return ok && aT.PathStep == bT.PathStep && aT.Src == bT.Src
	case *And:
		bT, ok := b.(*And)
		return ok && aT.Src == bT.Src && Equal(aT.X, bT.X) && Equal(aT.Y, bT.Y)
	case *Or:
		bT, ok := b.(*Or)
		return ok && aT.Src == bT.Src && Equal(aT.X, bT.X) && Equal(aT.Y, bT.Y)
	}
	return false
}
