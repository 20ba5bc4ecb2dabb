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

// Package schedule computes the iteration schedule of an index expression.
//
// Each tensor access is lowered into a tensor path: the ordered sequence of
// storage levels visited when iterating over the access, aligned with the
// index variables of the access. The kth step of a path iterates over the
// kth level of the tensor format.
package schedule

import (
	"fmt"
	"go/token"
	"iter"
	"slices"

	"github.com/gx-org/sptensor/base/ordered"
	"github.com/gx-org/sptensor/base/stringseq"
	"github.com/gx-org/sptensor/build/fmterr"
	"github.com/gx-org/sptensor/build/format"
	"github.com/gx-org/sptensor/build/ir"
)

// TensorPath is the ordered sequence of steps of one tensor access.
type TensorPath struct {
	access *ir.Access
}

// Access returns the tensor access from which the path has been built.
func (p *TensorPath) Access() *ir.Access {
	return p.access
}

// Tensor returns the tensor iterated over by the path.
func (p *TensorPath) Tensor() *ir.Tensor {
	return p.access.Tensor
}

// Vars returns the index variables keying the steps of the path.
func (p *TensorPath) Vars() []*ir.IndexVar {
	return p.access.Vars
}

// Len returns the number of steps in the path.
func (p *TensorPath) Len() int {
	return len(p.access.Vars)
}

// Locate returns the position of an index variable in the path.
func (p *TensorPath) Locate(v *ir.IndexVar) (int, bool) {
	i := slices.Index(p.access.Vars, v)
	return i, i >= 0
}

// Step returns the step of the path at a given position.
func (p *TensorPath) Step(i int) TensorPathStep {
	return TensorPathStep{Path: p, Index: i}
}

// Steps returns all the steps of the path.
func (p *TensorPath) Steps() iter.Seq[TensorPathStep] {
	return func(yield func(TensorPathStep) bool) {
		for i := range p.Len() {
			if !yield(p.Step(i)) {
				return
			}
		}
	}
}

// String representation of the path, for example "A@0 -> A@1".
func (p *TensorPath) String() string {
	return stringseq.JoinStringer(p.Steps(), " -> ")
}

// TensorPathStep is one storage level of one tensor path.
// Steps are values and can be compared with ==.
type TensorPathStep struct {
	Path  *TensorPath
	Index int
}

// Var returns the index variable of the step.
func (s TensorPathStep) Var() *ir.IndexVar {
	return s.Path.access.Vars[s.Index]
}

// Level returns the level of the tensor format iterated over by the step.
func (s TensorPathStep) Level() (format.Level, error) {
	tensor := s.Path.Tensor()
	level, ok := tensor.Format.Level(s.Index)
	if !ok {
		return level, fmterr.Internalf("step %s has no level: format %s of tensor %s has %d levels", s, tensor.Format, tensor.Name, tensor.Format.Order())
	}
	return level, nil
}

// String representation of the step, for example "A@0".
func (s TensorPathStep) String() string {
	return fmt.Sprintf("%s@%d", s.Path.Tensor().Name, s.Index)
}

// Schedule is the iteration schedule of an index expression.
type Schedule struct {
	fset  *token.FileSet
	expr  ir.Expr
	paths *ordered.Map[*ir.Access, *TensorPath]
	vars  []*ir.IndexVar
}

// New returns the iteration schedule of an expression.
// fset is the file set in which the expression has been parsed.
// It is used to report positions in errors and may be nil
// if the expression has been built programmatically.
// New returns an error if an access is inconsistent with the format of its tensor.
func New(fset *token.FileSet, expr ir.Expr) (*Schedule, error) {
	s := &Schedule{
		fset:  fset,
		expr:  expr,
		paths: ordered.NewMap[*ir.Access, *TensorPath](),
		vars:  slices.Collect(ir.IndexVars(expr)),
	}
	for _, access := range ir.Accesses(expr) {
		if err := s.checkAccess(access); err != nil {
			return nil, err
		}
		s.paths.Store(access, &TensorPath{access: access})
	}
	return s, nil
}

func (s *Schedule) checkAccess(access *ir.Access) error {
	tensor := access.Tensor
	if len(access.Vars) != tensor.Format.Order() {
		return fmterr.Internal(fmterr.Errorf(s.fset, access.Source(), "access %s uses %d index variables but the format %s of %s has %d levels", access, len(access.Vars), tensor.Format, tensor.Name, tensor.Format.Order()))
	}
	for i, v := range access.Vars {
		if slices.Contains(access.Vars[:i], v) {
			return fmterr.Internal(fmterr.Errorf(s.fset, access.Source(), "index variable %s used more than once in %s", v, access))
		}
	}
	return nil
}

// FSet returns the file set of the expression source.
// Returns nil if the expression has been built programmatically.
func (s *Schedule) FSet() *token.FileSet {
	return s.fset
}

// Expr returns the expression of the schedule.
func (s *Schedule) Expr() ir.Expr {
	return s.expr
}

// Path returns the tensor path of an access.
func (s *Schedule) Path(access *ir.Access) (*TensorPath, error) {
	path, ok := s.paths.Load(access)
	if !ok {
		return nil, fmterr.Internalf("access %s is not part of the schedule of %s", access, s.expr)
	}
	return path, nil
}

// Paths returns all the tensor paths of the schedule
// in the order in which the accesses appear in the expression.
func (s *Schedule) Paths() iter.Seq[*TensorPath] {
	return s.paths.Values()
}

// Vars returns the loop variables of the schedule
// in the order in which they first appear in the expression.
func (s *Schedule) Vars() []*ir.IndexVar {
	return slices.Clone(s.vars)
}
