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

import "github.com/gx-org/sptensor/build/fmterr"

type simplifier struct {
	// dense is the set of rules iterating over a dense level.
	// Rules are compared by identity.
	dense map[Rule]bool
}

// Simplify removes dense levels from intersections.
//
// A dense level supports direct positional access: intersecting it with
// another level does not require iterating over its coordinates.
// For each And:
//   - if both operands are dense steps, the And is kept,
//   - if only the right operand is a dense step, the left operand is returned,
//   - otherwise the right operand is returned.
//
// The last case also applies when no operand is dense.
// Or rules are returned unchanged, including their operands.
func Simplify(r Rule) (Rule, error) {
	s := &simplifier{dense: make(map[Rule]bool)}
	return s.simplify(r)
}

func (s *simplifier) simplify(r Rule) (Rule, error) {
	switch rT := r.(type) {
	case nil:
		return nil, nil
	case *Step:
		return s.simplifyStep(rT)
	case *And:
		return s.simplifyAnd(rT)
	case *Or:
		// TODO: drop dense operands of unions once code generation can
		// locate into dense levels from a union loop.
		return rT, nil
	}
	return nil, fmterr.Internalf("cannot simplify merge rule of type %T", r)
}

func (s *simplifier) simplifyStep(r *Step) (Rule, error) {
	level, err := r.PathStep.Level()
	if err != nil {
		return nil, err
	}
	if level.IsDense() {
		s.dense[r] = true
	}
	return r, nil
}

func (s *simplifier) simplifyAnd(r *And) (Rule, error) {
	x, err := s.simplify(r.X)
	if err != nil {
		return nil, err
	}
	y, err := s.simplify(r.Y)
	if err != nil {
		return nil, err
	}
	switch {
	case s.dense[x] && s.dense[y]:
		return NewAnd(x, y, r.Src), nil
	case s.dense[y]:
		return x, nil
	default:
		return y, nil
	}
}
