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
	"strings"

	"github.com/gx-org/sptensor/lower/schedule"
)

type printer struct {
	s strings.Builder
}

func (p *printer) VisitStep(r *Step) {
	p.s.WriteString(r.PathStep.String())
}

func (p *printer) VisitAnd(r *And) {
	Walk(p, r.X)
	p.s.WriteString(" ∧ ")
	Walk(p, r.Y)
}

func (p *printer) VisitOr(r *Or) {
	Walk(p, r.X)
	p.s.WriteString(" ∨ ")
	Walk(p, r.Y)
}

// String returns a string representation of a rule, for example "A@0 ∧ B@0".
// The undefined rule is represented by "MergeRule()".
func String(r Rule) string {
	if r == nil {
		return "MergeRule()"
	}
	p := &printer{}
	Walk(p, r)
	return p.s.String()
}

func (r *Step) String() string { return String(r) }

func (r *And) String() string { return String(r) }

func (r *Or) String() string { return String(r) }

// Steps returns the tensor path steps of a rule, in depth-first order
// and from left to right. The order defines the order in which the levels
// are iterated over by the generated code.
func Steps(r Rule) []schedule.TensorPathStep {
	var steps []schedule.TensorPathStep
	Walk(Funcs{
		Step: func(r *Step) {
			steps = append(steps, r.PathStep)
		},
	}, r)
	return steps
}
