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

// Visitor visits the nodes of a merge rule.
// Walk calls the method matching the kind of node. The traversal continues
// below an And or an Or only if the method calls WalkChildren.
type Visitor interface {
	VisitStep(*Step)
	VisitAnd(*And)
	VisitOr(*Or)
}

// Walk traverses a rule with a visitor.
// Walking the undefined rule is a no-op.
func Walk(v Visitor, r Rule) {
	switch rT := r.(type) {
	case *Step:
		v.VisitStep(rT)
	case *And:
		v.VisitAnd(rT)
	case *Or:
		v.VisitOr(rT)
	}
}

// WalkChildren walks the operands of an And or an Or, left then right.
// It is the default behaviour when visiting binary rules.
func WalkChildren(v Visitor, r Rule) {
	switch rT := r.(type) {
	case *And:
		Walk(v, rT.X)
		Walk(v, rT.Y)
	case *Or:
		Walk(v, rT.X)
		Walk(v, rT.Y)
	}
}

// Funcs is a visitor calling a function per kind of node.
// A nil function falls back to the default behaviour:
// nothing for steps, visiting the operands for And and Or.
type Funcs struct {
	Step func(*Step)
	And  func(*And)
	Or   func(*Or)
}

var _ Visitor = Funcs{}

// VisitStep calls f.Step if set.
func (f Funcs) VisitStep(r *Step) {
	if f.Step != nil {
		f.Step(r)
	}
}

// VisitAnd calls f.And if set, otherwise visits the operands of r.
func (f Funcs) VisitAnd(r *And) {
	if f.And != nil {
		f.And(r)
		return
	}
	WalkChildren(f, r)
}

// VisitOr calls f.Or if set, otherwise visits the operands of r.
func (f Funcs) VisitOr(r *Or) {
	if f.Or != nil {
		f.Or(r)
		return
	}
	WalkChildren(f, r)
}
