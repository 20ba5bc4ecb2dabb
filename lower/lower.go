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

// Package lower computes, for each loop variable of an index expression,
// which tensor levels are iterated over and how their iterators are merged.
//
// For each loop variable, the merge rule of the expression is built,
// then simplified to remove dense levels from intersections. The steps of
// the simplified rule are the levels code generation iterates over.
package lower

import (
	"fmt"
	"slices"
	"strings"

	sptfmt "github.com/gx-org/sptensor/base/fmt"
	"github.com/gx-org/sptensor/base/stringseq"
	"github.com/gx-org/sptensor/build/fmterr"
	"github.com/gx-org/sptensor/build/ir"
	"github.com/gx-org/sptensor/internal/log"
	"github.com/gx-org/sptensor/lower/mergerule"
	"github.com/gx-org/sptensor/lower/schedule"
	"go.uber.org/multierr"
)

// Loop is the iteration over one loop variable.
type Loop struct {
	// Var is the loop variable.
	Var *ir.IndexVar
	// Rule is the merge rule of the expression for Var.
	// Nil if the expression does not depend on Var.
	Rule mergerule.Rule
	// Simplified is Rule without dense levels in intersections.
	Simplified mergerule.Rule
	// Steps are the levels iterated over, in iteration order.
	Steps []schedule.TensorPathStep
}

// String representation of the loop.
func (l *Loop) String() string {
	var s strings.Builder
	fmt.Fprintf(&s, "rule:       %s\n", mergerule.String(l.Rule))
	fmt.Fprintf(&s, "simplified: %s\n", mergerule.String(l.Simplified))
	fmt.Fprintf(&s, "steps:      [%s]\n", stringseq.JoinStringer(slices.Values(l.Steps), " "))
	return l.Var.Name + "\n" + sptfmt.Indent(s.String())
}

// Plan is the list of loops of an index expression.
type Plan struct {
	Expr  ir.Expr
	Loops []*Loop
}

// Loop returns the loop of a variable.
func (p *Plan) Loop(v *ir.IndexVar) (*Loop, bool) {
	for _, loop := range p.Loops {
		if loop.Var == v {
			return loop, true
		}
	}
	return nil, false
}

// String representation of the plan.
func (p *Plan) String() string {
	var s strings.Builder
	s.WriteString(p.Expr.String())
	s.WriteString("\n")
	for _, loop := range p.Loops {
		s.WriteString(sptfmt.Indent(loop.String()))
	}
	return s.String()
}

// Var computes the loop of a single variable of the schedule.
func Var(sched *schedule.Schedule, v *ir.IndexVar) (*Loop, error) {
	rule, err := mergerule.Build(sched.Expr(), v, sched)
	if err != nil {
		return nil, err
	}
	simplified, err := mergerule.Simplify(rule)
	if err != nil {
		return nil, err
	}
	loop := &Loop{
		Var:        v,
		Rule:       rule,
		Simplified: simplified,
		Steps:      mergerule.Steps(simplified),
	}
	log.Logger().Debug("merge rule",
		"var", v.Name,
		"rule", mergerule.String(rule),
		"simplified", mergerule.String(simplified),
		"steps", len(loop.Steps),
	)
	return loop, nil
}

// Lower computes the loops of all the variables of a schedule,
// in schedule order. Errors of all the variables are returned together.
func Lower(sched *schedule.Schedule) (*Plan, error) {
	plan := &Plan{Expr: sched.Expr()}
	var errs error
	for _, v := range sched.Vars() {
		loop, err := Var(sched, v)
		if err != nil {
			errs = multierr.Append(errs, fmterr.PrefixWith("index variable %s: ", v.Name)(err))
			continue
		}
		plan.Loops = append(plan.Loops, loop)
	}
	if errs != nil {
		return nil, errs
	}
	return plan, nil
}
