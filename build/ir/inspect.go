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

package ir

import (
	"iter"

	"github.com/gx-org/sptensor/base/ordered"
)

// Inspect traverses an expression in depth-first order, operands left to right.
// It starts by calling f(expr). If f returns true, Inspect is called
// recursively on the operands of expr.
func Inspect(expr Expr, f func(Expr) bool) {
	if expr == nil || !f(expr) {
		return
	}
	switch exprT := expr.(type) {
	case *BinaryExpr:
		Inspect(exprT.X, f)
		Inspect(exprT.Y, f)
	case *UnaryExpr:
		Inspect(exprT.X, f)
	case *ParenExpr:
		Inspect(exprT.X, f)
	}
}

// Accesses returns all the tensor accesses of an expression, from left to right.
func Accesses(expr Expr) []*Access {
	var accesses []*Access
	Inspect(expr, func(expr Expr) bool {
		if access, ok := expr.(*Access); ok {
			accesses = append(accesses, access)
		}
		return true
	})
	return accesses
}

// IndexVars returns the index variables of an expression
// in the order in which they first appear.
func IndexVars(expr Expr) iter.Seq[*IndexVar] {
	vars := ordered.NewMap[*IndexVar, struct{}]()
	for _, access := range Accesses(expr) {
		for _, v := range access.Vars {
			vars.Store(v, struct{}{})
		}
	}
	return vars.Keys()
}
