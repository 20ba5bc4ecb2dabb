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

package builder

import (
	"go/ast"
	"slices"

	"github.com/gx-org/sptensor/build/ir"
)

func lookupTensor(scope *parseScope, ident *ast.Ident) (*ir.Tensor, bool) {
	tensor, ok := scope.bld.Tensor(ident.Name)
	if !ok {
		return nil, scope.err().Appendf(ident, "undefined tensor: %s", ident.Name)
	}
	return tensor, true
}

func processAccess(scope *parseScope, expr *ast.CallExpr) (ir.Expr, bool) {
	ident, ok := expr.Fun.(*ast.Ident)
	if !ok {
		return nil, scope.err().Appendf(expr.Fun, "cannot access %T: want a tensor name", expr.Fun)
	}
	tensor, ok := lookupTensor(scope, ident)
	if !ok {
		return nil, false
	}
	if expr.Ellipsis.IsValid() {
		return nil, scope.err().Appendf(expr, "cannot use ... when accessing tensor %s", tensor.Name)
	}
	if len(expr.Args) != tensor.Order() {
		return nil, scope.err().Appendf(expr, "tensor %s has %d dimensions but is accessed with %d index variables", tensor.Name, tensor.Order(), len(expr.Args))
	}
	access := &ir.Access{
		Src:    expr,
		Tensor: tensor,
		Vars:   make([]*ir.IndexVar, len(expr.Args)),
	}
	ok = true
	for i, arg := range expr.Args {
		argIdent, isIdent := arg.(*ast.Ident)
		if !isIdent {
			ok = scope.err().Appendf(arg, "invalid index %T: want an index variable", arg)
			continue
		}
		v := scope.bld.indexVar(argIdent.Name)
		if slices.Contains(access.Vars[:i], v) {
			ok = scope.err().Appendf(arg, "index variable %s used more than once to access tensor %s", v.Name, tensor.Name)
			continue
		}
		access.Vars[i] = v
	}
	return access, ok
}

// processScalarAccess accesses a tensor of order 0 with no index variables.
func processScalarAccess(scope *parseScope, ident *ast.Ident) (ir.Expr, bool) {
	tensor, ok := lookupTensor(scope, ident)
	if !ok {
		return nil, false
	}
	if tensor.Order() != 0 {
		return nil, scope.err().Appendf(ident, "missing index variables to access tensor %s of %d dimensions", tensor.Name, tensor.Order())
	}
	return &ir.Access{
		Src:    ident,
		Tensor: tensor,
	}, true
}
