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
	"go/token"

	"github.com/gx-org/sptensor/build/ir"
)

func processBinaryExpr(scope *parseScope, expr *ast.BinaryExpr) (ir.Expr, bool) {
	x, xOk := processExpr(scope, expr.X)
	y, yOk := processExpr(scope, expr.Y)
	switch expr.Op {
	case token.ADD, token.SUB, token.MUL, token.QUO:
	default:
		return nil, scope.err().Appendf(expr, "invalid operation: operator %s not supported in index expressions", expr.Op)
	}
	if !xOk || !yOk {
		return nil, false
	}
	return &ir.BinaryExpr{
		Src: expr,
		Op:  expr.Op,
		X:   x,
		Y:   y,
	}, true
}

func processUnaryExpr(scope *parseScope, expr *ast.UnaryExpr) (ir.Expr, bool) {
	x, ok := processExpr(scope, expr.X)
	switch expr.Op {
	case token.ADD, token.SUB:
	default:
		return nil, scope.err().Appendf(expr, "invalid operation: operator %s not supported in index expressions", expr.Op)
	}
	if !ok {
		return nil, false
	}
	return &ir.UnaryExpr{
		Src: expr,
		Op:  expr.Op,
		X:   x,
	}, true
}

func processBasicLit(scope *parseScope, expr *ast.BasicLit) (ir.Expr, bool) {
	switch expr.Kind {
	case token.INT, token.FLOAT:
		return &ir.NumberLit{Src: expr, Value: expr.Value}, true
	default:
		return nil, scope.err().Appendf(expr, "%s literal not supported in index expressions", expr.Kind)
	}
}
