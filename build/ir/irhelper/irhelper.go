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

// Package irhelper provides helper functions to build IR programmatically.
package irhelper

import (
	"go/token"

	"github.com/gx-org/backend/dtype"
	"github.com/gx-org/sptensor/build/format"
	"github.com/gx-org/sptensor/build/ir"
)

// Tensor returns a float32 tensor with unknown axis lengths stored with the given format.
func Tensor(name string, f *format.Format) *ir.Tensor {
	tensor, err := ir.NewTensor(name, dtype.Float32, make([]int, f.Order()), f)
	if err != nil {
		// Cannot happen: the number of axes is derived from the format.
		panic(err)
	}
	return tensor
}

// Vars returns new index variables given their names.
func Vars(names ...string) []*ir.IndexVar {
	vars := make([]*ir.IndexVar, len(names))
	for i, name := range names {
		vars[i] = ir.NewIndexVar(name)
	}
	return vars
}

// Access returns an access to a tensor.
func Access(tensor *ir.Tensor, vars ...*ir.IndexVar) *ir.Access {
	return &ir.Access{Tensor: tensor, Vars: vars}
}

// Binary returns a binary expression.
func Binary(op token.Token, x, y ir.Expr) *ir.BinaryExpr {
	return &ir.BinaryExpr{Op: op, X: x, Y: y}
}

// Add returns x+y.
func Add(x, y ir.Expr) *ir.BinaryExpr {
	return Binary(token.ADD, x, y)
}

// Sub returns x-y.
func Sub(x, y ir.Expr) *ir.BinaryExpr {
	return Binary(token.SUB, x, y)
}

// Mul returns x*y.
func Mul(x, y ir.Expr) *ir.BinaryExpr {
	return Binary(token.MUL, x, y)
}

// Div returns x/y.
func Div(x, y ir.Expr) *ir.BinaryExpr {
	return Binary(token.QUO, x, y)
}

// Neg returns -x.
func Neg(x ir.Expr) *ir.UnaryExpr {
	return &ir.UnaryExpr{Op: token.SUB, X: x}
}

// Number returns a scalar constant.
func Number(val string) *ir.NumberLit {
	return &ir.NumberLit{Value: val}
}

// Paren returns (x).
func Paren(x ir.Expr) *ir.ParenExpr {
	return &ir.ParenExpr{X: x}
}
