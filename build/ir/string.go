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
	"go/token"
	"strings"
)

// String representation of the access, for example "A(i,j)".
// Tensors of order 0 print as their name.
func (s *Access) String() string {
	if len(s.Vars) == 0 {
		return s.Tensor.Name
	}
	vars := make([]string, len(s.Vars))
	for i, v := range s.Vars {
		vars[i] = v.Name
	}
	return s.Tensor.Name + "(" + strings.Join(vars, ",") + ")"
}

// String representation.
// Operands binding more loosely than the operator are enclosed in parentheses.
func (s *BinaryExpr) String() string {
	prec := s.Op.Precedence()
	x := s.X.String()
	if precedence(s.X) < prec {
		x = "(" + x + ")"
	}
	// Operators are left-associative: a right operand of equal precedence needs parentheses.
	y := s.Y.String()
	if precedence(s.Y) <= prec {
		y = "(" + y + ")"
	}
	return x + " " + s.Op.String() + " " + y
}

// String representation.
func (s *UnaryExpr) String() string {
	x := s.X.String()
	if precedence(s.X) <= token.UnaryPrec {
		x = "(" + x + ")"
	}
	return s.Op.String() + x
}

// precedence returns the binding strength of an expression when printed as an operand.
func precedence(expr Expr) int {
	switch exprT := expr.(type) {
	case *BinaryExpr:
		return exprT.Op.Precedence()
	case *UnaryExpr:
		return token.UnaryPrec
	default:
		return token.HighestPrec
	}
}

// String representation.
func (s *NumberLit) String() string {
	return s.Value
}

// String representation.
func (s *ParenExpr) String() string {
	return "(" + s.X.String() + ")"
}
