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

// Package ir is the Intermediate Representation (IR) of index expressions.
//
// An index expression is an arithmetic expression over tensor accesses,
// each access being annotated with the index variables selecting the
// coordinates of the tensor. For example, the matrix-vector product
// is written:
//
//	A(i, j) * x(j)
//
// The tree is built by the builder [github.com/gx-org/sptensor/build/builder]
// from source code or programmatically with [github.com/gx-org/sptensor/build/ir/irhelper].
// The structure and semantic is modeled after the go/ast package.
package ir

import (
	"fmt"
	"go/ast"
	"go/token"
	"slices"
	"strings"

	"github.com/gx-org/backend/dtype"
	"github.com/gx-org/backend/shape"
	"github.com/gx-org/sptensor/build/format"
)

type (
	// Node in the tree.
	Node interface {
		// node marks a structure as a node structure.
		// It prevents external implementations of the interface.
		node()
	}

	// SourceNode is a node with a position in source code.
	SourceNode interface {
		Node
		// Source returns the node in the AST tree.
		// Returns nil if the node has been built programmatically.
		Source() ast.Node
	}

	// Expr is an index expression.
	Expr interface {
		SourceNode
		expr()
		String() string
	}
)

// IndexVar is a loop variable ranging over the coordinates of tensor dimensions.
// Index variables are compared by identity.
type IndexVar struct {
	Name string
}

// NewIndexVar returns a new index variable.
func NewIndexVar(name string) *IndexVar {
	return &IndexVar{Name: name}
}

// String returns the name of the variable.
func (v *IndexVar) String() string {
	return v.Name
}

// Tensor is a tensor operand of an index expression.
type Tensor struct {
	Name   string
	Shape  *shape.Shape
	Format *format.Format
}

// NewTensor returns a tensor given its name, element type, axis lengths and storage format.
// An axis length of zero means that the length is unknown at compile time.
func NewTensor(name string, dt dtype.DataType, dims []int, f *format.Format) (*Tensor, error) {
	if len(dims) != f.Order() {
		return nil, fmt.Errorf("tensor %s has %d axes but its format %s has %d levels", name, len(dims), f.String(), f.Order())
	}
	return &Tensor{
		Name: name,
		Shape: &shape.Shape{
			DType:       dt,
			AxisLengths: slices.Clone(dims),
		},
		Format: f,
	}, nil
}

// Order returns the number of dimensions of the tensor.
func (t *Tensor) Order() int {
	return len(t.Shape.AxisLengths)
}

// String returns the name of the tensor.
func (t *Tensor) String() string {
	return t.Name
}

// Decl returns a declaration of the tensor, for example "A float32[10,20] (d,s)".
func (t *Tensor) Decl() string {
	dims := make([]string, len(t.Shape.AxisLengths))
	for i, dim := range t.Shape.AxisLengths {
		if dim <= 0 {
			dims[i] = "_"
			continue
		}
		dims[i] = fmt.Sprint(dim)
	}
	return fmt.Sprintf("%s %s[%s] %s", t.Name, t.Shape.DType.String(), strings.Join(dims, ","), t.Format.String())
}

type (
	// Access reads a tensor at the coordinates given by index variables.
	// Access is the leaf of index expressions.
	// Src is either a *ast.CallExpr or, for tensors of order 0, a *ast.Ident.
	Access struct {
		Src    ast.Expr
		Tensor *Tensor
		Vars   []*IndexVar
	}

	// BinaryExpr is an operator with two arguments.
	BinaryExpr struct {
		Src  *ast.BinaryExpr
		Op   token.Token
		X, Y Expr
	}

	// UnaryExpr is an operator with a single argument.
	UnaryExpr struct {
		Src *ast.UnaryExpr
		Op  token.Token
		X   Expr
	}

	// NumberLit is a scalar constant.
	NumberLit struct {
		Src   *ast.BasicLit
		Value string
	}

	// ParenExpr is a parenthesized expression.
	ParenExpr struct {
		Src *ast.ParenExpr
		X   Expr
	}
)

var (
	_ Expr = (*Access)(nil)
	_ Expr = (*BinaryExpr)(nil)
	_ Expr = (*UnaryExpr)(nil)
	_ Expr = (*NumberLit)(nil)
	_ Expr = (*ParenExpr)(nil)
)

func (*Access) node() {}
func (*Access) expr() {}

// Source returns the node in the AST tree.
func (s *Access) Source() ast.Node {
	if s.Src == nil {
		return nil
	}
	return s.Src
}

// Indexes returns true if the access is indexed by v.
func (s *Access) Indexes(v *IndexVar) bool {
	return slices.Contains(s.Vars, v)
}

func (*BinaryExpr) node() {}
func (*BinaryExpr) expr() {}

// Source returns the node in the AST tree.
func (s *BinaryExpr) Source() ast.Node {
	if s.Src == nil {
		return nil
	}
	return s.Src
}

// IsAdditive returns true if a nonzero in either operand yields a nonzero result.
func (s *BinaryExpr) IsAdditive() bool {
	return s.Op == token.ADD || s.Op == token.SUB
}

// IsMultiplicative returns true if a zero in either operand yields a zero result.
func (s *BinaryExpr) IsMultiplicative() bool {
	return s.Op == token.MUL || s.Op == token.QUO
}

func (*UnaryExpr) node() {}
func (*UnaryExpr) expr() {}

// Source returns the node in the AST tree.
func (s *UnaryExpr) Source() ast.Node {
	if s.Src == nil {
		return nil
	}
	return s.Src
}

func (*NumberLit) node() {}
func (*NumberLit) expr() {}

// Source returns the node in the AST tree.
func (s *NumberLit) Source() ast.Node {
	if s.Src == nil {
		return nil
	}
	return s.Src
}

func (*ParenExpr) node() {}
func (*ParenExpr) expr() {}

// Source returns the node in the AST tree.
func (s *ParenExpr) Source() ast.Node {
	if s.Src == nil {
		return nil
	}
	return s.Src
}
