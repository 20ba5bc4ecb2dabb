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

package builder_test

import (
	"strings"
	"testing"

	"github.com/gx-org/backend/dtype"
	"github.com/gx-org/sptensor/build/builder"
	"github.com/gx-org/sptensor/build/fmterr"
	"github.com/gx-org/sptensor/build/format"
	"github.com/gx-org/sptensor/build/ir"
)

func newBuilder(t *testing.T) *builder.Builder {
	t.Helper()
	bld := builder.New()
	decls := []struct {
		name string
		f    *format.Format
	}{
		{name: "A", f: format.CSR()},
		{name: "x", f: format.AllDense(1)},
		{name: "y", f: format.AllSparse(1)},
		{name: "alpha", f: format.New()},
	}
	for _, decl := range decls {
		tensor, err := ir.NewTensor(decl.name, dtype.Float32, make([]int, decl.f.Order()), decl.f)
		if err != nil {
			t.Fatal(err)
		}
		if err := bld.Declare(tensor); err != nil {
			t.Fatal(err)
		}
	}
	return bld
}

func TestParse(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{
			src:  "x(i)",
			want: "x(i)",
		},
		{
			src:  "A(i, j) * x(j)",
			want: "A(i,j) * x(j)",
		},
		{
			src:  "x(i) + y(i) - x(i) / y(i)",
			want: "x(i) + y(i) - x(i) / y(i)",
		},
		{
			src:  "(x(i) + y(i)) * x(i)",
			want: "(x(i) + y(i)) * x(i)",
		},
		{
			src:  "-alpha * 2.5 * x(i)",
			want: "-alpha * 2.5 * x(i)",
		},
	}
	for i, test := range tests {
		expr, _, err := newBuilder(t).Parse(test.src)
		if err != nil {
			t.Errorf("test %d: cannot parse %q: %v", i, test.src, err)
			continue
		}
		if got := expr.String(); got != test.want {
			t.Errorf("test %d: got %q but want %q", i, got, test.want)
		}
	}
}

func TestParseStructure(t *testing.T) {
	bld := newBuilder(t)
	expr, fset, err := bld.Parse("(x(i) + y(i)) * A(i, j)")
	if err != nil {
		t.Fatal(err)
	}
	mul, ok := expr.(*ir.BinaryExpr)
	if !ok || !mul.IsMultiplicative() {
		t.Fatalf("got %T but want a multiplicative *ir.BinaryExpr", expr)
	}
	add, ok := mul.X.(*ir.BinaryExpr)
	if !ok || !add.IsAdditive() {
		t.Fatalf("got left operand %T but want an additive *ir.BinaryExpr", mul.X)
	}
	xi, yi := add.X.(*ir.Access), add.Y.(*ir.Access)
	if xi.Vars[0] != yi.Vars[0] {
		t.Errorf("index variable i is not shared between accesses")
	}
	i, ok := bld.Var("i")
	if !ok || i != xi.Vars[0] {
		t.Errorf("builder does not return the index variable used by the expression")
	}
	if got := fset.Position(mul.Y.Source().Pos()).Column; got != 17 {
		t.Errorf("A(i, j) starts at column %d but want 17", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		src  string
		errs []string
	}{
		{
			src:  "z(i)",
			errs: []string{"expr:1:1: undefined tensor: z"},
		},
		{
			src:  "A(i)",
			errs: []string{"expr:1:1: tensor A has 2 dimensions but is accessed with 1 index variables"},
		},
		{
			src:  "A(i, i)",
			errs: []string{"expr:1:6: index variable i used more than once to access tensor A"},
		},
		{
			src:  "x(0)",
			errs: []string{"expr:1:3: invalid index *ast.BasicLit: want an index variable"},
		},
		{
			src:  "x(i) % y(i)",
			errs: []string{"expr:1:1: invalid operation: operator % not supported"},
		},
		{
			src:  "x",
			errs: []string{"expr:1:1: missing index variables to access tensor x of 1 dimensions"},
		},
		{
			src: "z(i) + w(j)",
			errs: []string{
				"expr:1:1: undefined tensor: z",
				"expr:1:8: undefined tensor: w",
			},
		},
		{
			src:  "x(i)[0]",
			errs: []string{"expr:1:1: *ast.IndexExpr not supported"},
		},
		{
			src:  `"x"`,
			errs: []string{"expr:1:1: STRING literal not supported"},
		},
	}
	for ti, test := range tests {
		_, _, err := newBuilder(t).Parse(test.src)
		if err == nil {
			t.Errorf("test %d: expected an error when parsing %q", ti, test.src)
			continue
		}
		errs, ok := err.(*fmterr.Errors)
		if !ok {
			t.Errorf("test %d: got error %T but want *fmterr.Errors", ti, err)
			continue
		}
		if len(errs.Errors()) != len(test.errs) {
			t.Errorf("test %d: got %d errors but want %d:\n%v", ti, len(errs.Errors()), len(test.errs), err)
			continue
		}
		for i, got := range errs.Errors() {
			if !strings.HasPrefix(got.Error(), test.errs[i]) {
				t.Errorf("test %d error %d: got %q but want prefix %q", ti, i, got.Error(), test.errs[i])
			}
		}
	}
}

func TestSyntaxError(t *testing.T) {
	if _, _, err := newBuilder(t).Parse("x(i) +"); err == nil {
		t.Errorf("expected a syntax error")
	}
}

func TestDeclare(t *testing.T) {
	bld := newBuilder(t)
	x, ok := bld.Tensor("x")
	if !ok {
		t.Fatalf("tensor x not declared")
	}
	if err := bld.Declare(x); err == nil {
		t.Errorf("expected an error when declaring x twice")
	}
	broken := &ir.Tensor{Name: "broken", Shape: x.Shape, Format: format.CSR()}
	if err := bld.Declare(broken); err == nil {
		t.Errorf("expected an error when declaring a tensor inconsistent with its format")
	}
	var names []string
	for tensor := range bld.Tensors() {
		names = append(names, tensor.Name)
	}
	if got, want := strings.Join(names, ","), "A,x,y,alpha"; got != want {
		t.Errorf("got tensors %q but want %q", got, want)
	}
}
