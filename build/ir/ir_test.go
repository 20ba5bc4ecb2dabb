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

package ir_test

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gx-org/backend/dtype"
	"github.com/gx-org/sptensor/build/format"
	"github.com/gx-org/sptensor/build/ir"
	"github.com/gx-org/sptensor/build/ir/irhelper"
)

func TestString(t *testing.T) {
	vars := irhelper.Vars("i", "j")
	i, j := vars[0], vars[1]
	A := irhelper.Tensor("A", format.CSR())
	x := irhelper.Tensor("x", format.AllDense(1))
	alpha := irhelper.Tensor("alpha", format.New())
	tests := []struct {
		expr ir.Expr
		want string
	}{
		{
			expr: irhelper.Access(A, i, j),
			want: "A(i,j)",
		},
		{
			expr: irhelper.Mul(irhelper.Access(A, i, j), irhelper.Access(x, j)),
			want: "A(i,j) * x(j)",
		},
		{
			expr: irhelper.Neg(irhelper.Paren(irhelper.Sub(irhelper.Access(x, i), irhelper.Number("2")))),
			want: "-(x(i) - 2)",
		},
		{
			expr: irhelper.Div(irhelper.Access(x, i), irhelper.Access(x, j)),
			want: "x(i) / x(j)",
		},
		{
			expr: irhelper.Mul(irhelper.Add(irhelper.Access(x, i), irhelper.Access(x, j)), irhelper.Access(A, i, j)),
			want: "(x(i) + x(j)) * A(i,j)",
		},
		{
			expr: irhelper.Sub(irhelper.Access(x, i), irhelper.Sub(irhelper.Access(x, j), irhelper.Access(x, i))),
			want: "x(i) - (x(j) - x(i))",
		},
		{
			expr: irhelper.Add(irhelper.Access(x, i), irhelper.Mul(irhelper.Access(x, j), irhelper.Access(x, i))),
			want: "x(i) + x(j) * x(i)",
		},
		{
			expr: irhelper.Neg(irhelper.Add(irhelper.Access(x, i), irhelper.Access(x, j))),
			want: "-(x(i) + x(j))",
		},
		{
			expr: irhelper.Mul(irhelper.Access(alpha), irhelper.Access(x, i)),
			want: "alpha * x(i)",
		},
	}
	for ti, test := range tests {
		if got := test.expr.String(); got != test.want {
			t.Errorf("test %d: got %q but want %q", ti, got, test.want)
		}
	}
}

func TestOperatorKinds(t *testing.T) {
	x := irhelper.Number("1")
	tests := []struct {
		expr           *ir.BinaryExpr
		additive, mult bool
	}{
		{expr: irhelper.Add(x, x), additive: true},
		{expr: irhelper.Sub(x, x), additive: true},
		{expr: irhelper.Mul(x, x), mult: true},
		{expr: irhelper.Div(x, x), mult: true},
	}
	for i, test := range tests {
		if got := test.expr.IsAdditive(); got != test.additive {
			t.Errorf("test %d: %s.IsAdditive() = %v but want %v", i, test.expr, got, test.additive)
		}
		if got := test.expr.IsMultiplicative(); got != test.mult {
			t.Errorf("test %d: %s.IsMultiplicative() = %v but want %v", i, test.expr, got, test.mult)
		}
	}
}

func TestAccesses(t *testing.T) {
	vars := irhelper.Vars("i", "j", "k")
	i, j, k := vars[0], vars[1], vars[2]
	B := irhelper.Tensor("B", format.AllSparse(2))
	c := irhelper.Tensor("c", format.AllDense(1))
	first := irhelper.Access(B, i, k)
	second := irhelper.Access(c, k)
	third := irhelper.Access(c, j)
	expr := irhelper.Add(irhelper.Mul(first, irhelper.Paren(second)), irhelper.Neg(third))
	if got := ir.Accesses(expr); !slices.Equal(got, []*ir.Access{first, second, third}) {
		t.Errorf("got accesses %v but want [%s %s %s]", got, first, second, third)
	}
	gotVars := slices.Collect(ir.IndexVars(expr))
	if diff := cmp.Diff([]string{"i", "k", "j"}, names(gotVars)); diff != "" {
		t.Errorf("unexpected index variables (-want +got):\n%s", diff)
	}
	if gotVars[0] != i || gotVars[1] != k || gotVars[2] != j {
		t.Errorf("index variables are not the variables used to build the expression")
	}
	if !first.Indexes(k) || first.Indexes(j) {
		t.Errorf("B(i,k).Indexes returned an incorrect result")
	}
}

func names(vars []*ir.IndexVar) []string {
	ss := make([]string, len(vars))
	for i, v := range vars {
		ss[i] = v.Name
	}
	return ss
}

func TestNewTensor(t *testing.T) {
	A, err := ir.NewTensor("A", dtype.Float64, []int{10, 0}, format.CSR())
	if err != nil {
		t.Fatal(err)
	}
	if A.Order() != 2 {
		t.Errorf("A has order %d but want 2", A.Order())
	}
	if got, want := A.Decl(), "A "+dtype.Float64.String()+"[10,_] (d,s)"; got != want {
		t.Errorf("got declaration %q but want %q", got, want)
	}
	if _, err := ir.NewTensor("B", dtype.Float32, []int{3}, format.CSR()); err == nil {
		t.Errorf("expected an error when the number of axes does not match the format")
	}
}
