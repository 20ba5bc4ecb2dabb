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

package fmterr_test

import (
	"errors"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/gx-org/sptensor/build/fmterr"
)

func TestErrorfWithPosition(t *testing.T) {
	fset := token.NewFileSet()
	expr, err := parser.ParseExprFrom(fset, "expr", "A(i) * B(i)", 0)
	if err != nil {
		t.Fatal(err)
	}
	got := fmterr.Errorf(fset, expr, "cannot lower %s", "A(i)*B(i)")
	if want := "expr:1:1: cannot lower A(i)*B(i)"; got.Error() != want {
		t.Errorf("got %q but want %q", got.Error(), want)
	}
	var withPos fmterr.ErrorWithPos
	if !errors.As(got, &withPos) {
		t.Fatalf("error %v does not carry a position", got)
	}
	if withPos.Src() != expr {
		t.Errorf("error source is %v but want %v", withPos.Src(), expr)
	}
}

func TestErrorfWithoutSource(t *testing.T) {
	got := fmterr.Errorf(token.NewFileSet(), nil, "no source")
	if want := "no source"; got.Error() != want {
		t.Errorf("got %q but want %q", got.Error(), want)
	}
}

func TestInternal(t *testing.T) {
	err := fmterr.Internalf("level %d missing", 3)
	if !strings.Contains(err.Error(), "This is a bug") {
		t.Errorf("internal error %q does not include the bug banner", err.Error())
	}
	if !strings.Contains(err.Error(), "level 3 missing") {
		t.Errorf("internal error %q does not include the original message", err.Error())
	}
}

func TestAppender(t *testing.T) {
	fset := token.NewFileSet()
	expr, err := parser.ParseExprFrom(fset, "expr", "x", 0)
	if err != nil {
		t.Fatal(err)
	}
	errs := &fmterr.Errors{}
	if errs.ToError() != nil {
		t.Errorf("empty set of errors converted to a non-nil error")
	}
	app := errs.NewAppender(fset)
	if ok := app.Appendf(expr, "first"); ok {
		t.Errorf("Appendf returned true")
	}
	app.Append(errors.New("second"))
	if app.Empty() {
		t.Errorf("appender is empty after appending errors")
	}
	if got := len(errs.Errors()); got != 2 {
		t.Errorf("got %d errors but want 2", got)
	}
	if want := "expr:1:1: first\nsecond"; errs.ToError().Error() != want {
		t.Errorf("got %q but want %q", errs.ToError().Error(), want)
	}
}
