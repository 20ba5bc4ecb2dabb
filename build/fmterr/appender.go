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

package fmterr

import "go/ast"

// Appender appends errors to a set within the context of a FileSet.
type Appender struct {
	errors *Errors
	fset   FileSet
}

// Append an error to the list of errors.
// Always returns false so that callers can write `return app.Append(err)`.
func (app *Appender) Append(err error) bool {
	return app.errors.Append(err)
}

// Appendf appends an error at a position.
func (app *Appender) Appendf(node ast.Node, format string, a ...any) bool {
	return app.Append(app.fset.Errorf(node, format, a...))
}

// Empty returns true if no errors has been appended.
func (app *Appender) Empty() bool {
	return app.errors.Empty()
}
