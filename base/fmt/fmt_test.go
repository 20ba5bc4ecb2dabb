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

package fmt_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	sptfmt "github.com/gx-org/sptensor/base/fmt"
)

func TestIndent(t *testing.T) {
	tests := []struct {
		skip int
		txt  string
		want string
	}{
		{
			txt:  "rule: A@0\nsteps: A@0\n",
			want: "\trule: A@0\n\tsteps: A@0\n",
		},
		{
			skip: 1,
			txt:  "i\nrule: A@0\nsteps: A@0",
			want: "i\n\trule: A@0\n\tsteps: A@0",
		},
		{
			txt:  "",
			want: "",
		},
	}
	for i, test := range tests {
		got := sptfmt.IndentSkip(test.skip, test.txt)
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("test %d: unexpected indentation (-want +got):\n%s", i, diff)
		}
	}
}
