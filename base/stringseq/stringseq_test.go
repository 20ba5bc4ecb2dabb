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

package stringseq_test

import (
	"slices"
	"strconv"
	"testing"

	"github.com/gx-org/sptensor/base/stringseq"
)

type level int

func (l level) String() string { return "L" + strconv.Itoa(int(l)) }

func TestJoinStringer(t *testing.T) {
	tests := []struct {
		seq  []level
		want string
	}{
		{seq: nil, want: ""},
		{seq: []level{0}, want: "L0"},
		{seq: []level{0, 1, 2}, want: "L0, L1, L2"},
	}
	for i, test := range tests {
		if got := stringseq.JoinStringer(slices.Values(test.seq), ", "); got != test.want {
			t.Errorf("test %d: got %q but want %q", i, got, test.want)
		}
	}
}
