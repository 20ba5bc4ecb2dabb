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

// Package format describes how tensors are stored.
//
// A format is an ordered list of levels, one per tensor dimension.
// Each level carries a type telling the lowering pass whether the
// coordinates of the level can be accessed directly (dense) or
// need to be iterated over (sparse, singleton).
package format

import (
	"fmt"
	"strings"
)

// LevelType is the storage discipline of a level.
type LevelType int

const (
	// Dense levels store every coordinate.
	// They support direct positional access.
	Dense LevelType = iota
	// Sparse levels store the coordinates of nonzeros in a compressed segment.
	Sparse
	// Singleton levels store exactly one coordinate per parent position.
	Singleton
)

var levelTypeStrings = map[LevelType]string{
	Dense:     "dense",
	Sparse:    "sparse",
	Singleton: "singleton",
}

var levelTypeRunes = map[rune]LevelType{
	'd': Dense,
	's': Sparse,
	'q': Singleton,
}

// ParseLevelType returns the level type given its short name:
// 'd' for dense, 's' for sparse and 'q' for singleton.
func ParseLevelType(r rune) (LevelType, error) {
	lt, ok := levelTypeRunes[r]
	if !ok {
		return Dense, fmt.Errorf("unknown level type %q: want one of 'd', 's' or 'q'", r)
	}
	return lt, nil
}

// Short returns the short name of a level type.
func (lt LevelType) Short() string {
	for r, other := range levelTypeRunes {
		if other == lt {
			return string(r)
		}
	}
	return "?"
}

func (lt LevelType) String() string {
	s, ok := levelTypeStrings[lt]
	if !ok {
		return fmt.Sprintf("LevelType(%d)", int(lt))
	}
	return s
}

// Level is one storage level of a tensor.
type Level struct {
	Type LevelType
}

// IsDense returns true if coordinates of the level can be accessed directly.
func (l Level) IsDense() bool {
	return l.Type == Dense
}

func (l Level) String() string {
	return l.Type.String()
}

// Format is the ordered list of levels of a tensor.
type Format struct {
	levels []Level
}

// New returns a format given the type of each of its levels.
func New(types ...LevelType) *Format {
	levels := make([]Level, len(types))
	for i, tp := range types {
		levels[i] = Level{Type: tp}
	}
	return &Format{levels: levels}
}

// Parse returns a format from the short name of each level, for example "ds".
func Parse(s string) (*Format, error) {
	var types []LevelType
	for _, r := range s {
		tp, err := ParseLevelType(r)
		if err != nil {
			return nil, err
		}
		types = append(types, tp)
	}
	return New(types...), nil
}

func uniform(order int, tp LevelType) *Format {
	types := make([]LevelType, order)
	for i := range types {
		types[i] = tp
	}
	return New(types...)
}

// AllDense returns a format where all levels are dense.
func AllDense(order int) *Format {
	return uniform(order, Dense)
}

// AllSparse returns a format where all levels are sparse.
func AllSparse(order int) *Format {
	return uniform(order, Sparse)
}

// CSR returns the compressed sparse row format of a matrix.
func CSR() *Format {
	return New(Dense, Sparse)
}

// Levels returns the levels of the format.
func (f *Format) Levels() []Level {
	return f.levels
}

// Order returns the number of levels.
func (f *Format) Order() int {
	return len(f.levels)
}

// Level returns the ith level of the format.
// The boolean is false if the format has no such level.
func (f *Format) Level(i int) (Level, bool) {
	if i < 0 || i >= len(f.levels) {
		return Level{}, false
	}
	return f.levels[i], true
}

// String representation of the format, for example "(d,s)".
func (f *Format) String() string {
	ss := make([]string, len(f.levels))
	for i, level := range f.levels {
		ss[i] = level.Type.Short()
	}
	return "(" + strings.Join(ss, ",") + ")"
}
