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

// Package log provides the logger of the lowering tools.
//
// Library packages only emit debug records. Tools set the level
// to make them visible.
package log

import (
	"log/slog"
	"os"
)

var level = func() *slog.LevelVar {
	lvl := &slog.LevelVar{}
	lvl.Set(slog.LevelError)
	return lvl
}()

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
	Level: level,
	ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey && len(groups) == 0 {
			return slog.Attr{}
		}
		return a
	},
}))

// SetLevel sets the minimum level of the records written by the logger.
func SetLevel(lvl slog.Level) {
	level.Set(lvl)
}

// Logger returns the logger.
func Logger() *slog.Logger {
	return logger
}
