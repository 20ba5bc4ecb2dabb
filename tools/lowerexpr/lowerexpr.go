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

// Package lowerexpr implements a command printing, for each loop variable of
// an index expression, the merge rule of the expression and the tensor levels
// iterated over once dense levels have been removed from intersections.
package lowerexpr

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gx-org/backend/dtype"
	"github.com/gx-org/sptensor/build/builder"
	"github.com/gx-org/sptensor/build/format"
	"github.com/gx-org/sptensor/build/ir"
	"github.com/gx-org/sptensor/internal/log"
	"github.com/gx-org/sptensor/lower"
	"github.com/gx-org/sptensor/lower/schedule"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var dataTypes = map[string]dtype.DataType{
	"float32": dtype.Float32,
	"float64": dtype.Float64,
	"int32":   dtype.Int32,
	"int64":   dtype.Int64,
}

type options struct {
	tensors  []string
	varName  string
	logLevel int
}

// Command returns the lowerexpr command.
func Command() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "lowerexpr EXPRESSION",
		Short: "Print how tensor levels are co-iterated for each loop variable of an index expression",
		Long: `Print how tensor levels are co-iterated for each loop variable of an index expression.

Tensors are declared with --tensor NAME=LEVELS[:DTYPE[:D0xD1...]] where LEVELS
has one letter per level: d (dense), s (sparse) or q (singleton). For example:

	lowerexpr --tensor A=ds --tensor x=d 'A(i, j) * x(j)'`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.SetLevel(slog.Level(opts.logLevel))
			return run(cmd.OutOrStdout(), opts, args[0])
		},
	}
	flags := cmd.Flags()
	flags.StringArrayVarP(&opts.tensors, "tensor", "t", nil, "tensor declaration NAME=LEVELS[:DTYPE[:D0xD1...]] (repeatable)")
	flags.StringVar(&opts.varName, "var", "", "only print the loop of this index variable")
	flags.IntVarP(&opts.logLevel, "log-level", "l", int(slog.LevelError), "log level")
	return cmd
}

func parseDims(s string, order int) ([]int, error) {
	if s == "" {
		return make([]int, order), nil
	}
	fields := strings.Split(s, "x")
	dims := make([]int, len(fields))
	for i, field := range fields {
		dim, err := strconv.Atoi(field)
		if err != nil || dim < 0 {
			return nil, errors.Errorf("invalid axis length %q", field)
		}
		dims[i] = dim
	}
	return dims, nil
}

// parseTensor parses a tensor declaration NAME=LEVELS[:DTYPE[:D0xD1...]].
func parseTensor(decl string) (*ir.Tensor, error) {
	name, rest, ok := strings.Cut(decl, "=")
	if !ok || name == "" {
		return nil, errors.Errorf("invalid tensor declaration %q: want NAME=LEVELS[:DTYPE[:D0xD1...]]", decl)
	}
	fields := strings.SplitN(rest, ":", 3)
	f, err := format.Parse(fields[0])
	if err != nil {
		return nil, errors.Wrapf(err, "invalid format for tensor %s", name)
	}
	dt := dtype.Float32
	if len(fields) > 1 && fields[1] != "" {
		if dt, ok = dataTypes[fields[1]]; !ok {
			return nil, errors.Errorf("invalid data type %q for tensor %s", fields[1], name)
		}
	}
	var dimsField string
	if len(fields) > 2 {
		dimsField = fields[2]
	}
	dims, err := parseDims(dimsField, f.Order())
	if err != nil {
		return nil, errors.Wrapf(err, "invalid shape for tensor %s", name)
	}
	return ir.NewTensor(name, dt, dims, f)
}

func run(w io.Writer, opts *options, src string) error {
	bld := builder.New()
	for _, decl := range opts.tensors {
		tensor, err := parseTensor(decl)
		if err != nil {
			return err
		}
		if err := bld.Declare(tensor); err != nil {
			return err
		}
	}
	for tensor := range bld.Tensors() {
		log.Logger().Debug("tensor declared", "decl", tensor.Decl())
	}
	expr, fset, err := bld.Parse(src)
	if err != nil {
		return err
	}
	sched, err := schedule.New(fset, expr)
	if err != nil {
		return err
	}
	if opts.varName == "" {
		plan, err := lower.Lower(sched)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, plan.String())
		return err
	}
	v, ok := bld.Var(opts.varName)
	if !ok {
		return errors.Errorf("index variable %s not used in %s", opts.varName, expr.String())
	}
	loop, err := lower.Var(sched, v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, loop.String())
	return err
}
