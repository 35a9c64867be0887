// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fagan2888/gruntz/pkg/expr"
	"github.com/fagan2888/gruntz/pkg/limit"
)

// limitCmd computes lim_{var -> point} e for an expression given as an
// s-expression, e.g.:
//
//	gruntz limit --var x --point +oo "(* (exp x) (^ x -1))"
var limitCmd = &cobra.Command{
	Use:   "limit [expression]",
	Short: "Compute the limit of an s-expression as a named variable tends to a point.",
	Long: `limit parses its argument as an s-expression over +, -, *, ^, exp
and ln, and computes its limit as --var tends to --point (a rational
constant, or +oo) from the right. A point of -oo is rejected.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		varName := GetString(cmd, "var")
		pointStr := GetString(cmd, "point")
		vars := map[string]*expr.Symbol{varName: expr.NewSymbol(varName)}
		e, err := expr.ParseSExp(args[0], vars)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		point, err := parsePoint(pointStr)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		result, err := limit.Limit(limit.Request{
			Expr:  e,
			Var:   vars[varName],
			Point: point,
			Dir:   "+",
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(result.String())
	},
}

func parsePoint(s string) (expr.Expr, error) {
	switch s {
	case "+oo", "oo", "inf":
		return expr.PosInfinity, nil
	case "-oo", "-inf":
		return expr.NegInfinity, nil
	default:
		return expr.ParseSExp(s, nil)
	}
}

func init() {
	rootCmd.AddCommand(limitCmd)
	limitCmd.Flags().String("var", "x", "name of the limit variable")
	limitCmd.Flags().String("point", "+oo", "point the limit variable tends to: +oo or a rational constant (-oo is rejected)")
}
