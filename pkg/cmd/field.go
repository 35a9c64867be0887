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
	"math/big"
	"os"

	"github.com/spf13/cobra"

	"github.com/fagan2888/gruntz/pkg/domain/finitefield"
)

// fieldCmd reduces a rational constant into GF(p) and prints the residue,
// a quick way to sanity-check two rationals the canonicaliser could not
// itself prove distinct really do (or do not) collide mod p.
var fieldCmd = &cobra.Command{
	Use:   "field [rational]",
	Short: "Reduce a rational constant into the prime field GF(p) used for spot-checking equality.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		r, ok := new(big.Rat).SetString(args[0])
		if !ok {
			fmt.Fprintf(os.Stderr, "field: %q is not a valid rational\n", args[0])
			os.Exit(2)
		}
		elem, err := finitefield.FromRat(r)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(elem.String())
	},
}

func init() {
	rootCmd.AddCommand(fieldCmd)
}
