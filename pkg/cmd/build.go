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

	"github.com/consensys/go-vmtrace/pkg/random"
	"github.com/consensys/go-vmtrace/pkg/trace"
	"github.com/consensys/go-vmtrace/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/term"
)

// buildCmd assembles a demonstration execution trace and reports its shape.
var buildCmd = &cobra.Command{
	Use:   "build [flags]",
	Short: "Assemble a demonstration execution trace.",
	Long: `Assemble an execution trace from a synthetic execution record,
randomize its tail rows, build the auxiliary lookup segment, and
print a summary together with a bounded row preview.`,
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		clk := GetUint(cmd, "clk")
		program := GetString(cmd, "program")
		// Derive the binding digest from the demo program bytes.
		programHash := trace.Digest(blake2b.Sum256([]byte(program)))
		//
		stats := util.NewPerfStats()
		//
		executionTrace, err := trace.NewExecutionTrace(demoRecord(clk, programHash))
		if err != nil {
			log.Fatal(err)
		}
		//
		stats.Log("trace assembly")
		//
		layout := executionTrace.Layout()
		fmt.Printf("trace length: %d rows\n", executionTrace.Length())
		fmt.Printf("main segment: %d columns\n", layout.MainWidth())
		fmt.Printf("aux segments: %d\n", layout.NumAuxSegments())
		// Emulate the verifier's post-commitment challenge.
		challenge, err := random.NewCoin(programHash[:]).Draw()
		if err != nil {
			log.Fatal(err)
		}
		//
		auxSegment, err := executionTrace.BuildAuxSegment(nil, []trace.Felt{challenge})
		if err != nil {
			log.Fatal(err)
		}
		//
		fmt.Printf("aux segment 0: %d column(s), final product %s\n",
			auxSegment.NumCols(), auxSegment.Get(0, executionTrace.Length()-trace.NumRandRows-1))
		//
		printPreview(executionTrace, GetUint(cmd, "rows"))
	},
}

// printPreview prints the first few and last rows of the main segment,
// clamping the number of columns to the terminal width when attached to one.
func printPreview(executionTrace *trace.ExecutionTrace, rows uint) {
	var (
		segment = executionTrace.MainSegment()
		width   = segment.NumCols()
		// Assume eight characters per printed cell.
		maxCols = width
	)
	//
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && uint(w/8) < maxCols {
			maxCols = uint(w / 8)
		}
	}
	//
	if rows > executionTrace.Length() {
		rows = executionTrace.Length()
	}
	//
	for i := uint(0); i < rows; i++ {
		// Fold in the final (randomized) row at the end of the preview.
		row := i
		if i == rows-1 {
			row = executionTrace.Length() - 1
			fmt.Println("...")
		}
		//
		fmt.Printf("%4d |", row)
		//
		for col := uint(0); col < maxCols; col++ {
			fmt.Printf(" %7.7s", segment.Get(col, row).String())
		}
		//
		fmt.Println()
	}
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().Uint("clk", 16, "number of executed cycles to simulate")
	buildCmd.Flags().String("program", "demo", "program bytes used to derive the binding digest")
	buildCmd.Flags().Uint("rows", 8, "number of rows to include in the preview")
}
