// Copyright 2023 Varun Kumar
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cli wires the source/scanner/parser pipeline to the command
// line.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/varunkumar0520/CSC-254---A2/internal/config"
	"github.com/varunkumar0520/CSC-254---A2/internal/parser"
	"github.com/varunkumar0520/CSC-254---A2/internal/scanner"
	"github.com/varunkumar0520/CSC-254---A2/internal/source"
)

// NewRootCmd creates the calccheck command.
func NewRootCmd() *cobra.Command {
	var (
		configPath string
		outputPath string
		quiet      bool
	)

	cmd := &cobra.Command{
		Use:   "calccheck [file]",
		Short: "Predictive syntax checker for the calculator language",
		Long: `calccheck checks the syntax of a calculator-language program and
prints a trace of every grammar production predicted and every terminal
matched. It reads the program from the given file, or from standard
input when no file is given. The first malformed token aborts the run
with a single diagnostic line.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				var err error
				cfg, err = config.Load(configPath)
				if err != nil {
					return err
				}
			}

			// Flags override the config file.
			if len(args) > 0 {
				cfg.Input = args[0]
			}
			if cmd.Flags().Changed("output") {
				cfg.Trace.Output = outputPath
			}
			if cmd.Flags().Changed("quiet") {
				cfg.Trace.Quiet = quiet
			}

			in := cmd.InOrStdin()
			if cfg.Input != "" {
				f, err := os.Open(cfg.Input)
				if err != nil {
					return fmt.Errorf("opening input: %w", err)
				}
				defer f.Close()
				in = f
			}

			out := cmd.OutOrStdout()
			if cfg.Trace.Output != "" {
				f, err := os.Create(cfg.Trace.Output)
				if err != nil {
					return fmt.Errorf("creating trace output: %w", err)
				}
				defer f.Close()
				out = f
			}

			return check(in, out, parser.Options{Quiet: cfg.Trace.Quiet})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML run configuration")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the trace to a file instead of stdout")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress the predict/matched trace")

	return cmd
}

// check runs the pipeline over in, writing the trace to out.
func check(in io.Reader, out io.Writer, opts parser.Options) error {
	s := scanner.New(source.NewReader(in))
	return parser.New(s, out, opts).Parse()
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
