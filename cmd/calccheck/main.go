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

package main

import (
	"fmt"
	"os"

	"github.com/varunkumar0520/CSC-254---A2/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		// The diagnostic is a single line on stderr; trace lines
		// already written remain valid output.
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
