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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// writeConfig writes contents to a temp file and returns its path.
func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "calccheck.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		contents string
		expected *Config
	}{
		{
			name: "full config",
			contents: `input: program.calc
trace:
  output: trace.out
  quiet: true
`,
			expected: &Config{
				Input: "program.calc",
				Trace: Trace{Output: "trace.out", Quiet: true},
			},
		},
		{
			name:     "partial config keeps defaults",
			contents: "input: program.calc\n",
			expected: &Config{Input: "program.calc"},
		},
		{
			name:     "empty file yields defaults",
			contents: "",
			expected: Default(),
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := Load(writeConfig(t, tc.contents))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("Load (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoad_unknownKey(t *testing.T) {
	t.Parallel()

	_, err := Load(writeConfig(t, "inptu: oops\n"))
	if err == nil {
		t.Fatal("want error for unknown key, got nil")
	}
}

func TestLoad_missingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("want error for missing file, got nil")
	}
}
