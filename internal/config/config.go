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

// Package config loads the optional YAML run configuration for the
// syntax checker.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Trace configures the parser's trace output.
type Trace struct {
	// Output is the path the trace is written to. Empty means standard
	// output.
	Output string `yaml:"output"`

	// Quiet suppresses the predict/matched trace.
	Quiet bool `yaml:"quiet"`
}

// Config is the run configuration. Command-line flags take precedence
// over values read from a file.
type Config struct {
	// Input is the path of the program to check. Empty means standard
	// input.
	Input string `yaml:"input"`

	Trace Trace `yaml:"trace"`
}

// Default returns the configuration used when no file is given: read
// from standard input, write the full trace to standard output.
func Default() *Config {
	return &Config{}
}

// Load reads a Config from the YAML file at path. Unknown keys are
// rejected. An empty file yields the default configuration.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	defer f.Close()

	cfg := Default()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
