// Copyright 2025 RepurposeAI, LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package test provides utility functions to support the application's test
// suite: a shared test configuration and small helpers that cut down on
// boilerplate in the package-level suites.
package test

import (
	"log"
	"os"
	"testing"

	"github.com/repurposeai/content-repurposer/internal/config"
)

// StateManager acts as a simple in-memory cache for the application
// configuration during test runs, so the TOML files are read at most once
// per test binary.
type StateManager struct {
	config *config.Config
}

var state = &StateManager{}

// HandleErr fails the test when err is not nil. Convenience to reduce
// boilerplate error checking in tests.
func HandleErr(err error, t *testing.T) {
	t.Helper()
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

// SetupOS points the configuration loader at the test runtime. Test binaries
// run from their package directory, so the configs directory is usually not
// reachable by a fixed relative path; the loader skips missing files and the
// compiled-in defaults apply.
func SetupOS() (err error) {
	err = os.Setenv(config.EnvConfigFilePrefix, "configs")
	if err != nil {
		return err
	}
	err = os.Setenv(config.EnvConfigRuntime, "test")
	return err
}

// GetConfig is a singleton accessor for the test configuration. Whatever the
// TOML files contributed, the knobs that keep the suite fast and
// deterministic are forced afterwards: no simulated latency and the test
// environment name.
func GetConfig() *config.Config {
	if state.config == nil {
		if err := SetupOS(); err != nil {
			log.Fatalf("failed to setup environment for test: %v\n", err)
		}
		cfg := config.NewConfig()
		if err := config.LoadConfig(cfg); err != nil {
			log.Fatalf("failed to load test config: %v\n", err)
		}
		cfg.Application.Environment = "test"
		cfg.Synthesizer.SimulatedLatencyMillis = 0
		cfg.Storage = config.Storage{Driver: "memory"}
		state.config = cfg
	}
	return state.config
}
