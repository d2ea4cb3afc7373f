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

package main

import (
	"log"
	"os"

	"github.com/repurposeai/content-repurposer/internal/config"
	"github.com/repurposeai/content-repurposer/internal/core/services"
	"github.com/repurposeai/content-repurposer/internal/core/workflow"
	"github.com/repurposeai/content-repurposer/internal/storage"
)

// StateManager holds the shared components for the application.
type StateManager struct {
	config   *config.Config
	store    storage.ResultStore
	workflow *workflow.TranscribeWorkflow
}

var state = &StateManager{}

// SetupOS points the config loader at the local TOML files unless the
// environment already says otherwise.
func SetupOS() (err error) {
	if os.Getenv(config.EnvConfigFilePrefix) == "" {
		if err = os.Setenv(config.EnvConfigFilePrefix, "configs"); err != nil {
			return err
		}
	}
	if os.Getenv(config.EnvConfigRuntime) == "" {
		err = os.Setenv(config.EnvConfigRuntime, "local")
	}
	return err
}

// GetConfig loads the application configuration once and caches it.
func GetConfig() *config.Config {
	if state.config == nil {
		if err := SetupOS(); err != nil {
			log.Fatalf("failed to setup env: %v\n", err)
		}
		cfg := config.NewConfig()
		if err := config.LoadConfig(cfg); err != nil {
			log.Fatalf("failed to load config: %v\n", err)
		}
		state.config = cfg
	}
	return state.config
}

// InitState initializes the application state and dependencies: the result
// store selected by the storage driver and the transcription pipeline with
// the deterministic synthesizer behind its rate-limit decorator.
func InitState() {
	cfg := GetConfig()

	store, err := storage.NewResultStore(cfg.Storage)
	if err != nil {
		panic(err)
	}
	state.store = store

	synthesizer := services.NewQuotaAwareSynthesizer(
		services.NewMockSynthesizer(cfg.Synthesizer), cfg.Synthesizer)

	state.workflow = workflow.NewTranscribeWorkflow(cfg, synthesizer, store)
}
