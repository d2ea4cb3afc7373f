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

// This file implements the hierarchical configuration loader. It first reads a
// base configuration file and then overwrites values with a second,
// environment-specific file (e.g. .env.local.toml, .env.test.toml). The config
// directory and runtime name are taken from environment variables so that
// tests, local runs, and deployments can point at different overlays without
// code changes.
package config

import (
	"errors"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Constants for configuration loading.
const (
	ConfigFileBaseName  = ".env"                      // The base name for configuration files (e.g. ".env.toml").
	ConfigFileExtension = ".toml"                     // The file extension for configuration files.
	ConfigSeparator     = "."                         // The separator used in config file names (e.g. ".env.local.toml").
	EnvConfigFilePrefix = "REPURPOSER_CONFIG_PREFIX"  // The environment variable for specifying the config directory.
	EnvConfigRuntime    = "REPURPOSER_RUNTIME"        // The environment variable for specifying the runtime context.
)

// fileExists checks if a file or directory exists at the given path.
func fileExists(in string) bool {
	_, err := os.Stat(in)
	return !errors.Is(err, os.ErrNotExist)
}

// LoadConfig populates the given config struct from the base TOML file and the
// runtime-specific overlay. Values from the overlay overwrite the base values.
// Missing files are skipped silently, so the built-in defaults from NewConfig
// survive when no files are present.
//
// Inputs:
//   - baseConfig: a pointer to the target configuration struct that will be
//     populated from the TOML files.
//
// Outputs:
//   - error: a decoding error from either file. A missing file is not an error.
func LoadConfig(baseConfig interface{}) error {
	configurationFilePrefix := os.Getenv(EnvConfigFilePrefix)
	if len(configurationFilePrefix) > 0 && !strings.HasSuffix(configurationFilePrefix, string(os.PathSeparator)) {
		configurationFilePrefix = configurationFilePrefix + string(os.PathSeparator)
	}

	// Default to "test" when no runtime is set, mirroring how the test suite runs.
	runtimeEnvironment := os.Getenv(EnvConfigRuntime)
	if runtimeEnvironment == "" {
		runtimeEnvironment = "test"
	}

	baseConfigFileName := configurationFilePrefix + ConfigFileBaseName + ConfigFileExtension
	envConfigFileName := configurationFilePrefix + ConfigFileBaseName + ConfigSeparator + runtimeEnvironment + ConfigFileExtension
	slog.Info("loading configuration", "base", baseConfigFileName, "overlay", envConfigFileName)

	if fileExists(baseConfigFileName) {
		if _, err := toml.DecodeFile(baseConfigFileName, baseConfig); err != nil {
			return err
		}
	}

	if fileExists(envConfigFileName) {
		if _, err := toml.DecodeFile(envConfigFileName, baseConfig); err != nil {
			return err
		}
	}
	return nil
}
