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

// Package config defines the data structures for application configuration,
// loaded from TOML files. Configuration is read once at startup, is immutable
// afterward, and is passed explicitly into the components that need it:
// the upload policy into the validator, the synthesizer settings into the
// mock backend, and the reference analysis values into the result assembler.
//
// Structs:
//   - Upload: size limit and extension allow-list enforced before any work starts.
//   - Synthesizer: knobs for the deterministic reference backend.
//   - Analysis: the fixed ai_analysis and next_steps values attached to every result.
//   - Storage: selection of the result cache driver.
//   - Config: the top-level struct that aggregates all other configuration structs.
package config

// Upload holds the validation policy applied to every incoming file before
// a job id is allocated or any synthesis work is performed.
type Upload struct {
	MaxFileSizeBytes  int64    `toml:"max_file_size_bytes"` // Upper bound on the uploaded file size. Default is 100 MiB.
	AllowedExtensions []string `toml:"allowed_extensions"`  // Lowercase extensions without the leading dot, e.g. "mp4".
}

// Synthesizer holds the settings for the reference analysis backend. A real
// inference backend would ignore most of these but must honor the rate limit.
type Synthesizer struct {
	Language               string `toml:"language"`                 // BCP-47-ish language code stamped on every transcript.
	DefaultDurationSeconds int    `toml:"default_duration_seconds"` // Assumed media length when none can be probed.
	SimulatedLatencyMillis int    `toml:"simulated_latency_millis"` // Artificial processing delay of the mock. Zero in tests.
	RateLimitPerSecond     int    `toml:"rate_limit_per_second"`    // Requests per second admitted to the backend.
	MaxRetries             int    `toml:"max_retries"`              // Attempts against the backend before giving up.
}

// Analysis carries the reference scoring and recommendation values that the
// assembler attaches to each result. They are configuration, not derived from
// the transcript.
type Analysis struct {
	ContentType          string   `toml:"content_type"`
	EngagementScore      float64  `toml:"engagement_score"` // Must stay within [0, 10].
	ViralPotential       string   `toml:"viral_potential"`  // One of "low", "medium", "high".
	RecommendedPlatforms []string `toml:"recommended_platforms"`
	BestPostingTimes     []string `toml:"best_posting_times"`
	NextSteps            []string `toml:"next_steps"`
}

// Storage selects the result cache implementation keyed by job id.
type Storage struct {
	Driver string `toml:"driver"` // "memory" or "badger".
	Path   string `toml:"path"`   // Directory for the badger driver. Ignored by the memory driver.
}

// Config represents the overall configuration for the application, loaded
// from TOML files. It acts as the root container for all other configuration
// structs.
type Config struct {
	// Application holds general application settings.
	Application struct {
		Name        string `toml:"name"`        // The service name reported by /health and telemetry.
		Version     string `toml:"version"`     // The service version reported by /health.
		Environment string `toml:"environment"` // "development" enables diagnostic detail in error envelopes.
		Port        int    `toml:"port"`        // TCP port the HTTP server binds.
	} `toml:"application"`
	Upload      Upload      `toml:"upload"`
	Synthesizer Synthesizer `toml:"synthesizer"`
	Analysis    Analysis    `toml:"analysis"`
	Storage     Storage     `toml:"storage"`
}

// IsDevelopment reports whether the service runs with development-mode error
// reporting, which is the only mode allowed to leak diagnostic detail.
func (c *Config) IsDevelopment() bool {
	return c.Application.Environment == "development"
}

// NewConfig is a constructor function that creates a new Config instance
// populated with the reference defaults. Values from the TOML files overwrite
// these defaults, so a missing or partial configuration file still yields a
// runnable service.
//
// Outputs:
//   - *Config: A pointer to a new Config struct carrying the reference defaults.
func NewConfig() *Config {
	c := &Config{}
	c.Application.Name = "Content Repurposer IA API"
	c.Application.Version = "2.0.0"
	c.Application.Environment = "production"
	c.Application.Port = 8080
	c.Upload = Upload{
		MaxFileSizeBytes:  100 * 1024 * 1024,
		AllowedExtensions: []string{"mp4", "avi", "mov", "webm", "mkv", "flv"},
	}
	c.Synthesizer = Synthesizer{
		Language:               "fr",
		DefaultDurationSeconds: 150,
		SimulatedLatencyMillis: 2000,
		RateLimitPerSecond:     5,
		MaxRetries:             3,
	}
	c.Analysis = Analysis{
		ContentType:          "educational",
		EngagementScore:      8.7,
		ViralPotential:       "high",
		RecommendedPlatforms: []string{"YouTube", "LinkedIn", "TikTok"},
		BestPostingTimes:     []string{"9:00 AM", "1:00 PM", "7:00 PM"},
		NextSteps: []string{
			"Générer des clips courts",
			"Créer des visuels pour les réseaux sociaux",
			"Optimiser pour le SEO",
			"Programmer la publication",
		},
	}
	c.Storage = Storage{Driver: "memory", Path: "data"}
	return c
}
