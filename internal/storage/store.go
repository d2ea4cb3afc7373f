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

// Package storage provides the result cache keyed by job id. The pipeline is
// synchronous and does not depend on persistence: the cache only backs the
// read-only results endpoint, so a store failure degrades that endpoint and
// nothing else.
package storage

import (
	"errors"
	"fmt"

	"github.com/repurposeai/content-repurposer/internal/config"
	"github.com/repurposeai/content-repurposer/internal/core/model"
)

// ErrNotFound is returned by Get when no result exists for the job id.
var ErrNotFound = errors.New("result not found")

// ResultStore caches completed analysis results by job id. Implementations
// must be safe for concurrent use; stored results are treated as immutable.
type ResultStore interface {
	// Put caches a completed result under its job id.
	Put(result *model.AnalysisResult) error
	// Get returns the cached result for the job id, or ErrNotFound.
	Get(jobID string) (*model.AnalysisResult, error)
	// Close releases any resources held by the store.
	Close() error
}

// NewResultStore builds the store selected by the configuration.
func NewResultStore(cfg config.Storage) (ResultStore, error) {
	switch cfg.Driver {
	case "", "memory":
		return NewMemoryStore(), nil
	case "badger":
		return NewBadgerStore(cfg.Path)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
