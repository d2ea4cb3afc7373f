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

package storage

import (
	"sync"

	"github.com/repurposeai/content-repurposer/internal/core/model"
)

// MemoryStore is the in-process ResultStore used by default and in tests.
// Results live for the lifetime of the process.
type MemoryStore struct {
	mu      sync.RWMutex
	results map[string]*model.AnalysisResult
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{results: make(map[string]*model.AnalysisResult)}
}

// Put caches the result under its job id.
func (s *MemoryStore) Put(result *model.AnalysisResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[result.ProjectID] = result
	return nil
}

// Get returns the cached result for the job id, or ErrNotFound.
func (s *MemoryStore) Get(jobID string) (*model.AnalysisResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result, ok := s.results[jobID]
	if !ok {
		return nil, ErrNotFound
	}
	return result, nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}
