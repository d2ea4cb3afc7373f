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

package commands

import (
	"log/slog"

	"github.com/repurposeai/content-repurposer/internal/core/cor"
	"github.com/repurposeai/content-repurposer/internal/core/model"
	"github.com/repurposeai/content-repurposer/internal/storage"
)

// ResultPersist writes the assembled result into the result cache so the
// results endpoint can serve it later. The cache is best-effort: a write
// failure is logged and counted but never fails the request, since the
// caller already holds the full result in the response.
type ResultPersist struct {
	cor.BaseCommand
	store storage.ResultStore
}

// NewResultPersist constructs the persistence command around the given store.
func NewResultPersist(name string, store storage.ResultStore) *ResultPersist {
	out := &ResultPersist{BaseCommand: *cor.NewBaseCommand(name), store: store}
	out.InputParamName = ResultParam
	return out
}

// Execute caches the result, logging any store failure.
func (p *ResultPersist) Execute(context cor.Context) {
	result := context.Get(p.GetInputParam()).(*model.AnalysisResult)

	if err := p.store.Put(result); err != nil {
		p.GetErrorCounter().Add(context.GetContext(), 1)
		slog.ErrorContext(context.GetContext(), "failed to cache analysis result",
			"job_id", result.ProjectID, "error", err)
		return
	}
	p.GetSuccessCounter().Add(context.GetContext(), 1)
}
