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

// Package workflow assembles the pipeline commands into executable chains.
// This file implements the transcription workflow, the end-to-end path from
// one parsed upload request to one immutable analysis result.
package workflow

import (
	"context"
	"fmt"

	"github.com/repurposeai/content-repurposer/internal/config"
	"github.com/repurposeai/content-repurposer/internal/core/commands"
	"github.com/repurposeai/content-repurposer/internal/core/cor"
	"github.com/repurposeai/content-repurposer/internal/core/model"
	"github.com/repurposeai/content-repurposer/internal/core/services"
	"github.com/repurposeai/content-repurposer/internal/storage"
)

// TranscribeWorkflow orchestrates the analysis of one uploaded file. It is a
// fail-fast chain: validation gates everything, a job id is only allocated
// for accepted uploads, and a failure in any command ends the run with that
// command's error.
type TranscribeWorkflow struct {
	cor.BaseCommand
	chain cor.Chain
}

// NewTranscribeWorkflow wires the pipeline commands into a chain.
//
// Inputs:
//   - cfg: the application configuration supplying the upload policy and the
//     reference analysis values.
//   - synthesizer: the analysis backend. The reference deployment passes the
//     deterministic generator wrapped in the rate-limit decorator.
//   - store: the result cache written after assembly.
func NewTranscribeWorkflow(cfg *config.Config, synthesizer services.Synthesizer, store storage.ResultStore) *TranscribeWorkflow {
	out := cor.NewBaseChain("transcribe-workflow")

	// Step 1: apply the upload policy. The validator is the sole gate; no
	// later command sees an unvalidated request.
	out.AddCommand(commands.NewUploadValidator("validate-upload", cfg.Upload))

	// Step 2: allocate the job identity for the accepted upload.
	out.AddCommand(commands.NewJobAllocator("allocate-job-id"))

	// Step 3: synthesize the transcription and derived analysis content.
	// This is the only slow command and the only one that honors caller
	// cancellation mid-flight.
	out.AddCommand(commands.NewTranscriptSynthesis("synthesize-transcript", synthesizer))

	// Step 4: assemble the immutable response envelope from the outputs of
	// steps 1-3.
	out.AddCommand(commands.NewResultAssembler("assemble-result", cfg.Analysis))

	// Step 5: cache the result by job id for the results endpoint.
	out.AddCommand(commands.NewResultPersist("cache-result", store))

	return &TranscribeWorkflow{
		BaseCommand: *cor.NewBaseCommand("transcribe-pipeline"),
		chain:       out,
	}
}

// Execute runs the underlying chain. Exposed so the workflow composes into
// larger chains like any other command.
func (w *TranscribeWorkflow) Execute(context cor.Context) {
	w.chain.Execute(context)
}

// Run executes the workflow for one upload request and returns either the
// assembled result or the error of the failing command. It owns the chain
// context for the call; the request never escapes the pipeline.
func (w *TranscribeWorkflow) Run(ctx context.Context, req *model.UploadRequest) (*model.AnalysisResult, error) {
	chainCtx := cor.NewBaseContext()
	chainCtx.SetContext(ctx)
	chainCtx.Add(cor.CtxIn, req)

	w.chain.Execute(chainCtx)

	if chainCtx.HasErrors() {
		return nil, model.AsPipelineError(chainCtx.FirstError())
	}

	result, ok := chainCtx.Get(commands.ResultParam).(*model.AnalysisResult)
	if !ok {
		return nil, model.NewInternalError(fmt.Errorf("workflow completed without a result"))
	}
	return result, nil
}
