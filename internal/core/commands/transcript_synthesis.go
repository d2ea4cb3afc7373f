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

// This file defines the synthesis command, the sole slow stage of the
// pipeline. It hands the validated upload to the analysis backend behind the
// services.Synthesizer interface and measures how long the backend took; the
// measured duration becomes the processing_time label on the final result.
package commands

import (
	"time"

	"github.com/repurposeai/content-repurposer/internal/core/cor"
	"github.com/repurposeai/content-repurposer/internal/core/model"
	"github.com/repurposeai/content-repurposer/internal/core/services"
)

// TranscriptSynthesis invokes the analysis backend for one validated upload.
type TranscriptSynthesis struct {
	cor.BaseCommand
	synthesizer services.Synthesizer
}

// NewTranscriptSynthesis constructs the synthesis command around the given
// backend. The backend is an interface, so the deterministic reference
// generator and a real inference service are interchangeable here.
func NewTranscriptSynthesis(name string, synthesizer services.Synthesizer) *TranscriptSynthesis {
	out := &TranscriptSynthesis{
		BaseCommand: *cor.NewBaseCommand(name),
		synthesizer: synthesizer,
	}
	out.InputParamName = ValidatedUploadParam
	out.OutputParamName = TranscriptionParam
	return out
}

// Execute calls the backend and publishes the transcription and the elapsed
// synthesis time. A backend failure is recorded as SynthesisFailed and no
// partial output is published.
func (t *TranscriptSynthesis) Execute(context cor.Context) {
	upload := context.Get(t.GetInputParam()).(*model.ValidatedUpload)

	start := time.Now()
	transcription, err := t.synthesizer.Synthesize(context.GetContext(), upload)
	elapsed := time.Since(start)

	if err != nil {
		t.GetErrorCounter().Add(context.GetContext(), 1)
		context.AddError(t.GetName(), model.NewSynthesisFailedError(err))
		return
	}

	t.GetSuccessCounter().Add(context.GetContext(), 1)
	context.Add(t.GetOutputParam(), transcription)
	context.Add(SynthesisElapsedParam, elapsed)
	context.Add(cor.CtxOut, transcription)
}
