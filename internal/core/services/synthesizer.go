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

// Package services contains the analysis backend behind the pipeline. The
// Synthesizer interface is the substitution point for a real speech-to-text
// and NLP service: the validator, assembler, and transport never see anything
// but this interface, so swapping the deterministic reference generator for
// an inference-backed implementation touches no other code.
package services

import (
	"context"
	"fmt"

	"github.com/repurposeai/content-repurposer/internal/core/model"
)

// Synthesizer produces the substantive analysis content for one validated
// upload. Synthesize is the sole slow stage of the pipeline; implementations
// must honor ctx cancellation so an aborted caller frees resources.
//
// A failure returns a nil transcription and a non-nil error; no partial
// result is ever produced.
type Synthesizer interface {
	Synthesize(ctx context.Context, upload *model.ValidatedUpload) (*model.Transcription, error)
}

// DurationLabel formats a length in seconds as the "M:SS" label used
// throughout the result schema, e.g. 150 -> "2:30".
func DurationLabel(totalSeconds int) string {
	return fmt.Sprintf("%d:%02d", totalSeconds/60, totalSeconds%60)
}
