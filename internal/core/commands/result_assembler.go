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

// This file defines the result assembly step. AssembleResult is a pure
// function: it combines the job id, the validated upload metadata, the
// synthesized transcription, and the measured synthesis time into the final
// immutable AnalysisResult. It performs no I/O and never mutates its inputs;
// reference values from configuration are copied, not aliased, so a result
// can outlive any later configuration reload.
package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/repurposeai/content-repurposer/internal/config"
	"github.com/repurposeai/content-repurposer/internal/core/cor"
	"github.com/repurposeai/content-repurposer/internal/core/model"
)

// referenceEstimatedSize is the size label used when the declared byte size
// is unknown, matching the reference deployment's fixed value.
const referenceEstimatedSize = "45.2 MB"

// AssembleResult builds the response envelope for one completed job.
//
// Inputs:
//   - jobID: the opaque identifier allocated for this job.
//   - upload: the validated upload metadata. Read only.
//   - transcription: the synthesizer output. Read only.
//   - elapsed: the measured duration of the synthesis stage.
//   - ref: the configured reference analysis values.
//
// Outputs:
//   - *model.AnalysisResult: a freshly allocated, fully populated result.
func AssembleResult(
	jobID string,
	upload *model.ValidatedUpload,
	transcription *model.Transcription,
	elapsed time.Duration,
	ref config.Analysis) *model.AnalysisResult {

	return &model.AnalysisResult{
		ProjectID:      jobID,
		Transcription:  transcription,
		Status:         model.StatusCompleted,
		ProcessingTime: fmt.Sprintf("%.1fs", elapsed.Seconds()),
		FileInfo: &model.FileInfo{
			Filename:          upload.Filename,
			EstimatedSize:     estimatedSizeLabel(upload.ByteSize),
			EstimatedDuration: transcription.Duration,
			Format:            strings.ToUpper(upload.Extension),
		},
		AIAnalysis: &model.AIAnalysis{
			ContentType:          ref.ContentType,
			EngagementScore:      ref.EngagementScore,
			ViralPotential:       ref.ViralPotential,
			RecommendedPlatforms: copyStrings(ref.RecommendedPlatforms),
			BestPostingTimes:     copyStrings(ref.BestPostingTimes),
		},
		NextSteps: copyStrings(ref.NextSteps),
	}
}

// estimatedSizeLabel renders the declared byte size as a one-decimal
// megabyte label, falling back to the reference constant when the size was
// not declared.
func estimatedSizeLabel(byteSize int64) string {
	if byteSize <= 0 {
		return referenceEstimatedSize
	}
	return fmt.Sprintf("%.1f MB", float64(byteSize)/(1024*1024))
}

func copyStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// ResultAssembler is the command wrapper around AssembleResult. It gathers
// the named outputs of the earlier commands from the context and publishes
// the finished result under ResultParam.
type ResultAssembler struct {
	cor.BaseCommand
	reference config.Analysis
}

// NewResultAssembler constructs the assembly command with the configured
// reference analysis values.
func NewResultAssembler(name string, reference config.Analysis) *ResultAssembler {
	out := &ResultAssembler{BaseCommand: *cor.NewBaseCommand(name), reference: reference}
	out.OutputParamName = ResultParam
	return out
}

// IsExecutable requires every upstream output to be present.
func (a *ResultAssembler) IsExecutable(context cor.Context) bool {
	return context != nil &&
		context.Get(JobIDParam) != nil &&
		context.Get(ValidatedUploadParam) != nil &&
		context.Get(TranscriptionParam) != nil &&
		context.Get(SynthesisElapsedParam) != nil
}

// Execute assembles the final result from the upstream outputs.
func (a *ResultAssembler) Execute(context cor.Context) {
	jobID := context.Get(JobIDParam).(string)
	upload := context.Get(ValidatedUploadParam).(*model.ValidatedUpload)
	transcription := context.Get(TranscriptionParam).(*model.Transcription)
	elapsed := context.Get(SynthesisElapsedParam).(time.Duration)

	result := AssembleResult(jobID, upload, transcription, elapsed, a.reference)

	a.GetSuccessCounter().Add(context.GetContext(), 1)
	context.Add(a.GetOutputParam(), result)
	context.Add(cor.CtxOut, result)
}
