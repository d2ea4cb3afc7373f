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

// Package commands provides the concrete Command implementations of the
// transcription pipeline: upload validation, job identity allocation,
// transcript synthesis, result assembly, and result persistence. This file
// defines the shared context parameter keys the commands use to hand data to
// one another inside a workflow chain.
package commands

// Context parameter keys shared across the pipeline commands.
const (
	// ValidatedUploadParam holds the *model.ValidatedUpload produced by the validator.
	ValidatedUploadParam = "__validated_upload__"
	// JobIDParam holds the job identifier string produced by the allocator.
	JobIDParam = "__job_id__"
	// TranscriptionParam holds the *model.Transcription produced by the synthesis command.
	TranscriptionParam = "__transcription__"
	// SynthesisElapsedParam holds the time.Duration the synthesis stage took.
	SynthesisElapsedParam = "__synthesis_elapsed__"
	// ResultParam holds the final *model.AnalysisResult produced by the assembler.
	ResultParam = "__analysis_result__"
)
