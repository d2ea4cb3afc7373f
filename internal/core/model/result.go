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

// This file defines AnalysisResult, the durable output unit of the pipeline,
// and its nested structures. The JSON field names form the public wire
// contract consumed by the web client; renaming any of them is a breaking
// change and requires a version bump.
package model

// Result status values. A request is synchronous, so no in-progress status
// is ever serialized.
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Speaker identifies one detected voice in the transcript, with a display
// label and the number of segments attributed to it.
type Speaker struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Segments int    `json:"segments"`
}

// Transcription holds the substantive analysis content produced by the
// synthesizer: the transcript text plus everything derived from it.
//
// SocialPosts always contains entries for exactly the platform set the
// synthesizer supports ("twitter", "linkedin", "facebook" in the reference
// implementation); the key set is stable across results.
type Transcription struct {
	Text        string            `json:"text"`
	Duration    string            `json:"duration"` // "M:SS" label, e.g. "2:30".
	Language    string            `json:"language"`
	Confidence  float64           `json:"confidence"` // Always within [0, 1].
	Filename    string            `json:"filename"`
	Speakers    []*Speaker        `json:"speakers"`
	Keywords    []string          `json:"keywords"`
	Summary     string            `json:"summary"`
	Sentiment   string            `json:"sentiment"` // "positive", "negative", "neutral", or another label.
	Topics      []string          `json:"topics"`
	SocialPosts map[string]string `json:"socialPosts"`
}

// FileInfo carries the request-derived file metadata echoed back to the
// caller. Format is the uppercased allow-listed extension without the dot.
type FileInfo struct {
	Filename          string `json:"filename"`
	EstimatedSize     string `json:"estimated_size"`
	EstimatedDuration string `json:"estimated_duration"`
	Format            string `json:"format"`
}

// AIAnalysis carries the engagement scoring and distribution recommendations
// attached to every result. EngagementScore stays within [0, 10] and
// ViralPotential is one of "low", "medium", "high".
type AIAnalysis struct {
	ContentType          string   `json:"content_type"`
	EngagementScore      float64  `json:"engagement_score"`
	ViralPotential       string   `json:"viral_potential"`
	RecommendedPlatforms []string `json:"recommended_platforms"`
	BestPostingTimes     []string `json:"best_posting_times"`
}

// AnalysisResult is the complete response envelope for one accepted job. It
// is immutable once assembled: the pipeline retains no reference after
// returning it, and the result store only ever serializes it.
type AnalysisResult struct {
	ProjectID      string         `json:"project_id"` // Opaque unique job id, assigned once, never reused.
	Transcription  *Transcription `json:"transcription"`
	Status         string         `json:"status"`
	ProcessingTime string         `json:"processing_time"` // Human-readable duration of the synthesis stage, e.g. "2.3s".
	FileInfo       *FileInfo      `json:"file_info"`
	AIAnalysis     *AIAnalysis    `json:"ai_analysis"`
	NextSteps      []string       `json:"next_steps"`
}
