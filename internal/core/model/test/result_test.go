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

// Package model_test contains unit tests for the data models. This file
// covers the AnalysisResult wire schema: serializing and parsing a result
// must lose nothing, and the JSON field names must stay exactly what the web
// client consumes.
package model_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/repurposeai/content-repurposer/internal/core/model"
)

// fullResult returns an AnalysisResult with every field populated, so a
// round trip exercises the whole schema.
func fullResult() *model.AnalysisResult {
	return &model.AnalysisResult{
		ProjectID: "0d9bd2a5-4f5e-4b38-9dd3-0f223f6b2c55",
		Transcription: &model.Transcription{
			Text:       "Ceci est une transcription.",
			Duration:   "2:30",
			Language:   "fr",
			Confidence: 0.96,
			Filename:   "demo.mp4",
			Speakers: []*model.Speaker{
				{ID: 1, Name: "Locuteur 1", Segments: 12},
				{ID: 2, Name: "Locuteur 2", Segments: 8},
			},
			Keywords:  []string{"intelligence artificielle", "transcription"},
			Summary:   "Discussion sur la transcription automatisée.",
			Sentiment: "positive",
			Topics:    []string{"Technologie", "IA"},
			SocialPosts: map[string]string{
				"twitter":  "post twitter",
				"linkedin": "post linkedin",
				"facebook": "post facebook",
			},
		},
		Status:         model.StatusCompleted,
		ProcessingTime: "2.3s",
		FileInfo: &model.FileInfo{
			Filename:          "demo.mp4",
			EstimatedSize:     "2.0 MB",
			EstimatedDuration: "2:30",
			Format:            "MP4",
		},
		AIAnalysis: &model.AIAnalysis{
			ContentType:          "educational",
			EngagementScore:      8.7,
			ViralPotential:       "high",
			RecommendedPlatforms: []string{"YouTube", "LinkedIn", "TikTok"},
			BestPostingTimes:     []string{"9:00 AM", "1:00 PM", "7:00 PM"},
		},
		NextSteps: []string{"Générer des clips courts", "Optimiser pour le SEO"},
	}
}

// TestAnalysisResultJSONRoundTrip serializes a fully populated result and
// parses it back, asserting deep equality with the original.
func TestAnalysisResultJSONRoundTrip(t *testing.T) {
	original := fullResult()

	data, err := json.Marshal(original)
	assert.NoError(t, err)

	var parsed model.AnalysisResult
	assert.NoError(t, json.Unmarshal(data, &parsed))

	assert.Equal(t, original, &parsed)
}

// TestAnalysisResultWireFieldNames checks the exact JSON keys of the public
// contract, in particular the camelCase socialPosts key inside the otherwise
// snake_case envelope.
func TestAnalysisResultWireFieldNames(t *testing.T) {
	data, err := json.Marshal(fullResult())
	assert.NoError(t, err)

	var raw map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(data, &raw))
	for _, key := range []string{
		"project_id", "transcription", "status", "processing_time",
		"file_info", "ai_analysis", "next_steps",
	} {
		assert.Contains(t, raw, key)
	}

	var transcription map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(raw["transcription"], &transcription))
	assert.Contains(t, transcription, "socialPosts")
	assert.NotContains(t, transcription, "social_posts")

	var fileInfo map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(raw["file_info"], &fileInfo))
	assert.Contains(t, fileInfo, "estimated_size")
	assert.Contains(t, fileInfo, "estimated_duration")

	var analysis map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(raw["ai_analysis"], &analysis))
	assert.Contains(t, analysis, "engagement_score")
	assert.Contains(t, analysis, "viral_potential")
	assert.Contains(t, analysis, "recommended_platforms")
	assert.Contains(t, analysis, "best_posting_times")
}
