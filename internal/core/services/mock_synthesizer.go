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

// This file implements the deterministic reference synthesizer. It stands in
// for a real transcription and NLP backend and reproduces the content of the
// original deployment: French transcript text with the filename interpolated,
// a fixed speaker list, keywords, summary, sentiment, topics, and one social
// post draft per supported platform.
//
// Determinism is a contract, not an accident: given the same filename and
// duration setting, two calls return deep-equal transcriptions. The test
// suite relies on this property.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/repurposeai/content-repurposer/internal/config"
	"github.com/repurposeai/content-repurposer/internal/core/model"
)

const transcriptTemplate = `Ceci est une transcription IA générée pour le fichier "%s".

L'intelligence artificielle a analysé le contenu audio et vidéo pour produire cette transcription de haute qualité.
Le système peut détecter plusieurs langues, identifier les locuteurs, et extraire les informations clés du contenu.

Cette technologie révolutionnaire permet de transformer automatiquement n'importe quel contenu vidéo en:
- Transcriptions précises
- Résumés intelligents
- Posts pour réseaux sociaux
- Articles de blog
- Clips vidéo optimisés

L'avenir de la création de contenu est là!`

// MockSynthesizer is the deterministic reference implementation of the
// Synthesizer interface. A configurable artificial latency simulates the
// processing time of a real backend; the test configuration sets it to zero.
type MockSynthesizer struct {
	cfg config.Synthesizer
}

// NewMockSynthesizer returns a reference synthesizer configured with the
// given settings.
func NewMockSynthesizer(cfg config.Synthesizer) *MockSynthesizer {
	return &MockSynthesizer{cfg: cfg}
}

// Synthesize produces the full reference transcription for the upload. The
// only inputs that influence the output are the filename and the configured
// default duration. The simulated latency respects context cancellation, so
// a caller that hangs up does not keep the request goroutine waiting.
func (s *MockSynthesizer) Synthesize(ctx context.Context, upload *model.ValidatedUpload) (*model.Transcription, error) {
	if s.cfg.SimulatedLatencyMillis > 0 {
		select {
		case <-time.After(time.Duration(s.cfg.SimulatedLatencyMillis) * time.Millisecond):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return &model.Transcription{
		Text:       fmt.Sprintf(transcriptTemplate, upload.Filename),
		Duration:   DurationLabel(s.cfg.DefaultDurationSeconds),
		Language:   s.cfg.Language,
		Confidence: 0.96,
		Filename:   upload.Filename,
		Speakers: []*model.Speaker{
			{ID: 1, Name: "Locuteur 1", Segments: 12},
			{ID: 2, Name: "Locuteur 2", Segments: 8},
		},
		Keywords: []string{
			"intelligence artificielle", "transcription", "contenu", "technologie", "révolutionnaire",
		},
		Summary:   "Discussion sur les technologies révolutionnaires de transcription et de création de contenu automatisée.",
		Sentiment: "positive",
		Topics:    []string{"Technologie", "IA", "Contenu numérique", "Innovation"},
		SocialPosts: map[string]string{
			"twitter":  "🚀 L'IA révolutionne la création de contenu! Transformez vos vidéos en contenu engageant automatiquement. #IA #Content #Innovation",
			"linkedin": "L'intelligence artificielle transforme notre façon de créer du contenu. Cette technologie révolutionnaire permet de générer automatiquement des transcriptions, résumés et posts optimisés à partir de n'importe quelle vidéo.",
			"facebook": "Découvrez comment l'IA peut transformer vos vidéos en contenu viral! 🎥✨ Transcriptions automatiques, résumés intelligents et posts optimisés pour tous vos réseaux sociaux.",
		},
	}, nil
}
