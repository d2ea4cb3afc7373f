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

// This file tests the rate-limit and retry decorator around the synthesizer.
package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/repurposeai/content-repurposer/internal/config"
	"github.com/repurposeai/content-repurposer/internal/core/model"
	"github.com/repurposeai/content-repurposer/internal/core/services"
)

// flakySynthesizer fails a fixed number of calls before succeeding, counting
// every attempt it receives.
type flakySynthesizer struct {
	failures int
	calls    int
}

func (f *flakySynthesizer) Synthesize(_ context.Context, upload *model.ValidatedUpload) (*model.Transcription, error) {
	f.calls++
	if f.calls <= f.failures {
		return nil, errors.New("backend unavailable")
	}
	return &model.Transcription{Filename: upload.Filename}, nil
}

// TestQuotaAwarePassthrough checks that a healthy backend is called exactly
// once and its output is returned unchanged.
func TestQuotaAwarePassthrough(t *testing.T) {
	backend := &flakySynthesizer{failures: 0}
	decorated := services.NewQuotaAwareSynthesizer(backend, config.Synthesizer{
		RateLimitPerSecond: 100,
		MaxRetries:         3,
	})

	out, err := decorated.Synthesize(context.Background(), &model.ValidatedUpload{Filename: "demo.mp4"})
	assert.NoError(t, err)
	assert.Equal(t, "demo.mp4", out.Filename)
	assert.Equal(t, 1, backend.calls)
}

// TestQuotaAwareRetriesTransientFailures checks that transient failures are
// retried up to the configured bound and the first success wins.
func TestQuotaAwareRetriesTransientFailures(t *testing.T) {
	backend := &flakySynthesizer{failures: 2}
	decorated := services.NewQuotaAwareSynthesizer(backend, config.Synthesizer{
		RateLimitPerSecond: 100,
		MaxRetries:         3,
	})

	out, err := decorated.Synthesize(context.Background(), &model.ValidatedUpload{Filename: "demo.mp4"})
	assert.NoError(t, err)
	assert.NotNil(t, out)
	assert.Equal(t, 3, backend.calls)
}

// TestQuotaAwareExhaustsRetries checks that a persistently failing backend
// surfaces its last error after maxRetries+1 attempts.
func TestQuotaAwareExhaustsRetries(t *testing.T) {
	backend := &flakySynthesizer{failures: 100}
	decorated := services.NewQuotaAwareSynthesizer(backend, config.Synthesizer{
		RateLimitPerSecond: 100,
		MaxRetries:         2,
	})

	_, err := decorated.Synthesize(context.Background(), &model.ValidatedUpload{Filename: "demo.mp4"})
	assert.Error(t, err)
	assert.Equal(t, 3, backend.calls)
}

// TestQuotaAwareCanceledContext checks that a canceled context is rejected
// at the limiter before the backend sees the call.
func TestQuotaAwareCanceledContext(t *testing.T) {
	backend := &flakySynthesizer{}
	decorated := services.NewQuotaAwareSynthesizer(backend, config.Synthesizer{
		RateLimitPerSecond: 1,
		MaxRetries:         0,
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := decorated.Synthesize(ctx, &model.ValidatedUpload{Filename: "demo.mp4"})
	assert.Error(t, err)
	assert.Equal(t, 0, backend.calls)
}
