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

// This file implements a decorator around the Synthesizer interface that adds
// rate limiting and bounded retries. Hosted transcription and inference
// services enforce request quotas; the decorator keeps the pipeline inside
// those quotas and absorbs transient backend failures, without the wrapped
// implementation knowing it is being throttled.
package services

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/repurposeai/content-repurposer/internal/config"
	"github.com/repurposeai/content-repurposer/internal/core/model"
)

// QuotaAwareSynthesizer wraps another Synthesizer with a token-bucket rate
// limiter and a bounded retry loop.
type QuotaAwareSynthesizer struct {
	wrapped    Synthesizer
	limiter    *rate.Limiter
	maxRetries int
}

// NewQuotaAwareSynthesizer decorates the given synthesizer. The limiter
// admits requestsPerSecond calls per second with an equal burst, matching the
// per-second quota model of hosted inference APIs.
func NewQuotaAwareSynthesizer(wrapped Synthesizer, cfg config.Synthesizer) *QuotaAwareSynthesizer {
	rps := cfg.RateLimitPerSecond
	if rps <= 0 {
		rps = 1
	}
	retries := cfg.MaxRetries
	if retries < 0 {
		retries = 0
	}
	return &QuotaAwareSynthesizer{
		wrapped:    wrapped,
		limiter:    rate.NewLimiter(rate.Limit(rps), rps),
		maxRetries: retries,
	}
}

// Synthesize blocks until the rate limiter admits the call, then delegates to
// the wrapped synthesizer, retrying transient failures with a short backoff.
// Context cancellation ends both the limiter wait and the retry loop.
func (q *QuotaAwareSynthesizer) Synthesize(ctx context.Context, upload *model.ValidatedUpload) (*model.Transcription, error) {
	if err := q.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 0; attempt <= q.maxRetries; attempt++ {
		out, err := q.wrapped.Synthesize(ctx, upload)
		if err == nil {
			return out, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			// The caller is gone; retrying would only burn quota.
			return nil, err
		}
		select {
		case <-time.After(time.Duration(attempt+1) * 100 * time.Millisecond):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return nil, lastErr
}
