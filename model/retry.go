// Copyright 2026 The NLP Odyssey Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package model

import (
	"cmp"
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/openai/openai-go/v3"
)

// RetryPolicy configures automatic retries of failed model invocations.
// The zero value applies no retries and no timeout: the model is invoked
// exactly once with the caller's context.
type RetryPolicy struct {
	// Maximum number of retries after the first failed attempt.
	// Zero or negative means failures are returned immediately.
	MaxRetries int

	// Base delay for the first backoff.
	// Default: 1 second.
	BaseDelay time.Duration

	// Maximum delay for backoff growth.
	// Default: 30 seconds.
	MaxDelay time.Duration

	// Timeout applied to each single attempt.
	// Zero means no per-attempt timeout.
	Timeout time.Duration
}

// Wrap returns a Model that applies the policy around m.
// A policy with no retries and no timeout returns m unchanged.
func (p RetryPolicy) Wrap(m Model) Model {
	if p.MaxRetries <= 0 && p.Timeout <= 0 {
		return m
	}
	return NewRetryModel(p, m)
}

// RetryModel invokes another Model, retrying transient failures with
// exponential backoff, and applying a per-attempt timeout.
type RetryModel struct {
	model  Model
	policy RetryPolicy
}

func NewRetryModel(policy RetryPolicy, m Model) *RetryModel {
	if policy.MaxRetries > 0 {
		policy.BaseDelay = cmp.Or(policy.BaseDelay, 1*time.Second)
		policy.MaxDelay = cmp.Or(policy.MaxDelay, 30*time.Second)
	}
	return &RetryModel{
		model:  m,
		policy: policy,
	}
}

func (m *RetryModel) Invoke(ctx context.Context, prompt string) (string, error) {
	// Exponential backoff loop
	attempt := 0
	delay := m.policy.BaseDelay
	for {
		attempt += 1

		response, err := m.invokeOnce(ctx, prompt)
		if err == nil {
			return response, nil
		}

		if attempt > m.policy.MaxRetries || isPermanentAPIError(err) || ctx.Err() != nil {
			return "", err
		}

		slog.Warn(
			"Model invocation failed, retrying",
			slog.Int("attempt", attempt),
			slog.String("error", err.Error()),
		)

		// Exponential backoff + jitter
		sleepTime := delay
		if jitterRange := int64(delay / 10); jitterRange > 0 {
			sleepTime += time.Duration(rand.Int64N(jitterRange)) // 10% jitter
		}
		timer := time.NewTimer(sleepTime)
		select {
		case <-ctx.Done():
			timer.Stop()
			return "", ctx.Err()
		case <-timer.C:
		}
		delay = min(delay*2, m.policy.MaxDelay)
	}
}

func (m *RetryModel) invokeOnce(ctx context.Context, prompt string) (string, error) {
	if m.policy.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.policy.Timeout)
		defer cancel()
	}
	return m.model.Invoke(ctx, prompt)
}

// isPermanentAPIError reports whether err is an API error that would fail
// again if retried. Client errors (4xx) are permanent, except for request
// timeouts (408) and rate limits (429).
func isPermanentAPIError(err error) bool {
	var apiErr *openai.Error
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.StatusCode {
	case http.StatusRequestTimeout, http.StatusTooManyRequests:
		return false
	}
	return apiErr.StatusCode >= 400 && apiErr.StatusCode < 500
}
