/*
 * Copyright (c) 2026, Vocalia Inc. (https://vocalia.io).
 *
 * Vocalia Inc. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vocalia/customer-feedback-service/internal/system/log"
)

func TestMain(m *testing.M) {
	_ = log.Init("ERROR")
	os.Exit(m.Run())
}

func TestAllow_WithinBudget(t *testing.T) {
	limiter := NewLimiter(NewMemoryCounterStore(), 3, time.Minute)

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"), "fourth hit should exceed the budget")
}

func TestAllow_KeysAreIndependent(t *testing.T) {
	limiter := NewLimiter(NewMemoryCounterStore(), 1, time.Minute)

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.2"), "other clients keep their own budget")
}

func TestRecord_WindowSlides(t *testing.T) {
	store := NewMemoryCounterStore()
	base := time.Now()

	assert.Equal(t, 1, store.Record("k", base, time.Minute))
	assert.Equal(t, 2, store.Record("k", base.Add(30*time.Second), time.Minute))
	// The first hit falls out of the window ending 90s after base.
	assert.Equal(t, 2, store.Record("k", base.Add(90*time.Second), time.Minute))
}

func TestRecord_KeepsHitAtWindowEdge(t *testing.T) {
	store := NewMemoryCounterStore()
	base := time.Now()

	assert.Equal(t, 1, store.Record("k", base, time.Minute))
	// A hit aged exactly one window is still counted.
	assert.Equal(t, 2, store.Record("k", base.Add(time.Minute), time.Minute))
	// One instant later it is pruned.
	assert.Equal(t, 2, store.Record("k", base.Add(time.Minute+time.Nanosecond), time.Minute))
}

func TestReset_DropsHits(t *testing.T) {
	store := NewMemoryCounterStore()
	now := time.Now()

	store.Record("k", now, time.Minute)
	store.Record("k", now, time.Minute)
	store.Reset("k")
	assert.Equal(t, 1, store.Record("k", now, time.Minute))
}

func TestMiddleware_RejectsWith429(t *testing.T) {
	limiter := NewLimiter(NewMemoryCounterStore(), 1, time.Minute)
	handler := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	first := httptest.NewRequest(http.MethodGet, "/", nil)
	first.RemoteAddr = "10.0.0.1:51234"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, first)
	require.Equal(t, http.StatusOK, rec.Code)

	second := httptest.NewRequest(http.MethodGet, "/", nil)
	second.RemoteAddr = "10.0.0.1:51235"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, second)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestClientKey_PrefersForwardedHeader(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "10.0.0.1:51234"
	r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")

	assert.Equal(t, "203.0.113.7", ClientKey(r))
}
