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

// Package ratelimit provides a sliding-window request limiter backed by an
// injected counter store.
package ratelimit

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"
	"time"

	errors2 "github.com/vocalia/customer-feedback-service/internal/system/errors"
	"github.com/vocalia/customer-feedback-service/internal/system/log"
)

// Limiter enforces a per-key request budget over a sliding window.
type Limiter struct {
	store  CounterStore
	limit  int
	window time.Duration
}

// NewLimiter creates a limiter over the given counter store.
func NewLimiter(store CounterStore, limit int, window time.Duration) *Limiter {
	return &Limiter{
		store:  store,
		limit:  limit,
		window: window,
	}
}

// Allow records a hit for the key and reports whether it stays within the budget.
func (l *Limiter) Allow(key string) bool {
	return l.store.Record(key, time.Now(), l.window) <= l.limit
}

// Middleware rejects requests exceeding the limiter's budget with 429.
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := ClientKey(r)
		if !l.Allow(key) {
			log.GetLogger().Warn("Request rate limit exceeded", log.String("client", key))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(errors2.RATE_LIMIT_EXCEEDED)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ClientKey derives the limiter key for a request, preferring the forwarded
// client address when the service sits behind a proxy.
func ClientKey(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		return strings.TrimSpace(parts[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
