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
	"sync"
	"time"
)

// CounterStore abstracts the storage of per-key request hits so the limiter's
// lifetime and sharing are explicit rather than a module-level singleton.
type CounterStore interface {
	// Record registers a hit for the key at the given instant and returns the
	// number of hits still inside the window ending at that instant.
	Record(key string, now time.Time, window time.Duration) int
	// Reset drops all hits recorded for the key.
	Reset(key string)
}

// MemoryCounterStore keeps hit timestamps in process memory.
type MemoryCounterStore struct {
	mutex sync.Mutex
	hits  map[string][]time.Time
}

// NewMemoryCounterStore creates an empty in-memory counter store.
func NewMemoryCounterStore() *MemoryCounterStore {
	return &MemoryCounterStore{
		hits: make(map[string][]time.Time),
	}
}

// Record registers a hit and prunes entries that fell out of the window.
func (s *MemoryCounterStore) Record(key string, now time.Time, window time.Duration) int {

	s.mutex.Lock()
	defer s.mutex.Unlock()

	cutoff := now.Add(-window)
	kept := s.hits[key][:0]
	for _, t := range s.hits[key] {
		// Hits at the cutoff instant are still inside the window.
		if !t.Before(cutoff) {
			kept = append(kept, t)
		}
	}
	kept = append(kept, now)
	s.hits[key] = kept
	return len(kept)
}

// Reset drops all hits recorded for the key.
func (s *MemoryCounterStore) Reset(key string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.hits, key)
}
