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

// Package freq holds the frequency math behind conflict detection: GCD/LCM,
// collision enumeration over customer sequence numbers, and the pairwise
// conflict scan. All inputs are positive integers; callers guarantee that
// through request validation.
package freq

// GCD computes the greatest common divisor by Euclidean remainder recursion.
func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM computes the least common multiple of two positive integers.
func LCM(a, b int) int {
	return a / GCD(a, b) * b
}

// Collisions returns the ascending customer sequence numbers in [1, maxCustomers]
// at which both cadences trigger. These are exactly the multiples of the pair's LCM.
func Collisions(freq1, freq2, maxCustomers int) []int {
	collisions := []int{}
	step := LCM(freq1, freq2)
	for c := step; c <= maxCustomers; c += step {
		collisions = append(collisions, c)
	}
	return collisions
}

// Cadence is the minimal view of a question the detector needs.
type Cadence struct {
	QuestionID string
	Frequency  int
}

// Conflict describes a colliding pair of question cadences. ConflictCustomers
// is an ascending preview of collision points capped by the scan bound.
type Conflict struct {
	QuestionID1       string
	QuestionID2       string
	Frequency1        int
	Frequency2        int
	LCMFrequency      int
	ConflictCustomers []int
}

// DetectorOptions tunes the conflict scan. The scan bound caps the collision
// preview; the ratio cutoff excludes pairs whose cadences are too far apart
// to matter in practice.
type DetectorOptions struct {
	ScanBound   int
	RatioCutoff int
}

// DetectConflicts scans all unordered pairs of the given cadences and returns
// the pairs that collide within the scan bound and whose frequency ratio does
// not exceed the cutoff. Output order follows the pair enumeration (i
// ascending, then j > i) so results are stable for a given input order.
func DetectConflicts(cadences []Cadence, opts DetectorOptions) []Conflict {
	conflicts := []Conflict{}
	for i := 0; i < len(cadences); i++ {
		for j := i + 1; j < len(cadences); j++ {
			q1, q2 := cadences[i], cadences[j]
			if !withinRatio(q1.Frequency, q2.Frequency, opts.RatioCutoff) {
				continue
			}
			collisions := Collisions(q1.Frequency, q2.Frequency, opts.ScanBound)
			if len(collisions) == 0 {
				continue
			}
			conflicts = append(conflicts, Conflict{
				QuestionID1:       q1.QuestionID,
				QuestionID2:       q2.QuestionID,
				Frequency1:        q1.Frequency,
				Frequency2:        q2.Frequency,
				LCMFrequency:      LCM(q1.Frequency, q2.Frequency),
				ConflictCustomers: collisions,
			})
		}
	}
	return conflicts
}

// withinRatio reports whether max(a,b)/min(a,b) <= cutoff, without
// floating-point division.
func withinRatio(a, b, cutoff int) bool {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	return hi <= lo*cutoff
}
