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

package freq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLCM(t *testing.T) {
	tests := []struct {
		name     string
		a, b     int
		expected int
	}{
		{"equal inputs", 7, 7, 7},
		{"coprime inputs", 5, 7, 35},
		{"shared factor", 4, 6, 12},
		{"one divides the other", 3, 12, 12},
		{"unit frequency", 1, 9, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LCM(tt.a, tt.b))
			assert.Equal(t, tt.expected, LCM(tt.b, tt.a), "lcm is symmetric")
		})
	}
}

func TestLCM_GCDProduct(t *testing.T) {
	// lcm(a,b) * gcd(a,b) == a*b for positive pairs.
	for a := 1; a <= 30; a++ {
		for b := 1; b <= 30; b++ {
			assert.Equal(t, a*b, LCM(a, b)*GCD(a, b), "a=%d b=%d", a, b)
		}
	}
}

func TestCollisions(t *testing.T) {
	tests := []struct {
		name         string
		freq1, freq2 int
		bound        int
		expected     []int
	}{
		{"2 and 3 up to 12", 2, 3, 12, []int{6, 12}},
		{"4 and 6 up to 24", 4, 6, 24, []int{12, 24}},
		{"coprime 5 and 7", 5, 7, 50, []int{35}},
		{"no collision within bound", 5, 7, 30, []int{}},
		{"bound equal to lcm", 4, 6, 12, []int{12}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Collisions(tt.freq1, tt.freq2, tt.bound))
		})
	}
}

func TestCollisions_MatchesModuloScan(t *testing.T) {
	// Multiple generation must agree with the brute-force modulo definition.
	for _, pair := range [][2]int{{2, 3}, {4, 6}, {5, 7}, {10, 15}, {1, 1}} {
		freq1, freq2 := pair[0], pair[1]
		expected := []int{}
		for c := 1; c <= 100; c++ {
			if c%freq1 == 0 && c%freq2 == 0 {
				expected = append(expected, c)
			}
		}
		assert.Equal(t, expected, Collisions(freq1, freq2, 100), "pair %v", pair)
	}
}

func TestDetectConflicts_RatioCutoff(t *testing.T) {
	opts := DetectorOptions{ScanBound: 100, RatioCutoff: 10}

	// Ratio 50 exceeds the cutoff even though the pair collides at customer 50.
	far := []Cadence{{QuestionID: "q1", Frequency: 1}, {QuestionID: "q2", Frequency: 50}}
	assert.Empty(t, DetectConflicts(far, opts))

	// Ratio 1.4 is within the cutoff; the pair collides at 35 and 70.
	near := []Cadence{{QuestionID: "q1", Frequency: 5}, {QuestionID: "q2", Frequency: 7}}
	conflicts := DetectConflicts(near, opts)
	require.Len(t, conflicts, 1)
	assert.Equal(t, 35, conflicts[0].LCMFrequency)
	assert.Equal(t, []int{35, 70}, conflicts[0].ConflictCustomers)
}

func TestDetectConflicts_NoCollisionWithinBound(t *testing.T) {
	opts := DetectorOptions{ScanBound: 30, RatioCutoff: 10}
	cadences := []Cadence{{QuestionID: "q1", Frequency: 5}, {QuestionID: "q2", Frequency: 7}}

	// lcm is 35, past the scan bound, so the pair is not reported.
	assert.Empty(t, DetectConflicts(cadences, opts))
}

func TestDetectConflicts_PairEnumerationOrder(t *testing.T) {
	opts := DetectorOptions{ScanBound: 100, RatioCutoff: 10}
	cadences := []Cadence{
		{QuestionID: "a", Frequency: 2},
		{QuestionID: "b", Frequency: 4},
		{QuestionID: "c", Frequency: 6},
	}

	conflicts := DetectConflicts(cadences, opts)
	require.Len(t, conflicts, 3)
	assert.Equal(t, "a", conflicts[0].QuestionID1)
	assert.Equal(t, "b", conflicts[0].QuestionID2)
	assert.Equal(t, "a", conflicts[1].QuestionID1)
	assert.Equal(t, "c", conflicts[1].QuestionID2)
	assert.Equal(t, "b", conflicts[2].QuestionID1)
	assert.Equal(t, "c", conflicts[2].QuestionID2)
}

func TestDetectConflicts_EndToEndPair(t *testing.T) {
	opts := DetectorOptions{ScanBound: 100, RatioCutoff: 10}
	cadences := []Cadence{
		{QuestionID: "q1", Frequency: 10},
		{QuestionID: "q2", Frequency: 15},
	}

	conflicts := DetectConflicts(cadences, opts)
	require.Len(t, conflicts, 1)
	assert.Equal(t, 30, conflicts[0].LCMFrequency)
	assert.Equal(t, []int{30, 60, 90}, conflicts[0].ConflictCustomers)
}
