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

package model

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/vocalia/customer-feedback-service/internal/harmonizer/freq"
)

// Resolution strategies for a conflicting question pair.
const (
	StrategyCombine   = "combine"
	StrategyPriority  = "priority"
	StrategyAlternate = "alternate"
	StrategyCustom    = "custom"
)

// ValidStrategy reports whether the given strategy name is recognized.
func ValidStrategy(strategy string) bool {
	switch strategy {
	case StrategyCombine, StrategyPriority, StrategyAlternate, StrategyCustom:
		return true
	}
	return false
}

// FrequencyHarmonizer is a persisted operator decision resolving how a detected
// conflict between two questions is handled at serving time. CustomFrequency is
// set only for the custom strategy; PriorityQuestionID only for the priority
// strategy and must reference one of the pair's two questions. Validation at
// the service layer enforces both.
type FrequencyHarmonizer struct {
	HarmonizerID       string  `json:"id"`
	BusinessID         string  `json:"business_id"`
	RuleID             string  `json:"rule_id"`
	QuestionPairHash   string  `json:"question_pair_hash"`
	QuestionID1        string  `json:"question_id_1"`
	QuestionID2        string  `json:"question_id_2"`
	ResolutionStrategy string  `json:"resolution_strategy"`
	CustomFrequency    *int    `json:"custom_frequency,omitempty"`
	PriorityQuestionID *string `json:"priority_question_id,omitempty"`
	CreatedAt          int64   `json:"created_at"`
	UpdatedAt          int64   `json:"updated_at"`
}

// PairHash computes the order-independent identity of a question pair, so that
// resolving (A,B) is indistinguishable from resolving (B,A).
func PairHash(questionID1, questionID2 string) string {
	lo, hi := questionID1, questionID2
	if lo > hi {
		lo, hi = hi, lo
	}
	sum := sha256.Sum256([]byte(lo + "|" + hi))
	return hex.EncodeToString(sum[:])
}

// Decision is the serving-time outcome for one customer sequence number.
type Decision int

const (
	AskNeither Decision = iota
	AskFirst
	AskSecond
	AskBoth
)

// Decide applies the harmonizer to a customer sequence number given the pair's
// original frequencies, and determines which of the two questions to present.
//
// The custom strategy replaces both cadences outright: the pair triggers
// together on multiples of the custom frequency and never otherwise. For the
// remaining strategies, non-collision points follow each question's own
// cadence; collision points resolve by strategy. Alternation is keyed on the
// collision index (customer / lcm): odd indexes favor question 1, even indexes
// favor question 2.
func (h *FrequencyHarmonizer) Decide(customer, freq1, freq2 int) Decision {

	if h.ResolutionStrategy == StrategyCustom {
		if h.CustomFrequency != nil && customer%*h.CustomFrequency == 0 {
			return AskBoth
		}
		return AskNeither
	}

	hit1 := customer%freq1 == 0
	hit2 := customer%freq2 == 0

	switch {
	case hit1 && hit2:
		switch h.ResolutionStrategy {
		case StrategyCombine:
			return AskBoth
		case StrategyPriority:
			if h.PriorityQuestionID != nil && *h.PriorityQuestionID == h.QuestionID2 {
				return AskSecond
			}
			return AskFirst
		case StrategyAlternate:
			if (customer/freq.LCM(freq1, freq2))%2 == 1 {
				return AskFirst
			}
			return AskSecond
		}
		return AskNeither
	case hit1:
		return AskFirst
	case hit2:
		return AskSecond
	}
	return AskNeither
}
