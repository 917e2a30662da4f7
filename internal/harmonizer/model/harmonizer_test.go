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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPairHash_OrderIndependent(t *testing.T) {
	assert.Equal(t, PairHash("q-a", "q-b"), PairHash("q-b", "q-a"))
	assert.NotEqual(t, PairHash("q-a", "q-b"), PairHash("q-a", "q-c"))
}

func TestDecide_Combine(t *testing.T) {
	h := &FrequencyHarmonizer{
		QuestionID1:        "q1",
		QuestionID2:        "q2",
		ResolutionStrategy: StrategyCombine,
	}

	// Collision point: both questions go out together.
	assert.Equal(t, AskBoth, h.Decide(12, 4, 6))
	// Non-collision points keep each question's own cadence.
	assert.Equal(t, AskFirst, h.Decide(4, 4, 6))
	assert.Equal(t, AskSecond, h.Decide(6, 4, 6))
	assert.Equal(t, AskNeither, h.Decide(5, 4, 6))
}

func TestDecide_Priority(t *testing.T) {
	priorityID := "q2"
	h := &FrequencyHarmonizer{
		QuestionID1:        "q1",
		QuestionID2:        "q2",
		ResolutionStrategy: StrategyPriority,
		PriorityQuestionID: &priorityID,
	}

	// Q1 freq 10, Q2 freq 15, collision at 30: only the designated question runs.
	assert.Equal(t, AskSecond, h.Decide(30, 10, 15))
	// Away from collisions each cadence still triggers on its own.
	assert.Equal(t, AskFirst, h.Decide(10, 10, 15))
	assert.Equal(t, AskSecond, h.Decide(15, 10, 15))
}

func TestDecide_PriorityFavorsFirst(t *testing.T) {
	priorityID := "q1"
	h := &FrequencyHarmonizer{
		QuestionID1:        "q1",
		QuestionID2:        "q2",
		ResolutionStrategy: StrategyPriority,
		PriorityQuestionID: &priorityID,
	}

	assert.Equal(t, AskFirst, h.Decide(30, 10, 15))
}

func TestDecide_Alternate(t *testing.T) {
	h := &FrequencyHarmonizer{
		QuestionID1:        "q1",
		QuestionID2:        "q2",
		ResolutionStrategy: StrategyAlternate,
	}

	// lcm(4,6)=12. Collision index 1 favors question 1, index 2 favors question 2.
	assert.Equal(t, AskFirst, h.Decide(12, 4, 6))
	assert.Equal(t, AskSecond, h.Decide(24, 4, 6))
	assert.Equal(t, AskFirst, h.Decide(36, 4, 6))
}

func TestDecide_Custom(t *testing.T) {
	custom := 8
	h := &FrequencyHarmonizer{
		QuestionID1:        "q1",
		QuestionID2:        "q2",
		ResolutionStrategy: StrategyCustom,
		CustomFrequency:    &custom,
	}

	// The custom cadence replaces both originals entirely.
	assert.Equal(t, AskBoth, h.Decide(8, 4, 6))
	assert.Equal(t, AskBoth, h.Decide(16, 4, 6))
	assert.Equal(t, AskNeither, h.Decide(4, 4, 6))
	assert.Equal(t, AskNeither, h.Decide(6, 4, 6))
	assert.Equal(t, AskNeither, h.Decide(12, 4, 6))
}

func TestValidStrategy(t *testing.T) {
	assert.True(t, ValidStrategy(StrategyCombine))
	assert.True(t, ValidStrategy(StrategyPriority))
	assert.True(t, ValidStrategy(StrategyAlternate))
	assert.True(t, ValidStrategy(StrategyCustom))
	assert.False(t, ValidStrategy("merge"))
	assert.False(t, ValidStrategy(""))
}
