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

// FrequencyHarmonizerAPIRequest is the creation payload.
type FrequencyHarmonizerAPIRequest struct {
	RuleID             string  `json:"rule_id"`
	QuestionID1        string  `json:"question_id_1"`
	QuestionID2        string  `json:"question_id_2"`
	ResolutionStrategy string  `json:"resolution_strategy"`
	CustomFrequency    *int    `json:"custom_frequency,omitempty"`
	PriorityQuestionID *string `json:"priority_question_id,omitempty"`
}

// FrequencyHarmonizerAPIResponse is the representation returned to clients.
type FrequencyHarmonizerAPIResponse struct {
	HarmonizerID       string  `json:"id"`
	RuleID             string  `json:"rule_id"`
	QuestionID1        string  `json:"question_id_1"`
	QuestionID2        string  `json:"question_id_2"`
	ResolutionStrategy string  `json:"resolution_strategy"`
	CustomFrequency    *int    `json:"custom_frequency,omitempty"`
	PriorityQuestionID *string `json:"priority_question_id,omitempty"`
}

// FrequencyConflictAPIResponse is one detected conflict, annotated with whether
// a harmonizer already resolves the pair.
type FrequencyConflictAPIResponse struct {
	QuestionID1       string `json:"question_id_1"`
	QuestionID2       string `json:"question_id_2"`
	Frequency1        int    `json:"frequency_1"`
	Frequency2        int    `json:"frequency_2"`
	LCMFrequency      int    `json:"lcm_frequency"`
	ConflictCustomers []int  `json:"conflict_customers"`
	Resolved          bool   `json:"resolved"`
	HarmonizerID      string `json:"harmonizer_id,omitempty"`
}

// ToAPIResponse converts a harmonizer record into its API representation.
func (h *FrequencyHarmonizer) ToAPIResponse() FrequencyHarmonizerAPIResponse {
	return FrequencyHarmonizerAPIResponse{
		HarmonizerID:       h.HarmonizerID,
		RuleID:             h.RuleID,
		QuestionID1:        h.QuestionID1,
		QuestionID2:        h.QuestionID2,
		ResolutionStrategy: h.ResolutionStrategy,
		CustomFrequency:    h.CustomFrequency,
		PriorityQuestionID: h.PriorityQuestionID,
	}
}
