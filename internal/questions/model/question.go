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

// Question is a catalog entry asked on an "every Nth customer" cadence.
type Question struct {
	QuestionID    string `json:"id"`
	BusinessID    string `json:"business_id"`
	RuleID        string `json:"rule_id"`
	Text          string `json:"text"`
	Frequency     int    `json:"frequency"`
	Category      string `json:"category"`
	PriorityLevel int    `json:"priority_level"`
	IsActive      bool   `json:"is_active"`
	CreatedAt     int64  `json:"created_at"`
	UpdatedAt     int64  `json:"updated_at"`
}

// QuestionAPIRequest is the creation payload.
type QuestionAPIRequest struct {
	RuleID        string `json:"rule_id"`
	Text          string `json:"text"`
	Frequency     int    `json:"frequency"`
	Category      string `json:"category"`
	PriorityLevel int    `json:"priority_level"`
	IsActive      *bool  `json:"is_active,omitempty"`
}

// QuestionUpdateRequest carries partial updates; nil fields are left unchanged.
type QuestionUpdateRequest struct {
	Text          *string `json:"text,omitempty"`
	Frequency     *int    `json:"frequency,omitempty"`
	Category      *string `json:"category,omitempty"`
	PriorityLevel *int    `json:"priority_level,omitempty"`
	IsActive      *bool   `json:"is_active,omitempty"`
}

// QuestionAPIResponse is the representation returned to clients.
type QuestionAPIResponse struct {
	QuestionID    string `json:"id"`
	RuleID        string `json:"rule_id"`
	Text          string `json:"text"`
	Frequency     int    `json:"frequency"`
	Category      string `json:"category"`
	PriorityLevel int    `json:"priority_level"`
	IsActive      bool   `json:"is_active"`
}

// ToAPIResponse converts a question record into its API representation.
func (q *Question) ToAPIResponse() QuestionAPIResponse {
	return QuestionAPIResponse{
		QuestionID:    q.QuestionID,
		RuleID:        q.RuleID,
		Text:          q.Text,
		Frequency:     q.Frequency,
		Category:      q.Category,
		PriorityLevel: q.PriorityLevel,
		IsActive:      q.IsActive,
	}
}
