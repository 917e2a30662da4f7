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

package integration

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vocalia/customer-feedback-service/internal/questions/model"
	"github.com/vocalia/customer-feedback-service/internal/questions/service"
)

func newQuestion(businessID, ruleID, text string, frequency, priority int) model.Question {
	now := time.Now().UTC().Unix()
	return model.Question{
		QuestionID:    uuid.New().String(),
		BusinessID:    businessID,
		RuleID:        ruleID,
		Text:          text,
		Frequency:     frequency,
		Category:      "nps",
		PriorityLevel: priority,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func Test_QuestionCatalog(t *testing.T) {
	svc := service.GetQuestionService()
	businessID := "acme"
	ruleID := "rule-catalog"

	q1 := newQuestion(businessID, ruleID, "How satisfied are you?", 10, 3)
	q2 := newQuestion(businessID, ruleID, "Would you recommend us?", 15, 4)

	t.Run("Add_questions", func(t *testing.T) {
		require.NoError(t, svc.AddQuestion(q1))
		require.NoError(t, svc.AddQuestion(q2))
	})

	t.Run("Add_question_rejects_invalid_frequency", func(t *testing.T) {
		bad := newQuestion(businessID, ruleID, "Bad cadence", 0, 3)
		assert.Error(t, svc.AddQuestion(bad))
	})

	t.Run("Add_question_rejects_invalid_priority", func(t *testing.T) {
		bad := newQuestion(businessID, ruleID, "Bad priority", 10, 6)
		assert.Error(t, svc.AddQuestion(bad))
	})

	t.Run("Get_questions_by_rule", func(t *testing.T) {
		questions, err := svc.GetQuestionsByRule(businessID, ruleID)
		require.NoError(t, err)
		assert.Len(t, questions, 2)
	})

	t.Run("Get_single_question", func(t *testing.T) {
		fetched, err := svc.GetQuestion(businessID, q1.QuestionID)
		require.NoError(t, err)
		assert.Equal(t, q1.Text, fetched.Text)
		assert.Equal(t, 10, fetched.Frequency)
	})

	t.Run("Question_is_scoped_to_business", func(t *testing.T) {
		_, err := svc.GetQuestion("other-business", q1.QuestionID)
		assert.Error(t, err)
	})

	t.Run("Patch_question_frequency", func(t *testing.T) {
		frequency := 20
		err := svc.PatchQuestion(businessID, q1.QuestionID, model.QuestionUpdateRequest{
			Frequency: &frequency,
		})
		require.NoError(t, err)

		updated, err := svc.GetQuestion(businessID, q1.QuestionID)
		require.NoError(t, err)
		assert.Equal(t, 20, updated.Frequency)
	})

	t.Run("Delete_question", func(t *testing.T) {
		require.NoError(t, svc.DeleteQuestion(businessID, q2.QuestionID))

		_, err := svc.GetQuestion(businessID, q2.QuestionID)
		assert.Error(t, err)
	})

	t.Run("Delete_missing_question_errors", func(t *testing.T) {
		assert.Error(t, svc.DeleteQuestion(businessID, uuid.New().String()))
	})
}
