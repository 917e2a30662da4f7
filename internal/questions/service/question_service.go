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

package service

import (
	"fmt"
	"net/http"

	"github.com/vocalia/customer-feedback-service/internal/questions/model"
	"github.com/vocalia/customer-feedback-service/internal/questions/store"
	"github.com/vocalia/customer-feedback-service/internal/system/constants"
	errors2 "github.com/vocalia/customer-feedback-service/internal/system/errors"
)

type QuestionServiceInterface interface {
	AddQuestion(question model.Question) error
	GetQuestionsByRule(businessID, ruleID string) ([]model.Question, error)
	GetQuestion(businessID, questionID string) (*model.Question, error)
	PatchQuestion(businessID, questionID string, updates model.QuestionUpdateRequest) error
	DeleteQuestion(businessID, questionID string) error
}

// QuestionService is the default implementation of the QuestionServiceInterface.
type QuestionService struct{}

// GetQuestionService creates a new instance of QuestionService.
func GetQuestionService() QuestionServiceInterface {

	return &QuestionService{}
}

// AddQuestion validates and persists a new catalog question.
func (qs *QuestionService) AddQuestion(question model.Question) error {

	if question.Text == "" || question.RuleID == "" {
		return errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.BAD_REQUEST.Code,
			Message:     errors2.BAD_REQUEST.Message,
			Description: "Question text and rule_id are required.",
		}, http.StatusBadRequest)
	}
	if question.Frequency < 1 {
		return errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.INVALID_FREQUENCY.Code,
			Message:     errors2.INVALID_FREQUENCY.Message,
			Description: errors2.INVALID_FREQUENCY.Description,
		}, http.StatusBadRequest)
	}
	if question.PriorityLevel < constants.MinPriorityLevel || question.PriorityLevel > constants.MaxPriorityLevel {
		return errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.INVALID_PRIORITY_LEVEL.Code,
			Message:     errors2.INVALID_PRIORITY_LEVEL.Message,
			Description: errors2.INVALID_PRIORITY_LEVEL.Description,
		}, http.StatusBadRequest)
	}

	return store.AddQuestion(question)
}

// GetQuestionsByRule fetches all questions configured for a rule.
func (qs *QuestionService) GetQuestionsByRule(businessID, ruleID string) ([]model.Question, error) {

	return store.GetQuestionsByRule(businessID, ruleID)
}

// GetQuestion fetches a specific question, scoped to the business.
func (qs *QuestionService) GetQuestion(businessID, questionID string) (*model.Question, error) {

	question, err := store.GetQuestion(questionID)
	if err != nil {
		return nil, err
	}
	if question == nil || question.BusinessID != businessID {
		return nil, notFoundError(questionID)
	}
	return question, nil
}

// PatchQuestion applies a partial update after validating the changed fields.
func (qs *QuestionService) PatchQuestion(businessID, questionID string, updates model.QuestionUpdateRequest) error {

	if _, err := qs.GetQuestion(businessID, questionID); err != nil {
		return err
	}

	fields := map[string]interface{}{}
	if updates.Text != nil {
		if *updates.Text == "" {
			return errors2.NewClientError(errors2.ErrorMessage{
				Code:        errors2.BAD_REQUEST.Code,
				Message:     errors2.BAD_REQUEST.Message,
				Description: "Question text cannot be empty.",
			}, http.StatusBadRequest)
		}
		fields["question_text"] = *updates.Text
	}
	if updates.Frequency != nil {
		if *updates.Frequency < 1 {
			return errors2.NewClientError(errors2.ErrorMessage{
				Code:        errors2.INVALID_FREQUENCY.Code,
				Message:     errors2.INVALID_FREQUENCY.Message,
				Description: errors2.INVALID_FREQUENCY.Description,
			}, http.StatusBadRequest)
		}
		fields["frequency"] = *updates.Frequency
	}
	if updates.Category != nil {
		fields["category"] = *updates.Category
	}
	if updates.PriorityLevel != nil {
		if *updates.PriorityLevel < constants.MinPriorityLevel || *updates.PriorityLevel > constants.MaxPriorityLevel {
			return errors2.NewClientError(errors2.ErrorMessage{
				Code:        errors2.INVALID_PRIORITY_LEVEL.Code,
				Message:     errors2.INVALID_PRIORITY_LEVEL.Message,
				Description: errors2.INVALID_PRIORITY_LEVEL.Description,
			}, http.StatusBadRequest)
		}
		fields["priority_level"] = *updates.PriorityLevel
	}
	if updates.IsActive != nil {
		fields["is_active"] = *updates.IsActive
	}

	if len(fields) == 0 {
		return errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.BAD_REQUEST.Code,
			Message:     errors2.BAD_REQUEST.Message,
			Description: "No updatable fields provided.",
		}, http.StatusBadRequest)
	}

	return store.PatchQuestion(businessID, questionID, fields)
}

// DeleteQuestion removes a question. Deleting a missing question is an error.
func (qs *QuestionService) DeleteQuestion(businessID, questionID string) error {

	if _, err := qs.GetQuestion(businessID, questionID); err != nil {
		return err
	}
	return store.DeleteQuestion(businessID, questionID)
}

func notFoundError(questionID string) error {
	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.QUESTION_NOT_FOUND.Code,
		Message:     errors2.QUESTION_NOT_FOUND.Message,
		Description: fmt.Sprintf("No question found with id %s", questionID),
	}, http.StatusNotFound)
}
