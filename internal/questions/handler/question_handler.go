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

package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vocalia/customer-feedback-service/internal/questions/model"
	"github.com/vocalia/customer-feedback-service/internal/questions/provider"
	"github.com/vocalia/customer-feedback-service/internal/system/authn"
	fbcontext "github.com/vocalia/customer-feedback-service/internal/system/context"
	errors2 "github.com/vocalia/customer-feedback-service/internal/system/errors"
	"github.com/vocalia/customer-feedback-service/internal/system/log"
	"github.com/vocalia/customer-feedback-service/internal/system/security"
	"github.com/vocalia/customer-feedback-service/internal/system/utils"
)

type QuestionHandler struct{}

func NewQuestionHandler() *QuestionHandler {

	return &QuestionHandler{}
}

// AddQuestion handles adding a new catalog question.
func (qh *QuestionHandler) AddQuestion(w http.ResponseWriter, r *http.Request) {

	err := security.AuthnAndAuthz(r, "questions:create")
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	var questionInRequest model.QuestionAPIRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&questionInRequest); err != nil {
		clientError := errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.BAD_REQUEST.Code,
			Message:     errors2.BAD_REQUEST.Message,
			Description: utils.HandleDecodeError(err, "question"),
		}, http.StatusBadRequest)
		utils.WriteErrorResponse(w, clientError)
		return
	}

	businessHandle := utils.ExtractBusinessHandleFromPath(r)
	isActive := true
	if questionInRequest.IsActive != nil {
		isActive = *questionInRequest.IsActive
	}

	now := time.Now().UTC().Unix()
	question := model.Question{
		QuestionID:    uuid.New().String(),
		BusinessID:    businessHandle,
		RuleID:        questionInRequest.RuleID,
		Text:          questionInRequest.Text,
		Frequency:     questionInRequest.Frequency,
		Category:      questionInRequest.Category,
		PriorityLevel: questionInRequest.PriorityLevel,
		IsActive:      isActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	questionService := provider.NewQuestionProvider().GetQuestionService()
	if err := questionService.AddQuestion(question); err != nil {
		utils.HandleError(w, err)
		return
	}

	logger := log.GetLogger()
	traceID := fbcontext.GetTraceID(r.Context())
	logger.Audit(log.AuditEvent{
		InitiatorID:   authn.GetUserIDFromRequest(r),
		InitiatorType: log.InitiatorTypeUser,
		TargetID:      question.QuestionID,
		TargetType:    log.TargetTypeQuestion,
		ActionID:      log.ActionAddQuestion,
		TraceID:       traceID,
		Data: map[string]string{
			"business_id": businessHandle,
			"rule_id":     question.RuleID,
		},
	})

	utils.RespondJSON(w, http.StatusCreated, question.ToAPIResponse())
}

// GetQuestions handles fetching all questions of a rule.
func (qh *QuestionHandler) GetQuestions(w http.ResponseWriter, r *http.Request) {

	err := security.AuthnAndAuthz(r, "questions:view")
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	ruleID := r.URL.Query().Get("rule_id")
	if ruleID == "" {
		clientError := errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.BAD_REQUEST.Code,
			Message:     errors2.BAD_REQUEST.Message,
			Description: "Query parameter rule_id is required.",
		}, http.StatusBadRequest)
		utils.HandleError(w, clientError)
		return
	}

	businessHandle := utils.ExtractBusinessHandleFromPath(r)
	questionService := provider.NewQuestionProvider().GetQuestionService()
	questions, err := questionService.GetQuestionsByRule(businessHandle, ruleID)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	questionsResponse := make([]model.QuestionAPIResponse, 0, len(questions))
	for _, question := range questions {
		questionsResponse = append(questionsResponse, question.ToAPIResponse())
	}
	utils.RespondJSON(w, http.StatusOK, questionsResponse)
}

// GetQuestion fetches a specific question.
func (qh *QuestionHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {

	err := security.AuthnAndAuthz(r, "questions:view")
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	questionID := extractQuestionID(r)
	if questionID == "" {
		http.Error(w, "Invalid path", http.StatusBadRequest)
		return
	}

	businessHandle := utils.ExtractBusinessHandleFromPath(r)
	questionService := provider.NewQuestionProvider().GetQuestionService()
	question, err := questionService.GetQuestion(businessHandle, questionID)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, question.ToAPIResponse())
}

// PatchQuestion applies partial updates to a question.
func (qh *QuestionHandler) PatchQuestion(w http.ResponseWriter, r *http.Request) {

	err := security.AuthnAndAuthz(r, "questions:update")
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	questionID := extractQuestionID(r)
	if questionID == "" {
		http.Error(w, "Invalid path", http.StatusBadRequest)
		return
	}

	var updateRequest model.QuestionUpdateRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&updateRequest); err != nil {
		clientError := errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.BAD_REQUEST.Code,
			Message:     errors2.BAD_REQUEST.Message,
			Description: utils.HandleDecodeError(err, "question"),
		}, http.StatusBadRequest)
		utils.WriteErrorResponse(w, clientError)
		return
	}

	businessHandle := utils.ExtractBusinessHandleFromPath(r)
	questionService := provider.NewQuestionProvider().GetQuestionService()
	if err := questionService.PatchQuestion(businessHandle, questionID, updateRequest); err != nil {
		utils.HandleError(w, err)
		return
	}

	logger := log.GetLogger()
	traceID := fbcontext.GetTraceID(r.Context())
	logger.Audit(log.AuditEvent{
		InitiatorID:   authn.GetUserIDFromRequest(r),
		InitiatorType: log.InitiatorTypeUser,
		TargetID:      questionID,
		TargetType:    log.TargetTypeQuestion,
		ActionID:      log.ActionUpdateQuestion,
		TraceID:       traceID,
		Data:          map[string]string{"business_id": businessHandle},
	})

	question, err := questionService.GetQuestion(businessHandle, questionID)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, question.ToAPIResponse())
}

// DeleteQuestion removes a question from the catalog.
func (qh *QuestionHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {

	err := security.AuthnAndAuthz(r, "questions:delete")
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	questionID := extractQuestionID(r)
	if questionID == "" {
		http.Error(w, "Invalid path", http.StatusBadRequest)
		return
	}

	businessHandle := utils.ExtractBusinessHandleFromPath(r)
	questionService := provider.NewQuestionProvider().GetQuestionService()
	if err := questionService.DeleteQuestion(businessHandle, questionID); err != nil {
		utils.HandleError(w, err)
		return
	}

	logger := log.GetLogger()
	traceID := fbcontext.GetTraceID(r.Context())
	logger.Audit(log.AuditEvent{
		InitiatorID:   authn.GetUserIDFromRequest(r),
		InitiatorType: log.InitiatorTypeUser,
		TargetID:      questionID,
		TargetType:    log.TargetTypeQuestion,
		ActionID:      log.ActionDeleteQuestion,
		TraceID:       traceID,
		Data:          map[string]string{"business_id": businessHandle},
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNoContent)
}

// extractQuestionID pulls the trailing id segment from /questions/{id} paths.
func extractQuestionID(r *http.Request) string {
	path := strings.TrimSuffix(r.URL.Path, "/")
	idx := strings.LastIndex(path, "/")
	if idx < 0 || idx == len(path)-1 {
		return ""
	}
	return path[idx+1:]
}
