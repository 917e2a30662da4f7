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
	"time"

	"github.com/vocalia/customer-feedback-service/internal/harmonizer/freq"
	"github.com/vocalia/customer-feedback-service/internal/harmonizer/model"
	"github.com/vocalia/customer-feedback-service/internal/harmonizer/store"
	questionprovider "github.com/vocalia/customer-feedback-service/internal/questions/provider"
	"github.com/vocalia/customer-feedback-service/internal/system/config"
	"github.com/vocalia/customer-feedback-service/internal/system/constants"
	errors2 "github.com/vocalia/customer-feedback-service/internal/system/errors"
	"github.com/vocalia/customer-feedback-service/internal/system/idgen"
	"github.com/vocalia/customer-feedback-service/internal/system/log"
)

// HarmonizerServiceInterface defines operations on frequency harmonizers and
// conflict detection.
type HarmonizerServiceInterface interface {
	CreateHarmonizer(businessID string, request model.FrequencyHarmonizerAPIRequest) (*model.FrequencyHarmonizer, error)
	GetHarmonizersByRule(businessID, ruleID string) ([]model.FrequencyHarmonizer, error)
	DeleteHarmonizer(businessID, harmonizerID string) error
	DetectConflicts(businessID, ruleID string) ([]model.FrequencyConflictAPIResponse, error)
}

// HarmonizerService is the default implementation of the HarmonizerServiceInterface.
type HarmonizerService struct{}

// GetHarmonizerService creates a new instance of HarmonizerService.
func GetHarmonizerService() HarmonizerServiceInterface {

	return &HarmonizerService{}
}

// CreateHarmonizer validates and persists an operator's resolution for a
// conflicting question pair. The pair is identified order-independently, so a
// second harmonizer for the same two questions is rejected regardless of the
// order they are listed in.
func (hs *HarmonizerService) CreateHarmonizer(businessID string,
	request model.FrequencyHarmonizerAPIRequest) (*model.FrequencyHarmonizer, error) {

	if request.RuleID == "" || request.QuestionID1 == "" || request.QuestionID2 == "" {
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.BAD_REQUEST.Code,
			Message:     errors2.BAD_REQUEST.Message,
			Description: "rule_id, question_id_1 and question_id_2 are required.",
		}, http.StatusBadRequest)
	}
	if request.QuestionID1 == request.QuestionID2 {
		return nil, errors2.NewClientError(errors2.SAME_QUESTION_PAIR, http.StatusBadRequest)
	}
	if !model.ValidStrategy(request.ResolutionStrategy) {
		return nil, errors2.NewClientError(errors2.INVALID_STRATEGY, http.StatusBadRequest)
	}
	if err := validateStrategyFields(request); err != nil {
		return nil, err
	}

	questionService := questionprovider.NewQuestionProvider().GetQuestionService()
	for _, questionID := range []string{request.QuestionID1, request.QuestionID2} {
		question, err := questionService.GetQuestion(businessID, questionID)
		if err != nil {
			return nil, err
		}
		if question.RuleID != request.RuleID {
			return nil, errors2.NewClientError(errors2.ErrorMessage{
				Code:        errors2.QUESTION_NOT_FOUND.Code,
				Message:     errors2.QUESTION_NOT_FOUND.Message,
				Description: fmt.Sprintf("Question %s does not belong to rule %s", questionID, request.RuleID),
			}, http.StatusNotFound)
		}
	}

	pairHash := model.PairHash(request.QuestionID1, request.QuestionID2)
	existing, err := store.GetHarmonizerByPairHash(businessID, request.RuleID, pairHash)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.HARMONIZER_ALREADY_EXISTS.Code,
			Message:     errors2.HARMONIZER_ALREADY_EXISTS.Message,
			Description: fmt.Sprintf("Harmonizer %s already resolves this question pair.", existing.HarmonizerID),
		}, http.StatusConflict)
	}

	harmonizerID, err := idgen.Generate(idgen.HarmonizerPrefix)
	if err != nil {
		return nil, errors2.NewServerError(errors2.ID_GENERATION, err)
	}

	now := time.Now().Unix()
	harmonizer := model.FrequencyHarmonizer{
		HarmonizerID:       harmonizerID,
		BusinessID:         businessID,
		RuleID:             request.RuleID,
		QuestionPairHash:   pairHash,
		QuestionID1:        request.QuestionID1,
		QuestionID2:        request.QuestionID2,
		ResolutionStrategy: request.ResolutionStrategy,
		CustomFrequency:    request.CustomFrequency,
		PriorityQuestionID: request.PriorityQuestionID,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := store.AddHarmonizer(harmonizer); err != nil {
		return nil, err
	}
	return &harmonizer, nil
}

// GetHarmonizersByRule lists the harmonizers configured for a rule.
func (hs *HarmonizerService) GetHarmonizersByRule(businessID, ruleID string) ([]model.FrequencyHarmonizer, error) {

	return store.GetHarmonizersByRule(businessID, ruleID)
}

// DeleteHarmonizer removes a harmonizer. Deleting an unknown id is an error,
// not a silent no-op, so the pair reverts to unresolved only when a real
// record was removed.
func (hs *HarmonizerService) DeleteHarmonizer(businessID, harmonizerID string) error {

	harmonizer, err := store.GetHarmonizer(harmonizerID)
	if err != nil {
		return err
	}
	if harmonizer == nil || harmonizer.BusinessID != businessID {
		return errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.HARMONIZER_NOT_FOUND.Code,
			Message:     errors2.HARMONIZER_NOT_FOUND.Message,
			Description: fmt.Sprintf("No harmonizer found with id %s", harmonizerID),
		}, http.StatusNotFound)
	}
	return store.DeleteHarmonizer(businessID, harmonizerID)
}

// DetectConflicts scans the rule's active questions for colliding cadences and
// annotates each conflicting pair with the harmonizer that resolves it, if any.
func (hs *HarmonizerService) DetectConflicts(businessID, ruleID string) ([]model.FrequencyConflictAPIResponse, error) {

	questionService := questionprovider.NewQuestionProvider().GetQuestionService()
	questions, err := questionService.GetQuestionsByRule(businessID, ruleID)
	if err != nil {
		return nil, err
	}

	cadences := make([]freq.Cadence, 0, len(questions))
	for _, question := range questions {
		if !question.IsActive {
			continue
		}
		cadences = append(cadences, freq.Cadence{
			QuestionID: question.QuestionID,
			Frequency:  question.Frequency,
		})
	}

	conflicts := freq.DetectConflicts(cadences, detectorOptions())

	responses := make([]model.FrequencyConflictAPIResponse, 0, len(conflicts))
	for _, conflict := range conflicts {
		response := model.FrequencyConflictAPIResponse{
			QuestionID1:       conflict.QuestionID1,
			QuestionID2:       conflict.QuestionID2,
			Frequency1:        conflict.Frequency1,
			Frequency2:        conflict.Frequency2,
			LCMFrequency:      conflict.LCMFrequency,
			ConflictCustomers: conflict.ConflictCustomers,
		}

		pairHash := model.PairHash(conflict.QuestionID1, conflict.QuestionID2)
		harmonizer, err := store.GetHarmonizerByPairHash(businessID, ruleID, pairHash)
		if err != nil {
			return nil, err
		}
		if harmonizer != nil {
			response.Resolved = true
			response.HarmonizerID = harmonizer.HarmonizerID
		}
		responses = append(responses, response)
	}

	logger := log.GetLogger()
	logger.Debug(fmt.Sprintf("Detected %d frequency conflict(s) for rule %s", len(responses), ruleID))
	return responses, nil
}

// validateStrategyFields enforces the strategy-specific payload shape:
// custom_frequency is required for (and exclusive to) the custom strategy,
// priority_question_id for the priority strategy.
func validateStrategyFields(request model.FrequencyHarmonizerAPIRequest) error {

	if request.ResolutionStrategy == model.StrategyCustom {
		if request.CustomFrequency == nil || *request.CustomFrequency < 1 {
			return errors2.NewClientError(errors2.INVALID_CUSTOM_FREQUENCY, http.StatusBadRequest)
		}
	} else if request.CustomFrequency != nil {
		return errors2.NewClientError(errors2.INVALID_CUSTOM_FREQUENCY, http.StatusBadRequest)
	}

	if request.ResolutionStrategy == model.StrategyPriority {
		if request.PriorityQuestionID == nil ||
			(*request.PriorityQuestionID != request.QuestionID1 && *request.PriorityQuestionID != request.QuestionID2) {
			return errors2.NewClientError(errors2.INVALID_PRIORITY_QUESTION, http.StatusBadRequest)
		}
	} else if request.PriorityQuestionID != nil {
		return errors2.NewClientError(errors2.INVALID_PRIORITY_QUESTION, http.StatusBadRequest)
	}
	return nil
}

// detectorOptions reads the configured scan parameters, falling back to the
// package defaults when unset.
func detectorOptions() freq.DetectorOptions {

	detection := config.GetServiceRuntime().Config.Detection
	opts := freq.DetectorOptions{
		ScanBound:   detection.CollisionScanBound,
		RatioCutoff: detection.FrequencyRatioCutoff,
	}
	if opts.ScanBound <= 0 {
		opts.ScanBound = constants.DefaultCollisionScanBound
	}
	if opts.RatioCutoff <= 0 {
		opts.RatioCutoff = constants.DefaultFrequencyRatioCutoff
	}
	return opts
}
