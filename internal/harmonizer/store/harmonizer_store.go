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

package store

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/lib/pq"

	"github.com/vocalia/customer-feedback-service/internal/harmonizer/model"
	"github.com/vocalia/customer-feedback-service/internal/system/database/provider"
	"github.com/vocalia/customer-feedback-service/internal/system/database/scripts"
	errors2 "github.com/vocalia/customer-feedback-service/internal/system/errors"
	"github.com/vocalia/customer-feedback-service/internal/system/log"
)

// AddHarmonizer adds a new frequency harmonizer to the database.
func AddHarmonizer(harmonizer model.FrequencyHarmonizer) error {

	dbProvider := provider.NewDBProvider()
	dbClient, err := dbProvider.GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for adding harmonizer: %s", harmonizer.HarmonizerID)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DB_CLIENT_INIT.Code,
			Message:     errors2.DB_CLIENT_INIT.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.InsertHarmonizer[dbProvider.GetDBType()]
	_, err = dbClient.ExecuteQuery(query, harmonizer.HarmonizerID, harmonizer.BusinessID, harmonizer.RuleID,
		harmonizer.QuestionPairHash, harmonizer.QuestionID1, harmonizer.QuestionID2,
		harmonizer.ResolutionStrategy, harmonizer.CustomFrequency, harmonizer.PriorityQuestionID,
		harmonizer.CreatedAt, harmonizer.UpdatedAt)
	if err != nil {
		// The unique pair constraint closes the race between the service's
		// duplicate pre-check and a concurrent insert.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pq.ErrorCode("23505") {
			return errors2.NewClientError(errors2.ErrorMessage{
				Code:        errors2.HARMONIZER_ALREADY_EXISTS.Code,
				Message:     errors2.HARMONIZER_ALREADY_EXISTS.Message,
				Description: "A harmonizer already resolves this question pair.",
			}, http.StatusConflict)
		}
		errorMsg := fmt.Sprintf("Error occurred while adding harmonizer: %s", harmonizer.HarmonizerID)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.EXECUTE_QUERY.Code,
			Message:     errors2.EXECUTE_QUERY.Message,
			Description: errorMsg,
		}, err)
	}

	logger.Debug(fmt.Sprintf("Frequency harmonizer %s added successfully", harmonizer.HarmonizerID))
	return nil
}

// GetHarmonizersByRule fetches all harmonizers configured for a rule, in creation order.
func GetHarmonizersByRule(businessID, ruleID string) ([]model.FrequencyHarmonizer, error) {

	dbProvider := provider.NewDBProvider()
	dbClient, err := dbProvider.GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for fetching harmonizers of rule: %s", ruleID)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DB_CLIENT_INIT.Code,
			Message:     errors2.DB_CLIENT_INIT.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.GetHarmonizersByRule[dbProvider.GetDBType()]
	results, err := dbClient.ExecuteQuery(query, businessID, ruleID)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed in fetching harmonizers for rule: %s", ruleID)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.EXECUTE_QUERY.Code,
			Message:     errors2.EXECUTE_QUERY.Message,
			Description: errorMsg,
		}, err)
	}

	harmonizers := make([]model.FrequencyHarmonizer, 0, len(results))
	for _, row := range results {
		harmonizers = append(harmonizers, harmonizerFromRow(row))
	}
	return harmonizers, nil
}

// GetHarmonizer fetches a specific harmonizer by its id. Returns nil when absent.
func GetHarmonizer(harmonizerID string) (*model.FrequencyHarmonizer, error) {

	dbProvider := provider.NewDBProvider()
	dbClient, err := dbProvider.GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for fetching harmonizer: %s", harmonizerID)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DB_CLIENT_INIT.Code,
			Message:     errors2.DB_CLIENT_INIT.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.GetHarmonizer[dbProvider.GetDBType()]
	results, err := dbClient.ExecuteQuery(query, harmonizerID)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed in fetching harmonizer with id: %s", harmonizerID)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.EXECUTE_QUERY.Code,
			Message:     errors2.EXECUTE_QUERY.Message,
			Description: errorMsg,
		}, err)
	}

	if len(results) == 0 {
		logger.Debug(fmt.Sprintf("No harmonizer found for id: %s", harmonizerID))
		return nil, nil
	}

	harmonizer := harmonizerFromRow(results[0])
	return &harmonizer, nil
}

// GetHarmonizerByPairHash fetches the harmonizer resolving the given question
// pair within a business's rule. Returns nil when the pair is unresolved.
func GetHarmonizerByPairHash(businessID, ruleID, pairHash string) (*model.FrequencyHarmonizer, error) {

	dbProvider := provider.NewDBProvider()
	dbClient, err := dbProvider.GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for fetching harmonizer by pair hash for rule: %s", ruleID)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DB_CLIENT_INIT.Code,
			Message:     errors2.DB_CLIENT_INIT.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.GetHarmonizerByPairHash[dbProvider.GetDBType()]
	results, err := dbClient.ExecuteQuery(query, businessID, ruleID, pairHash)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed in fetching harmonizer by pair hash for rule: %s", ruleID)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.EXECUTE_QUERY.Code,
			Message:     errors2.EXECUTE_QUERY.Message,
			Description: errorMsg,
		}, err)
	}

	if len(results) == 0 {
		return nil, nil
	}

	harmonizer := harmonizerFromRow(results[0])
	return &harmonizer, nil
}

// DeleteHarmonizer deletes a harmonizer by its id.
func DeleteHarmonizer(businessID, harmonizerID string) error {

	dbProvider := provider.NewDBProvider()
	dbClient, err := dbProvider.GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for deleting harmonizer: %s", harmonizerID)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DB_CLIENT_INIT.Code,
			Message:     errors2.DB_CLIENT_INIT.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.DeleteHarmonizer[dbProvider.GetDBType()]
	_, err = dbClient.ExecuteQuery(query, businessID, harmonizerID)
	if err != nil {
		errorMsg := fmt.Sprintf("Error occurred while deleting harmonizer: %s", harmonizerID)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.EXECUTE_QUERY.Code,
			Message:     errors2.EXECUTE_QUERY.Message,
			Description: errorMsg,
		}, err)
	}

	logger.Debug("Successfully deleted harmonizer with id: " + harmonizerID)
	return nil
}

// harmonizerFromRow maps a result row onto the harmonizer model.
func harmonizerFromRow(row map[string]interface{}) model.FrequencyHarmonizer {
	var harmonizer model.FrequencyHarmonizer
	harmonizer.HarmonizerID, _ = row["harmonizer_id"].(string)
	harmonizer.BusinessID, _ = row["business_id"].(string)
	harmonizer.RuleID, _ = row["rule_id"].(string)
	harmonizer.QuestionPairHash, _ = row["question_pair_hash"].(string)
	harmonizer.QuestionID1, _ = row["question_id_1"].(string)
	harmonizer.QuestionID2, _ = row["question_id_2"].(string)
	harmonizer.ResolutionStrategy, _ = row["resolution_strategy"].(string)
	if v, ok := row["custom_frequency"].(int64); ok {
		customFrequency := int(v)
		harmonizer.CustomFrequency = &customFrequency
	}
	if v, ok := row["priority_question_id"].(string); ok && v != "" {
		priorityQuestionID := v
		harmonizer.PriorityQuestionID = &priorityQuestionID
	}
	harmonizer.CreatedAt, _ = row["created_at"].(int64)
	harmonizer.UpdatedAt, _ = row["updated_at"].(int64)
	return harmonizer
}
