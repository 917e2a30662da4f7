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
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vocalia/customer-feedback-service/internal/questions/model"
	"github.com/vocalia/customer-feedback-service/internal/system/database/provider"
	"github.com/vocalia/customer-feedback-service/internal/system/database/scripts"
	errors2 "github.com/vocalia/customer-feedback-service/internal/system/errors"
	"github.com/vocalia/customer-feedback-service/internal/system/log"
)

// AddQuestion adds a new question to the database.
func AddQuestion(question model.Question) error {

	dbProvider := provider.NewDBProvider()
	dbClient, err := dbProvider.GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for adding question: %s", question.QuestionID)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DB_CLIENT_INIT.Code,
			Message:     errors2.DB_CLIENT_INIT.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.InsertQuestion[dbProvider.GetDBType()]
	_, err = dbClient.ExecuteQuery(query, question.QuestionID, question.BusinessID, question.RuleID,
		question.Text, question.Frequency, question.Category, question.PriorityLevel, question.IsActive,
		question.CreatedAt, question.UpdatedAt)
	if err != nil {
		errorMsg := fmt.Sprintf("Error occurred while adding question: %s", question.QuestionID)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.EXECUTE_QUERY.Code,
			Message:     errors2.EXECUTE_QUERY.Message,
			Description: errorMsg,
		}, err)
	}

	logger.Debug(fmt.Sprintf("Question %s added successfully", question.QuestionID))
	return nil
}

// GetQuestionsByRule fetches all questions for a rule, in creation order.
func GetQuestionsByRule(businessID, ruleID string) ([]model.Question, error) {

	dbProvider := provider.NewDBProvider()
	dbClient, err := dbProvider.GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for fetching questions of rule: %s", ruleID)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DB_CLIENT_INIT.Code,
			Message:     errors2.DB_CLIENT_INIT.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.GetQuestionsByRule[dbProvider.GetDBType()]
	results, err := dbClient.ExecuteQuery(query, businessID, ruleID)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed in fetching questions for rule: %s", ruleID)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.EXECUTE_QUERY.Code,
			Message:     errors2.EXECUTE_QUERY.Message,
			Description: errorMsg,
		}, err)
	}

	questions := make([]model.Question, 0, len(results))
	for _, row := range results {
		questions = append(questions, questionFromRow(row))
	}
	return questions, nil
}

// GetQuestion fetches a specific question by its id. Returns nil when absent.
func GetQuestion(questionID string) (*model.Question, error) {

	dbProvider := provider.NewDBProvider()
	dbClient, err := dbProvider.GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for fetching question: %s", questionID)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DB_CLIENT_INIT.Code,
			Message:     errors2.DB_CLIENT_INIT.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.GetQuestion[dbProvider.GetDBType()]
	results, err := dbClient.ExecuteQuery(query, questionID)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed in fetching question with id: %s", questionID)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.EXECUTE_QUERY.Code,
			Message:     errors2.EXECUTE_QUERY.Message,
			Description: errorMsg,
		}, err)
	}

	if len(results) == 0 {
		logger.Debug(fmt.Sprintf("No question found for id: %s", questionID))
		return nil, nil
	}

	question := questionFromRow(results[0])
	return &question, nil
}

// PatchQuestion applies partial updates to a question.
func PatchQuestion(businessID, questionID string, updates map[string]interface{}) error {

	dbProvider := provider.NewDBProvider()
	dbClient, err := dbProvider.GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for updating question: %s", questionID)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DB_CLIENT_INIT.Code,
			Message:     errors2.DB_CLIENT_INIT.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	setClauses := []string{}
	args := []interface{}{}
	argIndex := 1
	for key, value := range updates {
		setClauses = append(setClauses, key+" = $"+strconv.Itoa(argIndex))
		args = append(args, value)
		argIndex++
	}
	args = append(args, time.Now().Unix(), businessID, questionID)

	query := `UPDATE questions SET ` + strings.Join(setClauses, ", ") +
		`, updated_at = $` + strconv.Itoa(argIndex) +
		` WHERE business_id = $` + strconv.Itoa(argIndex+1) + ` AND question_id = $` + strconv.Itoa(argIndex+2)
	_, err = dbClient.ExecuteQuery(query, args...)
	if err != nil {
		errorMsg := fmt.Sprintf("Error occurred while updating question: %s", questionID)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.EXECUTE_QUERY.Code,
			Message:     errors2.EXECUTE_QUERY.Message,
			Description: errorMsg,
		}, err)
	}

	logger.Debug("Successfully updated question with id: " + questionID)
	return nil
}

// DeleteQuestion deletes a question by its id.
func DeleteQuestion(businessID, questionID string) error {

	dbProvider := provider.NewDBProvider()
	dbClient, err := dbProvider.GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for deleting question: %s", questionID)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DB_CLIENT_INIT.Code,
			Message:     errors2.DB_CLIENT_INIT.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.DeleteQuestion[dbProvider.GetDBType()]
	_, err = dbClient.ExecuteQuery(query, businessID, questionID)
	if err != nil {
		errorMsg := fmt.Sprintf("Error occurred while deleting question: %s", questionID)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.EXECUTE_QUERY.Code,
			Message:     errors2.EXECUTE_QUERY.Message,
			Description: errorMsg,
		}, err)
	}

	logger.Debug("Successfully deleted question with id: " + questionID)
	return nil
}

// ActiveRule identifies a rule with at least one active question.
type ActiveRule struct {
	BusinessID string
	RuleID     string
}

// GetActiveRules lists the distinct rules that still have active questions.
// Used by the conflict sweep.
func GetActiveRules() ([]ActiveRule, error) {

	dbProvider := provider.NewDBProvider()
	dbClient, err := dbProvider.GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := "Failed to get database client for listing active rules"
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DB_CLIENT_INIT.Code,
			Message:     errors2.DB_CLIENT_INIT.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.GetActiveRules[dbProvider.GetDBType()]
	results, err := dbClient.ExecuteQuery(query)
	if err != nil {
		errorMsg := "Failed in listing active rules"
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.EXECUTE_QUERY.Code,
			Message:     errors2.EXECUTE_QUERY.Message,
			Description: errorMsg,
		}, err)
	}

	rules := make([]ActiveRule, 0, len(results))
	for _, row := range results {
		var rule ActiveRule
		rule.BusinessID, _ = row["business_id"].(string)
		rule.RuleID, _ = row["rule_id"].(string)
		rules = append(rules, rule)
	}
	return rules, nil
}

// questionFromRow maps a result row onto the question model.
func questionFromRow(row map[string]interface{}) model.Question {
	var question model.Question
	question.QuestionID, _ = row["question_id"].(string)
	question.BusinessID, _ = row["business_id"].(string)
	question.RuleID, _ = row["rule_id"].(string)
	question.Text, _ = row["question_text"].(string)
	if v, ok := row["frequency"].(int64); ok {
		question.Frequency = int(v)
	}
	question.Category, _ = row["category"].(string)
	if v, ok := row["priority_level"].(int64); ok {
		question.PriorityLevel = int(v)
	}
	question.IsActive, _ = row["is_active"].(bool)
	question.CreatedAt, _ = row["created_at"].(int64)
	question.UpdatedAt, _ = row["updated_at"].(int64)
	return question
}
