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
	"net/http"
	"os"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vocalia/customer-feedback-service/internal/harmonizer/model"
	"github.com/vocalia/customer-feedback-service/internal/system/database/provider"
	errors2 "github.com/vocalia/customer-feedback-service/internal/system/errors"
	"github.com/vocalia/customer-feedback-service/internal/system/log"
)

func TestHarmonizerFromRow(t *testing.T) {
	row := map[string]interface{}{
		"harmonizer_id":        "fh-abc123",
		"business_id":          "biz-1",
		"rule_id":              "rule-1",
		"question_pair_hash":   model.PairHash("q-1", "q-2"),
		"question_id_1":        "q-1",
		"question_id_2":        "q-2",
		"resolution_strategy":  model.StrategyPriority,
		"custom_frequency":     nil,
		"priority_question_id": "q-2",
		"created_at":           int64(1756339200),
		"updated_at":           int64(1756339200),
	}

	harmonizer := harmonizerFromRow(row)
	assert.Equal(t, "fh-abc123", harmonizer.HarmonizerID)
	assert.Equal(t, "biz-1", harmonizer.BusinessID)
	assert.Equal(t, "rule-1", harmonizer.RuleID)
	assert.Equal(t, model.PairHash("q-2", "q-1"), harmonizer.QuestionPairHash)
	assert.Equal(t, model.StrategyPriority, harmonizer.ResolutionStrategy)
	assert.Nil(t, harmonizer.CustomFrequency)
	require.NotNil(t, harmonizer.PriorityQuestionID)
	assert.Equal(t, "q-2", *harmonizer.PriorityQuestionID)
	assert.Equal(t, int64(1756339200), harmonizer.CreatedAt)
}

func TestHarmonizerFromRowCustomStrategy(t *testing.T) {
	row := map[string]interface{}{
		"harmonizer_id":        "fh-def456",
		"business_id":          "biz-1",
		"rule_id":              "rule-1",
		"question_pair_hash":   model.PairHash("q-1", "q-3"),
		"question_id_1":        "q-1",
		"question_id_2":        "q-3",
		"resolution_strategy":  model.StrategyCustom,
		"custom_frequency":     int64(20),
		"priority_question_id": nil,
		"created_at":           int64(1756339200),
		"updated_at":           int64(1756339200),
	}

	harmonizer := harmonizerFromRow(row)
	require.NotNil(t, harmonizer.CustomFrequency)
	assert.Equal(t, 20, *harmonizer.CustomFrequency)
	assert.Nil(t, harmonizer.PriorityQuestionID)
}

func TestMain(m *testing.M) {
	_ = log.Init("ERROR")
	os.Exit(m.Run())
}

// newStoreMockDB routes the package's store functions at a sqlmock connection.
func newStoreMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Setenv("TEST_MODE", "true")
	provider.SetTestDB(db)
	t.Cleanup(func() {
		provider.SetTestDB(nil)
		_ = db.Close()
	})
	return mock
}

func TestAddHarmonizerMapsUniqueViolationToConflict(t *testing.T) {
	mock := newStoreMockDB(t)
	mock.ExpectQuery("INSERT INTO frequency_harmonizers").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "frequency_harmonizers_rule_id_question_pair_hash_key"})

	err := AddHarmonizer(model.FrequencyHarmonizer{
		HarmonizerID:       "fh-race01",
		BusinessID:         "biz-1",
		RuleID:             "rule-1",
		QuestionPairHash:   model.PairHash("q-1", "q-2"),
		QuestionID1:        "q-1",
		QuestionID2:        "q-2",
		ResolutionStrategy: model.StrategyCombine,
	})

	var clientErr *errors2.ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, errors2.HARMONIZER_ALREADY_EXISTS.Code, clientErr.Code)
	assert.Equal(t, http.StatusConflict, clientErr.StatusCode)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAddHarmonizerKeepsServerErrorForOtherFailures(t *testing.T) {
	mock := newStoreMockDB(t)
	mock.ExpectQuery("INSERT INTO frequency_harmonizers").
		WillReturnError(&pq.Error{Code: "53300", Message: "too many connections"})

	err := AddHarmonizer(model.FrequencyHarmonizer{
		HarmonizerID:       "fh-race02",
		BusinessID:         "biz-1",
		RuleID:             "rule-1",
		QuestionPairHash:   model.PairHash("q-1", "q-3"),
		QuestionID1:        "q-1",
		QuestionID2:        "q-3",
		ResolutionStrategy: model.StrategyCombine,
	})

	var serverErr *errors2.ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, errors2.EXECUTE_QUERY.Code, serverErr.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetHarmonizerByPairHashScopedToBusiness(t *testing.T) {
	mock := newStoreMockDB(t)
	pairHash := model.PairHash("q-1", "q-2")
	mock.ExpectQuery("FROM frequency_harmonizers").
		WithArgs("biz-1", "rule-1", pairHash).
		WillReturnRows(sqlmock.NewRows([]string{"harmonizer_id"}))

	harmonizer, err := GetHarmonizerByPairHash("biz-1", "rule-1", pairHash)
	require.NoError(t, err)
	assert.Nil(t, harmonizer)
	require.NoError(t, mock.ExpectationsWereMet())
}
