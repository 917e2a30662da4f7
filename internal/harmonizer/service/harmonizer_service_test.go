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
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vocalia/customer-feedback-service/internal/harmonizer/freq"
	"github.com/vocalia/customer-feedback-service/internal/harmonizer/model"
	"github.com/vocalia/customer-feedback-service/internal/system/config"
	"github.com/vocalia/customer-feedback-service/internal/system/constants"
	errors2 "github.com/vocalia/customer-feedback-service/internal/system/errors"
)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func assertClientError(t *testing.T, err error, code string, status int) {
	t.Helper()
	require.Error(t, err)
	var clientErr *errors2.ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, code, clientErr.Code)
	assert.Equal(t, status, clientErr.StatusCode)
}

func TestCreateHarmonizerRejectsMissingFields(t *testing.T) {
	svc := GetHarmonizerService()

	_, err := svc.CreateHarmonizer("biz-1", model.FrequencyHarmonizerAPIRequest{
		QuestionID1:        "q-1",
		QuestionID2:        "q-2",
		ResolutionStrategy: model.StrategyCombine,
	})
	assertClientError(t, err, errors2.BAD_REQUEST.Code, http.StatusBadRequest)
}

func TestCreateHarmonizerRejectsSamePair(t *testing.T) {
	svc := GetHarmonizerService()

	_, err := svc.CreateHarmonizer("biz-1", model.FrequencyHarmonizerAPIRequest{
		RuleID:             "rule-1",
		QuestionID1:        "q-1",
		QuestionID2:        "q-1",
		ResolutionStrategy: model.StrategyCombine,
	})
	assertClientError(t, err, errors2.SAME_QUESTION_PAIR.Code, http.StatusBadRequest)
}

func TestCreateHarmonizerRejectsUnknownStrategy(t *testing.T) {
	svc := GetHarmonizerService()

	_, err := svc.CreateHarmonizer("biz-1", model.FrequencyHarmonizerAPIRequest{
		RuleID:             "rule-1",
		QuestionID1:        "q-1",
		QuestionID2:        "q-2",
		ResolutionStrategy: "merge",
	})
	assertClientError(t, err, errors2.INVALID_STRATEGY.Code, http.StatusBadRequest)
}

func TestValidateStrategyFields(t *testing.T) {
	base := model.FrequencyHarmonizerAPIRequest{
		RuleID:      "rule-1",
		QuestionID1: "q-1",
		QuestionID2: "q-2",
	}

	t.Run("custom requires positive custom frequency", func(t *testing.T) {
		request := base
		request.ResolutionStrategy = model.StrategyCustom
		assertClientError(t, validateStrategyFields(request),
			errors2.INVALID_CUSTOM_FREQUENCY.Code, http.StatusBadRequest)

		request.CustomFrequency = intPtr(0)
		assertClientError(t, validateStrategyFields(request),
			errors2.INVALID_CUSTOM_FREQUENCY.Code, http.StatusBadRequest)

		request.CustomFrequency = intPtr(20)
		assert.NoError(t, validateStrategyFields(request))
	})

	t.Run("custom frequency is exclusive to custom", func(t *testing.T) {
		request := base
		request.ResolutionStrategy = model.StrategyCombine
		request.CustomFrequency = intPtr(20)
		assertClientError(t, validateStrategyFields(request),
			errors2.INVALID_CUSTOM_FREQUENCY.Code, http.StatusBadRequest)
	})

	t.Run("priority requires a question from the pair", func(t *testing.T) {
		request := base
		request.ResolutionStrategy = model.StrategyPriority
		assertClientError(t, validateStrategyFields(request),
			errors2.INVALID_PRIORITY_QUESTION.Code, http.StatusBadRequest)

		request.PriorityQuestionID = strPtr("q-3")
		assertClientError(t, validateStrategyFields(request),
			errors2.INVALID_PRIORITY_QUESTION.Code, http.StatusBadRequest)

		request.PriorityQuestionID = strPtr("q-2")
		assert.NoError(t, validateStrategyFields(request))
	})

	t.Run("priority question is exclusive to priority", func(t *testing.T) {
		request := base
		request.ResolutionStrategy = model.StrategyAlternate
		request.PriorityQuestionID = strPtr("q-1")
		assertClientError(t, validateStrategyFields(request),
			errors2.INVALID_PRIORITY_QUESTION.Code, http.StatusBadRequest)
	})
}

func TestDetectorOptionsDefaults(t *testing.T) {
	config.OverrideServiceRuntime(config.Config{})

	opts := detectorOptions()
	assert.Equal(t, constants.DefaultCollisionScanBound, opts.ScanBound)
	assert.Equal(t, constants.DefaultFrequencyRatioCutoff, opts.RatioCutoff)
}

func TestDetectorOptionsFromConfig(t *testing.T) {
	config.OverrideServiceRuntime(config.Config{
		Detection: config.DetectionConfig{
			CollisionScanBound:   250,
			FrequencyRatioCutoff: 4,
		},
	})

	opts := detectorOptions()
	assert.Equal(t, freq.DetectorOptions{ScanBound: 250, RatioCutoff: 4}, opts)
}
