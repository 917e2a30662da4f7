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

package provider

import (
	"github.com/vocalia/customer-feedback-service/internal/questions/service"
)

// QuestionProviderInterface defines the interface for the question provider.
type QuestionProviderInterface interface {
	GetQuestionService() service.QuestionServiceInterface
}

// QuestionProvider is the default implementation of the QuestionProviderInterface.
type QuestionProvider struct{}

// NewQuestionProvider creates a new instance of QuestionProvider.
func NewQuestionProvider() QuestionProviderInterface {
	return &QuestionProvider{}
}

// GetQuestionService returns the question service instance.
func (qp *QuestionProvider) GetQuestionService() service.QuestionServiceInterface {
	return service.GetQuestionService()
}
