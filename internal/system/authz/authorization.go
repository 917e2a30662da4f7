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

package authz

import (
	"fmt"
	"slices"
	"strings"

	"github.com/vocalia/customer-feedback-service/internal/system/config"
	"github.com/vocalia/customer-feedback-service/internal/system/log"
)

// ValidatePermission checks if the provided scopes satisfy the configured requirements
// for an operation.
func ValidatePermission(scopeStr string, operation string) bool {

	logger := log.GetLogger()
	if scopeStr == "" {
		logger.Debug(fmt.Sprintf("No scopes provided for operation: %s", operation))
		return false
	}

	requiredScopes := config.GetServiceRuntime().Config.AuthServer.RequiredScopes
	if requiredScopes == nil {
		logger.Debug(fmt.Sprintf("No scope requirements configured for operation: %s", operation))
		return false
	}

	expectedScopes, found := requiredScopes[operation]
	if !found {
		return false
	}

	grantedScopes := strings.Split(scopeStr, " ")
	for _, expected := range expectedScopes {
		if !slices.Contains(grantedScopes, expected) {
			logger.Debug(fmt.Sprintf("Missing scope %s for operation: %s", expected, operation))
			return false
		}
	}
	return true
}
