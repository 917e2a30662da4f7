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
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vocalia/customer-feedback-service/internal/system/config"
	"github.com/vocalia/customer-feedback-service/internal/system/constants"
	errors2 "github.com/vocalia/customer-feedback-service/internal/system/errors"
	"github.com/vocalia/customer-feedback-service/internal/system/log"
)

const testJWTSecret = "unit-test-signing-secret"

func TestMain(m *testing.M) {
	_ = log.Init("ERROR")
	os.Exit(m.Run())
}

func overrideAuthConfig(t *testing.T) {
	t.Helper()
	config.OverrideServiceRuntime(config.Config{
		AuthServer: config.AuthServerConfig{
			ExpectedAudience: "customer-feedback-service",
			JWTSecret:        testJWTSecret,
			AdminUsername:    "admin",
			AdminPassword:    "changeit",
			RequiredScopes: map[string][]string{
				"harmonizers:view": {"feedback_viewer"},
			},
		},
	})
}

func newBusinessRequest(t *testing.T, business string) *http.Request {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, "/questions/frequency-harmonizers/rule-1", nil)
	ctx := context.WithValue(r.Context(), constants.BusinessContextKey, business)
	return r.WithContext(ctx)
}

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return token
}

func assertUnauthorized(t *testing.T, err error) {
	t.Helper()
	var clientErr *errors2.ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, http.StatusUnauthorized, clientErr.StatusCode)
}

func TestAuthnAndAuthz_TestModeBypass(t *testing.T) {
	t.Setenv("TEST_MODE", "true")

	r := newBusinessRequest(t, "acme")
	assert.NoError(t, AuthnAndAuthz(r, "harmonizers:view"))
}

func TestAuthnAndAuthz_AdminBasicCredentials(t *testing.T) {
	t.Setenv("TEST_MODE", "false")
	overrideAuthConfig(t)

	r := newBusinessRequest(t, "acme")
	r.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte("admin:changeit")))
	assert.NoError(t, AuthnAndAuthz(r, "harmonizers:view"))

	r = newBusinessRequest(t, "acme")
	r.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte("admin:wrong")))
	assertUnauthorized(t, AuthnAndAuthz(r, "harmonizers:view"))
}

func TestAuthnAndAuthz_BearerToken(t *testing.T) {
	t.Setenv("TEST_MODE", "false")
	overrideAuthConfig(t)

	t.Run("Valid token with required scope passes", func(t *testing.T) {
		token := signedToken(t, jwt.MapClaims{
			"sub":             "user-1",
			"aud":             "customer-feedback-service",
			"business_handle": "acme",
			"scope":           "feedback_viewer",
			"exp":             time.Now().Add(time.Hour).Unix(),
		})
		r := newBusinessRequest(t, "acme")
		r.Header.Set("Authorization", "Bearer "+token)
		assert.NoError(t, AuthnAndAuthz(r, "harmonizers:view"))
	})

	t.Run("Missing scope is forbidden", func(t *testing.T) {
		token := signedToken(t, jwt.MapClaims{
			"sub":             "user-2",
			"aud":             "customer-feedback-service",
			"business_handle": "acme",
			"scope":           "feedback_editor",
			"exp":             time.Now().Add(time.Hour).Unix(),
		})
		r := newBusinessRequest(t, "acme")
		r.Header.Set("Authorization", "Bearer "+token)

		var clientErr *errors2.ClientError
		require.ErrorAs(t, AuthnAndAuthz(r, "harmonizers:view"), &clientErr)
		assert.Equal(t, http.StatusForbidden, clientErr.StatusCode)
	})

	t.Run("Token for another business is rejected", func(t *testing.T) {
		token := signedToken(t, jwt.MapClaims{
			"sub":             "user-3",
			"aud":             "customer-feedback-service",
			"business_handle": "globex",
			"scope":           "feedback_viewer",
			"exp":             time.Now().Add(time.Hour).Unix(),
		})
		r := newBusinessRequest(t, "acme")
		r.Header.Set("Authorization", "Bearer "+token)
		assertUnauthorized(t, AuthnAndAuthz(r, "harmonizers:view"))
	})

	t.Run("Missing Authorization header is rejected", func(t *testing.T) {
		r := newBusinessRequest(t, "acme")
		assertUnauthorized(t, AuthnAndAuthz(r, "harmonizers:view"))
	})
}
