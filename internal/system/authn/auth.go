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

package authn

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vocalia/customer-feedback-service/internal/system/cache"
	"github.com/vocalia/customer-feedback-service/internal/system/config"
	errors2 "github.com/vocalia/customer-feedback-service/internal/system/errors"
	"github.com/vocalia/customer-feedback-service/internal/system/log"
)

// Verified claims are cached briefly so repeated requests with the same token
// skip signature verification. The TTL stays short so revoked or expired
// tokens age out quickly.
var claimsCache = cache.NewCache(time.Minute)

// ValidateAuthenticationAndReturnClaims validates a bearer token against the
// configured signing secret and returns its claims. The token must be scoped
// to the business handle of the request path.
func ValidateAuthenticationAndReturnClaims(token, businessHandle string) (map[string]interface{}, error) {

	logger := log.GetLogger()

	// Opaque tokens are not supported; a JWT has exactly two dots.
	if strings.Count(token, ".") != 2 {
		logger.Debug("Expecting a JWT token but received an opaque token.")
		return nil, unauthorizedError()
	}

	cacheKey := businessHandle + ":" + token
	if cached, found := claimsCache.Get(cacheKey); found {
		if claims, ok := cached.(jwt.MapClaims); ok {
			return claims, nil
		}
	}

	claims, err := parseAndVerify(token)
	if err != nil {
		logger.Debug("Token signature or structure validation failed.", log.Error(err))
		return nil, unauthorizedError()
	}

	if !validateClaims(businessHandle, claims) {
		return nil, unauthorizedError()
	}

	claimsCache.Set(cacheKey, claims)
	return claims, nil
}

// GetUserIDFromRequest extracts the authenticated subject from the request token.
// Returns an empty string when the token is absent or unparsable.
func GetUserIDFromRequest(r *http.Request) string {

	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")

	claims := jwt.MapClaims{}
	_, _, err := new(jwt.Parser).ParseUnverified(token, claims)
	if err != nil {
		return ""
	}
	if sub, ok := claims["sub"].(string); ok {
		return sub
	}
	return ""
}

// parseAndVerify parses the JWT and verifies its HMAC signature.
func parseAndVerify(tokenString string) (jwt.MapClaims, error) {

	secret := config.GetServiceRuntime().Config.AuthServer.JWTSecret
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, fmt.Errorf("token is not valid")
	}
	return claims, nil
}

// validateClaims ensures the token carries the expected business handle and audience.
// Expiry is enforced by the JWT parser itself.
func validateClaims(businessHandle string, claims jwt.MapClaims) bool {

	logger := log.GetLogger()

	businessInClaim, ok := claims["business_handle"].(string)
	if !ok || businessInClaim != businessHandle {
		logger.Debug("Token does not have the expected business_handle claim.")
		return false
	}

	expectedAudience := config.GetServiceRuntime().Config.AuthServer.ExpectedAudience
	audList, err := claims.GetAudience()
	if err != nil {
		logger.Debug("Token does not have an audience claim.")
		return false
	}
	for _, aud := range audList {
		if aud == expectedAudience {
			return true
		}
	}
	logger.Debug("Token audience does not match expected audience.")
	return false
}

func unauthorizedError() error {
	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.UN_AUTHORIZED.Code,
		Message:     errors2.UN_AUTHORIZED.Message,
		Description: errors2.UN_AUTHORIZED.Description,
	}, http.StatusUnauthorized)
}
