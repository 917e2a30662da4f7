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

package utils

import (
	"context"
	"encoding/json"
	"errors" // Standard Go errors package
	"net/http"
	"strings"

	"github.com/vocalia/customer-feedback-service/internal/system/constants"
	fbcontext "github.com/vocalia/customer-feedback-service/internal/system/context"
	customerrors "github.com/vocalia/customer-feedback-service/internal/system/errors" // Alias for the custom errors
	"github.com/vocalia/customer-feedback-service/internal/system/log"
)

// HandleError sends an HTTP error response based on the provided error
func HandleError(w http.ResponseWriter, err error) {
	var clientError *customerrors.ClientError
	w.Header().Set("Content-Type", "application/json")
	if ok := errors.As(err, &clientError); ok {
		w.WriteHeader(clientError.StatusCode)
		_ = json.NewEncoder(w).Encode(struct {
			Code        string `json:"code"`
			Message     string `json:"message"`
			Description string `json:"description"`
		}{
			Code:        clientError.ErrorMessage.Code,
			Message:     clientError.ErrorMessage.Message,
			Description: clientError.ErrorMessage.Description,
		})
		return
	}

	// Anything else is a server fault; log it and return an opaque 500.
	log.GetLogger().Error(err.Error())
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": "Internal server error",
	})
}

// WriteErrorResponse writes the client error's message payload as the response body.
func WriteErrorResponse(w http.ResponseWriter, err *customerrors.ClientError) {

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.StatusCode)

	_ = json.NewEncoder(w).Encode(err.ErrorMessage)
}

// RespondJSON writes a JSON response with the given status code.
func RespondJSON(w http.ResponseWriter, statusCode int, payload interface{}) {

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

// ExtractBusinessHandleFromPath returns the tenant handle resolved by the dispatcher.
func ExtractBusinessHandleFromPath(r *http.Request) string {
	business, _ := r.Context().Value(constants.BusinessContextKey).(string)
	return business
}

// MountBusinessDispatcher routes /t/{business}/api/v1/... requests, resolving the
// business handle into the request context and stripping the prefix.
func MountBusinessDispatcher(mux *http.ServeMux, apiBasePath string, handlerFunc http.HandlerFunc) {
	mux.HandleFunc("/t/", func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimSuffix(r.URL.Path, "/")

		if !strings.HasPrefix(path, "/t/") {
			http.NotFound(w, r)
			return
		}

		// Split: /t/{business}/api/v1/...
		parts := strings.SplitN(path[len("/t/"):], "/", 2)
		if len(parts) != 2 {
			http.Error(w, "Invalid business path format", http.StatusBadRequest)
			return
		}

		businessHandle := parts[0]
		remainingPath := "/" + parts[1]

		if !strings.HasPrefix(remainingPath, apiBasePath) {
			http.Error(w, "Path must start with "+apiBasePath, http.StatusNotFound)
			return
		}

		relativePath := strings.TrimPrefix(remainingPath, apiBasePath)

		ctx := context.WithValue(r.Context(), constants.BusinessContextKey, businessHandle)
		ctx = fbcontext.WithTraceID(ctx, fbcontext.GetOrGenerateTraceID(ctx))
		r = r.WithContext(ctx)
		r.URL.Path = relativePath

		handlerFunc(w, r)
	})
}
