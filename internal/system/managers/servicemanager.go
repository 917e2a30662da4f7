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

package managers

import (
	"net/http"
	"strings"

	"github.com/vocalia/customer-feedback-service/internal/system/services"
	"github.com/vocalia/customer-feedback-service/internal/system/utils"
)

type ServiceManagerInterface interface {
	RegisterServices(apiBasePath string) error
}

type ServiceManager struct {
	mux *http.ServeMux
}

// NewServiceManager creates a new instance of ServiceManager.
func NewServiceManager(mux *http.ServeMux) ServiceManagerInterface {

	return &ServiceManager{
		mux: mux,
	}
}

// RegisterServices mounts the health endpoints and the business-scoped API
// dispatcher onto the mux.
func (sm *ServiceManager) RegisterServices(apiBasePath string) error {

	healthService := services.NewHealthService()
	sm.mux.HandleFunc("/health", healthService.Route)
	sm.mux.HandleFunc("/ready", healthService.Route)

	questionService := services.NewQuestionService()

	// Single business dispatcher for all tenant-scoped services.
	utils.MountBusinessDispatcher(sm.mux, apiBasePath, func(w http.ResponseWriter, r *http.Request) {
		// Internal path after business handle and base path stripping.
		path := strings.TrimSuffix(r.URL.Path, "/")

		switch {
		case strings.HasPrefix(path, "/questions"):
			questionService.Route(w, r)
		default:
			http.NotFound(w, r)
		}
	})
	return nil
}
