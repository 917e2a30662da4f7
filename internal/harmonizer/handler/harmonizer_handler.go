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

package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/vocalia/customer-feedback-service/internal/harmonizer/model"
	"github.com/vocalia/customer-feedback-service/internal/harmonizer/provider"
	"github.com/vocalia/customer-feedback-service/internal/system/authn"
	fbcontext "github.com/vocalia/customer-feedback-service/internal/system/context"
	errors2 "github.com/vocalia/customer-feedback-service/internal/system/errors"
	"github.com/vocalia/customer-feedback-service/internal/system/log"
	"github.com/vocalia/customer-feedback-service/internal/system/security"
	"github.com/vocalia/customer-feedback-service/internal/system/utils"
)

type HarmonizerHandler struct{}

func NewHarmonizerHandler() *HarmonizerHandler {

	return &HarmonizerHandler{}
}

// CreateHarmonizer handles creating a resolution for a conflicting question pair.
func (hh *HarmonizerHandler) CreateHarmonizer(w http.ResponseWriter, r *http.Request) {

	err := security.AuthnAndAuthz(r, "harmonizers:create")
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	var harmonizerRequest model.FrequencyHarmonizerAPIRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&harmonizerRequest); err != nil {
		clientError := errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.BAD_REQUEST.Code,
			Message:     errors2.BAD_REQUEST.Message,
			Description: utils.HandleDecodeError(err, "frequency harmonizer"),
		}, http.StatusBadRequest)
		utils.WriteErrorResponse(w, clientError)
		return
	}

	businessHandle := utils.ExtractBusinessHandleFromPath(r)
	harmonizerService := provider.NewHarmonizerProvider().GetHarmonizerService()
	harmonizer, err := harmonizerService.CreateHarmonizer(businessHandle, harmonizerRequest)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	logger := log.GetLogger()
	traceID := fbcontext.GetTraceID(r.Context())
	logger.Audit(log.AuditEvent{
		InitiatorID:   authn.GetUserIDFromRequest(r),
		InitiatorType: log.InitiatorTypeUser,
		TargetID:      harmonizer.HarmonizerID,
		TargetType:    log.TargetTypeHarmonizer,
		ActionID:      log.ActionAddHarmonizer,
		TraceID:       traceID,
		Data: map[string]string{
			"business_id": businessHandle,
			"rule_id":     harmonizer.RuleID,
			"strategy":    harmonizer.ResolutionStrategy,
		},
	})

	utils.RespondJSON(w, http.StatusCreated, harmonizer.ToAPIResponse())
}

// GetHarmonizers fetches the harmonizers configured for a rule.
func (hh *HarmonizerHandler) GetHarmonizers(w http.ResponseWriter, r *http.Request) {

	err := security.AuthnAndAuthz(r, "harmonizers:view")
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	ruleID := extractTrailingID(r)
	if ruleID == "" {
		http.Error(w, "Invalid path", http.StatusBadRequest)
		return
	}

	businessHandle := utils.ExtractBusinessHandleFromPath(r)
	harmonizerService := provider.NewHarmonizerProvider().GetHarmonizerService()
	harmonizers, err := harmonizerService.GetHarmonizersByRule(businessHandle, ruleID)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	harmonizersResponse := make([]model.FrequencyHarmonizerAPIResponse, 0, len(harmonizers))
	for _, harmonizer := range harmonizers {
		harmonizersResponse = append(harmonizersResponse, harmonizer.ToAPIResponse())
	}
	utils.RespondJSON(w, http.StatusOK, harmonizersResponse)
}

// DeleteHarmonizer removes a resolution, returning the pair to unresolved.
func (hh *HarmonizerHandler) DeleteHarmonizer(w http.ResponseWriter, r *http.Request) {

	err := security.AuthnAndAuthz(r, "harmonizers:delete")
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	harmonizerID := extractTrailingID(r)
	if harmonizerID == "" {
		http.Error(w, "Invalid path", http.StatusBadRequest)
		return
	}

	businessHandle := utils.ExtractBusinessHandleFromPath(r)
	harmonizerService := provider.NewHarmonizerProvider().GetHarmonizerService()
	if err := harmonizerService.DeleteHarmonizer(businessHandle, harmonizerID); err != nil {
		utils.HandleError(w, err)
		return
	}

	logger := log.GetLogger()
	traceID := fbcontext.GetTraceID(r.Context())
	logger.Audit(log.AuditEvent{
		InitiatorID:   authn.GetUserIDFromRequest(r),
		InitiatorType: log.InitiatorTypeUser,
		TargetID:      harmonizerID,
		TargetType:    log.TargetTypeHarmonizer,
		ActionID:      log.ActionDeleteHarmonizer,
		TraceID:       traceID,
		Data:          map[string]string{"business_id": businessHandle},
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNoContent)
}

// DetectConflicts scans a rule's active questions for colliding cadences.
func (hh *HarmonizerHandler) DetectConflicts(w http.ResponseWriter, r *http.Request) {

	err := security.AuthnAndAuthz(r, "harmonizers:view")
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	ruleID := extractTrailingID(r)
	if ruleID == "" {
		http.Error(w, "Invalid path", http.StatusBadRequest)
		return
	}

	businessHandle := utils.ExtractBusinessHandleFromPath(r)
	harmonizerService := provider.NewHarmonizerProvider().GetHarmonizerService()
	conflicts, err := harmonizerService.DetectConflicts(businessHandle, ruleID)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, conflicts)
}

// extractTrailingID pulls the last path segment, used both for
// /frequency-harmonizers/{id} and /frequency-conflicts/{rule_id}.
func extractTrailingID(r *http.Request) string {
	path := strings.TrimSuffix(r.URL.Path, "/")
	idx := strings.LastIndex(path, "/")
	if idx < 0 || idx == len(path)-1 {
		return ""
	}
	return path[idx+1:]
}
