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

package services

import (
	"net/http"
	"strings"

	harmonizerhandler "github.com/vocalia/customer-feedback-service/internal/harmonizer/handler"
	questionhandler "github.com/vocalia/customer-feedback-service/internal/questions/handler"
)

// QuestionService routes the question catalog and frequency harmonization endpoints.
type QuestionService struct {
	questionHandler   *questionhandler.QuestionHandler
	harmonizerHandler *harmonizerhandler.HarmonizerHandler
}

// NewQuestionService creates a new QuestionService instance.
func NewQuestionService() *QuestionService {
	return &QuestionService{
		questionHandler:   questionhandler.NewQuestionHandler(),
		harmonizerHandler: harmonizerhandler.NewHarmonizerHandler(),
	}
}

// Route dispatches question, harmonizer and conflict-detection requests.
// Harmonizer paths live under /questions, so they are matched first.
func (s *QuestionService) Route(w http.ResponseWriter, r *http.Request) {

	path := strings.TrimSuffix(r.URL.Path, "/")
	method := r.Method

	// /questions/frequency-harmonizers and /questions/frequency-harmonizers/{id}
	if path == "/questions/frequency-harmonizers" {
		if method == http.MethodPost {
			s.harmonizerHandler.CreateHarmonizer(w, r)
			return
		}
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	if strings.HasPrefix(path, "/questions/frequency-harmonizers/") {
		switch method {
		case http.MethodGet:
			// The trailing segment is a rule id; lists the rule's harmonizers.
			s.harmonizerHandler.GetHarmonizers(w, r)
		case http.MethodDelete:
			s.harmonizerHandler.DeleteHarmonizer(w, r)
		default:
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	// /questions/frequency-conflicts/{rule_id}
	if strings.HasPrefix(path, "/questions/frequency-conflicts/") {
		if method == http.MethodGet {
			s.harmonizerHandler.DetectConflicts(w, r)
			return
		}
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	// Collection-level question operations.
	if path == "/questions" {
		switch method {
		case http.MethodPost:
			s.questionHandler.AddQuestion(w, r)
		case http.MethodGet:
			s.questionHandler.GetQuestions(w, r)
		default:
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	// /questions/{id}
	if strings.HasPrefix(path, "/questions/") {
		switch method {
		case http.MethodGet:
			s.questionHandler.GetQuestion(w, r)
		case http.MethodPatch:
			s.questionHandler.PatchQuestion(w, r)
		case http.MethodDelete:
			s.questionHandler.DeleteQuestion(w, r)
		default:
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	http.NotFound(w, r)
}
