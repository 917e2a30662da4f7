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

package constants

const ApiBasePath = "/api/v1"
const QuestionsApiPath = "questions"
const HarmonizersApiPath = "questions/frequency-harmonizers"
const ConflictsApiPath = "questions/frequency-conflicts"

type contextKey string

// BusinessContextKey carries the tenant (business) handle resolved from the request path.
const BusinessContextKey contextKey = "business"

// TraceIDContextKey carries the per-request trace identifier.
const TraceIDContextKey contextKey = "trace_id"

// Question priority levels span 1 (lowest) to 5 (highest).
const (
	MinPriorityLevel = 1
	MaxPriorityLevel = 5
)

// Conflict detection defaults; both are overridable through deployment configuration.
const (
	// DefaultCollisionScanBound caps the collision preview shown to an operator.
	DefaultCollisionScanBound = 100
	// DefaultFrequencyRatioCutoff excludes pairs whose cadences are too far apart to matter.
	DefaultFrequencyRatioCutoff = 10
)
