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

package errors

const errorPrefix = "CFS-"

var (
	// Server error codes

	DB_CLIENT_INIT = ErrorMessage{
		Code:    errorPrefix + "15001",
		Message: "Error while initializing the database client.",
	}

	EXECUTE_QUERY = ErrorMessage{
		Code:    errorPrefix + "15002",
		Message: "Error while executing database query.",
	}

	ADD_HARMONIZER = ErrorMessage{
		Code:    errorPrefix + "15003",
		Message: "Error while adding frequency harmonizer.",
	}

	FETCH_HARMONIZERS = ErrorMessage{
		Code:    errorPrefix + "15004",
		Message: "Error while fetching frequency harmonizer(s).",
	}

	DELETE_HARMONIZER = ErrorMessage{
		Code:    errorPrefix + "15005",
		Message: "Error while deleting frequency harmonizer.",
	}

	ADD_QUESTION = ErrorMessage{
		Code:    errorPrefix + "15006",
		Message: "Error while adding question.",
	}

	FETCH_QUESTIONS = ErrorMessage{
		Code:    errorPrefix + "15007",
		Message: "Error while fetching question(s).",
	}

	UPDATE_QUESTION = ErrorMessage{
		Code:    errorPrefix + "15008",
		Message: "Error while updating question.",
	}

	DELETE_QUESTION = ErrorMessage{
		Code:    errorPrefix + "15009",
		Message: "Error while deleting question.",
	}

	DETECT_CONFLICTS = ErrorMessage{
		Code:    errorPrefix + "15010",
		Message: "Error while detecting frequency conflicts.",
	}

	PARSING_ERROR = ErrorMessage{
		Code:    errorPrefix + "15011",
		Message: "Error while parsing the token.",
	}

	ID_GENERATION = ErrorMessage{
		Code:    errorPrefix + "15012",
		Message: "Error while generating a resource identifier.",
	}

	// Client error codes

	BAD_REQUEST = ErrorMessage{
		Code:        errorPrefix + "60001",
		Message:     "Invalid request.",
		Description: "The request body is malformed or contains invalid fields.",
	}

	UN_AUTHORIZED = ErrorMessage{
		Code:        errorPrefix + "60002",
		Message:     "Unauthorized.",
		Description: "Authentication is required to access this resource.",
	}

	FORBIDDEN = ErrorMessage{
		Code:        errorPrefix + "60003",
		Message:     "Forbidden.",
		Description: "Insufficient permissions to perform this operation.",
	}

	HARMONIZER_ALREADY_EXISTS = ErrorMessage{
		Code:    errorPrefix + "60004",
		Message: "A frequency harmonizer already exists for this question pair.",
	}

	HARMONIZER_NOT_FOUND = ErrorMessage{
		Code:    errorPrefix + "60005",
		Message: "Frequency harmonizer not found.",
	}

	QUESTION_NOT_FOUND = ErrorMessage{
		Code:    errorPrefix + "60006",
		Message: "Question not found.",
	}

	INVALID_FREQUENCY = ErrorMessage{
		Code:        errorPrefix + "60007",
		Message:     "Invalid question frequency.",
		Description: "Question frequency must be a positive integer.",
	}

	INVALID_STRATEGY = ErrorMessage{
		Code:        errorPrefix + "60008",
		Message:     "Invalid resolution strategy.",
		Description: "Resolution strategy must be one of: combine, priority, alternate, custom.",
	}

	INVALID_PRIORITY_QUESTION = ErrorMessage{
		Code:        errorPrefix + "60009",
		Message:     "Invalid priority question.",
		Description: "priority_question_id must reference one of the pair's two questions.",
	}

	INVALID_CUSTOM_FREQUENCY = ErrorMessage{
		Code:        errorPrefix + "60010",
		Message:     "Invalid custom frequency.",
		Description: "custom_frequency must be a positive integer and is only valid for the custom strategy.",
	}

	SAME_QUESTION_PAIR = ErrorMessage{
		Code:        errorPrefix + "60011",
		Message:     "Invalid question pair.",
		Description: "A harmonizer must reference two distinct questions.",
	}

	RATE_LIMIT_EXCEEDED = ErrorMessage{
		Code:        errorPrefix + "60012",
		Message:     "Too many requests.",
		Description: "Request rate limit exceeded. Retry later.",
	}

	INVALID_PRIORITY_LEVEL = ErrorMessage{
		Code:        errorPrefix + "60013",
		Message:     "Invalid priority level.",
		Description: "Question priority level must be between 1 and 5.",
	}
)
