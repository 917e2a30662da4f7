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

package scripts

var InsertQuestion = map[string]string{
	"postgres": `INSERT INTO questions (question_id, business_id, rule_id, question_text, frequency, category,
        priority_level, is_active, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
}

var GetQuestionsByRule = map[string]string{
	"postgres": `SELECT question_id, business_id, rule_id, question_text, frequency, category, priority_level,
        is_active, created_at, updated_at FROM questions WHERE business_id = $1 AND rule_id = $2
        ORDER BY created_at, question_id`,
}

var GetQuestion = map[string]string{
	"postgres": `SELECT question_id, business_id, rule_id, question_text, frequency, category, priority_level,
        is_active, created_at, updated_at FROM questions WHERE question_id = $1`,
}

var DeleteQuestion = map[string]string{
	"postgres": `DELETE FROM questions WHERE business_id = $1 AND question_id = $2`,
}

var GetActiveRules = map[string]string{
	"postgres": `SELECT DISTINCT business_id, rule_id FROM questions WHERE is_active = TRUE
        ORDER BY business_id, rule_id`,
}

var InsertHarmonizer = map[string]string{
	"postgres": `INSERT INTO frequency_harmonizers (harmonizer_id, business_id, rule_id, question_pair_hash,
        question_id_1, question_id_2, resolution_strategy, custom_frequency, priority_question_id,
        created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
}

var GetHarmonizersByRule = map[string]string{
	"postgres": `SELECT harmonizer_id, business_id, rule_id, question_pair_hash, question_id_1, question_id_2,
        resolution_strategy, custom_frequency, priority_question_id, created_at, updated_at
        FROM frequency_harmonizers WHERE business_id = $1 AND rule_id = $2 ORDER BY created_at, harmonizer_id`,
}

var GetHarmonizer = map[string]string{
	"postgres": `SELECT harmonizer_id, business_id, rule_id, question_pair_hash, question_id_1, question_id_2,
        resolution_strategy, custom_frequency, priority_question_id, created_at, updated_at
        FROM frequency_harmonizers WHERE harmonizer_id = $1`,
}

var GetHarmonizerByPairHash = map[string]string{
	"postgres": `SELECT harmonizer_id, business_id, rule_id, question_pair_hash, question_id_1, question_id_2,
        resolution_strategy, custom_frequency, priority_question_id, created_at, updated_at
        FROM frequency_harmonizers WHERE business_id = $1 AND rule_id = $2 AND question_pair_hash = $3`,
}

var DeleteHarmonizer = map[string]string{
	"postgres": `DELETE FROM frequency_harmonizers WHERE business_id = $1 AND harmonizer_id = $2`,
}
