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

package client

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockClient(t *testing.T) (DBClientInterface, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewDBClient(db), mock
}

func TestExecuteQueryMapsRows(t *testing.T) {
	dbClient, mock := newMockClient(t)

	mock.ExpectQuery("SELECT \\* FROM questions").
		WillReturnRows(sqlmock.NewRows([]string{"QUESTION_ID", "frequency"}).
			AddRow("q-1", int64(10)).
			AddRow("q-2", int64(15)))

	results, err := dbClient.ExecuteQuery("SELECT * FROM questions")
	require.NoError(t, err)
	require.Len(t, results, 2)

	// Column names are normalized to lowercase.
	assert.Equal(t, "q-1", results[0]["question_id"])
	assert.Equal(t, int64(10), results[0]["frequency"])
	assert.Equal(t, "q-2", results[1]["question_id"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecuteQueryEmptyResult(t *testing.T) {
	dbClient, mock := newMockClient(t)

	mock.ExpectQuery("SELECT \\* FROM questions WHERE rule_id = \\$1").
		WithArgs("rule-absent").
		WillReturnRows(sqlmock.NewRows([]string{"question_id"}))

	results, err := dbClient.ExecuteQuery("SELECT * FROM questions WHERE rule_id = $1", "rule-absent")
	require.NoError(t, err)
	assert.Empty(t, results)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecuteQueryPropagatesError(t *testing.T) {
	dbClient, mock := newMockClient(t)

	mock.ExpectQuery("SELECT \\* FROM questions").
		WillReturnError(errors.New("connection reset"))

	_, err := dbClient.ExecuteQuery("SELECT * FROM questions")
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCloseRespectsTestMode(t *testing.T) {
	dbClient, mock := newMockClient(t)
	t.Setenv("TEST_MODE", "true")

	// Close must be a no-op so mock expectations stay open.
	assert.NoError(t, dbClient.Close())

	mock.ExpectQuery("SELECT 1").WillReturnRows(sqlmock.NewRows([]string{"one"}).AddRow(int64(1)))
	results, err := dbClient.ExecuteQuery("SELECT 1")
	require.NoError(t, err)
	require.Len(t, results, 1)
}
