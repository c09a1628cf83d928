package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticket-triage/internal/common/errors"
)

func writeDatasetFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tickets.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	tickets := Default()

	require.Len(t, tickets, 5)
	assert.Equal(t, 101, tickets[0].ID)
	assert.Equal(t, 105, tickets[4].ID)
	for _, ticket := range tickets {
		assert.NoError(t, ticket.Validate())
	}
}

func TestDefault_ReturnsFreshSlice(t *testing.T) {
	first := Default()
	first[0].Subject = "mutated"

	second := Default()
	assert.Equal(t, "Login help", second[0].Subject)
}

func TestLoadFromFile_Valid(t *testing.T) {
	path := writeDatasetFile(t, `[
		{"id": 1, "subject": "Hello", "body": "My report is missing."},
		{"id": 2, "subject": "Bank", "body": "New bank account."}
	]`)

	tickets, err := LoadFromFile(path)
	require.NoError(t, err)
	require.Len(t, tickets, 2)
	assert.Equal(t, "Hello", tickets[0].Subject)
	assert.Equal(t, 2, tickets[1].ID)
}

func TestLoadFromFile_Errors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected errors.ErrorCode
	}{
		{
			name:     "missing id",
			content:  `[{"subject": "x", "body": "y"}]`,
			expected: errors.ErrCodeDatasetSchemaInvalid,
		},
		{
			name:     "missing body",
			content:  `[{"id": 1, "subject": "x"}]`,
			expected: errors.ErrCodeDatasetSchemaInvalid,
		},
		{
			name:     "unknown field",
			content:  `[{"id": 1, "subject": "x", "body": "y", "priority": "Urgent"}]`,
			expected: errors.ErrCodeDatasetSchemaInvalid,
		},
		{
			name:     "non-integer id",
			content:  `[{"id": "one", "subject": "x", "body": "y"}]`,
			expected: errors.ErrCodeDatasetSchemaInvalid,
		},
		{
			name:     "duplicate ids",
			content:  `[{"id": 1, "subject": "x", "body": "y"}, {"id": 1, "subject": "a", "body": "b"}]`,
			expected: errors.ErrCodeDatasetSchemaInvalid,
		},
		{
			name:     "not an array",
			content:  `{"id": 1}`,
			expected: errors.ErrCodeDatasetLoadFailed,
		},
		{
			name:     "malformed json",
			content:  `[{"id": 1,`,
			expected: errors.ErrCodeDatasetLoadFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeDatasetFile(t, tt.content)

			_, err := LoadFromFile(path)
			require.Error(t, err)

			stdErr, ok := err.(*errors.StandardError)
			require.True(t, ok, "expected StandardError, got %T", err)
			assert.Equal(t, tt.expected, stdErr.Code)
		})
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)

	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeDatasetLoadFailed, stdErr.Code)
}
