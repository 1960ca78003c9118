package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskflow-api/domain/apperrors"
	"taskflow-api/domain/models"
)

func strPtr(s string) *string { return &s }

func TestCreateNormalizeDefaults(t *testing.T) {
	req := CreateTaskRequest{Title: strPtr("  Write report  ")}

	draft, err := req.Normalize()
	require.NoError(t, err)

	assert.Equal(t, "Write report", draft.Title)
	assert.Equal(t, models.StatusTodo, draft.Status)
	assert.Equal(t, models.PriorityMedium, draft.Priority)
	assert.Nil(t, draft.DueDate)
}

func TestCreateNormalizeMissingTitle(t *testing.T) {
	cases := map[string]CreateTaskRequest{
		"absent":          {},
		"empty":           {Title: strPtr("")},
		"whitespace only": {Title: strPtr("   \t ")},
	}

	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := req.Normalize()
			ve, ok := apperrors.AsValidation(err)
			require.True(t, ok)
			assert.Equal(t, "title", ve.Field)
		})
	}
}

func TestCreateNormalizeInvalidStatus(t *testing.T) {
	// Case variants are rejected; the enumeration is case-sensitive.
	for _, status := range []string{"todo", "Done", "CANCELLED"} {
		req := CreateTaskRequest{Title: strPtr("t"), Status: strPtr(status)}

		_, err := req.Normalize()
		ve, ok := apperrors.AsValidation(err)
		require.True(t, ok, "status %q", status)
		assert.Equal(t, "status", ve.Field)
		assert.Equal(t, status, ve.ReceivedValue)
		assert.Equal(t, []string{"TODO", "IN_PROGRESS", "DONE"}, ve.ValidOptions)
	}
}

func TestCreateNormalizeInvalidPriority(t *testing.T) {
	req := CreateTaskRequest{Title: strPtr("t"), Priority: strPtr("urgent")}

	_, err := req.Normalize()
	ve, ok := apperrors.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "priority", ve.Field)
	assert.Equal(t, []string{"low", "medium", "high"}, ve.ValidOptions)
}

func TestCreateNormalizeFirstFailureWins(t *testing.T) {
	// Title and status are both invalid; the title check runs first.
	req := CreateTaskRequest{Title: strPtr(" "), Status: strPtr("nope")}

	_, err := req.Normalize()
	ve, ok := apperrors.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "title", ve.Field)
}

func TestCreateNormalizeDueDate(t *testing.T) {
	var req CreateTaskRequest
	body := `{"title":"t","dueDate":"2025-06-01T12:00:00Z"}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	draft, err := req.Normalize()
	require.NoError(t, err)
	require.NotNil(t, draft.DueDate)
	assert.Equal(t, time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC), draft.DueDate.UTC())
}

func TestCreateNormalizeInvalidDueDate(t *testing.T) {
	var req CreateTaskRequest
	require.NoError(t, json.Unmarshal([]byte(`{"title":"t","dueDate":"not-a-date"}`), &req))

	_, err := req.Normalize()
	ve, ok := apperrors.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "dueDate", ve.Field)
	assert.Equal(t, "not-a-date", ve.ReceivedValue)
}

func TestCreateNormalizeDueDateWrongType(t *testing.T) {
	var req CreateTaskRequest
	require.NoError(t, json.Unmarshal([]byte(`{"title":"t","dueDate":12345}`), &req))

	_, err := req.Normalize()
	ve, ok := apperrors.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "dueDate", ve.Field)
}

func TestUpdateNormalizeOmittedVsNull(t *testing.T) {
	t.Run("omitted leaves dueDate untouched", func(t *testing.T) {
		var req UpdateTaskRequest
		require.NoError(t, json.Unmarshal([]byte(`{"status":"DONE"}`), &req))

		patch, err := req.Normalize()
		require.NoError(t, err)
		assert.Nil(t, patch.DueDate)
		assert.False(t, patch.ClearDueDate)
	})

	t.Run("explicit null clears dueDate", func(t *testing.T) {
		var req UpdateTaskRequest
		require.NoError(t, json.Unmarshal([]byte(`{"dueDate":null}`), &req))

		patch, err := req.Normalize()
		require.NoError(t, err)
		assert.Nil(t, patch.DueDate)
		assert.True(t, patch.ClearDueDate)
	})
}

func TestUpdateNormalizePartial(t *testing.T) {
	var req UpdateTaskRequest
	require.NoError(t, json.Unmarshal([]byte(`{"status":"IN_PROGRESS"}`), &req))

	patch, err := req.Normalize()
	require.NoError(t, err)

	assert.Nil(t, patch.Title)
	assert.Nil(t, patch.Priority)
	require.NotNil(t, patch.Status)
	assert.Equal(t, models.StatusInProgress, *patch.Status)
}

func TestUpdateNormalizeBlankTitleRejected(t *testing.T) {
	req := UpdateTaskRequest{Title: strPtr("  ")}

	_, err := req.Normalize()
	ve, ok := apperrors.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "title", ve.Field)
}

func TestOptionalDateStates(t *testing.T) {
	type body struct {
		Due OptionalDate `json:"due"`
	}

	t.Run("omitted", func(t *testing.T) {
		var b body
		require.NoError(t, json.Unmarshal([]byte(`{}`), &b))
		assert.False(t, b.Due.Present)
	})

	t.Run("null", func(t *testing.T) {
		var b body
		require.NoError(t, json.Unmarshal([]byte(`{"due":null}`), &b))
		assert.True(t, b.Due.Present)
		assert.True(t, b.Due.Null)
	})

	t.Run("date-only string", func(t *testing.T) {
		var b body
		require.NoError(t, json.Unmarshal([]byte(`{"due":"2025-01-31"}`), &b))
		require.NotNil(t, b.Due.Value)
		assert.Equal(t, time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC), b.Due.Value.UTC())
	})

	t.Run("garbage string", func(t *testing.T) {
		var b body
		require.NoError(t, json.Unmarshal([]byte(`{"due":"soon"}`), &b))
		assert.True(t, b.Due.Invalid)
	})

	t.Run("wrong type", func(t *testing.T) {
		var b body
		require.NoError(t, json.Unmarshal([]byte(`{"due":[1,2]}`), &b))
		assert.True(t, b.Due.WrongType)
	})
}

func TestBindErrorNamesField(t *testing.T) {
	var req CreateTaskRequest
	err := json.Unmarshal([]byte(`{"title":123}`), &req)
	require.Error(t, err)

	ve := BindError(err)
	assert.Equal(t, "title", ve.Field)
}
