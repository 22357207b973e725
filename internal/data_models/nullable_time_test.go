package data_models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-list.com/todo-list/internal/constants"
)

func TestUpdateTaskRequest_CompletedAtPresence(t *testing.T) {
	var absent UpdateTaskRequest
	require.NoError(t, json.Unmarshal([]byte(`{"title":"x"}`), &absent))
	assert.False(t, absent.CompletedAt.Set)

	var null UpdateTaskRequest
	require.NoError(t, json.Unmarshal([]byte(`{"status":"active","completedAt":null}`), &null))
	assert.True(t, null.CompletedAt.Set)
	assert.Nil(t, null.CompletedAt.Value)

	var value UpdateTaskRequest
	require.NoError(t, json.Unmarshal([]byte(`{"status":"complete","completedAt":"2025-03-01T10:00:00Z"}`), &value))
	require.True(t, value.CompletedAt.Set)
	require.NotNil(t, value.CompletedAt.Value)
	assert.True(t, value.CompletedAt.Value.Equal(time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)))
}

func TestUpdateTaskRequest_MarshalOmitsUnsetCompletedAt(t *testing.T) {
	title := "rename"
	body, err := json.Marshal(UpdateTaskRequest{Title: &title})
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"rename"}`, string(body))

	status := constants.StatusActive
	body, err = json.Marshal(UpdateTaskRequest{Status: &status, CompletedAt: NullTime()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"active","completedAt":null}`, string(body))
}

func TestUpdateTaskRequest_IsEmpty(t *testing.T) {
	assert.True(t, UpdateTaskRequest{}.IsEmpty())
	assert.False(t, UpdateTaskRequest{CompletedAt: NullTime()}.IsEmpty())
}
