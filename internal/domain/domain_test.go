package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAuditTimestampsStartEqual(t *testing.T) {
	t.Parallel()

	audit := NewAudit()
	assert.Zero(t, audit.ID)
	assert.False(t, audit.CreatedAt.IsZero())
	assert.Equal(t, audit.CreatedAt, audit.UpdatedAt)
}

func TestAuditTouchAdvancesUpdatedAt(t *testing.T) {
	t.Parallel()

	audit := NewAudit()
	time.Sleep(10 * time.Millisecond)
	audit.Touch()

	assert.True(t, audit.UpdatedAt.After(audit.CreatedAt))
}

func TestNewTask(t *testing.T) {
	t.Parallel()

	t.Run("explicit priority", func(t *testing.T) {
		t.Parallel()
		task, err := NewTask("write report", 3)
		require.NoError(t, err)
		assert.Equal(t, "write report", task.Name)
		assert.Equal(t, 3, task.Priority)
		assert.Equal(t, task.CreatedAt, task.UpdatedAt)
	})

	t.Run("zero priority falls back to the default", func(t *testing.T) {
		t.Parallel()
		task, err := NewTask("untriaged", 0)
		require.NoError(t, err)
		assert.Equal(t, DefaultTaskPriority, task.Priority)
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := NewTask("", 1)
		assert.ErrorIs(t, err, ErrEmptyTaskName)
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestNewUser(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		user, err := NewUser("alice", "$2a$10$somebcrypthash")
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("empty username", func(t *testing.T) {
		t.Parallel()
		_, err := NewUser("", "$2a$10$somebcrypthash")
		assert.ErrorIs(t, err, ErrEmptyUsername)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("empty hash", func(t *testing.T) {
		t.Parallel()
		_, err := NewUser("alice", "")
		assert.ErrorIs(t, err, ErrEmptyHashedPassword)
	})
}

// The password hash must never appear in any serialized form of a user.
func TestUserJSONOmitsHashedPassword(t *testing.T) {
	t.Parallel()

	user, err := NewUser("alice", "$2a$10$somebcrypthash")
	require.NoError(t, err)

	raw, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "somebcrypthash")
	assert.Contains(t, string(raw), `"username":"alice"`)
}
