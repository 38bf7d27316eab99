package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTenantCode(t *testing.T) {
	code, err := ParseTenantCode("COMP-4821")
	require.NoError(t, err)
	assert.Equal(t, TenantCode("COMP-4821"), code)

	for _, bad := range []string{"", "COMP-999", "COMP-10000", "comp-1234", "COMP-0123", "ACME-1234", "COMP-12a4"} {
		_, err := ParseTenantCode(bad)
		assert.Error(t, err, bad)
	}
}

func TestNewTenantCodeBounds(t *testing.T) {
	low, err := NewTenantCode(1000)
	require.NoError(t, err)
	assert.True(t, low.IsValid())

	high, err := NewTenantCode(9999)
	require.NoError(t, err)
	assert.Equal(t, "COMP-9999", high.String())

	_, err = NewTenantCode(999)
	assert.Error(t, err)
	_, err = NewTenantCode(10000)
	assert.Error(t, err)
}

func TestRoleIn(t *testing.T) {
	assert.True(t, RoleManager.In(RoleAdmin, RoleManager))
	assert.False(t, RoleEmployee.In(RoleAdmin, RoleManager))
	assert.True(t, RoleEmployee.In())
	assert.False(t, Role("owner").IsValid())
}

func TestCountTasks(t *testing.T) {
	stats := CountTasks([]Task{
		{Status: TaskPending}, {Status: TaskPending}, {Status: TaskInProgress},
		{Status: TaskCompleted}, {Status: TaskOnHold},
	})
	assert.Equal(t, TaskStats{Count: 5, Pending: 2, InProgress: 1, Completed: 1, OnHold: 1}, stats)
}
