package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleAllows(t *testing.T) {
	tests := []struct {
		role     Role
		required Role
		want     bool
	}{
		{RoleViewer, RoleViewer, true},
		{RoleViewer, RoleGroceryKeeper, false},
		{RoleViewer, RoleAdmin, false},
		{RoleGroceryKeeper, RoleViewer, true},
		{RoleGroceryKeeper, RoleGroceryKeeper, true},
		{RoleGroceryKeeper, RoleAdmin, false},
		{RoleAdmin, RoleViewer, true},
		{RoleAdmin, RoleGroceryKeeper, true},
		{RoleAdmin, RoleAdmin, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.role.Allows(tt.required),
			"%s allows %s", tt.role, tt.required)
	}
}

func TestRoleAllows_UnknownRoleDeniedEverything(t *testing.T) {
	unknown := Role("Intern")
	assert.False(t, unknown.Allows(RoleViewer))
	assert.False(t, unknown.Allows(unknown))
}

func TestRoleIsValid(t *testing.T) {
	assert.True(t, RoleViewer.IsValid())
	assert.True(t, RoleGroceryKeeper.IsValid())
	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, Role("Intern").IsValid())
	assert.False(t, Role("").IsValid())
}
