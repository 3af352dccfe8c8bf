package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUser_HasRole(t *testing.T) {
	tests := []struct {
		name     string
		roles    []string
		required string
		expected bool
	}{
		{
			name:     "user has no roles assigned",
			roles:    []string{},
			required: RoleViewer,
			expected: false,
		},
		{
			name:     "exact role match",
			roles:    []string{RolePlanner},
			required: RolePlanner,
			expected: true,
		},
		{
			name:     "admin satisfies planner",
			roles:    []string{RoleAdmin},
			required: RolePlanner,
			expected: true,
		},
		{
			name:     "viewer does not satisfy planner",
			roles:    []string{RoleViewer},
			required: RolePlanner,
			expected: false,
		},
		{
			name:     "unknown required role",
			roles:    []string{RoleAdmin},
			required: "superuser",
			expected: false,
		},
		{
			name:     "unknown granted role is ignored",
			roles:    []string{"guest", RoleViewer},
			required: RoleViewer,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &User{
				ID:    primitive.NewObjectID(),
				Email: "test@example.com",
				Roles: tt.roles,
			}
			assert.Equal(t, tt.expected, user.HasRole(tt.required))
		})
	}
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleViewer))
	assert.True(t, ValidRole(RolePlanner))
	assert.True(t, ValidRole(RoleAdmin))
	assert.False(t, ValidRole(""))
	assert.False(t, ValidRole("root"))
}
