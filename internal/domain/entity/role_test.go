package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_Grants(t *testing.T) {
	tests := []struct {
		have, required Role
		want           bool
	}{
		{RoleGuard, RoleGuard, true},
		{RoleSupervisor, RoleGuard, true},
		{RoleSupervisor, RoleSupervisor, true},
		{RoleGuard, RoleSupervisor, false},
		{Role("dispatcher"), RoleGuard, false},
		{RoleSupervisor, Role("admin"), false},
	}

	for _, tt := range tests {
		t.Run(tt.have.String()+"->"+tt.required.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.have.Grants(tt.required))
		})
	}
}

func TestRolesFromStrings(t *testing.T) {
	roles := RolesFromStrings([]string{" Guard", "dispatcher", "guard", "SUPERVISOR"})

	assert.Equal(t, Roles{RoleGuard, RoleSupervisor}, roles)
	assert.Equal(t, []string{"guard", "supervisor"}, roles.ToStrings())
	assert.True(t, roles.Grants(RoleSupervisor))
	assert.False(t, Roles{RoleGuard}.Grants(RoleSupervisor))
}
