// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"strings"
)

// Role is a permission level carried in access token claims.
type Role string

const (
	// RoleGuard is a patrolling guard using the mobile client.
	RoleGuard Role = "guard"
	// RoleSupervisor manages sites and prints checkpoint tags.
	RoleSupervisor Role = "supervisor"
)

// roleRank orders roles; a higher rank includes everything below it.
var roleRank = map[Role]int{
	RoleGuard:      1,
	RoleSupervisor: 2,
}

func (r Role) String() string {
	return string(r)
}

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	_, ok := roleRank[r]

	return ok
}

// Grants reports whether holding r satisfies a requirement for required.
func (r Role) Grants(required Role) bool {
	have, ok := roleRank[r]
	if !ok {
		return false
	}

	return have >= roleRank[required] && required.IsValid()
}

type Roles []Role

func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// Grants reports whether any held role satisfies required.
func (rs Roles) Grants(required Role) bool {
	return slices.ContainsFunc(rs, func(r Role) bool { return r.Grants(required) })
}

// ToStrings converts Roles to []string for token claims.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings normalizes claim values, dropping unknown and duplicate roles.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(strings.ToLower(strings.TrimSpace(s)))
		if role.IsValid() && !result.Contains(role) {
			result = append(result, role)
		}
	}

	return result
}
