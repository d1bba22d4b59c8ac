// Package model provides the roster entities: users and the team they belong to.
package model

import "strings"

// leadMarkers are substrings of User.Role that grant team-lead capability.
var leadMarkers = []string{"팀장", "lead"}

// User is a static roster member. Users are never created or edited at runtime.
type User struct {
	ID     string `json:"id"     yaml:"id"     validate:"required"`
	Name   string `json:"name"   yaml:"name"   validate:"required"`
	Avatar string `json:"avatar" yaml:"avatar" validate:"omitempty,url"`
	Role   string `json:"role"   yaml:"role"`
}

// IsTeamLead reports whether the user's role grants goal management rights.
func (u User) IsTeamLead() bool {
	role := strings.ToLower(u.Role)
	for _, marker := range leadMarkers {
		if strings.Contains(role, marker) {
			return true
		}
	}
	return false
}

// Team is an ordered roster. Member order is the iteration order of every per-member view.
type Team struct {
	ID      string `json:"id"      yaml:"id"      validate:"required"`
	Name    string `json:"name"    yaml:"name"    validate:"required"`
	Members []User `json:"members" yaml:"members" validate:"required,min=1,dive"`
}

// Member returns the member with the given id.
func (t Team) Member(id string) (User, bool) {
	for _, member := range t.Members {
		if member.ID == id {
			return member, true
		}
	}
	return User{}, false
}

// MemberIDs returns member ids in roster order.
func (t Team) MemberIDs() []string {
	ids := make([]string, 0, len(t.Members))
	for _, member := range t.Members {
		ids = append(ids, member.ID)
	}
	return ids
}
