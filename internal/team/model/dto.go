package model

// MemberResponse is a roster member as returned by the API.
type MemberResponse struct {
	User
	IsTeamLead bool `json:"is_team_lead"`
}

// TeamResponse is the roster as returned by the API.
type TeamResponse struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Members []MemberResponse `json:"members"`
}

// NewTeamResponse builds the API view of a team.
func NewTeamResponse(team Team) TeamResponse {
	members := make([]MemberResponse, 0, len(team.Members))
	for _, member := range team.Members {
		members = append(members, MemberResponse{User: member, IsTeamLead: member.IsTeamLead()})
	}
	return TeamResponse{ID: team.ID, Name: team.Name, Members: members}
}
