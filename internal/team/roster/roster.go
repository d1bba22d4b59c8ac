// Package roster loads the static team roster from YAML, falling back to the built-in team.
package roster

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	teamModel "github.com/festy23/goalboard/internal/team/model"
)

var validate = validator.New()

// Default returns the built-in roster used when no roster file is configured.
func Default() teamModel.Team {
	return teamModel.Team{
		ID:   "team1",
		Name: "프로덕트 개발팀",
		Members: []teamModel.User{
			{
				ID:     "user1",
				Name:   "김개발",
				Avatar: "https://images.unsplash.com/photo-1535713875002-d1d0cf377fde?w=100&h=100&fit=crop",
				Role:   "팀장 / 프론트엔드 개발자",
			},
			{
				ID:     "user2",
				Name:   "이디자인",
				Avatar: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=100&h=100&fit=crop",
				Role:   "UI/UX 디자이너",
			},
			{
				ID:     "user3",
				Name:   "박백엔드",
				Avatar: "https://images.unsplash.com/photo-1527980965255-d3b416303d12?w=100&h=100&fit=crop",
				Role:   "백엔드 개발자",
			},
		},
	}
}

// Load reads a roster from path. An empty path yields Default().
func Load(path string) (teamModel.Team, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return teamModel.Team{}, fmt.Errorf("failed to read roster %s: %w", path, err)
	}

	team, err := Parse(data)
	if err != nil {
		return teamModel.Team{}, fmt.Errorf("roster %s: %w", path, err)
	}
	return team, nil
}

// Parse decodes and validates a YAML roster document. Unknown fields are rejected.
func Parse(data []byte) (teamModel.Team, error) {
	var team teamModel.Team

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&team); err != nil {
		return teamModel.Team{}, fmt.Errorf("%w: %v", teamModel.ErrInvalidRoster, err)
	}

	if err := Validate(team); err != nil {
		return teamModel.Team{}, err
	}
	return team, nil
}

// Validate checks required fields and member id uniqueness.
func Validate(team teamModel.Team) error {
	if err := validate.Struct(team); err != nil {
		return fmt.Errorf("%w: %s", teamModel.ErrInvalidRoster, formatValidationError(err))
	}

	seen := make(map[string]bool, len(team.Members))
	for _, member := range team.Members {
		if seen[member.ID] {
			return fmt.Errorf("%w: %s", teamModel.ErrDuplicateMember, member.ID)
		}
		seen[member.ID] = true
	}
	return nil
}

func formatValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		field := strings.ToLower(fieldErr.Namespace())
		switch fieldErr.Tag() {
		case "required":
			messages = append(messages, field+" is required")
		case "min":
			messages = append(messages, field+" must have at least "+fieldErr.Param()+" entries")
		case "url":
			messages = append(messages, field+" must be a valid url")
		default:
			messages = append(messages, field+" is invalid")
		}
	}
	return strings.Join(messages, ", ")
}
