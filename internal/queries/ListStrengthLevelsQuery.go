package queries

import (
	"context"

	"github.com/skycruzer/fleet-management-v2-sub013/internal/password"
)

type ListStrengthLevels struct{}

// This query is public and static.

type ListStrengthLevelsResponse struct {
	Items []password.Level
}

func HandleListStrengthLevels(_ context.Context, _ ListStrengthLevels) (*ListStrengthLevelsResponse, error) {
	return &ListStrengthLevelsResponse{
		Items: password.Levels(),
	}, nil
}
