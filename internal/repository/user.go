package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/skanos/backend/internal/models"
	"github.com/skanos/backend/pkg/supabase"
)

type userRepository struct {
	client *supabase.Client
}

// NewUserRepository creates a new user repository
func NewUserRepository(client *supabase.Client) UserRepository {
	return &userRepository{client: client}
}

// userRow mirrors the users table columns we read; goal documents are
// stored as JSON columns on the user record.
type userRow struct {
	ID                  string                    `json:"id"`
	Email               string                    `json:"email"`
	Name                string                    `json:"name"`
	OnboardingCompleted bool                      `json:"onboarding_completed"`
	OnboardingStep      int                       `json:"onboarding_step"`
	HealthGoals         *models.HealthGoals       `json:"health_goals"`
	WealthGoals         *models.WealthGoals       `json:"wealth_goals"`
	SpiritualityGoals   *models.SpiritualityGoals `json:"spirituality_goals"`
}

func (r *userRepository) fetch(ctx context.Context, id string) (*userRow, error) {
	query := map[string]any{
		"id":     fmt.Sprintf("eq.%s", id),
		"select": "*",
	}

	body, err := r.client.Query(ctx, "users", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	var rows []userRow
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}

	return &rows[0], nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	row, err := r.fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	return &models.User{ID: row.ID, Email: row.Email, Name: row.Name}, nil
}

func (r *userRepository) GetOnboarding(ctx context.Context, userID string) (*models.OnboardingStatus, error) {
	row, err := r.fetch(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &models.OnboardingStatus{
		Completed:   row.OnboardingCompleted,
		CurrentStep: row.OnboardingStep,
		Goals: &models.UserGoals{
			Health:       row.HealthGoals,
			Wealth:       row.WealthGoals,
			Spirituality: row.SpiritualityGoals,
		},
	}, nil
}

func (r *userRepository) UpdateGoals(ctx context.Context, userID string, goals *models.UserGoals) error {
	data := map[string]any{}
	if goals.Health != nil {
		data["health_goals"] = goals.Health
	}
	if goals.Wealth != nil {
		data["wealth_goals"] = goals.Wealth
	}
	if goals.Spirituality != nil {
		data["spirituality_goals"] = goals.Spirituality
	}
	if len(data) == 0 {
		return nil
	}

	filters := map[string]any{
		"id": fmt.Sprintf("eq.%s", userID),
	}

	if _, err := r.client.UpdateWhere(ctx, "users", filters, data); err != nil {
		return fmt.Errorf("failed to update goals: %w", err)
	}

	return nil
}
