package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/skanos/backend/internal/models"
	"github.com/skanos/backend/internal/repository"
)

type onboardingService struct {
	userRepo repository.UserRepository
	validate *validator.Validate
}

// NewOnboardingService creates a new onboarding service
func NewOnboardingService(userRepo repository.UserRepository) OnboardingService {
	return &onboardingService{
		userRepo: userRepo,
		validate: validator.New(),
	}
}

// Status returns the user's onboarding progress. A user without an
// onboarding record is reported as step zero, not an error.
func (s *onboardingService) Status(ctx context.Context, userID string) (*models.OnboardingStatus, error) {
	status, err := s.userRepo.GetOnboarding(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &models.OnboardingStatus{}, nil
		}
		return nil, fmt.Errorf("failed to fetch onboarding status: %w", err)
	}
	return status, nil
}

func (s *onboardingService) UpdateGoals(ctx context.Context, userID string, req *models.UpdateGoalsRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return fmt.Errorf("invalid goals: %w", err)
	}

	goals := &models.UserGoals{
		Health:       req.Health,
		Wealth:       req.Wealth,
		Spirituality: req.Spirituality,
	}

	if err := s.userRepo.UpdateGoals(ctx, userID, goals); err != nil {
		return fmt.Errorf("failed to update goals: %w", err)
	}

	return nil
}
