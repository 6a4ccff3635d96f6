package models

// Default goal values used when a user has not completed onboarding.
const (
	DefaultSleepGoal      = 8.0
	DefaultStepGoal       = 10000.0
	DefaultMeditationGoal = 20.0
)

// HealthGoals are the user's health targets captured during onboarding
type HealthGoals struct {
	SleepGoal    float64 `json:"sleep_goal" validate:"gte=0,lte=24"`
	StepGoal     float64 `json:"step_goal" validate:"gte=0"`
	TargetWeight float64 `json:"target_weight" validate:"gte=0"`
	WaterGoal    float64 `json:"water_goal" validate:"gte=0"`
}

// WealthGoals are the user's financial targets
type WealthGoals struct {
	TargetNetWorth     float64 `json:"target_net_worth" validate:"gte=0"`
	MonthlySavingsGoal float64 `json:"monthly_savings_goal" validate:"gte=0"`
}

// SpiritualityGoals are the user's practice targets
type SpiritualityGoals struct {
	MeditationGoal float64 `json:"meditation_goal" validate:"gte=0,lte=1440"`
}

// UserGoals groups all per-pillar goals stored on the user record
type UserGoals struct {
	Health       *HealthGoals       `json:"health,omitempty"`
	Wealth       *WealthGoals       `json:"wealth,omitempty"`
	Spirituality *SpiritualityGoals `json:"spirituality,omitempty"`
}

// OnboardingStatus describes how far a user has gotten through onboarding
type OnboardingStatus struct {
	Completed   bool       `json:"completed"`
	CurrentStep int        `json:"current_step"`
	Goals       *UserGoals `json:"goals,omitempty"`
}

// UpdateGoalsRequest is the request to replace the user's goals
type UpdateGoalsRequest struct {
	Health       *HealthGoals       `json:"health"`
	Wealth       *WealthGoals       `json:"wealth"`
	Spirituality *SpiritualityGoals `json:"spirituality"`
}

// SleepGoalOrDefault returns the configured sleep goal or the default
func (g *UserGoals) SleepGoalOrDefault() float64 {
	if g != nil && g.Health != nil && g.Health.SleepGoal > 0 {
		return g.Health.SleepGoal
	}
	return DefaultSleepGoal
}

// StepGoalOrDefault returns the configured step goal or the default
func (g *UserGoals) StepGoalOrDefault() float64 {
	if g != nil && g.Health != nil && g.Health.StepGoal > 0 {
		return g.Health.StepGoal
	}
	return DefaultStepGoal
}

// TargetWeightOrZero returns the configured target weight, or 0 when unset
func (g *UserGoals) TargetWeightOrZero() float64 {
	if g != nil && g.Health != nil {
		return g.Health.TargetWeight
	}
	return 0
}

// MeditationGoalOrDefault returns the configured meditation goal or the default
func (g *UserGoals) MeditationGoalOrDefault() float64 {
	if g != nil && g.Spirituality != nil && g.Spirituality.MeditationGoal > 0 {
		return g.Spirituality.MeditationGoal
	}
	return DefaultMeditationGoal
}
