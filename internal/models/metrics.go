package models

// Dashboard metric payloads. These are consumed directly by the dashboard
// widgets, which expect camelCase keys, unlike the snake_case CRUD resources.

// HealthDay is one day bucket in the health weekly chart
type HealthDay struct {
	Name    string  `json:"name"`
	Sleep   float64 `json:"sleep"`
	Steps   float64 `json:"steps"`
	Energy  float64 `json:"energy"`
	Workout float64 `json:"workout"`
	Date    string  `json:"date"`
}

// HealthMetrics is the health pillar dashboard payload
type HealthMetrics struct {
	WeeklyData    []HealthDay `json:"weeklyData"`
	TodaySleep    float64     `json:"todaySleep"`
	SleepGoal     float64     `json:"sleepGoal"`
	TodaySteps    float64     `json:"todaySteps"`
	StepGoal      float64     `json:"stepGoal"`
	CurrentWeight float64     `json:"currentWeight"`
	TargetWeight  float64     `json:"targetWeight"`
	WorkoutStreak int         `json:"workoutStreak"`
	EnergyLevel   float64     `json:"energyLevel"`
	HasData       bool        `json:"hasData"`
	IsOnboarded   bool        `json:"isOnboarded"`
	DataSource    string      `json:"dataSource"`
	LastSync      string      `json:"lastSync"`
}

// WealthMonth is one month bucket in the wealth chart
type WealthMonth struct {
	Month       string  `json:"month"`
	NetWorth    float64 `json:"netWorth"`
	Income      float64 `json:"income"`
	Expenses    float64 `json:"expenses"`
	Investments float64 `json:"investments"`
	Date        string  `json:"date"`
}

// WealthMetrics is the wealth pillar dashboard payload
type WealthMetrics struct {
	MonthlyData       []WealthMonth `json:"monthlyData"`
	CurrentNetWorth   float64       `json:"currentNetWorth"`
	MonthlyIncome     float64       `json:"monthlyIncome"`
	MonthlyExpenses   float64       `json:"monthlyExpenses"`
	InvestmentValue   float64       `json:"investmentValue"`
	SavingsRate       float64       `json:"savingsRate"`
	NetWorthChange    float64       `json:"netWorthChange"`
	NetWorthDirection string        `json:"netWorthDirection"`
	HasData           bool          `json:"hasData"`
	IsOnboarded       bool          `json:"isOnboarded"`
	DataSource        string        `json:"dataSource"`
	LastSync          string        `json:"lastSync"`
}

// SpiritualityDay is one day bucket in the spirituality weekly chart
type SpiritualityDay struct {
	Name        string  `json:"name"`
	Meditation  float64 `json:"meditation"`
	Gratitude   int     `json:"gratitude"`
	Journaling  float64 `json:"journaling"`
	Mindfulness float64 `json:"mindfulness"`
	Date        string  `json:"date"`
}

// SpiritualityMetrics is the spirituality pillar dashboard payload
type SpiritualityMetrics struct {
	WeeklyData       []SpiritualityDay `json:"weeklyData"`
	TodayMeditation  float64           `json:"todayMeditation"`
	MeditationGoal   float64           `json:"meditationGoal"`
	CurrentStreak    int               `json:"currentStreak"`
	LongestStreak    int               `json:"longestStreak"`
	TotalSessions    int               `json:"totalSessions"`
	AverageSession   float64           `json:"averageSession"`
	MindfulnessScore float64           `json:"mindfulnessScore"`
	GratitudeEntries int               `json:"gratitudeEntries"`
	JournalEntries   int               `json:"journalEntries"`
	HasData          bool              `json:"hasData"`
	IsOnboarded      bool              `json:"isOnboarded"`
	DataSource       string            `json:"dataSource"`
	LastSync         string            `json:"lastSync"`
}

// ActivityDay is one bucket of the analytics activity chart
type ActivityDay struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Date  string `json:"date"`
}

// AnalyticsTrend is the week-over-week movement summary
type AnalyticsTrend struct {
	WeeklyPercent float64 `json:"weeklyPercent"`
	Direction     string  `json:"direction"`
}

// Analytics is the cross-pillar activity payload
type Analytics struct {
	ActivityData   []ActivityDay  `json:"activityData"`
	PillarActivity map[string]int `json:"pillarActivity"`
	TotalEvents    int            `json:"totalEvents"`
	AverageDaily   float64        `json:"averageDaily"`
	Trends         AnalyticsTrend `json:"trends"`
	HasData        bool           `json:"hasData"`
	LastUpdated    string         `json:"lastUpdated"`
}

// DashboardData is the landing-page summary payload
type DashboardData struct {
	TodayEvents []Event    `json:"todayEvents"`
	QuickStats  QuickStats `json:"quickStats"`
	Pillars     []Pillar   `json:"pillars"`
}

// QuickStats are the dashboard headline counters
type QuickStats struct {
	TotalEvents   int64 `json:"totalEvents"`
	EntitiesCount int64 `json:"entitiesCount"`
	MemoriesCount int64 `json:"memoriesCount"`
}
