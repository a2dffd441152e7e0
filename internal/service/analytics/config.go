package analytics

import "github.com/cmlabs-hris/training-backend-go/internal/pkg/validator"

// Config holds every threshold the aggregator uses.
type Config struct {
	// CriticalGapThreshold is the skill gap above which a gap is critical.
	CriticalGapThreshold float64 `mapstructure:"critical_gap_threshold" validate:"gte=0"`
	// UpcomingDeadlineWindowDays is the lookahead for upcoming deadlines, inclusive.
	UpcomingDeadlineWindowDays int `mapstructure:"upcoming_deadline_window_days" validate:"gte=0"`
	// TopKRankingSize caps department, program and skill gap rankings.
	TopKRankingSize int `mapstructure:"top_k_ranking_size" validate:"gte=1"`
	// RecentTrainingsLimit caps the recent trainings list.
	RecentTrainingsLimit int `mapstructure:"recent_trainings_limit" validate:"gte=1"`
	// ReportingPeriodDays is how far back a training still counts for an employee.
	ReportingPeriodDays int `mapstructure:"reporting_period_days" validate:"gte=1"`
	// DedupeAcrossSources drops storage files already present as records.
	DedupeAcrossSources bool `mapstructure:"dedupe_across_sources"`

	// OverallStatus keys sit flat beside the others.
	OverallStatus StatusThresholds `mapstructure:",squash"`
}

// StatusThresholds decide the overall status label. Rates are percentages.
type StatusThresholds struct {
	OnTrackCompletionRate  float64 `mapstructure:"on_track_completion_rate" validate:"gte=0,lte=100"`
	OnTrackMaxOverdue      int     `mapstructure:"on_track_max_overdue" validate:"gte=0"`
	CriticalCompletionRate float64 `mapstructure:"critical_completion_rate" validate:"gte=0,lte=100,ltefield=OnTrackCompletionRate"`
	CriticalOverdueCount   int     `mapstructure:"critical_overdue_count" validate:"gte=1,gtfield=OnTrackMaxOverdue"`
}

func DefaultConfig() Config {
	return Config{
		CriticalGapThreshold:       2,
		UpcomingDeadlineWindowDays: 14,
		TopKRankingSize:            5,
		RecentTrainingsLimit:       5,
		ReportingPeriodDays:        365,
		DedupeAcrossSources:        false,
		OverallStatus: StatusThresholds{
			OnTrackCompletionRate:  75,
			OnTrackMaxOverdue:      0,
			CriticalCompletionRate: 40,
			CriticalOverdueCount:   5,
		},
	}
}

func (c Config) Validate() error {
	return validator.Struct(c)
}
