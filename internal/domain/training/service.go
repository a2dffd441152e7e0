package training

import "context"

// TrainingService assembles the training pages
type TrainingService interface {
	// GetDetail returns the training detail bundle; date format "YYYY-MM-DD", default today
	GetDetail(ctx context.Context, id string, date string) (*TrainingDetailResponse, error)

	// GetEditOptions returns dropdown lists; empty id means a new training
	GetEditOptions(ctx context.Context, id string) (*EditOptionsResponse, error)
}
