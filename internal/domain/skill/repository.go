package skill

import "context"

type SkillRepository interface {
	GetByCompanyID(ctx context.Context, companyID string) ([]Skill, error)
	GetCategoriesByCompanyID(ctx context.Context, companyID string) ([]Category, error)
	GetByIDs(ctx context.Context, companyID string, ids []string) ([]Skill, error)
}
