package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/training-backend-go/internal/domain/skill"
	"github.com/cmlabs-hris/training-backend-go/internal/pkg/database"
)

type skillRepositoryImpl struct {
	db *database.DB
}

func NewSkillRepository(db *database.DB) skill.SkillRepository {
	return &skillRepositoryImpl{db: db}
}

func (r *skillRepositoryImpl) listSkills(ctx context.Context, query string, args ...interface{}) ([]skill.Skill, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	defer rows.Close()

	skills := []skill.Skill{}
	for rows.Next() {
		var s skill.Skill
		if err := rows.Scan(&s.ID, &s.CompanyID, &s.CategoryID, &s.Name, &s.RequiredLevel); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}

	return skills, rows.Err()
}

func (r *skillRepositoryImpl) GetByCompanyID(ctx context.Context, companyID string) ([]skill.Skill, error) {
	return r.listSkills(ctx, `
		SELECT id, company_id, COALESCE(category_id::text, ''), name, required_level::float8
		FROM skills
		WHERE company_id = $1 AND deleted_at IS NULL
		ORDER BY name, id
	`, companyID)
}

func (r *skillRepositoryImpl) GetByIDs(ctx context.Context, companyID string, ids []string) ([]skill.Skill, error) {
	if len(ids) == 0 {
		return []skill.Skill{}, nil
	}
	return r.listSkills(ctx, `
		SELECT id, company_id, COALESCE(category_id::text, ''), name, required_level::float8
		FROM skills
		WHERE company_id = $1 AND id::text = ANY($2) AND deleted_at IS NULL
		ORDER BY name, id
	`, companyID, ids)
}

func (r *skillRepositoryImpl) GetCategoriesByCompanyID(ctx context.Context, companyID string) ([]skill.Category, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name
		FROM skill_categories
		WHERE company_id = $1
		ORDER BY name, id
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list skill categories: %w", err)
	}
	defer rows.Close()

	categories := []skill.Category{}
	for rows.Next() {
		var c skill.Category
		if err := rows.Scan(&c.ID, &c.CompanyID, &c.Name); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}
