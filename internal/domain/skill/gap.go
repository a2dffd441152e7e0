package skill

import (
	"math"

	"github.com/cmlabs-hris/training-backend-go/internal/domain/employee"
)

// Gap is the shortfall of current against required, floored at zero.
func Gap(required, current float64) float64 {
	return math.Max(0, required-current)
}

// Stat is a skill with its levels derived from the workforce.
type Stat struct {
	Skill         Skill
	CurrentLevel  float64 // mean level among holders, 0 when nobody holds it
	Gap           float64
	Holders       int // employees with a recorded level
	BelowRequired int // holders whose own level is under RequiredLevel
}

// ComputeStats derives a Stat per skill, in the order of skills.
func ComputeStats(skills []Skill, employees []employee.Employee) []Stat {
	stats := make([]Stat, 0, len(skills))
	for _, s := range skills {
		var sum float64
		var holders, below int
		for _, e := range employees {
			level, ok := e.LevelFor(s.ID)
			if !ok {
				continue
			}
			sum += level
			holders++
			if level < s.RequiredLevel {
				below++
			}
		}

		var current float64
		if holders > 0 {
			current = sum / float64(holders)
		}

		stats = append(stats, Stat{
			Skill:         s,
			CurrentLevel:  current,
			Gap:           Gap(s.RequiredLevel, current),
			Holders:       holders,
			BelowRequired: below,
		})
	}
	return stats
}

// CategoryNames indexes category names by ID.
func CategoryNames(categories []Category) map[string]string {
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	return names
}
