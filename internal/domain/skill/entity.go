package skill

type Skill struct {
	ID            string
	CompanyID     string
	CategoryID    string
	Name          string
	RequiredLevel float64
}

type Category struct {
	ID        string
	CompanyID string
	Name      string
}

// UncategorizedName labels skills whose category is unknown.
const UncategorizedName = "Uncategorized"
