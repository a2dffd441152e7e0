package department

type Department struct {
	ID        string
	CompanyID string
	Name      string
}
