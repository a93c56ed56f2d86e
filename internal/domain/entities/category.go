package entities

// Category groups services by kind of job.

type Category struct {
	ID   string `json:"id"`
	Name string `json:"nome_categoria"`
}

// DefaultCategories seeds the category table on first use.
func DefaultCategories() []Category {
	return []Category{
		{ID: "1", Name: "Pintura geral"},
		{ID: "2", Name: "Para-choque"},
		{ID: "3", Name: "Capô"},
		{ID: "4", Name: "Lateral"},
		{ID: "5", Name: "Retoque"},
		{ID: "6", Name: "Polimento"},
	}
}
