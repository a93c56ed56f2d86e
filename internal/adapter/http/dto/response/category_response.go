package response

import "pintura_pro/internal/domain/entities"

type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"nome_categoria"`
}

func FromCategory(c entities.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name}
}

func FromCategories(categories []entities.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, FromCategory(c))
	}
	return out
}
