package dto

type CategoryDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
