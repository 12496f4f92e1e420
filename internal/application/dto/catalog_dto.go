package dto

import "time"

// CreateCatalogRequest alta de categoría o unidad (ambas son tablas de nombre único).
type CreateCatalogRequest struct {
	Name string `json:"name" validate:"required,min=1,max=120"`
}

// CatalogResponse salida de categoría o unidad.
type CatalogResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
