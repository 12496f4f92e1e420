package entity

import "time"

// Category categoría de producto (tabla de nombres únicos, ej. "Secos", "Perecederos").
type Category struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

// Unit unidad de medida (tabla de nombres únicos, ej. "kg", "litro", "unidad").
type Unit struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
