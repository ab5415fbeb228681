package entity

import "time"

// Base representa una base militar: un sitio físico/organizacional con stock
// propio e independiente de cada activo. Datos de referencia, inmutables
// después de su creación.
type Base struct {
	ID        string
	Name      string
	Location  string
	CreatedAt time.Time
}
