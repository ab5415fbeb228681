package dto

import "time"

// CreateAssetRequest alta de un registro de stock en una base (solo admin).
type CreateAssetRequest struct {
	Name     string `json:"name"`
	Type     string `json:"type"` // weapon | vehicle | ammunition | equipment
	BaseID   string `json:"base_id"`
	Quantity int64  `json:"quantity"` // stock inicial
}

// AssetResponse salida de un registro de stock.
type AssetResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	BaseID    string    `json:"base_id"`
	Status    string    `json:"status"`
	Quantity  int64     `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
