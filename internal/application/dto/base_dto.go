package dto

import "time"

// CreateBaseRequest alta de una base (solo admin).
type CreateBaseRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

// BaseResponse salida de una base.
type BaseResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}
