package entity

import "time"

// Assignment evento de asignación de stock a una persona concreta. No es
// retornable por defecto: la cantidad sale del stock de la base al crearse.
type Assignment struct {
	ID            string
	AssetID       string
	AssetName     string
	AssetType     AssetType
	BaseID        string
	PersonnelID   string
	PersonnelName string
	Quantity      int64
	Date          string // ISO yyyy-MM-dd
	CreatedAt     time.Time
	CreatedBy     string
}

// OccurredOn fecha del evento (contrato ledger.Event).
func (a Assignment) OccurredOn() string { return a.Date }

// TypeOfAsset tipo de activo denormalizado (contrato ledger.Event).
func (a Assignment) TypeOfAsset() AssetType { return a.AssetType }

// InvolvesBase indica si el evento pertenece a la base (contrato ledger.Event).
func (a Assignment) InvolvesBase(baseID string) bool { return a.BaseID == baseID }
