package entity

import "time"

// Expenditure evento de gasto: consumo o pérdida permanente de stock
// (municiones en entrenamiento, equipo dado de baja, etc.). Append-only.
type Expenditure struct {
	ID        string
	AssetID   string
	AssetName string
	AssetType AssetType
	BaseID    string
	Quantity  int64
	Date      string // ISO yyyy-MM-dd
	Reason    string
	CreatedAt time.Time
	CreatedBy string
}

// OccurredOn fecha del evento (contrato ledger.Event).
func (e Expenditure) OccurredOn() string { return e.Date }

// TypeOfAsset tipo de activo denormalizado (contrato ledger.Event).
func (e Expenditure) TypeOfAsset() AssetType { return e.AssetType }

// InvolvesBase indica si el evento pertenece a la base (contrato ledger.Event).
func (e Expenditure) InvolvesBase(baseID string) bool { return e.BaseID == baseID }
