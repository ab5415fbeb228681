package entity

import "time"

// TransferStatus estado de un traslado entre bases.
type TransferStatus string

// Progresión monótona: pending → in-transit → completed.
const (
	TransferPending   TransferStatus = "pending"
	TransferInTransit TransferStatus = "in-transit"
	TransferCompleted TransferStatus = "completed"
)

// Next devuelve el siguiente estado de la progresión. ok=false si el traslado
// ya está completado (el estado nunca retrocede ni se repite).
func (s TransferStatus) Next() (next TransferStatus, ok bool) {
	switch s {
	case TransferPending:
		return TransferInTransit, true
	case TransferInTransit:
		return TransferCompleted, true
	}
	return s, false
}

// Transfer evento de traslado de stock entre dos bases distintas. Append-only
// salvo el avance de Status. El stock se debita de la base origen al CREAR el
// traslado (no al completarlo): mientras está en tránsito la cantidad no es
// visible en ninguna de las dos bases.
type Transfer struct {
	ID         string
	AssetID    string
	AssetName  string
	AssetType  AssetType
	FromBaseID string
	ToBaseID   string
	Quantity   int64
	Date       string // ISO yyyy-MM-dd
	Status     TransferStatus
	CreatedAt  time.Time
	CreatedBy  string
}

// OccurredOn fecha del evento (contrato ledger.Event).
func (t Transfer) OccurredOn() string { return t.Date }

// TypeOfAsset tipo de activo denormalizado (contrato ledger.Event).
func (t Transfer) TypeOfAsset() AssetType { return t.AssetType }

// InvolvesBase es bilateral: un traslado es relevante tanto para la base
// origen como para la base destino.
func (t Transfer) InvolvesBase(baseID string) bool {
	return t.FromBaseID == baseID || t.ToBaseID == baseID
}
