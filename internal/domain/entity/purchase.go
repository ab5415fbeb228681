package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase evento de compra: suma stock en una base. Append-only.
// AssetName y AssetType son instantáneas al momento de crear el evento y no
// se vuelven a derivar del Asset aunque este cambie después.
type Purchase struct {
	ID        string
	AssetID   string
	AssetName string
	AssetType AssetType
	BaseID    string
	Quantity  int64
	Date      string // ISO yyyy-MM-dd
	Cost      decimal.Decimal
	CreatedAt time.Time
	CreatedBy string
}

// OccurredOn fecha del evento (contrato ledger.Event).
func (p Purchase) OccurredOn() string { return p.Date }

// TypeOfAsset tipo de activo denormalizado (contrato ledger.Event).
func (p Purchase) TypeOfAsset() AssetType { return p.AssetType }

// InvolvesBase indica si el evento pertenece a la base (contrato ledger.Event).
func (p Purchase) InvolvesBase(baseID string) bool { return p.BaseID == baseID }
