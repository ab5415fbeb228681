package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/arsenal-api/internal/domain/entity"
)

// BaseInput alta de una base.
type BaseInput struct {
	Name     string
	Location string
}

// AssetInput alta de un registro de stock (un ítem nominal en una base).
type AssetInput struct {
	Name     string
	Type     entity.AssetType
	BaseID   string
	Quantity int64 // stock inicial, ≥ 0
}

// PurchaseInput entrada para registrar una compra.
type PurchaseInput struct {
	AssetID   string
	BaseID    string
	Quantity  int64
	Cost      decimal.Decimal
	CreatedBy string
}

// TransferInput entrada para registrar un traslado entre bases.
type TransferInput struct {
	AssetID    string
	FromBaseID string
	ToBaseID   string
	Quantity   int64
	CreatedBy  string
}

// AssignmentInput entrada para registrar una asignación a personal.
type AssignmentInput struct {
	AssetID       string
	BaseID        string
	PersonnelID   string
	PersonnelName string
	Quantity      int64
	CreatedBy     string
}

// ExpenditureInput entrada para registrar un gasto/consumo.
type ExpenditureInput struct {
	AssetID   string
	BaseID    string
	Quantity  int64
	Reason    string
	CreatedBy string
}
