package ledger

import (
	"context"

	"github.com/jhoicas/arsenal-api/internal/domain/entity"
)

// Journal puerto de persistencia write-behind del almacén. Cada Append*
// persiste el evento Y la instantánea actualizada del Asset afectado en una
// misma transacción: la mutación en memoria solo se confirma si el journal
// acepta la escritura, así memoria y DB nunca divergen.
type Journal interface {
	SaveBase(ctx context.Context, base *entity.Base) error
	SaveAsset(ctx context.Context, asset *entity.Asset) error
	AppendPurchase(ctx context.Context, p *entity.Purchase, updated *entity.Asset) error
	AppendTransfer(ctx context.Context, t *entity.Transfer, updated *entity.Asset) error
	AppendAssignment(ctx context.Context, a *entity.Assignment, updated *entity.Asset) error
	AppendExpenditure(ctx context.Context, e *entity.Expenditure, updated *entity.Asset) error
	UpdateTransferStatus(ctx context.Context, id string, status entity.TransferStatus) error
}

// Snapshot estado completo del ledger, tal como se carga al arrancar.
type Snapshot struct {
	Bases        []entity.Base
	Assets       []entity.Asset
	Purchases    []entity.Purchase
	Transfers    []entity.Transfer
	Assignments  []entity.Assignment
	Expenditures []entity.Expenditure
}

// SnapshotLoader puerto de lectura inicial (arranque del proceso).
type SnapshotLoader interface {
	Load(ctx context.Context) (*Snapshot, error)
}
