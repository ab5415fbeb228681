package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	appledger "github.com/jhoicas/arsenal-api/internal/application/ledger"
	"github.com/jhoicas/arsenal-api/internal/domain/entity"
)

var _ appledger.Journal = (*LedgerJournal)(nil)

// LedgerJournal implementación del puerto Journal sobre PostgreSQL. Cada
// Append* escribe el evento y la instantánea actualizada del Asset en UNA
// transacción: o ambas filas quedan, o ninguna.
type LedgerJournal struct {
	pool *pgxpool.Pool
}

// NewLedgerJournal construye el adaptador de persistencia del ledger.
func NewLedgerJournal(pool *pgxpool.Pool) *LedgerJournal {
	return &LedgerJournal{pool: pool}
}

// SaveBase persiste una base nueva.
func (j *LedgerJournal) SaveBase(ctx context.Context, base *entity.Base) error {
	query := `
		INSERT INTO bases (id, name, location, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := j.pool.Exec(ctx, query, base.ID, base.Name, base.Location, base.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert base: %w", err)
	}
	return nil
}

// SaveAsset persiste el alta de un registro de stock.
func (j *LedgerJournal) SaveAsset(ctx context.Context, asset *entity.Asset) error {
	if err := j.upsertAsset(ctx, j.pool, asset); err != nil {
		return fmt.Errorf("insert asset: %w", err)
	}
	return nil
}

const upsertAssetSQL = `
	INSERT INTO assets (id, name, type, base_id, status, quantity, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (id)
	DO UPDATE SET status = EXCLUDED.status, quantity = EXCLUDED.quantity, updated_at = EXCLUDED.updated_at`

// AppendPurchase inserta la compra y actualiza el asset en una transacción.
func (j *LedgerJournal) AppendPurchase(ctx context.Context, p *entity.Purchase, updated *entity.Asset) error {
	return j.inTx(ctx, "append purchase", func(tx pgx.Tx) error {
		query := `
			INSERT INTO purchases (id, asset_id, asset_name, asset_type, base_id, quantity, date, cost, created_at, created_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
		if _, err := tx.Exec(ctx, query,
			p.ID, p.AssetID, p.AssetName, p.AssetType, p.BaseID,
			p.Quantity, p.Date, p.Cost, p.CreatedAt, nullable(p.CreatedBy),
		); err != nil {
			return err
		}
		return j.upsertAsset(ctx, tx, updated)
	})
}

// AppendTransfer inserta el traslado y actualiza el asset origen en una transacción.
func (j *LedgerJournal) AppendTransfer(ctx context.Context, t *entity.Transfer, updated *entity.Asset) error {
	return j.inTx(ctx, "append transfer", func(tx pgx.Tx) error {
		query := `
			INSERT INTO transfers (id, asset_id, asset_name, asset_type, from_base_id, to_base_id, quantity, date, status, created_at, created_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
		if _, err := tx.Exec(ctx, query,
			t.ID, t.AssetID, t.AssetName, t.AssetType, t.FromBaseID, t.ToBaseID,
			t.Quantity, t.Date, t.Status, t.CreatedAt, nullable(t.CreatedBy),
		); err != nil {
			return err
		}
		return j.upsertAsset(ctx, tx, updated)
	})
}

// AppendAssignment inserta la asignación y actualiza el asset en una transacción.
func (j *LedgerJournal) AppendAssignment(ctx context.Context, a *entity.Assignment, updated *entity.Asset) error {
	return j.inTx(ctx, "append assignment", func(tx pgx.Tx) error {
		query := `
			INSERT INTO assignments (id, asset_id, asset_name, asset_type, base_id, personnel_id, personnel_name, quantity, date, created_at, created_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
		if _, err := tx.Exec(ctx, query,
			a.ID, a.AssetID, a.AssetName, a.AssetType, a.BaseID,
			a.PersonnelID, a.PersonnelName, a.Quantity, a.Date, a.CreatedAt, nullable(a.CreatedBy),
		); err != nil {
			return err
		}
		return j.upsertAsset(ctx, tx, updated)
	})
}

// AppendExpenditure inserta el gasto y actualiza el asset en una transacción.
func (j *LedgerJournal) AppendExpenditure(ctx context.Context, e *entity.Expenditure, updated *entity.Asset) error {
	return j.inTx(ctx, "append expenditure", func(tx pgx.Tx) error {
		query := `
			INSERT INTO expenditures (id, asset_id, asset_name, asset_type, base_id, quantity, date, reason, created_at, created_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
		if _, err := tx.Exec(ctx, query,
			e.ID, e.AssetID, e.AssetName, e.AssetType, e.BaseID,
			e.Quantity, e.Date, e.Reason, e.CreatedAt, nullable(e.CreatedBy),
		); err != nil {
			return err
		}
		return j.upsertAsset(ctx, tx, updated)
	})
}

// UpdateTransferStatus persiste el avance de estado de un traslado.
func (j *LedgerJournal) UpdateTransferStatus(ctx context.Context, id string, status entity.TransferStatus) error {
	_, err := j.pool.Exec(ctx, `UPDATE transfers SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update transfer status: %w", err)
	}
	return nil
}

func (j *LedgerJournal) upsertAsset(ctx context.Context, q Querier, asset *entity.Asset) error {
	_, err := q.Exec(ctx, upsertAssetSQL,
		asset.ID, asset.Name, asset.Type, asset.BaseID, asset.Status,
		asset.Quantity, asset.CreatedAt, asset.UpdatedAt,
	)
	return err
}

// inTx ejecuta fn en una transacción con Commit/Rollback.
func (j *LedgerJournal) inTx(ctx context.Context, op string, fn func(tx pgx.Tx) error) error {
	tx, err := j.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: begin: %w", op, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: commit: %w", op, err)
	}
	return nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
