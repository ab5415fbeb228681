package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	appledger "github.com/jhoicas/arsenal-api/internal/application/ledger"
	"github.com/jhoicas/arsenal-api/internal/domain/entity"
)

var _ appledger.SnapshotLoader = (*SnapshotLoader)(nil)

// SnapshotLoader carga el estado completo del ledger al arrancar el proceso:
// bases, assets y las cuatro colecciones de eventos en orden de creación.
type SnapshotLoader struct {
	pool *pgxpool.Pool
}

// NewSnapshotLoader construye el cargador.
func NewSnapshotLoader(pool *pgxpool.Pool) *SnapshotLoader {
	return &SnapshotLoader{pool: pool}
}

// Load lee las seis tablas y devuelve la instantánea para sembrar el Store.
func (l *SnapshotLoader) Load(ctx context.Context) (*appledger.Snapshot, error) {
	snap := &appledger.Snapshot{}
	var err error
	if snap.Bases, err = l.loadBases(ctx); err != nil {
		return nil, err
	}
	if snap.Assets, err = l.loadAssets(ctx); err != nil {
		return nil, err
	}
	if snap.Purchases, err = l.loadPurchases(ctx); err != nil {
		return nil, err
	}
	if snap.Transfers, err = l.loadTransfers(ctx); err != nil {
		return nil, err
	}
	if snap.Assignments, err = l.loadAssignments(ctx); err != nil {
		return nil, err
	}
	if snap.Expenditures, err = l.loadExpenditures(ctx); err != nil {
		return nil, err
	}
	return snap, nil
}

func (l *SnapshotLoader) loadBases(ctx context.Context) ([]entity.Base, error) {
	rows, err := l.pool.Query(ctx, `SELECT id, name, location, created_at FROM bases ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("load bases: %w", err)
	}
	defer rows.Close()
	var out []entity.Base
	for rows.Next() {
		var b entity.Base
		if err := rows.Scan(&b.ID, &b.Name, &b.Location, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan base: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (l *SnapshotLoader) loadAssets(ctx context.Context) ([]entity.Asset, error) {
	rows, err := l.pool.Query(ctx, `
		SELECT id, name, type, base_id, status, quantity, created_at, updated_at
		FROM assets ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("load assets: %w", err)
	}
	defer rows.Close()
	var out []entity.Asset
	for rows.Next() {
		var a entity.Asset
		if err := rows.Scan(&a.ID, &a.Name, &a.Type, &a.BaseID, &a.Status, &a.Quantity, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan asset: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (l *SnapshotLoader) loadPurchases(ctx context.Context) ([]entity.Purchase, error) {
	rows, err := l.pool.Query(ctx, `
		SELECT id, asset_id, asset_name, asset_type, base_id, quantity, date::text, cost, created_at, COALESCE(created_by, '')
		FROM purchases ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("load purchases: %w", err)
	}
	defer rows.Close()
	var out []entity.Purchase
	for rows.Next() {
		var p entity.Purchase
		if err := rows.Scan(&p.ID, &p.AssetID, &p.AssetName, &p.AssetType, &p.BaseID,
			&p.Quantity, &p.Date, &p.Cost, &p.CreatedAt, &p.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (l *SnapshotLoader) loadTransfers(ctx context.Context) ([]entity.Transfer, error) {
	rows, err := l.pool.Query(ctx, `
		SELECT id, asset_id, asset_name, asset_type, from_base_id, to_base_id, quantity, date::text, status, created_at, COALESCE(created_by, '')
		FROM transfers ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("load transfers: %w", err)
	}
	defer rows.Close()
	var out []entity.Transfer
	for rows.Next() {
		var t entity.Transfer
		if err := rows.Scan(&t.ID, &t.AssetID, &t.AssetName, &t.AssetType, &t.FromBaseID, &t.ToBaseID,
			&t.Quantity, &t.Date, &t.Status, &t.CreatedAt, &t.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (l *SnapshotLoader) loadAssignments(ctx context.Context) ([]entity.Assignment, error) {
	rows, err := l.pool.Query(ctx, `
		SELECT id, asset_id, asset_name, asset_type, base_id, personnel_id, personnel_name, quantity, date::text, created_at, COALESCE(created_by, '')
		FROM assignments ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("load assignments: %w", err)
	}
	defer rows.Close()
	var out []entity.Assignment
	for rows.Next() {
		var a entity.Assignment
		if err := rows.Scan(&a.ID, &a.AssetID, &a.AssetName, &a.AssetType, &a.BaseID,
			&a.PersonnelID, &a.PersonnelName, &a.Quantity, &a.Date, &a.CreatedAt, &a.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (l *SnapshotLoader) loadExpenditures(ctx context.Context) ([]entity.Expenditure, error) {
	rows, err := l.pool.Query(ctx, `
		SELECT id, asset_id, asset_name, asset_type, base_id, quantity, date::text, reason, created_at, COALESCE(created_by, '')
		FROM expenditures ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("load expenditures: %w", err)
	}
	defer rows.Close()
	var out []entity.Expenditure
	for rows.Next() {
		var e entity.Expenditure
		if err := rows.Scan(&e.ID, &e.AssetID, &e.AssetName, &e.AssetType, &e.BaseID,
			&e.Quantity, &e.Date, &e.Reason, &e.CreatedAt, &e.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan expenditure: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
