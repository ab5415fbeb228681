// Package ledger implementa el almacén de eventos del libro de activos: las
// cuatro colecciones append-only (compras, traslados, asignaciones y gastos)
// más la tabla derivada de Assets. Toda mutación pasa por los métodos Record*
// de un Store construido explícitamente en main — no hay estado global.
package ledger

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/arsenal-api/internal/domain"
	"github.com/jhoicas/arsenal-api/internal/domain/entity"
	domledger "github.com/jhoicas/arsenal-api/internal/domain/ledger"
)

const dateLayout = "2006-01-02" // fechas de evento en ISO yyyy-MM-dd

// Store almacén en memoria del ledger. Un único mutex serializa todos los
// escritores, lo que basta para preservar la no-negatividad del stock incluso
// con traslados que tocan dos bases. Las lecturas devuelven copias.
//
// El estado en memoria es la fuente de verdad; el Journal (opcional) es el
// colaborador de persistencia: se invoca dentro de la sección crítica y la
// mutación en memoria solo se aplica si la escritura fue aceptada.
type Store struct {
	mu sync.RWMutex

	bases  map[string]entity.Base
	assets map[string]*entity.Asset // clave: Asset.ID; el par (AssetID, BaseID) se valida al mutar

	purchases    []entity.Purchase
	transfers    []entity.Transfer
	assignments  []entity.Assignment
	expenditures []entity.Expenditure

	journal Journal // nil = solo memoria (tests)
	agg     *domledger.Aggregator
}

// NewStore construye el almacén. journal puede ser nil (modo solo memoria);
// opening nil usa la estrategia de balance de referencia.
func NewStore(journal Journal, opening domledger.BalanceStrategy) *Store {
	return &Store{
		bases:   make(map[string]entity.Base),
		assets:  make(map[string]*entity.Asset),
		journal: journal,
		agg:     domledger.NewAggregator(opening),
	}
}

// Restore siembra el almacén con una instantánea cargada de la persistencia.
// Pensado para el arranque; reemplaza cualquier estado previo.
func (s *Store) Restore(snap *Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bases = make(map[string]entity.Base, len(snap.Bases))
	for _, b := range snap.Bases {
		s.bases[b.ID] = b
	}
	s.assets = make(map[string]*entity.Asset, len(snap.Assets))
	for i := range snap.Assets {
		a := snap.Assets[i]
		s.assets[a.ID] = &a
	}
	s.purchases = append([]entity.Purchase(nil), snap.Purchases...)
	s.transfers = append([]entity.Transfer(nil), snap.Transfers...)
	s.assignments = append([]entity.Assignment(nil), snap.Assignments...)
	s.expenditures = append([]entity.Expenditure(nil), snap.Expenditures...)
}

// ── Altas de datos de referencia ─────────────────────────────────────────────

// AddBase registra una base nueva. Las bases son inmutables después de esto.
func (s *Store) AddBase(ctx context.Context, in BaseInput) (*entity.Base, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	b := entity.Base{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Location:  in.Location,
		CreatedAt: time.Now(),
	}
	if s.journal != nil {
		if err := s.journal.SaveBase(ctx, &b); err != nil {
			return nil, fmt.Errorf("journal: save base: %w", err)
		}
	}
	s.bases[b.ID] = b
	return &b, nil
}

// RegisterAsset da de alta el registro de stock de un ítem en una base.
// Es la única manera de que exista un par (AssetID, BaseID): las operaciones
// del ledger jamás crean registros de Asset implícitamente.
func (s *Store) RegisterAsset(ctx context.Context, in AssetInput) (*entity.Asset, error) {
	if in.Name == "" || !in.Type.Valid() || in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bases[in.BaseID]; !ok {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	a := entity.Asset{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Type:      in.Type,
		BaseID:    in.BaseID,
		Status:    entity.AssetAvailable,
		Quantity:  in.Quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if s.journal != nil {
		if err := s.journal.SaveAsset(ctx, &a); err != nil {
			return nil, fmt.Errorf("journal: save asset: %w", err)
		}
	}
	s.assets[a.ID] = &a
	return &a, nil
}

// ── Operaciones del ledger ───────────────────────────────────────────────────

// RecordPurchase registra una compra y acredita el stock del activo en la
// base. Falla con ErrInvalidInput si la cantidad o el costo están fuera de
// rango y con ErrNotFound si el activo no existe en esa base.
func (s *Store) RecordPurchase(ctx context.Context, in PurchaseInput) (*entity.Purchase, error) {
	if in.Quantity <= 0 || in.Cost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	asset, updated, err := s.stageDelta(in.AssetID, in.BaseID, in.Quantity, "")
	if err != nil {
		return nil, err
	}
	p := &entity.Purchase{
		ID:        uuid.New().String(),
		AssetID:   asset.ID,
		AssetName: asset.Name,
		AssetType: asset.Type,
		BaseID:    asset.BaseID,
		Quantity:  in.Quantity,
		Date:      today(),
		Cost:      in.Cost,
		CreatedAt: time.Now(),
		CreatedBy: in.CreatedBy,
	}
	if s.journal != nil {
		if err := s.journal.AppendPurchase(ctx, p, updated); err != nil {
			return nil, fmt.Errorf("journal: append purchase: %w", err)
		}
	}
	*asset = *updated
	s.purchases = append(s.purchases, *p)
	return p, nil
}

// RecordTransfer registra un traslado entre dos bases distintas en estado
// pending y debita el stock de la base origen INMEDIATAMENTE (no al
// completar). Falla con ErrInvalidInput si origen == destino o la cantidad no
// es positiva, y con ErrInsufficientStock si la base origen no cubre la
// cantidad; en ese caso no se crea ningún traslado.
func (s *Store) RecordTransfer(ctx context.Context, in TransferInput) (*entity.Transfer, error) {
	if in.Quantity <= 0 || in.FromBaseID == in.ToBaseID {
		return nil, domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bases[in.ToBaseID]; !ok {
		return nil, domain.ErrNotFound
	}
	asset, updated, err := s.stageDelta(in.AssetID, in.FromBaseID, -in.Quantity, "")
	if err != nil {
		return nil, err
	}
	t := &entity.Transfer{
		ID:         uuid.New().String(),
		AssetID:    asset.ID,
		AssetName:  asset.Name,
		AssetType:  asset.Type,
		FromBaseID: in.FromBaseID,
		ToBaseID:   in.ToBaseID,
		Quantity:   in.Quantity,
		Date:       today(),
		Status:     entity.TransferPending,
		CreatedAt:  time.Now(),
		CreatedBy:  in.CreatedBy,
	}
	if s.journal != nil {
		if err := s.journal.AppendTransfer(ctx, t, updated); err != nil {
			return nil, fmt.Errorf("journal: append transfer: %w", err)
		}
	}
	*asset = *updated
	s.transfers = append(s.transfers, *t)
	return t, nil
}

// AdvanceTransfer avanza el estado del traslado un paso:
// pending → in-transit → completed. Falla con ErrConflict si ya está
// completado (la progresión nunca retrocede). Completar no acredita stock en
// la base destino: el débito se hizo al crear el traslado y la entrada solo
// se refleja en las métricas (TransferIn), nunca en la tabla de Assets.
func (s *Store) AdvanceTransfer(ctx context.Context, id string) (*entity.Transfer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.transfers {
		if s.transfers[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, domain.ErrNotFound
	}
	next, ok := s.transfers[idx].Status.Next()
	if !ok {
		return nil, domain.ErrConflict
	}
	if s.journal != nil {
		if err := s.journal.UpdateTransferStatus(ctx, id, next); err != nil {
			return nil, fmt.Errorf("journal: update transfer status: %w", err)
		}
	}
	s.transfers[idx].Status = next
	t := s.transfers[idx]
	return &t, nil
}

// RecordAssignment registra una asignación a una persona, debita el stock y
// marca el activo como assigned. PersonnelID y PersonnelName son obligatorios.
func (s *Store) RecordAssignment(ctx context.Context, in AssignmentInput) (*entity.Assignment, error) {
	if in.Quantity <= 0 || in.PersonnelID == "" || in.PersonnelName == "" {
		return nil, domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	asset, updated, err := s.stageDelta(in.AssetID, in.BaseID, -in.Quantity, entity.AssetAssigned)
	if err != nil {
		return nil, err
	}
	a := &entity.Assignment{
		ID:            uuid.New().String(),
		AssetID:       asset.ID,
		AssetName:     asset.Name,
		AssetType:     asset.Type,
		BaseID:        in.BaseID,
		PersonnelID:   in.PersonnelID,
		PersonnelName: in.PersonnelName,
		Quantity:      in.Quantity,
		Date:          today(),
		CreatedAt:     time.Now(),
		CreatedBy:     in.CreatedBy,
	}
	if s.journal != nil {
		if err := s.journal.AppendAssignment(ctx, a, updated); err != nil {
			return nil, fmt.Errorf("journal: append assignment: %w", err)
		}
	}
	*asset = *updated
	s.assignments = append(s.assignments, *a)
	return a, nil
}

// RecordExpenditure registra un gasto/consumo permanente con motivo
// obligatorio. Debita el stock; si la cantidad resultante llega a 0 el activo
// pasa a expended, si no el estado se mantiene.
func (s *Store) RecordExpenditure(ctx context.Context, in ExpenditureInput) (*entity.Expenditure, error) {
	if in.Quantity <= 0 || in.Reason == "" {
		return nil, domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	asset, updated, err := s.stageDelta(in.AssetID, in.BaseID, -in.Quantity, "")
	if err != nil {
		return nil, err
	}
	if updated.Quantity == 0 {
		updated.Status = entity.AssetExpended
	}
	e := &entity.Expenditure{
		ID:        uuid.New().String(),
		AssetID:   asset.ID,
		AssetName: asset.Name,
		AssetType: asset.Type,
		BaseID:    in.BaseID,
		Quantity:  in.Quantity,
		Date:      today(),
		Reason:    in.Reason,
		CreatedAt: time.Now(),
		CreatedBy: in.CreatedBy,
	}
	if s.journal != nil {
		if err := s.journal.AppendExpenditure(ctx, e, updated); err != nil {
			return nil, fmt.Errorf("journal: append expenditure: %w", err)
		}
	}
	*asset = *updated
	s.expenditures = append(s.expenditures, *e)
	return e, nil
}

// stageDelta es el mutador de stock: localiza el único Asset que casa con
// (assetID, baseID) y prepara la aplicación de un delta con signo sin tocar
// aún la tabla. Nunca crea registros (ErrNotFound si el par no existe) y
// rechaza con ErrInsufficientStock cualquier débito que dejaría la cantidad
// negativa — sin aplicación parcial. newStatus vacío conserva el estado.
//
// Devuelve el puntero al registro vivo y la copia actualizada; el caller
// confirma con *asset = *updated una vez aceptada la escritura en el journal.
func (s *Store) stageDelta(assetID, baseID string, delta int64, newStatus entity.AssetStatus) (asset, updated *entity.Asset, err error) {
	a, ok := s.assets[assetID]
	if !ok || a.BaseID != baseID {
		return nil, nil, domain.ErrNotFound
	}
	if delta < 0 && -delta > a.Quantity {
		return nil, nil, domain.ErrInsufficientStock
	}
	up := *a
	up.Quantity += delta
	if newStatus != "" {
		up.Status = newStatus
	}
	up.UpdatedAt = time.Now()
	return a, &up, nil
}

// ── Consultas (solo lectura, copias) ─────────────────────────────────────────

// Bases devuelve todas las bases ordenadas por nombre.
func (s *Store) Bases() []entity.Base {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Base, 0, len(s.bases))
	for _, b := range s.bases {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Base devuelve una base por ID.
func (s *Store) Base(id string) (*entity.Base, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bases[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &b, nil
}

// Assets devuelve los registros de stock, opcionalmente acotados por base y
// tipo, ordenados por nombre.
func (s *Store) Assets(baseID string, assetType entity.AssetType) []entity.Asset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Asset, 0, len(s.assets))
	for _, a := range s.assets {
		if baseID != "" && a.BaseID != baseID {
			continue
		}
		if assetType != "" && a.Type != assetType {
			continue
		}
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Asset devuelve un registro de stock por ID.
func (s *Store) Asset(id string) (*entity.Asset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.assets[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

// Purchases devuelve las compras que cumplen el filtro.
func (s *Store) Purchases(opts domledger.FilterOptions) []entity.Purchase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domledger.Filter(s.purchases, opts)
}

// Transfers devuelve los traslados que cumplen el filtro (una base casa con
// cualquiera de los dos extremos).
func (s *Store) Transfers(opts domledger.FilterOptions) []entity.Transfer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domledger.Filter(s.transfers, opts)
}

// Assignments devuelve las asignaciones que cumplen el filtro.
func (s *Store) Assignments(opts domledger.FilterOptions) []entity.Assignment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domledger.Filter(s.assignments, opts)
}

// Expenditures devuelve los gastos que cumplen el filtro.
func (s *Store) Expenditures(opts domledger.FilterOptions) []entity.Expenditure {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domledger.Filter(s.expenditures, opts)
}

// Metrics filtra las cuatro colecciones con opts y las reduce a las métricas
// del dashboard. Sin base seleccionada TransferIn/TransferOut son 0.
func (s *Store) Metrics(opts domledger.FilterOptions) entity.DashboardMetrics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.agg.Aggregate(
		domledger.Filter(s.purchases, opts),
		domledger.Filter(s.transfers, opts),
		domledger.Filter(s.assignments, opts),
		domledger.Filter(s.expenditures, opts),
		opts.BaseID,
	)
}

func today() string {
	return time.Now().Format(dateLayout)
}
