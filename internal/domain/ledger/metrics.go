package ledger

import "github.com/jhoicas/arsenal-api/internal/domain/entity"

// BalanceStrategy calcula el balance de apertura a partir del balance de
// cierre y sus componentes. Se inyecta en el agregador para poder sustituir
// la fórmula de referencia por una línea base histórica sin tocar nada más.
type BalanceStrategy func(closing, purchases, transferIn, transferOut, expended int64) int64

// ReferenceOpeningBalance es la estrategia por defecto:
// apertura = cierre − (compras + entradas − salidas − gastos).
// Algebraicamente siempre da 0; queda como placeholder hasta contar con una
// consulta de saldo histórico real.
func ReferenceOpeningBalance(closing, purchases, transferIn, transferOut, expended int64) int64 {
	return closing - (purchases + transferIn - transferOut - expended)
}

// Aggregator reduce las colecciones de eventos YA filtradas a las métricas
// del dashboard.
type Aggregator struct {
	opening BalanceStrategy
}

// NewAggregator construye el agregador. Con opening nil usa
// ReferenceOpeningBalance.
func NewAggregator(opening BalanceStrategy) *Aggregator {
	if opening == nil {
		opening = ReferenceOpeningBalance
	}
	return &Aggregator{opening: opening}
}

// Aggregate computa las métricas sobre los conjuntos filtrados.
//
// TransferIn/TransferOut solo cuentan traslados en estado completed y solo
// cuando hay una base seleccionada: a nivel sistema cada traslado entra y
// sale a la vez, las sumas se anulan y se reportan en 0.
func (ag *Aggregator) Aggregate(
	purchases []entity.Purchase,
	transfers []entity.Transfer,
	assignments []entity.Assignment,
	expenditures []entity.Expenditure,
	baseID string,
) entity.DashboardMetrics {
	var m entity.DashboardMetrics
	for _, p := range purchases {
		m.Purchases += p.Quantity
	}
	if baseID != "" {
		for _, t := range transfers {
			if t.Status != entity.TransferCompleted {
				continue
			}
			if t.ToBaseID == baseID {
				m.TransferIn += t.Quantity
			}
			if t.FromBaseID == baseID {
				m.TransferOut += t.Quantity
			}
		}
	}
	for _, a := range assignments {
		m.Assigned += a.Quantity
	}
	for _, e := range expenditures {
		m.Expended += e.Quantity
	}
	m.ClosingBalance = m.Purchases + m.TransferIn - m.TransferOut - m.Expended
	m.OpeningBalance = ag.opening(m.ClosingBalance, m.Purchases, m.TransferIn, m.TransferOut, m.Expended)
	return m
}
