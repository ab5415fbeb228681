package entity

// DashboardMetrics métricas agregadas del dashboard. Siempre derivadas: se
// recomputan bajo demanda a partir de los eventos filtrados y nunca se
// persisten por separado.
type DashboardMetrics struct {
	OpeningBalance int64
	ClosingBalance int64
	Purchases      int64
	TransferIn     int64
	TransferOut    int64
	Assigned       int64
	Expended       int64
}

// NetMovement movimiento neto: compras + entradas − salidas por traslado.
// Excluye asignaciones y gastos.
func (m DashboardMetrics) NetMovement() int64 {
	return m.Purchases + m.TransferIn - m.TransferOut
}
