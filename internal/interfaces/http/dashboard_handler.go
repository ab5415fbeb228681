package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/arsenal-api/internal/application/dto"
	appledger "github.com/jhoicas/arsenal-api/internal/application/ledger"
)

// DashboardHandler maneja las métricas agregadas del dashboard.
type DashboardHandler struct {
	store *appledger.Store
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(store *appledger.Store) *DashboardHandler {
	return &DashboardHandler{store: store}
}

// Metrics godoc
// @Summary      Métricas agregadas (saldos, movimientos y movimiento neto)
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        base_id     query  string  false  "Filtrar por base"
// @Param        asset_type  query  string  false  "Filtrar por tipo de activo"
// @Param        start       query  string  false  "Inicio del rango (yyyy-MM-dd, inclusivo)"
// @Param        end         query  string  false  "Fin del rango (yyyy-MM-dd, inclusivo)"
// @Success      200  {object}  dto.MetricsResponse
// @Router       /api/dashboard/metrics [get]
func (h *DashboardHandler) Metrics(c *fiber.Ctx) error {
	m := h.store.Metrics(parseFilterOptions(c))
	return c.JSON(dto.MetricsResponse{
		OpeningBalance: m.OpeningBalance,
		ClosingBalance: m.ClosingBalance,
		Purchases:      m.Purchases,
		TransferIn:     m.TransferIn,
		TransferOut:    m.TransferOut,
		Assigned:       m.Assigned,
		Expended:       m.Expended,
		NetMovement:    m.NetMovement(),
	})
}
