package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/arsenal-api/internal/application/dto"
	appledger "github.com/jhoicas/arsenal-api/internal/application/ledger"
	"github.com/jhoicas/arsenal-api/internal/domain/entity"
)

// PurchaseHandler maneja las peticiones HTTP de compras.
type PurchaseHandler struct {
	store *appledger.Store
}

// NewPurchaseHandler construye el handler.
func NewPurchaseHandler(store *appledger.Store) *PurchaseHandler {
	return &PurchaseHandler{store: store}
}

// Record godoc
// @Summary      Registrar una compra (acredita stock en la base)
// @Tags         purchases
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordPurchaseRequest  true  "asset_id, base_id, quantity, cost"
// @Success      201   {object}  dto.PurchaseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/purchases [post]
func (h *PurchaseHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordPurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	p, err := h.store.RecordPurchase(c.Context(), appledger.PurchaseInput{
		AssetID:   in.AssetID,
		BaseID:    in.BaseID,
		Quantity:  in.Quantity,
		Cost:      in.Cost,
		CreatedBy: GetUserID(c),
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toPurchaseResponse(p))
}

// List godoc
// @Summary      Listar compras
// @Tags         purchases
// @Security     Bearer
// @Produce      json
// @Param        base_id     query  string  false  "Filtrar por base"
// @Param        asset_type  query  string  false  "Filtrar por tipo de activo"
// @Param        start       query  string  false  "Inicio del rango (yyyy-MM-dd, inclusivo)"
// @Param        end         query  string  false  "Fin del rango (yyyy-MM-dd, inclusivo)"
// @Success      200  {array}  dto.PurchaseResponse
// @Router       /api/purchases [get]
func (h *PurchaseHandler) List(c *fiber.Ctx) error {
	list := h.store.Purchases(parseFilterOptions(c))
	items := make([]dto.PurchaseResponse, 0, len(list))
	for i := range list {
		items = append(items, toPurchaseResponse(&list[i]))
	}
	return c.JSON(items)
}

func toPurchaseResponse(p *entity.Purchase) dto.PurchaseResponse {
	return dto.PurchaseResponse{
		ID:        p.ID,
		AssetID:   p.AssetID,
		AssetName: p.AssetName,
		AssetType: string(p.AssetType),
		BaseID:    p.BaseID,
		Quantity:  p.Quantity,
		Date:      p.Date,
		Cost:      p.Cost,
	}
}
