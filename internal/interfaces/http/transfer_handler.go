package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/arsenal-api/internal/application/dto"
	appledger "github.com/jhoicas/arsenal-api/internal/application/ledger"
	"github.com/jhoicas/arsenal-api/internal/domain/entity"
)

// TransferHandler maneja las peticiones HTTP de traslados entre bases.
type TransferHandler struct {
	store *appledger.Store
}

// NewTransferHandler construye el handler.
func NewTransferHandler(store *appledger.Store) *TransferHandler {
	return &TransferHandler{store: store}
}

// Record godoc
// @Summary      Registrar un traslado (debita la base origen de inmediato)
// @Tags         transfers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordTransferRequest  true  "asset_id, from_base_id, to_base_id, quantity"
// @Success      201   {object}  dto.TransferResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/transfers [post]
func (h *TransferHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordTransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	t, err := h.store.RecordTransfer(c.Context(), appledger.TransferInput{
		AssetID:    in.AssetID,
		FromBaseID: in.FromBaseID,
		ToBaseID:   in.ToBaseID,
		Quantity:   in.Quantity,
		CreatedBy:  GetUserID(c),
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toTransferResponse(t))
}

// Advance godoc
// @Summary      Avanzar el estado de un traslado (pending → in-transit → completed)
// @Tags         transfers
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Transfer ID"
// @Success      200  {object}  dto.TransferResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/transfers/{id}/advance [patch]
func (h *TransferHandler) Advance(c *fiber.Ctx) error {
	t, err := h.store.AdvanceTransfer(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(toTransferResponse(t))
}

// List godoc
// @Summary      Listar traslados (una base casa con origen o destino)
// @Tags         transfers
// @Security     Bearer
// @Produce      json
// @Param        base_id     query  string  false  "Filtrar por base (origen o destino)"
// @Param        asset_type  query  string  false  "Filtrar por tipo de activo"
// @Param        start       query  string  false  "Inicio del rango (yyyy-MM-dd, inclusivo)"
// @Param        end         query  string  false  "Fin del rango (yyyy-MM-dd, inclusivo)"
// @Success      200  {array}  dto.TransferResponse
// @Router       /api/transfers [get]
func (h *TransferHandler) List(c *fiber.Ctx) error {
	list := h.store.Transfers(parseFilterOptions(c))
	items := make([]dto.TransferResponse, 0, len(list))
	for i := range list {
		items = append(items, toTransferResponse(&list[i]))
	}
	return c.JSON(items)
}

func toTransferResponse(t *entity.Transfer) dto.TransferResponse {
	return dto.TransferResponse{
		ID:         t.ID,
		AssetID:    t.AssetID,
		AssetName:  t.AssetName,
		AssetType:  string(t.AssetType),
		FromBaseID: t.FromBaseID,
		ToBaseID:   t.ToBaseID,
		Quantity:   t.Quantity,
		Date:       t.Date,
		Status:     string(t.Status),
	}
}
