package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/arsenal-api/internal/application/dto"
	appledger "github.com/jhoicas/arsenal-api/internal/application/ledger"
	"github.com/jhoicas/arsenal-api/internal/domain/entity"
)

// ExpenditureHandler maneja las peticiones HTTP de gastos/consumos.
type ExpenditureHandler struct {
	store *appledger.Store
}

// NewExpenditureHandler construye el handler.
func NewExpenditureHandler(store *appledger.Store) *ExpenditureHandler {
	return &ExpenditureHandler{store: store}
}

// Record godoc
// @Summary      Registrar un gasto/consumo permanente (motivo obligatorio)
// @Tags         expenditures
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordExpenditureRequest  true  "asset_id, base_id, quantity, reason"
// @Success      201   {object}  dto.ExpenditureResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/expenditures [post]
func (h *ExpenditureHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordExpenditureRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	e, err := h.store.RecordExpenditure(c.Context(), appledger.ExpenditureInput{
		AssetID:   in.AssetID,
		BaseID:    in.BaseID,
		Quantity:  in.Quantity,
		Reason:    in.Reason,
		CreatedBy: GetUserID(c),
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toExpenditureResponse(e))
}

// List godoc
// @Summary      Listar gastos
// @Tags         expenditures
// @Security     Bearer
// @Produce      json
// @Param        base_id     query  string  false  "Filtrar por base"
// @Param        asset_type  query  string  false  "Filtrar por tipo de activo"
// @Param        start       query  string  false  "Inicio del rango (yyyy-MM-dd, inclusivo)"
// @Param        end         query  string  false  "Fin del rango (yyyy-MM-dd, inclusivo)"
// @Success      200  {array}  dto.ExpenditureResponse
// @Router       /api/expenditures [get]
func (h *ExpenditureHandler) List(c *fiber.Ctx) error {
	list := h.store.Expenditures(parseFilterOptions(c))
	items := make([]dto.ExpenditureResponse, 0, len(list))
	for i := range list {
		items = append(items, toExpenditureResponse(&list[i]))
	}
	return c.JSON(items)
}

func toExpenditureResponse(e *entity.Expenditure) dto.ExpenditureResponse {
	return dto.ExpenditureResponse{
		ID:        e.ID,
		AssetID:   e.AssetID,
		AssetName: e.AssetName,
		AssetType: string(e.AssetType),
		BaseID:    e.BaseID,
		Quantity:  e.Quantity,
		Date:      e.Date,
		Reason:    e.Reason,
	}
}
