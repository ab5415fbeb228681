package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/arsenal-api/internal/application/dto"
	appledger "github.com/jhoicas/arsenal-api/internal/application/ledger"
	"github.com/jhoicas/arsenal-api/internal/domain/entity"
)

// AssignmentHandler maneja las peticiones HTTP de asignaciones a personal.
type AssignmentHandler struct {
	store *appledger.Store
}

// NewAssignmentHandler construye el handler.
func NewAssignmentHandler(store *appledger.Store) *AssignmentHandler {
	return &AssignmentHandler{store: store}
}

// Record godoc
// @Summary      Registrar una asignación a personal (debita stock)
// @Tags         assignments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordAssignmentRequest  true  "asset_id, base_id, personnel_id, personnel_name, quantity"
// @Success      201   {object}  dto.AssignmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/assignments [post]
func (h *AssignmentHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordAssignmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	a, err := h.store.RecordAssignment(c.Context(), appledger.AssignmentInput{
		AssetID:       in.AssetID,
		BaseID:        in.BaseID,
		PersonnelID:   in.PersonnelID,
		PersonnelName: in.PersonnelName,
		Quantity:      in.Quantity,
		CreatedBy:     GetUserID(c),
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toAssignmentResponse(a))
}

// List godoc
// @Summary      Listar asignaciones
// @Tags         assignments
// @Security     Bearer
// @Produce      json
// @Param        base_id     query  string  false  "Filtrar por base"
// @Param        asset_type  query  string  false  "Filtrar por tipo de activo"
// @Param        start       query  string  false  "Inicio del rango (yyyy-MM-dd, inclusivo)"
// @Param        end         query  string  false  "Fin del rango (yyyy-MM-dd, inclusivo)"
// @Success      200  {array}  dto.AssignmentResponse
// @Router       /api/assignments [get]
func (h *AssignmentHandler) List(c *fiber.Ctx) error {
	list := h.store.Assignments(parseFilterOptions(c))
	items := make([]dto.AssignmentResponse, 0, len(list))
	for i := range list {
		items = append(items, toAssignmentResponse(&list[i]))
	}
	return c.JSON(items)
}

func toAssignmentResponse(a *entity.Assignment) dto.AssignmentResponse {
	return dto.AssignmentResponse{
		ID:            a.ID,
		AssetID:       a.AssetID,
		AssetName:     a.AssetName,
		AssetType:     string(a.AssetType),
		BaseID:        a.BaseID,
		PersonnelID:   a.PersonnelID,
		PersonnelName: a.PersonnelName,
		Quantity:      a.Quantity,
		Date:          a.Date,
	}
}
