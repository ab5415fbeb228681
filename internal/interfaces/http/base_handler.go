package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/arsenal-api/internal/application/dto"
	appledger "github.com/jhoicas/arsenal-api/internal/application/ledger"
	"github.com/jhoicas/arsenal-api/internal/domain/entity"
)

// BaseHandler maneja las peticiones HTTP de bases.
type BaseHandler struct {
	store *appledger.Store
}

// NewBaseHandler construye el handler.
func NewBaseHandler(store *appledger.Store) *BaseHandler {
	return &BaseHandler{store: store}
}

// Create godoc
// @Summary      Crear una base (solo admin)
// @Tags         bases
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBaseRequest  true  "name, location"
// @Success      201   {object}  dto.BaseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/bases [post]
func (h *BaseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	base, err := h.store.AddBase(c.Context(), appledger.BaseInput{Name: in.Name, Location: in.Location})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toBaseResponse(base))
}

// List godoc
// @Summary      Listar bases
// @Tags         bases
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.BaseResponse
// @Router       /api/bases [get]
func (h *BaseHandler) List(c *fiber.Ctx) error {
	bases := h.store.Bases()
	items := make([]dto.BaseResponse, 0, len(bases))
	for i := range bases {
		items = append(items, toBaseResponse(&bases[i]))
	}
	return c.JSON(items)
}

// GetByID godoc
// @Summary      Obtener una base por ID
// @Tags         bases
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Base ID"
// @Success      200  {object}  dto.BaseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bases/{id} [get]
func (h *BaseHandler) GetByID(c *fiber.Ctx) error {
	base, err := h.store.Base(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(toBaseResponse(base))
}

func toBaseResponse(b *entity.Base) dto.BaseResponse {
	return dto.BaseResponse{
		ID:        b.ID,
		Name:      b.Name,
		Location:  b.Location,
		CreatedAt: b.CreatedAt,
	}
}
