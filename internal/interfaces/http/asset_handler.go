package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/arsenal-api/internal/application/dto"
	appledger "github.com/jhoicas/arsenal-api/internal/application/ledger"
	"github.com/jhoicas/arsenal-api/internal/domain/entity"
)

// AssetHandler maneja las peticiones HTTP de registros de stock.
type AssetHandler struct {
	store *appledger.Store
}

// NewAssetHandler construye el handler.
func NewAssetHandler(store *appledger.Store) *AssetHandler {
	return &AssetHandler{store: store}
}

// Create godoc
// @Summary      Dar de alta un registro de stock en una base (solo admin)
// @Tags         assets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAssetRequest  true  "name, type, base_id, quantity"
// @Success      201   {object}  dto.AssetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/assets [post]
func (h *AssetHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAssetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	asset, err := h.store.RegisterAsset(c.Context(), appledger.AssetInput{
		Name:     in.Name,
		Type:     entity.AssetType(in.Type),
		BaseID:   in.BaseID,
		Quantity: in.Quantity,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toAssetResponse(asset))
}

// List godoc
// @Summary      Listar registros de stock
// @Tags         assets
// @Security     Bearer
// @Produce      json
// @Param        base_id     query  string  false  "Filtrar por base"
// @Param        asset_type  query  string  false  "Filtrar por tipo (weapon|vehicle|ammunition|equipment)"
// @Success      200  {array}  dto.AssetResponse
// @Router       /api/assets [get]
func (h *AssetHandler) List(c *fiber.Ctx) error {
	assets := h.store.Assets(c.Query("base_id"), entity.AssetType(c.Query("asset_type")))
	items := make([]dto.AssetResponse, 0, len(assets))
	for i := range assets {
		items = append(items, toAssetResponse(&assets[i]))
	}
	return c.JSON(items)
}

// GetByID godoc
// @Summary      Obtener un registro de stock por ID
// @Tags         assets
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Asset ID"
// @Success      200  {object}  dto.AssetResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/assets/{id} [get]
func (h *AssetHandler) GetByID(c *fiber.Ctx) error {
	asset, err := h.store.Asset(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(toAssetResponse(asset))
}

func toAssetResponse(a *entity.Asset) dto.AssetResponse {
	return dto.AssetResponse{
		ID:        a.ID,
		Name:      a.Name,
		Type:      string(a.Type),
		BaseID:    a.BaseID,
		Status:    string(a.Status),
		Quantity:  a.Quantity,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
