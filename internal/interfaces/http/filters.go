package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/arsenal-api/internal/application/dto"
	"github.com/jhoicas/arsenal-api/internal/domain"
	"github.com/jhoicas/arsenal-api/internal/domain/entity"
	"github.com/jhoicas/arsenal-api/internal/domain/ledger"
)

// parseFilterOptions construye las FilterOptions desde los query params
// base_id, asset_type, start y end (fechas ISO yyyy-MM-dd, inclusivas).
// start y end van juntos: uno solo se ignora.
func parseFilterOptions(c *fiber.Ctx) ledger.FilterOptions {
	opts := ledger.FilterOptions{
		BaseID:    c.Query("base_id"),
		AssetType: entity.AssetType(c.Query("asset_type")),
	}
	start, end := c.Query("start"), c.Query("end")
	if start != "" && end != "" {
		opts.DateRange = &ledger.DateRange{Start: start, End: end}
	}
	return opts
}

// respondDomainError mapea los errores de dominio a códigos HTTP.
func respondDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "conflicto con el estado actual"})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
