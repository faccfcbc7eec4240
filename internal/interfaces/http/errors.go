package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Inventario-consola/internal/application/dto"
	"github.com/jhoicas/Inventario-consola/internal/domain"
)

// respondError traduce un error de dominio a status HTTP + dto.ErrorResponse.
// Los 5xx se registran con el detalle; al cliente solo llega un mensaje genérico
// salvo en errores del gateway, cuyo mensaje sí es útil para el usuario.
func respondError(c *fiber.Ctx, err error) error {
	var verr *domain.ValidationError
	status, code, msg := fiber.StatusInternalServerError, "INTERNAL", "error interno del servidor"

	switch {
	case errors.As(err, &verr):
		status, code, msg = fiber.StatusBadRequest, "VALIDATION", verr.Message
	case errors.Is(err, domain.ErrInvalidInput):
		status, code, msg = fiber.StatusBadRequest, "VALIDATION", err.Error()
	case errors.Is(err, domain.ErrParse), errors.Is(err, domain.ErrEmptyFile):
		status, code, msg = fiber.StatusBadRequest, "PARSE_ERROR", err.Error()
	case errors.Is(err, domain.ErrNotFound):
		status, code, msg = fiber.StatusNotFound, "NOT_FOUND", "recurso no encontrado"
	case errors.Is(err, domain.ErrUnauthorized):
		status, code, msg = fiber.StatusUnauthorized, "UNAUTHORIZED", "credenciales inválidas"
	case errors.Is(err, domain.ErrForbidden):
		status, code, msg = fiber.StatusForbidden, "FORBIDDEN", "acceso denegado"
	case errors.Is(err, domain.ErrDuplicate):
		status, code, msg = fiber.StatusConflict, "DUPLICATE", err.Error()
	case errors.Is(err, domain.ErrConflict):
		status, code, msg = fiber.StatusConflict, "CONFLICT", err.Error()
	case errors.Is(err, domain.ErrUnavailable):
		status, code, msg = fiber.StatusBadGateway, "GATEWAY_UNAVAILABLE", err.Error()
	case errors.Is(err, domain.ErrExport):
		status, code, msg = fiber.StatusInternalServerError, "EXPORT_FAILED", "no se pudo generar el documento"
	}

	if status >= fiber.StatusInternalServerError {
		log.Error().Err(err).Str("code", code).Str("path", c.Path()).Msg("error en handler")
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

func invalidQuery(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de consulta inválidos"})
}

// paramID lee :id como entero positivo.
func paramID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.Invalid("id inválido")
	}
	return id, nil
}
