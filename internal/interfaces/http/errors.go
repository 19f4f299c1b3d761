package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lotolabs-arg/StoreFlow/internal/application/dto"
	"github.com/lotolabs-arg/StoreFlow/internal/domain"
)

// businessError mapea una violación de regla de negocio a su respuesta HTTP:
// el mensaje se muestra tal cual. Un error que no es *domain.Error es un fallo
// de infraestructura: respuesta genérica, el detalle queda para el log.
func businessError(c *fiber.Ctx, err error) error {
	de, ok := domain.AsError(err)
	if !ok {
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.Status(statusForKind(de.Kind)).
		JSON(dto.ErrorResponse{Code: codeForKind(de.Kind), Message: de.Message})
}

func statusForKind(k domain.Kind) int {
	switch k {
	case domain.KindNotFound:
		return fiber.StatusNotFound
	case domain.KindConflict:
		return fiber.StatusConflict
	case domain.KindUnauthorized:
		return fiber.StatusUnauthorized
	case domain.KindForbidden:
		return fiber.StatusForbidden
	default:
		return fiber.StatusBadRequest
	}
}

func codeForKind(k domain.Kind) string {
	switch k {
	case domain.KindNotFound:
		return "NOT_FOUND"
	case domain.KindConflict:
		return "CONFLICT"
	case domain.KindUnauthorized:
		return "UNAUTHORIZED"
	case domain.KindForbidden:
		return "FORBIDDEN"
	default:
		return "VALIDATION"
	}
}
