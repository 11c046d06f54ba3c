package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"course-api/internal/service"
)

// bindJSON decodifica el body; un body vacio se trata como objeto vacio para que
// la validacion de campos requeridos reporte todos los faltantes.
func bindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		return &service.Failure{Reason: "invalid request", Err: err}
	}
	return nil
}
