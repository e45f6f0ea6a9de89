package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health проверка живости для балансировщика и мониторинга
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
