package router

import (
	"github.com/danielasommerhochzeitsplanung-droid/Hochzeitsmagie-sub001/internal/handler"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes регистрирует маршруты без авторизации
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterPlanner регистрирует API конфликтов и рассадки под /v1
func RegisterPlanner(e *echo.Echo, p *handler.PlannerHandler) {
	v1 := e.Group("/v1")

	v1.GET("/conflicts", p.GetConflicts)
	v1.GET("/events/:id/conflicts", p.GetEventConflicts)

	v1.GET("/seating", p.GetSeating)
	v1.GET("/tables/:id/roster", p.GetTableRoster)
	v1.GET("/guests/unassigned", p.GetUnassigned)
	v1.POST("/seating/assignments", p.CreateAssignment)
	v1.DELETE("/seating/assignments/:id", p.DeleteAssignment)
}
