package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/danielasommerhochzeitsplanung-droid/Hochzeitsmagie-sub001/internal/model"
	"github.com/danielasommerhochzeitsplanung-droid/Hochzeitsmagie-sub001/internal/seating"
	"github.com/danielasommerhochzeitsplanung-droid/Hochzeitsmagie-sub001/internal/service"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Planner операции планировщика, которые нужны HTTP API
type Planner interface {
	Conflicts(ctx context.Context) (map[string][]model.Event, error)
	EventConflicts(ctx context.Context, eventID string) (*model.Event, []model.Event, error)
	Seating(ctx context.Context, eventID string) (*seating.Plan, error)
	TableSeating(ctx context.Context, tableID string) (*seating.TableSeating, error)
	Unassigned(ctx context.Context) ([]model.Guest, error)
	AssignGuest(ctx context.Context, tableID, guestID string) (*model.SeatingAssignment, error)
	Unassign(ctx context.Context, assignmentID string) error
}

// PlannerHandler отдаёт UI карту конфликтов и рассадку
type PlannerHandler struct {
	planner Planner
	logger  *zap.Logger
}

func NewPlannerHandler(planner Planner, logger *zap.Logger) *PlannerHandler {
	return &PlannerHandler{planner: planner, logger: logger}
}

type assignRequest struct {
	TableID string `json:"table_id"`
	GuestID string `json:"guest_id"`
}

// GetConflicts GET /v1/conflicts
func (h *PlannerHandler) GetConflicts(c echo.Context) error {
	conflicts, err := h.planner.Conflicts(c.Request().Context())
	if err != nil {
		return h.internalError(c, "compute conflicts", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": conflicts})
}

// GetEventConflicts GET /v1/events/:id/conflicts
func (h *PlannerHandler) GetEventConflicts(c echo.Context) error {
	event, conflicts, err := h.planner.EventConflicts(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return h.internalError(c, "compute event conflicts", err)
	}
	if conflicts == nil {
		conflicts = []model.Event{}
	}
	return c.JSON(http.StatusOK, echo.Map{"event": event, "items": conflicts})
}

// GetSeating GET /v1/seating?event_id=
func (h *PlannerHandler) GetSeating(c echo.Context) error {
	plan, err := h.planner.Seating(c.Request().Context(), strings.TrimSpace(c.QueryParam("event_id")))
	if err != nil {
		return h.internalError(c, "resolve seating", err)
	}
	return c.JSON(http.StatusOK, plan)
}

// GetTableRoster GET /v1/tables/:id/roster
func (h *PlannerHandler) GetTableRoster(c echo.Context) error {
	ts, err := h.planner.TableSeating(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrTableNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "table not found"})
		}
		return h.internalError(c, "resolve table roster", err)
	}
	return c.JSON(http.StatusOK, ts)
}

// GetUnassigned GET /v1/guests/unassigned
func (h *PlannerHandler) GetUnassigned(c echo.Context) error {
	guests, err := h.planner.Unassigned(c.Request().Context())
	if err != nil {
		return h.internalError(c, "compute unassigned guests", err)
	}
	if guests == nil {
		guests = []model.Guest{}
	}
	return c.JSON(http.StatusOK, echo.Map{"items": guests})
}

// CreateAssignment POST /v1/seating/assignments
func (h *PlannerHandler) CreateAssignment(c echo.Context) error {
	var req assignRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}

	req.TableID = strings.TrimSpace(req.TableID)
	req.GuestID = strings.TrimSpace(req.GuestID)
	if req.TableID == "" || req.GuestID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "table_id and guest_id are required"})
	}

	assignment, err := h.planner.AssignGuest(c.Request().Context(), req.TableID, req.GuestID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTableNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "table not found"})
		case errors.Is(err, service.ErrGuestNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "guest not found"})
		}
		return h.internalError(c, "assign guest", err)
	}

	return c.JSON(http.StatusCreated, assignment)
}

// DeleteAssignment DELETE /v1/seating/assignments/:id
func (h *PlannerHandler) DeleteAssignment(c echo.Context) error {
	err := h.planner.Unassign(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrAssignmentNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "seating assignment not found"})
		}
		return h.internalError(c, "unassign guest", err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *PlannerHandler) internalError(c echo.Context, op string, err error) error {
	h.logger.Error("Request failed",
		zap.String("op", op),
		zap.String("path", c.Path()),
		zap.Error(err),
	)
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
}
