package controller

import (
	"errors"
	"net/http"
	"time"

	"go-widget/internal/domain/entity"
	"go-widget/internal/domain/model"
	"go-widget/internal/domain/usecase/citysearch"
	"go-widget/internal/domain/usecase/locationview"
	"go-widget/internal/domain/usecase/session"
	"go-widget/pkg/util/numberutils"

	"github.com/labstack/echo/v4"
)

type SessionController struct {
	api     *echo.Group
	useCase session.UseCase
	now     func() time.Time
}

func NewSessionController(api *echo.Group, useCase session.UseCase) *SessionController {
	return &SessionController{api: api, useCase: useCase, now: time.Now}
}

// InitSessionRoutes initializes widget session routes
func (controller *SessionController) InitSessionRoutes() {
	controller.api.POST("/sessions", controller.Create)
	controller.api.GET("/sessions/:id", controller.FindByID)
	controller.api.PUT("/sessions/:id/query", controller.SetQuery)
	controller.api.POST("/sessions/:id/search", controller.Search)
	controller.api.POST("/sessions/:id/forecast/select", controller.SelectForecast)
	controller.api.POST("/sessions/:id/refresh", controller.Refresh)
	controller.api.DELETE("/sessions/:id", controller.Delete)
}

// Create godoc
// @Summary Open a widget session
// @Description Open a session and mount the location view with the reported geolocation result
// @Tags sessions
// @Accept json
// @Produce json
// @Param mount body model.MountRequest true "Geolocation report"
// @Success 201 {object} model.CreateSessionResponse "Session opened"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 502 {object} model.CreateSessionResponse "Session opened but the weather fetch failed"
// @Router /sessions [post]
func (controller *SessionController) Create(c echo.Context) error {
	var req model.MountRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	s, notice, err := controller.useCase.Create(c.Request().Context(), req)
	if s == nil {
		return controller.errorResponse(c, err)
	}

	resp := model.CreateSessionResponse{
		SessionID: s.ID,
		Notice:    notice,
		View:      s.View(controller.now()),
	}
	if err != nil {
		return c.JSON(http.StatusBadGateway, resp)
	}
	return c.JSON(http.StatusCreated, resp)
}

// FindByID godoc
// @Summary Get the rendered widget
// @Tags sessions
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} model.WidgetView "Rendered widget"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{id} [get]
func (controller *SessionController) FindByID(c echo.Context) error {
	s, err := controller.useCase.Get(c.Param("id"))
	if err != nil {
		return controller.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, s.View(controller.now()))
}

// SetQuery godoc
// @Summary Update the search input
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param query body model.QueryRequest true "Search input text"
// @Success 200 {object} model.WidgetView "Rendered widget"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{id}/query [put]
func (controller *SessionController) SetQuery(c echo.Context) error {
	var req model.QueryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	id := c.Param("id")
	if err := controller.useCase.SetQuery(id, req.Query); err != nil {
		return controller.errorResponse(c, err)
	}
	return controller.render(c, id)
}

// Search godoc
// @Summary Search weather by city
// @Description Search by city name, or by the current input when city is empty. Empty and unknown cities are reported inline in search.searchError.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param search body model.SearchRequest false "City to search"
// @Success 200 {object} model.WidgetView "Rendered widget"
// @Failure 404 {object} map[string]string "Session not found"
// @Failure 409 {object} map[string]string "Superseded by a newer request"
// @Failure 502 {object} map[string]string "Weather provider failure"
// @Router /sessions/{id}/search [post]
func (controller *SessionController) Search(c echo.Context) error {
	var req model.SearchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	id := c.Param("id")
	err := controller.useCase.Search(c.Request().Context(), id, req.City)
	var searchErr *entity.SearchError
	if err != nil && !errors.As(err, &searchErr) {
		return controller.errorResponse(c, err)
	}
	return controller.render(c, id)
}

// SelectForecast godoc
// @Summary Show a forecast temperature
// @Description Override the displayed temperature with a forecast entry, by index (body or ?index=) or by temperature
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param index query int false "Forecast entry index"
// @Param selection body model.SelectForecastRequest false "Forecast selection"
// @Success 200 {object} model.WidgetView "Rendered widget"
// @Failure 400 {object} map[string]string "Invalid selection"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{id}/forecast/select [post]
func (controller *SessionController) SelectForecast(c echo.Context) error {
	var req model.SelectForecastRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if raw := c.QueryParam("index"); raw != "" {
		index, err := numberutils.ToNonNegativeInt(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid forecast index"})
		}
		req.Index = &index
	}

	id := c.Param("id")
	if err := controller.useCase.SelectForecast(id, req); err != nil {
		return controller.errorResponse(c, err)
	}
	return controller.render(c, id)
}

// Refresh godoc
// @Summary Re-run the last weather fetch
// @Description User initiated retry after a failed fetch
// @Tags sessions
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} model.WidgetView "Rendered widget"
// @Failure 404 {object} map[string]string "Session not found"
// @Failure 409 {object} map[string]string "Nothing to refresh or superseded"
// @Failure 502 {object} map[string]string "Weather provider failure"
// @Router /sessions/{id}/refresh [post]
func (controller *SessionController) Refresh(c echo.Context) error {
	id := c.Param("id")
	if err := controller.useCase.Refresh(c.Request().Context(), id); err != nil {
		return controller.errorResponse(c, err)
	}
	return controller.render(c, id)
}

// Delete godoc
// @Summary Close a widget session
// @Tags sessions
// @Param id path string true "Session id"
// @Success 204 "Session deleted"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{id} [delete]
func (controller *SessionController) Delete(c echo.Context) error {
	if err := controller.useCase.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return controller.errorResponse(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (controller *SessionController) render(c echo.Context, id string) error {
	s, err := controller.useCase.Get(id)
	if err != nil {
		return controller.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, s.View(controller.now()))
}

func (controller *SessionController) errorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Session not found"})
	case errors.Is(err, session.ErrInvalidMount),
		errors.Is(err, session.ErrInvalidSelection),
		errors.Is(err, locationview.ErrNoForecastEntries):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, locationview.ErrNothingToRefresh),
		errors.Is(err, locationview.ErrSuperseded),
		errors.Is(err, citysearch.ErrSuperseded),
		errors.Is(err, entity.ErrLatched):
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	default:
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
}
