package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/greenhouse/plants-api/internal/core/ports"
)

// PlantHandler handles HTTP requests for the plant catalog.
type PlantHandler struct {
	service ports.PlantService
}

func NewPlantHandler(service ports.PlantService) *PlantHandler {
	return &PlantHandler{service: service}
}

type createPlantRequest struct {
	Name        string   `json:"name" validate:"required"`
	Slug        string   `json:"slug" validate:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Stock       int      `json:"stock" validate:"min=0"`
	CategoryID  int64    `json:"category_id" validate:"required,gt=0"`
	Images      []string `json:"images"`
}

type updatePlantRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
	CategoryID  *int64   `json:"category_id"`
	Images      []string `json:"images"`
}

// List handles GET /plants.
//
// @Summary      List plants
// @Tags         plants
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Plant
// @Failure      401  {object}  map[string]string
// @Router       /plants [get]
func (h *PlantHandler) List(c echo.Context) error {
	plants, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plants)
}

// Get handles GET /plants/:slug.
//
// @Summary      Get a plant by slug
// @Tags         plants
// @Produce      json
// @Security     BearerAuth
// @Param        slug  path      string  true  "Plant slug"
// @Success      200   {object}  domain.Plant
// @Failure      404   {object}  map[string]string
// @Router       /plants/{slug} [get]
func (h *PlantHandler) Get(c echo.Context) error {
	plant, err := h.service.Get(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plant)
}

// Create handles POST /plants — admin only.
//
// @Summary      Create a plant
// @Tags         plants
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPlantRequest  true  "Plant details"
// @Success      201   {object}  domain.Plant
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /plants [post]
func (h *PlantHandler) Create(c echo.Context) error {
	var req createPlantRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	plant, err := h.service.Create(c.Request().Context(), ports.CreatePlantInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		CategoryID:  req.CategoryID,
		ImageURLs:   req.Images,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, plant)
}

// Update handles PUT /plants/:slug — admin only.
//
// @Summary      Update a plant
// @Tags         plants
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        slug  path      string              true  "Plant slug"
// @Param        body  body      updatePlantRequest  true  "Fields to change"
// @Success      200   {object}  domain.Plant
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /plants/{slug} [put]
func (h *PlantHandler) Update(c echo.Context) error {
	var req updatePlantRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	plant, err := h.service.Update(c.Request().Context(), c.Param("slug"), ports.UpdatePlantInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		CategoryID:  req.CategoryID,
		ImageURLs:   req.Images,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plant)
}

// Delete handles DELETE /plants/:slug — admin only.
//
// @Summary      Delete a plant
// @Tags         plants
// @Produce      json
// @Security     BearerAuth
// @Param        slug  path  string  true  "Plant slug"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /plants/{slug} [delete]
func (h *PlantHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("slug")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
