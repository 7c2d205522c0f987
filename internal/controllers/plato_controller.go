package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-restaurante-api/internal/models"
	"github.com/franciscosanchezn/gin-restaurante-api/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const platoNotFound = "Plato no encontrado"

// PlatoController handles HTTP requests related to dishes
type PlatoController interface {
	// ListPlatos retrieves one page of dishes
	ListPlatos(c *gin.Context)
	// GetPlatoByID retrieves a dish by its ID
	GetPlatoByID(c *gin.Context)
	// CreatePlato creates a new dish
	CreatePlato(c *gin.Context)
	// UpdatePlato replaces an existing dish
	UpdatePlato(c *gin.Context)
	// DeletePlato deletes a dish by its ID
	DeletePlato(c *gin.Context)
	// DeleteAllPlatos empties the menu
	DeleteAllPlatos(c *gin.Context)
}

type platoController struct {
	service services.PlatoService
}

// NewPlatoController creates a new instance of PlatoController
func NewPlatoController(service services.PlatoService) PlatoController {
	return &platoController{service: service}
}

// ListPlatos godoc
// @Summary Listar todos los platos
// @Description Devuelve los platos en orden de creación con paginación por offset
// @Tags Platos
// @Produce json
// @Param skip query int false "Registros a omitir (offset)" minimum(0) default(0)
// @Param limit query int false "Cantidad de registros por página" minimum(1) maximum(100) default(5)
// @Success 200 {object} models.Page[models.Plato]
// @Failure 422 {object} models.APIError
// @Router /api/v1/platos [get]
func (c *platoController) ListPlatos(ctx *gin.Context) {
	var query models.ListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		respondValidationError(ctx, err)
		return
	}

	items, total, err := c.service.ListPlatos(ctx.Request.Context(), query.Skip, query.Limit)
	if err != nil {
		respondServiceError(ctx, err, models.ErrPlatoNotFound, platoNotFound)
		return
	}
	ctx.JSON(http.StatusOK, models.NewPage(items, total, query.Skip, query.Limit))
}

// GetPlatoByID godoc
// @Summary Obtener un plato por ID
// @Tags Platos
// @Produce json
// @Param id path int true "ID del plato"
// @Success 200 {object} models.Plato
// @Failure 404 {object} models.APIError
// @Failure 422 {object} models.APIError
// @Router /api/v1/platos/{id} [get]
func (c *platoController) GetPlatoByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	plato, err := c.service.GetPlatoByID(ctx.Request.Context(), id)
	if err != nil {
		respondServiceError(ctx, err, models.ErrPlatoNotFound, platoNotFound)
		return
	}
	ctx.JSON(http.StatusOK, plato)
}

// CreatePlato godoc
// @Summary Crear un nuevo plato
// @Description Crea un nuevo plato. El ID se genera automáticamente.
// @Tags Platos
// @Accept json
// @Produce json
// @Param plato body models.PlatoCreate true "Datos del plato"
// @Success 201 {object} models.Plato
// @Failure 422 {object} models.APIError
// @Router /api/v1/platos [post]
func (c *platoController) CreatePlato(ctx *gin.Context) {
	var input models.PlatoCreate
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondValidationError(ctx, err)
		return
	}

	plato, err := c.service.CreatePlato(ctx.Request.Context(), input)
	if err != nil {
		respondServiceError(ctx, err, models.ErrPlatoNotFound, platoNotFound)
		return
	}
	log.WithField("plato_id", plato.ID).Debug("Plato created")
	ctx.JSON(http.StatusCreated, plato)
}

// UpdatePlato godoc
// @Summary Actualizar un plato existente
// @Description Reemplaza nombre y precio. El ID del cuerpo debe coincidir con el de la ruta.
// @Tags Platos
// @Accept json
// @Produce json
// @Param id path int true "ID del plato"
// @Param plato body models.PlatoUpdate true "Plato completo"
// @Success 200 {object} models.Plato
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 422 {object} models.APIError
// @Router /api/v1/platos/{id} [put]
func (c *platoController) UpdatePlato(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var input models.PlatoUpdate
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondValidationError(ctx, err)
		return
	}
	if input.ID != id {
		respondIDMismatch(ctx, "plato", id, input.ID)
		return
	}

	plato, err := c.service.UpdatePlato(ctx.Request.Context(), id, input)
	if err != nil {
		respondServiceError(ctx, err, models.ErrPlatoNotFound, platoNotFound)
		return
	}
	ctx.JSON(http.StatusOK, plato)
}

// DeletePlato godoc
// @Summary Eliminar un plato por ID
// @Tags Platos
// @Param id path int true "ID del plato"
// @Success 204
// @Failure 404 {object} models.APIError
// @Failure 422 {object} models.APIError
// @Router /api/v1/platos/{id} [delete]
func (c *platoController) DeletePlato(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	if err := c.service.DeletePlato(ctx.Request.Context(), id); err != nil {
		respondServiceError(ctx, err, models.ErrPlatoNotFound, platoNotFound)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// DeleteAllPlatos godoc
// @Summary Eliminar todos los platos
// @Tags Platos
// @Success 204
// @Router /api/v1/platos [delete]
func (c *platoController) DeleteAllPlatos(ctx *gin.Context) {
	removed, err := c.service.DeleteAllPlatos(ctx.Request.Context())
	if err != nil {
		respondServiceError(ctx, err, models.ErrPlatoNotFound, platoNotFound)
		return
	}
	log.WithField("removed", removed).Info("All platos deleted")
	ctx.Status(http.StatusNoContent)
}
