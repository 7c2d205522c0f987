package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-restaurante-api/internal/models"
	"github.com/franciscosanchezn/gin-restaurante-api/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const clienteNotFound = "Cliente no encontrado"

// ClienteController handles HTTP requests related to customers
type ClienteController interface {
	ListClientes(c *gin.Context)
	GetClienteByID(c *gin.Context)
	CreateCliente(c *gin.Context)
	UpdateCliente(c *gin.Context)
	DeleteCliente(c *gin.Context)
	DeleteAllClientes(c *gin.Context)
}

type clienteController struct {
	service services.ClienteService
}

// NewClienteController creates a new instance of ClienteController
func NewClienteController(service services.ClienteService) ClienteController {
	return &clienteController{service: service}
}

// ListClientes godoc
// @Summary Listar clientes
// @Tags Clientes
// @Produce json
// @Param skip query int false "Registros a omitir (offset)" minimum(0) default(0)
// @Param limit query int false "Cantidad de registros por página" minimum(1) maximum(100) default(5)
// @Success 200 {object} models.Page[models.Cliente]
// @Failure 422 {object} models.APIError
// @Router /api/v1/clientes [get]
func (c *clienteController) ListClientes(ctx *gin.Context) {
	var query models.ListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		respondValidationError(ctx, err)
		return
	}

	items, total, err := c.service.ListClientes(ctx.Request.Context(), query.Skip, query.Limit)
	if err != nil {
		respondServiceError(ctx, err, models.ErrClienteNotFound, clienteNotFound)
		return
	}
	ctx.JSON(http.StatusOK, models.NewPage(items, total, query.Skip, query.Limit))
}

// GetClienteByID godoc
// @Summary Obtener un cliente por ID
// @Tags Clientes
// @Produce json
// @Param id path int true "ID del cliente"
// @Success 200 {object} models.Cliente
// @Failure 404 {object} models.APIError
// @Router /api/v1/clientes/{id} [get]
func (c *clienteController) GetClienteByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	cliente, err := c.service.GetClienteByID(ctx.Request.Context(), id)
	if err != nil {
		respondServiceError(ctx, err, models.ErrClienteNotFound, clienteNotFound)
		return
	}
	ctx.JSON(http.StatusOK, cliente)
}

// CreateCliente godoc
// @Summary Registrar un cliente
// @Description El email debe ser único. activo vale true si se omite.
// @Tags Clientes
// @Accept json
// @Produce json
// @Param cliente body models.ClienteCreate true "Datos del cliente"
// @Success 201 {object} models.Cliente
// @Failure 409 {object} models.APIError
// @Failure 422 {object} models.APIError
// @Router /api/v1/clientes [post]
func (c *clienteController) CreateCliente(ctx *gin.Context) {
	var input models.ClienteCreate
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondValidationError(ctx, err)
		return
	}

	cliente, err := c.service.CreateCliente(ctx.Request.Context(), input)
	if err != nil {
		respondServiceError(ctx, err, models.ErrClienteNotFound, clienteNotFound)
		return
	}
	log.WithField("cliente_id", cliente.ID).Debug("Cliente created")
	ctx.JSON(http.StatusCreated, cliente)
}

// UpdateCliente godoc
// @Summary Actualizar un cliente
// @Tags Clientes
// @Accept json
// @Produce json
// @Param id path int true "ID del cliente"
// @Param cliente body models.ClienteUpdate true "Cliente completo"
// @Success 200 {object} models.Cliente
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Failure 422 {object} models.APIError
// @Router /api/v1/clientes/{id} [put]
func (c *clienteController) UpdateCliente(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var input models.ClienteUpdate
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondValidationError(ctx, err)
		return
	}
	if input.ID != id {
		respondIDMismatch(ctx, "cliente", id, input.ID)
		return
	}

	cliente, err := c.service.UpdateCliente(ctx.Request.Context(), id, input)
	if err != nil {
		respondServiceError(ctx, err, models.ErrClienteNotFound, clienteNotFound)
		return
	}
	ctx.JSON(http.StatusOK, cliente)
}

// DeleteCliente godoc
// @Summary Eliminar un cliente por ID
// @Description Sus pedidos no se eliminan: la referencia id_cliente no se valida.
// @Tags Clientes
// @Param id path int true "ID del cliente"
// @Success 204
// @Failure 404 {object} models.APIError
// @Router /api/v1/clientes/{id} [delete]
func (c *clienteController) DeleteCliente(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	if err := c.service.DeleteCliente(ctx.Request.Context(), id); err != nil {
		respondServiceError(ctx, err, models.ErrClienteNotFound, clienteNotFound)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// DeleteAllClientes godoc
// @Summary Eliminar todos los clientes
// @Tags Clientes
// @Success 204
// @Router /api/v1/clientes [delete]
func (c *clienteController) DeleteAllClientes(ctx *gin.Context) {
	removed, err := c.service.DeleteAllClientes(ctx.Request.Context())
	if err != nil {
		respondServiceError(ctx, err, models.ErrClienteNotFound, clienteNotFound)
		return
	}
	log.WithField("removed", removed).Info("All clientes deleted")
	ctx.Status(http.StatusNoContent)
}
