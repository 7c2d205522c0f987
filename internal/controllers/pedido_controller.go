package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-restaurante-api/internal/models"
	"github.com/franciscosanchezn/gin-restaurante-api/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const pedidoNotFound = "Pedido no encontrado"

// PedidoController handles HTTP requests related to orders
type PedidoController interface {
	ListPedidos(c *gin.Context)
	// ListPedidosByCliente lists the orders referencing the customer in the path
	ListPedidosByCliente(c *gin.Context)
	GetPedidoByID(c *gin.Context)
	CreatePedido(c *gin.Context)
	UpdatePedido(c *gin.Context)
	DeletePedido(c *gin.Context)
	DeleteAllPedidos(c *gin.Context)
}

type pedidoController struct {
	service services.PedidoService
}

// NewPedidoController creates a new instance of PedidoController
func NewPedidoController(service services.PedidoService) PedidoController {
	return &pedidoController{service: service}
}

// ListPedidos godoc
// @Summary Listar pedidos
// @Tags Pedidos
// @Produce json
// @Param skip query int false "Registros a omitir (offset)" minimum(0) default(0)
// @Param limit query int false "Cantidad de registros por página" minimum(1) maximum(100) default(5)
// @Success 200 {object} models.Page[models.Pedido]
// @Failure 422 {object} models.APIError
// @Router /api/v1/pedidos [get]
func (c *pedidoController) ListPedidos(ctx *gin.Context) {
	var query models.ListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		respondValidationError(ctx, err)
		return
	}

	items, total, err := c.service.ListPedidos(ctx.Request.Context(), query.Skip, query.Limit)
	if err != nil {
		respondServiceError(ctx, err, models.ErrPedidoNotFound, pedidoNotFound)
		return
	}
	ctx.JSON(http.StatusOK, models.NewPage(items, total, query.Skip, query.Limit))
}

// ListPedidosByCliente godoc
// @Summary Listar los pedidos de un cliente
// @Tags Pedidos
// @Produce json
// @Param id path int true "ID del cliente"
// @Param skip query int false "Registros a omitir (offset)" minimum(0) default(0)
// @Param limit query int false "Cantidad de registros por página" minimum(1) maximum(100) default(5)
// @Success 200 {object} models.Page[models.Pedido]
// @Failure 422 {object} models.APIError
// @Router /api/v1/clientes/{id}/pedidos [get]
func (c *pedidoController) ListPedidosByCliente(ctx *gin.Context) {
	clienteID, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var query models.ListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		respondValidationError(ctx, err)
		return
	}

	items, total, err := c.service.ListPedidosByCliente(ctx.Request.Context(), clienteID, query.Skip, query.Limit)
	if err != nil {
		respondServiceError(ctx, err, models.ErrPedidoNotFound, pedidoNotFound)
		return
	}
	ctx.JSON(http.StatusOK, models.NewPage(items, total, query.Skip, query.Limit))
}

// GetPedidoByID godoc
// @Summary Obtener un pedido por ID
// @Tags Pedidos
// @Produce json
// @Param id path int true "ID del pedido"
// @Success 200 {object} models.Pedido
// @Failure 404 {object} models.APIError
// @Router /api/v1/pedidos/{id} [get]
func (c *pedidoController) GetPedidoByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	pedido, err := c.service.GetPedidoByID(ctx.Request.Context(), id)
	if err != nil {
		respondServiceError(ctx, err, models.ErrPedidoNotFound, pedidoNotFound)
		return
	}
	ctx.JSON(http.StatusOK, pedido)
}

// CreatePedido godoc
// @Summary Registrar un pedido
// @Tags Pedidos
// @Accept json
// @Produce json
// @Param pedido body models.PedidoCreate true "Datos del pedido"
// @Success 201 {object} models.Pedido
// @Failure 422 {object} models.APIError
// @Router /api/v1/pedidos [post]
func (c *pedidoController) CreatePedido(ctx *gin.Context) {
	var input models.PedidoCreate
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondValidationError(ctx, err)
		return
	}

	pedido, err := c.service.CreatePedido(ctx.Request.Context(), input)
	if err != nil {
		respondServiceError(ctx, err, models.ErrPedidoNotFound, pedidoNotFound)
		return
	}
	log.WithFields(log.Fields{"pedido_id": pedido.ID, "id_cliente": pedido.IDCliente}).Debug("Pedido created")
	ctx.JSON(http.StatusCreated, pedido)
}

// UpdatePedido godoc
// @Summary Actualizar un pedido
// @Tags Pedidos
// @Accept json
// @Produce json
// @Param id path int true "ID del pedido"
// @Param pedido body models.PedidoUpdate true "Pedido completo"
// @Success 200 {object} models.Pedido
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 422 {object} models.APIError
// @Router /api/v1/pedidos/{id} [put]
func (c *pedidoController) UpdatePedido(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var input models.PedidoUpdate
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondValidationError(ctx, err)
		return
	}
	if input.ID != id {
		respondIDMismatch(ctx, "pedido", id, input.ID)
		return
	}

	pedido, err := c.service.UpdatePedido(ctx.Request.Context(), id, input)
	if err != nil {
		respondServiceError(ctx, err, models.ErrPedidoNotFound, pedidoNotFound)
		return
	}
	ctx.JSON(http.StatusOK, pedido)
}

// DeletePedido godoc
// @Summary Eliminar un pedido por ID
// @Tags Pedidos
// @Param id path int true "ID del pedido"
// @Success 204
// @Failure 404 {object} models.APIError
// @Router /api/v1/pedidos/{id} [delete]
func (c *pedidoController) DeletePedido(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	if err := c.service.DeletePedido(ctx.Request.Context(), id); err != nil {
		respondServiceError(ctx, err, models.ErrPedidoNotFound, pedidoNotFound)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// DeleteAllPedidos godoc
// @Summary Eliminar todos los pedidos
// @Tags Pedidos
// @Success 204
// @Router /api/v1/pedidos [delete]
func (c *pedidoController) DeleteAllPedidos(ctx *gin.Context) {
	removed, err := c.service.DeleteAllPedidos(ctx.Request.Context())
	if err != nil {
		respondServiceError(ctx, err, models.ErrPedidoNotFound, pedidoNotFound)
		return
	}
	log.WithField("removed", removed).Info("All pedidos deleted")
	ctx.Status(http.StatusNoContent)
}
