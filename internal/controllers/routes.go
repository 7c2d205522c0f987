package controllers

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the three resources under the given API group
func RegisterRoutes(api *gin.RouterGroup, platos PlatoController, clientes ClienteController, pedidos PedidoController) {
	platosAPI := api.Group("/platos")
	{
		platosAPI.GET("", platos.ListPlatos)
		platosAPI.GET("/:id", platos.GetPlatoByID)
		platosAPI.POST("", platos.CreatePlato)
		platosAPI.PUT("/:id", platos.UpdatePlato)
		platosAPI.DELETE("/:id", platos.DeletePlato)
		platosAPI.DELETE("", platos.DeleteAllPlatos)
	}

	clientesAPI := api.Group("/clientes")
	{
		clientesAPI.GET("", clientes.ListClientes)
		clientesAPI.GET("/:id", clientes.GetClienteByID)
		clientesAPI.GET("/:id/pedidos", pedidos.ListPedidosByCliente)
		clientesAPI.POST("", clientes.CreateCliente)
		clientesAPI.PUT("/:id", clientes.UpdateCliente)
		clientesAPI.DELETE("/:id", clientes.DeleteCliente)
		clientesAPI.DELETE("", clientes.DeleteAllClientes)
	}

	pedidosAPI := api.Group("/pedidos")
	{
		pedidosAPI.GET("", pedidos.ListPedidos)
		pedidosAPI.GET("/:id", pedidos.GetPedidoByID)
		pedidosAPI.POST("", pedidos.CreatePedido)
		pedidosAPI.PUT("/:id", pedidos.UpdatePedido)
		pedidosAPI.DELETE("/:id", pedidos.DeletePedido)
		pedidosAPI.DELETE("", pedidos.DeleteAllPedidos)
	}
}
