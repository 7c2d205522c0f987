package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/franciscosanchezn/gin-restaurante-api/internal/config"
	"github.com/franciscosanchezn/gin-restaurante-api/internal/models"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// WelcomeMessage is returned by the root endpoint
const WelcomeMessage = "¡Bienvenido a Restaurante API!"

// Pinger reports whether the backing store is reachable
type Pinger func(ctx context.Context) error

// HealthController serves the root, health and diagnostics endpoints
type HealthController struct {
	conf *config.Config
	ping Pinger
}

// NewHealthController creates a HealthController reporting on the given configuration
func NewHealthController(conf *config.Config, ping Pinger) *HealthController {
	return &HealthController{conf: conf, ping: ping}
}

// Welcome godoc
// @Summary Mensaje de bienvenida
// @Tags health
// @Produce json
// @Success 200 {object} models.Message
// @Router / [get]
func (h *HealthController) Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, models.Message{Message: WelcomeMessage})
}

// HealthCheck godoc
// @Summary Health check
// @Description Check if the service is running and the database answers
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} models.APIError
// @Router /health [get]
func (h *HealthController) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	report := gin.H{
		"status":    "healthy",
		"database":  "up",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   h.conf.AppName,
		"version":   h.conf.Version,
	}
	if err := h.ping(ctx); err != nil {
		log.WithError(err).Error("Database ping failed")
		report["status"], report["database"] = "unhealthy", "down"
		c.JSON(http.StatusServiceUnavailable, models.NewAPIError(
			models.ErrUnavailable, "Base de datos no disponible", report,
		))
		return
	}
	c.JSON(http.StatusOK, report)
}

// Config godoc
// @Summary Configuración activa
// @Description Configuración cargada sin secretos; la URL de la base de datos lleva la contraseña enmascarada
// @Tags health
// @Produce json
// @Success 200 {object} config.Summary
// @Router /config [get]
func (h *HealthController) Config(c *gin.Context) {
	c.JSON(http.StatusOK, h.conf.Summary())
}

// NotFound answers requests that match no route
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, models.NewAPIError(
		models.ErrNotFound,
		"Recurso no encontrado",
		map[string]interface{}{"path": c.Request.URL.Path},
	))
}
