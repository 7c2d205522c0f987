package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/franciscosanchezn/gin-restaurante-api/internal/models"
	"github.com/franciscosanchezn/gin-restaurante-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
)

func init() {
	// report json/query names instead of Go field names in validation errors
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(fieldName)
	}
}

func fieldName(field reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return field.Name
}

// parseID reads the :id path parameter, answering 422 when it is not a positive integer
func parseID(ctx *gin.Context, param string) (int, bool) {
	raw := ctx.Param(param)
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusUnprocessableEntity, models.NewAPIError(
			models.ErrValidationFailed,
			"Identificador inválido",
			map[string]interface{}{param: fmt.Sprintf("%q no es un entero positivo", raw)},
		))
		return 0, false
	}
	return id, true
}

// respondValidationError answers 422 with one entry per offending field
func respondValidationError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusUnprocessableEntity, models.NewAPIError(
		models.ErrValidationFailed,
		"Los datos enviados no son válidos",
		validationDetails(err),
	))
}

func validationDetails(err error) map[string]interface{} {
	details := map[string]interface{}{}

	var fieldErrs validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError
	var numErr *strconv.NumError
	switch {
	case errors.As(err, &fieldErrs):
		for _, fe := range fieldErrs {
			details[fe.Field()] = describe(fe)
		}
	case errors.As(err, &typeErr):
		details[typeErr.Field] = fmt.Sprintf("se esperaba un valor de tipo %s", typeErr.Type)
	case errors.As(err, &numErr):
		details["query"] = fmt.Sprintf("%q no es un número válido", numErr.Num)
	default:
		details["body"] = err.Error()
	}
	return details
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "campo requerido"
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("debe tener como máximo %s caracteres", fe.Param())
		}
		return fmt.Sprintf("debe ser menor o igual a %s", fe.Param())
	case "min":
		return fmt.Sprintf("debe ser mayor o igual a %s", fe.Param())
	case "gt":
		return fmt.Sprintf("debe ser mayor que %s", fe.Param())
	case "gte":
		return fmt.Sprintf("debe ser mayor o igual a %s", fe.Param())
	case "email":
		return "no es un correo electrónico válido"
	default:
		return fmt.Sprintf("no cumple la regla %q", fe.Tag())
	}
}

// respondIDMismatch answers 400 when the path id and the body id differ
func respondIDMismatch(ctx *gin.Context, resource string, pathID, bodyID int) {
	ctx.JSON(http.StatusBadRequest, models.NewAPIError(
		models.ErrIDMismatch,
		fmt.Sprintf("El ID del %s en la ruta y en el cuerpo deben ser iguales.", resource),
		map[string]interface{}{"path_id": pathID, "body_id": bodyID},
	))
}

// respondServiceError maps service errors onto HTTP responses
func respondServiceError(ctx *gin.Context, err error, notFoundCode, notFoundMessage string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		ctx.JSON(http.StatusNotFound, models.NewAPIError(notFoundCode, notFoundMessage))
	case errors.Is(err, services.ErrDuplicateEmail):
		ctx.JSON(http.StatusConflict, models.NewAPIError(models.ErrEmailTaken, "El email ya está registrado"))
	default:
		log.WithFields(log.Fields{
			"method": ctx.Request.Method,
			"path":   ctx.Request.URL.Path,
			"error":  err.Error(),
		}).Error("Unhandled store error")
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Error interno del servidor"))
	}
}
