package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/quickbasket/quickbasket-api/internal/dto"
	"github.com/quickbasket/quickbasket-api/internal/service"
	"github.com/quickbasket/quickbasket-api/pkg/response"
	"github.com/rs/zerolog/log"
)

type ConfigController struct {
	service service.ConfigService
}

func CreateConfigController(e *echo.Group, service service.ConfigService, isLoggedIn echo.MiddlewareFunc, isAdmin echo.MiddlewareFunc) {
	c := ConfigController{
		service: service,
	}

	e.GET("/config", c.GetConfig)
	e.PUT("/config", c.UpdateConfig, isLoggedIn, isAdmin)
	e.POST("/config/reset", c.ResetConfig, isLoggedIn, isAdmin)
}

func (c *ConfigController) GetConfig(e echo.Context) error {
	data, err := c.service.GetConfig(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", data)
}

func (c *ConfigController) UpdateConfig(e echo.Context) error {
	payload := dto.ConfigRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateConfig").Msg("")
	}

	data, err := c.service.UpdateConfig(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", data)
}

func (c *ConfigController) ResetConfig(e echo.Context) error {
	data, err := c.service.ResetConfig(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Config reset to defaults", data)
}
