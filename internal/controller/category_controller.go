package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/quickbasket/quickbasket-api/internal/dto"
	"github.com/quickbasket/quickbasket-api/internal/service"
	"github.com/quickbasket/quickbasket-api/pkg/errs"
	"github.com/quickbasket/quickbasket-api/pkg/response"
	"github.com/rs/zerolog/log"
)

type CategoryController struct {
	service service.CategoryService
}

func CreateCategoryController(e *echo.Group, service service.CategoryService, isLoggedIn echo.MiddlewareFunc, isAdmin echo.MiddlewareFunc) {
	c := CategoryController{
		service: service,
	}

	e.GET("/categories", c.GetCategories)
	e.POST("/categories", c.AddCategory, isLoggedIn, isAdmin)
}

func (c *CategoryController) GetCategories(e echo.Context) error {
	data, err := c.service.GetCategories(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", data)
}

func (c *CategoryController) AddCategory(e echo.Context) error {
	payload := dto.CategoryRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddCategory").Msg("")
	}

	if err := e.Validate(&payload); err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, validationDetails(err))
	}

	data, err := c.service.AddCategory(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "", data)
}
