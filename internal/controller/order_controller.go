package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/quickbasket/quickbasket-api/internal/dto"
	"github.com/quickbasket/quickbasket-api/internal/service"
	"github.com/quickbasket/quickbasket-api/pkg/errs"
	"github.com/quickbasket/quickbasket-api/pkg/response"
	"github.com/quickbasket/quickbasket-api/pkg/utils"
	"github.com/rs/zerolog/log"
)

type OrderController struct {
	service service.OrderService
}

func CreateOrderController(e *echo.Group, service service.OrderService, isLoggedIn echo.MiddlewareFunc, isAdmin echo.MiddlewareFunc) {
	c := OrderController{
		service: service,
	}

	e.POST("/orders", c.AddOrder, isLoggedIn)
	e.GET("/orders", c.GetOrders, isLoggedIn, isAdmin)
	e.GET("/orders/myorders", c.GetMyOrders, isLoggedIn)
	e.GET("/orders/stats", c.GetOrderStats, isLoggedIn, isAdmin)
	e.GET("/orders/:id", c.GetOrderByID, isLoggedIn)
	e.PUT("/orders/:id/pay", c.MarkOrderPaid, isLoggedIn)
	e.PUT("/orders/:id/deliver", c.MarkOrderDelivered, isLoggedIn, isAdmin)
}

func (c *OrderController) AddOrder(e echo.Context) error {
	payload := dto.OrderRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddOrder").Msg("")
	}

	if err := e.Validate(&payload); err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, validationDetails(err))
	}

	userID, _, _ := utils.ExtractTokenUser(e)

	data, err := c.service.AddOrder(e.Request().Context(), userID, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "", data)
}

func (c *OrderController) GetOrders(e echo.Context) error {
	data, err := c.service.GetOrders(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", data)
}

func (c *OrderController) GetMyOrders(e echo.Context) error {
	userID, _, _ := utils.ExtractTokenUser(e)

	data, err := c.service.GetMyOrders(e.Request().Context(), userID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", data)
}

func (c *OrderController) GetOrderStats(e echo.Context) error {
	data, err := c.service.GetOrderStats(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", data)
}

func (c *OrderController) GetOrderByID(e echo.Context) error {
	id := e.Param("id")
	userID, _, isAdmin := utils.ExtractTokenUser(e)

	data, err := c.service.GetOrderByID(e.Request().Context(), id, userID, isAdmin)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", data)
}

func (c *OrderController) MarkOrderPaid(e echo.Context) error {
	id := e.Param("id")
	payload := dto.PaymentResultRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "MarkOrderPaid").Msg("")
	}

	userID, _, isAdmin := utils.ExtractTokenUser(e)

	data, err := c.service.MarkOrderPaid(e.Request().Context(), id, userID, isAdmin, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", data)
}

func (c *OrderController) MarkOrderDelivered(e echo.Context) error {
	id := e.Param("id")

	data, err := c.service.MarkOrderDelivered(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", data)
}
