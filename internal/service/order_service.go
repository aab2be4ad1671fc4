package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/quickbasket/quickbasket-api/config"
	"github.com/quickbasket/quickbasket-api/internal/domain"
	"github.com/quickbasket/quickbasket-api/internal/dto"
	"github.com/quickbasket/quickbasket-api/internal/repository"
	"github.com/quickbasket/quickbasket-api/pkg/errs"
	"github.com/quickbasket/quickbasket-api/pkg/utils"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"gopkg.in/gomail.v2"
)

const recentPendingLimit = 5

type OrderServiceImpl struct {
	orderRepo     repository.OrderRepository
	productRepo   repository.ProductRepository
	userRepo      repository.UserRepository
	kafkaProducer *kafka.Conn
	config        config.Config
}

func CreateOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, userRepo repository.UserRepository, kafkaProducer *kafka.Conn, config config.Config) OrderService {
	return &OrderServiceImpl{
		orderRepo:     orderRepo,
		productRepo:   productRepo,
		userRepo:      userRepo,
		kafkaProducer: kafkaProducer,
		config:        config,
	}
}

// AddOrder converts a submitted cart into a persisted order. Every stock
// decrement and the order insert run inside one session transaction: an
// unknown product, insufficient stock, or a price mismatch aborts the whole
// request and rolls back any decrement already applied. Line items snapshot
// the stored product's price, name, and image; the client's copies are only
// checked against them, never trusted.
func (s *OrderServiceImpl) AddOrder(ctx context.Context, userID string, payload dto.OrderRequest) (data dto.OrderResponse, err error) {
	if len(payload.OrderItems) == 0 {
		return data, errs.ErrEmptyOrder
	}

	ownerID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return data, errs.ErrNotLoggedIn
	}

	var order domain.Order

	err = s.orderRepo.HandleTrx(ctx, func(trxCtx context.Context) error {
		var orderItems []domain.OrderItem
		var itemsPrice float64

		for _, item := range payload.OrderItems {
			product, err := s.productRepo.GetProductByID(trxCtx, item.ProductID)
			if err != nil {
				return err
			}

			if err := s.productRepo.DecrementStock(trxCtx, product.ID, item.Quantity); err != nil {
				return err
			}

			orderItems = append(orderItems, domain.OrderItem{
				ProductID: product.ID,
				Name:      product.Name,
				Image:     product.Image,
				Price:     product.Price,
				Quantity:  item.Quantity,
			})
			itemsPrice += product.Price * float64(item.Quantity)
		}

		itemsPrice = roundPrice(itemsPrice)
		taxPrice := roundPrice(itemsPrice * s.config.PricingConfig.TaxRate)
		shippingPrice := s.config.PricingConfig.ShippingFee
		if itemsPrice >= s.config.PricingConfig.FreeShippingOver {
			shippingPrice = 0
		}
		totalPrice := roundPrice(itemsPrice + taxPrice + shippingPrice)

		if !priceEqual(itemsPrice, payload.ItemsPrice) || !priceEqual(totalPrice, payload.TotalPrice) {
			return errs.ErrPriceMismatch
		}

		now := time.Now().Unix()
		order = domain.Order{
			OrderNumber: ulid.Make().String(),
			UserID:      ownerID,
			OrderItems:  orderItems,
			ShippingAddress: domain.ShippingAddress{
				Address:    payload.ShippingAddress.Address,
				City:       payload.ShippingAddress.City,
				PostalCode: payload.ShippingAddress.PostalCode,
				Country:    payload.ShippingAddress.Country,
			},
			PaymentMethod: payload.PaymentMethod,
			ItemsPrice:    itemsPrice,
			TaxPrice:      taxPrice,
			ShippingPrice: shippingPrice,
			TotalPrice:    totalPrice,
			CreatedAt:     now,
			UpdatedAt:     now,
		}

		orderID, err := s.orderRepo.AddOrder(trxCtx, order)
		if err != nil {
			return err
		}

		order.ID = orderID
		return nil
	})
	if err != nil {
		return data, err
	}

	s.publishOrderEvent(ctx, "order_created", order)

	data.Order = order
	return data, nil
}

func (s *OrderServiceImpl) GetOrderByID(ctx context.Context, orderID string, requesterID string, isAdmin bool) (data dto.OrderResponse, err error) {
	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return
	}

	if !isAdmin && order.UserID.Hex() != requesterID {
		return data, errs.ErrForbidden
	}

	data.Order = order

	user, err := s.userRepo.GetUserByID(ctx, order.UserID)
	if err != nil {
		if err != errs.ErrNotFound {
			return data, err
		}
		return data, nil
	}

	data.User = &dto.OrderUser{
		ID:    user.ID.Hex(),
		Name:  user.Name,
		Email: user.Email,
	}

	return data, nil
}

func (s *OrderServiceImpl) GetMyOrders(ctx context.Context, userID string) (data []dto.OrderResponse, err error) {
	ownerID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return data, errs.ErrNotLoggedIn
	}

	orders, err := s.orderRepo.GetOrdersByUserID(ctx, ownerID)
	if err != nil {
		return
	}

	for _, order := range orders {
		data = append(data, dto.OrderResponse{Order: order})
	}

	return data, nil
}

func (s *OrderServiceImpl) GetOrders(ctx context.Context) (data []dto.OrderResponse, err error) {
	orders, err := s.orderRepo.GetOrders(ctx)
	if err != nil {
		return
	}

	return s.populateOwners(ctx, orders)
}

func (s *OrderServiceImpl) MarkOrderPaid(ctx context.Context, orderID string, requesterID string, isAdmin bool, payload dto.PaymentResultRequest) (data dto.OrderResponse, err error) {
	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return
	}

	if !isAdmin && order.UserID.Hex() != requesterID {
		return data, errs.ErrForbidden
	}

	// The payment result is stored exactly as submitted. There is no
	// provider-side verification in this system.
	paidAt := time.Now().Unix()
	result := domain.PaymentResult{
		TransactionID: payload.TransactionID,
		Status:        payload.Status,
		UpdateTime:    payload.UpdateTime,
		EmailAddress:  payload.EmailAddress,
	}

	if err = s.orderRepo.MarkOrderPaid(ctx, order.ID, paidAt, result); err != nil {
		return
	}

	order, err = s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return
	}

	s.publishOrderEvent(ctx, "order_paid", order)
	s.sendReceiptEmail(ctx, order)

	data.Order = order
	return data, nil
}

func (s *OrderServiceImpl) MarkOrderDelivered(ctx context.Context, orderID string) (data dto.OrderResponse, err error) {
	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return
	}

	if !order.IsPaid {
		return data, errs.ErrOrderNotPaid
	}

	if err = s.orderRepo.MarkOrderDelivered(ctx, order.ID, time.Now().Unix()); err != nil {
		return
	}

	order, err = s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return
	}

	data.Order = order
	return data, nil
}

func (s *OrderServiceImpl) GetOrderStats(ctx context.Context) (data dto.OrderStatsResponse, err error) {
	if data.TotalOrders, err = s.orderRepo.CountOrders(ctx); err != nil {
		return
	}

	if data.PendingOrders, err = s.orderRepo.CountOrdersByDelivered(ctx, false); err != nil {
		return
	}

	if data.CompletedOrders, err = s.orderRepo.CountOrdersByDelivered(ctx, true); err != nil {
		return
	}

	paidOrders, err := s.orderRepo.GetPaidOrders(ctx)
	if err != nil {
		return
	}

	for _, order := range paidOrders {
		data.TotalSales += order.TotalPrice
	}
	data.TotalSales = roundPrice(data.TotalSales)

	recentPending, err := s.orderRepo.GetUndeliveredOrders(ctx, recentPendingLimit)
	if err != nil {
		return
	}

	data.RecentPending, err = s.populateOwners(ctx, recentPending)
	if err != nil {
		return
	}

	return data, nil
}

func (s *OrderServiceImpl) populateOwners(ctx context.Context, orders []domain.Order) (data []dto.OrderResponse, err error) {
	seen := make(map[primitive.ObjectID]bool)
	var userIDs []primitive.ObjectID
	for _, order := range orders {
		if !seen[order.UserID] {
			seen[order.UserID] = true
			userIDs = append(userIDs, order.UserID)
		}
	}

	users, err := s.userRepo.GetUsersByIDs(ctx, userIDs)
	if err != nil {
		return
	}

	names := make(map[primitive.ObjectID]string, len(users))
	for _, user := range users {
		names[user.ID] = user.Name
	}

	for _, order := range orders {
		resp := dto.OrderResponse{Order: order}
		if name, ok := names[order.UserID]; ok {
			resp.User = &dto.OrderUser{ID: order.UserID.Hex(), Name: name}
		}
		data = append(data, resp)
	}

	return data, nil
}

func (s *OrderServiceImpl) publishOrderEvent(ctx context.Context, eventType string, order domain.Order) {
	if s.kafkaProducer == nil {
		return
	}

	kafkaMsg := dto.KafkaMessage{
		EventType: eventType,
		Data:      order,
	}

	jsonMsg, err := json.Marshal(kafkaMsg)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "publishOrderEvent").Msg("")
		return
	}

	maxRetries := 3
	for i := 0; i < maxRetries; i++ {
		_, err = s.kafkaProducer.WriteMessages(kafka.Message{
			Key:   []byte(order.OrderNumber),
			Value: jsonMsg,
		})
		if err == nil {
			return
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "publishOrderEvent").Msgf("Failed to write Kafka message (attempt %d/%d)", i+1, maxRetries)
		time.Sleep(time.Second * time.Duration(i+1))
	}
}

func (s *OrderServiceImpl) sendReceiptEmail(ctx context.Context, order domain.Order) {
	if s.config.SMTPConfig.Host == "" {
		return
	}

	user, err := s.userRepo.GetUserByID(ctx, order.UserID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "sendReceiptEmail").Msg("")
		return
	}

	message := gomail.NewMessage()
	message.SetHeader("From", s.config.SMTPConfig.Sender)
	message.SetHeader("To", user.Email)
	message.SetHeader("Subject", fmt.Sprintf("Payment received for order %s", order.OrderNumber))
	message.SetBody("text/plain", fmt.Sprintf("Hi %s,\n\nWe received your payment of %.2f for order %s. We are getting it ready for delivery.\n", user.Name, order.TotalPrice, order.OrderNumber))

	go func() {
		if err := utils.SendEmail(message, s.config.SMTPConfig.Sender, s.config.SMTPConfig.Password, s.config.SMTPConfig.Host, s.config.SMTPConfig.Port); err != nil {
			log.Error().Err(err).Str("component", "sendReceiptEmail").Msg("")
		}
	}()
}

func roundPrice(v float64) float64 {
	return math.Round(v*100) / 100
}

func priceEqual(a, b float64) bool {
	return math.Abs(a-b) <= 0.01
}
