package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"coffeeshop/internal/domain"
	"coffeeshop/internal/observability"
)

//go:generate mockgen -source internal/application/service/order.go -destination=internal/application/service/order_mock_test.go -package=service

// FilterCache is the bounded phone-number → order-summaries cache the
// read path consults and the write paths invalidate.
type FilterCache interface {
	Get(phone string) ([]domain.OrderSummary, bool)
	Put(phone string, orders []domain.OrderSummary)
	Remove(phone string)
}

type OrderStorage interface {
	UserByID(ctx context.Context, id int64) (*domain.User, error)
	CoffeeByID(ctx context.Context, id int64) (*domain.Coffee, error)
	OrderByID(ctx context.Context, id int64) (*domain.Order, error)
	OrdersByUserID(ctx context.Context, userID int64) ([]domain.Order, error)
	OrdersByPhone(ctx context.Context, phone string) ([]domain.Order, error)
	SaveOrder(ctx context.Context, order *domain.Order) error
	DeleteOrder(ctx context.Context, id int64) error
}

type OrderService struct {
	cache   FilterCache
	storage OrderStorage
	logger  *zap.Logger
	metrics observability.Metrics
}

func NewOrderService(cache FilterCache, storage OrderStorage, logger *zap.Logger, metrics observability.Metrics) *OrderService {
	return &OrderService{
		cache:   cache,
		storage: storage,
		logger:  logger,
		metrics: metrics,
	}
}

func (s *OrderService) FindOrdersByPhone(ctx context.Context, phone string) ([]domain.OrderSummary, error) {
	orders, _, err := s.FindOrdersByPhoneWithStats(ctx, phone)
	return orders, err
}

// FindOrdersByPhoneWithStats is the cache-aside read path: cache first,
// storage on miss, populate before returning.
func (s *OrderService) FindOrdersByPhoneWithStats(ctx context.Context, phone string) ([]domain.OrderSummary, LookupStats, error) {
	var st LookupStats

	tCacheStart := time.Now()
	if summaries, ok := s.cache.Get(phone); ok {
		st.Source = SourceCache
		st.CacheMs = convertToMs(tCacheStart)
		s.metrics.IncCacheHit()
		s.metrics.ObserveLookup(string(st.Source), st.CacheMs, 0)

		s.logger.Info("Order filter served from cache",
			zap.String("phone", phone),
			zap.Float64("cache_ms", st.CacheMs),
		)

		return summaries, st, nil
	}

	s.metrics.IncCacheMiss()
	st.CacheMs = convertToMs(tCacheStart)

	tDbStart := time.Now()
	orders, err := s.storage.OrdersByPhone(ctx, phone)
	if err != nil {
		s.logger.Error("Order filter query failed",
			zap.String("phone", phone),
			zap.Error(err),
		)
		return nil, st, err
	}

	summaries, err := s.summarize(ctx, orders)
	if err != nil {
		return nil, st, err
	}

	st.Source = SourceDB
	st.DBMs = convertToMs(tDbStart)

	s.cache.Put(phone, summaries)

	s.metrics.ObserveLookup(string(st.Source), st.CacheMs, st.DBMs)
	s.logger.Info("Order filter served from DB",
		zap.String("phone", phone),
		zap.Int("orders", len(summaries)),
		zap.Float64("db_ms", st.DBMs),
	)

	return summaries, st, nil
}

// CreateOrder persists a new order for the user and invalidates the
// cached filter for that user's phone number before returning.
func (s *OrderService) CreateOrder(ctx context.Context, userID int64, coffeeIDs []int64, notes string) (*domain.OrderSummary, error) {
	user, err := s.storage.UserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(coffeeIDs) == 0 {
		return nil, fmt.Errorf("order must reference at least one coffee: %w", domain.ErrInvalidArgument)
	}

	coffees := make([]domain.Coffee, 0, len(coffeeIDs))
	for _, id := range coffeeIDs {
		coffee, err := s.storage.CoffeeByID(ctx, id)
		if err != nil {
			return nil, err
		}
		coffees = append(coffees, *coffee)
	}

	order := &domain.Order{
		UserID:    user.ID,
		CoffeeIDs: append([]int64(nil), coffeeIDs...),
		Notes:     notes,
	}

	t0 := time.Now()
	if err := s.storage.SaveOrder(ctx, order); err != nil {
		s.logger.Error("Error while saving order",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return nil, err
	}
	s.metrics.ObserveMutation("create_order", convertToMs(t0))

	s.cache.Remove(user.PhoneNumber)
	s.logger.Info("Order created, cached filter invalidated",
		zap.Int64("order_id", order.ID),
		zap.String("phone", user.PhoneNumber),
	)

	return &domain.OrderSummary{
		ID:      order.ID,
		User:    summaryUser(user),
		Coffees: coffees,
		Notes:   order.Notes,
	}, nil
}

// DeleteOrder removes the order and invalidates the cached filter for
// the owning user's phone number. Returns false if the order is absent.
func (s *OrderService) DeleteOrder(ctx context.Context, id int64) (bool, error) {
	order, err := s.storage.OrderByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}

	user, err := s.storage.UserByID(ctx, order.UserID)
	if err != nil {
		return false, err
	}

	t0 := time.Now()
	if err := s.storage.DeleteOrder(ctx, id); err != nil {
		s.logger.Error("Error while deleting order",
			zap.Int64("order_id", id),
			zap.Error(err),
		)
		return false, err
	}
	s.metrics.ObserveMutation("delete_order", convertToMs(t0))

	s.cache.Remove(user.PhoneNumber)
	s.logger.Info("Order deleted, cached filter invalidated",
		zap.Int64("order_id", id),
		zap.String("phone", user.PhoneNumber),
	)

	return true, nil
}

func (s *OrderService) OrderByID(ctx context.Context, id int64) (*domain.OrderSummary, error) {
	order, err := s.storage.OrderByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.summary(ctx, order)
}

func (s *OrderService) OrdersByUserID(ctx context.Context, userID int64) ([]domain.OrderSummary, error) {
	orders, err := s.storage.OrdersByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.summarize(ctx, orders)
}

func (s *OrderService) summarize(ctx context.Context, orders []domain.Order) ([]domain.OrderSummary, error) {
	summaries := make([]domain.OrderSummary, 0, len(orders))
	for i := range orders {
		sum, err := s.summary(ctx, &orders[i])
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, *sum)
	}
	return summaries, nil
}

func (s *OrderService) summary(ctx context.Context, order *domain.Order) (*domain.OrderSummary, error) {
	user, err := s.storage.UserByID(ctx, order.UserID)
	if err != nil {
		return nil, err
	}
	coffees := make([]domain.Coffee, 0, len(order.CoffeeIDs))
	for _, id := range order.CoffeeIDs {
		coffee, err := s.storage.CoffeeByID(ctx, id)
		if err != nil {
			return nil, err
		}
		coffees = append(coffees, *coffee)
	}
	return &domain.OrderSummary{
		ID:      order.ID,
		User:    summaryUser(user),
		Coffees: coffees,
		Notes:   order.Notes,
	}, nil
}

func summaryUser(u *domain.User) domain.UserSummary {
	return domain.UserSummary{
		ID:          u.ID,
		PhoneNumber: u.PhoneNumber,
		Name:        u.Name,
	}
}
