package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"coffeeshop/internal/domain"
	"coffeeshop/internal/pkg/pool"
)

type CoffeeStorage interface {
	CoffeeByID(ctx context.Context, id int64) (*domain.Coffee, error)
	CoffeeByName(ctx context.Context, name string) (*domain.Coffee, error)
	AllCoffees(ctx context.Context) ([]domain.Coffee, error)
	SaveCoffee(ctx context.Context, coffee *domain.Coffee) error
	DeleteCoffee(ctx context.Context, id int64) error
	OrdersReferencingCoffee(ctx context.Context, coffeeID int64) ([]domain.Order, error)
	SaveOrder(ctx context.Context, order *domain.Order) error
	AllUsers(ctx context.Context) ([]domain.User, error)
	SaveUser(ctx context.Context, user *domain.User) error
	UserByID(ctx context.Context, id int64) (*domain.User, error)
}

// OrderDeleter lets the deletion cascade hand emptied orders back to the
// order service, so the same cache invalidation fires for them.
type OrderDeleter interface {
	DeleteOrder(ctx context.Context, id int64) (bool, error)
}

// CoffeeUpdate carries a partial update; nil fields are left untouched.
type CoffeeUpdate struct {
	Name  *string
	Type  *string
	Price *float64
}

type CoffeeService struct {
	storage CoffeeStorage
	orders  OrderDeleter
	logger  *zap.Logger
	workers int
}

func NewCoffeeService(storage CoffeeStorage, orders OrderDeleter, logger *zap.Logger, workers int) *CoffeeService {
	if workers < 1 {
		workers = 1
	}
	return &CoffeeService{
		storage: storage,
		orders:  orders,
		logger:  logger,
		workers: workers,
	}
}

func (s *CoffeeService) AllCoffees(ctx context.Context) ([]domain.Coffee, error) {
	return s.storage.AllCoffees(ctx)
}

func (s *CoffeeService) CoffeeByID(ctx context.Context, id int64) (*domain.Coffee, error) {
	return s.storage.CoffeeByID(ctx, id)
}

func (s *CoffeeService) CreateCoffee(ctx context.Context, coffee domain.Coffee) (*domain.Coffee, error) {
	existing, err := s.storage.CoffeeByName(ctx, coffee.Name)
	if err != nil && !isNotFound(err) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("coffee %q already exists: %w", coffee.Name, domain.ErrInvalidArgument)
	}

	coffee.ID = 0
	if err := s.storage.SaveCoffee(ctx, &coffee); err != nil {
		s.logger.Error("Error while saving coffee",
			zap.String("name", coffee.Name),
			zap.Error(err),
		)
		return nil, err
	}
	return &coffee, nil
}

func (s *CoffeeService) UpdateCoffee(ctx context.Context, id int64, upd CoffeeUpdate) (*domain.Coffee, error) {
	coffee, err := s.storage.CoffeeByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := false
	if upd.Name != nil && strings.TrimSpace(*upd.Name) != "" {
		coffee.Name = *upd.Name
		updated = true
	}
	if upd.Type != nil && strings.TrimSpace(*upd.Type) != "" {
		coffee.Type = *upd.Type
		updated = true
	}
	if upd.Price != nil && *upd.Price != 0 {
		coffee.Price = *upd.Price
		updated = true
	}
	if !updated {
		return nil, fmt.Errorf("no updatable fields provided: %w", domain.ErrInvalidArgument)
	}

	if err := s.storage.SaveCoffee(ctx, coffee); err != nil {
		return nil, err
	}
	return coffee, nil
}

// DeleteCoffee removes the coffee and repairs everything that references
// it, as one logical unit of work:
//
//  1. every referencing order loses the coffee; orders left with no
//     coffees are deleted through the order service, which also fires
//     their cache invalidation;
//  2. every user's favorites list is scrubbed of the coffee;
//  3. only then is the coffee itself deleted, so nothing observable
//     references a coffee that is already gone.
//
// Returns false if the coffee does not exist. Partial failures are not
// rolled back here; each step is idempotent and the cascade can be re-run.
func (s *CoffeeService) DeleteCoffee(ctx context.Context, id int64) (bool, error) {
	coffee, err := s.storage.CoffeeByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}

	orders, err := s.storage.OrdersReferencingCoffee(ctx, id)
	if err != nil {
		return false, err
	}
	for i := range orders {
		order := orders[i]
		order.RemoveCoffee(id)

		if len(order.CoffeeIDs) == 0 {
			if _, err := s.orders.DeleteOrder(ctx, order.ID); err != nil {
				return false, err
			}
			continue
		}
		if err := s.storage.SaveOrder(ctx, &order); err != nil {
			return false, err
		}
	}

	if err := s.scrubFavorites(ctx, id); err != nil {
		return false, err
	}

	if err := s.storage.DeleteCoffee(ctx, id); err != nil {
		return false, err
	}

	s.logger.Info("Coffee deleted",
		zap.Int64("coffee_id", id),
		zap.String("name", coffee.Name),
		zap.Int("orders_touched", len(orders)),
	)
	return true, nil
}

// scrubFavorites removes the coffee from every user's favorites. The
// backing store exposes no reverse index for favorites, so this is a
// full scan, spread over a bounded worker pool.
func (s *CoffeeService) scrubFavorites(ctx context.Context, coffeeID int64) error {
	users, err := s.storage.AllUsers(ctx)
	if err != nil {
		return err
	}

	p := pool.New(s.workers)
	var mu sync.Mutex
	var firstErr error
	for i := range users {
		user := users[i]
		if !user.HasFavorite(coffeeID) {
			continue
		}
		p.Submit(func() {
			user.RemoveFavorite(coffeeID)
			if err := s.storage.SaveUser(ctx, &user); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		})
	}
	p.Close()
	p.Wait()
	return firstErr
}

func (s *CoffeeService) CoffeeWithOrders(ctx context.Context, id int64) (*domain.CoffeeWithOrders, error) {
	coffee, err := s.storage.CoffeeByID(ctx, id)
	if err != nil {
		return nil, err
	}

	orders, err := s.storage.OrdersReferencingCoffee(ctx, id)
	if err != nil {
		return nil, err
	}

	infos := make([]domain.OrderInfo, 0, len(orders))
	for i := range orders {
		user, err := s.storage.UserByID(ctx, orders[i].UserID)
		if err != nil {
			return nil, err
		}
		infos = append(infos, domain.OrderInfo{
			ID:       orders[i].ID,
			UserName: user.Name,
			Notes:    orders[i].Notes,
		})
	}

	return &domain.CoffeeWithOrders{
		Coffee: *coffee,
		Orders: infos,
	}, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
