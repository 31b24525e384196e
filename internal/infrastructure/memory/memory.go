// Package memory is a map-backed implementation of the storage surface,
// used by tests and local experiments in place of Postgres.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"coffeeshop/internal/domain"
)

type Store struct {
	mu sync.RWMutex

	users   map[int64]domain.User
	coffees map[int64]domain.Coffee
	orders  map[int64]domain.Order

	nextUserID   int64
	nextCoffeeID int64
	nextOrderID  int64
}

func NewStore() *Store {
	return &Store{
		users:   make(map[int64]domain.User),
		coffees: make(map[int64]domain.Coffee),
		orders:  make(map[int64]domain.Order),
	}
}

func (s *Store) UserByID(_ context.Context, id int64) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}
	return copyUser(u), nil
}

func (s *Store) UserByPhone(_ context.Context, phone string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.PhoneNumber == phone {
			return copyUser(u), nil
		}
	}
	return nil, fmt.Errorf("user with phone %q: %w", phone, domain.ErrNotFound)
}

func (s *Store) AllUsers(_ context.Context) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, *copyUser(u))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) SaveUser(_ context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user.ID == 0 {
		s.nextUserID++
		user.ID = s.nextUserID
	}
	s.users[user.ID] = *copyUser(*user)
	return nil
}

// DeleteUser also removes the user's orders, mirroring the relational
// schema's ON DELETE CASCADE.
func (s *Store) DeleteUser(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
	for orderID, o := range s.orders {
		if o.UserID == id {
			delete(s.orders, orderID)
		}
	}
	return nil
}

func (s *Store) CoffeeByID(_ context.Context, id int64) (*domain.Coffee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.coffees[id]
	if !ok {
		return nil, fmt.Errorf("coffee %d: %w", id, domain.ErrNotFound)
	}
	return &c, nil
}

func (s *Store) CoffeeByName(_ context.Context, name string) (*domain.Coffee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.coffees {
		if c.Name == name {
			return &c, nil
		}
	}
	return nil, fmt.Errorf("coffee %q: %w", name, domain.ErrNotFound)
}

func (s *Store) AllCoffees(_ context.Context) ([]domain.Coffee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Coffee, 0, len(s.coffees))
	for _, c := range s.coffees {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) SaveCoffee(_ context.Context, coffee *domain.Coffee) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if coffee.ID == 0 {
		s.nextCoffeeID++
		coffee.ID = s.nextCoffeeID
	}
	s.coffees[coffee.ID] = *coffee
	return nil
}

func (s *Store) DeleteCoffee(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.coffees, id)
	return nil
}

func (s *Store) OrderByID(_ context.Context, id int64) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, fmt.Errorf("order %d: %w", id, domain.ErrNotFound)
	}
	return copyOrder(o), nil
}

func (s *Store) OrdersByUserID(_ context.Context, userID int64) ([]domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Order
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, *copyOrder(o))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) OrdersByPhone(ctx context.Context, phone string) ([]domain.Order, error) {
	s.mu.RLock()
	var userID int64
	found := false
	for _, u := range s.users {
		if u.PhoneNumber == phone {
			userID = u.ID
			found = true
			break
		}
	}
	s.mu.RUnlock()
	if !found {
		return []domain.Order{}, nil
	}
	return s.OrdersByUserID(ctx, userID)
}

func (s *Store) OrdersReferencingCoffee(_ context.Context, coffeeID int64) ([]domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Order
	for _, o := range s.orders {
		if o.HasCoffee(coffeeID) {
			out = append(out, *copyOrder(o))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) SaveOrder(_ context.Context, order *domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if order.ID == 0 {
		s.nextOrderID++
		order.ID = s.nextOrderID
	}
	s.orders[order.ID] = *copyOrder(*order)
	return nil
}

func (s *Store) DeleteOrder(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.orders, id)
	return nil
}

func copyUser(u domain.User) *domain.User {
	u.FavoriteCoffeeIDs = append([]int64(nil), u.FavoriteCoffeeIDs...)
	return &u
}

func copyOrder(o domain.Order) *domain.Order {
	o.CoffeeIDs = append([]int64(nil), o.CoffeeIDs...)
	return &o
}
