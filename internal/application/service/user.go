package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"coffeeshop/internal/domain"
)

type UserStorage interface {
	UserByID(ctx context.Context, id int64) (*domain.User, error)
	UserByPhone(ctx context.Context, phone string) (*domain.User, error)
	AllUsers(ctx context.Context) ([]domain.User, error)
	SaveUser(ctx context.Context, user *domain.User) error
	DeleteUser(ctx context.Context, id int64) error
	CoffeeByID(ctx context.Context, id int64) (*domain.Coffee, error)
	OrdersByUserID(ctx context.Context, userID int64) ([]domain.Order, error)
}

// UserUpdate carries a partial update; nil fields are left untouched.
type UserUpdate struct {
	PhoneNumber *string
	Name        *string
	Password    *string
}

type UserService struct {
	storage UserStorage
	logger  *zap.Logger
}

func NewUserService(storage UserStorage, logger *zap.Logger) *UserService {
	return &UserService{
		storage: storage,
		logger:  logger,
	}
}

func (s *UserService) AllUsers(ctx context.Context) ([]domain.User, error) {
	return s.storage.AllUsers(ctx)
}

func (s *UserService) UserByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.storage.UserByID(ctx, id)
}

func (s *UserService) CreateUser(ctx context.Context, phone, name, password string) (*domain.User, error) {
	if strings.TrimSpace(phone) == "" {
		return nil, fmt.Errorf("phone number must not be empty: %w", domain.ErrInvalidArgument)
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("name must not be empty: %w", domain.ErrInvalidArgument)
	}

	existing, err := s.storage.UserByPhone(ctx, phone)
	if err != nil && !isNotFound(err) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("phone number %q already registered: %w", phone, domain.ErrInvalidArgument)
	}

	user := &domain.User{
		PhoneNumber:  phone,
		Name:         name,
		PasswordHash: HashPassword(password),
	}
	if err := s.storage.SaveUser(ctx, user); err != nil {
		s.logger.Error("Error while saving user",
			zap.String("phone", phone),
			zap.Error(err),
		)
		return nil, err
	}
	return user, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id int64, upd UserUpdate) (*domain.User, error) {
	user, err := s.storage.UserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.PhoneNumber != nil {
		if strings.TrimSpace(*upd.PhoneNumber) == "" {
			return nil, fmt.Errorf("phone number must not be empty: %w", domain.ErrInvalidArgument)
		}
		user.PhoneNumber = *upd.PhoneNumber
	}
	if upd.Name != nil {
		if strings.TrimSpace(*upd.Name) == "" {
			return nil, fmt.Errorf("name must not be empty: %w", domain.ErrInvalidArgument)
		}
		user.Name = *upd.Name
	}
	if upd.Password != nil {
		user.PasswordHash = HashPassword(*upd.Password)
	}

	if err := s.storage.SaveUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id int64) (bool, error) {
	if _, err := s.storage.UserByID(ctx, id); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}
	if err := s.storage.DeleteUser(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

// FavoriteCoffeeIDs returns the ids of the user's favorite coffees; a
// missing user yields an empty list, not an error.
func (s *UserService) FavoriteCoffeeIDs(ctx context.Context, userID int64) ([]int64, error) {
	user, err := s.storage.UserByID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return []int64{}, nil
		}
		return nil, err
	}
	return append([]int64(nil), user.FavoriteCoffeeIDs...), nil
}

// AddFavorite is idempotent: adding a coffee already in the favorites
// changes nothing.
func (s *UserService) AddFavorite(ctx context.Context, userID, coffeeID int64) error {
	user, err := s.storage.UserByID(ctx, userID)
	if err != nil {
		return err
	}
	if _, err := s.storage.CoffeeByID(ctx, coffeeID); err != nil {
		return err
	}

	if user.HasFavorite(coffeeID) {
		return nil
	}
	user.FavoriteCoffeeIDs = append(user.FavoriteCoffeeIDs, coffeeID)
	return s.storage.SaveUser(ctx, user)
}

func (s *UserService) RemoveFavorite(ctx context.Context, userID, coffeeID int64) error {
	user, err := s.storage.UserByID(ctx, userID)
	if err != nil {
		return err
	}
	if _, err := s.storage.CoffeeByID(ctx, coffeeID); err != nil {
		return err
	}

	if !user.HasFavorite(coffeeID) {
		return nil
	}
	user.RemoveFavorite(coffeeID)
	return s.storage.SaveUser(ctx, user)
}

func (s *UserService) UserWithRelations(ctx context.Context, id int64) (*domain.UserWithRelations, error) {
	user, err := s.storage.UserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	favorites := make([]domain.Coffee, 0, len(user.FavoriteCoffeeIDs))
	for _, coffeeID := range user.FavoriteCoffeeIDs {
		coffee, err := s.storage.CoffeeByID(ctx, coffeeID)
		if err != nil {
			return nil, err
		}
		favorites = append(favorites, *coffee)
	}

	orders, err := s.storage.OrdersByUserID(ctx, id)
	if err != nil {
		return nil, err
	}
	infos := make([]domain.OrderInfo, 0, len(orders))
	for i := range orders {
		infos = append(infos, domain.OrderInfo{
			ID:       orders[i].ID,
			UserName: user.Name,
			Notes:    orders[i].Notes,
		})
	}

	return &domain.UserWithRelations{
		ID:              user.ID,
		Name:            user.Name,
		PhoneNumber:     user.PhoneNumber,
		FavoriteCoffees: favorites,
		Orders:          infos,
	}, nil
}

// HashPassword returns the hex encoded SHA-256 digest of password.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
