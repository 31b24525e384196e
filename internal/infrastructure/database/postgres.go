package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"coffeeshop/internal/domain"
)

// Store is the Postgres implementation of the storage surface consumed
// by the services. Relations live in the order_coffee and
// user_favorite_coffee join tables.
type Store struct {
	pool *pgxpool.Pool
}

func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) UserByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	err := s.pool.QueryRow(ctx, `
		SELECT id, phone_number, name, password
		FROM users
		WHERE id=$1
		`, id).Scan(&u.ID, &u.PhoneNumber, &u.Name, &u.PasswordHash)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	if u.FavoriteCoffeeIDs, err = s.favoriteIDs(ctx, u.ID); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Store) UserByPhone(ctx context.Context, phone string) (*domain.User, error) {
	var u domain.User
	err := s.pool.QueryRow(ctx, `
		SELECT id, phone_number, name, password
		FROM users
		WHERE phone_number=$1
		`, phone).Scan(&u.ID, &u.PhoneNumber, &u.Name, &u.PasswordHash)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("user with phone %q: %w", phone, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	if u.FavoriteCoffeeIDs, err = s.favoriteIDs(ctx, u.ID); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Store) AllUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, phone_number, name, password
		FROM users
		ORDER BY id
		`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.PhoneNumber, &u.Name, &u.PasswordHash); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].FavoriteCoffeeIDs, err = s.favoriteIDs(ctx, users[i].ID); err != nil {
			return nil, err
		}
	}
	return users, nil
}

func (s *Store) SaveUser(ctx context.Context, user *domain.User) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if user.ID == 0 {
		err = tx.QueryRow(ctx, `
			INSERT INTO users (phone_number, name, password)
			VALUES ($1,$2,$3)
			RETURNING id
			`, user.PhoneNumber, user.Name, user.PasswordHash).Scan(&user.ID)
	} else {
		_, err = tx.Exec(ctx, `
			UPDATE users
			SET phone_number=$2, name=$3, password=$4
			WHERE id=$1
			`, user.ID, user.PhoneNumber, user.Name, user.PasswordHash)
	}
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM user_favorite_coffee WHERE user_id=$1`, user.ID); err != nil {
		return err
	}
	for _, coffeeID := range user.FavoriteCoffeeIDs {
		if _, err := tx.Exec(ctx, `
			INSERT INTO user_favorite_coffee (user_id, coffee_id)
			VALUES ($1,$2)
			`, user.ID, coffeeID); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// DeleteUser relies on ON DELETE CASCADE to drop the user's orders and
// join rows.
func (s *Store) DeleteUser(ctx context.Context, id int64) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM users WHERE id=$1`, id)
	return err
}

func (s *Store) CoffeeByID(ctx context.Context, id int64) (*domain.Coffee, error) {
	var c domain.Coffee
	err := s.pool.QueryRow(ctx, `
		SELECT id, name, type, price
		FROM coffees
		WHERE id=$1
		`, id).Scan(&c.ID, &c.Name, &c.Type, &c.Price)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("coffee %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) CoffeeByName(ctx context.Context, name string) (*domain.Coffee, error) {
	var c domain.Coffee
	err := s.pool.QueryRow(ctx, `
		SELECT id, name, type, price
		FROM coffees
		WHERE name=$1
		`, name).Scan(&c.ID, &c.Name, &c.Type, &c.Price)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("coffee %q: %w", name, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) AllCoffees(ctx context.Context) ([]domain.Coffee, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, type, price
		FROM coffees
		ORDER BY id
		`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var coffees []domain.Coffee
	for rows.Next() {
		var c domain.Coffee
		if err := rows.Scan(&c.ID, &c.Name, &c.Type, &c.Price); err != nil {
			return nil, err
		}
		coffees = append(coffees, c)
	}
	return coffees, rows.Err()
}

func (s *Store) SaveCoffee(ctx context.Context, coffee *domain.Coffee) error {
	if coffee.ID == 0 {
		return s.pool.QueryRow(ctx, `
			INSERT INTO coffees (name, type, price)
			VALUES ($1,$2,$3)
			RETURNING id
			`, coffee.Name, coffee.Type, coffee.Price).Scan(&coffee.ID)
	}
	_, err := s.pool.Exec(ctx, `
		UPDATE coffees
		SET name=$2, type=$3, price=$4
		WHERE id=$1
		`, coffee.ID, coffee.Name, coffee.Type, coffee.Price)
	return err
}

func (s *Store) DeleteCoffee(ctx context.Context, id int64) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM coffees WHERE id=$1`, id)
	return err
}

func (s *Store) OrderByID(ctx context.Context, id int64) (*domain.Order, error) {
	var o domain.Order
	err := s.pool.QueryRow(ctx, `
		SELECT id, user_id, notes
		FROM orders
		WHERE id=$1
		`, id).Scan(&o.ID, &o.UserID, &o.Notes)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("order %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	if o.CoffeeIDs, err = s.orderCoffeeIDs(ctx, o.ID); err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *Store) OrdersByUserID(ctx context.Context, userID int64) ([]domain.Order, error) {
	return s.queryOrders(ctx, `
		SELECT id, user_id, notes
		FROM orders
		WHERE user_id=$1
		ORDER BY id
		`, userID)
}

func (s *Store) OrdersByPhone(ctx context.Context, phone string) ([]domain.Order, error) {
	return s.queryOrders(ctx, `
		SELECT o.id, o.user_id, o.notes
		FROM orders o
		JOIN users u ON u.id = o.user_id
		WHERE u.phone_number=$1
		ORDER BY o.id
		`, phone)
}

func (s *Store) OrdersReferencingCoffee(ctx context.Context, coffeeID int64) ([]domain.Order, error) {
	return s.queryOrders(ctx, `
		SELECT o.id, o.user_id, o.notes
		FROM orders o
		JOIN order_coffee oc ON oc.order_id = o.id
		WHERE oc.coffee_id=$1
		ORDER BY o.id
		`, coffeeID)
}

func (s *Store) SaveOrder(ctx context.Context, order *domain.Order) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if order.ID == 0 {
		err = tx.QueryRow(ctx, `
			INSERT INTO orders (user_id, notes)
			VALUES ($1,$2)
			RETURNING id
			`, order.UserID, order.Notes).Scan(&order.ID)
	} else {
		_, err = tx.Exec(ctx, `
			UPDATE orders
			SET user_id=$2, notes=$3
			WHERE id=$1
			`, order.ID, order.UserID, order.Notes)
	}
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM order_coffee WHERE order_id=$1`, order.ID); err != nil {
		return err
	}
	for _, coffeeID := range order.CoffeeIDs {
		if _, err := tx.Exec(ctx, `
			INSERT INTO order_coffee (order_id, coffee_id)
			VALUES ($1,$2)
			`, order.ID, coffeeID); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (s *Store) DeleteOrder(ctx context.Context, id int64) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	return err
}

func (s *Store) queryOrders(ctx context.Context, sql string, arg any) ([]domain.Order, error) {
	rows, err := s.pool.Query(ctx, sql, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.Notes); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].CoffeeIDs, err = s.orderCoffeeIDs(ctx, orders[i].ID); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (s *Store) orderCoffeeIDs(ctx context.Context, orderID int64) ([]int64, error) {
	return s.scanIDs(ctx, `
		SELECT coffee_id FROM order_coffee
		WHERE order_id=$1
		ORDER BY coffee_id
		`, orderID)
}

func (s *Store) favoriteIDs(ctx context.Context, userID int64) ([]int64, error) {
	return s.scanIDs(ctx, `
		SELECT coffee_id FROM user_favorite_coffee
		WHERE user_id=$1
		ORDER BY coffee_id
		`, userID)
}

func (s *Store) scanIDs(ctx context.Context, sql string, arg any) ([]int64, error) {
	rows, err := s.pool.Query(ctx, sql, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
