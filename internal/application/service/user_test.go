package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"coffeeshop/internal/domain"
	"coffeeshop/internal/infrastructure/memory"
)

func newUserService() (*UserService, *memory.Store) {
	store := memory.NewStore()
	return NewUserService(store, zap.NewNop()), store
}

func TestCreateUser(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	u, err := svc.CreateUser(ctx, "+79990000020", "Nina", "secret")
	require.NoError(t, err)
	require.NotZero(t, u.ID)
	require.Equal(t, HashPassword("secret"), u.PasswordHash)

	_, err = svc.CreateUser(ctx, "", "Nina", "secret")
	require.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = svc.CreateUser(ctx, "+79990000021", "  ", "secret")
	require.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = svc.CreateUser(ctx, "+79990000020", "Other", "secret")
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestHashPassword(t *testing.T) {
	// SHA-256 of "password", hex encoded.
	require.Equal(t,
		"5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8",
		HashPassword("password"),
	)
	require.Len(t, HashPassword(""), 64)
}

func TestUpdateUser(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	u, err := svc.CreateUser(ctx, "+79990000022", "Pavel", "old")
	require.NoError(t, err)

	newName := "Pavel P."
	newPassword := "new"
	updated, err := svc.UpdateUser(ctx, u.ID, UserUpdate{Name: &newName, Password: &newPassword})
	require.NoError(t, err)
	require.Equal(t, newName, updated.Name)
	require.Equal(t, "+79990000022", updated.PhoneNumber)
	require.Equal(t, HashPassword("new"), updated.PasswordHash)

	blank := " "
	_, err = svc.UpdateUser(ctx, u.ID, UserUpdate{PhoneNumber: &blank})
	require.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = svc.UpdateUser(ctx, 404, UserUpdate{Name: &newName})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteUser(t *testing.T) {
	svc, store := newUserService()
	ctx := context.Background()

	u, err := svc.CreateUser(ctx, "+79990000023", "Rita", "pw")
	require.NoError(t, err)

	deleted, err := svc.DeleteUser(ctx, u.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	_, err = store.UserByID(ctx, u.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	deleted, err = svc.DeleteUser(ctx, u.ID)
	require.NoError(t, err)
	require.False(t, deleted)
}

func TestFavorites(t *testing.T) {
	svc, store := newUserService()
	ctx := context.Background()

	u, err := svc.CreateUser(ctx, "+79990000024", "Sasha", "pw")
	require.NoError(t, err)

	coffee := &domain.Coffee{Name: "Lungo", Price: 3}
	require.NoError(t, store.SaveCoffee(ctx, coffee))

	require.NoError(t, svc.AddFavorite(ctx, u.ID, coffee.ID))
	// Adding twice changes nothing.
	require.NoError(t, svc.AddFavorite(ctx, u.ID, coffee.ID))

	ids, err := svc.FavoriteCoffeeIDs(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, []int64{coffee.ID}, ids)

	require.ErrorIs(t, svc.AddFavorite(ctx, u.ID, 404), domain.ErrNotFound)
	require.ErrorIs(t, svc.AddFavorite(ctx, 404, coffee.ID), domain.ErrNotFound)

	require.NoError(t, svc.RemoveFavorite(ctx, u.ID, coffee.ID))
	// Removing twice changes nothing.
	require.NoError(t, svc.RemoveFavorite(ctx, u.ID, coffee.ID))

	ids, err = svc.FavoriteCoffeeIDs(ctx, u.ID)
	require.NoError(t, err)
	require.Empty(t, ids)

	// A missing user yields an empty list, not an error.
	ids, err = svc.FavoriteCoffeeIDs(ctx, 404)
	require.NoError(t, err)
	require.Empty(t, ids)
}

func TestUserWithRelations(t *testing.T) {
	svc, store := newUserService()
	ctx := context.Background()

	u, err := svc.CreateUser(ctx, "+79990000025", "Tanya", "pw")
	require.NoError(t, err)

	coffee := &domain.Coffee{Name: "Doppio", Price: 3.4}
	require.NoError(t, store.SaveCoffee(ctx, coffee))
	require.NoError(t, svc.AddFavorite(ctx, u.ID, coffee.ID))

	order := &domain.Order{UserID: u.ID, CoffeeIDs: []int64{coffee.ID}, Notes: "to go"}
	require.NoError(t, store.SaveOrder(ctx, order))

	out, err := svc.UserWithRelations(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, u.ID, out.ID)
	require.Equal(t, []domain.Coffee{*coffee}, out.FavoriteCoffees)
	require.Len(t, out.Orders, 1)
	require.Equal(t, order.ID, out.Orders[0].ID)
	require.Equal(t, "Tanya", out.Orders[0].UserName)
	require.Equal(t, "to go", out.Orders[0].Notes)

	_, err = svc.UserWithRelations(ctx, 404)
	require.ErrorIs(t, err, domain.ErrNotFound)
}
