package domain

// Coffee is a menu position. Name is unique across the catalog.
type Coffee struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Type  string  `json:"type"`
	Price float64 `json:"price"`
}

// Order references its owner and coffees by id. An order with an empty
// coffee set is invalid and must never be persisted in that state.
type Order struct {
	ID        int64   `json:"id"`
	UserID    int64   `json:"user_id"`
	CoffeeIDs []int64 `json:"coffee_ids"`
	Notes     string  `json:"notes"`
}

type User struct {
	ID                int64   `json:"id"`
	PhoneNumber       string  `json:"phone_number"`
	Name              string  `json:"name"`
	PasswordHash      string  `json:"-"`
	FavoriteCoffeeIDs []int64 `json:"favorite_coffee_ids"`
}

// UserSummary is the user part of an order summary, without credentials.
type UserSummary struct {
	ID          int64  `json:"id"`
	PhoneNumber string `json:"phone_number"`
	Name        string `json:"name"`
}

// OrderSummary is the transfer shape of an order with its relations
// resolved. Lists of summaries are what the filter cache stores.
type OrderSummary struct {
	ID      int64       `json:"id"`
	User    UserSummary `json:"user"`
	Coffees []Coffee    `json:"coffees"`
	Notes   string      `json:"notes"`
}

// OrderInfo is a light projection used inside relation views.
type OrderInfo struct {
	ID       int64  `json:"id"`
	UserName string `json:"user_name"`
	Notes    string `json:"notes"`
}

type CoffeeWithOrders struct {
	Coffee
	Orders []OrderInfo `json:"orders"`
}

type UserWithRelations struct {
	ID              int64       `json:"id"`
	Name            string      `json:"name"`
	PhoneNumber     string      `json:"phone_number"`
	FavoriteCoffees []Coffee    `json:"favorite_coffees"`
	Orders          []OrderInfo `json:"orders"`
}

// HasCoffee reports whether the order references the given coffee.
func (o *Order) HasCoffee(coffeeID int64) bool {
	for _, id := range o.CoffeeIDs {
		if id == coffeeID {
			return true
		}
	}
	return false
}

// RemoveCoffee drops the coffee from the order's set, keeping order.
func (o *Order) RemoveCoffee(coffeeID int64) {
	out := o.CoffeeIDs[:0]
	for _, id := range o.CoffeeIDs {
		if id != coffeeID {
			out = append(out, id)
		}
	}
	o.CoffeeIDs = out
}

// HasFavorite reports whether the coffee is in the user's favorites.
func (u *User) HasFavorite(coffeeID int64) bool {
	for _, id := range u.FavoriteCoffeeIDs {
		if id == coffeeID {
			return true
		}
	}
	return false
}

// RemoveFavorite drops the coffee from the user's favorites.
func (u *User) RemoveFavorite(coffeeID int64) {
	out := u.FavoriteCoffeeIDs[:0]
	for _, id := range u.FavoriteCoffeeIDs {
		if id != coffeeID {
			out = append(out, id)
		}
	}
	u.FavoriteCoffeeIDs = out
}
