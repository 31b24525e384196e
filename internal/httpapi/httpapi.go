package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"coffeeshop/internal/application/service"
	"coffeeshop/internal/domain"
	"coffeeshop/internal/observability"
)

type Orders interface {
	FindOrdersByPhoneWithStats(ctx context.Context, phone string) ([]domain.OrderSummary, service.LookupStats, error)
	CreateOrder(ctx context.Context, userID int64, coffeeIDs []int64, notes string) (*domain.OrderSummary, error)
	DeleteOrder(ctx context.Context, id int64) (bool, error)
	OrderByID(ctx context.Context, id int64) (*domain.OrderSummary, error)
	OrdersByUserID(ctx context.Context, userID int64) ([]domain.OrderSummary, error)
}

type Coffees interface {
	AllCoffees(ctx context.Context) ([]domain.Coffee, error)
	CoffeeByID(ctx context.Context, id int64) (*domain.Coffee, error)
	CreateCoffee(ctx context.Context, coffee domain.Coffee) (*domain.Coffee, error)
	UpdateCoffee(ctx context.Context, id int64, upd service.CoffeeUpdate) (*domain.Coffee, error)
	DeleteCoffee(ctx context.Context, id int64) (bool, error)
	CoffeeWithOrders(ctx context.Context, id int64) (*domain.CoffeeWithOrders, error)
}

type Users interface {
	AllUsers(ctx context.Context) ([]domain.User, error)
	UserByID(ctx context.Context, id int64) (*domain.User, error)
	CreateUser(ctx context.Context, phone, name, password string) (*domain.User, error)
	UpdateUser(ctx context.Context, id int64, upd service.UserUpdate) (*domain.User, error)
	DeleteUser(ctx context.Context, id int64) (bool, error)
	FavoriteCoffeeIDs(ctx context.Context, userID int64) ([]int64, error)
	AddFavorite(ctx context.Context, userID, coffeeID int64) error
	RemoveFavorite(ctx context.Context, userID, coffeeID int64) error
	UserWithRelations(ctx context.Context, id int64) (*domain.UserWithRelations, error)
}

type Server struct {
	orders  Orders
	coffees Coffees
	users   Users

	router   chi.Router
	logger   *zap.Logger
	metrics  observability.Metrics
	validate *validator.Validate
}

func New(orders Orders, coffees Coffees, users Users, logger *zap.Logger, metrics observability.Metrics) *Server {
	s := &Server{
		orders:   orders,
		coffees:  coffees,
		users:    users,
		router:   chi.NewRouter(),
		logger:   logger,
		metrics:  metrics,
		validate: validator.New(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		ServerTimingApp(s.metrics),
	)

	s.router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	s.router.Route("/coffees", func(r chi.Router) {
		r.Get("/", s.listCoffees)
		r.Post("/", s.createCoffee)
		r.Post("/bulk", s.createCoffeesBulk)
		r.Get("/{id}", s.getCoffee)
		r.Patch("/{id}", s.updateCoffee)
		r.Delete("/{id}", s.deleteCoffee)
		r.Get("/{id}/orders", s.getCoffeeWithOrders)
	})

	s.router.Route("/orders", func(r chi.Router) {
		r.Post("/", s.createOrder)
		r.Get("/filter", s.filterOrders)
		r.Get("/{id}", s.getOrder)
		r.Delete("/{id}", s.deleteOrder)
		r.Get("/user/{userId}", s.getOrdersByUser)
	})

	s.router.Route("/users", func(r chi.Router) {
		r.Get("/", s.listUsers)
		r.Post("/", s.createUser)
		r.Get("/{id}", s.getUser)
		r.Patch("/{id}", s.updateUser)
		r.Delete("/{id}", s.deleteUser)
		r.Get("/{id}/relations", s.getUserWithRelations)
		r.Get("/{id}/favorites", s.listFavorites)
		r.Post("/{id}/favorites/{coffeeId}", s.addFavorite)
		r.Delete("/{id}/favorites/{coffeeId}", s.removeFavorite)
	})
}

func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: s.router,
	}

	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()
	return srv.ListenAndServe()
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrInvalidArgument):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		s.logger.Error("request failed", zap.Error(err))
		http.Error(w, "server error", http.StatusInternalServerError)
	}
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return false
	}
	if err := s.validate.Struct(v); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id < 1 {
		http.Error(w, name+" must be a positive integer", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
