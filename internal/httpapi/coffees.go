package httpapi

import (
	"encoding/json"
	"net/http"

	"coffeeshop/internal/application/service"
	"coffeeshop/internal/domain"
)

type createCoffeeRequest struct {
	Name  string  `json:"name" validate:"required"`
	Type  string  `json:"type"`
	Price float64 `json:"price" validate:"gte=0"`
}

type updateCoffeeRequest struct {
	Name  *string  `json:"name"`
	Type  *string  `json:"type"`
	Price *float64 `json:"price"`
}

func (s *Server) listCoffees(w http.ResponseWriter, r *http.Request) {
	coffees, err := s.coffees.AllCoffees(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, coffees)
}

func (s *Server) getCoffee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	coffee, err := s.coffees.CoffeeByID(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, coffee)
}

func (s *Server) createCoffee(w http.ResponseWriter, r *http.Request) {
	var req createCoffeeRequest
	if !s.decode(w, r, &req) {
		return
	}

	coffee, err := s.coffees.CreateCoffee(r.Context(), domain.Coffee{
		Name:  req.Name,
		Type:  req.Type,
		Price: req.Price,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, coffee)
}

func (s *Server) createCoffeesBulk(w http.ResponseWriter, r *http.Request) {
	var reqs []createCoffeeRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&reqs); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	for i := range reqs {
		if err := s.validate.Struct(&reqs[i]); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	created := make([]domain.Coffee, 0, len(reqs))
	for _, req := range reqs {
		coffee, err := s.coffees.CreateCoffee(r.Context(), domain.Coffee{
			Name:  req.Name,
			Type:  req.Type,
			Price: req.Price,
		})
		if err != nil {
			s.writeError(w, err)
			return
		}
		created = append(created, *coffee)
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) updateCoffee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req updateCoffeeRequest
	if !s.decode(w, r, &req) {
		return
	}

	coffee, err := s.coffees.UpdateCoffee(r.Context(), id, service.CoffeeUpdate{
		Name:  req.Name,
		Type:  req.Type,
		Price: req.Price,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, coffee)
}

func (s *Server) deleteCoffee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	deleted, err := s.coffees.DeleteCoffee(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if !deleted {
		http.NotFound(w, r)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) getCoffeeWithOrders(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	out, err := s.coffees.CoffeeWithOrders(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}
