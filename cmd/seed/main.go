// Seed fills a running instance with fake users, coffees and orders
// through the public HTTP API.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

type coffeePayload struct {
	Name  string  `json:"name"`
	Type  string  `json:"type"`
	Price float64 `json:"price"`
}

type userPayload struct {
	PhoneNumber string `json:"phone_number"`
	Name        string `json:"name"`
	Password    string `json:"password"`
}

type orderPayload struct {
	UserID    int64   `json:"user_id"`
	CoffeeIDs []int64 `json:"coffee_ids"`
	Notes     string  `json:"notes"`
}

type created struct {
	ID int64 `json:"id"`
}

func main() {
	addr := flag.String("addr", "http://localhost:8081", "base URL of the running service")
	nUsers := flag.Int("users", 20, "number of users to create")
	nCoffees := flag.Int("coffees", 15, "number of coffees to create")
	nOrders := flag.Int("orders", 50, "number of orders to create")
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	coffeeTypes := []string{"black", "milk", "filter", "cold brew"}
	coffees := make([]coffeePayload, 0, *nCoffees)
	for i := 0; i < *nCoffees; i++ {
		coffees = append(coffees, coffeePayload{
			Name:  fmt.Sprintf("%s %s #%d", gofakeit.AdjectiveDescriptive(), gofakeit.BeerName(), i),
			Type:  coffeeTypes[r.Intn(len(coffeeTypes))],
			Price: gofakeit.Price(2, 9),
		})
	}
	var coffeeIDs []int64
	var createdCoffees []created
	post(client, *addr+"/coffees/bulk", coffees, &createdCoffees)
	for _, c := range createdCoffees {
		coffeeIDs = append(coffeeIDs, c.ID)
	}
	log.Printf("created %d coffees", len(coffeeIDs))

	var userIDs []int64
	for i := 0; i < *nUsers; i++ {
		var u created
		post(client, *addr+"/users", userPayload{
			PhoneNumber: gofakeit.Phone(),
			Name:        gofakeit.Name(),
			Password:    gofakeit.Password(true, true, true, false, false, 12),
		}, &u)
		userIDs = append(userIDs, u.ID)
	}
	log.Printf("created %d users", len(userIDs))

	for i := 0; i < *nOrders; i++ {
		n := 1 + r.Intn(3)
		ids := make([]int64, 0, n)
		for j := 0; j < n; j++ {
			ids = append(ids, coffeeIDs[r.Intn(len(coffeeIDs))])
		}
		var o created
		post(client, *addr+"/orders", orderPayload{
			UserID:    userIDs[r.Intn(len(userIDs))],
			CoffeeIDs: ids,
			Notes:     gofakeit.Sentence(4),
		}, &o)
	}
	log.Printf("created %d orders", *nOrders)
}

func post(client *http.Client, url string, in, out any) {
	body, err := json.Marshal(in)
	if err != nil {
		log.Fatalf("marshal: %v", err)
	}

	resp, err := client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("POST %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		log.Fatalf("POST %s: unexpected status %d", url, resp.StatusCode)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			log.Fatalf("decode %s: %v", url, err)
		}
	}
}
