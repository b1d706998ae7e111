package handlers

import (
	"net/http"

	"bugstore/internal/service"
)

type Handler struct {
	CustomerHandler *CustomerHandler
	ProductHandler  *ProductHandler
	OrderHandler    *OrderHandler
	HealthHandler   *HealthHandler
}

func New(s *service.Service, checks ...HealthCheck) *Handler {
	return &Handler{
		CustomerHandler: NewCustomerHandler(s.CustomerService),
		ProductHandler:  NewProductHandler(s.ProductService),
		OrderHandler:    NewOrderHandler(s.OrderService),
		HealthHandler:   NewHealthHandler(checks...),
	}
}

// Routes wires every endpoint onto a fresh mux.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", h.HealthHandler.Healthz)

	mux.HandleFunc("POST /customers", h.CustomerHandler.Create)
	mux.HandleFunc("GET /customers", h.CustomerHandler.List)
	mux.HandleFunc("GET /customers/{id}", h.CustomerHandler.Get)
	mux.HandleFunc("PUT /customers/{id}", h.CustomerHandler.Update)
	mux.HandleFunc("DELETE /customers/{id}", h.CustomerHandler.Delete)

	mux.HandleFunc("POST /products", h.ProductHandler.Create)
	mux.HandleFunc("GET /products", h.ProductHandler.List)
	mux.HandleFunc("GET /products/{id}", h.ProductHandler.Get)
	mux.HandleFunc("GET /products/slug/{slug}", h.ProductHandler.GetBySlug)
	mux.HandleFunc("PUT /products/{id}", h.ProductHandler.Update)
	mux.HandleFunc("DELETE /products/{id}", h.ProductHandler.Delete)

	mux.HandleFunc("POST /orders", h.OrderHandler.Create)
	mux.HandleFunc("GET /orders/{id}", h.OrderHandler.Get)

	return mux
}
