package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"bugstore/internal/domain"
	"bugstore/internal/service"

	"github.com/google/uuid"
)

type CustomerHandler struct {
	service service.CustomerServiceInterface
}

func NewCustomerHandler(s service.CustomerServiceInterface) *CustomerHandler {
	return &CustomerHandler{service: s}
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in service.CreateCustomerInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	customer, err := h.service.Create(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, customer)
}

func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		badRequest(w, "invalid customer id")
		return
	}

	customer, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

type pagedCustomers struct {
	Items   []domain.Customer `json:"items"`
	Total   int               `json:"total"`
	Page    int               `json:"page"`
	PerPage int               `json:"per_page"`
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	page, perPage, err := pagination(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	customers, total, err := h.service.List(r.Context(), page, perPage)
	if err != nil {
		writeError(w, err)
		return
	}
	if customers == nil {
		customers = []domain.Customer{}
	}
	writeJSON(w, http.StatusOK, pagedCustomers{Items: customers, Total: total, Page: page, PerPage: perPage})
}

func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		badRequest(w, "invalid customer id")
		return
	}

	var patch domain.CustomerPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	customer, err := h.service.Update(r.Context(), id, patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		badRequest(w, "invalid customer id")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// pagination reads page/per_page from the query string. Absent params
// fall back to defaults; a present but unparsable value is rejected so
// a typo does not silently reset the caller to page 1.
func pagination(r *http.Request) (page, perPage int, err error) {
	page, err = queryInt(r, "page", 1)
	if err != nil {
		return 0, 0, err
	}
	perPage, err = queryInt(r, "per_page", 25)
	if err != nil {
		return 0, 0, err
	}
	return page, perPage, nil
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return n, nil
}
