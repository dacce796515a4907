package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clientdesk/crm-api/internal/core/domain"
	"github.com/clientdesk/crm-api/internal/core/ports"
)

type CustomerHandler struct {
	customerService ports.CustomerService
}

func NewCustomerHandler(customerService ports.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

type createCustomerRequest struct {
	Name    string  `json:"name" validate:"required,max=100"`
	Email   string  `json:"email" validate:"required,email,max=100"`
	Phone   string  `json:"phone" validate:"required,max=20"`
	Company *string `json:"company" validate:"omitempty,max=100"`
	Address *string `json:"address" validate:"omitempty,max=200"`
}

type updateCustomerRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=100"`
	Email   *string `json:"email" validate:"omitempty,email,max=100"`
	Phone   *string `json:"phone" validate:"omitempty,min=1,max=20"`
	Company *string `json:"company" validate:"omitempty,max=100"`
	Address *string `json:"address" validate:"omitempty,max=200"`
}

type customerListResponse struct {
	Data       []domain.Customer `json:"data"`
	Pagination ports.PageMeta    `json:"pagination"`
}

// List returns a page of customers, newest first.
//
// @Summary      List customers
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number (1-based)"
// @Param        limit  query     int  false  "Page size (1-100)"
// @Success      200    {object}  customerListResponse
// @Router       /customers [get]
func (h *CustomerHandler) List(c echo.Context) error {
	page, err := h.customerService.List(c.Request().Context(), pageRequest(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customerListResponse{Data: page.Customers, Pagination: page.Meta})
}

// Get returns a single customer by id.
//
// @Summary      Get customer
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Customer id"
// @Success      200  {object}  domain.Customer
// @Failure      404  {object}  map[string]string
// @Router       /customers/{id} [get]
func (h *CustomerHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	customer, err := h.customerService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customer)
}

// Create adds a new customer record.
//
// @Summary      Create customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCustomerRequest  true  "Customer details"
// @Success      201   {object}  domain.Customer
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /customers [post]
func (h *CustomerHandler) Create(c echo.Context) error {
	var req createCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	customer, err := h.customerService.Create(c.Request().Context(), ports.CreateCustomerInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: normalizeOptional(req.Company),
		Address: normalizeOptional(req.Address),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, customer)
}

// Update applies a partial update to a customer. An explicit empty string
// for company or address clears the column to NULL.
//
// @Summary      Update customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                    true  "Customer id"
// @Param        body  body      updateCustomerRequest  true  "Fields to change"
// @Success      200   {object}  domain.Customer
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /customers/{id} [put]
func (h *CustomerHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	patch := ports.CustomerPatch{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}
	if req.Company != nil {
		company := normalizeOptional(req.Company)
		patch.Company = &company
	}
	if req.Address != nil {
		address := normalizeOptional(req.Address)
		patch.Address = &address
	}

	customer, err := h.customerService.Update(c.Request().Context(), id, patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customer)
}

// Delete removes a customer record.
//
// @Summary      Delete customer
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Customer id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /customers/{id} [delete]
func (h *CustomerHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.customerService.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Customer deleted successfully"})
}

// normalizeOptional folds empty strings into absent values so optional
// columns are stored as NULL, never as "".
func normalizeOptional(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
