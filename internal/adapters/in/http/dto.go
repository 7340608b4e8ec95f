package http

import "time"

// PlaceOrderRequest is the body for placing an order from the current cart.
type PlaceOrderRequest struct {
	RestaurantID    string `json:"restaurant_id"`
	DeliveryAddress string `json:"delivery_address"`
	PaymentMethod   string `json:"payment_method"`
	OfferCode       string `json:"offer_code,omitempty"`
}

// PlaceOrderResponse returns the identifier of a newly created order.
type PlaceOrderResponse struct {
	OrderID string `json:"order_id"`
}

// UpdateStatusRequest is the body for status changes, both the restaurant
// workflow and the driver delivery steps.
type UpdateStatusRequest struct {
	Status string `json:"status"`
	Note   string `json:"note,omitempty"`
}

// RejectOrderRequest carries the restaurant's reason for turning an order down.
type RejectOrderRequest struct {
	Reason string `json:"reason,omitempty"`
}

// AssignDriverRequest names the driver to offer the order to. An empty
// driver_id asks the dispatcher to pick one automatically.
type AssignDriverRequest struct {
	DriverID string `json:"driver_id,omitempty"`
	Note     string `json:"note,omitempty"`
}

// ReplaceOrderRequest carries the support annotation for a replacement order.
type ReplaceOrderRequest struct {
	SupportNote string `json:"support_note"`
}

// AvailabilityRequest toggles the acting driver online or offline.
type AvailabilityRequest struct {
	Online bool `json:"online"`
}

// OrderSummaryResponse is one row of an order listing.
type OrderSummaryResponse struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"`
	DriverID      *string   `json:"driver_id,omitempty"`
	Total         float64   `json:"total"`
	PaymentMethod string    `json:"payment_method"`
	PaymentStatus string    `json:"payment_status"`
	CreatedAt     time.Time `json:"created_at"`
}

// DriverSummaryResponse is one row of the available-driver listing.
type DriverSummaryResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	RegisteredAt time.Time `json:"registered_at"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
