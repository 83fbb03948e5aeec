package domain

import "time"

// ShippingOption is one entry of the fixed shipping catalog.
type ShippingOption struct {
	Name    string  `json:"name"`
	Cost    float64 `json:"cost"`
	Days    int     `json:"days"` // transit time
	Carrier string  `json:"carrier"`
}

// ShippingEstimate reports which catalog options are available for an order.
// Without a target date it carries the full catalog; with one, only the
// options whose transit time fits the remaining days, plus the cheapest of
// those.
type ShippingEstimate struct {
	Options       []ShippingOption `json:"available_options"`
	MeetsDeadline bool             `json:"meets_deadline"`
	Cheapest      *ShippingOption  `json:"cheapest_option,omitempty"`
}

// ShippingRequest represents a shipping estimate request.
type ShippingRequest struct {
	Product    Product    `json:"product" binding:"required"`
	ZipCode    string     `json:"zip_code" binding:"required"`
	TargetDate *time.Time `json:"target_date,omitempty"`
}
