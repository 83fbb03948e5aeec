package domain

// PromoResult is the outcome of validating a promo code against a base
// price. An unknown code is a normal outcome, not an error: Valid is false,
// Message explains why, and no price fields are populated.
type PromoResult struct {
	Valid              bool    `json:"valid"`
	DiscountPercentage float64 `json:"discount_percentage,omitempty"`
	OriginalPrice      float64 `json:"original_price,omitempty"`
	FinalPrice         float64 `json:"final_price,omitempty"`
	Savings            float64 `json:"savings,omitempty"`
	Message            string  `json:"message,omitempty"`
}

// PromoRequest represents a promo code validation request.
type PromoRequest struct {
	Code      string  `json:"code" binding:"required"`
	BasePrice float64 `json:"base_price" binding:"min=0"`
}
