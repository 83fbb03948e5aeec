package usecase

import (
	"strings"

	"github.com/shopscout/backend/internal/domain"
	"go.uber.org/zap"
)

// PromoService validates promotion codes and computes discounted prices.
type PromoService struct {
	codes  map[string]float64
	logger *zap.Logger
}

// NewPromoService creates a promo service over the given code table. A nil
// table falls back to the default codes.
func NewPromoService(codes map[string]float64, logger *zap.Logger) *PromoService {
	if codes == nil {
		codes = DefaultPromoCodes()
	}
	return &PromoService{
		codes:  codes,
		logger: logger,
	}
}

// DefaultPromoCodes returns the built-in promotion table, keyed by code with
// the discount as a fraction.
func DefaultPromoCodes() map[string]float64 {
	return map[string]float64{
		"SAVE10":     0.10,
		"SUMMER20":   0.20,
		"FLASH30":    0.30,
		"FIRSTORDER": 0.15,
	}
}

// CheckPromo validates a code against the table, case-insensitively, and
// prices out the discount. Unknown codes yield a negative result, never an
// error.
func (s *PromoService) CheckPromo(code string, basePrice float64) *domain.PromoResult {
	normalized := strings.ToUpper(code)

	discount, ok := s.codes[normalized]
	if !ok {
		s.logger.Debug("rejected promo code", zap.String("code", normalized))
		return &domain.PromoResult{
			Valid:   false,
			Message: "Invalid promo code",
		}
	}

	finalPrice := basePrice * (1 - discount)
	return &domain.PromoResult{
		Valid:              true,
		DiscountPercentage: discount * 100,
		OriginalPrice:      basePrice,
		FinalPrice:         finalPrice,
		Savings:            basePrice - finalPrice,
	}
}
