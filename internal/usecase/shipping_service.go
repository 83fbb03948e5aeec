package usecase

import (
	"math"
	"time"

	"github.com/shopscout/backend/internal/domain"
	"go.uber.org/zap"
)

// ShippingService estimates delivery options and deadline feasibility for a
// product. The carrier catalog is fixed; rates don't currently vary by
// destination, but the ZIP code stays in the call shape so they can.
type ShippingService struct {
	catalog []domain.ShippingOption
	now     func() time.Time
	logger  *zap.Logger
}

// NewShippingService creates a shipping service with the standard carrier
// catalog.
func NewShippingService(logger *zap.Logger) *ShippingService {
	return &ShippingService{
		catalog: defaultShippingCatalog(),
		now:     time.Now,
		logger:  logger,
	}
}

func defaultShippingCatalog() []domain.ShippingOption {
	return []domain.ShippingOption{
		{Name: "standard", Cost: 5.99, Days: 5, Carrier: "USPS"},
		{Name: "expedited", Cost: 12.99, Days: 2, Carrier: "FedEx"},
		{Name: "overnight", Cost: 24.99, Days: 1, Carrier: "UPS"},
	}
}

// EstimateShipping returns the shipping options for the product. Without a
// target date the full catalog is offered. With one, only options whose
// transit time fits the remaining days qualify, and the cheapest qualifying
// option is singled out; a past target date disqualifies everything.
func (s *ShippingService) EstimateShipping(product *domain.Product, zipCode string, targetDate *time.Time) *domain.ShippingEstimate {
	if targetDate == nil {
		return &domain.ShippingEstimate{
			Options:       s.catalogCopy(),
			MeetsDeadline: true,
		}
	}

	// Ceiling, so a target one day out leaves one full day and overnight
	// still qualifies.
	daysRemaining := int(math.Ceil(targetDate.Sub(s.now()).Hours() / 24))

	qualifying := make([]domain.ShippingOption, 0, len(s.catalog))
	var cheapest *domain.ShippingOption
	for _, option := range s.catalog {
		if option.Days > daysRemaining {
			continue
		}
		qualifying = append(qualifying, option)
		if cheapest == nil || option.Cost < cheapest.Cost {
			o := option
			cheapest = &o
		}
	}

	if len(qualifying) == 0 {
		s.logger.Debug("no shipping option meets target date",
			zap.Timep("target_date", targetDate),
			zap.Int("days_remaining", daysRemaining))
	}

	return &domain.ShippingEstimate{
		Options:       qualifying,
		MeetsDeadline: len(qualifying) > 0,
		Cheapest:      cheapest,
	}
}

func (s *ShippingService) catalogCopy() []domain.ShippingOption {
	options := make([]domain.ShippingOption, len(s.catalog))
	copy(options, s.catalog)
	return options
}
