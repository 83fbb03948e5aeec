package usecase

import (
	"strings"

	"github.com/shopscout/backend/internal/domain"
	"go.uber.org/zap"
)

// ReturnsService answers return-policy lookups for known stores.
type ReturnsService struct {
	policies map[string]domain.ReturnPolicy
	logger   *zap.Logger
}

// NewReturnsService creates a returns service over the given policy table. A
// nil table falls back to the default policies.
func NewReturnsService(policies map[string]domain.ReturnPolicy, logger *zap.Logger) *ReturnsService {
	if policies == nil {
		policies = DefaultReturnPolicies()
	}
	return &ReturnsService{
		policies: policies,
		logger:   logger,
	}
}

// DefaultReturnPolicies returns the built-in policy table keyed by store
// domain.
func DefaultReturnPolicies() map[string]domain.ReturnPolicy {
	boolPtr := func(v bool) *bool { return &v }

	return map[string]domain.ReturnPolicy{
		"amazon.com": {
			Window:      "30 days",
			FreeReturns: boolPtr(true),
			Conditions:  "Items must be unused and in original packaging",
			Process:     "Initiate through your account or contact customer service",
		},
		"walmart.com": {
			Window:      "90 days",
			FreeReturns: boolPtr(true),
			Conditions:  "Receipt required, items must be unused",
			Process:     "Return to store or ship back with provided label",
		},
	}
}

// ReturnPolicy looks up the policy for a store. Unknown stores get a
// structured fallback record instead of an error.
func (s *ReturnsService) ReturnPolicy(website string) domain.ReturnPolicy {
	key := strings.ToLower(strings.TrimSpace(website))

	if policy, ok := s.policies[key]; ok {
		return policy
	}

	s.logger.Debug("no return policy on record", zap.String("website", website))
	return domain.ReturnPolicy{
		Window:      "Policy not found",
		FreeReturns: nil,
		Conditions:  "Please check store website",
		Process:     "Contact store customer service",
	}
}
