package domain

// ReturnPolicy describes a store's return terms. FreeReturns is nil when the
// store is not in the policy table and the answer is unknown.
type ReturnPolicy struct {
	Window      string `json:"window"`
	FreeReturns *bool  `json:"free_returns"`
	Conditions  string `json:"conditions"`
	Process     string `json:"process"`
}
