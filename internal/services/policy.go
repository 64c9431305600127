package services

import (
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"clinicart/internal/rules"
)

// Policy is the time-dependent business configuration: the offer calendar,
// the default discount and the same-day cutoffs.
type Policy struct {
	Offers          []rules.OfferWindow
	DefaultDiscount decimal.Decimal
	Cutoffs         rules.Cutoffs
	Location        *time.Location
}

func DefaultPolicy() *Policy {
	return &Policy{
		Offers:          rules.DefaultOffers(),
		DefaultDiscount: rules.DefaultDiscount,
		Cutoffs:         rules.DefaultCutoffs(),
		Location:        time.Local,
	}
}

// PolicyStore holds the current Policy. A config reload swaps it atomically;
// requests in flight keep the one they loaded.
type PolicyStore struct {
	p atomic.Pointer[Policy]
}

func NewPolicyStore(p *Policy) *PolicyStore {
	s := &PolicyStore{}
	s.Set(p)
	return s
}

func (s *PolicyStore) Load() *Policy { return s.p.Load() }

func (s *PolicyStore) Set(p *Policy) {
	if p == nil {
		p = DefaultPolicy()
	}
	if p.Location == nil {
		p.Location = time.Local
	}
	s.p.Store(p)
}
