package pricing

import (
	"errors"
	"sort"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be between 1 and the configured maximum")
	ErrInvalidPolicy   = errors.New("invalid pricing policy")
)

type Quote struct {
	Quantity     int
	Price        int
	DurationDays int
}

type Tier struct {
	Quantity     int
	Price        int
	DurationDays int
}

// Policy maps a house count to a price and a validity window.
type Policy struct {
	table           map[int]int
	perUnitRate     int
	minDurationDays int
	maxQuantity     int
}

func NewPolicy(table map[int]int, perUnitRate, minDurationDays, maxQuantity int) (*Policy, error) {
	if perUnitRate <= 0 || minDurationDays < 1 || maxQuantity < 1 {
		return nil, ErrInvalidPolicy
	}
	copied := make(map[int]int, len(table))
	for n, price := range table {
		if n < 1 || price < 0 {
			return nil, ErrInvalidPolicy
		}
		copied[n] = price
	}
	return &Policy{
		table:           copied,
		perUnitRate:     perUnitRate,
		minDurationDays: minDurationDays,
		maxQuantity:     maxQuantity,
	}, nil
}

func (p *Policy) PerUnitRate() int     { return p.perUnitRate }
func (p *Policy) MaxQuantity() int     { return p.maxQuantity }
func (p *Policy) MinDurationDays() int { return p.minDurationDays }

// Price uses the breakpoint table when n is listed, else the flat per-unit rate.
func (p *Policy) Price(n int) int {
	if price, ok := p.table[n]; ok {
		return price
	}
	return n * p.perUnitRate
}

// DurationDays is floor(n/5*4)-1, clamped up to the configured minimum.
func (p *Policy) DurationDays(n int) int {
	return max(RawDurationDays(n), p.minDurationDays)
}

// RawDurationDays is the unclamped formula. It is 0 or negative for n < 3.
func RawDurationDays(n int) int {
	return (n*4)/5 - 1
}

func (p *Policy) Quote(n int) (Quote, error) {
	if n < 1 || n > p.maxQuantity {
		return Quote{}, ErrInvalidQuantity
	}
	return Quote{
		Quantity:     n,
		Price:        p.Price(n),
		DurationDays: p.DurationDays(n),
	}, nil
}

// Tiers lists the breakpoint table ordered by quantity.
func (p *Policy) Tiers() []Tier {
	tiers := make([]Tier, 0, len(p.table))
	for n, price := range p.table {
		tiers = append(tiers, Tier{Quantity: n, Price: price, DurationDays: p.DurationDays(n)})
	}
	sort.Slice(tiers, func(i, j int) bool { return tiers[i].Quantity < tiers[j].Quantity })
	return tiers
}
