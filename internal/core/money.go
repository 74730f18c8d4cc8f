// Package core holds the domain model shared by the store, services and
// HTTP layers.
//
// Amounts travel as float64 to keep the JSON contract, but every sum is
// accumulated in decimal so that repeated additions of cents do not drift.
package core

import "github.com/shopspring/decimal"

// Accumulator is an exact running total.
type Accumulator struct {
	total decimal.Decimal
}

func (a *Accumulator) Add(amount float64) {
	a.total = a.total.Add(decimal.NewFromFloat(amount))
}

func (a *Accumulator) Float() float64 {
	return a.total.InexactFloat64()
}

// Sub returns x - y computed exactly.
func Sub(x, y float64) float64 {
	return decimal.NewFromFloat(x).Sub(decimal.NewFromFloat(y)).InexactFloat64()
}
