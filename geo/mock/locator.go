package mock

import (
	"context"
	"sync/atomic"

	"github.com/poiesic/marquee/core"
	"github.com/poiesic/marquee/geo"
)

// Lookup returns the fixed mock record for ip. Only the IP field varies.
func Lookup(ip string) core.IPLookup {
	return core.IPLookup{
		IP:           ip,
		CountryCode2: "PE",
		CountryCode3: "PER",
		CountryName:  "Peru",
		StateProv:    "Lima",
		District:     "",
		City:         "Lima",
		Zipcode:      "15048",
		Latitude:     "-12.10925",
		Longitude:    "-77.01641",
	}
}

// Locator is the mock geo.Locator. It never fails.
type Locator struct {
	// LookupLocationFunc is called by LookupLocation if set.
	// If nil, the fixed record is returned.
	LookupLocationFunc func(ctx context.Context, ip string) (core.IPLookup, error)

	callCount atomic.Int64
}

// NewLocator creates a mock locator with the fixed record.
// Note: Returns concrete type to allow test assertions.
func NewLocator() *Locator {
	return &Locator{}
}

// LookupLocation returns Lookup(ip).
func (l *Locator) LookupLocation(ctx context.Context, ip string) (core.IPLookup, error) {
	l.callCount.Add(1)

	if l.LookupLocationFunc != nil {
		return l.LookupLocationFunc(ctx, ip)
	}
	return Lookup(ip), nil
}

// CallCount returns the number of times LookupLocation was called.
func (l *Locator) CallCount() int {
	return int(l.callCount.Load())
}

// Reset clears the call count and custom function.
func (l *Locator) Reset() {
	l.callCount.Store(0)
	l.LookupLocationFunc = nil
}

var _ geo.Locator = (*Locator)(nil)
