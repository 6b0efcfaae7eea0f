// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package geo resolves IP addresses to coarse locations.
//
// Two implementations exist: geo/ipgeolocation talks to ipgeolocation.io,
// and geo/mock answers a fixed Lima, Peru record for any address.
package geo

import (
	"context"

	"github.com/poiesic/marquee/core"
)

// Locator looks up the location of an IP address.
// Implementations must be safe for concurrent use.
type Locator interface {
	// LookupLocation returns location metadata for ip. The address is passed
	// through as given; no parsing or validation happens locally.
	LookupLocation(ctx context.Context, ip string) (core.IPLookup, error)
}
