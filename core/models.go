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


package core

// Mode selects between the fixed mock implementations and the live upstreams.
// It is resolved once at startup and carried by configuration from then on.
type Mode int

const (
	// ModeMocked answers emoji and geolocation calls from fixed local data.
	ModeMocked Mode = iota
	// ModeLive sends emoji and geolocation calls to the real upstreams.
	ModeLive
)

// String returns the lowercase name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeMocked:
		return "mocked"
	case ModeLive:
		return "live"
	default:
		return "unknown"
	}
}

// Movie is the input to emoji summarization.
type Movie struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// IPLookup is the coarse location record returned for an IP address.
// Every field is a string, including the coordinates, matching the upstream.
type IPLookup struct {
	IP           string `json:"ip"`
	CountryCode2 string `json:"country_code2"`
	CountryCode3 string `json:"country_code3"`
	CountryName  string `json:"country_name"`
	StateProv    string `json:"state_prov"`
	District     string `json:"district"`
	City         string `json:"city"`
	Zipcode      string `json:"zipcode"`
	Latitude     string `json:"latitude"`
	Longitude    string `json:"longitude"`
}
