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


package ticketing

const (
	apiHost = "https://api.cinemark-peru.com/api/vista"
	cdnHost = "https://cinemarkmedia.modyocdn.com/pe/300x400"
)

// TheatresURL lists every theatre of the chain.
const TheatresURL = apiHost + "/data/theatres"

// ConcessionsURL returns the concession items endpoint for a cinema.
// The id is interpolated as given; callers own its validity.
func ConcessionsURL(cinemaID string) string {
	return apiHost + "/ticketing/concession/items?cinema_id=" + cinemaID
}

// BillboardURL returns the billboard endpoint for a cinema.
// The id is interpolated as given; callers own its validity.
func BillboardURL(cinemaID string) string {
	return apiHost + "/data/billboard?cinema_id=" + cinemaID
}

// ThumbnailURL returns the 300x400 poster image for a corporate film id.
func ThumbnailURL(corporateFilmID string) string {
	return cdnHost + "/" + corporateFilmID + ".jpg"
}
