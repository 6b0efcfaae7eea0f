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

import "errors"

// Configuration errors
var (
	// ErrMissingCompletionToken indicates live mode was selected without a completion API key.
	ErrMissingCompletionToken = errors.New("OPENAI_TOKEN not set")

	// ErrMissingGeolocationKey indicates live mode was selected without a geolocation API key.
	ErrMissingGeolocationKey = errors.New("GEOLOCATION_APIKEY not set")

	// ErrInvalidMode indicates a Mode value outside the known set.
	ErrInvalidMode = errors.New("invalid mode")
)

// Call errors
var (
	// ErrNoCompletion indicates the completion upstream answered with no choices.
	ErrNoCompletion = errors.New("completion response has no choices")
)
