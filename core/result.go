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

// Kind classifies the outcome of a single upstream call.
type Kind int

const (
	// KindOK means the call completed and the body was decoded.
	KindOK Kind = iota
	// KindNetwork means the request could not be sent or the body could not be read.
	KindNetwork
	// KindParse means a body arrived but could not be decoded.
	KindParse
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindNetwork:
		return "network"
	case KindParse:
		return "parse"
	default:
		return "unknown"
	}
}

// Result is the tagged outcome every client produces internally. Each client
// then collapses it into its own external contract: the ticketing client maps
// any failure to nil, the emoji client logs and returns the error, and the
// geolocation client returns the error untouched.
type Result[T any] struct {
	Value T
	Kind  Kind
	Err   error
}

// OK wraps a successful value.
func OK[T any](v T) Result[T] {
	return Result[T]{Value: v, Kind: KindOK}
}

// NetworkError wraps a transport failure.
func NetworkError[T any](err error) Result[T] {
	return Result[T]{Kind: KindNetwork, Err: err}
}

// ParseError wraps a decoding failure.
func ParseError[T any](err error) Result[T] {
	return Result[T]{Kind: KindParse, Err: err}
}

// Ok reports whether the call succeeded.
func (r Result[T]) Ok() bool {
	return r.Kind == KindOK && r.Err == nil
}

// Unwrap returns the value and error in Go's usual two-value form.
func (r Result[T]) Unwrap() (T, error) {
	return r.Value, r.Err
}
