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


// Package mock provides the fixed emoji summarizer used outside production.
package mock

import (
	"context"
	"sync/atomic"

	"github.com/poiesic/marquee/core"
	"github.com/poiesic/marquee/emoji"
)

// Summarizer is the mock emoji.Summarizer. By default it answers
// emoji.MockEmojis for every movie and never fails.
type Summarizer struct {
	// MovieToEmojisFunc is called by MovieToEmojis if set.
	// If nil, the fixed answer is returned.
	MovieToEmojisFunc func(ctx context.Context, movie core.Movie) (string, error)

	callCount atomic.Int64
}

// NewSummarizer creates a mock summarizer with the fixed answer.
// Note: Returns concrete type to allow test assertions.
func NewSummarizer() *Summarizer {
	return &Summarizer{}
}

// MovieToEmojis ignores the movie and returns emoji.MockEmojis.
func (s *Summarizer) MovieToEmojis(ctx context.Context, movie core.Movie) (string, error) {
	s.callCount.Add(1)

	if s.MovieToEmojisFunc != nil {
		return s.MovieToEmojisFunc(ctx, movie)
	}
	return emoji.MockEmojis, nil
}

// CallCount returns the number of times MovieToEmojis was called.
func (s *Summarizer) CallCount() int {
	return int(s.callCount.Load())
}

// Reset clears the call count and custom function.
func (s *Summarizer) Reset() {
	s.callCount.Store(0)
	s.MovieToEmojisFunc = nil
}

var _ emoji.Summarizer = (*Summarizer)(nil)
