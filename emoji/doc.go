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


// Package emoji summarizes a movie as five emoji.
//
// The package defines the Summarizer interface plus the pieces both
// implementations share: the few-shot prompt and grapheme-aware truncation.
//
// # Implementation Packages
//
//   - emoji/openai: live implementation over an OpenAI-compatible completion API
//   - emoji/mock: fixed answer for development and tests
//
// Which one a process uses is decided by config.Config.Mode; see the root
// marquee package.
//
// # Length
//
// A result is counted in grapheme clusters, not bytes or runes. "🏔️" is two
// runes (U+1F3D4 U+FE0F) but one symbol. Live completions are trimmed and cut
// to the first five clusters. Shorter completions are returned as they are.
//
// # Usage Example
//
//	summarizer, err := openai.NewSummarizer(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	emojis, err := summarizer.MovieToEmojis(ctx, core.Movie{
//	    Title:       "Jurassic Park",
//	    Description: "Dinosaurs are brought back to life on an island.",
//	})
package emoji
