package mock

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/poiesic/marquee/core"
	"github.com/poiesic/marquee/emoji"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizerIgnoresInput(t *testing.T) {
	s := NewSummarizer()
	ctx := context.Background()

	movies := []core.Movie{
		{Title: "X", Description: "Y"},
		{},
		{Title: "Spirited Away", Description: "A girl wanders into a world of spirits."},
		{Title: "🦈", Description: "\x00\xff"},
	}
	for _, m := range movies {
		got, err := s.MovieToEmojis(ctx, m)
		require.NoError(t, err)
		assert.Equal(t, "⛄🏰👸🏔️🥶", got)
	}
	assert.Equal(t, len(movies), s.CallCount())
}

func TestSummarizerCustomFunc(t *testing.T) {
	boom := errors.New("boom")
	s := NewSummarizer()
	s.MovieToEmojisFunc = func(ctx context.Context, movie core.Movie) (string, error) {
		return "", boom
	}

	_, err := s.MovieToEmojis(context.Background(), core.Movie{})
	assert.ErrorIs(t, err, boom)

	s.Reset()
	assert.Equal(t, 0, s.CallCount())
	got, err := s.MovieToEmojis(context.Background(), core.Movie{})
	require.NoError(t, err)
	assert.Equal(t, emoji.MockEmojis, got)
}

func TestSummarizerConcurrentUse(t *testing.T) {
	s := NewSummarizer()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.MovieToEmojis(context.Background(), core.Movie{Title: "X"})
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, s.CallCount())
}
