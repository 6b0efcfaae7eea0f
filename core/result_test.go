package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult(t *testing.T) {
	t.Run("ok carries value", func(t *testing.T) {
		r := OK(42)

		assert.True(t, r.Ok())
		assert.Equal(t, KindOK, r.Kind)
		v, err := r.Unwrap()
		assert.NoError(t, err)
		assert.Equal(t, 42, v)
	})

	t.Run("network error carries error and zero value", func(t *testing.T) {
		boom := errors.New("dial tcp: connection refused")
		r := NetworkError[string](boom)

		assert.False(t, r.Ok())
		assert.Equal(t, KindNetwork, r.Kind)
		v, err := r.Unwrap()
		assert.Same(t, boom, err)
		assert.Empty(t, v)
	})

	t.Run("parse error", func(t *testing.T) {
		r := ParseError[[]byte](errors.New("invalid character"))

		assert.False(t, r.Ok())
		assert.Equal(t, KindParse, r.Kind)
		assert.Nil(t, r.Value)
	})
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "ok", KindOK.String())
	assert.Equal(t, "network", KindNetwork.String())
	assert.Equal(t, "parse", KindParse.String())
	assert.Equal(t, "unknown", Kind(99).String())
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "mocked", ModeMocked.String())
	assert.Equal(t, "live", ModeLive.String())
	assert.Equal(t, "unknown", Mode(7).String())
}
