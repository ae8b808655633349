package paniclog

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecover(t *testing.T) {
	t.Parallel()

	t.Run("string panic", func(t *testing.T) {
		t.Parallel()

		var (
			err  error
			buff bytes.Buffer
		)
		defer func() {
			assert.Error(t, err)
			assert.Equal(t, "great sadness", err.Error())
			assert.Contains(t, buff.String(), "panic: great sadness\n")
		}()

		defer Recover(&err, &buff)

		panic("great sadness")
	})

	t.Run("error panic", func(t *testing.T) {
		t.Parallel()

		give := errors.New("great sadness")

		var (
			err  error
			buff bytes.Buffer
		)
		defer func() {
			assert.ErrorIs(t, err, give)
			assert.Contains(t, buff.String(), "panic: great sadness\n")
		}()

		defer Recover(&err, &buff)

		panic(give)
	})

	t.Run("other panic", func(t *testing.T) {
		t.Parallel()

		var (
			err  error
			buff bytes.Buffer
		)
		defer func() {
			assert.Error(t, err)
			assert.Equal(t, "panic: 42", err.Error())
			assert.Contains(t, buff.String(), "panic: 42")
		}()

		defer Recover(&err, &buff)

		panic(42)
	})

	t.Run("no panic", func(t *testing.T) {
		t.Parallel()

		var (
			err  error
			buff bytes.Buffer
		)
		defer func() {
			require.NoError(t, err)
			assert.Empty(t, buff.String())
		}()

		defer Recover(&err, &buff)
	})

	t.Run("no panic keeps error", func(t *testing.T) {
		t.Parallel()

		err := errors.New("great sadness")
		var buff bytes.Buffer

		defer func() {
			require.Error(t, err)
			assert.Contains(t, err.Error(), "great sadness")
			assert.Empty(t, buff.String())
		}()

		defer Recover(&err, &buff)
	})
}
