package textkind_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/textkind"
	"github.com/dmitrymomot/textkind/check"
)

func TestErrorDisplay(t *testing.T) {
	t.Run("always the generic kind phrase", func(t *testing.T) {
		_, err := textkind.New[textkind.TitleKind]("")
		require.Error(t, err)
		assert.Equal(t, "invalid title", err.Error())

		_, err = textkind.New[textkind.IdentifierKind]("0foo")
		require.Error(t, err)
		assert.Equal(t, "invalid identifier", err.Error())
	})

	t.Run("structured cause stays reachable", func(t *testing.T) {
		_, err := textkind.New[textkind.TitleKind]("")
		assert.True(t, errors.Is(err, check.ErrEmpty))

		var plain *textkind.Error[textkind.TitleKind]
		require.ErrorAs(t, err, &plain)
		assert.ErrorIs(t, plain.Cause(), check.ErrEmpty)
	})
}

func TestErrorValueConversions(t *testing.T) {
	newWithValue := func(t *testing.T) *textkind.ErrorWithValue[textkind.TitleKind, string] {
		t.Helper()
		_, err := textkind.TryFromString[textkind.TitleKind]("  Foo  ", textkind.Exclusive)
		require.Error(t, err)

		var withValue *textkind.ErrorWithValue[textkind.TitleKind, string]
		require.ErrorAs(t, err, &withValue)
		return withValue
	}

	t.Run("value recovers the rejected input unchanged", func(t *testing.T) {
		assert.Equal(t, "  Foo  ", newWithValue(t).Value())
	})

	t.Run("without value keeps the cause", func(t *testing.T) {
		plain := newWithValue(t).WithoutValue()
		assert.Equal(t, "invalid title", plain.Error())

		var trimmedErr *check.TrimmedError
		require.ErrorAs(t, plain.Cause(), &trimmedErr)
		assert.Equal(t, check.SideBoth, trimmedErr.Side)
	})

	t.Run("split separates error and value", func(t *testing.T) {
		plain, value := newWithValue(t).Split()
		assert.Equal(t, "invalid title", plain.Error())
		assert.Equal(t, "  Foo  ", value)
	})

	t.Run("attach is the inverse of without value", func(t *testing.T) {
		withValue := newWithValue(t)
		reattached := textkind.AttachValue(withValue.WithoutValue(), withValue.Value())
		assert.Equal(t, withValue.Value(), reattached.Value())
		assert.Equal(t, withValue.Cause(), reattached.Cause())
	})

	t.Run("map transforms the carried value only", func(t *testing.T) {
		mapped := textkind.MapValue(newWithValue(t), func(v string) int { return len(v) })
		assert.Equal(t, 7, mapped.Value())

		var trimmedErr *check.TrimmedError
		assert.ErrorAs(t, mapped.Cause(), &trimmedErr)
	})
}
