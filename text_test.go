package textkind_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/textkind"
	"github.com/dmitrymomot/textkind/check"
)

func TestConstructors(t *testing.T) {
	t.Run("static keeps the value as-is", func(t *testing.T) {
		title, err := textkind.TryFromStatic[textkind.TitleKind]("a static title beyond sixteen bytes")
		require.NoError(t, err)
		assert.True(t, title.IntoData().IsStatic())
		assert.Equal(t, "a static title beyond sixteen bytes", title.String())
	})

	t.Run("static failure carries no value", func(t *testing.T) {
		_, err := textkind.TryFromStatic[textkind.TitleKind]("")
		require.Error(t, err)
		assert.EqualError(t, err, "invalid title")

		var plain *textkind.Error[textkind.TitleKind]
		require.ErrorAs(t, err, &plain)
		assert.ErrorIs(t, plain.Cause(), check.ErrEmpty)
	})

	t.Run("must panics on invalid constants", func(t *testing.T) {
		assert.Panics(t, func() {
			textkind.MustFromStatic[textkind.TitleKind]("  bad  ")
		})
		assert.NotPanics(t, func() {
			textkind.MustFromStatic[textkind.TitleKind]("good")
		})
	})

	t.Run("new materializes with exclusive storage", func(t *testing.T) {
		title, err := textkind.New[textkind.TitleKind]("short")
		require.NoError(t, err)
		assert.True(t, title.IntoData().IsInline())

		long, err := textkind.New[textkind.TitleKind](strings.Repeat("x", 20))
		require.NoError(t, err)
		assert.True(t, long.IntoData().IsDynamic())
	})

	t.Run("from string hands the input back on failure", func(t *testing.T) {
		_, err := textkind.TryFromString[textkind.TitleKind]("  Foo  ", textkind.Exclusive)
		require.Error(t, err)

		var withValue *textkind.ErrorWithValue[textkind.TitleKind, string]
		require.ErrorAs(t, err, &withValue)
		assert.Equal(t, "  Foo  ", withValue.Value())

		var trimmedErr *check.TrimmedError
		require.ErrorAs(t, err, &trimmedErr)
		assert.Equal(t, check.SideBoth, trimmedErr.Side)
	})

	t.Run("from dynamic hands the storage back on failure", func(t *testing.T) {
		dyn := textkind.Shared.FromString("not an identifier!")
		_, err := textkind.TryFromDynamic[textkind.IdentifierKind](dyn)
		require.Error(t, err)

		var withValue *textkind.ErrorWithValue[textkind.IdentifierKind, textkind.Dynamic]
		require.ErrorAs(t, err, &withValue)
		assert.Equal(t, "not an identifier!", withValue.Value().String())
	})

	t.Run("from data hands the data back on failure", func(t *testing.T) {
		data := textkind.StaticData("two\nlines")
		_, err := textkind.TryFromData[textkind.TitleKind](data)
		require.Error(t, err)

		var withValue *textkind.ErrorWithValue[textkind.TitleKind, textkind.Data]
		require.ErrorAs(t, err, &withValue)
		assert.Equal(t, "two\nlines", withValue.Value().String())
	})

	t.Run("from data adopts valid data without copying", func(t *testing.T) {
		title, err := textkind.TryFromData[textkind.TitleKind](textkind.StaticData("a perfectly valid title"))
		require.NoError(t, err)
		assert.True(t, title.IntoData().IsStatic())
	})
}

func TestRoundTrip(t *testing.T) {
	for _, value := range []string{"x", "short title", strings.Repeat("long ", 10) + "title"} {
		title, err := textkind.New[textkind.TitleKind](value)
		require.NoError(t, err)

		again, err := textkind.TryFromString[textkind.TitleKind](title.IntoString(), textkind.Exclusive)
		require.NoError(t, err)
		assert.Equal(t, value, again.String())
	}
}

func TestKindTransition(t *testing.T) {
	t.Run("same check type relabels without validation", func(t *testing.T) {
		// IdentifierKind and identKindAlias share one check type.
		source, err := textkind.New[textkind.IdentifierKind]("foo_bar")
		require.NoError(t, err)

		target := textkind.KindTransition[identKindAlias](source)
		assert.Equal(t, "foo_bar", target.String())
	})

	t.Run("different check types panic", func(t *testing.T) {
		source, err := textkind.New[textkind.IdentifierKind]("foo")
		require.NoError(t, err)

		assert.Panics(t, func() {
			textkind.KindTransition[textkind.TitleKind](source)
		})
	})
}

func TestTryKindTransition(t *testing.T) {
	t.Run("identifier to title succeeds and preserves content", func(t *testing.T) {
		ident, err := textkind.New[textkind.IdentifierKind]("foo_bar23")
		require.NoError(t, err)

		title, err := textkind.TryKindTransition[textkind.TitleKind](ident)
		require.NoError(t, err)
		assert.Equal(t, "foo_bar23", title.String())
	})

	t.Run("failure returns the whole original text", func(t *testing.T) {
		title, err := textkind.New[textkind.TitleKind]("not an identifier")
		require.NoError(t, err)

		_, err = textkind.TryKindTransition[textkind.IdentifierKind](title)
		require.Error(t, err)

		var withValue *textkind.ErrorWithValue[textkind.IdentifierKind, textkind.Title]
		require.ErrorAs(t, err, &withValue)

		recovered := withValue.Value()
		assert.Equal(t, "not an identifier", recovered.String())
	})

	t.Run("transition reuses storage", func(t *testing.T) {
		long := "identifier_beyond_sixteen_bytes"
		ident, err := textkind.TryFromString[textkind.IdentifierKind](long, textkind.Shared)
		require.NoError(t, err)

		title, err := textkind.TryKindTransition[textkind.TitleKind](ident)
		require.NoError(t, err)
		assert.True(t, title.IntoData().IsDynamic())

		// Still the only handle: transition did not clone or copy.
		value, ok := title.IntoDynamic(textkind.Shared).TryExtract()
		require.True(t, ok)
		assert.Equal(t, long, value)
	})
}

func TestStorageTransition(t *testing.T) {
	t.Run("moves dynamic data between strategies", func(t *testing.T) {
		long := strings.Repeat("t", 20)
		title, err := textkind.TryFromString[textkind.TitleKind](long, textkind.Exclusive)
		require.NoError(t, err)

		shared := title.StorageTransition(textkind.SharedAtomic)
		assert.Equal(t, long, shared.String())
		assert.Equal(t, textkind.SharedAtomic, shared.IntoDynamic(textkind.SharedAtomic).Storage())
	})

	t.Run("idempotent for the same strategy", func(t *testing.T) {
		title, err := textkind.TryFromString[textkind.TitleKind](strings.Repeat("t", 20), textkind.Shared)
		require.NoError(t, err)

		same := title.StorageTransition(textkind.Shared)
		assert.Equal(t, title.String(), same.String())
	})

	t.Run("static and inline data pass through at zero cost", func(t *testing.T) {
		inline, err := textkind.New[textkind.TitleKind]("short")
		require.NoError(t, err)
		assert.True(t, inline.StorageTransition(textkind.Shared).IntoData().IsInline())

		static, err := textkind.TryFromStatic[textkind.TitleKind]("a static title beyond sixteen")
		require.NoError(t, err)
		assert.True(t, static.StorageTransition(textkind.Shared).IntoData().IsStatic())
	})
}

func TestTextViews(t *testing.T) {
	t.Run("string view and comparisons", func(t *testing.T) {
		a, err := textkind.New[textkind.TitleKind]("alpha")
		require.NoError(t, err)
		b, err := textkind.New[textkind.TitleKind]("beta")
		require.NoError(t, err)

		assert.True(t, a.Equal(a.Clone()))
		assert.False(t, a.Equal(b))
		assert.Negative(t, a.Compare(b))
		assert.Positive(t, b.Compare(a))
		assert.Zero(t, a.Compare(a))
	})

	t.Run("into dynamic materializes from any representation", func(t *testing.T) {
		title, err := textkind.New[textkind.TitleKind]("short")
		require.NoError(t, err)

		dyn := title.IntoDynamic(textkind.SharedAtomic)
		assert.Equal(t, "short", dyn.String())
		assert.Equal(t, textkind.SharedAtomic, dyn.Storage())
	})
}

func TestPredefinedAliases(t *testing.T) {
	var (
		title textkind.Title
		ident textkind.Identifier
		lax   textkind.IdentifierLax
	)

	require.NoError(t, title.UnmarshalText([]byte("Some Title")))
	require.NoError(t, ident.UnmarshalText([]byte("some_identifier")))
	require.NoError(t, lax.UnmarshalText([]byte("some-identifier")))

	assert.Error(t, ident.UnmarshalText([]byte("some-identifier")))
}

// identKindAlias shares IdentifierKind's exact check type but is a
// distinct kind, exercising the relabel-only transition.
type identKindAlias struct{}

func (identKindAlias) Check() check.Check {
	return check.And[check.MaxBytes512, check.Identifier]{}
}

func (identKindAlias) Description() string { return "alias identifier" }

func TestConstructorValidatesBeforeStorage(t *testing.T) {
	// A value over the byte ceiling is rejected before any storage
	// decision, so the error reports the limit rather than storing.
	_, err := textkind.New[textkind.TitleKind](strings.Repeat("X", 513))
	require.Error(t, err)

	var maxErr *check.MaxBytesError
	require.ErrorAs(t, err, &maxErr)
	assert.Equal(t, 512, maxErr.Max)
	assert.Equal(t, 513, maxErr.Len)
}
