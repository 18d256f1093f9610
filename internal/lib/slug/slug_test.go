package slug

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Modern Art", "modern-art"},
		{"already clean", "sunset", "sunset"},
		{"punctuation collapses", "Oil & Canvas: a study!!", "oil-canvas-a-study"},
		{"digits kept", "Gallery 42", "gallery-42"},
		{"leading and trailing junk trimmed", "  --Hello--  ", "hello"},
		{"mixed case", "ArtStryHub", "artstryhub"},
		{"accents fold to base letters", "café día", "cafe-dia"},
		{"ligature decomposes", "ﬁne art", "fine-art"},
		{"non latin dropped", "夜景 at night", "at-night"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"punctuation only", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.in))
		})
	}
}

func TestAssign(t *testing.T) {
	ctx := context.Background()

	takenSet := func(used ...string) TakenFunc {
		set := make(map[string]bool, len(used))
		for _, s := range used {
			set[s] = true
		}
		return func(_ context.Context, slug string) (bool, error) {
			return set[slug], nil
		}
	}

	t.Run("base free", func(t *testing.T) {
		got, err := Assign(ctx, "modern-art", takenSet())
		require.NoError(t, err)
		assert.Equal(t, "modern-art", got)
	})

	t.Run("first collision gets suffix 1", func(t *testing.T) {
		got, err := Assign(ctx, "modern-art", takenSet("modern-art"))
		require.NoError(t, err)
		assert.Equal(t, "modern-art-1", got)
	})

	t.Run("scan continues past occupied suffixes", func(t *testing.T) {
		got, err := Assign(ctx, "modern-art", takenSet("modern-art", "modern-art-1", "modern-art-2"))
		require.NoError(t, err)
		assert.Equal(t, "modern-art-3", got)
	})

	t.Run("deleted slug is not reused out of order", func(t *testing.T) {
		// modern-art-1 was freed by a delete, but the scan starts at the base
		// and takes the first unused candidate.
		got, err := Assign(ctx, "modern-art", takenSet("modern-art", "modern-art-2"))
		require.NoError(t, err)
		assert.Equal(t, "modern-art-1", got)
	})

	t.Run("empty base goes straight to suffixes", func(t *testing.T) {
		got, err := Assign(ctx, "", takenSet())
		require.NoError(t, err)
		assert.Equal(t, "-1", got)

		got, err = Assign(ctx, "", takenSet("-1", "-2"))
		require.NoError(t, err)
		assert.Equal(t, "-3", got)
	})

	t.Run("check error propagates", func(t *testing.T) {
		wantErr := assert.AnError
		_, err := Assign(ctx, "x", func(context.Context, string) (bool, error) {
			return false, wantErr
		})
		require.ErrorIs(t, err, wantErr)
	})
}
