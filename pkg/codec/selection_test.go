package codec_test

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/hadronized/hop.kak/pkg/codec"
	"github.com/hadronized/hop.kak/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		in      string
		want    codec.Range
		wantErr bool
	}{
		{in: "1.1,1.1", want: codec.Range{Anchor: codec.Coord{Line: 1, Column: 1}, Cursor: codec.Coord{Line: 1, Column: 1}}},
		{in: "12.4,3.17", want: codec.Range{Anchor: codec.Coord{Line: 12, Column: 4}, Cursor: codec.Coord{Line: 3, Column: 17}}},
		{in: "1.1", wantErr: true},
		{in: "1,1.1", wantErr: true},
		{in: "0.1,1.1", wantErr: true},
		{in: "a.b,c.d", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := codec.ParseRange(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, codec.ErrBadDescriptor)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, got.String())
		})
	}
}

func TestParseSelections(t *testing.T) {
	descs := codec.SplitList("  1.1,1.5 \t 2.3,2.3\n")
	require.Equal(t, []string{"1.1,1.5", "2.3,2.3"}, descs)

	sels, err := codec.ParseSelections(descs, true)
	require.NoError(t, err)
	assert.Equal(t, 1, sels[1].Index)

	// Opaque by default.
	sels, err = codec.ParseSelections([]string{"anything", "goes"}, false)
	require.NoError(t, err)
	assert.Equal(t, "goes", sels[1].Desc)

	_, err = codec.ParseSelections([]string{"1.1,1.1", "nope"}, true)
	assert.ErrorIs(t, err, codec.ErrBadDescriptor)
}

func TestReindex(t *testing.T) {
	original := domain.NewSelections([]string{"a", "b", "a", "c"})
	live := domain.NewSelections([]string{"a", "c", "zz"})

	got := codec.Reindex(live, original)
	assert.Equal(t, []domain.Selection{
		{Index: 0, Desc: "a"},
		{Index: 3, Desc: "c"},
		{Index: 2, Desc: "zz"},
	}, got)

	// Second occurrence of a repeated descriptor maps to its second index.
	got = codec.Reindex(domain.NewSelections([]string{"a", "a"}), original)
	assert.Equal(t, 0, got[0].Index)
	assert.Equal(t, 2, got[1].Index)

	assert.Equal(t, live, codec.Reindex(live, nil))
}

func TestLabels_RoundTrip(t *testing.T) {
	ls := codec.ParseLabels("a b  c da\tdb")
	require.Len(t, ls, 5)
	assert.Equal(t, "da", ls[3].String())
	assert.Equal(t, "a b c da db", codec.FormatLabels(ls))
	assert.Empty(t, codec.ParseLabels("   "))
}

func TestReadLines(t *testing.T) {
	t.Run("Blank Lines And No Trailing Newline", func(t *testing.T) {
		lines, err := codec.ReadLines(strings.NewReader("\n  1.1,1.1 2.2,2.2 \n\n3.3,3.3"))
		require.NoError(t, err)
		assert.Equal(t, []string{"1.1,1.1 2.2,2.2", "3.3,3.3"}, lines)
	})

	t.Run("Line Longer Than 64KiB", func(t *testing.T) {
		descs := make([]string, 20000)
		for i := range descs {
			descs[i] = "1.1,1.1"
		}
		line := strings.Join(descs, " ")
		require.Greater(t, len(line), 64*1024)

		lines, err := codec.ReadLines(strings.NewReader(line + "\n"))
		require.NoError(t, err)
		require.Len(t, lines, 1)

		sels, err := codec.ParseSelections(codec.SplitList(lines[0]), true)
		require.NoError(t, err)
		assert.Len(t, sels, 20000)
	})

	t.Run("Read Error", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := codec.ReadLines(io.MultiReader(strings.NewReader("1.1,1.1\n"), iotest.ErrReader(boom)))
		assert.ErrorIs(t, err, boom)
	})
}

func TestReadPairs(t *testing.T) {
	sels, err := codec.ReadPairs(strings.NewReader("1 4\n\n  12 7 \n"))
	require.NoError(t, err)
	require.Len(t, sels, 2)
	assert.Equal(t, "1.4,1.4", sels[0].Desc)
	assert.Equal(t, "12.7,12.7", sels[1].Desc)
	assert.Equal(t, 1, sels[1].Index)

	_, err = codec.ReadPairs(strings.NewReader("1 2 3\n"))
	assert.ErrorIs(t, err, codec.ErrBadDescriptor)

	_, err = codec.ReadPairs(strings.NewReader("x 2\n"))
	assert.ErrorIs(t, err, codec.ErrBadDescriptor)
}
