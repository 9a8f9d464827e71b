package domain

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/miglja/textutils/internal/model"
)

func TestCount_DefaultKindsAndColumns(t *testing.T) {
	// 2 lines, 3 words, 12 bytes.
	opener := newFakeOpener(map[m.SourceName]string{
		"f.txt": "one two\nsix\n",
	}, "")

	eng, sinks := newTestEngine(opener)

	err := eng.Count(context.Background(), CountArgs{Names: names("f.txt")})
	require.NoError(t, err)

	assert.Equal(t, "       2       3      12 f.txt\n", sinks.out.String())
}

func TestCount_ExactReferenceRow(t *testing.T) {
	// 2 lines, 3 words, 11 bytes.
	opener := newFakeOpener(map[m.SourceName]string{
		"filename": "ab cd\nefgh\n",
	}, "")

	eng, sinks := newTestEngine(opener)

	err := eng.Count(context.Background(), CountArgs{Names: names("filename")})
	require.NoError(t, err)

	assert.Equal(t, "       2       3      11 filename\n", sinks.out.String())
}

func TestCount_StdinRowHasNoName(t *testing.T) {
	eng, sinks := newTestEngine(newFakeOpener(nil, "hello world\n"))

	err := eng.Count(context.Background(), CountArgs{Names: names("-")})
	require.NoError(t, err)

	assert.Equal(t, "       1       2      12\n", sinks.out.String())
}

func TestCount_SelectedKinds(t *testing.T) {
	tests := []struct {
		name  string
		kinds m.CountKinds
		want  string
	}{
		{"lines only", m.CountKinds{Lines: true}, "       2 f.txt\n"},
		{"words only", m.CountKinds{Words: true}, "       3 f.txt\n"},
		{"bytes only", m.CountKinds{Bytes: true}, "      12 f.txt\n"},
		{"chars only", m.CountKinds{Chars: true}, "      12 f.txt\n"},
		{
			"lines and chars keep fixed order",
			m.CountKinds{Chars: true, Lines: true},
			"       2      12 f.txt\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opener := newFakeOpener(map[m.SourceName]string{
				"f.txt": "one two\nsix\n",
			}, "")

			eng, sinks := newTestEngine(opener)

			err := eng.Count(context.Background(), CountArgs{Names: names("f.txt"), Kinds: tt.kinds})
			require.NoError(t, err)
			assert.Equal(t, tt.want, sinks.out.String())
		})
	}
}

func TestCount_CharsDifferFromBytes(t *testing.T) {
	// "héllo\n" is 7 bytes but 6 runes.
	opener := newFakeOpener(map[m.SourceName]string{
		"u.txt": "h\xc3\xa9llo\n",
	}, "")

	eng, sinks := newTestEngine(opener)

	err := eng.Count(context.Background(), CountArgs{
		Names: names("u.txt"),
		Kinds: m.CountKinds{Bytes: true, Chars: true},
	})
	require.NoError(t, err)

	assert.Equal(t, "       7       6 u.txt\n", sinks.out.String())
}

func TestCount_TotalsRow(t *testing.T) {
	opener := newFakeOpener(map[m.SourceName]string{
		"a.txt": "one two\n",
		"b.txt": "three four five\nsix\n",
	}, "")

	eng, sinks := newTestEngine(opener)

	err := eng.Count(context.Background(), CountArgs{Names: names("a.txt", "b.txt")})
	require.NoError(t, err)

	want := "" +
		"       1       2       8 a.txt\n" +
		"       2       4      20 b.txt\n" +
		"       3       6      28 total\n"
	assert.Equal(t, want, sinks.out.String())
}

func TestCount_SingleSourceHasNoTotals(t *testing.T) {
	eng, sinks := newTestEngine(newFakeOpener(map[m.SourceName]string{"a.txt": "x\n"}, ""))

	err := eng.Count(context.Background(), CountArgs{Names: names("a.txt")})
	require.NoError(t, err)
	assert.NotContains(t, sinks.out.String(), "total")
}

func TestCount_SkippedSourceContinues(t *testing.T) {
	opener := newFakeOpener(map[m.SourceName]string{
		"a.txt": "x\n",
		"c.txt": "y z\n",
	}, "")

	eng, sinks := newTestEngine(opener)

	err := eng.Count(context.Background(), CountArgs{Names: names("a.txt", "gone.txt", "c.txt")})
	require.NoError(t, err)

	want := "" +
		"       1       1       2 a.txt\n" +
		"       1       2       4 c.txt\n" +
		"       2       3       6 total\n"
	assert.Equal(t, want, sinks.out.String())
	assert.Equal(t, "gone.txt: no such file or directory\n", sinks.errOut.String())
}

func TestCount_Idempotent(t *testing.T) {
	run := func() string {
		opener := newFakeOpener(map[m.SourceName]string{"a.txt": "a b c\nd\n\ne f\n"}, "")
		eng, sinks := newTestEngine(opener)
		require.NoError(t, eng.Count(context.Background(), CountArgs{Names: names("a.txt")}))

		return sinks.out.String()
	}

	assert.Equal(t, run(), run())
}

func TestCountSource(t *testing.T) {
	all := m.CountKinds{Lines: true, Words: true, Bytes: true, Chars: true}

	tests := []struct {
		name  string
		input string
		want  m.Counts
	}{
		{"empty source", "", m.Counts{}},
		{"whitespace only line has zero words", "  \t  \n", m.Counts{Lines: 1, Bytes: 6, Chars: 6}},
		{
			"mixed separators split words",
			"a  b\tc\n",
			m.Counts{Lines: 1, Words: 3, Bytes: 7, Chars: 7},
		},
		{
			"final line without terminator still counts",
			"one\ntwo",
			m.Counts{Lines: 2, Words: 2, Bytes: 7, Chars: 7},
		},
		{"blank lines contribute no words", "\n\n", m.Counts{Lines: 2, Bytes: 2, Chars: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := countSource(strings.NewReader(tt.input), all)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteCountRow_TotalLabel(t *testing.T) {
	var buf bytes.Buffer

	err := writeCountRow(&buf, m.CountKinds{Lines: true}, m.Counts{Lines: 42}, "total")
	require.NoError(t, err)
	assert.Equal(t, "      42 total\n", buf.String())
}
