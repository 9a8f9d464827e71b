package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounts_Add(t *testing.T) {
	total := Counts{Lines: 1, Words: 2, Bytes: 3, Chars: 4}
	total.Add(Counts{Lines: 10, Words: 20, Bytes: 30, Chars: 40})

	assert.Equal(t, Counts{Lines: 11, Words: 22, Bytes: 33, Chars: 44}, total)
}

func TestCounts_AddZero(t *testing.T) {
	total := Counts{Lines: 5, Words: 6, Bytes: 7, Chars: 8}
	total.Add(Counts{})

	assert.Equal(t, Counts{Lines: 5, Words: 6, Bytes: 7, Chars: 8}, total)
}

func TestCountKinds_Normalize(t *testing.T) {
	tests := []struct {
		name  string
		kinds CountKinds
		want  CountKinds
	}{
		{
			"nothing selected defaults to lines+words+bytes",
			CountKinds{},
			CountKinds{Lines: true, Words: true, Bytes: true},
		},
		{
			"explicit selection kept as-is",
			CountKinds{Chars: true},
			CountKinds{Chars: true},
		},
		{
			"lines only",
			CountKinds{Lines: true},
			CountKinds{Lines: true},
		},
		{
			"full selection unchanged",
			CountKinds{Lines: true, Words: true, Bytes: true, Chars: true},
			CountKinds{Lines: true, Words: true, Bytes: true, Chars: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kinds.Normalize())
		})
	}
}
