package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEcho(t *testing.T) {
	tests := []struct {
		name string
		args EchoArgs
		want string
	}{
		{"single token", EchoArgs{Tokens: []string{"hello"}}, "hello\n"},
		{
			"tokens joined with single spaces",
			EchoArgs{Tokens: []string{"hello", "there", "world"}},
			"hello there world\n",
		},
		{
			"omit newline",
			EchoArgs{Tokens: []string{"hello", "world"}, OmitNewline: true},
			"hello world",
		},
		{
			"token whitespace preserved verbatim",
			EchoArgs{Tokens: []string{"a  b", "c"}},
			"a  b c\n",
		},
		{"empty token list", EchoArgs{OmitNewline: true}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng, sinks := newTestEngine(newFakeOpener(nil, ""))

			err := eng.Echo(context.Background(), tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, sinks.out.String())
		})
	}
}
