package shell_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hbjs97/envsw/internal/shell"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		in   string
		want shell.Type
	}{
		{"bash", shell.Bash},
		{"sh", shell.Bash},
		{"zsh", shell.Zsh},
		{"fish", shell.Fish},
		{"powershell", shell.PowerShell},
		{"pwsh", shell.PowerShell},
		{"cmd", shell.Cmd},
		{"bat", shell.Cmd},
		{"  ZSH  ", shell.Zsh},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := shell.ParseType(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseType_Unknown(t *testing.T) {
	_, err := shell.ParseType("tcsh")
	assert.ErrorIs(t, err, shell.ErrUnsupported)
}

func TestQuote_Posix(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`plain`, `"plain"`},
		{`has space`, `"has space"`},
		{`a"b`, `"a\"b"`},
		{`a$HOME`, `"a\$HOME"`},
		{"back`tick", "\"back\\`tick\""},
		{`back\slash`, `"back\\slash"`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, shell.Quote(shell.Bash, tt.in))
		assert.Equal(t, tt.want, shell.Quote(shell.Zsh, tt.in))
	}
}

func TestQuote_Fish(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`plain`, `"plain"`},
		{`a"b`, `"a\"b"`},
		{`a$HOME`, `"a\$HOME"`},
		{`back\slash`, `"back\\slash"`},
		// fish 큰따옴표 안에서 백틱은 리터럴이다. 이스케이프하면 \` 가 그대로 남는다.
		{"back`tick", "\"back`tick\""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, shell.Quote(shell.Fish, tt.in))
	}
}

func TestQuote_PowerShell(t *testing.T) {
	assert.Equal(t, `'plain'`, shell.Quote(shell.PowerShell, `plain`))
	assert.Equal(t, `'it''s'`, shell.Quote(shell.PowerShell, `it's`))
	// 작은따옴표 문자열 안에서는 $ 가 리터럴이다
	assert.Equal(t, `'$env:HOME'`, shell.Quote(shell.PowerShell, `$env:HOME`))
}

func TestQuote_Cmd(t *testing.T) {
	assert.Equal(t, `plain`, shell.Quote(shell.Cmd, `plain`))
	assert.Equal(t, `100%%`, shell.Quote(shell.Cmd, `100%`))
	assert.Equal(t, `a""b`, shell.Quote(shell.Cmd, `a"b`))
}
