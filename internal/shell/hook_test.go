package shell_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hbjs97/envsw/internal/shell"
)

func TestHookSnippet(t *testing.T) {
	for _, tt := range []shell.Type{shell.Bash, shell.Zsh, shell.Fish, shell.PowerShell} {
		snippet := shell.HookSnippet(tt)
		assert.NotEmpty(t, snippet, string(tt))
		assert.Contains(t, snippet, "envsw shell integration")
		assert.Contains(t, snippet, "envsw java use")
		assert.Contains(t, snippet, "envsw cc use")
	}
}

func TestHookSnippet_CmdUnsupported(t *testing.T) {
	assert.Empty(t, shell.HookSnippet(shell.Cmd))
	assert.Empty(t, shell.HookSnippet(shell.Type("tcsh")))
}

func TestHookSnippet_FishUsesSource(t *testing.T) {
	snippet := shell.HookSnippet(shell.Fish)
	assert.Contains(t, snippet, "| source")
	assert.NotContains(t, snippet, "eval")
}
