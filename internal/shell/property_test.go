package shell_test

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/hbjs97/envsw/internal/config"
	"github.com/hbjs97/envsw/internal/shell"
)

// 생성기는 순수 함수여야 한다: 같은 입력이면 언제나 같은 바이트를 낸다.
func TestGenerator_DeterminismProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	dialects := []shell.Type{shell.Bash, shell.Zsh, shell.Fish, shell.PowerShell, shell.Cmd}

	properties.Property("same input yields identical script", prop.ForAll(
		func(name, home, pathVar string, dialectIdx int) bool {
			g := shell.NewGeneratorWithEnv(map[string]string{"PATH": pathVar})
			env := &config.JavaEnv{Name: name, JavaHome: home}
			d := dialects[dialectIdx%len(dialects)]

			first, _, err1 := g.JavaSwitch(env, d)
			second, _, err2 := g.JavaSwitch(env, d)
			return err1 == nil && err2 == nil && first == second
		},
		gen.Identifier(),
		gen.AlphaString(),
		gen.AlphaString(),
		gen.IntRange(0, 4),
	))

	properties.Property("posix quoting survives arbitrary values", prop.ForAll(
		func(value string) bool {
			quoted := shell.Quote(shell.Bash, value)
			// 인용 결과는 항상 큰따옴표로 감싸이고, 이스케이프되지 않은
			// 큰따옴표가 내부에 남지 않는다.
			if !strings.HasPrefix(quoted, `"`) || !strings.HasSuffix(quoted, `"`) {
				return false
			}
			inner := quoted[1 : len(quoted)-1]
			for i := 0; i < len(inner); i++ {
				if inner[i] == '"' && (i == 0 || inner[i-1] != '\\') {
					return false
				}
			}
			return true
		},
		gen.AnyString(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
