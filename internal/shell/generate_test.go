package shell_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hbjs97/envsw/internal/config"
	"github.com/hbjs97/envsw/internal/shell"
)

func javaEnv() *config.JavaEnv {
	return &config.JavaEnv{
		Name:     "jdk17",
		JavaHome: "/usr/lib/jvm/java-17-openjdk",
	}
}

func TestJavaSwitch_Bash(t *testing.T) {
	gen := shell.NewGeneratorWithEnv(map[string]string{
		"PATH": "/usr/lib/jvm/java-11-openjdk/bin:/usr/local/bin:/usr/bin",
	})

	script, warnings, err := gen.JavaSwitch(javaEnv(), shell.Bash)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	assert.Contains(t, script, `export JAVA_HOME="/usr/lib/jvm/java-17-openjdk"`)
	assert.Contains(t, script, `export ENVSW_CURRENT_JAVA="jdk17"`)

	// 새 bin이 앞에 오고 이전 Java 구간은 PATH에서 사라져야 한다
	assert.Contains(t, script, `export PATH="/usr/lib/jvm/java-17-openjdk/bin:/usr/local/bin:/usr/bin"`)
	assert.NotContains(t, script, "java-11")
}

func TestJavaSwitch_PathFilterCaseInsensitive(t *testing.T) {
	gen := shell.NewGeneratorWithEnv(map[string]string{
		"PATH": "/opt/JDK21/bin:/usr/bin:/home/u/.sdkman/candidates/Java/current/bin",
	})

	script, _, err := gen.JavaSwitch(javaEnv(), shell.Bash)
	require.NoError(t, err)
	assert.NotContains(t, script, "JDK21")
	assert.NotContains(t, script, "sdkman")
	assert.Contains(t, script, "/usr/bin")
}

func TestJavaSwitch_Fish(t *testing.T) {
	gen := shell.NewGeneratorWithEnv(map[string]string{
		"PATH": "/usr/bin:/bin",
	})

	script, _, err := gen.JavaSwitch(javaEnv(), shell.Fish)
	require.NoError(t, err)

	assert.Contains(t, script, `set -gx JAVA_HOME "/usr/lib/jvm/java-17-openjdk"`)
	// fish의 PATH는 리스트 변수로 설정된다
	assert.Contains(t, script, `set -gx PATH "/usr/lib/jvm/java-17-openjdk/bin" "/usr/bin" "/bin"`)
}

// 리눅스에서 pwsh를 쓰는 조합: 방언은 powershell이지만 PATH는 호출한 셸의
// 호스트 관례를 따라야 한다. 방언 구분자로 쪼개면 PATH 전체가 날아간다.
func TestJavaSwitch_PowerShellOnUnixHost(t *testing.T) {
	gen := shell.NewGeneratorWithEnv(map[string]string{
		"PATH": "/usr/lib/jvm/jdk-11/bin:/usr/local/bin:/usr/bin",
	})

	script, _, err := gen.JavaSwitch(javaEnv(), shell.PowerShell)
	require.NoError(t, err)

	assert.Contains(t, script, `$env:JAVA_HOME = '/usr/lib/jvm/java-17-openjdk'`)
	assert.Contains(t, script,
		`$env:PATH = '/usr/lib/jvm/java-17-openjdk/bin:/usr/local/bin:/usr/bin'`)
	assert.NotContains(t, script, "jdk-11")
	assert.NotContains(t, script, `\bin`)
}

func TestJavaSwitch_Cmd(t *testing.T) {
	gen := shell.NewGeneratorWithEnv(map[string]string{"PATH": "/usr/bin"})

	script, _, err := gen.JavaSwitch(javaEnv(), shell.Cmd)
	require.NoError(t, err)

	assert.Contains(t, script, `set "JAVA_HOME=/usr/lib/jvm/java-17-openjdk"`)
	assert.Contains(t, script, `set "PATH=/usr/lib/jvm/java-17-openjdk/bin:/usr/bin"`)
}

func TestJavaSwitch_UnsupportedShell(t *testing.T) {
	gen := shell.NewGeneratorWithEnv(nil)
	_, _, err := gen.JavaSwitch(javaEnv(), shell.Type("tcsh"))
	assert.ErrorIs(t, err, shell.ErrUnsupported)
}

func TestJavaSwitch_Deterministic(t *testing.T) {
	gen := shell.NewGeneratorWithEnv(map[string]string{"PATH": "/usr/bin"})

	first, _, err := gen.JavaSwitch(javaEnv(), shell.Bash)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, _, err := gen.JavaSwitch(javaEnv(), shell.Bash)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestCcSwitch_ResolvesPlaceholder(t *testing.T) {
	gen := shell.NewGeneratorWithEnv(map[string]string{"GLM_API_KEY": "sk-live-123"})
	env := &config.CcEnv{
		Name:    "glmcc",
		APIKey:  "${GLM_API_KEY}",
		BaseURL: "https://open.bigmodel.cn/api/paas/v4",
		Model:   "glm-4.6",
	}

	script, warnings, err := gen.CcSwitch(env, shell.Bash)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	assert.Contains(t, script, `export ANTHROPIC_AUTH_TOKEN="sk-live-123"`)
	assert.Contains(t, script, `export ANTHROPIC_BASE_URL="https://open.bigmodel.cn/api/paas/v4"`)
	assert.Contains(t, script, `export ANTHROPIC_MODEL="glm-4.6"`)
	assert.Contains(t, script, `export CLAUDE_CODE_DISABLE_NONESSENTIAL_TRAFFIC="1"`)
	assert.Contains(t, script, `export API_TIMEOUT_MS="3000000"`)
	assert.Contains(t, script, `export ENVSW_CURRENT_CC="glmcc"`)
	// 플레이스홀더 원문이 스크립트에 남으면 안 된다
	assert.NotContains(t, script, "${GLM_API_KEY}")
}

func TestCcSwitch_MissingPlaceholderWarns(t *testing.T) {
	gen := shell.NewGeneratorWithEnv(map[string]string{})
	env := &config.CcEnv{Name: "glmcc", APIKey: "${GLM_API_KEY}"}

	script, warnings, err := gen.CcSwitch(env, shell.Bash)
	require.NoError(t, err)

	// 빈 값으로 대체되고 경고가 스크립트 밖으로 나온다
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "GLM_API_KEY")
	assert.Contains(t, script, `export ANTHROPIC_AUTH_TOKEN=""`)
	assert.NotContains(t, script, "경고")

	// 토큰이 비면 부가 설정도 생략된다
	assert.NotContains(t, script, "CLAUDE_CODE_DISABLE_NONESSENTIAL_TRAFFIC")
}

func TestCcSwitch_InjectionSafe(t *testing.T) {
	gen := shell.NewGeneratorWithEnv(map[string]string{"K": `x"; rm -rf /; echo "`})
	env := &config.CcEnv{Name: "evil", APIKey: "${K}"}

	script, _, err := gen.CcSwitch(env, shell.Bash)
	require.NoError(t, err)
	// 큰따옴표가 이스케이프되어 구문 주입이 되지 않아야 한다
	assert.Contains(t, script, `\"`)
	assert.NotContains(t, script, `="x"; rm`)
}

func TestLlmSwitch_ProviderVarSets(t *testing.T) {
	gen := shell.NewGeneratorWithEnv(map[string]string{"OPENAI_API_KEY": "sk-oai"})

	tests := []struct {
		provider string
		wantKey  string
	}{
		{"openai", "OPENAI_API_KEY"},
		{"anthropic", "ANTHROPIC_API_KEY"},
		{"azure", "AZURE_OPENAI_API_KEY"},
		{"google", "GOOGLE_API_KEY"},
		{"my-lab", "MY_LAB_API_KEY"},
	}
	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			env := &config.LlmEnv{Name: "e", Provider: tt.provider, APIKey: "k"}
			script, _, err := gen.LlmSwitch(env, shell.Bash)
			require.NoError(t, err)
			assert.Contains(t, script, "export "+tt.wantKey+"=")
			assert.Contains(t, script, `export ENVSW_CURRENT_LLM="e"`)
		})
	}
}

func TestLlmSwitch_AzureEndpointAndTuning(t *testing.T) {
	gen := shell.NewGeneratorWithEnv(nil)
	temp := 0.7
	maxTokens := 4096
	env := &config.LlmEnv{
		Name:        "az",
		Provider:    "azure",
		APIKey:      "key",
		BaseURL:     "https://myres.openai.azure.com",
		Model:       "gpt-4o-deploy",
		Temperature: &temp,
		MaxTokens:   &maxTokens,
	}

	script, _, err := gen.LlmSwitch(env, shell.Bash)
	require.NoError(t, err)

	assert.Contains(t, script, `export AZURE_OPENAI_ENDPOINT="https://myres.openai.azure.com"`)
	assert.Contains(t, script, `export AZURE_OPENAI_DEPLOYMENT_NAME="gpt-4o-deploy"`)
	assert.Contains(t, script, `export AZURE_OPENAI_TEMPERATURE="0.7"`)
	assert.Contains(t, script, `export AZURE_OPENAI_MAX_TOKENS="4096"`)
}

func TestLlmSwitch_OptionalFieldsOmitted(t *testing.T) {
	gen := shell.NewGeneratorWithEnv(nil)
	env := &config.LlmEnv{Name: "min", Provider: "openai", APIKey: "k"}

	script, _, err := gen.LlmSwitch(env, shell.Bash)
	require.NoError(t, err)

	assert.NotContains(t, script, "OPENAI_BASE_URL")
	assert.NotContains(t, script, "OPENAI_MODEL")
	assert.NotContains(t, script, "TEMPERATURE")
	assert.NotContains(t, script, "MAX_TOKENS")
}

func TestResolve_MultiplePlaceholders(t *testing.T) {
	gen := shell.NewGeneratorWithEnv(map[string]string{"A": "1", "B": "2"})

	resolved, warnings := gen.Resolve("${A}-${B}-${C}")
	assert.Equal(t, "1-2-", resolved)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "C")
}

func TestResolve_NoPlaceholder(t *testing.T) {
	gen := shell.NewGeneratorWithEnv(nil)

	resolved, warnings := gen.Resolve("sk-literal-key")
	assert.Equal(t, "sk-literal-key", resolved)
	assert.Empty(t, warnings)
}

// 모든 방언에 대해 스크립트가 줄 단위 대입문으로만 구성되는지 확인한다.
func TestSwitch_AllDialectsEmitAssignmentsOnly(t *testing.T) {
	gen := shell.NewGeneratorWithEnv(map[string]string{"PATH": "/usr/bin"})

	prefixes := map[shell.Type]string{
		shell.Bash:       "export ",
		shell.Zsh:        "export ",
		shell.Fish:       "set -gx ",
		shell.PowerShell: "$env:",
		shell.Cmd:        `set "`,
	}
	for dialect, prefix := range prefixes {
		script, _, err := gen.JavaSwitch(javaEnv(), dialect)
		require.NoError(t, err)
		for _, line := range strings.Split(strings.TrimRight(script, "\n"), "\n") {
			assert.True(t, strings.HasPrefix(line, prefix),
				"%s: unexpected line %q", dialect, line)
		}
	}
}
