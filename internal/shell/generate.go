package shell

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/hbjs97/envsw/internal/config"
)

// placeholderPattern은 저장 값 안의 ${VAR} 플레이스홀더다.
var placeholderPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Generator는 환경 하나를 활성화 스크립트로 바꾼다.
// 생성 시점의 프로세스 환경 스냅샷을 들고 있으므로, 같은
// (환경, 셸, 스냅샷) 입력에 대해 항상 바이트 단위로 동일한 출력을 낸다.
type Generator struct {
	env map[string]string
}

// NewGenerator는 현재 프로세스 환경을 스냅샷한 Generator를 생성한다.
func NewGenerator() *Generator {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if i := strings.IndexByte(kv, '='); i > 0 {
			env[kv[:i]] = kv[i+1:]
		}
	}
	return &Generator{env: env}
}

// NewGeneratorWithEnv는 주어진 환경 스냅샷으로 Generator를 생성한다. 테스트용.
func NewGeneratorWithEnv(env map[string]string) *Generator {
	copied := make(map[string]string, len(env))
	for k, v := range env {
		copied[k] = v
	}
	return &Generator{env: copied}
}

// Ambient는 스냅샷에서 환경변수를 조회한다.
func (g *Generator) Ambient(key string) (string, bool) {
	v, ok := g.env[key]
	return v, ok
}

// Resolve는 값 안의 ${VAR} 플레이스홀더를 스냅샷으로 치환한다.
// 변수가 없으면 빈 문자열로 대체하고 경고를 반환한다. 경고는 스크립트에
// 섞이지 않도록 별도로 전달된다.
func (g *Generator) Resolve(value string) (string, []string) {
	var warnings []string
	resolved := placeholderPattern.ReplaceAllStringFunc(value, func(m string) string {
		name := m[2 : len(m)-1]
		if v, ok := g.env[name]; ok {
			return v
		}
		warnings = append(warnings, fmt.Sprintf("환경변수 %s 미설정, 빈 값으로 대체됨", name))
		return ""
	})
	return resolved, warnings
}

// assign은 한 줄짜리 변수 대입 구문을 방언에 맞게 쓴다.
func assign(b *strings.Builder, t Type, key, value string) {
	switch t {
	case Bash, Zsh:
		fmt.Fprintf(b, "export %s=%s\n", key, Quote(t, value))
	case Fish:
		fmt.Fprintf(b, "set -gx %s %s\n", key, Quote(t, value))
	case PowerShell:
		fmt.Fprintf(b, "$env:%s = %s\n", key, Quote(t, value))
	case Cmd:
		fmt.Fprintf(b, "set \"%s=%s\"\n", key, Quote(t, value))
	}
}

func checkType(t Type) error {
	switch t {
	case Bash, Zsh, Fish, PowerShell, Cmd:
		return nil
	default:
		return fmt.Errorf("shell.checkType: %w: %s", ErrUnsupported, t)
	}
}

// filteredPath는 스냅샷의 PATH에서 이전 Java 설치로 보이는 구간을 걷어낸다.
// java/jdk 부분 문자열 매칭은 대소문자를 가리지 않는다. 스냅샷은 호출한
// 셸에서 왔으므로 구분자는 방언이 아니라 호스트 관례를 따른다. 리눅스의
// pwsh처럼 방언과 호스트가 어긋나는 조합에서도 PATH가 깨지면 안 된다.
func (g *Generator) filteredPath() []string {
	var kept []string
	for _, seg := range filepath.SplitList(g.env["PATH"]) {
		if seg == "" {
			continue
		}
		lower := strings.ToLower(seg)
		if strings.Contains(lower, "java") || strings.Contains(lower, "jdk") {
			continue
		}
		kept = append(kept, seg)
	}
	return kept
}

// JavaSwitch는 Java 환경 활성화 스크립트를 생성한다.
// JAVA_HOME을 지정하고, PATH에서 기존 Java 구간을 제거한 뒤 <home>/bin을 앞에
// 붙인다. 스크립트를 평가할 셸도 같은 호스트에서 돌므로 경로 구분자는
// 호스트 관례를 쓴다.
func (g *Generator) JavaSwitch(env *config.JavaEnv, t Type) (string, []string, error) {
	if err := checkType(t); err != nil {
		return "", nil, err
	}

	bin := filepath.Join(env.JavaHome, "bin")
	kept := g.filteredPath()

	var b strings.Builder
	assign(&b, t, "JAVA_HOME", env.JavaHome)
	if t == Fish {
		// fish의 PATH는 리스트 변수다.
		fmt.Fprintf(&b, "set -gx PATH %s", Quote(t, bin))
		for _, seg := range kept {
			fmt.Fprintf(&b, " %s", Quote(t, seg))
		}
		b.WriteString("\n")
	} else {
		sep := string(os.PathListSeparator)
		newPath := bin
		if len(kept) > 0 {
			newPath += sep + strings.Join(kept, sep)
		}
		assign(&b, t, "PATH", newPath)
	}
	assign(&b, t, "ENVSW_CURRENT_JAVA", env.Name)
	return b.String(), nil, nil
}

// CcSwitch는 Claude Code 환경 활성화 스크립트를 생성한다.
// 플레이스홀더는 생성 시점 스냅샷으로 해석되며, 해석 실패는 경고로만 전달된다.
func (g *Generator) CcSwitch(env *config.CcEnv, t Type) (string, []string, error) {
	if err := checkType(t); err != nil {
		return "", nil, err
	}

	token, warnings := g.Resolve(env.APIKey)
	baseURL, w := g.Resolve(env.BaseURL)
	warnings = append(warnings, w...)

	var b strings.Builder
	assign(&b, t, "ANTHROPIC_AUTH_TOKEN", token)
	if env.BaseURL != "" {
		assign(&b, t, "ANTHROPIC_BASE_URL", baseURL)
	}
	if env.Model != "" {
		assign(&b, t, "ANTHROPIC_MODEL", env.Model)
	}
	if token != "" {
		// Claude Code 부가 설정: 토큰이 실제로 잡힌 경우에만 의미가 있다.
		assign(&b, t, "CLAUDE_CODE_DISABLE_NONESSENTIAL_TRAFFIC", "1")
		assign(&b, t, "API_TIMEOUT_MS", "3000000")
	}
	assign(&b, t, "ENVSW_CURRENT_CC", env.Name)
	return b.String(), warnings, nil
}

// llmVars는 프로바이더별 환경변수 이름 묶음이다.
type llmVars struct {
	key    string
	url    string
	model  string
	prefix string
}

func varsForProvider(provider string) llmVars {
	switch strings.ToLower(provider) {
	case "openai":
		return llmVars{"OPENAI_API_KEY", "OPENAI_BASE_URL", "OPENAI_MODEL", "OPENAI"}
	case "anthropic":
		return llmVars{"ANTHROPIC_API_KEY", "ANTHROPIC_BASE_URL", "ANTHROPIC_MODEL", "ANTHROPIC"}
	case "azure":
		return llmVars{"AZURE_OPENAI_API_KEY", "AZURE_OPENAI_ENDPOINT", "AZURE_OPENAI_DEPLOYMENT_NAME", "AZURE_OPENAI"}
	case "google":
		return llmVars{"GOOGLE_API_KEY", "GOOGLE_BASE_URL", "GOOGLE_MODEL", "GOOGLE"}
	default:
		p := sanitizeVarName(provider)
		return llmVars{p + "_API_KEY", p + "_BASE_URL", p + "_MODEL", p}
	}
}

// sanitizeVarName은 프로바이더 태그를 환경변수 접두사로 정리한다.
func sanitizeVarName(s string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(s) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// LlmSwitch는 LLM 환경 활성화 스크립트를 생성한다.
func (g *Generator) LlmSwitch(env *config.LlmEnv, t Type) (string, []string, error) {
	if err := checkType(t); err != nil {
		return "", nil, err
	}

	vars := varsForProvider(env.Provider)
	key, warnings := g.Resolve(env.APIKey)
	baseURL, w := g.Resolve(env.BaseURL)
	warnings = append(warnings, w...)

	var b strings.Builder
	assign(&b, t, vars.key, key)
	if env.BaseURL != "" {
		assign(&b, t, vars.url, baseURL)
	}
	if env.Model != "" {
		assign(&b, t, vars.model, env.Model)
	}
	if env.Temperature != nil {
		assign(&b, t, vars.prefix+"_TEMPERATURE", strconv.FormatFloat(*env.Temperature, 'g', -1, 64))
	}
	if env.MaxTokens != nil {
		assign(&b, t, vars.prefix+"_MAX_TOKENS", strconv.Itoa(*env.MaxTokens))
	}
	assign(&b, t, "ENVSW_CURRENT_LLM", env.Name)
	return b.String(), warnings, nil
}
