package shell

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Type은 스크립트를 생성할 대상 셸이다. 상태는 없고 방언 선택자로만 쓰인다.
type Type string

const (
	// Bash는 bash 방언이다.
	Bash Type = "bash"
	// Zsh는 zsh 방언이다. 활성화 구문은 bash와 같다.
	Zsh Type = "zsh"
	// Fish는 fish 방언이다.
	Fish Type = "fish"
	// PowerShell은 powershell 방언이다.
	PowerShell Type = "powershell"
	// Cmd는 Windows cmd 방언이다.
	Cmd Type = "cmd"
)

// ErrUnsupported는 알 수 없는 셸이 지정되었을 때 반환된다.
var ErrUnsupported = errors.New("지원하지 않는 셸")

// ParseType은 셸 이름 문자열을 Type으로 해석한다.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bash", "sh":
		return Bash, nil
	case "zsh":
		return Zsh, nil
	case "fish":
		return Fish, nil
	case "powershell", "pwsh":
		return PowerShell, nil
	case "cmd", "bat":
		return Cmd, nil
	default:
		return "", fmt.Errorf("shell.ParseType: %w: %s", ErrUnsupported, s)
	}
}

// Detect는 현재 사용자의 셸을 감지한다. 판단 불가 시 bash (Windows는 powershell).
func Detect() Type {
	if runtime.GOOS == "windows" {
		return PowerShell
	}
	switch filepath.Base(os.Getenv("SHELL")) {
	case "zsh":
		return Zsh
	case "fish":
		return Fish
	default:
		return Bash
	}
}

// Quote는 값을 대상 방언에 안전하게 인용한다. 환경 이름이나 API 키에
// 셸 메타문자가 들어 있어도 구문 주입이 되지 않아야 한다.
func Quote(t Type, s string) string {
	switch t {
	case Bash, Zsh:
		// 큰따옴표 안에서 특수한 문자만 이스케이프한다.
		r := strings.NewReplacer(
			`\`, `\\`,
			`"`, `\"`,
			"`", "\\`",
			`$`, `\$`,
		)
		return `"` + r.Replace(s) + `"`
	case Fish:
		// fish 큰따옴표는 \ " $ 만 이스케이프로 인식한다.
		// 백틱은 특수 문자가 아니므로 그대로 둔다.
		r := strings.NewReplacer(
			`\`, `\\`,
			`"`, `\"`,
			`$`, `\$`,
		)
		return `"` + r.Replace(s) + `"`
	case PowerShell:
		// 작은따옴표 문자열: ' 만 '' 로 이스케이프하면 나머지는 리터럴이다.
		return `'` + strings.ReplaceAll(s, `'`, `''`) + `'`
	case Cmd:
		// set "K=V" 형태로 쓰므로 따옴표와 퍼센트만 처리한다.
		s = strings.ReplaceAll(s, `%`, `%%`)
		s = strings.ReplaceAll(s, `"`, `""`)
		return s
	default:
		return s
	}
}
