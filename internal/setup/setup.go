// Package setup handles first-run provisioning: shell detection, rc 파일 경로
// 판정, hook 설치.
package setup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hbjs97/envsw/internal/shell"
)

// hookMarker는 rc 파일에서 설치 여부를 판정하는 문자열이다.
// HookSnippet의 첫 줄 주석과 일치해야 한다.
const hookMarker = "envsw shell integration"

// DetectShell은 현재 사용자의 셸을 감지한다.
func DetectShell() string {
	sh := os.Getenv("SHELL")
	return filepath.Base(sh)
}

// ShellRCPath는 셸별 RC 파일 경로를 반환한다.
func ShellRCPath(t shell.Type) string {
	home, _ := os.UserHomeDir() // 홈 디렉토리 조회 실패 시 빈 문자열
	switch t {
	case shell.Zsh:
		return filepath.Join(home, ".zshrc")
	case shell.Bash:
		return filepath.Join(home, ".bashrc")
	case shell.Fish:
		return filepath.Join(home, ".config", "fish", "conf.d", "envsw.fish")
	default:
		return ""
	}
}

// InstallShellHook은 셸 RC 파일에 envsw hook을 추가한다.
// 이미 설치되어 있으면 건너뛴다.
func InstallShellHook(t shell.Type, rcPath string) error {
	snippet := shell.HookSnippet(t)
	if snippet == "" {
		return fmt.Errorf("setup.InstallShellHook: 지원하지 않는 셸: %s", t)
	}
	if rcPath == "" {
		return fmt.Errorf("setup.InstallShellHook: rc 파일 경로를 알 수 없음: %s", t)
	}

	existing, _ := os.ReadFile(rcPath) // 파일이 없으면 빈 바이트
	if strings.Contains(string(existing), hookMarker) {
		return nil // 이미 설치됨
	}

	if err := os.MkdirAll(filepath.Dir(rcPath), 0755); err != nil {
		return fmt.Errorf("setup.InstallShellHook: %w", err)
	}

	f, err := os.OpenFile(rcPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("setup.InstallShellHook: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "\n%s", snippet); err != nil {
		return fmt.Errorf("setup.InstallShellHook: %w", err)
	}

	return nil
}

// HookInstalled는 rc 파일에 hook이 이미 들어 있는지 확인한다.
func HookInstalled(rcPath string) bool {
	data, err := os.ReadFile(rcPath)
	if err != nil {
		return false
	}
	return strings.Contains(string(data), hookMarker)
}
