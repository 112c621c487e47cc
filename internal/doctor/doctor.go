// Package doctor는 envsw 설정과 등록된 환경의 상태를 진단한다.
// 진단은 전부 읽기 전용이고 설정을 고치지 않는다. 고칠 방법은 Fix로 안내만 한다.
package doctor

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hbjs97/envsw/internal/config"
	"github.com/hbjs97/envsw/internal/setup"
	"github.com/hbjs97/envsw/internal/shell"
)

// Status는 진단 결과 상태다.
type Status string

const (
	// StatusOK는 정상 상태다.
	StatusOK Status = "OK"
	// StatusWarn는 경고 상태다.
	StatusWarn Status = "WARN"
	// StatusFail는 실패 상태다.
	StatusFail Status = "FAIL"
)

// DiagResult는 하나의 진단 결과다.
type DiagResult struct {
	Name    string
	Status  Status
	Message string
	Fix     string
}

// CheckConfig는 설정 파일의 존재, 파싱 가능 여부, 권한을 확인한다.
func CheckConfig(store *config.Store) []DiagResult {
	var results []DiagResult

	if _, err := os.Stat(store.Path); os.IsNotExist(err) {
		results = append(results, DiagResult{
			Name:    "config",
			Status:  StatusWarn,
			Message: fmt.Sprintf("설정 파일 없음: %s (기본값으로 동작)", store.Path),
			Fix:     "envsw setup 실행",
		})
		return results
	}

	if _, err := store.Load(); err != nil {
		results = append(results, DiagResult{
			Name:    "config",
			Status:  StatusFail,
			Message: err.Error(),
			Fix:     "설정 파일 수정 또는 삭제 후 envsw setup 재실행",
		})
		return results
	}
	results = append(results, DiagResult{
		Name:    "config",
		Status:  StatusOK,
		Message: store.Path,
	})

	if err := config.ValidateFilePermissions(store.Path); err != nil {
		results = append(results, DiagResult{
			Name:    "config_perm",
			Status:  StatusWarn,
			Message: err.Error(),
			Fix:     fmt.Sprintf("chmod 600 %s", store.Path),
		})
	} else {
		results = append(results, DiagResult{
			Name:    "config_perm",
			Status:  StatusOK,
			Message: "0600",
		})
	}
	return results
}

// CheckJavaEnvs는 등록된 Java 환경의 JAVA_HOME과 bin/java 실재 여부를 확인한다.
func CheckJavaEnvs(cfg *config.Config) []DiagResult {
	var results []DiagResult
	for _, env := range cfg.JavaEnvironments {
		name := "java:" + env.Name
		info, err := os.Stat(env.JavaHome)
		if err != nil || !info.IsDir() {
			results = append(results, DiagResult{
				Name:    name,
				Status:  StatusFail,
				Message: fmt.Sprintf("JAVA_HOME 없음: %s", env.JavaHome),
				Fix:     fmt.Sprintf("envsw java remove %s 후 재등록", env.Name),
			})
			continue
		}
		exe := filepath.Join(env.JavaHome, "bin", "java")
		if _, err := os.Stat(exe); err != nil {
			if _, werr := os.Stat(exe + ".exe"); werr != nil {
				results = append(results, DiagResult{
					Name:    name,
					Status:  StatusWarn,
					Message: fmt.Sprintf("bin/java 없음: %s", env.JavaHome),
					Fix:     "설치 경로 확인",
				})
				continue
			}
		}
		results = append(results, DiagResult{
			Name:    name,
			Status:  StatusOK,
			Message: env.JavaHome,
		})
	}
	return results
}

// CheckCcEnvs는 CC 환경의 플레이스홀더가 현재 환경에서 해석되는지 확인한다.
// 키 값 자체는 출력하지 않는다.
func CheckCcEnvs(cfg *config.Config, gen *shell.Generator) []DiagResult {
	var results []DiagResult
	for _, env := range cfg.CcEnvironments {
		name := "cc:" + env.Name
		_, keyWarn := gen.Resolve(env.APIKey)
		_, urlWarn := gen.Resolve(env.BaseURL)
		if len(keyWarn)+len(urlWarn) > 0 {
			warns := append(keyWarn, urlWarn...)
			results = append(results, DiagResult{
				Name:    name,
				Status:  StatusWarn,
				Message: warns[0],
				Fix:     "해당 환경변수를 셸 프로필에서 설정",
			})
			continue
		}
		results = append(results, DiagResult{
			Name:    name,
			Status:  StatusOK,
			Message: env.Model,
		})
	}
	return results
}

// CheckShellHook은 감지된 셸의 rc 파일에 hook이 설치되어 있는지 확인한다.
func CheckShellHook() DiagResult {
	t, err := shell.ParseType(setup.DetectShell())
	if err != nil {
		return DiagResult{
			Name:    "shell_hook",
			Status:  StatusWarn,
			Message: "셸 감지 실패",
		}
	}
	rc := setup.ShellRCPath(t)
	if rc == "" || !setup.HookInstalled(rc) {
		return DiagResult{
			Name:    "shell_hook",
			Status:  StatusWarn,
			Message: fmt.Sprintf("%s hook 미설치", t),
			Fix:     fmt.Sprintf("envsw hook --shell %s --install 실행", t),
		}
	}
	return DiagResult{
		Name:    "shell_hook",
		Status:  StatusOK,
		Message: rc,
	}
}

// RunAll은 전체 진단을 순서대로 수행한다. 설정 로드 실패 시 환경 진단은 생략된다.
func RunAll(store *config.Store, gen *shell.Generator) []DiagResult {
	results := CheckConfig(store)

	cfg, err := store.Load()
	if err == nil {
		results = append(results, CheckJavaEnvs(cfg)...)
		results = append(results, CheckCcEnvs(cfg, gen)...)
	}
	results = append(results, CheckShellHook())
	return results
}
