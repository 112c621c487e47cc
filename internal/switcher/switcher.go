// Package switcher orchestrates use/default/current/remove semantics on top of
// the configuration store and the script generator. One Switcher lives per CLI
// invocation; there is no resident state between invocations.
package switcher

import (
	"errors"
	"fmt"

	"github.com/hbjs97/envsw/internal/config"
	"github.com/hbjs97/envsw/internal/scanner"
	"github.com/hbjs97/envsw/internal/shell"
)

// Kind는 환경 타입 선택자다.
type Kind string

const (
	// Java는 JDK 환경이다.
	Java Kind = "java"
	// Cc는 Claude Code 환경이다.
	Cc Kind = "cc"
	// Llm은 범용 LLM 환경이다.
	Llm Kind = "llm"
)

// ErrDefaultUnsupported는 기본 환경 개념이 없는 타입(llm)에 대한
// default 조작 시 반환된다.
var ErrDefaultUnsupported = errors.New("이 타입은 기본 환경을 지원하지 않음")

// ErrNoDefault는 use를 이름 없이 호출했는데 기본 환경이 없을 때 반환된다.
var ErrNoDefault = errors.New("기본 환경이 설정되지 않음")

// Switcher는 명령 하나를 처리하는 파사드다. 읽기 명령은 절대 저장하지 않는다.
type Switcher struct {
	store *config.Store
	gen   *shell.Generator
}

// New는 Switcher를 생성한다.
func New(store *config.Store, gen *shell.Generator) *Switcher {
	return &Switcher{store: store, gen: gen}
}

// UseResult는 use 명령의 결과다. 경고는 스크립트와 분리해 전달된다.
type UseResult struct {
	Name     string
	Script   string
	Warnings []string
}

// Use는 세션 한정 활성화 스크립트를 생성한다. 저장된 기본 환경은 건드리지
// 않는다. name이 비어 있으면 기본 환경을 쓴다 (셸 hook 자동 적용 경로).
func (s *Switcher) Use(kind Kind, name string, t shell.Type) (*UseResult, error) {
	cfg, err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("switcher.Use: %w", err)
	}

	if name == "" {
		switch kind {
		case Java:
			name = cfg.DefaultJavaEnv
		case Cc:
			name = cfg.DefaultCcEnv
		case Llm:
			return nil, fmt.Errorf("switcher.Use: %w", ErrDefaultUnsupported)
		}
		if name == "" {
			return nil, fmt.Errorf("switcher.Use: %w", ErrNoDefault)
		}
	}

	var script string
	var warnings []string
	switch kind {
	case Java:
		env, err := cfg.GetJavaEnv(name)
		if err != nil {
			return nil, fmt.Errorf("switcher.Use: %w", err)
		}
		script, warnings, err = s.gen.JavaSwitch(env, t)
		if err != nil {
			return nil, fmt.Errorf("switcher.Use: %w", err)
		}
	case Cc:
		env, err := cfg.GetCcEnv(name)
		if err != nil {
			return nil, fmt.Errorf("switcher.Use: %w", err)
		}
		script, warnings, err = s.gen.CcSwitch(env, t)
		if err != nil {
			return nil, fmt.Errorf("switcher.Use: %w", err)
		}
	case Llm:
		env, err := cfg.GetLlmEnv(name)
		if err != nil {
			return nil, fmt.Errorf("switcher.Use: %w", err)
		}
		script, warnings, err = s.gen.LlmSwitch(env, t)
		if err != nil {
			return nil, fmt.Errorf("switcher.Use: %w", err)
		}
	}
	return &UseResult{Name: name, Script: script, Warnings: warnings}, nil
}

// SetDefault는 기본 환경을 지정하고 즉시 저장한다.
func (s *Switcher) SetDefault(kind Kind, name string) error {
	cfg, err := s.store.Load()
	if err != nil {
		return fmt.Errorf("switcher.SetDefault: %w", err)
	}
	switch kind {
	case Java:
		err = cfg.SetDefaultJavaEnv(name)
	case Cc:
		err = cfg.SetDefaultCcEnv(name)
	default:
		return fmt.Errorf("switcher.SetDefault: %w", ErrDefaultUnsupported)
	}
	if err != nil {
		return fmt.Errorf("switcher.SetDefault: %w", err)
	}
	if err := s.store.Save(cfg); err != nil {
		return fmt.Errorf("switcher.SetDefault: %w", err)
	}
	return nil
}

// DefaultName은 저장된 기본 환경 이름을 반환한다. 없으면 빈 문자열 (읽기 전용).
func (s *Switcher) DefaultName(kind Kind) (string, error) {
	cfg, err := s.store.Load()
	if err != nil {
		return "", fmt.Errorf("switcher.DefaultName: %w", err)
	}
	switch kind {
	case Java:
		return cfg.DefaultJavaEnv, nil
	case Cc:
		return cfg.DefaultCcEnv, nil
	default:
		return "", fmt.Errorf("switcher.DefaultName: %w", ErrDefaultUnsupported)
	}
}

// ClearDefault는 기본 환경 지정을 해제하고 저장한다.
func (s *Switcher) ClearDefault(kind Kind) error {
	cfg, err := s.store.Load()
	if err != nil {
		return fmt.Errorf("switcher.ClearDefault: %w", err)
	}
	switch kind {
	case Java:
		cfg.ClearDefaultJavaEnv()
	case Cc:
		cfg.ClearDefaultCcEnv()
	default:
		return fmt.Errorf("switcher.ClearDefault: %w", ErrDefaultUnsupported)
	}
	if err := s.store.Save(cfg); err != nil {
		return fmt.Errorf("switcher.ClearDefault: %w", err)
	}
	return nil
}

// Remove는 환경을 삭제한다. 삭제 대상이 기본 환경이면 포인터 해제까지
// 한 번의 원자적 저장으로 반영된다. Java는 재스캔 부활 방지를 위해
// 삭제 이름을 함께 기록한다.
func (s *Switcher) Remove(kind Kind, name string) error {
	cfg, err := s.store.Load()
	if err != nil {
		return fmt.Errorf("switcher.Remove: %w", err)
	}
	switch kind {
	case Java:
		if err := cfg.RemoveJavaEnv(name); err != nil {
			return fmt.Errorf("switcher.Remove: %w", err)
		}
		cfg.AddRemovedJavaName(name)
	case Cc:
		if err := cfg.RemoveCcEnv(name); err != nil {
			return fmt.Errorf("switcher.Remove: %w", err)
		}
	case Llm:
		if err := cfg.RemoveLlmEnv(name); err != nil {
			return fmt.Errorf("switcher.Remove: %w", err)
		}
	}
	if err := s.store.Save(cfg); err != nil {
		return fmt.Errorf("switcher.Remove: %w", err)
	}
	return nil
}

// Current는 활성 환경을 보고한다. 우선순위: 이전에 평가된 활성화 스크립트가
// 남긴 지표 변수 → 저장된 기본 환경. 상태를 바꾸지 않는다.
// source는 "session" 또는 "default", 없으면 빈 값이다.
func (s *Switcher) Current(kind Kind) (name, source string, err error) {
	cfg, err := s.store.Load()
	if err != nil {
		return "", "", fmt.Errorf("switcher.Current: %w", err)
	}

	if n := s.sessionCurrent(cfg, kind); n != "" {
		return n, "session", nil
	}

	switch kind {
	case Java:
		return cfg.DefaultJavaEnv, defaultSource(cfg.DefaultJavaEnv), nil
	case Cc:
		return cfg.DefaultCcEnv, defaultSource(cfg.DefaultCcEnv), nil
	default:
		return "", "", nil
	}
}

func defaultSource(name string) string {
	if name == "" {
		return ""
	}
	return "default"
}

// sessionCurrent는 호출 셸에 남은 흔적으로 세션 환경을 역추적한다.
// 추적 변수(ENVSW_CURRENT_*)가 1순위, Java는 JAVA_HOME, CC는 해석된
// 토큰+베이스 URL 매칭이 2순위다.
func (s *Switcher) sessionCurrent(cfg *config.Config, kind Kind) string {
	if n, ok := s.gen.Ambient("ENVSW_CURRENT_" + kindUpper(kind)); ok && n != "" {
		return n
	}
	switch kind {
	case Java:
		home, ok := s.gen.Ambient("JAVA_HOME")
		if !ok || home == "" {
			return ""
		}
		for _, env := range cfg.JavaEnvironments {
			if env.JavaHome == home {
				return env.Name
			}
		}
	case Cc:
		token, _ := s.gen.Ambient("ANTHROPIC_AUTH_TOKEN")
		baseURL, _ := s.gen.Ambient("ANTHROPIC_BASE_URL")
		if token == "" {
			return ""
		}
		for _, env := range cfg.CcEnvironments {
			t, _ := s.gen.Resolve(env.APIKey)
			u, _ := s.gen.Resolve(env.BaseURL)
			if t == token && u == baseURL {
				return env.Name
			}
		}
	}
	return ""
}

func kindUpper(kind Kind) string {
	switch kind {
	case Java:
		return "JAVA"
	case Cc:
		return "CC"
	default:
		return "LLM"
	}
}

// ListEntry는 list 출력 한 줄이다. 저장된 플레이스홀더는 해석하지 않고
// 그대로 노출한다.
type ListEntry struct {
	Name        string
	Detail      string
	Description string
	Default     bool
	Current     bool
}

// List는 삽입 순서대로 환경을 나열한다.
func (s *Switcher) List(kind Kind) ([]ListEntry, error) {
	cfg, err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("switcher.List: %w", err)
	}

	current := s.sessionCurrent(cfg, kind)
	var entries []ListEntry
	switch kind {
	case Java:
		for _, env := range cfg.JavaEnvironments {
			entries = append(entries, ListEntry{
				Name:        env.Name,
				Detail:      env.JavaHome,
				Description: env.Description,
				Default:     env.Name == cfg.DefaultJavaEnv,
				Current:     env.Name == current,
			})
		}
	case Cc:
		for _, env := range cfg.CcEnvironments {
			entries = append(entries, ListEntry{
				Name:        env.Name,
				Detail:      env.Model,
				Description: env.Description,
				Default:     env.Name == cfg.DefaultCcEnv,
				Current:     env.Name == current,
			})
		}
	case Llm:
		for _, env := range cfg.LlmEnvironments {
			entries = append(entries, ListEntry{
				Name:        env.Name,
				Detail:      env.Provider + "/" + env.Model,
				Description: env.Description,
				Current:     env.Name == current,
			})
		}
	}
	return entries, nil
}

// AddJava는 Java 환경을 추가하고 저장한다.
func (s *Switcher) AddJava(env config.JavaEnv) error {
	cfg, err := s.store.Load()
	if err != nil {
		return fmt.Errorf("switcher.AddJava: %w", err)
	}
	if err := cfg.AddJavaEnv(env); err != nil {
		return fmt.Errorf("switcher.AddJava: %w", err)
	}
	// 수동 재등록은 삭제 목록에서 복귀시킨다.
	if cfg.IsJavaNameRemoved(env.Name) {
		kept := cfg.RemovedJavaNames[:0]
		for _, n := range cfg.RemovedJavaNames {
			if n != env.Name {
				kept = append(kept, n)
			}
		}
		cfg.RemovedJavaNames = kept
	}
	if err := s.store.Save(cfg); err != nil {
		return fmt.Errorf("switcher.AddJava: %w", err)
	}
	return nil
}

// AddCc는 CC 환경을 추가하고 저장한다.
func (s *Switcher) AddCc(env config.CcEnv) error {
	cfg, err := s.store.Load()
	if err != nil {
		return fmt.Errorf("switcher.AddCc: %w", err)
	}
	if err := cfg.AddCcEnv(env); err != nil {
		return fmt.Errorf("switcher.AddCc: %w", err)
	}
	if err := s.store.Save(cfg); err != nil {
		return fmt.Errorf("switcher.AddCc: %w", err)
	}
	return nil
}

// AddLlm은 LLM 환경을 추가하고 저장한다.
func (s *Switcher) AddLlm(env config.LlmEnv) error {
	cfg, err := s.store.Load()
	if err != nil {
		return fmt.Errorf("switcher.AddLlm: %w", err)
	}
	if err := cfg.AddLlmEnv(env); err != nil {
		return fmt.Errorf("switcher.AddLlm: %w", err)
	}
	if err := s.store.Save(cfg); err != nil {
		return fmt.Errorf("switcher.AddLlm: %w", err)
	}
	return nil
}

// ScanReport는 scan 명령의 결과 요약이다.
type ScanReport struct {
	Added    []string
	Skipped  []string
	Warnings []string
}

// ScanMerge는 스캐너를 돌려 결과를 레지스트리에 병합한다.
// 실제로 추가된 항목이 있을 때만 저장한다.
func (s *Switcher) ScanMerge(opts scanner.Options) (*ScanReport, error) {
	cfg, err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("switcher.ScanMerge: %w", err)
	}

	res := scanner.Scan(scanner.DefaultRoots(cfg), opts)
	added, skipped := res.MergeInto(cfg)

	report := &ScanReport{
		Added:    added,
		Skipped:  append(res.Skipped, skipped...),
		Warnings: res.Warnings,
	}
	if len(added) > 0 {
		if err := s.store.Save(cfg); err != nil {
			return nil, fmt.Errorf("switcher.ScanMerge: %w", err)
		}
	}
	return report, nil
}
