package config

import (
	"errors"
	"fmt"
)

// 레지스트리 공통 sentinel error.
var (
	// ErrNotFound는 이름에 해당하는 환경이 없을 때 반환된다.
	ErrNotFound = errors.New("환경을 찾을 수 없음")
	// ErrDuplicate는 같은 이름의 환경이 이미 있을 때 반환된다.
	ErrDuplicate = errors.New("같은 이름의 환경이 이미 존재함")
)

// Source는 Java 환경이 등록된 경위다.
type Source string

const (
	// SourceManual은 사용자가 직접 추가한 환경이다.
	SourceManual Source = "manual"
	// SourceScanned는 스캐너가 발견해 병합한 환경이다.
	SourceScanned Source = "scanned"
)

// JavaEnv는 하나의 JDK 설치를 가리키는 환경이다.
type JavaEnv struct {
	Name        string `toml:"name"`
	JavaHome    string `toml:"java_home"`
	Description string `toml:"description,omitempty"`
	Source      Source `toml:"source,omitempty"`
}

// CcEnv는 Claude Code 호환 API 프로필이다.
// APIKey와 BaseURL에는 ${VAR} 플레이스홀더가 올 수 있으며, 저장 시에는 그대로 보존된다.
type CcEnv struct {
	Name        string `toml:"name"`
	Provider    string `toml:"provider"`
	APIKey      string `toml:"api_key"`
	BaseURL     string `toml:"base_url"`
	Model       string `toml:"model"`
	Description string `toml:"description,omitempty"`
}

// LlmEnv는 범용 LLM 프로바이더 프로필이다.
type LlmEnv struct {
	Name        string   `toml:"name"`
	Provider    string   `toml:"provider"`
	APIKey      string   `toml:"api_key"`
	BaseURL     string   `toml:"base_url,omitempty"`
	Model       string   `toml:"model,omitempty"`
	Temperature *float64 `toml:"temperature,omitempty"`
	MaxTokens   *int     `toml:"max_tokens,omitempty"`
	Description string   `toml:"description,omitempty"`
}

// Config는 envsw 설정 파일의 최상위 구조체다.
// 환경 목록은 삽입 순서를 유지하며, 타입별로 이름이 유일해야 한다.
type Config struct {
	Version             int       `toml:"version"`
	JavaEnvironments    []JavaEnv `toml:"java_environments,omitempty"`
	CcEnvironments      []CcEnv   `toml:"cc_environments,omitempty"`
	LlmEnvironments     []LlmEnv  `toml:"llm_environments,omitempty"`
	DefaultJavaEnv      string    `toml:"default_java_env,omitempty"`
	DefaultCcEnv        string    `toml:"default_cc_env,omitempty"`
	CustomJavaScanPaths []string  `toml:"custom_java_scan_paths,omitempty"`
	RemovedJavaNames    []string  `toml:"removed_java_names,omitempty"`
}

// CurrentVersion은 현재 스키마 버전이다.
const CurrentVersion = 1

// defaultCcEnvironments는 최초 실행 시 제공되는 기본 CC 프로필이다.
// API 키는 플레이스홀더로 저장되고 스크립트 생성 시점에 해석된다.
func defaultCcEnvironments() []CcEnv {
	return []CcEnv{
		{
			Name:        "anthropic-cc",
			Provider:    "anthropic",
			APIKey:      "${ANTHROPIC_API_KEY}",
			BaseURL:     "https://api.anthropic.com",
			Model:       "claude-sonnet-4-5",
			Description: "Anthropic Claude Code",
		},
		{
			Name:        "glmcc",
			Provider:    "anthropic",
			APIKey:      "${GLM_API_KEY}",
			BaseURL:     "https://open.bigmodel.cn/api/paas/v4",
			Model:       "glm-4.6",
			Description: "GLM Claude Code",
		},
		{
			Name:        "kimicc",
			Provider:    "anthropic",
			APIKey:      "${KIMI_API_KEY}",
			BaseURL:     "https://api.moonshot.cn/anthropic",
			Model:       "kimi-k2-turbo-preview",
			Description: "Kimi Claude Code",
		},
	}
}

// New는 기본 설정을 생성한다.
func New() *Config {
	return &Config{
		Version:        CurrentVersion,
		CcEnvironments: defaultCcEnvironments(),
		DefaultCcEnv:   "anthropic-cc",
	}
}

// --- Java 환경 ---

// GetJavaEnv는 이름으로 Java 환경을 찾는다.
func (c *Config) GetJavaEnv(name string) (*JavaEnv, error) {
	for i := range c.JavaEnvironments {
		if c.JavaEnvironments[i].Name == name {
			return &c.JavaEnvironments[i], nil
		}
	}
	return nil, fmt.Errorf("config.GetJavaEnv: java 환경 %q: %w", name, ErrNotFound)
}

// AddJavaEnv는 Java 환경을 추가한다. 이름이 겹치면 ErrDuplicate.
func (c *Config) AddJavaEnv(env JavaEnv) error {
	if _, err := c.GetJavaEnv(env.Name); err == nil {
		return fmt.Errorf("config.AddJavaEnv: java 환경 %q: %w", env.Name, ErrDuplicate)
	}
	if env.Source == "" {
		env.Source = SourceManual
	}
	c.JavaEnvironments = append(c.JavaEnvironments, env)
	return nil
}

// RemoveJavaEnv는 Java 환경을 삭제한다.
// 삭제 대상이 기본 환경이면 기본 포인터도 함께 비운다.
func (c *Config) RemoveJavaEnv(name string) error {
	kept := c.JavaEnvironments[:0]
	removed := false
	for _, env := range c.JavaEnvironments {
		if env.Name == name {
			removed = true
			continue
		}
		kept = append(kept, env)
	}
	if !removed {
		return fmt.Errorf("config.RemoveJavaEnv: java 환경 %q: %w", name, ErrNotFound)
	}
	c.JavaEnvironments = kept
	if c.DefaultJavaEnv == name {
		c.DefaultJavaEnv = ""
	}
	return nil
}

// SetDefaultJavaEnv는 기본 Java 환경을 지정한다. 존재하지 않는 이름이면 ErrNotFound.
func (c *Config) SetDefaultJavaEnv(name string) error {
	if _, err := c.GetJavaEnv(name); err != nil {
		return fmt.Errorf("config.SetDefaultJavaEnv: %w", err)
	}
	c.DefaultJavaEnv = name
	return nil
}

// ClearDefaultJavaEnv는 기본 Java 환경 지정을 해제한다.
func (c *Config) ClearDefaultJavaEnv() {
	c.DefaultJavaEnv = ""
}

// AddRemovedJavaName은 삭제된 Java 환경 이름을 기록해 재스캔 시 부활을 막는다.
func (c *Config) AddRemovedJavaName(name string) {
	for _, n := range c.RemovedJavaNames {
		if n == name {
			return
		}
	}
	c.RemovedJavaNames = append(c.RemovedJavaNames, name)
}

// IsJavaNameRemoved는 이름이 삭제 목록에 있는지 확인한다.
func (c *Config) IsJavaNameRemoved(name string) bool {
	for _, n := range c.RemovedJavaNames {
		if n == name {
			return true
		}
	}
	return false
}

// --- CC 환경 ---

// GetCcEnv는 이름으로 CC 환경을 찾는다.
func (c *Config) GetCcEnv(name string) (*CcEnv, error) {
	for i := range c.CcEnvironments {
		if c.CcEnvironments[i].Name == name {
			return &c.CcEnvironments[i], nil
		}
	}
	return nil, fmt.Errorf("config.GetCcEnv: cc 환경 %q: %w", name, ErrNotFound)
}

// AddCcEnv는 CC 환경을 추가한다.
func (c *Config) AddCcEnv(env CcEnv) error {
	if _, err := c.GetCcEnv(env.Name); err == nil {
		return fmt.Errorf("config.AddCcEnv: cc 환경 %q: %w", env.Name, ErrDuplicate)
	}
	c.CcEnvironments = append(c.CcEnvironments, env)
	return nil
}

// RemoveCcEnv는 CC 환경을 삭제한다. 기본 환경이면 포인터도 비운다.
func (c *Config) RemoveCcEnv(name string) error {
	kept := c.CcEnvironments[:0]
	removed := false
	for _, env := range c.CcEnvironments {
		if env.Name == name {
			removed = true
			continue
		}
		kept = append(kept, env)
	}
	if !removed {
		return fmt.Errorf("config.RemoveCcEnv: cc 환경 %q: %w", name, ErrNotFound)
	}
	c.CcEnvironments = kept
	if c.DefaultCcEnv == name {
		c.DefaultCcEnv = ""
	}
	return nil
}

// SetDefaultCcEnv는 기본 CC 환경을 지정한다.
func (c *Config) SetDefaultCcEnv(name string) error {
	if _, err := c.GetCcEnv(name); err != nil {
		return fmt.Errorf("config.SetDefaultCcEnv: %w", err)
	}
	c.DefaultCcEnv = name
	return nil
}

// ClearDefaultCcEnv는 기본 CC 환경 지정을 해제한다.
func (c *Config) ClearDefaultCcEnv() {
	c.DefaultCcEnv = ""
}

// --- LLM 환경 (기본 환경 개념 없음) ---

// GetLlmEnv는 이름으로 LLM 환경을 찾는다.
func (c *Config) GetLlmEnv(name string) (*LlmEnv, error) {
	for i := range c.LlmEnvironments {
		if c.LlmEnvironments[i].Name == name {
			return &c.LlmEnvironments[i], nil
		}
	}
	return nil, fmt.Errorf("config.GetLlmEnv: llm 환경 %q: %w", name, ErrNotFound)
}

// AddLlmEnv는 LLM 환경을 추가한다.
func (c *Config) AddLlmEnv(env LlmEnv) error {
	if _, err := c.GetLlmEnv(env.Name); err == nil {
		return fmt.Errorf("config.AddLlmEnv: llm 환경 %q: %w", env.Name, ErrDuplicate)
	}
	c.LlmEnvironments = append(c.LlmEnvironments, env)
	return nil
}

// RemoveLlmEnv는 LLM 환경을 삭제한다.
func (c *Config) RemoveLlmEnv(name string) error {
	kept := c.LlmEnvironments[:0]
	removed := false
	for _, env := range c.LlmEnvironments {
		if env.Name == name {
			removed = true
			continue
		}
		kept = append(kept, env)
	}
	if !removed {
		return fmt.Errorf("config.RemoveLlmEnv: llm 환경 %q: %w", name, ErrNotFound)
	}
	c.LlmEnvironments = kept
	return nil
}

// validate는 레지스트리 불변식을 검사한다: 타입별 이름 유일성,
// 기본 포인터가 실제 존재하는 환경을 가리킬 것.
func (c *Config) validate() error {
	seen := make(map[string]bool)
	check := func(kind, name string) error {
		key := kind + "/" + name
		if seen[key] {
			return fmt.Errorf("config.validate: %s 환경 이름 중복: %s", kind, name)
		}
		seen[key] = true
		return nil
	}
	for _, env := range c.JavaEnvironments {
		if err := check("java", env.Name); err != nil {
			return err
		}
	}
	for _, env := range c.CcEnvironments {
		if err := check("cc", env.Name); err != nil {
			return err
		}
	}
	for _, env := range c.LlmEnvironments {
		if err := check("llm", env.Name); err != nil {
			return err
		}
	}
	if c.DefaultJavaEnv != "" && !seen["java/"+c.DefaultJavaEnv] {
		return fmt.Errorf("config.validate: default_java_env가 없는 환경을 가리킴: %s", c.DefaultJavaEnv)
	}
	if c.DefaultCcEnv != "" && !seen["cc/"+c.DefaultCcEnv] {
		return fmt.Errorf("config.validate: default_cc_env가 없는 환경을 가리킴: %s", c.DefaultCcEnv)
	}
	return nil
}
