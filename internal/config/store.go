package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// 저장소 sentinel error.
var (
	// ErrParse는 설정 파일 내용이 올바르지 않을 때 반환된다. 자동 복구하지 않는다.
	ErrParse = errors.New("설정 파일 파싱 실패")
	// ErrIO는 설정 파일을 읽거나 쓸 수 없을 때 반환된다.
	ErrIO = errors.New("설정 파일 입출력 실패")
)

// Store는 설정 파일 하나를 소유하는 저장소다.
// 모든 컴포넌트는 Store를 명시적으로 전달받는다. 숨은 싱글턴은 없다.
type Store struct {
	Path string
}

// DefaultPath는 사용자별 기본 설정 파일 경로를 반환한다.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "envsw", "config.toml")
	}
	return filepath.Join(home, ".config", "envsw", "config.toml")
}

// Load는 설정 파일을 읽는다. 파일이 없으면 기본 설정을 반환한다 (최초 실행).
func (s *Store) Load() (*Config, error) {
	data, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w: %v", ErrIO, err)
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config.Load: %w: %v", ErrParse, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config.Load: %w: %v", ErrParse, err)
	}
	return &cfg, nil
}

// Save는 설정을 원자적으로 기록한다: 같은 디렉토리의 임시 파일에 직렬화한 뒤
// rename으로 교체하므로 중간 상태가 관측되지 않는다.
func (s *Store) Save(cfg *Config) error {
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("config.Save: %w: %v", ErrIO, err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("config.Save: 직렬화 실패: %v", err)
	}

	tmp, err := os.CreateTemp(dir, "config-*.toml.tmp")
	if err != nil {
		return fmt.Errorf("config.Save: %w: %v", ErrIO, err)
	}
	defer os.Remove(tmp.Name()) // rename 성공 시에는 이미 없음

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("config.Save: %w: %v", ErrIO, err)
	}
	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		return fmt.Errorf("config.Save: %w: %v", ErrIO, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("config.Save: %w: %v", ErrIO, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("config.Save: %w: %v", ErrIO, err)
	}
	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		return fmt.Errorf("config.Save: %w: %v", ErrIO, err)
	}
	return nil
}

// Sync는 구버전 스키마 파일을 현재 스키마로 보완해 다시 쓴다.
// 기존 항목은 절대 버리지 않고, 빠진 기본 CC 프로필과 기본 포인터만 채운다.
// 실제로 기록했는지를 반환한다.
func (s *Store) Sync() (bool, error) {
	cfg, err := s.Load()
	if err != nil {
		return false, fmt.Errorf("config.Sync: %w", err)
	}

	updated := false
	for _, def := range defaultCcEnvironments() {
		if _, err := cfg.GetCcEnv(def.Name); err != nil {
			cfg.CcEnvironments = append(cfg.CcEnvironments, def)
			updated = true
		}
	}
	if cfg.DefaultCcEnv == "" && len(cfg.CcEnvironments) > 0 {
		cfg.DefaultCcEnv = cfg.CcEnvironments[0].Name
		updated = true
	}
	if cfg.Version != CurrentVersion {
		cfg.Version = CurrentVersion
		updated = true
	}

	if _, err := os.Stat(s.Path); os.IsNotExist(err) {
		updated = true // 최초 실행: 기본 설정을 파일로 남긴다
	}
	if !updated {
		return false, nil
	}
	if err := s.Save(cfg); err != nil {
		return false, fmt.Errorf("config.Sync: %w", err)
	}
	return true, nil
}

// ValidateFilePermissions는 파일 권한이 0600보다 넓으면 에러를 반환한다.
func ValidateFilePermissions(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("config.ValidateFilePermissions: %w", err)
	}
	perm := info.Mode().Perm()
	if perm&0077 != 0 {
		return fmt.Errorf("config.ValidateFilePermissions: %s 권한이 %o (0600 필요)", path, perm)
	}
	return nil
}
