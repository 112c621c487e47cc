package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hbjs97/envsw/internal/config"
)

func TestStoreLoad_MissingFileReturnsDefaults(t *testing.T) {
	store := &config.Store{Path: filepath.Join(t.TempDir(), "config.toml")}

	cfg, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, config.CurrentVersion, cfg.Version)

	// 최초 실행이어도 기본 CC 프로필은 보여야 한다
	_, err = cfg.GetCcEnv("anthropic-cc")
	assert.NoError(t, err)

	// 파일은 생성되지 않는다 (읽기 경로는 쓰지 않음)
	_, statErr := os.Stat(store.Path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestStoreSave_WritesValidTOML(t *testing.T) {
	store := &config.Store{Path: filepath.Join(t.TempDir(), "config.toml")}

	cfg := config.New()
	require.NoError(t, cfg.AddJavaEnv(config.JavaEnv{
		Name:        "jdk17",
		JavaHome:    "/usr/lib/jvm/java-17-openjdk",
		Description: "OpenJDK 17",
		Source:      config.SourceManual,
	}))
	require.NoError(t, cfg.SetDefaultJavaEnv("jdk17"))

	require.NoError(t, store.Save(cfg))

	// 파일 권한 0600 확인
	info, err := os.Stat(store.Path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	// Load로 round-trip 검증
	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "jdk17", loaded.DefaultJavaEnv)
	env, err := loaded.GetJavaEnv("jdk17")
	require.NoError(t, err)
	assert.Equal(t, "/usr/lib/jvm/java-17-openjdk", env.JavaHome)
	assert.Equal(t, config.SourceManual, env.Source)
}

func TestStoreSave_CreatesParentDir(t *testing.T) {
	dir := t.TempDir()
	store := &config.Store{Path: filepath.Join(dir, "a", "b", "config.toml")}

	require.NoError(t, store.Save(config.New()))

	info, err := os.Stat(filepath.Join(dir, "a", "b"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestStoreSave_NoTempFileLeftBehind(t *testing.T) {
	dir := t.TempDir()
	store := &config.Store{Path: filepath.Join(dir, "config.toml")}
	require.NoError(t, store.Save(config.New()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "config.toml", entries[0].Name())
}

func TestStoreLoad_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("invalid toml [[["), 0600))

	store := &config.Store{Path: path}
	_, err := store.Load()
	assert.ErrorIs(t, err, config.ErrParse)
}

func TestStoreLoad_DuplicateNamesRejected(t *testing.T) {
	content := `version = 1

[[java_environments]]
name = "jdk17"
java_home = "/opt/a"

[[java_environments]]
name = "jdk17"
java_home = "/opt/b"
`
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	store := &config.Store{Path: path}
	_, err := store.Load()
	assert.ErrorIs(t, err, config.ErrParse)
	// 디코딩 실패와 같은 형태로 호출 지점이 앞에 붙는다
	assert.Contains(t, err.Error(), "config.Load:")
}

func TestStoreSave_PlaceholderPreservedRaw(t *testing.T) {
	t.Setenv("MY_SECRET", "actual-value")

	store := &config.Store{Path: filepath.Join(t.TempDir(), "config.toml")}
	cfg := config.New()
	require.NoError(t, cfg.AddCcEnv(config.CcEnv{
		Name:     "custom",
		Provider: "anthropic",
		APIKey:   "${MY_SECRET}",
	}))
	require.NoError(t, store.Save(cfg))

	// 파일에는 플레이스홀더가 그대로 있어야 하고 실제 값이 새면 안 된다
	data, err := os.ReadFile(store.Path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "${MY_SECRET}")
	assert.NotContains(t, string(data), "actual-value")
}

func TestStoreSync_CreatesFileOnFirstRun(t *testing.T) {
	store := &config.Store{Path: filepath.Join(t.TempDir(), "config.toml")}

	written, err := store.Sync()
	require.NoError(t, err)
	assert.True(t, written)

	_, statErr := os.Stat(store.Path)
	assert.NoError(t, statErr)

	// 두 번째 실행은 no-op
	written, err = store.Sync()
	require.NoError(t, err)
	assert.False(t, written)
}

func TestStoreSync_AddsMissingStockProfiles(t *testing.T) {
	content := `version = 1

[[cc_environments]]
name = "glmcc"
provider = "anthropic"
api_key = "${GLM_API_KEY}"
base_url = "https://my-mirror.example.com"
model = "glm-4.6"
`
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	store := &config.Store{Path: path}
	written, err := store.Sync()
	require.NoError(t, err)
	assert.True(t, written)

	cfg, err := store.Load()
	require.NoError(t, err)

	// 빠진 기본 프로필이 추가된다
	_, err = cfg.GetCcEnv("anthropic-cc")
	assert.NoError(t, err)
	_, err = cfg.GetCcEnv("kimicc")
	assert.NoError(t, err)

	// 사용자가 고친 기존 항목은 덮어쓰지 않는다
	glm, err := cfg.GetCcEnv("glmcc")
	require.NoError(t, err)
	assert.Equal(t, "https://my-mirror.example.com", glm.BaseURL)

	// 기본 포인터는 첫 항목으로 채워진다
	assert.Equal(t, "glmcc", cfg.DefaultCcEnv)
}

func TestValidateFilePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 1\n"), 0600))

	assert.NoError(t, config.ValidateFilePermissions(path))

	require.NoError(t, os.Chmod(path, 0644))
	assert.Error(t, config.ValidateFilePermissions(path))
}
