// Package testutil provides shared helpers for envsw tests: temp config
// files, pre-populated registries and fake JDK trees on disk.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hbjs97/envsw/internal/config"
)

// TempConfigPath returns a config file path inside a fresh temp directory.
// The file does not exist yet; Store.Load treats that as first run.
func TempConfigPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "config.toml")
}

// SeedConfig writes a config populated with one environment of each type and
// returns its path. Used by CLI and switcher tests that need existing entries.
func SeedConfig(t *testing.T) string {
	t.Helper()

	cfg := config.New()
	require.NoError(t, cfg.AddJavaEnv(config.JavaEnv{
		Name:        "jdk17",
		JavaHome:    "/usr/lib/jvm/java-17-openjdk",
		Description: "OpenJDK 17",
		Source:      config.SourceManual,
	}))
	require.NoError(t, cfg.AddJavaEnv(config.JavaEnv{
		Name:     "jdk21",
		JavaHome: "/usr/lib/jvm/java-21-openjdk",
		Source:   config.SourceManual,
	}))
	require.NoError(t, cfg.AddLlmEnv(config.LlmEnv{
		Name:     "gpt",
		Provider: "openai",
		APIKey:   "${OPENAI_API_KEY}",
		Model:    "gpt-4o",
	}))

	path := TempConfigPath(t)
	store := &config.Store{Path: path}
	require.NoError(t, store.Save(cfg))
	return path
}

// FakeJDK creates a minimal JDK layout (release file + bin/java) under dir
// and returns the JDK home path. vendor may be empty.
func FakeJDK(t *testing.T, dir, name, version, vendor string) string {
	t.Helper()

	home := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Join(home, "bin"), 0755))

	release := "JAVA_VERSION=\"" + version + "\"\n"
	if vendor != "" {
		release += "IMPLEMENTOR=\"" + vendor + "\"\n"
	}
	require.NoError(t, os.WriteFile(filepath.Join(home, "release"), []byte(release), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(home, "bin", "java"), []byte("#!/bin/sh\n"), 0755))
	return home
}
