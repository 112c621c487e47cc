package config_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hbjs97/envsw/internal/config"
)

func ExampleStore_Load() {
	dir, _ := os.MkdirTemp("", "envsw-example")
	defer os.RemoveAll(dir)

	store := &config.Store{Path: filepath.Join(dir, "config.toml")}

	// 파일이 없으면 기본 설정이 반환된다
	cfg, _ := store.Load()
	fmt.Println(cfg.DefaultCcEnv)
	// Output: anthropic-cc
}

func ExampleConfig_AddJavaEnv() {
	cfg := config.New()
	_ = cfg.AddJavaEnv(config.JavaEnv{Name: "jdk17", JavaHome: "/usr/lib/jvm/java-17-openjdk"})

	env, _ := cfg.GetJavaEnv("jdk17")
	fmt.Println(env.JavaHome)
	// Output: /usr/lib/jvm/java-17-openjdk
}
