package config_test

import (
	"path/filepath"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/hbjs97/envsw/internal/config"
)

// 임의의 환경 이름과 경로에 대해 Save→Load round-trip이 값을 보존하는지 확인한다.
func TestStore_RoundTripProperty(t *testing.T) {
	dir := t.TempDir()

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("java env round-trips through TOML", prop.ForAll(
		func(name, home, desc string) bool {
			store := &config.Store{Path: filepath.Join(dir, "config.toml")}
			cfg := config.New()
			if err := cfg.AddJavaEnv(config.JavaEnv{Name: name, JavaHome: home, Description: desc}); err != nil {
				return false
			}
			if err := store.Save(cfg); err != nil {
				return false
			}
			loaded, err := store.Load()
			if err != nil {
				return false
			}
			env, err := loaded.GetJavaEnv(name)
			if err != nil {
				return false
			}
			return env.JavaHome == home && env.Description == desc
		},
		gen.Identifier(),
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.Property("cc api key placeholder survives round-trip verbatim", prop.ForAll(
		func(varName string) bool {
			store := &config.Store{Path: filepath.Join(dir, "config.toml")}
			cfg := config.New()
			key := "${" + varName + "}"
			if err := cfg.AddCcEnv(config.CcEnv{Name: "p", Provider: "anthropic", APIKey: key}); err != nil {
				return false
			}
			if err := store.Save(cfg); err != nil {
				return false
			}
			loaded, err := store.Load()
			if err != nil {
				return false
			}
			env, err := loaded.GetCcEnv("p")
			if err != nil {
				return false
			}
			return env.APIKey == key
		},
		gen.Identifier(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
