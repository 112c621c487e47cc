package cli

import (
	"github.com/spf13/cobra"

	"github.com/hbjs97/envsw/internal/config"
	"github.com/hbjs97/envsw/internal/shell"
	"github.com/hbjs97/envsw/internal/switcher"
)

// App은 CLI 전체가 공유하는 의존성 묶음이다.
// 테스트에서는 CfgPath를 임시 디렉토리로 바꿔 주입한다.
type App struct {
	CfgPath string
}

// NewApp은 기본 경로를 쓰는 App을 생성한다.
func NewApp() *App {
	return &App{CfgPath: config.DefaultPath()}
}

// NewRootCmd는 기본 App으로 루트 명령을 생성한다.
func NewRootCmd() *cobra.Command {
	return NewApp().NewRootCmd()
}

// NewRootCmd는 envsw CLI의 루트 명령을 생성한다.
func (a *App) NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "envsw",
		Short: "Java / Claude Code / LLM 환경 스위처",
		Long: `envsw는 JDK, Claude Code, LLM 프로바이더 환경을 등록해 두고
셸 활성화 스크립트로 전환하는 도구다. use는 현재 셸 세션에만 적용되고,
default는 새 셸부터 적용된다.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&a.CfgPath, "config", a.CfgPath, "설정 파일 경로")

	cmd.AddCommand(
		a.newJavaCmd(),
		a.newCcCmd(),
		a.newLlmCmd(),
		a.newHookCmd(),
		a.newSetupCmd(),
		a.newSyncCmd(),
		a.newDoctorCmd(),
	)
	return cmd
}

func (a *App) store() *config.Store {
	return &config.Store{Path: a.CfgPath}
}

func (a *App) newSwitcher() *switcher.Switcher {
	return switcher.New(a.store(), shell.NewGenerator())
}
