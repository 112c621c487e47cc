package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hbjs97/envsw/internal/setup"
	"github.com/hbjs97/envsw/internal/shell"
)

func (a *App) newSetupCmd() *cobra.Command {
	var noHook bool

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "envsw 초기 설정을 시작한다",
		Long: `설정 파일을 기본값으로 생성하고 (이미 있으면 스키마만 보완),
감지된 셸의 rc 파일에 hook을 설치한다.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSetup(cmd, noHook)
		},
	}
	cmd.Flags().BoolVar(&noHook, "no-hook", false, "셸 hook 설치를 건너뜀")
	return cmd
}

func (a *App) runSetup(cmd *cobra.Command, noHook bool) error {
	out := cmd.OutOrStdout()

	_, statErr := os.Stat(a.CfgPath)
	existed := statErr == nil

	written, err := a.store().Sync()
	if err != nil {
		return fmt.Errorf("cli.setup: %w", err)
	}
	switch {
	case !existed && written:
		fmt.Fprintf(out, "설정 파일이 생성되었습니다: %s\n", a.CfgPath)
	case written:
		fmt.Fprintf(out, "설정 파일이 갱신되었습니다: %s\n", a.CfgPath)
	default:
		fmt.Fprintf(out, "설정 파일이 이미 최신입니다: %s\n", a.CfgPath)
	}

	if noHook {
		return nil
	}
	t, err := shell.ParseType(setup.DetectShell())
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "경고: 셸 감지 실패, hook 설치 생략 (envsw hook --install 참고)\n")
		return nil
	}
	rcPath := setup.ShellRCPath(t)
	if rcPath == "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "경고: %s는 hook 자동 설치 미지원\n", t)
		return nil
	}
	if err := setup.InstallShellHook(t, rcPath); err != nil {
		return fmt.Errorf("cli.setup: %w", err)
	}
	fmt.Fprintf(out, "hook 설치됨: %s\n", rcPath)
	fmt.Fprintln(out, "새 셸을 열거나 rc 파일을 다시 로드하면 기본 환경이 적용됩니다.")
	return nil
}
