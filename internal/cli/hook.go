package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hbjs97/envsw/internal/setup"
	"github.com/hbjs97/envsw/internal/shell"
)

func (a *App) newHookCmd() *cobra.Command {
	var shellFlag string
	var install bool

	cmd := &cobra.Command{
		Use:   "hook",
		Short: "셸 hook 스니펫을 출력하거나 rc 파일에 설치한다",
		Long: `hook은 셸 시작 시 저장된 기본 환경을 자동 적용하는 스니펫이다.
--install 없이 실행하면 스니펫만 출력하므로 rc 파일에 직접 붙여 넣을 수 있다.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := resolveShell(shellFlag)
			if err != nil {
				return err
			}
			snippet := shell.HookSnippet(t)
			if snippet == "" {
				return fmt.Errorf("cli.hook: %w: %s", shell.ErrUnsupported, t)
			}

			if !install {
				fmt.Fprint(cmd.OutOrStdout(), snippet)
				return nil
			}

			rcPath := setup.ShellRCPath(t)
			if err := setup.InstallShellHook(t, rcPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "hook 설치됨: %s\n", rcPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&shellFlag, "shell", "", "대상 셸 (bash, zsh, fish, powershell)")
	cmd.Flags().BoolVar(&install, "install", false, "rc 파일에 hook을 추가")
	return cmd
}
