package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hbjs97/envsw/internal/shell"
	"github.com/hbjs97/envsw/internal/switcher"
)

// resolveShell은 --shell 플래그 값을 해석한다. 비어 있으면 자동 감지한다.
func resolveShell(flag string) (shell.Type, error) {
	if flag == "" {
		return shell.Detect(), nil
	}
	return shell.ParseType(flag)
}

// printWarnings는 경고를 stderr로 내보낸다. 스크립트는 stdout으로만 나가므로
// eval 대상에 경고가 섞이지 않는다.
func printWarnings(cmd *cobra.Command, warnings []string) {
	for _, w := range warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "경고: %s\n", w)
	}
}

// java / cc / llm이 공유하는 서브커맨드 빌더. 타입별 차이는 kind로만 갈라진다.

func (a *App) newListCmd(kind switcher.Kind) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "등록된 환경을 나열한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := a.newSwitcher().List(kind)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintf(out, "등록된 %s 환경이 없습니다\n", kind)
				return nil
			}
			for _, e := range entries {
				marker := "  "
				if e.Current {
					marker = "* "
				}
				line := marker + e.Name
				if e.Default {
					line += " (default)"
				}
				if e.Detail != "" {
					line += "\t" + e.Detail
				}
				if e.Description != "" {
					line += "\t" + e.Description
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
}

func (a *App) newUseCmd(kind switcher.Kind) *cobra.Command {
	var shellFlag string

	cmd := &cobra.Command{
		Use:   "use [name]",
		Short: "환경 활성화 스크립트를 출력한다 (현재 세션 전용)",
		Long: `활성화 스크립트를 stdout으로 출력한다. 저장된 기본 환경은 바뀌지 않는다.
셸에서 eval "$(envsw ` + string(kind) + ` use <name>)" 형태로 사용한다.
이름을 생략하면 저장된 기본 환경을 적용한다.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := resolveShell(shellFlag)
			if err != nil {
				return err
			}
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			res, err := a.newSwitcher().Use(kind, name, t)
			if err != nil {
				return err
			}
			printWarnings(cmd, res.Warnings)
			fmt.Fprint(cmd.OutOrStdout(), res.Script)
			return nil
		},
	}
	cmd.Flags().StringVar(&shellFlag, "shell", "", "대상 셸 (bash, zsh, fish, powershell, cmd)")
	return cmd
}

func (a *App) newCurrentCmd(kind switcher.Kind) *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "활성 환경을 보여준다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, source, err := a.newSwitcher().Current(kind)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if name == "" {
				fmt.Fprintf(out, "활성 %s 환경 없음\n", kind)
				return nil
			}
			fmt.Fprintf(out, "%s (%s)\n", name, source)
			return nil
		},
	}
}

func (a *App) newRemoveCmd(kind switcher.Kind) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "환경을 삭제한다",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.newSwitcher().Remove(kind, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "삭제됨: %s\n", args[0])
			return nil
		},
	}
}

func (a *App) newDefaultCmd(kind switcher.Kind) *cobra.Command {
	var unset bool

	cmd := &cobra.Command{
		Use:   "default [name]",
		Short: "기본 환경을 조회하거나 지정한다 (새 셸부터 적용)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sw := a.newSwitcher()
			out := cmd.OutOrStdout()

			if unset {
				if err := sw.ClearDefault(kind); err != nil {
					return err
				}
				fmt.Fprintln(out, "기본 환경 해제됨")
				return nil
			}
			if len(args) == 0 {
				name, err := sw.DefaultName(kind)
				if err != nil {
					return err
				}
				if name == "" {
					fmt.Fprintf(out, "기본 %s 환경 없음\n", kind)
					return nil
				}
				fmt.Fprintln(out, name)
				return nil
			}
			if err := sw.SetDefault(kind, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(out, "기본 환경: %s (새 셸부터 적용)\n", args[0])
			return nil
		},
	}
	cmd.Flags().BoolVar(&unset, "unset", false, "기본 환경 지정 해제")
	return cmd
}
