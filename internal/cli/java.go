package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hbjs97/envsw/internal/config"
	"github.com/hbjs97/envsw/internal/scanner"
	"github.com/hbjs97/envsw/internal/switcher"
)

func (a *App) newJavaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "java",
		Short: "JDK 환경을 관리한다",
	}
	cmd.AddCommand(
		a.newListCmd(switcher.Java),
		a.newJavaAddCmd(),
		a.newRemoveCmd(switcher.Java),
		a.newJavaScanCmd(),
		a.newUseCmd(switcher.Java),
		a.newCurrentCmd(switcher.Java),
		a.newDefaultCmd(switcher.Java),
	)
	return cmd
}

func (a *App) newJavaAddCmd() *cobra.Command {
	var home, desc string

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "JDK 환경을 수동으로 등록한다",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			if err := askIfEmpty(&name, "환경 이름", true); err != nil {
				return err
			}
			if err := askIfEmpty(&home, "JAVA_HOME 경로", true); err != nil {
				return err
			}

			env := config.JavaEnv{
				Name:        name,
				JavaHome:    home,
				Description: desc,
				Source:      config.SourceManual,
			}
			if err := a.newSwitcher().AddJava(env); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "등록됨: %s (%s)\n", name, home)
			return nil
		},
	}
	cmd.Flags().StringVar(&home, "home", "", "JAVA_HOME 경로")
	cmd.Flags().StringVar(&desc, "desc", "", "설명")
	return cmd
}

func (a *App) newJavaScanCmd() *cobra.Command {
	var keepLast bool

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "설치된 JDK를 탐색해 등록한다",
		Long: `표준 설치 경로, 설정의 custom_java_scan_paths, ` + scanner.PathsEnvVar + `,
PATH에서 JDK를 찾아 레지스트리에 병합한다. 기존 항목과 사용자가 삭제한
이름은 건드리지 않는다.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := a.newSwitcher().ScanMerge(scanner.Options{KeepLast: keepLast})
			if err != nil {
				return err
			}
			printWarnings(cmd, report.Warnings)

			out := cmd.OutOrStdout()
			for _, name := range report.Added {
				fmt.Fprintf(out, "추가됨: %s\n", name)
			}
			for _, msg := range report.Skipped {
				fmt.Fprintf(out, "건너뜀: %s\n", msg)
			}
			if len(report.Added) == 0 {
				fmt.Fprintln(out, "새로 추가된 JDK 없음")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&keepLast, "keep-last", false, "중복 설치는 나중에 발견된 쪽을 채택")
	return cmd
}
