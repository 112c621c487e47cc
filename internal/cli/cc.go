package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hbjs97/envsw/internal/config"
	"github.com/hbjs97/envsw/internal/switcher"
)

func (a *App) newCcCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cc",
		Short: "Claude Code 환경을 관리한다",
	}
	cmd.AddCommand(
		a.newListCmd(switcher.Cc),
		a.newCcAddCmd(),
		a.newRemoveCmd(switcher.Cc),
		a.newUseCmd(switcher.Cc),
		a.newCurrentCmd(switcher.Cc),
		a.newDefaultCmd(switcher.Cc),
	)
	return cmd
}

func (a *App) newCcAddCmd() *cobra.Command {
	var provider, key, baseURL, model, desc string

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Claude Code 환경을 등록한다",
		Long: `API 키에는 리터럴 값 대신 ${VAR} 플레이스홀더를 쓸 수 있다.
플레이스홀더는 저장 시 그대로 보존되고 use 시점의 환경변수로 해석된다.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			if err := askIfEmpty(&name, "환경 이름", true); err != nil {
				return err
			}
			if err := askSecretIfEmpty(&key, "API 키 (또는 ${VAR} 플레이스홀더)"); err != nil {
				return err
			}
			if err := askIfEmpty(&baseURL, "베이스 URL (비우면 기본)", false); err != nil {
				return err
			}
			if err := askIfEmpty(&model, "모델 (비우면 기본)", false); err != nil {
				return err
			}
			if provider == "" {
				provider = "anthropic"
			}

			env := config.CcEnv{
				Name:        name,
				Provider:    provider,
				APIKey:      key,
				BaseURL:     baseURL,
				Model:       model,
				Description: desc,
			}
			if err := a.newSwitcher().AddCc(env); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "등록됨: %s\n", name)
			return nil
		},
	}
	cmd.Flags().StringVar(&provider, "provider", "anthropic", "프로바이더")
	cmd.Flags().StringVar(&key, "key", "", "API 키 또는 ${VAR} 플레이스홀더")
	cmd.Flags().StringVar(&baseURL, "url", "", "베이스 URL")
	cmd.Flags().StringVar(&model, "model", "", "모델 이름")
	cmd.Flags().StringVar(&desc, "desc", "", "설명")
	return cmd
}
