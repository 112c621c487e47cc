package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hbjs97/envsw/internal/config"
	"github.com/hbjs97/envsw/internal/switcher"
)

func (a *App) newLlmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "llm",
		Short: "LLM 프로바이더 환경을 관리한다",
	}
	// llm에는 기본 환경 개념이 없다. use는 항상 이름을 요구한다.
	cmd.AddCommand(
		a.newListCmd(switcher.Llm),
		a.newLlmAddCmd(),
		a.newRemoveCmd(switcher.Llm),
		a.newUseCmd(switcher.Llm),
		a.newCurrentCmd(switcher.Llm),
	)
	return cmd
}

func (a *App) newLlmAddCmd() *cobra.Command {
	var provider, key, baseURL, model, desc string
	var temperature float64
	var maxTokens int

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "LLM 환경을 등록한다",
		Long: `provider에 따라 활성화 시 내보내는 환경변수 이름이 달라진다
(openai, anthropic, azure, google, 그 외는 이름에서 파생). API 키에는
${VAR} 플레이스홀더를 쓸 수 있다.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			if err := askIfEmpty(&name, "환경 이름", true); err != nil {
				return err
			}
			if err := askIfEmpty(&provider, "프로바이더 (openai, anthropic, azure, google, ...)", true); err != nil {
				return err
			}
			if err := askSecretIfEmpty(&key, "API 키 (또는 ${VAR} 플레이스홀더)"); err != nil {
				return err
			}

			env := config.LlmEnv{
				Name:        name,
				Provider:    provider,
				APIKey:      key,
				BaseURL:     baseURL,
				Model:       model,
				Description: desc,
			}
			if cmd.Flags().Changed("temperature") {
				env.Temperature = &temperature
			}
			if cmd.Flags().Changed("max-tokens") {
				env.MaxTokens = &maxTokens
			}
			if err := a.newSwitcher().AddLlm(env); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "등록됨: %s (%s)\n", name, provider)
			return nil
		},
	}
	cmd.Flags().StringVar(&provider, "provider", "", "프로바이더")
	cmd.Flags().StringVar(&key, "key", "", "API 키 또는 ${VAR} 플레이스홀더")
	cmd.Flags().StringVar(&baseURL, "url", "", "베이스 URL")
	cmd.Flags().StringVar(&model, "model", "", "모델 이름")
	cmd.Flags().Float64Var(&temperature, "temperature", 0, "샘플링 온도")
	cmd.Flags().IntVar(&maxTokens, "max-tokens", 0, "최대 토큰 수")
	cmd.Flags().StringVar(&desc, "desc", "", "설명")
	return cmd
}
