package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) newSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "설정 파일을 현재 스키마로 보완한다",
		Long: `구버전 설정 파일에 빠진 기본 CC 프로필과 기본 포인터를 채운다.
기존 항목은 절대 삭제하거나 덮어쓰지 않는다.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			written, err := a.store().Sync()
			if err != nil {
				return err
			}
			if written {
				fmt.Fprintf(cmd.OutOrStdout(), "설정 파일이 갱신되었습니다: %s\n", a.CfgPath)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "변경 사항 없음")
			}
			return nil
		},
	}
}
