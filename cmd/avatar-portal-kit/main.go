package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	root := &cobra.Command{
		Use:           "avatar-portal-kit",
		Short:         "アバターバッジ画像を合成するコマンドラインツールです",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newGenerateCmd())

	if err := root.Execute(); err != nil {
		slog.Error("コマンドの実行に失敗しました", "error", err)
		os.Exit(1)
	}
}
