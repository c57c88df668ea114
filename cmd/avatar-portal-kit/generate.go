package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/shouni/avatar-portal-kit/pkg/adapters"
	"github.com/shouni/avatar-portal-kit/pkg/compositor"
	"github.com/shouni/avatar-portal-kit/pkg/domain"
	"github.com/shouni/avatar-portal-kit/pkg/imgutil"
	"github.com/shouni/avatar-portal-kit/pkg/utils"
)

type generateOptions struct {
	output     string
	gradient   string
	variants   []string
	portalSVG  string
	maskSVG    string
	configPath string
	timeout    time.Duration
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate <subject> [output.png]",
		Short: "被写体画像からアバターバッジを生成します",
		Long: `被写体画像（ローカルパスまたはURL）とSVG形状からアバターバッジを合成します。
--variants を指定すると、同じレイアウトのままグラデーションプリセットを
差し替えた派生画像を連続生成します（例: avatar.png → avatar_blue.png）。`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.output = "avatar.png"
			if len(args) == 2 {
				opts.output = args[1]
			}
			return runGenerate(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.gradient, "gradient", "orange", "ベースのグラデーションプリセット名")
	cmd.Flags().StringSliceVar(&opts.variants, "variants", nil, "追加生成するプリセット名（例: blue,green,purple）")
	cmd.Flags().StringVar(&opts.portalSVG, "portal-svg", "", "ポータル形状のSVGファイル")
	cmd.Flags().StringVar(&opts.maskSVG, "mask-svg", "", "被写体マスク形状のSVGファイル")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "レイアウト設定ファイル（YAML）")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", adapters.DefaultFetchTimeout, "リモート取得のタイムアウト")
	_ = cmd.MarkFlagRequired("portal-svg")
	_ = cmd.MarkFlagRequired("mask-svg")

	return cmd
}

// runGenerate はベース1枚と指定バリアントを順に合成します。
// 最初のエラーで全体を中断し、以降のバリアントは生成しません。
func runGenerate(ctx context.Context, subject string, opts *generateOptions) error {
	layout, err := loadLayout(opts.configPath)
	if err != nil {
		return err
	}

	portalMarkup, err := os.ReadFile(opts.portalSVG)
	if err != nil {
		return fmt.Errorf("ポータルSVGの読み込みに失敗しました: %w", err)
	}
	maskMarkup, err := os.ReadFile(opts.maskSVG)
	if err != nil {
		return fmt.Errorf("マスクSVGの読み込みに失敗しました: %w", err)
	}

	loader, err := adapters.NewAssetLoader(adapters.LocalReader{}, adapters.NewHTTPFetcher(opts.timeout), nil, 0)
	if err != nil {
		return err
	}
	comp, err := compositor.New(loader, adapters.NewSVGRasterizer())
	if err != nil {
		return err
	}

	base, ok := domain.GradientByName(opts.gradient)
	if !ok {
		return fmt.Errorf("未知のグラデーションプリセットです: %s", opts.gradient)
	}

	req := compositor.Request{
		Subject:     subjectSource(subject),
		Fill:        domain.GradientFill(base),
		PortalShape: domain.VectorShape(string(portalMarkup)),
		MaskShape:   domain.VectorShape(string(maskMarkup)),
		Layout:      layout,
	}

	if err := renderTo(ctx, comp, req, opts.output); err != nil {
		return err
	}

	for _, name := range opts.variants {
		spec, ok := domain.GradientByName(name)
		if !ok {
			return fmt.Errorf("未知のグラデーションプリセットです: %s", name)
		}
		req.Fill = domain.GradientFill(spec)
		if err := renderTo(ctx, comp, req, utils.VariantPath(opts.output, name)); err != nil {
			return err
		}
	}
	return nil
}

func renderTo(ctx context.Context, comp *compositor.Compositor, req compositor.Request, path string) error {
	slog.Info("アバターを合成します", "output", path)

	img, err := comp.Render(ctx, req)
	if err != nil {
		return fmt.Errorf("合成に失敗しました: %w", err)
	}
	data, err := imgutil.EncodePNG(img)
	if err != nil {
		return fmt.Errorf("PNGエンコードに失敗しました: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("出力の書き込みに失敗しました: %w", err)
	}

	slog.Info("書き出しました", "output", path, "bytes", len(data))
	return nil
}

// subjectSource は引数のスキームからローカル/リモートを判別します。
func subjectSource(arg string) domain.SubjectSource {
	if strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://") {
		return domain.RemoteSubject(arg)
	}
	return domain.LocalSubject(arg)
}

// loadLayout は既定レイアウトを起点に、設定ファイルで指定された
// キーだけを上書きします。未指定のキーは既定値のまま残します。
func loadLayout(path string) (domain.LayoutConfig, error) {
	layout := domain.DefaultLayout()
	if path == "" {
		return layout, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return layout, fmt.Errorf("レイアウト設定の読み込みに失敗しました: %w", err)
	}

	set := func(key string, dst *float64) {
		if v.IsSet(key) {
			*dst = v.GetFloat64(key)
		}
	}
	set("output.w", &layout.OutputSize.W)
	set("output.h", &layout.OutputSize.H)
	set("portal.w", &layout.PortalSize.W)
	set("portal.h", &layout.PortalSize.H)
	set("portal.x", &layout.PortalOffset.X)
	set("portal.y", &layout.PortalOffset.Y)
	set("mask.w", &layout.MaskSize.W)
	set("mask.h", &layout.MaskSize.H)
	set("mask.x", &layout.MaskOffset.X)
	set("mask.y", &layout.MaskOffset.Y)
	set("subject.w", &layout.SubjectSize.W)
	set("subject.h", &layout.SubjectSize.H)
	set("subject.x", &layout.SubjectOffset.X)
	set("subject.y", &layout.SubjectOffset.Y)
	set("rotation", &layout.Rotation)
	set("face_position", &layout.FacePosition)
	set("scale", &layout.Scale)

	return layout, nil
}
