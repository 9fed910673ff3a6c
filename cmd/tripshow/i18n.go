// Package main provides localization for the tripshow CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Generate travel books and trip videos from recorded trips.": "記録した旅行からトラベルブックと旅行動画を生成します。",

		// Book command
		"Generate a PDF travel book for a trip.": "旅行のPDFトラベルブックを生成",

		// Preview command
		"Render the flip-book preview pages for a trip.": "旅行のフリップブックプレビューページを描画",
		"Saved %d preview pages to %s":                   "%d 枚のプレビューページを %s に保存しました",

		// Video command
		"Generate a narrated vertical video for a trip.": "旅行のナレーション付き縦型動画を生成",

		// Version command
		"Show version information.": "バージョン情報を表示",
		"tripshow version %s":       "tripshow バージョン %s",

		// Common flags
		"Trip identifier to generate from.":        "生成元の旅行ID",
		"Directory for the generated artifact.":    "生成物の出力ディレクトリ",
		"Path to a YAML configuration file.":       "YAML設定ファイルのパス",
		"Trip API base URL.":                       "旅行APIのベースURL",
		"Directory holding flags, shapes and icons.": "国旗・図形・アイコンを置くディレクトリ",
		"Enable debug output.":                     "デバッグ出力を有効化",
		"Directory for debug output.":              "デバッグ出力のディレクトリ",
		"Log level (debug, info, warn, error).":    "ログレベル（debug, info, warn, error）",
		"Suppress all log output.":                 "全てのログ出力を抑制",

		// Book flags
		"Page width in points (default: 595).":               "ページ幅（ポイント、デフォルト: 595）",
		"Page height in points (default: 842).":              "ページ高さ（ポイント、デフォルト: 842）",
		"Render raster preview pages alongside the PDF.":     "PDFと併せてラスタープレビューページを生成",
		"Preview raster width in pixels (default: 595).":     "プレビューのラスター幅（ピクセル、デフォルト: 595）",

		// Video flags
		"Frame width (default: 1080).":                      "フレーム幅（デフォルト: 1080）",
		"Frame height (default: 1920).":                     "フレーム高さ（デフォルト: 1920）",
		"Frames per second (default: 30).":                  "フレームレート（デフォルト: 30）",
		"Video quality (CRF 0-63, lower is better).":        "動画品質（CRF 0-63、低いほど高品質）",
		"Target bitrate in kbps (0 = quality mode).":        "目標ビットレート（kbps、0 = 品質モード）",
		"Output container (webm or mp4).":                   "出力コンテナ（webm または mp4）",
		"Path to the narration audio file.":                 "ナレーション音声ファイルのパス",
		"Duration to hold final frame in milliseconds.":     "最終フレームの保持時間（ミリ秒）",
		"Hand the video to the platform share mechanism.":   "動画をプラットフォームの共有機能に渡す",

		// Runtime messages
		"Generating travel book for trip %s...": "旅行 %s のトラベルブックを生成中...",
		"Generating video for trip %s...":       "旅行 %s の動画を生成中...",
		"Output saved to %s (%d pages)":         "出力を %s に保存しました（%d ページ）",
		"Output saved to %s (%dms)":             "出力を %s に保存しました（%dms）",
		"Shared via platform share sheet":       "プラットフォームの共有シートで共有しました",
		"Shared via link fallback":              "リンクフォールバックで共有しました",
		"Interrupted, shutting down...":         "中断されました。シャットダウン中...",

		// Orchestrator messages
		"Generating travel book for trip %s": "旅行 %s のトラベルブックを生成中",
		"Generating video for trip %s":       "旅行 %s の動画を生成中",
		"Loaded trip %q: %d points":          "旅行 %q を読み込みました（%d 地点）",
		"Built %d pages":                     "%d ページを構築しました",
		"Travel book saved to %s":            "トラベルブックを %s に保存しました",
		"Video saved to %s":                  "動画を %s に保存しました",
		"Sharing not supported, falling back to link": "共有がサポートされていないため、リンクにフォールバックします",

		// Error messages
		"Failed to load trip data: %s":    "旅行データの読み込みに失敗しました: %s",
		"Failed to build pages: %s":       "ページの構築に失敗しました: %s",
		"Failed to render preview: %s":    "プレビューの描画に失敗しました: %s",
		"Failed to compose book: %s":      "ブックの作成に失敗しました: %s",
		"Failed to capture video: %s":     "動画のキャプチャに失敗しました: %s",
		"Failed to write output: %s":      "出力の書き込みに失敗しました: %s",
		"Sharing failed: %s":              "共有に失敗しました: %s",
		"Share link fallback failed: %s":  "共有リンクのフォールバックに失敗しました: %s",
	})
}
