package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration level messages (info)
		"Generating travel book for trip %s": "トリップ %s のトラベルブックを生成中",
		"Generating trip video for trip %s":  "トリップ %s の動画を生成中",
		"Output saved to %s":                 "出力を %s に保存しました",
		"Generation completed successfully":  "生成が正常に完了しました",
		"Interrupted, shutting down...":      "中断されました。シャットダウン中...",

		// Trip data
		"Fetching trip data":                        "トリップデータを取得中",
		"Trip loaded: %d points, %d photos":         "トリップ読み込み完了: %d ポイント, %d 枚の写真",
		"Failed to fetch trip data: %s":             "トリップデータの取得に失敗しました: %s",

		// Pages / book
		"Building pages":                            "ページを構築中",
		"Built %d pages":                            "%d ページを構築しました",
		"Composing PDF":                             "PDFを作成中",
		"PDF composed: %d pages, %d bytes":          "PDF作成完了: %d ページ, %d バイト",
		"Rendering preview pages":                   "プレビューページをレンダリング中",
		"Preview rendered: %d pages":                "プレビューレンダリング完了: %d ページ",

		// Video
		"Preparing video timeline":                  "動画タイムラインを準備中",
		"Timeline duration: %.1f seconds":           "タイムライン長: %.1f 秒",
		"Capturing %d frames at %.1f fps":           "%d フレームを %.1f fps でキャプチャ中",
		"Video encoded: %d bytes":                   "動画エンコード完了: %d バイト",
		"Audio track: %s":                           "音声トラック: %s",

		// Warnings
		"Page %d: asset unavailable, using fallback: %s": "ページ %d: アセットが利用できないためフォールバックを使用します: %s",
		"Weather lookup failed, using N/A":               "天気の取得に失敗しました。N/A を使用します",
		"Elevation lookup failed, using N/A":             "標高の取得に失敗しました。N/A を使用します",
		"Sharing unsupported, writing share link":        "共有がサポートされていないため共有リンクを書き出します",

		// Errors
		"Failed to compose PDF: %s":       "PDFの作成に失敗しました: %s",
		"Failed to encode video: %s":      "動画のエンコードに失敗しました: %s",
		"Failed to write output: %s":      "出力の書き込みに失敗しました: %s",
		"Audio track failed to start: %s": "音声トラックの開始に失敗しました: %s",
	})
}
