package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration level messages (info)
		"Starting pipeline":                                    "パイプラインを開始します",
		"Loaded script %s with %d steps":                       "スクリプト %s を読み込みました (%d ステップ)",
		"Calculating layout":                                   "レイアウトを計算中",
		"Layout calculated: %dx%d viewport, %.0fx%.0f content": "レイアウト計算完了: %dx%d ビューポート, %.0fx%.0f コンテンツ",
		"Rendering %d frames":                                  "%d フレームを描画中",
		"Encoding animation with %d colors":                    "%d 色でアニメーションをエンコード中",
		"Animation encoded: %d bytes":                          "アニメーションのエンコード完了: %d バイト",
		"Pipeline completed successfully":                      "パイプラインが正常に完了しました",
		"Stage %s finished in %s":                              "ステージ %s が %s で完了しました",
		"%d gesture events were rejected":                      "%d 件のジェスチャーイベントが破棄されました",

		// Replay stage
		"Replaying %d steps at %.1f fps":            "%d ステップを %.1f fps で再生中",
		"Step %d rejected: %s":                      "ステップ %d は破棄されました: %s",
		"Script ended with %d gestures in progress": "%d 件のジェスチャーが進行中のままスクリプトが終了しました",
		"Replay produced %d frames over %d ms":      "再生完了: %d フレーム, %d ms",

		// Viewer and controller
		"Pick cancelled":            "選択がキャンセルされました",
		"Showing %s (%dx%d)":        "%s を表示中 (%dx%d)",
		"Committed %s":              "確定しました: %s",
		"Resetting from %s over %s": "%s から %s かけてリセット中",

		// Render stage
		"Rendering %d frames with %d workers": "%d フレームを %d ワーカーで描画中",
		"Rendering completed":                 "描画が完了しました",
		"Failed to save frame %d: %s":         "フレーム %d の保存に失敗しました: %s",

		// Encode stage
		"Encoding %d frames at %dx%d": "%d フレームを %dx%d でエンコード中",
		"Encoded %d bytes":            "%d バイトにエンコードしました",

		// Errors
		"Failed to read script: %s":      "スクリプトの読み込みに失敗しました: %s",
		"Failed to save debug %s: %s":    "デバッグ出力 %s の保存に失敗しました: %s",
		"Failed to parse script: %s":     "スクリプトの解析に失敗しました: %s",
		"Failed to calculate layout: %s": "レイアウトの計算に失敗しました: %s",
		"Failed to replay script: %s":    "スクリプトの再生に失敗しました: %s",
		"Failed to render frames: %s":    "フレームの描画に失敗しました: %s",
		"Failed to encode animation: %s": "アニメーションのエンコードに失敗しました: %s",
		"Failed to write output: %s":     "出力の書き込みに失敗しました: %s",
	})
}
