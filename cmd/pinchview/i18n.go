// Package main provides localization for the pinchview CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Flag categories
		"Output":                "出力先",
		"Preset":                "プリセット",
		"Viewer":                "ビューア",
		"Content":               "コンテンツ",
		"Layout and Style":      "レイアウトとスタイル",
		"Animation and Quality": "アニメーションと品質",
		"Debug":                 "デバッグ",
		"Logging":               "ログ",

		// Root command
		"Replay pinch and pan gestures on an image viewer":                                                           "画像ビューアでピンチとパンのジェスチャーを再生",
		"pinchview replays scripted gestures through a zoomable viewport and renders the result as an animated GIF.": "pinchviewはスクリプト化されたジェスチャーをズーム可能なビューポートで再生し、結果をアニメーションGIFとして描画します。",

		// Replay command
		"Replay a gesture script as an animated GIF":                                       "ジェスチャースクリプトをアニメーションGIFとして再生",
		"Run a gesture script through the viewer and save every frame as an animated GIF.": "ジェスチャースクリプトをビューアで実行し、全フレームをアニメーションGIFとして保存します。",

		// Check command
		"Validate a gesture script":                                      "ジェスチャースクリプトを検証",
		"%s: %d steps (%d picks, %d pinch, %d pan, %d resets, %d waits)": "%s: %d ステップ（選択 %d, ピンチ %d, パン %d, リセット %d, 待機 %d）",

		// Bounds command
		"Print the pan bounds for a viewer configuration": "ビューア設定のパン範囲を表示",
		"Scales to report (default: min, 1, 2, max)":      "表示する倍率（デフォルト: 最小, 1, 2, 最大）",
		"Viewport %gx%g, content %gx%g":                   "ビューポート %gx%g, コンテンツ %gx%g",
		"Scale":                                           "倍率",

		// Version command
		"Show version information": "バージョン情報を表示",
		"pinchview version %s":     "pinchview バージョン %s",

		// Output flags
		"Output GIF file path (required)":                        "出力GIFファイルパス（必須）",
		"Output execution summary to file (.md, .yaml or .json)": "実行サマリーをファイルに出力（.md, .yaml, .json）",

		// Preset flags
		"Device preset (phone, tablet)":                 "デバイスプリセット（phone, tablet）",
		"YAML configuration file (replaces the preset)": "YAML設定ファイル（プリセットを置き換え）",
		"Quality preset (low, medium, high)":            "品質プリセット（low, medium, high）",

		// Viewer flags
		"Viewport width in pixels":                               "ビューポートの幅（ピクセル）",
		"Viewport height in pixels":                              "ビューポートの高さ（ピクセル）",
		"Content box width as a fraction of the viewport":        "ビューポートに対するコンテンツ枠の幅の比率",
		"Content box height as a fraction of the viewport":       "ビューポートに対するコンテンツ枠の高さの比率",
		"Minimum zoom scale (0-1]":                               "最小ズーム倍率（0-1]",
		"Maximum zoom scale (1 or more)":                         "最大ズーム倍率（1以上）",
		"Reset animation duration in milliseconds (0 = instant)": "リセットアニメーションの時間（ミリ秒、0 = 即時）",
		"Reset easing (quad-in-out, cubic-out, linear)":          "リセットのイージング（quad-in-out, cubic-out, linear）",

		// Content flags
		"Directory the picker chooses images from":                    "ピッカーが画像を選ぶディレクトリ",
		"Picker order (sequential, random)":                           "ピッカーの順序（sequential, random）",
		"Random seed for the picker (default: current time)":          "ピッカーの乱数シード（デフォルト: 現在時刻）",
		"Downscale images whose longer side exceeds this many pixels": "長辺がこのピクセル数を超える画像を縮小",

		// Style flags
		"Background color (hex, e.g., #121212)":              "背景色（16進数、例: #121212）",
		"Placeholder color shown before any image is picked": "画像選択前に表示するプレースホルダーの色",
		"Bounds overlay color":                               "範囲オーバーレイの色",
		"Outline the content box and the pan bounds":         "コンテンツ枠とパン範囲を表示",
		"Status strip height in pixels (0 = hidden)":         "ステータス帯の高さ（ピクセル、0 = 非表示）",

		// Animation flags
		"Frames per second when the script does not set one":  "スクリプトで指定がない場合のフレームレート",
		"Palette size (2-256, overrides quality preset)":      "パレットの色数（2-256、品質プリセットを上書き）",
		"Disable Floyd-Steinberg dithering":                   "Floyd-Steinbergディザリングを無効化",
		"Loop count (0 = forever, -1 = play once)":            "ループ回数（0 = 無限、-1 = 1回のみ再生）",
		"Duration to hold final frame in milliseconds":        "最終フレームの保持時間（ミリ秒）",
		"Content resampling (nearest, bilinear, catmull-rom)": "コンテンツの再サンプリング（nearest, bilinear, catmull-rom）",
		"Render workers (0 = one per CPU)":                    "描画ワーカー数（0 = CPUごとに1つ）",

		// Debug flags
		"Enable debug output":                   "デバッグ出力を有効化",
		"Directory for debug output":            "デバッグ出力のディレクトリ",
		"Save every n-th rendered frame as PNG": "n フレームごとに描画結果を PNG で保存",

		// Logging flags
		"Log level (debug, info, warn, error)": "ログレベル（debug, info, warn, error）",
		"Suppress all log output":              "全てのログ出力を抑制",

		// Runtime messages
		"Replaying %s (%s preset)...":   "%s を再生中 (%s プリセット)...",
		"Output saved to %s":            "出力を %s に保存しました",
		"Interrupted, shutting down...": "中断されました。シャットダウン中...",
		"Interrupted":                   "中断されました",
		"Script argument is required":   "スクリプト引数が必要です",
		"Summary saved to %s":           "サマリーを %s に保存しました",
		"Images directory %s does not exist; picks will be dismissed": "画像ディレクトリ %s が存在しません。選択はキャンセル扱いになります",
		"Failed to write summary: %s":                                 "サマリーの書き込みに失敗しました: %s",

		// Summary content
		"Replay Summary":    "再生サマリー",
		"Generated":         "生成日時",
		"Results":           "実行結果",
		"Settings":          "設定",
		"Animation Details": "アニメーション詳細",
		"Item":              "項目",
		"Value":             "値",
		"Generated by":      "生成:",

		// Results section
		"Script":          "スクリプト",
		"Script Path":     "スクリプトのパス",
		"Steps":           "ステップ数",
		"Replay Duration": "再生時間",
		"Picks":           "画像選択",
		"cancelled":       "キャンセル",
		"Pinch Updates":   "ピンチ更新",
		"Pan Updates":     "パン更新",
		"Resets":          "リセット",
		"Clamped Updates": "制限された更新（倍率 / 位置）",
		"Rejected Events": "破棄されたイベント",
		"Final Transform": "最終変換",

		// Settings section
		"Viewport Size":  "ビューポートサイズ",
		"Scale Range":    "倍率範囲",
		"Reset Duration": "リセット時間",
		"Instant":        "即時",
		"Frame Rate":     "フレームレート",

		// Animation section
		"Frame Count":         "フレーム数",
		"Animation Duration":  "アニメーション再生時間",
		"Animation File Size": "アニメーションファイルサイズ",
		"Colors":              "色数",
		"dithered":            "ディザリングあり",
		"Outro Duration":      "アウトロ時間",
	})
}
