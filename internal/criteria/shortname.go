package criteria

import "strings"

// ShortName は評価項目名から結果表のヘッダー用の短縮名を導出する。
// 最初の全角開き括弧より前、さらに最初の改行より前を取ることで、
// 先頭のタイトル部分だけを残す。どちらの区切りも無ければ全名をそのまま返す。
func ShortName(name string) string {
	short := name
	if idx := strings.Index(short, "（"); idx >= 0 {
		short = short[:idx]
	}
	if idx := strings.Index(short, "\n"); idx >= 0 {
		short = short[:idx]
	}
	return short
}
