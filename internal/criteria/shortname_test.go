package criteria

import "testing"

func TestShortName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "全角括弧と改行の両方を含む",
			input:    "Philosophy（理念・目的）\nカンパニー・部署の存在意義、ビジョンへの共感度。",
			expected: "Philosophy",
		},
		{
			name:     "全角括弧のみ",
			input:    "Privilege（特権・待遇）",
			expected: "Privilege",
		},
		{
			name:     "改行のみ",
			input:    "People\n一緒に働く人々の人柄やチームワーク。",
			expected: "People",
		},
		{
			name:     "改行が全角括弧より先に現れる",
			input:    "総合評価\n補足（検討中）",
			expected: "総合評価",
		},
		{
			name:     "区切りが無ければ全名のまま",
			input:    "Profession",
			expected: "Profession",
		},
		{
			name:     "空文字",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShortName(tt.input); got != tt.expected {
				t.Errorf("ShortName(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
