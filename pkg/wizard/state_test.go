package wizard

import "testing"

func TestGuardStateRoundTrip(t *testing.T) {
	original := GuardState{Fingerprint: "fp-123", HasVoted: true, EventYear: 2026}

	data, err := EncodeGuardState(original)
	if err != nil {
		t.Fatalf("EncodeGuardState failed: %v", err)
	}

	restored := DecodeGuardState(data)
	if restored != original {
		t.Errorf("復元結果 = %+v, want %+v", restored, original)
	}
}

func TestDecodeGuardStateCorruptData(t *testing.T) {
	// 壊れた保存データはゼロ値に落とし、エラーにはしない
	restored := DecodeGuardState([]byte("{broken json"))
	if restored != (GuardState{}) {
		t.Errorf("壊れたデータの復元結果 = %+v, want ゼロ値", restored)
	}
}

func TestHasVotedFor(t *testing.T) {
	state := GuardState{Fingerprint: "fp-123", HasVoted: true, EventYear: 2026}

	if !state.HasVotedFor(2026) {
		t.Error("同一年度ではtrueを返すはず")
	}
	if state.HasVotedFor(2025) {
		t.Error("別年度ではfalseを返すはず")
	}
}

func TestEnsureFingerprint(t *testing.T) {
	if got := EnsureFingerprint("device-abc"); got != "device-abc" {
		t.Errorf("取得済みの識別子はそのまま使うはず: %q", got)
	}

	fallback := EnsureFingerprint("")
	if fallback == "" {
		t.Fatal("空の識別子にはランダムIDへフォールバックするはず")
	}
	if second := EnsureFingerprint(""); second == fallback {
		t.Error("フォールバックIDは呼び出しごとに異なるはず")
	}
}
