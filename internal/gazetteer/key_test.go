package gazetteer

import (
	"testing"
)

func TestBuildKey(t *testing.T) {
	a := BuildKey("東京都", "中央区", "銀座四丁目", "")
	b := BuildKey("東京都", "中央区", "銀座四丁目", "")
	if a != b {
		t.Errorf("BuildKey() not deterministic: %v != %v", a, b)
	}

	if a.Koaza != "" {
		t.Errorf("Koaza = %q, want empty", a.Koaza)
	}
}

func TestBuildKeyNullKoaza(t *testing.T) {
	key := BuildKey("北海道", "札幌市中央区", "盤渓", "NULL")
	if key.Koaza != "" {
		t.Errorf("Koaza = %q, want the NULL sentinel mapped to empty", key.Koaza)
	}

	kept := BuildKey("北海道", "札幌市中央区", "盤渓", "二股")
	if kept.Koaza != "二股" {
		t.Errorf("Koaza = %q, want a real koaza kept", kept.Koaza)
	}
}

func TestRenameCity(t *testing.T) {
	tests := []struct {
		pref string
		city string
		want string
	}{
		{"兵庫県", "篠山市", "丹波篠山市"},
		{"福岡県", "筑紫郡那珂川町", "那珂川市"},
		{"兵庫県", "丹波篠山市", "丹波篠山市"},
		{"東京都", "篠山市", "篠山市"},
		{"東京都", "中央区", "中央区"},
	}

	for _, tt := range tests {
		got := RenameCity(tt.pref, tt.city)
		if got != tt.want {
			t.Errorf("RenameCity(%q, %q) = %q, want %q", tt.pref, tt.city, got, tt.want)
		}
	}
}

func TestRenameIdempotentThroughBuildKey(t *testing.T) {
	renamed := BuildKey("兵庫県", "篠山市", "北新町", "")
	again := BuildKey("兵庫県", renamed.City, "北新町", "")
	if renamed != again {
		t.Errorf("BuildKey() on already renamed city changed the key: %v != %v", renamed, again)
	}
	if renamed.City != "丹波篠山市" {
		t.Errorf("City = %q, want %q", renamed.City, "丹波篠山市")
	}
}
