package gazetteer

import "testing"

func TestSelectPrefectures(t *testing.T) {
	all, err := SelectPrefectures(nil)
	if err != nil {
		t.Fatalf("SelectPrefectures(nil) error = %v", err)
	}
	if len(all) != 47 {
		t.Errorf("len(all) = %d, want 47", len(all))
	}

	// Selection comes back in JIS order even when requested out of order.
	subset, err := SelectPrefectures([]string{"13", "01"})
	if err != nil {
		t.Fatalf("SelectPrefectures() error = %v", err)
	}
	if len(subset) != 2 || subset[0].Code != "01" || subset[1].Code != "13" {
		t.Errorf("subset = %v, want [01 13]", subset)
	}

	if _, err := SelectPrefectures([]string{"48"}); err == nil {
		t.Error("SelectPrefectures(48) error = nil, want unknown code error")
	}
}

func TestPrefectureName(t *testing.T) {
	if name, ok := PrefectureName("13"); !ok || name != "東京都" {
		t.Errorf("PrefectureName(13) = %q, %v, want 東京都, true", name, ok)
	}
	if name, ok := PrefectureName("47"); !ok || name != "沖縄県" {
		t.Errorf("PrefectureName(47) = %q, %v, want 沖縄県, true", name, ok)
	}
	if _, ok := PrefectureName("48"); ok {
		t.Error("PrefectureName(48) = ok, want miss")
	}
	if len(Prefectures) != 47 {
		t.Errorf("len(Prefectures) = %d, want 47", len(Prefectures))
	}
}
