package source

import (
	"strings"
	"testing"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// shiftJIS re-encodes a UTF-8 fixture the way the upstream files are
// published.
func shiftJIS(t *testing.T, s string) *strings.Reader {
	t.Helper()
	encoded, _, err := transform.String(japanese.ShiftJIS.NewEncoder(), s)
	if err != nil {
		t.Fatalf("failed to encode fixture: %v", err)
	}
	return strings.NewReader(encoded)
}

const oazaFixture = `"都道府県コード","都道府県名","市区町村コード","市区町村名","大字町丁目コード","大字町丁目名","緯度","経度","原典資料コード","大字・字・丁目区分コード"
"01","北海道","01101","札幌市中央区","011010001001","旭ケ丘一丁目","43.042230","141.319722","0","3"
"01","北海道","01101","札幌市中央区","011010002001","大通東一丁目","43.061461","141.358942","0","3"
`

func TestParseOaza(t *testing.T) {
	rows, err := ParseOaza(shiftJIS(t, oazaFixture))
	if err != nil {
		t.Fatalf("ParseOaza() error = %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("ParseOaza() returned %d rows, want 2", len(rows))
	}

	got := rows[0]
	if got.PrefName != "北海道" {
		t.Errorf("PrefName = %q, want %q", got.PrefName, "北海道")
	}
	if got.CityCode != "01101" {
		t.Errorf("CityCode = %q, want %q", got.CityCode, "01101")
	}
	if got.CityName != "札幌市中央区" {
		t.Errorf("CityName = %q, want %q", got.CityName, "札幌市中央区")
	}
	if got.TownName != "旭ケ丘一丁目" {
		t.Errorf("TownName = %q, want %q", got.TownName, "旭ケ丘一丁目")
	}
	if got.Lat != 43.042230 {
		t.Errorf("Lat = %v, want %v", got.Lat, 43.042230)
	}
	if got.Lon != 141.319722 {
		t.Errorf("Lon = %v, want %v", got.Lon, 141.319722)
	}
}

func TestParseOazaBadCoordinate(t *testing.T) {
	fixture := `"都道府県コード","都道府県名","市区町村コード","市区町村名","大字町丁目コード","大字町丁目名","緯度","経度"
"01","北海道","01101","札幌市中央区","011010001001","旭ケ丘一丁目","north","141.319722"
`
	if _, err := ParseOaza(shiftJIS(t, fixture)); err == nil {
		t.Error("ParseOaza() expected error for bad latitude, got nil")
	}
}

const gaikuFixture = `"都道府県名","市区町村名","大字・丁目名","小字・通称名","街区符号・地番","座標系番号","X座標","Y座標","緯度","経度","住居表示フラグ","代表フラグ","更新前履歴フラグ","更新後履歴フラグ"
"北海道","札幌市中央区","旭ケ丘一丁目","NULL","10","12","-113434.6","-78847.1","43.042434","141.319745","1","1","0","0"
"北海道","札幌市中央区","盤渓","二股","452","12","-111655.6","-82727.5","43.058549","141.272664","0","1","0","0"
`

func TestParseGaiku(t *testing.T) {
	rows, err := ParseGaiku(shiftJIS(t, gaikuFixture))
	if err != nil {
		t.Fatalf("ParseGaiku() error = %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("ParseGaiku() returned %d rows, want 2", len(rows))
	}

	first := rows[0]
	if first.TownName != "旭ケ丘一丁目" {
		t.Errorf("TownName = %q, want %q", first.TownName, "旭ケ丘一丁目")
	}
	if first.Koaza != "NULL" {
		t.Errorf("Koaza = %q, want the sentinel kept verbatim", first.Koaza)
	}
	if first.BlockNumber != "10" {
		t.Errorf("BlockNumber = %q, want %q", first.BlockNumber, "10")
	}
	if !first.Residential {
		t.Error("Residential = false, want true for flag \"1\"")
	}
	if first.Lat != 43.042434 || first.Lon != 141.319745 {
		t.Errorf("coordinates = (%v, %v), want (43.042434, 141.319745)", first.Lat, first.Lon)
	}

	second := rows[1]
	if second.Koaza != "二股" {
		t.Errorf("Koaza = %q, want %q", second.Koaza, "二股")
	}
	if second.Residential {
		t.Error("Residential = true, want false for flag \"0\"")
	}
}
