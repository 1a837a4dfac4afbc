package source

import (
	"testing"
)

const kanaFixture = `01101,"060  ","0600041","ﾎｯｶｲﾄﾞｳ","ｻｯﾎﾟﾛｼﾁｭｳｵｳｸ","ｵｵﾄﾞｵﾘﾋｶﾞｼ","北海道","札幌市中央区","大通東",0,0,1,0,0,0
01101,"060  ","0600000","ﾎｯｶｲﾄﾞｳ","ｻｯﾎﾟﾛｼﾁｭｳｵｳｸ","ｲｶﾆｹｲｻｲｶﾞﾅｲﾊﾞｱｲ","北海道","札幌市中央区","以下に掲載がない場合",0,0,0,0,0,0
`

func TestParseKana(t *testing.T) {
	rows, err := ParseKana(shiftJIS(t, kanaFixture))
	if err != nil {
		t.Fatalf("ParseKana() error = %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("ParseKana() returned %d rows, want 2", len(rows))
	}

	got := rows[0]
	if got.Code != "01101" {
		t.Errorf("Code = %q, want %q", got.Code, "01101")
	}
	if got.Zip != "0600041" {
		t.Errorf("Zip = %q, want %q", got.Zip, "0600041")
	}
	if got.TownKana != "ｵｵﾄﾞｵﾘﾋｶﾞｼ" {
		t.Errorf("TownKana = %q, want the raw half-width reading", got.TownKana)
	}
	if got.Town != "大通東" {
		t.Errorf("Town = %q, want %q", got.Town, "大通東")
	}

	if rows[1].Town != "以下に掲載がない場合" {
		t.Errorf("Town = %q, want the placeholder kept verbatim at parse time", rows[1].Town)
	}
}

const romeFixture = `"0600041","北海道","札幌市中央区","大通東","HOKKAIDO","SAPPORO SHI CHUO KU","ODORIHIGASHI"
"0600000","北海道","札幌市中央区","以下に掲載がない場合","HOKKAIDO","SAPPORO SHI CHUO KU","IKANIKEISAIGANAIBAAI"
`

func TestParseRome(t *testing.T) {
	rows, err := ParseRome(shiftJIS(t, romeFixture))
	if err != nil {
		t.Fatalf("ParseRome() error = %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("ParseRome() returned %d rows, want 2", len(rows))
	}

	got := rows[0]
	if got.Zip != "0600041" {
		t.Errorf("Zip = %q, want %q", got.Zip, "0600041")
	}
	if got.CityRome != "SAPPORO SHI CHUO KU" {
		t.Errorf("CityRome = %q, want %q", got.CityRome, "SAPPORO SHI CHUO KU")
	}
	if got.TownRome != "ODORIHIGASHI" {
		t.Errorf("TownRome = %q, want %q", got.TownRome, "ODORIHIGASHI")
	}
}
