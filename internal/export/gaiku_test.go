package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/pacport/japanese-addresses/internal/gazetteer"
)

func TestWriterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "gaiku.csv")

	w, err := NewWriter(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}

	err = w.WritePoints([]gazetteer.GaikuPoint{
		{PrefName: "東京都", CityName: "中央区", TownName: "築地", BlockNumber: "5", Lon: 139.77, Lat: 35.66},
	})
	if err != nil {
		t.Fatalf("WritePoints() error = %v", err)
	}
	err = w.WritePoints([]gazetteer.GaikuPoint{
		{PrefName: "北海道", CityName: "札幌市中央区", TownName: "盤渓", BlockNumber: "452", Lon: 141.27, Lat: 43.05},
	})
	if err != nil {
		t.Fatalf("WritePoints() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open artifact: %v", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("failed to read artifact: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("artifact has %d rows, want header plus 2 points", len(records))
	}
	if records[0][0] != "pref" {
		t.Errorf("header = %v, want it first", records[0])
	}
	if records[1][3] != "5" || records[2][3] != "452" {
		t.Errorf("block numbers = %q, %q, want source order kept", records[1][3], records[2][3])
	}
	if records[1][4] != "139.77" {
		t.Errorf("lon = %q, want %q", records[1][4], "139.77")
	}
}
