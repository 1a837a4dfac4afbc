package normalize

import (
	"testing"
)

func TestRomaji(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "trailing chome digits and space removed",
			input: "GINZA 4",
			want:  "GINZA",
		},
		{
			name:  "embedded spaces removed",
			input: "HIGASHI GINZA",
			want:  "HIGASHIGINZA",
		},
		{
			name:  "apostrophe after syllabic n",
			input: "SHIN'YOKOHAMA",
			want:  "SHINYOKOHAMA",
		},
		{
			name:  "n before b assimilates",
			input: "NIHONBASHI",
			want:  "NIHOMBASHI",
		},
		{
			name:  "n before m assimilates",
			input: "GUNMA",
			want:  "GUMMA",
		},
		{
			name:  "n before p assimilates",
			input: "SHINPO",
			want:  "SHIMPO",
		},
		{
			name:  "long o collapses",
			input: "OOSAKA",
			want:  "OSAKA",
		},
		{
			name:  "ou collapses",
			input: "KOUJIMACHI",
			want:  "KOJIMACHI",
		},
		{
			name:  "long u collapses",
			input: "YUURAKU",
			want:  "YURAKU",
		},
		{
			name:  "historical dzu",
			input: "KAWADZU",
			want:  "KAWAZU",
		},
		{
			name:  "historical dji",
			input: "FUDJI",
			want:  "FUJI",
		},
		{
			name:  "historical wo",
			input: "MATSUWO",
			want:  "MATSUO",
		},
		{
			name:  "historical uye",
			input: "UYEHARA",
			want:  "UEHARA",
		},
		{
			name:  "historical yen",
			input: "YENOKI",
			want:  "ENOKI",
		},
		{
			name:  "historical kwa",
			input: "KWANSEI",
			want:  "KANSEI",
		},
		{
			name:  "historical gwa",
			input: "HONGWANJI",
			want:  "HONGANJI",
		},
		{
			name:  "kunrei tyo",
			input: "YAMATOTYO",
			want:  "YAMATOCHO",
		},
		{
			name:  "kunrei syo",
			input: "SYOWA",
			want:  "SHOWA",
		},
		{
			name:  "kunrei zyo",
			input: "HONZYO",
			want:  "HONJO",
		},
		{
			name:  "no corrections apply",
			input: "KASUMIGASEKI",
			want:  "KASUMIGASEKI",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Romaji(tt.input)
			if got != tt.want {
				t.Errorf("Romaji(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRemoveSpaces(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"MINAMI AOYAMA", "MINAMIAOYAMA"},
		{" A B C ", "ABC"},
		{"NOSPACE", "NOSPACE"},
		{"", ""},
	}

	for _, tt := range tests {
		got := RemoveSpaces(tt.input)
		if got != tt.want {
			t.Errorf("RemoveSpaces(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
