package rfc

import (
	"testing"
	"time"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name      string
		given     string
		paternal  string
		maternal  string
		birthDate string
		want      string
	}{
		{
			name:      "standard surname with inner vowel",
			given:     "Juan",
			paternal:  "Pérez",
			maternal:  "López",
			birthDate: "1990-01-15",
			want:      "PELJ900115",
		},
		{
			name:      "particle-only surname takes last token",
			given:     "María Consuelo",
			paternal:  "De la O",
			maternal:  "Garza",
			birthDate: "1980-05-12",
			want:      "OXGC800512",
		},
		{
			name:      "maria skips to second name",
			given:     "María Fernanda",
			paternal:  "Sánchez",
			maternal:  "Ruiz",
			birthDate: "2001-12-03",
			want:      "SARF011203",
		},
		{
			name:      "jose skips to second name",
			given:     "José Ángel",
			paternal:  "Torres",
			maternal:  "Vega",
			birthDate: "1975-07-30",
			want:      "TOVA750730",
		},
		{
			name:      "skip name with only particles after falls back",
			given:     "Ma Del",
			paternal:  "Garza",
			maternal:  "",
			birthDate: "1960-02-28",
			want:      "GAXM600228",
		},
		{
			name:      "single-letter surname pads with X",
			given:     "Ana",
			paternal:  "O",
			maternal:  "Pérez",
			birthDate: "1995-10-01",
			want:      "OXPA951001",
		},
		{
			name:      "mc prefix fuses with remainder",
			given:     "Marty",
			paternal:  "Mc Fly",
			maternal:  "Baines",
			birthDate: "1968-06-12",
			want:      "MXBM680612",
		},
		{
			name:      "enye maps to X",
			given:     "Pedro",
			paternal:  "Ñando",
			maternal:  "Ríos",
			birthDate: "1988-11-09",
			want:      "XARP881109",
		},
		{
			name:      "compound paternal keeps trailing particles out of letters",
			given:     "Luis",
			paternal:  "Garza de la Cruz",
			maternal:  "Mora",
			birthDate: "1999-04-18",
			want:      "GAML990418",
		},
		{
			name:      "missing maternal uses X",
			given:     "Carlos",
			paternal:  "Domínguez",
			maternal:  "",
			birthDate: "1970-03-05",
			want:      "DOXC700305",
		},
		{
			name:      "denylisted root replaces fourth letter",
			given:     "Omar",
			paternal:  "Pu",
			maternal:  "Tapia",
			birthDate: "1992-08-21",
			want:      "PUTX920821",
		},
		{
			name:      "invalid birth date returns letters only",
			given:     "Juan",
			paternal:  "Pérez",
			maternal:  "López",
			birthDate: "not-a-date",
			want:      "PELJ",
		},
		{
			name:      "missing given name yields empty",
			given:     "",
			paternal:  "Pérez",
			maternal:  "López",
			birthDate: "1990-01-15",
			want:      "",
		},
		{
			name:      "missing paternal yields empty",
			given:     "Juan",
			paternal:  "",
			maternal:  "López",
			birthDate: "1990-01-15",
			want:      "",
		},
		{
			name:      "missing birth date yields empty",
			given:     "Juan",
			paternal:  "Pérez",
			maternal:  "López",
			birthDate: "",
			want:      "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Generate(tt.given, tt.paternal, tt.maternal, tt.birthDate)
			if got != tt.want {
				t.Errorf("Generate(%q, %q, %q, %q) = %q, want %q",
					tt.given, tt.paternal, tt.maternal, tt.birthDate, got, tt.want)
			}
		})
	}
}

func TestGenerateDeterministic(t *testing.T) {
	first := Generate("María Consuelo", "De la O", "Garza", "1980-05-12")
	for i := 0; i < 10; i++ {
		if got := Generate("María Consuelo", "De la O", "Garza", "1980-05-12"); got != first {
			t.Fatalf("Generate() not deterministic: %q != %q", got, first)
		}
	}
}

// Every denylisted root must come out with its fourth letter replaced,
// so no generated RFC ever starts with a denylisted word verbatim.
func TestGenerateDenylistNeverVerbatim(t *testing.T) {
	for word := range denylist {
		// Craft inputs that derive exactly this root: a two-letter
		// paternal surname contributes its two characters verbatim.
		given := string(word[3]) + "ANA"
		paternal := word[:2]
		maternal := string(word[2]) + "X"

		got := Generate(given, paternal, maternal, "2000-01-01")
		if len(got) < 4 {
			t.Fatalf("Generate() for root %s returned %q", word, got)
		}
		if got[:4] == word {
			t.Errorf("Generate() produced denylisted root %q verbatim", word)
		}
		if want := word[:3] + "X"; got[:4] != want {
			t.Errorf("Generate() root = %q, want %q", got[:4], want)
		}
	}
}

func TestAgeAt(t *testing.T) {
	ref := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		birthDate string
		want      int
	}{
		{"birthday already passed this year", "1980-05-12", 46},
		{"birthday later this year", "1980-11-30", 45},
		{"birthday today", "2000-08-30", 26},
		{"future date", "2030-01-01", -1},
		{"invalid date", "garbage", -1},
		{"empty date", "", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AgeAt(tt.birthDate, ref); got != tt.want {
				t.Errorf("AgeAt(%q) = %d, want %d", tt.birthDate, got, tt.want)
			}
		})
	}
}
