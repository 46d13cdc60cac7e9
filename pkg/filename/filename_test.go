package filename

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/josegonzalez/romname/pkg/testutil"
)

// fields exposes a ParsedName by its JSON field names.
func fields(p ParsedName) map[string]any {
	return map[string]any{
		"title":        p.Title,
		"display_name": p.DisplayName,
		"region":       p.Region,
		"language":     p.Language,
		"version":      p.Version,
		"dev_status":   p.DevStatus,
		"license":      p.License,
		"additional":   p.Additional,
		"special":      p.Special,
		"status":       p.Status,
		"has_tags":     p.HasTags,
		"extension":    p.Extension,
	}
}

func TestParseNoIntroFilename(t *testing.T) {
	testCases := testutil.MustTestCases(t, "filename", "parse_nointro_filename")

	for _, tc := range testCases {
		t.Run(tc.ID, func(t *testing.T) {
			input, ok := tc.InputString()
			if !ok {
				t.Fatalf("Input is not a string")
			}
			expected, ok := tc.ExpectedMap()
			if !ok {
				t.Fatalf("Expected is not a map")
			}

			got := fields(ParseNoIntroFilename(input))
			for key, want := range expected {
				value, known := got[key]
				if !known {
					t.Fatalf("unknown field %q in test data", key)
				}
				if value != want {
					t.Errorf("ParseNoIntroFilename(%q).%s = %#v, want %#v", input, key, value, want)
				}
			}
		})
	}
}

func TestParseNoIntroFilenameRecord(t *testing.T) {
	got := ParseNoIntroFilename("Legend of Zelda, The (USA) (En,Ja) (v1.2) (Beta) [!].nes")
	want := ParsedName{
		Title:       "Legend of Zelda, The",
		DisplayName: "The Legend of Zelda",
		Region:      "USA",
		Language:    "En,Ja",
		Version:     "v1.2",
		DevStatus:   "Beta",
		Status:      "!",
		HasTags:     true,
		Extension:   "nes",
		Tags:        []string{"!", "Beta", "v1.2", "En,Ja", "USA"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseNoIntroFilename() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseNoIntroFilenameOrderIndependent(t *testing.T) {
	permutations := []string{
		"Game (v1.0) (USA) (En).nes",
		"Game (USA) (En) (v1.0).nes",
		"Game (En) (v1.0) (USA).nes",
	}
	ignoreTags := cmpopts.IgnoreFields(ParsedName{}, "Tags")

	first := ParseNoIntroFilename(permutations[0])
	for _, name := range permutations[1:] {
		if diff := cmp.Diff(first, ParseNoIntroFilename(name), ignoreTags); diff != "" {
			t.Errorf("ParseNoIntroFilename(%q) differs from %q (-first +got):\n%s", name, permutations[0], diff)
		}
	}
}

func TestParseNoIntroFilenameHasTagsInvariant(t *testing.T) {
	testCases := testutil.MustTestCases(t, "filename", "parse_nointro_filename")

	for _, tc := range testCases {
		input, _ := tc.InputString()
		p := ParseNoIntroFilename(input)
		anySet := p.Region != "" || p.Language != "" || p.Version != "" || p.DevStatus != "" ||
			p.License != "" || p.Additional != "" || p.Special != "" || p.Status != ""
		if p.HasTags != anySet {
			t.Errorf("ParseNoIntroFilename(%q).HasTags = %v, fields set = %v", input, p.HasTags, anySet)
		}
	}
}

func TestStripExtension(t *testing.T) {
	testCases := testutil.MustTestCases(t, "filename", "strip_extension")

	for _, tc := range testCases {
		t.Run(tc.ID, func(t *testing.T) {
			input, _ := tc.InputString()
			expected, _ := tc.ExpectedString()

			result := StripExtension(input)
			if result != expected {
				t.Errorf("StripExtension(%q) = %q, want %q", input, result, expected)
			}
		})
	}
}

func TestStripExtensionIdempotent(t *testing.T) {
	inputs := []string{
		"Tetris.gb",
		"Celeste.p8.png",
		"Game (v1.2).nes",
		"Game (USA) [!].zip",
		"Tetris",
		"",
	}

	for _, input := range inputs {
		once := StripExtension(input)
		if twice := StripExtension(once); twice != once {
			t.Errorf("StripExtension(StripExtension(%q)) = %q, want %q", input, twice, once)
		}
	}
}

func TestExtractTag(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		open, close   byte
		wantRemaining string
		wantTag       string
		wantOK        bool
	}{
		{"rightmost paren", "Game (USA) (En)", '(', ')', "Game (USA)", "En", true},
		{"bracket", "Game (USA) [b]", '[', ']', "Game (USA)", "b", true},
		{"content not trimmed", "Game ( Disc 1 )", '(', ')', "Game", " Disc 1 ", true},
		{"trailing text kept", "Game [b] (USA)", '[', ']', "Game (USA)", "b", true},
		{"no close", "Game with (Paren", '(', ')', "Game with (Paren", "", false},
		{"no open", "Game Paren)", '(', ')', "Game Paren)", "", false},
		{"close at start", ")Game", '(', ')', ")Game", "", false},
		{"empty tag", "Game ()", '(', ')', "Game", "", true},
		{"empty text", "", '(', ')', "", "", false},
		{"nearest open wins", "Game (a (b)", '(', ')', "Game (a", "b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remaining, tag, ok := ExtractTag(tt.text, tt.open, tt.close)
			if ok != tt.wantOK || tag != tt.wantTag || remaining != tt.wantRemaining {
				t.Errorf("ExtractTag(%q) = (%q, %q, %v), want (%q, %q, %v)",
					tt.text, remaining, tag, ok, tt.wantRemaining, tt.wantTag, tt.wantOK)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		tag      string
		prior    ParsedName
		wantRule string
	}{
		{"b", ParsedName{}, "status"},
		{"!", ParsedName{}, "status"},
		{"Unl", ParsedName{}, "license"},
		{"Beta", ParsedName{}, "dev_status"},
		{"Beta 2", ParsedName{}, "dev_status"},
		{"Not a Proto", ParsedName{}, "dev_status"},
		{"beta", ParsedName{}, "additional"},
		{"v1.2", ParsedName{}, "version"},
		{"Rev A", ParsedName{}, "version"},
		{"vA", ParsedName{}, "additional"},
		{"Revision", ParsedName{}, "additional"},
		{"En", ParsedName{}, "language"},
		{"En,Ja,Fr", ParsedName{}, "language"},
		{"En,", ParsedName{}, "additional"},
		{"EnJa,Fr", ParsedName{}, "additional"},
		{"EN", ParsedName{}, "additional"},
		{"En", ParsedName{Language: "Fr"}, "additional"},
		{"USA", ParsedName{}, "region"},
		{"Japan, USA", ParsedName{}, "region"},
		{"USA", ParsedName{Region: "Europe"}, "additional"},
		{"Disc 1", ParsedName{}, "additional"},
		{"Disc 2", ParsedName{Additional: "Disc 1"}, ""},
		{"", ParsedName{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			p := tt.prior
			got := Classify(tt.tag, &p)
			if got != tt.wantRule {
				t.Errorf("Classify(%q) = %q, want %q", tt.tag, got, tt.wantRule)
			}
			if p.HasTags != (got != "") {
				t.Errorf("Classify(%q) HasTags = %v", tt.tag, p.HasTags)
			}
		})
	}
}

func TestClassifyStatusLastWins(t *testing.T) {
	p := ParseNoIntroFilename("Game [a] [b].nes")
	if p.Status != "a" {
		t.Errorf("Status = %q, want %q", p.Status, "a")
	}
}

func TestRuleNames(t *testing.T) {
	want := []string{"status", "license", "dev_status", "version", "language", "region", "additional"}

	got := RuleNames()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RuleNames() mismatch (-want +got):\n%s", diff)
	}

	// Callers get a copy; the classification order cannot be changed
	got[0], got[len(got)-1] = got[len(got)-1], got[0]
	if diff := cmp.Diff(want, RuleNames()); diff != "" {
		t.Errorf("RuleNames() changed after caller mutation (-want +got):\n%s", diff)
	}
	if p := ParseNoIntroFilename("Game [!].nes"); p.Status != "!" || p.Additional != "" {
		t.Errorf("Status = %q, Additional = %q after caller mutation", p.Status, p.Additional)
	}
}

func TestParseNoIntroFilenameConcurrent(t *testing.T) {
	const name = "Legend of Zelda, The (USA) (En,Ja) (v1.2) (Beta) [!].nes"
	want := ParseNoIntroFilename(name)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				if got := ParseNoIntroFilename(name); !cmp.Equal(want, got) {
					t.Errorf("concurrent parse mismatch: %s", cmp.Diff(want, got))
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestNormalizeArticle(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Legend of Zelda, The", "The Legend of Zelda"},
		{"Man Born in Hell, A", "A Man Born in Hell"},
		{"Angry Bird, An", "An Angry Bird"},
		{"Legend of Zelda, the", "the Legend of Zelda"},
		{"The Legend of Zelda", "The Legend of Zelda"},
		{"Banana", "Banana"},
		{"Theater", "Theater"},
		{"Game,The", "Game,The"},
		{", The", "The"},
		{"Beast, A, The", "A The Beast"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := NormalizeArticle(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeArticle(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if again := NormalizeArticle(got); again != got {
				t.Errorf("NormalizeArticle not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestGetFileExtension(t *testing.T) {
	tests := map[string]string{
		"Super Mario World (USA).sfc": "sfc",
		"Celeste.p8.png":              "png",
		"GAME.NES":                    "nes",
		"Game (v1.2)":                 "",
		"Tetris":                      "",
	}
	for input, want := range tests {
		if got := GetFileExtension(input); got != want {
			t.Errorf("GetFileExtension(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestExtractTags(t *testing.T) {
	got := ExtractTags("Game (USA) (Rumble Version) (Disc 1) [b].nes")
	want := []string{"b", "Disc 1", "Rumble Version", "USA"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ExtractTags() mismatch (-want +got):\n%s", diff)
	}
}

func TestRegionCodes(t *testing.T) {
	tests := []struct {
		region string
		want   []string
	}{
		{"USA", []string{"us"}},
		{"Japan, USA", []string{"jp", "us"}},
		{"USA,Europe", []string{"us", "eu"}},
		{"USA, America", []string{"us"}},
		{"Atlantis", nil},
		{"", nil},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, RegionCodes(tt.region)); diff != "" {
			t.Errorf("RegionCodes(%q) mismatch (-want +got):\n%s", tt.region, diff)
		}
	}
}

func TestLanguageCodes(t *testing.T) {
	if diff := cmp.Diff([]string{"en", "ja", "fr"}, LanguageCodes("En,Ja,Fr")); diff != "" {
		t.Errorf("LanguageCodes mismatch (-want +got):\n%s", diff)
	}
	if got := LanguageCodes(""); got != nil {
		t.Errorf("LanguageCodes(\"\") = %v, want nil", got)
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) bool
		in   string
		want bool
	}{
		{"bios", IsBiosFile, "[BIOS] Game Boy (World).gb", true},
		{"bios path only", IsBiosFile, "/roms/bios/Tetris.gb", false},
		{"demo beta", IsDemoFile, "StarFox (USA) (Beta).sfc", true},
		{"demo tag", IsDemoFile, "Game (USA) (Demo).sfc", true},
		{"demo none", IsDemoFile, "Game (USA).sfc", false},
		{"unlicensed", IsUnlicensed, "Homebrew Game (World) (Unl).nes", true},
		{"unlicensed pirate", IsUnlicensed, "Game (Asia) (Pirate).nes", true},
		{"licensed", IsUnlicensed, "Game (USA).nes", false},
		{"verified", IsVerifiedDump, "Game (USA) [!].nes", true},
		{"bad dump", IsBadDump, "Game (USA) [b].nes", true},
		{"not bad dump", IsBadDump, "Game (USA) [!].nes", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.in); got != tt.want {
				t.Errorf("%s(%q) = %v, want %v", tt.name, tt.in, got, tt.want)
			}
		})
	}
}
