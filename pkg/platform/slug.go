// Package platform identifies the platform a ROM belongs to from its file
// extension.
package platform

import (
	"sort"
	"strings"
)

// Slug represents a universal platform identifier.
type Slug string

// Platform slug constants. SlugUnknown is the zero value.
const (
	SlugUnknown       Slug = ""
	SlugAtari2600     Slug = "atari2600"
	SlugAtari5200     Slug = "atari5200"
	SlugAtari7800     Slug = "atari7800"
	SlugColecovision  Slug = "colecovision"
	SlugFDS           Slug = "fds"
	SlugGameGear      Slug = "gamegear"
	SlugGB            Slug = "gb"
	SlugGBA           Slug = "gba"
	SlugGBC           Slug = "gbc"
	SlugGenesis       Slug = "genesis"
	SlugIntellivision Slug = "intellivision"
	SlugLynx          Slug = "lynx"
	SlugMSX           Slug = "msx"
	SlugN64           Slug = "n64"
	SlugNDS           Slug = "nds"
	SlugNeoGeoPocket  Slug = "ngp"
	SlugNeoGeoColor   Slug = "ngpc"
	SlugNES           Slug = "nes"
	SlugPCEngine      Slug = "tg16"
	SlugPico8         Slug = "pico-8"
	SlugPokemonMini   Slug = "pokemon-mini"
	SlugPSX           Slug = "psx"
	SlugSega32X       Slug = "sega32"
	SlugSegaCD        Slug = "segacd"
	SlugSG1000        Slug = "sg1000"
	SlugSMS           Slug = "sms"
	SlugSNES          Slug = "snes"
	SlugVectrex       Slug = "vectrex"
	SlugVirtualBoy    Slug = "virtualboy"
	SlugWonderSwan    Slug = "wonderswan"
	SlugWonderSwanC   Slug = "wonderswan-color"
)

// String returns the string representation of the slug.
func (s Slug) String() string {
	return string(s)
}

// IsValid checks if the slug is a known platform.
func (s Slug) IsValid() bool {
	_, exists := slugNames[s]
	return exists
}

// Name returns the human-readable name for the platform.
func (s Slug) Name() string {
	if name, ok := slugNames[s]; ok {
		return name
	}
	return string(s)
}

// slugNames maps slugs to human-readable names.
var slugNames = map[Slug]string{
	SlugAtari2600:     "Atari 2600",
	SlugAtari5200:     "Atari 5200",
	SlugAtari7800:     "Atari 7800",
	SlugColecovision:  "ColecoVision",
	SlugFDS:           "Famicom Disk System",
	SlugGameGear:      "Game Gear",
	SlugGB:            "Game Boy",
	SlugGBA:           "Game Boy Advance",
	SlugGBC:           "Game Boy Color",
	SlugGenesis:       "Sega Genesis/Mega Drive",
	SlugIntellivision: "Intellivision",
	SlugLynx:          "Atari Lynx",
	SlugMSX:           "MSX",
	SlugN64:           "Nintendo 64",
	SlugNDS:           "Nintendo DS",
	SlugNeoGeoPocket:  "Neo Geo Pocket",
	SlugNeoGeoColor:   "Neo Geo Pocket Color",
	SlugNES:           "Nintendo Entertainment System",
	SlugPCEngine:      "TurboGrafx-16/PC Engine",
	SlugPico8:         "PICO-8",
	SlugPokemonMini:   "Pokemon Mini",
	SlugPSX:           "PlayStation",
	SlugSega32X:       "Sega 32X",
	SlugSegaCD:        "Sega CD",
	SlugSG1000:        "SG-1000",
	SlugSMS:           "Sega Master System",
	SlugSNES:          "Super Nintendo Entertainment System",
	SlugVectrex:       "Vectrex",
	SlugVirtualBoy:    "Virtual Boy",
	SlugWonderSwan:    "WonderSwan",
	SlugWonderSwanC:   "WonderSwan Color",
}

// extensionSlugs maps unambiguous ROM file extensions to platforms.
// Container formats such as zip, 7z, bin, cue and chd are left out.
var extensionSlugs = map[string]Slug{
	"a26": SlugAtari2600,
	"a52": SlugAtari5200,
	"a78": SlugAtari7800,
	"col": SlugColecovision,
	"fds": SlugFDS,
	"gg":  SlugGameGear,
	"gb":  SlugGB,
	"gba": SlugGBA,
	"gbc": SlugGBC,
	"md":  SlugGenesis,
	"gen": SlugGenesis,
	"smd": SlugGenesis,
	"int": SlugIntellivision,
	"lnx": SlugLynx,
	"mx1": SlugMSX,
	"mx2": SlugMSX,
	"n64": SlugN64,
	"z64": SlugN64,
	"v64": SlugN64,
	"nds": SlugNDS,
	"ngp": SlugNeoGeoPocket,
	"ngc": SlugNeoGeoColor,
	"nes": SlugNES,
	"unf": SlugNES,
	"pce": SlugPCEngine,
	"png": SlugPico8,
	"p8":  SlugPico8,
	"min": SlugPokemonMini,
	"psx": SlugPSX,
	"pbp": SlugPSX,
	"32x": SlugSega32X,
	"sg":  SlugSG1000,
	"sms": SlugSMS,
	"sfc": SlugSNES,
	"smc": SlugSNES,
	"vec": SlugVectrex,
	"vb":  SlugVirtualBoy,
	"ws":  SlugWonderSwan,
	"wsc": SlugWonderSwanC,
}

// FromExtension returns the platform for a file extension given with or
// without the leading dot, case-insensitively. Unknown and container
// extensions return SlugUnknown.
func FromExtension(ext string) Slug {
	return extensionSlugs[strings.ToLower(strings.TrimPrefix(ext, "."))]
}

// Extensions returns the sorted extensions recognized for a platform.
func (s Slug) Extensions() []string {
	var exts []string
	for ext, slug := range extensionSlugs {
		if slug == s {
			exts = append(exts, ext)
		}
	}
	sort.Strings(exts)
	return exts
}

// AllSlugs returns all defined platform slugs, sorted.
func AllSlugs() []Slug {
	slugs := make([]Slug, 0, len(slugNames))
	for slug := range slugNames {
		slugs = append(slugs, slug)
	}
	sort.Slice(slugs, func(i, j int) bool { return slugs[i] < slugs[j] })
	return slugs
}
