package romname

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Aliases maps a ROM's base filename to a custom display name, as read from
// a map.txt file:
//
//	mario.gb<TAB>Super Mario Land
//	zelda.gb<TAB>.hidden
//
// An alias starting with "." hides the ROM.
type Aliases map[string]string

// ReadAliases parses tab-delimited map.txt content. Blank lines and lines
// without a tab are skipped; for a repeated key the first line wins.
func ReadAliases(r io.Reader) (Aliases, error) {
	aliases := make(Aliases)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		key, value, ok := strings.Cut(line, "\t")
		if !ok || key == "" {
			continue
		}
		if _, seen := aliases[key]; !seen {
			aliases[key] = value
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading aliases: %w", err)
	}
	return aliases, nil
}

// LoadAliases reads a map.txt file.
func LoadAliases(path string) (Aliases, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening alias map: %w", err)
	}
	defer f.Close()

	return ReadAliases(f)
}

// Lookup returns the alias for a filename. Any leading directory is
// ignored.
func (a Aliases) Lookup(name string) (string, bool) {
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	alias, ok := a[name]
	return alias, ok
}
