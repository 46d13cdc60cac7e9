package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// readNames returns args, or the non-blank lines of r when args is empty.
func readNames(args []string, r io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var names []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		names = append(names, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading names from stdin: %w", err)
	}
	return names, nil
}
