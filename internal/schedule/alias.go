package schedule

import (
	"fmt"
	"os"
	"strings"
)

// Aliases maps an exact raw venue label to a preferred stadium slug,
// overriding the computed one. The table is loaded once by the caller and
// treated as read-only by everything downstream.
type Aliases map[string]string

// LoadAliases reads a venue alias CSV ("Raw Venue Label,slug" per line).
// Blank lines and lines starting with # are skipped, as are lines without a
// comma. A missing file is not an error; it simply yields no aliases.
func LoadAliases(path string) (Aliases, error) {
	aliases := make(Aliases)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return aliases, nil
		}
		return nil, fmt.Errorf("reading aliases: %w", err)
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		src, slug, ok := strings.Cut(line, ",")
		if !ok {
			continue
		}
		src = strings.TrimSpace(src)
		slug = strings.TrimSpace(slug)
		if src != "" && slug != "" {
			aliases[src] = slug
		}
	}

	return aliases, nil
}
