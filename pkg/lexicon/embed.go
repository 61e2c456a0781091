package lexicon

import (
	"bufio"
	"embed"
	"fmt"
	"strings"
)

//go:embed data/words.txt data/nouns.txt data/irregular.txt
var embeddedFS embed.FS

const (
	wordsFile     = "data/words.txt"
	nounsFile     = "data/nouns.txt"
	irregularFile = "data/irregular.txt"
)

// loadEmbeddedList reads one lower-cased entry per line from an embedded
// data file. Blank lines and lines starting with '#' are skipped.
func loadEmbeddedList(name string) ([]string, error) {
	file, err := embeddedFS.Open(name)
	if err != nil {
		return nil, fmt.Errorf("error opening embedded list %s: %w", name, err)
	}
	defer file.Close()

	var entries []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, strings.ToLower(line))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading embedded list %s: %w", name, err)
	}

	return entries, nil
}
