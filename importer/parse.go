package importer

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// Player is one parsed roster line: the player's name and their listed
// rating. Trailing fields (per-round opponents, scores after ';') are
// carried by TSH but not interpreted here.
type Player struct {
	Name   string
	Rating int
}

var (
	configLineRe = regexp.MustCompile(`^config\s+(\w+)\s*=\s*["']?([^"'#\n]+)["']?`)
	rosterLineRe = regexp.MustCompile(`^(.+?)\s+(\d+)`)
)

// ParseConfig extracts key/value pairs from a config.tsh file. Lines
// look like `config event_name = "GSF Nationals 2025"`; quotes are
// optional and `#` starts a comment. Lines that do not match are
// skipped.
func ParseConfig(r io.Reader) (map[string]string, error) {
	cfg := make(map[string]string)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		m := configLineRe.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		cfg[strings.TrimSpace(m[1])] = strings.TrimSpace(m[2])
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseRoster parses a TSH .t division file: one player per line,
// `<name> <rating> [trailing fields]`. Blank lines, comments and lines
// without a trailing integer rating are skipped silently; the import is
// deliberately best-effort about malformed rows.
func ParseRoster(r io.Reader) ([]Player, error) {
	players := make([]Player, 0)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		m := rosterLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		rating, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		players = append(players, Player{
			Name:   strings.TrimSpace(m[1]),
			Rating: rating,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return players, nil
}
