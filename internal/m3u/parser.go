package m3u

import (
	"bufio"
	"io"
	"iter"
	"strings"

	"github.com/alorle/iptv-curator/internal/channel"
)

const (
	infoPrefix = "#EXTINF"

	maxLineSize = 1024 * 1024
)

// Entry is a display name paired with the stream address that followed it.
type Entry struct {
	Name    string
	Address string
}

// Parser reads entries from an extended M3U document.
//
// An #EXTINF line sets the pending name; the next line carrying a stream
// scheme consumes it. Addresses without a pending name, names without a
// following address and any unrecognised line are dropped silently.
type Parser struct {
	scanner *bufio.Scanner
	err     error
}

// NewParser creates a parser over r.
func NewParser(r io.Reader) *Parser {
	scanner := bufio.NewScanner(r)
	// #EXTINF lines with inline logos can be long
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Parser{scanner: scanner}
}

// Parse is shorthand for NewParser(r).All().
func Parse(r io.Reader) iter.Seq[Entry] {
	return NewParser(r).All()
}

// All returns a single-use sequence of entries in document order.
// Scanning stops early if the consumer stops; read errors end the sequence
// and are reported by Err.
func (p *Parser) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		var pending string

		for p.scanner.Scan() {
			line := strings.TrimSpace(p.scanner.Text())
			if line == "" {
				continue
			}

			if strings.HasPrefix(line, infoPrefix) {
				// last metadata wins, even when it carries no name
				pending = extractDisplayName(line)
				continue
			}

			if !channel.HasStreamScheme(line) {
				continue
			}

			if pending == "" {
				continue
			}

			entry := Entry{Name: pending, Address: line}
			pending = ""
			if !yield(entry) {
				return
			}
		}

		p.err = p.scanner.Err()
	}
}

// Err returns the first read error encountered by All, if any.
func (p *Parser) Err() error {
	return p.err
}

// extractDisplayName returns the trimmed text after the last comma that is
// not inside a quoted attribute value. Returns "" when there is none.
func extractDisplayName(line string) string {
	inQuotes := false
	last := -1
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '"':
			inQuotes = !inQuotes
		case ',':
			if !inQuotes {
				last = i
			}
		}
	}
	if last < 0 {
		return ""
	}
	return strings.TrimSpace(line[last+1:])
}
