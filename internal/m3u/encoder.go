package m3u

import (
	"fmt"
	"io"
	"time"
)

// TimestampLayout is the layout of the generation comment line.
const TimestampLayout = "2006-01-02 15:04:05"

// Encoder writes an extended M3U playlist: a header referencing the program
// guide, a generation comment and one entry per channel in insertion order.
type Encoder struct {
	epgURL      string
	generatedAt time.Time
	items       []*Channel
}

// NewEncoder creates an encoder. An empty guideURL omits the x-tvg-url attribute.
func NewEncoder(guideURL string, generatedAt time.Time) *Encoder {
	return &Encoder{epgURL: guideURL, generatedAt: generatedAt, items: []*Channel{}}
}

// AddChannel appends an entry.
func (p *Encoder) AddChannel(item *Channel) {
	p.items = append(p.items, item)
}

// Len returns the number of entries added so far.
func (p *Encoder) Len() int {
	return len(p.items)
}

// Encode writes the playlist to w.
func (p *Encoder) Encode(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "#EXTM3U"); err != nil {
		return err
	}

	if p.epgURL != "" {
		if _, err := fmt.Fprintf(w, " x-tvg-url=\"%s\"", p.epgURL); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "\n"); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "# Update: %s\n", p.generatedAt.Format(TimestampLayout)); err != nil {
		return err
	}

	for _, item := range p.items {
		if err := item.encode(w); err != nil {
			return err
		}
	}

	return nil
}
