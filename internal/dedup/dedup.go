package dedup

import (
	"github.com/alorle/iptv-curator/internal/channel"
)

// Deduplicator keeps the first channel seen for each stream address across
// every source of a run, preserving insertion order.
type Deduplicator struct {
	seen     map[string]bool
	channels []channel.Channel
}

// New creates an empty Deduplicator.
func New() *Deduplicator {
	return &Deduplicator{seen: make(map[string]bool)}
}

// Reserve marks an address as taken without recording a channel. Later
// candidates with that address are rejected. Returns false if the address
// was already present.
func (d *Deduplicator) Reserve(address string) bool {
	if d.seen[address] {
		return false
	}
	d.seen[address] = true
	return true
}

// Add records ch if its address is new. Returns false for duplicates, which
// are discarded even when their name differs.
func (d *Deduplicator) Add(ch channel.Channel) bool {
	if !d.Reserve(ch.Address()) {
		return false
	}
	d.channels = append(d.channels, ch)
	return true
}

// Channels returns the recorded channels in insertion order.
func (d *Deduplicator) Channels() []channel.Channel {
	out := make([]channel.Channel, len(d.channels))
	copy(out, d.channels)
	return out
}

// Len returns the number of recorded channels.
func (d *Deduplicator) Len() int {
	return len(d.channels)
}
