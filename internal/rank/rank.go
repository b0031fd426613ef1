// Package rank orders accepted channels by a priority keyword list.
package rank

import (
	"cmp"
	"math"
	"slices"

	"github.com/alorle/iptv-curator/internal/channel"
	"github.com/alorle/iptv-curator/internal/keyword"
)

// Unranked is the rank of a channel matching no priority keyword. It sorts
// after every ranked channel.
const Unranked = math.MaxInt

// Ranker maps channel names to the index of the first priority keyword they
// contain. It is not safe for concurrent use.
type Ranker struct {
	priority *keyword.Set
}

// New creates a Ranker over the ordered priority list.
func New(priority []string, folder keyword.Folder) *Ranker {
	return &Ranker{priority: keyword.NewSet(priority, folder)}
}

// Rank returns the priority index for name, or Unranked.
func (r *Ranker) Rank(name string) int {
	pos, _, ok := r.priority.First(name)
	if !ok {
		return Unranked
	}
	return pos
}

// Sort orders channels by rank ascending in place. Equal ranks keep their
// relative order.
func (r *Ranker) Sort(channels []channel.Channel) {
	ranks := make(map[string]int, len(channels))
	for _, ch := range channels {
		ranks[ch.Address()] = r.Rank(ch.Name())
	}
	slices.SortStableFunc(channels, func(a, b channel.Channel) int {
		return cmp.Compare(ranks[a.Address()], ranks[b.Address()])
	})
}
