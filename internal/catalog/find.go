package catalog

import (
	"sort"
	"strings"

	"github.com/atomicstack/single-mode-shortcuts/internal/keymap"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Match is a leaf found by Find.
type Match struct {
	Keys  string
	Path  []string
	Label string
	Kind  string
}

// Leaves returns every leaf below root in depth-first key order.
func Leaves(root keymap.Entry) []Match {
	var out []Match
	keymap.Walk(root, func(p keymap.Path, e keymap.Entry) bool {
		if leaf, ok := e.(*keymap.Leaf); ok {
			out = append(out, Match{
				Keys:  p.Keys,
				Path:  p.Names,
				Label: leaf.Label(),
				Kind:  keymap.Kind(leaf.Action),
			})
		}
		return true
	})
	return out
}

// Find ranks the leaves of root against query. Each leaf is matched by its
// slash-joined path of names, so "fw inc" can find framework/brightness/increase.
// An empty query returns every leaf.
func Find(root keymap.Entry, query string) []Match {
	leaves := Leaves(root)
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return leaves
	}
	targets := make([]string, len(leaves))
	for i, m := range leaves {
		targets[i] = m.PathString()
	}
	ranks := fuzzy.RankFindNormalizedFold(strings.Join(strings.Fields(trimmed), ""), targets)
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})
	out := make([]Match, 0, len(ranks))
	for _, rank := range ranks {
		out = append(out, leaves[rank.OriginalIndex])
	}
	return out
}

// PathString joins the names along the match's path with slashes.
func (m Match) PathString() string {
	return strings.Join(m.Path, "/")
}

// DisplayKeys renders the key sequence, spelling out spaces.
func (m Match) DisplayKeys() string {
	var b strings.Builder
	for _, r := range m.Keys {
		b.WriteString(keymap.DisplayKey(string(r)))
	}
	return b.String()
}
