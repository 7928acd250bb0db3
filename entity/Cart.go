package entity

import (
	"encoding/json"
	"sort"
)

// Selection maps a configuration group title to the selected option titles.
// Single-choice groups carry exactly one element, multiple-choice groups any
// number including zero. A group absent from the map is unselected.
type Selection map[string][]string

func (s Selection) Clone() Selection {
	if s == nil {
		return nil
	}
	out := make(Selection, len(s))
	for group, opts := range s {
		out[group] = append([]string(nil), opts...)
	}
	return out
}

// Fingerprint returns a canonical serialization of the selection: groups
// sorted by title, option titles sorted within each group. Deep-equal
// selections always fingerprint identically, regardless of map iteration or
// insertion order.
func (s Selection) Fingerprint() string {
	type group struct {
		Group   string   `json:"g"`
		Options []string `json:"o"`
	}
	groups := make([]group, 0, len(s))
	for title, opts := range s {
		sorted := append([]string(nil), opts...)
		sort.Strings(sorted)
		groups = append(groups, group{Group: title, Options: sorted})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Group < groups[j].Group })
	raw, _ := json.Marshal(groups)
	return string(raw)
}

// CartKey is the identity of a cart line: the base item, the canonical
// selection fingerprint, and the free-text note. Split carries a uniqueness
// suffix minted when an edit intentionally keeps an entry distinct from an
// otherwise identical one.
type CartKey struct {
	ItemUUID    string
	Fingerprint string
	Note        string
	Split       string
}

type CartEntry struct {
	Key         CartKey
	Title       string
	UnitPrice   Price
	ConfigDelta Price
	Quantity    int
	Total       Price
	Note        string
	Selection   Selection
}

// Recalc restores the Total = UnitPrice × Quantity invariant after a
// quantity change. The unit price itself is fixed at add time.
func (e *CartEntry) Recalc() {
	e.Total = e.UnitPrice.MulInt(e.Quantity)
}
