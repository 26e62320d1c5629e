package algo

import "sort"

// Entry is one key and its accumulated value.
type Entry struct {
	Key   string
	Value float64
}

// Counter accumulates values per key and remembers first insertion order,
// which is the tie-break order of MostCommon.
type Counter struct {
	index   map[string]int
	entries []Entry
}

// NewCounter returns an empty counter.
func NewCounter() *Counter {
	return &Counter{index: make(map[string]int)}
}

// Add adds v to the value of key.
func (c *Counter) Add(key string, v float64) {
	if i, ok := c.index[key]; ok {
		c.entries[i].Value += v
		return
	}
	c.index[key] = len(c.entries)
	c.entries = append(c.entries, Entry{Key: key, Value: v})
}

// Get returns the value of key.
func (c *Counter) Get(key string) float64 {
	if i, ok := c.index[key]; ok {
		return c.entries[i].Value
	}
	return 0
}

// Len is the number of distinct keys.
func (c *Counter) Len() int {
	return len(c.entries)
}

// Entries returns every entry in insertion order.
func (c *Counter) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// MostCommon returns the n largest entries, ties kept in insertion order.
// A negative n returns every entry.
func (c *Counter) MostCommon(n int) []Entry {
	out := c.Entries()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value > out[j].Value
	})
	if n >= 0 {
		out = Head(out, n)
	}
	return out
}

// Keys returns the keys of entries.
func Keys(entries []Entry) []string {
	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
	}
	return keys
}
