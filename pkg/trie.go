package pkg

import (
	"bytes"

	"golang.org/x/exp/slices"
)

// trieNode is one byte of a station name. Children are kept sorted by byte,
// so a depth-first walk visits names in ascending byte order.
type trieNode struct {
	Key          byte
	Value        *StationStat
	ChildrenKeys []byte
	Children     []*trieNode
}

// Totals is the merged, ordered aggregate. It owns its keys: they are stored
// byte by byte in the trie, never as references into the input.
type Totals struct {
	root trieNode
	n    int
}

func NewTotals() *Totals {
	return &Totals{}
}

func (t *Totals) Len() int { return t.n }

// String renders the totals as a braced summary without the trailing newline.
func (t *Totals) String() string {
	return string(bytes.TrimSuffix(AppendSummary(nil, t, FormatOptions{Braces: true}), []byte{'\n'}))
}

// Insert merges value into the entry for key, creating it if needed.
func (t *Totals) Insert(key []byte, value *StationStat) {
	node := &t.root
	for _, c := range key {
		i, ok := slices.BinarySearch(node.ChildrenKeys, c)
		if !ok {
			node.ChildrenKeys = slices.Insert(node.ChildrenKeys, i, c)
			node.Children = slices.Insert(node.Children, i, &trieNode{Key: c})
		}
		node = node.Children[i]
	}

	if node.Value == nil {
		v := *value
		node.Value = &v
		t.n++
		return
	}
	node.Value.Merge(value)
}

func (t *Totals) Get(key []byte) (StationStat, bool) {
	node := &t.root
	for _, c := range key {
		i, ok := slices.BinarySearch(node.ChildrenKeys, c)
		if !ok {
			return StationStat{}, false
		}
		node = node.Children[i]
	}

	if node.Value == nil {
		return StationStat{}, false
	}
	return *node.Value, true
}

// Ascend calls f for every station in ascending byte order of its name. key
// is reused between calls.
func (t *Totals) Ascend(f func(key []byte, value *StationStat)) {
	var prefix []byte
	if t.root.Value != nil {
		f(prefix, t.root.Value)
	}
	for _, c := range t.root.Children {
		prefix = c.iter(prefix, f)
	}
}

func (n *trieNode) iter(prefix []byte, f func(key []byte, value *StationStat)) []byte {
	prefix = append(prefix, n.Key)
	if n.Value != nil {
		f(prefix, n.Value)
	}
	for _, c := range n.Children {
		prefix = c.iter(prefix, f)
	}
	return prefix[:len(prefix)-1]
}

// Merge folds the worker tables into one Totals. StationStat.Merge is
// associative and commutative, so table order does not matter.
func Merge(tables ...*StationTable) *Totals {
	totals := NewTotals()
	for _, table := range tables {
		if table == nil {
			continue
		}
		table.Each(func(key []byte, stat *StationStat) {
			totals.Insert(key, stat)
		})
	}
	return totals
}
