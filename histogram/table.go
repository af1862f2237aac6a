package histogram

import "github.com/google/btree"

// Bucket is one counter table entry.
type Bucket struct {
	Index int
	Count uint64
}

func bucketLess(a, b Bucket) bool {
	return a.Index < b.Index
}

// Table maps range index to match count. Indices only appear after their
// first increment.
type Table struct {
	tree *btree.BTreeG[Bucket]
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{tree: btree.NewG(2, bucketLess)}
}

// Inc adds one to the counter for index.
func (t *Table) Inc(index int) {
	b, _ := t.tree.Get(Bucket{Index: index})
	b.Index = index
	b.Count++
	t.tree.ReplaceOrInsert(b)
}

// Get returns the count for index and whether it has an entry.
func (t *Table) Get(index int) (uint64, bool) {
	b, ok := t.tree.Get(Bucket{Index: index})
	return b.Count, ok
}

// Len is the number of populated indices.
func (t *Table) Len() int {
	return t.tree.Len()
}

// Ascend calls fn for each entry in index order until fn returns false.
func (t *Table) Ascend(fn func(Bucket) bool) {
	t.tree.Ascend(fn)
}

// Buckets returns the entries in index order.
func (t *Table) Buckets() []Bucket {
	out := make([]Bucket, 0, t.tree.Len())
	t.Ascend(func(b Bucket) bool {
		out = append(out, b)
		return true
	})
	return out
}

// Total is the sum of all counts.
func (t *Table) Total() uint64 {
	var total uint64
	t.Ascend(func(b Bucket) bool {
		total += b.Count
		return true
	})
	return total
}
