package symtable

import "symtable/config"

// ChainedTable 是桶数固定的哈希表，冲突的键在同一个桶的链上按插入顺序排列。
// 桶数在创建后不再改变，不做 rehash。
type ChainedTable struct {
	buckets []chain
	size    int
}

// NewChainedTable 创建一个有 config.DefaultBucketCount 个桶的空表。
// 它不读取 config.Properties.BucketCount，该配置只作用于 NewPoolFromProperties 创建的表；
// 需要其他桶数时使用 NewChainedTableSize。
func NewChainedTable() *ChainedTable {
	t, _ := NewChainedTableSize(config.DefaultBucketCount)
	return t
}

func NewChainedTableSize(bucketCount int) (*ChainedTable, error) {
	if bucketCount < 1 {
		return nil, ErrInvalidBucketCount
	}
	return &ChainedTable{buckets: make([]chain, bucketCount)}, nil
}

func (t *ChainedTable) BucketCount() int {
	t.check()
	return len(t.buckets)
}

func (t *ChainedTable) Len() int {
	t.check()
	return t.size
}

func (t *ChainedTable) Put(key string, value any) (inserted bool) {
	b := t.bucketOf(key)
	if b.find(key) != nil {
		return false
	}
	b.add(key, value)
	t.size++
	return true
}

func (t *ChainedTable) Replace(key string, value any) (old any, ok bool) {
	n := t.bucketOf(key).find(key)
	if n == nil {
		return nil, false
	}
	old, n.value = n.value, value
	return old, true
}

func (t *ChainedTable) Contains(key string) bool {
	return t.bucketOf(key).find(key) != nil
}

func (t *ChainedTable) Get(key string) (value any, ok bool) {
	n := t.bucketOf(key).find(key)
	if n == nil {
		return nil, false
	}
	return n.value, true
}

func (t *ChainedTable) Remove(key string) (value any, ok bool) {
	n, ok := t.bucketOf(key).remove(key)
	if !ok {
		return nil, false
	}
	t.size--
	return n.value, true
}

// Map 按桶下标从小到大、桶内按插入顺序访问每个绑定。visit 中不得增删绑定。
func (t *ChainedTable) Map(visit Visitor, extra any) {
	if visit == nil {
		panic("Nil visitor")
	}
	t.ForEach(func(key string, value any) bool {
		visit(key, value, extra)
		return true
	})
}

func (t *ChainedTable) ForEach(p Processor) {
	t.check()
	for i := range t.buckets {
		if !t.buckets[i].forEach(func(n *entry) bool { return p(n.key, n.value) }) {
			return
		}
	}
}

func (t *ChainedTable) Keys() []string {
	keys := make([]string, 0, t.Len())
	t.ForEach(func(key string, _ any) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Clear 删除所有绑定，桶数不变
func (t *ChainedTable) Clear() {
	t.check()
	for i := range t.buckets {
		t.buckets[i].clear()
	}
	t.size = 0
}

// Free 释放所有绑定和桶，之后对 t 的任何调用都会 panic。值不受影响。
func (t *ChainedTable) Free() {
	t.Clear()
	t.buckets = nil
}

func (t *ChainedTable) bucketOf(key string) *chain {
	t.check()
	return &t.buckets[Hash(key, len(t.buckets))]
}

func (t *ChainedTable) check() {
	if t == nil {
		panic("Nil ChainedTable")
	}
	if t.buckets == nil {
		panic("ChainedTable used after Free")
	}
}
