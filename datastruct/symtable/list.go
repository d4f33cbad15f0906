package symtable

// ListTable 把所有绑定放在一条链上，行为等同于只有一个桶的 ChainedTable
type ListTable struct {
	c     chain
	freed bool
}

func NewListTable() *ListTable {
	return &ListTable{}
}

func (t *ListTable) Len() int {
	t.check()
	return t.c.size
}

func (t *ListTable) Put(key string, value any) (inserted bool) {
	t.check()
	if t.c.find(key) != nil {
		return false
	}
	t.c.add(key, value)
	return true
}

func (t *ListTable) Replace(key string, value any) (old any, ok bool) {
	t.check()
	n := t.c.find(key)
	if n == nil {
		return nil, false
	}
	old, n.value = n.value, value
	return old, true
}

func (t *ListTable) Contains(key string) bool {
	t.check()
	return t.c.find(key) != nil
}

func (t *ListTable) Get(key string) (value any, ok bool) {
	t.check()
	n := t.c.find(key)
	if n == nil {
		return nil, false
	}
	return n.value, true
}

func (t *ListTable) Remove(key string) (value any, ok bool) {
	t.check()
	n, ok := t.c.remove(key)
	if !ok {
		return nil, false
	}
	return n.value, true
}

func (t *ListTable) Map(visit Visitor, extra any) {
	if visit == nil {
		panic("Nil visitor")
	}
	t.ForEach(func(key string, value any) bool {
		visit(key, value, extra)
		return true
	})
}

func (t *ListTable) ForEach(p Processor) {
	t.check()
	t.c.forEach(func(n *entry) bool { return p(n.key, n.value) })
}

func (t *ListTable) Keys() []string {
	keys := make([]string, 0, t.Len())
	t.ForEach(func(key string, _ any) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

func (t *ListTable) Clear() {
	t.check()
	t.c.clear()
}

func (t *ListTable) Free() {
	t.Clear()
	t.freed = true
}

func (t *ListTable) check() {
	if t == nil {
		panic("Nil ListTable")
	}
	if t.freed {
		panic("ListTable used after Free")
	}
}
