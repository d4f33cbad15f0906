package symtable

import "strings"

type entry struct {
	key   string
	value any
	next  *entry
}

// chain 是按插入顺序排列的单链表，新节点追加在尾部
type chain struct {
	head *entry
	tail *entry
	size int
}

func (c *chain) find(key string) *entry {
	for n := c.head; n != nil; n = n.next {
		if n.key == key {
			return n
		}
	}
	return nil
}

// add 不检查重复，调用方需先 find
func (c *chain) add(key string, value any) {
	n := &entry{key: strings.Clone(key), value: value}
	if c.tail == nil {
		c.head, c.tail = n, n
	} else {
		c.tail.next, c.tail = n, n
	}
	c.size++
}

func (c *chain) remove(key string) (*entry, bool) {
	var prev *entry
	for n := c.head; n != nil; prev, n = n, n.next {
		if n.key != key {
			continue
		}
		if prev == nil {
			c.head = n.next
		} else {
			prev.next = n.next
		}
		if c.tail == n {
			c.tail = prev
		}
		n.next = nil
		c.size--
		return n, true
	}
	return nil, false
}

// forEach 返回 false 表示遍历被 p 中止
func (c *chain) forEach(p func(*entry) bool) bool {
	for n := c.head; n != nil; n = n.next {
		if !p(n) {
			return false
		}
	}
	return true
}

func (c *chain) clear() {
	n := c.head
	for n != nil {
		next := n.next
		n.next, n.value = nil, nil
		n = next
	}
	c.head, c.tail, c.size = nil, nil, 0
}
