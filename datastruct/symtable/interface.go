// Package symtable 提供以字符串为键、任意值为值的符号表。
//
// 两种实现满足同一个 Table 接口：ChainedTable 使用固定数量的桶和链地址法，
// ListTable 把所有绑定放在一条链上。表只拥有键的副本和链节点，值由调用方负责。
//
// Table 不是并发安全的，跨 goroutine 共享时需由调用方加锁。
package symtable

import "github.com/pkg/errors"

// Visitor 在 Map 中对每个绑定调用一次，extra 原样传入
type Visitor func(key string, value any, extra any)

// Processor 在 ForEach 中对每个绑定调用，返回 false 时停止遍历
type Processor func(key string, value any) bool

var ErrInvalidBucketCount = errors.New("bucket count must be positive")

type Table interface {
	Len() int
	Put(key string, value any) (inserted bool)
	Replace(key string, value any) (old any, ok bool)
	Contains(key string) bool
	Get(key string) (value any, ok bool)
	Remove(key string) (value any, ok bool)
	Map(visit Visitor, extra any)
	ForEach(p Processor)
	Keys() []string
	Clear()
	Free()
}

var (
	_ Table = (*ChainedTable)(nil)
	_ Table = (*ListTable)(nil)
)
