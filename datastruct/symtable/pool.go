package symtable

import (
	"context"

	pool "github.com/jolestar/go-commons-pool/v2"
	"github.com/pkg/errors"
	"symtable/config"
	"symtable/lib/logger"
)

// Factory 创建一张空表
type Factory func() Table

type PoolConfig struct {
	MaxTotal int
	MaxIdle  int
}

var (
	ErrInvalidPoolSize = errors.New("pool size must be positive or -1")
	ErrFreedTable      = errors.New("table already freed")
)

// Pool 复用短生命周期的表。借出的表总是空的，归还时会被清空。
// 归还已经 Free 的表会得到 ErrFreedTable，该表不再回到池中。
type Pool struct {
	objects *pool.ObjectPool
}

type tableFactory struct {
	newTable Factory
}

func (f *tableFactory) MakeObject(_ context.Context) (*pool.PooledObject, error) {
	t := f.newTable()
	if t == nil {
		return nil, errors.New("table factory returned nil")
	}
	logger.Debugf("pool: made %T", t)
	return pool.NewPooledObject(t), nil
}

func (f *tableFactory) DestroyObject(_ context.Context, obj *pool.PooledObject) error {
	t, ok := obj.Object.(Table)
	if !ok {
		return errors.New("type mismatch")
	}
	if isFreed(t) {
		return nil
	}
	if err := guard(t.Free); err != nil {
		return errors.Wrap(err, "destroy table")
	}
	logger.Debugf("pool: freed %T", t)
	return nil
}

func (f *tableFactory) ValidateObject(_ context.Context, obj *pool.PooledObject) bool {
	t, ok := obj.Object.(Table)
	return ok && t.Len() == 0
}

func (f *tableFactory) ActivateObject(_ context.Context, _ *pool.PooledObject) error {
	return nil
}

func (f *tableFactory) PassivateObject(_ context.Context, obj *pool.PooledObject) error {
	t, ok := obj.Object.(Table)
	if !ok {
		return errors.New("type mismatch")
	}
	if err := guard(t.Clear); err != nil {
		return errors.Wrap(err, "passivate table")
	}
	return nil
}

// guard 把表方法中的 panic（如使用已 Free 的表）转换为 error
func guard(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("%v", r)
		}
	}()
	fn()
	return nil
}

func isFreed(t Table) bool {
	switch v := t.(type) {
	case *ChainedTable:
		return v != nil && v.buckets == nil
	case *ListTable:
		return v != nil && v.freed
	}
	return false
}

// NewPool 创建表池，cfg 为 nil 时使用 go-commons-pool 的默认大小。
// MaxTotal 和 MaxIdle 必须为正数或 -1（不限），否则 Borrow 会一直阻塞。
func NewPool(ctx context.Context, factory Factory, cfg *PoolConfig) (*Pool, error) {
	if factory == nil {
		panic("Nil table factory")
	}
	poolConfig := pool.NewDefaultPoolConfig()
	poolConfig.TestOnBorrow = true
	if cfg != nil {
		if !validPoolSize(cfg.MaxTotal) || !validPoolSize(cfg.MaxIdle) {
			return nil, errors.Wrapf(ErrInvalidPoolSize, "maxtotal %d maxidle %d", cfg.MaxTotal, cfg.MaxIdle)
		}
		poolConfig.MaxTotal = cfg.MaxTotal
		poolConfig.MaxIdle = cfg.MaxIdle
	}
	return &Pool{
		objects: pool.NewObjectPool(ctx, &tableFactory{newTable: factory}, poolConfig),
	}, nil
}

func validPoolSize(n int) bool {
	return n > 0 || n == -1
}

// NewPoolFromProperties 按 config.Properties 创建 ChainedTable 的池
func NewPoolFromProperties(ctx context.Context) (*Pool, error) {
	props := config.Properties
	if _, err := NewChainedTableSize(props.BucketCount); err != nil {
		return nil, errors.Wrapf(err, "bucketcount %d", props.BucketCount)
	}
	factory := func() Table {
		t, _ := NewChainedTableSize(props.BucketCount)
		return t
	}
	return NewPool(ctx, factory, &PoolConfig{
		MaxTotal: props.PoolMaxTotal,
		MaxIdle:  props.PoolMaxIdle,
	})
}

func (p *Pool) Borrow(ctx context.Context) (Table, error) {
	obj, err := p.objects.BorrowObject(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "borrow table")
	}
	return obj.(Table), nil
}

func (p *Pool) Return(ctx context.Context, t Table) error {
	if isFreed(t) {
		if err := p.objects.InvalidateObject(ctx, t); err != nil {
			return errors.Wrap(err, "return table")
		}
		return errors.Wrap(ErrFreedTable, "return table")
	}
	if err := p.objects.ReturnObject(ctx, t); err != nil {
		return errors.Wrap(err, "return table")
	}
	return nil
}

func (p *Pool) Idle() int {
	return p.objects.GetNumIdle()
}

func (p *Pool) Active() int {
	return p.objects.GetNumActive()
}

func (p *Pool) Close(ctx context.Context) {
	p.objects.Close(ctx)
}
