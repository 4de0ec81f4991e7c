// Package repository 定义数据访问层接口
package repository

import "context"

// TxKey 事务上下文键类型
type TxKey struct{}

// Transactor 事务执行接口
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
