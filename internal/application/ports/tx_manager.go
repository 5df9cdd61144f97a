package ports

import "context"

// TxManager runs fn atomically; stores used with the ctx passed to fn
// take part in the same transaction.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
