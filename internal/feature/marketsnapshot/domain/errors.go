// Package domain defines domain-level errors for the marketsnapshot feature.
package domain

import (
	"errors"
	"fmt"
)

// Domain errors for market snapshot queries.
// 上位レイヤーはerrors.Isで判別し、メッセージはそのまま利用者に表示します。
var (
	// ErrItemNotFound indicates that the exact-name search matched nothing.
	ErrItemNotFound = errors.New("item not found")

	// ErrNoActiveOrders indicates that neither side of the order book has an order in the requested scope.
	// 片側のみ空の場合はエラーではありません。
	ErrNoActiveOrders = errors.New("no active orders")

	// ErrSourceUnavailable indicates that a read from the market data source failed
	// (network error, timeout, error status or malformed payload).
	ErrSourceUnavailable = errors.New("market data source unavailable")
)

// SourceError はデータソースの読み取り失敗を表します。
// errors.IsでErrSourceUnavailableと原因エラーの両方に一致します。
type SourceError struct {
	Op  string // 失敗した操作 (e.g., "list orders")
	Err error
}

// NewSourceError は操作名と原因エラーからSourceErrorを生成します。
func NewSourceError(op string, err error) *SourceError {
	return &SourceError{Op: op, Err: err}
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrSourceUnavailable, e.Op, e.Err)
}

func (e *SourceError) Unwrap() []error {
	return []error{ErrSourceUnavailable, e.Err}
}
