package interfaces

import "context"

// RowAppender appends one row to the destination table and reports how
// many rows the provider recorded.
type RowAppender interface {
	AppendRow(ctx context.Context, row []string) (int64, error)
}
