package tabular

import "iter"

// AppendSeq appends rows from seq in order and stops at the first row that
// fails. Rows appended before the failure stay in the table.
func (t *table) AppendSeq(seq iter.Seq[Row]) error {
	var appendErr error
	seq(func(row Row) bool {
		if err := t.Append(row...); err != nil {
			appendErr = err
			return false
		}
		return true
	})
	return appendErr
}

// AppendChan appends rows received from ch until it is closed. It is a thin
// wrapper around AppendSeq; on failure the remaining rows are left unread.
func (t *table) AppendChan(ch <-chan Row) error {
	return t.AppendSeq(chanToSeq(ch))
}

func chanToSeq[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
