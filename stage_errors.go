package exec

import (
	"errors"
	"fmt"
)

// PanicError wraps a callback panic recovered by internal/invoke, carrying
// the recovered value so a SetError completion caused by a panic is still
// just an error value travelling through the normal channel - no separate
// "panicked" completion shape is needed. The adaptors in this module fill in
// only Recovered; Stack stays nil unless the code building the PanicError
// sets it.
type PanicError struct {
	Recovered any
	Stack     []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("%s: %v", Namespace, e.Recovered)
}

func (e *PanicError) Unwrap() error { return ErrTaskPanicked }

// StageError tags an error with the name of the pipeline stage (adaptor)
// that produced it, so a caller several adaptors downstream can tell which
// stage failed without string-matching the message.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: stage %q: %v", Namespace, e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// TagStage wraps err with the given stage name unless err is nil.
func TagStage(stage string, err error) error {
	if err == nil {
		return nil
	}
	return &StageError{Stage: stage, Err: err}
}

// ExtractStage walks err's Unwrap chain for the outermost *StageError and
// reports its Stage, or "" if err never passed through a tagged stage.
func ExtractStage(err error) (string, bool) {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage, true
	}
	return "", false
}

// BulkIndexError tags an error with the index of the bulk item (adapt.Bulk)
// that produced it, so a caller aggregating per-item failures can tell them
// apart without the item closure threading an index through by hand.
type BulkIndexError struct {
	Index int
	Err   error
}

func (e *BulkIndexError) Error() string {
	return fmt.Sprintf("%s: bulk item %d: %v", Namespace, e.Index, e.Err)
}

func (e *BulkIndexError) Unwrap() error { return e.Err }

// TagBulkIndex wraps err with the given bulk item index unless err is nil.
func TagBulkIndex(index int, err error) error {
	if err == nil {
		return nil
	}
	return &BulkIndexError{Index: index, Err: err}
}

// ExtractBulkIndex walks err's Unwrap chain for the outermost
// *BulkIndexError and reports its Index, or (-1, false) if none is present.
func ExtractBulkIndex(err error) (int, bool) {
	var be *BulkIndexError
	if errors.As(err, &be) {
		return be.Index, true
	}
	return -1, false
}
