package idx

import "errors"

var (
	ErrTruncatedHeader  = errors.New("truncated IDX header")
	ErrTruncatedPayload = errors.New("truncated IDX payload")
	ErrUnknownKind      = errors.New("unknown IDX file kind")
	ErrKindMismatch     = errors.New("IDX file kind mismatch")
)
