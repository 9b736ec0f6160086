package dataset

import "errors"

var (
	ErrCountMismatch    = errors.New("image and label counts differ")
	ErrEmptyDataset     = errors.New("empty dataset")
	ErrIndexOutOfBounds = errors.New("instance index out of bounds")
	ErrChecksumMismatch = errors.New("dataset file checksum mismatch")
)
