// Package idx implements the IDX binary container format used to
// distribute the MNIST handwritten-digit corpus.
//
// An IDX file is a small big-endian header followed by a raw payload.
// The header starts with a 4-byte magic word whose third byte is a type
// tag (0x08, unsigned byte data) and whose low byte is the number of
// dimensions. The magic is followed by one big-endian uint32 per
// dimension; the first dimension is always the instance count. The
// payload holds the instances back to back with no per-value byte-order
// conversion.
package idx

import "fmt"

// FileKind identifies the role of an IDX file by its magic word.
type FileKind uint32

const (
	// KindImage is the magic word of an image file
	// (3 dimensions: count, rows, columns).
	KindImage FileKind = 0x00000803

	// KindLabel is the magic word of a label file
	// (1 dimension: count; one byte per instance).
	KindLabel FileKind = 0x00000801
)

func (k FileKind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindLabel:
		return "label"
	default:
		return fmt.Sprintf("kind(0x%08x)", uint32(k))
	}
}

// Header is the decoded IDX file header.
type Header struct {
	Kind     FileKind
	DimSizes []uint32
}

// DimCount returns the number of dimensions declared in the magic word.
func (h Header) DimCount() int {
	return len(h.DimSizes)
}

// Count returns the number of instances stored in the file.
func (h Header) Count() int {
	if len(h.DimSizes) == 0 {
		return 0
	}
	return int(h.DimSizes[0])
}

// RecordSize returns the payload bytes per instance: the product of all
// dimension sizes after the first. Label files have one-byte records.
func (h Header) RecordSize() int {
	size := uint64(1)
	for _, d := range h.DimSizes[1:] {
		size *= uint64(d)
	}
	return int(size)
}

// Size returns the header length in bytes: the magic word plus one
// uint32 per dimension.
func (h Header) Size() int {
	return 4 + 4*len(h.DimSizes)
}

// PayloadSize returns the number of payload bytes the header declares.
func (h Header) PayloadSize() int {
	return h.Count() * h.RecordSize()
}
