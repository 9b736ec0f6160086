// Package dataset assembles MNIST image/label file pairs into immutable
// in-memory datasets and exposes validated, bounds-checked access to
// them.
package dataset

import (
	"fmt"
	"io"
	"math/rand/v2"
)

// Dataset pairs image records with their labels by shared index.
type Dataset[I Record] struct {
	Images []I
	Labels []uint8
}

// Shape summarizes the dimensions of an assembled dataset.
type Shape struct {
	ImageCount int
	ImageSize  int
	LabelCount int
	LabelWidth int
}

func (s Shape) String() string {
	return fmt.Sprintf("images (%d, %d), labels (%d, %d)",
		s.ImageCount, s.ImageSize, s.LabelCount, s.LabelWidth)
}

// Handle owns exactly one assembled dataset and its cached shape. A
// Handle only exists for a valid, non-empty dataset: New is the sole
// constructor and rejects anything else, so there is no "built but
// broken" state to check for at access time. Handles are immutable after
// construction and safe for concurrent readers.
type Handle[I Record] struct {
	ds    Dataset[I]
	shape Shape
}

// New validates ds and wraps it in a Handle, taking ownership of the
// slices. The dataset must be non-empty and image and label counts must
// agree.
func New[I Record](ds Dataset[I]) (*Handle[I], error) {
	if len(ds.Images) != len(ds.Labels) {
		return nil, fmt.Errorf("%w: %d images, %d labels", ErrCountMismatch, len(ds.Images), len(ds.Labels))
	}
	if len(ds.Images) == 0 {
		return nil, ErrEmptyDataset
	}
	return &Handle[I]{
		ds: ds,
		shape: Shape{
			ImageCount: len(ds.Images),
			ImageSize:  len(ds.Images[0]),
			LabelCount: len(ds.Labels),
			LabelWidth: 1,
		},
	}, nil
}

// Shape returns the cached dataset shape.
func (h *Handle[I]) Shape() Shape {
	return h.shape
}

// Dataset returns a read-only view of the underlying dataset. Callers
// must not modify the returned slices.
func (h *Handle[I]) Dataset() *Dataset[I] {
	return &h.ds
}

// Len returns the number of instances.
func (h *Handle[I]) Len() int {
	return h.shape.ImageCount
}

// InstanceAt returns the image record and label at index i. Any index
// outside [0, Len) fails with ErrIndexOutOfBounds; it is never clamped.
func (h *Handle[I]) InstanceAt(i int) (I, uint8, error) {
	if i < 0 || i >= len(h.ds.Images) {
		var zero I
		return zero, 0, fmt.Errorf("%w: index %d, count %d", ErrIndexOutOfBounds, i, len(h.ds.Images))
	}
	return h.ds.Images[i], h.ds.Labels[i], nil
}

// PrintShape writes the cached shape to w, one line per collection.
func (h *Handle[I]) PrintShape(w io.Writer) {
	fmt.Fprintf(w, "Images shape: (%d, %d)\n", h.shape.ImageCount, h.shape.ImageSize)
	fmt.Fprintf(w, "Labels shape: (%d, %d)\n", h.shape.LabelCount, h.shape.LabelWidth)
}

// ShuffledIndices returns a random permutation of the instance indices.
// The dataset itself is never reordered; iterate the permutation
// instead. A nil rng uses the shared global source.
func (h *Handle[I]) ShuffledIndices(rng *rand.Rand) []int {
	if rng == nil {
		return rand.Perm(h.Len())
	}
	return rng.Perm(h.Len())
}

// Split partitions the instance indices into a leading training view
// and a trailing validation view of size validationRatio times the
// dataset. The views index into the unchanged dataset; no records are
// copied.
func (h *Handle[I]) Split(validationRatio float64) (train, validation []int) {
	n := h.Len()
	splitAt := int(float64(n) * (1.0 - validationRatio))
	if splitAt < 0 {
		splitAt = 0
	}
	if splitAt > n {
		splitAt = n
	}
	all := make([]int, n)
	for i := range all {
		all[i] = i
	}
	return all[:splitAt], all[splitAt:]
}
