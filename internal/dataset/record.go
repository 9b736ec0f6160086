package dataset

// GridPixels is the flattened length of one standard MNIST image
// (28 rows by 28 columns).
const GridPixels = 28 * 28

// Grid is a flattened MNIST image in a fixed-size array. It trades
// flexibility for one contiguous allocation per dataset.
type Grid [GridPixels]uint8

// Record is the set of image container types a Dataset can hold: a
// growable byte slice or the fixed 28x28 grid. Extraction logic is
// shared; the container is chosen once at the Load call site via a
// RecordFunc.
type Record interface {
	~[]uint8 | ~[GridPixels]uint8
}

// RecordFunc copies one raw payload record into the chosen container
// type. The raw slice aliases the file buffer and must not be retained.
type RecordFunc[I Record] func(raw []byte) I

// SliceRecord copies a raw record into a fresh byte slice. It works for
// any record length.
func SliceRecord(raw []byte) []uint8 {
	out := make([]uint8, len(raw))
	copy(out, raw)
	return out
}

// GridRecord copies a raw record into a fixed 28x28 grid. Records
// shorter than the grid leave the tail zeroed; longer ones are
// truncated. Standard MNIST files always match exactly.
func GridRecord(raw []byte) Grid {
	var g Grid
	copy(g[:], raw)
	return g
}
