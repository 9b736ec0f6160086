package idx

import "fmt"

// DecodeHeader interprets the leading bytes of an IDX file.
//
// Only the two MNIST magic words are accepted. Anything else, including
// magic words with a non-zero high byte or a type tag other than 0x08,
// fails with ErrUnknownKind rather than being coerced to a kind.
func DecodeHeader(buf []byte) (Header, error) {
	r := newReader(buf)
	magic, err := r.readU32()
	if err != nil {
		return Header{}, fmt.Errorf("%w: %d bytes", ErrTruncatedHeader, len(buf))
	}

	kind := FileKind(magic)
	switch kind {
	case KindImage, KindLabel:
	default:
		return Header{}, fmt.Errorf("%w: magic 0x%08x", ErrUnknownKind, magic)
	}

	// The low byte of the magic word declares the dimension count.
	dimCount := int(magic & 0xff)
	dims := make([]uint32, dimCount)
	for i := range dims {
		dims[i], err = r.readU32()
		if err != nil {
			return Header{}, fmt.Errorf("%w: %d bytes, need %d", ErrTruncatedHeader, len(buf), 4+4*dimCount)
		}
	}

	return Header{Kind: kind, DimSizes: dims}, nil
}

// ExtractImages slices the payload of an image file into one record per
// instance. Records are zero-copy views into buf and stay valid only as
// long as buf does; callers that outlive the buffer must copy.
func ExtractImages(buf []byte, h Header) ([][]byte, error) {
	if h.Kind != KindImage {
		return nil, fmt.Errorf("%w: want %s, got %s", ErrKindMismatch, KindImage, h.Kind)
	}
	payload, err := payloadOf(buf, h)
	if err != nil {
		return nil, err
	}

	count := h.Count()
	size := h.RecordSize()
	records := make([][]byte, count)
	for i := range records {
		records[i] = payload[i*size : (i+1)*size : (i+1)*size]
	}
	return records, nil
}

// ExtractLabels slices the payload of a label file into one byte per
// instance. The result is a zero-copy view into buf.
func ExtractLabels(buf []byte, h Header) ([]byte, error) {
	if h.Kind != KindLabel {
		return nil, fmt.Errorf("%w: want %s, got %s", ErrKindMismatch, KindLabel, h.Kind)
	}
	payload, err := payloadOf(buf, h)
	if err != nil {
		return nil, err
	}
	return payload[:h.Count():h.Count()], nil
}

// payloadOf returns the declared payload region of buf, verifying that
// the buffer covers the header and every declared record.
func payloadOf(buf []byte, h Header) ([]byte, error) {
	if len(buf) < h.Size() {
		return nil, fmt.Errorf("%w: %d bytes, need %d", ErrTruncatedHeader, len(buf), h.Size())
	}

	// Sizes are computed in uint64 so a hostile header cannot wrap the
	// bounds check on 32-bit builds.
	need := uint64(h.Count()) * uint64(h.RecordSize())
	have := uint64(len(buf) - h.Size())
	if need > have {
		return nil, fmt.Errorf("%w: %d payload bytes, need %d", ErrTruncatedPayload, have, need)
	}
	return buf[h.Size() : uint64(h.Size())+need], nil
}
