package idx

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"golang.org/x/sys/unix"
)

var gzipMagic = []byte{0x1f, 0x8b}

// File is an opened IDX file with its header already decoded. Raw files
// are memory-mapped read-only where the platform supports it; gzipped
// files are inflated into an anonymous buffer. The returned file must be
// closed to release any mapping.
type File struct {
	Path    string
	Header  Header
	Data    []byte
	mmapped bool
}

// Open opens path, decompresses it if it carries the gzip magic, and
// decodes the IDX header. The whole file is resident after Open returns;
// there is no lazy or chunked access.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size64 := stat.Size()
	if size64 < 0 || size64 > int64(int(^uint(0)>>1)) {
		return nil, fmt.Errorf("%s: file too large to load", path)
	}
	size := int(size64)

	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ, unix.MAP_SHARED)
	mmapped := err == nil
	if !mmapped {
		data, err = readAllAt(f, size)
		if err != nil {
			return nil, err
		}
	}

	if bytes.HasPrefix(data, gzipMagic) {
		inflated, gzErr := inflate(data)
		if mmapped {
			_ = unix.Munmap(data)
		}
		if gzErr != nil {
			return nil, fmt.Errorf("%s: %w", path, gzErr)
		}
		data = inflated
		mmapped = false
	}

	hdr, err := DecodeHeader(data)
	if err != nil {
		if mmapped {
			_ = unix.Munmap(data)
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &File{
		Path:    path,
		Header:  hdr,
		Data:    data,
		mmapped: mmapped,
	}, nil
}

// ReadFile loads the whole file into memory, transparently inflating
// gzipped content. The MNIST distribution ships both raw and .gz files;
// callers see identical bytes either way.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if bytes.HasPrefix(data, gzipMagic) {
		inflated, err := inflate(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return inflated, nil
	}
	return data, nil
}

// Close releases the file data and any mmap backing.
func (f *File) Close() error {
	if f == nil || f.Data == nil {
		return nil
	}
	var err error
	if f.mmapped {
		err = unix.Munmap(f.Data)
	}
	f.Data = nil
	f.mmapped = false
	return err
}

func inflate(data []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer func() { _ = zr.Close() }()
	return io.ReadAll(zr)
}

func readAllAt(r io.ReaderAt, size int) ([]byte, error) {
	if size == 0 {
		return []byte{}, nil
	}
	out := make([]byte, size)
	var off int64
	for off < int64(size) {
		n, err := r.ReadAt(out[off:], off)
		off += int64(n)
		if err == nil {
			continue
		}
		if err == io.EOF && off == int64(size) {
			break
		}
		return nil, err
	}
	return out, nil
}
