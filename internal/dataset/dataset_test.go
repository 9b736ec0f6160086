package dataset

import (
	"bytes"
	"errors"
	"math/rand/v2"
	"sort"
	"testing"
)

func newTestHandle(t *testing.T) *Handle[[]uint8] {
	t.Helper()
	h, err := New(Dataset[[]uint8]{
		Images: [][]uint8{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10, 11, 12}},
		Labels: []uint8{7, 0, 9},
	})
	if err != nil {
		t.Fatalf("new handle: %v", err)
	}
	return h
}

func TestNewCountMismatch(t *testing.T) {
	t.Parallel()

	_, err := New(Dataset[[]uint8]{
		Images: [][]uint8{{1}, {2}, {3}},
		Labels: []uint8{1, 2},
	})
	if !errors.Is(err, ErrCountMismatch) {
		t.Fatalf("got %v, want ErrCountMismatch", err)
	}
}

func TestNewEmptyDataset(t *testing.T) {
	t.Parallel()

	_, err := New(Dataset[[]uint8]{})
	if !errors.Is(err, ErrEmptyDataset) {
		t.Fatalf("got %v, want ErrEmptyDataset", err)
	}
}

func TestShape(t *testing.T) {
	t.Parallel()

	h := newTestHandle(t)
	want := Shape{ImageCount: 3, ImageSize: 4, LabelCount: 3, LabelWidth: 1}
	if got := h.Shape(); got != want {
		t.Fatalf("shape: got %+v, want %+v", got, want)
	}
	if h.Len() != 3 {
		t.Fatalf("len: got %d, want 3", h.Len())
	}
}

func TestShapeGridContainer(t *testing.T) {
	t.Parallel()

	h, err := New(Dataset[Grid]{
		Images: []Grid{{}, {}},
		Labels: []uint8{1, 2},
	})
	if err != nil {
		t.Fatalf("new handle: %v", err)
	}
	if got := h.Shape().ImageSize; got != GridPixels {
		t.Fatalf("grid image size: got %d, want %d", got, GridPixels)
	}
}

func TestInstanceAt(t *testing.T) {
	t.Parallel()

	h := newTestHandle(t)
	img, label, err := h.InstanceAt(1)
	if err != nil {
		t.Fatalf("instance 1: %v", err)
	}
	if !bytes.Equal(img, []byte{5, 6, 7, 8}) || label != 0 {
		t.Fatalf("instance 1: got %v/%d", img, label)
	}

	for _, i := range []int{-1, 3, 3 + 1000} {
		if _, _, err := h.InstanceAt(i); !errors.Is(err, ErrIndexOutOfBounds) {
			t.Fatalf("index %d: got %v, want ErrIndexOutOfBounds", i, err)
		}
	}
}

func TestPrintShape(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	newTestHandle(t).PrintShape(&buf)
	want := "Images shape: (3, 4)\nLabels shape: (3, 1)\n"
	if buf.String() != want {
		t.Fatalf("print shape:\n got  %q\n want %q", buf.String(), want)
	}
}

func TestShuffledIndicesIsPermutation(t *testing.T) {
	t.Parallel()

	h := newTestHandle(t)
	rng := rand.New(rand.NewPCG(1, 2))
	perm := h.ShuffledIndices(rng)
	if len(perm) != h.Len() {
		t.Fatalf("perm length: got %d, want %d", len(perm), h.Len())
	}
	sorted := append([]int(nil), perm...)
	sort.Ints(sorted)
	for i, v := range sorted {
		if v != i {
			t.Fatalf("not a permutation: %v", perm)
		}
	}
}

func TestSplit(t *testing.T) {
	t.Parallel()

	images := make([][]uint8, 10)
	labels := make([]uint8, 10)
	for i := range images {
		images[i] = []uint8{uint8(i)}
	}
	h, err := New(Dataset[[]uint8]{Images: images, Labels: labels})
	if err != nil {
		t.Fatalf("new handle: %v", err)
	}

	train, val := h.Split(0.2)
	if len(train) != 8 || len(val) != 2 {
		t.Fatalf("split: got %d/%d, want 8/2", len(train), len(val))
	}
	if train[0] != 0 || val[0] != 8 {
		t.Fatalf("split views out of order: train[0]=%d val[0]=%d", train[0], val[0])
	}

	all, none := h.Split(0)
	if len(all) != 10 || len(none) != 0 {
		t.Fatalf("split(0): got %d/%d, want 10/0", len(all), len(none))
	}
}

func TestRecordFuncs(t *testing.T) {
	t.Parallel()

	raw := []byte{1, 2, 3}
	s := SliceRecord(raw)
	raw[0] = 99
	if s[0] != 1 {
		t.Fatalf("SliceRecord must copy, got %v", s)
	}

	g := GridRecord([]byte{4, 5})
	if g[0] != 4 || g[1] != 5 || g[2] != 0 {
		t.Fatalf("GridRecord copy: got %v", g[:3])
	}
}
