package dataset

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/samcharles93/mnistetl/internal/logger"
	"github.com/samcharles93/mnistetl/pkg/idx"
)

// Canonical file names from the MNIST distribution.
const (
	TrainImagesFile = "train-images-idx3-ubyte"
	TrainLabelsFile = "train-labels-idx1-ubyte"
	TestImagesFile  = "t10k-images-idx3-ubyte"
	TestLabelsFile  = "t10k-labels-idx1-ubyte"
)

type loadConfig struct {
	log       logger.Logger
	checksums map[string]string
}

// Option adjusts how Load reads and verifies the dataset files.
type Option func(*loadConfig)

// WithLogger routes load progress to log instead of discarding it.
func WithLogger(log logger.Logger) Option {
	return func(c *loadConfig) {
		c.log = log
	}
}

// WithChecksum pins the SHA-256 digest (hex) of the file at path. Load
// fails with ErrChecksumMismatch if the bytes on disk do not match. The
// digest covers the file as distributed, so for .gz files it is the
// digest of the compressed bytes.
func WithChecksum(path, sha256hex string) Option {
	return func(c *loadConfig) {
		if c.checksums == nil {
			c.checksums = make(map[string]string)
		}
		c.checksums[path] = sha256hex
	}
}

// Load reads an images file and a labels file, decodes and validates
// both, and assembles them into a Handle. Assembly is all or nothing: on
// any failure no partial dataset exists. The rec function picks the
// image container type once for the whole dataset.
func Load[I Record](imagesPath, labelsPath string, rec RecordFunc[I], opts ...Option) (*Handle[I], error) {
	cfg := loadConfig{log: logger.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	cfg.log.Info("reading images", "path", imagesPath)
	images, err := loadImages(imagesPath, rec, &cfg)
	if err != nil {
		return nil, err
	}
	cfg.log.Info("images read", "count", len(images))

	cfg.log.Info("reading labels", "path", labelsPath)
	labels, err := loadLabels(labelsPath, &cfg)
	if err != nil {
		return nil, err
	}
	cfg.log.Info("labels read", "count", len(labels))

	h, err := New(Dataset[I]{Images: images, Labels: labels})
	if err != nil {
		cfg.log.Error("dataset assembly failed", "error", err)
		return nil, err
	}
	return h, nil
}

// TrainPair resolves the canonical training file pair under dir,
// falling back to the .gz variants the MNIST site distributes.
func TrainPair(dir string) (imagesPath, labelsPath string, err error) {
	return resolvePair(dir, TrainImagesFile, TrainLabelsFile)
}

// TestPair resolves the canonical test file pair under dir.
func TestPair(dir string) (imagesPath, labelsPath string, err error) {
	return resolvePair(dir, TestImagesFile, TestLabelsFile)
}

func resolvePair(dir, images, labels string) (string, string, error) {
	imagesPath, err := resolveFile(filepath.Join(dir, images))
	if err != nil {
		return "", "", err
	}
	labelsPath, err := resolveFile(filepath.Join(dir, labels))
	if err != nil {
		return "", "", err
	}
	return imagesPath, labelsPath, nil
}

func resolveFile(path string) (string, error) {
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	if _, err := os.Stat(path + ".gz"); err == nil {
		return path + ".gz", nil
	}
	return "", fmt.Errorf("dataset file %s: %w", path, os.ErrNotExist)
}

func loadImages[I Record](path string, rec RecordFunc[I], cfg *loadConfig) ([]I, error) {
	buf, err := readVerified(path, cfg)
	if err != nil {
		return nil, err
	}
	h, err := idx.DecodeHeader(buf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	raw, err := idx.ExtractImages(buf, h)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	images := make([]I, len(raw))
	for i, r := range raw {
		images[i] = rec(r)
	}
	return images, nil
}

func loadLabels(path string, cfg *loadConfig) ([]uint8, error) {
	buf, err := readVerified(path, cfg)
	if err != nil {
		return nil, err
	}
	h, err := idx.DecodeHeader(buf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	raw, err := idx.ExtractLabels(buf, h)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	// raw aliases buf; copy so the label slice owns its memory.
	return append([]uint8(nil), raw...), nil
}

func readVerified(path string, cfg *loadConfig) ([]byte, error) {
	if want, ok := cfg.checksums[path]; ok {
		disk, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		sum := sha256.Sum256(disk)
		if got := hex.EncodeToString(sum[:]); got != want {
			return nil, fmt.Errorf("%w: %s: got %s, want %s", ErrChecksumMismatch, path, got, want)
		}
	}
	return idx.ReadFile(path)
}
