package idx

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/klauspost/compress/gzip"
)

// Magic numbers of the two IDX variants the MNIST test set ships in
const (
	ImageMagic uint32 = 2051
	LabelMagic uint32 = 2049
)

// ErrTooLarge is returned when a header declares a body that cannot be addressed
var ErrTooLarge = errors.New("declared body size too large")

// InvalidFormatError is returned when a file's magic number is not the expected one
type InvalidFormatError struct {
	Kind string
	Got  uint32
	Want uint32
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid MNIST %s file: magic %d, want %d", e.Kind, e.Got, e.Want)
}

// ImageSet holds an IDX3 image file
type ImageSet struct {
	Magic  uint32
	Count  int
	Rows   int
	Cols   int
	pixels []byte
}

// LabelSet holds an IDX1 label file
type LabelSet struct {
	Magic  uint32
	Count  int
	labels []byte
}

func readHeader(r io.Reader, fields []uint32) error {
	if err := binary.Read(r, binary.BigEndian, fields); err != nil {
		return fmt.Errorf("read header: %w", err)
	}

	return nil
}

// bodySize multiplies header dimensions, failing instead of wrapping around
func bodySize(dims ...uint32) (int, error) {
	size := uint64(1)
	for _, d := range dims {
		if d != 0 && size > uint64(math.MaxInt)/uint64(d) {
			return 0, fmt.Errorf("%w: dimensions %v", ErrTooLarge, dims)
		}
		size *= uint64(d)
	}

	return int(size), nil
}

// readBody reads exactly n bytes. The buffer grows with the data actually
// present, so a lying header cannot force a huge allocation up front.
func readBody(r io.Reader, n int) ([]byte, error) {
	buf, err := io.ReadAll(io.LimitReader(r, int64(n)))
	if err != nil {
		return nil, fmt.Errorf("read %d bytes of body: %w", n, err)
	}
	if len(buf) != n {
		return nil, fmt.Errorf("read %d bytes of body, got %d: %w", n, len(buf), io.ErrUnexpectedEOF)
	}

	return buf, nil
}

// ReadImages parses a decompressed IDX3 stream
func ReadImages(r io.Reader) (*ImageSet, error) {
	header := make([]uint32, 4) // magic, count, rows, cols
	if err := readHeader(r, header); err != nil {
		return nil, err
	}
	if header[0] != ImageMagic {
		return nil, &InvalidFormatError{Kind: "images", Got: header[0], Want: ImageMagic}
	}

	// count and rows*cols must fit on their own, even when the product is 0
	count, err := bodySize(header[1])
	if err != nil {
		return nil, err
	}
	if _, err := bodySize(header[2], header[3]); err != nil {
		return nil, err
	}
	size, err := bodySize(header[1], header[2], header[3])
	if err != nil {
		return nil, err
	}

	set := ImageSet{
		Magic: header[0],
		Count: count,
		Rows:  int(header[2]),
		Cols:  int(header[3]),
	}

	pixels, err := readBody(r, size)
	if err != nil {
		return nil, err
	}
	set.pixels = pixels

	return &set, nil
}

// ReadLabels parses a decompressed IDX1 stream
func ReadLabels(r io.Reader) (*LabelSet, error) {
	header := make([]uint32, 2) // magic, count
	if err := readHeader(r, header); err != nil {
		return nil, err
	}
	if header[0] != LabelMagic {
		return nil, &InvalidFormatError{Kind: "labels", Got: header[0], Want: LabelMagic}
	}

	count, err := bodySize(header[1])
	if err != nil {
		return nil, err
	}

	set := LabelSet{
		Magic: header[0],
		Count: count,
	}

	labels, err := readBody(r, count)
	if err != nil {
		return nil, err
	}
	set.labels = labels

	return &set, nil
}

func loadGzip(path string, parse func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	defer zr.Close()

	if err := parse(zr); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}

// LoadImages reads a gzip-compressed IDX3 image file
func LoadImages(path string) (*ImageSet, error) {
	var set *ImageSet
	err := loadGzip(path, func(r io.Reader) (err error) {
		set, err = ReadImages(r)
		return
	})

	return set, err
}

// LoadLabels reads a gzip-compressed IDX1 label file
func LoadLabels(path string) (*LabelSet, error) {
	var set *LabelSet
	err := loadGzip(path, func(r io.Reader) (err error) {
		set, err = ReadLabels(r)
		return
	})

	return set, err
}
