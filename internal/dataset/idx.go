package dataset

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/born-ml/perceptron/internal/matrix"
)

// IDX magic numbers for unsigned-byte image and label files.
const (
	idxImageMagic = 2051
	idxLabelMagic = 2049
)

// maxIDXSide bounds each image dimension read from a header.
const maxIDXSide = 1 << 14

// maxPrealloc caps slice capacity taken from an untrusted sample count.
const maxPrealloc = 4096

// LoadIDX reads the MNIST IDX binary pair. images holds a big-endian header
// (magic 2051, count, rows, cols) followed by one unsigned byte per pixel;
// labels holds (magic 2049, count) followed by one byte per label.
// Pixels are multiplied by scale and labels one-hot encoded over classes.
// A positive limit caps the number of samples read.
func LoadIDX(images, labels io.Reader, classes int, scale float64, limit int, opts ...matrix.Option) (data, targets []*matrix.Matrix, err error) {
	var imgHeader [4]uint32
	if err := binary.Read(images, binary.BigEndian, &imgHeader); err != nil {
		return nil, nil, fmt.Errorf("dataset: idx images header: %w", err)
	}
	if imgHeader[0] != idxImageMagic {
		return nil, nil, fmt.Errorf("dataset: idx images magic %d, want %d: %w", imgHeader[0], idxImageMagic, ErrMalformedRecord)
	}

	var lblHeader [2]uint32
	if err := binary.Read(labels, binary.BigEndian, &lblHeader); err != nil {
		return nil, nil, fmt.Errorf("dataset: idx labels header: %w", err)
	}
	if lblHeader[0] != idxLabelMagic {
		return nil, nil, fmt.Errorf("dataset: idx labels magic %d, want %d: %w", lblHeader[0], idxLabelMagic, ErrMalformedRecord)
	}

	count := int(imgHeader[1])
	if int(lblHeader[1]) != count {
		return nil, nil, fmt.Errorf("dataset: idx %d images, %d labels: %w", count, lblHeader[1], matrix.ErrShapeMismatch)
	}
	if limit > 0 && limit < count {
		count = limit
	}

	rows, cols := int(imgHeader[2]), int(imgHeader[3])
	if rows <= 0 || cols <= 0 || rows > maxIDXSide || cols > maxIDXSide {
		return nil, nil, fmt.Errorf("dataset: idx image size %dx%d: %w", rows, cols, ErrMalformedRecord)
	}
	size := rows * cols
	pixels := make([]byte, size)
	values := make([]float64, size)
	var class [1]byte

	data = make([]*matrix.Matrix, 0, min(count, maxPrealloc))
	targets = make([]*matrix.Matrix, 0, min(count, maxPrealloc))
	for i := 0; i < count; i++ {
		if _, err := io.ReadFull(images, pixels); err != nil {
			return nil, nil, fmt.Errorf("dataset: idx image %d: %w", i, err)
		}
		if _, err := io.ReadFull(labels, class[:]); err != nil {
			return nil, nil, fmt.Errorf("dataset: idx label %d: %w", i, err)
		}
		for j, p := range pixels {
			values[j] = float64(p) * scale
		}
		label, err := OneHot(int(class[0]), classes, opts...)
		if err != nil {
			return nil, nil, fmt.Errorf("dataset: idx label %d: %w", i, err)
		}
		data = append(data, matrix.Column(values, opts...))
		targets = append(targets, label)
	}
	return data, targets, nil
}
