package io_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KyungWonPark/mnistcsv/internal/idx"
	"github.com/KyungWonPark/mnistcsv/internal/io"
)

func TestImagesToMat64(t *testing.T) {
	m, err := io.ImagesToMat64(exampleDataset())
	require.NoError(t, err)

	rows, cols := m.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 4, cols)
	assert.Equal(t, 30.0, m.At(0, 2))
	assert.Equal(t, 80.0, m.At(1, 3))
}

func TestImagesToMat64Empty(t *testing.T) {
	ds := idx.NewDataset(idx.NewImageSet(1, 1, 1, []byte{1}), idx.NewLabelSet(nil))
	_, err := io.ImagesToMat64(ds)
	assert.Equal(t, io.ErrEmpty, err)
	assert.Equal(t, io.ErrEmpty, io.LabelsToNpy(filepath.Join(t.TempDir(), "l.npy"), ds))
}

func TestNpyMissingFile(t *testing.T) {
	dir := t.TempDir()

	_, err := io.NpytoMat64(filepath.Join(dir, "missing.npy"))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	_, err = io.NpytoLabels(filepath.Join(dir, "missing.npy"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestNpyRoundTrip(t *testing.T) {
	ds := patterned(3, 2)
	dir := t.TempDir()

	m, err := io.ImagesToMat64(ds)
	require.NoError(t, err)
	require.NoError(t, io.Mat64toNpy(filepath.Join(dir, "images.npy"), m))
	require.NoError(t, io.LabelsToNpy(filepath.Join(dir, "labels.npy"), ds))

	back, err := io.NpytoMat64(filepath.Join(dir, "images.npy"))
	require.NoError(t, err)
	rows, cols := back.Dims()
	require.Equal(t, 2, rows)
	require.Equal(t, 28*28, cols)
	for i := 0; i < rows; i++ {
		for j, p := range ds.Images.Pixels(i) {
			assert.Equal(t, float64(p), back.At(i, j))
		}
	}

	labels, err := io.NpytoLabels(filepath.Join(dir, "labels.npy"))
	require.NoError(t, err)
	assert.Equal(t, []uint8{255, 254}, labels)
}
