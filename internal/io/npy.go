package io

import (
	"errors"
	"fmt"
	"os"

	"github.com/gonum/matrix/mat64"
	"github.com/kshedden/gonpy"

	"github.com/KyungWonPark/mnistcsv/internal/idx"
)

// ErrEmpty is returned when a dataset has no samples to export as a matrix
var ErrEmpty = errors.New("dataset has no samples")

// ImagesToMat64 lays the paired images out as a samples x pixels matrix
func ImagesToMat64(ds *idx.Dataset) (*mat64.Dense, error) {
	rows, cols := ds.Len(), ds.Images.Stride()
	if rows == 0 || cols == 0 {
		return nil, ErrEmpty
	}

	data := make([]float64, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for _, p := range ds.Images.Pixels(i) {
			data = append(data, float64(p))
		}
	}

	return mat64.NewDense(rows, cols, data), nil
}

// Mat64toNpy writes mat64 matrix to Python numpy npy binary file
func Mat64toNpy(path string, matrix *mat64.Dense) error {
	rows, cols := matrix.Dims()
	rawMat := matrix.RawMatrix()

	w, err := gonpy.NewFileWriter(path)
	if err != nil {
		return fmt.Errorf("[Mat64toNpy] Failed to open file: %w", err)
	}
	w.Shape = []int{rows, cols}
	w.Version = 2

	// rawMat.Data is only contiguous when the stride equals the column count
	data := rawMat.Data
	if rawMat.Stride != cols {
		data = make([]float64, 0, rows*cols)
		for i := 0; i < rows; i++ {
			data = append(data, matrix.RawRowView(i)...)
		}
	}

	if err := w.WriteFloat64(data); err != nil {
		return fmt.Errorf("[Mat64toNpy] Failed to write file: %w", err)
	}

	return nil
}

// NpytoMat64 reads Python numpy npy binary file as mat64 matrix
func NpytoMat64(path string) (*mat64.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("[NpytoMat64] Failed to open file: %w", err)
	}
	defer f.Close()

	r, err := gonpy.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("[NpytoMat64] Failed to open file: %w", err)
	}
	if len(r.Shape) != 2 {
		return nil, fmt.Errorf("[NpytoMat64] %s: expected 2 dimensions, got %v", path, r.Shape)
	}

	rows := r.Shape[0]
	cols := r.Shape[1]
	data, err := r.GetFloat64()
	if err != nil {
		return nil, fmt.Errorf("[NpytoMat64] Failed to read file: %w", err)
	}

	return mat64.NewDense(rows, cols, data), nil
}

// LabelsToNpy writes the paired labels as a uint8 vector
func LabelsToNpy(path string, ds *idx.Dataset) error {
	if ds.Len() == 0 {
		return ErrEmpty
	}

	labels := make([]uint8, ds.Len())
	for i := range labels {
		labels[i] = ds.Labels.Label(i)
	}

	w, err := gonpy.NewFileWriter(path)
	if err != nil {
		return fmt.Errorf("[LabelsToNpy] Failed to open file: %w", err)
	}
	w.Shape = []int{len(labels)}
	w.Version = 2

	if err := w.WriteUint8(labels); err != nil {
		return fmt.Errorf("[LabelsToNpy] Failed to write file: %w", err)
	}

	return nil
}

// NpytoLabels reads a uint8 vector written by LabelsToNpy
func NpytoLabels(path string) ([]uint8, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("[NpytoLabels] Failed to open file: %w", err)
	}
	defer f.Close()

	r, err := gonpy.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("[NpytoLabels] Failed to open file: %w", err)
	}

	labels, err := r.GetUint8()
	if err != nil {
		return nil, fmt.Errorf("[NpytoLabels] Failed to read file: %w", err)
	}

	return labels, nil
}
