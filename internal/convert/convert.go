package convert

import (
	"fmt"

	"github.com/magneticio/go-common/logging"

	"github.com/KyungWonPark/mnistcsv/internal/config"
	"github.com/KyungWonPark/mnistcsv/internal/idx"
	"github.com/KyungWonPark/mnistcsv/internal/io"
)

// Format selects the output written by Run
type Format int

// Output formats
const (
	CSV Format = iota
	Npy
)

func (f Format) String() string {
	switch f {
	case CSV:
		return "csv"
	case Npy:
		return "npy"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Summary reports what a run wrote
type Summary struct {
	Samples int
	Output  []string
}

// Load reads and validates both input files. Nothing is written.
func Load(paths config.Paths) (*idx.Dataset, error) {
	images, err := idx.LoadImages(paths.Images)
	if err != nil {
		return nil, err
	}
	logging.Info("Read %d images of %dx%d from %s\n", images.Count, images.Rows, images.Cols, paths.Images)

	labels, err := idx.LoadLabels(paths.Labels)
	if err != nil {
		return nil, err
	}
	logging.Info("Read %d labels from %s\n", labels.Count, paths.Labels)

	return idx.NewDataset(images, labels), nil
}

// Run converts the MNIST test set under paths to format
func Run(paths config.Paths, format Format) (*Summary, error) {
	ds, err := Load(paths)
	if err != nil {
		return nil, err
	}

	switch format {
	case CSV:
		n, err := io.DatasetToCSV(paths.CSV, ds)
		if err != nil {
			return nil, err
		}
		return &Summary{Samples: n, Output: []string{paths.CSV}}, nil

	case Npy:
		m, err := io.ImagesToMat64(ds)
		if err != nil {
			return nil, err
		}
		if err := io.Mat64toNpy(paths.NpyImages, m); err != nil {
			return nil, err
		}
		if err := io.LabelsToNpy(paths.NpyLabels, ds); err != nil {
			return nil, err
		}
		return &Summary{Samples: ds.Len(), Output: []string{paths.NpyImages, paths.NpyLabels}}, nil
	}

	return nil, fmt.Errorf("unknown output format %v", format)
}

// VerifyCSV re-reads the csv at paths.CSV and compares every line with the inputs
func VerifyCSV(paths config.Paths) error {
	ds, err := Load(paths)
	if err != nil {
		return err
	}

	samples, err := io.CSVtoSamples(paths.CSV)
	if err != nil {
		return err
	}
	if len(samples) != ds.Len() {
		return fmt.Errorf("%s: %d lines, want %d", paths.CSV, len(samples), ds.Len())
	}

	for i, s := range samples {
		want := ds.Sample(i)
		if s.Label != want.Label {
			return fmt.Errorf("%s line %d: label %d, want %d", paths.CSV, i+1, s.Label, want.Label)
		}
		if string(s.Pixels) != string(want.Pixels) {
			return fmt.Errorf("%s line %d: pixels differ from image %d", paths.CSV, i+1, i)
		}
	}
	logging.Info("Verified %d lines of %s\n", len(samples), paths.CSV)

	return nil
}
