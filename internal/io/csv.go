package io

import (
	"bufio"
	"encoding/csv"
	"fmt"
	stdio "io"
	"os"
	"strconv"
	"strings"

	"github.com/KyungWonPark/mnistcsv/internal/idx"
)

// WriteCSV writes one "label,p0,...,pn-1" line per sample in index order
func WriteCSV(w stdio.Writer, ds *idx.Dataset) (int, error) {
	bw := bufio.NewWriter(w)
	var line []byte

	for i := 0; i < ds.Len(); i++ {
		line = appendLine(line[:0], ds.Sample(i))
		if _, err := bw.Write(line); err != nil {
			return i, err
		}
	}

	if err := bw.Flush(); err != nil {
		return ds.Len(), err
	}

	return ds.Len(), nil
}

func appendLine(dst []byte, s idx.Sample) []byte {
	dst = strconv.AppendUint(dst, uint64(s.Label), 10)
	for _, p := range s.Pixels {
		dst = append(dst, ',')
		dst = strconv.AppendUint(dst, uint64(p), 10)
	}

	return append(dst, '\n')
}

// DatasetToCSV saves every sample of ds to path
func DatasetToCSV(path string, ds *idx.Dataset) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}

	n, err := WriteCSV(f, ds)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return n, fmt.Errorf("[DatasetToCSV] %s: %w", path, err)
	}

	return n, nil
}

// ReadCSV parses lines written by WriteCSV back into samples
func ReadCSV(r stdio.Reader) ([]idx.Sample, error) {
	var samples []idx.Sample

	csvReader := csv.NewReader(r)
	for lineNo := 1; ; lineNo++ {
		record, err := csvReader.Read()
		if err == stdio.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		values := make([]byte, len(record))
		for i, field := range record {
			v, err := strconv.ParseUint(strings.TrimSpace(field), 10, 8)
			if err != nil {
				return nil, fmt.Errorf("line %d field %d: %w", lineNo, i, err)
			}
			values[i] = byte(v)
		}

		samples = append(samples, idx.Sample{Label: values[0], Pixels: values[1:]})
	}

	return samples, nil
}

// CSVtoSamples reads a csv file written by DatasetToCSV
func CSVtoSamples(path string) ([]idx.Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadCSV(f)
}
