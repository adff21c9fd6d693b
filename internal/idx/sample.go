package idx

// Sample is one label paired with its image pixels
type Sample struct {
	Label  uint8
	Pixels []byte
}

// Stride returns number of pixels per image
func (s *ImageSet) Stride() int {
	return s.Rows * s.Cols
}

// Pixels returns i-th image. The slice aliases the set's buffer.
func (s *ImageSet) Pixels(i int) []byte {
	stride := s.Stride()
	start := i * stride

	return s.pixels[start : start+stride : start+stride]
}

// Label returns i-th label
func (s *LabelSet) Label(i int) uint8 {
	return s.labels[i]
}

// Dataset pairs an image set with a label set by index
type Dataset struct {
	Images *ImageSet
	Labels *LabelSet
	n      int
}

// NewDataset pairs images with labels. Surplus records in the larger set are ignored.
func NewDataset(images *ImageSet, labels *LabelSet) *Dataset {
	n := images.Count
	if labels.Count < n {
		n = labels.Count
	}

	return &Dataset{Images: images, Labels: labels, n: n}
}

// Len returns number of samples, min(images, labels)
func (d *Dataset) Len() int {
	return d.n
}

// Sample returns i-th sample
func (d *Dataset) Sample(i int) Sample {
	return Sample{
		Label:  d.Labels.Label(i),
		Pixels: d.Images.Pixels(i),
	}
}

// NewImageSet wraps count images of rows x cols pixels held in pixels
func NewImageSet(count, rows, cols int, pixels []byte) *ImageSet {
	return &ImageSet{Magic: ImageMagic, Count: count, Rows: rows, Cols: cols, pixels: pixels}
}

// NewLabelSet wraps one label per byte
func NewLabelSet(labels []byte) *LabelSet {
	return &LabelSet{Magic: LabelMagic, Count: len(labels), labels: labels}
}
