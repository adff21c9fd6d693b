package config

import (
	"path/filepath"

	"github.com/spf13/viper"
)

// Layout of the MNIST test set under the project root
const (
	MnistDir      = "assets/mnist"
	ImagesFile    = "t10k-images-idx3-ubyte.gz"
	LabelsFile    = "t10k-labels-idx1-ubyte.gz"
	CSVFile       = "mnist_test.csv"
	NpyImagesFile = "mnist_test_images.npy"
	NpyLabelsFile = "mnist_test_labels.npy"
)

// Environment keys, read as MNIST_ROOT, MNIST_VERBOSE and MNIST_VERIFY
const (
	KeyRoot    = "root"
	KeyVerbose = "verbose"
	KeyVerify  = "verify"
)

// Paths holds every file a conversion touches
type Paths struct {
	Root      string
	Images    string
	Labels    string
	CSV       string
	NpyImages string
	NpyLabels string
}

// NewPaths lays the fixed file names out under root
func NewPaths(root string) Paths {
	dir := filepath.Join(root, filepath.FromSlash(MnistDir))

	return Paths{
		Root:      root,
		Images:    filepath.Join(dir, ImagesFile),
		Labels:    filepath.Join(dir, LabelsFile),
		CSV:       filepath.Join(dir, CSVFile),
		NpyImages: filepath.Join(dir, NpyImagesFile),
		NpyLabels: filepath.Join(dir, NpyLabelsFile),
	}
}

// Init binds the MNIST_ environment and sets defaults on v
func Init(v *viper.Viper) {
	v.SetEnvPrefix("mnist")
	v.AutomaticEnv()
	v.SetDefault(KeyRoot, ".")
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyVerify, false)
}

// Load resolves the project root from v
func Load(v *viper.Viper) Paths {
	return NewPaths(v.GetString(KeyRoot))
}
