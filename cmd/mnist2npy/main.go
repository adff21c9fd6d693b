package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/magneticio/go-common/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/KyungWonPark/mnistcsv/internal/config"
	"github.com/KyungWonPark/mnistcsv/internal/convert"
)

// rootCmd exports the MNIST test set found under $MNIST_ROOT/assets/mnist as npy arrays
var rootCmd = &cobra.Command{
	Use:   "mnist2npy",
	Short: "Convert the MNIST test set to numpy arrays",
	Long: `Reads the same inputs as mnist2csv and writes
assets/mnist/mnist_test_images.npy (samples x 784, float64) and
assets/mnist/mnist_test_labels.npy (samples, uint8).

Environment:
  MNIST_ROOT     project root (default ".")
  MNIST_VERBOSE  log progress
`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.OutOrStdout(), viper.GetViper())
	},
}

// run exports both arrays and prints the one-line summary to w
func run(w io.Writer, v *viper.Viper) error {
	summary, err := convert.Run(config.Load(v), convert.Npy)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Wrote %d samples to %s\n", summary.Samples, strings.Join(summary.Output, ", "))
	return nil
}

func init() {
	logging.Init(os.Stdout, os.Stderr)
	cobra.OnInitialize(initConfig)
}

// initConfig binds the MNIST_ environment and applies MNIST_VERBOSE
func initConfig() {
	config.Init(viper.GetViper())
	logging.Verbose = viper.GetBool(config.KeyVerbose)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logging.Error("%v\n", err)
		os.Exit(1)
	}
}
