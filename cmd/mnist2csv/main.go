package main

import (
	"fmt"
	"io"
	"os"

	"github.com/magneticio/go-common/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/KyungWonPark/mnistcsv/internal/config"
	"github.com/KyungWonPark/mnistcsv/internal/convert"
)

// rootCmd converts the MNIST test set found under $MNIST_ROOT/assets/mnist
var rootCmd = &cobra.Command{
	Use:   "mnist2csv",
	Short: "Convert the MNIST test set to a flat CSV file",
	Long: `Reads assets/mnist/t10k-images-idx3-ubyte.gz and
assets/mnist/t10k-labels-idx1-ubyte.gz and writes assets/mnist/mnist_test.csv,
one "label,pixel0,...,pixel783" line per sample.

Environment:
  MNIST_ROOT     project root (default ".")
  MNIST_VERBOSE  log progress
  MNIST_VERIFY   re-read the written file and compare it with the inputs
`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.OutOrStdout(), viper.GetViper())
	},
}

// run converts to CSV and prints the one-line summary to w
func run(w io.Writer, v *viper.Viper) error {
	paths := config.Load(v)

	summary, err := convert.Run(paths, convert.CSV)
	if err != nil {
		return err
	}

	if v.GetBool(config.KeyVerify) {
		if err := convert.VerifyCSV(paths); err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "Wrote %d samples to %s\n", summary.Samples, summary.Output[0])
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
