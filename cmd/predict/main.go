// Command predict evaluates a trained model against a test dataset.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RobeDM/LIBIRWLS/dataset"
	"github.com/RobeDM/LIBIRWLS/internal/cli"
	"github.com/RobeDM/LIBIRWLS/model"
)

type predictOptions struct {
	Soft      bool
	Format    int
	Separator string
	Verbose   bool
	Labeled   bool
}

func main() {
	opts := &predictOptions{}

	cmd := &cobra.Command{
		Use:          "predict [flags] dataset model output",
		Short:        "Evaluate a trained model against a test dataset",
		Args:         cobra.ExactArgs(3),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPredict(opts, args[0], args[1], args[2])
		},
	}

	cmd.Flags().BoolVarP(&opts.Soft, "soft", "s", false, "output raw decision values instead of +-1 labels")
	cmd.Flags().IntVarP(&opts.Format, "format", "f", 1, "input format: 0=csv, 1=libsvm")
	cmd.Flags().StringVarP(&opts.Separator, "separator", "p", ",", "CSV field separator")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "enable verbose logging")
	cmd.Flags().BoolVarP(&opts.Labeled, "labeled", "l", false, "input dataset carries labels, enabling accuracy reporting")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitFor(err))
	}
}

func runPredict(opts *predictOptions, dataPath, modelPath, outPath string) error {
	log := cli.NewLogger(opts.Verbose)

	mf, err := os.Open(modelPath)
	if err != nil {
		return cli.WrapIOError(err)
	}
	defer mf.Close()
	m, err := model.Load(mf)
	if err != nil {
		return cli.WrapIOError(err)
	}

	samples, labels, err := loadDataset(opts, dataPath)
	if err != nil {
		return cli.WrapIOError(err)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return cli.WrapIOError(err)
	}
	defer out.Close()
	bw := bufio.NewWriter(out)

	var correct int
	for i, s := range samples {
		var v float64
		if opts.Soft {
			v = m.PredictSoft(s)
		} else {
			v = m.PredictHard(s)
		}
		if _, err := fmt.Fprintf(bw, "%g\n", v); err != nil {
			return cli.WrapIOError(err)
		}
		if opts.Labeled && m.PredictHard(s) == labels[i] {
			correct++
		}
	}
	if err := bw.Flush(); err != nil {
		return cli.WrapIOError(err)
	}

	if opts.Labeled && len(samples) > 0 {
		accuracy := float64(correct) / float64(len(samples)) * 100
		log.Infof("accuracy: %.2f%% (%d/%d)", accuracy, correct, len(samples))
		fmt.Printf("Accuracy: %.2f%% (%d/%d)\n", accuracy, correct, len(samples))
	}
	return nil
}

func loadDataset(opts *predictOptions, path string) ([]dataset.Sample, []float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	if opts.Format == 0 {
		sep := ','
		if len(opts.Separator) > 0 {
			sep = rune(opts.Separator[0])
		}
		samples, labels, _, err := dataset.ReadCSV(f, sep, opts.Labeled)
		return samples, labels, err
	}
	samples, labels, _, _, err := dataset.ReadLIBSVM(f, opts.Labeled)
	return samples, labels, err
}
