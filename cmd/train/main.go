// Command train fits an SVM classifier with full or semiparametric IRWLS.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/RobeDM/LIBIRWLS/dataset"
	"github.com/RobeDM/LIBIRWLS/internal/cli"
	"github.com/RobeDM/LIBIRWLS/kernel"
	"github.com/RobeDM/LIBIRWLS/model"
	"github.com/RobeDM/LIBIRWLS/prng"
	"github.com/RobeDM/LIBIRWLS/semiparam"
	"github.com/RobeDM/LIBIRWLS/sgma"
	"github.com/RobeDM/LIBIRWLS/solver"
)

type trainOptions struct {
	Gamma      float64
	C          float64
	Threads    int
	KernelType int
	Size       int
	Algorithm  int
	WorkingSet int
	Eta        float64
	Format     int
	Separator  string
	Verbose    bool
	Labeled    bool
}

func main() {
	opts := &trainOptions{}

	cmd := &cobra.Command{
		Use:          "train [flags] dataset model_out",
		Short:        "Train an SVM classifier with full or semiparametric IRWLS",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrain(opts, args[0], args[1])
		},
	}

	cmd.Flags().Float64VarP(&opts.Gamma, "gamma", "g", 1.0, "RBF kernel gamma")
	cmd.Flags().Float64VarP(&opts.C, "cost", "c", 1.0, "regularization cost C")
	cmd.Flags().IntVarP(&opts.Threads, "threads", "t", 1, "worker thread budget")
	cmd.Flags().IntVarP(&opts.KernelType, "kernel", "k", 1, "kernel type: 0=linear, 1=rbf")
	cmd.Flags().IntVarP(&opts.Size, "size", "s", 0, "semiparametric basis size (0 runs full IRWLS)")
	cmd.Flags().IntVarP(&opts.Algorithm, "algorithm", "a", 1, "centroid algorithm: 0=random, 1=sgma")
	cmd.Flags().IntVarP(&opts.WorkingSet, "working-set", "w", 500, "full IRWLS working-set size")
	cmd.Flags().Float64VarP(&opts.Eta, "eta", "e", 1e-3, "full IRWLS convergence threshold")
	cmd.Flags().IntVarP(&opts.Format, "format", "f", 1, "input format: 0=csv, 1=libsvm")
	cmd.Flags().StringVarP(&opts.Separator, "separator", "p", ",", "CSV field separator")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "enable verbose logging")
	cmd.Flags().BoolVarP(&opts.Labeled, "labeled", "l", true, "input dataset carries labels")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitFor(err))
	}
}

func runTrain(opts *trainOptions, inPath, outPath string) error {
	log := cli.NewLogger(opts.Verbose)

	samples, labels, dim, sparse, err := loadDataset(opts, inPath)
	if err != nil {
		return cli.WrapIOError(err)
	}
	ds, err := dataset.Build(samples, labels, dim, sparse)
	if err != nil {
		return cli.WrapArgError(err)
	}
	if opts.KernelType != int(kernel.Linear) && opts.KernelType != int(kernel.RBF) {
		return cli.WrapArgError(fmt.Errorf("train: kernel type must be 0 (linear) or 1 (rbf), got %d", opts.KernelType))
	}
	kf := kernel.Func{Type: kernel.Type(opts.KernelType), Gamma: opts.Gamma}

	var m *model.Model
	if opts.Size > 0 {
		m, err = trainSemiparametric(ds, kf, opts, log)
	} else {
		m, err = trainFull(ds, kf, opts, log)
	}
	if err != nil {
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return cli.WrapIOError(err)
	}
	defer out.Close()
	if err := model.Save(out, m); err != nil {
		return cli.WrapIOError(err)
	}
	return nil
}

func loadDataset(opts *trainOptions, path string) ([]dataset.Sample, []float64, int, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, 0, false, err
	}
	defer f.Close()

	if opts.Format == 0 {
		sep := ','
		if len(opts.Separator) > 0 {
			sep = rune(opts.Separator[0])
		}
		samples, labels, dim, err := dataset.ReadCSV(f, sep, opts.Labeled)
		return samples, labels, dim, false, err
	}
	samples, labels, dim, sparse, err := dataset.ReadLIBSVM(f, opts.Labeled)
	return samples, labels, dim, sparse, err
}

func trainFull(ds *dataset.Dataset, kf kernel.Func, opts *trainOptions, log *logrus.Logger) (*model.Model, error) {
	props := solver.Properties{
		C:              opts.C,
		Eta:            opts.Eta,
		Threads:        opts.Threads,
		MaxWorkingSize: opts.WorkingSet,
		Kernel:         kf,
		Seed:           0,
	}
	result, err := solver.Train(ds, props, log)
	if err != nil {
		return nil, err
	}

	n := ds.N()
	var indices []int
	var weights []float64
	for i := 0; i < n; i++ {
		if result.Beta[i] != 0 {
			indices = append(indices, i)
			weights = append(weights, result.Beta[i])
		}
	}
	return model.Assemble(ds, kf, indices, weights, result.Beta[n])
}

func trainSemiparametric(ds *dataset.Dataset, kf kernel.Func, opts *trainOptions, log *logrus.Logger) (*model.Model, error) {
	method := sgma.Random
	if opts.Algorithm == 1 {
		method = sgma.Greedy
	}
	rng := prng.New(0)
	centroids, err := sgma.Select(ds, kf, method, opts.Size, opts.Threads, rng)
	if err != nil {
		return nil, cli.WrapArgError(err)
	}

	props := semiparam.Properties{C: opts.C, Threads: opts.Threads, Kernel: kf}
	result, err := semiparam.Train(ds, centroids, props, log)
	if err != nil {
		return nil, err
	}
	return model.Assemble(ds, kf, centroids, result.Beta, 0)
}
