// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// snnsim runs the synapse and neuron simulations from the command line.
//
//	snnsim tm  --params Facilitating --csv tm.csv
//	snnsim lif --steps 500 --threads 4 --snapshot lif.snap
//	snnsim period 1.2 1.5 2
package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"

	"github.com/emer/empi/mpi"
	"github.com/emer/etable/etable"
	"github.com/emer/snn/config"
	"github.com/emer/snn/sim"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// opts are the command line overrides shared by all subcommands
type opts struct {
	config   string
	params   string
	steps    int
	dt       float32
	threads  int
	csv      string
	snapshot string
	sizes    bool
}

func main() {
	o := &opts{}
	var cfg *config.Config

	rootCmd := &cobra.Command{
		Use:          "snnsim",
		Short:        "Tsodyks-Markram synapse and LIF neuron simulations",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = loadConfig(cmd.Flags(), o)
			return err
		},
	}
	addFlags(rootCmd.PersistentFlags(), o)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "tm",
		Short: "Drive a population of synapses with a spike train and record release",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTM(cfg, o)
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "lif",
		Short: "Drive a population of neurons with constant currents and record spikes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLIF(cfg, o)
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "period [current...]",
		Short: "Print the analytic inter-spike interval for constant currents",
		Long:  "Print the analytic inter-spike interval, in steps and seconds, for each given constant current, or for the configured LIF currents if none are given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPeriod(cfg, args)
		},
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addFlags(fs *pflag.FlagSet, o *opts) {
	fs.StringVar(&o.config, "config", "", "YAML config file overlaid on the defaults")
	fs.StringVar(&o.params, "params", "", "named parameter set to apply: Base, Facilitating, Depressing, FastMembrane")
	fs.IntVar(&o.steps, "steps", 0, "number of steps to run -- overrides the config")
	fs.Float32Var(&o.dt, "dt", 0.001, "integration time step in seconds -- overrides the config")
	fs.IntVar(&o.threads, "threads", 1, "number of goroutines per step -- overrides the config")
	fs.StringVar(&o.csv, "csv", "", "save the recorded trajectory to this CSV file")
	fs.StringVar(&o.snapshot, "snapshot", "", "save the recorded trajectory to this msgpack snapshot file")
	fs.BoolVar(&o.sizes, "sizes", false, "print the memory used by the recorded trajectory")
}

// loadConfig builds the config from defaults, file, environment, param set
// and finally any flags that were explicitly set.
func loadConfig(fs *pflag.FlagSet, o *opts) (*config.Config, error) {
	cfg, err := config.Load(o.config)
	if err != nil {
		return nil, err
	}
	if o.params != "" {
		if err := config.ApplyParams(cfg, o.params, false); err != nil {
			return nil, err
		}
		mpi.Printf("Applied params: %s\n", o.params)
	}
	if fs.Changed("steps") {
		cfg.TM.Steps = o.steps
		cfg.LIF.Steps = o.steps
	}
	if fs.Changed("dt") {
		cfg.Dt = o.dt
	}
	if fs.Changed("threads") {
		cfg.NThreads = o.threads
	}
	if fs.Changed("csv") {
		cfg.Out.CSV = o.csv
	}
	if fs.Changed("snapshot") {
		cfg.Out.Snapshot = o.snapshot
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	for _, w := range cfg.Warnings() {
		log.Printf("warning: %s\n", w)
	}
	if cfg.Seed != 0 {
		rand.Seed(cfg.Seed)
	}
	return cfg, nil
}

func runTM(cfg *config.Config, o *opts) error {
	dr, pop := sim.TMScenario(cfg)
	dt, err := dr.Run()
	if err != nil {
		return err
	}
	mpi.Printf("TM: %d synapses, %d steps, params: %s\n", pop.N(), dr.Steps, pop.Params.String())
	for _, cyc := range sim.SpikeTimes(dt, 0) {
		mpi.Printf("%6d\t Rel: %8.5f\t X: %8.5f\t U: %8.5f\n", cyc, dt.CellTensorFloat1D("Out", cyc, 0),
			dt.CellTensorFloat1D("X", cyc, 0), dt.CellTensorFloat1D("U", cyc, 0))
	}
	xr := sim.VarRange(dt, "X", 0)
	mpi.Printf("X range: [%g, %g]\n", xr.Min, xr.Max)
	return save(cfg, o, dt, "tm", pop.Params)
}

func runLIF(cfg *config.Config, o *opts) error {
	dr, pop := sim.LIFScenario(cfg)
	dt, err := dr.Run()
	if err != nil {
		return err
	}
	mpi.Printf("LIF: %d neurons, %d steps, params: %s\n", pop.N(), dr.Steps, pop.Params.String())
	cnt := sim.SpikeCounts(dt)
	for ni, cur := range cfg.LIF.Inputs() {
		per := "never"
		if n, ok := pop.Params.PeriodSteps(cur, cfg.Dt); ok {
			per = strconv.Itoa(n)
		}
		mpi.Printf("%4d\t I: %6.3f\t Spikes: %4d\t Period: %s\n", ni, cur, cnt[ni], per)
	}
	return save(cfg, o, dt, "lif", pop.Params)
}

func runPeriod(cfg *config.Config, args []string) error {
	curs := cfg.LIF.Inputs()
	if len(args) > 0 {
		curs = make([]float32, len(args))
		for i, a := range args {
			f, err := strconv.ParseFloat(a, 32)
			if err != nil {
				return fmt.Errorf("current %q: %w", a, err)
			}
			curs[i] = float32(f)
		}
	}
	for _, cur := range curs {
		n, ok := cfg.LIF.Params.PeriodSteps(cur, cfg.Dt)
		if !ok {
			mpi.Printf("I: %6.3f\t never fires\n", cur)
			continue
		}
		mpi.Printf("I: %6.3f\t Period: %4d steps\t %g sec\n", cur, n, float32(n)*cfg.Dt)
	}
	return nil
}

// save writes the configured output files.
// only for 0 rank MPI if running mpi
func save(cfg *config.Config, o *opts, dt *etable.Table, kind string, pars fmt.Stringer) error {
	if o.sizes {
		mpi.Printf("%s", sim.SizeReport(dt))
	}
	if mpi.WorldRank() > 0 {
		return nil
	}
	if cfg.Out.CSV != "" {
		if err := sim.SaveCSV(dt, cfg.Out.CSV); err != nil {
			return err
		}
		log.Printf("Saved trajectory to: %s\n", cfg.Out.CSV)
	}
	if cfg.Out.Snapshot != "" {
		sn := sim.NewSnapshot(kind, pars, dt, cfg.Dt)
		if err := sim.SaveSnapshot(sn, cfg.Out.Snapshot); err != nil {
			return err
		}
		log.Printf("Saved snapshot %s to: %s\n", sn.RunID, cfg.Out.Snapshot)
	}
	return nil
}
