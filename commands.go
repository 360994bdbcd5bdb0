package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/jcorbin/inets/internal/flushio"
	"github.com/jcorbin/inets/internal/inet"
	"github.com/jcorbin/inets/internal/logio"
	"github.com/jcorbin/inets/internal/nodetable"
)

type app struct {
	log *logio.Logger
	out io.Writer

	configPath string
	flags      Config

	quiet   bool
	metrics bool
	dump    bool
	outPath string
}

func newRootCmd(log *logio.Logger, out io.Writer) *cobra.Command {
	a := &app{log: log, out: out}

	root := &cobra.Command{
		Use:   "inets",
		Short: "Reduce interaction nets given as flat node tables",
		Long: `inets loads an interaction net from a node table file, four words per
node, and reduces it to normal form. The first node is the root cell, whose
aux-1 port receives the result.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	def := DefaultConfig()
	pf.StringVar(&a.configPath, "config", "", "read settings from a YAML file")
	pf.StringVar(&a.flags.Profile, "profile", def.Profile, "storage profile: u32 or u64")
	pf.StringVar(&a.flags.Strategy, "strategy", def.Strategy, "worklist order: LIFO or FIFO")
	pf.UintVar(&a.flags.MemLimit, "mem-limit", 0, "limit the arena to this many nodes")
	pf.UintVar(&a.flags.PageSize, "page-size", 0, "grow the arena this many nodes at a time")
	pf.BoolVar(&a.flags.Lenient, "lenient", false, "log and count faults instead of halting on them")
	pf.BoolVar(&a.flags.Trace, "trace", false, "enable trace logging")
	pf.DurationVar(&a.flags.Timeout, "timeout", 0, "specify a time limit")
	pf.BoolVar(&a.quiet, "quiet", false, "silence warnings")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if a.quiet {
			a.log.Silence("WARN")
		}
	}

	reduceCmd := &cobra.Command{
		Use:   "reduce FILE",
		Short: "Reduce a net to normal form and print its result",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runReduce,
	}
	reduceCmd.Flags().BoolVar(&a.metrics, "metrics", false, "print reduction metrics afterwards")
	reduceCmd.Flags().BoolVar(&a.dump, "dump", false, "dump the net after reducing it")
	reduceCmd.Flags().StringVar(&a.outPath, "out", "", "write the normal form as a node table to this file")

	root.AddCommand(
		reduceCmd,
		&cobra.Command{
			Use:   "dump FILE",
			Short: "Dump a net's nodes without reducing it",
			Args:  cobra.ExactArgs(1),
			RunE:  a.runDump,
		},
		&cobra.Command{
			Use:   "check FILE",
			Short: "Reduce a net under both LIFO and FIFO orders and compare the results",
			Args:  cobra.ExactArgs(1),
			RunE:  a.runCheck,
		},
	)
	return root
}

// config resolves the config file, if any, under any flags set explicitly.
func (a *app) config(cmd *cobra.Command) (Config, error) {
	cfg := DefaultConfig()
	if a.configPath != "" {
		if err := LoadConfig(a.configPath, &cfg); err != nil {
			return cfg, err
		}
	}
	fl := cmd.Flags()
	if fl.Changed("profile") {
		cfg.Profile = a.flags.Profile
	}
	if fl.Changed("strategy") {
		cfg.Strategy = a.flags.Strategy
	}
	if fl.Changed("mem-limit") {
		cfg.MemLimit = a.flags.MemLimit
	}
	if fl.Changed("page-size") {
		cfg.PageSize = a.flags.PageSize
	}
	if fl.Changed("lenient") {
		cfg.Lenient = a.flags.Lenient
	}
	if fl.Changed("trace") {
		cfg.Trace = a.flags.Trace
	}
	if fl.Changed("timeout") {
		cfg.Timeout = a.flags.Timeout
	}
	return cfg, nil
}

// run is what a command needs once its settings and input are resolved.
type run struct {
	ctx    context.Context
	cancel context.CancelFunc
	cfg    Config
	words  []uint64
	opt    inet.Option
}

// setup resolves config, reads the table named by args[0], and builds
// options for nets that will load it.
func (a *app) setup(cmd *cobra.Command, args []string) (r run, err error) {
	r.cfg, err = a.config(cmd)
	if err != nil {
		return r, err
	}
	r.opt, err = r.cfg.Options(a.log.Leveledf("TRACE"))
	if err != nil {
		return r, err
	}
	r.words, err = readTable(args[0])
	if err != nil {
		return r, err
	}
	if r.cfg.Timeout != 0 {
		r.ctx, r.cancel = context.WithTimeout(cmd.Context(), r.cfg.Timeout)
	} else {
		r.ctx, r.cancel = context.WithCancel(cmd.Context())
	}
	return r, nil
}

func readTable(path string) ([]uint64, error) {
	if path == "-" {
		return nodetable.Read("<stdin>", os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return nodetable.Read(path, f)
}

func writeTable(path string, words []uint64) (rerr error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); rerr == nil {
			rerr = cerr
		}
	}()
	return errors.Wrapf(nodetable.Write(f, words), "writing %v", path)
}

func loadNet(words []uint64, opts ...inet.Option) (*inet.Net, error) {
	net := inet.New(opts...)
	if err := net.Load(words); err != nil {
		return nil, err
	}
	if err := net.SeedRedexes(); err != nil {
		return nil, err
	}
	return net, nil
}

func (a *app) runReduce(cmd *cobra.Command, args []string) error {
	r, err := a.setup(cmd, args)
	if err != nil {
		return err
	}
	defer r.cancel()

	opt := r.opt
	var reg *prometheus.Registry
	if a.metrics {
		reg = prometheus.NewRegistry()
		opt = inet.Options(opt, inet.WithMetrics(inet.NewMetrics(reg)))
	}

	net, err := loadNet(r.words, opt)
	if err != nil {
		return err
	}
	stats, err := net.Reduce(r.ctx)
	if r.cfg.Lenient && stats.Faults > 0 {
		a.log.Printf("WARN", "reduction carried on past %v faults", stats.Faults)
	}

	out := flushio.NewWriteFlusher(a.out)
	defer out.Flush()
	if err == nil {
		form, rerr := net.Readback(inet.PortPointer(inet.RootAddr, inet.Aux1))
		if rerr != nil {
			return rerr
		}
		fmt.Fprintf(out, "result: %v\n", form)
		if a.outPath != "" {
			if err := writeTable(a.outPath, net.Words()); err != nil {
				return err
			}
		}
	}
	fmt.Fprintf(out, "stats: %v\n", stats)
	if a.dump {
		if derr := net.Dump(out); derr != nil && err == nil {
			err = derr
		}
	}
	if reg != nil {
		if merr := writeMetrics(out, reg); merr != nil && err == nil {
			err = merr
		}
	}
	return err
}

func writeMetrics(w io.Writer, reg prometheus.Gatherer) error {
	families, err := reg.Gather()
	if err != nil {
		return errors.Wrap(err, "gathering metrics")
	}
	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(w, family); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) runDump(cmd *cobra.Command, args []string) error {
	r, err := a.setup(cmd, args)
	if err != nil {
		return err
	}
	defer r.cancel()

	net, err := loadNet(r.words, r.opt)
	if err != nil {
		return err
	}
	out := flushio.NewWriteFlusher(a.out)
	if err := net.Dump(out); err != nil {
		return err
	}
	return out.Flush()
}

func (a *app) runCheck(cmd *cobra.Command, args []string) error {
	r, err := a.setup(cmd, args)
	if err != nil {
		return err
	}
	defer r.cancel()

	res, err := checkConfluence(r.ctx, r.words, r.opt)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "LIFO: %v\nFIFO: %v\n", res.LIFO, res.FIFO)
	if !res.Agree() {
		return errors.Errorf("normal forms differ")
	}
	return nil
}
