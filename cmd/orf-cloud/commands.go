package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/lixenwraith/orf-cloud/app"
	"github.com/lixenwraith/orf-cloud/config"
	"github.com/lixenwraith/orf-cloud/parameter"
)

// flagValues holds raw flag input; only flags the operator set override the config
type flagValues struct {
	configPath  string
	genome      string
	minORF      uint64
	batch       int
	capacity    int
	noEvict     bool
	front       bool
	timerMode   string
	debug       bool
	metricsAddr string
	audio       bool
}

func newRootCmd() *cobra.Command {
	fv := &flagValues{}

	root := &cobra.Command{
		Use:   "orf-cloud",
		Short: "Stream a genome's open reading frames through a terminal 3D scene",
		Long: `orf-cloud scans a chromosome for open reading frames and streams them
into a terminal scene as short-lived objects, in batches, under a live-object cap.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := fv.resolve(cmd)
			if err != nil {
				return err
			}
			return runInteractive(cmd.Context(), cfg)
		},
	}

	fv.bind(root.PersistentFlags())
	root.AddCommand(newScanCmd(fv), newHeadlessCmd(fv))
	return root
}

func (fv *flagValues) bind(fs *pflag.FlagSet) {
	fs.StringVarP(&fv.configPath, "config", "c", "", "TOML settings file")
	fs.StringVarP(&fv.genome, "genome", "g", "bundled", "genome: bundled or a FASTA path (plain or gzip)")
	fs.Uint64Var(&fv.minORF, "min-orf", parameter.DefaultMinFeatureLength, "minimum ORF length in bases")
	fs.IntVarP(&fv.batch, "batch", "b", parameter.DefaultBatchSize, "ORFs spawned per step")
	fs.IntVar(&fv.capacity, "capacity", parameter.DefaultCapacityCap, "maximum live objects")
	fs.BoolVar(&fv.noEvict, "no-evict", false, "disable oldest-first eviction")
	fs.BoolVar(&fv.front, "front", false, "drain lowest start positions first")
	fs.StringVar(&fv.timerMode, "timer", "once", "spawn timer mode: once or repeating")
	fs.BoolVar(&fv.debug, "debug", false, "write a log file")
	fs.StringVar(&fv.metricsAddr, "metrics-addr", "", "serve prometheus metrics on this address")
	fs.BoolVar(&fv.audio, "audio", false, "enable sound cues")
}

func newScanCmd(fv *flagValues) *cobra.Command {
	var list int
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Load the genome and print its ORF catalog summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := fv.resolve(cmd)
			if err != nil {
				return err
			}
			setupConsoleLogging(cfg.Log, cmd.ErrOrStderr())

			began := time.Now()
			res, err := app.Scan(cfg, nil)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "sequence  %s\n", res.GenomeID)
			fmt.Fprintf(out, "length    %d\n", res.Length)
			fmt.Fprintf(out, "orfs      %d (min length %d)\n", res.Catalog.Len(), cfg.MinFeatureLength)
			if res.Catalog.Len() > 0 {
				fmt.Fprintf(out, "range     %d..%d\n", res.Catalog.MinLength(), res.Catalog.MaxLength())
			}
			fmt.Fprintf(out, "elapsed   %s\n", time.Since(began).Round(time.Millisecond))

			features := res.Catalog.Features()
			for i := 0; i < list && i < len(features); i++ {
				f := features[i]
				fmt.Fprintf(out, "%d\t%d\t%d\n", f.Start, f.End, f.Length())
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&list, "list", 0, "print the first N features")
	return cmd
}

func newHeadlessCmd(fv *flagValues) *cobra.Command {
	var (
		frames int
		dt     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "headless",
		Short: "Run the streaming pipeline without a terminal and print final counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := fv.resolve(cmd)
			if err != nil {
				return err
			}
			if frames <= 0 {
				return fmt.Errorf("frames must be positive, got %d", frames)
			}
			setupConsoleLogging(cfg.Log, cmd.ErrOrStderr())

			st, err := app.RunHeadless(cfg, app.RunDeps{}, frames, dt)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(),
				"frames %d fires %d spawned %d culled %d evicted %d live %d queue %d exhausted %v\n",
				frames, st.Fires, st.Spawned, st.Culled, st.Evicted, st.Live, st.Queue, st.Exhausted)
			return nil
		},
	}
	cmd.Flags().IntVar(&frames, "frames", 600, "frames to simulate")
	cmd.Flags().DurationVar(&dt, "dt", parameter.FrameUpdateInterval, "simulated frame delta")
	return cmd
}

// resolve layers defaults, the config file, environment, then explicit flags
func (fv *flagValues) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(fv.configPath)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("genome") {
		if err := cfg.SetGenome(fv.genome); err != nil {
			return config.Config{}, err
		}
	}
	if flags.Changed("min-orf") {
		cfg.MinFeatureLength = fv.minORF
	}
	if flags.Changed("batch") {
		cfg.BatchSize = fv.batch
	}
	if flags.Changed("capacity") {
		cfg.CapacityCap = fv.capacity
	}
	if flags.Changed("no-evict") {
		cfg.EvictionEnabled = !fv.noEvict
	}
	if flags.Changed("front") {
		cfg.DrainFromFront = fv.front
	}
	if flags.Changed("timer") {
		mode, err := config.ParseTimerMode(fv.timerMode)
		if err != nil {
			return config.Config{}, err
		}
		cfg.TimerMode = mode
	}
	if flags.Changed("debug") {
		cfg.Log.Debug = fv.debug
	}
	if flags.Changed("metrics-addr") {
		cfg.Metrics.Addr = fv.metricsAddr
	}
	if flags.Changed("audio") {
		cfg.Audio.Enabled = fv.audio
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
