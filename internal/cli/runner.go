package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"VanityGen/internal/logsink"
	"VanityGen/internal/search"
	"VanityGen/internal/stream"
	"VanityGen/pkg/appcfg"
	"VanityGen/pkg/config"
	"VanityGen/pkg/logx"
)

// ErrConfig wraps every error caused by the search configuration.
var ErrConfig = errors.New("configuration error")

type observer interface {
	search.Observer
	Close() error
}

type Runner struct {
	App    *appcfg.Config
	Stdout io.Writer

	// AppPath is read when --app-config is not given. A missing file there
	// keeps App and is only reported.
	AppPath string
	// OnApp runs once the application config is settled, before the search.
	OnApp func(app *appcfg.Config) error

	appPath  string
	specPath string
	flags    config.SearchSpec
	output   string
	events   string
	batch    int
}

func NewRunner(app *appcfg.Config) *Runner {
	if app == nil {
		app = appcfg.Defaults()
	}
	return &Runner{App: app, Stdout: os.Stdout}
}

// Command builds the root command. Flags override values from --config.
func (r *Runner) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vanitygen",
		Short: "Parallel EVM vanity address search",
		Long: `Generates random key pairs on every core until the checksummed
address matches the requested prefix, suffix and/or substring.
Matches are appended to a plaintext log; keep it safe.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return r.loadApp(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.run(cmd)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&r.flags.Prefix, "prefix", "p", "", "Address prefix (hex, 0x optional)")
	f.StringVarP(&r.flags.Suffix, "suffix", "s", "", "Address suffix (hex)")
	f.StringVarP(&r.flags.Contains, "contains", "c", "", "Substring anywhere in the address (hex)")
	f.BoolVar(&r.flags.CaseSensitive, "case-sensitive", false, "Match the EIP-55 letter case exactly")
	f.IntVarP(&r.flags.TargetCount, "count", "n", 1, "Number of wallets to find")
	f.IntVarP(&r.flags.Workers, "workers", "w", 0, "Worker goroutines (default: cores from app config, else all CPUs)")
	f.StringVar((*string)(&r.flags.Source), "source", string(config.SourcePrivKey), "Key source: private | mnemonic")
	f.IntVar(&r.flags.Mnemonic.Strength, "words", 128, "Mnemonic entropy bits (128 = 12 words, 256 = 24 words)")
	f.StringVar(&r.flags.Mnemonic.Passphrase, "passphrase", "", "BIP-39 passphrase for the mnemonic source")
	f.IntVar(&r.flags.Mnemonic.Account, "account", 0, "Account index in m/44'/60'/0'/0/<account>")
	f.StringVar(&r.specPath, "config", "", "Search YAML file (e.g. configs/search.yaml)")
	f.StringVar(&r.appPath, "app-config", "", "Application YAML file (default configs/app.yaml)")
	f.StringVarP(&r.output, "output", "o", "", "Append-only result log (default from app config)")
	f.StringVar(&r.events, "events", "", "Event stream format: text | json")
	f.IntVar(&r.batch, "batch-size", 0, "Attempts per shared counter flush")
	return cmd
}

// loadApp resolves the application config: --app-config must load, AppPath
// may be missing.
func (r *Runner) loadApp(cmd *cobra.Command) error {
	switch {
	case cmd.Flags().Changed("app-config"):
		app, err := appcfg.Load(r.appPath)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrConfig, err)
		}
		r.App = app
	case r.AppPath != "":
		app, err := appcfg.Load(r.AppPath)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "load app config: %v (using defaults)\n", err)
			break
		}
		r.App = app
	}

	if r.OnApp != nil {
		return r.OnApp(r.App)
	}
	return nil
}

// Spec merges defaults, the YAML file and the flags that were set explicitly.
// App.Cores is the worker count whenever neither source sets one.
func (r *Runner) Spec(cmd *cobra.Command) (config.SearchSpec, error) {
	cores := r.App.Cores
	spec := config.Default()
	if cores > 0 {
		spec.Workers = cores
	}
	if r.specPath != "" {
		loaded, err := config.Load(r.specPath, cores)
		if err != nil {
			return spec, fmt.Errorf("%w: %w", ErrConfig, err)
		}
		spec = loaded
	}

	f := cmd.Flags()
	set := func(name string, apply func()) {
		if f.Changed(name) {
			apply()
		}
	}
	set("prefix", func() { spec.Prefix = r.flags.Prefix })
	set("suffix", func() { spec.Suffix = r.flags.Suffix })
	set("contains", func() { spec.Contains = r.flags.Contains })
	set("case-sensitive", func() { spec.CaseSensitive = r.flags.CaseSensitive })
	set("count", func() { spec.TargetCount = r.flags.TargetCount })
	set("workers", func() { spec.Workers = r.flags.Workers })
	set("source", func() { spec.Source = r.flags.Source })
	set("words", func() { spec.Mnemonic.Strength = r.flags.Mnemonic.Strength })
	set("passphrase", func() { spec.Mnemonic.Passphrase = r.flags.Mnemonic.Passphrase })
	set("account", func() { spec.Mnemonic.Account = r.flags.Mnemonic.Account })

	spec.Normalize(cores)
	if err := spec.Validate(); err != nil {
		return spec, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return spec, nil
}

func (r *Runner) run(cmd *cobra.Command) error {
	spec, err := r.Spec(cmd)
	if err != nil {
		return err
	}

	output := r.App.Output
	if r.output != "" {
		output = r.output
	}
	events := r.App.Events
	if r.events != "" {
		events = r.events
	}
	batch := r.App.BatchSize
	if r.batch > 0 {
		batch = r.batch
	}

	sink, err := logsink.New(output, spec, time.Now())
	if err != nil {
		return fmt.Errorf("result log: %w", err)
	}
	obs, err := r.observer(events, output)
	if err != nil {
		return err
	}
	defer obs.Close()

	coord, err := search.New(search.Options{
		Spec:      spec,
		Sink:      sink,
		Observer:  obs,
		BatchSize: batch,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}

	ctx, stop := withInterrupt(cmd.Context())
	defer stop()

	logx.S().Infow("start generation", "output", output, "events", events, "batch_size", batch)
	sum, err := coord.Run(ctx)
	if err != nil {
		return err
	}
	if sum.Cancelled {
		logx.S().Warnw("generation interrupted", "found", sum.Found, "target", sum.Target)
	}
	return nil
}

func (r *Runner) observer(events, output string) (observer, error) {
	showSecrets := !r.App.HideSecretsInConsole
	switch events {
	case "json":
		return stream.NewJSON(r.Stdout, showSecrets), nil
	case "text", "":
		return stream.NewText(r.Stdout, stream.TextOptions{
			Language:    r.App.Language,
			ShowSecrets: showSecrets,
			OutputPath:  output,
			Terminal:    stream.IsTerminal(r.Stdout),
		}), nil
	default:
		return nil, fmt.Errorf("%w: events must be text or json, got %q", ErrConfig, events)
	}
}

func withInterrupt(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}
