package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/sirspot/resume/internal/cliconfig"
	"github.com/sirspot/resume/internal/seed"
	"github.com/sirspot/resume/internal/watch"
	"github.com/sirspot/resume/pkg/log"
	"github.com/sirspot/resume/pkg/resume"
)

const helpDescription = `
Print the résumé as plain text or single-file HTML.

The compiled-in sections are filled first, then every section defined in the
embedded JSON configuration and, when given, an external data file. Sections
marked random are shuffled on each run unless a seed is set.

Configure via file ($HOME/.resume/config.toml or .yaml), RESUME_* environment
variables, or flags.
`

var exampleUsage = strings.TrimSpace(`
  resume -f html -o resume.html
  resume -e 2 -H Interests -H Projects
  resume --data extra.json --watch -o resume.txt
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	zl := cliconfig.Logger()

	root := &cobra.Command{
		Use:           "resume",
		Short:         "Print " + seed.Owner.Name + "'s résumé",
		Long:          seed.Banner() + "\n\n" + strings.TrimSpace(helpDescription),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s (%s %s/%s)", seed.Banner(), getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				cliconfig.ApplyFileConfig(&cfg, fc, changed)
			}

			// RESUME_* override file config but are overridden by flags
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := cliconfig.SetLogLevel(cfg.LogLevel); err != nil {
				return err
			}
			zl.Debug().Interface("config", cfg).Msg("configuration")

			logger := log.NewZerologAdapterWithLogger(zl)
			a, err := newApp(cfg, logger, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			if cfg.Watch {
				return runWatch(a)
			}

			blobs, err := cfg.LoadData(logger)
			if err != nil {
				return &initError{err: err}
			}
			return a.write(blobs)
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.resume/config.toml)")
	root.Flags().StringVarP(&cfg.Format, "format", "f", cfg.Format, "output format: text or html")
	root.Flags().IntVarP(&cfg.ExtendedCount, "extend", "e", cfg.ExtendedCount, fmt.Sprintf("show up to this many additional entries per section (1-%d)", resume.MaxExtended))
	root.Flags().BoolVarP(&cfg.ShowAll, "all", "a", cfg.ShowAll, "display all entries (overrides --extend)")
	root.Flags().StringArrayVarP(&cfg.Hide, "hide", "H", cfg.Hide, "hide the section with this title (repeatable)")
	root.Flags().StringVar(&cfg.DataFile, "data", cfg.DataFile, "JSON file with additional sections")
	root.Flags().BoolVar(&cfg.NoEmbedded, "no-embedded", cfg.NoEmbedded, "skip the embedded JSON sections")
	root.Flags().Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed for random section order (0 picks a fresh seed)")
	root.Flags().IntVar(&cfg.MaxDepth, "max-depth", cfg.MaxDepth, "maximum JSON nesting depth")
	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "re-render whenever the data file changes")
	root.Flags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "write to this file instead of stdout")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	if err := root.Flags().MarkHidden("max-depth"); err != nil {
		zl.Info().Err(err).Msg("failed to hide max-depth flag")
	}

	if err := root.Execute(); err != nil {
		zl.Error().Err(err).Msg("resume")
		os.Exit(exitCode(err))
	}
}

// runWatch renders once per distinct data file content until interrupted.
// Render failures are logged and the previous output is kept.
func runWatch(a *app) error {
	base := a.cfg
	base.DataFile = ""
	embedded, err := base.LoadData(a.logger)
	if err != nil {
		return &initError{err: err}
	}

	w := watch.New(a.cfg.DataFile, watch.DefaultConfig(), func(data []byte) {
		blobs := append(append([]cliconfig.Blob(nil), embedded...), cliconfig.Blob{Source: a.cfg.DataFile, Data: data})
		if err := a.write(blobs); err != nil {
			a.logger.Error("render failed", log.Err(err))
		}
	}, watch.WithLogger(a.logger))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	if err := w.Start(ctx); err != nil {
		return &initError{err: err}
	}

	<-sigCh
	a.logger.Info("received signal, stopping...")
	w.Stop()
	return nil
}
