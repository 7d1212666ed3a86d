package cmd

import (
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rrspmax/bracketgen/internal/config"
	"github.com/rrspmax/bracketgen/internal/document"
	"github.com/rrspmax/bracketgen/internal/render"
	"github.com/rrspmax/bracketgen/internal/taxrate"
	"github.com/rrspmax/bracketgen/internal/telemetry"
	"github.com/rrspmax/bracketgen/internal/ui"
)

// addGenerateFlags registers CLI flags for the default generate run.
func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("js", false, "print a JavaScript literal to stdout instead of writing a file")
	cmd.Flags().String("output-dir", "", "directory for the JSON file (default: current directory)")
	cmd.Flags().Bool("watch", false, "re-generate whenever the rates file changes")
	cmd.Flags().String("telemetry", "", "append JSONL run events to this file")
}

// runGenerate implements the default `bracketgen` run: assemble the document
// from the active dataset and write the JSON file (or print the JS literal).
func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	applyFlags(cmd, &cfg)
	printer := ui.New(cfg.Verbose)

	js, _ := cmd.Flags().GetBool("js")
	watch, _ := cmd.Flags().GetBool("watch")
	if js && watch {
		return errors.New("--js and --watch are mutually exclusive")
	}
	if watch && cfg.RatesFile == "" {
		return errors.New("--watch requires --rates-file")
	}

	var emitter *telemetry.Emitter
	if cfg.TelemetryPath != "" {
		var err error
		emitter, err = telemetry.NewEmitter(cfg.TelemetryPath)
		if err != nil {
			printer.Error(err.Error())
			return err
		}
		defer emitter.Close()
	}

	ds, err := openDataset(cfg.RatesFile)
	if err != nil {
		printer.Error(err.Error())
		printer.Info("provide a readable TOML rates file via --rates-file, or omit it to use the built-in tables")
		return err
	}

	if err := generateOnce(ds, cfg, printer, emitter, js); err != nil {
		return err
	}

	if watch {
		return watchLoop(cmd, cfg, printer, emitter)
	}
	return nil
}

// applyFlags overlays explicitly-set CLI flags onto the viper-loaded config.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		cfg.Verbose = true
	}
	if dir, _ := cmd.Flags().GetString("output-dir"); dir != "" {
		cfg.OutputDir = dir
	}
	if rf, _ := cmd.Flags().GetString("rates-file"); rf != "" {
		cfg.RatesFile = rf
	}
	if tp, _ := cmd.Flags().GetString("telemetry"); tp != "" {
		cfg.TelemetryPath = tp
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
}

// openDataset resolves the active dataset: a user-supplied rates file when
// configured, otherwise the built-in tables. A rates file that cannot be
// read or parsed means the rate provider is unavailable, which is fatal
// before any fetching starts.
func openDataset(ratesFile string) (taxrate.Dataset, error) {
	if ratesFile == "" {
		return taxrate.Rates2025(), nil
	}
	return taxrate.LoadFile(ratesFile)
}

// generateOnce runs one assemble-and-serialize pass.
func generateOnce(ds taxrate.Dataset, cfg config.Config, printer *ui.Printer, emitter *telemetry.Emitter, js bool) error {
	printer.Banner(ds.Year())

	obs := &runObserver{printer: printer, emitter: emitter}
	doc, skipped, err := document.Build(ds, obs)
	if err != nil {
		printer.Error(fmt.Sprintf("cannot build document: %v", err))
		return err
	}

	if js {
		fmt.Print(render.JS(doc))
		return nil
	}

	path, err := render.WriteJSON(doc, cfg.OutputDir)
	if err != nil {
		printer.Error(err.Error())
		return err
	}
	_ = emitter.Emit(telemetry.Event{
		Timestamp: time.Now(),
		Kind:      telemetry.KindDocumentWritten,
		Data: map[string]any{
			"path":      path,
			"year":      doc.Year,
			"provinces": len(doc.Provincial),
		},
	})
	printer.Summary(doc.Year, len(doc.Federal), len(doc.Provincial), skipped, path)
	return nil
}

// watchLoop re-generates whenever the rates file changes, until interrupted.
// Generation errors inside the loop are reported but do not end the watch;
// the next save gets another chance.
func watchLoop(cmd *cobra.Command, cfg config.Config, printer *ui.Printer, emitter *telemetry.Emitter) error {
	watcher, err := taxrate.NewWatcher(cfg.RatesFile)
	if err != nil {
		return fmt.Errorf("watching %s: %w", cfg.RatesFile, err)
	}
	if err := watcher.Start(); err != nil {
		return fmt.Errorf("watching %s: %w", cfg.RatesFile, err)
	}
	defer watcher.Stop()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	printer.Info(fmt.Sprintf("watching %s (ctrl-c to stop)", cfg.RatesFile))
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-watcher.Changes:
			if !ok {
				return nil
			}
			ds, err := taxrate.LoadFile(cfg.RatesFile)
			if err != nil {
				printer.Error(err.Error())
				continue
			}
			if err := generateOnce(ds, cfg, printer, emitter, false); err != nil {
				printer.Error(fmt.Sprintf("re-generation failed: %v", err))
			}
		}
	}
}

// runObserver bridges document assembly progress to the printer and the
// telemetry stream.
type runObserver struct {
	printer *ui.Printer
	emitter *telemetry.Emitter
}

func (o *runObserver) FetchStart(code string) {
	name, _ := taxrate.Name(code)
	o.printer.Fetching(code, name)
	_ = o.emitter.Emit(telemetry.Event{
		Timestamp:    time.Now(),
		Kind:         telemetry.KindFetchStart,
		Jurisdiction: code,
	})
}

func (o *runObserver) FetchDone(code string, bands int) {
	o.printer.Fetched(code, bands)
	_ = o.emitter.Emit(telemetry.Event{
		Timestamp:    time.Now(),
		Kind:         telemetry.KindFetchDone,
		Jurisdiction: code,
		Data:         map[string]int{"bands": bands},
	})
}

func (o *runObserver) FetchFailed(code string, err error) {
	// Federal failures surface as the fatal build error; don't double-print.
	if code != taxrate.FederalCode {
		o.printer.Skipped(code, err)
	}
	_ = o.emitter.Emit(telemetry.Event{
		Timestamp:    time.Now(),
		Kind:         telemetry.KindFetchFailed,
		Jurisdiction: code,
		Data:         map[string]string{"error": err.Error()},
	})
}
