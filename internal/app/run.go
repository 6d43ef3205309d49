package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/psetforge/internal/ctxlog"
	"github.com/specialistvlad/psetforge/internal/pset"
	"github.com/specialistvlad/psetforge/internal/render"
)

// ErrNoBase is returned when a diff is requested for a record that was not
// derived from another one.
var ErrNoBase = errors.New("record has no base")

// Run writes the requested records, or every record in registration order
// when none are requested.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	names := a.config.Records
	if len(names) == 0 {
		names = a.registry.Names()
	}
	if len(names) == 0 {
		a.logger.Warn("No records registered, nothing to render.")
		return nil
	}

	enc, err := render.New(a.config.Format)
	if err != nil {
		return err
	}

	for i, name := range names {
		if a.config.Diff {
			err = a.writeDiff(ctx, i, name)
		} else {
			err = a.writeRecord(i, name, enc)
		}
		if err != nil {
			return err
		}
	}

	a.logger.Debug("App.Run method finished.", "records", len(names))
	return nil
}

func (a *App) writeRecord(i int, name string, enc render.Encoder) error {
	rec, err := a.registry.Lookup(name)
	if err != nil {
		return err
	}
	if i > 0 && a.config.Format != render.FormatJSON {
		separator := "\n"
		if a.config.Format == render.FormatYAML {
			separator = "---\n"
		}
		if _, err := fmt.Fprint(a.outW, separator); err != nil {
			return err
		}
	}
	return enc.Encode(a.outW, name, rec)
}

func (a *App) writeDiff(ctx context.Context, i int, name string) error {
	rec, err := a.registry.Lookup(name)
	if err != nil {
		return err
	}
	baseName, ok := a.registry.BaseOf(name)
	if !ok {
		return fmt.Errorf("diff %q: %w", name, ErrNoBase)
	}
	base, err := a.registry.Lookup(baseName)
	if err != nil {
		return err
	}

	changes, err := pset.Diff(base, rec)
	if err != nil {
		return fmt.Errorf("diff %q: %w", name, err)
	}
	ctxlog.FromContext(ctx).Debug("Computed diff.", "name", name, "base", baseName, "changes", len(changes))

	header := fmt.Sprintf("# %s (from %s)\n", name, baseName)
	if i > 0 {
		header = "\n" + header
	}
	if _, err := fmt.Fprint(a.outW, header); err != nil {
		return err
	}
	return render.WriteDiff(a.outW, changes)
}
