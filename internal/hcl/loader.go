package hcl

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/psetforge/internal/config"
	"github.com/specialistvlad/psetforge/internal/ctxlog"
	"github.com/specialistvlad/psetforge/internal/fsutil"
)

const fileExtension = ".hcl"

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL catalog loader.
func NewLoader() *Loader {
	return &Loader{}
}

var _ config.Loader = (*Loader)(nil)

// Load parses every .hcl file found in paths. Directories are walked
// recursively and files are processed in lexical order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.FindFiles(paths, fileExtension)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	model := config.NewModel()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}
		fileModel, err := l.decodeFile(ctx, file, hclFile.Body)
		if err != nil {
			return nil, err
		}
		model.Merge(fileModel)
	}

	logger.Debug("HCL loading complete.", "entries", model.Len(), "records", len(model.Records), "derivations", len(model.Derivations))
	return model, nil
}

// LoadFS parses every .hcl file under root in fsys.
func (l *Loader) LoadFS(ctx context.Context, fsys fs.FS, root string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started on file system.", "root", root)

	files, err := fsutil.FindFilesFS(fsys, root, fileExtension)
	if err != nil {
		return nil, fmt.Errorf("error walking %s: %w", root, err)
	}

	parser := hclparse.NewParser()
	model := config.NewModel()

	for _, file := range files {
		src, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("error reading %s: %w", file, err)
		}
		hclFile, diags := parser.ParseHCL(src, file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}
		fileModel, err := l.decodeFile(ctx, file, hclFile.Body)
		if err != nil {
			return nil, err
		}
		model.Merge(fileModel)
	}

	logger.Debug("HCL loading complete.", "entries", model.Len(), "records", len(model.Records), "derivations", len(model.Derivations))
	return model, nil
}

// decodeFile translates the top-level blocks of one file into a model.
func (l *Loader) decodeFile(ctx context.Context, file string, body hcl.Body) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	content, diags := body.Content(rootSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
	}

	model := config.NewModel()
	for _, block := range content.Blocks {
		switch block.Type {
		case "record":
			decl, diags := decodeRecord(block)
			if diags.HasErrors() {
				return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
			}
			logger.Debug("Decoded record.", "name", decl.Name, "type", decl.Record.Type(), "parameters", decl.Record.Len())
			model.Records = append(model.Records, decl)

		case "derive":
			d, diags := decodeDerivation(block)
			if diags.HasErrors() {
				return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
			}
			logger.Debug("Decoded derivation.", "name", d.Name, "from", d.Base, "overrides", len(d.Overrides))
			model.Derivations = append(model.Derivations, d)
		}
	}
	return model, nil
}
