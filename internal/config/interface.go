package config

import (
	"context"
	"io/fs"
)

// Loader is the interface for a format-specific catalog loader.
type Loader interface {
	// Load reads catalogs from the given files and directories and translates
	// them into the format-agnostic model.
	Load(ctx context.Context, paths ...string) (*Model, error)

	// LoadFS reads every catalog file under root in fsys, e.g. an embedded
	// catalog compiled into the binary.
	LoadFS(ctx context.Context, fsys fs.FS, root string) (*Model, error)
}
