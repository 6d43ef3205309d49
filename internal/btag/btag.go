package btag

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/specialistvlad/psetforge/internal/config"
	"github.com/specialistvlad/psetforge/internal/ctxlog"
	"github.com/specialistvlad/psetforge/internal/hcl"
	"github.com/specialistvlad/psetforge/internal/pset"
	"github.com/specialistvlad/psetforge/internal/registry"
)

const (
	// FilteredTagInfos is the base of the negative tag infos.
	FilteredTagInfos = "inclusiveSecondaryVertexFinderFilteredTagInfos"
	// FilteredNegativeTagInfos is the sign-flipped control sample.
	FilteredNegativeTagInfos = "inclusiveSecondaryVertexFinderFilteredNegativeTagInfos"

	// CatalogRoot is the directory of the catalog within Catalog().
	CatalogRoot = "catalog"
)

//go:embed catalog/*.hcl
var catalog embed.FS

// Catalog returns the compiled-in HCL catalog.
func Catalog() fs.FS {
	return catalog
}

// NegativeTagOverrides returns the overrides that turn the filtered tag
// infos into their negative counterpart. The fields are disjoint, so the
// order does not matter.
func NegativeTagOverrides() []pset.Override {
	return []pset.Override{
		pset.Declare("extSVDeltaRToJet", pset.Double(-0.4)),
		pset.Assign("vertexCuts.distVal2dMin", -2.5),
		pset.Assign("vertexCuts.distVal2dMax", -0.01),
		pset.Assign("vertexCuts.distSig2dMin", -99999.9),
		pset.Assign("vertexCuts.distSig2dMax", -2.0),
		pset.Assign("vertexCuts.maxDeltaRToJetAxis", -0.5),
	}
}

// NegativeTagInfos clones base and applies NegativeTagOverrides to the copy.
// base itself is never modified.
func NegativeTagInfos(base *pset.Record) (*pset.Record, error) {
	neg := base.Clone()
	if err := neg.Apply(NegativeTagOverrides()...); err != nil {
		return nil, fmt.Errorf("build negative tag infos: %w", err)
	}
	return neg, nil
}

// Module registers the catalog records and the negative tag infos.
type Module struct {
	// Loader reads the embedded catalog. The HCL loader is used when nil.
	Loader config.Loader
}

var _ registry.Module = (*Module)(nil)

// Register implements registry.Module.
func (m *Module) Register(ctx context.Context, reg *registry.Registry) error {
	logger := ctxlog.FromContext(ctx)

	loader := m.Loader
	if loader == nil {
		loader = hcl.NewLoader()
	}

	model, err := loader.LoadFS(ctx, catalog, CatalogRoot)
	if err != nil {
		return fmt.Errorf("failed to load b-tag catalog: %w", err)
	}
	if err := reg.PopulateFromModel(ctx, model); err != nil {
		return fmt.Errorf("failed to register b-tag catalog: %w", err)
	}

	if _, err := reg.Derive(FilteredNegativeTagInfos, FilteredTagInfos, NegativeTagOverrides()...); err != nil {
		return err
	}
	logger.Debug("Registered negative tag infos.", "name", FilteredNegativeTagInfos, "from", FilteredTagInfos)
	return nil
}
