package app

import (
	"github.com/specialistvlad/psetforge/internal/btag"
	"github.com/specialistvlad/psetforge/internal/registry"
)

// coreModules is the definitive list of all modules that are compiled into
// the psetforge binary.
var coreModules = []registry.Module{
	&btag.Module{},
}
