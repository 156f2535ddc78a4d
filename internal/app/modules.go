package app

import (
	"github.com/specialistvlad/aarpublish/internal/plugin/aarpublish"
	"github.com/specialistvlad/aarpublish/internal/plugin/android"
	"github.com/specialistvlad/aarpublish/internal/plugin/mavenpublish"
	"github.com/specialistvlad/aarpublish/internal/registry"
)

// coreModules is the definitive list of all plugins that are compiled into
// the aarpublish binary.
var coreModules = []registry.Module{
	android.Module{},
	aarpublish.Module{},
	mavenpublish.Module{},
}
