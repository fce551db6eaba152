package grid

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/colgrid/colgrid/pkg/errors"
)

// DefaultConfigFile is the grid definition file looked up by the CLI.
const DefaultConfigFile = "colgrid.toml"

// fileConfig mirrors the TOML grid definition:
//
//	columns = 12
//
//	[[breakpoints]]
//	name = "sm"
//	min_width = 30.0
type fileConfig struct {
	Columns     int              `toml:"columns"`
	Breakpoints []fileBreakpoint `toml:"breakpoints"`
}

type fileBreakpoint struct {
	Name     string  `toml:"name"`
	MinWidth float64 `toml:"min_width"`
}

// LoadConfig reads a grid configuration from a TOML file. A missing file
// is not an error: it yields [Default]. Omitted fields fall back to the
// defaults (12 columns, sm/md/lg), so a file can override just the column
// count. The result is validated before it is returned.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}

	cfg := Config{Columns: fc.Columns}
	if cfg.Columns == 0 {
		cfg.Columns = DefaultColumns
	}
	for _, bp := range fc.Breakpoints {
		cfg.Breakpoints = append(cfg.Breakpoints, Breakpoint{Name: bp.Name, MinWidth: bp.MinWidth})
	}
	if len(cfg.Breakpoints) == 0 {
		cfg.Breakpoints = DefaultBreakpoints()
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
