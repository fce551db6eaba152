// Package preset provides named, persisted grid configurations.
//
// A preset captures a full grid configuration (columns plus breakpoint
// table) under a human-readable name, so a team can share one layout
// vocabulary across projects. Two storage backends are provided:
//   - memory: in-process storage for development and testing
//   - mongo: document storage for server deployments
//
// # Usage
//
// Create and store a preset:
//
//	p, err := preset.New("docs-site", grid.Default())
//	if err != nil {
//	    return err
//	}
//	store.Put(ctx, p)
//
// Retrieve by name and build a registry from it:
//
//	p, err := store.GetByName(ctx, "docs-site")
//	reg, err := grid.NewRegistry(p.Config())
package preset

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/colgrid/colgrid/pkg/errors"
	"github.com/colgrid/colgrid/pkg/grid"
)

// Breakpoint mirrors [grid.Breakpoint] with storage tags.
type Breakpoint struct {
	Name     string  `json:"name" bson:"name"`
	MinWidth float64 `json:"min_width" bson:"min_width"`
}

// Preset is a named, persisted grid configuration.
type Preset struct {
	ID          string       `json:"id" bson:"_id"`
	Name        string       `json:"name" bson:"name"`
	Columns     int          `json:"columns" bson:"columns"`
	Breakpoints []Breakpoint `json:"breakpoints" bson:"breakpoints"`
	CreatedAt   time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at" bson:"updated_at"`
}

// New creates a preset from a configuration. The configuration is
// validated up front: a preset that cannot build a registry must never
// reach storage.
func New(name string, cfg grid.Config) (*Preset, error) {
	if err := errors.ValidatePresetName(name); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	bps := make([]Breakpoint, len(cfg.Breakpoints))
	for i, bp := range cfg.Breakpoints {
		bps[i] = Breakpoint{Name: bp.Name, MinWidth: bp.MinWidth}
	}

	now := time.Now().UTC()
	return &Preset{
		ID:          uuid.NewString(),
		Name:        name,
		Columns:     cfg.Columns,
		Breakpoints: bps,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Config reconstructs the grid configuration the preset stores.
func (p *Preset) Config() grid.Config {
	bps := make([]grid.Breakpoint, len(p.Breakpoints))
	for i, bp := range p.Breakpoints {
		bps[i] = grid.Breakpoint{Name: bp.Name, MinWidth: bp.MinWidth}
	}
	return grid.Config{Columns: p.Columns, Breakpoints: bps}
}

// Store is the interface for preset storage backends. Names are unique:
// Put with an existing name replaces that preset.
type Store interface {
	// Put stores a preset, replacing any preset with the same ID.
	Put(ctx context.Context, p *Preset) error

	// Get retrieves a preset by ID.
	Get(ctx context.Context, id string) (*Preset, error)

	// GetByName retrieves a preset by its unique name.
	GetByName(ctx context.Context, name string) (*Preset, error)

	// List returns all presets sorted by name.
	List(ctx context.Context) ([]*Preset, error)

	// Delete removes a preset by ID.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}

// notFound builds the standard missing-preset error.
func notFound(key string) error {
	return errors.New(errors.ErrCodePresetNotFound, "preset %q not found", key)
}
