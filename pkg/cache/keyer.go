package cache

// Artifact kind tokens: the leading segment of every generated key
// and the top-level shard directory in the file cache.
const (
	KindStylesheet = "css"
	KindRules      = "rules"
	KindCascade    = "cascade"
)

// StylesheetKeyOpts captures every rendering option that changes CSS
// output. Any new option must be added here, otherwise two different
// artifacts would share a key.
type StylesheetKeyOpts struct {
	Minified     bool
	RowUtilities bool
	Header       string
}

// CascadeKeyOpts captures the options that change cascade diagram
// output.
type CascadeKeyOpts struct {
	Classes  []string
	Detailed bool
	Format   string
}

// Keyer generates cache keys for rendered artifacts. The configHash
// argument is a hash of the full grid configuration, so two registries
// that differ in any column or breakpoint never share keys.
type Keyer interface {
	// StylesheetKey generates a key for rendered CSS.
	StylesheetKey(configHash string, opts StylesheetKeyOpts) string

	// RulesKey generates a key for the JSON rule dump.
	RulesKey(configHash string) string

	// CascadeKey generates a key for a cascade diagram.
	CascadeKey(configHash string, opts CascadeKeyOpts) string
}

// DefaultKeyer is the standard key generation strategy.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// StylesheetKey generates a key for rendered CSS.
func (k *DefaultKeyer) StylesheetKey(configHash string, opts StylesheetKeyOpts) string {
	return hashKey(KindStylesheet, configHash, opts.Minified, opts.RowUtilities, opts.Header)
}

// RulesKey generates a key for the JSON rule dump.
func (k *DefaultKeyer) RulesKey(configHash string) string {
	return hashKey(KindRules, configHash)
}

// CascadeKey generates a key for a cascade diagram.
func (k *DefaultKeyer) CascadeKey(configHash string, opts CascadeKeyOpts) string {
	return hashKey(KindCascade, configHash, opts.Classes, opts.Detailed, opts.Format)
}
