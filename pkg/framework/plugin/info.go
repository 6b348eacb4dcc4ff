// Package plugin holds the metadata a host reads when it instantiates a
// plugin.
package plugin

// Category strings hosts recognize.
const (
	CategoryInstrument = "Instrument|Synth"
	CategoryFx         = "Fx"
)

// Info contains plugin metadata
type Info struct {
	ID       string // Reverse-DNS identifier (e.g. "com.example.myplugin")
	UniqueID int32  // Numeric ID hosts use to tell plugins apart
	Name     string // Display name
	Version  string // Semantic version (e.g. "1.0.0")
	Vendor   string // Company/developer name
	Category string // Plugin category
	Inputs   int32  // Audio input channel count
	Outputs  int32  // Audio output channel count
}

// IsGenerator reports whether the plugin produces audio without consuming
// any.
func (i Info) IsGenerator() bool {
	return i.Inputs == 0 && i.Outputs > 0
}
