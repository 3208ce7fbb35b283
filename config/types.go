package config

// DesiredConnection is one commute the user wants connections for.
type DesiredConnection struct {
	// Start is the name of the start station.
	Start string `yaml:"start" validate:"required"`
	// Destination is the name of the destination station.
	Destination string `yaml:"destination" validate:"required"`
	// WalkToStart is how much time to account for to walk to the
	// start station.
	WalkToStart Duration `yaml:"walk_to_start" validate:"required"`
	// IgnoreStartingWith lists line labels (e.g. S2, 12, 947) whose
	// connections should be ignored when they form the first leg.
	IgnoreStartingWith []string `yaml:"ignore_starting_with"`
}

// Equal reports whether both desired connections match in every field,
// including the order of the ignore list. Used to detect configuration
// drift against the cache.
func (d DesiredConnection) Equal(other DesiredConnection) bool {
	if d.Start != other.Start || d.Destination != other.Destination || d.WalkToStart != other.WalkToStart {
		return false
	}
	if len(d.IgnoreStartingWith) != len(other.IgnoreStartingWith) {
		return false
	}
	for i, label := range d.IgnoreStartingWith {
		if other.IgnoreStartingWith[i] != label {
			return false
		}
	}
	return true
}

// Config is the root of the configuration file.
type Config struct {
	Connections []DesiredConnection `yaml:"connections" validate:"required,min=1"`
}
