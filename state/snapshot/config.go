package snapshot

// Config holds the configuration of the snapshot pipeline.
type Config struct {
	// SavedStateDirectory is the base directory under which all saved states
	// live, both the regular rotation and out-of-band dumps.
	SavedStateDirectory string

	// SavedStateCount is the number of recent saved states kept on disk in
	// the regular rotation; older states are deleted by the retention pass.
	SavedStateCount int
}

func DefaultConfig() Config {
	return Config{
		SavedStateDirectory: "data/saved",
		SavedStateCount:     3,
	}
}
