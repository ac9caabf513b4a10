package metrics

const (
	namespaceState = "state"

	subsystemSnapshot = "snapshot"
)
