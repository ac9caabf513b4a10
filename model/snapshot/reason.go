package snapshot

// StateToDiskReason tags a snapshot with the trigger that caused it to be
// written. The description doubles as a directory name for out-of-band
// dumps, so it must stay filesystem-safe.
type StateToDiskReason int

const (
	ReasonUnknown StateToDiskReason = iota
	ReasonFirstRoundAfterGenesis
	ReasonFreezeState
	ReasonPeriodicSnapshot
	ReasonReconnect
	ReasonISS
	ReasonFatalError
)

// Description returns the filesystem-safe name of the reason.
func (r StateToDiskReason) Description() string {
	switch r {
	case ReasonFirstRoundAfterGenesis:
		return "first-round-after-genesis"
	case ReasonFreezeState:
		return "freeze-state"
	case ReasonPeriodicSnapshot:
		return "periodic-snapshot"
	case ReasonReconnect:
		return "reconnect"
	case ReasonISS:
		return "iss"
	case ReasonFatalError:
		return "fatal"
	default:
		return "unknown"
	}
}

func (r StateToDiskReason) String() string {
	return r.Description()
}
