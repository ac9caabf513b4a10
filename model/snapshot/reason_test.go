package snapshot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReasonDescriptions(t *testing.T) {
	reasons := []StateToDiskReason{
		ReasonUnknown,
		ReasonFirstRoundAfterGenesis,
		ReasonFreezeState,
		ReasonPeriodicSnapshot,
		ReasonReconnect,
		ReasonISS,
		ReasonFatalError,
	}

	seen := make(map[string]struct{})
	for _, reason := range reasons {
		desc := reason.Description()
		assert.NotEmpty(t, desc)
		// descriptions become directory names
		assert.False(t, strings.ContainsAny(desc, "/\\ "), "description %q is not filesystem-safe", desc)
		_, dup := seen[desc]
		assert.False(t, dup, "description %q is not unique", desc)
		seen[desc] = struct{}{}
	}

	// unrecognized values fall back to unknown
	assert.Equal(t, "unknown", StateToDiskReason(127).Description())
}
