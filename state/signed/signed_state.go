package signed

import (
	"fmt"
	"time"

	"go.uber.org/atomic"

	"github.com/swirldnet/swirld-go/consensus/weight"
	"github.com/swirldnet/swirld-go/model/snapshot"
	"github.com/swirldnet/swirld-go/model/swirld"
)

// State is a consensus state for one round together with the signatures
// collected for it so far. The payload is the opaque serialized application
// state; the snapshot pipeline never interprets it.
//
// A State is shared between the signature collector and the snapshot
// pipeline. Signing weight grows concurrently while a snapshot operation is
// in flight, so all mutable fields are atomics. Access is mediated by
// reservations (see Reserve): holders must release their reservation when
// done.
type State struct {
	round              uint64
	consensusTimestamp time.Time
	addressBook        *swirld.AddressBook
	payload            []byte
	freezeState        bool
	minGenNonAncient   int64

	signingWeight atomic.Uint64
	signers       signerSet

	savedToDisk  atomic.Bool
	reason       atomic.Int32
	reservations atomic.Int32
}

// NewState creates a signed state for the given round. The address book must
// have positive total weight; NewState fails otherwise so that a
// misconfigured network is caught at construction rather than at threshold
// evaluation time.
func NewState(
	round uint64,
	consensusTimestamp time.Time,
	addressBook *swirld.AddressBook,
	payload []byte,
	opts ...StateOption,
) (*State, error) {
	if addressBook == nil {
		return nil, fmt.Errorf("signed state requires an address book")
	}
	if addressBook.TotalWeight() == 0 {
		return nil, fmt.Errorf("signed state for round %d has zero total weight", round)
	}
	s := &State{
		round:              round,
		consensusTimestamp: consensusTimestamp,
		addressBook:        addressBook,
		payload:            payload,
		minGenNonAncient:   snapshot.GenerationUndefined,
	}
	s.signers.init()
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// StateOption configures a State at construction time.
type StateOption func(*State)

// WithFreezeState marks the round as a freeze boundary.
func WithFreezeState() StateOption {
	return func(s *State) { s.freezeState = true }
}

// WithMinimumGenerationNonAncient sets the lowest event generation that is
// still non-ancient for this round.
func WithMinimumGenerationNonAncient(gen int64) StateOption {
	return func(s *State) { s.minGenNonAncient = gen }
}

func (s *State) Round() uint64 {
	return s.round
}

func (s *State) ConsensusTimestamp() time.Time {
	return s.consensusTimestamp
}

func (s *State) AddressBook() *swirld.AddressBook {
	return s.addressBook
}

// Payload returns the opaque serialized application state.
func (s *State) Payload() []byte {
	return s.payload
}

func (s *State) IsFreezeState() bool {
	return s.freezeState
}

func (s *State) MinimumGenerationNonAncient() int64 {
	return s.minGenNonAncient
}

// AddSignature credits the weight of the given node towards the signing
// weight of this state. Each node is counted at most once; signatures from
// nodes outside the address book carry no weight. Returns the signing weight
// after the update.
//
// Safe for concurrent use: the signature collector calls this while the
// snapshot pipeline reads SigningWeight.
func (s *State) AddSignature(id swirld.NodeID) uint64 {
	w := s.addressBook.Weight(id)
	if w == 0 || !s.signers.add(id) {
		return s.signingWeight.Load()
	}
	return s.signingWeight.Add(w)
}

// SigningWeight returns the summed weight of all nodes whose signatures have
// been collected so far.
func (s *State) SigningWeight() uint64 {
	return s.signingWeight.Load()
}

// IsComplete reports whether the collected signing weight has reached a
// supermajority of the total weight.
func (s *State) IsComplete() bool {
	return s.signingWeight.Load() >= weight.SuperMajorityThreshold(s.addressBook.TotalWeight())
}

// HasStateBeenSavedToDisk reports whether this round has already been
// persisted by the snapshot pipeline.
func (s *State) HasStateBeenSavedToDisk() bool {
	return s.savedToDisk.Load()
}

// StateSavedToDisk marks this round as persisted. The transition is one-way:
// once set it can never be cleared, which is what makes a second save of the
// same round a no-op.
func (s *State) StateSavedToDisk() {
	s.savedToDisk.Store(true)
}

// SetStateToDiskReason records why this state is being written to disk.
func (s *State) SetStateToDiskReason(reason snapshot.StateToDiskReason) {
	s.reason.Store(int32(reason))
}

// StateToDiskReason returns the recorded reason, ReasonUnknown if none was
// set.
func (s *State) StateToDiskReason() snapshot.StateToDiskReason {
	return snapshot.StateToDiskReason(s.reason.Load())
}
