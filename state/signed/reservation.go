package signed

import "go.uber.org/atomic"

// ReservedState is a scoped reservation on a State: a shared-ownership token
// that keeps the state alive while a component works with it. Every
// reservation must be closed exactly once; Close is CAS-guarded so that a
// defensive double close releases the underlying reference only once.
type ReservedState struct {
	state    *State
	released atomic.Bool
}

// Reserve takes out a new reservation on the state.
func (s *State) Reserve() *ReservedState {
	s.reservations.Inc()
	return &ReservedState{state: s}
}

// Get returns the reserved state. It must not be called after Close.
func (r *ReservedState) Get() *State {
	if r.released.Load() {
		panic("get on released state reservation")
	}
	return r.state
}

// Close releases the reservation. Only the first call has an effect.
func (r *ReservedState) Close() {
	if !r.released.CompareAndSwap(false, true) {
		return
	}
	r.state.reservations.Dec()
}

// ReservationCount returns the number of open reservations on the state.
func (s *State) ReservationCount() int32 {
	return s.reservations.Load()
}
