package unittest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/swirldnet/swirld-go/model/swirld"
	"github.com/swirldnet/swirld-go/state/signed"
)

// AddressBookFixture returns an address book with the given number of nodes,
// each holding equal weight. Node IDs start at 0.
func AddressBookFixture(t testing.TB, nodes int, weightPerNode uint64) *swirld.AddressBook {
	addresses := make([]swirld.Address, 0, nodes)
	for i := 0; i < nodes; i++ {
		addresses = append(addresses, swirld.Address{
			NodeID: swirld.NodeID(i),
			Weight: weightPerNode,
		})
	}
	book, err := swirld.NewAddressBook(addresses)
	require.NoError(t, err)
	return book
}

// SignedStateFixture returns a signed state for the given round over a
// 10-node address book with weight 10 per node. No signatures are collected
// yet.
func SignedStateFixture(t testing.TB, round uint64, opts ...signed.StateOption) *signed.State {
	book := AddressBookFixture(t, 10, 10)
	state, err := signed.NewState(
		round,
		time.Date(2023, time.October, 1, 12, 0, 0, 0, time.UTC).Add(time.Duration(round)*time.Second),
		book,
		[]byte("application state"),
		opts...,
	)
	require.NoError(t, err)
	return state
}

// CompleteSignedStateFixture returns a signed state whose signing weight has
// reached a supermajority.
func CompleteSignedStateFixture(t testing.TB, round uint64, opts ...signed.StateOption) *signed.State {
	state := SignedStateFixture(t, round, opts...)
	for i := 0; i < 7; i++ {
		state.AddSignature(swirld.NodeID(i))
	}
	require.True(t, state.IsComplete())
	return state
}
