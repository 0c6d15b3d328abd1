package phamt

import "github.com/google/uuid"

// OwnerToken authorizes in-place editing of trie nodes during a batch of
// mutations opened by WithMutations/AsMutable. A node may only be edited in
// place by the handle holding the exact *OwnerToken stamped on that node;
// every other handle must take a structurally-shared copy.
//
// Uniqueness is guaranteed by Go pointer identity on the *OwnerToken itself,
// not by the embedded id: two OwnerTokens are the "same" token if and only
// if they are the same pointer. id exists purely so batches are
// distinguishable in logs.
type OwnerToken struct {
	id uuid.UUID
}

// newOwnerToken allocates a fresh, globally unique token for a new batch.
func newOwnerToken() *OwnerToken {
	return &OwnerToken{id: uuid.New()}
}

// String returns the token's diagnostic id. Two distinct tokens will almost
// certainly print different strings, but equality must never be tested this
// way; compare the *OwnerToken pointers instead.
func (o *OwnerToken) String() string {
	if o == nil {
		return "<nil-owner>"
	}
	return o.id.String()
}

// sameOwner reports whether a node's owner authorizes in-place edits for
// the given batch token. A nil node owner is always immutable.
func sameOwner(nodeOwner, batchOwner *OwnerToken) bool {
	return nodeOwner != nil && batchOwner != nil && nodeOwner == batchOwner
}
