// Package gui is a small immediate-mode widget toolkit: widgets are plain
// function calls made once per frame, and a shared Context decides which of
// them owns the pointer.
package gui

import (
	"encoding/binary"

	"github.com/zeebo/blake3"
)

// Id identifies a widget across frames without the widget being retained.
type Id uint64

// HashString derives an Id from a label or seed. Two widgets hashing the same
// string are indistinguishable to the focus protocol, so only use it for
// top-level widgets whose seeds are unique by construction.
func HashString(s string) Id {
	sum := blake3.Sum256([]byte(s))
	return Id(binary.LittleEndian.Uint64(sum[:8]))
}

// Child derives the Id of the index-th sub-widget of id. Children of
// different parents, and different children of one parent, never share a
// derivation input, so there is no ceiling on how many a container may have.
func (id Id) Child(index int) Id {
	var buf [17]byte
	buf[0] = 'c'
	binary.LittleEndian.PutUint64(buf[1:9], uint64(id))
	binary.LittleEndian.PutUint64(buf[9:], uint64(index))
	sum := blake3.Sum256(buf[:])
	return Id(binary.LittleEndian.Uint64(sum[:8]))
}
