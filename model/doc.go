// Package model contains the in-memory representation of the rendezvous
// protocol vocabulary - requests, group lifecycle states, the receptionist
// status and journal snapshots.
//
// The types carry no behaviour beyond formatting; all protocol logic lives
// in the arena, policy, receptionist and group packages, which reference
// this package with a single import.
package model
