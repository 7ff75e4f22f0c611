// Package gate implements the counting signalling primitives the
// rendezvous protocol is built on: blocking acquire, non-blocking release,
// no ordering guarantee among waiters. A Set bundles the gates the
// protocol needs - the mutual-exclusion gate over the shared arena, the
// request handshake pair and the per-group/per-table notification gates.
package gate
