// Package maitre models the classical receptionist/groups/tables
// rendezvous protocol: a closed population of group actors competes for a
// small pool of tables, coordinated by a single receptionist purely
// through counting gates and a mutually-exclusive shared arena.
//
// The engine is embedded through the high-level Service facade exposed by
// this package:
//
//	srv, _ := maitre.New(maitre.WithConfig(cfg))
//	rt := srv.Runtime()
//	_ = rt.Start(ctx)
//	_ = rt.Wait()
//
// Sub-packages hold the building blocks: gate (signalling primitives),
// arena (shared state), policy (assignment decisions), receptionist and
// group (the two actor state machines), steward (table cleanup), and the
// journal/event service layers.
package maitre
