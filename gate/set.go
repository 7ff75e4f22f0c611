package gate

import "fmt"

// Set is the protocol's gate vocabulary, sized once at startup for a
// static population of groups and tables.
type Set struct {
	// Mutex serialises every read-modify-write on the shared arena.
	Mutex *Gate

	// RequestPending is released by a group after posting a request and
	// acquired by the receptionist.
	RequestPending *Gate

	// SlotAvailable guards the one-slot request cell; a group acquires it
	// before posting so an unconsumed request is never overwritten.
	SlotAvailable *Gate

	// TableReady has one gate per group, released by the receptionist when
	// that group's table is assigned.
	TableReady []*Gate

	// TableVacated has one gate per table, released by the receptionist on
	// payment and consumed by the steward that resets the table. Each gate
	// is sized to the group population: with each group paying at most once
	// per seating, that bounds the signals a slow or absent consumer can
	// leave outstanding on one table.
	TableVacated []*Gate
}

type setOptions struct {
	slots int
}

// Option customises a gate set.
type Option func(*setOptions)

// WithSlots sets the request-slot pipeline depth. The default of one keeps
// the classic single-outstanding-request handshake.
func WithSlots(slots int) Option {
	return func(o *setOptions) {
		o.slots = slots
	}
}

// NewSet builds all gates for the given population.
func NewSet(groups, tables int, options ...Option) (*Set, error) {
	if groups <= 0 {
		return nil, fmt.Errorf("gate set requires at least one group, got %v", groups)
	}
	if tables <= 0 {
		return nil, fmt.Errorf("gate set requires at least one table, got %v", tables)
	}
	opts := &setOptions{slots: 1}
	for _, option := range options {
		option(opts)
	}
	if opts.slots <= 0 {
		return nil, fmt.Errorf("gate set requires at least one request slot, got %v", opts.slots)
	}

	var err error
	ret := &Set{
		TableReady:   make([]*Gate, groups),
		TableVacated: make([]*Gate, tables),
	}
	if ret.Mutex, err = New("mutex", 1, 1); err != nil {
		return nil, err
	}
	if ret.RequestPending, err = New("requestPending", 0, opts.slots); err != nil {
		return nil, err
	}
	if ret.SlotAvailable, err = New("slotAvailable", opts.slots, opts.slots); err != nil {
		return nil, err
	}
	for g := 0; g < groups; g++ {
		if ret.TableReady[g], err = New(fmt.Sprintf("tableReady[%d]", g), 0, 1); err != nil {
			return nil, err
		}
	}
	for t := 0; t < tables; t++ {
		if ret.TableVacated[t], err = New(fmt.Sprintf("tableVacated[%d]", t), 0, groups); err != nil {
			return nil, err
		}
	}
	return ret, nil
}
