package model

// RequestKind discriminates the two request types a group can post into the
// shared request slot.
type RequestKind int

const (
	// TableRequest asks the receptionist for a table.
	TableRequest RequestKind = iota

	// BillRequest asks the receptionist to settle the bill and free the table.
	BillRequest
)

// KindNone marks an empty request slot.
const KindNone RequestKind = -1

// String returns a human-readable kind name.
func (k RequestKind) String() string {
	switch k {
	case TableRequest:
		return "table"
	case BillRequest:
		return "bill"
	case KindNone:
		return "none"
	}
	return "unknown"
}

// NoGroup marks the group field of an empty request slot.
const NoGroup = -1

// Request is the value a group posts into the shared one-slot request cell.
type Request struct {
	Kind  RequestKind `json:"reqType" yaml:"reqType"`
	Group int         `json:"reqGroup" yaml:"reqGroup"`
}

// EmptyRequest returns the sentinel stored in a consumed or never-used slot.
func EmptyRequest() Request {
	return Request{Kind: KindNone, Group: NoGroup}
}

// IsEmpty reports whether the request is the empty sentinel.
func (r Request) IsEmpty() bool {
	return r.Kind == KindNone && r.Group == NoGroup
}
