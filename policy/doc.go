// Package policy holds the receptionist's pure assignment decisions -
// which table a group gets and which waiting group is served next when a
// table frees up. Both are deterministic lowest-index-first scans; the
// resulting FIFO-by-index tie-breaking among simultaneously waiting groups
// is documented behaviour inherited from the scan order, not a fairness
// guarantee.
package policy
