package model

import "fmt"

func NewInvalidGroupError(group, groups int) error {
	return fmt.Errorf("invalid group %v, expected [0..%v)", group, groups)
}

func NewInvalidTableError(table, tables int) error {
	return fmt.Errorf("invalid table %v, expected [0..%v)", table, tables)
}

func NewSlotOccupiedError(pending Request) error {
	return fmt.Errorf("request slot already holds %v request from group %v", pending.Kind, pending.Group)
}

func NewTableOccupiedError(table, holder int) error {
	return fmt.Errorf("table %v already held by group %v", table, holder)
}
