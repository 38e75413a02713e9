package funowl

import (
	"fmt"
	"sort"

	"github.com/clin113jhu/funowl/errors"
)

// SlotKind tags how a grammar slot consumes values.
type SlotKind int

const (
	// SlotSingle holds at most one value.
	SlotSingle SlotKind = iota
	// SlotList holds an ordered list of values.
	SlotList
)

// Slot is one (predicate, slot-kind) rule of a composite node's grammar.
// Slots are evaluated in order against a flat argument list, each consuming
// a strict prefix of the remaining arguments, so the rule list stands in for
// the document grammar's ordered non-terminals.
type Slot struct {
	// Name is the slot's field name for named-argument application.
	Name string

	// Kind tags the slot as single-optional or list.
	Kind SlotKind

	// Match reports whether a positional value belongs to this slot.
	// A slot that only accepts named values can always return false.
	Match func(v any) bool

	// Filled reports whether a single slot is already occupied.
	// Unused for list slots.
	Filled func() bool

	// Assign stores one value into the slot. For list slots it appends;
	// named values may also carry a whole slice. A value of the wrong type
	// fails with ErrUnrecognizedArgument.
	Assign func(v any) error
}

// Fields carries named constructor arguments. A Fields value may appear
// anywhere in a variadic argument list; all positional values are classified
// first and every Fields map is applied afterwards, in argument order with
// keys sorted for determinism.
type Fields map[string]any

// classify reconstructs a structured node from a flat argument list.
//
// Positional pass: slots consume leading matches in rule order (a single
// slot takes at most one, a list slot takes zero or more); the first
// leftover value fails with ErrUnrecognizedArgument and no partial result
// is kept by callers.
//
// Field pass: an unknown name fails with ErrUnknownField; a named value for
// an occupied single slot fails with ErrSlotOccupied; list slots append,
// preserving existing order.
func classify(component string, args []any, slots []Slot) error {
	var positional []any
	var fieldSets []Fields
	for _, arg := range args {
		if f, ok := arg.(Fields); ok {
			fieldSets = append(fieldSets, f)
			continue
		}
		positional = append(positional, arg)
	}

	i := 0
	for si := range slots {
		s := &slots[si]
		switch s.Kind {
		case SlotSingle:
			if i < len(positional) && s.Match(positional[i]) && !s.Filled() {
				if err := s.Assign(positional[i]); err != nil {
					return errors.WrapConstruction(err, component, "classify", "assign "+s.Name)
				}
				i++
			}
		case SlotList:
			for i < len(positional) && s.Match(positional[i]) {
				if err := s.Assign(positional[i]); err != nil {
					return errors.WrapConstruction(err, component, "classify", "assign "+s.Name)
				}
				i++
			}
		}
	}
	if i < len(positional) {
		err := fmt.Errorf("%w: argument %d (%T: %v)",
			errors.ErrUnrecognizedArgument, i, positional[i], positional[i])
		return errors.WrapConstruction(err, component, "classify", "consume positional arguments")
	}

	byName := make(map[string]*Slot, len(slots))
	for si := range slots {
		byName[slots[si].Name] = &slots[si]
	}
	for _, fields := range fieldSets {
		names := make([]string, 0, len(fields))
		for name := range fields {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			s, ok := byName[name]
			if !ok {
				err := fmt.Errorf("%w: %q", errors.ErrUnknownField, name)
				return errors.WrapConstruction(err, component, "classify", "apply named fields")
			}
			if s.Kind == SlotSingle && s.Filled() {
				err := fmt.Errorf("%w: %q", errors.ErrSlotOccupied, name)
				return errors.WrapConstruction(err, component, "classify", "apply named fields")
			}
			if err := s.Assign(fields[name]); err != nil {
				return errors.WrapConstruction(err, component, "classify", "assign "+name)
			}
		}
	}
	return nil
}
