package graph

import "strings"

// Namespace is one short-name to base-IRI binding.
// An empty Prefix is the default namespace.
type Namespace struct {
	Prefix string `json:"prefix"`
	Base   string `json:"base"`
}

// Namespaces is an ordered prefix table with bidirectional lookup.
//
// Binding order is preserved because prefix declarations are semantically
// visible in functional-syntax output. Rebinding an existing prefix updates
// the base in place without changing its position.
//
// A binding made with both directions enabled participates in Abbreviate;
// a one-directional binding only supports Expand and listing.
//
// Namespaces is not safe for concurrent mutation. Each render pass owns its
// table exclusively for the duration of the traversal.
type Namespaces struct {
	list     []Namespace
	byPrefix map[string]int
	reverse  map[string]bool // bases eligible for abbreviation
}

// NewNamespaces creates an empty namespace table.
func NewNamespaces() *Namespaces {
	return &Namespaces{
		byPrefix: make(map[string]int),
		reverse:  make(map[string]bool),
	}
}

// Bind registers prefix -> base. When both is true the binding also becomes
// eligible for abbreviation (base -> prefix direction).
//
// Rebinding an existing prefix overrides its base in place; the old base
// loses abbreviation eligibility unless another prefix still claims it.
func (n *Namespaces) Bind(prefix, base string, both bool) {
	if i, ok := n.byPrefix[prefix]; ok {
		old := n.list[i].Base
		n.list[i].Base = base
		if old != base && !n.baseStillBound(old) {
			delete(n.reverse, old)
		}
	} else {
		n.byPrefix[prefix] = len(n.list)
		n.list = append(n.list, Namespace{Prefix: prefix, Base: base})
	}
	if both {
		n.reverse[base] = true
	}
}

// baseStillBound reports whether any binding still uses base.
func (n *Namespaces) baseStillBound(base string) bool {
	for _, ns := range n.list {
		if ns.Base == base {
			return true
		}
	}
	return false
}

// List returns all bindings in declaration order.
// The returned slice is a copy; mutating it does not affect the table.
func (n *Namespaces) List() []Namespace {
	out := make([]Namespace, len(n.list))
	copy(out, n.list)
	return out
}

// Len returns the number of bindings.
func (n *Namespaces) Len() int {
	return len(n.list)
}

// Base returns the base IRI bound to prefix.
func (n *Namespaces) Base(prefix string) (string, bool) {
	i, ok := n.byPrefix[prefix]
	if !ok {
		return "", false
	}
	return n.list[i].Base, true
}

// Expand resolves a prefixed name ("ex:Foo") to its full IRI.
// Returns false if the name has no colon or its prefix is not bound.
func (n *Namespaces) Expand(qname string) (string, bool) {
	idx := strings.Index(qname, ":")
	if idx < 0 {
		return "", false
	}
	base, ok := n.Base(qname[:idx])
	if !ok {
		return "", false
	}
	return base + qname[idx+1:], true
}

// Abbreviate rewrites a full IRI as a prefixed name using the longest
// matching base that was bound with both directions enabled. The local part
// must be non-empty and free of '/', '#', and ':' to stay a valid prefixed
// name. Returns false when no binding applies.
func (n *Namespaces) Abbreviate(full string) (string, bool) {
	bestLen := -1
	bestPrefix := ""
	for _, ns := range n.list {
		if !n.reverse[ns.Base] {
			continue
		}
		if strings.HasPrefix(full, ns.Base) && len(ns.Base) > bestLen {
			bestLen = len(ns.Base)
			bestPrefix = ns.Prefix
		}
	}
	if bestLen < 0 {
		return "", false
	}

	local := full[bestLen:]
	if local == "" || strings.ContainsAny(local, "/#:") {
		return "", false
	}
	return bestPrefix + ":" + local, true
}
