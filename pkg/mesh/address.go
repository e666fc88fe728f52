package mesh

import "fmt"

// Address is a 16-bit mesh address. The value space is partitioned into
// four kinds by its top bits: unassigned, unicast, virtual, and group.
type Address uint16

// Well-known group addresses.
const (
	// AddressUnassigned is the unassigned address. Messages are never sent
	// to or from it.
	AddressUnassigned Address = 0x0000

	// AllProxies addresses every node with the proxy feature enabled.
	AllProxies Address = 0xFFFC

	// AllFriends addresses every node with the friend feature enabled.
	AllFriends Address = 0xFFFD

	// AllRelays addresses every node with the relay feature enabled.
	AllRelays Address = 0xFFFE

	// AllNodes addresses every node in the network.
	AllNodes Address = 0xFFFF
)

// AddressKind classifies an address by its value range.
type AddressKind uint8

const (
	// KindUnassigned is the single unassigned address 0x0000.
	KindUnassigned AddressKind = 0

	// KindUnicast covers 0x0001-0x7FFF, a single element of a node.
	KindUnicast AddressKind = 1

	// KindVirtual covers 0x8000-0xBFFF, a hash of a label UUID.
	KindVirtual AddressKind = 2

	// KindGroup covers 0xC000-0xFFFF, a multicast group.
	KindGroup AddressKind = 3
)

// String returns the address kind name.
func (k AddressKind) String() string {
	switch k {
	case KindUnassigned:
		return "UNASSIGNED"
	case KindUnicast:
		return "UNICAST"
	case KindVirtual:
		return "VIRTUAL"
	case KindGroup:
		return "GROUP"
	default:
		return "UNKNOWN"
	}
}

// Kind returns the kind of the address.
func (a Address) Kind() AddressKind {
	switch {
	case a == AddressUnassigned:
		return KindUnassigned
	case a < 0x8000:
		return KindUnicast
	case a < 0xC000:
		return KindVirtual
	default:
		return KindGroup
	}
}

// IsUnicast returns true if the address identifies a single element.
func (a Address) IsUnicast() bool {
	return a.Kind() == KindUnicast
}

// IsAssigned returns true for any address other than the unassigned address.
func (a Address) IsAssigned() bool {
	return a != AddressUnassigned
}

// String returns the address as hex with its kind, e.g. "0x0001 (UNICAST)".
func (a Address) String() string {
	return fmt.Sprintf("0x%04X (%s)", uint16(a), a.Kind())
}
