package mesh

import "time"

// TTL is the time-to-live hop count of a message. Valid values are 0-127;
// the top bit of the wire octet is reserved.
type TTL uint8

// MaxTTL is the largest valid TTL value.
const MaxTTL TTL = 0x7F

// Valid returns true if the TTL is within the 7-bit range.
func (t TTL) Valid() bool {
	return t <= MaxTTL
}

// KeyIndex is a 12-bit index into a key list. Both application keys and
// network keys are referenced by 12-bit indices.
type KeyIndex uint16

// MaxKeyIndex is the largest valid key index.
const MaxKeyIndex KeyIndex = 0x0FFF

// Valid returns true if the index fits in 12 bits.
func (i KeyIndex) Valid() bool {
	return i <= MaxKeyIndex
}

// AppKeyIndex references an application key.
type AppKeyIndex KeyIndex

// Valid returns true if the index fits in 12 bits.
func (i AppKeyIndex) Valid() bool {
	return KeyIndex(i).Valid()
}

// NetKeyIndex references a network key.
type NetKeyIndex KeyIndex

// Valid returns true if the index fits in 12 bits.
func (i NetKeyIndex) Valid() bool {
	return KeyIndex(i).Valid()
}

// CompanyID is a 16-bit Bluetooth SIG assigned company identifier used to
// scope vendor opcodes and vendor models.
type CompanyID uint16

// CompanyIDUnassigned is reserved and never identifies a vendor.
const CompanyIDUnassigned CompanyID = 0xFFFF

// Valid returns true if the company ID identifies a vendor.
func (c CompanyID) Valid() bool {
	return c != CompanyIDUnassigned
}

// ModelID is a 16-bit model identifier, SIG-defined unless paired with a
// company ID.
type ModelID uint16

// AckTimeout is the minimum time a sender waits for an acknowledged
// message's response before giving up. The session layer owns the actual
// wait; the constant lives here so every layer agrees on the floor.
const AckTimeout = 30 * time.Second
