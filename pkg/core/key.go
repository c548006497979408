package core

import (
	"hash/maphash"
	"strconv"
)

type keyKind uint8

const (
	keyNone keyKind = iota
	keyInt
	keyUint
	keyString
)

// Key identifies a widget across reconciliation passes. The zero Key means
// "no key". Keys of different kinds never compare equal, so IntKey(1) and
// UintKey(1) are distinct identities.
//
// Key is comparable and may be used directly as a map key.
type Key struct {
	kind keyKind
	bits uint64
	str  string
}

// IntKey returns a signed integer key.
func IntKey(v int64) Key {
	return Key{kind: keyInt, bits: uint64(v)}
}

// UintKey returns an unsigned integer key.
func UintKey(v uint64) Key {
	return Key{kind: keyUint, bits: v}
}

// StringKey returns a string key.
func StringKey(v string) Key {
	return Key{kind: keyString, str: v}
}

// IsNil reports whether k is the zero Key.
func (k Key) IsNil() bool {
	return k.kind == keyNone
}

// Equal reports whether k and other name the same identity.
func (k Key) Equal(other Key) bool {
	return k == other
}

var keySeed = maphash.MakeSeed()

// Hash returns a hash of k that is stable for the life of the process.
func (k Key) Hash() uint64 {
	return maphash.Comparable(keySeed, k)
}

func (k Key) String() string {
	switch k.kind {
	case keyInt:
		return "int:" + strconv.FormatInt(int64(k.bits), 10)
	case keyUint:
		return "uint:" + strconv.FormatUint(k.bits, 10)
	case keyString:
		return "str:" + strconv.Quote(k.str)
	default:
		return "<nil>"
	}
}
