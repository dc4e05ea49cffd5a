/* YaPFCP - Yet another PFCP codec
 *
 * Copyright (C) 2020-2024 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ie

import (
	"encoding/binary"
	"fmt"

	"github.com/yapfcp/yapfcp/pfcp/util"
	"golang.org/x/exp/constraints"
)

// putUintN writes the low n bytes of v to b in network byte order.
func putUintN[T constraints.Unsigned](b []byte, v T, n int) {
	x := uint64(v)
	for i := n - 1; i >= 0; i-- {
		b[i] = byte(x)
		x >>= 8
	}
}

// uintN reads an n-byte network byte order integer from b.
func uintN[T constraints.Unsigned](b []byte, n int) T {
	var x uint64
	for i := 0; i < n; i++ {
		x = x<<8 | uint64(b[i])
	}
	return T(x)
}

// fitsIn reports whether v can be represented in the given number of bits.
func fitsIn[T constraints.Unsigned](v T, bits int) bool {
	return uint64(v)>>bits == 0
}

func (i *IE) expect(types ...Type) error {
	if i == nil {
		return util.ErrNonExistent
	}
	for _, t := range types {
		if i.Type == t {
			return nil
		}
	}
	return util.ErrInvalidIEPayload{IEType: uint16(i.Type), Reason: "expected " + types[0].String(), Err: util.ErrWrongType}
}

func tooShort(t Type, expected int, actual int) error {
	return util.ErrInvalidIEPayload{IEType: uint16(t), Reason: "payload too short", Expected: expected, Actual: actual, Err: util.ErrTooShort}
}

func invalid(t Type, format string, args ...interface{}) error {
	return util.ErrInvalidIEPayload{IEType: uint16(t), Reason: fmt.Sprintf(format, args...)}
}

func outOfRange(t Type, field string, v interface{}) error {
	return util.ErrInvalidIEPayload{IEType: uint16(t), Reason: fmt.Sprintf("%s %v", field, v), Err: util.ErrOutOfRange}
}

// ValueAsUint8 returns the first byte of the payload.
func (i *IE) ValueAsUint8() (uint8, error) {
	if i == nil {
		return 0, util.ErrNonExistent
	}
	if len(i.Payload) < 1 {
		return 0, tooShort(i.Type, 1, len(i.Payload))
	}
	return i.Payload[0], nil
}

// ValueAsUint16 returns the first two bytes of the payload.
func (i *IE) ValueAsUint16() (uint16, error) {
	if i == nil {
		return 0, util.ErrNonExistent
	}
	if len(i.Payload) < 2 {
		return 0, tooShort(i.Type, 2, len(i.Payload))
	}
	return binary.BigEndian.Uint16(i.Payload), nil
}

// ValueAsUint32 returns the first four bytes of the payload.
func (i *IE) ValueAsUint32() (uint32, error) {
	if i == nil {
		return 0, util.ErrNonExistent
	}
	if len(i.Payload) < 4 {
		return 0, tooShort(i.Type, 4, len(i.Payload))
	}
	return binary.BigEndian.Uint32(i.Payload), nil
}

// ValueAsUint64 returns the first eight bytes of the payload.
func (i *IE) ValueAsUint64() (uint64, error) {
	if i == nil {
		return 0, util.ErrNonExistent
	}
	if len(i.Payload) < 8 {
		return 0, tooShort(i.Type, 8, len(i.Payload))
	}
	return binary.BigEndian.Uint64(i.Payload), nil
}

// ValueAsString returns the payload as a string.
func (i *IE) ValueAsString() (string, error) {
	if i == nil {
		return "", util.ErrNonExistent
	}
	return string(i.Payload), nil
}

// ValueAsBytes returns a copy of the payload.
func (i *IE) ValueAsBytes() ([]byte, error) {
	if i == nil {
		return nil, util.ErrNonExistent
	}
	return clonePayload(i.Payload), nil
}
