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
)

// Type is the 16-bit IE type code. Codes with the top bit set are vendor-specific.
type Type uint16

// VendorSpecificBit marks enterprise (vendor-specific) IE types.
const VendorSpecificBit Type = 0x8000

// HeaderLen is the size of the type and length fields of every IE.
const HeaderLen = 4

// EnterpriseIDLen is the size of the enterprise ID carried by vendor-specific IEs.
// The IE length field counts these bytes.
const EnterpriseIDLen = 4

// MaxPayloadLen is the largest payload the 16-bit length field can describe.
const MaxPayloadLen = 0xFFFF

func init() {
	util.SetIETypeNamer(func(t uint16) string { return Type(t).String() })
}

func (t Type) String() string {
	if t.IsVendorSpecific() {
		return fmt.Sprintf("Vendor(%d)", uint16(t&^VendorSpecificBit))
	}
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", uint16(t))
}

// IsVendorSpecific returns whether the type is in the enterprise range.
func (t Type) IsVendorSpecific() bool {
	return t&VendorSpecificBit != 0
}

// IsKnown returns whether the type is a 3GPP-defined IE type.
func (t Type) IsKnown() bool {
	_, ok := typeNames[t]
	return ok
}

// IsGrouped returns whether IEs of this type carry child IEs.
func (t Type) IsGrouped() bool {
	_, ok := groupedTypes[t]
	return ok
}

// IE is a single PFCP information element.
// For grouped types, ChildIEs holds the children and Payload is empty.
type IE struct {
	Type         Type
	EnterpriseID uint32
	Payload      []byte
	ChildIEs     []*IE
}

///////////////
// Constructors
///////////////

func clonePayload(payload []byte) []byte {
	if len(payload) == 0 {
		return nil
	}
	b := make([]byte, len(payload))
	copy(b, payload)
	return b
}

// New creates an IE with the given type and a copy of payload.
func New(t Type, payload []byte) *IE {
	return &IE{Type: t, Payload: clonePayload(payload)}
}

// NewVendorSpecific creates an enterprise IE. The type must have its top bit set.
func NewVendorSpecific(t Type, enterpriseID uint32, payload []byte) (*IE, error) {
	if !t.IsVendorSpecific() {
		return nil, util.ErrEncoding{IEType: uint16(t), Reason: "enterprise ID requires a vendor-specific type"}
	}
	return &IE{Type: t, EnterpriseID: enterpriseID, Payload: clonePayload(payload)}, nil
}

// NewGrouped creates a grouped IE owning the given children. Nil children are skipped.
func NewGrouped(t Type, children ...*IE) *IE {
	i := &IE{Type: t}
	for _, c := range children {
		if c != nil {
			i.ChildIEs = append(i.ChildIEs, c)
		}
	}
	return i
}

// newUint8 and friends back the fixed-width integer IEs.
func newUint8(t Type, v uint8) *IE {
	return &IE{Type: t, Payload: []byte{v}}
}

func newUint16(t Type, v uint16) *IE {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, v)
	return &IE{Type: t, Payload: b}
}

func newUint32(t Type, v uint32) *IE {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, v)
	return &IE{Type: t, Payload: b}
}

func newString(t Type, v string) *IE {
	return &IE{Type: t, Payload: clonePayload([]byte(v))}
}

///////////
// Decoding
///////////

// Decode decodes the IE at the start of b, returning it and the number of bytes consumed.
// The payload of a grouped IE is left unparsed; see Parse and ParseMultiIEs.
func Decode(b []byte) (*IE, int, error) {
	if len(b) < HeaderLen {
		return nil, 0, util.ErrTruncated{What: "IE header", Expected: HeaderLen, Actual: len(b)}
	}
	t := Type(binary.BigEndian.Uint16(b[0:2]))
	length := int(binary.BigEndian.Uint16(b[2:4]))

	if length == 0 && !ZeroLengthAllowed(t) {
		return nil, 0, util.ErrZeroLengthNotAllowed{IEType: uint16(t)}
	}

	i := &IE{Type: t}
	offset := HeaderLen
	if t.IsVendorSpecific() {
		if length < EnterpriseIDLen {
			return nil, 0, util.ErrEnterpriseHeaderTruncated{IEType: uint16(t), Expected: EnterpriseIDLen, Actual: length}
		}
		if len(b) < HeaderLen+EnterpriseIDLen {
			return nil, 0, util.ErrEnterpriseHeaderTruncated{IEType: uint16(t), Expected: EnterpriseIDLen, Actual: len(b) - HeaderLen}
		}
		i.EnterpriseID = binary.BigEndian.Uint32(b[HeaderLen : HeaderLen+EnterpriseIDLen])
		offset += EnterpriseIDLen
		length -= EnterpriseIDLen
	}

	if len(b) < offset+length {
		return nil, 0, util.ErrTruncated{IEType: uint16(t), Expected: offset + length, Actual: len(b)}
	}
	i.Payload = clonePayload(b[offset : offset+length])
	return i, offset + length, nil
}

// Parse decodes a single IE that must span all of b, expanding grouped children.
func Parse(b []byte) (*IE, error) {
	ies, err := ParseMultiIEs(b)
	if err != nil {
		return nil, err
	}
	if len(ies) != 1 {
		return nil, util.ErrInvalidIEPayload{Reason: fmt.Sprintf("expected a single IE, found %d", len(ies))}
	}
	return ies[0], nil
}

///////////
// Encoding
///////////

func (i *IE) payloadLen() int {
	if i.ChildIEs == nil {
		return len(i.Payload)
	}
	n := 0
	for _, c := range i.ChildIEs {
		n += c.MarshalLen()
	}
	return n
}

// MarshalLen returns the encoded size of the IE including its header.
func (i *IE) MarshalLen() int {
	n := HeaderLen + i.payloadLen()
	if i.Type.IsVendorSpecific() {
		n += EnterpriseIDLen
	}
	return n
}

// Marshal encodes the IE.
func (i *IE) Marshal() ([]byte, error) {
	b := make([]byte, i.MarshalLen())
	if _, err := i.MarshalTo(b); err != nil {
		return nil, err
	}
	return b, nil
}

// MarshalTo encodes the IE into b, which must hold at least MarshalLen bytes.
func (i *IE) MarshalTo(b []byte) (int, error) {
	if !i.Type.IsVendorSpecific() && i.EnterpriseID != 0 {
		return 0, util.ErrEncoding{IEType: uint16(i.Type), Reason: "enterprise ID set on a non-vendor type"}
	}
	if i.ChildIEs != nil && len(i.Payload) != 0 {
		return 0, util.ErrEncoding{IEType: uint16(i.Type), Reason: "both payload and child IEs set"}
	}
	length := i.payloadLen()
	if i.Type.IsVendorSpecific() {
		length += EnterpriseIDLen
	}
	if length > MaxPayloadLen {
		return 0, util.ErrEncoding{IEType: uint16(i.Type), Reason: fmt.Sprintf("length %d exceeds %d", length, MaxPayloadLen)}
	}
	if length == 0 && !ZeroLengthAllowed(i.Type) {
		return 0, util.ErrZeroLengthNotAllowed{IEType: uint16(i.Type)}
	}
	if len(b) < HeaderLen+length {
		return 0, util.ErrEncoding{IEType: uint16(i.Type), Reason: "buffer too small"}
	}

	binary.BigEndian.PutUint16(b[0:2], uint16(i.Type))
	binary.BigEndian.PutUint16(b[2:4], uint16(length))
	offset := HeaderLen
	if i.Type.IsVendorSpecific() {
		binary.BigEndian.PutUint32(b[offset:offset+EnterpriseIDLen], i.EnterpriseID)
		offset += EnterpriseIDLen
	}
	if i.ChildIEs == nil {
		offset += copy(b[offset:], i.Payload)
		return offset, nil
	}
	for _, c := range i.ChildIEs {
		n, err := c.MarshalTo(b[offset:])
		if err != nil {
			return 0, err
		}
		offset += n
	}
	return offset, nil
}

////////////
// Accessors
////////////

// IsVendorSpecific returns whether the IE carries an enterprise ID.
func (i *IE) IsVendorSpecific() bool {
	return i.Type.IsVendorSpecific()
}

// IsGrouped returns whether the IE's type carries child IEs.
func (i *IE) IsGrouped() bool {
	return !i.Type.IsVendorSpecific() && i.Type.IsGrouped()
}

// FindChild returns the first child of the given type, or nil.
func (i *IE) FindChild(t Type) *IE {
	for _, c := range i.ChildIEs {
		if c.Type == t {
			return c
		}
	}
	return nil
}

// ChildrenOf returns every child of the given type in wire order.
func (i *IE) ChildrenOf(t Type) []*IE {
	var found []*IE
	for _, c := range i.ChildIEs {
		if c.Type == t {
			found = append(found, c)
		}
	}
	return found
}

func (i *IE) String() string {
	if i == nil {
		return "<nil>"
	}
	if i.IsVendorSpecific() {
		return fmt.Sprintf("%s{enterprise=%d, len=%d}", i.Type, i.EnterpriseID, len(i.Payload))
	}
	if i.ChildIEs != nil {
		return fmt.Sprintf("%s{%d children}", i.Type, len(i.ChildIEs))
	}
	return fmt.Sprintf("%s{len=%d}", i.Type, len(i.Payload))
}
