/* YaPFCP - Yet another PFCP codec
 *
 * Copyright (C) 2020-2024 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package message

import (
	"github.com/yapfcp/yapfcp/pfcp/ie"
	"github.com/yapfcp/yapfcp/pfcp/util"
)

// Message is a decoded or built PFCP message.
type Message interface {
	// MessageType returns the type written into the header on encode.
	MessageType() Type
	// MessageHeader returns the header, whose Length is refreshed by Encode.
	MessageHeader() *Header
	// ExtraIEs returns the top-level IEs that the message shape has no slot for.
	ExtraIEs() []*ie.IE

	common() *base
	fields() []field
}

// base holds what every message shape shares.
type base struct {
	Header Header
	// Extra holds IEs outside the message shape, in wire order.
	Extra []*ie.IE
	// wire holds every top-level IE in wire order, set on decode only.
	wire []*ie.IE
}

// MessageHeader returns the message header.
func (b *base) MessageHeader() *Header {
	return &b.Header
}

// ExtraIEs returns IEs without a slot in the message shape.
func (b *base) ExtraIEs() []*ie.IE {
	return b.Extra
}

func (b *base) common() *base {
	return b
}

type presence uint8

const (
	optional presence = iota
	mandatory
	repeated
	atLeastOne
)

// field binds one IE type to its slot in a message struct.
type field struct {
	t        ie.Type
	presence presence
	one      **ie.IE
	many     *[]*ie.IE
}

func required(t ie.Type, slot **ie.IE) field {
	return field{t: t, presence: mandatory, one: slot}
}

func opt(t ie.Type, slot **ie.IE) field {
	return field{t: t, presence: optional, one: slot}
}

func list(t ie.Type, slot *[]*ie.IE) field {
	return field{t: t, presence: repeated, many: slot}
}

func nonEmpty(t ie.Type, slot *[]*ie.IE) field {
	return field{t: t, presence: atLeastOne, many: slot}
}

func (f field) empty() bool {
	if f.many != nil {
		return len(*f.many) == 0
	}
	return *f.one == nil
}

func (f field) required() bool {
	return f.presence == mandatory || f.presence == atLeastOne
}

// place stores i in the slot for its type. IEs without a slot go to Extra and
// place reports false.
func place(fields []field, b *base, i *ie.IE) (bool, error) {
	for _, f := range fields {
		if f.t != i.Type {
			continue
		}
		if f.many != nil {
			*f.many = append(*f.many, i)
			return true, nil
		}
		if *f.one != nil {
			return true, util.ErrInvalidIEPayload{IEType: uint16(i.Type), Reason: "duplicate", Err: util.ErrDuplicate}
		}
		*f.one = i
		return true, nil
	}
	b.Extra = append(b.Extra, i)
	return false, nil
}

// firstMissing returns the first mandatory slot left empty.
func firstMissing(fields []field) (ie.Type, bool) {
	for _, f := range fields {
		if f.required() && f.empty() {
			return f.t, true
		}
	}
	return 0, false
}

// collect lists the IEs of m in encoding order: slots as declared, then Extra.
func collect(m Message) []*ie.IE {
	var ies []*ie.IE
	for _, f := range m.fields() {
		if f.many != nil {
			for _, i := range *f.many {
				if i != nil {
					ies = append(ies, i)
				}
			}
		} else if *f.one != nil {
			ies = append(ies, *f.one)
		}
	}
	return append(ies, m.ExtraIEs()...)
}
