/* YaPFCP - Yet another PFCP codec
 *
 * Copyright (C) 2020-2024 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package message

import "github.com/yapfcp/yapfcp/pfcp/ie"

// Generic is a message whose type has no shape in the dispatch table. All of its
// IEs are kept in Extra, so it re-encodes unchanged.
type Generic struct {
	base
}

// NewGeneric returns a message of type t carrying ies.
func NewGeneric(t Type, seq uint32, seid *uint64, ies ...*ie.IE) *Generic {
	m := &Generic{}
	m.Header = Header{Version: Version, Type: t, SequenceNumber: seq, SEID: seid}
	m.Extra = ies
	return m
}

// MessageType returns the type from the header.
func (m *Generic) MessageType() Type {
	return m.Header.Type
}

func (m *Generic) fields() []field {
	return nil
}
