/* YaPFCP - Yet another PFCP codec
 *
 * Copyright (C) 2020-2024 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package message

import (
	"encoding/binary"
	"fmt"

	"github.com/yapfcp/yapfcp/core"
	"github.com/yapfcp/yapfcp/pfcp/util"
)

// Version is the only PFCP version this codec speaks.
const Version uint8 = core.ProtocolVersion

// Header sizes. The length field counts every byte after the first four.
const (
	HeaderLen         = 8
	HeaderLenWithSEID = 16
	lengthOffset      = 4
)

// MaxSequenceNumber is the largest value the 24-bit sequence number can hold.
const MaxSequenceNumber uint32 = 1<<24 - 1

// MaxPriority is the largest message priority.
const MaxPriority uint8 = 15

// Header flag bits in the first octet.
const (
	flagS  uint8 = 0x01
	flagMP uint8 = 0x02
	flagFO uint8 = 0x04
)

// Header is a PFCP message header.
type Header struct {
	Version uint8
	// FO marks that another message follows this one in the same datagram.
	FO             bool
	Type           Type
	Length         uint16
	SEID           *uint64
	SequenceNumber uint32
	Priority       *uint8
}

// DecodeHeader decodes the header at the start of b, returning it and its size.
func DecodeHeader(b []byte) (*Header, int, error) {
	if len(b) < lengthOffset {
		return nil, 0, util.ErrTruncated{What: "message header", Expected: lengthOffset, Actual: len(b)}
	}

	h := &Header{
		Version: b[0] >> 5,
		FO:      b[0]&flagFO != 0,
		Type:    Type(b[1]),
		Length:  binary.BigEndian.Uint16(b[2:4]),
	}
	if h.Version != Version {
		return nil, 0, util.ErrHeaderInvalid{Reason: fmt.Sprintf("unsupported version %d", h.Version)}
	}

	hasSEID := b[0]&flagS != 0
	size := HeaderLen
	if hasSEID {
		size = HeaderLenWithSEID
	}
	if len(b) < size {
		return nil, 0, util.ErrTruncated{What: "message header", Expected: size, Actual: len(b)}
	}
	if int(h.Length) < size-lengthOffset {
		return nil, 0, util.ErrHeaderInvalid{Reason: fmt.Sprintf("length %d shorter than header", h.Length)}
	}

	offset := lengthOffset
	if hasSEID {
		seid := binary.BigEndian.Uint64(b[offset : offset+8])
		h.SEID = &seid
		offset += 8
	}
	h.SequenceNumber = uint32(b[offset])<<16 | uint32(b[offset+1])<<8 | uint32(b[offset+2])
	if b[0]&flagMP != 0 {
		priority := b[offset+3] >> 4
		h.Priority = &priority
	}
	return h, size, nil
}

// MarshalLen returns the encoded size of the header.
func (h *Header) MarshalLen() int {
	if h.SEID != nil {
		return HeaderLenWithSEID
	}
	return HeaderLen
}

// Marshal encodes the header. The flag octet is derived from the SEID, Priority and FO fields.
func (h *Header) Marshal() ([]byte, error) {
	b := make([]byte, h.MarshalLen())
	if _, err := h.MarshalTo(b); err != nil {
		return nil, err
	}
	return b, nil
}

// MarshalTo encodes the header into b, which must hold at least MarshalLen bytes.
func (h *Header) MarshalTo(b []byte) (int, error) {
	if h.SequenceNumber > MaxSequenceNumber {
		return 0, util.ErrEncoding{Reason: fmt.Sprintf("sequence number %d exceeds 24 bits", h.SequenceNumber)}
	}
	if h.Priority != nil && *h.Priority > MaxPriority {
		return 0, util.ErrEncoding{Reason: fmt.Sprintf("priority %d exceeds 4 bits", *h.Priority)}
	}
	size := h.MarshalLen()
	if len(b) < size {
		return 0, util.ErrEncoding{Reason: "buffer too small for header"}
	}

	flags := Version << 5
	if h.FO {
		flags |= flagFO
	}
	if h.Priority != nil {
		flags |= flagMP
	}
	if h.SEID != nil {
		flags |= flagS
	}
	b[0] = flags
	b[1] = uint8(h.Type)
	binary.BigEndian.PutUint16(b[2:4], h.Length)

	offset := lengthOffset
	if h.SEID != nil {
		binary.BigEndian.PutUint64(b[offset:offset+8], *h.SEID)
		offset += 8
	}
	b[offset] = uint8(h.SequenceNumber >> 16)
	b[offset+1] = uint8(h.SequenceNumber >> 8)
	b[offset+2] = uint8(h.SequenceNumber)
	b[offset+3] = 0
	if h.Priority != nil {
		b[offset+3] = *h.Priority << 4
	}
	return size, nil
}

// String renders the header for logs.
func (h *Header) String() string {
	s := fmt.Sprintf("%s seq=%d len=%d", h.Type, h.SequenceNumber, h.Length)
	if h.SEID != nil {
		s += fmt.Sprintf(" seid=0x%016x", *h.SEID)
	}
	if h.Priority != nil {
		s += fmt.Sprintf(" priority=%d", *h.Priority)
	}
	if h.FO {
		s += " fo"
	}
	return s
}
