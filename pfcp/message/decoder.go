/* YaPFCP - Yet another PFCP codec
 *
 * Copyright (C) 2020-2024 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package message

import (
	"errors"
	"fmt"

	"github.com/yapfcp/yapfcp/core"
	"github.com/yapfcp/yapfcp/pfcp/ie"
	"github.com/yapfcp/yapfcp/pfcp/util"
)

// Decoder decodes PFCP messages. The zero value uses ie.DefaultMaxDepth and
// decodes unknown message types as Generic.
type Decoder struct {
	// MaxDepth bounds grouped IE nesting.
	MaxDepth int
	// RejectUnknownMessages fails unknown message types with ErrUnknownMessageType.
	RejectUnknownMessages bool
}

var defaultDecoder = &Decoder{MaxDepth: ie.DefaultMaxDepth}

// NewDecoderFromConfig returns a decoder configured from the [codec] section.
func NewDecoderFromConfig() *Decoder {
	return &Decoder{
		MaxDepth:              core.GetConfigIntDefault("codec.max_depth", ie.DefaultMaxDepth),
		RejectUnknownMessages: core.GetConfigBoolDefault("codec.reject_unknown_messages", false),
	}
}

func (d *Decoder) String() string {
	return "Decoder"
}

func (d *Decoder) maxDepth() int {
	if d.MaxDepth <= 0 {
		return ie.DefaultMaxDepth
	}
	return d.MaxDepth
}

// Decode decodes a single message spanning all of b.
func Decode(b []byte) (Message, error) {
	return defaultDecoder.Decode(b)
}

// DecodeAll decodes every message of a datagram, following the FO flag.
func DecodeAll(b []byte) ([]Message, error) {
	return defaultDecoder.DecodeAll(b)
}

// Decode decodes a single message spanning all of b.
func (d *Decoder) Decode(b []byte) (Message, error) {
	m, n, err := d.decodePrefix(b)
	if err == nil && n != len(b) {
		err = util.ErrHeaderInvalid{Reason: fmt.Sprintf("%d bytes trail the message", len(b)-n)}
	}
	if err != nil {
		metrics.decodeFailed(err)
		return nil, err
	}
	metrics.messageDecoded(m.MessageType())
	return m, nil
}

// DecodePrefix decodes the message at the start of b and returns the number of
// bytes it spans. Bytes after it are left alone.
func (d *Decoder) DecodePrefix(b []byte) (Message, int, error) {
	m, n, err := d.decodePrefix(b)
	if err != nil {
		metrics.decodeFailed(err)
		return nil, 0, err
	}
	metrics.messageDecoded(m.MessageType())
	return m, n, nil
}

// DecodeAll decodes the messages of a datagram. Every message except the last
// must have its FO flag set.
func (d *Decoder) DecodeAll(b []byte) ([]Message, error) {
	var msgs []Message
	offset := 0
	for {
		m, n, err := d.DecodePrefix(b[offset:])
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
		offset += n
		if !m.MessageHeader().FO || offset == len(b) {
			break
		}
	}
	if offset != len(b) {
		err := util.ErrHeaderInvalid{Reason: fmt.Sprintf("%d bytes trail the last message", len(b)-offset)}
		metrics.decodeFailed(err)
		return nil, err
	}
	return msgs, nil
}

func (d *Decoder) decodePrefix(b []byte) (Message, int, error) {
	h, hdrLen, err := DecodeHeader(b)
	if err != nil {
		return nil, 0, err
	}
	total := lengthOffset + int(h.Length)
	if total > len(b) {
		return nil, 0, util.ErrTruncated{What: "message body", Expected: total, Actual: len(b)}
	}

	ies, err := ie.ParseMultiIEsWithDepth(b[hdrLen:total], d.maxDepth())
	if err != nil {
		var truncated util.ErrTruncated
		if errors.As(err, &truncated) {
			truncated.Offset += hdrLen
			return nil, 0, truncated
		}
		return nil, 0, err
	}

	if !h.Type.IsKnown() {
		if d.RejectUnknownMessages {
			return nil, 0, util.ErrUnknownMessageType{MessageType: uint8(h.Type)}
		}
		core.LogDebug(d, "Unrecognized message type ", uint8(h.Type), ", decoding as generic")
		g := &Generic{}
		g.Header = *h
		g.Extra = ies
		g.wire = append([]*ie.IE{}, ies...)
		return g, total, nil
	}

	if reason := checkSEID(h.Type, h.SEID != nil); reason != "" {
		return nil, 0, util.ErrHeaderInvalid{Reason: reason}
	}
	m, err := assemble(h, ies)
	if err != nil {
		return nil, 0, err
	}
	return m, total, nil
}
