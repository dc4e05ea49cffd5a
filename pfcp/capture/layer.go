/* YaPFCP - Yet another PFCP codec
 *
 * Copyright (C) 2020-2024 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

// Package capture decodes PFCP messages inside packets with gopacket.
package capture

import (
	"errors"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/yapfcp/yapfcp/core"
	"github.com/yapfcp/yapfcp/pfcp/message"
	"github.com/yapfcp/yapfcp/pfcp/util"
)

// LayerTypePFCP is the gopacket layer type of a PFCP message.
var LayerTypePFCP gopacket.LayerType

func init() {
	LayerTypePFCP = gopacket.RegisterLayerType(2244, gopacket.LayerTypeMetadata{
		Name:    "PFCP",
		Decoder: gopacket.DecodeFunc(decodePFCP),
	})
	layers.RegisterUDPPortLayerType(layers.UDPPort(core.PFCPPort), LayerTypePFCP)
}

// PFCP is one PFCP message of a datagram. When the message has its FO flag
// set, the bytes after it hold the next message.
type PFCP struct {
	layers.BaseLayer
	Message message.Message
}

func (p *PFCP) String() string {
	return "PFCP"
}

func (p *PFCP) LayerType() gopacket.LayerType {
	return LayerTypePFCP
}

func (p *PFCP) CanDecode() gopacket.LayerClass {
	return LayerTypePFCP
}

func (p *PFCP) NextLayerType() gopacket.LayerType {
	if len(p.Payload) == 0 {
		return gopacket.LayerTypeZero
	}
	if p.Message != nil && p.Message.MessageHeader().FO {
		return LayerTypePFCP
	}
	return gopacket.LayerTypePayload
}

// DecodeFromBytes decodes the message at the start of data.
func (p *PFCP) DecodeFromBytes(data []byte, df gopacket.DecodeFeedback) error {
	m, n, err := message.NewDecoderFromConfig().DecodePrefix(data)
	if err != nil {
		var truncated util.ErrTruncated
		if errors.As(err, &truncated) {
			df.SetTruncated()
		}
		core.LogDebug(p, "Unable to decode message: ", err)
		return err
	}
	p.Message = m
	p.BaseLayer = layers.BaseLayer{Contents: data[:n], Payload: data[n:]}
	return nil
}

// SerializeTo encodes the message in front of whatever b already holds.
func (p *PFCP) SerializeTo(b gopacket.SerializeBuffer, opts gopacket.SerializeOptions) error {
	wire, err := message.Encode(p.Message)
	if err != nil {
		return err
	}
	bytes, err := b.PrependBytes(len(wire))
	if err != nil {
		return err
	}
	copy(bytes, wire)
	return nil
}

func decodePFCP(data []byte, pb gopacket.PacketBuilder) error {
	p := &PFCP{}
	if err := p.DecodeFromBytes(data, pb); err != nil {
		return err
	}
	pb.AddLayer(p)
	next := p.NextLayerType()
	if next == gopacket.LayerTypeZero {
		return nil
	}
	return pb.NextDecoder(next)
}

// Messages returns the PFCP messages of packet in datagram order.
func Messages(packet gopacket.Packet) []message.Message {
	var msgs []message.Message
	for _, l := range packet.Layers() {
		if p, ok := l.(*PFCP); ok {
			msgs = append(msgs, p.Message)
		}
	}
	return msgs
}
