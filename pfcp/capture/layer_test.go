/* YaPFCP - Yet another PFCP codec
 *
 * Copyright (C) 2020-2024 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package capture_test

import (
	"net"
	"testing"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yapfcp/yapfcp/pfcp/capture"
	"github.com/yapfcp/yapfcp/pfcp/message"
)

var recovery = time.Unix(0x01020304-2208988800, 0).UTC()

func frame(t *testing.T, payload ...gopacket.SerializableLayer) []byte {
	t.Helper()
	eth := &layers.Ethernet{
		SrcMAC:       net.HardwareAddr{0x02, 0x00, 0x00, 0x00, 0x00, 0x01},
		DstMAC:       net.HardwareAddr{0x02, 0x00, 0x00, 0x00, 0x00, 0x02},
		EthernetType: layers.EthernetTypeIPv4,
	}
	ip := &layers.IPv4{
		Version:  4,
		TTL:      64,
		Protocol: layers.IPProtocolUDP,
		SrcIP:    net.IP{192, 0, 2, 1},
		DstIP:    net.IP{192, 0, 2, 2},
	}
	udp := &layers.UDP{SrcPort: 8805, DstPort: 8805}
	require.NoError(t, udp.SetNetworkLayerForChecksum(ip))

	buf := gopacket.NewSerializeBuffer()
	all := append([]gopacket.SerializableLayer{eth, ip, udp}, payload...)
	require.NoError(t, gopacket.SerializeLayers(buf, gopacket.SerializeOptions{FixLengths: true, ComputeChecksums: true}, all...))
	return buf.Bytes()
}

func heartbeat(t *testing.T, seq uint32) *message.HeartbeatRequest {
	t.Helper()
	m, err := message.NewHeartbeatRequestBuilder(seq).RecoveryTimeStamp(recovery).Build()
	require.NoError(t, err)
	return m
}

func TestLayerRegistered(t *testing.T) {
	assert.Equal(t, "PFCP", capture.LayerTypePFCP.String())
	assert.Equal(t, capture.LayerTypePFCP, layers.UDPPort(8805).LayerType())
}

func TestDecodeFromUDP(t *testing.T) {
	wire := frame(t, &capture.PFCP{Message: heartbeat(t, 9)})

	packet := gopacket.NewPacket(wire, layers.LayerTypeEthernet, gopacket.Default)
	require.Nil(t, packet.ErrorLayer())
	l := packet.Layer(capture.LayerTypePFCP)
	require.NotNil(t, l)
	p := l.(*capture.PFCP)
	assert.Equal(t, message.TypeHeartbeatRequest, p.Message.MessageType())
	assert.Equal(t, uint32(9), p.Message.MessageHeader().SequenceNumber)
	assert.Len(t, p.LayerContents(), 16)
	assert.Empty(t, p.LayerPayload())
}

func TestDecodeFollowOn(t *testing.T) {
	first := heartbeat(t, 1)
	first.Header.FO = true
	wire := frame(t, &capture.PFCP{Message: first}, &capture.PFCP{Message: heartbeat(t, 2)})

	packet := gopacket.NewPacket(wire, layers.LayerTypeEthernet, gopacket.Default)
	require.Nil(t, packet.ErrorLayer())
	msgs := capture.Messages(packet)
	require.Len(t, msgs, 2)
	assert.Equal(t, uint32(1), msgs[0].MessageHeader().SequenceNumber)
	assert.True(t, msgs[0].MessageHeader().FO)
	assert.Equal(t, uint32(2), msgs[1].MessageHeader().SequenceNumber)
}

func TestDecodeWithoutFollowOn(t *testing.T) {
	// The second message is not announced, so it stays an opaque payload.
	wire := frame(t, &capture.PFCP{Message: heartbeat(t, 1)}, &capture.PFCP{Message: heartbeat(t, 2)})

	packet := gopacket.NewPacket(wire, layers.LayerTypeEthernet, gopacket.Default)
	require.Nil(t, packet.ErrorLayer())
	assert.Len(t, capture.Messages(packet), 1)
	assert.NotNil(t, packet.Layer(gopacket.LayerTypePayload))
}

func TestDecodeFailure(t *testing.T) {
	wire := frame(t, gopacket.Payload{0x20, 0x01, 0x00, 0x0C, 0x00})

	packet := gopacket.NewPacket(wire, layers.LayerTypeEthernet, gopacket.Default)
	require.NotNil(t, packet.ErrorLayer())
	assert.Empty(t, capture.Messages(packet))
	assert.True(t, packet.Metadata().Truncated)
}

func TestDecodingLayerParser(t *testing.T) {
	wire := frame(t, &capture.PFCP{Message: heartbeat(t, 4)})

	var (
		eth  layers.Ethernet
		ip   layers.IPv4
		udp  layers.UDP
		pfcp capture.PFCP
	)
	parser := gopacket.NewDecodingLayerParser(layers.LayerTypeEthernet, &eth, &ip, &udp, &pfcp)
	decoded := []gopacket.LayerType{}
	require.NoError(t, parser.DecodeLayers(wire, &decoded))
	assert.Equal(t, []gopacket.LayerType{layers.LayerTypeEthernet, layers.LayerTypeIPv4, layers.LayerTypeUDP, capture.LayerTypePFCP}, decoded)
	assert.Equal(t, uint32(4), pfcp.Message.MessageHeader().SequenceNumber)
}
