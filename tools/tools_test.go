/* YaPFCP - Yet another PFCP codec
 *
 * Copyright (C) 2020-2024 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tools

import (
	"bytes"
	"encoding/hex"
	"net"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yapfcp/yapfcp/pfcp/capture"
	"github.com/yapfcp/yapfcp/pfcp/ie"
	"github.com/yapfcp/yapfcp/pfcp/message"
)

var recovery = time.Unix(0x01020304-2208988800, 0).UTC()

func TestHeartbeatBuild(t *testing.T) {
	h := &Heartbeat{seq: 7, priority: -1}
	wire, err := h.build(recovery)
	require.NoError(t, err)
	assert.Equal(t, "2001000c0000070000600004" + "01020304", hex.EncodeToString(wire))

	h = &Heartbeat{seq: 7, priority: 2, source: "192.0.2.1"}
	wire, err = h.build(recovery)
	require.NoError(t, err)
	m, err := message.Decode(wire)
	require.NoError(t, err)
	req := m.(*message.HeartbeatRequest)
	require.NotNil(t, req.SourceIPAddress)
	require.NotNil(t, req.Header.Priority)
	assert.Equal(t, uint8(2), *req.Header.Priority)

	_, err = (&Heartbeat{seq: 1, priority: 16}).build(recovery)
	assert.Error(t, err)
	_, err = (&Heartbeat{seq: 1, priority: -1, source: "nowhere"}).build(recovery)
	assert.Error(t, err)

	wire, err = (&Heartbeat{seq: 1, priority: -1, response: true}).build(recovery)
	require.NoError(t, err)
	assert.Equal(t, byte(message.TypeHeartbeatResponse), wire[1])
}

func TestDecodeDump(t *testing.T) {
	var out bytes.Buffer
	d := &Decode{fingerprint: true}
	require.NoError(t, d.decode(&out, "0x20 01 00 0c 00 00 07 00 00 60 00 04 01 02 03 04"))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "HeartbeatRequest seq=7 len=12", lines[0])
	assert.Equal(t, "  RecoveryTimeStamp{len=4} 01020304", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "  fingerprint "))
}

func TestDecodeDumpGrouped(t *testing.T) {
	pdr, err := ie.NewCreatePDRBuilder(1).Precedence(1).PDI(ie.PDI{SourceInterface: ie.InterfaceCore}).Build()
	require.NoError(t, err)
	far, err := ie.NewCreateFARBuilder(1).ApplyAction(ie.ApplyActionDROP).Build()
	require.NoError(t, err)
	m, err := message.NewSessionEstablishmentRequestBuilder(1, 2).
		NodeID(ie.NodeIDFromIP(net.IP{192, 0, 2, 1})).
		CPFSEID(ie.FSEID{SEID: 1, IPv4: net.IP{192, 0, 2, 1}}).
		CreatePDR(pdr).
		CreateFAR(far).
		Build()
	require.NoError(t, err)
	wire, err := message.Encode(m)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, (&Decode{}).decode(&out, hex.EncodeToString(wire)))
	dump := out.String()
	assert.Contains(t, dump, "\n  CreatePDR{")
	assert.Contains(t, dump, "\n    PDRID{len=2} 0001\n")
	assert.Contains(t, dump, "\n      SourceInterface{len=1} 01\n")
}

func TestDecodeFrames(t *testing.T) {
	m, err := message.NewHeartbeatRequestBuilder(9).RecoveryTimeStamp(recovery).Build()
	require.NoError(t, err)
	ip := &layers.IPv4{Version: 4, TTL: 64, Protocol: layers.IPProtocolUDP, SrcIP: net.IP{192, 0, 2, 1}, DstIP: net.IP{192, 0, 2, 2}}
	udp := &layers.UDP{SrcPort: 8805, DstPort: 8805}
	require.NoError(t, udp.SetNetworkLayerForChecksum(ip))
	buf := gopacket.NewSerializeBuffer()
	require.NoError(t, gopacket.SerializeLayers(buf, gopacket.SerializeOptions{FixLengths: true, ComputeChecksums: true},
		&layers.Ethernet{
			SrcMAC:       net.HardwareAddr{0x02, 0, 0, 0, 0, 1},
			DstMAC:       net.HardwareAddr{0x02, 0, 0, 0, 0, 2},
			EthernetType: layers.EthernetTypeIPv4,
		},
		ip, udp, &capture.PFCP{Message: m}))

	var out bytes.Buffer
	require.NoError(t, (&Decode{frames: true}).decode(&out, hex.EncodeToString(buf.Bytes())))
	assert.Equal(t, "HeartbeatRequest seq=9 len=12\n  RecoveryTimeStamp{len=4} 01020304\n", out.String())
}

func TestDecodeErrors(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, (&Decode{}).decode(&out, "zz"))
	assert.Error(t, (&Decode{}).decode(&out, "200100"))
	assert.Error(t, (&Decode{frames: true}).decode(&out, "00"))
	assert.Empty(t, out.String())
}

func TestProfiler(t *testing.T) {
	dir := t.TempDir()
	p := &Profiler{CPUProfile: filepath.Join(dir, "cpu.prof"), MemProfile: filepath.Join(dir, "mem.prof")}
	require.NoError(t, p.Start())
	require.NoError(t, p.Stop())
	assert.FileExists(t, p.CPUProfile)
	assert.FileExists(t, p.MemProfile)

	idle := &Profiler{}
	assert.NoError(t, idle.Start())
	assert.NoError(t, idle.Stop())
}
