/* YaPFCP - Yet another PFCP codec
 *
 * Copyright (C) 2020-2024 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package message_test

import (
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yapfcp/yapfcp/pfcp/ie"
	"github.com/yapfcp/yapfcp/pfcp/message"
	"github.com/yapfcp/yapfcp/pfcp/util"
)

// 0x01020304 seconds after the NTP epoch.
var recovery = time.Unix(0x01020304-2208988800, 0).UTC()

var heartbeatWire = []byte{
	0x20, 0x01, 0x00, 0x0C, 0x00, 0x00, 0x07, 0x00,
	0x00, 0x60, 0x00, 0x04, 0x01, 0x02, 0x03, 0x04,
}

func establishment(t *testing.T) *message.SessionEstablishmentRequest {
	t.Helper()
	pdi, err := ie.NewPDIBuilder().
		SourceInterface(ie.InterfaceAccess).
		LocalFTEID(ie.FTEID{TEID: 0x100, IPv4: net.IP{192, 0, 2, 10}}).
		Build()
	require.NoError(t, err)
	pdr, err := ie.NewCreatePDRBuilder(1).Precedence(100).PDI(pdi).FARID(1).Build()
	require.NoError(t, err)
	fwd, err := ie.NewForwardingParametersBuilder().DestinationInterface(ie.InterfaceCore).Build()
	require.NoError(t, err)
	far, err := ie.NewCreateFARBuilder(1).ApplyAction(ie.ApplyActionFORW).ForwardingParameters(fwd).Build()
	require.NoError(t, err)

	m, err := message.NewSessionEstablishmentRequestBuilder(0, 3).
		NodeID(ie.NodeIDFromIP(net.IP{192, 0, 2, 1})).
		CPFSEID(ie.FSEID{SEID: 0x1122334455667788, IPv4: net.IP{192, 0, 2, 1}}).
		CreatePDR(pdr).
		CreateFAR(far).
		Build()
	require.NoError(t, err)
	return m
}

func TestHeartbeatRequestEncode(t *testing.T) {
	m, err := message.NewHeartbeatRequestBuilder(7).RecoveryTimeStamp(recovery).Build()
	require.NoError(t, err)

	wire, err := message.Encode(m)
	require.NoError(t, err)
	assert.Equal(t, heartbeatWire, wire)
}

func TestHeartbeatRequestDecode(t *testing.T) {
	m, err := message.Decode(heartbeatWire)
	require.NoError(t, err)
	req, ok := m.(*message.HeartbeatRequest)
	require.True(t, ok, "decoded %T", m)
	assert.Equal(t, uint32(7), req.Header.SequenceNumber)
	assert.Nil(t, req.SourceIPAddress)

	ts, err := req.RecoveryTimeStamp.RecoveryTimeStamp()
	require.NoError(t, err)
	assert.Equal(t, recovery, ts)

	again, err := message.Encode(m)
	require.NoError(t, err)
	assert.Equal(t, heartbeatWire, again)
}

func TestDecodeMissingMandatory(t *testing.T) {
	_, err := message.Decode([]byte{0x20, 0x01, 0x00, 0x04, 0x00, 0x00, 0x01, 0x00})
	assert.Equal(t, util.ErrMissingMandatoryIE{IEType: uint16(ie.TypeRecoveryTimeStamp), MessageType: uint8(message.TypeHeartbeatRequest)}, err)
	assert.Equal(t, util.CauseMandatoryIEMissing, util.StatusCode(err))

	// Generic carries any IE set, so it can produce a session message missing its F-SEID.
	seid := uint64(1)
	g := message.NewGeneric(message.TypeSessionEstablishmentRequest, 1, &seid, ie.NodeIDFromIP(net.IP{192, 0, 2, 1}).IE())
	wire, err := message.Encode(g)
	require.NoError(t, err)
	_, err = message.Decode(wire)
	assert.Equal(t, util.ErrMissingMandatoryIE{IEType: uint16(ie.TypeFSEID), MessageType: uint8(message.TypeSessionEstablishmentRequest)}, err)
}

func TestDecodeLengthMismatch(t *testing.T) {
	short := append([]byte{}, heartbeatWire[:len(heartbeatWire)-1]...)
	_, err := message.Decode(short)
	var truncated util.ErrTruncated
	require.True(t, errors.As(err, &truncated), "%v", err)
	assert.Equal(t, 16, truncated.Expected)
	assert.Equal(t, 15, truncated.Actual)

	long := append(append([]byte{}, heartbeatWire...), 0x00)
	_, err = message.Decode(long)
	assert.Equal(t, util.KindHeaderInvalid, mustKind(t, err))
}

func TestDecodeEveryPrefix(t *testing.T) {
	wire, err := message.Encode(establishment(t))
	require.NoError(t, err)
	for n := 0; n < len(wire); n++ {
		_, err := message.Decode(wire[:n])
		assert.Equal(t, util.KindTruncated, mustKind(t, err), "prefix of %d bytes", n)
	}
}

func TestDecodeDuplicateIE(t *testing.T) {
	wire := []byte{
		0x20, 0x01, 0x00, 0x14, 0x00, 0x00, 0x01, 0x00,
		0x00, 0x60, 0x00, 0x04, 0x01, 0x02, 0x03, 0x04,
		0x00, 0x60, 0x00, 0x04, 0x01, 0x02, 0x03, 0x05,
	}
	_, err := message.Decode(wire)
	assert.ErrorIs(t, err, util.ErrDuplicate)
	var payload util.ErrInvalidIEPayload
	require.True(t, errors.As(err, &payload))
	assert.Equal(t, uint16(ie.TypeRecoveryTimeStamp), payload.IEType)
}

func TestUnexpectedIEKept(t *testing.T) {
	wire := []byte{
		0x20, 0x01, 0x00, 0x12, 0x00, 0x00, 0x07, 0x00,
		0x07, 0xD0, 0x00, 0x02, 0xAB, 0xCD,
		0x00, 0x60, 0x00, 0x04, 0x01, 0x02, 0x03, 0x04,
	}
	m, err := message.Decode(wire)
	require.NoError(t, err)

	require.Len(t, m.ExtraIEs(), 1)
	assert.Equal(t, ie.Type(2000), m.ExtraIEs()[0].Type)
	all := message.AllIEs(m)
	require.Len(t, all, 2)
	assert.Equal(t, ie.Type(2000), all[0].Type)
	assert.Equal(t, ie.TypeRecoveryTimeStamp, all[1].Type)
	assert.Len(t, message.IEs(m, ie.Type(2000)), 1)

	// Encoding puts the known slots first.
	again, err := message.Encode(m)
	require.NoError(t, err)
	assert.Equal(t, []byte{
		0x20, 0x01, 0x00, 0x12, 0x00, 0x00, 0x07, 0x00,
		0x00, 0x60, 0x00, 0x04, 0x01, 0x02, 0x03, 0x04,
		0x07, 0xD0, 0x00, 0x02, 0xAB, 0xCD,
	}, again)
}

func TestAllIEsFollowsEdits(t *testing.T) {
	wire := []byte{
		0x20, 0x01, 0x00, 0x12, 0x00, 0x00, 0x07, 0x00,
		0x07, 0xD0, 0x00, 0x02, 0xAB, 0xCD,
		0x00, 0x60, 0x00, 0x04, 0x01, 0x02, 0x03, 0x04,
	}
	m, err := message.Decode(wire)
	require.NoError(t, err)
	hb, ok := m.(*message.HeartbeatRequest)
	require.True(t, ok)

	src, err := ie.NewIPAddressIE(ie.TypeSourceIPAddress, ie.IPAddress{IPv4: net.IP{192, 0, 2, 9}})
	require.NoError(t, err)
	hb.SourceIPAddress = src

	all := message.AllIEs(m)
	require.Len(t, all, 3)
	assert.Equal(t, ie.TypeRecoveryTimeStamp, all[0].Type)
	assert.Same(t, src, all[1])
	assert.Equal(t, ie.Type(2000), all[2].Type)

	// Replacing a slot also drops the received order.
	m, err = message.Decode(wire)
	require.NoError(t, err)
	m.(*message.HeartbeatRequest).RecoveryTimeStamp = ie.NewRecoveryTimeStamp(recovery.Add(time.Second))
	all = message.AllIEs(m)
	require.Len(t, all, 2)
	assert.Equal(t, ie.TypeRecoveryTimeStamp, all[0].Type)
	ts, err := all[0].RecoveryTimeStamp()
	require.NoError(t, err)
	assert.Equal(t, recovery.Add(time.Second), ts)
}

func TestSEIDConsistency(t *testing.T) {
	_, err := message.Decode([]byte{0x20, 0x32, 0x00, 0x04, 0x00, 0x00, 0x01, 0x00})
	assert.Equal(t, util.KindHeaderInvalid, mustKind(t, err))

	withSEID := []byte{
		0x21, 0x01, 0x00, 0x14,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01,
		0x00, 0x00, 0x01, 0x00,
		0x00, 0x60, 0x00, 0x04, 0x01, 0x02, 0x03, 0x04,
	}
	_, err = message.Decode(withSEID)
	assert.Equal(t, util.KindHeaderInvalid, mustKind(t, err))

	hb, err := message.NewHeartbeatResponseBuilder(1).RecoveryTimeStamp(recovery).Build()
	require.NoError(t, err)
	seid := uint64(9)
	hb.Header.SEID = &seid
	_, err = message.Encode(hb)
	assert.Equal(t, util.KindEncoding, mustKind(t, err))

	// Version Not Supported Response may come either way.
	vns, err := message.NewVersionNotSupportedResponseBuilder(4).SEID(9).Build()
	require.NoError(t, err)
	wire, err := message.Encode(vns)
	require.NoError(t, err)
	back, err := message.Decode(wire)
	require.NoError(t, err)
	require.NotNil(t, back.MessageHeader().SEID)
	assert.Equal(t, seid, *back.MessageHeader().SEID)
}

func TestSessionEstablishmentRoundTrip(t *testing.T) {
	m := establishment(t)
	wire, err := message.Encode(m)
	require.NoError(t, err)
	assert.Equal(t, byte(0x21), wire[0])
	assert.Equal(t, byte(0x32), wire[1])

	back, err := message.Decode(wire)
	require.NoError(t, err)
	req, ok := back.(*message.SessionEstablishmentRequest)
	require.True(t, ok, "decoded %T", back)
	require.NotNil(t, req.Header.SEID)
	assert.Equal(t, uint64(0), *req.Header.SEID)
	assert.Equal(t, uint32(3), req.Header.SequenceNumber)
	require.Len(t, req.CreatePDRs, 1)
	require.Len(t, req.CreateFARs, 1)

	pdr, err := req.CreatePDRs[0].CreatePDR()
	require.NoError(t, err)
	assert.Equal(t, uint16(1), pdr.PDRID)
	fseid, err := req.CPFSEID.FSEID()
	require.NoError(t, err)
	assert.Equal(t, uint64(0x1122334455667788), fseid.SEID)

	again, err := message.Encode(back)
	require.NoError(t, err)
	assert.Equal(t, wire, again)
}

func TestEncodeLeavesMessageAlone(t *testing.T) {
	m := establishment(t)
	before := message.AllIEs(m)
	_, err := message.Encode(m)
	require.NoError(t, err)
	assert.Equal(t, before, message.AllIEs(m))
	assert.Equal(t, uint16(0), m.Header.Length)
}

func TestUnknownMessageType(t *testing.T) {
	wire := []byte{
		0x20, 0xC8, 0x00, 0x0A, 0x00, 0x00, 0x05, 0x00,
		0x07, 0xD0, 0x00, 0x02, 0xAB, 0xCD,
	}
	m, err := message.Decode(wire)
	require.NoError(t, err)
	g, ok := m.(*message.Generic)
	require.True(t, ok, "decoded %T", m)
	assert.Equal(t, message.Type(200), g.MessageType())
	assert.Len(t, g.ExtraIEs(), 1)

	again, err := message.Encode(g)
	require.NoError(t, err)
	assert.Equal(t, wire, again)

	strict := &message.Decoder{RejectUnknownMessages: true}
	_, err = strict.Decode(wire)
	assert.Equal(t, util.ErrUnknownMessageType{MessageType: 200}, err)
	assert.Equal(t, util.CauseServiceNotSupported, util.StatusCode(err))
}

func TestDecodeAllFollowsFO(t *testing.T) {
	first, err := message.NewHeartbeatResponseBuilder(1).RecoveryTimeStamp(recovery).Build()
	require.NoError(t, err)
	first.Header.FO = true
	second, err := message.NewHeartbeatResponseBuilder(2).RecoveryTimeStamp(recovery).Build()
	require.NoError(t, err)

	a, err := message.Encode(first)
	require.NoError(t, err)
	assert.Equal(t, byte(0x24), a[0])
	b, err := message.Encode(second)
	require.NoError(t, err)

	msgs, err := message.DecodeAll(append(a, b...))
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, uint32(1), msgs[0].MessageHeader().SequenceNumber)
	assert.Equal(t, uint32(2), msgs[1].MessageHeader().SequenceNumber)

	// Without FO the second message is trailing garbage.
	_, err = message.DecodeAll(append(b, a...))
	assert.Equal(t, util.KindHeaderInvalid, mustKind(t, err))

	m, n, err := message.NewDecoderFromConfig().DecodePrefix(append(b, a...))
	require.NoError(t, err)
	assert.Equal(t, len(b), n)
	assert.Equal(t, message.TypeHeartbeatResponse, m.MessageType())
}

func TestDecoderDepthLimit(t *testing.T) {
	wire, err := message.Encode(establishment(t))
	require.NoError(t, err)

	shallow := &message.Decoder{MaxDepth: 1}
	_, err = shallow.Decode(wire)
	var tooDeep util.ErrNestingTooDeep
	require.True(t, errors.As(err, &tooDeep), "%v", err)
	assert.Equal(t, 1, tooDeep.Limit)

	_, err = (&message.Decoder{}).Decode(wire)
	assert.NoError(t, err)
}

func TestFingerprint(t *testing.T) {
	a, err := message.NewHeartbeatRequestBuilder(1).RecoveryTimeStamp(recovery).Build()
	require.NoError(t, err)
	b, err := message.NewHeartbeatRequestBuilder(2).RecoveryTimeStamp(recovery).Build()
	require.NoError(t, err)
	c, err := message.NewHeartbeatRequestBuilder(1).RecoveryTimeStamp(recovery.Add(time.Second)).Build()
	require.NoError(t, err)

	fa, err := message.Fingerprint(a)
	require.NoError(t, err)
	fb, err := message.Fingerprint(b)
	require.NoError(t, err)
	fc, err := message.Fingerprint(c)
	require.NoError(t, err)
	assert.Equal(t, fa, fb)
	assert.NotEqual(t, fa, fc)

	// The SEID is part of the identity of a session message.
	x, err := message.NewSessionDeletionRequestBuilder(1, 1).Build()
	require.NoError(t, err)
	y, err := message.NewSessionDeletionRequestBuilder(2, 1).Build()
	require.NoError(t, err)
	fx, err := message.Fingerprint(x)
	require.NoError(t, err)
	fy, err := message.Fingerprint(y)
	require.NoError(t, err)
	assert.NotEqual(t, fx, fy)
}
