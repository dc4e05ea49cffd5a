/* YaPFCP - Yet another PFCP codec
 *
 * Copyright (C) 2020-2024 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package message_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yapfcp/yapfcp/pfcp/message"
	"github.com/yapfcp/yapfcp/pfcp/util"
)

func mustKind(t *testing.T, err error) util.Kind {
	t.Helper()
	require.Error(t, err)
	kind, ok := util.KindOf(err)
	require.True(t, ok, "foreign error %v", err)
	return kind
}

func TestHeartbeatHeader(t *testing.T) {
	h := message.Header{Type: message.TypeHeartbeatRequest, Length: 4, SequenceNumber: 1}
	wire, err := h.Marshal()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x20, 0x01, 0x00, 0x04, 0x00, 0x00, 0x01, 0x00}, wire)

	back, n, err := message.DecodeHeader(wire)
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.Equal(t, uint32(1), back.SequenceNumber)
	assert.Nil(t, back.SEID)
	assert.Nil(t, back.Priority)
	assert.Equal(t, message.TypeHeartbeatRequest, back.Type)
	assert.Equal(t, message.Version, back.Version)
}

func TestHeaderSEIDAndPriority(t *testing.T) {
	seid := uint64(0x0102030405060708)
	priority := uint8(3)
	h := message.Header{
		Type:           message.TypeSessionEstablishmentRequest,
		Length:         12,
		SEID:           &seid,
		SequenceNumber: 0x123456,
		Priority:       &priority,
		FO:             true,
	}
	wire, err := h.Marshal()
	require.NoError(t, err)
	assert.Equal(t, []byte{
		0x27, 0x32, 0x00, 0x0C,
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
		0x12, 0x34, 0x56, 0x30,
	}, wire)

	back, n, err := message.DecodeHeader(wire)
	require.NoError(t, err)
	assert.Equal(t, 16, n)
	require.NotNil(t, back.SEID)
	assert.Equal(t, seid, *back.SEID)
	require.NotNil(t, back.Priority)
	assert.Equal(t, priority, *back.Priority)
	assert.True(t, back.FO)
	assert.Equal(t, uint32(0x123456), back.SequenceNumber)
}

func TestHeaderZeroSEID(t *testing.T) {
	seid := uint64(0)
	h := message.Header{Type: message.TypeSessionEstablishmentRequest, Length: 12, SEID: &seid}
	wire, err := h.Marshal()
	require.NoError(t, err)
	assert.Equal(t, byte(0x21), wire[0])

	back, _, err := message.DecodeHeader(wire)
	require.NoError(t, err)
	require.NotNil(t, back.SEID)
	assert.Equal(t, uint64(0), *back.SEID)
}

func TestHeaderFlagsFollowFields(t *testing.T) {
	// The first octet always carries version 1, whatever Version holds.
	h := message.Header{Version: 7, Type: message.TypeHeartbeatResponse, Length: 4}
	wire, err := h.Marshal()
	require.NoError(t, err)
	assert.Equal(t, byte(0x20), wire[0])
}

func TestDecodeHeaderErrors(t *testing.T) {
	_, _, err := message.DecodeHeader([]byte{0x20, 0x01, 0x00})
	assert.Equal(t, util.KindTruncated, mustKind(t, err))

	_, _, err = message.DecodeHeader([]byte{0x40, 0x01, 0x00, 0x04, 0x00, 0x00, 0x01, 0x00})
	assert.Equal(t, util.KindHeaderInvalid, mustKind(t, err))

	_, _, err = message.DecodeHeader([]byte{0x21, 0x32, 0x00, 0x0C, 0x00, 0x00, 0x00, 0x00})
	var truncated util.ErrTruncated
	require.True(t, errors.As(err, &truncated))
	assert.Equal(t, 16, truncated.Expected)
	assert.Equal(t, 8, truncated.Actual)

	_, _, err = message.DecodeHeader([]byte{0x20, 0x01, 0x00, 0x02, 0x00, 0x00, 0x01, 0x00})
	assert.Equal(t, util.KindHeaderInvalid, mustKind(t, err))
}

func TestHeaderEncodeLimits(t *testing.T) {
	h := message.Header{Type: message.TypeHeartbeatRequest, SequenceNumber: message.MaxSequenceNumber + 1}
	_, err := h.Marshal()
	assert.Equal(t, util.KindEncoding, mustKind(t, err))

	priority := uint8(16)
	h = message.Header{Type: message.TypeHeartbeatRequest, Priority: &priority}
	_, err = h.Marshal()
	assert.Equal(t, util.KindEncoding, mustKind(t, err))

	h = message.Header{Type: message.TypeHeartbeatRequest, SequenceNumber: message.MaxSequenceNumber}
	wire, err := h.Marshal()
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0x00}, wire[4:8])
}

func TestMessageTypeNames(t *testing.T) {
	assert.Equal(t, "SessionReportResponse", message.TypeSessionReportResponse.String())
	assert.Equal(t, "Unknown(99)", message.Type(99).String())
	assert.Equal(t, "HeartbeatRequest", util.MessageTypeName(1))
	assert.True(t, message.TypeSessionDeletionRequest.IsSessionMessage())
	assert.False(t, message.TypeNodeReportRequest.IsSessionMessage())
	assert.True(t, message.TypeVersionNotSupportedResponse.IsKnown())
	assert.False(t, message.Type(18).IsKnown())
}
