/* YaPFCP - Yet another PFCP codec
 *
 * Copyright (C) 2020-2024 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ie_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yapfcp/yapfcp/pfcp/ie"
	"github.com/yapfcp/yapfcp/pfcp/util"
)

func TestDecodeFixedWidth(t *testing.T) {
	b := []byte{0x00, 0x38, 0x00, 0x02, 0x00, 0x07, 0xAA}
	i, n, err := ie.Decode(b)
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	assert.Equal(t, ie.TypePDRID, i.Type)
	assert.Equal(t, []byte{0x00, 0x07}, i.Payload)

	id, err := i.PDRID()
	require.NoError(t, err)
	assert.Equal(t, uint16(7), id)

	// Payload is owned by the IE.
	b[5] = 0xFF
	assert.Equal(t, []byte{0x00, 0x07}, i.Payload)
}

func TestEncodeFixedWidth(t *testing.T) {
	wire, err := ie.NewFARID(0x01020304).Marshal()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x6C, 0x00, 0x04, 0x01, 0x02, 0x03, 0x04}, wire)
	assert.Equal(t, len(wire), ie.NewFARID(0x01020304).MarshalLen())
}

func TestDecodeEveryPrefixFails(t *testing.T) {
	create, err := ie.NewCreatePDRBuilder(1).
		Precedence(100).
		PDI(ie.PDI{SourceInterface: ie.InterfaceAccess}).
		FARID(1).
		Build()
	require.NoError(t, err)
	wire, err := encoded(t)(create.IE()).Marshal()
	require.NoError(t, err)

	for n := 0; n < len(wire); n++ {
		_, err := ie.ParseMultiIEs(wire[:n])
		if n == 0 {
			assert.NoError(t, err)
			continue
		}
		assert.Error(t, err, "prefix %d", n)
		kind, ok := util.KindOf(err)
		assert.True(t, ok, "prefix %d: %v", n, err)
		assert.Contains(t, []util.Kind{util.KindTruncated, util.KindZeroLengthNotAllowed}, kind, "prefix %d", n)
	}
	_, err = ie.ParseMultiIEs(wire)
	assert.NoError(t, err)
}

func TestDecodeShortHeader(t *testing.T) {
	_, _, err := ie.Decode([]byte{0x00, 0x13, 0x00})
	var truncated util.ErrTruncated
	require.True(t, errors.As(err, &truncated))
	assert.Equal(t, 4, truncated.Expected)
	assert.Equal(t, 3, truncated.Actual)
	assert.Equal(t, util.CauseInvalidLength, util.StatusCode(err))
}

func TestDecodeLengthPastBuffer(t *testing.T) {
	_, _, err := ie.Decode([]byte{0x00, 0x13, 0x00, 0x05, 0x01})
	var truncated util.ErrTruncated
	require.True(t, errors.As(err, &truncated))
	assert.Equal(t, uint16(ie.TypeCause), truncated.IEType)
	assert.Equal(t, 9, truncated.Expected)
}

func TestZeroLengthPolicy(t *testing.T) {
	for _, allowed := range []ie.Type{
		ie.TypeNetworkInstance,
		ie.TypeForwardingPolicy,
		ie.TypeAPNDNN,
		ie.TypeClockDriftControlInformation,
		ie.TypeGTPUPathQoSControlInformation,
	} {
		wire := []byte{byte(allowed >> 8), byte(allowed), 0x00, 0x00}
		i, n, err := ie.Decode(wire)
		require.NoError(t, err, allowed.String())
		assert.Equal(t, 4, n)
		assert.Empty(t, i.Payload)

		out, err := i.Marshal()
		require.NoError(t, err)
		assert.Equal(t, wire, out)
	}

	_, _, err := ie.Decode([]byte{0x00, 0x13, 0x00, 0x00})
	assert.Equal(t, util.ErrZeroLengthNotAllowed{IEType: uint16(ie.TypeCause)}, err)

	_, err = ie.New(ie.TypeCause, nil).Marshal()
	assert.Equal(t, util.ErrZeroLengthNotAllowed{IEType: uint16(ie.TypeCause)}, err)
}

func TestEmptyNetworkInstance(t *testing.T) {
	i := ie.NewNetworkInstance("")
	wire, err := i.Marshal()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x16, 0x00, 0x00}, wire)

	name, err := i.NetworkInstance()
	require.NoError(t, err)
	assert.Equal(t, "", name)
}

func TestVendorSpecificRoundTrip(t *testing.T) {
	v, err := ie.NewVendorSpecific(0x8001, 10415, []byte{0xDE, 0xAD})
	require.NoError(t, err)
	assert.True(t, v.IsVendorSpecific())
	assert.Equal(t, "Vendor(1)", v.Type.String())

	wire, err := v.Marshal()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x80, 0x01, 0x00, 0x06, 0x00, 0x00, 0x28, 0xAF, 0xDE, 0xAD}, wire)

	back, n, err := ie.Decode(wire)
	require.NoError(t, err)
	assert.Equal(t, len(wire), n)
	assert.Equal(t, v, back)
}

func TestVendorSpecificTruncated(t *testing.T) {
	// Declared length too small to hold the enterprise ID.
	_, _, err := ie.Decode([]byte{0x80, 0x01, 0x00, 0x02, 0x00, 0x00})
	var eh util.ErrEnterpriseHeaderTruncated
	require.True(t, errors.As(err, &eh))
	assert.Equal(t, 2, eh.Actual)

	// Buffer ends inside the enterprise ID.
	_, _, err = ie.Decode([]byte{0x80, 0x01, 0x00, 0x06, 0x00, 0x00})
	require.True(t, errors.As(err, &eh))
	assert.Equal(t, util.CauseInvalidLength, util.StatusCode(err))
}

func TestEnterpriseIDOnStandardType(t *testing.T) {
	_, err := ie.NewVendorSpecific(ie.TypeCause, 10415, []byte{1})
	assert.Equal(t, util.KindEncoding, mustKind(t, err))

	i := &ie.IE{Type: ie.TypeCause, EnterpriseID: 5, Payload: []byte{1}}
	_, err = i.Marshal()
	assert.Equal(t, util.KindEncoding, mustKind(t, err))
}

func TestPayloadTooLong(t *testing.T) {
	i := ie.New(ie.TypeApplicationID, make([]byte, ie.MaxPayloadLen+1))
	_, err := i.Marshal()
	assert.Equal(t, util.KindEncoding, mustKind(t, err))
}

func TestUnknownTypePreserved(t *testing.T) {
	wire := []byte{0x07, 0xD0, 0x00, 0x03, 0x01, 0x02, 0x03}
	i, err := ie.Parse(wire)
	require.NoError(t, err)
	assert.False(t, i.Type.IsKnown())
	assert.Equal(t, "Unknown(2000)", i.Type.String())

	out, err := i.Marshal()
	require.NoError(t, err)
	assert.Equal(t, wire, out)
}

func TestTypeNames(t *testing.T) {
	assert.Equal(t, "CreatePDR", ie.TypeCreatePDR.String())
	assert.Equal(t, "RecoveryTimeStamp", ie.TypeRecoveryTimeStamp.String())
	assert.True(t, ie.TypeCreatePDR.IsGrouped())
	assert.False(t, ie.TypeCause.IsGrouped())
	assert.Equal(t, "CreatePDR", util.IETypeName(uint16(ie.TypeCreatePDR)))
}

func TestGenericAccessors(t *testing.T) {
	i := ie.New(ie.TypeSequenceNumber, []byte{0, 0, 1, 0})
	v8, err := i.ValueAsUint8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0), v8)
	v32, err := i.ValueAsUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(256), v32)

	_, err = i.ValueAsUint64()
	assert.True(t, errors.Is(err, util.ErrTooShort))

	var missing *ie.IE
	_, err = missing.ValueAsString()
	assert.ErrorIs(t, err, util.ErrNonExistent)
}

func TestWrongTypeAccessor(t *testing.T) {
	_, err := ie.NewPDRID(1).FARID()
	assert.ErrorIs(t, err, util.ErrWrongType)
	assert.Equal(t, util.CauseMandatoryIEIncorrect, util.StatusCode(err))
}

func mustKind(t *testing.T, err error) util.Kind {
	t.Helper()
	require.Error(t, err)
	kind, ok := util.KindOf(err)
	require.True(t, ok, "%v", err)
	return kind
}
