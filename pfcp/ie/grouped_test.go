/* YaPFCP - Yet another PFCP codec
 *
 * Copyright (C) 2020-2024 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ie_test

import (
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yapfcp/yapfcp/pfcp/ie"
	"github.com/yapfcp/yapfcp/pfcp/util"
)

// nest wraps a PDR ID in levels grouped IEs.
func nest(levels int) *ie.IE {
	inner := ie.NewPDRID(1)
	for n := 0; n < levels; n++ {
		inner = ie.NewGrouped(ie.TypeCreatePDR, inner)
	}
	return inner
}

func TestGroupedRoundTrip(t *testing.T) {
	fteid := ie.FTEID{TEID: 0x11223344, IPv4: net.IP{10, 0, 0, 1}}
	pdi := ie.PDI{SourceInterface: ie.InterfaceAccess, LocalFTEID: &fteid}
	create := ie.NewGrouped(ie.TypeCreatePDR,
		ie.NewPDRID(7),
		ie.NewPrecedence(255),
		encoded(t)(pdi.IE()),
		ie.NewFARID(3),
	)
	wire, err := create.Marshal()
	require.NoError(t, err)

	parsed, err := ie.Parse(wire)
	require.NoError(t, err)
	assert.Nil(t, parsed.Payload)
	require.Len(t, parsed.ChildIEs, 4)
	assert.Equal(t, ie.TypePDI, parsed.ChildIEs[2].Type)
	require.Len(t, parsed.ChildIEs[2].ChildIEs, 2)
	assert.Equal(t, ie.TypeFTEID, parsed.ChildIEs[2].ChildIEs[1].Type)

	again, err := parsed.Marshal()
	require.NoError(t, err)
	assert.Equal(t, wire, again)
	assert.Equal(t, len(wire), parsed.MarshalLen())
}

func TestGroupedPreservesOrderAndRepeats(t *testing.T) {
	create := ie.NewGrouped(ie.TypeCreatePDR,
		ie.NewURRID(1),
		ie.NewPDRID(7),
		ie.NewURRID(2),
		ie.NewURRID(3),
	)
	wire, err := create.Marshal()
	require.NoError(t, err)

	parsed, err := ie.Parse(wire)
	require.NoError(t, err)
	urrs := parsed.ChildrenOf(ie.TypeURRID)
	require.Len(t, urrs, 3)
	for n, u := range urrs {
		id, err := u.URRID()
		require.NoError(t, err)
		assert.Equal(t, uint32(n+1), id)
	}
	assert.Equal(t, ie.TypeURRID, parsed.ChildIEs[0].Type)
	assert.NotNil(t, parsed.FindChild(ie.TypePDRID))
	assert.Nil(t, parsed.FindChild(ie.TypeFARID))
}

func TestGroupedUnknownChildKept(t *testing.T) {
	unknown := ie.New(ie.Type(1999), []byte{0xAB})
	vendor, err := ie.NewVendorSpecific(0x8010, 18681, []byte{1, 2})
	require.NoError(t, err)
	create := ie.NewGrouped(ie.TypeCreateFAR, ie.NewFARID(1), unknown, vendor, ie.NewApplyAction(ie.ApplyActionDROP))
	wire, err := create.Marshal()
	require.NoError(t, err)

	parsed, err := ie.Parse(wire)
	require.NoError(t, err)
	require.Len(t, parsed.ChildIEs, 4)
	assert.Equal(t, unknown, parsed.ChildIEs[1])
	assert.Equal(t, vendor, parsed.ChildIEs[2])

	again, err := parsed.Marshal()
	require.NoError(t, err)
	assert.Equal(t, wire, again)
}

func TestDepthLimit(t *testing.T) {
	ok, err := nest(ie.DefaultMaxDepth - 1).Marshal()
	require.NoError(t, err)
	_, err = ie.ParseMultiIEs(ok)
	assert.NoError(t, err)

	deep, err := nest(ie.DefaultMaxDepth).Marshal()
	require.NoError(t, err)
	_, err = ie.ParseMultiIEs(deep)
	var tooDeep util.ErrNestingTooDeep
	require.True(t, errors.As(err, &tooDeep), "%v", err)
	assert.Equal(t, ie.DefaultMaxDepth, tooDeep.Limit)
	assert.Equal(t, ie.DefaultMaxDepth+1, tooDeep.Depth)
	assert.Equal(t, util.CauseRequestRejected, util.StatusCode(err))

	// A pathological input is rejected rather than expanded.
	huge, err := nest(10000).Marshal()
	require.NoError(t, err)
	_, err = ie.ParseMultiIEs(huge)
	assert.True(t, errors.As(err, &tooDeep))
}

func TestDepthLimitConfigurable(t *testing.T) {
	wire, err := nest(3).Marshal()
	require.NoError(t, err)

	_, err = ie.ParseMultiIEsWithDepth(wire, 3)
	var tooDeep util.ErrNestingTooDeep
	require.True(t, errors.As(err, &tooDeep))
	assert.Equal(t, 3, tooDeep.Limit)

	ies, err := ie.ParseMultiIEsWithDepth(wire, 4)
	require.NoError(t, err)
	require.Len(t, ies, 1)
}

func TestChildOvershootsParent(t *testing.T) {
	// Create PDR of length 6 holding a PDR ID that claims 4 payload bytes.
	wire := []byte{0x00, 0x01, 0x00, 0x06, 0x00, 0x38, 0x00, 0x04, 0x00, 0x01}
	_, err := ie.ParseMultiIEs(wire)
	var truncated util.ErrTruncated
	require.True(t, errors.As(err, &truncated), "%v", err)
	assert.Equal(t, uint16(ie.TypePDRID), truncated.IEType)
	assert.Equal(t, util.CauseInvalidLength, util.StatusCode(err))
}

func TestChildrenLazyParse(t *testing.T) {
	wire, err := ie.NewGrouped(ie.TypeCreatePDR, ie.NewPDRID(4)).Marshal()
	require.NoError(t, err)

	raw, n, err := ie.Decode(wire)
	require.NoError(t, err)
	assert.Equal(t, len(wire), n)
	assert.Nil(t, raw.ChildIEs)

	children, err := raw.Children()
	require.NoError(t, err)
	require.Len(t, children, 1)
	id, err := children[0].PDRID()
	require.NoError(t, err)
	assert.Equal(t, uint16(4), id)
}

func TestEncodeMultiIEs(t *testing.T) {
	ies := []*ie.IE{ie.NewCause(util.CauseRequestAccepted), ie.NewRecoveryTimeStamp(ntpZero)}
	wire, err := ie.EncodeMultiIEs(ies)
	require.NoError(t, err)
	assert.Equal(t, []byte{
		0x00, 0x13, 0x00, 0x01, 0x01,
		0x00, 0x60, 0x00, 0x04, 0x00, 0x00, 0x00, 0x00,
	}, wire)

	back, err := ie.ParseMultiIEs(wire)
	require.NoError(t, err)
	assert.Equal(t, ies, back)
}

func TestBothPayloadAndChildren(t *testing.T) {
	i := &ie.IE{Type: ie.TypeCreatePDR, Payload: []byte{1}, ChildIEs: []*ie.IE{ie.NewPDRID(1)}}
	_, err := i.Marshal()
	assert.Equal(t, util.KindEncoding, mustKind(t, err))
}
