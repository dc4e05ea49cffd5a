/* YaPFCP - Yet another PFCP codec
 *
 * Copyright (C) 2020-2024 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ie_test

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yapfcp/yapfcp/pfcp/ie"
	"github.com/yapfcp/yapfcp/pfcp/util"
)

var ntpZero = time.Unix(-2208988800, 0).UTC()

func u64(v uint64) *uint64 {
	return &v
}

func TestCause(t *testing.T) {
	i := ie.NewCause(util.CauseMandatoryIEMissing)
	assert.Equal(t, []byte{66}, i.Payload)
	c, err := i.Cause()
	require.NoError(t, err)
	assert.Equal(t, util.CauseMandatoryIEMissing, c)
	assert.Equal(t, "Mandatory IE missing", c.String())
}

func TestFTEIDExplicit(t *testing.T) {
	i, err := ie.NewFTEID(0xAABBCCDD, net.ParseIP("192.0.2.1"), nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0xAA, 0xBB, 0xCC, 0xDD, 192, 0, 2, 1}, i.Payload)

	f, err := i.FTEID()
	require.NoError(t, err)
	assert.Equal(t, ie.FTEID{TEID: 0xAABBCCDD, IPv4: net.IP{192, 0, 2, 1}}, f)
}

func TestFTEIDDualStack(t *testing.T) {
	v6 := net.ParseIP("2001:db8::1")
	i, err := ie.NewFTEID(1, net.IP{10, 0, 0, 1}, v6)
	require.NoError(t, err)
	assert.Len(t, i.Payload, 1+4+4+16)
	assert.Equal(t, uint8(0x03), i.Payload[0])

	f, err := i.FTEID()
	require.NoError(t, err)
	assert.True(t, f.IPv6.Equal(v6))
}

func TestFTEIDChoose(t *testing.T) {
	f, err := ie.NewFTEIDBuilder().ChooseIPv4().ChooseID(5).Build()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x0D, 0x05}, f.Marshal())

	back, err := ie.ParseFTEID(f.Marshal())
	require.NoError(t, err)
	assert.Equal(t, f, back)
}

func TestFTEIDInvalid(t *testing.T) {
	_, err := ie.NewFTEID(1, nil, nil)
	assert.Equal(t, util.KindInvalidIEPayload, mustKind(t, err))

	_, err = ie.ParseFTEID([]byte{0x01, 0, 0, 0, 1, 10, 0})
	assert.ErrorIs(t, err, util.ErrTooShort)
}

func TestNodeID(t *testing.T) {
	i, err := ie.NewNodeID("upf.example.com")
	require.NoError(t, err)
	assert.Equal(t, append([]byte{2, 3, 'u', 'p', 'f', 7}, []byte("example\x03com")...), i.Payload)

	n, err := i.NodeID()
	require.NoError(t, err)
	assert.Equal(t, ie.NodeIDTypeFQDN, n.Type)
	assert.Equal(t, "upf.example.com", n.String())

	i, err = ie.NewNodeID("198.51.100.7")
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 198, 51, 100, 7}, i.Payload)

	_, err = ie.NewNodeID("bad..name")
	assert.Error(t, err)

	_, err = ie.ParseNodeID([]byte{3, 1, 2})
	assert.ErrorIs(t, err, util.ErrOutOfRange)
}

func TestFSEID(t *testing.T) {
	i, err := ie.NewFSEID(0x0102030405060708, net.IP{10, 1, 1, 1}, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x02, 1, 2, 3, 4, 5, 6, 7, 8, 10, 1, 1, 1}, i.Payload)

	f, err := i.FSEID()
	require.NoError(t, err)
	assert.Equal(t, uint64(0x0102030405060708), f.SEID)
	assert.Equal(t, net.IP{10, 1, 1, 1}, f.IPv4)
	assert.Nil(t, f.IPv6)

	_, err = ie.ParseFSEID([]byte{0x02, 0, 0, 0, 0, 0, 0, 0, 1})
	assert.ErrorIs(t, err, util.ErrTooShort)
}

func TestSDFFilter(t *testing.T) {
	s := ie.SDFFilter{
		FlowDescription:    "permit out ip from any to assigned",
		HasFlowDescription: true,
		FlowLabel:          0xABCDE,
		HasFlowLabel:       true,
		FilterID:           9,
		HasFilterID:        true,
	}
	require.NoError(t, s.Validate())
	wire := s.Marshal()
	assert.Equal(t, ie.SDFFilterFlagFD|ie.SDFFilterFlagFL|ie.SDFFilterFlagBID, wire[0])
	assert.Equal(t, uint8(0), wire[1])

	back, err := s.IE().SDFFilter()
	require.NoError(t, err)
	assert.Equal(t, s, back)

	s.FlowLabel = 1 << 20
	assert.ErrorIs(t, s.Validate(), util.ErrOutOfRange)
}

func TestUserIDTBCD(t *testing.T) {
	u := ie.UserID{IMSI: "001010123456789", NAI: "user@example.com"}
	require.NoError(t, u.Validate())
	wire := u.Marshal()
	assert.Equal(t, ie.UserIDFlagIMSI|ie.UserIDFlagNAI, wire[0])
	assert.Equal(t, []byte{8, 0x00, 0x01, 0x01, 0x21, 0x43, 0x65, 0x87, 0xF9}, wire[1:10])

	back, err := ie.ParseUserID(wire)
	require.NoError(t, err)
	assert.Equal(t, u, back)

	assert.Error(t, ie.UserID{MSISDN: "+1555"}.Validate())
}

func TestTimestamp(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 30, 15, 500000000, time.UTC)
	i := ie.NewRecoveryTimeStamp(ts)
	back, err := i.RecoveryTimeStamp()
	require.NoError(t, err)
	assert.True(t, ts.Truncate(time.Second).Equal(back))
	assert.Equal(t, time.UTC, back.Location())

	epoch := ie.NewRecoveryTimeStamp(time.Unix(0, 0))
	assert.Equal(t, []byte{0x83, 0xAA, 0x7E, 0x80}, epoch.Payload)

	start, err := ie.NewTimestamp(ie.TypeStartTime, ts)
	require.NoError(t, err)
	_, err = start.RecoveryTimeStamp()
	assert.ErrorIs(t, err, util.ErrWrongType)
	got, err := start.Timestamp()
	require.NoError(t, err)
	assert.True(t, got.Equal(back))

	_, err = ie.NewTimestamp(ie.TypeCause, ts)
	assert.Error(t, err)
}

func TestSeconds(t *testing.T) {
	i, err := ie.NewSeconds(ie.TypeTimeThreshold, 90*time.Second)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 90}, i.Payload)
	d, err := i.Seconds()
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, d)

	_, err = ie.NewSeconds(ie.TypeTimeThreshold, -time.Second)
	assert.ErrorIs(t, err, util.ErrOutOfRange)
}

func TestTimer(t *testing.T) {
	cases := []struct {
		in   time.Duration
		wire byte
		out  time.Duration
	}{
		{10 * time.Second, 0x05, 10 * time.Second},
		{90 * time.Second, 0x22, 2 * time.Minute},
		{2 * time.Hour, 0x4C, 2 * time.Hour},
		{0, 0x00, 0},
		{ie.TimerInfinite, 0xE0, ie.TimerInfinite},
	}
	for _, c := range cases {
		i, err := ie.NewTimer(ie.TypeTimer, c.in)
		require.NoError(t, err, c.in.String())
		assert.Equal(t, []byte{c.wire}, i.Payload, c.in.String())
		d, err := i.Timer()
		require.NoError(t, err)
		assert.Equal(t, c.out, d)
	}

	_, err := ie.NewTimer(ie.TypeTimer, 400*time.Hour)
	assert.ErrorIs(t, err, util.ErrOutOfRange)

	_, err = ie.New(ie.TypeTimer, []byte{0xA1}).Timer()
	assert.Error(t, err)
}

func TestVolume(t *testing.T) {
	v := ie.Volume{Total: u64(3000), Downlink: u64(2000)}
	i, err := ie.NewVolume(ie.TypeVolumeThreshold, v)
	require.NoError(t, err)
	assert.Len(t, i.Payload, 17)
	assert.Equal(t, ie.VolumeFlagTotal|ie.VolumeFlagDownlink, i.Payload[0])

	back, err := i.Volume()
	require.NoError(t, err)
	assert.Equal(t, v, back)

	_, err = ie.NewVolume(ie.TypeVolumeQuota, ie.Volume{TotalPackets: u64(1)})
	assert.Error(t, err)
	m, err := ie.NewVolume(ie.TypeVolumeMeasurement, ie.Volume{Total: u64(1), TotalPackets: u64(1)})
	require.NoError(t, err)
	assert.Equal(t, ie.VolumeFlagTotal|ie.VolumeFlagTotalPackets, m.Payload[0])

	_, err = ie.ParseVolume(ie.TypeVolumeQuota, []byte{0x03, 0, 0, 0, 0, 0, 0, 0, 1})
	assert.ErrorIs(t, err, util.ErrTooShort)
}

func TestBitRate(t *testing.T) {
	i, err := ie.NewBitRate(ie.TypeMBR, ie.BitRate{UL: 100000, DL: 1 << 39})
	require.NoError(t, err)
	assert.Len(t, i.Payload, 10)
	r, err := i.BitRate()
	require.NoError(t, err)
	assert.Equal(t, ie.BitRate{UL: 100000, DL: 1 << 39}, r)

	_, err = ie.NewBitRate(ie.TypeGBR, ie.BitRate{UL: 1 << 40})
	assert.ErrorIs(t, err, util.ErrOutOfRange)
	_, err = ie.NewBitRate(ie.TypeCause, ie.BitRate{})
	assert.Error(t, err)
}

func TestPacketRate(t *testing.T) {
	p := ie.PacketRate{
		UL:           &ie.RateLimit{TimeUnit: ie.RateUnitMinute, Max: 100},
		DL:           &ie.RateLimit{TimeUnit: ie.RateUnitHour, Max: 5000},
		AdditionalUL: &ie.RateLimit{TimeUnit: ie.RateUnitDay, Max: 7},
		AdditionalDL: &ie.RateLimit{TimeUnit: ie.RateUnitWeek, Max: 8},
	}
	require.NoError(t, p.Validate())
	wire := p.Marshal()
	assert.Len(t, wire, 13)
	back, err := ie.ParsePacketRate(wire)
	require.NoError(t, err)
	assert.Equal(t, p, back)

	assert.Error(t, ie.PacketRate{AdditionalDL: &ie.RateLimit{}}.Validate())
}

func TestFlags(t *testing.T) {
	i, err := ie.NewFlags(ie.TypeReportType, ie.ReportTypeUSAR|ie.ReportTypeERIR)
	require.NoError(t, err)
	assert.True(t, i.HasFlag(ie.ReportTypeUSAR))
	assert.False(t, i.HasFlag(ie.ReportTypeDLDR))

	var missing *ie.IE
	assert.False(t, missing.HasFlag(ie.ReportTypeUSAR))

	_, err = ie.NewFlags(ie.TypeCause, 1)
	assert.Error(t, err)

	aa := ie.NewApplyAction(ie.ApplyActionFORW | ie.ApplyActionBDPN)
	assert.Equal(t, []byte{0x02, 0x02}, aa.Payload)
	v, err := aa.ApplyAction()
	require.NoError(t, err)
	assert.Equal(t, ie.ApplyActionFORW|ie.ApplyActionBDPN, v)

	assert.Equal(t, []byte{0x01}, ie.NewApplyAction(ie.ApplyActionDROP).Payload)
}

func TestSNSSAI(t *testing.T) {
	s := ie.SNSSAI{SST: 1, SD: ie.NoSD}
	assert.Equal(t, []byte{1, 0xFF, 0xFF, 0xFF}, s.Marshal())
	back, err := s.IE().SNSSAI()
	require.NoError(t, err)
	assert.Equal(t, s, back)

	assert.ErrorIs(t, ie.SNSSAI{SD: 1 << 24}.Validate(), util.ErrOutOfRange)
}

func TestForwardingPolicy(t *testing.T) {
	i, err := ie.NewForwardingPolicy("gold")
	require.NoError(t, err)
	assert.Equal(t, []byte{4, 'g', 'o', 'l', 'd'}, i.Payload)
	id, err := i.ForwardingPolicy()
	require.NoError(t, err)
	assert.Equal(t, "gold", id)
}

func TestRangeChecks(t *testing.T) {
	_, err := ie.NewQFI(64)
	assert.ErrorIs(t, err, util.ErrOutOfRange)
	_, err = ie.NewDownlinkDataNotificationDelay(13 * time.Second)
	assert.ErrorIs(t, err, util.ErrOutOfRange)
	_, err = ie.NewSourceInterface(16)
	assert.Error(t, err)

	q, err := ie.NewQFI(9)
	require.NoError(t, err)
	v, err := q.QFI()
	require.NoError(t, err)
	assert.Equal(t, uint8(9), v)
}
