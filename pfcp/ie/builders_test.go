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
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yapfcp/yapfcp/pfcp/ie"
	"github.com/yapfcp/yapfcp/pfcp/util"
)

// reparse sends i through the wire and back.
func reparse(t *testing.T, i *ie.IE) *ie.IE {
	t.Helper()
	wire, err := i.Marshal()
	require.NoError(t, err)
	back, err := ie.Parse(wire)
	require.NoError(t, err)
	return back
}

// encoded fails the test when an encoder rejects its value.
func encoded(t *testing.T) func(*ie.IE, error) *ie.IE {
	return func(i *ie.IE, err error) *ie.IE {
		t.Helper()
		require.NoError(t, err)
		return i
	}
}

func TestCreatePDRBuilder(t *testing.T) {
	pdi, err := ie.NewPDIBuilder().
		SourceInterface(ie.InterfaceAccess).
		LocalFTEID(ie.FTEID{TEID: 0x100, IPv4: net.IP{192, 0, 2, 10}}).
		NetworkInstance("internet").
		SDFFilter(ie.SDFFilter{FlowDescription: "permit out ip from any to assigned", HasFlowDescription: true}).
		QFI(9).
		Build()
	require.NoError(t, err)

	pdr, err := ie.NewCreatePDRBuilder(1).
		Precedence(200).
		PDI(pdi).
		OuterHeaderRemoval(ie.OuterHeaderRemoval{Description: ie.OuterHeaderRemovalGTPUUDPIPv4}).
		FARID(1).
		URRID(1).
		URRID(2).
		QERID(1).
		Build()
	require.NoError(t, err)

	back, err := reparse(t, encoded(t)(pdr.IE())).CreatePDR()
	require.NoError(t, err)
	assert.Equal(t, pdr, back)
	require.NotNil(t, back.PDI.NetworkInstance)
	assert.Equal(t, "internet", *back.PDI.NetworkInstance)
	assert.Equal(t, []uint32{1, 2}, back.URRIDs)
}

func TestCreatePDRBuilderMissing(t *testing.T) {
	_, err := ie.NewCreatePDRBuilder(1).PDI(ie.PDI{}).Build()
	assert.Equal(t, util.ErrBuilderMissingField{Builder: "CreatePDR", Field: "Precedence"}, err)

	_, err = ie.NewCreatePDRBuilder(1).Precedence(1).Build()
	assert.Equal(t, util.ErrBuilderMissingField{Builder: "CreatePDR", Field: "PDI"}, err)
	assert.Equal(t, util.CauseMandatoryIEMissing, util.StatusCode(err))

	_, err = ie.NewPDIBuilder().QFI(1).Build()
	assert.Equal(t, util.ErrBuilderMissingField{Builder: "PDI", Field: "SourceInterface"}, err)
}

func TestCreatePDRBuilderInvalid(t *testing.T) {
	_, err := ie.NewCreatePDRBuilder(1).
		Precedence(1).
		PDI(ie.PDI{SourceInterface: ie.InterfaceCore, QFIs: []uint8{64}}).
		Build()
	var invalid util.ErrBuilderInvalidValue
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "CreatePDR", invalid.Builder)
	assert.Equal(t, "PDI", invalid.Field)
	assert.ErrorIs(t, err, util.ErrOutOfRange)
	assert.Equal(t, util.CauseMandatoryIEIncorrect, util.StatusCode(err))
}

func TestParseCreatePDRMissingChild(t *testing.T) {
	pdi := ie.PDI{SourceInterface: ie.InterfaceAccess}
	i := ie.NewGrouped(ie.TypeCreatePDR, ie.NewPDRID(1), encoded(t)(pdi.IE()))
	_, err := reparse(t, i).CreatePDR()
	assert.Equal(t, util.ErrMissingMandatoryIE{IEType: uint16(ie.TypePrecedence), ParentIE: uint16(ie.TypeCreatePDR)}, err)
	assert.Equal(t, util.CauseMandatoryIEMissing, util.StatusCode(err))

	// The nested PDI reports itself as the parent.
	i = ie.NewGrouped(ie.TypeCreatePDR, ie.NewPDRID(1), ie.NewPrecedence(1), ie.NewGrouped(ie.TypePDI, ie.NewNetworkInstance("x")))
	_, err = reparse(t, i).CreatePDR()
	assert.Equal(t, util.ErrMissingMandatoryIE{IEType: uint16(ie.TypeSourceInterface), ParentIE: uint16(ie.TypePDI)}, err)
}

func TestParseCreatePDRDuplicateChild(t *testing.T) {
	pdi := encoded(t)(ie.PDI{SourceInterface: ie.InterfaceAccess}.IE())

	i := ie.NewGrouped(ie.TypeCreatePDR, ie.NewPDRID(1), ie.NewPDRID(2), ie.NewPrecedence(1), pdi)
	_, err := reparse(t, i).CreatePDR()
	var payload util.ErrInvalidIEPayload
	require.True(t, errors.As(err, &payload), "%v", err)
	assert.Equal(t, uint16(ie.TypePDRID), payload.IEType)
	assert.ErrorIs(t, err, util.ErrDuplicate)

	// Optional children may not repeat either.
	i = ie.NewGrouped(ie.TypeCreatePDR, ie.NewPDRID(1), ie.NewPrecedence(1), pdi, ie.NewFARID(1), ie.NewFARID(2))
	_, err = reparse(t, i).CreatePDR()
	assert.ErrorIs(t, err, util.ErrDuplicate)

	// Repeatable children still collect.
	i = ie.NewGrouped(ie.TypeCreatePDR, ie.NewPDRID(1), ie.NewPrecedence(1), pdi, ie.NewURRID(1), ie.NewURRID(2))
	back, err := reparse(t, i).CreatePDR()
	require.NoError(t, err)
	assert.Equal(t, []uint32{1, 2}, back.URRIDs)
}

func TestGroupedIEChecksValue(t *testing.T) {
	_, err := ie.PDI{SourceInterface: 16}.IE()
	assert.ErrorIs(t, err, util.ErrOutOfRange)

	_, err = ie.CreatePDR{PDRID: 1, PDI: ie.PDI{QFIs: []uint8{64}}}.IE()
	assert.ErrorIs(t, err, util.ErrOutOfRange)

	_, err = ie.CreateFAR{FARID: 1, ForwardingParameters: &ie.ForwardingParameters{DestinationInterface: 16}}.IE()
	assert.ErrorIs(t, err, util.ErrOutOfRange)

	qfi := uint8(64)
	_, err = ie.CreateQER{QERID: 1, QFI: &qfi}.IE()
	assert.ErrorIs(t, err, util.ErrOutOfRange)

	_, err = ie.LoadControlInformation{Metric: 101}.IE()
	assert.ErrorIs(t, err, util.ErrOutOfRange)

	_, err = ie.UEIPAddressPoolInformation{}.IE()
	assert.Error(t, err)

	i, err := ie.OverloadControlInformation{SequenceNumber: 1, Metric: 50, Validity: time.Minute}.IE()
	require.NoError(t, err)
	back, err := ie.ParseOverloadControlInformation(reparse(t, i))
	require.NoError(t, err)
	assert.Equal(t, uint8(50), back.Metric)
	assert.Equal(t, time.Minute, back.Validity)
}

func TestParseCreatePDRFromRawPayload(t *testing.T) {
	pdr, err := ie.NewCreatePDRBuilder(3).Precedence(10).PDI(ie.PDI{SourceInterface: ie.InterfaceCore}).Build()
	require.NoError(t, err)
	wire, err := encoded(t)(pdr.IE()).Marshal()
	require.NoError(t, err)

	raw, _, err := ie.Decode(wire)
	require.NoError(t, err)
	back, err := ie.ParseCreatePDR(raw)
	require.NoError(t, err)
	assert.Equal(t, pdr, back)
}

func TestCreateFARBuilder(t *testing.T) {
	fwd, err := ie.NewForwardingParametersBuilder().
		DestinationInterface(ie.InterfaceCore).
		NetworkInstance("internet").
		TransportLevelMarking(0x2EFC).
		Build()
	require.NoError(t, err)

	far, err := ie.NewCreateFARBuilder(5).
		ApplyAction(ie.ApplyActionFORW).
		ForwardingParameters(fwd).
		BARID(1).
		Build()
	require.NoError(t, err)

	back, err := reparse(t, encoded(t)(far.IE())).CreateFAR()
	require.NoError(t, err)
	assert.Equal(t, far, back)
}

func TestCreateFARBuilderRules(t *testing.T) {
	_, err := ie.NewCreateFARBuilder(1).Build()
	assert.Equal(t, util.ErrBuilderMissingField{Builder: "CreateFAR", Field: "ApplyAction"}, err)

	_, err = ie.NewCreateFARBuilder(1).ApplyAction(ie.ApplyActionFORW).Build()
	assert.Equal(t, util.ErrBuilderMissingField{Builder: "CreateFAR", Field: "ForwardingParameters"}, err)

	_, err = ie.NewCreateFARBuilder(1).ApplyAction(ie.ApplyActionDUPL).Build()
	assert.Equal(t, util.ErrBuilderMissingField{Builder: "CreateFAR", Field: "DuplicatingParameters"}, err)

	_, err = ie.NewCreateFARBuilder(1).ApplyAction(ie.ApplyActionDROP | ie.ApplyActionBUFF).Build()
	assert.Equal(t, util.KindBuilderInvalidValue, mustKind(t, err))

	_, err = ie.NewForwardingParametersBuilder().NetworkInstance("x").Build()
	assert.Equal(t, util.KindBuilderMissingField, mustKind(t, err))

	far, err := ie.NewCreateFARBuilder(1).ApplyAction(ie.ApplyActionDROP).Build()
	require.NoError(t, err)
	assert.Nil(t, far.ForwardingParameters)
}

func TestCreateQERBuilder(t *testing.T) {
	_, err := ie.NewCreateQERBuilder(1).MBR(1, 1).Build()
	assert.Equal(t, util.ErrBuilderMissingField{Builder: "CreateQER", Field: "GateStatus"}, err)

	_, err = ie.NewCreateQERBuilder(1).GateStatus(ie.GateOpen, ie.GateOpen).MBR(1<<40, 1).Build()
	assert.Equal(t, util.KindBuilderInvalidValue, mustKind(t, err))
	assert.ErrorIs(t, err, util.ErrOutOfRange)

	qer, err := ie.NewCreateQERBuilder(7).
		GateStatus(ie.GateOpen, ie.GateClosed).
		MBR(200000, 100000).
		QFI(5).
		RQI(true).
		AveragingWindow(2 * time.Second).
		Build()
	require.NoError(t, err)

	i := reparse(t, encoded(t)(qer.IE()))
	gate, err := i.FindChild(ie.TypeGateStatus).GateStatus()
	require.NoError(t, err)
	assert.Equal(t, ie.GateStatus{UL: ie.GateOpen, DL: ie.GateClosed}, gate)

	back, err := ie.ParseCreateQER(i)
	require.NoError(t, err)
	assert.Equal(t, qer, back)
}

func TestCreateURRBuilder(t *testing.T) {
	_, err := ie.NewCreateURRBuilder(1).ReportingTriggers(ie.ReportingTriggerVOLTH).Build()
	assert.Equal(t, util.ErrBuilderMissingField{Builder: "CreateURR", Field: "MeasurementMethod"}, err)

	_, err = ie.NewCreateURRBuilder(1).MeasurementMethod(ie.MeasurementMethodVOLUM).Build()
	assert.Equal(t, util.ErrBuilderMissingField{Builder: "CreateURR", Field: "ReportingTriggers"}, err)

	_, err = ie.NewCreateURRBuilder(1).MeasurementMethod(0).ReportingTriggers(1).Build()
	assert.Equal(t, util.KindBuilderInvalidValue, mustKind(t, err))

	_, err = ie.NewCreateURRBuilder(1).
		MeasurementMethod(ie.MeasurementMethodVOLUM).
		ReportingTriggers(ie.ReportingTriggerVOLTH).
		VolumeThreshold(ie.Volume{TotalPackets: u64(5)}).
		Build()
	assert.Equal(t, util.KindBuilderInvalidValue, mustKind(t, err))

	urr, err := ie.NewCreateURRBuilder(3).
		MeasurementMethod(ie.MeasurementMethodVOLUM|ie.MeasurementMethodDURAT).
		ReportingTriggers(ie.ReportingTriggerVOLTH|ie.ReportingTriggerTIMTH|ie.ReportingTriggerPERIO).
		MeasurementPeriod(time.Minute).
		VolumeThreshold(ie.Volume{Total: u64(1 << 30)}).
		TimeThreshold(time.Hour).
		LinkedURRID(9).
		MeasurementInformation(ie.MeasurementInformationINAM).
		Build()
	require.NoError(t, err)

	back, err := ie.ParseCreateURR(reparse(t, encoded(t)(urr.IE())))
	require.NoError(t, err)
	assert.Equal(t, urr, back)
}

func TestBARBuilder(t *testing.T) {
	_, err := ie.NewCreateBARBuilder(1).DLBufferingDuration(time.Minute).Build()
	assert.Equal(t, util.KindBuilderInvalidValue, mustKind(t, err))

	i, err := ie.NewUpdateBARReportBuilder(2).
		DownlinkDataNotificationDelay(100 * time.Millisecond).
		DLBufferingDuration(time.Minute).
		DLBufferingSuggestedPacketCount(300).
		Build()
	require.NoError(t, err)
	assert.Equal(t, ie.TypeUpdateBARWithinSessionReportResponse, i.Type)

	bar, err := ie.ParseBAR(reparse(t, i))
	require.NoError(t, err)
	assert.Equal(t, uint8(2), bar.BARID)
	require.NotNil(t, bar.DLBufferingDuration)
	assert.Equal(t, time.Minute, *bar.DLBufferingDuration)
	require.NotNil(t, bar.DLBufferingSuggestedPacketCount)
	assert.Equal(t, uint16(300), *bar.DLBufferingSuggestedPacketCount)

	_, err = ie.ParseBAR(ie.NewPDRID(1))
	assert.ErrorIs(t, err, util.ErrWrongType)
}

func TestUsageReportBuilder(t *testing.T) {
	_, err := ie.NewUsageReportBuilder(1).UsageReportTrigger(ie.UsageReportTriggerPERIO).Build()
	assert.Equal(t, util.ErrBuilderMissingField{Builder: "UsageReport", Field: "URSEQN"}, err)

	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	report, err := ie.NewUsageReportBuilder(1).
		URSEQN(42).
		UsageReportTrigger(ie.UsageReportTriggerVOLTH).
		StartTime(start).
		EndTime(start.Add(time.Minute)).
		VolumeMeasurement(ie.Volume{Total: u64(10), TotalPackets: u64(2)}).
		DurationMeasurement(time.Minute).
		Build()
	require.NoError(t, err)

	i, err := report.IE(ie.TypeUsageReportWithinSessionReportRequest)
	require.NoError(t, err)
	back, err := ie.ParseUsageReport(reparse(t, i))
	require.NoError(t, err)
	assert.Equal(t, uint32(42), back.URSEQN)
	require.NotNil(t, back.StartTime)
	assert.True(t, start.Equal(*back.StartTime))
	assert.True(t, start.Add(time.Minute).Equal(*back.EndTime))
	assert.Equal(t, report.VolumeMeasurement, back.VolumeMeasurement)
	assert.Equal(t, time.Minute, *back.DurationMeasurement)

	_, err = report.IE(ie.TypeCreateURR)
	assert.Error(t, err)
}

func TestRemoveRules(t *testing.T) {
	cases := []struct {
		i  *ie.IE
		id uint32
	}{
		{ie.NewRemovePDR(5), 5},
		{ie.NewRemoveFAR(70000), 70000},
		{ie.NewRemoveBAR(3), 3},
		{ie.NewRemoveMAR(9), 9},
	}
	for _, c := range cases {
		id, err := reparse(t, c.i).RemovedRuleID()
		require.NoError(t, err, c.i.Type.String())
		assert.Equal(t, c.id, id)
	}

	_, err := ie.NewGrouped(ie.TypeRemovePDR, ie.NewFARID(1)).RemovedRuleID()
	assert.Equal(t, util.ErrMissingMandatoryIE{IEType: uint16(ie.TypePDRID), ParentIE: uint16(ie.TypeRemovePDR)}, err)

	_, err = ie.NewPDRID(1).RemovedRuleID()
	assert.ErrorIs(t, err, util.ErrWrongType)
}

func TestErrorIndicationReport(t *testing.T) {
	remote := ie.FTEID{TEID: 0xDEAD, IPv4: net.IP{203, 0, 113, 5}}
	i, err := ie.NewErrorIndicationReport(remote)
	require.NoError(t, err)
	got, err := reparse(t, i).ErrorIndicationReport()
	require.NoError(t, err)
	assert.Equal(t, []ie.FTEID{remote}, got)
}
