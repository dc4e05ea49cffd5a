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

var (
	node     = ie.NodeIDFromIP(net.IP{192, 0, 2, 1})
	accepted = util.CauseRequestAccepted
	cpFSEID  = ie.FSEID{SEID: 0x10, IPv4: net.IP{192, 0, 2, 1}}
)

func TestBuildersRoundTrip(t *testing.T) {
	pdr, err := ie.NewCreatePDRBuilder(1).Precedence(1).PDI(ie.PDI{SourceInterface: ie.InterfaceCore}).Build()
	require.NoError(t, err)
	far, err := ie.NewCreateFARBuilder(1).ApplyAction(ie.ApplyActionDROP).Build()
	require.NoError(t, err)
	start := recovery
	report := ie.UsageReport{URRID: 1, URSEQN: 2, UsageReportTrigger: ie.UsageReportTriggerPERIO, StartTime: &start}

	tests := []struct {
		want  message.Type
		build func() (message.Message, error)
	}{
		{message.TypeHeartbeatRequest, func() (message.Message, error) {
			return message.NewHeartbeatRequestBuilder(1).RecoveryTimeStamp(recovery).
				SourceIPAddress(ie.IPAddress{IPv4: net.IP{192, 0, 2, 9}}).Build()
		}},
		{message.TypeHeartbeatResponse, func() (message.Message, error) {
			return message.NewHeartbeatResponseBuilder(1).RecoveryTimeStamp(recovery).Build()
		}},
		{message.TypePFDManagementRequest, func() (message.Message, error) {
			return message.NewPFDManagementRequestBuilder(1).ApplicationPFDs(ie.ApplicationPFDs{
				ApplicationID: "app",
				PFDContexts:   [][]ie.PFDContents{{{FlowDescription: "permit out ip from 198.51.100.1 to any"}}},
			}).Build()
		}},
		{message.TypePFDManagementResponse, func() (message.Message, error) {
			return message.NewPFDManagementResponseBuilder(1).Cause(accepted).Build()
		}},
		{message.TypeAssociationSetupRequest, func() (message.Message, error) {
			return message.NewAssociationSetupRequestBuilder(1).NodeID(node).RecoveryTimeStamp(recovery).
				UPFunctionFeatures(0x0102).Build()
		}},
		{message.TypeAssociationSetupResponse, func() (message.Message, error) {
			return message.NewAssociationSetupResponseBuilder(1).NodeID(node).Cause(accepted).RecoveryTimeStamp(recovery).Build()
		}},
		{message.TypeAssociationUpdateRequest, func() (message.Message, error) {
			return message.NewAssociationUpdateRequestBuilder(1).NodeID(node).GracefulReleasePeriod(time.Minute).Build()
		}},
		{message.TypeAssociationUpdateResponse, func() (message.Message, error) {
			return message.NewAssociationUpdateResponseBuilder(1).NodeID(node).Cause(accepted).Build()
		}},
		{message.TypeAssociationReleaseRequest, func() (message.Message, error) {
			return message.NewAssociationReleaseRequestBuilder(1).NodeID(node).Build()
		}},
		{message.TypeAssociationReleaseResponse, func() (message.Message, error) {
			return message.NewAssociationReleaseResponseBuilder(1).NodeID(node).Cause(accepted).Build()
		}},
		{message.TypeVersionNotSupportedResponse, func() (message.Message, error) {
			return message.NewVersionNotSupportedResponseBuilder(1).Build()
		}},
		{message.TypeNodeReportRequest, func() (message.Message, error) {
			return message.NewNodeReportRequestBuilder(1).NodeID(node).NodeReportType(ie.NodeReportTypeUPFR).
				PathFailure(ie.RemoteGTPUPeer{IPv4: net.IP{198, 51, 100, 7}}).Build()
		}},
		{message.TypeNodeReportResponse, func() (message.Message, error) {
			return message.NewNodeReportResponseBuilder(1).NodeID(node).Cause(accepted).Build()
		}},
		{message.TypeSessionSetDeletionRequest, func() (message.Message, error) {
			return message.NewSessionSetDeletionRequestBuilder(1).NodeID(node).FQCSID(ie.FQCSID{
				NodeIDType:  ie.FQCSIDNodeTypeIPv4,
				NodeAddress: []byte{192, 0, 2, 1},
				CSIDs:       []uint16{1, 2},
			}).Build()
		}},
		{message.TypeSessionSetDeletionResponse, func() (message.Message, error) {
			return message.NewSessionSetDeletionResponseBuilder(1).NodeID(node).Cause(accepted).Build()
		}},
		{message.TypeSessionSetModificationRequest, func() (message.Message, error) {
			return message.NewSessionSetModificationRequestBuilder(1).
				AlternativeSMFIPAddress(ie.IPAddress{IPv4: net.IP{192, 0, 2, 2}}).Build()
		}},
		{message.TypeSessionSetModificationResponse, func() (message.Message, error) {
			return message.NewSessionSetModificationResponseBuilder(1).NodeID(node).Cause(accepted).Build()
		}},
		{message.TypeSessionEstablishmentRequest, func() (message.Message, error) {
			return message.NewSessionEstablishmentRequestBuilder(0, 1).NodeID(node).CPFSEID(cpFSEID).
				CreatePDR(pdr).CreateFAR(far).APNDNN("internet").Build()
		}},
		{message.TypeSessionEstablishmentResponse, func() (message.Message, error) {
			return message.NewSessionEstablishmentResponseBuilder(0x10, 1).NodeID(node).Cause(accepted).
				UPFSEID(ie.FSEID{SEID: 0x20, IPv4: net.IP{192, 0, 2, 3}}).Build()
		}},
		{message.TypeSessionModificationRequest, func() (message.Message, error) {
			return message.NewSessionModificationRequestBuilder(0x20, 1).RemovePDR(1).QueryURR(1).Build()
		}},
		{message.TypeSessionModificationResponse, func() (message.Message, error) {
			return message.NewSessionModificationResponseBuilder(0x10, 1).Cause(accepted).UsageReport(report).Build()
		}},
		{message.TypeSessionDeletionRequest, func() (message.Message, error) {
			return message.NewSessionDeletionRequestBuilder(0x20, 1).Build()
		}},
		{message.TypeSessionDeletionResponse, func() (message.Message, error) {
			return message.NewSessionDeletionResponseBuilder(0x10, 1).Cause(accepted).UsageReport(report).Build()
		}},
		{message.TypeSessionReportRequest, func() (message.Message, error) {
			return message.NewSessionReportRequestBuilder(0x10, 1).ReportType(ie.ReportTypeUSAR).UsageReport(report).Build()
		}},
		{message.TypeSessionReportResponse, func() (message.Message, error) {
			return message.NewSessionReportResponseBuilder(0x20, 1).Cause(accepted).Build()
		}},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			m, err := tt.build()
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.MessageType())

			wire, err := message.Encode(m)
			require.NoError(t, err)
			back, err := message.Decode(wire)
			require.NoError(t, err)
			assert.Equal(t, tt.want, back.MessageType())
			assert.Empty(t, back.ExtraIEs())

			again, err := message.Encode(back)
			require.NoError(t, err)
			assert.Equal(t, wire, again)

			want, err := message.Fingerprint(m)
			require.NoError(t, err)
			got, err := message.Fingerprint(back)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestUsageReportTypedPerMessage(t *testing.T) {
	report := ie.UsageReport{URRID: 1, URSEQN: 1, UsageReportTrigger: ie.UsageReportTriggerPERIO}

	mod, err := message.NewSessionModificationResponseBuilder(1, 1).Cause(accepted).UsageReport(report).Build()
	require.NoError(t, err)
	require.Len(t, mod.UsageReports, 1)
	assert.Equal(t, ie.TypeUsageReportWithinSessionModificationResponse, mod.UsageReports[0].Type)

	del, err := message.NewSessionDeletionResponseBuilder(1, 1).Cause(accepted).UsageReport(report).Build()
	require.NoError(t, err)
	require.Len(t, del.UsageReports, 1)
	assert.Equal(t, ie.TypeUsageReportWithinSessionDeletionResponse, del.UsageReports[0].Type)

	rep, err := message.NewSessionReportRequestBuilder(1, 1).ReportType(ie.ReportTypeUSAR).UsageReport(report).Build()
	require.NoError(t, err)
	require.Len(t, rep.UsageReports, 1)
	assert.Equal(t, ie.TypeUsageReportWithinSessionReportRequest, rep.UsageReports[0].Type)
}

func TestBuilderMissingField(t *testing.T) {
	_, err := message.NewSessionEstablishmentRequestBuilder(0, 1).NodeID(node).Build()
	assert.Equal(t, util.ErrBuilderMissingField{Builder: "SessionEstablishmentRequest", Field: "FSEID"}, err)
	assert.Equal(t, util.CauseMandatoryIEMissing, util.StatusCode(err))

	_, err = message.NewSessionEstablishmentRequestBuilder(0, 1).NodeID(node).CPFSEID(cpFSEID).Build()
	assert.Equal(t, util.ErrBuilderMissingField{Builder: "SessionEstablishmentRequest", Field: "CreatePDR"}, err)

	_, err = message.NewHeartbeatRequestBuilder(1).Build()
	assert.Equal(t, util.ErrBuilderMissingField{Builder: "HeartbeatRequest", Field: "RecoveryTimeStamp"}, err)
}

func TestBuilderInvalidValue(t *testing.T) {
	broken := ie.NodeID{Type: ie.NodeIDTypeFQDN, FQDN: "bad..name"}

	_, err := message.NewAssociationSetupRequestBuilder(1).NodeID(broken).RecoveryTimeStamp(recovery).Build()
	var invalid util.ErrBuilderInvalidValue
	require.True(t, errors.As(err, &invalid), "%v", err)
	assert.Equal(t, "AssociationSetupRequest", invalid.Builder)
	assert.Equal(t, "NodeID", invalid.Field)
	assert.Equal(t, util.CauseMandatoryIEIncorrect, util.StatusCode(err))

	// A later valid value replaces the broken one.
	m, err := message.NewAssociationSetupRequestBuilder(1).NodeID(broken).NodeID(node).RecoveryTimeStamp(recovery).Build()
	require.NoError(t, err)
	id, err := m.NodeID.NodeID()
	require.NoError(t, err)
	assert.Equal(t, node, id)

	// Missing fields are reported before invalid ones.
	_, err = message.NewAssociationSetupRequestBuilder(1).NodeID(broken).Build()
	assert.Equal(t, util.ErrBuilderMissingField{Builder: "AssociationSetupRequest", Field: "RecoveryTimeStamp"}, err)
}

func TestBuilderRejectedMandatoryValue(t *testing.T) {
	_, err := message.NewSessionSetModificationRequestBuilder(1).AlternativeSMFIPAddress(ie.IPAddress{}).Build()
	var invalid util.ErrBuilderInvalidValue
	require.True(t, errors.As(err, &invalid), "%v", err)
	assert.Equal(t, "SessionSetModificationRequest", invalid.Builder)
	assert.Equal(t, "AlternativeSMFIPAddress", invalid.Field)

	far, err := ie.NewCreateFARBuilder(1).ApplyAction(ie.ApplyActionDROP).Build()
	require.NoError(t, err)
	pdr, err := ie.NewCreatePDRBuilder(1).Precedence(1).PDI(ie.PDI{SourceInterface: ie.InterfaceCore}).Build()
	require.NoError(t, err)
	badPDR := ie.CreatePDR{PDRID: 2, Precedence: 1, PDI: ie.PDI{SourceInterface: ie.InterfaceCore, QFIs: []uint8{64}}}
	badFAR := ie.CreateFAR{FARID: 2, ApplyAction: ie.ApplyActionFORW, ForwardingParameters: &ie.ForwardingParameters{DestinationInterface: 16}}

	_, err = message.NewSessionEstablishmentRequestBuilder(0, 1).NodeID(node).CPFSEID(cpFSEID).
		CreatePDR(badPDR).CreateFAR(far).Build()
	require.True(t, errors.As(err, &invalid), "%v", err)
	assert.Equal(t, "CreatePDR[0]", invalid.Field)
	assert.ErrorIs(t, err, util.ErrOutOfRange)

	_, err = message.NewSessionEstablishmentRequestBuilder(0, 1).NodeID(node).CPFSEID(cpFSEID).
		CreatePDR(pdr).CreateFAR(badFAR).Build()
	require.True(t, errors.As(err, &invalid), "%v", err)
	assert.Equal(t, "CreateFAR[0]", invalid.Field)

	// A valid instance after a rejected one does not clear the rejection.
	_, err = message.NewSessionEstablishmentRequestBuilder(0, 1).NodeID(node).CPFSEID(cpFSEID).
		CreatePDR(badPDR).CreatePDR(pdr).CreateFAR(far).Build()
	require.True(t, errors.As(err, &invalid), "%v", err)
	assert.Equal(t, "CreatePDR[0]", invalid.Field)

	// A field never given is still reported first.
	_, err = message.NewSessionEstablishmentRequestBuilder(0, 1).NodeID(node).CreatePDR(badPDR).Build()
	assert.Equal(t, util.ErrBuilderMissingField{Builder: "SessionEstablishmentRequest", Field: "FSEID"}, err)
}

func TestBuildDetachesMessage(t *testing.T) {
	far, err := ie.NewCreateFARBuilder(1).ApplyAction(ie.ApplyActionDROP).Build()
	require.NoError(t, err)
	pdr, err := ie.NewCreatePDRBuilder(1).Precedence(1).PDI(ie.PDI{SourceInterface: ie.InterfaceCore}).Build()
	require.NoError(t, err)

	b := message.NewSessionEstablishmentRequestBuilder(0, 1).NodeID(node).CPFSEID(cpFSEID).CreatePDR(pdr).CreateFAR(far)
	first, err := b.Build()
	require.NoError(t, err)

	far.FARID = 2
	b.CreateFAR(far).SetPriority(3)
	second, err := b.Build()
	require.NoError(t, err)

	assert.Len(t, first.CreateFARs, 1)
	assert.Nil(t, first.Header.Priority)
	assert.Len(t, second.CreateFARs, 2)
	require.NotNil(t, second.Header.Priority)
	assert.Equal(t, uint8(3), *second.Header.Priority)
}

func TestBuilderHeaderLimits(t *testing.T) {
	_, err := message.NewHeartbeatRequestBuilder(message.MaxSequenceNumber + 1).RecoveryTimeStamp(recovery).Build()
	var invalid util.ErrBuilderInvalidValue
	require.True(t, errors.As(err, &invalid), "%v", err)
	assert.Equal(t, "SequenceNumber", invalid.Field)
	assert.ErrorIs(t, err, util.ErrOutOfRange)

	b := message.NewHeartbeatRequestBuilder(1).RecoveryTimeStamp(recovery)
	b.SetPriority(message.MaxPriority + 1)
	_, err = b.Build()
	require.True(t, errors.As(err, &invalid), "%v", err)
	assert.Equal(t, "Priority", invalid.Field)

	b = message.NewHeartbeatRequestBuilder(1).RecoveryTimeStamp(recovery)
	b.SetPriority(message.MaxPriority)
	m, err := b.Build()
	require.NoError(t, err)
	require.NotNil(t, m.Header.Priority)
	assert.Equal(t, message.MaxPriority, *m.Header.Priority)

	wire, err := message.Encode(m)
	require.NoError(t, err)
	assert.Equal(t, byte(0x22), wire[0])
	assert.Equal(t, byte(0xF0), wire[7])
}

func TestBuilderAddIE(t *testing.T) {
	b := message.NewHeartbeatResponseBuilder(1).RecoveryTimeStamp(recovery)
	b.AddIE(ie.New(ie.Type(2000), []byte{0x01}))
	m, err := b.Build()
	require.NoError(t, err)
	require.Len(t, m.ExtraIEs(), 1)

	b = message.NewHeartbeatResponseBuilder(1).RecoveryTimeStamp(recovery)
	b.AddIE(ie.NewRecoveryTimeStamp(recovery))
	_, err = b.Build()
	assert.ErrorIs(t, err, util.ErrDuplicate)
}

func TestSessionBuilderCarriesSEID(t *testing.T) {
	m, err := message.NewSessionDeletionRequestBuilder(0, 5).Build()
	require.NoError(t, err)
	require.NotNil(t, m.Header.SEID)
	assert.Equal(t, uint64(0), *m.Header.SEID)
	assert.Equal(t, message.TypeSessionDeletionRequest, m.Header.Type)
	assert.Equal(t, uint32(5), m.Header.SequenceNumber)

	hb, err := message.NewHeartbeatRequestBuilder(5).RecoveryTimeStamp(recovery).Build()
	require.NoError(t, err)
	assert.Nil(t, hb.Header.SEID)
}
