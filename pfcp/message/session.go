/* YaPFCP - Yet another PFCP codec
 *
 * Copyright (C) 2020-2024 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package message

import "github.com/yapfcp/yapfcp/pfcp/ie"

// SessionEstablishmentRequest creates a session on the UP function (TS 29.244 clause 7.5.2).
type SessionEstablishmentRequest struct {
	base
	NodeID                         *ie.IE
	CPFSEID                        *ie.IE
	CreatePDRs                     []*ie.IE
	CreateFARs                     []*ie.IE
	CreateURRs                     []*ie.IE
	CreateQERs                     []*ie.IE
	CreateBAR                      *ie.IE
	CreateTrafficEndpoints         []*ie.IE
	PDNType                        *ie.IE
	FQCSIDs                        []*ie.IE
	UserPlaneInactivityTimer       *ie.IE
	UserID                         *ie.IE
	TraceInformation               *ie.IE
	APNDNN                         *ie.IE
	CreateMARs                     []*ie.IE
	PFCPSEReqFlags                 *ie.IE
	CreateBridgeInfoForTSC         *ie.IE
	CreateSRRs                     []*ie.IE
	ProvideATSSSControlInformation *ie.IE
	RecoveryTimeStamp              *ie.IE
	SNSSAI                         *ie.IE
	HPLMNSNSSAI                    *ie.IE
}

func (m *SessionEstablishmentRequest) MessageType() Type {
	return TypeSessionEstablishmentRequest
}

func (m *SessionEstablishmentRequest) fields() []field {
	return []field{
		required(ie.TypeNodeID, &m.NodeID),
		required(ie.TypeFSEID, &m.CPFSEID),
		nonEmpty(ie.TypeCreatePDR, &m.CreatePDRs),
		nonEmpty(ie.TypeCreateFAR, &m.CreateFARs),
		list(ie.TypeCreateURR, &m.CreateURRs),
		list(ie.TypeCreateQER, &m.CreateQERs),
		opt(ie.TypeCreateBAR, &m.CreateBAR),
		list(ie.TypeCreateTrafficEndpoint, &m.CreateTrafficEndpoints),
		opt(ie.TypePDNType, &m.PDNType),
		list(ie.TypeFQCSID, &m.FQCSIDs),
		opt(ie.TypeUserPlaneInactivityTimer, &m.UserPlaneInactivityTimer),
		opt(ie.TypeUserID, &m.UserID),
		opt(ie.TypeTraceInformation, &m.TraceInformation),
		opt(ie.TypeAPNDNN, &m.APNDNN),
		list(ie.TypeCreateMAR, &m.CreateMARs),
		opt(ie.TypePFCPSEReqFlags, &m.PFCPSEReqFlags),
		opt(ie.TypeCreateBridgeInfoForTSC, &m.CreateBridgeInfoForTSC),
		list(ie.TypeCreateSRR, &m.CreateSRRs),
		opt(ie.TypeProvideATSSSControlInformation, &m.ProvideATSSSControlInformation),
		opt(ie.TypeRecoveryTimeStamp, &m.RecoveryTimeStamp),
		opt(ie.TypeSNSSAI, &m.SNSSAI),
		opt(ie.TypeHPLMNSNSSAI, &m.HPLMNSNSSAI),
	}
}

// SessionEstablishmentResponse answers a SessionEstablishmentRequest (TS 29.244 clause 7.5.3).
type SessionEstablishmentResponse struct {
	base
	NodeID                     *ie.IE
	Cause                      *ie.IE
	OffendingIE                *ie.IE
	UPFSEID                    *ie.IE
	CreatedPDRs                []*ie.IE
	LoadControlInformation     *ie.IE
	OverloadControlInformation *ie.IE
	FQCSIDs                    []*ie.IE
	FailedRuleID               *ie.IE
	CreatedTrafficEndpoints    []*ie.IE
	CreatedBridgeInfoForTSC    *ie.IE
	ATSSSControlParameters     *ie.IE
}

func (m *SessionEstablishmentResponse) MessageType() Type {
	return TypeSessionEstablishmentResponse
}

func (m *SessionEstablishmentResponse) fields() []field {
	return []field{
		required(ie.TypeNodeID, &m.NodeID),
		required(ie.TypeCause, &m.Cause),
		opt(ie.TypeOffendingIE, &m.OffendingIE),
		opt(ie.TypeFSEID, &m.UPFSEID),
		list(ie.TypeCreatedPDR, &m.CreatedPDRs),
		opt(ie.TypeLoadControlInformation, &m.LoadControlInformation),
		opt(ie.TypeOverloadControlInformation, &m.OverloadControlInformation),
		list(ie.TypeFQCSID, &m.FQCSIDs),
		opt(ie.TypeFailedRuleID, &m.FailedRuleID),
		list(ie.TypeCreatedTrafficEndpoint, &m.CreatedTrafficEndpoints),
		opt(ie.TypeCreatedBridgeInfoForTSC, &m.CreatedBridgeInfoForTSC),
		opt(ie.TypeATSSSControlParameters, &m.ATSSSControlParameters),
	}
}

// SessionModificationRequest changes the rules of an existing session (TS 29.244 clause 7.5.4).
type SessionModificationRequest struct {
	base
	CPFSEID                  *ie.IE
	RemovePDRs               []*ie.IE
	RemoveFARs               []*ie.IE
	RemoveURRs               []*ie.IE
	RemoveQERs               []*ie.IE
	RemoveBAR                *ie.IE
	RemoveTrafficEndpoints   []*ie.IE
	CreatePDRs               []*ie.IE
	CreateFARs               []*ie.IE
	CreateURRs               []*ie.IE
	CreateQERs               []*ie.IE
	CreateBAR                *ie.IE
	CreateTrafficEndpoints   []*ie.IE
	UpdatePDRs               []*ie.IE
	UpdateFARs               []*ie.IE
	UpdateURRs               []*ie.IE
	UpdateQERs               []*ie.IE
	UpdateBAR                *ie.IE
	UpdateTrafficEndpoints   []*ie.IE
	PFCPSMReqFlags           *ie.IE
	QueryURRs                []*ie.IE
	FQCSIDs                  []*ie.IE
	UserPlaneInactivityTimer *ie.IE
	QueryURRReference        *ie.IE
	TraceInformation         *ie.IE
	RemoveMARs               []*ie.IE
	UpdateMARs               []*ie.IE
	CreateMARs               []*ie.IE
	NodeID                   *ie.IE
	RemoveSRRs               []*ie.IE
	CreateSRRs               []*ie.IE
	UpdateSRRs               []*ie.IE
}

func (m *SessionModificationRequest) MessageType() Type {
	return TypeSessionModificationRequest
}

func (m *SessionModificationRequest) fields() []field {
	return []field{
		opt(ie.TypeFSEID, &m.CPFSEID),
		list(ie.TypeRemovePDR, &m.RemovePDRs),
		list(ie.TypeRemoveFAR, &m.RemoveFARs),
		list(ie.TypeRemoveURR, &m.RemoveURRs),
		list(ie.TypeRemoveQER, &m.RemoveQERs),
		opt(ie.TypeRemoveBAR, &m.RemoveBAR),
		list(ie.TypeRemoveTrafficEndpoint, &m.RemoveTrafficEndpoints),
		list(ie.TypeCreatePDR, &m.CreatePDRs),
		list(ie.TypeCreateFAR, &m.CreateFARs),
		list(ie.TypeCreateURR, &m.CreateURRs),
		list(ie.TypeCreateQER, &m.CreateQERs),
		opt(ie.TypeCreateBAR, &m.CreateBAR),
		list(ie.TypeCreateTrafficEndpoint, &m.CreateTrafficEndpoints),
		list(ie.TypeUpdatePDR, &m.UpdatePDRs),
		list(ie.TypeUpdateFAR, &m.UpdateFARs),
		list(ie.TypeUpdateURR, &m.UpdateURRs),
		list(ie.TypeUpdateQER, &m.UpdateQERs),
		opt(ie.TypeUpdateBAR, &m.UpdateBAR),
		list(ie.TypeUpdateTrafficEndpoint, &m.UpdateTrafficEndpoints),
		opt(ie.TypePFCPSMReqFlags, &m.PFCPSMReqFlags),
		list(ie.TypeQueryURR, &m.QueryURRs),
		list(ie.TypeFQCSID, &m.FQCSIDs),
		opt(ie.TypeUserPlaneInactivityTimer, &m.UserPlaneInactivityTimer),
		opt(ie.TypeQueryURRReference, &m.QueryURRReference),
		opt(ie.TypeTraceInformation, &m.TraceInformation),
		list(ie.TypeRemoveMAR, &m.RemoveMARs),
		list(ie.TypeUpdateMAR, &m.UpdateMARs),
		list(ie.TypeCreateMAR, &m.CreateMARs),
		opt(ie.TypeNodeID, &m.NodeID),
		list(ie.TypeRemoveSRR, &m.RemoveSRRs),
		list(ie.TypeCreateSRR, &m.CreateSRRs),
		list(ie.TypeUpdateSRR, &m.UpdateSRRs),
	}
}

// SessionModificationResponse answers a SessionModificationRequest (TS 29.244 clause 7.5.5).
type SessionModificationResponse struct {
	base
	Cause                             *ie.IE
	OffendingIE                       *ie.IE
	CreatedPDRs                       []*ie.IE
	LoadControlInformation            *ie.IE
	OverloadControlInformation        *ie.IE
	UsageReports                      []*ie.IE
	FailedRuleID                      *ie.IE
	AdditionalUsageReportsInformation *ie.IE
	CreatedTrafficEndpoints           []*ie.IE
	UpdatedPDRs                       []*ie.IE
}

func (m *SessionModificationResponse) MessageType() Type {
	return TypeSessionModificationResponse
}

func (m *SessionModificationResponse) fields() []field {
	return []field{
		required(ie.TypeCause, &m.Cause),
		opt(ie.TypeOffendingIE, &m.OffendingIE),
		list(ie.TypeCreatedPDR, &m.CreatedPDRs),
		opt(ie.TypeLoadControlInformation, &m.LoadControlInformation),
		opt(ie.TypeOverloadControlInformation, &m.OverloadControlInformation),
		list(ie.TypeUsageReportWithinSessionModificationResponse, &m.UsageReports),
		opt(ie.TypeFailedRuleID, &m.FailedRuleID),
		opt(ie.TypeAdditionalUsageReportsInformation, &m.AdditionalUsageReportsInformation),
		list(ie.TypeCreatedTrafficEndpoint, &m.CreatedTrafficEndpoints),
		list(ie.TypeUpdatedPDR, &m.UpdatedPDRs),
	}
}

// SessionDeletionRequest deletes a session (TS 29.244 clause 7.5.6).
type SessionDeletionRequest struct {
	base
	NodeID  *ie.IE
	CPFSEID *ie.IE
}

func (m *SessionDeletionRequest) MessageType() Type {
	return TypeSessionDeletionRequest
}

func (m *SessionDeletionRequest) fields() []field {
	return []field{
		opt(ie.TypeNodeID, &m.NodeID),
		opt(ie.TypeFSEID, &m.CPFSEID),
	}
}

// SessionDeletionResponse answers a SessionDeletionRequest with the final usage
// reports (TS 29.244 clause 7.5.7).
type SessionDeletionResponse struct {
	base
	Cause                             *ie.IE
	OffendingIE                       *ie.IE
	LoadControlInformation            *ie.IE
	OverloadControlInformation        *ie.IE
	UsageReports                      []*ie.IE
	AdditionalUsageReportsInformation *ie.IE
	PacketRateStatusReports           []*ie.IE
	SessionReports                    []*ie.IE
	PFCPSDRspFlags                    *ie.IE
}

func (m *SessionDeletionResponse) MessageType() Type {
	return TypeSessionDeletionResponse
}

func (m *SessionDeletionResponse) fields() []field {
	return []field{
		required(ie.TypeCause, &m.Cause),
		opt(ie.TypeOffendingIE, &m.OffendingIE),
		opt(ie.TypeLoadControlInformation, &m.LoadControlInformation),
		opt(ie.TypeOverloadControlInformation, &m.OverloadControlInformation),
		list(ie.TypeUsageReportWithinSessionDeletionResponse, &m.UsageReports),
		opt(ie.TypeAdditionalUsageReportsInformation, &m.AdditionalUsageReportsInformation),
		list(ie.TypePacketRateStatusReport, &m.PacketRateStatusReports),
		list(ie.TypeSessionReport, &m.SessionReports),
		opt(ie.TypePFCPSDRspFlags, &m.PFCPSDRspFlags),
	}
}

// SessionReportRequest reports session events to the CP function (TS 29.244 clause 7.5.8).
type SessionReportRequest struct {
	base
	ReportType                        *ie.IE
	DownlinkDataReport                *ie.IE
	UsageReports                      []*ie.IE
	ErrorIndicationReport             *ie.IE
	LoadControlInformation            *ie.IE
	OverloadControlInformation        *ie.IE
	AdditionalUsageReportsInformation *ie.IE
	PFCPSRReqFlags                    *ie.IE
	PacketRateStatusReport            *ie.IE
	SessionReports                    []*ie.IE
}

func (m *SessionReportRequest) MessageType() Type {
	return TypeSessionReportRequest
}

func (m *SessionReportRequest) fields() []field {
	return []field{
		required(ie.TypeReportType, &m.ReportType),
		opt(ie.TypeDownlinkDataReport, &m.DownlinkDataReport),
		list(ie.TypeUsageReportWithinSessionReportRequest, &m.UsageReports),
		opt(ie.TypeErrorIndicationReport, &m.ErrorIndicationReport),
		opt(ie.TypeLoadControlInformation, &m.LoadControlInformation),
		opt(ie.TypeOverloadControlInformation, &m.OverloadControlInformation),
		opt(ie.TypeAdditionalUsageReportsInformation, &m.AdditionalUsageReportsInformation),
		opt(ie.TypePFCPSRReqFlags, &m.PFCPSRReqFlags),
		opt(ie.TypePacketRateStatusReport, &m.PacketRateStatusReport),
		list(ie.TypeSessionReport, &m.SessionReports),
	}
}

// SessionReportResponse answers a SessionReportRequest (TS 29.244 clause 7.5.9).
type SessionReportResponse struct {
	base
	Cause                   *ie.IE
	OffendingIE             *ie.IE
	UpdateBAR               *ie.IE
	PFCPSRRspFlags          *ie.IE
	CPFSEID                 *ie.IE
	AlternativeSMFIPAddress *ie.IE
}

func (m *SessionReportResponse) MessageType() Type {
	return TypeSessionReportResponse
}

func (m *SessionReportResponse) fields() []field {
	return []field{
		required(ie.TypeCause, &m.Cause),
		opt(ie.TypeOffendingIE, &m.OffendingIE),
		opt(ie.TypeUpdateBARWithinSessionReportResponse, &m.UpdateBAR),
		opt(ie.TypePFCPSRRspFlags, &m.PFCPSRRspFlags),
		opt(ie.TypeFSEID, &m.CPFSEID),
		opt(ie.TypeAlternativeSMFIPAddress, &m.AlternativeSMFIPAddress),
	}
}
