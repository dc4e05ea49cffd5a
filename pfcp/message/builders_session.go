/* YaPFCP - Yet another PFCP codec
 *
 * Copyright (C) 2020-2024 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package message

import (
	"time"

	"github.com/yapfcp/yapfcp/pfcp/ie"
	"github.com/yapfcp/yapfcp/pfcp/util"
)

// Builders for session-related messages. The header SEID is always present;
// a Session Establishment Request is sent with SEID 0.

// SessionEstablishmentRequestBuilder assembles a SessionEstablishmentRequest.
type SessionEstablishmentRequestBuilder struct {
	builder
	m *SessionEstablishmentRequest
}

func NewSessionEstablishmentRequestBuilder(seid uint64, seq uint32) *SessionEstablishmentRequestBuilder {
	m := &SessionEstablishmentRequest{}
	return &SessionEstablishmentRequestBuilder{builder: newBuilder(m, seq, &seid), m: m}
}

func (b *SessionEstablishmentRequestBuilder) NodeID(n ie.NodeID) *SessionEstablishmentRequestBuilder {
	b.validate("NodeID", n)
	b.m.NodeID = n.IE()
	return b
}

// CPFSEID sets the F-SEID the CP function allocated for the session.
func (b *SessionEstablishmentRequestBuilder) CPFSEID(f ie.FSEID) *SessionEstablishmentRequestBuilder {
	b.validate("CPFSEID", f)
	b.m.CPFSEID = f.IE()
	return b
}

func (b *SessionEstablishmentRequestBuilder) CreatePDR(c ie.CreatePDR) *SessionEstablishmentRequestBuilder {
	if i := b.keep(b.next("CreatePDR"))(c.IE()); i != nil {
		b.m.CreatePDRs = append(b.m.CreatePDRs, i)
	}
	return b
}

func (b *SessionEstablishmentRequestBuilder) CreateFAR(c ie.CreateFAR) *SessionEstablishmentRequestBuilder {
	if i := b.keep(b.next("CreateFAR"))(c.IE()); i != nil {
		b.m.CreateFARs = append(b.m.CreateFARs, i)
	}
	return b
}

func (b *SessionEstablishmentRequestBuilder) CreateURR(c ie.CreateURR) *SessionEstablishmentRequestBuilder {
	if i := b.keep(b.next("CreateURR"))(c.IE()); i != nil {
		b.m.CreateURRs = append(b.m.CreateURRs, i)
	}
	return b
}

func (b *SessionEstablishmentRequestBuilder) CreateQER(c ie.CreateQER) *SessionEstablishmentRequestBuilder {
	if i := b.keep(b.next("CreateQER"))(c.IE()); i != nil {
		b.m.CreateQERs = append(b.m.CreateQERs, i)
	}
	return b
}

func (b *SessionEstablishmentRequestBuilder) CreateBAR(bar ie.BAR) *SessionEstablishmentRequestBuilder {
	b.m.CreateBAR = b.keep("CreateBAR")(ie.NewBAR(ie.TypeCreateBAR, bar))
	return b
}

func (b *SessionEstablishmentRequestBuilder) CreateTrafficEndpoint(t ie.TrafficEndpoint) *SessionEstablishmentRequestBuilder {
	field := b.next("CreateTrafficEndpoint")
	if i := b.keep(field)(t.IE(ie.TypeCreateTrafficEndpoint)); i != nil {
		b.m.CreateTrafficEndpoints = append(b.m.CreateTrafficEndpoints, i)
	}
	return b
}

func (b *SessionEstablishmentRequestBuilder) PDNType(v ie.PDNType) *SessionEstablishmentRequestBuilder {
	b.m.PDNType = b.keep("PDNType")(ie.NewPDNType(v))
	return b
}

func (b *SessionEstablishmentRequestBuilder) FQCSID(f ie.FQCSID) *SessionEstablishmentRequestBuilder {
	b.validate(b.next("FQCSID"), f)
	b.m.FQCSIDs = append(b.m.FQCSIDs, f.IE())
	return b
}

func (b *SessionEstablishmentRequestBuilder) InactivityTimer(d time.Duration) *SessionEstablishmentRequestBuilder {
	b.m.UserPlaneInactivityTimer = b.keep("UserPlaneInactivityTimer")(ie.NewSeconds(ie.TypeUserPlaneInactivityTimer, d))
	return b
}

func (b *SessionEstablishmentRequestBuilder) UserID(u ie.UserID) *SessionEstablishmentRequestBuilder {
	b.validate("UserID", u)
	b.m.UserID = u.IE()
	return b
}

func (b *SessionEstablishmentRequestBuilder) APNDNN(name string) *SessionEstablishmentRequestBuilder {
	b.m.APNDNN = b.keep("APNDNN")(ie.NewAPNDNN(name))
	return b
}

func (b *SessionEstablishmentRequestBuilder) Flags(flags uint8) *SessionEstablishmentRequestBuilder {
	b.m.PFCPSEReqFlags = b.keep("PFCPSEReqFlags")(ie.NewFlags(ie.TypePFCPSEReqFlags, flags))
	return b
}

func (b *SessionEstablishmentRequestBuilder) RecoveryTimeStamp(ts time.Time) *SessionEstablishmentRequestBuilder {
	b.m.RecoveryTimeStamp = ie.NewRecoveryTimeStamp(ts)
	return b
}

func (b *SessionEstablishmentRequestBuilder) SNSSAI(s ie.SNSSAI) *SessionEstablishmentRequestBuilder {
	b.validate("SNSSAI", s)
	b.m.SNSSAI = s.IE()
	return b
}

func (b *SessionEstablishmentRequestBuilder) Build() (*SessionEstablishmentRequest, error) {
	if err := b.finish(); err != nil {
		return nil, err
	}
	m := *b.m
	detach(&m)
	return &m, nil
}

// SessionEstablishmentResponseBuilder assembles a SessionEstablishmentResponse.
type SessionEstablishmentResponseBuilder struct {
	builder
	m *SessionEstablishmentResponse
}

func NewSessionEstablishmentResponseBuilder(seid uint64, seq uint32) *SessionEstablishmentResponseBuilder {
	m := &SessionEstablishmentResponse{}
	return &SessionEstablishmentResponseBuilder{builder: newBuilder(m, seq, &seid), m: m}
}

func (b *SessionEstablishmentResponseBuilder) NodeID(n ie.NodeID) *SessionEstablishmentResponseBuilder {
	b.validate("NodeID", n)
	b.m.NodeID = n.IE()
	return b
}

func (b *SessionEstablishmentResponseBuilder) Cause(c util.Cause) *SessionEstablishmentResponseBuilder {
	b.m.Cause = ie.NewCause(c)
	return b
}

func (b *SessionEstablishmentResponseBuilder) OffendingIE(t ie.Type) *SessionEstablishmentResponseBuilder {
	b.m.OffendingIE = ie.NewOffendingIE(t)
	return b
}

// UPFSEID sets the F-SEID the UP function allocated for the session.
func (b *SessionEstablishmentResponseBuilder) UPFSEID(f ie.FSEID) *SessionEstablishmentResponseBuilder {
	b.validate("UPFSEID", f)
	b.m.UPFSEID = f.IE()
	return b
}

func (b *SessionEstablishmentResponseBuilder) CreatedPDR(c ie.CreatedPDR) *SessionEstablishmentResponseBuilder {
	b.validate(b.next("CreatedPDR"), c)
	b.m.CreatedPDRs = append(b.m.CreatedPDRs, c.IE())
	return b
}

func (b *SessionEstablishmentResponseBuilder) LoadControlInformation(l ie.LoadControlInformation) *SessionEstablishmentResponseBuilder {
	b.m.LoadControlInformation = b.keep("LoadControlInformation")(l.IE())
	return b
}

func (b *SessionEstablishmentResponseBuilder) OverloadControlInformation(o ie.OverloadControlInformation) *SessionEstablishmentResponseBuilder {
	b.m.OverloadControlInformation = b.keep("OverloadControlInformation")(o.IE())
	return b
}

func (b *SessionEstablishmentResponseBuilder) FQCSID(f ie.FQCSID) *SessionEstablishmentResponseBuilder {
	b.validate(b.next("FQCSID"), f)
	b.m.FQCSIDs = append(b.m.FQCSIDs, f.IE())
	return b
}

func (b *SessionEstablishmentResponseBuilder) FailedRuleID(f ie.FailedRuleID) *SessionEstablishmentResponseBuilder {
	b.validate("FailedRuleID", f)
	b.m.FailedRuleID = f.IE()
	return b
}

func (b *SessionEstablishmentResponseBuilder) CreatedTrafficEndpoint(c ie.CreatedTrafficEndpoint) *SessionEstablishmentResponseBuilder {
	b.m.CreatedTrafficEndpoints = append(b.m.CreatedTrafficEndpoints, c.IE())
	return b
}

func (b *SessionEstablishmentResponseBuilder) Build() (*SessionEstablishmentResponse, error) {
	if err := b.finish(); err != nil {
		return nil, err
	}
	m := *b.m
	detach(&m)
	return &m, nil
}

// SessionModificationRequestBuilder assembles a SessionModificationRequest.
type SessionModificationRequestBuilder struct {
	builder
	m *SessionModificationRequest
}

func NewSessionModificationRequestBuilder(seid uint64, seq uint32) *SessionModificationRequestBuilder {
	m := &SessionModificationRequest{}
	return &SessionModificationRequestBuilder{builder: newBuilder(m, seq, &seid), m: m}
}

func (b *SessionModificationRequestBuilder) CPFSEID(f ie.FSEID) *SessionModificationRequestBuilder {
	b.validate("CPFSEID", f)
	b.m.CPFSEID = f.IE()
	return b
}

func (b *SessionModificationRequestBuilder) RemovePDR(id uint16) *SessionModificationRequestBuilder {
	b.m.RemovePDRs = append(b.m.RemovePDRs, ie.NewRemovePDR(id))
	return b
}

func (b *SessionModificationRequestBuilder) RemoveFAR(id uint32) *SessionModificationRequestBuilder {
	b.m.RemoveFARs = append(b.m.RemoveFARs, ie.NewRemoveFAR(id))
	return b
}

func (b *SessionModificationRequestBuilder) RemoveURR(id uint32) *SessionModificationRequestBuilder {
	b.m.RemoveURRs = append(b.m.RemoveURRs, ie.NewRemoveURR(id))
	return b
}

func (b *SessionModificationRequestBuilder) RemoveQER(id uint32) *SessionModificationRequestBuilder {
	b.m.RemoveQERs = append(b.m.RemoveQERs, ie.NewRemoveQER(id))
	return b
}

func (b *SessionModificationRequestBuilder) RemoveBAR(id uint8) *SessionModificationRequestBuilder {
	b.m.RemoveBAR = ie.NewRemoveBAR(id)
	return b
}

func (b *SessionModificationRequestBuilder) RemoveTrafficEndpoint(id uint8) *SessionModificationRequestBuilder {
	b.m.RemoveTrafficEndpoints = append(b.m.RemoveTrafficEndpoints, ie.NewRemoveTrafficEndpoint(id))
	return b
}

func (b *SessionModificationRequestBuilder) CreatePDR(c ie.CreatePDR) *SessionModificationRequestBuilder {
	if i := b.keep(b.next("CreatePDR"))(c.IE()); i != nil {
		b.m.CreatePDRs = append(b.m.CreatePDRs, i)
	}
	return b
}

func (b *SessionModificationRequestBuilder) CreateFAR(c ie.CreateFAR) *SessionModificationRequestBuilder {
	if i := b.keep(b.next("CreateFAR"))(c.IE()); i != nil {
		b.m.CreateFARs = append(b.m.CreateFARs, i)
	}
	return b
}

func (b *SessionModificationRequestBuilder) CreateURR(c ie.CreateURR) *SessionModificationRequestBuilder {
	if i := b.keep(b.next("CreateURR"))(c.IE()); i != nil {
		b.m.CreateURRs = append(b.m.CreateURRs, i)
	}
	return b
}

func (b *SessionModificationRequestBuilder) CreateQER(c ie.CreateQER) *SessionModificationRequestBuilder {
	if i := b.keep(b.next("CreateQER"))(c.IE()); i != nil {
		b.m.CreateQERs = append(b.m.CreateQERs, i)
	}
	return b
}

func (b *SessionModificationRequestBuilder) CreateBAR(bar ie.BAR) *SessionModificationRequestBuilder {
	b.m.CreateBAR = b.keep("CreateBAR")(ie.NewBAR(ie.TypeCreateBAR, bar))
	return b
}

func (b *SessionModificationRequestBuilder) UpdatePDR(u ie.UpdatePDR) *SessionModificationRequestBuilder {
	if i := b.keep(b.next("UpdatePDR"))(u.IE()); i != nil {
		b.m.UpdatePDRs = append(b.m.UpdatePDRs, i)
	}
	return b
}

func (b *SessionModificationRequestBuilder) UpdateFAR(u ie.UpdateFAR) *SessionModificationRequestBuilder {
	if i := b.keep(b.next("UpdateFAR"))(u.IE()); i != nil {
		b.m.UpdateFARs = append(b.m.UpdateFARs, i)
	}
	return b
}

func (b *SessionModificationRequestBuilder) UpdateURR(u ie.UpdateURR) *SessionModificationRequestBuilder {
	if i := b.keep(b.next("UpdateURR"))(u.IE()); i != nil {
		b.m.UpdateURRs = append(b.m.UpdateURRs, i)
	}
	return b
}

func (b *SessionModificationRequestBuilder) UpdateQER(u ie.UpdateQER) *SessionModificationRequestBuilder {
	if i := b.keep(b.next("UpdateQER"))(u.IE()); i != nil {
		b.m.UpdateQERs = append(b.m.UpdateQERs, i)
	}
	return b
}

func (b *SessionModificationRequestBuilder) UpdateBAR(bar ie.BAR) *SessionModificationRequestBuilder {
	b.m.UpdateBAR = b.keep("UpdateBAR")(ie.NewBAR(ie.TypeUpdateBAR, bar))
	return b
}

func (b *SessionModificationRequestBuilder) UpdateTrafficEndpoint(t ie.TrafficEndpoint) *SessionModificationRequestBuilder {
	field := b.next("UpdateTrafficEndpoint")
	if i := b.keep(field)(t.IE(ie.TypeUpdateTrafficEndpoint)); i != nil {
		b.m.UpdateTrafficEndpoints = append(b.m.UpdateTrafficEndpoints, i)
	}
	return b
}

func (b *SessionModificationRequestBuilder) Flags(flags uint8) *SessionModificationRequestBuilder {
	b.m.PFCPSMReqFlags = b.keep("PFCPSMReqFlags")(ie.NewFlags(ie.TypePFCPSMReqFlags, flags))
	return b
}

func (b *SessionModificationRequestBuilder) QueryURR(id uint32) *SessionModificationRequestBuilder {
	b.m.QueryURRs = append(b.m.QueryURRs, ie.NewQueryURR(id))
	return b
}

func (b *SessionModificationRequestBuilder) QueryURRReference(ref uint32) *SessionModificationRequestBuilder {
	b.m.QueryURRReference = ie.NewQueryURRReference(ref)
	return b
}

func (b *SessionModificationRequestBuilder) InactivityTimer(d time.Duration) *SessionModificationRequestBuilder {
	b.m.UserPlaneInactivityTimer = b.keep("UserPlaneInactivityTimer")(ie.NewSeconds(ie.TypeUserPlaneInactivityTimer, d))
	return b
}

func (b *SessionModificationRequestBuilder) NodeID(n ie.NodeID) *SessionModificationRequestBuilder {
	b.validate("NodeID", n)
	b.m.NodeID = n.IE()
	return b
}

func (b *SessionModificationRequestBuilder) Build() (*SessionModificationRequest, error) {
	if err := b.finish(); err != nil {
		return nil, err
	}
	m := *b.m
	detach(&m)
	return &m, nil
}

// SessionModificationResponseBuilder assembles a SessionModificationResponse.
type SessionModificationResponseBuilder struct {
	builder
	m *SessionModificationResponse
}

func NewSessionModificationResponseBuilder(seid uint64, seq uint32) *SessionModificationResponseBuilder {
	m := &SessionModificationResponse{}
	return &SessionModificationResponseBuilder{builder: newBuilder(m, seq, &seid), m: m}
}

func (b *SessionModificationResponseBuilder) Cause(c util.Cause) *SessionModificationResponseBuilder {
	b.m.Cause = ie.NewCause(c)
	return b
}

func (b *SessionModificationResponseBuilder) OffendingIE(t ie.Type) *SessionModificationResponseBuilder {
	b.m.OffendingIE = ie.NewOffendingIE(t)
	return b
}

func (b *SessionModificationResponseBuilder) CreatedPDR(c ie.CreatedPDR) *SessionModificationResponseBuilder {
	b.validate(b.next("CreatedPDR"), c)
	b.m.CreatedPDRs = append(b.m.CreatedPDRs, c.IE())
	return b
}

func (b *SessionModificationResponseBuilder) LoadControlInformation(l ie.LoadControlInformation) *SessionModificationResponseBuilder {
	b.m.LoadControlInformation = b.keep("LoadControlInformation")(l.IE())
	return b
}

func (b *SessionModificationResponseBuilder) OverloadControlInformation(o ie.OverloadControlInformation) *SessionModificationResponseBuilder {
	b.m.OverloadControlInformation = b.keep("OverloadControlInformation")(o.IE())
	return b
}

func (b *SessionModificationResponseBuilder) UsageReport(u ie.UsageReport) *SessionModificationResponseBuilder {
	field := b.next("UsageReport")
	if i := b.keep(field)(u.IE(ie.TypeUsageReportWithinSessionModificationResponse)); i != nil {
		b.m.UsageReports = append(b.m.UsageReports, i)
	}
	return b
}

func (b *SessionModificationResponseBuilder) FailedRuleID(f ie.FailedRuleID) *SessionModificationResponseBuilder {
	b.validate("FailedRuleID", f)
	b.m.FailedRuleID = f.IE()
	return b
}

func (b *SessionModificationResponseBuilder) UpdatedPDR(c ie.CreatedPDR) *SessionModificationResponseBuilder {
	b.validate(b.next("UpdatedPDR"), c)
	b.m.UpdatedPDRs = append(b.m.UpdatedPDRs, c.UpdatedPDR())
	return b
}

func (b *SessionModificationResponseBuilder) Build() (*SessionModificationResponse, error) {
	if err := b.finish(); err != nil {
		return nil, err
	}
	m := *b.m
	detach(&m)
	return &m, nil
}

// SessionDeletionRequestBuilder assembles a SessionDeletionRequest.
type SessionDeletionRequestBuilder struct {
	builder
	m *SessionDeletionRequest
}

func NewSessionDeletionRequestBuilder(seid uint64, seq uint32) *SessionDeletionRequestBuilder {
	m := &SessionDeletionRequest{}
	return &SessionDeletionRequestBuilder{builder: newBuilder(m, seq, &seid), m: m}
}

func (b *SessionDeletionRequestBuilder) NodeID(n ie.NodeID) *SessionDeletionRequestBuilder {
	b.validate("NodeID", n)
	b.m.NodeID = n.IE()
	return b
}

func (b *SessionDeletionRequestBuilder) CPFSEID(f ie.FSEID) *SessionDeletionRequestBuilder {
	b.validate("CPFSEID", f)
	b.m.CPFSEID = f.IE()
	return b
}

func (b *SessionDeletionRequestBuilder) Build() (*SessionDeletionRequest, error) {
	if err := b.finish(); err != nil {
		return nil, err
	}
	m := *b.m
	detach(&m)
	return &m, nil
}

// SessionDeletionResponseBuilder assembles a SessionDeletionResponse.
type SessionDeletionResponseBuilder struct {
	builder
	m *SessionDeletionResponse
}

func NewSessionDeletionResponseBuilder(seid uint64, seq uint32) *SessionDeletionResponseBuilder {
	m := &SessionDeletionResponse{}
	return &SessionDeletionResponseBuilder{builder: newBuilder(m, seq, &seid), m: m}
}

func (b *SessionDeletionResponseBuilder) Cause(c util.Cause) *SessionDeletionResponseBuilder {
	b.m.Cause = ie.NewCause(c)
	return b
}

func (b *SessionDeletionResponseBuilder) OffendingIE(t ie.Type) *SessionDeletionResponseBuilder {
	b.m.OffendingIE = ie.NewOffendingIE(t)
	return b
}

func (b *SessionDeletionResponseBuilder) LoadControlInformation(l ie.LoadControlInformation) *SessionDeletionResponseBuilder {
	b.m.LoadControlInformation = b.keep("LoadControlInformation")(l.IE())
	return b
}

func (b *SessionDeletionResponseBuilder) OverloadControlInformation(o ie.OverloadControlInformation) *SessionDeletionResponseBuilder {
	b.m.OverloadControlInformation = b.keep("OverloadControlInformation")(o.IE())
	return b
}

func (b *SessionDeletionResponseBuilder) UsageReport(u ie.UsageReport) *SessionDeletionResponseBuilder {
	field := b.next("UsageReport")
	if i := b.keep(field)(u.IE(ie.TypeUsageReportWithinSessionDeletionResponse)); i != nil {
		b.m.UsageReports = append(b.m.UsageReports, i)
	}
	return b
}

func (b *SessionDeletionResponseBuilder) Build() (*SessionDeletionResponse, error) {
	if err := b.finish(); err != nil {
		return nil, err
	}
	m := *b.m
	detach(&m)
	return &m, nil
}

// SessionReportRequestBuilder assembles a SessionReportRequest.
type SessionReportRequestBuilder struct {
	builder
	m *SessionReportRequest
}

func NewSessionReportRequestBuilder(seid uint64, seq uint32) *SessionReportRequestBuilder {
	m := &SessionReportRequest{}
	return &SessionReportRequestBuilder{builder: newBuilder(m, seq, &seid), m: m}
}

// ReportType sets the report type flags, such as ie.ReportTypeUSAR.
func (b *SessionReportRequestBuilder) ReportType(flags uint8) *SessionReportRequestBuilder {
	b.m.ReportType = b.keep("ReportType")(ie.NewFlags(ie.TypeReportType, flags))
	return b
}

func (b *SessionReportRequestBuilder) DownlinkDataReport(d ie.DownlinkDataReport) *SessionReportRequestBuilder {
	b.validate("DownlinkDataReport", d)
	b.m.DownlinkDataReport = d.IE()
	return b
}

func (b *SessionReportRequestBuilder) UsageReport(u ie.UsageReport) *SessionReportRequestBuilder {
	field := b.next("UsageReport")
	if i := b.keep(field)(u.IE(ie.TypeUsageReportWithinSessionReportRequest)); i != nil {
		b.m.UsageReports = append(b.m.UsageReports, i)
	}
	return b
}

// ErrorIndicationReport reports the remote F-TEIDs that returned GTP-U error indications.
func (b *SessionReportRequestBuilder) ErrorIndicationReport(remote ...ie.FTEID) *SessionReportRequestBuilder {
	b.m.ErrorIndicationReport = b.keep("ErrorIndicationReport")(ie.NewErrorIndicationReport(remote...))
	return b
}

func (b *SessionReportRequestBuilder) LoadControlInformation(l ie.LoadControlInformation) *SessionReportRequestBuilder {
	b.m.LoadControlInformation = b.keep("LoadControlInformation")(l.IE())
	return b
}

func (b *SessionReportRequestBuilder) OverloadControlInformation(o ie.OverloadControlInformation) *SessionReportRequestBuilder {
	b.m.OverloadControlInformation = b.keep("OverloadControlInformation")(o.IE())
	return b
}

func (b *SessionReportRequestBuilder) Flags(flags uint8) *SessionReportRequestBuilder {
	b.m.PFCPSRReqFlags = b.keep("PFCPSRReqFlags")(ie.NewFlags(ie.TypePFCPSRReqFlags, flags))
	return b
}

func (b *SessionReportRequestBuilder) Build() (*SessionReportRequest, error) {
	if err := b.finish(); err != nil {
		return nil, err
	}
	m := *b.m
	detach(&m)
	return &m, nil
}

// SessionReportResponseBuilder assembles a SessionReportResponse.
type SessionReportResponseBuilder struct {
	builder
	m *SessionReportResponse
}

func NewSessionReportResponseBuilder(seid uint64, seq uint32) *SessionReportResponseBuilder {
	m := &SessionReportResponse{}
	return &SessionReportResponseBuilder{builder: newBuilder(m, seq, &seid), m: m}
}

func (b *SessionReportResponseBuilder) Cause(c util.Cause) *SessionReportResponseBuilder {
	b.m.Cause = ie.NewCause(c)
	return b
}

func (b *SessionReportResponseBuilder) OffendingIE(t ie.Type) *SessionReportResponseBuilder {
	b.m.OffendingIE = ie.NewOffendingIE(t)
	return b
}

func (b *SessionReportResponseBuilder) UpdateBAR(bar ie.BAR) *SessionReportResponseBuilder {
	b.m.UpdateBAR = b.keep("UpdateBAR")(ie.NewBAR(ie.TypeUpdateBARWithinSessionReportResponse, bar))
	return b
}

func (b *SessionReportResponseBuilder) Flags(flags uint8) *SessionReportResponseBuilder {
	b.m.PFCPSRRspFlags = b.keep("PFCPSRRspFlags")(ie.NewFlags(ie.TypePFCPSRRspFlags, flags))
	return b
}

func (b *SessionReportResponseBuilder) CPFSEID(f ie.FSEID) *SessionReportResponseBuilder {
	b.validate("CPFSEID", f)
	b.m.CPFSEID = f.IE()
	return b
}

func (b *SessionReportResponseBuilder) AlternativeSMFIPAddress(a ie.IPAddress) *SessionReportResponseBuilder {
	b.m.AlternativeSMFIPAddress = b.keep("AlternativeSMFIPAddress")(ie.NewIPAddressIE(ie.TypeAlternativeSMFIPAddress, a))
	return b
}

func (b *SessionReportResponseBuilder) Build() (*SessionReportResponse, error) {
	if err := b.finish(); err != nil {
		return nil, err
	}
	m := *b.m
	detach(&m)
	return &m, nil
}
