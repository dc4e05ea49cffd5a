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

// Builders for node-related messages. Build returns the message under
// construction, so a builder should not be reused after a successful Build.

////////////
// Heartbeat
////////////

// HeartbeatRequestBuilder assembles a HeartbeatRequest.
type HeartbeatRequestBuilder struct {
	builder
	m *HeartbeatRequest
}

func NewHeartbeatRequestBuilder(seq uint32) *HeartbeatRequestBuilder {
	m := &HeartbeatRequest{}
	return &HeartbeatRequestBuilder{builder: newBuilder(m, seq, nil), m: m}
}

func (b *HeartbeatRequestBuilder) RecoveryTimeStamp(ts time.Time) *HeartbeatRequestBuilder {
	b.m.RecoveryTimeStamp = ie.NewRecoveryTimeStamp(ts)
	return b
}

func (b *HeartbeatRequestBuilder) SourceIPAddress(a ie.IPAddress) *HeartbeatRequestBuilder {
	b.m.SourceIPAddress = b.keep("SourceIPAddress")(ie.NewIPAddressIE(ie.TypeSourceIPAddress, a))
	return b
}

func (b *HeartbeatRequestBuilder) Build() (*HeartbeatRequest, error) {
	if err := b.finish(); err != nil {
		return nil, err
	}
	m := *b.m
	detach(&m)
	return &m, nil
}

// HeartbeatResponseBuilder assembles a HeartbeatResponse.
type HeartbeatResponseBuilder struct {
	builder
	m *HeartbeatResponse
}

func NewHeartbeatResponseBuilder(seq uint32) *HeartbeatResponseBuilder {
	m := &HeartbeatResponse{}
	return &HeartbeatResponseBuilder{builder: newBuilder(m, seq, nil), m: m}
}

func (b *HeartbeatResponseBuilder) RecoveryTimeStamp(ts time.Time) *HeartbeatResponseBuilder {
	b.m.RecoveryTimeStamp = ie.NewRecoveryTimeStamp(ts)
	return b
}

func (b *HeartbeatResponseBuilder) Build() (*HeartbeatResponse, error) {
	if err := b.finish(); err != nil {
		return nil, err
	}
	m := *b.m
	detach(&m)
	return &m, nil
}

/////////////////
// PFD management
/////////////////

// PFDManagementRequestBuilder assembles a PFDManagementRequest.
type PFDManagementRequestBuilder struct {
	builder
	m *PFDManagementRequest
}

func NewPFDManagementRequestBuilder(seq uint32) *PFDManagementRequestBuilder {
	m := &PFDManagementRequest{}
	return &PFDManagementRequestBuilder{builder: newBuilder(m, seq, nil), m: m}
}

// ApplicationPFDs adds the PFDs of one application.
func (b *PFDManagementRequestBuilder) ApplicationPFDs(a ie.ApplicationPFDs) *PFDManagementRequestBuilder {
	b.m.ApplicationIDsPFDs = append(b.m.ApplicationIDsPFDs, a.IE())
	return b
}

func (b *PFDManagementRequestBuilder) NodeID(n ie.NodeID) *PFDManagementRequestBuilder {
	b.validate("NodeID", n)
	b.m.NodeID = n.IE()
	return b
}

func (b *PFDManagementRequestBuilder) Build() (*PFDManagementRequest, error) {
	if err := b.finish(); err != nil {
		return nil, err
	}
	m := *b.m
	detach(&m)
	return &m, nil
}

// PFDManagementResponseBuilder assembles a PFDManagementResponse.
type PFDManagementResponseBuilder struct {
	builder
	m *PFDManagementResponse
}

func NewPFDManagementResponseBuilder(seq uint32) *PFDManagementResponseBuilder {
	m := &PFDManagementResponse{}
	return &PFDManagementResponseBuilder{builder: newBuilder(m, seq, nil), m: m}
}

func (b *PFDManagementResponseBuilder) Cause(c util.Cause) *PFDManagementResponseBuilder {
	b.m.Cause = ie.NewCause(c)
	return b
}

func (b *PFDManagementResponseBuilder) OffendingIE(t ie.Type) *PFDManagementResponseBuilder {
	b.m.OffendingIE = ie.NewOffendingIE(t)
	return b
}

func (b *PFDManagementResponseBuilder) NodeID(n ie.NodeID) *PFDManagementResponseBuilder {
	b.validate("NodeID", n)
	b.m.NodeID = n.IE()
	return b
}

func (b *PFDManagementResponseBuilder) Build() (*PFDManagementResponse, error) {
	if err := b.finish(); err != nil {
		return nil, err
	}
	m := *b.m
	detach(&m)
	return &m, nil
}

//////////////
// Association
//////////////

// AssociationSetupRequestBuilder assembles an AssociationSetupRequest.
type AssociationSetupRequestBuilder struct {
	builder
	m *AssociationSetupRequest
}

func NewAssociationSetupRequestBuilder(seq uint32) *AssociationSetupRequestBuilder {
	m := &AssociationSetupRequest{}
	return &AssociationSetupRequestBuilder{builder: newBuilder(m, seq, nil), m: m}
}

func (b *AssociationSetupRequestBuilder) NodeID(n ie.NodeID) *AssociationSetupRequestBuilder {
	b.validate("NodeID", n)
	b.m.NodeID = n.IE()
	return b
}

func (b *AssociationSetupRequestBuilder) RecoveryTimeStamp(ts time.Time) *AssociationSetupRequestBuilder {
	b.m.RecoveryTimeStamp = ie.NewRecoveryTimeStamp(ts)
	return b
}

func (b *AssociationSetupRequestBuilder) UPFunctionFeatures(features uint64) *AssociationSetupRequestBuilder {
	b.m.UPFunctionFeatures = ie.NewUPFunctionFeatures(features)
	return b
}

func (b *AssociationSetupRequestBuilder) CPFunctionFeatures(features uint64) *AssociationSetupRequestBuilder {
	b.m.CPFunctionFeatures = ie.NewCPFunctionFeatures(features)
	return b
}

func (b *AssociationSetupRequestBuilder) AlternativeSMFIPAddress(a ie.IPAddress) *AssociationSetupRequestBuilder {
	field := b.next("AlternativeSMFIPAddress")
	if i := b.keep(field)(ie.NewIPAddressIE(ie.TypeAlternativeSMFIPAddress, a)); i != nil {
		b.m.AlternativeSMFIPAddresses = append(b.m.AlternativeSMFIPAddresses, i)
	}
	return b
}

func (b *AssociationSetupRequestBuilder) SMFSetID(name string) *AssociationSetupRequestBuilder {
	b.m.SMFSetID = b.keep("SMFSetID")(ie.NewSMFSetID(name))
	return b
}

// SessionRetentionInformation lists the CP entities whose sessions the UP function should keep.
func (b *AssociationSetupRequestBuilder) SessionRetentionInformation(addrs ...ie.IPAddress) *AssociationSetupRequestBuilder {
	b.m.PFCPSessionRetentionInformation = b.keep("PFCPSessionRetentionInformation")(ie.NewPFCPSessionRetentionInformation(addrs...))
	return b
}

func (b *AssociationSetupRequestBuilder) UEIPAddressPoolInformation(p ie.UEIPAddressPoolInformation) *AssociationSetupRequestBuilder {
	if i := b.keep(b.next("UEIPAddressPoolInformation"))(p.IE()); i != nil {
		b.m.UEIPAddressPoolInformation = append(b.m.UEIPAddressPoolInformation, i)
	}
	return b
}

func (b *AssociationSetupRequestBuilder) NFInstanceID(uuid [16]byte) *AssociationSetupRequestBuilder {
	b.m.NFInstanceID = ie.NewNFInstanceID(uuid)
	return b
}

func (b *AssociationSetupRequestBuilder) Flags(flags uint8) *AssociationSetupRequestBuilder {
	b.m.PFCPASReqFlags = b.keep("PFCPASReqFlags")(ie.NewFlags(ie.TypePFCPASReqFlags, flags))
	return b
}

func (b *AssociationSetupRequestBuilder) Build() (*AssociationSetupRequest, error) {
	if err := b.finish(); err != nil {
		return nil, err
	}
	m := *b.m
	detach(&m)
	return &m, nil
}

// AssociationSetupResponseBuilder assembles an AssociationSetupResponse.
type AssociationSetupResponseBuilder struct {
	builder
	m *AssociationSetupResponse
}

func NewAssociationSetupResponseBuilder(seq uint32) *AssociationSetupResponseBuilder {
	m := &AssociationSetupResponse{}
	return &AssociationSetupResponseBuilder{builder: newBuilder(m, seq, nil), m: m}
}

func (b *AssociationSetupResponseBuilder) NodeID(n ie.NodeID) *AssociationSetupResponseBuilder {
	b.validate("NodeID", n)
	b.m.NodeID = n.IE()
	return b
}

func (b *AssociationSetupResponseBuilder) Cause(c util.Cause) *AssociationSetupResponseBuilder {
	b.m.Cause = ie.NewCause(c)
	return b
}

func (b *AssociationSetupResponseBuilder) RecoveryTimeStamp(ts time.Time) *AssociationSetupResponseBuilder {
	b.m.RecoveryTimeStamp = ie.NewRecoveryTimeStamp(ts)
	return b
}

func (b *AssociationSetupResponseBuilder) UPFunctionFeatures(features uint64) *AssociationSetupResponseBuilder {
	b.m.UPFunctionFeatures = ie.NewUPFunctionFeatures(features)
	return b
}

func (b *AssociationSetupResponseBuilder) CPFunctionFeatures(features uint64) *AssociationSetupResponseBuilder {
	b.m.CPFunctionFeatures = ie.NewCPFunctionFeatures(features)
	return b
}

func (b *AssociationSetupResponseBuilder) AlternativeSMFIPAddress(a ie.IPAddress) *AssociationSetupResponseBuilder {
	field := b.next("AlternativeSMFIPAddress")
	if i := b.keep(field)(ie.NewIPAddressIE(ie.TypeAlternativeSMFIPAddress, a)); i != nil {
		b.m.AlternativeSMFIPAddresses = append(b.m.AlternativeSMFIPAddresses, i)
	}
	return b
}

func (b *AssociationSetupResponseBuilder) SMFSetID(name string) *AssociationSetupResponseBuilder {
	b.m.SMFSetID = b.keep("SMFSetID")(ie.NewSMFSetID(name))
	return b
}

func (b *AssociationSetupResponseBuilder) UEIPAddressPoolInformation(p ie.UEIPAddressPoolInformation) *AssociationSetupResponseBuilder {
	if i := b.keep(b.next("UEIPAddressPoolInformation"))(p.IE()); i != nil {
		b.m.UEIPAddressPoolInformation = append(b.m.UEIPAddressPoolInformation, i)
	}
	return b
}

func (b *AssociationSetupResponseBuilder) NFInstanceID(uuid [16]byte) *AssociationSetupResponseBuilder {
	b.m.NFInstanceID = ie.NewNFInstanceID(uuid)
	return b
}

func (b *AssociationSetupResponseBuilder) Flags(flags uint8) *AssociationSetupResponseBuilder {
	b.m.PFCPASRspFlags = b.keep("PFCPASRspFlags")(ie.NewFlags(ie.TypePFCPASRspFlags, flags))
	return b
}

func (b *AssociationSetupResponseBuilder) Build() (*AssociationSetupResponse, error) {
	if err := b.finish(); err != nil {
		return nil, err
	}
	m := *b.m
	detach(&m)
	return &m, nil
}

// AssociationUpdateRequestBuilder assembles an AssociationUpdateRequest.
type AssociationUpdateRequestBuilder struct {
	builder
	m *AssociationUpdateRequest
}

func NewAssociationUpdateRequestBuilder(seq uint32) *AssociationUpdateRequestBuilder {
	m := &AssociationUpdateRequest{}
	return &AssociationUpdateRequestBuilder{builder: newBuilder(m, seq, nil), m: m}
}

func (b *AssociationUpdateRequestBuilder) NodeID(n ie.NodeID) *AssociationUpdateRequestBuilder {
	b.validate("NodeID", n)
	b.m.NodeID = n.IE()
	return b
}

func (b *AssociationUpdateRequestBuilder) UPFunctionFeatures(features uint64) *AssociationUpdateRequestBuilder {
	b.m.UPFunctionFeatures = ie.NewUPFunctionFeatures(features)
	return b
}

func (b *AssociationUpdateRequestBuilder) CPFunctionFeatures(features uint64) *AssociationUpdateRequestBuilder {
	b.m.CPFunctionFeatures = ie.NewCPFunctionFeatures(features)
	return b
}

// ReleaseRequest asks the CP function to release the association.
func (b *AssociationUpdateRequestBuilder) ReleaseRequest(flags uint8) *AssociationUpdateRequestBuilder {
	b.m.PFCPAssociationReleaseRequest = b.keep("PFCPAssociationReleaseRequest")(ie.NewFlags(ie.TypePFCPAssociationReleaseRequest, flags))
	return b
}

func (b *AssociationUpdateRequestBuilder) GracefulReleasePeriod(d time.Duration) *AssociationUpdateRequestBuilder {
	b.m.GracefulReleasePeriod = b.keep("GracefulReleasePeriod")(ie.NewTimer(ie.TypeGracefulReleasePeriod, d))
	return b
}

func (b *AssociationUpdateRequestBuilder) Flags(flags uint8) *AssociationUpdateRequestBuilder {
	b.m.PFCPAUReqFlags = b.keep("PFCPAUReqFlags")(ie.NewFlags(ie.TypePFCPAUReqFlags, flags))
	return b
}

func (b *AssociationUpdateRequestBuilder) AlternativeSMFIPAddress(a ie.IPAddress) *AssociationUpdateRequestBuilder {
	field := b.next("AlternativeSMFIPAddress")
	if i := b.keep(field)(ie.NewIPAddressIE(ie.TypeAlternativeSMFIPAddress, a)); i != nil {
		b.m.AlternativeSMFIPAddresses = append(b.m.AlternativeSMFIPAddresses, i)
	}
	return b
}

func (b *AssociationUpdateRequestBuilder) SMFSetID(name string) *AssociationUpdateRequestBuilder {
	b.m.SMFSetID = b.keep("SMFSetID")(ie.NewSMFSetID(name))
	return b
}

func (b *AssociationUpdateRequestBuilder) Build() (*AssociationUpdateRequest, error) {
	if err := b.finish(); err != nil {
		return nil, err
	}
	m := *b.m
	detach(&m)
	return &m, nil
}

// AssociationUpdateResponseBuilder assembles an AssociationUpdateResponse.
type AssociationUpdateResponseBuilder struct {
	builder
	m *AssociationUpdateResponse
}

func NewAssociationUpdateResponseBuilder(seq uint32) *AssociationUpdateResponseBuilder {
	m := &AssociationUpdateResponse{}
	return &AssociationUpdateResponseBuilder{builder: newBuilder(m, seq, nil), m: m}
}

func (b *AssociationUpdateResponseBuilder) NodeID(n ie.NodeID) *AssociationUpdateResponseBuilder {
	b.validate("NodeID", n)
	b.m.NodeID = n.IE()
	return b
}

func (b *AssociationUpdateResponseBuilder) Cause(c util.Cause) *AssociationUpdateResponseBuilder {
	b.m.Cause = ie.NewCause(c)
	return b
}

func (b *AssociationUpdateResponseBuilder) UPFunctionFeatures(features uint64) *AssociationUpdateResponseBuilder {
	b.m.UPFunctionFeatures = ie.NewUPFunctionFeatures(features)
	return b
}

func (b *AssociationUpdateResponseBuilder) CPFunctionFeatures(features uint64) *AssociationUpdateResponseBuilder {
	b.m.CPFunctionFeatures = ie.NewCPFunctionFeatures(features)
	return b
}

func (b *AssociationUpdateResponseBuilder) Build() (*AssociationUpdateResponse, error) {
	if err := b.finish(); err != nil {
		return nil, err
	}
	m := *b.m
	detach(&m)
	return &m, nil
}

// AssociationReleaseRequestBuilder assembles an AssociationReleaseRequest.
type AssociationReleaseRequestBuilder struct {
	builder
	m *AssociationReleaseRequest
}

func NewAssociationReleaseRequestBuilder(seq uint32) *AssociationReleaseRequestBuilder {
	m := &AssociationReleaseRequest{}
	return &AssociationReleaseRequestBuilder{builder: newBuilder(m, seq, nil), m: m}
}

func (b *AssociationReleaseRequestBuilder) NodeID(n ie.NodeID) *AssociationReleaseRequestBuilder {
	b.validate("NodeID", n)
	b.m.NodeID = n.IE()
	return b
}

func (b *AssociationReleaseRequestBuilder) Build() (*AssociationReleaseRequest, error) {
	if err := b.finish(); err != nil {
		return nil, err
	}
	m := *b.m
	detach(&m)
	return &m, nil
}

// AssociationReleaseResponseBuilder assembles an AssociationReleaseResponse.
type AssociationReleaseResponseBuilder struct {
	builder
	m *AssociationReleaseResponse
}

func NewAssociationReleaseResponseBuilder(seq uint32) *AssociationReleaseResponseBuilder {
	m := &AssociationReleaseResponse{}
	return &AssociationReleaseResponseBuilder{builder: newBuilder(m, seq, nil), m: m}
}

func (b *AssociationReleaseResponseBuilder) NodeID(n ie.NodeID) *AssociationReleaseResponseBuilder {
	b.validate("NodeID", n)
	b.m.NodeID = n.IE()
	return b
}

func (b *AssociationReleaseResponseBuilder) Cause(c util.Cause) *AssociationReleaseResponseBuilder {
	b.m.Cause = ie.NewCause(c)
	return b
}

func (b *AssociationReleaseResponseBuilder) Build() (*AssociationReleaseResponse, error) {
	if err := b.finish(); err != nil {
		return nil, err
	}
	m := *b.m
	detach(&m)
	return &m, nil
}

/////////////////////////
// Version not supported
/////////////////////////

// VersionNotSupportedResponseBuilder assembles a VersionNotSupportedResponse.
type VersionNotSupportedResponseBuilder struct {
	builder
	m *VersionNotSupportedResponse
}

func NewVersionNotSupportedResponseBuilder(seq uint32) *VersionNotSupportedResponseBuilder {
	m := &VersionNotSupportedResponse{}
	return &VersionNotSupportedResponseBuilder{builder: newBuilder(m, seq, nil), m: m}
}

// SEID echoes the SEID of the rejected session message.
func (b *VersionNotSupportedResponseBuilder) SEID(seid uint64) *VersionNotSupportedResponseBuilder {
	b.seid = &seid
	return b
}

func (b *VersionNotSupportedResponseBuilder) Build() (*VersionNotSupportedResponse, error) {
	if err := b.finish(); err != nil {
		return nil, err
	}
	m := *b.m
	detach(&m)
	return &m, nil
}

//////////////
// Node report
//////////////

// NodeReportRequestBuilder assembles a NodeReportRequest.
type NodeReportRequestBuilder struct {
	builder
	m *NodeReportRequest
}

func NewNodeReportRequestBuilder(seq uint32) *NodeReportRequestBuilder {
	m := &NodeReportRequest{}
	return &NodeReportRequestBuilder{builder: newBuilder(m, seq, nil), m: m}
}

func (b *NodeReportRequestBuilder) NodeID(n ie.NodeID) *NodeReportRequestBuilder {
	b.validate("NodeID", n)
	b.m.NodeID = n.IE()
	return b
}

func (b *NodeReportRequestBuilder) NodeReportType(flags uint8) *NodeReportRequestBuilder {
	b.m.NodeReportType = b.keep("NodeReportType")(ie.NewFlags(ie.TypeNodeReportType, flags))
	return b
}

func (b *NodeReportRequestBuilder) PathFailure(peers ...ie.RemoteGTPUPeer) *NodeReportRequestBuilder {
	b.m.UserPlanePathFailureReport = b.keep("UserPlanePathFailureReport")(ie.NewPathReport(ie.TypeUserPlanePathFailureReport, peers...))
	return b
}

func (b *NodeReportRequestBuilder) PathRecovery(peers ...ie.RemoteGTPUPeer) *NodeReportRequestBuilder {
	b.m.UserPlanePathRecoveryReport = b.keep("UserPlanePathRecoveryReport")(ie.NewPathReport(ie.TypeUserPlanePathRecoveryReport, peers...))
	return b
}

func (b *NodeReportRequestBuilder) Build() (*NodeReportRequest, error) {
	if err := b.finish(); err != nil {
		return nil, err
	}
	m := *b.m
	detach(&m)
	return &m, nil
}

// NodeReportResponseBuilder assembles a NodeReportResponse.
type NodeReportResponseBuilder struct {
	builder
	m *NodeReportResponse
}

func NewNodeReportResponseBuilder(seq uint32) *NodeReportResponseBuilder {
	m := &NodeReportResponse{}
	return &NodeReportResponseBuilder{builder: newBuilder(m, seq, nil), m: m}
}

func (b *NodeReportResponseBuilder) NodeID(n ie.NodeID) *NodeReportResponseBuilder {
	b.validate("NodeID", n)
	b.m.NodeID = n.IE()
	return b
}

func (b *NodeReportResponseBuilder) Cause(c util.Cause) *NodeReportResponseBuilder {
	b.m.Cause = ie.NewCause(c)
	return b
}

func (b *NodeReportResponseBuilder) OffendingIE(t ie.Type) *NodeReportResponseBuilder {
	b.m.OffendingIE = ie.NewOffendingIE(t)
	return b
}

func (b *NodeReportResponseBuilder) Build() (*NodeReportResponse, error) {
	if err := b.finish(); err != nil {
		return nil, err
	}
	m := *b.m
	detach(&m)
	return &m, nil
}

//////////////
// Session set
//////////////

// SessionSetDeletionRequestBuilder assembles a SessionSetDeletionRequest.
type SessionSetDeletionRequestBuilder struct {
	builder
	m *SessionSetDeletionRequest
}

func NewSessionSetDeletionRequestBuilder(seq uint32) *SessionSetDeletionRequestBuilder {
	m := &SessionSetDeletionRequest{}
	return &SessionSetDeletionRequestBuilder{builder: newBuilder(m, seq, nil), m: m}
}

func (b *SessionSetDeletionRequestBuilder) NodeID(n ie.NodeID) *SessionSetDeletionRequestBuilder {
	b.validate("NodeID", n)
	b.m.NodeID = n.IE()
	return b
}

func (b *SessionSetDeletionRequestBuilder) FQCSID(f ie.FQCSID) *SessionSetDeletionRequestBuilder {
	b.validate(b.next("FQCSID"), f)
	b.m.FQCSIDs = append(b.m.FQCSIDs, f.IE())
	return b
}

func (b *SessionSetDeletionRequestBuilder) Build() (*SessionSetDeletionRequest, error) {
	if err := b.finish(); err != nil {
		return nil, err
	}
	m := *b.m
	detach(&m)
	return &m, nil
}

// SessionSetDeletionResponseBuilder assembles a SessionSetDeletionResponse.
type SessionSetDeletionResponseBuilder struct {
	builder
	m *SessionSetDeletionResponse
}

func NewSessionSetDeletionResponseBuilder(seq uint32) *SessionSetDeletionResponseBuilder {
	m := &SessionSetDeletionResponse{}
	return &SessionSetDeletionResponseBuilder{builder: newBuilder(m, seq, nil), m: m}
}

func (b *SessionSetDeletionResponseBuilder) NodeID(n ie.NodeID) *SessionSetDeletionResponseBuilder {
	b.validate("NodeID", n)
	b.m.NodeID = n.IE()
	return b
}

func (b *SessionSetDeletionResponseBuilder) Cause(c util.Cause) *SessionSetDeletionResponseBuilder {
	b.m.Cause = ie.NewCause(c)
	return b
}

func (b *SessionSetDeletionResponseBuilder) OffendingIE(t ie.Type) *SessionSetDeletionResponseBuilder {
	b.m.OffendingIE = ie.NewOffendingIE(t)
	return b
}

func (b *SessionSetDeletionResponseBuilder) Build() (*SessionSetDeletionResponse, error) {
	if err := b.finish(); err != nil {
		return nil, err
	}
	m := *b.m
	detach(&m)
	return &m, nil
}

// SessionSetModificationRequestBuilder assembles a SessionSetModificationRequest.
type SessionSetModificationRequestBuilder struct {
	builder
	m *SessionSetModificationRequest
}

func NewSessionSetModificationRequestBuilder(seq uint32) *SessionSetModificationRequestBuilder {
	m := &SessionSetModificationRequest{}
	return &SessionSetModificationRequestBuilder{builder: newBuilder(m, seq, nil), m: m}
}

func (b *SessionSetModificationRequestBuilder) AlternativeSMFIPAddress(a ie.IPAddress) *SessionSetModificationRequestBuilder {
	b.m.AlternativeSMFIPAddress = b.keep("AlternativeSMFIPAddress")(ie.NewIPAddressIE(ie.TypeAlternativeSMFIPAddress, a))
	return b
}

func (b *SessionSetModificationRequestBuilder) FQCSID(f ie.FQCSID) *SessionSetModificationRequestBuilder {
	b.validate(b.next("FQCSID"), f)
	b.m.FQCSIDs = append(b.m.FQCSIDs, f.IE())
	return b
}

func (b *SessionSetModificationRequestBuilder) CPIPAddress(a ie.IPAddress) *SessionSetModificationRequestBuilder {
	field := b.next("CPIPAddress")
	if i := b.keep(field)(ie.NewIPAddressIE(ie.TypeCPIPAddress, a)); i != nil {
		b.m.CPIPAddresses = append(b.m.CPIPAddresses, i)
	}
	return b
}

func (b *SessionSetModificationRequestBuilder) Build() (*SessionSetModificationRequest, error) {
	if err := b.finish(); err != nil {
		return nil, err
	}
	m := *b.m
	detach(&m)
	return &m, nil
}

// SessionSetModificationResponseBuilder assembles a SessionSetModificationResponse.
type SessionSetModificationResponseBuilder struct {
	builder
	m *SessionSetModificationResponse
}

func NewSessionSetModificationResponseBuilder(seq uint32) *SessionSetModificationResponseBuilder {
	m := &SessionSetModificationResponse{}
	return &SessionSetModificationResponseBuilder{builder: newBuilder(m, seq, nil), m: m}
}

func (b *SessionSetModificationResponseBuilder) NodeID(n ie.NodeID) *SessionSetModificationResponseBuilder {
	b.validate("NodeID", n)
	b.m.NodeID = n.IE()
	return b
}

func (b *SessionSetModificationResponseBuilder) Cause(c util.Cause) *SessionSetModificationResponseBuilder {
	b.m.Cause = ie.NewCause(c)
	return b
}

func (b *SessionSetModificationResponseBuilder) OffendingIE(t ie.Type) *SessionSetModificationResponseBuilder {
	b.m.OffendingIE = ie.NewOffendingIE(t)
	return b
}

func (b *SessionSetModificationResponseBuilder) Build() (*SessionSetModificationResponse, error) {
	if err := b.finish(); err != nil {
		return nil, err
	}
	m := *b.m
	detach(&m)
	return &m, nil
}
