/* YaPFCP - Yet another PFCP codec
 *
 * Copyright (C) 2020-2024 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package message

import "github.com/yapfcp/yapfcp/pfcp/ie"

// AssociationSetupRequest sets up a PFCP association (TS 29.244 clause 7.4.4.1).
type AssociationSetupRequest struct {
	base
	NodeID                          *ie.IE
	RecoveryTimeStamp               *ie.IE
	UPFunctionFeatures              *ie.IE
	CPFunctionFeatures              *ie.IE
	UserPlaneIPResourceInformation  []*ie.IE
	AlternativeSMFIPAddresses       []*ie.IE
	SMFSetID                        *ie.IE
	PFCPSessionRetentionInformation *ie.IE
	UEIPAddressPoolInformation      []*ie.IE
	GTPUPathQoSControlInformation   []*ie.IE
	ClockDriftControlInformation    []*ie.IE
	NFInstanceID                    *ie.IE
	PFCPASReqFlags                  *ie.IE
}

func (m *AssociationSetupRequest) MessageType() Type {
	return TypeAssociationSetupRequest
}

func (m *AssociationSetupRequest) fields() []field {
	return []field{
		required(ie.TypeNodeID, &m.NodeID),
		required(ie.TypeRecoveryTimeStamp, &m.RecoveryTimeStamp),
		opt(ie.TypeUPFunctionFeatures, &m.UPFunctionFeatures),
		opt(ie.TypeCPFunctionFeatures, &m.CPFunctionFeatures),
		list(ie.TypeUserPlaneIPResourceInformation, &m.UserPlaneIPResourceInformation),
		list(ie.TypeAlternativeSMFIPAddress, &m.AlternativeSMFIPAddresses),
		opt(ie.TypeSMFSetID, &m.SMFSetID),
		opt(ie.TypePFCPSessionRetentionInformation, &m.PFCPSessionRetentionInformation),
		list(ie.TypeUEIPAddressPoolInformation, &m.UEIPAddressPoolInformation),
		list(ie.TypeGTPUPathQoSControlInformation, &m.GTPUPathQoSControlInformation),
		list(ie.TypeClockDriftControlInformation, &m.ClockDriftControlInformation),
		opt(ie.TypeNFInstanceID, &m.NFInstanceID),
		opt(ie.TypePFCPASReqFlags, &m.PFCPASReqFlags),
	}
}

// AssociationSetupResponse answers an AssociationSetupRequest (TS 29.244 clause 7.4.4.2).
type AssociationSetupResponse struct {
	base
	NodeID                         *ie.IE
	Cause                          *ie.IE
	RecoveryTimeStamp              *ie.IE
	UPFunctionFeatures             *ie.IE
	CPFunctionFeatures             *ie.IE
	UserPlaneIPResourceInformation []*ie.IE
	AlternativeSMFIPAddresses      []*ie.IE
	SMFSetID                       *ie.IE
	PFCPASRspFlags                 *ie.IE
	ClockDriftControlInformation   []*ie.IE
	UEIPAddressPoolInformation     []*ie.IE
	GTPUPathQoSControlInformation  []*ie.IE
	NFInstanceID                   *ie.IE
}

func (m *AssociationSetupResponse) MessageType() Type {
	return TypeAssociationSetupResponse
}

func (m *AssociationSetupResponse) fields() []field {
	return []field{
		required(ie.TypeNodeID, &m.NodeID),
		required(ie.TypeCause, &m.Cause),
		required(ie.TypeRecoveryTimeStamp, &m.RecoveryTimeStamp),
		opt(ie.TypeUPFunctionFeatures, &m.UPFunctionFeatures),
		opt(ie.TypeCPFunctionFeatures, &m.CPFunctionFeatures),
		list(ie.TypeUserPlaneIPResourceInformation, &m.UserPlaneIPResourceInformation),
		list(ie.TypeAlternativeSMFIPAddress, &m.AlternativeSMFIPAddresses),
		opt(ie.TypeSMFSetID, &m.SMFSetID),
		opt(ie.TypePFCPASRspFlags, &m.PFCPASRspFlags),
		list(ie.TypeClockDriftControlInformation, &m.ClockDriftControlInformation),
		list(ie.TypeUEIPAddressPoolInformation, &m.UEIPAddressPoolInformation),
		list(ie.TypeGTPUPathQoSControlInformation, &m.GTPUPathQoSControlInformation),
		opt(ie.TypeNFInstanceID, &m.NFInstanceID),
	}
}

// AssociationUpdateRequest modifies an existing association (TS 29.244 clause 7.4.4.3).
type AssociationUpdateRequest struct {
	base
	NodeID                         *ie.IE
	UPFunctionFeatures             *ie.IE
	CPFunctionFeatures             *ie.IE
	UserPlaneIPResourceInformation []*ie.IE
	PFCPAssociationReleaseRequest  *ie.IE
	GracefulReleasePeriod          *ie.IE
	PFCPAUReqFlags                 *ie.IE
	AlternativeSMFIPAddresses      []*ie.IE
	SMFSetID                       *ie.IE
	ClockDriftControlInformation   []*ie.IE
	UEIPAddressPoolInformation     []*ie.IE
	GTPUPathQoSControlInformation  []*ie.IE
}

func (m *AssociationUpdateRequest) MessageType() Type {
	return TypeAssociationUpdateRequest
}

func (m *AssociationUpdateRequest) fields() []field {
	return []field{
		required(ie.TypeNodeID, &m.NodeID),
		opt(ie.TypeUPFunctionFeatures, &m.UPFunctionFeatures),
		opt(ie.TypeCPFunctionFeatures, &m.CPFunctionFeatures),
		list(ie.TypeUserPlaneIPResourceInformation, &m.UserPlaneIPResourceInformation),
		opt(ie.TypePFCPAssociationReleaseRequest, &m.PFCPAssociationReleaseRequest),
		opt(ie.TypeGracefulReleasePeriod, &m.GracefulReleasePeriod),
		opt(ie.TypePFCPAUReqFlags, &m.PFCPAUReqFlags),
		list(ie.TypeAlternativeSMFIPAddress, &m.AlternativeSMFIPAddresses),
		opt(ie.TypeSMFSetID, &m.SMFSetID),
		list(ie.TypeClockDriftControlInformation, &m.ClockDriftControlInformation),
		list(ie.TypeUEIPAddressPoolInformation, &m.UEIPAddressPoolInformation),
		list(ie.TypeGTPUPathQoSControlInformation, &m.GTPUPathQoSControlInformation),
	}
}

// AssociationUpdateResponse answers an AssociationUpdateRequest (TS 29.244 clause 7.4.4.4).
type AssociationUpdateResponse struct {
	base
	NodeID             *ie.IE
	Cause              *ie.IE
	UPFunctionFeatures *ie.IE
	CPFunctionFeatures *ie.IE
}

func (m *AssociationUpdateResponse) MessageType() Type {
	return TypeAssociationUpdateResponse
}

func (m *AssociationUpdateResponse) fields() []field {
	return []field{
		required(ie.TypeNodeID, &m.NodeID),
		required(ie.TypeCause, &m.Cause),
		opt(ie.TypeUPFunctionFeatures, &m.UPFunctionFeatures),
		opt(ie.TypeCPFunctionFeatures, &m.CPFunctionFeatures),
	}
}

// AssociationReleaseRequest tears down an association (TS 29.244 clause 7.4.4.5).
type AssociationReleaseRequest struct {
	base
	NodeID *ie.IE
}

func (m *AssociationReleaseRequest) MessageType() Type {
	return TypeAssociationReleaseRequest
}

func (m *AssociationReleaseRequest) fields() []field {
	return []field{
		required(ie.TypeNodeID, &m.NodeID),
	}
}

// AssociationReleaseResponse answers an AssociationReleaseRequest (TS 29.244 clause 7.4.4.6).
type AssociationReleaseResponse struct {
	base
	NodeID *ie.IE
	Cause  *ie.IE
}

func (m *AssociationReleaseResponse) MessageType() Type {
	return TypeAssociationReleaseResponse
}

func (m *AssociationReleaseResponse) fields() []field {
	return []field{
		required(ie.TypeNodeID, &m.NodeID),
		required(ie.TypeCause, &m.Cause),
	}
}
