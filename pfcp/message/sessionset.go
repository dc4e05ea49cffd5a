/* YaPFCP - Yet another PFCP codec
 *
 * Copyright (C) 2020-2024 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package message

import "github.com/yapfcp/yapfcp/pfcp/ie"

// SessionSetDeletionRequest deletes every session bound to the listed
// connection sets (TS 29.244 clause 7.4.6.1).
type SessionSetDeletionRequest struct {
	base
	NodeID  *ie.IE
	FQCSIDs []*ie.IE
}

func (m *SessionSetDeletionRequest) MessageType() Type {
	return TypeSessionSetDeletionRequest
}

func (m *SessionSetDeletionRequest) fields() []field {
	return []field{
		required(ie.TypeNodeID, &m.NodeID),
		list(ie.TypeFQCSID, &m.FQCSIDs),
	}
}

// SessionSetDeletionResponse answers a SessionSetDeletionRequest.
type SessionSetDeletionResponse struct {
	base
	NodeID      *ie.IE
	Cause       *ie.IE
	OffendingIE *ie.IE
}

func (m *SessionSetDeletionResponse) MessageType() Type {
	return TypeSessionSetDeletionResponse
}

func (m *SessionSetDeletionResponse) fields() []field {
	return []field{
		required(ie.TypeNodeID, &m.NodeID),
		required(ie.TypeCause, &m.Cause),
		opt(ie.TypeOffendingIE, &m.OffendingIE),
	}
}

// SessionSetModificationRequest moves a set of sessions to an alternative SMF
// (TS 29.244 clause 7.4.7.1).
type SessionSetModificationRequest struct {
	base
	AlternativeSMFIPAddress *ie.IE
	FQCSIDs                 []*ie.IE
	GroupIDs                []*ie.IE
	CPIPAddresses           []*ie.IE
}

func (m *SessionSetModificationRequest) MessageType() Type {
	return TypeSessionSetModificationRequest
}

func (m *SessionSetModificationRequest) fields() []field {
	return []field{
		required(ie.TypeAlternativeSMFIPAddress, &m.AlternativeSMFIPAddress),
		list(ie.TypeFQCSID, &m.FQCSIDs),
		list(ie.TypeGroupID, &m.GroupIDs),
		list(ie.TypeCPIPAddress, &m.CPIPAddresses),
	}
}

// SessionSetModificationResponse answers a SessionSetModificationRequest.
type SessionSetModificationResponse struct {
	base
	NodeID      *ie.IE
	Cause       *ie.IE
	OffendingIE *ie.IE
}

func (m *SessionSetModificationResponse) MessageType() Type {
	return TypeSessionSetModificationResponse
}

func (m *SessionSetModificationResponse) fields() []field {
	return []field{
		required(ie.TypeNodeID, &m.NodeID),
		required(ie.TypeCause, &m.Cause),
		opt(ie.TypeOffendingIE, &m.OffendingIE),
	}
}
