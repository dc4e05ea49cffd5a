/* YaPFCP - Yet another PFCP codec
 *
 * Copyright (C) 2020-2024 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package message

import "github.com/yapfcp/yapfcp/pfcp/ie"

// HeartbeatRequest checks that a peer is alive (TS 29.244 clause 7.4.2.1).
type HeartbeatRequest struct {
	base
	RecoveryTimeStamp *ie.IE
	SourceIPAddress   *ie.IE
}

func (m *HeartbeatRequest) MessageType() Type {
	return TypeHeartbeatRequest
}

func (m *HeartbeatRequest) fields() []field {
	return []field{
		required(ie.TypeRecoveryTimeStamp, &m.RecoveryTimeStamp),
		opt(ie.TypeSourceIPAddress, &m.SourceIPAddress),
	}
}

// HeartbeatResponse answers a HeartbeatRequest (TS 29.244 clause 7.4.2.2).
type HeartbeatResponse struct {
	base
	RecoveryTimeStamp *ie.IE
}

func (m *HeartbeatResponse) MessageType() Type {
	return TypeHeartbeatResponse
}

func (m *HeartbeatResponse) fields() []field {
	return []field{
		required(ie.TypeRecoveryTimeStamp, &m.RecoveryTimeStamp),
	}
}
