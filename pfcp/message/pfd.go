/* YaPFCP - Yet another PFCP codec
 *
 * Copyright (C) 2020-2024 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package message

import "github.com/yapfcp/yapfcp/pfcp/ie"

// PFDManagementRequest provisions packet flow descriptions (TS 29.244 clause 7.4.3.1).
type PFDManagementRequest struct {
	base
	ApplicationIDsPFDs []*ie.IE
	NodeID             *ie.IE
}

func (m *PFDManagementRequest) MessageType() Type {
	return TypePFDManagementRequest
}

func (m *PFDManagementRequest) fields() []field {
	return []field{
		list(ie.TypeApplicationIDsPFDs, &m.ApplicationIDsPFDs),
		opt(ie.TypeNodeID, &m.NodeID),
	}
}

// PFDManagementResponse answers a PFDManagementRequest (TS 29.244 clause 7.4.3.2).
type PFDManagementResponse struct {
	base
	Cause       *ie.IE
	OffendingIE *ie.IE
	NodeID      *ie.IE
}

func (m *PFDManagementResponse) MessageType() Type {
	return TypePFDManagementResponse
}

func (m *PFDManagementResponse) fields() []field {
	return []field{
		required(ie.TypeCause, &m.Cause),
		opt(ie.TypeOffendingIE, &m.OffendingIE),
		opt(ie.TypeNodeID, &m.NodeID),
	}
}
