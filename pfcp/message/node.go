/* YaPFCP - Yet another PFCP codec
 *
 * Copyright (C) 2020-2024 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package message

import "github.com/yapfcp/yapfcp/pfcp/ie"

// VersionNotSupportedResponse carries only a header.
type VersionNotSupportedResponse struct {
	base
}

func (m *VersionNotSupportedResponse) MessageType() Type {
	return TypeVersionNotSupportedResponse
}

func (m *VersionNotSupportedResponse) fields() []field {
	return nil
}

// NodeReportRequest reports node-level events to the CP function (TS 29.244 clause 7.4.5.1).
type NodeReportRequest struct {
	base
	NodeID                      *ie.IE
	NodeReportType              *ie.IE
	UserPlanePathFailureReport  *ie.IE
	UserPlanePathRecoveryReport *ie.IE
	ClockDriftReports           []*ie.IE
	GTPUPathQoSReports          []*ie.IE
}

func (m *NodeReportRequest) MessageType() Type {
	return TypeNodeReportRequest
}

func (m *NodeReportRequest) fields() []field {
	return []field{
		required(ie.TypeNodeID, &m.NodeID),
		required(ie.TypeNodeReportType, &m.NodeReportType),
		opt(ie.TypeUserPlanePathFailureReport, &m.UserPlanePathFailureReport),
		opt(ie.TypeUserPlanePathRecoveryReport, &m.UserPlanePathRecoveryReport),
		list(ie.TypeClockDriftReport, &m.ClockDriftReports),
		list(ie.TypeGTPUPathQoSReport, &m.GTPUPathQoSReports),
	}
}

// NodeReportResponse answers a NodeReportRequest (TS 29.244 clause 7.4.5.2).
type NodeReportResponse struct {
	base
	NodeID      *ie.IE
	Cause       *ie.IE
	OffendingIE *ie.IE
}

func (m *NodeReportResponse) MessageType() Type {
	return TypeNodeReportResponse
}

func (m *NodeReportResponse) fields() []field {
	return []field{
		required(ie.TypeNodeID, &m.NodeID),
		required(ie.TypeCause, &m.Cause),
		opt(ie.TypeOffendingIE, &m.OffendingIE),
	}
}
