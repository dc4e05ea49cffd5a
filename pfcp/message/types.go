/* YaPFCP - Yet another PFCP codec
 *
 * Copyright (C) 2020-2024 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package message

import (
	"strconv"

	"github.com/yapfcp/yapfcp/pfcp/util"
)

// Type is a PFCP message type.
type Type uint8

// Message types (TS 29.244 clause 7.3).
const (
	TypeHeartbeatRequest               Type = 1
	TypeHeartbeatResponse              Type = 2
	TypePFDManagementRequest           Type = 3
	TypePFDManagementResponse          Type = 4
	TypeAssociationSetupRequest        Type = 5
	TypeAssociationSetupResponse       Type = 6
	TypeAssociationUpdateRequest       Type = 7
	TypeAssociationUpdateResponse      Type = 8
	TypeAssociationReleaseRequest      Type = 9
	TypeAssociationReleaseResponse     Type = 10
	TypeVersionNotSupportedResponse    Type = 11
	TypeNodeReportRequest              Type = 12
	TypeNodeReportResponse             Type = 13
	TypeSessionSetDeletionRequest      Type = 14
	TypeSessionSetDeletionResponse     Type = 15
	TypeSessionSetModificationRequest  Type = 16
	TypeSessionSetModificationResponse Type = 17
	TypeSessionEstablishmentRequest    Type = 50
	TypeSessionEstablishmentResponse   Type = 51
	TypeSessionModificationRequest     Type = 52
	TypeSessionModificationResponse    Type = 53
	TypeSessionDeletionRequest         Type = 54
	TypeSessionDeletionResponse        Type = 55
	TypeSessionReportRequest           Type = 56
	TypeSessionReportResponse          Type = 57
)

var typeNames = map[Type]string{
	TypeHeartbeatRequest:               "HeartbeatRequest",
	TypeHeartbeatResponse:              "HeartbeatResponse",
	TypePFDManagementRequest:           "PFDManagementRequest",
	TypePFDManagementResponse:          "PFDManagementResponse",
	TypeAssociationSetupRequest:        "AssociationSetupRequest",
	TypeAssociationSetupResponse:       "AssociationSetupResponse",
	TypeAssociationUpdateRequest:       "AssociationUpdateRequest",
	TypeAssociationUpdateResponse:      "AssociationUpdateResponse",
	TypeAssociationReleaseRequest:      "AssociationReleaseRequest",
	TypeAssociationReleaseResponse:     "AssociationReleaseResponse",
	TypeVersionNotSupportedResponse:    "VersionNotSupportedResponse",
	TypeNodeReportRequest:              "NodeReportRequest",
	TypeNodeReportResponse:             "NodeReportResponse",
	TypeSessionSetDeletionRequest:      "SessionSetDeletionRequest",
	TypeSessionSetDeletionResponse:     "SessionSetDeletionResponse",
	TypeSessionSetModificationRequest:  "SessionSetModificationRequest",
	TypeSessionSetModificationResponse: "SessionSetModificationResponse",
	TypeSessionEstablishmentRequest:    "SessionEstablishmentRequest",
	TypeSessionEstablishmentResponse:   "SessionEstablishmentResponse",
	TypeSessionModificationRequest:     "SessionModificationRequest",
	TypeSessionModificationResponse:    "SessionModificationResponse",
	TypeSessionDeletionRequest:         "SessionDeletionRequest",
	TypeSessionDeletionResponse:        "SessionDeletionResponse",
	TypeSessionReportRequest:           "SessionReportRequest",
	TypeSessionReportResponse:          "SessionReportResponse",
}

func init() {
	util.SetMessageTypeNamer(func(t uint8) string {
		return Type(t).String()
	})
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown(" + strconv.Itoa(int(t)) + ")"
}

// IsKnown reports whether the dispatch table has a shape for t.
func (t Type) IsKnown() bool {
	_, ok := registry[t]
	return ok
}

// IsSessionMessage reports whether t belongs to the session-related range, whose
// headers always carry a SEID.
func (t Type) IsSessionMessage() bool {
	return t >= TypeSessionEstablishmentRequest && t <= 99
}
