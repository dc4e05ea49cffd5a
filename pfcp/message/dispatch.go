/* YaPFCP - Yet another PFCP codec
 *
 * Copyright (C) 2020-2024 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package message

import (
	"fmt"

	"github.com/yapfcp/yapfcp/core"
	"github.com/yapfcp/yapfcp/pfcp/ie"
	"github.com/yapfcp/yapfcp/pfcp/util"
)

// registry maps each known message type to a constructor for its shape.
var registry = map[Type]func() Message{
	TypeHeartbeatRequest:               func() Message { return &HeartbeatRequest{} },
	TypeHeartbeatResponse:              func() Message { return &HeartbeatResponse{} },
	TypePFDManagementRequest:           func() Message { return &PFDManagementRequest{} },
	TypePFDManagementResponse:          func() Message { return &PFDManagementResponse{} },
	TypeAssociationSetupRequest:        func() Message { return &AssociationSetupRequest{} },
	TypeAssociationSetupResponse:       func() Message { return &AssociationSetupResponse{} },
	TypeAssociationUpdateRequest:       func() Message { return &AssociationUpdateRequest{} },
	TypeAssociationUpdateResponse:      func() Message { return &AssociationUpdateResponse{} },
	TypeAssociationReleaseRequest:      func() Message { return &AssociationReleaseRequest{} },
	TypeAssociationReleaseResponse:     func() Message { return &AssociationReleaseResponse{} },
	TypeVersionNotSupportedResponse:    func() Message { return &VersionNotSupportedResponse{} },
	TypeNodeReportRequest:              func() Message { return &NodeReportRequest{} },
	TypeNodeReportResponse:             func() Message { return &NodeReportResponse{} },
	TypeSessionSetDeletionRequest:      func() Message { return &SessionSetDeletionRequest{} },
	TypeSessionSetDeletionResponse:     func() Message { return &SessionSetDeletionResponse{} },
	TypeSessionSetModificationRequest:  func() Message { return &SessionSetModificationRequest{} },
	TypeSessionSetModificationResponse: func() Message { return &SessionSetModificationResponse{} },
	TypeSessionEstablishmentRequest:    func() Message { return &SessionEstablishmentRequest{} },
	TypeSessionEstablishmentResponse:   func() Message { return &SessionEstablishmentResponse{} },
	TypeSessionModificationRequest:     func() Message { return &SessionModificationRequest{} },
	TypeSessionModificationResponse:    func() Message { return &SessionModificationResponse{} },
	TypeSessionDeletionRequest:         func() Message { return &SessionDeletionRequest{} },
	TypeSessionDeletionResponse:        func() Message { return &SessionDeletionResponse{} },
	TypeSessionReportRequest:           func() Message { return &SessionReportRequest{} },
	TypeSessionReportResponse:          func() Message { return &SessionReportResponse{} },
}

// checkSEID enforces that session messages carry a SEID and node messages do not.
// Version Not Supported Response may answer either kind.
func checkSEID(t Type, hasSEID bool) string {
	switch {
	case t == TypeVersionNotSupportedResponse:
		return ""
	case t.IsSessionMessage() && !hasSEID:
		return fmt.Sprintf("%s without SEID", t)
	case !t.IsSessionMessage() && hasSEID:
		return fmt.Sprintf("%s with SEID", t)
	}
	return ""
}

// assemble places the top-level IEs of a known message into its slots.
func assemble(h *Header, ies []*ie.IE) (Message, error) {
	m := registry[h.Type]()
	b := m.common()
	b.Header = *h
	b.wire = ies

	fields := m.fields()
	for _, i := range ies {
		slotted, err := place(fields, b, i)
		if err != nil {
			return nil, err
		}
		if !slotted {
			core.LogTrace("Message", "Kept ", i.Type, " outside the ", h.Type, " shape")
		}
	}
	if t, missing := firstMissing(fields); missing {
		return nil, util.ErrMissingMandatoryIE{IEType: uint16(t), MessageType: uint8(h.Type)}
	}
	return m, nil
}

// Encode encodes m: slots in declared order, then Extra, behind a header with a
// freshly computed length. m itself is not modified.
func Encode(m Message) ([]byte, error) {
	t := m.MessageType()
	hdr := *m.MessageHeader()
	hdr.Version = Version
	hdr.Type = t
	if t.IsKnown() {
		if reason := checkSEID(t, hdr.SEID != nil); reason != "" {
			return nil, util.ErrEncoding{Reason: reason}
		}
	}

	body, err := ie.EncodeMultiIEs(collect(m))
	if err != nil {
		return nil, err
	}
	length := hdr.MarshalLen() - lengthOffset + len(body)
	if length > 0xFFFF {
		return nil, util.ErrEncoding{Reason: fmt.Sprintf("message length %d exceeds %d", length, 0xFFFF)}
	}
	hdr.Length = uint16(length)

	b := make([]byte, hdr.MarshalLen()+len(body))
	n, err := hdr.MarshalTo(b)
	if err != nil {
		return nil, err
	}
	copy(b[n:], body)
	metrics.messageEncoded(t)
	return b, nil
}

// AllIEs returns the top-level IEs of m. Decoded messages report them in the
// order they were received until their slots are edited; built or edited
// messages report them in encoding order.
func AllIEs(m Message) []*ie.IE {
	ies := collect(m)
	if wire := m.common().wire; sameIEs(wire, ies) {
		return append([]*ie.IE(nil), wire...)
	}
	return ies
}

// sameIEs reports whether wire holds exactly the IEs of ies, in any order.
func sameIEs(wire, ies []*ie.IE) bool {
	if wire == nil || len(wire) != len(ies) {
		return false
	}
	count := make(map[*ie.IE]int, len(wire))
	for _, i := range wire {
		count[i]++
	}
	for _, i := range ies {
		if count[i] == 0 {
			return false
		}
		count[i]--
	}
	return true
}

// IEs returns the top-level IEs of m with type t, in the order of AllIEs.
func IEs(m Message, t ie.Type) []*ie.IE {
	var ies []*ie.IE
	for _, i := range AllIEs(m) {
		if i.Type == t {
			ies = append(ies, i)
		}
	}
	return ies
}
