/* YaPFCP - Yet another PFCP codec
 *
 * Copyright (C) 2020-2024 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package util

import (
	"errors"
	"fmt"
)

// Cause is the value carried by the Cause IE (TS 29.244 clause 8.2.1).
type Cause uint8

// Cause values.
const (
	CauseRequestAccepted                  Cause = 1
	CauseMoreUsageReportToSend            Cause = 2
	CauseRequestPartiallyAccepted         Cause = 3
	CauseRequestRejected                  Cause = 64
	CauseSessionContextNotFound           Cause = 65
	CauseMandatoryIEMissing               Cause = 66
	CauseConditionalIEMissing             Cause = 67
	CauseInvalidLength                    Cause = 68
	CauseMandatoryIEIncorrect             Cause = 69
	CauseInvalidForwardingPolicy          Cause = 70
	CauseInvalidFTEIDAllocationOption     Cause = 71
	CauseNoEstablishedPFCPAssociation     Cause = 72
	CauseRuleCreationModificationFailure  Cause = 73
	CausePFCPEntityInCongestion           Cause = 74
	CauseNoResourcesAvailable             Cause = 75
	CauseServiceNotSupported              Cause = 76
	CauseSystemFailure                    Cause = 77
	CauseRedirectionRequested             Cause = 78
	CauseAllDynamicAddressesAreOccupied   Cause = 79
	CauseUnknownPreDefinedRule            Cause = 80
	CauseUnknownApplicationID             Cause = 81
	CauseL2TPTunnelEstablishmentFailure   Cause = 82
	CauseL2TPSessionEstablishmentFailure  Cause = 83
	CauseL2TPTunnelRelease                Cause = 84
	CauseL2TPSessionRelease               Cause = 85
	CauseSessionRestorationFailureSEIDUse Cause = 86
)

var causeNames = map[Cause]string{
	CauseRequestAccepted:                  "Request accepted",
	CauseMoreUsageReportToSend:            "More Usage Report to send",
	CauseRequestPartiallyAccepted:         "Request partially accepted",
	CauseRequestRejected:                  "Request rejected",
	CauseSessionContextNotFound:           "Session context not found",
	CauseMandatoryIEMissing:               "Mandatory IE missing",
	CauseConditionalIEMissing:             "Conditional IE missing",
	CauseInvalidLength:                    "Invalid length",
	CauseMandatoryIEIncorrect:             "Mandatory IE incorrect",
	CauseInvalidForwardingPolicy:          "Invalid Forwarding Policy",
	CauseInvalidFTEIDAllocationOption:     "Invalid F-TEID allocation option",
	CauseNoEstablishedPFCPAssociation:     "No established PFCP Association",
	CauseRuleCreationModificationFailure:  "Rule creation/modification Failure",
	CausePFCPEntityInCongestion:           "PFCP entity in congestion",
	CauseNoResourcesAvailable:             "No resources available",
	CauseServiceNotSupported:              "Service not supported",
	CauseSystemFailure:                    "System failure",
	CauseRedirectionRequested:             "Redirection Requested",
	CauseAllDynamicAddressesAreOccupied:   "All dynamic addresses are occupied",
	CauseUnknownPreDefinedRule:            "Unknown Pre-defined Rule",
	CauseUnknownApplicationID:             "Unknown Application ID",
	CauseL2TPTunnelEstablishmentFailure:   "L2TP tunnel Establishment failure",
	CauseL2TPSessionEstablishmentFailure:  "L2TP session Establishment failure",
	CauseL2TPTunnelRelease:                "L2TP tunnel release",
	CauseL2TPSessionRelease:               "L2TP session release",
	CauseSessionRestorationFailureSEIDUse: "PFCP session restoration failure due to requested SEID already in use",
}

func (c Cause) String() string {
	if name, ok := causeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Cause(%d)", uint8(c))
}

// IsAcceptance reports whether the cause signals (possibly partial) success.
func (c Cause) IsAcceptance() bool {
	return c >= CauseRequestAccepted && c < CauseRequestRejected
}

var kindCauses = map[Kind]Cause{
	KindHeaderInvalid:             CauseRequestRejected,
	KindTruncated:                 CauseInvalidLength,
	KindEnterpriseHeaderTruncated: CauseInvalidLength,
	KindMissingMandatoryIE:        CauseMandatoryIEMissing,
	KindInvalidIEPayload:          CauseMandatoryIEIncorrect,
	KindZeroLengthNotAllowed:      CauseInvalidLength,
	KindUnknownMessageType:        CauseServiceNotSupported,
	KindBuilderMissingField:       CauseMandatoryIEMissing,
	KindBuilderInvalidValue:       CauseMandatoryIEIncorrect,
	KindEncoding:                  CauseSystemFailure,
	KindNestingTooDeep:            CauseRequestRejected,
}

// CauseOf returns the cause a peer should be answered with for an error kind.
func (k Kind) CauseOf() Cause {
	if c, ok := kindCauses[k]; ok {
		return c
	}
	return CauseSystemFailure
}

// StatusCode maps any error to the cause value reported back to the peer.
// The mapping is total: nil is an acceptance and errors outside the codec are system failures.
func StatusCode(err error) Cause {
	if err == nil {
		return CauseRequestAccepted
	}
	var e Error
	if errors.As(err, &e) {
		return e.Kind().CauseOf()
	}
	return CauseSystemFailure
}
