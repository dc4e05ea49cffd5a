/* YaPFCP - Yet another PFCP codec
 *
 * Copyright (C) 2020-2024 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ie

import (
	"encoding/binary"
)

// NewPDRID creates a PDR ID IE.
func NewPDRID(id uint16) *IE {
	return newUint16(TypePDRID, id)
}

// PDRID returns the rule ID of a PDR ID IE.
func (i *IE) PDRID() (uint16, error) {
	if err := i.expect(TypePDRID); err != nil {
		return 0, err
	}
	return i.ValueAsUint16()
}

// NewFARID creates a FAR ID IE.
func NewFARID(id uint32) *IE {
	return newUint32(TypeFARID, id)
}

// FARID returns the rule ID of a FAR ID IE.
func (i *IE) FARID() (uint32, error) {
	if err := i.expect(TypeFARID); err != nil {
		return 0, err
	}
	return i.ValueAsUint32()
}

// NewQERID creates a QER ID IE.
func NewQERID(id uint32) *IE {
	return newUint32(TypeQERID, id)
}

// QERID returns the rule ID of a QER ID IE.
func (i *IE) QERID() (uint32, error) {
	if err := i.expect(TypeQERID); err != nil {
		return 0, err
	}
	return i.ValueAsUint32()
}

// NewURRID creates a URR ID IE.
func NewURRID(id uint32) *IE {
	return newUint32(TypeURRID, id)
}

// URRID returns the rule ID of a URR ID IE.
func (i *IE) URRID() (uint32, error) {
	if err := i.expect(TypeURRID); err != nil {
		return 0, err
	}
	return i.ValueAsUint32()
}

// NewLinkedURRID creates a Linked URR ID IE.
func NewLinkedURRID(id uint32) *IE {
	return newUint32(TypeLinkedURRID, id)
}

// LinkedURRID returns the rule ID of a Linked URR ID IE.
func (i *IE) LinkedURRID() (uint32, error) {
	if err := i.expect(TypeLinkedURRID); err != nil {
		return 0, err
	}
	return i.ValueAsUint32()
}

// NewBARID creates a BAR ID IE.
func NewBARID(id uint8) *IE {
	return newUint8(TypeBARID, id)
}

// BARID returns the rule ID of a BAR ID IE.
func (i *IE) BARID() (uint8, error) {
	if err := i.expect(TypeBARID); err != nil {
		return 0, err
	}
	return i.ValueAsUint8()
}

// NewQERCorrelationID creates a QER Correlation ID IE.
func NewQERCorrelationID(id uint32) *IE {
	return newUint32(TypeQERCorrelationID, id)
}

// QERCorrelationID returns the value of a QER Correlation ID IE.
func (i *IE) QERCorrelationID() (uint32, error) {
	if err := i.expect(TypeQERCorrelationID); err != nil {
		return 0, err
	}
	return i.ValueAsUint32()
}

// NewPrecedence creates a Precedence IE.
func NewPrecedence(p uint32) *IE {
	return newUint32(TypePrecedence, p)
}

// Precedence returns the value of a Precedence IE.
func (i *IE) Precedence() (uint32, error) {
	if err := i.expect(TypePrecedence); err != nil {
		return 0, err
	}
	return i.ValueAsUint32()
}

// NewTrafficEndpointID creates a Traffic Endpoint ID IE.
func NewTrafficEndpointID(id uint8) *IE {
	return newUint8(TypeTrafficEndpointID, id)
}

// TrafficEndpointID returns the value of a Traffic Endpoint ID IE.
func (i *IE) TrafficEndpointID() (uint8, error) {
	if err := i.expect(TypeTrafficEndpointID); err != nil {
		return 0, err
	}
	return i.ValueAsUint8()
}

// NewMARID creates a MAR ID IE.
func NewMARID(id uint16) *IE {
	return newUint16(TypeMARID, id)
}

// MARID returns the value of a MAR ID IE.
func (i *IE) MARID() (uint16, error) {
	if err := i.expect(TypeMARID); err != nil {
		return 0, err
	}
	return i.ValueAsUint16()
}

// NewSRRID creates a SRR ID IE.
func NewSRRID(id uint8) *IE {
	return newUint8(TypeSRRID, id)
}

// SRRID returns the value of a SRR ID IE.
func (i *IE) SRRID() (uint8, error) {
	if err := i.expect(TypeSRRID); err != nil {
		return 0, err
	}
	return i.ValueAsUint8()
}

// NewSequenceNumber creates a Sequence Number IE, used by load and overload control.
func NewSequenceNumber(seq uint32) *IE {
	return newUint32(TypeSequenceNumber, seq)
}

// SequenceNumber returns the value of a Sequence Number IE.
func (i *IE) SequenceNumber() (uint32, error) {
	if err := i.expect(TypeSequenceNumber); err != nil {
		return 0, err
	}
	return i.ValueAsUint32()
}

// NewURSEQN creates a UR-SEQN IE.
func NewURSEQN(seq uint32) *IE {
	return newUint32(TypeURSEQN, seq)
}

// URSEQN returns the value of a UR-SEQN IE.
func (i *IE) URSEQN() (uint32, error) {
	if err := i.expect(TypeURSEQN); err != nil {
		return 0, err
	}
	return i.ValueAsUint32()
}

// NewAggregatedURRID creates an Aggregated URR ID IE.
func NewAggregatedURRID(id uint32) *IE {
	return newUint32(TypeAggregatedURRID, id)
}

// AggregatedURRID returns the value of an Aggregated URR ID IE.
func (i *IE) AggregatedURRID() (uint32, error) {
	if err := i.expect(TypeAggregatedURRID); err != nil {
		return 0, err
	}
	return i.ValueAsUint32()
}

// NewEthernetFilterID creates an Ethernet Filter ID IE.
func NewEthernetFilterID(id uint32) *IE {
	return newUint32(TypeEthernetFilterID, id)
}

// EthernetFilterID returns the value of an Ethernet Filter ID IE.
func (i *IE) EthernetFilterID() (uint32, error) {
	if err := i.expect(TypeEthernetFilterID); err != nil {
		return 0, err
	}
	return i.ValueAsUint32()
}

// NewNumberOfReports creates a Number of Reports IE.
func NewNumberOfReports(n uint16) *IE {
	return newUint16(TypeNumberOfReports, n)
}

// NumberOfReports returns the value of a Number of Reports IE.
func (i *IE) NumberOfReports() (uint16, error) {
	if err := i.expect(TypeNumberOfReports); err != nil {
		return 0, err
	}
	return i.ValueAsUint16()
}

// NewSuggestedBufferingPacketsCount creates a Suggested Buffering Packets Count IE.
func NewSuggestedBufferingPacketsCount(n uint8) *IE {
	return newUint8(TypeSuggestedBufferingPacketsCount, n)
}

// SuggestedBufferingPacketsCount returns the value of a Suggested Buffering Packets Count IE.
func (i *IE) SuggestedBufferingPacketsCount() (uint8, error) {
	if err := i.expect(TypeSuggestedBufferingPacketsCount); err != nil {
		return 0, err
	}
	return i.ValueAsUint8()
}

// NewDLBufferingSuggestedPacketCount creates a DL Buffering Suggested Packet Count IE.
// Counts above 255 use the two-octet form.
func NewDLBufferingSuggestedPacketCount(n uint16) *IE {
	if n <= 0xFF {
		return newUint8(TypeDLBufferingSuggestedPacketCount, uint8(n))
	}
	return newUint16(TypeDLBufferingSuggestedPacketCount, n)
}

// DLBufferingSuggestedPacketCount returns the value of a DL Buffering Suggested Packet Count IE.
func (i *IE) DLBufferingSuggestedPacketCount() (uint16, error) {
	if err := i.expect(TypeDLBufferingSuggestedPacketCount); err != nil {
		return 0, err
	}
	switch len(i.Payload) {
	case 1:
		return uint16(i.Payload[0]), nil
	case 0:
		return 0, tooShort(i.Type, 1, 0)
	default:
		return binary.BigEndian.Uint16(i.Payload), nil
	}
}

// NewMetric creates a Metric IE. Metrics are percentages.
func NewMetric(m uint8) (*IE, error) {
	if m > 100 {
		return nil, outOfRange(TypeMetric, "metric", m)
	}
	return newUint8(TypeMetric, m), nil
}

// Metric returns the value of a Metric IE.
func (i *IE) Metric() (uint8, error) {
	if err := i.expect(TypeMetric); err != nil {
		return 0, err
	}
	m, err := i.ValueAsUint8()
	if err != nil {
		return 0, err
	}
	if m > 100 {
		return 0, outOfRange(TypeMetric, "metric", m)
	}
	return m, nil
}

// NewQFI creates a QFI IE. QFIs are 6 bits.
func NewQFI(qfi uint8) (*IE, error) {
	if !fitsIn(qfi, 6) {
		return nil, outOfRange(TypeQFI, "QFI", qfi)
	}
	return newUint8(TypeQFI, qfi), nil
}

// QFI returns the value of a QFI IE.
func (i *IE) QFI() (uint8, error) {
	if err := i.expect(TypeQFI); err != nil {
		return 0, err
	}
	v, err := i.ValueAsUint8()
	return v & 0x3F, err
}

// NewRQI creates a RQI IE.
func NewRQI(rqi bool) *IE {
	if rqi {
		return newUint8(TypeRQI, 1)
	}
	return newUint8(TypeRQI, 0)
}

// RQI returns the reflective QoS indication of a RQI IE.
func (i *IE) RQI() (bool, error) {
	if err := i.expect(TypeRQI); err != nil {
		return false, err
	}
	v, err := i.ValueAsUint8()
	return v&0x01 != 0, err
}

// NewPagingPolicyIndicator creates a Paging Policy Indicator IE. PPIs are 3 bits.
func NewPagingPolicyIndicator(ppi uint8) (*IE, error) {
	if !fitsIn(ppi, 3) {
		return nil, outOfRange(TypePagingPolicyIndicator, "PPI", ppi)
	}
	return newUint8(TypePagingPolicyIndicator, ppi), nil
}

// PagingPolicyIndicator returns the value of a Paging Policy Indicator IE.
func (i *IE) PagingPolicyIndicator() (uint8, error) {
	if err := i.expect(TypePagingPolicyIndicator); err != nil {
		return 0, err
	}
	v, err := i.ValueAsUint8()
	return v & 0x07, err
}

// NewPriority creates a Priority IE used in MAR steering. Priorities are 4 bits.
func NewPriority(p uint8) (*IE, error) {
	if !fitsIn(p, 4) {
		return nil, outOfRange(TypePriority, "priority", p)
	}
	return newUint8(TypePriority, p), nil
}

// Priority returns the value of a Priority IE.
func (i *IE) Priority() (uint8, error) {
	if err := i.expect(TypePriority); err != nil {
		return 0, err
	}
	v, err := i.ValueAsUint8()
	return v & 0x0F, err
}

// NewWeight creates a Weight IE. Weights are percentages.
func NewWeight(w uint8) (*IE, error) {
	if w > 100 {
		return nil, outOfRange(TypeWeight, "weight", w)
	}
	return newUint8(TypeWeight, w), nil
}

// Weight returns the value of a Weight IE.
func (i *IE) Weight() (uint8, error) {
	if err := i.expect(TypeWeight); err != nil {
		return 0, err
	}
	return i.ValueAsUint8()
}

// NewOffendingIE creates an Offending IE IE naming the type that caused a rejection.
func NewOffendingIE(t Type) *IE {
	return newUint16(TypeOffendingIE, uint16(t))
}

// OffendingIE returns the type named by an Offending IE IE.
func (i *IE) OffendingIE() (Type, error) {
	if err := i.expect(TypeOffendingIE); err != nil {
		return 0, err
	}
	v, err := i.ValueAsUint16()
	return Type(v), err
}
