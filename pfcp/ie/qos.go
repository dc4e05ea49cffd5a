/* YaPFCP - Yet another PFCP codec
 *
 * Copyright (C) 2020-2024 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ie

import (
	"encoding/binary"
	"net"
)

// bitRateMax is the largest rate a 40-bit MBR or GBR field holds, in kbps.
const bitRateMax uint64 = 1<<40 - 1

// BitRate is an uplink and downlink rate pair in kilobits per second.
type BitRate struct {
	UL uint64
	DL uint64
}

// NewBitRate creates an MBR or GBR IE.
func NewBitRate(t Type, r BitRate) (*IE, error) {
	if t != TypeMBR && t != TypeGBR {
		return nil, invalid(t, "not a bit rate IE")
	}
	if r.UL > bitRateMax || r.DL > bitRateMax {
		return nil, outOfRange(t, "bit rate", max(r.UL, r.DL))
	}
	b := make([]byte, 10)
	putUintN(b, r.UL, 5)
	putUintN(b[5:], r.DL, 5)
	return New(t, b), nil
}

// BitRate returns the value of an MBR or GBR IE.
func (i *IE) BitRate() (BitRate, error) {
	if err := i.expect(TypeMBR, TypeGBR); err != nil {
		return BitRate{}, err
	}
	if len(i.Payload) < 10 {
		return BitRate{}, tooShort(i.Type, 10, len(i.Payload))
	}
	return BitRate{UL: uintN[uint64](i.Payload, 5), DL: uintN[uint64](i.Payload[5:], 5)}, nil
}

// Packet Rate flags.
const (
	PacketRateFlagUL   uint8 = 0x01
	PacketRateFlagDL   uint8 = 0x02
	PacketRateFlagAPRC uint8 = 0x04
)

// Packet rate time units.
const (
	RateUnitMinute   uint8 = 0
	RateUnit6Minutes uint8 = 1
	RateUnitHour     uint8 = 2
	RateUnitDay      uint8 = 3
	RateUnitWeek     uint8 = 4
)

// RateLimit is a maximum packet count per time unit.
type RateLimit struct {
	TimeUnit uint8
	Max      uint16
}

// PacketRate limits packets per direction. The additional limits are only encoded
// alongside the matching primary limit.
type PacketRate struct {
	UL           *RateLimit
	DL           *RateLimit
	AdditionalUL *RateLimit
	AdditionalDL *RateLimit
}

func (p PacketRate) Validate() error {
	if (p.AdditionalUL != nil && p.UL == nil) || (p.AdditionalDL != nil && p.DL == nil) {
		return invalid(TypePacketRate, "additional rate without a primary rate")
	}
	for _, r := range []*RateLimit{p.UL, p.DL, p.AdditionalUL, p.AdditionalDL} {
		if r != nil && r.TimeUnit > RateUnitWeek {
			return outOfRange(TypePacketRate, "time unit", r.TimeUnit)
		}
	}
	return nil
}

func appendRate(b []byte, r *RateLimit) []byte {
	b = append(b, r.TimeUnit&0x07)
	return binary.BigEndian.AppendUint16(b, r.Max)
}

// Marshal encodes the Packet Rate payload.
func (p PacketRate) Marshal() []byte {
	b := make([]byte, 1, 13)
	if p.UL != nil {
		b[0] |= PacketRateFlagUL
		b = appendRate(b, p.UL)
	}
	if p.DL != nil {
		b[0] |= PacketRateFlagDL
		b = appendRate(b, p.DL)
	}
	if p.AdditionalUL != nil || p.AdditionalDL != nil {
		b[0] |= PacketRateFlagAPRC
		if p.UL != nil && p.AdditionalUL != nil {
			b = appendRate(b, p.AdditionalUL)
		}
		if p.DL != nil && p.AdditionalDL != nil {
			b = appendRate(b, p.AdditionalDL)
		}
	}
	return b
}

// IE returns a Packet Rate IE.
func (p PacketRate) IE() *IE {
	return New(TypePacketRate, p.Marshal())
}

// ParsePacketRate decodes a Packet Rate payload.
func ParsePacketRate(b []byte) (PacketRate, error) {
	if len(b) < 1 {
		return PacketRate{}, tooShort(TypePacketRate, 1, 0)
	}
	flags := b[0]
	offset := 1
	next := func() (*RateLimit, error) {
		if len(b) < offset+3 {
			return nil, tooShort(TypePacketRate, offset+3, len(b))
		}
		r := &RateLimit{TimeUnit: b[offset] & 0x07, Max: binary.BigEndian.Uint16(b[offset+1:])}
		offset += 3
		return r, nil
	}
	p := PacketRate{}
	var err error
	if flags&PacketRateFlagUL != 0 {
		if p.UL, err = next(); err != nil {
			return PacketRate{}, err
		}
	}
	if flags&PacketRateFlagDL != 0 {
		if p.DL, err = next(); err != nil {
			return PacketRate{}, err
		}
	}
	if flags&PacketRateFlagAPRC != 0 {
		if p.UL != nil {
			if p.AdditionalUL, err = next(); err != nil {
				return PacketRate{}, err
			}
		}
		if p.DL != nil {
			if p.AdditionalDL, err = next(); err != nil {
				return PacketRate{}, err
			}
		}
	}
	return p, nil
}

// PacketRate returns the value of a Packet Rate IE.
func (i *IE) PacketRate() (PacketRate, error) {
	if err := i.expect(TypePacketRate); err != nil {
		return PacketRate{}, err
	}
	return ParsePacketRate(i.Payload)
}

// NewTransportLevelMarking creates a Transport Level Marking IE from a ToS/Traffic Class value and mask.
func NewTransportLevelMarking(tosTrafficClass uint16) *IE {
	return newUint16(TypeTransportLevelMarking, tosTrafficClass)
}

// TransportLevelMarking returns the value of a Transport Level Marking IE.
func (i *IE) TransportLevelMarking() (uint16, error) {
	if err := i.expect(TypeTransportLevelMarking); err != nil {
		return 0, err
	}
	return i.ValueAsUint16()
}

// DL Flow Level Marking flags.
const (
	DLFlowLevelMarkingFlagTTC uint8 = 0x01
	DLFlowLevelMarkingFlagSCI uint8 = 0x02
)

// DLFlowLevelMarking marks downlink packets with a traffic class and service class indicator.
type DLFlowLevelMarking struct {
	TOSTrafficClass       *uint16
	ServiceClassIndicator *uint16
}

// Marshal encodes the DL Flow Level Marking payload.
func (d DLFlowLevelMarking) Marshal() []byte {
	b := make([]byte, 1, 5)
	if d.TOSTrafficClass != nil {
		b[0] |= DLFlowLevelMarkingFlagTTC
		b = binary.BigEndian.AppendUint16(b, *d.TOSTrafficClass)
	}
	if d.ServiceClassIndicator != nil {
		b[0] |= DLFlowLevelMarkingFlagSCI
		b = binary.BigEndian.AppendUint16(b, *d.ServiceClassIndicator)
	}
	return b
}

// IE returns a DL Flow Level Marking IE.
func (d DLFlowLevelMarking) IE() *IE {
	return New(TypeDLFlowLevelMarking, d.Marshal())
}

// ParseDLFlowLevelMarking decodes a DL Flow Level Marking payload.
func ParseDLFlowLevelMarking(b []byte) (DLFlowLevelMarking, error) {
	if len(b) < 1 {
		return DLFlowLevelMarking{}, tooShort(TypeDLFlowLevelMarking, 1, 0)
	}
	d := DLFlowLevelMarking{}
	offset := 1
	for _, f := range []struct {
		flag uint8
		dst  **uint16
	}{{DLFlowLevelMarkingFlagTTC, &d.TOSTrafficClass}, {DLFlowLevelMarkingFlagSCI, &d.ServiceClassIndicator}} {
		if b[0]&f.flag == 0 {
			continue
		}
		if len(b) < offset+2 {
			return DLFlowLevelMarking{}, tooShort(TypeDLFlowLevelMarking, offset+2, len(b))
		}
		v := binary.BigEndian.Uint16(b[offset:])
		*f.dst = &v
		offset += 2
	}
	return d, nil
}

// DLFlowLevelMarking returns the value of a DL Flow Level Marking IE.
func (i *IE) DLFlowLevelMarking() (DLFlowLevelMarking, error) {
	if err := i.expect(TypeDLFlowLevelMarking); err != nil {
		return DLFlowLevelMarking{}, err
	}
	return ParseDLFlowLevelMarking(i.Payload)
}

// Downlink Data Service Information flags.
const (
	DLDataServiceFlagPPI  uint8 = 0x01
	DLDataServiceFlagQFII uint8 = 0x02
)

// DownlinkDataServiceInformation describes buffered downlink data for paging.
type DownlinkDataServiceInformation struct {
	PagingPolicyIndication *uint8
	QFI                    *uint8
}

func (d DownlinkDataServiceInformation) Validate() error {
	if d.PagingPolicyIndication != nil && !fitsIn(*d.PagingPolicyIndication, 6) {
		return outOfRange(TypeDownlinkDataServiceInformation, "paging policy indication", *d.PagingPolicyIndication)
	}
	if d.QFI != nil && !fitsIn(*d.QFI, 6) {
		return outOfRange(TypeDownlinkDataServiceInformation, "QFI", *d.QFI)
	}
	return nil
}

// Marshal encodes the Downlink Data Service Information payload.
func (d DownlinkDataServiceInformation) Marshal() []byte {
	b := make([]byte, 1, 3)
	if d.PagingPolicyIndication != nil {
		b[0] |= DLDataServiceFlagPPI
		b = append(b, *d.PagingPolicyIndication&0x3F)
	}
	if d.QFI != nil {
		b[0] |= DLDataServiceFlagQFII
		b = append(b, *d.QFI&0x3F)
	}
	return b
}

// IE returns a Downlink Data Service Information IE.
func (d DownlinkDataServiceInformation) IE() *IE {
	return New(TypeDownlinkDataServiceInformation, d.Marshal())
}

// ParseDownlinkDataServiceInformation decodes a Downlink Data Service Information payload.
func ParseDownlinkDataServiceInformation(b []byte) (DownlinkDataServiceInformation, error) {
	t := TypeDownlinkDataServiceInformation
	if len(b) < 1 {
		return DownlinkDataServiceInformation{}, tooShort(t, 1, 0)
	}
	d := DownlinkDataServiceInformation{}
	offset := 1
	for _, f := range []struct {
		flag uint8
		dst  **uint8
	}{{DLDataServiceFlagPPI, &d.PagingPolicyIndication}, {DLDataServiceFlagQFII, &d.QFI}} {
		if b[0]&f.flag == 0 {
			continue
		}
		if len(b) < offset+1 {
			return DownlinkDataServiceInformation{}, tooShort(t, offset+1, len(b))
		}
		v := b[offset] & 0x3F
		*f.dst = &v
		offset++
	}
	return d, nil
}

// DownlinkDataServiceInformation returns the value of a Downlink Data Service Information IE.
func (i *IE) DownlinkDataServiceInformation() (DownlinkDataServiceInformation, error) {
	if err := i.expect(TypeDownlinkDataServiceInformation); err != nil {
		return DownlinkDataServiceInformation{}, err
	}
	return ParseDownlinkDataServiceInformation(i.Payload)
}

// VLAN tag flags.
const (
	VLANTagFlagPCP uint8 = 0x01
	VLANTagFlagDEI uint8 = 0x02
	VLANTagFlagVID uint8 = 0x04
)

// VLANTag is the value of a C-TAG or S-TAG IE. Flags selects which fields are meaningful.
type VLANTag struct {
	Flags uint8
	PCP   uint8
	DEI   bool
	VID   uint16
}

func (v VLANTag) validate(t Type) error {
	if !fitsIn(v.PCP, 3) {
		return outOfRange(t, "PCP", v.PCP)
	}
	if !fitsIn(v.VID, 12) {
		return outOfRange(t, "VID", v.VID)
	}
	return nil
}

func (v VLANTag) marshal() []byte {
	b := []byte{v.Flags & 0x07, v.PCP & 0x07, byte(v.VID)}
	if v.DEI {
		b[1] |= 0x08
	}
	b[1] |= byte(v.VID>>8) << 4
	return b
}

// NewVLANTag creates a C-TAG or S-TAG IE.
func NewVLANTag(t Type, v VLANTag) (*IE, error) {
	if t != TypeCTag && t != TypeSTag {
		return nil, invalid(t, "not a VLAN tag IE")
	}
	if err := v.validate(t); err != nil {
		return nil, err
	}
	return New(t, v.marshal()), nil
}

// VLANTag returns the value of a C-TAG or S-TAG IE.
func (i *IE) VLANTag() (VLANTag, error) {
	if err := i.expect(TypeCTag, TypeSTag); err != nil {
		return VLANTag{}, err
	}
	b := i.Payload
	if len(b) < 3 {
		return VLANTag{}, tooShort(i.Type, 3, len(b))
	}
	return VLANTag{
		Flags: b[0] & 0x07,
		PCP:   b[1] & 0x07,
		DEI:   b[1]&0x08 != 0,
		VID:   uint16(b[1]>>4)<<8 | uint16(b[2]),
	}, nil
}

// MAC Address flags.
const (
	MACAddressFlagSource           uint8 = 0x01
	MACAddressFlagDestination      uint8 = 0x02
	MACAddressFlagUpperSource      uint8 = 0x04
	MACAddressFlagUpperDestination uint8 = 0x08
)

// MACAddress matches Ethernet source and destination addresses or ranges.
type MACAddress struct {
	Source           net.HardwareAddr
	Destination      net.HardwareAddr
	UpperSource      net.HardwareAddr
	UpperDestination net.HardwareAddr
}

func (m *MACAddress) slots() []*net.HardwareAddr {
	return []*net.HardwareAddr{&m.Source, &m.Destination, &m.UpperSource, &m.UpperDestination}
}

func (m MACAddress) Validate() error {
	for _, a := range m.slots() {
		if *a != nil && len(*a) != 6 {
			return invalid(TypeMACAddress, "%v is not an EUI-48 address", *a)
		}
	}
	return nil
}

// Marshal encodes the MAC Address payload.
func (m MACAddress) Marshal() []byte {
	b := make([]byte, 1, 25)
	for k, a := range m.slots() {
		if *a == nil {
			continue
		}
		b[0] |= 1 << k
		b = append(b, *a...)
	}
	return b
}

// IE returns a MAC Address IE.
func (m MACAddress) IE() *IE {
	return New(TypeMACAddress, m.Marshal())
}

// ParseMACAddress decodes a MAC Address payload.
func ParseMACAddress(b []byte) (MACAddress, error) {
	if len(b) < 1 {
		return MACAddress{}, tooShort(TypeMACAddress, 1, 0)
	}
	m := MACAddress{}
	offset := 1
	for k, a := range m.slots() {
		if b[0]&(1<<k) == 0 {
			continue
		}
		if len(b) < offset+6 {
			return MACAddress{}, tooShort(TypeMACAddress, offset+6, len(b))
		}
		*a = net.HardwareAddr(clonePayload(b[offset : offset+6]))
		offset += 6
	}
	return m, nil
}

// MACAddress returns the value of a MAC Address IE.
func (i *IE) MACAddress() (MACAddress, error) {
	if err := i.expect(TypeMACAddress); err != nil {
		return MACAddress{}, err
	}
	return ParseMACAddress(i.Payload)
}
