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

	"github.com/yapfcp/yapfcp/pfcp/util"
)

// F-TEID flags.
const (
	FTEIDFlagV4   uint8 = 0x01
	FTEIDFlagV6   uint8 = 0x02
	FTEIDFlagCH   uint8 = 0x04
	FTEIDFlagCHID uint8 = 0x08
)

// FTEID is a fully qualified tunnel endpoint identifier. When Choose is set the
// UP function allocates the TEID and address, and V4/V6 select the address family.
type FTEID struct {
	TEID uint32
	IPv4 net.IP
	IPv6 net.IP

	Choose   bool
	ChooseV4 bool
	ChooseV6 bool
	// ChooseID is encoded when HasChooseID is set, letting several PDRs share one allocation.
	ChooseID    uint8
	HasChooseID bool
}

func (f FTEID) Validate() error {
	if f.Choose {
		if f.IPv4 != nil || f.IPv6 != nil {
			return invalid(TypeFTEID, "explicit address and CHOOSE are mutually exclusive")
		}
		if !f.ChooseV4 && !f.ChooseV6 {
			return invalid(TypeFTEID, "CHOOSE needs an address family")
		}
		return nil
	}
	if f.HasChooseID {
		return invalid(TypeFTEID, "CHOOSE ID requires CHOOSE")
	}
	if f.IPv4 == nil && f.IPv6 == nil {
		return invalid(TypeFTEID, "F-TEID needs an address or CHOOSE")
	}
	if f.IPv4 != nil && f.IPv4.To4() == nil {
		return invalid(TypeFTEID, "IPv4 field holds %v", f.IPv4)
	}
	return nil
}

// Marshal encodes the F-TEID payload.
func (f FTEID) Marshal() []byte {
	b := make([]byte, 1, 1+4+net.IPv4len+net.IPv6len+1)
	if f.Choose {
		b[0] |= FTEIDFlagCH
		if f.ChooseV4 {
			b[0] |= FTEIDFlagV4
		}
		if f.ChooseV6 {
			b[0] |= FTEIDFlagV6
		}
		if f.HasChooseID {
			b[0] |= FTEIDFlagCHID
			b = append(b, f.ChooseID)
		}
		return b
	}
	b = binary.BigEndian.AppendUint32(b, f.TEID)
	if v4 := f.IPv4.To4(); v4 != nil {
		b[0] |= FTEIDFlagV4
		b = append(b, v4...)
	}
	if f.IPv6 != nil {
		b[0] |= FTEIDFlagV6
		b = append(b, f.IPv6.To16()...)
	}
	return b
}

// IE returns an F-TEID IE.
func (f FTEID) IE() *IE {
	return New(TypeFTEID, f.Marshal())
}

// NewFTEID creates an F-TEID IE with an explicit TEID and address.
func NewFTEID(teid uint32, v4 net.IP, v6 net.IP) (*IE, error) {
	f := FTEID{TEID: teid, IPv4: v4, IPv6: v6}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f.IE(), nil
}

// ParseFTEID decodes an F-TEID payload.
func ParseFTEID(b []byte) (FTEID, error) {
	if len(b) < 1 {
		return FTEID{}, tooShort(TypeFTEID, 1, 0)
	}
	flags := b[0]
	offset := 1
	if flags&FTEIDFlagCH != 0 {
		f := FTEID{
			Choose:   true,
			ChooseV4: flags&FTEIDFlagV4 != 0,
			ChooseV6: flags&FTEIDFlagV6 != 0,
		}
		if flags&FTEIDFlagCHID != 0 {
			if len(b) < offset+1 {
				return FTEID{}, tooShort(TypeFTEID, offset+1, len(b))
			}
			f.ChooseID = b[offset]
			f.HasChooseID = true
		}
		return f, nil
	}

	if len(b) < offset+4 {
		return FTEID{}, tooShort(TypeFTEID, offset+4, len(b))
	}
	f := FTEID{TEID: binary.BigEndian.Uint32(b[offset:])}
	offset += 4
	if flags&FTEIDFlagV4 != 0 {
		if len(b) < offset+net.IPv4len {
			return FTEID{}, tooShort(TypeFTEID, offset+net.IPv4len, len(b))
		}
		f.IPv4 = net.IP(clonePayload(b[offset : offset+net.IPv4len]))
		offset += net.IPv4len
	}
	if flags&FTEIDFlagV6 != 0 {
		if len(b) < offset+net.IPv6len {
			return FTEID{}, tooShort(TypeFTEID, offset+net.IPv6len, len(b))
		}
		f.IPv6 = net.IP(clonePayload(b[offset : offset+net.IPv6len]))
	}
	return f, nil
}

// FTEID returns the value of an F-TEID IE.
func (i *IE) FTEID() (FTEID, error) {
	if err := i.expect(TypeFTEID); err != nil {
		return FTEID{}, err
	}
	return ParseFTEID(i.Payload)
}

// FTEIDBuilder assembles an F-TEID, either explicit or UP-allocated.
type FTEIDBuilder struct {
	teid     *uint32
	ipv4     net.IP
	ipv6     net.IP
	chooseV4 bool
	chooseV6 bool
	chooseID *uint8
}

// NewFTEIDBuilder returns an empty F-TEID builder.
func NewFTEIDBuilder() *FTEIDBuilder {
	return &FTEIDBuilder{}
}

func (b *FTEIDBuilder) TEID(teid uint32) *FTEIDBuilder {
	b.teid = &teid
	return b
}

func (b *FTEIDBuilder) IPv4(ip net.IP) *FTEIDBuilder {
	b.ipv4 = ip
	return b
}

func (b *FTEIDBuilder) IPv6(ip net.IP) *FTEIDBuilder {
	b.ipv6 = ip
	return b
}

// ChooseIPv4 asks the UP function to allocate an IPv4 endpoint.
func (b *FTEIDBuilder) ChooseIPv4() *FTEIDBuilder {
	b.chooseV4 = true
	return b
}

// ChooseIPv6 asks the UP function to allocate an IPv6 endpoint.
func (b *FTEIDBuilder) ChooseIPv6() *FTEIDBuilder {
	b.chooseV6 = true
	return b
}

// ChooseID tags an allocation request so that several PDRs share the result.
func (b *FTEIDBuilder) ChooseID(id uint8) *FTEIDBuilder {
	b.chooseID = &id
	return b
}

// Build validates the builder and returns the F-TEID.
func (b *FTEIDBuilder) Build() (FTEID, error) {
	choose := b.chooseV4 || b.chooseV6
	explicit := b.ipv4 != nil || b.ipv6 != nil
	switch {
	case choose && explicit:
		return FTEID{}, util.ErrBuilderInvalidValue{Builder: "FTEID", Field: "IPv4/IPv6", Reason: "explicit address and CHOOSE are mutually exclusive"}
	case !choose && !explicit:
		return FTEID{}, util.ErrBuilderMissingField{Builder: "FTEID", Field: "IPv4/IPv6/CHOOSE"}
	case !choose && b.teid == nil:
		return FTEID{}, util.ErrBuilderMissingField{Builder: "FTEID", Field: "TEID"}
	case !choose && b.chooseID != nil:
		return FTEID{}, util.ErrBuilderInvalidValue{Builder: "FTEID", Field: "ChooseID", Reason: "CHOOSE ID requires CHOOSE"}
	}

	f := FTEID{IPv4: b.ipv4, IPv6: b.ipv6, ChooseV4: b.chooseV4, ChooseV6: b.chooseV6, Choose: choose}
	if b.teid != nil {
		f.TEID = *b.teid
	}
	if b.chooseID != nil {
		f.ChooseID = *b.chooseID
		f.HasChooseID = true
	}
	if err := f.Validate(); err != nil {
		return FTEID{}, util.ErrBuilderInvalidValue{Builder: "FTEID", Field: "FTEID", Err: err}
	}
	return f, nil
}

// Outer Header Creation descriptions.
const (
	OuterHeaderCreationGTPUUDPIPv4 uint16 = 0x0100
	OuterHeaderCreationGTPUUDPIPv6 uint16 = 0x0200
	OuterHeaderCreationUDPIPv4     uint16 = 0x0400
	OuterHeaderCreationUDPIPv6     uint16 = 0x0800
	OuterHeaderCreationIPv4        uint16 = 0x1000
	OuterHeaderCreationIPv6        uint16 = 0x2000
	OuterHeaderCreationCTag        uint16 = 0x4000
	OuterHeaderCreationSTag        uint16 = 0x8000
	OuterHeaderCreationN19         uint16 = 0x0001
	OuterHeaderCreationN6          uint16 = 0x0002
)

// OuterHeaderCreation tells the UP function which tunnel header to add.
// Fields are present according to Description.
type OuterHeaderCreation struct {
	Description uint16
	TEID        uint32
	IPv4        net.IP
	IPv6        net.IP
	Port        uint16
	CTag        [3]byte
	STag        [3]byte
}

func (o OuterHeaderCreation) hasGTPU() bool {
	return o.Description&(OuterHeaderCreationGTPUUDPIPv4|OuterHeaderCreationGTPUUDPIPv6) != 0
}

func (o OuterHeaderCreation) hasIPv4() bool {
	return o.Description&(OuterHeaderCreationGTPUUDPIPv4|OuterHeaderCreationUDPIPv4|OuterHeaderCreationIPv4) != 0
}

func (o OuterHeaderCreation) hasIPv6() bool {
	return o.Description&(OuterHeaderCreationGTPUUDPIPv6|OuterHeaderCreationUDPIPv6|OuterHeaderCreationIPv6) != 0
}

func (o OuterHeaderCreation) hasPort() bool {
	return o.Description&(OuterHeaderCreationUDPIPv4|OuterHeaderCreationUDPIPv6) != 0
}

func (o OuterHeaderCreation) Validate() error {
	if o.Description == 0 {
		return invalid(TypeOuterHeaderCreation, "empty description")
	}
	if o.hasIPv4() && o.IPv4.To4() == nil {
		return invalid(TypeOuterHeaderCreation, "description requires an IPv4 address")
	}
	if o.hasIPv6() && len(o.IPv6.To16()) != net.IPv6len {
		return invalid(TypeOuterHeaderCreation, "description requires an IPv6 address")
	}
	return nil
}

// Marshal encodes the Outer Header Creation payload.
func (o OuterHeaderCreation) Marshal() []byte {
	b := make([]byte, 0, 2+4+net.IPv4len+net.IPv6len+2+6)
	b = binary.BigEndian.AppendUint16(b, o.Description)
	if o.hasGTPU() {
		b = binary.BigEndian.AppendUint32(b, o.TEID)
	}
	if o.hasIPv4() {
		b = append(b, o.IPv4.To4()...)
	}
	if o.hasIPv6() {
		b = append(b, o.IPv6.To16()...)
	}
	if o.hasPort() {
		b = binary.BigEndian.AppendUint16(b, o.Port)
	}
	if o.Description&OuterHeaderCreationCTag != 0 {
		b = append(b, o.CTag[:]...)
	}
	if o.Description&OuterHeaderCreationSTag != 0 {
		b = append(b, o.STag[:]...)
	}
	return b
}

// IE returns an Outer Header Creation IE.
func (o OuterHeaderCreation) IE() *IE {
	return New(TypeOuterHeaderCreation, o.Marshal())
}

// NewOuterHeaderCreationGTPU creates an Outer Header Creation IE for a GTP-U tunnel.
func NewOuterHeaderCreationGTPU(teid uint32, peer net.IP) (*IE, error) {
	o := OuterHeaderCreation{TEID: teid}
	if v4 := peer.To4(); v4 != nil {
		o.Description = OuterHeaderCreationGTPUUDPIPv4
		o.IPv4 = v4
	} else {
		o.Description = OuterHeaderCreationGTPUUDPIPv6
		o.IPv6 = peer
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o.IE(), nil
}

// ParseOuterHeaderCreation decodes an Outer Header Creation payload.
func ParseOuterHeaderCreation(b []byte) (OuterHeaderCreation, error) {
	if len(b) < 2 {
		return OuterHeaderCreation{}, tooShort(TypeOuterHeaderCreation, 2, len(b))
	}
	o := OuterHeaderCreation{Description: binary.BigEndian.Uint16(b)}
	offset := 2
	next := func(n int) ([]byte, error) {
		if len(b) < offset+n {
			return nil, tooShort(TypeOuterHeaderCreation, offset+n, len(b))
		}
		v := b[offset : offset+n]
		offset += n
		return v, nil
	}
	if o.hasGTPU() {
		v, err := next(4)
		if err != nil {
			return OuterHeaderCreation{}, err
		}
		o.TEID = binary.BigEndian.Uint32(v)
	}
	if o.hasIPv4() {
		v, err := next(net.IPv4len)
		if err != nil {
			return OuterHeaderCreation{}, err
		}
		o.IPv4 = net.IP(clonePayload(v))
	}
	if o.hasIPv6() {
		v, err := next(net.IPv6len)
		if err != nil {
			return OuterHeaderCreation{}, err
		}
		o.IPv6 = net.IP(clonePayload(v))
	}
	if o.hasPort() {
		v, err := next(2)
		if err != nil {
			return OuterHeaderCreation{}, err
		}
		o.Port = binary.BigEndian.Uint16(v)
	}
	if o.Description&OuterHeaderCreationCTag != 0 {
		v, err := next(3)
		if err != nil {
			return OuterHeaderCreation{}, err
		}
		copy(o.CTag[:], v)
	}
	if o.Description&OuterHeaderCreationSTag != 0 {
		v, err := next(3)
		if err != nil {
			return OuterHeaderCreation{}, err
		}
		copy(o.STag[:], v)
	}
	return o, nil
}

// OuterHeaderCreation returns the value of an Outer Header Creation IE.
func (i *IE) OuterHeaderCreation() (OuterHeaderCreation, error) {
	if err := i.expect(TypeOuterHeaderCreation); err != nil {
		return OuterHeaderCreation{}, err
	}
	return ParseOuterHeaderCreation(i.Payload)
}
