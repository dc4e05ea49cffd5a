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
	"strings"
)

// Node ID types.
const (
	NodeIDTypeIPv4 uint8 = 0
	NodeIDTypeIPv6 uint8 = 1
	NodeIDTypeFQDN uint8 = 2
)

// NodeID identifies a PFCP entity by address or name.
type NodeID struct {
	Type uint8
	IP   net.IP
	FQDN string
}

// NodeIDFromIP returns the IPv4 or IPv6 Node ID for ip.
func NodeIDFromIP(ip net.IP) NodeID {
	if v4 := ip.To4(); v4 != nil {
		return NodeID{Type: NodeIDTypeIPv4, IP: v4}
	}
	return NodeID{Type: NodeIDTypeIPv6, IP: ip.To16()}
}

// NodeIDFromFQDN returns the FQDN Node ID for name.
func NodeIDFromFQDN(name string) NodeID {
	return NodeID{Type: NodeIDTypeFQDN, FQDN: name}
}

func (n NodeID) Validate() error {
	switch n.Type {
	case NodeIDTypeIPv4:
		if n.IP.To4() == nil {
			return invalid(TypeNodeID, "IPv4 node ID without an IPv4 address")
		}
	case NodeIDTypeIPv6:
		if len(n.IP) != net.IPv6len || n.IP.To4() != nil {
			return invalid(TypeNodeID, "IPv6 node ID without an IPv6 address")
		}
	case NodeIDTypeFQDN:
		if _, err := encodeFQDN(TypeNodeID, n.FQDN); err != nil {
			return err
		}
	default:
		return outOfRange(TypeNodeID, "node ID type", n.Type)
	}
	return nil
}

// Marshal encodes the Node ID payload.
func (n NodeID) Marshal() []byte {
	switch n.Type {
	case NodeIDTypeIPv4:
		return append([]byte{n.Type}, n.IP.To4()...)
	case NodeIDTypeIPv6:
		return append([]byte{n.Type}, n.IP.To16()...)
	default:
		name, _ := encodeFQDN(TypeNodeID, n.FQDN)
		return append([]byte{n.Type}, name...)
	}
}

// IE returns a Node ID IE.
func (n NodeID) IE() *IE {
	return New(TypeNodeID, n.Marshal())
}

func (n NodeID) String() string {
	if n.Type == NodeIDTypeFQDN {
		return n.FQDN
	}
	return n.IP.String()
}

// NewNodeID creates a Node ID IE from an IP address literal or an FQDN.
func NewNodeID(value string) (*IE, error) {
	n := NodeIDFromFQDN(value)
	if ip := net.ParseIP(value); ip != nil {
		n = NodeIDFromIP(ip)
	}
	if err := n.Validate(); err != nil {
		return nil, err
	}
	return n.IE(), nil
}

// ParseNodeID decodes a Node ID payload.
func ParseNodeID(b []byte) (NodeID, error) {
	if len(b) < 1 {
		return NodeID{}, tooShort(TypeNodeID, 1, 0)
	}
	n := NodeID{Type: b[0] & 0x0F}
	switch n.Type {
	case NodeIDTypeIPv4:
		if len(b) < 1+net.IPv4len {
			return NodeID{}, tooShort(TypeNodeID, 1+net.IPv4len, len(b))
		}
		n.IP = net.IP(clonePayload(b[1 : 1+net.IPv4len]))
	case NodeIDTypeIPv6:
		if len(b) < 1+net.IPv6len {
			return NodeID{}, tooShort(TypeNodeID, 1+net.IPv6len, len(b))
		}
		n.IP = net.IP(clonePayload(b[1 : 1+net.IPv6len]))
	case NodeIDTypeFQDN:
		name, err := decodeFQDN(TypeNodeID, b[1:])
		if err != nil {
			return NodeID{}, err
		}
		n.FQDN = name
	default:
		return NodeID{}, outOfRange(TypeNodeID, "node ID type", n.Type)
	}
	return n, nil
}

// NodeID returns the value of a Node ID IE.
func (i *IE) NodeID() (NodeID, error) {
	if err := i.expect(TypeNodeID); err != nil {
		return NodeID{}, err
	}
	return ParseNodeID(i.Payload)
}

// encodeFQDN writes name in DNS label form.
func encodeFQDN(t Type, name string) ([]byte, error) {
	name = strings.TrimSuffix(name, ".")
	if name == "" {
		return nil, invalid(t, "empty domain name")
	}
	b := make([]byte, 0, len(name)+1)
	for _, label := range strings.Split(name, ".") {
		if len(label) == 0 || len(label) > 63 {
			return nil, invalid(t, "domain label %q has invalid length", label)
		}
		b = append(b, byte(len(label)))
		b = append(b, label...)
	}
	return b, nil
}

// decodeFQDN reads a DNS label sequence spanning all of b.
func decodeFQDN(t Type, b []byte) (string, error) {
	var labels []string
	for offset := 0; offset < len(b); {
		n := int(b[offset])
		offset++
		if n == 0 {
			if offset != len(b) {
				return "", invalid(t, "empty domain label")
			}
			break
		}
		if offset+n > len(b) {
			return "", tooShort(t, offset+n, len(b))
		}
		labels = append(labels, string(b[offset:offset+n]))
		offset += n
	}
	if len(labels) == 0 {
		return "", invalid(t, "empty domain name")
	}
	return strings.Join(labels, "."), nil
}

// F-SEID flags.
const (
	FSEIDFlagV6 uint8 = 0x01
	FSEIDFlagV4 uint8 = 0x02
)

// FSEID is a fully qualified session endpoint identifier.
type FSEID struct {
	SEID uint64
	IPv4 net.IP
	IPv6 net.IP
}

func (f FSEID) Validate() error {
	if f.IPv4 == nil && f.IPv6 == nil {
		return invalid(TypeFSEID, "F-SEID needs an IPv4 or IPv6 address")
	}
	if f.IPv4 != nil && f.IPv4.To4() == nil {
		return invalid(TypeFSEID, "IPv4 field holds %v", f.IPv4)
	}
	if f.IPv6 != nil && len(f.IPv6.To16()) != net.IPv6len {
		return invalid(TypeFSEID, "IPv6 field holds %v", f.IPv6)
	}
	return nil
}

// Marshal encodes the F-SEID payload.
func (f FSEID) Marshal() []byte {
	b := make([]byte, 9, 9+net.IPv4len+net.IPv6len)
	binary.BigEndian.PutUint64(b[1:9], f.SEID)
	if v4 := f.IPv4.To4(); v4 != nil {
		b[0] |= FSEIDFlagV4
		b = append(b, v4...)
	}
	if f.IPv6 != nil {
		b[0] |= FSEIDFlagV6
		b = append(b, f.IPv6.To16()...)
	}
	return b
}

// IE returns an F-SEID IE.
func (f FSEID) IE() *IE {
	return New(TypeFSEID, f.Marshal())
}

// NewFSEID creates an F-SEID IE. Either address may be nil, but not both.
func NewFSEID(seid uint64, v4 net.IP, v6 net.IP) (*IE, error) {
	f := FSEID{SEID: seid, IPv4: v4, IPv6: v6}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f.IE(), nil
}

// ParseFSEID decodes an F-SEID payload.
func ParseFSEID(b []byte) (FSEID, error) {
	if len(b) < 9 {
		return FSEID{}, tooShort(TypeFSEID, 9, len(b))
	}
	flags := b[0]
	f := FSEID{SEID: binary.BigEndian.Uint64(b[1:9])}
	offset := 9
	if flags&FSEIDFlagV4 != 0 {
		if len(b) < offset+net.IPv4len {
			return FSEID{}, tooShort(TypeFSEID, offset+net.IPv4len, len(b))
		}
		f.IPv4 = net.IP(clonePayload(b[offset : offset+net.IPv4len]))
		offset += net.IPv4len
	}
	if flags&FSEIDFlagV6 != 0 {
		if len(b) < offset+net.IPv6len {
			return FSEID{}, tooShort(TypeFSEID, offset+net.IPv6len, len(b))
		}
		f.IPv6 = net.IP(clonePayload(b[offset : offset+net.IPv6len]))
	}
	return f, nil
}

// FSEID returns the value of an F-SEID IE.
func (i *IE) FSEID() (FSEID, error) {
	if err := i.expect(TypeFSEID); err != nil {
		return FSEID{}, err
	}
	return ParseFSEID(i.Payload)
}

// UE IP Address flags.
const (
	UEIPAddressFlagV6    uint8 = 0x01
	UEIPAddressFlagV4    uint8 = 0x02
	UEIPAddressFlagSD    uint8 = 0x04
	UEIPAddressFlagIPv6D uint8 = 0x08
	UEIPAddressFlagCHV4  uint8 = 0x10
	UEIPAddressFlagCHV6  uint8 = 0x20
	UEIPAddressFlagIP6PL uint8 = 0x40
)

// UEIPAddress is the address (or allocation request) of a UE.
type UEIPAddress struct {
	IPv4 net.IP
	IPv6 net.IP
	// Destination marks the address as a destination rather than a source address.
	Destination bool
	ChooseIPv4  bool
	ChooseIPv6  bool
	// IPv6PrefixDelegationBits is encoded when HasIPv6PrefixDelegation is set.
	IPv6PrefixDelegationBits uint8
	HasIPv6PrefixDelegation  bool
	// IPv6PrefixLength is encoded when HasIPv6PrefixLength is set.
	IPv6PrefixLength    uint8
	HasIPv6PrefixLength bool
}

func (u UEIPAddress) Validate() error {
	if u.IPv4 != nil && u.IPv4.To4() == nil {
		return invalid(TypeUEIPAddress, "IPv4 field holds %v", u.IPv4)
	}
	if u.IPv4 != nil && u.ChooseIPv4 {
		return invalid(TypeUEIPAddress, "IPv4 address and CHV4 are mutually exclusive")
	}
	if u.IPv6 != nil && u.ChooseIPv6 {
		return invalid(TypeUEIPAddress, "IPv6 address and CHV6 are mutually exclusive")
	}
	if u.IPv6PrefixLength > 128 {
		return outOfRange(TypeUEIPAddress, "IPv6 prefix length", u.IPv6PrefixLength)
	}
	return nil
}

// Marshal encodes the UE IP Address payload.
func (u UEIPAddress) Marshal() []byte {
	b := make([]byte, 1, 1+net.IPv4len+net.IPv6len+2)
	if v4 := u.IPv4.To4(); v4 != nil {
		b[0] |= UEIPAddressFlagV4
		b = append(b, v4...)
	}
	if u.IPv6 != nil {
		b[0] |= UEIPAddressFlagV6
		b = append(b, u.IPv6.To16()...)
	}
	if u.Destination {
		b[0] |= UEIPAddressFlagSD
	}
	if u.ChooseIPv4 {
		b[0] |= UEIPAddressFlagCHV4
	}
	if u.ChooseIPv6 {
		b[0] |= UEIPAddressFlagCHV6
	}
	if u.HasIPv6PrefixDelegation {
		b[0] |= UEIPAddressFlagIPv6D
		b = append(b, u.IPv6PrefixDelegationBits)
	}
	if u.HasIPv6PrefixLength {
		b[0] |= UEIPAddressFlagIP6PL
		b = append(b, u.IPv6PrefixLength)
	}
	return b
}

// IE returns a UE IP Address IE.
func (u UEIPAddress) IE() *IE {
	return New(TypeUEIPAddress, u.Marshal())
}

// NewUEIPAddress creates a UE IP Address IE for a source address.
func NewUEIPAddress(v4 net.IP, v6 net.IP) (*IE, error) {
	u := UEIPAddress{IPv4: v4, IPv6: v6}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return u.IE(), nil
}

// ParseUEIPAddress decodes a UE IP Address payload.
func ParseUEIPAddress(b []byte) (UEIPAddress, error) {
	if len(b) < 1 {
		return UEIPAddress{}, tooShort(TypeUEIPAddress, 1, 0)
	}
	flags := b[0]
	u := UEIPAddress{
		Destination: flags&UEIPAddressFlagSD != 0,
		ChooseIPv4:  flags&UEIPAddressFlagCHV4 != 0,
		ChooseIPv6:  flags&UEIPAddressFlagCHV6 != 0,
	}
	offset := 1
	next := func(n int) ([]byte, error) {
		if len(b) < offset+n {
			return nil, tooShort(TypeUEIPAddress, offset+n, len(b))
		}
		v := b[offset : offset+n]
		offset += n
		return v, nil
	}
	if flags&UEIPAddressFlagV4 != 0 {
		v, err := next(net.IPv4len)
		if err != nil {
			return UEIPAddress{}, err
		}
		u.IPv4 = net.IP(clonePayload(v))
	}
	if flags&UEIPAddressFlagV6 != 0 {
		v, err := next(net.IPv6len)
		if err != nil {
			return UEIPAddress{}, err
		}
		u.IPv6 = net.IP(clonePayload(v))
	}
	if flags&UEIPAddressFlagIPv6D != 0 {
		v, err := next(1)
		if err != nil {
			return UEIPAddress{}, err
		}
		u.IPv6PrefixDelegationBits = v[0]
		u.HasIPv6PrefixDelegation = true
	}
	if flags&UEIPAddressFlagIP6PL != 0 {
		v, err := next(1)
		if err != nil {
			return UEIPAddress{}, err
		}
		u.IPv6PrefixLength = v[0]
		u.HasIPv6PrefixLength = true
	}
	return u, nil
}

// UEIPAddress returns the value of a UE IP Address IE.
func (i *IE) UEIPAddress() (UEIPAddress, error) {
	if err := i.expect(TypeUEIPAddress); err != nil {
		return UEIPAddress{}, err
	}
	return ParseUEIPAddress(i.Payload)
}

// Address flags shared by Source IP Address, Alternative SMF IP Address,
// CP PFCP Entity IP Address and CP IP Address.
const (
	IPAddressFlagV6  uint8 = 0x01
	IPAddressFlagV4  uint8 = 0x02
	IPAddressFlagMPL uint8 = 0x04
	IPAddressFlagPPE uint8 = 0x04
)

// IPAddress holds the IPv4 and/or IPv6 address of an address-only IE.
type IPAddress struct {
	IPv4 net.IP
	IPv6 net.IP
	// Extra is the third flag bit: MPL for Source IP Address, PPE for Alternative SMF IP Address.
	Extra bool
	// PrefixLength is encoded for Source IP Address when Extra is set.
	PrefixLength uint8
}

var ipAddressTypes = map[Type]struct{}{
	TypeSourceIPAddress:         {},
	TypeAlternativeSMFIPAddress: {},
	TypeCPPFCPEntityIPAddress:   {},
	TypeCPIPAddress:             {},
}

func (a IPAddress) validate(t Type) error {
	if a.IPv4 == nil && a.IPv6 == nil {
		return invalid(t, "needs an IPv4 or IPv6 address")
	}
	if a.IPv4 != nil && a.IPv4.To4() == nil {
		return invalid(t, "IPv4 field holds %v", a.IPv4)
	}
	return nil
}

func (a IPAddress) marshal(t Type) []byte {
	b := make([]byte, 1, 1+net.IPv4len+net.IPv6len+1)
	if v4 := a.IPv4.To4(); v4 != nil {
		b[0] |= IPAddressFlagV4
		b = append(b, v4...)
	}
	if a.IPv6 != nil {
		b[0] |= IPAddressFlagV6
		b = append(b, a.IPv6.To16()...)
	}
	if a.Extra {
		b[0] |= IPAddressFlagMPL
		if t == TypeSourceIPAddress {
			b = append(b, a.PrefixLength)
		}
	}
	return b
}

// NewIPAddressIE creates one of the address-only IEs (Source IP Address,
// Alternative SMF IP Address, CP PFCP Entity IP Address, CP IP Address).
func NewIPAddressIE(t Type, a IPAddress) (*IE, error) {
	if _, ok := ipAddressTypes[t]; !ok {
		return nil, invalid(t, "not an address IE")
	}
	if err := a.validate(t); err != nil {
		return nil, err
	}
	return New(t, a.marshal(t)), nil
}

// ParseIPAddress decodes the payload of an address-only IE of type t.
func ParseIPAddress(t Type, b []byte) (IPAddress, error) {
	if len(b) < 1 {
		return IPAddress{}, tooShort(t, 1, 0)
	}
	flags := b[0]
	a := IPAddress{Extra: flags&IPAddressFlagMPL != 0}
	offset := 1
	if flags&IPAddressFlagV4 != 0 {
		if len(b) < offset+net.IPv4len {
			return IPAddress{}, tooShort(t, offset+net.IPv4len, len(b))
		}
		a.IPv4 = net.IP(clonePayload(b[offset : offset+net.IPv4len]))
		offset += net.IPv4len
	}
	if flags&IPAddressFlagV6 != 0 {
		if len(b) < offset+net.IPv6len {
			return IPAddress{}, tooShort(t, offset+net.IPv6len, len(b))
		}
		a.IPv6 = net.IP(clonePayload(b[offset : offset+net.IPv6len]))
		offset += net.IPv6len
	}
	if a.Extra && t == TypeSourceIPAddress {
		if len(b) < offset+1 {
			return IPAddress{}, tooShort(t, offset+1, len(b))
		}
		a.PrefixLength = b[offset]
	}
	return a, nil
}

// IPAddress returns the value of an address-only IE.
func (i *IE) IPAddress() (IPAddress, error) {
	if err := i.expect(TypeSourceIPAddress, TypeAlternativeSMFIPAddress, TypeCPPFCPEntityIPAddress, TypeCPIPAddress); err != nil {
		return IPAddress{}, err
	}
	return ParseIPAddress(i.Type, i.Payload)
}

// Remote GTP-U Peer flags.
const (
	RemoteGTPUPeerFlagV6 uint8 = 0x01
	RemoteGTPUPeerFlagV4 uint8 = 0x02
	RemoteGTPUPeerFlagDI uint8 = 0x04
	RemoteGTPUPeerFlagNI uint8 = 0x08
)

// RemoteGTPUPeer identifies the peer of a failed or recovered GTP-U path.
type RemoteGTPUPeer struct {
	IPv4                 net.IP
	IPv6                 net.IP
	DestinationInterface []byte
	NetworkInstance      []byte
}

// Marshal encodes the Remote GTP-U Peer payload.
func (r RemoteGTPUPeer) Marshal() []byte {
	b := make([]byte, 1, 64)
	if v4 := r.IPv4.To4(); v4 != nil {
		b[0] |= RemoteGTPUPeerFlagV4
		b = append(b, v4...)
	}
	if r.IPv6 != nil {
		b[0] |= RemoteGTPUPeerFlagV6
		b = append(b, r.IPv6.To16()...)
	}
	if r.DestinationInterface != nil {
		b[0] |= RemoteGTPUPeerFlagDI
		b = binary.BigEndian.AppendUint16(b, uint16(len(r.DestinationInterface)))
		b = append(b, r.DestinationInterface...)
	}
	if r.NetworkInstance != nil {
		b[0] |= RemoteGTPUPeerFlagNI
		b = binary.BigEndian.AppendUint16(b, uint16(len(r.NetworkInstance)))
		b = append(b, r.NetworkInstance...)
	}
	return b
}

// IE returns a Remote GTP-U Peer IE.
func (r RemoteGTPUPeer) IE() *IE {
	return New(TypeRemoteGTPUPeer, r.Marshal())
}

// ParseRemoteGTPUPeer decodes a Remote GTP-U Peer payload.
func ParseRemoteGTPUPeer(b []byte) (RemoteGTPUPeer, error) {
	if len(b) < 1 {
		return RemoteGTPUPeer{}, tooShort(TypeRemoteGTPUPeer, 1, 0)
	}
	flags := b[0]
	r := RemoteGTPUPeer{}
	offset := 1
	if flags&RemoteGTPUPeerFlagV4 != 0 {
		if len(b) < offset+net.IPv4len {
			return RemoteGTPUPeer{}, tooShort(TypeRemoteGTPUPeer, offset+net.IPv4len, len(b))
		}
		r.IPv4 = net.IP(clonePayload(b[offset : offset+net.IPv4len]))
		offset += net.IPv4len
	}
	if flags&RemoteGTPUPeerFlagV6 != 0 {
		if len(b) < offset+net.IPv6len {
			return RemoteGTPUPeer{}, tooShort(TypeRemoteGTPUPeer, offset+net.IPv6len, len(b))
		}
		r.IPv6 = net.IP(clonePayload(b[offset : offset+net.IPv6len]))
		offset += net.IPv6len
	}
	lengthPrefixed := func() ([]byte, error) {
		if len(b) < offset+2 {
			return nil, tooShort(TypeRemoteGTPUPeer, offset+2, len(b))
		}
		n := int(binary.BigEndian.Uint16(b[offset:]))
		offset += 2
		if len(b) < offset+n {
			return nil, tooShort(TypeRemoteGTPUPeer, offset+n, len(b))
		}
		v := make([]byte, n)
		copy(v, b[offset:offset+n])
		offset += n
		return v, nil
	}
	if flags&RemoteGTPUPeerFlagDI != 0 {
		v, err := lengthPrefixed()
		if err != nil {
			return RemoteGTPUPeer{}, err
		}
		r.DestinationInterface = v
	}
	if flags&RemoteGTPUPeerFlagNI != 0 {
		v, err := lengthPrefixed()
		if err != nil {
			return RemoteGTPUPeer{}, err
		}
		r.NetworkInstance = v
	}
	return r, nil
}

// RemoteGTPUPeer returns the value of a Remote GTP-U Peer IE.
func (i *IE) RemoteGTPUPeer() (RemoteGTPUPeer, error) {
	if err := i.expect(TypeRemoteGTPUPeer); err != nil {
		return RemoteGTPUPeer{}, err
	}
	return ParseRemoteGTPUPeer(i.Payload)
}

// FQ-CSID node address types.
const (
	FQCSIDNodeTypeIPv4 uint8 = 0
	FQCSIDNodeTypeIPv6 uint8 = 1
	FQCSIDNodeTypeMCC  uint8 = 2
)

// FQCSID is a fully qualified connection set identifier.
type FQCSID struct {
	NodeIDType uint8
	// NodeAddress is 4 bytes for IPv4 and MCC/MNC node types and 16 bytes for IPv6.
	NodeAddress []byte
	CSIDs       []uint16
}

func fqcsidAddressLen(t uint8) int {
	if t == FQCSIDNodeTypeIPv6 {
		return net.IPv6len
	}
	return 4
}

func (f FQCSID) Validate() error {
	if f.NodeIDType > FQCSIDNodeTypeMCC {
		return outOfRange(TypeFQCSID, "node ID type", f.NodeIDType)
	}
	if len(f.NodeAddress) != fqcsidAddressLen(f.NodeIDType) {
		return invalid(TypeFQCSID, "node address of %d bytes", len(f.NodeAddress))
	}
	if len(f.CSIDs) > 15 {
		return outOfRange(TypeFQCSID, "CSID count", len(f.CSIDs))
	}
	return nil
}

// Marshal encodes the FQ-CSID payload.
func (f FQCSID) Marshal() []byte {
	b := make([]byte, 1, 1+len(f.NodeAddress)+2*len(f.CSIDs))
	b[0] = f.NodeIDType<<4 | uint8(len(f.CSIDs))&0x0F
	b = append(b, f.NodeAddress...)
	for _, c := range f.CSIDs {
		b = binary.BigEndian.AppendUint16(b, c)
	}
	return b
}

// IE returns an FQ-CSID IE.
func (f FQCSID) IE() *IE {
	return New(TypeFQCSID, f.Marshal())
}

// ParseFQCSID decodes an FQ-CSID payload.
func ParseFQCSID(b []byte) (FQCSID, error) {
	if len(b) < 1 {
		return FQCSID{}, tooShort(TypeFQCSID, 1, 0)
	}
	f := FQCSID{NodeIDType: b[0] >> 4}
	count := int(b[0] & 0x0F)
	if f.NodeIDType > FQCSIDNodeTypeMCC {
		return FQCSID{}, outOfRange(TypeFQCSID, "node ID type", f.NodeIDType)
	}
	n := fqcsidAddressLen(f.NodeIDType)
	if len(b) < 1+n+2*count {
		return FQCSID{}, tooShort(TypeFQCSID, 1+n+2*count, len(b))
	}
	f.NodeAddress = clonePayload(b[1 : 1+n])
	for k := 0; k < count; k++ {
		f.CSIDs = append(f.CSIDs, binary.BigEndian.Uint16(b[1+n+2*k:]))
	}
	return f, nil
}

// FQCSID returns the value of an FQ-CSID IE.
func (i *IE) FQCSID() (FQCSID, error) {
	if err := i.expect(TypeFQCSID); err != nil {
		return FQCSID{}, err
	}
	return ParseFQCSID(i.Payload)
}
