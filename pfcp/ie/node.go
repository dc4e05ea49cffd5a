/* YaPFCP - Yet another PFCP codec
 *
 * Copyright (C) 2020-2024 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ie

import (
	"github.com/yapfcp/yapfcp/pfcp/util"
)

func isPathReportType(t Type) bool {
	return t == TypeUserPlanePathFailureReport || t == TypeUserPlanePathRecoveryReport
}

// NewPathReport creates a User Plane Path Failure Report or User Plane Path
// Recovery Report IE naming the affected peers.
func NewPathReport(t Type, peers ...RemoteGTPUPeer) (*IE, error) {
	if !isPathReportType(t) {
		return nil, invalid(t, "not a path report IE")
	}
	if len(peers) == 0 {
		return nil, util.ErrMissingMandatoryIE{IEType: uint16(TypeRemoteGTPUPeer), ParentIE: uint16(t)}
	}
	b := &builder{}
	addRepeated(b, peers, RemoteGTPUPeer.IE)
	return b.build(t), nil
}

// PathReport returns the peers of a User Plane Path Failure or Recovery Report IE.
func (i *IE) PathReport() ([]RemoteGTPUPeer, error) {
	if i == nil || !isPathReportType(i.Type) {
		return nil, i.expect(TypeUserPlanePathFailureReport)
	}
	g, err := openGroup(i, i.Type)
	if err != nil {
		return nil, err
	}
	peers, err := repeated(g, TypeRemoteGTPUPeer, (*IE).RemoteGTPUPeer)
	if err != nil {
		return nil, err
	}
	if len(peers) == 0 {
		return nil, g.missing(TypeRemoteGTPUPeer)
	}
	return peers, nil
}

// NewPFCPSessionRetentionInformation creates a PFCP Session Retention Information IE
// listing the CP entity addresses whose sessions the UP function keeps.
func NewPFCPSessionRetentionInformation(addrs ...IPAddress) (*IE, error) {
	b := &builder{}
	for _, a := range addrs {
		i, err := NewIPAddressIE(TypeCPPFCPEntityIPAddress, a)
		if err != nil {
			return nil, err
		}
		b.add(i)
	}
	return b.build(TypePFCPSessionRetentionInformation), nil
}

// PFCPSessionRetentionInformation returns the CP entity addresses of a PFCP Session
// Retention Information IE.
func (i *IE) PFCPSessionRetentionInformation() ([]IPAddress, error) {
	g, err := openGroup(i, TypePFCPSessionRetentionInformation)
	if err != nil {
		return nil, err
	}
	return repeated(g, TypeCPPFCPEntityIPAddress, (*IE).IPAddress)
}

// IP versions of a UE IP address pool.
const (
	IPVersionV4 uint8 = 0x01
	IPVersionV6 uint8 = 0x02
)

// UEIPAddressPoolInformation advertises the UE address pools a UP function serves.
type UEIPAddressPoolInformation struct {
	PoolIdentities  []string
	NetworkInstance *string
	SNSSAIs         []SNSSAI
	IPVersion       *uint8
}

func (u UEIPAddressPoolInformation) Validate() error {
	if len(u.PoolIdentities) == 0 {
		return util.ErrMissingMandatoryIE{IEType: uint16(TypeUEIPAddressPoolIdentity), ParentIE: uint16(TypeUEIPAddressPoolInformation)}
	}
	for _, p := range u.PoolIdentities {
		if len(p) > 0xFFFF-2 {
			return outOfRange(TypeUEIPAddressPoolIdentity, "identity length", len(p))
		}
	}
	for _, s := range u.SNSSAIs {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// IE returns a UE IP Address Pool Information IE.
func (u UEIPAddressPoolInformation) IE() (*IE, error) {
	return checked(u, u.ie)
}

func (u UEIPAddressPoolInformation) ie() *IE {
	b := &builder{}
	addRepeated(b, u.PoolIdentities, func(p string) *IE { return mustIE(NewUEIPAddressPoolIdentity(p)) })
	addOptional(b, u.NetworkInstance, NewNetworkInstance)
	addRepeated(b, u.SNSSAIs, SNSSAI.IE)
	addOptional(b, u.IPVersion, func(v uint8) *IE { return newUint8(TypeIPVersion, v) })
	return b.build(TypeUEIPAddressPoolInformation)
}

// ParseUEIPAddressPoolInformation decodes a UE IP Address Pool Information IE.
func ParseUEIPAddressPoolInformation(i *IE) (UEIPAddressPoolInformation, error) {
	g, err := openGroup(i, TypeUEIPAddressPoolInformation)
	if err != nil {
		return UEIPAddressPoolInformation{}, err
	}
	u := UEIPAddressPoolInformation{}
	if u.PoolIdentities, err = repeated(g, TypeUEIPAddressPoolIdentity, (*IE).UEIPAddressPoolIdentity); err != nil {
		return UEIPAddressPoolInformation{}, err
	}
	if len(u.PoolIdentities) == 0 {
		return UEIPAddressPoolInformation{}, g.missing(TypeUEIPAddressPoolIdentity)
	}
	if u.NetworkInstance, err = optional(g, TypeNetworkInstance, (*IE).NetworkInstance); err != nil {
		return UEIPAddressPoolInformation{}, err
	}
	if u.SNSSAIs, err = repeated(g, TypeSNSSAI, (*IE).SNSSAI); err != nil {
		return UEIPAddressPoolInformation{}, err
	}
	if u.IPVersion, err = optional(g, TypeIPVersion, (*IE).ValueAsUint8); err != nil {
		return UEIPAddressPoolInformation{}, err
	}
	return u, nil
}
