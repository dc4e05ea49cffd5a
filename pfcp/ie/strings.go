/* YaPFCP - Yet another PFCP codec
 *
 * Copyright (C) 2020-2024 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ie

import (
	"encoding/binary"
	"encoding/hex"
	"strings"
)

// NewNetworkInstance creates a Network Instance IE. An empty name is allowed.
func NewNetworkInstance(name string) *IE {
	return newString(TypeNetworkInstance, name)
}

// NetworkInstance returns the value of a Network Instance IE.
func (i *IE) NetworkInstance() (string, error) {
	if err := i.expect(TypeNetworkInstance); err != nil {
		return "", err
	}
	return string(i.Payload), nil
}

// NewAPNDNN creates an APN/DNN IE, encoding the name as DNS labels.
// An empty name produces an empty IE.
func NewAPNDNN(name string) (*IE, error) {
	if name == "" {
		return New(TypeAPNDNN, nil), nil
	}
	b, err := encodeFQDN(TypeAPNDNN, name)
	if err != nil {
		return nil, err
	}
	return New(TypeAPNDNN, b), nil
}

// APNDNN returns the value of an APN/DNN IE.
func (i *IE) APNDNN() (string, error) {
	if err := i.expect(TypeAPNDNN); err != nil {
		return "", err
	}
	if len(i.Payload) == 0 {
		return "", nil
	}
	return decodeFQDN(TypeAPNDNN, i.Payload)
}

// NewSMFSetID creates an SMF Set ID IE.
func NewSMFSetID(name string) (*IE, error) {
	b, err := encodeFQDN(TypeSMFSetID, name)
	if err != nil {
		return nil, err
	}
	return New(TypeSMFSetID, append([]byte{0}, b...)), nil
}

// SMFSetID returns the value of an SMF Set ID IE.
func (i *IE) SMFSetID() (string, error) {
	if err := i.expect(TypeSMFSetID); err != nil {
		return "", err
	}
	if len(i.Payload) < 2 {
		return "", tooShort(i.Type, 2, len(i.Payload))
	}
	return decodeFQDN(TypeSMFSetID, i.Payload[1:])
}

// NewApplicationID creates an Application ID IE.
func NewApplicationID(id string) *IE {
	return newString(TypeApplicationID, id)
}

// ApplicationID returns the value of an Application ID IE.
func (i *IE) ApplicationID() (string, error) {
	if err := i.expect(TypeApplicationID); err != nil {
		return "", err
	}
	return string(i.Payload), nil
}

// NewApplicationInstanceID creates an Application Instance ID IE.
func NewApplicationInstanceID(id string) *IE {
	return newString(TypeApplicationInstanceID, id)
}

// ApplicationInstanceID returns the value of an Application Instance ID IE.
func (i *IE) ApplicationInstanceID() (string, error) {
	if err := i.expect(TypeApplicationInstanceID); err != nil {
		return "", err
	}
	return string(i.Payload), nil
}

// NewActivatePredefinedRules creates an Activate Predefined Rules IE.
func NewActivatePredefinedRules(name string) *IE {
	return newString(TypeActivatePredefinedRules, name)
}

// NewDeactivatePredefinedRules creates a Deactivate Predefined Rules IE.
func NewDeactivatePredefinedRules(name string) *IE {
	return newString(TypeDeactivatePredefinedRules, name)
}

// PredefinedRules returns the rule name of an Activate or Deactivate Predefined Rules IE.
func (i *IE) PredefinedRules() (string, error) {
	if err := i.expect(TypeActivatePredefinedRules, TypeDeactivatePredefinedRules); err != nil {
		return "", err
	}
	return string(i.Payload), nil
}

// NewDataNetworkAccessIdentifier creates a Data Network Access Identifier IE.
func NewDataNetworkAccessIdentifier(dnai string) *IE {
	return newString(TypeDataNetworkAccessIdentifier, dnai)
}

// DataNetworkAccessIdentifier returns the value of a Data Network Access Identifier IE.
func (i *IE) DataNetworkAccessIdentifier() (string, error) {
	if err := i.expect(TypeDataNetworkAccessIdentifier); err != nil {
		return "", err
	}
	return string(i.Payload), nil
}

// NewFramedRoute creates a Framed-Route IE.
func NewFramedRoute(route string) *IE {
	return newString(TypeFramedRoute, route)
}

// FramedRoute returns the value of a Framed-Route IE.
func (i *IE) FramedRoute() (string, error) {
	if err := i.expect(TypeFramedRoute); err != nil {
		return "", err
	}
	return string(i.Payload), nil
}

// NewFramedIPv6Route creates a Framed-IPv6-Route IE.
func NewFramedIPv6Route(route string) *IE {
	return newString(TypeFramedIPv6Route, route)
}

// FramedIPv6Route returns the value of a Framed-IPv6-Route IE.
func (i *IE) FramedIPv6Route() (string, error) {
	if err := i.expect(TypeFramedIPv6Route); err != nil {
		return "", err
	}
	return string(i.Payload), nil
}

// NewFramedRouting creates a Framed-Routing IE.
func NewFramedRouting(v uint32) *IE {
	return newUint32(TypeFramedRouting, v)
}

// FramedRouting returns the value of a Framed-Routing IE.
func (i *IE) FramedRouting() (uint32, error) {
	if err := i.expect(TypeFramedRouting); err != nil {
		return 0, err
	}
	return i.ValueAsUint32()
}

// NewForwardingPolicy creates a Forwarding Policy IE. An empty identifier is allowed.
func NewForwardingPolicy(identifier string) (*IE, error) {
	if len(identifier) > 0xFF {
		return nil, outOfRange(TypeForwardingPolicy, "identifier length", len(identifier))
	}
	if identifier == "" {
		return New(TypeForwardingPolicy, nil), nil
	}
	return New(TypeForwardingPolicy, append([]byte{byte(len(identifier))}, identifier...)), nil
}

// ForwardingPolicy returns the identifier of a Forwarding Policy IE.
func (i *IE) ForwardingPolicy() (string, error) {
	if err := i.expect(TypeForwardingPolicy); err != nil {
		return "", err
	}
	if len(i.Payload) == 0 {
		return "", nil
	}
	n := int(i.Payload[0])
	if len(i.Payload) < 1+n {
		return "", tooShort(i.Type, 1+n, len(i.Payload))
	}
	return string(i.Payload[1 : 1+n]), nil
}

// Flow directions of a Flow Information IE.
const (
	FlowDirectionUnspecified   uint8 = 0
	FlowDirectionDownlink      uint8 = 1
	FlowDirectionUplink        uint8 = 2
	FlowDirectionBidirectional uint8 = 3
)

// FlowInformation is an IP filter rule with a direction.
type FlowInformation struct {
	Direction   uint8
	Description string
}

// Marshal encodes the Flow Information payload.
func (f FlowInformation) Marshal() []byte {
	b := make([]byte, 0, 3+len(f.Description))
	b = append(b, f.Direction&0x07)
	b = binary.BigEndian.AppendUint16(b, uint16(len(f.Description)))
	return append(b, f.Description...)
}

// IE returns a Flow Information IE.
func (f FlowInformation) IE() *IE {
	return New(TypeFlowInformation, f.Marshal())
}

// ParseFlowInformation decodes a Flow Information payload.
func ParseFlowInformation(b []byte) (FlowInformation, error) {
	if len(b) < 3 {
		return FlowInformation{}, tooShort(TypeFlowInformation, 3, len(b))
	}
	n := int(binary.BigEndian.Uint16(b[1:3]))
	if len(b) < 3+n {
		return FlowInformation{}, tooShort(TypeFlowInformation, 3+n, len(b))
	}
	return FlowInformation{Direction: b[0] & 0x07, Description: string(b[3 : 3+n])}, nil
}

// FlowInformation returns the value of a Flow Information IE.
func (i *IE) FlowInformation() (FlowInformation, error) {
	if err := i.expect(TypeFlowInformation); err != nil {
		return FlowInformation{}, err
	}
	return ParseFlowInformation(i.Payload)
}

// SDF Filter flags.
const (
	SDFFilterFlagFD  uint8 = 0x01
	SDFFilterFlagTTC uint8 = 0x02
	SDFFilterFlagSPI uint8 = 0x04
	SDFFilterFlagFL  uint8 = 0x08
	SDFFilterFlagBID uint8 = 0x10
)

// SDFFilter matches service data flows. Each optional part is encoded when its Has flag is set.
type SDFFilter struct {
	FlowDescription      string
	HasFlowDescription   bool
	TOSTrafficClass      uint16
	HasTOSTrafficClass   bool
	SecurityParameterIdx uint32
	HasSecurityParameter bool
	FlowLabel            uint32
	HasFlowLabel         bool
	FilterID             uint32
	HasFilterID          bool
}

func (s SDFFilter) Validate() error {
	if len(s.FlowDescription) > 0xFFFF {
		return outOfRange(TypeSDFFilter, "flow description length", len(s.FlowDescription))
	}
	if !fitsIn(s.FlowLabel, 20) {
		return outOfRange(TypeSDFFilter, "flow label", s.FlowLabel)
	}
	return nil
}

// Marshal encodes the SDF Filter payload.
func (s SDFFilter) Marshal() []byte {
	b := make([]byte, 2, 2+2+len(s.FlowDescription)+13)
	if s.HasFlowDescription {
		b[0] |= SDFFilterFlagFD
		b = binary.BigEndian.AppendUint16(b, uint16(len(s.FlowDescription)))
		b = append(b, s.FlowDescription...)
	}
	if s.HasTOSTrafficClass {
		b[0] |= SDFFilterFlagTTC
		b = binary.BigEndian.AppendUint16(b, s.TOSTrafficClass)
	}
	if s.HasSecurityParameter {
		b[0] |= SDFFilterFlagSPI
		b = binary.BigEndian.AppendUint32(b, s.SecurityParameterIdx)
	}
	if s.HasFlowLabel {
		b[0] |= SDFFilterFlagFL
		b = append(b, byte(s.FlowLabel>>16), byte(s.FlowLabel>>8), byte(s.FlowLabel))
	}
	if s.HasFilterID {
		b[0] |= SDFFilterFlagBID
		b = binary.BigEndian.AppendUint32(b, s.FilterID)
	}
	return b
}

// IE returns an SDF Filter IE.
func (s SDFFilter) IE() *IE {
	return New(TypeSDFFilter, s.Marshal())
}

// NewSDFFilter creates an SDF Filter IE carrying only a flow description.
func NewSDFFilter(flowDescription string) (*IE, error) {
	s := SDFFilter{FlowDescription: flowDescription, HasFlowDescription: true}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s.IE(), nil
}

// ParseSDFFilter decodes an SDF Filter payload.
func ParseSDFFilter(b []byte) (SDFFilter, error) {
	if len(b) < 2 {
		return SDFFilter{}, tooShort(TypeSDFFilter, 2, len(b))
	}
	flags := b[0]
	s := SDFFilter{}
	offset := 2
	next := func(n int) ([]byte, error) {
		if len(b) < offset+n {
			return nil, tooShort(TypeSDFFilter, offset+n, len(b))
		}
		v := b[offset : offset+n]
		offset += n
		return v, nil
	}
	if flags&SDFFilterFlagFD != 0 {
		v, err := next(2)
		if err != nil {
			return SDFFilter{}, err
		}
		desc, err := next(int(binary.BigEndian.Uint16(v)))
		if err != nil {
			return SDFFilter{}, err
		}
		s.FlowDescription = string(desc)
		s.HasFlowDescription = true
	}
	if flags&SDFFilterFlagTTC != 0 {
		v, err := next(2)
		if err != nil {
			return SDFFilter{}, err
		}
		s.TOSTrafficClass = binary.BigEndian.Uint16(v)
		s.HasTOSTrafficClass = true
	}
	if flags&SDFFilterFlagSPI != 0 {
		v, err := next(4)
		if err != nil {
			return SDFFilter{}, err
		}
		s.SecurityParameterIdx = binary.BigEndian.Uint32(v)
		s.HasSecurityParameter = true
	}
	if flags&SDFFilterFlagFL != 0 {
		v, err := next(3)
		if err != nil {
			return SDFFilter{}, err
		}
		s.FlowLabel = uintN[uint32](v, 3)
		s.HasFlowLabel = true
	}
	if flags&SDFFilterFlagBID != 0 {
		v, err := next(4)
		if err != nil {
			return SDFFilter{}, err
		}
		s.FilterID = binary.BigEndian.Uint32(v)
		s.HasFilterID = true
	}
	return s, nil
}

// SDFFilter returns the value of an SDF Filter IE.
func (i *IE) SDFFilter() (SDFFilter, error) {
	if err := i.expect(TypeSDFFilter); err != nil {
		return SDFFilter{}, err
	}
	return ParseSDFFilter(i.Payload)
}

// Redirect address types.
const (
	RedirectAddressIPv4     uint8 = 0
	RedirectAddressIPv6     uint8 = 1
	RedirectAddressURL      uint8 = 2
	RedirectAddressSIPURI   uint8 = 3
	RedirectAddressIPv4IPv6 uint8 = 4
)

// RedirectInformation names the server traffic is redirected to.
// OtherServerAddress is only encoded for RedirectAddressIPv4IPv6.
type RedirectInformation struct {
	AddressType        uint8
	ServerAddress      string
	OtherServerAddress string
}

// Marshal encodes the Redirect Information payload.
func (r RedirectInformation) Marshal() []byte {
	b := make([]byte, 0, 5+len(r.ServerAddress)+len(r.OtherServerAddress))
	b = append(b, r.AddressType&0x0F)
	b = binary.BigEndian.AppendUint16(b, uint16(len(r.ServerAddress)))
	b = append(b, r.ServerAddress...)
	if r.AddressType == RedirectAddressIPv4IPv6 {
		b = binary.BigEndian.AppendUint16(b, uint16(len(r.OtherServerAddress)))
		b = append(b, r.OtherServerAddress...)
	}
	return b
}

// IE returns a Redirect Information IE.
func (r RedirectInformation) IE() *IE {
	return New(TypeRedirectInformation, r.Marshal())
}

// ParseRedirectInformation decodes a Redirect Information payload.
func ParseRedirectInformation(b []byte) (RedirectInformation, error) {
	if len(b) < 3 {
		return RedirectInformation{}, tooShort(TypeRedirectInformation, 3, len(b))
	}
	r := RedirectInformation{AddressType: b[0] & 0x0F}
	n := int(binary.BigEndian.Uint16(b[1:3]))
	if len(b) < 3+n {
		return RedirectInformation{}, tooShort(TypeRedirectInformation, 3+n, len(b))
	}
	r.ServerAddress = string(b[3 : 3+n])
	offset := 3 + n
	if r.AddressType == RedirectAddressIPv4IPv6 {
		if len(b) < offset+2 {
			return RedirectInformation{}, tooShort(TypeRedirectInformation, offset+2, len(b))
		}
		m := int(binary.BigEndian.Uint16(b[offset:]))
		offset += 2
		if len(b) < offset+m {
			return RedirectInformation{}, tooShort(TypeRedirectInformation, offset+m, len(b))
		}
		r.OtherServerAddress = string(b[offset : offset+m])
	}
	return r, nil
}

// RedirectInformation returns the value of a Redirect Information IE.
func (i *IE) RedirectInformation() (RedirectInformation, error) {
	if err := i.expect(TypeRedirectInformation); err != nil {
		return RedirectInformation{}, err
	}
	return ParseRedirectInformation(i.Payload)
}

// User ID flags.
const (
	UserIDFlagIMSI   uint8 = 0x01
	UserIDFlagIMEI   uint8 = 0x02
	UserIDFlagMSISDN uint8 = 0x04
	UserIDFlagNAI    uint8 = 0x08
	UserIDFlagSUPI   uint8 = 0x10
	UserIDFlagGPSI   uint8 = 0x20
	UserIDFlagPEI    uint8 = 0x40
)

// UserID carries subscriber identities. IMSI, IMEI and MSISDN are digit strings
// encoded as TBCD; the remaining identities are carried as text. Empty fields are omitted.
type UserID struct {
	IMSI   string
	IMEI   string
	MSISDN string
	NAI    string
	SUPI   string
	GPSI   string
	PEI    string
}

func (u *UserID) fields() []struct {
	flag uint8
	bcd  bool
	val  *string
} {
	return []struct {
		flag uint8
		bcd  bool
		val  *string
	}{
		{UserIDFlagIMSI, true, &u.IMSI},
		{UserIDFlagIMEI, true, &u.IMEI},
		{UserIDFlagMSISDN, true, &u.MSISDN},
		{UserIDFlagNAI, false, &u.NAI},
		{UserIDFlagSUPI, false, &u.SUPI},
		{UserIDFlagGPSI, false, &u.GPSI},
		{UserIDFlagPEI, false, &u.PEI},
	}
}

func (u UserID) Validate() error {
	for _, f := range u.fields() {
		if f.bcd && strings.Trim(*f.val, "0123456789") != "" {
			return invalid(TypeUserID, "identity %q is not a digit string", *f.val)
		}
		if len(*f.val) > 0xFF {
			return outOfRange(TypeUserID, "identity length", len(*f.val))
		}
	}
	return nil
}

// Marshal encodes the User ID payload.
func (u UserID) Marshal() []byte {
	b := make([]byte, 1, 64)
	for _, f := range u.fields() {
		if *f.val == "" {
			continue
		}
		b[0] |= f.flag
		v := []byte(*f.val)
		if f.bcd {
			v = encodeTBCD(*f.val)
		}
		b = append(b, byte(len(v)))
		b = append(b, v...)
	}
	return b
}

// IE returns a User ID IE.
func (u UserID) IE() *IE {
	return New(TypeUserID, u.Marshal())
}

// ParseUserID decodes a User ID payload.
func ParseUserID(b []byte) (UserID, error) {
	if len(b) < 1 {
		return UserID{}, tooShort(TypeUserID, 1, 0)
	}
	flags := b[0]
	u := UserID{}
	offset := 1
	for _, f := range u.fields() {
		if flags&f.flag == 0 {
			continue
		}
		if len(b) < offset+1 {
			return UserID{}, tooShort(TypeUserID, offset+1, len(b))
		}
		n := int(b[offset])
		offset++
		if len(b) < offset+n {
			return UserID{}, tooShort(TypeUserID, offset+n, len(b))
		}
		v := b[offset : offset+n]
		offset += n
		if f.bcd {
			*f.val = decodeTBCD(v)
		} else {
			*f.val = string(v)
		}
	}
	return u, nil
}

// UserID returns the value of a User ID IE.
func (i *IE) UserID() (UserID, error) {
	if err := i.expect(TypeUserID); err != nil {
		return UserID{}, err
	}
	return ParseUserID(i.Payload)
}

// encodeTBCD packs a digit string two digits per octet, low nibble first, padding with 0xF.
func encodeTBCD(digits string) []byte {
	b := make([]byte, (len(digits)+1)/2)
	for k := 0; k < len(digits); k++ {
		d := digits[k] - '0'
		if k%2 == 0 {
			b[k/2] = 0xF0 | d
		} else {
			b[k/2] = b[k/2]&0x0F | d<<4
		}
	}
	return b
}

func decodeTBCD(b []byte) string {
	var sb strings.Builder
	for _, x := range b {
		for _, d := range []byte{x & 0x0F, x >> 4} {
			if d > 9 {
				return sb.String()
			}
			sb.WriteByte('0' + d)
		}
	}
	return sb.String()
}

// PFD Contents flags.
const (
	PFDContentsFlagFD   uint8 = 0x01
	PFDContentsFlagURL  uint8 = 0x02
	PFDContentsFlagDN   uint8 = 0x04
	PFDContentsFlagCP   uint8 = 0x08
	PFDContentsFlagDNP  uint8 = 0x10
	PFDContentsFlagAFD  uint8 = 0x20
	PFDContentsFlagAURL uint8 = 0x40
	PFDContentsFlagADNP uint8 = 0x80
)

// PFDContents describes how to detect one application's packet flows.
// Empty fields are omitted; the Additional fields carry their nested lists verbatim.
type PFDContents struct {
	FlowDescription              string
	URL                          string
	DomainName                   string
	CustomPFDContent             []byte
	DomainNameProtocol           string
	AdditionalFlowDescription    []byte
	AdditionalURL                []byte
	AdditionalDomainNameProtocol []byte
}

func (p PFDContents) parts() []struct {
	flag uint8
	val  []byte
} {
	return []struct {
		flag uint8
		val  []byte
	}{
		{PFDContentsFlagFD, []byte(p.FlowDescription)},
		{PFDContentsFlagURL, []byte(p.URL)},
		{PFDContentsFlagDN, []byte(p.DomainName)},
		{PFDContentsFlagCP, p.CustomPFDContent},
		{PFDContentsFlagDNP, []byte(p.DomainNameProtocol)},
		{PFDContentsFlagAFD, p.AdditionalFlowDescription},
		{PFDContentsFlagAURL, p.AdditionalURL},
		{PFDContentsFlagADNP, p.AdditionalDomainNameProtocol},
	}
}

// Marshal encodes the PFD Contents payload.
func (p PFDContents) Marshal() []byte {
	b := make([]byte, 2, 64)
	for _, part := range p.parts() {
		if len(part.val) == 0 {
			continue
		}
		b[0] |= part.flag
		b = binary.BigEndian.AppendUint16(b, uint16(len(part.val)))
		b = append(b, part.val...)
	}
	return b
}

// IE returns a PFD Contents IE.
func (p PFDContents) IE() *IE {
	return New(TypePFDContents, p.Marshal())
}

// ParsePFDContents decodes a PFD Contents payload.
func ParsePFDContents(b []byte) (PFDContents, error) {
	if len(b) < 2 {
		return PFDContents{}, tooShort(TypePFDContents, 2, len(b))
	}
	flags := b[0]
	var values [8][]byte
	offset := 2
	for k, flag := range []uint8{PFDContentsFlagFD, PFDContentsFlagURL, PFDContentsFlagDN, PFDContentsFlagCP,
		PFDContentsFlagDNP, PFDContentsFlagAFD, PFDContentsFlagAURL, PFDContentsFlagADNP} {
		if flags&flag == 0 {
			continue
		}
		if len(b) < offset+2 {
			return PFDContents{}, tooShort(TypePFDContents, offset+2, len(b))
		}
		n := int(binary.BigEndian.Uint16(b[offset:]))
		offset += 2
		if len(b) < offset+n {
			return PFDContents{}, tooShort(TypePFDContents, offset+n, len(b))
		}
		values[k] = clonePayload(b[offset : offset+n])
		offset += n
	}
	return PFDContents{
		FlowDescription:              string(values[0]),
		URL:                          string(values[1]),
		DomainName:                   string(values[2]),
		CustomPFDContent:             values[3],
		DomainNameProtocol:           string(values[4]),
		AdditionalFlowDescription:    values[5],
		AdditionalURL:                values[6],
		AdditionalDomainNameProtocol: values[7],
	}, nil
}

// PFDContents returns the value of a PFD Contents IE.
func (i *IE) PFDContents() (PFDContents, error) {
	if err := i.expect(TypePFDContents); err != nil {
		return PFDContents{}, err
	}
	return ParsePFDContents(i.Payload)
}

// HeaderEnrichment is an HTTP header the UP function inserts.
type HeaderEnrichment struct {
	HeaderType uint8
	Name       string
	Value      string
}

func (h HeaderEnrichment) Validate() error {
	if len(h.Name) > 0xFF || len(h.Value) > 0xFF {
		return outOfRange(TypeHeaderEnrichment, "header field length", len(h.Name)+len(h.Value))
	}
	return nil
}

// Marshal encodes the Header Enrichment payload.
func (h HeaderEnrichment) Marshal() []byte {
	b := make([]byte, 0, 3+len(h.Name)+len(h.Value))
	b = append(b, h.HeaderType&0x1F, byte(len(h.Name)))
	b = append(b, h.Name...)
	b = append(b, byte(len(h.Value)))
	return append(b, h.Value...)
}

// IE returns a Header Enrichment IE.
func (h HeaderEnrichment) IE() *IE {
	return New(TypeHeaderEnrichment, h.Marshal())
}

// ParseHeaderEnrichment decodes a Header Enrichment payload.
func ParseHeaderEnrichment(b []byte) (HeaderEnrichment, error) {
	if len(b) < 2 {
		return HeaderEnrichment{}, tooShort(TypeHeaderEnrichment, 2, len(b))
	}
	h := HeaderEnrichment{HeaderType: b[0] & 0x1F}
	n := int(b[1])
	if len(b) < 2+n+1 {
		return HeaderEnrichment{}, tooShort(TypeHeaderEnrichment, 2+n+1, len(b))
	}
	h.Name = string(b[2 : 2+n])
	m := int(b[2+n])
	if len(b) < 3+n+m {
		return HeaderEnrichment{}, tooShort(TypeHeaderEnrichment, 3+n+m, len(b))
	}
	h.Value = string(b[3+n : 3+n+m])
	return h, nil
}

// HeaderEnrichment returns the value of a Header Enrichment IE.
func (i *IE) HeaderEnrichment() (HeaderEnrichment, error) {
	if err := i.expect(TypeHeaderEnrichment); err != nil {
		return HeaderEnrichment{}, err
	}
	return ParseHeaderEnrichment(i.Payload)
}

// NewNFInstanceID creates an NF Instance ID IE from a UUID.
func NewNFInstanceID(uuid [16]byte) *IE {
	return New(TypeNFInstanceID, uuid[:])
}

// NewNFInstanceIDFromString creates an NF Instance ID IE from the textual UUID form.
func NewNFInstanceIDFromString(uuid string) (*IE, error) {
	raw, err := hex.DecodeString(strings.ReplaceAll(uuid, "-", ""))
	if err != nil || len(raw) != 16 {
		return nil, invalid(TypeNFInstanceID, "%q is not a UUID", uuid)
	}
	return New(TypeNFInstanceID, raw), nil
}

// NFInstanceID returns the UUID of an NF Instance ID IE.
func (i *IE) NFInstanceID() ([16]byte, error) {
	var uuid [16]byte
	if err := i.expect(TypeNFInstanceID); err != nil {
		return uuid, err
	}
	if len(i.Payload) < 16 {
		return uuid, tooShort(i.Type, 16, len(i.Payload))
	}
	copy(uuid[:], i.Payload)
	return uuid, nil
}

// SNSSAI is a network slice selector.
type SNSSAI struct {
	SST uint8
	SD  uint32
}

// NoSD is the slice differentiator value meaning "no SD".
const NoSD uint32 = 0xFFFFFF

func (s SNSSAI) Validate() error {
	if !fitsIn(s.SD, 24) {
		return outOfRange(TypeSNSSAI, "SD", s.SD)
	}
	return nil
}

// Marshal encodes the S-NSSAI payload.
func (s SNSSAI) Marshal() []byte {
	b := make([]byte, 4)
	b[0] = s.SST
	putUintN(b[1:], s.SD, 3)
	return b
}

// IE returns an S-NSSAI IE.
func (s SNSSAI) IE() *IE {
	return New(TypeSNSSAI, s.Marshal())
}

// ParseSNSSAI decodes an S-NSSAI payload.
func ParseSNSSAI(b []byte) (SNSSAI, error) {
	if len(b) < 4 {
		return SNSSAI{}, tooShort(TypeSNSSAI, 4, len(b))
	}
	return SNSSAI{SST: b[0], SD: uintN[uint32](b[1:], 3)}, nil
}

// SNSSAI returns the value of an S-NSSAI IE.
func (i *IE) SNSSAI() (SNSSAI, error) {
	if err := i.expect(TypeSNSSAI, TypeHPLMNSNSSAI); err != nil {
		return SNSSAI{}, err
	}
	return ParseSNSSAI(i.Payload)
}

// NewUEIPAddressPoolIdentity creates a UE IP Address Pool Identity IE.
func NewUEIPAddressPoolIdentity(pool string) (*IE, error) {
	if len(pool) > 0xFFFF-2 {
		return nil, outOfRange(TypeUEIPAddressPoolIdentity, "identity length", len(pool))
	}
	b := binary.BigEndian.AppendUint16(nil, uint16(len(pool)))
	return New(TypeUEIPAddressPoolIdentity, append(b, pool...)), nil
}

// UEIPAddressPoolIdentity returns the value of a UE IP Address Pool Identity IE.
func (i *IE) UEIPAddressPoolIdentity() (string, error) {
	if err := i.expect(TypeUEIPAddressPoolIdentity); err != nil {
		return "", err
	}
	if len(i.Payload) < 2 {
		return "", tooShort(i.Type, 2, len(i.Payload))
	}
	n := int(binary.BigEndian.Uint16(i.Payload))
	if len(i.Payload) < 2+n {
		return "", tooShort(i.Type, 2+n, len(i.Payload))
	}
	return string(i.Payload[2 : 2+n]), nil
}

// NewTLContainer creates a TL-Container IE carrying opaque TSN bridge data.
func NewTLContainer(data []byte) *IE {
	return New(TypeTLContainer, data)
}
