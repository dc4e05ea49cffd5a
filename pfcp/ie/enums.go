/* YaPFCP - Yet another PFCP codec
 *
 * Copyright (C) 2020-2024 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ie

import (
	"encoding/binary"

	"github.com/yapfcp/yapfcp/pfcp/util"
)

// NewCause creates a Cause IE.
func NewCause(c util.Cause) *IE {
	return newUint8(TypeCause, uint8(c))
}

// Cause returns the value of a Cause IE.
func (i *IE) Cause() (util.Cause, error) {
	if err := i.expect(TypeCause); err != nil {
		return 0, err
	}
	v, err := i.ValueAsUint8()
	return util.Cause(v), err
}

// Interface is the value of a Source Interface or Destination Interface IE.
type Interface uint8

// Interface values.
const (
	InterfaceAccess       Interface = 0
	InterfaceCore         Interface = 1
	InterfaceSGiLAN       Interface = 2
	InterfaceCPFunction   Interface = 3
	InterfaceLIFunction   Interface = 4
	Interface5GVNInternal Interface = 5
)

var interfaceNames = map[Interface]string{
	InterfaceAccess:       "Access",
	InterfaceCore:         "Core",
	InterfaceSGiLAN:       "SGi-LAN/N6-LAN",
	InterfaceCPFunction:   "CP-function",
	InterfaceLIFunction:   "LI Function",
	Interface5GVNInternal: "5G VN Internal",
}

func (v Interface) String() string {
	if name, ok := interfaceNames[v]; ok {
		return name
	}
	return "Unknown"
}

// NewSourceInterface creates a Source Interface IE.
func NewSourceInterface(v Interface) (*IE, error) {
	if !fitsIn(v, 4) {
		return nil, outOfRange(TypeSourceInterface, "interface", v)
	}
	return newUint8(TypeSourceInterface, uint8(v)), nil
}

// SourceInterface returns the value of a Source Interface IE.
func (i *IE) SourceInterface() (Interface, error) {
	if err := i.expect(TypeSourceInterface); err != nil {
		return 0, err
	}
	v, err := i.ValueAsUint8()
	return Interface(v & 0x0F), err
}

// NewDestinationInterface creates a Destination Interface IE.
func NewDestinationInterface(v Interface) (*IE, error) {
	if !fitsIn(v, 4) {
		return nil, outOfRange(TypeDestinationInterface, "interface", v)
	}
	return newUint8(TypeDestinationInterface, uint8(v)), nil
}

// DestinationInterface returns the value of a Destination Interface IE.
func (i *IE) DestinationInterface() (Interface, error) {
	if err := i.expect(TypeDestinationInterface); err != nil {
		return 0, err
	}
	v, err := i.ValueAsUint8()
	return Interface(v & 0x0F), err
}

// 3GPP interface types (TS 29.244 clause 8.2.118), the common subset.
const (
	InterfaceTypeS1U                uint8 = 0
	InterfaceTypeS5S8U              uint8 = 1
	InterfaceTypeS4U                uint8 = 2
	InterfaceTypeS11U               uint8 = 3
	InterfaceTypeS12U               uint8 = 4
	InterfaceTypeGnGpU              uint8 = 5
	InterfaceTypeS2aU               uint8 = 6
	InterfaceTypeS2bU               uint8 = 7
	InterfaceTypeENodeBDLForwarding uint8 = 8
	InterfaceTypeN3Access           uint8 = 11
	InterfaceTypeN3Trusted          uint8 = 12
	InterfaceTypeN3Untrusted        uint8 = 13
	InterfaceTypeN9                 uint8 = 15
	InterfaceTypeSGiN6              uint8 = 17
	InterfaceTypeN19                uint8 = 18
)

// New3GPPInterfaceType creates a 3GPP Interface Type IE. Values are 6 bits.
func New3GPPInterfaceType(v uint8) (*IE, error) {
	if !fitsIn(v, 6) {
		return nil, outOfRange(Type3GPPInterfaceType, "interface type", v)
	}
	return newUint8(Type3GPPInterfaceType, v), nil
}

// InterfaceType3GPP returns the value of a 3GPP Interface Type IE.
func (i *IE) InterfaceType3GPP() (uint8, error) {
	if err := i.expect(Type3GPPInterfaceType); err != nil {
		return 0, err
	}
	v, err := i.ValueAsUint8()
	return v & 0x3F, err
}

// PDNType is the value of a PDN Type IE.
type PDNType uint8

// PDN types.
const (
	PDNTypeIPv4     PDNType = 1
	PDNTypeIPv6     PDNType = 2
	PDNTypeIPv4v6   PDNType = 3
	PDNTypeNonIP    PDNType = 4
	PDNTypeEthernet PDNType = 5
)

// NewPDNType creates a PDN Type IE.
func NewPDNType(v PDNType) (*IE, error) {
	if v < PDNTypeIPv4 || v > PDNTypeEthernet {
		return nil, outOfRange(TypePDNType, "PDN type", v)
	}
	return newUint8(TypePDNType, uint8(v)), nil
}

// PDNType returns the value of a PDN Type IE.
func (i *IE) PDNType() (PDNType, error) {
	if err := i.expect(TypePDNType); err != nil {
		return 0, err
	}
	v, err := i.ValueAsUint8()
	return PDNType(v & 0x07), err
}

// Gate values.
const (
	GateOpen   uint8 = 0
	GateClosed uint8 = 1
)

// GateStatus holds the uplink and downlink gates of a QER.
type GateStatus struct {
	UL uint8
	DL uint8
}

func (g GateStatus) Validate() error {
	if !fitsIn(g.UL, 2) || !fitsIn(g.DL, 2) {
		return outOfRange(TypeGateStatus, "gate", g)
	}
	return nil
}

// Marshal encodes the gate status payload.
func (g GateStatus) Marshal() []byte {
	return []byte{(g.UL&0x03)<<2 | g.DL&0x03}
}

// IE returns a Gate Status IE.
func (g GateStatus) IE() *IE {
	return New(TypeGateStatus, g.Marshal())
}

// NewGateStatus creates a Gate Status IE.
func NewGateStatus(ul uint8, dl uint8) (*IE, error) {
	g := GateStatus{UL: ul, DL: dl}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g.IE(), nil
}

// ParseGateStatus decodes a Gate Status payload.
func ParseGateStatus(b []byte) (GateStatus, error) {
	if len(b) < 1 {
		return GateStatus{}, tooShort(TypeGateStatus, 1, len(b))
	}
	return GateStatus{UL: b[0] >> 2 & 0x03, DL: b[0] & 0x03}, nil
}

// GateStatus returns the value of a Gate Status IE.
func (i *IE) GateStatus() (GateStatus, error) {
	if err := i.expect(TypeGateStatus); err != nil {
		return GateStatus{}, err
	}
	return ParseGateStatus(i.Payload)
}

// Outer header removal descriptions.
const (
	OuterHeaderRemovalGTPUUDPIPv4 uint8 = 0
	OuterHeaderRemovalGTPUUDPIPv6 uint8 = 1
	OuterHeaderRemovalUDPIPv4     uint8 = 2
	OuterHeaderRemovalUDPIPv6     uint8 = 3
	OuterHeaderRemovalIPv4        uint8 = 4
	OuterHeaderRemovalIPv6        uint8 = 5
	OuterHeaderRemovalGTPUUDPIP   uint8 = 6
	OuterHeaderRemovalVLANSTag    uint8 = 7
	OuterHeaderRemovalSTagCTag    uint8 = 8
)

// OuterHeaderRemoval is the value of an Outer Header Removal IE.
type OuterHeaderRemoval struct {
	Description uint8
	// ExtensionHeaderDeletion is only encoded when HasExtensionHeaderDeletion is set.
	ExtensionHeaderDeletion    uint8
	HasExtensionHeaderDeletion bool
}

// Marshal encodes the outer header removal payload.
func (o OuterHeaderRemoval) Marshal() []byte {
	if o.HasExtensionHeaderDeletion {
		return []byte{o.Description, o.ExtensionHeaderDeletion}
	}
	return []byte{o.Description}
}

// IE returns an Outer Header Removal IE.
func (o OuterHeaderRemoval) IE() *IE {
	return New(TypeOuterHeaderRemoval, o.Marshal())
}

// NewOuterHeaderRemoval creates an Outer Header Removal IE without extension header deletion.
func NewOuterHeaderRemoval(description uint8) *IE {
	return OuterHeaderRemoval{Description: description}.IE()
}

// ParseOuterHeaderRemoval decodes an Outer Header Removal payload.
func ParseOuterHeaderRemoval(b []byte) (OuterHeaderRemoval, error) {
	if len(b) < 1 {
		return OuterHeaderRemoval{}, tooShort(TypeOuterHeaderRemoval, 1, len(b))
	}
	o := OuterHeaderRemoval{Description: b[0]}
	if len(b) >= 2 {
		o.ExtensionHeaderDeletion = b[1]
		o.HasExtensionHeaderDeletion = true
	}
	return o, nil
}

// OuterHeaderRemoval returns the value of an Outer Header Removal IE.
func (i *IE) OuterHeaderRemoval() (OuterHeaderRemoval, error) {
	if err := i.expect(TypeOuterHeaderRemoval); err != nil {
		return OuterHeaderRemoval{}, err
	}
	return ParseOuterHeaderRemoval(i.Payload)
}

// RuleType identifies the kind of rule named by a Failed Rule ID IE.
type RuleType uint8

// Rule types.
const (
	RuleTypePDR RuleType = 0
	RuleTypeFAR RuleType = 1
	RuleTypeQER RuleType = 2
	RuleTypeURR RuleType = 3
	RuleTypeBAR RuleType = 4
	RuleTypeMAR RuleType = 5
	RuleTypeSRR RuleType = 6
)

var ruleIDLens = map[RuleType]int{
	RuleTypePDR: 2,
	RuleTypeFAR: 4,
	RuleTypeQER: 4,
	RuleTypeURR: 4,
	RuleTypeBAR: 1,
	RuleTypeMAR: 2,
	RuleTypeSRR: 1,
}

// FailedRuleID names the rule that could not be installed.
type FailedRuleID struct {
	RuleType RuleType
	ID       uint32
}

func (f FailedRuleID) Validate() error {
	n, ok := ruleIDLens[f.RuleType]
	if !ok {
		return outOfRange(TypeFailedRuleID, "rule type", f.RuleType)
	}
	if !fitsIn(f.ID, n*8) {
		return outOfRange(TypeFailedRuleID, "rule ID", f.ID)
	}
	return nil
}

// Marshal encodes the failed rule ID payload.
func (f FailedRuleID) Marshal() []byte {
	n, ok := ruleIDLens[f.RuleType]
	if !ok {
		n = 4
	}
	b := make([]byte, 1+n)
	b[0] = uint8(f.RuleType) & 0x1F
	putUintN(b[1:], f.ID, n)
	return b
}

// IE returns a Failed Rule ID IE.
func (f FailedRuleID) IE() *IE {
	return New(TypeFailedRuleID, f.Marshal())
}

// ParseFailedRuleID decodes a Failed Rule ID payload.
func ParseFailedRuleID(b []byte) (FailedRuleID, error) {
	if len(b) < 1 {
		return FailedRuleID{}, tooShort(TypeFailedRuleID, 1, len(b))
	}
	f := FailedRuleID{RuleType: RuleType(b[0] & 0x1F)}
	n, ok := ruleIDLens[f.RuleType]
	if !ok {
		return FailedRuleID{}, outOfRange(TypeFailedRuleID, "rule type", f.RuleType)
	}
	if len(b) < 1+n {
		return FailedRuleID{}, tooShort(TypeFailedRuleID, 1+n, len(b))
	}
	f.ID = uintN[uint32](b[1:], n)
	return f, nil
}

// FailedRuleID returns the value of a Failed Rule ID IE.
func (i *IE) FailedRuleID() (FailedRuleID, error) {
	if err := i.expect(TypeFailedRuleID); err != nil {
		return FailedRuleID{}, err
	}
	return ParseFailedRuleID(i.Payload)
}

// Steering functionalities and modes for multi-access rules.
const (
	SteeringFunctionalityATSSSLL uint8 = 0
	SteeringFunctionalityMPTCP   uint8 = 1
	SteeringFunctionalityMPQUIC  uint8 = 2

	SteeringModeActiveStandby uint8 = 0
	SteeringModeSmallestDelay uint8 = 1
	SteeringModeLoadBalancing uint8 = 2
	SteeringModePriorityBased uint8 = 3
	SteeringModeRedundant     uint8 = 4
)

// NewSteeringFunctionality creates a Steering Functionality IE.
func NewSteeringFunctionality(v uint8) *IE {
	return newUint8(TypeSteeringFunctionality, v&0x0F)
}

// SteeringFunctionality returns the value of a Steering Functionality IE.
func (i *IE) SteeringFunctionality() (uint8, error) {
	if err := i.expect(TypeSteeringFunctionality); err != nil {
		return 0, err
	}
	v, err := i.ValueAsUint8()
	return v & 0x0F, err
}

// NewSteeringMode creates a Steering Mode IE.
func NewSteeringMode(v uint8) *IE {
	return newUint8(TypeSteeringMode, v&0x0F)
}

// SteeringMode returns the value of a Steering Mode IE.
func (i *IE) SteeringMode() (uint8, error) {
	if err := i.expect(TypeSteeringMode); err != nil {
		return 0, err
	}
	v, err := i.ValueAsUint8()
	return v & 0x0F, err
}

// NewEthertype creates an Ethertype IE.
func NewEthertype(v uint16) *IE {
	return newUint16(TypeEthertype, v)
}

// Ethertype returns the value of an Ethertype IE.
func (i *IE) Ethertype() (uint16, error) {
	if err := i.expect(TypeEthertype); err != nil {
		return 0, err
	}
	if len(i.Payload) < 2 {
		return 0, tooShort(i.Type, 2, len(i.Payload))
	}
	return binary.BigEndian.Uint16(i.Payload), nil
}
