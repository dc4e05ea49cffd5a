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

// ForwardingParameters describes where a FAR sends traffic.
type ForwardingParameters struct {
	DestinationInterface     Interface
	NetworkInstance          *string
	RedirectInformation      *RedirectInformation
	OuterHeaderCreation      *OuterHeaderCreation
	TransportLevelMarking    *uint16
	ForwardingPolicy         *string
	HeaderEnrichment         *HeaderEnrichment
	LinkedTrafficEndpointID  *uint8
	DestinationInterfaceType *uint8
}

func (f ForwardingParameters) Validate() error {
	if !fitsIn(f.DestinationInterface, 4) {
		return outOfRange(TypeDestinationInterface, "interface", f.DestinationInterface)
	}
	return validateForwarding(f.OuterHeaderCreation, f.HeaderEnrichment, f.ForwardingPolicy, f.DestinationInterfaceType)
}

func validateForwarding(ohc *OuterHeaderCreation, he *HeaderEnrichment, policy *string, itype *uint8) error {
	if ohc != nil {
		if err := ohc.Validate(); err != nil {
			return err
		}
	}
	if he != nil {
		if err := he.Validate(); err != nil {
			return err
		}
	}
	if policy != nil && len(*policy) > 0xFF {
		return outOfRange(TypeForwardingPolicy, "identifier length", len(*policy))
	}
	if itype != nil && !fitsIn(*itype, 6) {
		return outOfRange(Type3GPPInterfaceType, "interface type", *itype)
	}
	return nil
}

func newForwardingPolicy(id string) *IE {
	return mustIE(NewForwardingPolicy(id))
}

func newInterfaceType(v uint8) *IE {
	return mustIE(New3GPPInterfaceType(v))
}

// IE returns a Forwarding Parameters IE.
func (f ForwardingParameters) IE() (*IE, error) {
	return checked(f, f.ie)
}

func (f ForwardingParameters) ie() *IE {
	b := &builder{}
	b.add(mustIE(NewDestinationInterface(f.DestinationInterface)))
	addOptional(b, f.NetworkInstance, NewNetworkInstance)
	addOptional(b, f.RedirectInformation, RedirectInformation.IE)
	addOptional(b, f.OuterHeaderCreation, OuterHeaderCreation.IE)
	addOptional(b, f.TransportLevelMarking, NewTransportLevelMarking)
	addOptional(b, f.ForwardingPolicy, newForwardingPolicy)
	addOptional(b, f.HeaderEnrichment, HeaderEnrichment.IE)
	addOptional(b, f.LinkedTrafficEndpointID, NewTrafficEndpointID)
	addOptional(b, f.DestinationInterfaceType, newInterfaceType)
	return b.build(TypeForwardingParameters)
}

// ParseForwardingParameters decodes a Forwarding Parameters IE.
func ParseForwardingParameters(i *IE) (ForwardingParameters, error) {
	g, err := openGroup(i, TypeForwardingParameters)
	if err != nil {
		return ForwardingParameters{}, err
	}
	f := ForwardingParameters{}
	if f.DestinationInterface, err = required(g, TypeDestinationInterface, (*IE).DestinationInterface); err != nil {
		return ForwardingParameters{}, err
	}
	if f.NetworkInstance, err = optional(g, TypeNetworkInstance, (*IE).NetworkInstance); err != nil {
		return ForwardingParameters{}, err
	}
	if f.RedirectInformation, err = optional(g, TypeRedirectInformation, (*IE).RedirectInformation); err != nil {
		return ForwardingParameters{}, err
	}
	if f.OuterHeaderCreation, err = optional(g, TypeOuterHeaderCreation, (*IE).OuterHeaderCreation); err != nil {
		return ForwardingParameters{}, err
	}
	if f.TransportLevelMarking, err = optional(g, TypeTransportLevelMarking, (*IE).TransportLevelMarking); err != nil {
		return ForwardingParameters{}, err
	}
	if f.ForwardingPolicy, err = optional(g, TypeForwardingPolicy, (*IE).ForwardingPolicy); err != nil {
		return ForwardingParameters{}, err
	}
	if f.HeaderEnrichment, err = optional(g, TypeHeaderEnrichment, (*IE).HeaderEnrichment); err != nil {
		return ForwardingParameters{}, err
	}
	if f.LinkedTrafficEndpointID, err = optional(g, TypeTrafficEndpointID, (*IE).TrafficEndpointID); err != nil {
		return ForwardingParameters{}, err
	}
	if f.DestinationInterfaceType, err = optional(g, Type3GPPInterfaceType, (*IE).InterfaceType3GPP); err != nil {
		return ForwardingParameters{}, err
	}
	return f, nil
}

// ForwardingParametersBuilder assembles Forwarding Parameters.
type ForwardingParametersBuilder struct {
	destination *Interface
	params      ForwardingParameters
}

// NewForwardingParametersBuilder returns an empty Forwarding Parameters builder.
func NewForwardingParametersBuilder() *ForwardingParametersBuilder {
	return &ForwardingParametersBuilder{}
}

func (b *ForwardingParametersBuilder) DestinationInterface(v Interface) *ForwardingParametersBuilder {
	b.destination = &v
	return b
}

func (b *ForwardingParametersBuilder) NetworkInstance(name string) *ForwardingParametersBuilder {
	b.params.NetworkInstance = &name
	return b
}

func (b *ForwardingParametersBuilder) RedirectInformation(r RedirectInformation) *ForwardingParametersBuilder {
	b.params.RedirectInformation = &r
	return b
}

func (b *ForwardingParametersBuilder) OuterHeaderCreation(o OuterHeaderCreation) *ForwardingParametersBuilder {
	b.params.OuterHeaderCreation = &o
	return b
}

func (b *ForwardingParametersBuilder) TransportLevelMarking(v uint16) *ForwardingParametersBuilder {
	b.params.TransportLevelMarking = &v
	return b
}

func (b *ForwardingParametersBuilder) ForwardingPolicy(id string) *ForwardingParametersBuilder {
	b.params.ForwardingPolicy = &id
	return b
}

func (b *ForwardingParametersBuilder) HeaderEnrichment(h HeaderEnrichment) *ForwardingParametersBuilder {
	b.params.HeaderEnrichment = &h
	return b
}

func (b *ForwardingParametersBuilder) LinkedTrafficEndpointID(id uint8) *ForwardingParametersBuilder {
	b.params.LinkedTrafficEndpointID = &id
	return b
}

func (b *ForwardingParametersBuilder) DestinationInterfaceType(t uint8) *ForwardingParametersBuilder {
	b.params.DestinationInterfaceType = &t
	return b
}

// Build validates the builder and returns the Forwarding Parameters.
func (b *ForwardingParametersBuilder) Build() (ForwardingParameters, error) {
	if b.destination == nil {
		return ForwardingParameters{}, util.ErrBuilderMissingField{Builder: "ForwardingParameters", Field: "DestinationInterface"}
	}
	f := b.params
	f.DestinationInterface = *b.destination
	if err := ValidateField("ForwardingParameters", "ForwardingParameters", f); err != nil {
		return ForwardingParameters{}, err
	}
	return f, nil
}

// UpdateForwardingParameters changes where an installed FAR sends traffic.
type UpdateForwardingParameters struct {
	DestinationInterface     *Interface
	NetworkInstance          *string
	RedirectInformation      *RedirectInformation
	OuterHeaderCreation      *OuterHeaderCreation
	TransportLevelMarking    *uint16
	ForwardingPolicy         *string
	HeaderEnrichment         *HeaderEnrichment
	PFCPSMReqFlags           *uint8
	LinkedTrafficEndpointID  *uint8
	DestinationInterfaceType *uint8
}

func (u UpdateForwardingParameters) Validate() error {
	if u.DestinationInterface != nil && !fitsIn(*u.DestinationInterface, 4) {
		return outOfRange(TypeDestinationInterface, "interface", *u.DestinationInterface)
	}
	return validateForwarding(u.OuterHeaderCreation, u.HeaderEnrichment, u.ForwardingPolicy, u.DestinationInterfaceType)
}

// IE returns an Update Forwarding Parameters IE.
func (u UpdateForwardingParameters) IE() (*IE, error) {
	return checked(u, u.ie)
}

func (u UpdateForwardingParameters) ie() *IE {
	b := &builder{}
	addOptional(b, u.DestinationInterface, func(v Interface) *IE { return mustIE(NewDestinationInterface(v)) })
	addOptional(b, u.NetworkInstance, NewNetworkInstance)
	addOptional(b, u.RedirectInformation, RedirectInformation.IE)
	addOptional(b, u.OuterHeaderCreation, OuterHeaderCreation.IE)
	addOptional(b, u.TransportLevelMarking, NewTransportLevelMarking)
	addOptional(b, u.ForwardingPolicy, newForwardingPolicy)
	addOptional(b, u.HeaderEnrichment, HeaderEnrichment.IE)
	addOptional(b, u.PFCPSMReqFlags, func(v uint8) *IE { return newUint8(TypePFCPSMReqFlags, v) })
	addOptional(b, u.LinkedTrafficEndpointID, NewTrafficEndpointID)
	addOptional(b, u.DestinationInterfaceType, newInterfaceType)
	return b.build(TypeUpdateForwardingParameters)
}

// ParseUpdateForwardingParameters decodes an Update Forwarding Parameters IE.
func ParseUpdateForwardingParameters(i *IE) (UpdateForwardingParameters, error) {
	g, err := openGroup(i, TypeUpdateForwardingParameters)
	if err != nil {
		return UpdateForwardingParameters{}, err
	}
	u := UpdateForwardingParameters{}
	if u.DestinationInterface, err = optional(g, TypeDestinationInterface, (*IE).DestinationInterface); err != nil {
		return UpdateForwardingParameters{}, err
	}
	if u.NetworkInstance, err = optional(g, TypeNetworkInstance, (*IE).NetworkInstance); err != nil {
		return UpdateForwardingParameters{}, err
	}
	if u.RedirectInformation, err = optional(g, TypeRedirectInformation, (*IE).RedirectInformation); err != nil {
		return UpdateForwardingParameters{}, err
	}
	if u.OuterHeaderCreation, err = optional(g, TypeOuterHeaderCreation, (*IE).OuterHeaderCreation); err != nil {
		return UpdateForwardingParameters{}, err
	}
	if u.TransportLevelMarking, err = optional(g, TypeTransportLevelMarking, (*IE).TransportLevelMarking); err != nil {
		return UpdateForwardingParameters{}, err
	}
	if u.ForwardingPolicy, err = optional(g, TypeForwardingPolicy, (*IE).ForwardingPolicy); err != nil {
		return UpdateForwardingParameters{}, err
	}
	if u.HeaderEnrichment, err = optional(g, TypeHeaderEnrichment, (*IE).HeaderEnrichment); err != nil {
		return UpdateForwardingParameters{}, err
	}
	if u.PFCPSMReqFlags, err = optional(g, TypePFCPSMReqFlags, (*IE).Flags); err != nil {
		return UpdateForwardingParameters{}, err
	}
	if u.LinkedTrafficEndpointID, err = optional(g, TypeTrafficEndpointID, (*IE).TrafficEndpointID); err != nil {
		return UpdateForwardingParameters{}, err
	}
	if u.DestinationInterfaceType, err = optional(g, Type3GPPInterfaceType, (*IE).InterfaceType3GPP); err != nil {
		return UpdateForwardingParameters{}, err
	}
	return u, nil
}

// UpdateForwardingParametersBuilder assembles Update Forwarding Parameters.
type UpdateForwardingParametersBuilder struct {
	params UpdateForwardingParameters
}

// NewUpdateForwardingParametersBuilder returns an empty Update Forwarding Parameters builder.
func NewUpdateForwardingParametersBuilder() *UpdateForwardingParametersBuilder {
	return &UpdateForwardingParametersBuilder{}
}

func (b *UpdateForwardingParametersBuilder) DestinationInterface(v Interface) *UpdateForwardingParametersBuilder {
	b.params.DestinationInterface = &v
	return b
}

func (b *UpdateForwardingParametersBuilder) NetworkInstance(name string) *UpdateForwardingParametersBuilder {
	b.params.NetworkInstance = &name
	return b
}

func (b *UpdateForwardingParametersBuilder) OuterHeaderCreation(o OuterHeaderCreation) *UpdateForwardingParametersBuilder {
	b.params.OuterHeaderCreation = &o
	return b
}

func (b *UpdateForwardingParametersBuilder) TransportLevelMarking(v uint16) *UpdateForwardingParametersBuilder {
	b.params.TransportLevelMarking = &v
	return b
}

func (b *UpdateForwardingParametersBuilder) ForwardingPolicy(id string) *UpdateForwardingParametersBuilder {
	b.params.ForwardingPolicy = &id
	return b
}

// PFCPSMReqFlags sets the SNDEM, DROBU and QAURR flags, such as when an end marker must be sent.
func (b *UpdateForwardingParametersBuilder) PFCPSMReqFlags(flags uint8) *UpdateForwardingParametersBuilder {
	b.params.PFCPSMReqFlags = &flags
	return b
}

// Build validates the builder and returns the Update Forwarding Parameters.
func (b *UpdateForwardingParametersBuilder) Build() (UpdateForwardingParameters, error) {
	if err := ValidateField("UpdateForwardingParameters", "UpdateForwardingParameters", b.params); err != nil {
		return UpdateForwardingParameters{}, err
	}
	return b.params, nil
}

// DuplicatingParameters describes where a FAR copies traffic.
type DuplicatingParameters struct {
	DestinationInterface  Interface
	OuterHeaderCreation   *OuterHeaderCreation
	TransportLevelMarking *uint16
	ForwardingPolicy      *string
}

func (d DuplicatingParameters) Validate() error {
	if !fitsIn(d.DestinationInterface, 4) {
		return outOfRange(TypeDestinationInterface, "interface", d.DestinationInterface)
	}
	return validateForwarding(d.OuterHeaderCreation, nil, d.ForwardingPolicy, nil)
}

// IE returns a Duplicating Parameters IE.
func (d DuplicatingParameters) IE() (*IE, error) {
	return checked(d, d.ie)
}

func (d DuplicatingParameters) ie() *IE {
	b := &builder{}
	b.add(mustIE(NewDestinationInterface(d.DestinationInterface)))
	addOptional(b, d.OuterHeaderCreation, OuterHeaderCreation.IE)
	addOptional(b, d.TransportLevelMarking, NewTransportLevelMarking)
	addOptional(b, d.ForwardingPolicy, newForwardingPolicy)
	return b.build(TypeDuplicatingParameters)
}

// ParseDuplicatingParameters decodes a Duplicating Parameters IE.
func ParseDuplicatingParameters(i *IE) (DuplicatingParameters, error) {
	g, err := openGroup(i, TypeDuplicatingParameters)
	if err != nil {
		return DuplicatingParameters{}, err
	}
	d := DuplicatingParameters{}
	if d.DestinationInterface, err = required(g, TypeDestinationInterface, (*IE).DestinationInterface); err != nil {
		return DuplicatingParameters{}, err
	}
	if d.OuterHeaderCreation, err = optional(g, TypeOuterHeaderCreation, (*IE).OuterHeaderCreation); err != nil {
		return DuplicatingParameters{}, err
	}
	if d.TransportLevelMarking, err = optional(g, TypeTransportLevelMarking, (*IE).TransportLevelMarking); err != nil {
		return DuplicatingParameters{}, err
	}
	if d.ForwardingPolicy, err = optional(g, TypeForwardingPolicy, (*IE).ForwardingPolicy); err != nil {
		return DuplicatingParameters{}, err
	}
	return d, nil
}

// CreateFAR installs a forwarding action rule.
type CreateFAR struct {
	FARID                 uint32
	ApplyAction           uint16
	ForwardingParameters  *ForwardingParameters
	DuplicatingParameters []DuplicatingParameters
	BARID                 *uint8
}

func (c CreateFAR) Validate() error {
	if c.ForwardingParameters != nil {
		if err := c.ForwardingParameters.Validate(); err != nil {
			return err
		}
	}
	for _, d := range c.DuplicatingParameters {
		if err := d.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// IE returns a Create FAR IE.
func (c CreateFAR) IE() (*IE, error) {
	return checked(c, c.ie)
}

func (c CreateFAR) ie() *IE {
	b := &builder{}
	b.add(NewFARID(c.FARID), NewApplyAction(c.ApplyAction))
	addOptional(b, c.ForwardingParameters, ForwardingParameters.ie)
	addRepeated(b, c.DuplicatingParameters, DuplicatingParameters.ie)
	addOptional(b, c.BARID, NewBARID)
	return b.build(TypeCreateFAR)
}

// ParseCreateFAR decodes a Create FAR IE.
func ParseCreateFAR(i *IE) (CreateFAR, error) {
	g, err := openGroup(i, TypeCreateFAR)
	if err != nil {
		return CreateFAR{}, err
	}
	c := CreateFAR{}
	if c.FARID, err = required(g, TypeFARID, (*IE).FARID); err != nil {
		return CreateFAR{}, err
	}
	if c.ApplyAction, err = required(g, TypeApplyAction, (*IE).ApplyAction); err != nil {
		return CreateFAR{}, err
	}
	if c.ForwardingParameters, err = optional(g, TypeForwardingParameters, ParseForwardingParameters); err != nil {
		return CreateFAR{}, err
	}
	if c.DuplicatingParameters, err = repeated(g, TypeDuplicatingParameters, ParseDuplicatingParameters); err != nil {
		return CreateFAR{}, err
	}
	if c.BARID, err = optional(g, TypeBARID, (*IE).BARID); err != nil {
		return CreateFAR{}, err
	}
	return c, nil
}

// CreateFAR decodes a Create FAR IE.
func (i *IE) CreateFAR() (CreateFAR, error) {
	return ParseCreateFAR(i)
}

// CreateFARBuilder assembles a Create FAR.
type CreateFARBuilder struct {
	applyAction *uint16
	far         CreateFAR
}

// NewCreateFARBuilder starts a Create FAR for the given rule ID.
func NewCreateFARBuilder(id uint32) *CreateFARBuilder {
	return &CreateFARBuilder{far: CreateFAR{FARID: id}}
}

func (b *CreateFARBuilder) ApplyAction(flags uint16) *CreateFARBuilder {
	b.applyAction = &flags
	return b
}

func (b *CreateFARBuilder) ForwardingParameters(f ForwardingParameters) *CreateFARBuilder {
	b.far.ForwardingParameters = &f
	return b
}

func (b *CreateFARBuilder) DuplicatingParameters(d DuplicatingParameters) *CreateFARBuilder {
	b.far.DuplicatingParameters = append(b.far.DuplicatingParameters, d)
	return b
}

func (b *CreateFARBuilder) BARID(id uint8) *CreateFARBuilder {
	b.far.BARID = &id
	return b
}

// Build validates the builder and returns the Create FAR.
// Forwarding requires Forwarding Parameters, and duplicating requires at least one
// Duplicating Parameters.
func (b *CreateFARBuilder) Build() (CreateFAR, error) {
	if b.applyAction == nil {
		return CreateFAR{}, util.ErrBuilderMissingField{Builder: "CreateFAR", Field: "ApplyAction"}
	}
	c := b.far
	c.ApplyAction = *b.applyAction
	if c.ApplyAction&ApplyActionFORW != 0 && c.ForwardingParameters == nil {
		return CreateFAR{}, util.ErrBuilderMissingField{Builder: "CreateFAR", Field: "ForwardingParameters"}
	}
	if c.ApplyAction&ApplyActionDUPL != 0 && len(c.DuplicatingParameters) == 0 {
		return CreateFAR{}, util.ErrBuilderMissingField{Builder: "CreateFAR", Field: "DuplicatingParameters"}
	}
	if c.ApplyAction&ApplyActionDROP != 0 && c.ApplyAction&(ApplyActionFORW|ApplyActionBUFF) != 0 {
		return CreateFAR{}, util.ErrBuilderInvalidValue{Builder: "CreateFAR", Field: "ApplyAction", Reason: "DROP combined with FORW or BUFF"}
	}
	if err := ValidateField("CreateFAR", "ForwardingParameters", c); err != nil {
		return CreateFAR{}, err
	}
	return c, nil
}

// UpdateFAR changes an installed forwarding action rule.
type UpdateFAR struct {
	FARID                      uint32
	ApplyAction                *uint16
	UpdateForwardingParameters *UpdateForwardingParameters
	BARID                      *uint8
}

func (u UpdateFAR) Validate() error {
	if u.UpdateForwardingParameters != nil {
		return u.UpdateForwardingParameters.Validate()
	}
	return nil
}

// IE returns an Update FAR IE.
func (u UpdateFAR) IE() (*IE, error) {
	return checked(u, u.ie)
}

func (u UpdateFAR) ie() *IE {
	b := &builder{}
	b.add(NewFARID(u.FARID))
	addOptional(b, u.ApplyAction, NewApplyAction)
	addOptional(b, u.UpdateForwardingParameters, UpdateForwardingParameters.ie)
	addOptional(b, u.BARID, NewBARID)
	return b.build(TypeUpdateFAR)
}

// ParseUpdateFAR decodes an Update FAR IE.
func ParseUpdateFAR(i *IE) (UpdateFAR, error) {
	g, err := openGroup(i, TypeUpdateFAR)
	if err != nil {
		return UpdateFAR{}, err
	}
	u := UpdateFAR{}
	if u.FARID, err = required(g, TypeFARID, (*IE).FARID); err != nil {
		return UpdateFAR{}, err
	}
	if u.ApplyAction, err = optional(g, TypeApplyAction, (*IE).ApplyAction); err != nil {
		return UpdateFAR{}, err
	}
	if u.UpdateForwardingParameters, err = optional(g, TypeUpdateForwardingParameters, ParseUpdateForwardingParameters); err != nil {
		return UpdateFAR{}, err
	}
	if u.BARID, err = optional(g, TypeBARID, (*IE).BARID); err != nil {
		return UpdateFAR{}, err
	}
	return u, nil
}

// UpdateFARBuilder assembles an Update FAR.
type UpdateFARBuilder struct {
	far UpdateFAR
}

// NewUpdateFARBuilder starts an Update FAR for the given rule ID.
func NewUpdateFARBuilder(id uint32) *UpdateFARBuilder {
	return &UpdateFARBuilder{far: UpdateFAR{FARID: id}}
}

func (b *UpdateFARBuilder) ApplyAction(flags uint16) *UpdateFARBuilder {
	b.far.ApplyAction = &flags
	return b
}

func (b *UpdateFARBuilder) UpdateForwardingParameters(u UpdateForwardingParameters) *UpdateFARBuilder {
	b.far.UpdateForwardingParameters = &u
	return b
}

func (b *UpdateFARBuilder) BARID(id uint8) *UpdateFARBuilder {
	b.far.BARID = &id
	return b
}

// Build validates the builder and returns the Update FAR.
func (b *UpdateFARBuilder) Build() (UpdateFAR, error) {
	if err := ValidateField("UpdateFAR", "UpdateForwardingParameters", b.far); err != nil {
		return UpdateFAR{}, err
	}
	return b.far, nil
}
