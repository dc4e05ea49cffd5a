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

// PDI is the packet detection information of a PDR.
type PDI struct {
	SourceInterface     Interface
	LocalFTEID          *FTEID
	NetworkInstance     *string
	UEIPAddress         *UEIPAddress
	SDFFilters          []SDFFilter
	ApplicationID       *string
	QFIs                []uint8
	FramedRoutes        []string
	FramedRouting       *uint32
	FramedIPv6Routes    []string
	SourceInterfaceType *uint8
}

func (p PDI) Validate() error {
	if !fitsIn(p.SourceInterface, 4) {
		return outOfRange(TypeSourceInterface, "interface", p.SourceInterface)
	}
	if p.LocalFTEID != nil {
		if err := p.LocalFTEID.Validate(); err != nil {
			return err
		}
	}
	if p.UEIPAddress != nil {
		if err := p.UEIPAddress.Validate(); err != nil {
			return err
		}
	}
	for _, s := range p.SDFFilters {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	for _, q := range p.QFIs {
		if !fitsIn(q, 6) {
			return outOfRange(TypeQFI, "QFI", q)
		}
	}
	if p.SourceInterfaceType != nil && !fitsIn(*p.SourceInterfaceType, 6) {
		return outOfRange(Type3GPPInterfaceType, "interface type", *p.SourceInterfaceType)
	}
	return nil
}

// IE returns a PDI IE, or the error of Validate.
func (p PDI) IE() (*IE, error) {
	return checked(p, p.ie)
}

func (p PDI) ie() *IE {
	b := &builder{}
	b.add(mustIE(NewSourceInterface(p.SourceInterface)))
	addOptional(b, p.LocalFTEID, FTEID.IE)
	addOptional(b, p.NetworkInstance, NewNetworkInstance)
	addOptional(b, p.UEIPAddress, UEIPAddress.IE)
	addRepeated(b, p.SDFFilters, SDFFilter.IE)
	addOptional(b, p.ApplicationID, NewApplicationID)
	addRepeated(b, p.QFIs, func(q uint8) *IE { return mustIE(NewQFI(q)) })
	addRepeated(b, p.FramedRoutes, NewFramedRoute)
	addOptional(b, p.FramedRouting, NewFramedRouting)
	addRepeated(b, p.FramedIPv6Routes, NewFramedIPv6Route)
	addOptional(b, p.SourceInterfaceType, func(v uint8) *IE { return mustIE(New3GPPInterfaceType(v)) })
	return b.build(TypePDI)
}

// ParsePDI decodes a PDI IE.
func ParsePDI(i *IE) (PDI, error) {
	g, err := openGroup(i, TypePDI)
	if err != nil {
		return PDI{}, err
	}
	p := PDI{}
	if p.SourceInterface, err = required(g, TypeSourceInterface, (*IE).SourceInterface); err != nil {
		return PDI{}, err
	}
	if p.LocalFTEID, err = optional(g, TypeFTEID, (*IE).FTEID); err != nil {
		return PDI{}, err
	}
	if p.NetworkInstance, err = optional(g, TypeNetworkInstance, (*IE).NetworkInstance); err != nil {
		return PDI{}, err
	}
	if p.UEIPAddress, err = optional(g, TypeUEIPAddress, (*IE).UEIPAddress); err != nil {
		return PDI{}, err
	}
	if p.SDFFilters, err = repeated(g, TypeSDFFilter, (*IE).SDFFilter); err != nil {
		return PDI{}, err
	}
	if p.ApplicationID, err = optional(g, TypeApplicationID, (*IE).ApplicationID); err != nil {
		return PDI{}, err
	}
	if p.QFIs, err = repeated(g, TypeQFI, (*IE).QFI); err != nil {
		return PDI{}, err
	}
	if p.FramedRoutes, err = repeated(g, TypeFramedRoute, (*IE).FramedRoute); err != nil {
		return PDI{}, err
	}
	if p.FramedRouting, err = optional(g, TypeFramedRouting, (*IE).FramedRouting); err != nil {
		return PDI{}, err
	}
	if p.FramedIPv6Routes, err = repeated(g, TypeFramedIPv6Route, (*IE).FramedIPv6Route); err != nil {
		return PDI{}, err
	}
	if p.SourceInterfaceType, err = optional(g, Type3GPPInterfaceType, (*IE).InterfaceType3GPP); err != nil {
		return PDI{}, err
	}
	return p, nil
}

// PDIBuilder assembles a PDI.
type PDIBuilder struct {
	sourceInterface *Interface
	pdi             PDI
}

// NewPDIBuilder returns an empty PDI builder.
func NewPDIBuilder() *PDIBuilder {
	return &PDIBuilder{}
}

func (b *PDIBuilder) SourceInterface(v Interface) *PDIBuilder {
	b.sourceInterface = &v
	return b
}

func (b *PDIBuilder) LocalFTEID(f FTEID) *PDIBuilder {
	b.pdi.LocalFTEID = &f
	return b
}

func (b *PDIBuilder) NetworkInstance(name string) *PDIBuilder {
	b.pdi.NetworkInstance = &name
	return b
}

func (b *PDIBuilder) UEIPAddress(u UEIPAddress) *PDIBuilder {
	b.pdi.UEIPAddress = &u
	return b
}

func (b *PDIBuilder) SDFFilter(s SDFFilter) *PDIBuilder {
	b.pdi.SDFFilters = append(b.pdi.SDFFilters, s)
	return b
}

func (b *PDIBuilder) ApplicationID(id string) *PDIBuilder {
	b.pdi.ApplicationID = &id
	return b
}

func (b *PDIBuilder) QFI(q uint8) *PDIBuilder {
	b.pdi.QFIs = append(b.pdi.QFIs, q)
	return b
}

func (b *PDIBuilder) FramedRoute(route string) *PDIBuilder {
	b.pdi.FramedRoutes = append(b.pdi.FramedRoutes, route)
	return b
}

func (b *PDIBuilder) SourceInterfaceType(t uint8) *PDIBuilder {
	b.pdi.SourceInterfaceType = &t
	return b
}

// Build validates the builder and returns the PDI.
func (b *PDIBuilder) Build() (PDI, error) {
	if b.sourceInterface == nil {
		return PDI{}, util.ErrBuilderMissingField{Builder: "PDI", Field: "SourceInterface"}
	}
	p := b.pdi
	p.SourceInterface = *b.sourceInterface
	if err := ValidateField("PDI", "PDI", p); err != nil {
		return PDI{}, err
	}
	return p, nil
}

// CreatePDR installs a packet detection rule.
type CreatePDR struct {
	PDRID                   uint16
	Precedence              uint32
	PDI                     PDI
	OuterHeaderRemoval      *OuterHeaderRemoval
	FARID                   *uint32
	URRIDs                  []uint32
	QERIDs                  []uint32
	ActivatePredefinedRules []string
	MARID                   *uint16
}

func (c CreatePDR) Validate() error {
	return c.PDI.Validate()
}

// IE returns a Create PDR IE.
func (c CreatePDR) IE() (*IE, error) {
	return checked(c, c.ie)
}

func (c CreatePDR) ie() *IE {
	b := &builder{}
	b.add(NewPDRID(c.PDRID), NewPrecedence(c.Precedence), c.PDI.ie())
	addOptional(b, c.OuterHeaderRemoval, OuterHeaderRemoval.IE)
	addOptional(b, c.FARID, NewFARID)
	addRepeated(b, c.URRIDs, NewURRID)
	addRepeated(b, c.QERIDs, NewQERID)
	addRepeated(b, c.ActivatePredefinedRules, NewActivatePredefinedRules)
	addOptional(b, c.MARID, NewMARID)
	return b.build(TypeCreatePDR)
}

// ParseCreatePDR decodes a Create PDR IE.
func ParseCreatePDR(i *IE) (CreatePDR, error) {
	g, err := openGroup(i, TypeCreatePDR)
	if err != nil {
		return CreatePDR{}, err
	}
	c := CreatePDR{}
	if c.PDRID, err = required(g, TypePDRID, (*IE).PDRID); err != nil {
		return CreatePDR{}, err
	}
	if c.Precedence, err = required(g, TypePrecedence, (*IE).Precedence); err != nil {
		return CreatePDR{}, err
	}
	if c.PDI, err = required(g, TypePDI, ParsePDI); err != nil {
		return CreatePDR{}, err
	}
	if c.OuterHeaderRemoval, err = optional(g, TypeOuterHeaderRemoval, (*IE).OuterHeaderRemoval); err != nil {
		return CreatePDR{}, err
	}
	if c.FARID, err = optional(g, TypeFARID, (*IE).FARID); err != nil {
		return CreatePDR{}, err
	}
	if c.URRIDs, err = repeated(g, TypeURRID, (*IE).URRID); err != nil {
		return CreatePDR{}, err
	}
	if c.QERIDs, err = repeated(g, TypeQERID, (*IE).QERID); err != nil {
		return CreatePDR{}, err
	}
	if c.ActivatePredefinedRules, err = repeated(g, TypeActivatePredefinedRules, (*IE).PredefinedRules); err != nil {
		return CreatePDR{}, err
	}
	if c.MARID, err = optional(g, TypeMARID, (*IE).MARID); err != nil {
		return CreatePDR{}, err
	}
	return c, nil
}

// CreatePDR decodes a Create PDR IE.
func (i *IE) CreatePDR() (CreatePDR, error) {
	return ParseCreatePDR(i)
}

// CreatePDRBuilder assembles a Create PDR.
type CreatePDRBuilder struct {
	precedence *uint32
	pdi        *PDI
	pdr        CreatePDR
}

// NewCreatePDRBuilder starts a Create PDR for the given rule ID.
func NewCreatePDRBuilder(id uint16) *CreatePDRBuilder {
	return &CreatePDRBuilder{pdr: CreatePDR{PDRID: id}}
}

func (b *CreatePDRBuilder) Precedence(p uint32) *CreatePDRBuilder {
	b.precedence = &p
	return b
}

func (b *CreatePDRBuilder) PDI(p PDI) *CreatePDRBuilder {
	b.pdi = &p
	return b
}

func (b *CreatePDRBuilder) OuterHeaderRemoval(o OuterHeaderRemoval) *CreatePDRBuilder {
	b.pdr.OuterHeaderRemoval = &o
	return b
}

func (b *CreatePDRBuilder) FARID(id uint32) *CreatePDRBuilder {
	b.pdr.FARID = &id
	return b
}

func (b *CreatePDRBuilder) URRID(id uint32) *CreatePDRBuilder {
	b.pdr.URRIDs = append(b.pdr.URRIDs, id)
	return b
}

func (b *CreatePDRBuilder) QERID(id uint32) *CreatePDRBuilder {
	b.pdr.QERIDs = append(b.pdr.QERIDs, id)
	return b
}

func (b *CreatePDRBuilder) ActivatePredefinedRules(name string) *CreatePDRBuilder {
	b.pdr.ActivatePredefinedRules = append(b.pdr.ActivatePredefinedRules, name)
	return b
}

func (b *CreatePDRBuilder) MARID(id uint16) *CreatePDRBuilder {
	b.pdr.MARID = &id
	return b
}

// Build validates the builder and returns the Create PDR.
func (b *CreatePDRBuilder) Build() (CreatePDR, error) {
	if b.precedence == nil {
		return CreatePDR{}, util.ErrBuilderMissingField{Builder: "CreatePDR", Field: "Precedence"}
	}
	if b.pdi == nil {
		return CreatePDR{}, util.ErrBuilderMissingField{Builder: "CreatePDR", Field: "PDI"}
	}
	c := b.pdr
	c.Precedence = *b.precedence
	c.PDI = *b.pdi
	if err := ValidateField("CreatePDR", "PDI", c.PDI); err != nil {
		return CreatePDR{}, err
	}
	return c, nil
}

// UpdatePDR changes an installed packet detection rule.
type UpdatePDR struct {
	PDRID                     uint16
	OuterHeaderRemoval        *OuterHeaderRemoval
	Precedence                *uint32
	PDI                       *PDI
	FARID                     *uint32
	URRIDs                    []uint32
	QERIDs                    []uint32
	ActivatePredefinedRules   []string
	DeactivatePredefinedRules []string
}

func (u UpdatePDR) Validate() error {
	if u.PDI != nil {
		return u.PDI.Validate()
	}
	return nil
}

// IE returns an Update PDR IE.
func (u UpdatePDR) IE() (*IE, error) {
	return checked(u, u.ie)
}

func (u UpdatePDR) ie() *IE {
	b := &builder{}
	b.add(NewPDRID(u.PDRID))
	addOptional(b, u.OuterHeaderRemoval, OuterHeaderRemoval.IE)
	addOptional(b, u.Precedence, NewPrecedence)
	addOptional(b, u.PDI, PDI.ie)
	addOptional(b, u.FARID, NewFARID)
	addRepeated(b, u.URRIDs, NewURRID)
	addRepeated(b, u.QERIDs, NewQERID)
	addRepeated(b, u.ActivatePredefinedRules, NewActivatePredefinedRules)
	addRepeated(b, u.DeactivatePredefinedRules, NewDeactivatePredefinedRules)
	return b.build(TypeUpdatePDR)
}

// ParseUpdatePDR decodes an Update PDR IE.
func ParseUpdatePDR(i *IE) (UpdatePDR, error) {
	g, err := openGroup(i, TypeUpdatePDR)
	if err != nil {
		return UpdatePDR{}, err
	}
	u := UpdatePDR{}
	if u.PDRID, err = required(g, TypePDRID, (*IE).PDRID); err != nil {
		return UpdatePDR{}, err
	}
	if u.OuterHeaderRemoval, err = optional(g, TypeOuterHeaderRemoval, (*IE).OuterHeaderRemoval); err != nil {
		return UpdatePDR{}, err
	}
	if u.Precedence, err = optional(g, TypePrecedence, (*IE).Precedence); err != nil {
		return UpdatePDR{}, err
	}
	if u.PDI, err = optional(g, TypePDI, ParsePDI); err != nil {
		return UpdatePDR{}, err
	}
	if u.FARID, err = optional(g, TypeFARID, (*IE).FARID); err != nil {
		return UpdatePDR{}, err
	}
	if u.URRIDs, err = repeated(g, TypeURRID, (*IE).URRID); err != nil {
		return UpdatePDR{}, err
	}
	if u.QERIDs, err = repeated(g, TypeQERID, (*IE).QERID); err != nil {
		return UpdatePDR{}, err
	}
	if u.ActivatePredefinedRules, err = repeated(g, TypeActivatePredefinedRules, (*IE).PredefinedRules); err != nil {
		return UpdatePDR{}, err
	}
	if u.DeactivatePredefinedRules, err = repeated(g, TypeDeactivatePredefinedRules, (*IE).PredefinedRules); err != nil {
		return UpdatePDR{}, err
	}
	return u, nil
}

// UpdatePDRBuilder assembles an Update PDR.
type UpdatePDRBuilder struct {
	pdr UpdatePDR
}

// NewUpdatePDRBuilder starts an Update PDR for the given rule ID.
func NewUpdatePDRBuilder(id uint16) *UpdatePDRBuilder {
	return &UpdatePDRBuilder{pdr: UpdatePDR{PDRID: id}}
}

func (b *UpdatePDRBuilder) OuterHeaderRemoval(o OuterHeaderRemoval) *UpdatePDRBuilder {
	b.pdr.OuterHeaderRemoval = &o
	return b
}

func (b *UpdatePDRBuilder) Precedence(p uint32) *UpdatePDRBuilder {
	b.pdr.Precedence = &p
	return b
}

func (b *UpdatePDRBuilder) PDI(p PDI) *UpdatePDRBuilder {
	b.pdr.PDI = &p
	return b
}

func (b *UpdatePDRBuilder) FARID(id uint32) *UpdatePDRBuilder {
	b.pdr.FARID = &id
	return b
}

func (b *UpdatePDRBuilder) URRID(id uint32) *UpdatePDRBuilder {
	b.pdr.URRIDs = append(b.pdr.URRIDs, id)
	return b
}

func (b *UpdatePDRBuilder) QERID(id uint32) *UpdatePDRBuilder {
	b.pdr.QERIDs = append(b.pdr.QERIDs, id)
	return b
}

func (b *UpdatePDRBuilder) ActivatePredefinedRules(name string) *UpdatePDRBuilder {
	b.pdr.ActivatePredefinedRules = append(b.pdr.ActivatePredefinedRules, name)
	return b
}

func (b *UpdatePDRBuilder) DeactivatePredefinedRules(name string) *UpdatePDRBuilder {
	b.pdr.DeactivatePredefinedRules = append(b.pdr.DeactivatePredefinedRules, name)
	return b
}

// Build validates the builder and returns the Update PDR.
func (b *UpdatePDRBuilder) Build() (UpdatePDR, error) {
	if b.pdr.PDI != nil {
		if err := ValidateField("UpdatePDR", "PDI", b.pdr.PDI); err != nil {
			return UpdatePDR{}, err
		}
	}
	return b.pdr, nil
}

// CreatedPDR reports the tunnel endpoint and UE address the UP function allocated for a PDR.
type CreatedPDR struct {
	PDRID         uint16
	LocalFTEIDs   []FTEID
	UEIPAddresses []UEIPAddress
}

func (c CreatedPDR) Validate() error {
	for _, f := range c.LocalFTEIDs {
		if err := f.Validate(); err != nil {
			return err
		}
	}
	for _, u := range c.UEIPAddresses {
		if err := u.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// IE returns a Created PDR IE.
func (c CreatedPDR) IE() *IE {
	b := &builder{}
	b.add(NewPDRID(c.PDRID))
	addRepeated(b, c.LocalFTEIDs, FTEID.IE)
	addRepeated(b, c.UEIPAddresses, UEIPAddress.IE)
	return b.build(TypeCreatedPDR)
}

// ParseCreatedPDR decodes a Created PDR IE.
func ParseCreatedPDR(i *IE) (CreatedPDR, error) {
	return parseAllocatedPDR(i, TypeCreatedPDR)
}

func parseAllocatedPDR(i *IE, t Type) (CreatedPDR, error) {
	g, err := openGroup(i, t)
	if err != nil {
		return CreatedPDR{}, err
	}
	c := CreatedPDR{}
	if c.PDRID, err = required(g, TypePDRID, (*IE).PDRID); err != nil {
		return CreatedPDR{}, err
	}
	if c.LocalFTEIDs, err = repeated(g, TypeFTEID, (*IE).FTEID); err != nil {
		return CreatedPDR{}, err
	}
	if c.UEIPAddresses, err = repeated(g, TypeUEIPAddress, (*IE).UEIPAddress); err != nil {
		return CreatedPDR{}, err
	}
	return c, nil
}

// UpdatedPDR returns the IE form of c as an Updated PDR, which shares Created PDR's layout.
func (c CreatedPDR) UpdatedPDR() *IE {
	i := c.IE()
	i.Type = TypeUpdatedPDR
	return i
}

// ParseUpdatedPDR decodes an Updated PDR IE.
func ParseUpdatedPDR(i *IE) (CreatedPDR, error) {
	return parseAllocatedPDR(i, TypeUpdatedPDR)
}

// CreatedPDRBuilder assembles a Created PDR.
type CreatedPDRBuilder struct {
	pdr CreatedPDR
}

// NewCreatedPDRBuilder starts a Created PDR for the given rule ID.
func NewCreatedPDRBuilder(id uint16) *CreatedPDRBuilder {
	return &CreatedPDRBuilder{pdr: CreatedPDR{PDRID: id}}
}

func (b *CreatedPDRBuilder) LocalFTEID(f FTEID) *CreatedPDRBuilder {
	b.pdr.LocalFTEIDs = append(b.pdr.LocalFTEIDs, f)
	return b
}

func (b *CreatedPDRBuilder) UEIPAddress(u UEIPAddress) *CreatedPDRBuilder {
	b.pdr.UEIPAddresses = append(b.pdr.UEIPAddresses, u)
	return b
}

// Build validates the builder and returns the Created PDR.
func (b *CreatedPDRBuilder) Build() (CreatedPDR, error) {
	if err := ValidateField("CreatedPDR", "LocalFTEID", b.pdr); err != nil {
		return CreatedPDR{}, err
	}
	return b.pdr, nil
}
