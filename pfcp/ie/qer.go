/* YaPFCP - Yet another PFCP codec
 *
 * Copyright (C) 2020-2024 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ie

import (
	"time"

	"github.com/yapfcp/yapfcp/pfcp/util"
)

// CreateQER installs a QoS enforcement rule.
type CreateQER struct {
	QERID                 uint32
	QERCorrelationID      *uint32
	GateStatus            GateStatus
	MBR                   *BitRate
	GBR                   *BitRate
	PacketRate            *PacketRate
	DLFlowLevelMarking    *DLFlowLevelMarking
	QFI                   *uint8
	RQI                   *bool
	PagingPolicyIndicator *uint8
	AveragingWindow       *time.Duration
}

// qerFields are the optional members Create QER and Update QER share.
type qerFields struct {
	correlationID *uint32
	mbr           *BitRate
	gbr           *BitRate
	packetRate    *PacketRate
	marking       *DLFlowLevelMarking
	qfi           *uint8
	rqi           *bool
	ppi           *uint8
	window        *time.Duration
}

func (q qerFields) validate() error {
	for _, r := range []*BitRate{q.mbr, q.gbr} {
		if r != nil && (r.UL > bitRateMax || r.DL > bitRateMax) {
			return outOfRange(TypeMBR, "bit rate", max(r.UL, r.DL))
		}
	}
	if q.packetRate != nil {
		if err := q.packetRate.Validate(); err != nil {
			return err
		}
	}
	if q.qfi != nil && !fitsIn(*q.qfi, 6) {
		return outOfRange(TypeQFI, "QFI", *q.qfi)
	}
	if q.ppi != nil && !fitsIn(*q.ppi, 3) {
		return outOfRange(TypePagingPolicyIndicator, "PPI", *q.ppi)
	}
	if q.window != nil && (*q.window < 0 || !fitsIn(uint64(*q.window/time.Millisecond), 32)) {
		return outOfRange(TypeAveragingWindow, "window", *q.window)
	}
	return nil
}

func (q qerFields) add(b *builder) {
	addOptional(b, q.correlationID, NewQERCorrelationID)
	addOptional(b, q.mbr, func(r BitRate) *IE { return mustIE(NewBitRate(TypeMBR, r)) })
	addOptional(b, q.gbr, func(r BitRate) *IE { return mustIE(NewBitRate(TypeGBR, r)) })
	addOptional(b, q.packetRate, PacketRate.IE)
	addOptional(b, q.marking, DLFlowLevelMarking.IE)
	addOptional(b, q.qfi, func(v uint8) *IE { return mustIE(NewQFI(v)) })
	addOptional(b, q.rqi, NewRQI)
	addOptional(b, q.ppi, func(v uint8) *IE { return mustIE(NewPagingPolicyIndicator(v)) })
	addOptional(b, q.window, func(d time.Duration) *IE { return mustIE(NewAveragingWindow(d)) })
}

func (q *qerFields) parse(g *group) (err error) {
	if q.correlationID, err = optional(g, TypeQERCorrelationID, (*IE).QERCorrelationID); err != nil {
		return err
	}
	if q.mbr, err = optional(g, TypeMBR, (*IE).BitRate); err != nil {
		return err
	}
	if q.gbr, err = optional(g, TypeGBR, (*IE).BitRate); err != nil {
		return err
	}
	if q.packetRate, err = optional(g, TypePacketRate, (*IE).PacketRate); err != nil {
		return err
	}
	if q.marking, err = optional(g, TypeDLFlowLevelMarking, (*IE).DLFlowLevelMarking); err != nil {
		return err
	}
	if q.qfi, err = optional(g, TypeQFI, (*IE).QFI); err != nil {
		return err
	}
	if q.rqi, err = optional(g, TypeRQI, (*IE).RQI); err != nil {
		return err
	}
	if q.ppi, err = optional(g, TypePagingPolicyIndicator, (*IE).PagingPolicyIndicator); err != nil {
		return err
	}
	q.window, err = optional(g, TypeAveragingWindow, (*IE).AveragingWindow)
	return err
}

func (c CreateQER) fields() qerFields {
	return qerFields{c.QERCorrelationID, c.MBR, c.GBR, c.PacketRate, c.DLFlowLevelMarking, c.QFI, c.RQI, c.PagingPolicyIndicator, c.AveragingWindow}
}

func (c CreateQER) Validate() error {
	if err := c.GateStatus.Validate(); err != nil {
		return err
	}
	return c.fields().validate()
}

// IE returns a Create QER IE.
func (c CreateQER) IE() (*IE, error) {
	return checked(c, c.ie)
}

func (c CreateQER) ie() *IE {
	b := &builder{}
	b.add(NewQERID(c.QERID))
	f := c.fields()
	addOptional(b, f.correlationID, NewQERCorrelationID)
	b.add(c.GateStatus.IE())
	f.correlationID = nil
	f.add(b)
	return b.build(TypeCreateQER)
}

// ParseCreateQER decodes a Create QER IE.
func ParseCreateQER(i *IE) (CreateQER, error) {
	g, err := openGroup(i, TypeCreateQER)
	if err != nil {
		return CreateQER{}, err
	}
	c := CreateQER{}
	if c.QERID, err = required(g, TypeQERID, (*IE).QERID); err != nil {
		return CreateQER{}, err
	}
	if c.GateStatus, err = required(g, TypeGateStatus, (*IE).GateStatus); err != nil {
		return CreateQER{}, err
	}
	f := qerFields{}
	if err := f.parse(g); err != nil {
		return CreateQER{}, err
	}
	c.QERCorrelationID, c.MBR, c.GBR, c.PacketRate = f.correlationID, f.mbr, f.gbr, f.packetRate
	c.DLFlowLevelMarking, c.QFI, c.RQI = f.marking, f.qfi, f.rqi
	c.PagingPolicyIndicator, c.AveragingWindow = f.ppi, f.window
	return c, nil
}

// CreateQERBuilder assembles a Create QER.
type CreateQERBuilder struct {
	gate *GateStatus
	qer  CreateQER
}

// NewCreateQERBuilder starts a Create QER for the given rule ID.
func NewCreateQERBuilder(id uint32) *CreateQERBuilder {
	return &CreateQERBuilder{qer: CreateQER{QERID: id}}
}

func (b *CreateQERBuilder) GateStatus(ul uint8, dl uint8) *CreateQERBuilder {
	b.gate = &GateStatus{UL: ul, DL: dl}
	return b
}

func (b *CreateQERBuilder) QERCorrelationID(id uint32) *CreateQERBuilder {
	b.qer.QERCorrelationID = &id
	return b
}

func (b *CreateQERBuilder) MBR(ul uint64, dl uint64) *CreateQERBuilder {
	b.qer.MBR = &BitRate{UL: ul, DL: dl}
	return b
}

func (b *CreateQERBuilder) GBR(ul uint64, dl uint64) *CreateQERBuilder {
	b.qer.GBR = &BitRate{UL: ul, DL: dl}
	return b
}

func (b *CreateQERBuilder) PacketRate(p PacketRate) *CreateQERBuilder {
	b.qer.PacketRate = &p
	return b
}

func (b *CreateQERBuilder) DLFlowLevelMarking(d DLFlowLevelMarking) *CreateQERBuilder {
	b.qer.DLFlowLevelMarking = &d
	return b
}

func (b *CreateQERBuilder) QFI(q uint8) *CreateQERBuilder {
	b.qer.QFI = &q
	return b
}

func (b *CreateQERBuilder) RQI(rqi bool) *CreateQERBuilder {
	b.qer.RQI = &rqi
	return b
}

func (b *CreateQERBuilder) PagingPolicyIndicator(ppi uint8) *CreateQERBuilder {
	b.qer.PagingPolicyIndicator = &ppi
	return b
}

func (b *CreateQERBuilder) AveragingWindow(d time.Duration) *CreateQERBuilder {
	b.qer.AveragingWindow = &d
	return b
}

// Build validates the builder and returns the Create QER.
func (b *CreateQERBuilder) Build() (CreateQER, error) {
	if b.gate == nil {
		return CreateQER{}, util.ErrBuilderMissingField{Builder: "CreateQER", Field: "GateStatus"}
	}
	c := b.qer
	c.GateStatus = *b.gate
	if err := ValidateField("CreateQER", "QER", c); err != nil {
		return CreateQER{}, err
	}
	return c, nil
}

// UpdateQER changes an installed QoS enforcement rule.
type UpdateQER struct {
	QERID                 uint32
	QERCorrelationID      *uint32
	GateStatus            *GateStatus
	MBR                   *BitRate
	GBR                   *BitRate
	PacketRate            *PacketRate
	DLFlowLevelMarking    *DLFlowLevelMarking
	QFI                   *uint8
	RQI                   *bool
	PagingPolicyIndicator *uint8
	AveragingWindow       *time.Duration
}

func (u UpdateQER) fields() qerFields {
	return qerFields{u.QERCorrelationID, u.MBR, u.GBR, u.PacketRate, u.DLFlowLevelMarking, u.QFI, u.RQI, u.PagingPolicyIndicator, u.AveragingWindow}
}

func (u UpdateQER) Validate() error {
	if u.GateStatus != nil {
		if err := u.GateStatus.Validate(); err != nil {
			return err
		}
	}
	return u.fields().validate()
}

// IE returns an Update QER IE.
func (u UpdateQER) IE() (*IE, error) {
	return checked(u, u.ie)
}

func (u UpdateQER) ie() *IE {
	b := &builder{}
	b.add(NewQERID(u.QERID))
	f := u.fields()
	addOptional(b, f.correlationID, NewQERCorrelationID)
	addOptional(b, u.GateStatus, GateStatus.IE)
	f.correlationID = nil
	f.add(b)
	return b.build(TypeUpdateQER)
}

// ParseUpdateQER decodes an Update QER IE.
func ParseUpdateQER(i *IE) (UpdateQER, error) {
	g, err := openGroup(i, TypeUpdateQER)
	if err != nil {
		return UpdateQER{}, err
	}
	u := UpdateQER{}
	if u.QERID, err = required(g, TypeQERID, (*IE).QERID); err != nil {
		return UpdateQER{}, err
	}
	if u.GateStatus, err = optional(g, TypeGateStatus, (*IE).GateStatus); err != nil {
		return UpdateQER{}, err
	}
	f := qerFields{}
	if err := f.parse(g); err != nil {
		return UpdateQER{}, err
	}
	u.QERCorrelationID, u.MBR, u.GBR, u.PacketRate = f.correlationID, f.mbr, f.gbr, f.packetRate
	u.DLFlowLevelMarking, u.QFI, u.RQI = f.marking, f.qfi, f.rqi
	u.PagingPolicyIndicator, u.AveragingWindow = f.ppi, f.window
	return u, nil
}

// UpdateQERBuilder assembles an Update QER.
type UpdateQERBuilder struct {
	qer UpdateQER
}

// NewUpdateQERBuilder starts an Update QER for the given rule ID.
func NewUpdateQERBuilder(id uint32) *UpdateQERBuilder {
	return &UpdateQERBuilder{qer: UpdateQER{QERID: id}}
}

func (b *UpdateQERBuilder) GateStatus(ul uint8, dl uint8) *UpdateQERBuilder {
	b.qer.GateStatus = &GateStatus{UL: ul, DL: dl}
	return b
}

func (b *UpdateQERBuilder) MBR(ul uint64, dl uint64) *UpdateQERBuilder {
	b.qer.MBR = &BitRate{UL: ul, DL: dl}
	return b
}

func (b *UpdateQERBuilder) GBR(ul uint64, dl uint64) *UpdateQERBuilder {
	b.qer.GBR = &BitRate{UL: ul, DL: dl}
	return b
}

func (b *UpdateQERBuilder) QFI(q uint8) *UpdateQERBuilder {
	b.qer.QFI = &q
	return b
}

// Build validates the builder and returns the Update QER.
func (b *UpdateQERBuilder) Build() (UpdateQER, error) {
	if err := ValidateField("UpdateQER", "QER", b.qer); err != nil {
		return UpdateQER{}, err
	}
	return b.qer, nil
}
