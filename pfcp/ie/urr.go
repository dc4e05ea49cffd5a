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

// URRParameters are the thresholds and quotas shared by Create URR and Update URR.
type URRParameters struct {
	MeasurementPeriod         *time.Duration
	VolumeThreshold           *Volume
	VolumeQuota               *Volume
	EventThreshold            *uint32
	EventQuota                *uint32
	TimeThreshold             *time.Duration
	TimeQuota                 *time.Duration
	QuotaHoldingTime          *time.Duration
	DroppedDLTrafficThreshold *DroppedDLTrafficThreshold
	QuotaValidityTime         *time.Duration
	MonitoringTime            *time.Time
	SubsequentVolumeThreshold *Volume
	SubsequentTimeThreshold   *time.Duration
	SubsequentVolumeQuota     *Volume
	SubsequentTimeQuota       *time.Duration
	InactivityDetectionTime   *time.Duration
	LinkedURRIDs              []uint32
	MeasurementInformation    *uint8
	TimeQuotaMechanism        *TimeQuotaMechanism
}

func (p *URRParameters) volumes() []struct {
	t Type
	v **Volume
} {
	return []struct {
		t Type
		v **Volume
	}{
		{TypeVolumeThreshold, &p.VolumeThreshold},
		{TypeVolumeQuota, &p.VolumeQuota},
		{TypeSubsequentVolumeThreshold, &p.SubsequentVolumeThreshold},
		{TypeSubsequentVolumeQuota, &p.SubsequentVolumeQuota},
	}
}

func (p *URRParameters) durations() []struct {
	t Type
	d **time.Duration
} {
	return []struct {
		t Type
		d **time.Duration
	}{
		{TypeMeasurementPeriod, &p.MeasurementPeriod},
		{TypeTimeThreshold, &p.TimeThreshold},
		{TypeTimeQuota, &p.TimeQuota},
		{TypeQuotaHoldingTime, &p.QuotaHoldingTime},
		{TypeQuotaValidityTime, &p.QuotaValidityTime},
		{TypeSubsequentTimeThreshold, &p.SubsequentTimeThreshold},
		{TypeSubsequentTimeQuota, &p.SubsequentTimeQuota},
		{TypeInactivityDetectionTime, &p.InactivityDetectionTime},
	}
}

func (p URRParameters) Validate() error {
	for _, v := range p.volumes() {
		if *v.v != nil {
			if err := (*v.v).validate(v.t); err != nil {
				return err
			}
		}
	}
	for _, d := range p.durations() {
		if *d.d != nil {
			if _, err := NewSeconds(d.t, **d.d); err != nil {
				return err
			}
		}
	}
	if p.TimeQuotaMechanism != nil {
		return p.TimeQuotaMechanism.Validate()
	}
	return nil
}

func (p URRParameters) add(b *builder) {
	for _, v := range p.volumes() {
		if *v.v != nil {
			b.add(mustIE(NewVolume(v.t, **v.v)))
		}
	}
	for _, d := range p.durations() {
		if *d.d != nil {
			b.add(mustIE(NewSeconds(d.t, **d.d)))
		}
	}
	addOptional(b, p.EventThreshold, NewEventThreshold)
	addOptional(b, p.EventQuota, NewEventQuota)
	addOptional(b, p.DroppedDLTrafficThreshold, DroppedDLTrafficThreshold.IE)
	addOptional(b, p.MonitoringTime, func(t time.Time) *IE { return mustIE(NewTimestamp(TypeMonitoringTime, t)) })
	addRepeated(b, p.LinkedURRIDs, NewLinkedURRID)
	addOptional(b, p.MeasurementInformation, func(v uint8) *IE { return newUint8(TypeMeasurementInformation, v) })
	addOptional(b, p.TimeQuotaMechanism, TimeQuotaMechanism.IE)
}

func (p *URRParameters) parse(g *group) (err error) {
	for _, v := range p.volumes() {
		if *v.v, err = optional(g, v.t, (*IE).Volume); err != nil {
			return err
		}
	}
	for _, d := range p.durations() {
		if *d.d, err = optional(g, d.t, (*IE).Seconds); err != nil {
			return err
		}
	}
	if p.EventThreshold, err = optional(g, TypeEventThreshold, (*IE).EventCount); err != nil {
		return err
	}
	if p.EventQuota, err = optional(g, TypeEventQuota, (*IE).EventCount); err != nil {
		return err
	}
	if p.DroppedDLTrafficThreshold, err = optional(g, TypeDroppedDLTrafficThreshold, (*IE).DroppedDLTrafficThreshold); err != nil {
		return err
	}
	if p.MonitoringTime, err = optional(g, TypeMonitoringTime, (*IE).Timestamp); err != nil {
		return err
	}
	if p.LinkedURRIDs, err = repeated(g, TypeLinkedURRID, (*IE).LinkedURRID); err != nil {
		return err
	}
	if p.MeasurementInformation, err = optional(g, TypeMeasurementInformation, (*IE).Flags); err != nil {
		return err
	}
	p.TimeQuotaMechanism, err = optional(g, TypeTimeQuotaMechanism, (*IE).TimeQuotaMechanism)
	return err
}

// CreateURR installs a usage reporting rule.
type CreateURR struct {
	URRID             uint32
	MeasurementMethod uint8
	ReportingTriggers uint32
	URRParameters
}

// IE returns a Create URR IE.
func (c CreateURR) IE() (*IE, error) {
	return checked(c, c.ie)
}

func (c CreateURR) ie() *IE {
	b := &builder{}
	b.add(NewURRID(c.URRID), newUint8(TypeMeasurementMethod, c.MeasurementMethod), NewReportingTriggers(c.ReportingTriggers))
	c.URRParameters.add(b)
	return b.build(TypeCreateURR)
}

// ParseCreateURR decodes a Create URR IE.
func ParseCreateURR(i *IE) (CreateURR, error) {
	g, err := openGroup(i, TypeCreateURR)
	if err != nil {
		return CreateURR{}, err
	}
	c := CreateURR{}
	if c.URRID, err = required(g, TypeURRID, (*IE).URRID); err != nil {
		return CreateURR{}, err
	}
	if c.MeasurementMethod, err = required(g, TypeMeasurementMethod, (*IE).Flags); err != nil {
		return CreateURR{}, err
	}
	if c.ReportingTriggers, err = required(g, TypeReportingTriggers, (*IE).ReportingTriggers); err != nil {
		return CreateURR{}, err
	}
	if err := c.URRParameters.parse(g); err != nil {
		return CreateURR{}, err
	}
	return c, nil
}

// CreateURRBuilder assembles a Create URR.
type CreateURRBuilder struct {
	method   *uint8
	triggers *uint32
	urr      CreateURR
}

// NewCreateURRBuilder starts a Create URR for the given rule ID.
func NewCreateURRBuilder(id uint32) *CreateURRBuilder {
	return &CreateURRBuilder{urr: CreateURR{URRID: id}}
}

func (b *CreateURRBuilder) MeasurementMethod(m uint8) *CreateURRBuilder {
	b.method = &m
	return b
}

func (b *CreateURRBuilder) ReportingTriggers(t uint32) *CreateURRBuilder {
	b.triggers = &t
	return b
}

func (b *CreateURRBuilder) MeasurementPeriod(d time.Duration) *CreateURRBuilder {
	b.urr.MeasurementPeriod = &d
	return b
}

func (b *CreateURRBuilder) VolumeThreshold(v Volume) *CreateURRBuilder {
	b.urr.VolumeThreshold = &v
	return b
}

func (b *CreateURRBuilder) VolumeQuota(v Volume) *CreateURRBuilder {
	b.urr.VolumeQuota = &v
	return b
}

func (b *CreateURRBuilder) TimeThreshold(d time.Duration) *CreateURRBuilder {
	b.urr.TimeThreshold = &d
	return b
}

func (b *CreateURRBuilder) TimeQuota(d time.Duration) *CreateURRBuilder {
	b.urr.TimeQuota = &d
	return b
}

func (b *CreateURRBuilder) QuotaHoldingTime(d time.Duration) *CreateURRBuilder {
	b.urr.QuotaHoldingTime = &d
	return b
}

func (b *CreateURRBuilder) MonitoringTime(t time.Time) *CreateURRBuilder {
	b.urr.MonitoringTime = &t
	return b
}

func (b *CreateURRBuilder) InactivityDetectionTime(d time.Duration) *CreateURRBuilder {
	b.urr.InactivityDetectionTime = &d
	return b
}

func (b *CreateURRBuilder) LinkedURRID(id uint32) *CreateURRBuilder {
	b.urr.LinkedURRIDs = append(b.urr.LinkedURRIDs, id)
	return b
}

func (b *CreateURRBuilder) MeasurementInformation(flags uint8) *CreateURRBuilder {
	b.urr.MeasurementInformation = &flags
	return b
}

// Build validates the builder and returns the Create URR.
func (b *CreateURRBuilder) Build() (CreateURR, error) {
	if b.method == nil {
		return CreateURR{}, util.ErrBuilderMissingField{Builder: "CreateURR", Field: "MeasurementMethod"}
	}
	if b.triggers == nil {
		return CreateURR{}, util.ErrBuilderMissingField{Builder: "CreateURR", Field: "ReportingTriggers"}
	}
	c := b.urr
	c.MeasurementMethod = *b.method
	c.ReportingTriggers = *b.triggers
	if c.MeasurementMethod == 0 {
		return CreateURR{}, util.ErrBuilderInvalidValue{Builder: "CreateURR", Field: "MeasurementMethod", Reason: "no measurement method selected"}
	}
	if err := ValidateField("CreateURR", "URRParameters", c.URRParameters); err != nil {
		return CreateURR{}, err
	}
	return c, nil
}

// UpdateURR changes an installed usage reporting rule.
type UpdateURR struct {
	URRID             uint32
	MeasurementMethod *uint8
	ReportingTriggers *uint32
	URRParameters
}

// IE returns an Update URR IE.
func (u UpdateURR) IE() (*IE, error) {
	return checked(u, u.ie)
}

func (u UpdateURR) ie() *IE {
	b := &builder{}
	b.add(NewURRID(u.URRID))
	addOptional(b, u.MeasurementMethod, func(v uint8) *IE { return newUint8(TypeMeasurementMethod, v) })
	addOptional(b, u.ReportingTriggers, NewReportingTriggers)
	u.URRParameters.add(b)
	return b.build(TypeUpdateURR)
}

// ParseUpdateURR decodes an Update URR IE.
func ParseUpdateURR(i *IE) (UpdateURR, error) {
	g, err := openGroup(i, TypeUpdateURR)
	if err != nil {
		return UpdateURR{}, err
	}
	u := UpdateURR{}
	if u.URRID, err = required(g, TypeURRID, (*IE).URRID); err != nil {
		return UpdateURR{}, err
	}
	if u.MeasurementMethod, err = optional(g, TypeMeasurementMethod, (*IE).Flags); err != nil {
		return UpdateURR{}, err
	}
	if u.ReportingTriggers, err = optional(g, TypeReportingTriggers, (*IE).ReportingTriggers); err != nil {
		return UpdateURR{}, err
	}
	if err := u.URRParameters.parse(g); err != nil {
		return UpdateURR{}, err
	}
	return u, nil
}

// UpdateURRBuilder assembles an Update URR.
type UpdateURRBuilder struct {
	urr UpdateURR
}

// NewUpdateURRBuilder starts an Update URR for the given rule ID.
func NewUpdateURRBuilder(id uint32) *UpdateURRBuilder {
	return &UpdateURRBuilder{urr: UpdateURR{URRID: id}}
}

func (b *UpdateURRBuilder) MeasurementMethod(m uint8) *UpdateURRBuilder {
	b.urr.MeasurementMethod = &m
	return b
}

func (b *UpdateURRBuilder) ReportingTriggers(t uint32) *UpdateURRBuilder {
	b.urr.ReportingTriggers = &t
	return b
}

func (b *UpdateURRBuilder) VolumeThreshold(v Volume) *UpdateURRBuilder {
	b.urr.VolumeThreshold = &v
	return b
}

func (b *UpdateURRBuilder) VolumeQuota(v Volume) *UpdateURRBuilder {
	b.urr.VolumeQuota = &v
	return b
}

func (b *UpdateURRBuilder) TimeThreshold(d time.Duration) *UpdateURRBuilder {
	b.urr.TimeThreshold = &d
	return b
}

func (b *UpdateURRBuilder) TimeQuota(d time.Duration) *UpdateURRBuilder {
	b.urr.TimeQuota = &d
	return b
}

// Build validates the builder and returns the Update URR.
func (b *UpdateURRBuilder) Build() (UpdateURR, error) {
	if err := ValidateField("UpdateURR", "URRParameters", b.urr.URRParameters); err != nil {
		return UpdateURR{}, err
	}
	return b.urr, nil
}

// NewQueryURR creates a Query URR IE asking for an immediate report from one URR.
func NewQueryURR(id uint32) *IE {
	return NewGrouped(TypeQueryURR, NewURRID(id))
}

// QueryURR returns the URR ID of a Query URR IE.
func (i *IE) QueryURR() (uint32, error) {
	g, err := openGroup(i, TypeQueryURR)
	if err != nil {
		return 0, err
	}
	return required(g, TypeURRID, (*IE).URRID)
}
