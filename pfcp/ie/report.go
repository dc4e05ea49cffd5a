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

func isUsageReportType(t Type) bool {
	switch t {
	case TypeUsageReportWithinSessionModificationResponse,
		TypeUsageReportWithinSessionDeletionResponse,
		TypeUsageReportWithinSessionReportRequest:
		return true
	}
	return false
}

// NewQueryURRReference creates a Query URR Reference IE.
func NewQueryURRReference(ref uint32) *IE {
	return newUint32(TypeQueryURRReference, ref)
}

// QueryURRReference returns the value of a Query URR Reference IE.
func (i *IE) QueryURRReference() (uint32, error) {
	if err := i.expect(TypeQueryURRReference); err != nil {
		return 0, err
	}
	return i.ValueAsUint32()
}

// UsageReport is the value of the three Usage Report IEs, which differ only in the
// message that carries them.
type UsageReport struct {
	URRID               uint32
	URSEQN              uint32
	UsageReportTrigger  uint32
	StartTime           *time.Time
	EndTime             *time.Time
	VolumeMeasurement   *Volume
	DurationMeasurement *time.Duration
	TimeOfFirstPacket   *time.Time
	TimeOfLastPacket    *time.Time
	UsageInformation    *uint8
	QueryURRReference   *uint32
	EventTimeStamps     []time.Time
}

func (u UsageReport) Validate() error {
	if u.VolumeMeasurement != nil {
		if err := u.VolumeMeasurement.validate(TypeVolumeMeasurement); err != nil {
			return err
		}
	}
	if u.DurationMeasurement != nil {
		if _, err := NewSeconds(TypeDurationMeasurement, *u.DurationMeasurement); err != nil {
			return err
		}
	}
	return nil
}

func timestampEncoder(t Type) func(time.Time) *IE {
	return func(ts time.Time) *IE { return mustIE(NewTimestamp(t, ts)) }
}

// IE returns the Usage Report IE of type t, one of the three Usage Report types.
func (u UsageReport) IE(t Type) (*IE, error) {
	if !isUsageReportType(t) {
		return nil, invalid(t, "not a usage report IE")
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	b := &builder{}
	b.add(NewURRID(u.URRID), NewURSEQN(u.URSEQN), NewUsageReportTrigger(u.UsageReportTrigger))
	addOptional(b, u.StartTime, timestampEncoder(TypeStartTime))
	addOptional(b, u.EndTime, timestampEncoder(TypeEndTime))
	addOptional(b, u.VolumeMeasurement, func(v Volume) *IE { return mustIE(NewVolume(TypeVolumeMeasurement, v)) })
	addOptional(b, u.DurationMeasurement, func(d time.Duration) *IE { return mustIE(NewSeconds(TypeDurationMeasurement, d)) })
	addOptional(b, u.TimeOfFirstPacket, timestampEncoder(TypeTimeOfFirstPacket))
	addOptional(b, u.TimeOfLastPacket, timestampEncoder(TypeTimeOfLastPacket))
	addOptional(b, u.UsageInformation, func(v uint8) *IE { return newUint8(TypeUsageInformation, v) })
	addOptional(b, u.QueryURRReference, NewQueryURRReference)
	addRepeated(b, u.EventTimeStamps, timestampEncoder(TypeEventTimeStamp))
	return b.build(t), nil
}

// ParseUsageReport decodes any of the three Usage Report IEs.
func ParseUsageReport(i *IE) (UsageReport, error) {
	if i == nil || !isUsageReportType(i.Type) {
		return UsageReport{}, i.expect(TypeUsageReportWithinSessionReportRequest)
	}
	g, err := openGroup(i, i.Type)
	if err != nil {
		return UsageReport{}, err
	}
	u := UsageReport{}
	if u.URRID, err = required(g, TypeURRID, (*IE).URRID); err != nil {
		return UsageReport{}, err
	}
	if u.URSEQN, err = required(g, TypeURSEQN, (*IE).URSEQN); err != nil {
		return UsageReport{}, err
	}
	if u.UsageReportTrigger, err = required(g, TypeUsageReportTrigger, (*IE).UsageReportTrigger); err != nil {
		return UsageReport{}, err
	}
	for _, ts := range []struct {
		t   Type
		dst **time.Time
	}{
		{TypeStartTime, &u.StartTime},
		{TypeEndTime, &u.EndTime},
		{TypeTimeOfFirstPacket, &u.TimeOfFirstPacket},
		{TypeTimeOfLastPacket, &u.TimeOfLastPacket},
	} {
		if *ts.dst, err = optional(g, ts.t, (*IE).Timestamp); err != nil {
			return UsageReport{}, err
		}
	}
	if u.VolumeMeasurement, err = optional(g, TypeVolumeMeasurement, (*IE).Volume); err != nil {
		return UsageReport{}, err
	}
	if u.DurationMeasurement, err = optional(g, TypeDurationMeasurement, (*IE).Seconds); err != nil {
		return UsageReport{}, err
	}
	if u.UsageInformation, err = optional(g, TypeUsageInformation, (*IE).Flags); err != nil {
		return UsageReport{}, err
	}
	if u.QueryURRReference, err = optional(g, TypeQueryURRReference, (*IE).QueryURRReference); err != nil {
		return UsageReport{}, err
	}
	if u.EventTimeStamps, err = repeated(g, TypeEventTimeStamp, (*IE).Timestamp); err != nil {
		return UsageReport{}, err
	}
	return u, nil
}

// UsageReportBuilder assembles a Usage Report.
type UsageReportBuilder struct {
	seqn    *uint32
	trigger *uint32
	report  UsageReport
}

// NewUsageReportBuilder starts a Usage Report for the given URR.
func NewUsageReportBuilder(urrID uint32) *UsageReportBuilder {
	return &UsageReportBuilder{report: UsageReport{URRID: urrID}}
}

func (b *UsageReportBuilder) URSEQN(seq uint32) *UsageReportBuilder {
	b.seqn = &seq
	return b
}

func (b *UsageReportBuilder) UsageReportTrigger(t uint32) *UsageReportBuilder {
	b.trigger = &t
	return b
}

func (b *UsageReportBuilder) StartTime(t time.Time) *UsageReportBuilder {
	b.report.StartTime = &t
	return b
}

func (b *UsageReportBuilder) EndTime(t time.Time) *UsageReportBuilder {
	b.report.EndTime = &t
	return b
}

func (b *UsageReportBuilder) VolumeMeasurement(v Volume) *UsageReportBuilder {
	b.report.VolumeMeasurement = &v
	return b
}

func (b *UsageReportBuilder) DurationMeasurement(d time.Duration) *UsageReportBuilder {
	b.report.DurationMeasurement = &d
	return b
}

func (b *UsageReportBuilder) TimeOfFirstPacket(t time.Time) *UsageReportBuilder {
	b.report.TimeOfFirstPacket = &t
	return b
}

func (b *UsageReportBuilder) TimeOfLastPacket(t time.Time) *UsageReportBuilder {
	b.report.TimeOfLastPacket = &t
	return b
}

func (b *UsageReportBuilder) UsageInformation(flags uint8) *UsageReportBuilder {
	b.report.UsageInformation = &flags
	return b
}

func (b *UsageReportBuilder) QueryURRReference(ref uint32) *UsageReportBuilder {
	b.report.QueryURRReference = &ref
	return b
}

// Build validates the builder and returns the Usage Report.
func (b *UsageReportBuilder) Build() (UsageReport, error) {
	if b.seqn == nil {
		return UsageReport{}, util.ErrBuilderMissingField{Builder: "UsageReport", Field: "URSEQN"}
	}
	if b.trigger == nil {
		return UsageReport{}, util.ErrBuilderMissingField{Builder: "UsageReport", Field: "UsageReportTrigger"}
	}
	u := b.report
	u.URSEQN = *b.seqn
	u.UsageReportTrigger = *b.trigger
	if err := ValidateField("UsageReport", "Measurement", u); err != nil {
		return UsageReport{}, err
	}
	return u, nil
}

// DownlinkDataReport names the PDRs that matched buffered downlink data.
type DownlinkDataReport struct {
	PDRIDs             []uint16
	ServiceInformation []DownlinkDataServiceInformation
}

func (d DownlinkDataReport) Validate() error {
	if len(d.PDRIDs) == 0 {
		return util.ErrMissingMandatoryIE{IEType: uint16(TypePDRID), ParentIE: uint16(TypeDownlinkDataReport)}
	}
	for _, s := range d.ServiceInformation {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// IE returns a Downlink Data Report IE.
func (d DownlinkDataReport) IE() *IE {
	b := &builder{}
	addRepeated(b, d.PDRIDs, NewPDRID)
	addRepeated(b, d.ServiceInformation, DownlinkDataServiceInformation.IE)
	return b.build(TypeDownlinkDataReport)
}

// ParseDownlinkDataReport decodes a Downlink Data Report IE.
func ParseDownlinkDataReport(i *IE) (DownlinkDataReport, error) {
	g, err := openGroup(i, TypeDownlinkDataReport)
	if err != nil {
		return DownlinkDataReport{}, err
	}
	d := DownlinkDataReport{}
	if d.PDRIDs, err = repeated(g, TypePDRID, (*IE).PDRID); err != nil {
		return DownlinkDataReport{}, err
	}
	if len(d.PDRIDs) == 0 {
		return DownlinkDataReport{}, g.missing(TypePDRID)
	}
	if d.ServiceInformation, err = repeated(g, TypeDownlinkDataServiceInformation, (*IE).DownlinkDataServiceInformation); err != nil {
		return DownlinkDataReport{}, err
	}
	return d, nil
}

// NewErrorIndicationReport creates an Error Indication Report IE for the remote
// tunnel endpoints that sent GTP-U error indications.
func NewErrorIndicationReport(remote ...FTEID) (*IE, error) {
	if len(remote) == 0 {
		return nil, util.ErrMissingMandatoryIE{IEType: uint16(TypeFTEID), ParentIE: uint16(TypeErrorIndicationReport)}
	}
	b := &builder{}
	for _, f := range remote {
		if err := f.Validate(); err != nil {
			return nil, err
		}
		b.add(f.IE())
	}
	return b.build(TypeErrorIndicationReport), nil
}

// ErrorIndicationReport returns the remote F-TEIDs of an Error Indication Report IE.
func (i *IE) ErrorIndicationReport() ([]FTEID, error) {
	g, err := openGroup(i, TypeErrorIndicationReport)
	if err != nil {
		return nil, err
	}
	fteids, err := repeated(g, TypeFTEID, (*IE).FTEID)
	if err != nil {
		return nil, err
	}
	if len(fteids) == 0 {
		return nil, g.missing(TypeFTEID)
	}
	return fteids, nil
}

// LoadControlInformation advertises the sender's load.
type LoadControlInformation struct {
	SequenceNumber uint32
	Metric         uint8
}

func (l LoadControlInformation) Validate() error {
	if l.Metric > 100 {
		return outOfRange(TypeMetric, "metric", l.Metric)
	}
	return nil
}

// IE returns a Load Control Information IE.
func (l LoadControlInformation) IE() (*IE, error) {
	return checked(l, l.ie)
}

func (l LoadControlInformation) ie() *IE {
	return NewGrouped(TypeLoadControlInformation, NewSequenceNumber(l.SequenceNumber), mustIE(NewMetric(l.Metric)))
}

// ParseLoadControlInformation decodes a Load Control Information IE.
func ParseLoadControlInformation(i *IE) (LoadControlInformation, error) {
	g, err := openGroup(i, TypeLoadControlInformation)
	if err != nil {
		return LoadControlInformation{}, err
	}
	l := LoadControlInformation{}
	if l.SequenceNumber, err = required(g, TypeSequenceNumber, (*IE).SequenceNumber); err != nil {
		return LoadControlInformation{}, err
	}
	if l.Metric, err = required(g, TypeMetric, (*IE).Metric); err != nil {
		return LoadControlInformation{}, err
	}
	return l, nil
}

// OverloadControlInformation asks the peer to reduce traffic for a period.
type OverloadControlInformation struct {
	SequenceNumber uint32
	Metric         uint8
	Validity       time.Duration
	OCIFlags       *uint8
}

func (o OverloadControlInformation) Validate() error {
	if o.Metric > 100 {
		return outOfRange(TypeMetric, "metric", o.Metric)
	}
	_, err := encodeTimer(TypeTimer, o.Validity)
	return err
}

// IE returns an Overload Control Information IE.
func (o OverloadControlInformation) IE() (*IE, error) {
	return checked(o, o.ie)
}

func (o OverloadControlInformation) ie() *IE {
	b := &builder{}
	b.add(NewSequenceNumber(o.SequenceNumber), mustIE(NewMetric(o.Metric)), mustIE(NewTimer(TypeTimer, o.Validity)))
	addOptional(b, o.OCIFlags, func(v uint8) *IE { return newUint8(TypeOCIFlags, v) })
	return b.build(TypeOverloadControlInformation)
}

// ParseOverloadControlInformation decodes an Overload Control Information IE.
func ParseOverloadControlInformation(i *IE) (OverloadControlInformation, error) {
	g, err := openGroup(i, TypeOverloadControlInformation)
	if err != nil {
		return OverloadControlInformation{}, err
	}
	o := OverloadControlInformation{}
	if o.SequenceNumber, err = required(g, TypeSequenceNumber, (*IE).SequenceNumber); err != nil {
		return OverloadControlInformation{}, err
	}
	if o.Metric, err = required(g, TypeMetric, (*IE).Metric); err != nil {
		return OverloadControlInformation{}, err
	}
	if o.Validity, err = required(g, TypeTimer, (*IE).Timer); err != nil {
		return OverloadControlInformation{}, err
	}
	if o.OCIFlags, err = optional(g, TypeOCIFlags, (*IE).Flags); err != nil {
		return OverloadControlInformation{}, err
	}
	return o, nil
}

// ApplicationPFDs are the packet flow descriptions provisioned for one application.
// Each inner slice is one PFD Context.
type ApplicationPFDs struct {
	ApplicationID string
	PFDContexts   [][]PFDContents
}

// IE returns an Application ID's PFDs IE.
func (a ApplicationPFDs) IE() *IE {
	b := &builder{}
	b.add(NewApplicationID(a.ApplicationID))
	for _, ctx := range a.PFDContexts {
		c := &builder{}
		addRepeated(c, ctx, PFDContents.IE)
		b.add(c.build(TypePFDContext))
	}
	return b.build(TypeApplicationIDsPFDs)
}

// ParseApplicationPFDs decodes an Application ID's PFDs IE.
func ParseApplicationPFDs(i *IE) (ApplicationPFDs, error) {
	g, err := openGroup(i, TypeApplicationIDsPFDs)
	if err != nil {
		return ApplicationPFDs{}, err
	}
	a := ApplicationPFDs{}
	if a.ApplicationID, err = required(g, TypeApplicationID, (*IE).ApplicationID); err != nil {
		return ApplicationPFDs{}, err
	}
	for _, c := range g.all(TypePFDContext) {
		ctx, err := openGroup(c, TypePFDContext)
		if err != nil {
			return ApplicationPFDs{}, err
		}
		contents, err := repeated(ctx, TypePFDContents, (*IE).PFDContents)
		if err != nil {
			return ApplicationPFDs{}, err
		}
		if len(contents) == 0 {
			return ApplicationPFDs{}, ctx.missing(TypePFDContents)
		}
		a.PFDContexts = append(a.PFDContexts, contents)
	}
	return a, nil
}

// TrafficEndpoint is the value of Create Traffic Endpoint and Update Traffic Endpoint.
type TrafficEndpoint struct {
	TrafficEndpointID uint8
	LocalFTEID        *FTEID
	NetworkInstance   *string
	UEIPAddresses     []UEIPAddress
	FramedRoutes      []string
	FramedRouting     *uint32
	FramedIPv6Routes  []string
	QFIs              []uint8
}

func (t TrafficEndpoint) Validate() error {
	if t.LocalFTEID != nil {
		if err := t.LocalFTEID.Validate(); err != nil {
			return err
		}
	}
	for _, u := range t.UEIPAddresses {
		if err := u.Validate(); err != nil {
			return err
		}
	}
	for _, q := range t.QFIs {
		if !fitsIn(q, 6) {
			return outOfRange(TypeQFI, "QFI", q)
		}
	}
	return nil
}

// IE returns the traffic endpoint as an IE of type t, Create or Update Traffic Endpoint.
func (t TrafficEndpoint) IE(typ Type) (*IE, error) {
	if typ != TypeCreateTrafficEndpoint && typ != TypeUpdateTrafficEndpoint {
		return nil, invalid(typ, "not a traffic endpoint IE")
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	b := &builder{}
	b.add(NewTrafficEndpointID(t.TrafficEndpointID))
	addOptional(b, t.LocalFTEID, FTEID.IE)
	addOptional(b, t.NetworkInstance, NewNetworkInstance)
	addRepeated(b, t.UEIPAddresses, UEIPAddress.IE)
	addRepeated(b, t.FramedRoutes, NewFramedRoute)
	addOptional(b, t.FramedRouting, NewFramedRouting)
	addRepeated(b, t.FramedIPv6Routes, NewFramedIPv6Route)
	addRepeated(b, t.QFIs, func(q uint8) *IE { return mustIE(NewQFI(q)) })
	return b.build(typ), nil
}

// ParseTrafficEndpoint decodes a Create or Update Traffic Endpoint IE.
func ParseTrafficEndpoint(i *IE) (TrafficEndpoint, error) {
	if i == nil || (i.Type != TypeCreateTrafficEndpoint && i.Type != TypeUpdateTrafficEndpoint) {
		return TrafficEndpoint{}, i.expect(TypeCreateTrafficEndpoint)
	}
	g, err := openGroup(i, i.Type)
	if err != nil {
		return TrafficEndpoint{}, err
	}
	t := TrafficEndpoint{}
	if t.TrafficEndpointID, err = required(g, TypeTrafficEndpointID, (*IE).TrafficEndpointID); err != nil {
		return TrafficEndpoint{}, err
	}
	if t.LocalFTEID, err = optional(g, TypeFTEID, (*IE).FTEID); err != nil {
		return TrafficEndpoint{}, err
	}
	if t.NetworkInstance, err = optional(g, TypeNetworkInstance, (*IE).NetworkInstance); err != nil {
		return TrafficEndpoint{}, err
	}
	if t.UEIPAddresses, err = repeated(g, TypeUEIPAddress, (*IE).UEIPAddress); err != nil {
		return TrafficEndpoint{}, err
	}
	if t.FramedRoutes, err = repeated(g, TypeFramedRoute, (*IE).FramedRoute); err != nil {
		return TrafficEndpoint{}, err
	}
	if t.FramedRouting, err = optional(g, TypeFramedRouting, (*IE).FramedRouting); err != nil {
		return TrafficEndpoint{}, err
	}
	if t.FramedIPv6Routes, err = repeated(g, TypeFramedIPv6Route, (*IE).FramedIPv6Route); err != nil {
		return TrafficEndpoint{}, err
	}
	if t.QFIs, err = repeated(g, TypeQFI, (*IE).QFI); err != nil {
		return TrafficEndpoint{}, err
	}
	return t, nil
}

// CreatedTrafficEndpoint reports what the UP function allocated for a traffic endpoint.
type CreatedTrafficEndpoint struct {
	TrafficEndpointID uint8
	LocalFTEIDs       []FTEID
	UEIPAddresses     []UEIPAddress
}

// IE returns a Created Traffic Endpoint IE.
func (c CreatedTrafficEndpoint) IE() *IE {
	b := &builder{}
	b.add(NewTrafficEndpointID(c.TrafficEndpointID))
	addRepeated(b, c.LocalFTEIDs, FTEID.IE)
	addRepeated(b, c.UEIPAddresses, UEIPAddress.IE)
	return b.build(TypeCreatedTrafficEndpoint)
}

// ParseCreatedTrafficEndpoint decodes a Created Traffic Endpoint IE.
func ParseCreatedTrafficEndpoint(i *IE) (CreatedTrafficEndpoint, error) {
	g, err := openGroup(i, TypeCreatedTrafficEndpoint)
	if err != nil {
		return CreatedTrafficEndpoint{}, err
	}
	c := CreatedTrafficEndpoint{}
	if c.TrafficEndpointID, err = required(g, TypeTrafficEndpointID, (*IE).TrafficEndpointID); err != nil {
		return CreatedTrafficEndpoint{}, err
	}
	if c.LocalFTEIDs, err = repeated(g, TypeFTEID, (*IE).FTEID); err != nil {
		return CreatedTrafficEndpoint{}, err
	}
	if c.UEIPAddresses, err = repeated(g, TypeUEIPAddress, (*IE).UEIPAddress); err != nil {
		return CreatedTrafficEndpoint{}, err
	}
	return c, nil
}
