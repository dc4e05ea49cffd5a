/* YaPFCP - Yet another PFCP codec
 *
 * Copyright (C) 2020-2024 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ie

import (
	"time"
)

// BAR is a buffering action rule. It is the value of Create BAR, Update BAR and
// Update BAR within a Session Report Response; the DL buffering fields are only
// carried by the last.
type BAR struct {
	BARID                           uint8
	DownlinkDataNotificationDelay   *time.Duration
	SuggestedBufferingPacketsCount  *uint8
	DLBufferingDuration             *time.Duration
	DLBufferingSuggestedPacketCount *uint16
}

func isBARType(t Type) bool {
	return t == TypeCreateBAR || t == TypeUpdateBAR || t == TypeUpdateBARWithinSessionReportResponse
}

func (b BAR) validate(t Type) error {
	if !isBARType(t) {
		return invalid(t, "not a BAR IE")
	}
	if t != TypeUpdateBARWithinSessionReportResponse && (b.DLBufferingDuration != nil || b.DLBufferingSuggestedPacketCount != nil) {
		return invalid(t, "DL buffering fields are only carried in a session report response")
	}
	if b.DownlinkDataNotificationDelay != nil {
		if _, err := NewDownlinkDataNotificationDelay(*b.DownlinkDataNotificationDelay); err != nil {
			return err
		}
	}
	if b.DLBufferingDuration != nil {
		if _, err := encodeTimer(TypeDLBufferingDuration, *b.DLBufferingDuration); err != nil {
			return err
		}
	}
	return nil
}

func (b BAR) ie(t Type) *IE {
	w := &builder{}
	w.add(NewBARID(b.BARID))
	addOptional(w, b.DownlinkDataNotificationDelay, func(d time.Duration) *IE { return mustIE(NewDownlinkDataNotificationDelay(d)) })
	addOptional(w, b.SuggestedBufferingPacketsCount, NewSuggestedBufferingPacketsCount)
	addOptional(w, b.DLBufferingDuration, func(d time.Duration) *IE { return mustIE(NewTimer(TypeDLBufferingDuration, d)) })
	addOptional(w, b.DLBufferingSuggestedPacketCount, NewDLBufferingSuggestedPacketCount)
	return w.build(t)
}

// NewBAR creates a Create BAR, Update BAR or Update BAR within Session Report Response IE.
func NewBAR(t Type, b BAR) (*IE, error) {
	if err := b.validate(t); err != nil {
		return nil, err
	}
	return b.ie(t), nil
}

// ParseBAR decodes any of the three BAR IEs.
func ParseBAR(i *IE) (BAR, error) {
	if i == nil || !isBARType(i.Type) {
		return BAR{}, i.expect(TypeCreateBAR)
	}
	g, err := openGroup(i, i.Type)
	if err != nil {
		return BAR{}, err
	}
	b := BAR{}
	if b.BARID, err = required(g, TypeBARID, (*IE).BARID); err != nil {
		return BAR{}, err
	}
	if b.DownlinkDataNotificationDelay, err = optional(g, TypeDownlinkDataNotificationDelay, (*IE).DownlinkDataNotificationDelay); err != nil {
		return BAR{}, err
	}
	if b.SuggestedBufferingPacketsCount, err = optional(g, TypeSuggestedBufferingPacketsCount, (*IE).SuggestedBufferingPacketsCount); err != nil {
		return BAR{}, err
	}
	if b.DLBufferingDuration, err = optional(g, TypeDLBufferingDuration, (*IE).Timer); err != nil {
		return BAR{}, err
	}
	if b.DLBufferingSuggestedPacketCount, err = optional(g, TypeDLBufferingSuggestedPacketCount, (*IE).DLBufferingSuggestedPacketCount); err != nil {
		return BAR{}, err
	}
	return b, nil
}

// BARBuilder assembles a BAR for one of the three BAR IEs.
type BARBuilder struct {
	t   Type
	bar BAR
}

// NewCreateBARBuilder starts a Create BAR.
func NewCreateBARBuilder(id uint8) *BARBuilder {
	return &BARBuilder{t: TypeCreateBAR, bar: BAR{BARID: id}}
}

// NewUpdateBARBuilder starts an Update BAR for a Session Modification Request.
func NewUpdateBARBuilder(id uint8) *BARBuilder {
	return &BARBuilder{t: TypeUpdateBAR, bar: BAR{BARID: id}}
}

// NewUpdateBARReportBuilder starts an Update BAR for a Session Report Response.
func NewUpdateBARReportBuilder(id uint8) *BARBuilder {
	return &BARBuilder{t: TypeUpdateBARWithinSessionReportResponse, bar: BAR{BARID: id}}
}

func (b *BARBuilder) DownlinkDataNotificationDelay(d time.Duration) *BARBuilder {
	b.bar.DownlinkDataNotificationDelay = &d
	return b
}

func (b *BARBuilder) SuggestedBufferingPacketsCount(n uint8) *BARBuilder {
	b.bar.SuggestedBufferingPacketsCount = &n
	return b
}

func (b *BARBuilder) DLBufferingDuration(d time.Duration) *BARBuilder {
	b.bar.DLBufferingDuration = &d
	return b
}

func (b *BARBuilder) DLBufferingSuggestedPacketCount(n uint16) *BARBuilder {
	b.bar.DLBufferingSuggestedPacketCount = &n
	return b
}

// Build validates the builder and returns the BAR IE.
func (b *BARBuilder) Build() (*IE, error) {
	if err := ValidateField(b.t.String(), "BAR", barValidator{b.bar, b.t}); err != nil {
		return nil, err
	}
	return b.bar.ie(b.t), nil
}

type barValidator struct {
	bar BAR
	t   Type
}

func (v barValidator) Validate() error {
	return v.bar.validate(v.t)
}
