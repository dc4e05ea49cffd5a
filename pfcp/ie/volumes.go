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

// Volume flags.
const (
	VolumeFlagTotal           uint8 = 0x01
	VolumeFlagUplink          uint8 = 0x02
	VolumeFlagDownlink        uint8 = 0x04
	VolumeFlagTotalPackets    uint8 = 0x08
	VolumeFlagUplinkPackets   uint8 = 0x10
	VolumeFlagDownlinkPackets uint8 = 0x20
)

func isVolumeType(t Type) bool {
	switch t {
	case TypeVolumeThreshold, TypeSubsequentVolumeThreshold, TypeVolumeQuota,
		TypeSubsequentVolumeQuota, TypeVolumeMeasurement:
		return true
	}
	return false
}

// Volume is a set of byte counts, plus packet counts for Volume Measurement. Nil fields are absent.
type Volume struct {
	Total           *uint64
	Uplink          *uint64
	Downlink        *uint64
	TotalPackets    *uint64
	UplinkPackets   *uint64
	DownlinkPackets *uint64
}

func (v *Volume) slots() []**uint64 {
	return []**uint64{&v.Total, &v.Uplink, &v.Downlink, &v.TotalPackets, &v.UplinkPackets, &v.DownlinkPackets}
}

func (v Volume) validate(t Type) error {
	if !isVolumeType(t) {
		return invalid(t, "not a volume IE")
	}
	if t != TypeVolumeMeasurement && (v.TotalPackets != nil || v.UplinkPackets != nil || v.DownlinkPackets != nil) {
		return invalid(t, "packet counts are only carried in Volume Measurement")
	}
	return nil
}

func (v Volume) marshal() []byte {
	b := make([]byte, 1, 1+6*8)
	for k, slot := range v.slots() {
		if *slot == nil {
			continue
		}
		b[0] |= 1 << k
		b = binary.BigEndian.AppendUint64(b, **slot)
	}
	return b
}

// NewVolume creates a Volume Threshold, Volume Quota or Volume Measurement IE of type t.
func NewVolume(t Type, v Volume) (*IE, error) {
	if err := v.validate(t); err != nil {
		return nil, err
	}
	return New(t, v.marshal()), nil
}

// ParseVolume decodes the payload of a volume IE of type t.
func ParseVolume(t Type, b []byte) (Volume, error) {
	if len(b) < 1 {
		return Volume{}, tooShort(t, 1, 0)
	}
	flags := b[0]
	v := Volume{}
	offset := 1
	for k, slot := range v.slots() {
		if flags&(1<<k) == 0 {
			continue
		}
		if len(b) < offset+8 {
			return Volume{}, tooShort(t, offset+8, len(b))
		}
		x := binary.BigEndian.Uint64(b[offset:])
		*slot = &x
		offset += 8
	}
	return v, nil
}

// Volume returns the value of a volume IE.
func (i *IE) Volume() (Volume, error) {
	if i == nil {
		return Volume{}, util.ErrNonExistent
	}
	if !isVolumeType(i.Type) {
		return Volume{}, i.expect(TypeVolumeThreshold)
	}
	return ParseVolume(i.Type, i.Payload)
}

// Dropped DL Traffic Threshold flags.
const (
	DroppedDLFlagPackets uint8 = 0x01
	DroppedDLFlagBytes   uint8 = 0x02
)

// DroppedDLTrafficThreshold bounds the downlink traffic dropped while buffering.
type DroppedDLTrafficThreshold struct {
	Packets *uint64
	Bytes   *uint64
}

// Marshal encodes the Dropped DL Traffic Threshold payload.
func (d DroppedDLTrafficThreshold) Marshal() []byte {
	b := make([]byte, 1, 17)
	if d.Packets != nil {
		b[0] |= DroppedDLFlagPackets
		b = binary.BigEndian.AppendUint64(b, *d.Packets)
	}
	if d.Bytes != nil {
		b[0] |= DroppedDLFlagBytes
		b = binary.BigEndian.AppendUint64(b, *d.Bytes)
	}
	return b
}

// IE returns a Dropped DL Traffic Threshold IE.
func (d DroppedDLTrafficThreshold) IE() *IE {
	return New(TypeDroppedDLTrafficThreshold, d.Marshal())
}

// ParseDroppedDLTrafficThreshold decodes a Dropped DL Traffic Threshold payload.
func ParseDroppedDLTrafficThreshold(b []byte) (DroppedDLTrafficThreshold, error) {
	t := TypeDroppedDLTrafficThreshold
	if len(b) < 1 {
		return DroppedDLTrafficThreshold{}, tooShort(t, 1, 0)
	}
	d := DroppedDLTrafficThreshold{}
	offset := 1
	for _, f := range []struct {
		flag uint8
		dst  **uint64
	}{{DroppedDLFlagPackets, &d.Packets}, {DroppedDLFlagBytes, &d.Bytes}} {
		if b[0]&f.flag == 0 {
			continue
		}
		if len(b) < offset+8 {
			return DroppedDLTrafficThreshold{}, tooShort(t, offset+8, len(b))
		}
		x := binary.BigEndian.Uint64(b[offset:])
		*f.dst = &x
		offset += 8
	}
	return d, nil
}

// DroppedDLTrafficThreshold returns the value of a Dropped DL Traffic Threshold IE.
func (i *IE) DroppedDLTrafficThreshold() (DroppedDLTrafficThreshold, error) {
	if err := i.expect(TypeDroppedDLTrafficThreshold); err != nil {
		return DroppedDLTrafficThreshold{}, err
	}
	return ParseDroppedDLTrafficThreshold(i.Payload)
}

// NewEventQuota creates an Event Quota IE.
func NewEventQuota(n uint32) *IE {
	return newUint32(TypeEventQuota, n)
}

// NewEventThreshold creates an Event Threshold IE.
func NewEventThreshold(n uint32) *IE {
	return newUint32(TypeEventThreshold, n)
}

// EventCount returns the value of an Event Quota, Event Threshold or Subsequent Event Quota IE.
func (i *IE) EventCount() (uint32, error) {
	if err := i.expect(TypeEventQuota, TypeEventThreshold, TypeSubsequentEventQuota); err != nil {
		return 0, err
	}
	return i.ValueAsUint32()
}

// Multiplier is a decimal scaling factor, value = Digits * 10^Exponent.
type Multiplier struct {
	Digits   int64
	Exponent int32
}

// Marshal encodes the Multiplier payload.
func (m Multiplier) Marshal() []byte {
	b := binary.BigEndian.AppendUint64(nil, uint64(m.Digits))
	return binary.BigEndian.AppendUint32(b, uint32(m.Exponent))
}

// IE returns a Multiplier IE.
func (m Multiplier) IE() *IE {
	return New(TypeMultiplier, m.Marshal())
}

// ParseMultiplier decodes a Multiplier payload.
func ParseMultiplier(b []byte) (Multiplier, error) {
	if len(b) < 12 {
		return Multiplier{}, tooShort(TypeMultiplier, 12, len(b))
	}
	return Multiplier{
		Digits:   int64(binary.BigEndian.Uint64(b)),
		Exponent: int32(binary.BigEndian.Uint32(b[8:])),
	}, nil
}

// Multiplier returns the value of a Multiplier IE.
func (i *IE) Multiplier() (Multiplier, error) {
	if err := i.expect(TypeMultiplier); err != nil {
		return Multiplier{}, err
	}
	return ParseMultiplier(i.Payload)
}
