/* YaPFCP - Yet another PFCP codec
 *
 * Copyright (C) 2020-2024 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ie

import (
	"encoding/binary"
	"time"

	"github.com/yapfcp/yapfcp/pfcp/util"
)

// ntpEpochOffset is the number of seconds between 1900-01-01 and 1970-01-01.
const ntpEpochOffset = 2208988800

var timestampTypes = map[Type]bool{
	TypeRecoveryTimeStamp: true,
	TypeMonitoringTime:    true,
	TypeTimeOfFirstPacket: true,
	TypeTimeOfLastPacket:  true,
	TypeStartTime:         true,
	TypeEndTime:           true,
	TypeEventTimeStamp:    true,
	TypeActivationTime:    true,
	TypeDeactivationTime:  true,
}

var secondsTypes = map[Type]bool{
	TypeTimeThreshold:            true,
	TypeSubsequentTimeThreshold:  true,
	TypeInactivityDetectionTime:  true,
	TypeMeasurementPeriod:        true,
	TypeDurationMeasurement:      true,
	TypeQuotaHoldingTime:         true,
	TypeTimeQuota:                true,
	TypeSubsequentTimeQuota:      true,
	TypeUserPlaneInactivityTimer: true,
	TypeQuotaValidityTime:        true,
	TypeMinimumWaitTime:          true,
}

// toNTP converts t to the 32-bit NTP seconds field, wrapping in era 1.
func toNTP(t time.Time) uint32 {
	return uint32(t.Unix() + ntpEpochOffset)
}

func fromNTP(v uint32) time.Time {
	return time.Unix(int64(v)-ntpEpochOffset, 0).UTC()
}

// NewTimestamp creates a timestamp IE, such as Recovery Time Stamp, with one-second resolution.
func NewTimestamp(t Type, ts time.Time) (*IE, error) {
	if !timestampTypes[t] {
		return nil, invalid(t, "not a timestamp IE")
	}
	return newUint32(t, toNTP(ts)), nil
}

// NewRecoveryTimeStamp creates a Recovery Time Stamp IE.
func NewRecoveryTimeStamp(ts time.Time) *IE {
	return newUint32(TypeRecoveryTimeStamp, toNTP(ts))
}

// Timestamp returns the value of a timestamp IE.
func (i *IE) Timestamp() (time.Time, error) {
	if i == nil {
		return time.Time{}, util.ErrNonExistent
	}
	if !timestampTypes[i.Type] {
		return time.Time{}, i.expect(TypeRecoveryTimeStamp)
	}
	v, err := i.ValueAsUint32()
	if err != nil {
		return time.Time{}, err
	}
	return fromNTP(v), nil
}

// RecoveryTimeStamp returns the value of a Recovery Time Stamp IE.
func (i *IE) RecoveryTimeStamp() (time.Time, error) {
	if err := i.expect(TypeRecoveryTimeStamp); err != nil {
		return time.Time{}, err
	}
	return i.Timestamp()
}

// NewSeconds creates a duration IE carried as whole seconds, such as Time Threshold.
func NewSeconds(t Type, d time.Duration) (*IE, error) {
	if !secondsTypes[t] {
		return nil, invalid(t, "not a seconds IE")
	}
	s := d / time.Second
	if s < 0 || !fitsIn(uint64(s), 32) {
		return nil, outOfRange(t, "duration", d)
	}
	return newUint32(t, uint32(s)), nil
}

// Seconds returns the value of a duration IE carried as whole seconds.
func (i *IE) Seconds() (time.Duration, error) {
	if i == nil {
		return 0, util.ErrNonExistent
	}
	if !secondsTypes[i.Type] {
		return 0, i.expect(TypeTimeThreshold)
	}
	v, err := i.ValueAsUint32()
	if err != nil {
		return 0, err
	}
	return time.Duration(v) * time.Second, nil
}

// TimerInfinite is the duration reported for a timer whose unit denotes an infinite value.
const TimerInfinite time.Duration = -1

var timerUnits = []time.Duration{
	2 * time.Second,
	time.Minute,
	10 * time.Minute,
	time.Hour,
	10 * time.Hour,
}

const (
	timerUnitInfinite  = 7
	timerValueMax      = 0x1F
	timerValueUnitBits = 5
)

func isTimerType(t Type) bool {
	return t == TypeTimer || t == TypeGracefulReleasePeriod || t == TypeDLBufferingDuration
}

// encodeTimer picks the finest unit that holds d exactly, or failing that the finest unit
// that holds d rounded up.
func encodeTimer(t Type, d time.Duration) (byte, error) {
	if d == TimerInfinite {
		return timerUnitInfinite << timerValueUnitBits, nil
	}
	if d < 0 {
		return 0, outOfRange(t, "duration", d)
	}
	for u, unit := range timerUnits {
		if d%unit == 0 && d/unit <= timerValueMax {
			return byte(u)<<timerValueUnitBits | byte(d/unit), nil
		}
	}
	for u, unit := range timerUnits {
		v := (d + unit - 1) / unit
		if v <= timerValueMax {
			return byte(u)<<timerValueUnitBits | byte(v), nil
		}
	}
	return 0, outOfRange(t, "duration", d)
}

func decodeTimer(t Type, b byte) (time.Duration, error) {
	u := int(b >> timerValueUnitBits)
	if u == timerUnitInfinite {
		return TimerInfinite, nil
	}
	if u >= len(timerUnits) {
		return 0, invalid(t, "timer unit %d", u)
	}
	return time.Duration(b&timerValueMax) * timerUnits[u], nil
}

// NewTimer creates a Timer, Graceful Release Period or DL Buffering Duration IE.
func NewTimer(t Type, d time.Duration) (*IE, error) {
	if !isTimerType(t) {
		return nil, invalid(t, "not a timer IE")
	}
	b, err := encodeTimer(t, d)
	if err != nil {
		return nil, err
	}
	return newUint8(t, b), nil
}

// Timer returns the value of a Timer, Graceful Release Period or DL Buffering Duration IE.
func (i *IE) Timer() (time.Duration, error) {
	if err := i.expect(TypeTimer, TypeGracefulReleasePeriod, TypeDLBufferingDuration); err != nil {
		return 0, err
	}
	v, err := i.ValueAsUint8()
	if err != nil {
		return 0, err
	}
	return decodeTimer(i.Type, v)
}

const notificationDelayUnit = 50 * time.Millisecond

// NewDownlinkDataNotificationDelay creates a Downlink Data Notification Delay IE in 50 ms steps.
func NewDownlinkDataNotificationDelay(d time.Duration) (*IE, error) {
	v := d / notificationDelayUnit
	if d < 0 || v > 0xFF {
		return nil, outOfRange(TypeDownlinkDataNotificationDelay, "delay", d)
	}
	return newUint8(TypeDownlinkDataNotificationDelay, uint8(v)), nil
}

// DownlinkDataNotificationDelay returns the value of a Downlink Data Notification Delay IE.
func (i *IE) DownlinkDataNotificationDelay() (time.Duration, error) {
	if err := i.expect(TypeDownlinkDataNotificationDelay); err != nil {
		return 0, err
	}
	v, err := i.ValueAsUint8()
	if err != nil {
		return 0, err
	}
	return time.Duration(v) * notificationDelayUnit, nil
}

// NewAveragingWindow creates an Averaging Window IE with millisecond resolution.
func NewAveragingWindow(d time.Duration) (*IE, error) {
	ms := d / time.Millisecond
	if ms < 0 || !fitsIn(uint64(ms), 32) {
		return nil, outOfRange(TypeAveragingWindow, "window", d)
	}
	return newUint32(TypeAveragingWindow, uint32(ms)), nil
}

// AveragingWindow returns the value of an Averaging Window IE.
func (i *IE) AveragingWindow() (time.Duration, error) {
	if err := i.expect(TypeAveragingWindow); err != nil {
		return 0, err
	}
	v, err := i.ValueAsUint32()
	if err != nil {
		return 0, err
	}
	return time.Duration(v) * time.Millisecond, nil
}

// Base time interval types of a Time Quota Mechanism IE.
const (
	BaseTimeIntervalCTP uint8 = 0
	BaseTimeIntervalDTP uint8 = 1
)

// TimeQuotaMechanism is the charging base time interval.
type TimeQuotaMechanism struct {
	IntervalType uint8
	Interval     time.Duration
}

func (m TimeQuotaMechanism) Validate() error {
	if m.IntervalType > BaseTimeIntervalDTP {
		return outOfRange(TypeTimeQuotaMechanism, "base time interval type", m.IntervalType)
	}
	s := m.Interval / time.Second
	if s < 0 || !fitsIn(uint64(s), 32) {
		return outOfRange(TypeTimeQuotaMechanism, "base time interval", m.Interval)
	}
	return nil
}

// Marshal encodes the Time Quota Mechanism payload.
func (m TimeQuotaMechanism) Marshal() []byte {
	b := []byte{m.IntervalType & 0x03}
	return binary.BigEndian.AppendUint32(b, uint32(m.Interval/time.Second))
}

// IE returns a Time Quota Mechanism IE.
func (m TimeQuotaMechanism) IE() *IE {
	return New(TypeTimeQuotaMechanism, m.Marshal())
}

// ParseTimeQuotaMechanism decodes a Time Quota Mechanism payload.
func ParseTimeQuotaMechanism(b []byte) (TimeQuotaMechanism, error) {
	if len(b) < 5 {
		return TimeQuotaMechanism{}, tooShort(TypeTimeQuotaMechanism, 5, len(b))
	}
	return TimeQuotaMechanism{
		IntervalType: b[0] & 0x03,
		Interval:     time.Duration(binary.BigEndian.Uint32(b[1:])) * time.Second,
	}, nil
}

// TimeQuotaMechanism returns the value of a Time Quota Mechanism IE.
func (i *IE) TimeQuotaMechanism() (TimeQuotaMechanism, error) {
	if err := i.expect(TypeTimeQuotaMechanism); err != nil {
		return TimeQuotaMechanism{}, err
	}
	return ParseTimeQuotaMechanism(i.Payload)
}
