/* YaPFCP - Yet another PFCP codec
 *
 * Copyright (C) 2020-2024 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package util

import (
	"errors"
	"fmt"
)

// PFCP common errors, wrapped by the structured errors below.
var (
	ErrNonExistent = errors.New("required value does not exist")
	ErrOutOfRange  = errors.New("value outside of allowed range")
	ErrTooLong     = errors.New("value too long")
	ErrTooShort    = errors.New("value too short")
	ErrDuplicate   = errors.New("duplicate instance of a non-repeatable IE")
	ErrWrongType   = errors.New("IE has a different type")
)

// Kind identifies one member of the closed set of codec failures.
type Kind uint8

// Error kinds.
const (
	KindHeaderInvalid Kind = iota + 1
	KindTruncated
	KindEnterpriseHeaderTruncated
	KindMissingMandatoryIE
	KindInvalidIEPayload
	KindZeroLengthNotAllowed
	KindUnknownMessageType
	KindBuilderMissingField
	KindBuilderInvalidValue
	KindEncoding
	KindNestingTooDeep
)

var kindNames = map[Kind]string{
	KindHeaderInvalid:             "header-invalid",
	KindTruncated:                 "truncated",
	KindEnterpriseHeaderTruncated: "enterprise-header-truncated",
	KindMissingMandatoryIE:        "missing-mandatory-ie",
	KindInvalidIEPayload:          "invalid-ie-payload",
	KindZeroLengthNotAllowed:      "zero-length-not-allowed",
	KindUnknownMessageType:        "unknown-message-type",
	KindBuilderMissingField:       "builder-missing-field",
	KindBuilderInvalidValue:       "builder-invalid-value",
	KindEncoding:                  "encoding-error",
	KindNestingTooDeep:            "nesting-too-deep",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Kinds returns every error kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(kindNames))
	for k := KindHeaderInvalid; k <= KindNestingTooDeep; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Error is implemented by every structured codec error.
type Error interface {
	error
	Kind() Kind
}

// KindOf returns the kind of the first structured error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e Error
	if errors.As(err, &e) {
		return e.Kind(), true
	}
	return 0, false
}

var ieTypeNamer = func(t uint16) string { return fmt.Sprintf("IE(%d)", t) }
var messageTypeNamer = func(t uint8) string { return fmt.Sprintf("Message(%d)", t) }

// SetIETypeNamer installs the function used to render IE types in error messages.
// It must be called during package initialization only.
func SetIETypeNamer(f func(uint16) string) {
	ieTypeNamer = f
}

// SetMessageTypeNamer installs the function used to render message types in error messages.
// It must be called during package initialization only.
func SetMessageTypeNamer(f func(uint8) string) {
	messageTypeNamer = f
}

// IETypeName renders an IE type code.
func IETypeName(t uint16) string {
	return ieTypeNamer(t)
}

// MessageTypeName renders a message type code.
func MessageTypeName(t uint8) string {
	return messageTypeNamer(t)
}

// ErrHeaderInvalid is returned when a message header is well-sized but inconsistent.
type ErrHeaderInvalid struct {
	Reason string
}

func (e ErrHeaderInvalid) Error() string {
	return "invalid PFCP header: " + e.Reason
}

func (e ErrHeaderInvalid) Kind() Kind {
	return KindHeaderInvalid
}

// ErrTruncated is returned when the buffer ends before a declared structure does.
// IEType is zero when the truncated structure is the message header.
type ErrTruncated struct {
	What     string
	IEType   uint16
	Offset   int
	Expected int
	Actual   int
}

func (e ErrTruncated) Error() string {
	what := e.What
	if what == "" {
		what = IETypeName(e.IEType)
	}
	return fmt.Sprintf("%s truncated at offset %d: need %d bytes, have %d", what, e.Offset, e.Expected, e.Actual)
}

func (e ErrTruncated) Kind() Kind {
	return KindTruncated
}

// ErrEnterpriseHeaderTruncated is returned when a vendor-specific IE lacks room for its enterprise ID.
type ErrEnterpriseHeaderTruncated struct {
	IEType   uint16
	Expected int
	Actual   int
}

func (e ErrEnterpriseHeaderTruncated) Error() string {
	return fmt.Sprintf("%s: enterprise ID needs %d bytes, have %d", IETypeName(e.IEType), e.Expected, e.Actual)
}

func (e ErrEnterpriseHeaderTruncated) Kind() Kind {
	return KindEnterpriseHeaderTruncated
}

// ErrMissingMandatoryIE is returned when a message or grouped IE lacks a mandatory IE.
// ParentIE is set when the IE is missing from a grouped IE rather than from the message body.
type ErrMissingMandatoryIE struct {
	IEType      uint16
	MessageType uint8
	ParentIE    uint16
}

func (e ErrMissingMandatoryIE) Error() string {
	if e.ParentIE != 0 {
		return fmt.Sprintf("mandatory IE %s missing from %s", IETypeName(e.IEType), IETypeName(e.ParentIE))
	}
	return fmt.Sprintf("mandatory IE %s missing from %s", IETypeName(e.IEType), MessageTypeName(e.MessageType))
}

func (e ErrMissingMandatoryIE) Kind() Kind {
	return KindMissingMandatoryIE
}

// ErrInvalidIEPayload is returned when an IE payload violates its own layout.
type ErrInvalidIEPayload struct {
	IEType   uint16
	Reason   string
	Expected int
	Actual   int
	Err      error
}

func (e ErrInvalidIEPayload) Error() string {
	msg := fmt.Sprintf("invalid %s payload", IETypeName(e.IEType))
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Expected != 0 || e.Actual != 0 {
		msg += fmt.Sprintf(" (expected %d bytes, got %d)", e.Expected, e.Actual)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e ErrInvalidIEPayload) Kind() Kind {
	return KindInvalidIEPayload
}

func (e ErrInvalidIEPayload) Unwrap() error {
	return e.Err
}

// ErrZeroLengthNotAllowed is returned for an empty IE whose type requires content.
type ErrZeroLengthNotAllowed struct {
	IEType uint16
}

func (e ErrZeroLengthNotAllowed) Error() string {
	return fmt.Sprintf("zero-length %s is not allowed", IETypeName(e.IEType))
}

func (e ErrZeroLengthNotAllowed) Kind() Kind {
	return KindZeroLengthNotAllowed
}

// ErrUnknownMessageType is returned by strict decoders for message types outside the dispatch table.
type ErrUnknownMessageType struct {
	MessageType uint8
}

func (e ErrUnknownMessageType) Error() string {
	return fmt.Sprintf("unknown message type %d", e.MessageType)
}

func (e ErrUnknownMessageType) Kind() Kind {
	return KindUnknownMessageType
}

// ErrBuilderMissingField is returned by Build when a mandatory field was never set.
type ErrBuilderMissingField struct {
	Builder string
	Field   string
}

func (e ErrBuilderMissingField) Error() string {
	return fmt.Sprintf("%s: missing mandatory field %s", e.Builder, e.Field)
}

func (e ErrBuilderMissingField) Kind() Kind {
	return KindBuilderMissingField
}

// ErrBuilderInvalidValue is returned by Build when a set field violates its invariants.
type ErrBuilderInvalidValue struct {
	Builder string
	Field   string
	Reason  string
	Err     error
}

func (e ErrBuilderInvalidValue) Error() string {
	msg := fmt.Sprintf("%s: invalid value for %s", e.Builder, e.Field)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e ErrBuilderInvalidValue) Kind() Kind {
	return KindBuilderInvalidValue
}

func (e ErrBuilderInvalidValue) Unwrap() error {
	return e.Err
}

// ErrEncoding is returned when a value cannot be represented on the wire.
type ErrEncoding struct {
	IEType uint16
	Reason string
}

func (e ErrEncoding) Error() string {
	if e.IEType == 0 {
		return "encoding error: " + e.Reason
	}
	return fmt.Sprintf("encoding error in %s: %s", IETypeName(e.IEType), e.Reason)
}

func (e ErrEncoding) Kind() Kind {
	return KindEncoding
}

// ErrNestingTooDeep is returned when grouped IEs nest beyond the decoder's limit.
type ErrNestingTooDeep struct {
	IEType uint16
	Depth  int
	Limit  int
}

func (e ErrNestingTooDeep) Error() string {
	return fmt.Sprintf("%s nested at depth %d exceeds limit %d", IETypeName(e.IEType), e.Depth, e.Limit)
}

func (e ErrNestingTooDeep) Kind() Kind {
	return KindNestingTooDeep
}
