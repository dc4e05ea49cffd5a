/* YaPFCP - Yet another PFCP codec
 *
 * Copyright (C) 2020-2024 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package message

import (
	"fmt"
	"slices"
	"strings"

	"github.com/yapfcp/yapfcp/pfcp/ie"
	"github.com/yapfcp/yapfcp/pfcp/util"
)

type fieldError struct {
	field string
	err   error
}

// builder holds the state shared by the message builders: the message under
// construction, the header values and the results of value checks.
type builder struct {
	msg      Message
	seq      uint32
	seid     *uint64
	priority *uint8
	invalid  []fieldError
	counts   map[string]int
}

func newBuilder(m Message, seq uint32, seid *uint64) builder {
	return builder{msg: m, seq: seq, seid: seid}
}

// SetPriority sets the message priority carried in the header.
func (b *builder) SetPriority(p uint8) {
	b.priority = &p
}

// AddIE adds IEs the typed setters do not cover. Each goes to the slot of its
// type, or after the slots when the message has none for it.
func (b *builder) AddIE(ies ...*ie.IE) {
	fields := b.msg.fields()
	for _, i := range ies {
		if i == nil {
			continue
		}
		if _, err := place(fields, b.msg.common(), i); err != nil {
			b.check(i.Type.String(), err)
		}
	}
}

// check records the outcome of a value check for field. A later check of the
// same field replaces the earlier outcome.
func (b *builder) check(field string, err error) {
	for k := range b.invalid {
		if b.invalid[k].field != field {
			continue
		}
		if err == nil {
			b.invalid = append(b.invalid[:k], b.invalid[k+1:]...)
		} else {
			b.invalid[k].err = err
		}
		return
	}
	if err != nil {
		b.invalid = append(b.invalid, fieldError{field: field, err: err})
	}
}

func (b *builder) validate(field string, v ie.Validator) {
	b.check(field, v.Validate())
}

// keep returns a function that records the error of an IE constructor for
// field and passes the IE through.
func (b *builder) keep(field string) func(*ie.IE, error) *ie.IE {
	return func(i *ie.IE, err error) *ie.IE {
		b.check(field, err)
		if err != nil {
			return nil
		}
		return i
	}
}

// indexed names the n-th instance of a repeated field.
func indexed(field string, n int) string {
	return fmt.Sprintf("%s[%d]", field, n)
}

// next names the next instance of a repeated field. Rejected instances count.
func (b *builder) next(field string) string {
	if b.counts == nil {
		b.counts = make(map[string]int)
	}
	n := b.counts[field]
	b.counts[field] = n + 1
	return indexed(field, n)
}

// rejected reports whether a value was given for the slot of type t and failed
// its checks.
func (b *builder) rejected(t ie.Type) bool {
	name := t.String()
	for _, f := range b.invalid {
		if f.field == name || strings.HasPrefix(f.field, name+"[") {
			return true
		}
	}
	return false
}

func (b *builder) name() string {
	return b.msg.MessageType().String()
}

// finish runs the checks of Build and writes the header. A mandatory slot
// whose value was rejected counts as set, so it reports the rejection.
func (b *builder) finish() error {
	for _, f := range b.msg.fields() {
		if f.required() && f.empty() && !b.rejected(f.t) {
			return util.ErrBuilderMissingField{Builder: b.name(), Field: f.t.String()}
		}
	}
	if len(b.invalid) > 0 {
		return util.ErrBuilderInvalidValue{Builder: b.name(), Field: b.invalid[0].field, Reason: "invalid value", Err: b.invalid[0].err}
	}
	if b.seq > MaxSequenceNumber {
		return util.ErrBuilderInvalidValue{
			Builder: b.name(),
			Field:   "SequenceNumber",
			Reason:  fmt.Sprintf("%d exceeds %d", b.seq, MaxSequenceNumber),
			Err:     util.ErrOutOfRange,
		}
	}
	if b.priority != nil && *b.priority > MaxPriority {
		return util.ErrBuilderInvalidValue{
			Builder: b.name(),
			Field:   "Priority",
			Reason:  fmt.Sprintf("%d exceeds %d", *b.priority, MaxPriority),
			Err:     util.ErrOutOfRange,
		}
	}

	h := b.msg.MessageHeader()
	*h = Header{
		Version:        Version,
		Type:           b.msg.MessageType(),
		SequenceNumber: b.seq,
	}
	if b.priority != nil {
		p := *b.priority
		h.Priority = &p
	}
	if b.seid != nil {
		seid := *b.seid
		h.SEID = &seid
	}
	return nil
}

// detach gives the list slots and Extra of m their own backing arrays, so the
// builder can keep appending without touching a message it already returned.
func detach(m Message) {
	for _, f := range m.fields() {
		if f.many != nil {
			*f.many = slices.Clone(*f.many)
		}
	}
	b := m.common()
	b.Extra = slices.Clone(b.Extra)
}
