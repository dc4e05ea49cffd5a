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

// Validator is implemented by IE value types that have range or consistency rules.
type Validator interface {
	Validate() error
}

// ValidateField runs v's checks on behalf of a builder, wrapping failures as
// ErrBuilderInvalidValue.
func ValidateField(builder string, field string, v Validator) error {
	if err := v.Validate(); err != nil {
		return util.ErrBuilderInvalidValue{Builder: builder, Field: field, Reason: "invalid value", Err: err}
	}
	return nil
}

// group reads the children of a grouped IE by type.
type group struct {
	parent   Type
	children []*IE
}

func openGroup(i *IE, t Type) (*group, error) {
	if err := i.expect(t); err != nil {
		return nil, err
	}
	children, err := i.Children()
	if err != nil {
		return nil, err
	}
	return &group{parent: i.Type, children: children}, nil
}

// one returns the only child of type t, or nil. A second child of a
// non-repeatable type is an error.
func (g *group) one(t Type) (*IE, error) {
	var found *IE
	for _, c := range g.children {
		if c.Type != t {
			continue
		}
		if found != nil {
			return nil, util.ErrInvalidIEPayload{IEType: uint16(t), Reason: "duplicate", Err: util.ErrDuplicate}
		}
		found = c
	}
	return found, nil
}

func (g *group) all(t Type) []*IE {
	var out []*IE
	for _, c := range g.children {
		if c.Type == t {
			out = append(out, c)
		}
	}
	return out
}

func (g *group) missing(t Type) error {
	return util.ErrMissingMandatoryIE{IEType: uint16(t), ParentIE: uint16(g.parent)}
}

func (g *group) mandatory(t Type) (*IE, error) {
	c, err := g.one(t)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, g.missing(t)
	}
	return c, nil
}

// optional decodes the child of type t with get when it is present.
func optional[T any](g *group, t Type, get func(*IE) (T, error)) (*T, error) {
	c, err := g.one(t)
	if err != nil || c == nil {
		return nil, err
	}
	v, err := get(c)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func required[T any](g *group, t Type, get func(*IE) (T, error)) (T, error) {
	var zero T
	c, err := g.mandatory(t)
	if err != nil {
		return zero, err
	}
	return get(c)
}

func repeated[T any](g *group, t Type, get func(*IE) (T, error)) ([]T, error) {
	var out []T
	for _, c := range g.all(t) {
		v, err := get(c)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// builder accumulates the children of a grouped IE under construction.
type builder struct {
	children []*IE
}

func (b *builder) add(children ...*IE) {
	for _, c := range children {
		if c != nil {
			b.children = append(b.children, c)
		}
	}
}

func (b *builder) build(t Type) *IE {
	return NewGrouped(t, b.children...)
}

func addOptional[T any](b *builder, v *T, enc func(T) *IE) {
	if v != nil {
		b.add(enc(*v))
	}
}

func addRepeated[T any](b *builder, vs []T, enc func(T) *IE) {
	for _, v := range vs {
		b.add(enc(v))
	}
}

// checked encodes v with enc once v passes Validate.
func checked(v Validator, enc func() *IE) (*IE, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return enc(), nil
}

// mustIE drops the error of a constructor whose input was validated beforehand.
// Only encoders reached through checked may use it.
func mustIE(i *IE, _ error) *IE {
	return i
}
