/* YaPFCP - Yet another PFCP codec
 *
 * Copyright (C) 2020-2024 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ie

import (
	"errors"

	"github.com/yapfcp/yapfcp/pfcp/util"
)

// DefaultMaxDepth bounds how deeply grouped IEs may nest. Depth 1 is a top-level IE.
const DefaultMaxDepth = 8

// decodeFlat decodes one level of IEs spanning all of b.
func decodeFlat(b []byte) ([]*IE, error) {
	var ies []*IE
	offset := 0
	for offset < len(b) {
		i, n, err := Decode(b[offset:])
		if err != nil {
			var truncated util.ErrTruncated
			if errors.As(err, &truncated) {
				truncated.Offset += offset
				return nil, truncated
			}
			return nil, err
		}
		ies = append(ies, i)
		offset += n
	}
	return ies, nil
}

// ParseMultiIEs decodes a sequence of IEs spanning all of b, expanding grouped IEs
// up to DefaultMaxDepth levels.
func ParseMultiIEs(b []byte) ([]*IE, error) {
	return ParseMultiIEsWithDepth(b, DefaultMaxDepth)
}

// ParseMultiIEsWithDepth decodes a sequence of IEs spanning all of b, expanding
// grouped IEs up to maxDepth levels. Children are expanded from an explicit work
// list, not by recursion.
func ParseMultiIEsWithDepth(b []byte, maxDepth int) ([]*IE, error) {
	if maxDepth < 1 {
		maxDepth = 1
	}
	top, err := decodeFlat(b)
	if err != nil {
		return nil, err
	}

	type pending struct {
		ie    *IE
		depth int
	}
	work := make([]pending, 0, len(top))
	for _, i := range top {
		work = append(work, pending{i, 1})
	}
	for len(work) > 0 {
		p := work[len(work)-1]
		work = work[:len(work)-1]
		if !p.ie.IsGrouped() || len(p.ie.Payload) == 0 {
			continue
		}
		if p.depth >= maxDepth {
			return nil, util.ErrNestingTooDeep{IEType: uint16(p.ie.Type), Depth: p.depth + 1, Limit: maxDepth}
		}
		children, err := decodeFlat(p.ie.Payload)
		if err != nil {
			return nil, err
		}
		p.ie.ChildIEs = children
		p.ie.Payload = nil
		for _, c := range children {
			work = append(work, pending{c, p.depth + 1})
		}
	}
	return top, nil
}

// EncodeMultiIEs concatenates the encodings of ies in order.
func EncodeMultiIEs(ies []*IE) ([]byte, error) {
	n := 0
	for _, i := range ies {
		n += i.MarshalLen()
	}
	b := make([]byte, n)
	offset := 0
	for _, i := range ies {
		m, err := i.MarshalTo(b[offset:])
		if err != nil {
			return nil, err
		}
		offset += m
	}
	return b, nil
}

// Children returns the children of a grouped IE, parsing the payload when the IE
// was built from raw bytes.
func (i *IE) Children() ([]*IE, error) {
	if i.ChildIEs != nil || len(i.Payload) == 0 {
		return i.ChildIEs, nil
	}
	return ParseMultiIEs(i.Payload)
}
