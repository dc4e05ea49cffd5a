/* YaPFCP - Yet another PFCP codec
 *
 * Copyright (C) 2020-2024 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ie

// removeRules maps each Remove IE to the rule ID IE it carries.
var removeRules = map[Type]Type{
	TypeRemovePDR:             TypePDRID,
	TypeRemoveFAR:             TypeFARID,
	TypeRemoveURR:             TypeURRID,
	TypeRemoveQER:             TypeQERID,
	TypeRemoveBAR:             TypeBARID,
	TypeRemoveTrafficEndpoint: TypeTrafficEndpointID,
	TypeRemoveMAR:             TypeMARID,
	TypeRemoveSRR:             TypeSRRID,
}

func NewRemovePDR(id uint16) *IE {
	return NewGrouped(TypeRemovePDR, NewPDRID(id))
}

func NewRemoveFAR(id uint32) *IE {
	return NewGrouped(TypeRemoveFAR, NewFARID(id))
}

func NewRemoveURR(id uint32) *IE {
	return NewGrouped(TypeRemoveURR, NewURRID(id))
}

func NewRemoveQER(id uint32) *IE {
	return NewGrouped(TypeRemoveQER, NewQERID(id))
}

func NewRemoveBAR(id uint8) *IE {
	return NewGrouped(TypeRemoveBAR, NewBARID(id))
}

func NewRemoveTrafficEndpoint(id uint8) *IE {
	return NewGrouped(TypeRemoveTrafficEndpoint, NewTrafficEndpointID(id))
}

func NewRemoveMAR(id uint16) *IE {
	return NewGrouped(TypeRemoveMAR, NewMARID(id))
}

func NewRemoveSRR(id uint8) *IE {
	return NewGrouped(TypeRemoveSRR, NewSRRID(id))
}

// RemovedRuleID returns the rule ID carried by any Remove IE, widened to 32 bits.
func (i *IE) RemovedRuleID() (uint32, error) {
	if i == nil {
		return 0, i.expect(TypeRemovePDR)
	}
	idType, ok := removeRules[i.Type]
	if !ok {
		return 0, i.expect(TypeRemovePDR)
	}
	g, err := openGroup(i, i.Type)
	if err != nil {
		return 0, err
	}
	id, err := g.mandatory(idType)
	if err != nil {
		return 0, err
	}
	n := len(id.Payload)
	if n < 1 || n > 4 {
		return 0, invalid(idType, "rule ID of %d bytes", n)
	}
	want := map[Type]int{TypePDRID: 2, TypeMARID: 2, TypeBARID: 1, TypeSRRID: 1, TypeTrafficEndpointID: 1}[idType]
	if want == 0 {
		want = 4
	}
	if n < want {
		return 0, tooShort(idType, want, n)
	}
	return uintN[uint32](id.Payload, want), nil
}
