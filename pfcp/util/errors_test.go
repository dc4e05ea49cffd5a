/* YaPFCP - Yet another PFCP codec
 *
 * Copyright (C) 2020-2024 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package util_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yapfcp/yapfcp/pfcp/util"
)

func TestStatusCodeMapping(t *testing.T) {
	cases := []struct {
		err  error
		want util.Cause
	}{
		{nil, util.CauseRequestAccepted},
		{util.ErrHeaderInvalid{Reason: "bad version"}, util.CauseRequestRejected},
		{util.ErrTruncated{What: "header", Expected: 8, Actual: 3}, util.CauseInvalidLength},
		{util.ErrEnterpriseHeaderTruncated{IEType: 0x8001, Expected: 4, Actual: 2}, util.CauseInvalidLength},
		{util.ErrMissingMandatoryIE{IEType: 60, MessageType: 5}, util.CauseMandatoryIEMissing},
		{util.ErrInvalidIEPayload{IEType: 21, Reason: "short"}, util.CauseMandatoryIEIncorrect},
		{util.ErrZeroLengthNotAllowed{IEType: 19}, util.CauseInvalidLength},
		{util.ErrUnknownMessageType{MessageType: 99}, util.CauseServiceNotSupported},
		{util.ErrBuilderMissingField{Builder: "CreatePDR", Field: "PDRID"}, util.CauseMandatoryIEMissing},
		{util.ErrBuilderInvalidValue{Builder: "FTEID", Field: "TEID"}, util.CauseMandatoryIEIncorrect},
		{util.ErrEncoding{Reason: "too long"}, util.CauseSystemFailure},
		{util.ErrNestingTooDeep{IEType: 1, Depth: 9, Limit: 8}, util.CauseRequestRejected},
		{errors.New("socket closed"), util.CauseSystemFailure},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, util.StatusCode(c.err), "%v", c.err)
	}
}

func TestStatusCodeIsTotal(t *testing.T) {
	for _, k := range util.Kinds() {
		cause := k.CauseOf()
		assert.False(t, cause.IsAcceptance(), k.String())
		assert.NotContains(t, cause.String(), "Cause(", k.String())
	}
	assert.Len(t, util.Kinds(), 11)
}

func TestStatusCodeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("decoding datagram: %w", util.ErrZeroLengthNotAllowed{IEType: 19})
	assert.Equal(t, util.CauseInvalidLength, util.StatusCode(wrapped))

	kind, ok := util.KindOf(wrapped)
	assert.True(t, ok)
	assert.Equal(t, util.KindZeroLengthNotAllowed, kind)

	_, ok = util.KindOf(errors.New("other"))
	assert.False(t, ok)
}

func TestErrorUnwrap(t *testing.T) {
	err := util.ErrInvalidIEPayload{IEType: 124, Reason: "QFI", Err: util.ErrOutOfRange}
	assert.True(t, errors.Is(err, util.ErrOutOfRange))

	berr := util.ErrBuilderInvalidValue{Builder: "CreateQER", Field: "QFI", Err: err}
	var payloadErr util.ErrInvalidIEPayload
	assert.True(t, errors.As(berr, &payloadErr))
	assert.Equal(t, uint16(124), payloadErr.IEType)
	assert.Equal(t, util.CauseMandatoryIEIncorrect, util.StatusCode(berr))
}

func TestErrorMessagesCarryContext(t *testing.T) {
	err := util.ErrTruncated{IEType: 21, Offset: 12, Expected: 9, Actual: 5}
	assert.Contains(t, err.Error(), "offset 12")
	assert.Contains(t, err.Error(), "need 9")

	missing := util.ErrMissingMandatoryIE{IEType: 96, MessageType: 1}
	assert.Contains(t, missing.Error(), "missing")
	assert.Equal(t, util.KindMissingMandatoryIE, missing.Kind())
}

func TestCauseNames(t *testing.T) {
	assert.Equal(t, "Request accepted", util.CauseRequestAccepted.String())
	assert.Equal(t, "Cause(200)", util.Cause(200).String())
	assert.True(t, util.CauseRequestPartiallyAccepted.IsAcceptance())
	assert.False(t, util.CauseSystemFailure.IsAcceptance())
}
