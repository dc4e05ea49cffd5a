/* YaPFCP - Yet another PFCP codec
 *
 * Copyright (C) 2020-2024 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package message_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yapfcp/yapfcp/core"
	"github.com/yapfcp/yapfcp/pfcp/ie"
	"github.com/yapfcp/yapfcp/pfcp/message"
	"github.com/yapfcp/yapfcp/pfcp/util"
)

func TestDecoderFromConfig(t *testing.T) {
	core.ResetConfig()
	d := message.NewDecoderFromConfig()
	assert.Equal(t, ie.DefaultMaxDepth, d.MaxDepth)
	assert.False(t, d.RejectUnknownMessages)

	defer core.ResetConfig()
	require.NoError(t, core.ParseConfig(`
[codec]
max_depth = 3
reject_unknown_messages = true
`))
	d = message.NewDecoderFromConfig()
	assert.Equal(t, 3, d.MaxDepth)
	assert.True(t, d.RejectUnknownMessages)
	assert.Equal(t, "Decoder", d.String())
}

func TestCodecCounters(t *testing.T) {
	decoded := testutil.ToFloat64(message.DecodedCounter(message.TypeHeartbeatRequest))
	encoded := testutil.ToFloat64(message.EncodedCounter(message.TypeHeartbeatRequest))
	truncated := testutil.ToFloat64(message.DecodeErrorCounter(util.KindTruncated))

	m, err := message.Decode(heartbeatWire)
	require.NoError(t, err)
	_, err = message.Encode(m)
	require.NoError(t, err)
	_, err = message.Decode(heartbeatWire[:3])
	require.Error(t, err)

	assert.Equal(t, decoded+1, testutil.ToFloat64(message.DecodedCounter(message.TypeHeartbeatRequest)))
	assert.Equal(t, encoded+1, testutil.ToFloat64(message.EncodedCounter(message.TypeHeartbeatRequest)))
	assert.Equal(t, truncated+1, testutil.ToFloat64(message.DecodeErrorCounter(util.KindTruncated)))
}
