/* YaPFCP - Yet another PFCP codec
 *
 * Copyright (C) 2020-2024 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package message

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/yapfcp/yapfcp/pfcp/util"
)

const (
	MessagesDecodedN = "pfcp_messages_decoded_total"
	MessagesDecodedH = "The total number of PFCP messages decoded, by message type"
	MessagesEncodedN = "pfcp_messages_encoded_total"
	MessagesEncodedH = "The total number of PFCP messages encoded, by message type"
	DecodeErrorsN    = "pfcp_decode_errors_total"
	DecodeErrorsH    = "The total number of PFCP messages rejected by the decoder, by error kind"
)

// foreignKind labels errors outside the codec's own taxonomy.
const foreignKind = "foreign"

type codecMetrics struct {
	decoded      *prometheus.CounterVec
	encoded      *prometheus.CounterVec
	decodeErrors *prometheus.CounterVec
}

func newCodecMetrics() *codecMetrics {
	return &codecMetrics{
		decoded: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: MessagesDecodedN,
			Help: MessagesDecodedH,
		}, []string{"type"}),
		encoded: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: MessagesEncodedN,
			Help: MessagesEncodedH,
		}, []string{"type"}),
		decodeErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: DecodeErrorsN,
			Help: DecodeErrorsH,
		}, []string{"kind"}),
	}
}

var metrics = newCodecMetrics()

func (c *codecMetrics) messageDecoded(t Type) {
	c.decoded.WithLabelValues(t.String()).Inc()
}

func (c *codecMetrics) messageEncoded(t Type) {
	c.encoded.WithLabelValues(t.String()).Inc()
}

func (c *codecMetrics) decodeFailed(err error) {
	kind := foreignKind
	if k, ok := util.KindOf(err); ok {
		kind = k.String()
	}
	c.decodeErrors.WithLabelValues(kind).Inc()
}

// DecodedCounter returns the decoded-message counter for t.
func DecodedCounter(t Type) prometheus.Counter {
	return metrics.decoded.WithLabelValues(t.String())
}

// EncodedCounter returns the encoded-message counter for t.
func EncodedCounter(t Type) prometheus.Counter {
	return metrics.encoded.WithLabelValues(t.String())
}

// DecodeErrorCounter returns the decode failure counter for kind.
func DecodeErrorCounter(kind util.Kind) prometheus.Counter {
	return metrics.decodeErrors.WithLabelValues(kind.String())
}
