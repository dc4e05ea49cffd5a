/* YaPFCP - Yet another PFCP codec
 *
 * Copyright (C) 2020-2024 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package message

import (
	"encoding/binary"

	"github.com/cespare/xxhash"
	"github.com/yapfcp/yapfcp/pfcp/ie"
)

// Fingerprint hashes the message type, SEID and encoded IEs of m. The sequence
// number, priority and FO flag do not contribute, so a retransmission has the
// same fingerprint as the first transmission.
func Fingerprint(m Message) (uint64, error) {
	body, err := ie.EncodeMultiIEs(collect(m))
	if err != nil {
		return 0, err
	}
	wire := make([]byte, 10, 10+len(body))
	wire[0] = uint8(m.MessageType())
	if seid := m.MessageHeader().SEID; seid != nil {
		wire[1] = 1
		binary.BigEndian.PutUint64(wire[2:10], *seid)
	}
	wire = append(wire, body...)
	return xxhash.Sum64(wire), nil
}
