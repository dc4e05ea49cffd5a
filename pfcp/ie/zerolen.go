/* YaPFCP - Yet another PFCP codec
 *
 * Copyright (C) 2020-2024 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ie

// Types that may legitimately be sent with an empty payload. An empty Network Instance,
// APN/DNN or Forwarding Policy clears a previous value; an empty Clock Drift Control
// Information or GTP-U Path QoS Control Information stops the corresponding reporting.
var zeroLengthAllowed = map[Type]struct{}{
	TypeNetworkInstance:               {},
	TypeForwardingPolicy:              {},
	TypeAPNDNN:                        {},
	TypeClockDriftControlInformation:  {},
	TypeGTPUPathQoSControlInformation: {},
}

// ZeroLengthAllowed returns whether an IE of type t may have an empty payload.
func ZeroLengthAllowed(t Type) bool {
	_, ok := zeroLengthAllowed[t]
	return ok
}
