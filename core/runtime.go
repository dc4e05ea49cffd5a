/* YaPFCP - Yet another PFCP codec
 *
 * Copyright (C) 2020-2024 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package core

// Version of YaPFCP.
var Version string

// BuildTime contains the timestamp of when the version of YaPFCP was built.
var BuildTime string

// ProtocolVersion is the PFCP version carried in every header this module writes.
const ProtocolVersion = 1

// PFCPPort is the UDP port registered for PFCP.
const PFCPPort = 8805
