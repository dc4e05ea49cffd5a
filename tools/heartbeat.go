/* YaPFCP - Yet another PFCP codec
 *
 * Copyright (C) 2020-2024 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tools

import (
	"encoding/hex"
	"flag"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/yapfcp/yapfcp/pfcp/ie"
	"github.com/yapfcp/yapfcp/pfcp/message"
)

type Heartbeat struct {
	args []string

	// command line configuration
	seq      uint
	priority int
	source   string
	response bool
}

func RunHeartbeat(args []string) {
	(&Heartbeat{args: args}).run()
}

func (h *Heartbeat) usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", h.args[0])
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "Prints a hex-encoded Heartbeat Request stamped with the current time.\n")
}

func (h *Heartbeat) run() {
	flagset := flag.NewFlagSet("heartbeat", flag.ExitOnError)
	flagset.Usage = func() {
		h.usage()
		flagset.PrintDefaults()
	}
	flagset.UintVar(&h.seq, "s", 1, "sequence number")
	flagset.IntVar(&h.priority, "p", -1, "message priority, none if negative")
	flagset.StringVar(&h.source, "source", "", "source IP address to include")
	flagset.BoolVar(&h.response, "response", false, "build a Heartbeat Response instead")
	flagset.Parse(h.args[1:])

	wire, err := h.build(time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to build heartbeat: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(hex.EncodeToString(wire))
}

func (h *Heartbeat) build(now time.Time) ([]byte, error) {
	if h.response {
		b := message.NewHeartbeatResponseBuilder(uint32(h.seq)).RecoveryTimeStamp(now)
		if h.priority >= 0 {
			b.SetPriority(uint8(h.priority))
		}
		m, err := b.Build()
		if err != nil {
			return nil, err
		}
		return message.Encode(m)
	}

	b := message.NewHeartbeatRequestBuilder(uint32(h.seq)).RecoveryTimeStamp(now)
	if h.source != "" {
		ip := net.ParseIP(h.source)
		if ip == nil {
			return nil, fmt.Errorf("invalid source address %q", h.source)
		}
		if v4 := ip.To4(); v4 != nil {
			b.SourceIPAddress(ie.IPAddress{IPv4: v4})
		} else {
			b.SourceIPAddress(ie.IPAddress{IPv6: ip})
		}
	}
	if h.priority >= 0 {
		b.SetPriority(uint8(h.priority))
	}
	m, err := b.Build()
	if err != nil {
		return nil, err
	}
	return message.Encode(m)
}
