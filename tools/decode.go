/* YaPFCP - Yet another PFCP codec
 *
 * Copyright (C) 2020-2024 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tools

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/yapfcp/yapfcp/core"
	"github.com/yapfcp/yapfcp/pfcp/capture"
	"github.com/yapfcp/yapfcp/pfcp/message"
	"github.com/yapfcp/yapfcp/pfcp/util"
)

type Decode struct {
	args []string

	// command line configuration
	config      string
	frames      bool
	fingerprint bool
	profiler    Profiler
}

func RunDecode(args []string) {
	(&Decode{args: args}).run()
}

func (d *Decode) String() string {
	return "Decode"
}

func (d *Decode) usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [options] [hex]...\n", d.args[0])
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "Decodes hex-encoded PFCP datagrams given as arguments, or one per line on stdin.\n")
	fmt.Fprintf(os.Stderr, "With -frames, each input is an Ethernet frame carrying PFCP over UDP.\n")
}

func (d *Decode) run() {
	flagset := flag.NewFlagSet("decode", flag.ExitOnError)
	flagset.Usage = func() {
		d.usage()
		flagset.PrintDefaults()
	}
	flagset.StringVar(&d.config, "config", "", "TOML configuration file")
	flagset.BoolVar(&d.frames, "frames", false, "inputs are Ethernet frames")
	flagset.BoolVar(&d.fingerprint, "fingerprint", false, "print the fingerprint of each message")
	flagset.StringVar(&d.profiler.CPUProfile, "cpuprofile", "", "write a CPU profile to this file")
	flagset.StringVar(&d.profiler.MemProfile, "memprofile", "", "write a heap profile to this file")
	flagset.Parse(d.args[1:])

	if d.config != "" {
		core.LoadConfig(d.config)
	}
	core.InitializeLogger("")
	defer core.ShutdownLogger()

	if err := d.profiler.Start(); err != nil {
		core.LogFatal(d, "Unable to start profiler: ", err)
	}

	inputs := flagset.Args()
	if len(inputs) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if line := scanner.Text(); line != "" {
				inputs = append(inputs, line)
			}
		}
	}

	failed := false
	for _, in := range inputs {
		if err := d.decode(os.Stdout, in); err != nil {
			core.LogError(d, "Unable to decode input: ", err, " (cause ", util.StatusCode(err), ")")
			failed = true
		}
	}
	if err := d.profiler.Stop(); err != nil {
		core.LogError(d, "Unable to write profile: ", err)
	}
	if failed {
		os.Exit(1)
	}
}

func (d *Decode) decode(w io.Writer, in string) error {
	wire, err := decodeHex(in)
	if err != nil {
		return err
	}

	var msgs []message.Message
	if d.frames {
		packet := gopacket.NewPacket(wire, layers.LayerTypeEthernet, gopacket.Default)
		if e := packet.ErrorLayer(); e != nil {
			return e.Error()
		}
		msgs = capture.Messages(packet)
	} else {
		msgs, err = message.NewDecoderFromConfig().DecodeAll(wire)
		if err != nil {
			return err
		}
	}

	for _, m := range msgs {
		if err := DumpMessage(w, m); err != nil {
			return err
		}
		if d.fingerprint {
			fp, err := message.Fingerprint(m)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "  fingerprint %016x\n", fp)
		}
	}
	return nil
}
