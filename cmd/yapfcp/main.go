/* YaPFCP - Yet another PFCP codec
 *
 * Copyright (C) 2020-2024 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package main

import (
	"fmt"
	"os"

	"github.com/yapfcp/yapfcp/cmd"
	"github.com/yapfcp/yapfcp/core"
	"github.com/yapfcp/yapfcp/tools"
)

// Version of YaPFCP.
var Version string

// BuildTime contains the timestamp of when the version of YaPFCP was built.
var BuildTime string

func printVersion([]string) {
	fmt.Println("YaPFCP: Yet another PFCP codec")
	fmt.Println("Version " + core.Version + " (Built " + core.BuildTime + ")")
	fmt.Println("Released under the terms of the MIT License")
}

func main() {
	core.Version = Version
	core.BuildTime = BuildTime

	tree := cmd.CmdTree{
		Name: "yapfcp",
		Help: "PFCP message codec tools",
		Sub: []*cmd.CmdTree{{
			Name: "decode",
			Help: "Decode hex-encoded PFCP datagrams or Ethernet frames",
			Fun:  tools.RunDecode,
		}, {
			Name: "heartbeat",
			Help: "Print a hex-encoded Heartbeat Request",
			Fun:  tools.RunHeartbeat,
		}, {
			// separator
		}, {
			Name: "version",
			Help: "Print version and exit",
			Fun:  printVersion,
		}},
	}

	args := os.Args
	args[0] = tree.Name
	tree.Execute(args)
}
