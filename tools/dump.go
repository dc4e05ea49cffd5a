/* YaPFCP - Yet another PFCP codec
 *
 * Copyright (C) 2020-2024 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tools

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/yapfcp/yapfcp/pfcp/ie"
	"github.com/yapfcp/yapfcp/pfcp/message"
)

// DumpMessage writes the header of m and its IE tree, one IE per line, in the
// order the IEs were received.
func DumpMessage(w io.Writer, m message.Message) error {
	if _, err := fmt.Fprintln(w, m.MessageHeader().String()); err != nil {
		return err
	}
	for _, i := range message.AllIEs(m) {
		if err := dumpIE(w, i, 1); err != nil {
			return err
		}
	}
	return nil
}

func dumpIE(w io.Writer, i *ie.IE, depth int) error {
	indent := strings.Repeat("  ", depth)
	if i.ChildIEs == nil {
		_, err := fmt.Fprintf(w, "%s%s %s\n", indent, i, hex.EncodeToString(i.Payload))
		return err
	}
	if _, err := fmt.Fprintf(w, "%s%s\n", indent, i); err != nil {
		return err
	}
	for _, c := range i.ChildIEs {
		if err := dumpIE(w, c, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// decodeHex accepts hex with optional whitespace and 0x prefix.
func decodeHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	s = strings.Join(strings.Fields(s), "")
	return hex.DecodeString(s)
}
