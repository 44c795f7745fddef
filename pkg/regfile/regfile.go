// Package regfile writes the font tables as a Windows .reg file, so tables
// kept by the file backend can be imported with regedit later.
package regfile

import (
	"bufio"
	"io"
	"strings"

	"github.com/arthur-debert/fontproxy/pkg/store"
)

// .reg text tokens
const (
	Header     = "Windows Registry Editor Version 5.00"
	RootKey    = "HKEY_LOCAL_MACHINE"
	CRLF       = "\r\n"
	quote      = `"`
	assignment = "="
)

var escaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// Escape quotes a value name or string value
func Escape(s string) string {
	return quote + escaper.Replace(s) + quote
}

// KeyLine returns the bracketed key line of a namespace
func KeyLine(ns store.Namespace) string {
	return "[" + RootKey + `\` + ns.KeyPath() + "]"
}

// Write exports both tables of s in store enumeration order.
func Write(w io.Writer, s store.Store) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(Header + CRLF + CRLF); err != nil {
		return err
	}

	for _, ns := range store.Namespaces {
		entries, err := store.Snapshot(s.Table(ns))
		if err != nil {
			return err
		}
		if _, err := bw.WriteString(KeyLine(ns) + CRLF); err != nil {
			return err
		}
		for _, e := range entries {
			if _, err := bw.WriteString(Escape(e.Key) + assignment + Escape(e.Value) + CRLF); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString(CRLF); err != nil {
			return err
		}
	}
	return bw.Flush()
}
