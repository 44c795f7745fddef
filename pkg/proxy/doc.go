// Package proxy changes which font file or face the operating system serves
// for a face name, and reports the state a face is in.
//
// Three mutations are offered. Redirect adds or removes an entry in the
// substitution table, so requests for one face are answered by another.
// Replace points an installed face at a different file, copying outside
// files into the font directory under a marked name. Install registers a
// font file that the system does not know yet.
//
// Every mutation is idempotent: no-op conditions such as deleting an absent
// substitution or installing an already present file succeed silently. After
// a mutation completes the configured reboot.Rebooter is invoked.
//
// GetFontStatus classifies a face as Redirected, Replaced, Original or
// Unknown from the two tables alone.
package proxy
