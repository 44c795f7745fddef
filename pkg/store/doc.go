// Package store provides the persistent key-value tables fontproxy reads and
// mutates: the substitution table (original face name -> target face name)
// and the installed-font table (face name -> font file name).
//
// Nothing is cached. Every Get, Keys, Set and Delete goes to the backend, so
// the backend stays the single source of truth. Three backends exist:
//
//   - memory: insertion-ordered maps, used by tests and dry runs
//   - file: a TOML document on disk, rewritten on every mutation
//   - registry: the Windows registry keys the OS itself reads (windows only)
package store
