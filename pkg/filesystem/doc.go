// Package filesystem provides the filesystem collaborator used by fontproxy.
//
// Both implementations are backed by afero: NewOS operates on the real disk
// while NewMemory keeps everything in memory for tests and dry runs.
package filesystem
