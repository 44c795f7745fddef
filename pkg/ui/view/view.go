// Package view holds result shapes that exist only for display.
package view

import "github.com/arthur-debert/fontproxy/pkg/store"

// List is a titled list of names
type List struct {
	Title string   `json:"title" yaml:"title"`
	Items []string `json:"items" yaml:"items"`
}

// Table is the content of one store namespace
type Table struct {
	Name    string        `json:"name" yaml:"name"`
	Entries []store.Entry `json:"entries" yaml:"entries"`
}
