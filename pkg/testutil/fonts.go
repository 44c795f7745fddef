package testutil

import (
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// Family names declared by the embedded Go fonts
const (
	RegularFamily = "Go"
	MonoFamily    = "Go Mono"
)

// Font bytes with a known family name
var (
	RegularTTF = goregular.TTF
	MonoTTF    = gomono.TTF
)

// GarbageTTF has a font extension's worth of bytes that no parser accepts
var GarbageTTF = []byte("not a font")
