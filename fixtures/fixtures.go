package fixtures

import (
	_ "embed"
)

var (
	//go:embed calSimple.ics
	CalSimple []byte
	//go:embed calTimezone.ics
	CalTimezone []byte
	//go:embed calHeaderOnly.ics
	CalHeaderOnly []byte
)
