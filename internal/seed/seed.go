// Package seed holds the compiled-in résumé: the contact header, the fixed
// sections with their entries, and the embedded JSON configuration.
package seed

import (
	_ "embed"
	"fmt"
)

// Version of the résumé data.
const (
	MajorVersion = 1
	MinorVersion = 1
	PatchVersion = 0
)

// Contact is the header printed above every section.
type Contact struct {
	Name   string
	Email  string
	City   string
	State  string
	Mobile string
	WebURL string
}

// Owner is the résumé's subject.
var Owner = Contact{
	Name:   "Adam Rosenberg",
	Email:  "adam@sirspot.com",
	City:   "Orlando",
	State:  "FL",
	WebURL: "http://www.sirspot.com",
}

// Banner returns the version banner, such as "Adam Rosenberg Resume v1.01.00".
func Banner() string {
	return fmt.Sprintf("%s Resume v%d.%02d.%02d", Owner.Name, MajorVersion, MinorVersion, PatchVersion)
}

// Configuration is the embedded JSON section array.
//
//go:embed resume.json
var Configuration []byte
