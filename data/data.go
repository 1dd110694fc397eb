// Package data holds the static read-only tables shipped with the binary.
package data

import (
	_ "embed"
	"encoding/json"
)

//go:embed quotes.json
var quotesJSON []byte

var quotes []string

func init() {
	if err := json.Unmarshal(quotesJSON, &quotes); err != nil {
		panic("data: invalid quotes.json: " + err.Error())
	}
}

// Quotes returns the motivational quote table.
func Quotes() []string {
	return quotes
}
