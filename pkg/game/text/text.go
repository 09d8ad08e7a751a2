// Package text holds the player-facing strings of the orientation.
package text

import (
	_ "embed"

	"github.com/leonelquinteros/gotext"
)

//go:embed en.po
var enPO []byte

var catalog = load(enPO)

// dynamicGet is used for runtime translation key lookups.
// Keys are data, not format strings, so lookups go through a variable.
var dynamicGet = func(key string, vars ...interface{}) string {
	return catalog.Get(key, vars...)
}

func load(data []byte) *gotext.Po {
	po := gotext.NewPo()
	po.Parse(data)
	return po
}

// T translates key. Unknown keys are returned unchanged.
func T(key string) string {
	return dynamicGet(key)
}

// Tf translates key and formats the result with vars
func Tf(key string, vars ...interface{}) string {
	return dynamicGet(key, vars...)
}
