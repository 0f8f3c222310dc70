//go:build !js && !wasm
// +build !js,!wasm

package gdialog

import (
	"github.com/sqweek/dialog"
)

// ShowError pops a native error box, used when the window cannot start
func ShowError(title string, err error) {
	if err == nil {
		return
	}
	dialog.Message("%v", err).Title(title).Error()
}
