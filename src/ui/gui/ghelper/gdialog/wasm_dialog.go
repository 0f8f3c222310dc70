//go:build js && wasm
// +build js,wasm

package gdialog

import (
	"syscall/js"
)

func ShowError(title string, err error) {
	if err == nil {
		return
	}
	js.Global().Call("alert", title+": "+err.Error())
}
