package jsdrv

import (
	"strings"

	"github.com/gopherjs/gopherjs/js"
)

// ConsoleWriter writes log output to the browser console, one console.log
// call per write.
type ConsoleWriter struct{}

func (ConsoleWriter) Write(p []byte) (int, error) {
	console := js.Global.Get("console")
	if console != nil && console != js.Undefined {
		console.Call("log", strings.TrimRight(string(p), "\n"))
	}

	return len(p), nil
}
