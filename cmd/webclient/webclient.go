//go:build js && wasm

// webclient.go is a WASM viewer for the fractal server.
// It connects to the server's websocket, paints every frame it receives and shows render progress.

package main

import (
	"context"
	"fmt"
	"log"
	"syscall/js"

	"github.com/coder/websocket"
	"github.com/marben/progressive_fractal/internal/stream"
)

// main is the entry point for the WASM web client.
func main() {
	logScreenf("Starting WASM web client...")

	// Step 1: Determine server address for WebSocket connection
	loc := js.Global().Get("window").Get("location")
	host := loc.Get("host").String()
	proto := "ws"
	if loc.Get("protocol").String() == "https:" {
		proto = "wss"
	}
	websocketUrl := proto + "://" + host + "/ws"

	// Step 2: Connect to server via WebSocket
	logScreenf("Connecting to fractal server at %s...", websocketUrl)
	ctx := context.Background()
	c, _, err := websocket.Dial(ctx, websocketUrl, nil)
	if err != nil {
		logFatalf("websocket.Dial: %v", err)
	}
	defer c.CloseNow()
	c.SetReadLimit(64 << 20)
	logScreenf("WebSocket connected.")

	// Step 3: Paint frames as they arrive
	if err := framesLoop(ctx, c); err != nil {
		logFatalf("framesLoop: %v", err)
	}
}

// logScreenf appends a formatted message to the log element in the DOM,
func logScreenf(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)

	doc := js.Global().Get("document")
	logElem := doc.Call("getElementById", "log")
	logElem.Set("textContent", logElem.Get("textContent").String()+msg+"\n")
}

// logFatalf logs a fatal error to the log window and terminates the program.
func logFatalf(format string, a ...any) {
	logScreenf("FATAL: "+format, a...)
	log.Fatalf(format, a...)
}

// framesLoop reads frames until the server closes the connection.
// The canvas is resized whenever the frame size changes.
func framesLoop(ctx context.Context, c *websocket.Conn) error {
	cv := findCanvas("myCanvas")
	var w, h int
	for {
		hdr, img, err := stream.ReadFrame(ctx, c)
		if err != nil {
			if websocket.CloseStatus(err) == websocket.StatusNormalClosure {
				return nil
			}
			return err
		}
		if hdr.Width != w || hdr.Height != h {
			w, h = hdr.Width, hdr.Height
			cv.resize(w, h, "#3a3a6e")
			logScreenf("Canvas initialized to dimensions %dx%d", w, h)
		}
		cv.paint(toRGBA(img))

		hudSetProgress(hdr.Progress)
		switch {
		case hdr.Cancelled:
			hudSetState("cancelled")
		case hdr.Final:
			hudSetState("done")
		default:
			hudSetState("rendering")
		}
	}
}

// hudSetProgress updates the HUD with the completed fraction of the render.
func hudSetProgress(p float64) {
	js.Global().Get("document").Call("getElementById", "progress").Set("textContent", fmt.Sprintf("%.0f%%", p*100))
}

// hudSetState updates the HUD with the render state.
func hudSetState(state string) {
	js.Global().Get("document").Call("getElementById", "state").Set("textContent", state)
}
