//go:build js && wasm

package main

import (
	"image"
	"image/draw"
	"syscall/js"
)

// canvas is the page's drawing surface.
type canvas struct {
	el  js.Value
	ctx js.Value
}

func findCanvas(id string) canvas {
	el := js.Global().Get("document").Call("getElementById", id)
	return canvas{el: el, ctx: el.Call("getContext", "2d")}
}

// resize sets the canvas to w×h and clears it to background.
func (cv canvas) resize(w, h int, background string) {
	cv.el.Set("width", w)
	cv.el.Set("height", h)
	cv.ctx.Set("fillStyle", background)
	cv.ctx.Call("fillRect", 0, 0, w, h)
}

// paint copies img's pixels into the canvas at the origin.
// ImageData wants tightly packed RGBA, which toRGBA guarantees.
func (cv canvas) paint(img *image.RGBA) {
	data := js.Global().Get("Uint8ClampedArray").New(len(img.Pix))
	js.CopyBytesToJS(data, img.Pix)
	imageData := js.Global().Get("ImageData").New(data, img.Rect.Dx(), img.Rect.Dy())
	cv.ctx.Call("putImageData", imageData, 0, 0)
}

// toRGBA returns img as a tightly packed *image.RGBA anchored at the origin.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) && rgba.Stride == 4*rgba.Rect.Dx() {
		return rgba
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
