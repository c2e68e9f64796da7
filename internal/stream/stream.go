// Package stream is the websocket framing between the server and its viewers.
//
// Every frame travels as two messages: a JSON Header (text) followed by
// the PNG encoded image (binary).
package stream

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

type Header struct {
	Progress  float64 `json:"progress"`
	Final     bool    `json:"final"`
	Cancelled bool    `json:"cancelled"`
	Width     int     `json:"width"`
	Height    int     `json:"height"`
}

// WriteFrame sends hdr and img. Width and Height are taken from img.
func WriteFrame(ctx context.Context, c *websocket.Conn, hdr Header, img image.Image) error {
	hdr.Width, hdr.Height = img.Bounds().Dx(), img.Bounds().Dy()
	if err := wsjson.Write(ctx, c, hdr); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}
	if err := c.Write(ctx, websocket.MessageBinary, buf.Bytes()); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// ReadFrame receives one header and image pair.
func ReadFrame(ctx context.Context, c *websocket.Conn) (Header, image.Image, error) {
	var hdr Header
	if err := wsjson.Read(ctx, c, &hdr); err != nil {
		return hdr, nil, fmt.Errorf("read header: %w", err)
	}
	typ, data, err := c.Read(ctx)
	if err != nil {
		return hdr, nil, fmt.Errorf("read frame: %w", err)
	}
	if typ != websocket.MessageBinary {
		return hdr, nil, fmt.Errorf("read frame: got %v message, want binary", typ)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return hdr, nil, fmt.Errorf("decode frame: %w", err)
	}
	return hdr, img, nil
}
