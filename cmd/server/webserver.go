package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/coder/websocket"
	"github.com/marben/progressive_fractal/internal/config"
	"github.com/marben/progressive_fractal/internal/stream"
	xdraw "golang.org/x/image/draw"
)

const writeTimeout = 10 * time.Second

// webServer serves the viewer from staticDir, the websocket frame stream
// and the render controls.
func webServer(port int, staticDir string, rs *renderSession, previewWidth int) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ws", websocketHandler(rs, previewWidth))
	mux.HandleFunc("GET /image.png", imageHandler(rs))
	mux.HandleFunc("POST /cancel", cancelHandler(rs))
	mux.HandleFunc("POST /rerender", rerenderHandler(rs))
	mux.HandleFunc("POST /recolor", recolorHandler(rs))
	mux.Handle("/", http.FileServer(http.Dir(staticDir)))

	log.Printf("listening on http://localhost:%d", port)
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// websocketHandler streams every update of the session to one viewer
// until the viewer goes away.
func websocketHandler(rs *renderSession, previewWidth int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"}, // TODO: tighten in prod
		})
		if err != nil {
			log.Println(err)
			return
		}
		defer c.CloseNow()

		// viewers never send; CloseRead handles control frames and tells us when they leave
		ctx := c.CloseRead(r.Context())
		updates, unsubscribe := rs.subscribe()
		defer unsubscribe()

		for {
			select {
			case <-ctx.Done():
				return
			case u := <-updates:
				if err := writeUpdate(ctx, c, u, previewWidth); err != nil {
					log.Printf("ws %s: %v", r.RemoteAddr, err)
					return
				}
			}
		}
	}
}

func writeUpdate(ctx context.Context, c *websocket.Conn, u update, previewWidth int) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	hdr := stream.Header{
		Progress:  u.Frame.Progress,
		Final:     u.Frame.Final,
		Cancelled: u.Cancelled,
	}
	return stream.WriteFrame(ctx, c, hdr, preview(u.Frame.Image, previewWidth))
}

// preview scales img down to at most width pixels wide, keeping the aspect ratio.
func preview(img *image.RGBA, width int) image.Image {
	b := img.Bounds()
	if width <= 0 || b.Dx() <= width {
		return img
	}
	h := max(1, b.Dy()*width/b.Dx())
	dst := image.NewRGBA(image.Rect(0, 0, width, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

func imageHandler(rs *renderSession) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u := rs.snapshot()
		w.Header().Set("Content-Type", "image/png")
		if err := png.Encode(w, u.Frame.Image); err != nil {
			log.Printf("image.png: %v", err)
		}
	}
}

func cancelHandler(rs *renderSession) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !rs.cancel() {
			http.Error(w, "no render running", http.StatusConflict)
			return
		}
		w.WriteHeader(http.StatusAccepted)
	}
}

func rerenderHandler(rs *renderSession) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// the render outlives the request
		if err := rs.start(context.Background()); err != nil {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		w.WriteHeader(http.StatusAccepted)
	}
}

// recolorHandler accepts ?palette=<stops|hue>&hue=<degrees>.
func recolorHandler(rs *renderSession) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		palette := r.FormValue("palette")
		if palette == "" {
			palette = "hue"
		}
		var hue float64
		if s := r.FormValue("hue"); s != "" {
			var err error
			if hue, err = strconv.ParseFloat(s, 64); err != nil {
				http.Error(w, "hue: "+err.Error(), http.StatusBadRequest)
				return
			}
		}
		mapper, err := config.NewMapper(palette, hue)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := rs.recolor(mapper); err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, errBusy) {
				status = http.StatusConflict
			}
			http.Error(w, err.Error(), status)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
