package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/marben/irpc"
	fractal "github.com/marben/progressive_fractal"
	"github.com/marben/progressive_fractal/internal/config"
	"github.com/marben/progressive_fractal/remote"
	"github.com/marben/progressive_fractal/render"
)

// main is the entry point for the fractal server.
// It renders one window progressively and streams the frames to web viewers.
func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	cfg := config.Register(flag.CommandLine)
	port := flag.Int("port", 8080, "http port")
	static := flag.String("static", "./static", "directory with the web viewer")
	previewWidth := flag.Int("preview", 1024, "maximum width of streamed frames (0: full size)")
	workersAddr := flag.String("workers", "", "tcp address to accept irpc workers on, e.g. :8081 (empty: render locally)")
	flag.Parse()

	fractal.SetLogger(slog.Default())

	win, err := cfg.Window()
	if err != nil {
		return fmt.Errorf("window: %w", err)
	}
	params, err := cfg.Params()
	if err != nil {
		return fmt.Errorf("params: %w", err)
	}
	mapper, err := cfg.Mapper()
	if err != nil {
		return err
	}
	if err := mapper.Validate(params); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// renderSession keeps the result grid, so cancelled renders can be resumed
	// and finished ones recoloured without recomputation
	var kernel fractal.IterationKernel = render.Kernel{}
	if *workersAddr != "" {
		// rows go to connected workers; the local kernel takes over while none is connected
		pool := &remote.Pool{Fallback: render.Kernel{}}
		irpcServer, err := serveWorkers(*workersAddr, pool)
		if err != nil {
			return err
		}
		defer irpcServer.Close()
		kernel = pool
	}
	sched := fractal.Scheduler{Kernel: kernel, Mapper: mapper}
	rs := newRenderSession(sched, win, params)
	if err := rs.start(ctx); err != nil {
		return err
	}

	httpServer := webServer(*port, *static, rs, *previewWidth)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("httpServer shutdown: %v", err)
		}
	}()

	log.Printf("rendering %dx%d of %+v", win.W, win.H, win.Region)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("httpServer: %w", err)
	}
	return nil
}

// serveWorkers accepts workers on addr and adds each to pool for as long as it stays connected.
func serveWorkers(addr string, pool *remote.Pool) (*irpc.Server, error) {
	irpcServer := irpc.NewServer(irpc.WithOnConnect(func(ep *irpc.Endpoint) {
		log.Printf("worker connected: %s", ep.RemoteAddr())
		client, err := remote.NewRowEvaluatorIrpcClient(ep)
		if err != nil {
			log.Printf("err: new RowEvaluator client: %v", err)
			ep.Close()
			return
		}
		remove := pool.Add(client)
		go func() {
			<-ep.Context().Done()
			remove()
			log.Printf("worker %s left: %v", ep.RemoteAddr(), context.Cause(ep.Context()))
		}()
	}))

	log.Printf("tcp listening for workers on %s", addr)
	tcpListener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("net.Listen: %w", err)
	}
	go func() {
		if err := irpcServer.Serve(tcpListener); err != nil && !errors.Is(err, irpc.ErrServerClosed) {
			log.Printf("irpcServer.Serve: %v", err)
		}
	}()
	return irpcServer, nil
}
