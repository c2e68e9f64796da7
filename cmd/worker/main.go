// worker evaluates rows for a fractal server over irpc.
// It connects to the server's worker port and serves until either side closes the connection.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"sync/atomic"

	"github.com/marben/irpc"
	"github.com/marben/progressive_fractal/remote"
	"github.com/marben/progressive_fractal/render"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	addr := flag.String("server", "localhost:8081", "address of the server's worker port")
	flag.Parse()

	log.Printf("connecting to %s", *addr)
	tcpConn, err := net.Dial("tcp", *addr)
	if err != nil {
		return err
	}

	// the server calls this service for every row it wants evaluated
	var rows atomic.Int64
	kernel := render.Kernel{OnRow: func(row, state int) { rows.Add(1) }}
	ep := irpc.NewEndpoint(tcpConn, irpc.WithEndpointServices(remote.NewService(kernel)))
	defer ep.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	select {
	case <-ctx.Done():
		log.Printf("interrupted after %d rows", rows.Load())
		return nil
	case <-ep.Context().Done():
	}

	cause := context.Cause(ep.Context())
	log.Printf("connection closed after %d rows: %v", rows.Load(), cause)
	if errors.Is(cause, irpc.ErrEndpointClosedByCounterpart) {
		return nil
	}
	return fmt.Errorf("endpoint: %w", cause)
}
