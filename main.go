package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jasonrohrer/Chessamphetamine-sub000/internal/config"
	"github.com/jasonrohrer/Chessamphetamine-sub000/internal/console"
	"github.com/jasonrohrer/Chessamphetamine-sub000/internal/device"
	"github.com/jasonrohrer/Chessamphetamine-sub000/internal/hub"
	"github.com/jasonrohrer/Chessamphetamine-sub000/internal/input"
	"github.com/jasonrohrer/Chessamphetamine-sub000/internal/platform"
	"github.com/jasonrohrer/Chessamphetamine-sub000/internal/server"
	"github.com/jasonrohrer/Chessamphetamine-sub000/internal/tray"
)

// Demo action set. A real game defines its own handles; these exist so the
// daemon has something to resolve and the overlay something to show.
const (
	actJump = iota
	actFire
	actPause
	actAnyKey
)

const (
	stickMoveX = iota
	stickMoveY
	stickAimX
)

// Cross-platform signal handling: use os.Interrupt on all platforms
// On Windows: os.Interrupt is sent when Ctrl+C is pressed
// On Unix: os.Interrupt is equivalent to syscall.SIGINT
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

func registerDemoActions(l *platform.Loop) {
	l.Bindings.RegisterButton(actJump, input.KeySpace, input.KeyW, input.PadA)
	l.Bindings.RegisterButton(actFire, input.MouseLeft, input.PadRightTrigger, input.PadX)
	l.Bindings.RegisterButton(actPause, input.KeyEscape, input.PadStart)
	l.Bindings.RegisterButton(actAnyKey, input.ButtonAny)

	l.Bindings.RegisterStick(stickMoveX, input.StickLeftX, input.StickDpadX)
	l.Bindings.RegisterStick(stickMoveY, input.StickLeftY, input.StickDpadY)
	l.Bindings.RegisterStick(stickAimX, input.StickRightX)

	l.WatchButton("jump", actJump)
	l.WatchButton("fire", actFire)
	l.WatchButton("pause", actPause)
	l.WatchButton("any", actAnyKey)
	l.WatchStick("move x", stickMoveX)
	l.WatchStick("move y", stickMoveY)
	l.WatchStick("aim x", stickAimX)
}

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	// Create cancellable context
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Channel to wait for loop completion
	loopDone := make(chan struct{})

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, shutdownSignals...)

	// Create the input pump loop
	loop := platform.NewLoop(device.NewOpener(cfg.DeviceDir))
	loop.Headless = cfg.Headless
	loop.Interval = cfg.Interval()
	registerDemoActions(loop)

	// Create and start hub, broadcaster, overlay server
	var srv *server.Server
	serverErrCh := make(chan error, 1)
	if !cfg.NoOverlay {
		h := hub.NewHub()
		go h.Run()

		broadcaster := hub.NewBroadcaster(h, loop.Changes())
		go broadcaster.Run()

		srv = server.New(h, broadcaster, loop, getFrontendFS(), cfg.Listen)
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				serverErrCh <- err
			}
		}()
		log.Printf("Input shim started: %s", cfg.OverlayURL())
	} else {
		log.Println("Input shim started (overlay disabled)")
	}

	// Channel for tray-triggered shutdown
	shutdownRequested := make(chan struct{})

	// Run as a tray daemon when double-clicked, console mode otherwise
	if !console.IsRunningFromConsole() {
		go func() {
			t := tray.New(cfg.OverlayURL(), func() {
				close(shutdownRequested)
			})
			t.Run()
		}()
	} else {
		log.Println("Press Ctrl+C to exit")
	}

	// Run the pump loop in a goroutine; it locks its own OS thread for SDL
	go func() {
		loop.Run(ctx)
		close(loopDone)
	}()

	// Wait for shutdown signal, tray request, window close, or server error
	select {
	case <-sigCh:
		log.Println("Shutting down...")
		cancel()
	case <-shutdownRequested:
		log.Println("Shutdown requested from tray")
		cancel()
	case <-loopDone:
		log.Println("Window closed")
		cancel()
	case err := <-serverErrCh:
		log.Printf("HTTP server error: %v", err)
		cancel()
	}

	// Wait for the pump loop to finish
	<-loopDone

	// Shutdown the HTTP server gracefully
	if srv != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("HTTP server shutdown error: %v", err)
		}
	}

	log.Println("Input shim stopped")
}
