package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/rook-computer/blastoff/internal/app/screens"
	"github.com/rook-computer/blastoff/internal/cli"
	"github.com/rook-computer/blastoff/internal/render"
	"github.com/rook-computer/blastoff/internal/state"
	"github.com/rook-computer/blastoff/internal/system"
	"github.com/rook-computer/blastoff/internal/timer"
	"github.com/rook-computer/blastoff/internal/web"
)

// ExitCode is returned for every way a run can end: liftoff, interrupt and
// failure alike.
const ExitCode = 1

type App struct {
	Store  *state.Store
	Render render.Renderer
	Web    web.Server
	Logger Logger

	Out io.Writer
	Err io.Writer

	// Clock and Interval drive the timer loop; zero values mean real time.
	Clock    timer.Clock
	Interval time.Duration

	// ShowQR prints a terminal QR code of the server URL.
	ShowQR bool
	// Console switches the VT to graphics mode while the display runs.
	Console bool

	currentScreen render.Screen
}

func New(store *state.Store, renderer render.Renderer, webServer web.Server) *App {
	return &App{
		Store:  store,
		Render: renderer,
		Web:    webServer,
		Logger: NoopLogger{},
		Out:    os.Stdout,
		Err:    os.Stderr,
	}
}

// Run executes inv until it finishes or ctx is cancelled and returns the
// process exit code. ctx should already be wired to the interrupt signal.
func (app *App) Run(ctx context.Context, inv cli.Invocation) int {
	app.defaults()
	app.Logger.Infof("app", "run mode=%s start=%d", inv.Mode, inv.Start)

	ctx, span := otel.Tracer("github.com/rook-computer/blastoff/internal/app").Start(ctx, "launch",
		trace.WithAttributes(attribute.String("mode", inv.Mode.String()), attribute.Int("start", inv.Start)))
	defer span.End()

	stopDisplay := app.startDisplay(ctx)
	defer stopDisplay()

	var err error
	switch inv.Mode {
	case cli.Server:
		err = app.serve(ctx)
	default:
		err = app.count(ctx, inv)
	}

	switch {
	case err == nil:
		span.AddEvent("liftoff")
	case errors.Is(err, timer.ErrAborted):
		span.AddEvent("aborted")
		fmt.Fprintln(app.Out, timer.AbortLine)
	default:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		app.Logger.Errorf("app", "%v", err)
		fmt.Fprintln(app.Err, err)
	}
	return ExitCode
}

func (app *App) defaults() {
	if app.Store == nil {
		app.Store = state.NewStore()
	}
	if app.Render == nil {
		app.Render = &render.NoopRenderer{}
	}
	if app.Web == nil {
		app.Web = &web.NoopServer{}
	}
	if app.Logger == nil {
		app.Logger = NoopLogger{}
	}
	if app.Out == nil {
		app.Out = io.Discard
	}
	if app.Err == nil {
		app.Err = io.Discard
	}
}

func (app *App) count(ctx context.Context, inv cli.Invocation) error {
	if err := app.setScreen(ctx, screens.CountdownScreen{}); err != nil {
		return err
	}

	loop := timer.NewLoop(timer.NewCounter(inv.Direction(), inv.Start), app.Out)
	loop.Store = app.Store
	loop.Logger = app.Logger
	if app.Clock != nil {
		loop.Clock = app.Clock
	}
	if app.Interval > 0 {
		loop.Interval = app.Interval
	}
	return loop.Run(ctx)
}

func (app *App) serve(ctx context.Context) error {
	if err := app.Web.Start(ctx); err != nil {
		return errors.Wrap(err, "start server")
	}

	addr := app.Web.Addr()
	url := web.DisplayURL(addr)
	app.Store.UpdateServer(state.ServerInfo{Addr: addr, URL: url})
	app.Store.SetPhase(state.SERVING)

	if err := app.setScreen(ctx, screens.NewServerScreen(url, app.Logger)); err != nil {
		app.Logger.Errorf("app", "server screen: %v", err)
	}

	fmt.Fprintf(app.Out, "Listening on %s\n", url)
	if app.ShowQR {
		if qr, err := render.QRCodeText(url); err != nil {
			app.Logger.Errorf("app", "terminal qr: %v", err)
		} else {
			fmt.Fprintln(app.Out, qr)
		}
	}

	<-ctx.Done()
	app.Store.Terminate(timer.AbortLine)
	if err := app.Web.Stop(); err != nil {
		app.Logger.Errorf("web", "stop: %v", err)
	}
	return timer.ErrAborted
}

// startDisplay starts the renderer and its redraw loop. A display that fails
// to start is logged and replaced with a no-op one.
func (app *App) startDisplay(ctx context.Context) (stop func()) {
	if err := app.Render.Start(ctx); err != nil {
		app.Logger.Errorf("app", "renderer start error: %v", err)
		app.Render = &render.NoopRenderer{}
		return func() {}
	}

	restoreConsole := func() {}
	if app.Console {
		restoreConsole = system.EnterDisplayMode(app.Logger)
	}

	loopCtx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		app.Render.RunLoop(loopCtx, app.Store)
	}()

	return func() {
		// One last frame so the final line stays on screen.
		app.Render.RedrawWithState(app.Store.Snapshot())
		cancel()
		wg.Wait()
		_ = app.Render.Stop()
		restoreConsole()
	}
}

func (app *App) setScreen(ctx context.Context, screen render.Screen) error {
	if app.currentScreen != nil {
		_ = app.currentScreen.Stop()
	}
	app.currentScreen = screen
	app.Render.SetScreen(screen)
	return screen.Start(ctx)
}
