package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/carousel/controller"
	"github.com/lixenwraith/carousel/events"
	"github.com/lixenwraith/carousel/tui"
	"github.com/lixenwraith/carousel/visibility"
)

const sampleRate = beep.SampleRate(44100)

// audioCue plays a short sine blip for carousel events
type audioCue struct {
	enabled bool
}

func (a *audioCue) HandleEvent(ev events.Event) {
	switch ev.Type {
	case events.TypeSlideChanged:
		a.blip(880)
	case events.TypeBoundaryReached:
		a.blip(440)
	case events.TypeLoopCompleted:
		a.blip(660)
	}
}

func (a *audioCue) EventTypes() []events.Type {
	return []events.Type{events.TypeSlideChanged, events.TypeBoundaryReached, events.TypeLoopCompleted}
}

func (a *audioCue) blip(freq float64) {
	if !a.enabled {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(50*time.Millisecond), sine))
}

// statusLine remembers the most recent event for display
type statusLine struct {
	last string
}

func (s *statusLine) HandleEvent(ev events.Event) {
	switch ev.Type {
	case events.TypeSlideChanged:
		s.last = fmt.Sprintf("%s %d -> %d (auto=%v)", ev.Type, ev.Previous, ev.Slide, ev.Auto)
	case events.TypeVisibilityChanged:
		s.last = fmt.Sprintf("%s visible=%v", ev.Type, ev.Visible)
	default:
		s.last = fmt.Sprintf("%s at slide %d", ev.Type, ev.Slide)
	}
}

func (s *statusLine) EventTypes() []events.Type {
	return []events.Type{
		events.TypeSlideChanged,
		events.TypeBoundaryReached,
		events.TypeLoopCompleted,
		events.TypeVisibilityChanged,
	}
}

type App struct {
	screen tcell.Screen
	ctrl   *controller.Controller
	router *events.Router
	obs    *visibility.Observer
	audio  *audioCue
	status *statusLine

	totalSlides int
	simHidden   bool // 'v' key simulates the surface scrolling offscreen
}

func NewApp(slides int, speed time.Duration, auto, loop bool) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableFocus()

	queue := events.NewQueue()
	ctrl := controller.New(controller.Config{
		AutoScroll:  auto,
		Loop:        loop,
		Speed:       speed,
		TotalSlides: slides,
		Events:      queue,
	})

	app := &App{
		screen:      screen,
		ctrl:        ctrl,
		router:      events.NewRouter(queue),
		audio:       &audioCue{},
		status:      &statusLine{last: "ready"},
		totalSlides: slides,
	}
	app.obs = visibility.NewObserver(screen, 0, ctrl.SetVisible)
	app.router.Register(app.audio)
	app.router.Register(app.status)

	if err := app.initAudio(); err != nil {
		// Non-fatal, demo can run without sound
		log.Printf("Audio initialization failed: %v", err)
	}

	ctrl.Start()
	return app, nil
}

func (a *App) initAudio() error {
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		a.audio.enabled = true
	}
	return err
}

func (a *App) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRight:
			a.ctrl.NextSlide()
		case tcell.KeyLeft:
			a.ctrl.PrevSlide()
		case tcell.KeyRune:
			switch r := ev.Rune(); {
			case r == 'q':
				return false
			case r == 'l':
				a.ctrl.NextSlide()
			case r == 'h':
				a.ctrl.PrevSlide()
			case r == 'v':
				a.simHidden = !a.simHidden
				a.reportVisibility()
			case r >= '1' && r <= '9':
				a.ctrl.GoToSlide(int(r - '1'))
			}
		}

	case *tcell.EventFocus:
		if !a.simHidden {
			if ev.Focused {
				a.obs.Report(1)
			} else {
				a.obs.Report(0)
			}
		}

	case *tcell.EventResize:
		a.screen.Sync()
	}

	return true
}

func (a *App) reportVisibility() {
	if a.simHidden {
		a.obs.Report(0)
	} else {
		a.obs.Report(1)
	}
}

func (a *App) draw() {
	a.screen.Clear()
	st := a.ctrl.Snapshot()

	width, _ := a.screen.Size()
	panelW := min(width-4, 44)
	if panelW < 12 {
		panelW = 12
	}

	frame := tcell.StyleDefault.Foreground(tcell.ColorGray)
	text := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dim := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	accent := tcell.StyleDefault.Foreground(tcell.ColorAqua)

	// Active slide panel
	panel := tui.Rect{X: 2, Y: 1, W: panelW, H: 7}
	tui.Box(a.screen, panel, frame)
	title := fmt.Sprintf("Slide %d / %d", st.CurrentSlide+1, a.totalSlides)
	tui.Label(a.screen, panel.X+(panel.W-len(title))/2, panel.Y+3, title, text)
	neighbors := fmt.Sprintf("prev %d  next %d  dir %s", st.PrevIndex, st.NextIndex, st.Direction)
	tui.Label(a.screen, panel.X+2, panel.Y+5, neighbors, dim)

	// Bullet rail
	tui.Bullets(a.screen, 2, 9, a.totalSlides, st.CurrentSlide, dim, accent)

	// Progress gauges
	gaugeW := panelW - 9
	rows := []struct {
		name    string
		percent float64
	}{
		{"slide ", st.SlideTimeProgress},
		{"loop  ", st.LoopProgress},
		{"total ", st.TotalProgress},
		{"bullet", st.BulletProgress},
	}
	for i, row := range rows {
		y := 11 + i
		tui.Label(a.screen, 2, y, row.name, text)
		tui.Gauge(a.screen, 9, y, gaugeW, row.percent, accent)
		tui.Label(a.screen, 9+gaugeW+1, y, fmt.Sprintf("%3.0f%%", row.percent), dim)
	}

	// Status
	visNote := "visible"
	if !st.Visible {
		visNote = "hidden (timers paused)"
	}
	tui.Label(a.screen, 2, 16, fmt.Sprintf("phase %s  %s", st.Phase, visNote), dim)
	tui.Label(a.screen, 2, 17, a.status.last, dim)
	tui.Label(a.screen, 2, 19, "h/l or arrows: prev/next  1-9: goto  v: hide  q: quit", dim)

	a.screen.Show()
}

func (a *App) run() {
	ticker := time.NewTicker(33 * time.Millisecond) // ~30 FPS
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go pumpEvents(a.screen, eventChan)

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !a.handleInput(ev) {
				return
			}

		case <-ticker.C:
			a.router.DispatchAll()
			a.draw()
		}
	}
}

// pumpEvents forwards screen events until the screen is finalized
// PollEvent returns nil once Fini has run; closing the channel lets the
// goroutine exit instead of spinning on nil events
func pumpEvents(s tcell.Screen, ch chan<- tcell.Event) {
	defer close(ch)
	for {
		ev := s.PollEvent()
		if ev == nil {
			return
		}
		ch <- ev
	}
}

func (a *App) cleanup() {
	a.ctrl.Dispose()
	if a.audio.enabled {
		speaker.Close()
	}
	a.screen.Fini()
}

func main() {
	slides := flag.Int("slides", 5, "number of slides")
	speed := flag.Duration("speed", 3*time.Second, "per-slide auto-advance duration")
	auto := flag.Bool("auto", true, "enable auto-scroll timers")
	loop := flag.Bool("loop", true, "wrap around at both ends")
	flag.Parse()

	app, err := NewApp(*slides, *speed, *auto, *loop)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer app.cleanup()

	app.run()
}
