// Command mireel-tui runs a reel group on the terminal. Space
// spins and slams, r resets, q or Esc quits.
package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/edwinsyarief/mireel"
	"github.com/edwinsyarief/mireel/config"
	"github.com/edwinsyarief/mireel/log"
	"github.com/edwinsyarief/mireel/outcome"
	"github.com/edwinsyarief/mireel/stats"
	"github.com/edwinsyarief/mireel/tui"
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

var statusStyle = tcell.StyleDefault.Foreground(tcell.ColorSilver)

type app struct {
	screen tcell.Screen
	group  *mireel.Group
	board  *tui.Board
	button *mireel.SpinButton
	last   *mireel.SpinResult
	held   bool // mouse button 1 was down on the previous event
}

func main() {
	configPath := flag.String("config", "", "reel configuration file (YAML)")
	scriptPath := flag.String("script", "", "scripted outcomes file (JSON)")
	seed := flag.Uint64("seed", 0, "random seed, 0 for a time based one")
	logPath := flag.String("log", "", "log file, empty to discard logs")
	level := flag.String("log-level", "debug", "log level")
	flag.Parse()

	var out io.Writer = io.Discard
	if *logPath != "" {
		file, err := os.Create(*logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
			os.Exit(1)
		}
		defer file.Close()
		out = file
	}
	logger := log.NewWithWriter(&log.Config{Mode: log.Prod, Level: *level, App: "mireel-tui"}, out)
	defer func() { _ = logger.Sync() }()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	table, err := cfg.SymbolTable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load symbols: %v\n", err)
		os.Exit(1)
	}

	opts := []mireel.Option{mireel.WithLogger(logger)}
	if *seed != 0 {
		opts = append(opts, mireel.WithRand(rand.New(rand.NewPCG(*seed, *seed>>1|1))))
	}
	if *scriptPath != "" {
		script, err := outcome.LoadScript(*scriptPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load script: %v\n", err)
			os.Exit(1)
		}
		opts = append(opts, mireel.WithSource(script))
	}
	collector := stats.NewCollector(table)
	opts = append(opts, mireel.WithObserver(collector))

	board := tui.NewBoard(cfg, table, 2, 1)
	group, err := mireel.NewGroup(cfg, board.Factory, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create reels: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()

	ui := &app{
		screen: screen,
		group:  group,
		board:  board,
		button: mireel.NewSpinButton(group, board.ButtonBounds(), true),
	}
	group.OnComplete(func(result mireel.SpinResult) { ui.last = &result })
	ui.run(cfg.UPS, logger)
	screen.Fini()

	summary, err := collector.Summary()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Stats unavailable: %v\n", err)
		return
	}
	fmt.Println(summary)
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func (self *app) run(ups int, logger *zap.Logger) {
	ticker := time.NewTicker(time.Second / time.Duration(ups))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := self.screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !self.handleInput(ev, logger) {
				return
			}
		case <-ticker.C:
			self.group.Update()
			self.draw()
		}
	}
}

func (self *app) handleInput(ev tcell.Event, logger *zap.Logger) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case 'r':
				self.button.Reset()
			case ' ':
				if !self.button.Click() {
					logger.Debug("click ignored", zap.Stringer("button", self.button.State()))
				}
			}
		}
	case *tcell.EventMouse:
		pressed := ev.Buttons()&tcell.Button1 != 0
		if pressed && !self.held {
			self.button.ClickAt(ev.Position())
		}
		self.held = pressed
	case *tcell.EventResize:
		self.screen.Sync()
	}
	return true
}

func (self *app) draw() {
	self.screen.Clear()
	self.board.Draw(self.screen)
	self.board.DrawButton(self.screen, self.button)

	_, height := self.board.Size()
	status := fmt.Sprintf("ticks %d  running %d", self.group.SpinTicks(), self.group.Running())
	if self.last != nil {
		status += fmt.Sprintf("  last stops %v", self.last.Stops)
	}
	tui.DrawText(self.screen, 2, height+3, status, statusStyle)
	tui.DrawText(self.screen, 2, height+4, "space: spin/stop  q: quit", statusStyle)
	self.screen.Show()
}
