// Command mireel-demo opens a window with a five-reel group and
// a spin button. Click the button or press space to spin, and
// again to slam the reels. R resets the group.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"math/rand/v2"
	"os"

	"github.com/edwinsyarief/mireel"
	"github.com/edwinsyarief/mireel/config"
	"github.com/edwinsyarief/mireel/ebitenview"
	"github.com/edwinsyarief/mireel/log"
	"github.com/edwinsyarief/mireel/outcome"
	"github.com/edwinsyarief/mireel/stats"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	_ "github.com/silbinarywolf/preferdiscretegpu"
	"go.uber.org/zap"
)

const (
	margin        = 24
	buttonWidth   = 120
	buttonHeight  = 36
	overlayHeight = 48
)

var errQuit = errors.New("quit")

type Game struct {
	cfg    *config.Config
	group  *mireel.Group
	board  *ebitenview.Board
	button *mireel.SpinButton
	stats  *stats.Collector
	width  int
	height int
	last   mireel.SpinResult
}

func (self *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return errQuit
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		self.button.ClickAt(ebiten.CursorPosition())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		self.button.Click()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		self.button.Reset()
	}
	self.group.Update()
	return nil
}

func (self *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ebitenview.RGB(16, 16, 24))
	self.board.Draw(screen)
	ebitenview.DrawButton(screen, self.button)

	text := fmt.Sprintf("TPS %.0f  ticks %d  running %d", ebiten.ActualTPS(), self.group.SpinTicks(), self.group.Running())
	if self.last.Landed != nil {
		text += fmt.Sprintf("\nlast stops %v", self.last.Stops)
	}
	ebitenutil.DebugPrintAt(screen, text, margin, self.height-overlayHeight)
}

func (self *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return self.width, self.height
}

func main() {
	configPath := flag.String("config", "", "reel configuration file (YAML)")
	scriptPath := flag.String("script", "", "scripted outcomes file (JSON)")
	seed := flag.Uint64("seed", 0, "random seed, 0 for a time based one")
	level := flag.String("log-level", "info", "log level")
	logMode := flag.String("log-mode", "dev", "log mode, dev or prod")
	flag.Parse()

	mode, err := log.ParseMode(*logMode)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := log.New(&log.Config{Mode: mode, Level: *level, App: "mireel-demo"})
	defer func() { _ = logger.Sync() }()

	game, err := newGame(*configPath, *scriptPath, *seed, logger)
	if err != nil {
		logger.Error("setup failed", zap.Error(err))
		os.Exit(1)
	}

	ebiten.SetWindowTitle("mireel")
	ebiten.SetWindowSize(game.width, game.height)
	ebiten.SetTPS(game.cfg.UPS)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, errQuit) {
		logger.Error("game stopped", zap.Error(err))
	}

	summary, err := game.stats.Summary()
	if err != nil {
		logger.Warn("stats unavailable", zap.Error(err))
		return
	}
	fmt.Println(summary)
}

func newGame(configPath, scriptPath string, seed uint64, logger *zap.Logger) (*Game, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return nil, err
		}
	}
	table, err := cfg.SymbolTable()
	if err != nil {
		return nil, err
	}

	opts := []mireel.Option{mireel.WithLogger(logger), mireel.WithOrigin(margin, margin)}
	if seed != 0 {
		opts = append(opts, mireel.WithRand(rand.New(rand.NewPCG(seed, seed>>1|1))))
	}
	if scriptPath != "" {
		script, err := outcome.LoadScript(scriptPath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, mireel.WithSource(script))
	}

	loader := ebitenview.NewLoader(table, logger)
	loader.Preload()
	board := ebitenview.NewBoard(cfg, loader, margin, margin)
	collector := stats.NewCollector(table)
	opts = append(opts, mireel.WithObserver(collector))

	group, err := mireel.NewGroup(cfg, board.Factory, opts...)
	if err != nil {
		return nil, err
	}

	bounds := board.Bounds()
	buttonX := bounds.Min.X + (bounds.Dx()-buttonWidth)/2
	buttonY := bounds.Max.Y + margin
	button := mireel.NewSpinButton(group, image.Rect(buttonX, buttonY, buttonX+buttonWidth, buttonY+buttonHeight), true)

	game := &Game{
		cfg:    cfg,
		group:  group,
		board:  board,
		button: button,
		stats:  collector,
		width:  bounds.Max.X + margin,
		height: buttonY + buttonHeight + overlayHeight,
	}
	group.OnComplete(func(result mireel.SpinResult) { game.last = result })
	return game, nil
}
