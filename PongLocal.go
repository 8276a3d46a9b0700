package main

import (
	"Zrzynka/core"
	"Zrzynka/logger"
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell"
	"github.com/google/uuid"
)

const BallSymbol = 0x25CF   // 球符號
const PaddleSymbol = 0x2588 // 球拍符號
const MidlineSymbol = 0x2590

var keyBindings = map[string]core.Key{
	"Rune[w]": core.KeyLeftUp,
	"Rune[s]": core.KeyLeftDown,
	"Rune[o]": core.KeyRightUp,
	"Rune[l]": core.KeyRightDown,
	"Up":      core.KeyRightUp,
	"Down":    core.KeyRightDown,
	"Rune[ ]": core.KeyServe,
	"Esc":     core.KeyQuit,
	"Rune[q]": core.KeyQuit,
}

type localGame struct {
	screen   tcell.Screen
	match    *core.Match
	settings core.Settings

	// 終端機沒有放開按鍵的事件，記錄每個按鍵最後出現的時間
	held map[core.Key]time.Time
}

func newLocalGame(screen tcell.Screen, settings core.Settings) *localGame {
	return &localGame{
		screen:   screen,
		match:    core.NewMatch(settings.ScreenWidth, settings.ScreenHeight),
		settings: settings,
		held:     make(map[core.Key]time.Time),
	}
}

func initScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	defaultStyle := tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite)
	screen.SetStyle(defaultStyle)
	return screen, nil
}

func initUserInput(screen tcell.Screen) chan tcell.Event {
	//初始化channel，去接另一個goroutine丟回來的資料
	inputChan := make(chan tcell.Event, 16)

	//建立一個goroutine去監聽鍵盤的事件
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				// screen 已經 Fini
				close(inputChan)
				return
			}
			switch ev.(type) {
			case *tcell.EventKey, *tcell.EventResize:
				inputChan <- ev
			}
		}
	}()

	return inputChan
}

func (g *localGame) startGameLoop(inputChan chan tcell.Event) {
	ticker := time.NewTicker(g.settings.FrameTime)
	defer ticker.Stop()

	last := time.Now()
	for now := range ticker.C {
		if g.readInput(inputChan, now) {
			return
		}
		g.releaseIdleKeys(now)

		g.match.Tick(float32(now.Sub(last).Seconds()))
		last = now

		g.drawView()
	}
}

// readInput drains every pending event without blocking and reports whether
// quit was requested.
func (g *localGame) readInput(inputChan chan tcell.Event, now time.Time) bool {
	for {
		select {
		case ev, ok := <-inputChan:
			if !ok {
				return true
			}
			if g.handleEvent(ev, now) {
				return true
			}
		default:
			return false
		}
	}
}

func (g *localGame) handleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()

	case *tcell.EventKey:
		key, ok := keyBindings[ev.Name()]
		if !ok {
			return false
		}
		if key == core.KeyQuit {
			return true
		}
		g.press(key, now)
	}
	return false
}

// press forwards the first sighting of a key as KeyDown; auto-repeats only
// refresh its last-seen time.
func (g *localGame) press(key core.Key, now time.Time) {
	if _, held := g.held[key]; !held {
		g.match.KeyDown(key)
	}
	g.held[key] = now
}

func (g *localGame) releaseIdleKeys(now time.Time) {
	for key, seen := range g.held {
		if now.Sub(seen) < g.settings.KeyHold {
			continue
		}
		delete(g.held, key)
		g.match.KeyUp(key)
		logger.Log.Debug(fmt.Sprintf(logger.KeyReleasedMsg, key, g.settings.KeyHold))
	}
}

func (g *localGame) drawView() {
	g.screen.Clear()
	cols, rows := g.screen.Size()
	worldWidth, worldHeight := g.match.Size()

	//中線
	Print(g.screen, 0, cols/2, 1, rows, MidlineSymbol)

	//兩個球拍
	for _, paddle := range []core.Body{g.match.LeftPaddle(), g.match.RightPaddle()} {
		row, col, width, height := toCells(paddle, worldWidth, worldHeight, cols, rows)
		Print(g.screen, row, col, width, height, PaddleSymbol)
	}

	//球
	row, col, width, height := toCells(g.match.Ball(), worldWidth, worldHeight, cols, rows)
	Print(g.screen, row, col, width, height, BallSymbol)

	g.screen.Show()
}

// toCells maps a body centered in world space (origin bottom-left, Y up)
// onto terminal cells (origin top-left, row down).
func toCells(body core.Body, worldWidth, worldHeight float32, cols, rows int) (row, col, width, height int) {
	scaleX := float64(cols) / float64(worldWidth)
	scaleY := float64(rows) / float64(worldHeight)

	left := float64(body.Position.X - body.Size.X/2)
	top := float64(worldHeight - (body.Position.Y + body.Size.Y/2))

	col = int(math.Floor(left * scaleX))
	row = int(math.Floor(top * scaleY))
	width = atLeastOne(int(math.Round(float64(body.Size.X) * scaleX)))
	height = atLeastOne(int(math.Round(float64(body.Size.Y) * scaleY)))
	return row, col, width, height
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

func Print(screen tcell.Screen, row, col, width, height int, ch rune) {
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			screen.SetContent(col+c, row+r, ch, nil, tcell.StyleDefault)
		}
	}
}

func start(settings core.Settings) error {
	screen, err := initScreen()
	if err != nil {
		return err
	}
	defer screen.Fini()

	logger.Log.WithSession(uuid.New().String())
	logger.Log.Info(fmt.Sprintf(logger.SessionStartMsg, settings.ScreenWidth, settings.ScreenHeight, settings.FrameTime))

	game := newLocalGame(screen, settings)
	game.drawView()
	game.startGameLoop(initUserInput(screen))

	logger.Log.Info(logger.SessionQuitMsg)
	return nil
}
