package ui

import (
	"image"

	"github.com/rs/zerolog/log"

	"github.com/04pril/imsweeper/internal/gui"
	"github.com/04pril/imsweeper/internal/minesweeper"
)

// Options configures an App.
type Options struct {
	Difficulty minesweeper.Difficulty
	Sound      bool
	Dark       bool

	Audio      Audio
	Exploder   Exploder
	Translator Translator
	Measurer   gui.Measurer

	// EngineOptions are passed to every new engine.
	EngineOptions []minesweeper.Option
}

// App drives one frame of the whole screen. Surfaces are visited front to
// back: menubar, popups, then the game.
type App struct {
	ctx     gui.Context
	menubar *Menubar
	popups  *PopupStack
	element *Element
	tr      Translator

	sound bool
	dark  bool

	quit       bool
	newGameSet bool
}

func NewApp(o Options) *App {
	a := &App{
		menubar: NewMenubar(gui.HashString("menubar"), o.Measurer),
		popups:  NewPopupStack(o.Translator, o.Measurer),
		tr:      o.Translator,
		sound:   o.Sound,
		dark:    o.Dark,
	}
	audio := switchedAudio{audio: o.Audio, on: &a.sound}
	field := NewMinefield(gui.HashString("minefield"), o.Exploder, audio)
	a.element = NewElement(o.Difficulty, field, o.EngineOptions...)
	a.menubar.Begin(a.menuSpecs())
	a.logNewGame()
	return a
}

func (a *App) Context() *gui.Context     { return &a.ctx }
func (a *App) Element() *Element         { return a.element }
func (a *App) Popups() *PopupStack       { return a.popups }
func (a *App) Menubar() *Menubar         { return a.menubar }
func (a *App) Game() *minesweeper.Engine { return a.element.Game() }

// Quit reports that the player confirmed exiting.
func (a *App) Quit() bool  { return a.quit }
func (a *App) Sound() bool { return a.sound }
func (a *App) Dark() bool  { return a.dark }

// NewGameStarted reports, once, that a new engine replaced the old one so
// the window can follow its size and title.
func (a *App) NewGameStarted() bool {
	started := a.newGameSet
	a.newGameSet = false
	return started
}

// Title is the window title for the current difficulty.
func (a *App) Title() string {
	return a.tr.Get("TITLE") + " - " + a.tr.Get(difficultyLabel(a.element.Difficulty()))
}

// ScreenSize is the logical screen the current game needs.
func (a *App) ScreenSize() image.Point {
	g := a.element.Game()
	return ScreenSize(g.Width(), g.Height(), a.menubar.Height())
}

func difficultyLabel(d minesweeper.Difficulty) string {
	switch d.Level {
	case minesweeper.LevelBeginner:
		return "BEGINNER"
	case minesweeper.LevelIntermediate:
		return "INTERMEDIATE"
	case minesweeper.LevelExpert:
		return "EXPERT"
	}
	return "CUSTOM"
}

func (a *App) menuSpecs() []MenuSpec {
	return []MenuSpec{
		{Label: a.tr.Get("MENU_GAME"), DropdownWidth: 100},
		{Label: a.tr.Get("MENU_OPTIONS"), DropdownWidth: 80},
		{Label: a.tr.Get("MENU_HELP"), DropdownWidth: 60},
	}
}

// Frame runs one frame over in and records its draw commands into r.
func (a *App) Frame(in gui.InputSnapshot, r gui.Renderer) {
	screen := a.ScreenSize()
	a.ctx.BeginFrame(in, screen)

	a.updateMenubar(r)

	for _, ret := range a.popups.Update(&a.ctx, a.menubar.Height(), r) {
		switch ret.Kind {
		case ReturnNewGame:
			a.startNewGame(ret.Difficulty)
		case ReturnQuit:
			log.Info().Msg("quit requested")
			a.quit = true
		}
	}

	area := image.Rect(0, a.menubar.Height(), screen.X, screen.Y)
	switch a.element.Update(&a.ctx, area, r) {
	case FieldWon:
		g := a.element.Game()
		log.Info().Dur("elapsed", g.Elapsed()).Int("turns", g.Turns()).Msg("game won")
		a.popups.Add(Popup{Kind: PopupWin}, screen)
	case FieldLost:
		g := a.element.Game()
		log.Info().Dur("elapsed", g.Elapsed()).Int("turns", g.Turns()).Msg("game lost")
	}
	if a.element.RequestingNewGame() {
		a.requestNewGame(a.element.Difficulty())
	}

	r.Draw(gui.RectShape{Rect: image.Rectangle{Max: screen}, Paint: gui.PaintBackground})
	a.ctx.EndFrame()
}

func (a *App) updateMenubar(r gui.Renderer) {
	mb := a.menubar
	ctx := &a.ctx
	screen := ctx.Screen()
	level := a.element.Difficulty().Level

	mb.Begin(a.menuSpecs())
	if mb.Item(ctx, r) {
		if mb.Dropdown(ctx, a.tr.Get("NEW_GAME"), r) {
			a.requestNewGame(a.element.Difficulty())
		}
		presets := []struct {
			label string
			d     minesweeper.Difficulty
		}{
			{"BEGINNER", minesweeper.Beginner},
			{"INTERMEDIATE", minesweeper.Intermediate},
			{"EXPERT", minesweeper.Expert},
		}
		for _, p := range presets {
			if mb.DropdownRadio(ctx, a.tr.Get(p.label), level == p.d.Level, r) {
				a.requestNewGame(p.d)
			}
		}
		if mb.DropdownRadio(ctx, a.tr.Get("CUSTOM_ELLIPSIS"), level == minesweeper.LevelCustom, r) {
			values, ok := a.element.CustomValues()
			if !ok {
				values = DefaultCustom
			}
			a.popups.Add(Popup{Kind: PopupCustom, Custom: values}, screen)
		}
		mb.Separator(r)
		if mb.Dropdown(ctx, a.tr.Get("EXIT"), r) {
			a.popups.Add(Popup{Kind: PopupExit}, screen)
		}
		mb.FinishItem(ctx, r)
	}
	if mb.Item(ctx, r) {
		mb.DropdownToggle(ctx, a.tr.Get("SOUND"), &a.sound, r)
		mb.DropdownToggle(ctx, a.tr.Get("DARK_THEME"), &a.dark, r)
		mb.FinishItem(ctx, r)
	}
	if mb.Item(ctx, r) {
		if mb.Dropdown(ctx, a.tr.Get("ABOUT"), r) {
			a.popups.Add(Popup{Kind: PopupAbout}, screen)
		}
		mb.FinishItem(ctx, r)
	}
	mb.Finish(ctx, r)
}

// requestNewGame starts d at once, or asks first when that would throw away
// a game in progress.
func (a *App) requestNewGame(d minesweeper.Difficulty) {
	if a.element.GameInProgress() {
		a.popups.Add(Popup{Kind: PopupNewGame, Difficulty: d}, a.ctx.Screen())
		return
	}
	a.startNewGame(d)
}

func (a *App) startNewGame(d minesweeper.Difficulty) {
	a.element.NewGame(d)
	a.newGameSet = true
	a.logNewGame()
}

func (a *App) logNewGame() {
	g := a.element.Game()
	log.Info().
		Str("difficulty", a.element.Difficulty().Name()).
		Int("width", g.Width()).
		Int("height", g.Height()).
		Int("bombs", g.BombCount()).
		Msg("new game")
}
