package ui

import (
	"image"
	"strconv"

	"github.com/04pril/imsweeper/internal/gui"
	"github.com/04pril/imsweeper/internal/minesweeper"
)

type PopupKind int

const (
	PopupNewGame PopupKind = iota
	PopupCustom
	PopupAbout
	PopupWin
	PopupExit
)

func (k PopupKind) String() string {
	switch k {
	case PopupNewGame:
		return "new game"
	case PopupCustom:
		return "custom"
	case PopupAbout:
		return "about"
	case PopupWin:
		return "win"
	case PopupExit:
		return "exit"
	}
	return "unknown"
}

// PopupAction is what a popup asks of its stack after a frame.
type PopupAction int

const (
	ActionNone PopupAction = iota
	ActionFront
	ActionClose
)

type ReturnKind int

const (
	ReturnNewGame ReturnKind = iota
	ReturnQuit
)

// PopupReturn is a request a popup hands back to the app.
type PopupReturn struct {
	Kind       ReturnKind
	Difficulty minesweeper.Difficulty
}

// Child indices of a popup's id.
const (
	childClose = iota
	childOK
	childCancel
	childStepper // two per custom row
)

var popupSizes = map[PopupKind]image.Point{
	PopupNewGame: image.Pt(170, 70),
	PopupCustom:  image.Pt(150, 110),
	PopupAbout:   image.Pt(190, 140),
	PopupWin:     image.Pt(130, 70),
	PopupExit:    image.Pt(130, 70),
}

var popupTitles = map[PopupKind]string{
	PopupNewGame: "NEW_GAME",
	PopupCustom:  "CUSTOM",
	PopupAbout:   "ABOUT",
	PopupWin:     "WIN_TITLE",
	PopupExit:    "EXIT",
}

// Popup is an overlay window. Difficulty is the NewGame payload and Custom
// the values edited by a Custom popup.
type Popup struct {
	Kind       PopupKind
	Difficulty minesweeper.Difficulty
	Custom     minesweeper.Values

	Pos   image.Point
	Size  image.Point
	Title string

	id       gui.Id
	steppers [3][2]*gui.PushButton
}

func (p *Popup) Id() gui.Id { return p.id }

func (p *Popup) Rect() image.Rectangle {
	return image.Rectangle{Min: p.Pos, Max: p.Pos.Add(p.Size)}
}

// PopupStack owns the open popups, back to front.
type PopupStack struct {
	popups     []*Popup
	dragOffset image.Point
	serial     uint64

	tr Translator
	m  gui.Measurer
}

func NewPopupStack(tr Translator, m gui.Measurer) *PopupStack {
	return &PopupStack{tr: tr, m: m}
}

func (s *PopupStack) Len() int { return len(s.popups) }

// Popups lists the open popups back to front.
func (s *PopupStack) Popups() []*Popup { return s.popups }

// Has reports whether a popup of kind k is open.
func (s *PopupStack) Has(k PopupKind) bool {
	for _, p := range s.popups {
		if p.Kind == k {
			return true
		}
	}
	return false
}

// Add opens p at the front, centred on screen, replacing any popup of the
// same kind.
func (s *PopupStack) Add(p Popup, screen image.Point) *Popup {
	kept := s.popups[:0]
	for _, q := range s.popups {
		if q.Kind != p.Kind {
			kept = append(kept, q)
		}
	}
	clear(s.popups[len(kept):])
	s.popups = kept

	s.serial++
	p.id = gui.HashString("popup:" + strconv.FormatUint(s.serial, 10))
	p.Size = popupSizes[p.Kind]
	p.Title = s.tr.Get(popupTitles[p.Kind])
	p.Pos = screen.Sub(p.Size).Div(2)
	if p.Kind == PopupCustom {
		p.Custom = p.Custom.Clamp()
		for row := range p.steppers {
			for dir := range p.steppers[row] {
				id := p.id.Child(childStepper + row*2 + dir)
				label := [2]string{"-", "+"}[dir]
				p.steppers[row][dir] = gui.NewPushButton(id, image.Rectangle{}, label, gui.PressImmediate, false)
			}
		}
	}
	np := &p
	s.popups = append(s.popups, np)
	return np
}

// Update visits the popups front to back so the frontmost resolves hot and
// active first. At most one popup closes and one comes to the front per
// frame.
func (s *PopupStack) Update(ctx *gui.Context, menubarHeight int, r gui.Renderer) []PopupReturn {
	var returns []PopupReturn
	closeAt, frontAt := -1, -1
	for i := len(s.popups) - 1; i >= 0; i-- {
		action, ret := s.updatePopup(s.popups[i], ctx, menubarHeight, r)
		switch action {
		case ActionClose:
			closeAt = i
		case ActionFront:
			frontAt = i
		}
		if ret != nil {
			returns = append(returns, *ret)
		}
	}

	if closeAt >= 0 {
		s.popups = append(s.popups[:closeAt], s.popups[closeAt+1:]...)
		switch {
		case frontAt == closeAt:
			frontAt = -1
		case frontAt > closeAt:
			frontAt--
		}
	}
	if frontAt >= 0 {
		p := s.popups[frontAt]
		s.popups = append(s.popups[:frontAt], s.popups[frontAt+1:]...)
		s.popups = append(s.popups, p)
	}
	return returns
}

func (s *PopupStack) clamp(p *Popup, screen image.Point, menubarHeight int) {
	limit := screen.Sub(p.Size)
	p.Pos.X = max(min(p.Pos.X, limit.X), 0)
	p.Pos.Y = max(min(p.Pos.Y, limit.Y), menubarHeight)
}

func (s *PopupStack) updatePopup(p *Popup, ctx *gui.Context, menubarHeight int, r gui.Renderer) (PopupAction, *PopupReturn) {
	s.clamp(p, ctx.Screen(), menubarHeight)
	titleHeight := s.m.Measure(p.Title).Y + 3
	titlebar := image.Rect(p.Pos.X, p.Pos.Y, p.Pos.X+p.Size.X, p.Pos.Y+titleHeight)
	body := image.Rect(p.Pos.X, titlebar.Max.Y, p.Pos.X+p.Size.X, p.Pos.Y+p.Size.Y)

	activeBefore := ctx.Active
	closing := s.closeButton(p, ctx, titlebar, r)
	ret, done := s.content(p, ctx, body, r)
	closing = closing || done

	hovered := ctx.Input.PointerIn(titlebar) || ctx.Input.PointerIn(body)
	if ctx.ClaimHot(p.id, hovered) && ctx.Active.IsNone() && ctx.Input.Pressed(gui.MouseLeft) {
		ctx.ClaimActive(p.id, true)
		s.dragOffset = ctx.Input.Pointer.Sub(p.Pos)
	}
	if ctx.IsActive(p.id) {
		ctx.BlockHot()
		p.Pos = ctx.Input.Pointer.Sub(s.dragOffset)
	}

	r.Draw(gui.TextShape{Pos: titlebar.Min.Add(image.Pt(2, 2)), Text: p.Title, Paint: gui.PaintPopupTitleText})
	r.Draw(gui.NineSliceShape{Rect: titlebar, Frame: gui.FramePopupTitle})
	r.Draw(gui.NineSliceShape{Rect: body, Frame: gui.FramePopupBody})
	r.Draw(gui.RectShape{Rect: titlebar.Union(body).Add(image.Pt(3, 3)), Paint: gui.PaintShadow})

	// Only this popup's own widgets ran between the two reads of Active.
	switch {
	case closing:
		return ActionClose, ret
	case activeBefore.IsNone() && !ctx.Active.IsNone():
		return ActionFront, ret
	}
	return ActionNone, ret
}

func (s *PopupStack) closeButton(p *Popup, ctx *gui.Context, titlebar image.Rectangle, r gui.Renderer) bool {
	rect := image.Rect(titlebar.Max.X-9, titlebar.Min.Y+1, titlebar.Max.X-1, titlebar.Min.Y+9)
	state := ctx.Button(p.id.Child(childClose), ctx.Input.PointerIn(rect), false)
	icon, bg := gui.PaintClose, gui.PaintCloseHot
	if state != gui.ButtonIdle {
		icon, bg = bg, icon
	}
	r.Draw(gui.ImageShape{Pos: rect.Min.Add(image.Pt(1, 1)), Sprite: gui.SpriteClose, Tint: icon})
	r.Draw(gui.RectShape{Rect: rect, Paint: bg})
	return state == gui.ButtonReleased
}

// bottomButtons lays labels out right to left along the bottom of body and
// returns the index of the clicked one, or -1.
func (s *PopupStack) bottomButtons(p *Popup, ctx *gui.Context, body image.Rectangle, r gui.Renderer, labels ...string) int {
	clicked := -1
	right := body.Max.X - 3
	for i, label := range labels {
		size := gui.PaddedSize(s.m, label, 4, 1)
		rect := image.Rect(right-size.X, body.Max.Y-3-size.Y, right, body.Max.Y-3)
		if textButton(ctx, p.id.Child(childOK+i), label, rect, s.m, r) {
			clicked = i
		}
		right = rect.Min.X - 3
	}
	return clicked
}

func (s *PopupStack) text(body image.Rectangle, text string, r gui.Renderer) {
	r.Draw(gui.TextShape{Pos: body.Min.Add(image.Pt(3, 3)), Text: text, Paint: gui.PaintPopupBodyText})
}

// content runs the widgets inside the body. done closes the popup.
func (s *PopupStack) content(p *Popup, ctx *gui.Context, body image.Rectangle, r gui.Renderer) (ret *PopupReturn, done bool) {
	switch p.Kind {
	case PopupNewGame:
		switch s.bottomButtons(p, ctx, body, r, s.tr.Get("OK"), s.tr.Get("CANCEL")) {
		case 0:
			return &PopupReturn{Kind: ReturnNewGame, Difficulty: p.Difficulty}, true
		case 1:
			return nil, true
		}
		s.text(body, s.tr.Get("NEW_GAME_BODY"), r)
	case PopupCustom:
		if s.bottomButtons(p, ctx, body, r, s.tr.Get("START")) == 0 {
			return &PopupReturn{Kind: ReturnNewGame, Difficulty: minesweeper.Custom(p.Custom.Clamp())}, true
		}
		s.customRows(p, ctx, body, r)
	case PopupAbout:
		s.text(body, s.tr.Get("ABOUT_BODY"), r)
	case PopupWin:
		if s.bottomButtons(p, ctx, body, r, s.tr.Get("OK")) == 0 {
			return nil, true
		}
		s.text(body, s.tr.Get("WIN_BODY"), r)
	case PopupExit:
		switch s.bottomButtons(p, ctx, body, r, s.tr.Get("EXIT"), s.tr.Get("CANCEL")) {
		case 0:
			return &PopupReturn{Kind: ReturnQuit}, true
		case 1:
			return nil, true
		}
		s.text(body, s.tr.Get("EXIT_BODY"), r)
	}
	return nil, false
}

// customRows draws a -/+ stepper for each of width, height and bombs.
func (s *PopupStack) customRows(p *Popup, ctx *gui.Context, body image.Rectangle, r gui.Renderer) {
	labels := [3]string{s.tr.Get("WIDTH"), s.tr.Get("HEIGHT"), s.tr.Get("BOMBS")}
	fields := [3]*int{&p.Custom.Width, &p.Custom.Height, &p.Custom.Bombs}
	rowHeight := s.m.Measure("0").Y + 5

	for row := range fields {
		y := body.Min.Y + 4 + row*rowHeight
		plus := image.Rect(body.Max.X-4-rowHeight, y, body.Max.X-4, y+rowHeight-2)
		minus := plus.Sub(image.Pt(rowHeight+28, 0))

		for dir, rect := range [2]image.Rectangle{minus, plus} {
			b := p.steppers[row][dir]
			b.Rect = rect
			b.Update(ctx)
			if b.Consume() {
				*fields[row] += [2]int{-1, 1}[dir]
				p.Custom = p.Custom.Clamp()
			}
			paint := gui.PaintButtonText
			if b.State() == gui.StateHovered {
				paint = gui.PaintAccent
			}
			frame := gui.FrameRaised
			if b.State() == gui.StateDepressed {
				frame = gui.FramePressed
			}
			r.Draw(gui.TextShape{Pos: rect.Min.Add(image.Pt(4, 1)), Text: b.Label, Paint: paint})
			r.Draw(gui.NineSliceShape{Rect: rect, Frame: frame})
		}

		value := strconv.Itoa(*fields[row])
		r.Draw(gui.TextShape{Pos: image.Pt(minus.Max.X+4, y+1), Text: value, Paint: gui.PaintPopupBodyText})
		r.Draw(gui.TextShape{Pos: image.Pt(body.Min.X+4, y+1), Text: labels[row], Paint: gui.PaintPopupBodyText})
	}
}
