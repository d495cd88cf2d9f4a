package ui

import (
	"image"
	"testing"

	"github.com/04pril/imsweeper/internal/gui"
	"github.com/04pril/imsweeper/internal/minesweeper"
)

const testMenubarHeight = 20

var popupScreen = image.Pt(400, 300)

type popupHarness struct {
	ctx   gui.Context
	stack *PopupStack
	list  gui.DrawList
}

func newPopupHarness() *popupHarness {
	return &popupHarness{stack: NewPopupStack(identity{}, fixedMeasurer{})}
}

func (h *popupHarness) step(in gui.InputSnapshot) []PopupReturn {
	h.list.Reset()
	h.ctx.BeginFrame(in, popupScreen)
	ret := h.stack.Update(&h.ctx, testMenubarHeight, &h.list)
	h.ctx.EndFrame()
	return ret
}

func (h *popupHarness) click(p image.Point) []PopupReturn {
	h.step(pointer(p).Press(gui.MouseLeft))
	return h.step(pointer(p).Release(gui.MouseLeft))
}

func (h *popupHarness) kinds() []PopupKind {
	var out []PopupKind
	for _, p := range h.stack.Popups() {
		out = append(out, p.Kind)
	}
	return out
}

func TestPopupStack_AddCentresAndReplaces(t *testing.T) {
	h := newPopupHarness()
	first := h.stack.Add(Popup{Kind: PopupAbout}, popupScreen)
	if first.Pos != image.Pt(105, 80) || first.Size != image.Pt(190, 140) {
		t.Errorf("about popup at %v size %v", first.Pos, first.Size)
	}
	if first.Title != "ABOUT" {
		t.Errorf("Title = %q, want the translated key", first.Title)
	}

	h.stack.Add(Popup{Kind: PopupExit}, popupScreen)
	second := h.stack.Add(Popup{Kind: PopupAbout}, popupScreen)
	if h.stack.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", h.stack.Len())
	}
	if got := h.kinds(); got[0] != PopupExit || got[1] != PopupAbout {
		t.Errorf("order = %v, want the re-added about popup at the front", got)
	}
	if second.Id() == first.Id() {
		t.Error("a replacing popup reused the old id")
	}
	if !h.stack.Has(PopupExit) || h.stack.Has(PopupWin) {
		t.Error("Has() disagrees with the stack")
	}
}

func TestPopupStack_CloseButton(t *testing.T) {
	h := newPopupHarness()
	h.stack.Add(Popup{Kind: PopupAbout}, popupScreen)

	// The titlebar is 13 pixels tall; the close box sits in its right end.
	h.click(image.Pt(290, 85))
	if h.stack.Len() != 0 {
		t.Errorf("Len() = %d after clicking close, want 0", h.stack.Len())
	}
}

func TestPopupStack_DragClampsBelowMenubar(t *testing.T) {
	h := newPopupHarness()
	p := h.stack.Add(Popup{Kind: PopupAbout}, popupScreen)

	h.step(pointer(image.Pt(150, 85)).Press(gui.MouseLeft))
	h.step(pointer(image.Pt(160, 100)).Hold(gui.MouseLeft))
	if p.Pos != image.Pt(115, 95) {
		t.Errorf("dragged to %v, want (115,95)", p.Pos)
	}

	h.step(pointer(image.Pt(150, 0)).Hold(gui.MouseLeft))
	h.step(pointer(image.Pt(150, 0)).Release(gui.MouseLeft))
	h.step(pointer(image.Pt(150, 0)))
	if p.Pos.Y != testMenubarHeight {
		t.Errorf("popup top = %d, want clamped to %d", p.Pos.Y, testMenubarHeight)
	}

	h.step(pointer(image.Pt(150, 25)).Press(gui.MouseLeft))
	h.step(pointer(image.Pt(1000, 25)).Hold(gui.MouseLeft))
	h.step(pointer(image.Pt(1000, 25)).Release(gui.MouseLeft))
	h.step(pointer(image.Pt(0, 0)))
	if p.Pos.X != popupScreen.X-p.Size.X {
		t.Errorf("popup left = %d, want clamped to %d", p.Pos.X, popupScreen.X-p.Size.X)
	}
}

func TestPopupStack_FrontPopupOccludes(t *testing.T) {
	h := newPopupHarness()
	about := h.stack.Add(Popup{Kind: PopupAbout}, popupScreen)
	exit := h.stack.Add(Popup{Kind: PopupExit}, popupScreen)
	aboutAt, exitAt := about.Pos, exit.Pos

	// (200,150) lies in both; the exit popup is in front.
	h.step(pointer(image.Pt(200, 150)).Press(gui.MouseLeft))
	h.step(pointer(image.Pt(210, 160)).Hold(gui.MouseLeft))
	h.step(pointer(image.Pt(210, 160)).Release(gui.MouseLeft))

	if about.Pos != aboutAt {
		t.Errorf("back popup moved to %v", about.Pos)
	}
	if exit.Pos != exitAt.Add(image.Pt(10, 10)) {
		t.Errorf("front popup at %v, want %v", exit.Pos, exitAt.Add(image.Pt(10, 10)))
	}
}

func TestPopupStack_ClickBringsToFront(t *testing.T) {
	h := newPopupHarness()
	h.stack.Add(Popup{Kind: PopupAbout}, popupScreen)
	h.stack.Add(Popup{Kind: PopupExit}, popupScreen)

	// Inside the about popup, outside the smaller exit popup.
	h.click(image.Pt(110, 200))
	if got := h.kinds(); got[len(got)-1] != PopupAbout {
		t.Errorf("order = %v, want about at the front", got)
	}
}

func TestPopupStack_ExitReturnsQuit(t *testing.T) {
	h := newPopupHarness()
	p := h.stack.Add(Popup{Kind: PopupExit}, popupScreen)
	// Body starts below the 13 pixel titlebar; EXIT is the rightmost
	// bottom button, 32x12 with its padding.
	body := image.Rect(p.Pos.X, p.Pos.Y+13, p.Pos.X+p.Size.X, p.Pos.Y+p.Size.Y)
	exitButton := image.Pt(body.Max.X-3-16, body.Max.Y-3-6)

	ret := h.click(exitButton)
	if len(ret) != 1 || ret[0].Kind != ReturnQuit {
		t.Fatalf("returns = %+v, want one quit", ret)
	}
	if h.stack.Len() != 0 {
		t.Errorf("Len() = %d, want the popup closed", h.stack.Len())
	}
}

func TestPopupStack_NewGameCancel(t *testing.T) {
	h := newPopupHarness()
	p := h.stack.Add(Popup{Kind: PopupNewGame, Difficulty: minesweeper.Expert}, popupScreen)
	body := image.Rect(p.Pos.X, p.Pos.Y+13, p.Pos.X+p.Size.X, p.Pos.Y+p.Size.Y)
	// OK is 20 wide, CANCEL 44 wide, 3 pixels apart.
	cancel := image.Pt(body.Max.X-3-20-3-22, body.Max.Y-3-6)
	ok := image.Pt(body.Max.X-3-10, body.Max.Y-3-6)

	if ret := h.click(cancel); len(ret) != 0 || h.stack.Len() != 0 {
		t.Fatalf("cancel: returns %+v, %d popups left", ret, h.stack.Len())
	}

	h.stack.Add(Popup{Kind: PopupNewGame, Difficulty: minesweeper.Expert}, popupScreen)
	ret := h.click(ok)
	if len(ret) != 1 || ret[0].Kind != ReturnNewGame || ret[0].Difficulty != minesweeper.Expert {
		t.Errorf("ok: returns %+v, want a new expert game", ret)
	}
}

func TestPopupStack_CustomSteppers(t *testing.T) {
	h := newPopupHarness()
	p := h.stack.Add(Popup{Kind: PopupCustom, Custom: minesweeper.Values{Width: 10, Height: 10, Bombs: 10}}, popupScreen)
	body := image.Rect(p.Pos.X, p.Pos.Y+13, p.Pos.X+p.Size.X, p.Pos.Y+p.Size.Y)
	const rowHeight = 15
	plus := func(row int) image.Point {
		return image.Pt(body.Max.X-4-rowHeight/2, body.Min.Y+4+row*rowHeight+6)
	}
	minus := func(row int) image.Point {
		return plus(row).Sub(image.Pt(rowHeight+28, 0))
	}

	h.click(plus(0))
	h.click(plus(0))
	h.click(minus(1))
	h.click(minus(2))
	want := minesweeper.Values{Width: 12, Height: 9, Bombs: 9}
	if p.Custom != want {
		t.Fatalf("Custom = %+v, want %+v", p.Custom, want)
	}
	if p.Pos != image.Pt(125, 95) {
		t.Errorf("stepping dragged the popup to %v", p.Pos)
	}

	start := image.Pt(body.Max.X-3-19, body.Max.Y-3-6)
	ret := h.click(start)
	if len(ret) != 1 || ret[0].Difficulty != minesweeper.Custom(want) {
		t.Errorf("start: returns %+v, want a custom %+v game", ret, want)
	}
}

func TestPopupStack_CustomClampsValues(t *testing.T) {
	h := newPopupHarness()
	p := h.stack.Add(Popup{Kind: PopupCustom, Custom: minesweeper.Values{Width: 1, Height: 100, Bombs: 5000}}, popupScreen)
	want := minesweeper.Values{Width: 5, Height: 40, Bombs: 5*40 - 9}
	if p.Custom != want {
		t.Errorf("Custom = %+v, want %+v", p.Custom, want)
	}
}
