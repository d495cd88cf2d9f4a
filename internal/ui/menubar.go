package ui

import (
	"image"

	"github.com/04pril/imsweeper/internal/gui"
)

// MenuSpec is one top-level menubar entry.
type MenuSpec struct {
	Label         string
	DropdownWidth int
}

type menuItem struct {
	label         string
	id            gui.Id
	dropdownWidth int
}

// Menubar is a row of menus along the top of the screen, at most one of them
// open. Each frame runs Begin, then Item per menu (with the dropdown entries
// and FinishItem when Item reports the menu open), then Finish.
type Menubar struct {
	id     gui.Id
	m      gui.Measurer
	height int

	items []menuItem
	index int

	current  gui.Id
	open     bool
	wasOpen  bool
	itemX    int
	nextX    int
	dropdown dropdown
}

// dropdown is the running layout of the open menu's entries.
type dropdown struct {
	item  gui.Id
	entry int
	start image.Point
	next  image.Point
	width int
	rect  image.Rectangle
}

func NewMenubar(id gui.Id, m gui.Measurer) *Menubar {
	return &Menubar{id: id, m: m}
}

func (mb *Menubar) Height() int { return mb.height }

// Current reports the open menu.
func (mb *Menubar) Current() (gui.Id, bool) { return mb.current, mb.open }

// ItemId is the id of the index-th menu.
func (mb *Menubar) ItemId(index int) gui.Id { return mb.id.Child(index) }

// Begin starts a frame of the menubar with the given menus.
func (mb *Menubar) Begin(specs []MenuSpec) {
	mb.items = mb.items[:0]
	mb.height = 0
	for i, s := range specs {
		mb.items = append(mb.items, menuItem{label: s.Label, id: mb.ItemId(i), dropdownWidth: s.DropdownWidth})
		mb.height = max(mb.height, gui.PaddedSize(mb.m, s.Label, 2, 1).Y)
	}
	mb.index = 0
	mb.wasOpen = mb.open
	mb.nextX = 0
	mb.dropdown.rect = image.Rectangle{}
}

// Item runs the next menu and reports whether it is open; its dropdown
// entries follow.
func (mb *Menubar) Item(ctx *gui.Context, r gui.Renderer) bool {
	if mb.index >= len(mb.items) {
		return false
	}
	it := mb.items[mb.index]
	mb.index++

	mb.itemX = mb.nextX
	size := gui.PaddedSize(mb.m, it.label, 2, 1)
	mb.nextX += size.X
	rect := image.Rect(mb.itemX, 0, mb.nextX, mb.height)

	mb.dropdown = dropdown{
		item:  it.id,
		start: image.Pt(mb.itemX+1, mb.height+1),
		width: it.dropdownWidth,
		rect:  mb.dropdown.rect,
	}
	mb.dropdown.next = mb.dropdown.start

	state := ctx.Button(it.id, ctx.Input.PointerIn(rect), false)
	if (state == gui.ButtonHovered && mb.open) || state == gui.ButtonClicked {
		mb.current, mb.open = it.id, true
	}

	isOpen := mb.open && mb.current == it.id
	bg, fg := gui.PaintMenubar, gui.PaintMenuText
	if isOpen || ctx.IsHot(it.id) {
		bg, fg = gui.PaintMenubarHot, gui.PaintMenuTextHot
	}
	r.Draw(gui.TextShape{Pos: rect.Min.Add(image.Pt(2, 1)), Text: it.label, Paint: fg})
	r.Draw(gui.RectShape{Rect: rect, Paint: bg})
	return isOpen
}

// FinishItem closes the open menu's dropdown: its box, shadow, and the hover
// it absorbs.
func (mb *Menubar) FinishItem(ctx *gui.Context, r gui.Renderer) {
	d := &mb.dropdown
	if d.next.Y == d.start.Y {
		return
	}
	d.rect = image.Rect(d.start.X-1, mb.height, d.start.X+d.width+1, d.next.Y+1)
	r.Draw(gui.NineSliceShape{Rect: d.rect, Frame: gui.FrameDropdown})
	r.Draw(gui.RectShape{Rect: d.rect.Add(image.Pt(3, 3)), Paint: gui.PaintShadow})
	ctx.AbsorbHover(d.rect)
}

// Finish fills the rest of the bar and closes the menu on a click that
// lands on neither the bar nor the dropdown.
func (mb *Menubar) Finish(ctx *gui.Context, r gui.Renderer) {
	screen := ctx.Screen()
	r.Draw(gui.RectShape{Rect: image.Rect(mb.nextX, 0, screen.X, mb.height), Paint: gui.PaintMenubar})

	bar := image.Rect(0, 0, mb.nextX, mb.height)
	in := ctx.Input
	if mb.open && mb.wasOpen && in.Pressed(gui.MouseLeft) && !in.PointerIn(bar) && !in.PointerIn(mb.dropdown.rect) {
		ctx.Active = gui.UnavailableItem
		mb.open = false
	}
}

// Close shuts the open menu.
func (mb *Menubar) Close() { mb.open = false }

func (mb *Menubar) entry(ctx *gui.Context, text string, icon bool, r gui.Renderer) bool {
	d := &mb.dropdown
	rect := image.Rect(d.next.X, d.next.Y, d.next.X+d.width, d.next.Y+mb.m.Measure(text).Y+3)
	d.next.Y = rect.Max.Y

	id := d.item.Child(d.entry)
	d.entry++

	down := ctx.Input.Down(gui.MouseLeft)
	if ctx.ClaimHot(id, ctx.Input.PointerIn(rect)) && down {
		ctx.Capture(id)
	}
	released := ctx.IsHot(id) && ctx.IsActive(id) && !down
	if released {
		mb.open = false
	}

	bg, fg := gui.PaintMenubar, gui.PaintMenuText
	if ctx.IsHot(id) {
		bg, fg = gui.PaintMenubarHot, gui.PaintMenuTextHot
	}
	if icon {
		r.Draw(gui.ImageShape{Pos: rect.Min.Add(image.Pt(2, 3)), Sprite: gui.SpriteRadio, Tint: fg})
	}
	r.Draw(gui.TextShape{Pos: rect.Min.Add(image.Pt(9, 2)), Text: text, Paint: fg})
	r.Draw(gui.RectShape{Rect: rect, Paint: bg})
	return released
}

// Dropdown is a plain entry; it reports a release on it.
func (mb *Menubar) Dropdown(ctx *gui.Context, text string, r gui.Renderer) bool {
	return mb.entry(ctx, text, false, r)
}

// DropdownRadio marks the entry when selected is true.
func (mb *Menubar) DropdownRadio(ctx *gui.Context, text string, selected bool, r gui.Renderer) bool {
	return mb.entry(ctx, text, selected, r)
}

// DropdownToggle flips *value when chosen.
func (mb *Menubar) DropdownToggle(ctx *gui.Context, text string, value *bool, r gui.Renderer) bool {
	chosen := mb.entry(ctx, text, *value, r)
	if chosen {
		*value = !*value
	}
	return chosen
}

func (mb *Menubar) Separator(r gui.Renderer) {
	d := &mb.dropdown
	line := image.Rect(d.next.X+1, d.next.Y+2, d.next.X+d.width-1, d.next.Y+3)
	d.next.Y += 5
	r.Draw(gui.RectShape{Rect: line, Paint: gui.PaintShadow})
}
