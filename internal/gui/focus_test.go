package gui

import (
	"image"
	"testing"
)

var screen = image.Pt(200, 200)

func TestSelectedItem_Kinds(t *testing.T) {
	id := HashString("widget")
	if !NoItem.IsNone() || NoItem.IsUnavailable() || NoItem.Is(id) {
		t.Errorf("NoItem = %+v, want none", NoItem)
	}
	if UnavailableItem.IsNone() || !UnavailableItem.IsUnavailable() {
		t.Errorf("UnavailableItem = %+v, want unavailable", UnavailableItem)
	}
	if _, ok := UnavailableItem.Id(); ok {
		t.Error("UnavailableItem.Id() ok = true, want false")
	}
	if got, ok := Item(id).Id(); !ok || got != id {
		t.Errorf("Item(id).Id() = %v, %v, want %v, true", got, ok, id)
	}
}

func TestClaimHot_FrontWidgetWins(t *testing.T) {
	var ctx Context
	front, back := HashString("front"), HashString("back")
	ctx.BeginFrame(InputSnapshot{Pointer: image.Pt(5, 5)}, screen)

	if !ctx.ClaimHot(front, true) {
		t.Fatal("ClaimHot(front) = false, want true")
	}
	if ctx.ClaimHot(back, true) {
		t.Error("ClaimHot(back) = true, want false: front already hot")
	}
	if !ctx.ClaimHot(front, true) {
		t.Error("ClaimHot(front) again = false, want true: front still holds hot")
	}
}

func TestClaimHot_NotHovered(t *testing.T) {
	var ctx Context
	a, b := HashString("a"), HashString("b")
	ctx.BeginFrame(InputSnapshot{}, screen)
	if ctx.ClaimHot(a, false) {
		t.Error("ClaimHot(a, false) = true, want false")
	}
	if !ctx.ClaimHot(b, true) {
		t.Error("ClaimHot(b, true) = false, want true: a never claimed")
	}
}

func TestBeginFrame_ResetsHotKeepsActive(t *testing.T) {
	var ctx Context
	id := HashString("x")
	ctx.BeginFrame(InputSnapshot{}.Press(MouseLeft), screen)
	ctx.ClaimHot(id, true)
	ctx.ClaimActive(id, true)
	ctx.EndFrame()

	ctx.BeginFrame(InputSnapshot{}.Hold(MouseLeft), screen)
	if !ctx.Hot.IsNone() {
		t.Errorf("Hot = %+v after BeginFrame, want none", ctx.Hot)
	}
	if !ctx.IsActive(id) {
		t.Errorf("Active = %+v after BeginFrame, want %v", ctx.Active, id)
	}
}

func TestActive_PersistsOutsideBoundsUntilRelease(t *testing.T) {
	var ctx Context
	id := HashString("drag")
	rect := image.Rect(0, 0, 10, 10)

	frame := func(in InputSnapshot) {
		ctx.BeginFrame(in, screen)
		hot := ctx.ClaimHot(id, in.PointerIn(rect))
		ctx.ClaimActive(id, hot && in.Pressed(MouseLeft))
		ctx.EndFrame()
	}

	frame(InputSnapshot{Pointer: image.Pt(5, 5)}.Press(MouseLeft))
	if !ctx.IsActive(id) {
		t.Fatal("widget not active after press inside")
	}
	frame(InputSnapshot{Pointer: image.Pt(50, 50)}.Hold(MouseLeft))
	if !ctx.IsActive(id) {
		t.Error("widget lost active while dragged outside its rect")
	}
	frame(InputSnapshot{Pointer: image.Pt(80, 80)}.Release(MouseLeft))
	if !ctx.Active.IsNone() {
		t.Errorf("Active = %+v after release, want none", ctx.Active)
	}
}

func TestClaimActive_FirstClaimWins(t *testing.T) {
	var ctx Context
	a, b := HashString("a"), HashString("b")
	ctx.BeginFrame(InputSnapshot{}.Press(MouseLeft), screen)
	ctx.ClaimActive(a, true)
	if ctx.ClaimActive(b, true) {
		t.Error("ClaimActive(b) = true, want false")
	}
}

func TestAbsorbHover_BlocksWidgetsBeneath(t *testing.T) {
	var ctx Context
	under := HashString("under")
	ctx.BeginFrame(InputSnapshot{Pointer: image.Pt(3, 3)}, screen)
	ctx.AbsorbHover(image.Rect(0, 0, 10, 10))
	if !ctx.Hot.IsUnavailable() {
		t.Fatalf("Hot = %+v, want unavailable", ctx.Hot)
	}
	if ctx.ClaimHot(under, true) {
		t.Error("ClaimHot(under) = true through an absorbing container")
	}
}

func TestAbsorbHover_OutsideRect(t *testing.T) {
	var ctx Context
	ctx.BeginFrame(InputSnapshot{Pointer: image.Pt(30, 30)}, screen)
	ctx.AbsorbHover(image.Rect(0, 0, 10, 10))
	if !ctx.Hot.IsNone() {
		t.Errorf("Hot = %+v, want none", ctx.Hot)
	}
}

func TestButton_ClickSequence(t *testing.T) {
	var ctx Context
	id := HashString("ok")
	rect := image.Rect(0, 0, 20, 10)
	in := InputSnapshot{Pointer: image.Pt(5, 5)}

	step := func(in InputSnapshot) ButtonState {
		ctx.BeginFrame(in, screen)
		st := ctx.Button(id, in.PointerIn(rect), false)
		ctx.EndFrame()
		return st
	}

	cases := []struct {
		name string
		in   InputSnapshot
		want ButtonState
	}{
		{"hover", in, ButtonHovered},
		{"press", in.Press(MouseLeft), ButtonClicked},
		{"hold", in.Hold(MouseLeft), ButtonHeld},
		{"release", in.Release(MouseLeft), ButtonReleased},
		{"leave", in.At(image.Pt(50, 50)), ButtonIdle},
	}
	for _, tc := range cases {
		if got := step(tc.in); got != tc.want {
			t.Errorf("%s: Button() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestButton_ReleaseOutsideDoesNotCount(t *testing.T) {
	var ctx Context
	id := HashString("ok")
	rect := image.Rect(0, 0, 20, 10)
	in := InputSnapshot{Pointer: image.Pt(5, 5)}

	for _, frame := range []InputSnapshot{in.Press(MouseLeft), in.At(image.Pt(90, 90)).Release(MouseLeft)} {
		ctx.BeginFrame(frame, screen)
		st := ctx.Button(id, frame.PointerIn(rect), false)
		ctx.EndFrame()
		if st == ButtonReleased {
			t.Error("Button() = released after releasing outside the rect")
		}
	}
}

func TestButton_Disabled(t *testing.T) {
	var ctx Context
	id := HashString("off")
	ctx.BeginFrame(InputSnapshot{}.Press(MouseLeft), screen)
	if got := ctx.Button(id, true, true); got != ButtonDisabled {
		t.Errorf("Button() = %v, want disabled", got)
	}
	if !ctx.Hot.IsNone() {
		t.Errorf("disabled button claimed hot: %+v", ctx.Hot)
	}
}
