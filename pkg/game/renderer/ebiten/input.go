package ebiten

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "lifeguard/pkg/engine/input"
)

// keyBinding ties a physical key to a raw input code.
type keyBinding struct {
	key  ebiten.Key
	code string
}

// heldKeys move the player and repeat while held. Order is the order intents
// are emitted within one frame.
var heldKeys = []keyBinding{
	{ebiten.KeyArrowUp, "arrow_up"},
	{ebiten.KeyArrowDown, "arrow_down"},
	{ebiten.KeyArrowLeft, "arrow_left"},
	{ebiten.KeyArrowRight, "arrow_right"},
	{ebiten.KeyK, "k"},
	{ebiten.KeyJ, "j"},
	{ebiten.KeyH, "h"},
	{ebiten.KeyL, "l"},
}

// pressKeys fire once per press
var pressKeys = []keyBinding{
	{ebiten.KeyE, "e"},
	{ebiten.KeyEnter, "enter"},
	{ebiten.KeyX, "x"},
	{ebiten.KeyF5, "restart"},
	{ebiten.KeyF9, "map"},
	{ebiten.KeyQ, "q"},
	{ebiten.KeyEscape, "escape"},
}

// activeCodes returns the codes of the bindings for which active holds, in
// binding order.
func activeCodes(bindings []keyBinding, active func(ebiten.Key) bool) []string {
	var codes []string
	for _, b := range bindings {
		if active(b.key) {
			codes = append(codes, b.code)
		}
	}
	return codes
}

var digitKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

// shouldRepeatKey is true on the first tick of a press and then every
// keyRepeatInterval ticks once keyRepeatInitialDelay has passed.
func shouldRepeatKey(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	switch {
	case d == 1:
		return true
	case d >= keyRepeatInitialDelay:
		return (d-keyRepeatInitialDelay)%keyRepeatInterval == 0
	default:
		return false
	}
}

// collectIntents polls the keyboard and mouse for this frame. Raw codes go
// through the debouncer and the shared bindings, like the terminal frontend.
func (e *EbitenRenderer) collectIntents(now time.Time) []engineinput.Intent {
	var codes []engineinput.RawInput
	raw := func(device engineinput.Device, code string) {
		codes = append(codes, engineinput.RawInput{Device: device, Code: code, Timestamp: now})
	}

	for _, code := range activeCodes(heldKeys, shouldRepeatKey) {
		raw(engineinput.DeviceKeyboard, code)
	}
	for _, code := range activeCodes(pressKeys, inpututil.IsKeyJustPressed) {
		raw(engineinput.DeviceKeyboard, code)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		raw(engineinput.DeviceTouch, "tap")
	}

	var intents []engineinput.Intent
	for _, r := range codes {
		ev, ok := e.debouncer.Accept(r)
		if !ok {
			continue
		}
		if intent := engineinput.MapToIntent(ev); intent.Action != engineinput.ActionNone {
			intents = append(intents, intent)
		}
	}

	// Procedure keys: space drops the current reagent, digits answer.
	if proc := e.snapshot.Procedure; proc != nil {
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			for _, d := range proc.Drops {
				if d.Current {
					intents = append(intents, engineinput.Supply(d.Reagent))
				}
			}
		}
		for i, key := range digitKeys {
			if inpututil.IsKeyJustPressed(key) {
				intents = append(intents, engineinput.Answer(i))
			}
		}
	}
	return intents
}
