package viewer

import (
	"github.com/Faultbox/heightview/internal/engine/camera"
	"github.com/Faultbox/heightview/internal/engine/input"
)

// action is what the frame loop must do after an event reached the camera.
type action int

const (
	actionNone action = iota
	actionQuit
	actionResize
	actionScreenshot
	actionWireframe
)

// dispatch routes one event. Pointer positions are turned into offsets from
// the window centre (cx, cy) before they reach the camera.
func dispatch(cam *camera.Camera, ev input.Event, cx, cy int) action {
	switch ev.Type {
	case input.EventQuit:
		return actionQuit

	case input.EventWindowResize:
		return actionResize

	case input.EventPointerMove:
		cam.HandlePointerMove(float32(ev.X-cx), float32(ev.Y-cy))

	case input.EventKeyDown:
		switch ev.Key {
		case input.KeyExit:
			return actionQuit
		case input.KeyScreenshot:
			if !ev.Repeat {
				return actionScreenshot
			}
		case input.KeyWireframe:
			if !ev.Repeat {
				return actionWireframe
			}
		default:
			cam.HandleKeyDown(ev.Key)
		}

	case input.EventKeyUp:
		cam.HandleKeyUp(ev.Key)
	}
	return actionNone
}

// latestPointer drops every pointer move but the last one. Positions are
// absolute, so only the final one measures the offset since the last recentre.
func latestPointer(events []input.Event) []input.Event {
	last := -1
	for i, ev := range events {
		if ev.Type == input.EventPointerMove {
			last = i
		}
	}

	out := events[:0:0]
	for i, ev := range events {
		if ev.Type == input.EventPointerMove && i != last {
			continue
		}
		out = append(out, ev)
	}
	return out
}
