package pointer

// parseEvents extracts SGR-1006 mouse sequences from raw terminal
// input and converts them to pointer events. Everything else in the
// stream — printable keys, other escape sequences — is skipped: this
// layer only speaks pointer.
func parseEvents(data []byte) []Event {
	var events []Event
	i := 0

	for i < len(data) {
		if data[i] == 0x1b && i+2 < len(data) && data[i+1] == '[' && data[i+2] == '<' {
			ev, consumed, ok := parseMouseSGR(data[i:])
			if ok {
				events = append(events, ev)
				i += consumed
				continue
			}
		}
		i++
	}

	return events
}

// parseMouseSGR parses an SGR-1006 mouse sequence.
// Format: ESC [ < button ; x ; y M (press) or ESC [ < button ; x ; y m (release)
// The button field encodes: button number + modifier bits
//
//	bits 0-1: button (0=left, 1=middle, 2=right, 3=none)
//	bit 2: shift
//	bit 3: meta/alt
//	bit 4: ctrl
//	bit 5: motion
//	bit 6: wheel (64=up, 65=down)
//
// Returns (event, bytes consumed, true), or a false ok on failure.
func parseMouseSGR(data []byte) (Event, int, bool) {
	// Minimum: ESC [ < b ; x ; y M with single digits
	if len(data) < 9 || data[0] != 0x1b || data[1] != '[' || data[2] != '<' {
		return Event{}, 0, false
	}

	// Parse: button ; x ; y
	i := 3
	button := 0
	x := 0
	y := 0
	stage := 0 // 0=button, 1=x, 2=y

	for i < len(data) {
		b := data[i]

		if b >= '0' && b <= '9' {
			switch stage {
			case 0:
				button = button*10 + int(b-'0')
			case 1:
				x = x*10 + int(b-'0')
			case 2:
				y = y*10 + int(b-'0')
			}
			i++
			continue
		}

		if b == ';' {
			stage++
			if stage > 2 {
				// Too many semicolons
				return Event{}, 0, false
			}
			i++
			continue
		}

		// Final byte: 'M' for press, 'm' for release
		if b == 'M' || b == 'm' {
			if stage != 2 {
				// Didn't get all three parameters
				return Event{}, 0, false
			}

			event := Event{
				X: x - 1, // Convert from 1-indexed to 0-indexed
				Y: y - 1,
			}

			if button&4 != 0 {
				event.Mod |= ModShift
			}
			if button&8 != 0 {
				event.Mod |= ModAlt
			}
			if button&16 != 0 {
				event.Mod |= ModCtrl
			}

			// Wheel events (bit 6) are instantaneous presses
			if button&64 != 0 {
				if button&1 != 0 {
					event.Button = ButtonWheelDown
				} else {
					event.Button = ButtonWheelUp
				}
				event.Kind = KindDown
				return event, i + 1, true
			}

			switch button & 3 {
			case 0:
				event.Button = ButtonLeft
			case 1:
				event.Button = ButtonMiddle
			case 2:
				event.Button = ButtonRight
			case 3:
				event.Button = ButtonNone
			}

			// Motion (drag or plain move) is a move regardless of the
			// final byte; otherwise 'M' is a press and 'm' a release
			if button&32 != 0 {
				event.Kind = KindMove
			} else if b == 'M' {
				event.Kind = KindDown
			} else {
				event.Kind = KindUp
			}

			return event, i + 1, true
		}

		// Unexpected character
		return Event{}, 0, false
	}

	// Incomplete sequence
	return Event{}, 0, false
}
