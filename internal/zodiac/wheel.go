package zodiac

import "fmt"

// #region wheel
// gateOrder lists the gates of each sign from 0° to 30°.
var gateOrder = [SignCount][GatesPerSign]int{
	Aries:       {25, 17, 21, 51, 42},
	Taurus:      {3, 27, 24, 2, 23},
	Gemini:      {8, 20, 16, 35, 45},
	Cancer:      {12, 15, 52, 39, 53},
	Leo:         {62, 56, 31, 33, 7},
	Virgo:       {4, 29, 59, 40, 64},
	Libra:       {47, 6, 46, 18, 48},
	Scorpio:     {57, 32, 50, 28, 44},
	Sagittarius: {1, 43, 14, 34, 9},
	Capricorn:   {5, 26, 11, 10, 58},
	Aquarius:    {38, 54, 61, 60, 41},
	Pisces:      {19, 13, 49, 30, 55},
}

// wheel is built once at init and never written again.
var wheel = buildWheel()

// buildWheel lays the gates of each sign out at GateWidth steps. The last
// interval runs to the end of the sign so the five intervals tile all 30°;
// the subdivision clamps in the resolver absorb its extra width.
func buildWheel() [SignCount][GatesPerSign]Interval {
	var w [SignCount][GatesPerSign]Interval
	for s := range gateOrder {
		for i, g := range gateOrder[s] {
			start := float64(i) * GateWidth
			end := start + GateWidth
			if i == GatesPerSign-1 {
				end = SignWidth
			}
			w[s][i] = Interval{Gate: g, Start: start, End: end}
		}
	}
	return w
}

// Intervals returns a copy of the five gate intervals of sign s.
func Intervals(s Sign) ([GatesPerSign]Interval, bool) {
	if !s.Valid() {
		return [GatesPerSign]Interval{}, false
	}
	return wheel[s], true
}

// Locate finds the interval of sign s containing arcseconds.
func Locate(s Sign, arcseconds float64) (Interval, bool) {
	if !s.Valid() {
		return Interval{}, false
	}
	for _, iv := range wheel[s] {
		if iv.Contains(arcseconds) {
			return iv, true
		}
	}
	return Interval{}, false
}

// SignOfGate returns the sign and slot index holding gate g, if the gate is
// placed on the wheel.
func SignOfGate(g int) (Sign, int, bool) {
	for s := range gateOrder {
		for i, n := range gateOrder[s] {
			if n == g {
				return Sign(s), i, true
			}
		}
	}
	return 0, 0, false
}

// #endregion wheel

// #region tiling
// CheckTiling verifies that every sign's intervals start at 0, are contiguous
// and end exactly at SignWidth.
func CheckTiling() error {
	for s := range wheel {
		var cursor float64
		for i, iv := range wheel[s] {
			if iv.Start != cursor {
				return fmt.Errorf("%s interval %d starts at %v, want %v", Sign(s), i, iv.Start, cursor)
			}
			if iv.End <= iv.Start {
				return fmt.Errorf("%s interval %d is empty", Sign(s), i)
			}
			cursor = iv.End
		}
		if cursor != SignWidth {
			return fmt.Errorf("%s intervals end at %v, want %v", Sign(s), cursor, SignWidth)
		}
	}
	return nil
}

// #endregion tiling
