package symbols

// Named tube presets. A preset is a factory that fixes the canonical pin
// numbers of a specific historical tube model; the geometry is always
// the shared generic one.

// Half12AX7 builds one half of a 12AX7 dual triode with its canonical
// pin numbers: left g=2 k=3 a=1, right g=7 k=8 a=6. Extra options are
// applied after the preset ones.
func Half12AX7(side Half, opts ...TubeOption) *Triode {
	pins := PinNumbers{"g": "2", "k": "3", "a": "1"}
	if side == HalfRight {
		pins = PinNumbers{"g": "7", "k": "8", "a": "6"}
	}
	all := append([]TubeOption{TubeHalf(side), TubePins(pins)}, opts...)
	return NewTriode(all...)
}

// DualTriode12AX7 builds a 12AX7 twin triode with the full octal-style
// pin overlay, heater pins included.
func DualTriode12AX7(opts ...TubeOption) *DualTriode {
	pins := PinNumbers{
		"a1": "1", "g1": "2", "k1": "3",
		"h1": "4", "h2": "5",
		"a2": "6", "g2": "7", "k2": "8",
	}
	all := append([]TubeOption{TubePins(pins)}, opts...)
	return NewDualTriode(all...)
}

// PentodeEL34 builds an EL34 power pentode with its suppressor grid
// brought out on pin 1.
func PentodeEL34(opts ...TubeOption) *Pentode {
	pins := PinNumbers{"g1": "5", "g2": "4", "g3": "1", "a": "3", "k": "8"}
	all := append([]TubeOption{TubePins(pins)}, opts...)
	return NewPentode(all...)
}

// PentodeKT66 builds a KT66 power pentode. Its suppressor grid is tied
// to the cathode internally, so the g3 label is present but blank.
func PentodeKT66(opts ...TubeOption) *Pentode {
	pins := PinNumbers{"g1": "5", "g2": "4", "g3": "", "a": "3", "k": "8"}
	all := append([]TubeOption{TubePins(pins)}, opts...)
	return NewPentode(all...)
}
