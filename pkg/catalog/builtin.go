package catalog

import (
	"github.com/schemalab/symkit/pkg/symbols"
)

// The built-in generator set. Each builder maps raw string options onto
// the typed constructor options of pkg/symbols.

func init() {
	Register(Entry{
		Name:        "speaker",
		Description: "Speaker with cone body and horn outline",
		Build: func(opts Options) (symbols.Symbol, error) {
			s := newOptionSet(opts)
			if err := s.finish("speaker"); err != nil {
				return nil, err
			}
			return symbols.NewSpeaker(), nil
		},
	})

	Register(Entry{
		Name:        "mic",
		Description: "Microphone capsule",
		Build: func(opts Options) (symbols.Symbol, error) {
			s := newOptionSet(opts)
			if err := s.finish("mic"); err != nil {
				return nil, err
			}
			return symbols.NewMic(), nil
		},
	})

	Register(Entry{
		Name:        "motor",
		Description: "Two-terminal motor",
		Build: func(opts Options) (symbols.Symbol, error) {
			s := newOptionSet(opts)
			if err := s.finish("motor"); err != nil {
				return nil, err
			}
			return symbols.NewMotor(), nil
		},
	})

	Register(Entry{
		Name:        "audiojack",
		Description: "Phone jack with optional ring and switch contacts",
		Build:       buildAudioJack,
	})

	Register(Entry{
		Name:        "triode",
		Description: "Triode tube, full or half envelope",
		Build: func(opts Options) (symbols.Symbol, error) {
			s := newOptionSet(opts)
			tubeOpts, err := tubeOptions(s)
			if err != nil {
				return nil, err
			}
			if err := s.finish("triode"); err != nil {
				return nil, err
			}
			return finishTube(symbols.NewTriode(tubeOpts...)), nil
		},
	})

	Register(Entry{
		Name:        "dualtriode",
		Description: "Twin triode in one envelope",
		Build: func(opts Options) (symbols.Symbol, error) {
			s := newOptionSet(opts)
			tubeOpts, err := tubeOptions(s)
			if err != nil {
				return nil, err
			}
			if err := s.finish("dualtriode"); err != nil {
				return nil, err
			}
			return finishTube(symbols.NewDualTriode(tubeOpts...)), nil
		},
	})

	Register(Entry{
		Name:        "pentode",
		Description: "Pentode tube",
		Build: func(opts Options) (symbols.Symbol, error) {
			s := newOptionSet(opts)
			tubeOpts, err := tubeOptions(s)
			if err != nil {
				return nil, err
			}
			if err := s.finish("pentode"); err != nil {
				return nil, err
			}
			return finishTube(symbols.NewPentode(tubeOpts...)), nil
		},
	})

	Register(Entry{
		Name:        "12ax7",
		Description: "12AX7 twin triode with canonical pin numbers",
		Build: func(opts Options) (symbols.Symbol, error) {
			s := newOptionSet(opts)
			tubeOpts, err := tubeOptions(s)
			if err != nil {
				return nil, err
			}
			if err := s.finish("12ax7"); err != nil {
				return nil, err
			}
			return finishTube(symbols.DualTriode12AX7(tubeOpts...)), nil
		},
	})

	Register(Entry{
		Name:        "half12ax7",
		Description: "One half of a 12AX7 with canonical pin numbers",
		Build: func(opts Options) (symbols.Symbol, error) {
			s := newOptionSet(opts)
			side := symbols.Half(s.string("half", "left"))
			heaters, err := s.flag("heaters")
			if err != nil {
				return nil, err
			}
			if err := s.finish("half12ax7"); err != nil {
				return nil, err
			}
			var extra []symbols.TubeOption
			if heaters {
				extra = append(extra, symbols.TubeHeaters())
			}
			return finishTube(symbols.Half12AX7(side, extra...)), nil
		},
	})

	Register(Entry{
		Name:        "el34",
		Description: "EL34 power pentode with canonical pin numbers",
		Build: func(opts Options) (symbols.Symbol, error) {
			s := newOptionSet(opts)
			tubeOpts, err := tubeOptions(s)
			if err != nil {
				return nil, err
			}
			if err := s.finish("el34"); err != nil {
				return nil, err
			}
			return finishTube(symbols.PentodeEL34(tubeOpts...)), nil
		},
	})

	Register(Entry{
		Name:        "kt66",
		Description: "KT66 power pentode with canonical pin numbers",
		Build: func(opts Options) (symbols.Symbol, error) {
			s := newOptionSet(opts)
			tubeOpts, err := tubeOptions(s)
			if err != nil {
				return nil, err
			}
			if err := s.finish("kt66"); err != nil {
				return nil, err
			}
			return finishTube(symbols.PentodeKT66(tubeOpts...)), nil
		},
	})

	Register(Entry{
		Name:        "transformer",
		Description: "Transformer with tappable windings",
		Build:       buildTransformer,
	})
}

func buildAudioJack(opts Options) (symbols.Symbol, error) {
	s := newOptionSet(opts)
	var jackOpts []symbols.JackOption

	for key, opt := range map[string]symbols.JackOption{
		"ring":       symbols.JackRing(),
		"ringswitch": symbols.JackRingSwitch(),
		"switch":     symbols.JackTipSwitch(),
	} {
		on, err := s.flag(key)
		if err != nil {
			return nil, err
		}
		if on {
			jackOpts = append(jackOpts, opt)
		}
	}

	if dots, err := s.flag("nodots"); err != nil {
		return nil, err
	} else if dots {
		jackOpts = append(jackOpts, symbols.JackNoDots())
	}
	if closed, err := s.flag("closed"); err != nil {
		return nil, err
	} else if closed {
		jackOpts = append(jackOpts, symbols.JackClosed())
	}
	if noext, err := s.flag("noextend"); err != nil {
		return nil, err
	} else if noext {
		jackOpts = append(jackOpts, symbols.JackNoSleeveExtend())
	}
	if s.has("radius") {
		r, err := s.float("radius", 0.075)
		if err != nil {
			return nil, err
		}
		jackOpts = append(jackOpts, symbols.JackDotRadius(r))
	}

	if err := s.finish("audiojack"); err != nil {
		return nil, err
	}
	return symbols.NewAudioJack(jackOpts...), nil
}

// tubeOptions parses the options common to the tube family.
func tubeOptions(s *optionSet) ([]symbols.TubeOption, error) {
	var out []symbols.TubeOption
	if half := s.string("half", ""); half != "" {
		out = append(out, symbols.TubeHalf(symbols.Half(half)))
	}
	heaters, err := s.flag("heaters")
	if err != nil {
		return nil, err
	}
	if heaters {
		out = append(out, symbols.TubeHeaters())
	}
	return out, nil
}

// heaterDrawer is the tube-family surface for filament drawing.
type heaterDrawer interface {
	symbols.Symbol
	HeatersRequested() bool
	DrawHeaters()
}

// finishTube wires the heater flag to the draw operation: the catalog is
// the caller that decides requested filaments should be visible.
func finishTube(t heaterDrawer) symbols.Symbol {
	if t.HeatersRequested() {
		t.DrawHeaters()
	}
	return t
}

func buildTransformer(opts Options) (symbols.Symbol, error) {
	s := newOptionSet(opts)
	var xopts []symbols.XformOption

	if s.has("t1") {
		t1, err := s.int("t1", 4)
		if err != nil {
			return nil, err
		}
		xopts = append(xopts, symbols.XformPrimary(t1))
	}
	if s.has("t2") {
		t2, err := s.int("t2", 4)
		if err != nil {
			return nil, err
		}
		xopts = append(xopts, symbols.XformSecondary(t2))
	}
	secondaries, err := s.intList("secondaries")
	if err != nil {
		return nil, err
	}
	if len(secondaries) > 0 {
		xopts = append(xopts, symbols.XformSecondaries(secondaries...))
	}
	if nocore, err := s.flag("nocore"); err != nil {
		return nil, err
	} else if nocore {
		xopts = append(xopts, symbols.XformNoCore())
	}
	if loop, err := s.flag("loop"); err != nil {
		return nil, err
	} else if loop {
		xopts = append(xopts, symbols.XformLoop())
	}

	if err := s.finish("transformer"); err != nil {
		return nil, err
	}
	return symbols.NewTransformer(xopts...), nil
}
