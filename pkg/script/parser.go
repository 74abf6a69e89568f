// Package script parses the layout placement DSL. A script places
// catalog symbols into a drawing, chains their positions, and declares
// transformer taps:
//
//	place v1 half12ax7 half=left heaters=true
//	place out transformer t1=6 secondaries=2,2 at 4, 0
//	tap out ct 2 left
package script

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"

	"github.com/schemalab/symkit/pkg/catalog"
	"github.com/schemalab/symkit/pkg/drawing"
	"github.com/schemalab/symkit/pkg/geom"
	"github.com/schemalab/symkit/pkg/symbols"
)

// Parser parses layout scripts.
type Parser struct {
	parser *participle.Parser[File]
}

// NewParser builds the script parser.
func NewParser() (*Parser, error) {
	parser, err := participle.Build[File](
		participle.Lexer(LayoutLexer),
		participle.Elide("Comment", "Whitespace"),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}
	return &Parser{parser: parser}, nil
}

// Parse parses a script from a reader.
func (p *Parser) Parse(r io.Reader) (*File, error) {
	f, err := p.parser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return f, nil
}

// ParseString parses a script from a string.
func (p *Parser) ParseString(input string) (*File, error) {
	f, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return f, nil
}

// ParseFile parses a script from a file path.
func (p *Parser) ParseFile(filename string) (*File, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()
	return p.Parse(file)
}

// Build executes a parsed script and returns the resulting drawing.
func Build(f *File) (*drawing.Drawing, error) {
	d := drawing.New()
	for _, stmt := range f.Statements {
		switch {
		case stmt.Place != nil:
			if err := execPlace(d, stmt.Place); err != nil {
				return nil, err
			}
		case stmt.Tap != nil:
			if err := execTap(d, stmt.Tap); err != nil {
				return nil, err
			}
		}
	}
	return d, nil
}

// Load parses and executes a script in one step.
func Load(r io.Reader) (*drawing.Drawing, error) {
	p, err := NewParser()
	if err != nil {
		return nil, err
	}
	f, err := p.Parse(r)
	if err != nil {
		return nil, err
	}
	return Build(f)
}

// LoadFile parses and executes a script file.
func LoadFile(filename string) (*drawing.Drawing, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()
	return Load(file)
}

func execPlace(d *drawing.Drawing, p *PlaceStmt) error {
	opts := catalog.Options{}
	for _, o := range p.Options {
		opts[o.Key] = strings.Join(o.Values, ",")
	}
	sym, err := catalog.Build(p.Kind, opts)
	if err != nil {
		return fmt.Errorf("place %s: %w", p.Name, err)
	}

	var placeOpts []drawing.PlaceOption
	if p.Mirror {
		placeOpts = append(placeOpts, drawing.MirrorX())
	}
	if p.Rotate != nil {
		placeOpts = append(placeOpts, drawing.Rotate(*p.Rotate))
	}
	if p.At != nil {
		placeOpts = append(placeOpts, drawing.At(geom.Pt(p.At.X, p.At.Y)))
	}
	if err := d.Add(p.Name, sym, placeOpts...); err != nil {
		return fmt.Errorf("place %s: %w", p.Name, err)
	}
	return nil
}

func execTap(d *drawing.Drawing, t *TapStmt) error {
	sym, ok := d.Symbol(t.Symbol)
	if !ok {
		return fmt.Errorf("tap %s: unknown instance %q", t.Name, t.Symbol)
	}
	xf, ok := sym.(*symbols.Transformer)
	if !ok {
		return fmt.Errorf("tap %s: instance %q is not a transformer", t.Name, t.Symbol)
	}
	if t.Winding != nil {
		if err := xf.SecondaryTap(t.Name, *t.Winding, t.Pos); err != nil {
			return fmt.Errorf("tap %s: %w", t.Name, err)
		}
		return nil
	}
	side := symbols.TapSide(t.Side)
	if t.Side == "" {
		side = symbols.TapPrimary
	}
	if err := xf.Tap(t.Name, t.Pos, side); err != nil {
		return fmt.Errorf("tap %s: %w", t.Name, err)
	}
	return nil
}
