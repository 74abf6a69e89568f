package script

// File is a parsed layout script: a sequence of statements executed in
// order against one drawing.
type File struct {
	Statements []*Statement `parser:"@@*"`
}

// Statement is one line of the script.
type Statement struct {
	Place *PlaceStmt `parser:"  @@"`
	Tap   *TapStmt   `parser:"| @@"`
}

// PlaceStmt instantiates a catalog symbol under an instance name.
// Example: place v1 12ax7 heaters=true at 4, 0 rotate 90 mirror
type PlaceStmt struct {
	Name    string    `parser:"KwPlace @Word"`
	Kind    string    `parser:"@Word"`
	Options []*Option `parser:"@@*"`
	At      *Coord    `parser:"( KwAt @@ )?"`
	Rotate  *float64  `parser:"( KwRotate @Number )?"`
	Mirror  bool      `parser:"@KwMirror?"`
}

// Option is a key=value construction option passed to the catalog.
// List values use commas: secondaries=2,3
type Option struct {
	Key    string   `parser:"@Word Assign"`
	Values []string `parser:"@( Word | Number ) ( Comma @( Word | Number ) )*"`
}

// Coord is an explicit placement position.
type Coord struct {
	X float64 `parser:"@Number Comma"`
	Y float64 `parser:"@Number"`
}

// TapStmt adds a named tap anchor to a placed transformer.
// Examples:
//
//	tap tr ct 2 left
//	tap tr mid 1 winding 1
type TapStmt struct {
	Symbol  string `parser:"KwTap @Word"`
	Name    string `parser:"@Word"`
	Pos     int    `parser:"@Number"`
	Winding *int   `parser:"( KwWinding @Number"`
	Side    string `parser:"| @Word? )"`
}
