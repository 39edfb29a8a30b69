package layout

// Point is a position in canvas units.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// KaryoCoord is the box of one chromosome in the linear layout. Width is
// negative for reversed chromosomes.
type KaryoCoord struct {
	Karyo  string  `json:"karyo"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Genome int     `json:"genome"`
}

// LinkCoord is the quadrilateral of one link in the linear layout. The
// source always lies on the upper row.
type LinkCoord struct {
	LinkID   string `json:"linkID"`
	Source0  Point  `json:"source0"`
	Source1  Point  `json:"source1"`
	Target0  Point  `json:"target0"`
	Target1  Point  `json:"target1"`
	Adjacent bool   `json:"adjacent"`
}

// Tick is a vertical tick segment in the linear layout.
type Tick struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// FeatureCoord is the shape of one feature in the linear layout. Rect
// features use X, Y, Width and Height; arrow features use Arrow.
type FeatureCoord struct {
	ID     string  `json:"id"`
	Karyo  string  `json:"karyo"`
	Group  string  `json:"group"`
	Form   string  `json:"form"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Arrow  []Point `json:"arrowData,omitempty"`
}

// LabelCoord is the anchor of one text label.
type LabelCoord struct {
	Name string  `json:"name"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// ArcCoord is the angular extent of one chromosome in the circular layout,
// in radians. StartAngle exceeds EndAngle for reversed chromosomes.
type ArcCoord struct {
	Karyo      string  `json:"karyo"`
	StartAngle float64 `json:"startAngle"`
	EndAngle   float64 `json:"endAngle"`
}

// AngleSpan is a pair of angles in radians.
type AngleSpan struct {
	StartAngle float64 `json:"startAngle"`
	EndAngle   float64 `json:"endAngle"`
}

// ChordCoord is one link in the circular layout.
type ChordCoord struct {
	LinkID string    `json:"linkID"`
	Source AngleSpan `json:"source"`
	Target AngleSpan `json:"target"`
}
