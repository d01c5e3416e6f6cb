package road

import "math"

// Shoulder is the fraction of the viewport width taken by each road shoulder
const Shoulder = 0.05

// Layout describes the drawable road for the current viewport.
// Every dimension is derived from the viewport so a resize recomputes all of it.
type Layout struct {
	Width     float64 // viewport width in logical pixels
	Height    float64 // viewport height in logical pixels
	LaneCount int
	LaneWidth float64

	// Player car dimensions and row
	CarWidth  float64
	CarHeight float64
	CarY      float64

	carWidthFrac float64
	carAspect    float64
	carRowFrac   float64
}

// NewLayout creates a layout for laneCount lanes.
// carWidth and carRow are fractions of the viewport, carAspect is height / width.
func NewLayout(laneCount int, carWidth, carAspect, carRow float64) *Layout {
	if laneCount < 1 {
		laneCount = 1
	}
	return &Layout{
		LaneCount:    laneCount,
		carWidthFrac: carWidth,
		carAspect:    carAspect,
		carRowFrac:   carRow,
	}
}

// Resize recomputes lane width and car dimensions for a new viewport
func (l *Layout) Resize(width, height float64) {
	l.Width = width
	l.Height = height
	l.LaneWidth = width / float64(l.LaneCount)
	l.CarWidth = width * l.carWidthFrac
	l.CarHeight = l.CarWidth * l.carAspect
	l.CarY = height * l.carRowFrac
}

// Ready reports whether Resize has been called with a usable viewport
func (l *Layout) Ready() bool {
	return l.LaneWidth > 0 && l.Height > 0
}

// ClampLane bounds a lane index to [0, LaneCount-1]
func (l *Layout) ClampLane(lane int) int {
	if lane < 0 {
		return 0
	}
	if lane >= l.LaneCount {
		return l.LaneCount - 1
	}
	return lane
}

// LaneCenterX returns the X coordinate of the centre of a lane
func (l *Layout) LaneCenterX(lane int) float64 {
	return float64(l.ClampLane(lane))*l.LaneWidth + l.LaneWidth/2
}

// LaneLeft returns the left edge of a body of width w centred in a lane
func (l *Layout) LaneLeft(lane int, w float64) float64 {
	return l.LaneCenterX(lane) - w/2
}

// LaneAt returns the lane containing X, clamped to the road
func (l *Layout) LaneAt(x float64) int {
	if l.LaneWidth <= 0 {
		return 0
	}
	return l.ClampLane(int(math.Floor(x / l.LaneWidth)))
}

// ShoulderWidth returns the width of one shoulder strip
func (l *Layout) ShoulderWidth() float64 {
	return l.Width * Shoulder
}

// Divider returns the X of the marking line between lane i-1 and lane i
func (l *Layout) Divider(i int) float64 {
	return float64(i) * l.LaneWidth
}

// AdvanceMarkings moves the lane-marking offset by distance, wrapped to the tile length
func AdvanceMarkings(offset, distance, tile float64) float64 {
	if tile <= 0 {
		return 0
	}
	offset = math.Mod(offset+distance, tile)
	if offset < 0 {
		offset += tile
	}
	return offset
}
