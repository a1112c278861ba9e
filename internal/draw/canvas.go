package draw

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
)

// Canvas is a drawing buffer with 2x vertical resolution using half-block
// characters. Each sub-pixel carries a palette color; rendering pairs the
// top and bottom sub-pixels of a terminal row into one cell, choosing
// foreground/background colors to show both.
type Canvas struct {
	termWidth      int     // Actual terminal columns
	termHeight     int     // Actual terminal rows
	subPixelHeight int     // termHeight * 2
	pixels         []Color // Flat slice: [y * termWidth + x]

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64 // In sub-pixels
	scaleX        float64
	scaleY        float64

	// Offset for centering when the terminal is larger than the render
	// area. 0-based terminal columns/rows to skip.
	offsetCol int
	offsetRow int

	// Reusable buffers to reduce per-frame allocations
	renderBuf       strings.Builder
	scaledBuf       []Point
	intersectionBuf []float64
	polygonBuf      []Point
}

// NewScaledCanvas creates a canvas that maps logical coordinates to
// terminal pixels. logicalWidth/Height define the coordinate space the
// game works in; termWidth/Height are the actual terminal dimensions.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	subPixelHeight := termHeight * 2
	return &Canvas{
		termWidth:      termWidth,
		termHeight:     termHeight,
		subPixelHeight: subPixelHeight,
		pixels:         make([]Color, subPixelHeight*termWidth),
		logicalWidth:   logicalWidth,
		logicalHeight:  logicalHeight,
		scaleX:         float64(termWidth) / logicalWidth,
		scaleY:         float64(subPixelHeight) / logicalHeight,
	}
}

// Resize updates the canvas for new terminal dimensions, keeping the
// logical coordinate space.
func (c *Canvas) Resize(termWidth, termHeight int) {
	subPixelHeight := termHeight * 2
	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]Color, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}
	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// Clear resets all pixels.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// setPixel sets a pixel at terminal sub-pixel coordinates (no scaling).
func (c *Canvas) setPixel(x, y int, col Color) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = col
	}
}

// SetFloat sets a pixel at logical coordinates (applies scaling).
func (c *Canvas) SetFloat(x, y float64, col Color) {
	px := int(math.Round(x * c.scaleX))
	py := int(math.Round(y * c.scaleY))
	c.setPixel(px, py, col)
}

// DrawLine draws a line between two logical points using Bresenham's
// algorithm.
func (c *Canvas) DrawLine(p1, p2 Point, col Color) {
	x1 := int(math.Round(p1.X * c.scaleX))
	y1 := int(math.Round(p1.Y * c.scaleY))
	x2 := int(math.Round(p2.X * c.scaleX))
	y2 := int(math.Round(p2.Y * c.scaleY))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1, col)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawPolygon draws a polygon outline, filling the interior when filled
// is true.
func (c *Canvas) DrawPolygon(points []Point, filled bool, col Color) {
	if len(points) < 3 {
		return
	}
	if filled {
		c.fillPolygon(points, col)
	}
	n := len(points)
	for i := 0; i < n; i++ {
		c.DrawLine(points[i], points[(i+1)%n], col)
	}
}

// DrawRect draws an axis-aligned rectangle in logical coordinates.
func (c *Canvas) DrawRect(minX, minY, maxX, maxY float64, filled bool, col Color) {
	c.DrawPolygon([]Point{
		{X: minX, Y: minY},
		{X: maxX, Y: minY},
		{X: maxX, Y: maxY},
		{X: minX, Y: maxY},
	}, filled, col)
}

// fillPolygon fills a polygon using the scanline algorithm in pixel space.
func (c *Canvas) fillPolygon(points []Point, col Color) {
	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]
	for i, p := range points {
		scaled[i] = Point{X: p.X * c.scaleX, Y: p.Y * c.scaleY}
	}

	minY, maxY := scaled[0].Y, scaled[0].Y
	for _, p := range scaled {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	yStart := int(math.Floor(minY))
	yEnd := int(math.Ceil(maxY))

	for y := yStart; y <= yEnd; y++ {
		scanY := float64(y) + 0.5

		intersections := c.intersectionBuf[:0]
		n := len(scaled)
		for i := 0; i < n; i++ {
			p1 := scaled[i]
			p2 := scaled[(i+1)%n]
			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				intersections = append(intersections, p1.X+t*(p2.X-p1.X))
			}
		}
		c.intersectionBuf = intersections

		sort.Float64s(intersections)

		for i := 0; i+1 < len(intersections); i += 2 {
			xStart := int(math.Ceil(intersections[i]))
			xEnd := int(math.Floor(intersections[i+1]))
			for x := xStart; x <= xEnd; x++ {
				c.setPixel(x, y, col)
			}
		}
	}
}

// maxChunkSize is the maximum bytes to write at once. 1400 bytes stays
// under a typical MTU for smooth SSH transmission.
const maxChunkSize = 1400

// Render outputs the canvas using half-block characters. When the top
// and bottom sub-pixels of a cell differ, the upper-half block is drawn
// with the top color as foreground and the bottom color as background.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 16)

	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth

		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			var bottom Color
			if row*2+1 < c.subPixelHeight {
				bottom = c.pixels[bottomOffset+col]
			}
			if top == ColorNone && bottom == ColorNone {
				continue
			}

			fmt.Fprintf(&c.renderBuf, "\033[%d;%dH", row+1+c.offsetRow, col+1+c.offsetCol)
			switch {
			case top != ColorNone && bottom != ColorNone && top == bottom:
				c.renderBuf.WriteString(Fg(top))
				c.renderBuf.WriteRune(BlockFull)
			case top != ColorNone && bottom != ColorNone:
				c.renderBuf.WriteString(Fg(top))
				c.renderBuf.WriteString(bgCodes[bottom])
				c.renderBuf.WriteRune(BlockUpperHalf)
			case top != ColorNone:
				c.renderBuf.WriteString(Fg(top))
				c.renderBuf.WriteRune(BlockUpperHalf)
			default:
				c.renderBuf.WriteString(Fg(bottom))
				c.renderBuf.WriteRune(BlockLowerHalf)
			}
			c.renderBuf.WriteString(Reset)
		}
	}

	// Write in chunks for optimal network flow.
	data := c.renderBuf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		io.WriteString(w, chunk)
		data = data[len(chunk):]
	}
}

// RenderBorder draws a box border around the canvas area when offsets
// leave room for one.
func (c *Canvas) RenderBorder(w io.Writer) {
	hasH := c.offsetCol >= 1
	hasV := c.offsetRow >= 1

	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1

	var buf strings.Builder
	buf.Grow((c.termWidth+2)*2 + c.termHeight*24)

	if hasV {
		if hasH {
			fmt.Fprintf(&buf, "\033[%d;%dH┌%s┐", top, left, strings.Repeat("─", c.termWidth))
			fmt.Fprintf(&buf, "\033[%d;%dH└%s┘", bottom, left, strings.Repeat("─", c.termWidth))
		} else {
			fmt.Fprintf(&buf, "\033[%d;%dH%s", top, c.offsetCol+1, strings.Repeat("─", c.termWidth))
			fmt.Fprintf(&buf, "\033[%d;%dH%s", bottom, c.offsetCol+1, strings.Repeat("─", c.termWidth))
		}
	}
	if hasH {
		startRow := top + 1
		endRow := bottom
		if !hasV {
			startRow = c.offsetRow + 1
			endRow = c.offsetRow + c.termHeight + 1
		}
		for row := startRow; row < endRow; row++ {
			fmt.Fprintf(&buf, "\033[%d;%dH│\033[%d;%dH│", row, left, row, right)
		}
	}

	io.WriteString(w, buf.String())
}

// TerminalWidth returns the actual terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the actual terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// BorrowPoints returns a reusable point slice of length n, valid until
// the next call. Avoids per-frame allocations for polygon rendering.
func (c *Canvas) BorrowPoints(n int) []Point {
	if cap(c.polygonBuf) < n {
		c.polygonBuf = make([]Point, n)
	}
	return c.polygonBuf[:n]
}
