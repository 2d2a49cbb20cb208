package world

// Room is the bounding box of a room carved during generation. Both corners
// are inclusive.
type Room struct {
	MinX, MinY int // Top-left corner
	MaxX, MaxY int // Bottom-right corner
}

// NewRoom returns a width x height room centred on c.
func NewRoom(c Coord, width, height int) Room {
	minX := c.X - width/2
	minY := c.Y - height/2
	return Room{
		MinX: minX,
		MinY: minY,
		MaxX: minX + width - 1,
		MaxY: minY + height - 1,
	}
}

// Width returns the number of columns covered by the room.
func (r Room) Width() int {
	return r.MaxX - r.MinX + 1
}

// Height returns the number of rows covered by the room.
func (r Room) Height() int {
	return r.MaxY - r.MinY + 1
}

// Center returns the center coordinates of the room.
func (r Room) Center() Coord {
	return Coord{X: (r.MinX + r.MaxX) / 2, Y: (r.MinY + r.MaxY) / 2}
}

// Contains returns true if the given point is inside the room.
func (r Room) Contains(c Coord) bool {
	return c.X >= r.MinX && c.X <= r.MaxX && c.Y >= r.MinY && c.Y <= r.MaxY
}

// Intersects returns true if this room overlaps with another room.
func (r Room) Intersects(other Room) bool {
	return r.MinX <= other.MaxX &&
		r.MaxX >= other.MinX &&
		r.MinY <= other.MaxY &&
		r.MaxY >= other.MinY
}

// Clamp trims the room so it lies inside a width x height grid.
func (r Room) Clamp(width, height int) Room {
	r.MinX = max(r.MinX, 0)
	r.MinY = max(r.MinY, 0)
	r.MaxX = min(r.MaxX, width-1)
	r.MaxY = min(r.MaxY, height-1)
	return r
}
