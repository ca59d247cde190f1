package device

// PackAlignment is the row alignment of pixel read backs, the GL default.
const PackAlignment = 4

// RowStride returns the bytes from the start of one row of a pixel read
// back to the next, with rows padded to a multiple of alignment.
func RowStride(width, bytesPerPixel, alignment int) int {
	row := width * bytesPerPixel
	if alignment <= 1 {
		return row
	}
	return (row + alignment - 1) / alignment * alignment
}

// ReadBufferSize returns the bytes a read back of the rectangle writes.
func ReadBufferSize(width, height, bytesPerPixel, alignment int) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	return RowStride(width, bytesPerPixel, alignment) * height
}

// CompactRows strips the row padding of a read back in place and returns
// the tightly packed pixels, bottom row first. It returns nil when buf is
// too short for the rectangle.
func CompactRows(buf []uint8, width, height, bytesPerPixel, alignment int) []uint8 {
	row := width * bytesPerPixel
	if row <= 0 || height <= 0 {
		return nil
	}
	stride := RowStride(width, bytesPerPixel, alignment)
	if len(buf) < stride*(height-1)+row {
		return nil
	}
	if stride != row {
		for y := 1; y < height; y++ {
			copy(buf[y*row:(y+1)*row], buf[y*stride:y*stride+row])
		}
	}
	return buf[:row*height]
}
