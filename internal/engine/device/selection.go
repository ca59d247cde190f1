package device

// ParseHits decodes a selection buffer into the name stacks of each hit.
// Each record is laid out as name count, min depth, max depth, names.
// Truncated trailing records are dropped.
func ParseHits(buffer []uint32, hits int) [][]uint32 {
	if hits <= 0 {
		return nil
	}

	out := make([][]uint32, 0, hits)
	i := 0
	for h := 0; h < hits; h++ {
		if i >= len(buffer) {
			break
		}
		n := int(buffer[i])
		start := i + 3
		end := start + n
		if end > len(buffer) {
			break
		}
		out = append(out, buffer[start:end])
		i = end
	}
	return out
}

// HitNames flattens the name stacks of every hit, in buffer order.
func HitNames(buffer []uint32, hits int) []uint32 {
	var names []uint32
	for _, stack := range ParseHits(buffer, hits) {
		names = append(names, stack...)
	}
	return names
}
