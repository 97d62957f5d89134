package overlap

import "encoding/binary"

// interner maps sample values to dense ints so windows compare as []int.
type interner[T comparable] map[T]int

func (in interner[T]) id(v T) int {
	if id, ok := in[v]; ok {
		return id
	}
	id := len(in)
	in[v] = id

	return id
}

// extract returns one pattern per top-left window position of the
// [y][x] sample, scanning x outer and y inner. Each starts with Count 1.
// Complexity: O((w-W+1)·(h-W+1)·W²).
func extract[T comparable](sample [][]T, width, height, size int, in interner[T]) []Pattern[T] {
	out := make([]Pattern[T], 0, (width-size+1)*(height-size+1))
	for sx := 0; sx+size <= width; sx++ {
		for sy := 0; sy+size <= height; sy++ {
			p := Pattern[T]{
				Size:  size,
				Cells: make([]T, size*size),
				Count: 1,
				ids:   make([]int, size*size),
			}
			for y := 0; y < size; y++ {
				for x := 0; x < size; x++ {
					v := sample[sy+y][sx+x]
					p.Cells[y*size+x] = v
					p.ids[y*size+x] = in.id(v)
				}
			}
			out = append(out, p)
		}
	}

	return out
}

// dedup merges structurally equal patterns in place. The first occurrence
// keeps its position and gains 1 for every later duplicate.
// Complexity: O(n·W²).
func dedup[T comparable](ps []Pattern[T]) []Pattern[T] {
	seen := make(map[string]int, len(ps))
	out := ps[:0]
	var buf []byte
	for _, p := range ps {
		buf = buf[:0]
		for _, id := range p.ids {
			buf = binary.AppendUvarint(buf, uint64(id))
		}
		if at, ok := seen[string(buf)]; ok {
			out[at].Count++
			continue
		}
		seen[string(buf)] = len(out)
		out = append(out, p)
	}

	return out
}

// mirror appends the vertical mirror (rows reversed) of every pattern,
// then the horizontal mirror (columns reversed) of every pattern so far.
// Mirrors inherit their source's Count.
func mirror[T comparable](ps []Pattern[T]) []Pattern[T] {
	n := len(ps)
	for i := 0; i < n; i++ {
		ps = append(ps, ps[i].flip(false))
	}
	n = len(ps)
	for i := 0; i < n; i++ {
		ps = append(ps, ps[i].flip(true))
	}

	return ps
}

// flip returns a copy of p mirrored left-right when horizontal is set,
// top-bottom otherwise.
func (p Pattern[T]) flip(horizontal bool) Pattern[T] {
	q := Pattern[T]{
		Size:  p.Size,
		Cells: make([]T, len(p.Cells)),
		Count: p.Count,
		ids:   make([]int, len(p.ids)),
	}
	s := p.Size
	for y := 0; y < s; y++ {
		for x := 0; x < s; x++ {
			sx, sy := x, s-1-y
			if horizontal {
				sx, sy = s-1-x, y
			}
			q.Cells[y*s+x] = p.Cells[sy*s+sx]
			q.ids[y*s+x] = p.ids[sy*s+sx]
		}
	}

	return q
}
