package device

import (
	"reflect"
	"testing"
)

func TestParseHits(t *testing.T) {
	tests := []struct {
		name   string
		buffer []uint32
		hits   int
		want   [][]uint32
	}{
		{
			name: "no hits",
			hits: 0,
		},
		{
			name:   "overflow",
			buffer: []uint32{1, 0, 0, 7},
			hits:   -1,
		},
		{
			name:   "two hits",
			buffer: []uint32{2, 10, 20, 100, 4, 1, 5, 5, 7},
			hits:   2,
			want:   [][]uint32{{100, 4}, {7}},
		},
		{
			name:   "empty name stack",
			buffer: []uint32{0, 1, 2, 1, 3, 4, 9},
			hits:   2,
			want:   [][]uint32{{}, {9}},
		},
		{
			name:   "truncated",
			buffer: []uint32{1, 0, 0, 3, 4, 0, 0, 8},
			hits:   2,
			want:   [][]uint32{{3}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseHits(tt.buffer, tt.hits)
			if len(got) != len(tt.want) {
				t.Fatalf("ParseHits() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if len(got[i]) != len(tt.want[i]) {
					t.Fatalf("hit %d = %v, want %v", i, got[i], tt.want[i])
				}
				for j := range got[i] {
					if got[i][j] != tt.want[i][j] {
						t.Errorf("hit %d = %v, want %v", i, got[i], tt.want[i])
					}
				}
			}
		})
	}
}

func TestHitNames(t *testing.T) {
	got := HitNames([]uint32{2, 0, 0, 50, 3, 1, 0, 0, 6}, 2)
	want := []uint32{50, 3, 6}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("HitNames() = %v, want %v", got, want)
	}
}
