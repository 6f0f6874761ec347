package render

import (
	"image/color"
	"testing"
)

func TestFillStatusRGBA(t *testing.T) {
	status := []bool{true, false, true}
	buf := make([]byte, 4*len(status))

	alive := color.RGBA{R: 0x20, G: 0x40, B: 0x60, A: 0xff}
	dead := color.RGBA{R: 0x01, G: 0x02, B: 0x03, A: 0xff}
	fillStatusRGBA(buf, status, alive, dead)

	wantAlive := []byte{0x20, 0x40, 0x60, 0xff}
	wantDead := []byte{0x01, 0x02, 0x03, 0xff}
	for i, on := range status {
		want := wantDead
		if on {
			want = wantAlive
		}
		for c := 0; c < 4; c++ {
			if buf[i*4+c] != want[c] {
				t.Fatalf("cell %d channel %d: got %#02x, want %#02x", i, c, buf[i*4+c], want[c])
			}
		}
	}
}
