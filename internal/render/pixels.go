package render

import "image/color"

// fillStatusRGBA converts per-cell alive flags into RGBA pixels in buf,
// using the alive color for true cells and the dead color otherwise. buf
// must hold 4 bytes per cell.
func fillStatusRGBA(buf []byte, status []bool, alive, dead color.Color) {
	rOn, gOn, bOn, aOn := alive.RGBA()
	rOff, gOff, bOff, aOff := dead.RGBA()
	for i, on := range status {
		base := i * 4
		if on {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}
