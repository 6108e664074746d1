package models

// EMUPerPixel is the number of EMUs (English Metric Units) per pixel at 96 DPI.
// 1 inch = 914400 EMU, 1 inch = 96 pixels at 96 DPI
// Therefore: 914400 / 96 = 9525 EMU per pixel
const EMUPerPixel = 9525

// EMUToPixels converts EMU (English Metric Units) to pixels at 96 DPI.
// Excel uses EMU for internal coordinate representation.
func EMUToPixels(emu int64) int {
	return int(emu / EMUPerPixel)
}

// PixelsToEMU converts pixels at 96 DPI to EMU.
func PixelsToEMU(px int) int64 {
	return int64(px) * EMUPerPixel
}

// HundredthsToPoints converts a DrawingML text size (hundredths of a point) to points.
func HundredthsToPoints(sz int) float64 {
	return float64(sz) / 100
}
