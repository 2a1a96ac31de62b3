package components

import "fmt"

func percent(v, total int) float64 {
	if total <= 0 {
		return 0
	}

	return float64(v) * 100 / float64(total)
}

// ToStyle positions a key overlay relative to the frame, so it follows the
// image when the page is resized.
func ToStyle(k Key, width, height int) string {
	return fmt.Sprintf("left:%.2f%%;top:%.2f%%;width:%.2f%%;height:%.2f%%",
		percent(k.X, width), percent(k.Y, height), percent(k.Width, width), percent(k.Height, height))
}
