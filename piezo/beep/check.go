//go:build !beepdebug

package beep

func checkCount(string, uint16, uint16, uint16) {}

func checkHz(float64) {}
