package utils

func CeilDiv(a, b int) int {
	if b <= 0 {
		return a
	}
	return (a + b - 1) / b
}

func IntMin(a, b int) int {
	if a < b {
		return a
	}
	return b
}
