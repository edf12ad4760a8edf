package util

func BoolToByte(b bool, v byte) byte {
	if b {
		return v
	}
	return 0
}

// Fill returns n copies of v.
func Fill(n int, v byte) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = v
	}
	return b
}

// FirstDiff returns the index of the first differing byte, or -1 when a and b are equal.
func FirstDiff(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	if len(a) != len(b) {
		return n
	}
	return -1
}
