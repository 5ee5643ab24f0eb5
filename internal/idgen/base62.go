package idgen

const base62Chars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// Encode writes a non-negative number in base62. Negative input encodes its
// absolute value.
func Encode(num int64) string {
	if num == 0 {
		return "0"
	}
	if num < 0 {
		num = -num
	}

	var buf [11]byte // 62^11 > 2^63
	i := len(buf)
	for num > 0 {
		i--
		buf[i] = base62Chars[num%62]
		num /= 62
	}

	return string(buf[i:])
}
