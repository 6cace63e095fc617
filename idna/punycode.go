// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package idna

// Punycode (RFC 3492) over []rune, reporting failures as a plain error
// so processLabel can classify them.

const (
	maxInt32    = 2147483647
	base        = 36
	tMin        = 1
	tMax        = 26
	baseMinusT  = base - tMin
	skew        = 38
	damp        = 700
	initialBias = 72
	initialN    = 128
)

func adaptBias(delta, numPoints int32, firstTime bool) int32 {
	if firstTime {
		delta /= damp
	} else {
		delta /= 2
	}
	delta += delta / numPoints
	k := int32(0)
	for delta > baseMinusT*tMax/2 {
		delta /= baseMinusT
		k += base
	}
	return k + (baseMinusT+1)*delta/(delta+skew)
}

func basicToDigit(b byte) int32 {
	switch {
	case b >= '0' && b <= '9':
		return int32(b - 22)
	case b >= 'A' && b <= 'Z':
		return int32(b - 'A')
	case b >= 'a' && b <= 'z':
		return int32(b - 'a')
	}
	return base
}

func digitToBasic(digit int32) byte {
	switch {
	case digit >= 0 && digit <= 25:
		return byte(digit) + 'a'
	case digit >= 26 && digit <= 35:
		return byte(digit) - 26 + '0'
	}
	panic("idna: digitToBasic: out of range")
}

// punycodeDecode converts the ASCII remainder of an "xn--" label to
// Unicode runes. It fails on overflow, a non-basic byte before the
// final delimiter, or truncated input.
func punycodeDecode(s string) ([]rune, error) {
	basicEnd := -1
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '-' {
			basicEnd = i
			break
		}
	}
	output := make([]rune, 0, len(s))
	for i := 0; i < basicEnd; i++ {
		b := s[i]
		if b >= 0x80 {
			return nil, ErrInternal
		}
		output = append(output, rune(b))
	}

	i, n, bias, pos := int32(0), int32(initialN), int32(initialBias), basicEnd+1

	for pos < len(s) {
		oldi, w, k := i, int32(1), int32(base)
		for {
			if pos >= len(s) {
				return nil, ErrInternal
			}
			digit := basicToDigit(s[pos])
			pos++
			if digit >= base || digit > (maxInt32-i)/w {
				return nil, ErrInternal
			}
			i += digit * w
			t := k - bias
			if t < tMin {
				t = tMin
			} else if t > tMax {
				t = tMax
			}
			if digit < t {
				break
			}
			if pos == len(s) {
				return nil, ErrInternal
			}
			bmt := int32(base) - t
			if w > maxInt32/bmt {
				return nil, ErrInternal
			}
			w *= bmt
			k += base
		}
		out := int32(len(output) + 1)
		bias = adaptBias(i-oldi, out, oldi == 0)
		if i/out > maxInt32-n {
			return nil, ErrInternal
		}
		n += i / out
		i %= out

		output = append(output, 0)
		copy(output[i+1:], output[i:])
		output[i] = n

		i++
	}
	return output, nil
}

// punycodeEncode converts a sequence of runes to the ASCII remainder of
// an "xn--" label (without the prefix).
func punycodeEncode(input []rune) (string, error) {
	n := int32(initialN)
	delta := int32(0)
	bias := int32(initialBias)

	var output []byte
	nonBasic := 0
	for _, r := range input {
		if r >= 0x80 {
			nonBasic++
			continue
		}
		output = append(output, byte(r))
	}
	basicLength := len(output)
	handled := basicLength
	if basicLength > 0 {
		output = append(output, '-')
	}

	for nonBasic > 0 {
		m := int32(maxInt32)
		for _, r := range input {
			if int32(r) >= n && int32(r) < m {
				m = int32(r)
			}
		}
		handledPlusOne := int32(handled + 1)
		if m-n > (maxInt32-delta)/handledPlusOne {
			return "", ErrInternal
		}
		delta += (m - n) * handledPlusOne
		n = m
		for _, r := range input {
			cp := int32(r)
			if cp < n {
				delta++
				if delta < 0 {
					return "", ErrInternal
				}
				continue
			}
			if cp > n {
				continue
			}
			q := delta
			for k := int32(base); ; k += base {
				t := k - bias
				if t < tMin {
					t = tMin
				} else if t > tMax {
					t = tMax
				}
				if q < t {
					break
				}
				qmt := q - t
				bmt := int32(base) - t
				output = append(output, digitToBasic(t+qmt%bmt))
				q = qmt / bmt
			}
			output = append(output, digitToBasic(q))
			bias = adaptBias(delta, handledPlusOne, handled == basicLength)
			delta = 0
			handled++
			nonBasic--
		}
		delta++
		n++
	}
	return string(output), nil
}
