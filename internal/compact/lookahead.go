package compact

// ASCII control codes the compactor tests for directly.
const (
	eot = 0x04
	lf  = 0x0a
	cr  = 0x0d
	fs  = 0x1c
	gs  = 0x1d
	rs  = 0x1e
	us  = 0x1f
)

// Pseudo-tokens appended to the preprocessed message alongside raw byte
// values 0..255.
const (
	fnc1 = 256
	fnc2 = 257
	fnc3 = 258
	end  = 259
)

func digit(v int) bool { return v >= '0' && v <= '9' }

func fncx(v int) bool { return v >= fnc1 && v <= fnc3 }

// nDigits counts consecutive decimal digits in m starting at c.
func nDigits(m []int, c int) int {
	n := 0
	for digit(m[c+n]) {
		n++
	}
	return n
}

func datumA(v int) bool {
	return (v >= 0 && v <= 95) || fncx(v)
}

// datumB additionally accepts TAB, FS, GS, and RS once a data codeword has
// already been stored — mirroring the reference's PastFirstDatum gate.
func (e *encoder) datumB(v int) bool {
	return (v >= 32 && v <= 127) || (e.pastFirstDatum && (v == 9 || (v >= fs && v <= rs))) || fncx(v)
}

func crLf(m []int, c int) bool {
	return m[c] == cr && m[c+1] == lf
}

func digitPair(m []int, c int) bool {
	return digit(m[c]) && digit(m[c+1])
}

// seventeenTen recognizes the "17" + 6 digits + "10" date-like pattern
// packed by CODE_SET_C's SeventeenTen special case.
func seventeenTen(m []int, c int) bool {
	return nDigits(m, c) >= 10 && m[c] == '1' && m[c+1] == '7' && m[c+8] == '1' && m[c+9] == '0'
}

func binary(v int) bool { return v >= 128 && v <= 255 }

// eci reports whether m[c] begins an FNC2-tagged ECI designator (FNC2
// followed by 6 decimal digits) and, if so, returns its numeric value.
func eci(m []int, c int) (int, bool) {
	if m[c] == fnc2 && nDigits(m, c+1) >= 6 {
		v := 0
		for n := 0; n < 6; n++ {
			v = v*10 + (m[c+1+n] - '0')
		}
		return v, true
	}
	return 0, false
}

// aheadC measures how many Code Set C "savings units" lie ahead at c:
// a SeventeenTen group counts 4, a digit pair counts 1, and an FNCx escape
// counts 1 (since Set C can shift in and back out for a lone FNCx too).
func aheadC(m []int, c int) int {
	n := 0
	for {
		switch {
		case seventeenTen(m, c):
			c += 10
			n += 4
		case digitPair(m, c):
			c += 2
			n++
		case fncx(m[c]):
			c++
			n++
		default:
			return n
		}
	}
}

// tryC reports the Set C lookahead count at c, but only when starting there
// beats starting one character later — i.e. the digit run genuinely begins
// at c rather than merely continuing into it.
func tryC(m []int, c int) int {
	if !digit(m[c]) {
		return 0
	}
	n := aheadC(m, c)
	if n > aheadC(m, c+1) {
		return n
	}
	return 0
}

// aheadA measures how far Code Set A can usefully extend from c, yielding
// to Set C whenever a digit run there would pay off better.
func aheadA(m []int, c int) int {
	n := 0
	for {
		if tryC(m, c) >= 2 {
			return n
		}
		if v, ok := eci(m, c); ok {
			c += 7
			if v <= 49 {
				n += 2
			} else {
				n += 4
			}
			continue
		}
		if datumA(m[c]) {
			c++
			n++
			continue
		}
		return n
	}
}

// aheadB is aheadA's Set B counterpart; it also folds in CRLF pairs.
func (e *encoder) aheadB(m []int, c int) int {
	n := 0
	for {
		if tryC(m, c) >= 2 {
			return n
		}
		if v, ok := eci(m, c); ok {
			c += 7
			if v <= 49 {
				n += 2
			} else {
				n += 4
			}
			continue
		}
		if crLf(m, c) {
			c += 2
			n++
			continue
		}
		if e.datumB(m[c]) {
			c++
			n++
			continue
		}
		return n
	}
}
