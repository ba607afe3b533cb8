// Package compact implements DotCode's Code-128-style message compaction:
// it turns a message (with Set A/B/C, Binary mode, FNC1/2/3 escapes, ECI
// designators, and Macro headers) into the stream of codeword values 0..112
// that the rest of the encoder feeds through Reed–Solomon and lattice
// placement.
package compact

// Mode identifies which of DotCode's four compaction sets is active.
const (
	CodeSetA = iota
	CodeSetB
	CodeSetC
	BinaryMode
)

// Result is the outcome of compacting a message.
type Result struct {
	// Codewords holds the data codeword values, each in 0..112.
	Codewords []int
	// FinalMode is the compaction mode active when the message ran out,
	// needed by AddPads to decide whether a symbol-separator pad belongs
	// before the fill codewords.
	FinalMode int
}

// Encode compacts msg into DotCode data codewords. With literal false, "#"
// introduces an escape: "##" is a literal '#', "#0".."#3" are NUL/FNC1/
// FNC2/FNC3, and any other character after "#" is an error. With literal
// true, every byte of msg is taken as-is and FNC escapes cannot be produced.
func Encode(msg []byte, literal bool) (Result, error) {
	tokens, err := preprocess(msg, literal)
	if err != nil {
		return Result{}, err
	}
	e := &encoder{m: tokens, mode: CodeSetC}
	e.run()
	return Result{Codewords: e.cw, FinalMode: e.mode}, nil
}

// AddPads appends n fill codewords to a compacted codeword stream so it
// reaches a target data-word count. If the stream ended in Binary mode, the
// first pad is a symbol-separator (109) rather than an ordinary pad (106),
// matching the reference encoder's AddPads.
func AddPads(codewords []int, finalMode int, n int) []int {
	if n <= 0 {
		return codewords
	}
	if finalMode == BinaryMode {
		codewords = append(codewords, 109)
		n--
	}
	for ; n > 0; n-- {
		codewords = append(codewords, 106)
	}
	return codewords
}

// preprocess expands "#" escapes (unless literal) into the token stream and
// appends trailing `end` sentinels so every lookahead helper's fixed-offset
// probes (the deepest is SeventeenTen's 10-ahead) stay in bounds without
// needing bounds checks of their own.
func preprocess(msg []byte, literal bool) ([]int, error) {
	out := make([]int, 0, len(msg)+16)
	for i := 0; i < len(msg); i++ {
		c := msg[i]
		if c != '#' || literal {
			out = append(out, int(c))
			continue
		}
		i++
		if i >= len(msg) {
			return nil, ErrMalformedEscape
		}
		switch msg[i] {
		case '#':
			out = append(out, '#')
		case '0':
			out = append(out, 0)
		case '1':
			out = append(out, fnc1)
		case '2':
			out = append(out, fnc2)
		case '3':
			out = append(out, fnc3)
		default:
			return nil, ErrMalformedEscape
		}
	}
	for i := 0; i < 16; i++ {
		out = append(out, end)
	}
	return out, nil
}

// encoder walks the preprocessed token stream and emits codewords,
// tracking the handful of pieces of state the reference implementation
// carries as globals: the active mode, whether a shift is pending, the
// Macro-header state, the binary-mode base-103 accumulator, and whether any
// data codeword has been stored yet (several escapes behave differently
// before the first one).
type encoder struct {
	m   []int
	pos int

	mode           int
	pastFirstDatum bool
	insideMacro    int // 0 = not in a macro; 1 = RS+EOT terminator; 2 = EOT terminator

	nshift  int
	backto  int
	base103 [6]int
	bincnt  int

	cw []int
}

func (e *encoder) store(v int) { e.cw = append(e.cw, v) }

func (e *encoder) storeDatum(v int) {
	e.store(v)
	e.pastFirstDatum = true
}

func (e *encoder) shift(v, newMode, n int) {
	e.store(v)
	e.backto = e.mode
	e.mode = newMode
	e.nshift = n
}

func (e *encoder) latch(v, newMode int) {
	e.store(v)
	e.mode = newMode
}

func (e *encoder) storeC(c int) {
	e.storeDatum((e.m[c]-'0')*10 + (e.m[c+1] - '0'))
}

func (e *encoder) binShift(c int) {
	if c < 160 {
		e.store(110)
		e.storeDatum(c - 64)
	} else {
		e.store(111)
		e.storeDatum(c - 160)
	}
}

// binFinish flushes the pending base-103 accumulator (bincnt symbols' worth
// of packed binary data) to the output as bincnt+1 codewords.
func (e *encoder) binFinish() {
	if e.bincnt > 0 {
		for i := 5 - e.bincnt; i <= 5; i++ {
			e.store(e.base103[i])
		}
		e.pastFirstDatum = true
	}
	e.base103 = [6]int{}
	e.bincnt = 0
}

// binAdd folds one more base-259 symbol (a raw byte 0..255, or a 256/257/
// 258 ECI marker) into the accumulator, base-converting the running value
// from base 259 to base 103 one digit at a time. Every 5 symbols the
// accumulator fills and is flushed as 6 codewords.
func (e *encoder) binAdd(c int) {
	for i := 5; i >= 0; i-- {
		e.base103[i] = e.base103[i]*259 + c
		c = e.base103[i] / 103
		e.base103[i] %= 103
	}
	e.bincnt++
	if e.bincnt >= 5 {
		e.bincnt = 5
		e.binFinish()
	}
}

func (e *encoder) storeFNC2() int {
	e.store(108)
	if v, ok := eci(e.m, e.pos); ok {
		if v < 40 {
			e.store(v)
			if e.nshift != 0 {
				e.nshift--
			}
		} else {
			j := v - 40
			e.store(j/12769 + 40)
			e.store((j / 113) % 113)
			e.store(j % 113)
			if e.nshift != 0 {
				e.nshift -= 3
			}
		}
		return 7
	}
	return 1
}

func (e *encoder) run() {
	e.binFinish()
	for e.m[e.pos] < end {
		for e.dispatch() {
		}
		if e.nshift != 0 {
			e.nshift--
			if e.nshift == 0 {
				e.mode = e.backto
			}
		}
	}
	if e.mode == BinaryMode {
		e.binFinish()
	}
}

// dispatch runs one compaction step and reports whether the caller should
// run another step immediately (true after a shift or latch, which must
// reprocess the current position in the new mode without advancing).
func (e *encoder) dispatch() bool {
	if e.insideMacro == 1 && e.m[e.pos] == rs && e.m[e.pos+1] == eot &&
		(e.m[e.pos+2] == fnc3 || e.m[e.pos+2] == end) {
		e.pos += 2
		e.insideMacro = 0
	} else if e.insideMacro == 2 && e.m[e.pos] == eot &&
		(e.m[e.pos+1] == fnc3 || e.m[e.pos+1] == end) {
		e.pos++
		e.insideMacro = 0
	}
	if e.m[e.pos] >= end {
		return false
	}
	switch e.mode {
	case CodeSetA:
		return e.stepSetA()
	case CodeSetB:
		return e.stepSetB()
	case BinaryMode:
		return e.stepBinary()
	default:
		return e.stepSetC()
	}
}

func (e *encoder) stepSetA() bool {
	if i := tryC(e.m, e.pos); i >= 2 {
		if i <= 4 {
			e.shift(101+i, CodeSetC, i)
		} else {
			e.latch(106, CodeSetC)
		}
		return true
	}
	if v := e.m[e.pos]; v >= 0 && v <= 95 {
		e.storeDatum((v + 64) % 96)
		e.pos++
		return false
	}
	switch e.m[e.pos] {
	case fnc1:
		e.store(107)
		e.pos++
		return false
	case fnc2:
		e.pos += e.storeFNC2()
		return false
	case fnc3:
		e.store(109)
		e.pos++
		if e.pastFirstDatum {
			e.mode = CodeSetC
		}
		return false
	}
	if e.m[e.pos] > 127 {
		if datumA(e.m[e.pos+1]) {
			e.binShift(e.m[e.pos])
			e.pos++
			return false
		}
		e.latch(112, BinaryMode)
		return true
	}
	if i := e.aheadB(e.m, e.pos); i <= 6 {
		e.shift(95+i, CodeSetB, i)
	} else {
		e.latch(102, CodeSetB)
	}
	return true
}

func (e *encoder) stepSetB() bool {
	if i := tryC(e.m, e.pos); i >= 2 {
		if i <= 4 {
			e.shift(101+i, CodeSetC, i)
		} else {
			e.latch(106, CodeSetC)
		}
		return true
	}
	if v := e.m[e.pos]; v >= 32 && v <= 127 {
		e.storeDatum(v - 32)
		e.pos++
		return false
	}
	if e.m[e.pos] == cr && e.m[e.pos+1] == lf {
		e.storeDatum(96)
		e.pos += 2
		return false
	}
	if e.pastFirstDatum {
		if e.m[e.pos] == 9 {
			e.storeDatum(97)
			e.pos++
			return false
		}
		if v := e.m[e.pos]; v >= fs && v <= rs {
			e.storeDatum(98 + v - fs)
			e.pos++
			return false
		}
	}
	switch e.m[e.pos] {
	case fnc1:
		e.store(107)
		e.pos++
		return false
	case fnc2:
		e.pos += e.storeFNC2()
		return false
	case fnc3:
		e.store(109)
		e.pos++
		if e.pastFirstDatum {
			e.mode = CodeSetC
		}
		return false
	}
	if e.m[e.pos] > 127 {
		if e.datumB(e.m[e.pos+1]) {
			e.binShift(e.m[e.pos])
			e.pos++
			return false
		}
		e.latch(112, BinaryMode)
		return true
	}
	if i := aheadA(e.m, e.pos); i == 1 {
		e.shift(101, CodeSetA, 1)
	} else {
		e.latch(102, CodeSetA)
	}
	return true
}

func (e *encoder) stepSetC() bool {
	if !e.pastFirstDatum && e.m[e.pos] == '[' && e.m[e.pos+1] == ')' && e.m[e.pos+2] == '>' &&
		e.m[e.pos+3] == rs && digitPair(e.m, e.pos+4) {
		if repeat, handled := e.tryMacroHeader(); handled {
			return repeat
		}
	}
	if nDigits(e.m, e.pos) >= 2 {
		if seventeenTen(e.m, e.pos) {
			e.storeDatum(100)
			e.storeC(e.pos + 2)
			e.storeC(e.pos + 4)
			e.storeC(e.pos + 6)
			e.pos += 10
		} else {
			e.storeC(e.pos)
			e.pos += 2
		}
		return false
	}
	switch e.m[e.pos] {
	case fnc1:
		e.store(107)
		e.pos++
		return false
	case fnc2:
		e.pos += e.storeFNC2()
		return false
	case fnc3:
		e.store(109)
		e.pos++
		return false
	}
	if e.m[e.pos] > 127 {
		if digitPair(e.m, e.pos+1) {
			e.binShift(e.m[e.pos])
			e.pos++
			return false
		}
		e.latch(112, BinaryMode)
		return true
	}
	i, j := aheadA(e.m, e.pos), e.aheadB(e.m, e.pos)
	if i > j {
		e.latch(101, CodeSetA)
		return true
	}
	if j <= 4 {
		e.shift(101+j, CodeSetB, j)
	} else {
		e.latch(106, CodeSetB)
	}
	return true
}

// tryMacroHeader handles a "[)>RS dd" Macro header already confirmed present
// at e.pos. handled is false when the header's closing EOT (just before the
// message's trailing FNC3/end) is missing, meaning this wasn't really a
// complete macro and the caller should fall through to ordinary encoding of
// the leading '[' instead.
func (e *encoder) tryMacroHeader() (repeat bool, handled bool) {
	m := e.pos + 7
	for e.m[m] != fnc3 && e.m[m] != end {
		m++
	}
	if e.m[m-1] != eot {
		return false, false
	}
	e.latch(106, CodeSetB)
	i := (e.m[e.pos+4]-'0')*10 + (e.m[e.pos+5] - '0')
	if e.m[e.pos+6] == gs && e.m[m-2] == rs {
		switch i {
		case 5:
			e.storeDatum(97)
		case 6:
			e.storeDatum(98)
		case 12:
			e.storeDatum(99)
		}
		if e.pastFirstDatum {
			e.insideMacro = 1
			e.pos += 7
		}
	}
	if !e.pastFirstDatum {
		e.storeDatum(100)
		e.store(i)
		e.insideMacro = 2
		e.pos += 6
	}
	return true, true
}

func (e *encoder) stepBinary() bool {
	if i := tryC(e.m, e.pos); i >= 2 {
		e.binFinish()
		if i <= 7 {
			e.shift(101+i, CodeSetC, i)
		} else {
			e.latch(111, CodeSetC)
		}
		return true
	}
	if v, ok := eci(e.m, e.pos); ok && (binary(e.m[e.pos+7]) || e.m[e.pos+7] == end) {
		switch {
		case v < 256:
			e.binAdd(256)
			e.binAdd(v)
		case v < 65563:
			e.binAdd(257)
			e.binAdd(v >> 8)
			e.binAdd(v & 0xff)
		default:
			e.binAdd(258)
			e.binAdd(v >> 16)
			e.binAdd((v >> 8) & 0xff)
			e.binAdd(v & 0xff)
		}
		e.pos += 7
		return false
	}
	_, eciAhead := eci(e.m, e.pos+1)
	if !fncx(e.m[e.pos]) &&
		(binary(e.m[e.pos]) || binary(e.m[e.pos+1]) || binary(e.m[e.pos+2]) || binary(e.m[e.pos+3]) ||
			(eciAhead && binary(e.m[e.pos+8]))) {
		e.binAdd(e.m[e.pos])
		e.pos++
		return false
	}
	e.binFinish()
	if e.m[e.pos] != end {
		if e.m[e.pos] == fnc3 {
			e.latch(112, CodeSetC)
			return true
		}
		if aheadA(e.m, e.pos) > e.aheadB(e.m, e.pos) {
			e.latch(109, CodeSetA)
		} else {
			e.latch(110, CodeSetB)
		}
		return true
	}
	return false
}
