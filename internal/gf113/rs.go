package gf113

// EncodeRS appends nc Reed–Solomon check codewords to the nd data codewords
// already present at wd[0:nd], writing into wd[0 : nd+nc]. wd must have
// capacity for at least nd+nc entries.
//
// When nd+nc exceeds Modulus-1, a single generator polynomial of that degree
// cannot be evaluated over the field, so the stream is split into `step`
// interleaved sub-streams (ported from DotEncod.c's rsencode, whose own
// "LARGE FIX" comment marks this as the fix for nc >= GF). Each sub-stream is
// encoded independently against its own generator polynomial and written back
// at stride `step`.
func (f *Field) EncodeRS(wd []int, nd, nc int) {
	gf := f.modulus
	nw := nd + nc
	step := (nw + gf - 2) / (gf - 1)

	root := make([]int, nc+2)
	c := make([]int, nc+1)

	for start := 0; start < step; start++ {
		ND := (nd - start + step - 1) / step
		NW := (nw - start + step - 1) / step
		NC := NW - ND

		// The roots (successive powers of the generator) only need computing
		// once, against the largest sub-stream (start == 0).
		if start == 0 {
			root[0] = 1
			for i := 1; i <= NC+1; i++ {
				root[i] = (Generator * root[i-1]) % gf
			}
		}

		// Generator polynomial of order NC for this sub-stream.
		for i := 1; i <= NC; i++ {
			c[i] = 0
		}
		c[0] = 1
		for i := 1; i <= NC; i++ {
			for j := NC; j >= 1; j-- {
				c[j] = (gf + c[j] - (root[i]*c[j-1])%gf) % gf
			}
		}

		for i := ND; i < NW; i++ {
			wd[start+i*step] = 0
		}
		for i := 0; i < ND; i++ {
			k := (wd[start+i*step] + wd[start+ND*step]) % gf
			for j := 0; j < NC-1; j++ {
				wd[start+(ND+j)*step] = (gf - (c[j+1]*k)%gf + wd[start+(ND+j+1)*step]) % gf
			}
			wd[start+(ND+NC-1)*step] = (gf - (c[NC]*k)%gf) % gf
		}
		for i := ND; i < NW; i++ {
			wd[start+i*step] = (gf - wd[start+i*step]) % gf
		}
	}
}
