// Package gf113 implements GF(113) arithmetic and the interleaved Reed–Solomon
// check-word encoder DotCode uses over that field.
package gf113

// Modulus is the size of the Galois field DotCode error correction operates over.
const Modulus = 113

// Generator is the field's primitive element, used both to build the
// exponential/logarithm tables and as the prime modulus step in the original
// reference encoder (the two roles collide by convention in the C source).
const Generator = 3

// Field is a prime-order Galois field GF(Modulus), represented by exponential
// and logarithm lookup tables built from Generator. Unlike a characteristic-2
// field (as used by QR/Aztec/Data Matrix Reed–Solomon), arithmetic here is plain
// integer addition/multiplication modulo a prime, not XOR.
type Field struct {
	expTable []int
	logTable []int
	modulus  int
}

// shared is the single GF(113) instance DotCode encoding uses.
var shared = newField(Modulus, Generator)

// Shared returns the package's GF(113) field instance.
func Shared() *Field {
	return shared
}

func newField(modulus, generator int) *Field {
	f := &Field{
		modulus:  modulus,
		expTable: make([]int, modulus),
		logTable: make([]int, modulus),
	}
	x := 1
	for i := 0; i < modulus; i++ {
		f.expTable[i] = x
		x = (x * generator) % modulus
	}
	for i := 0; i < modulus-1; i++ {
		f.logTable[f.expTable[i]] = i
	}
	return f
}

// Size returns the field's modulus.
func (f *Field) Size() int { return f.modulus }

// Add returns (a + b) mod modulus.
func (f *Field) Add(a, b int) int {
	return (a + b) % f.modulus
}

// Subtract returns (a - b) mod modulus, always as a nonnegative residue.
func (f *Field) Subtract(a, b int) int {
	return (f.modulus + a - b) % f.modulus
}

// Multiply returns (a * b) mod modulus.
func (f *Field) Multiply(a, b int) int {
	return (a * b) % f.modulus
}

// Exp returns generator^a mod modulus, i.e. the a-th power of the field's
// primitive element. a must be in [0, modulus-1].
func (f *Field) Exp(a int) int {
	return f.expTable[a]
}

// Log returns the discrete logarithm of a (base Generator). Panics if a is 0.
func (f *Field) Log(a int) int {
	if a == 0 {
		panic("gf113: log(0)")
	}
	return f.logTable[a]
}

// Inverse returns the multiplicative inverse of a. Panics if a is 0.
func (f *Field) Inverse(a int) int {
	if a == 0 {
		panic("gf113: inverse(0)")
	}
	return f.expTable[f.modulus-1-f.logTable[a]]
}
