package candidates

import "math/bits"

// valueSet is a bitset over candidate values: bit v-1 of the word stream
// tracks value v.
type valueSet struct {
	words []uint64
}

// newValueSet returns an empty set sized for values 1..n.
func newValueSet(n int) valueSet {
	return valueSet{words: make([]uint64, (n+63)/64)}
}

// fullValueSet returns the set {1..n}.
func fullValueSet(n int) valueSet {
	s := newValueSet(n)
	for i := range s.words {
		s.words[i] = ^uint64(0)
	}
	// mask off bits past n in the last word
	if rem := n % 64; rem != 0 {
		s.words[len(s.words)-1] = (1 << uint(rem)) - 1
	}
	return s
}

func (s valueSet) contains(v int) bool {
	if v < 1 || (v-1)/64 >= len(s.words) {
		return false
	}
	return s.words[(v-1)/64]&(1<<uint((v-1)%64)) != 0
}

func (s valueSet) discard(v int) {
	if v < 1 || (v-1)/64 >= len(s.words) {
		return
	}
	s.words[(v-1)/64] &^= 1 << uint((v-1)%64)
}

func (s valueSet) clear() {
	for i := range s.words {
		s.words[i] = 0
	}
}

func (s valueSet) len() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// values returns the members in ascending order.
func (s valueSet) values() []int {
	out := make([]int, 0, s.len())
	for wi, w := range s.words {
		for w != 0 {
			b := bits.TrailingZeros64(w)
			out = append(out, wi*64+b+1)
			w &= w - 1
		}
	}
	return out
}
