package lzw

// dictEmpty marks an unused hash-table slot.
const dictEmpty = -1

// dictionary is the encoder's open-addressed, double-hashing phrase
// table. Each occupied slot records the (prefix code, suffix byte) pair
// that produced it, keyed by a fingerprint used only for equality
// checks during probing — the probe order itself (primary hash plus
// secondary displacement) is what must match the historical algorithm.
type dictionary struct {
	hsize int
	shift uint
	fp    []int64
	code  []int32
}

func newDictionary(maxbits int) *dictionary {
	hsize := hsizeFor(maxbits)
	d := &dictionary{
		hsize: hsize,
		shift: uint(maxbits - 8),
		fp:    make([]int64, hsize),
		code:  make([]int32, hsize),
	}
	d.reset()
	return d
}

func hsizeFor(maxbits int) int {
	switch {
	case maxbits >= 16:
		return 69001
	case maxbits == 15:
		return 35023
	case maxbits == 14:
		return 18013
	case maxbits == 13:
		return 9001
	default:
		return 5003
	}
}

func (d *dictionary) reset() {
	for i := range d.fp {
		d.fp[i] = dictEmpty
	}
}

func fingerprint(prefix int32, suffix byte) int64 {
	return int64(prefix) | int64(suffix)<<32
}

// probe looks up (prefix, suffix). On a hit it returns the stored code.
// On a miss it returns the empty slot the caller should claim.
func (d *dictionary) probe(prefix int32, suffix byte) (code int32, slot int, found bool) {
	fc := fingerprint(prefix, suffix)
	hp := (int64(suffix) << d.shift) ^ int64(prefix)

	if d.fp[hp] == fc {
		return d.code[hp], int(hp), true
	}
	if d.fp[hp] == dictEmpty {
		return 0, int(hp), false
	}

	disp := int64(d.hsize) - hp - 1
	for {
		hp -= disp
		if hp < 0 {
			hp += int64(d.hsize)
		}
		if d.fp[hp] == fc {
			return d.code[hp], int(hp), true
		}
		if d.fp[hp] == dictEmpty {
			return 0, int(hp), false
		}
	}
}

func (d *dictionary) claim(slot int, prefix int32, suffix byte, code int32) {
	d.fp[slot] = fingerprint(prefix, suffix)
	d.code[slot] = code
}
