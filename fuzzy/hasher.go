package fuzzy

import (
	"fmt"

	"go.uber.org/zap"
)

// Digest flags, mirroring the historical ssdeep fuzzy_flags.
const (
	// FlagEliminateSequences collapses any run of four or more
	// identical characters down to three before returning a digest.
	FlagEliminateSequences = 0x1
	// FlagNoTruncate disables the 31-character cap normally applied to
	// a digest's second (finer-grained) field.
	FlagNoTruncate = 0x2
)

// Hasher computes a ssdeep/spamsum-style context-triggered piecewise
// hash incrementally, so the full input never needs to be buffered in
// memory.
type Hasher struct {
	bhstart, bhend int
	bh             [numBlockhashes]blockhashContext
	totalSize      uint64
	roll           rollState
	log            *zap.SugaredLogger
}

// New returns an empty Hasher ready to accept Write calls.
func New(opts ...Option) *Hasher {
	h := &Hasher{bhend: 1, log: zap.NewNop().Sugar()}
	h.bh[0] = newBlockhashContext()
	o := options{logger: &h.log}
	for _, opt := range opts {
		opt.apply(&o)
	}
	return h
}

// Write feeds data into the hasher, satisfying io.Writer. It never
// returns an error.
func (h *Hasher) Write(p []byte) (int, error) {
	h.totalSize += uint64(len(p))
	for _, c := range p {
		h.engineStep(c)
	}
	return len(p), nil
}

func (h *Hasher) engineStep(c byte) {
	h.roll.hash(c)
	rh := h.roll.sum()

	for i := h.bhstart; i < h.bhend; i++ {
		h.bh[i].h = sumHash(c, h.bh[i].h)
		h.bh[i].halfh = sumHash(c, h.bh[i].halfh)
	}

	for i := h.bhstart; i < h.bhend; i++ {
		bs := blocksize(i)
		if uint64(rh)%bs != bs-1 {
			break
		}
		if h.bh[i].dlen == 0 {
			h.tryFork()
			h.log.Debugw("fuzzy: forked block-hash slot", "slot", h.bhend-1)
		}
		if h.bh[i].dlen < spamsumLength-1 {
			h.bh[i].digest[h.bh[i].dlen] = b64Alphabet[h.bh[i].h%64]
			h.bh[i].dlen++
			h.bh[i].h = hashInit
			if h.bh[i].dlen < spamsumLength/2 {
				h.bh[i].halfh = hashInit
			}
		} else {
			h.tryReduce()
		}
	}
}

// Digest returns the current signature string. It may be called
// repeatedly and interleaved with further Write calls.
func (h *Hasher) Digest(flags int) (string, error) {
	bi := h.bhstart
	rh := h.roll.sum()

	for blocksize(bi)*spamsumLength < h.totalSize {
		bi++
		if bi >= numBlockhashes {
			return "", ErrOverflow
		}
	}
	for bi >= h.bhend {
		bi--
	}
	for bi > h.bhstart && h.bh[bi].dlen < spamsumLength/2 {
		bi--
	}

	elim := flags&FlagEliminateSequences != 0
	notrunc := flags&FlagNoTruncate != 0

	field1 := append([]byte(nil), h.bh[bi].digest[:h.bh[bi].dlen]...)
	if rh != 0 {
		field1 = append(field1, b64Alphabet[h.bh[bi].h%64])
	}
	if elim {
		field1 = eliminateSequences(field1)
	}

	var field2 []byte
	if bi < h.bhend-1 {
		bi2 := bi + 1
		d2 := h.bh[bi2].digest[:h.bh[bi2].dlen]
		if !notrunc && len(d2) > spamsumLength/2-1 {
			d2 = d2[:spamsumLength/2-1]
		}
		field2 = append([]byte(nil), d2...)
		if rh != 0 {
			tailSrc := h.bh[bi2].halfh
			if notrunc {
				tailSrc = h.bh[bi2].h
			}
			field2 = append(field2, b64Alphabet[tailSrc%64])
		}
		if elim {
			field2 = eliminateSequences(field2)
		}
	} else if rh != 0 {
		field2 = []byte{b64Alphabet[h.bh[bi].h%64]}
	}

	return fmt.Sprintf("%d:%s:%s", blocksize(bi), field1, field2), nil
}

// HashBuffer computes the signature of a complete in-memory buffer in
// one call.
func HashBuffer(data []byte, flags int, opts ...Option) (string, error) {
	h := New(opts...)
	_, _ = h.Write(data)
	return h.Digest(flags)
}

// eliminateSequences collapses any run of four or more identical bytes
// down to three, matching the historical ELIMSEQ post-processing rule.
func eliminateSequences(s []byte) []byte {
	if len(s) <= 3 {
		out := make([]byte, len(s))
		copy(out, s)
		return out
	}
	out := make([]byte, 0, len(s))
	out = append(out, s[:3]...)
	for i := 3; i < len(s); i++ {
		n := len(out)
		if out[n-1] == s[i] && out[n-2] == s[i] && out[n-3] == s[i] {
			continue
		}
		out = append(out, s[i])
	}
	return out
}
