package lzw

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	magic0        = 0x1F
	magic1        = 0x9D
	blockModeFlag = 0x80

	clearCode = 256
	firstCode = 257
	initBits  = 9
	checkGap  = 10000

	freezeSentinel = int64(1) << 32
)

// Encoder streams bytes through the historical compress(1) `.Z`
// algorithm: variable-width LZW codes over an open-addressed
// double-hashing dictionary, with an adaptive compression-ratio monitor
// in block mode that clears the dictionary once the ratio degrades.
type Encoder struct {
	maxbits   int
	blockMode bool
	log       *zap.SugaredLogger
}

// NewEncoder returns an Encoder for the given maximum code width
// (clamped to 9..16, matching historical compress(1)) and block mode
// flag.
func NewEncoder(maxbits int, blockMode bool, opts ...Option) *Encoder {
	if maxbits < initBits {
		maxbits = initBits
	}
	if maxbits > 16 {
		maxbits = 16
	}
	e := &Encoder{maxbits: maxbits, blockMode: blockMode, log: zap.NewNop().Sugar()}
	o := options{logger: &e.log}
	for _, opt := range opts {
		opt.apply(&o)
	}
	return e
}

// Encode reads every byte of r and writes the `.Z`-format stream to w.
func (e *Encoder) Encode(w io.Writer, r io.Reader) error {
	br := bufio.NewReader(r)

	header := []byte{magic0, magic1, byte(e.maxbits)}
	if e.blockMode {
		header[2] |= blockModeFlag
	}
	bw := newBitWriter(header)

	first, rerr := br.ReadByte()
	if rerr == io.EOF {
		_, werr := w.Write(bw.bytes())
		return errors.Wrap(werr, "lzw: write header")
	}
	if rerr != nil {
		return errors.Wrap(rerr, "lzw: read input")
	}

	dict := newDictionary(e.maxbits)
	nBits := initBits
	freeEnt := int32(firstCode)
	extcode := int64(1<<uint(nBits)) + 1
	if nBits >= e.maxbits {
		extcode = int64(1) << uint(nBits)
	}
	frozen := false

	var ratio int64
	checkpoint := int64(checkGap)
	bytesIn := int64(1)

	ent := int32(first)

	for {
		c, rerr := br.ReadByte()
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return errors.Wrap(rerr, "lzw: read input")
		}
		bytesIn++

		code, slot, found := dict.probe(ent, c)
		if found {
			ent = code
			continue
		}

		bw.writeCode(uint32(ent), nBits)
		if !frozen {
			dict.claim(slot, ent, c, freeEnt)
			freeEnt++
		}
		ent = int32(c)

		if int64(freeEnt) >= extcode {
			if nBits < e.maxbits {
				bw.pad(nBits)
				nBits++
				if nBits < e.maxbits {
					extcode = int64(1<<uint(nBits)) + 1
				} else {
					extcode = int64(1) << uint(nBits)
				}
				e.log.Debugw("lzw: grew code width", "width", nBits)
			} else if !frozen {
				frozen = true
				extcode = freezeSentinel
				e.log.Debugw("lzw: froze dictionary", "entries", freeEnt)
			}
		}

		if e.blockMode && frozen && bytesIn >= checkpoint {
			checkpoint = bytesIn + checkGap
			bytesOut := int64(bw.pos) >> 3

			var rat int64
			if bytesIn > 0x007fffff {
				r := bytesOut >> 8
				if r == 0 {
					rat = 0x7fffffff
				} else {
					rat = bytesIn / r
				}
			} else {
				rat = (bytesIn << 8) / bytesOut
			}

			if rat >= ratio {
				ratio = rat
			} else {
				ratio = 0
				dict.reset()
				bw.writeCode(clearCode, nBits)
				bw.pad(nBits)
				nBits = initBits
				extcode = int64(1<<uint(nBits)) + 1
				if nBits >= e.maxbits {
					extcode = int64(1) << uint(nBits)
				}
				freeEnt = firstCode
				frozen = false
				e.log.Debugw("lzw: ratio degraded, cleared dictionary", "bytesIn", bytesIn)
			}
		}
	}

	bw.writeCode(uint32(ent), nBits)

	_, werr := w.Write(bw.bytes())
	return errors.Wrap(werr, "lzw: write output")
}
