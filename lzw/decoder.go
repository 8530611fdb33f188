package lzw

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Decoder reverses Encoder's `.Z` stream: a prefix-chain dictionary
// rebuilt entry-by-entry from the code stream itself, with the classic
// KwKwK special case for a code that references the entry currently
// being assigned.
type Decoder struct {
	log *zap.SugaredLogger
}

// NewDecoder returns a Decoder.
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{log: zap.NewNop().Sugar()}
	o := options{logger: &d.log}
	for _, opt := range opts {
		opt.apply(&o)
	}
	return d
}

// Decode reads a complete `.Z` stream from r and writes the
// decompressed bytes to w.
func (d *Decoder) Decode(w io.Writer, r io.Reader) error {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return errors.Wrap(err, "lzw: read input")
	}
	data := buf.Bytes()

	if len(data) < 3 {
		return errors.Wrap(ErrBadMagic, "lzw: truncated header")
	}
	if data[0] != magic0 || data[1] != magic1 {
		return ErrBadMagic
	}

	maxbits := int(data[2] & 0x1f)
	blockMode := data[2]&blockModeFlag != 0
	if maxbits > 16 {
		return ErrUnsupportedWidth
	}
	if maxbits < initBits {
		maxbits = initBits
	}
	maxmaxcode := int32(1) << uint(maxbits)

	prefixOf := make([]int32, maxmaxcode)
	suffixOf := make([]byte, maxmaxcode)

	nBits := initBits
	maxcode := int32(1<<uint(nBits)) - 1
	freeEnt := int32(firstCode)

	br := newBitReader(data, 24)

	oldcode := int32(-1)
	var finchar byte
	stack := make([]byte, 0, int(maxmaxcode))

	for {
		for freeEnt > maxcode && nBits < maxbits {
			br.pad(nBits)
			nBits++
			if nBits == maxbits {
				maxcode = maxmaxcode
			} else {
				maxcode = int32(1<<uint(nBits)) - 1
			}
			d.log.Debugw("lzw: grew code width", "width", nBits)
		}

		code, ok := br.readCode(nBits)
		if !ok {
			break
		}
		icode := int32(code)

		if oldcode == -1 {
			if icode >= 256 {
				return ErrCorruptInput
			}
			if _, err := w.Write([]byte{byte(icode)}); err != nil {
				return errors.Wrap(err, "lzw: write output")
			}
			finchar = byte(icode)
			oldcode = icode
			continue
		}

		if icode == clearCode && blockMode {
			freeEnt = firstCode - 1
			br.pad(nBits)
			nBits = initBits
			maxcode = int32(1<<uint(nBits)) - 1
			d.log.Debugw("lzw: dictionary cleared")
			continue
		}

		incode := icode
		stack = stack[:0]

		if icode >= freeEnt {
			if icode > freeEnt {
				return ErrCorruptInput
			}
			stack = append(stack, finchar)
			icode = oldcode
		}

		for icode >= 256 {
			stack = append(stack, suffixOf[icode])
			icode = prefixOf[icode]
		}
		finchar = byte(icode)
		stack = append(stack, finchar)

		for i := len(stack) - 1; i >= 0; i-- {
			if _, err := w.Write([]byte{stack[i]}); err != nil {
				return errors.Wrap(err, "lzw: write output")
			}
		}

		if freeEnt < maxmaxcode {
			prefixOf[freeEnt] = oldcode
			suffixOf[freeEnt] = finchar
			freeEnt++
		}
		oldcode = incode
	}

	return nil
}
