package fuzzy

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Compare scores two ssdeep/spamsum signatures on a 0-100 scale, where
// 100 means identical and 0 means no meaningful similarity was found
// (including the case where the two signatures' block sizes are too
// far apart to compare at all).
func Compare(sig1, sig2 string) (int, error) {
	bs1, h1a, h2a, err := parseSignature(sig1)
	if err != nil {
		return 0, errors.Wrap(err, "fuzzy: first signature")
	}
	bs2, h1b, h2b, err := parseSignature(sig2)
	if err != nil {
		return 0, errors.Wrap(err, "fuzzy: second signature")
	}

	if bs1 != bs2 && bs1 != bs2*2 && bs2 != bs1*2 {
		return 0, nil
	}

	h1a = string(eliminateSequences([]byte(h1a)))
	h2a = string(eliminateSequences([]byte(h2a)))
	h1b = string(eliminateSequences([]byte(h1b)))
	h2b = string(eliminateSequences([]byte(h2b)))

	switch {
	case bs1 == bs2:
		s1 := scoreStrings([]byte(h1a), []byte(h1b), bs1)
		s2 := scoreStrings([]byte(h2a), []byte(h2b), bs1*2)
		return max(s1, s2), nil
	case bs1 == bs2*2:
		return scoreStrings([]byte(h1a), []byte(h2b), bs1), nil
	default: // bs2 == bs1*2
		return scoreStrings([]byte(h2a), []byte(h1b), bs2), nil
	}
}

func parseSignature(sig string) (blockSize uint64, h1, h2 string, err error) {
	parts := strings.SplitN(sig, ":", 3)
	if len(parts) != 3 {
		return 0, "", "", ErrBadSignature
	}
	blockSize, perr := strconv.ParseUint(parts[0], 10, 64)
	if perr != nil {
		return 0, "", "", errors.Wrap(ErrBadSignature, perr.Error())
	}
	h1 = parts[1]
	h2 = parts[2]
	if idx := strings.IndexByte(h2, ','); idx >= 0 {
		h2 = h2[:idx]
	}
	return blockSize, h1, h2, nil
}

// scoreStrings scores two digest fields known to share the same
// (or doubled) block size.
func scoreStrings(s1, s2 []byte, blockSize uint64) int {
	if len(s1) > spamsumLength || len(s2) > spamsumLength {
		return 0
	}
	if !hasCommonSubstring(s1, s2) {
		return 0
	}

	score := editDistance(s1, s2)
	score = score * 64 / (len(s1) + len(s2))
	score = 100 * score / 64
	if score >= 100 {
		return 0
	}
	score = 100 - score

	minLen := len(s1)
	if len(s2) < minLen {
		minLen = len(s2)
	}
	if cap := int(blockSize/3) * minLen; score > cap {
		score = cap
	}
	return score
}

// hasCommonSubstring reports whether s1 and s2 share any identical
// rollingWindow-byte run, used as a cheap pre-filter before the more
// expensive edit-distance scoring.
func hasCommonSubstring(s1, s2 []byte) bool {
	if len(s1) < rollingWindow || len(s2) < rollingWindow {
		return false
	}

	hashes := make([]uint32, len(s1))
	var r1 rollState
	for i, c := range s1 {
		r1.hash(c)
		if i >= rollingWindow-1 {
			hashes[i] = r1.sum()
		}
	}

	var r2 rollState
	for i, c := range s2 {
		r2.hash(c)
		if i < rollingWindow-1 {
			continue
		}
		h := r2.sum()
		if h == 0 {
			continue
		}
		for j := rollingWindow - 1; j < len(s1); j++ {
			if hashes[j] == h && bytes.Equal(s1[j-rollingWindow+1:j+1], s2[i-rollingWindow+1:i+1]) {
				return true
			}
		}
	}
	return false
}
