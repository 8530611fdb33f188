package fuzzy

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
)

// HashReader computes the signature of everything read from r.
func HashReader(r io.Reader, flags int, opts ...Option) (string, error) {
	h := New(opts...)
	if _, err := io.Copy(h, bufio.NewReader(r)); err != nil {
		return "", errors.Wrap(err, "fuzzy: read input")
	}
	return h.Digest(flags)
}

// HashFile computes the signature of the file at path. On Linux it
// hints the kernel that the file will be read sequentially.
func HashFile(path string, flags int, opts ...Option) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrap(err, "fuzzy: open file")
	}
	defer f.Close()

	adviseSequential(f)
	digest, err := HashReader(f, flags, opts...)
	if err != nil {
		return "", errors.Wrapf(err, "fuzzy: hash %s", path)
	}
	return digest, nil
}
