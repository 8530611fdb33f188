//go:build !linux

package fuzzy

import "os"

func adviseSequential(f *os.File) {}
