package domain

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zeebo/xxh3"
)

// Fingerprint computes a fast, order-independent digest over the index's
// (path, hash) pairs. Two indexes of the same tree state fingerprint
// identically regardless of walk order, so collaborators can detect a
// changed tree without comparing file lists. Not a cryptographic hash;
// per-file content addressing stays SHA-256.
func Fingerprint(index *WorkspaceIndex) string {
	pairs := make([]string, 0, len(index.Files))
	for _, f := range index.Files {
		pairs = append(pairs, f.Path+"\x00"+f.Hash)
	}
	sort.Strings(pairs)

	sum := xxh3.HashString(strings.Join(pairs, "\n"))
	return fmt.Sprintf("%016x", sum)
}
