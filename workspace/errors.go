package workspace

import (
	"errors"
	"fmt"
	"os"
)

// ErrInvalidRoot reports a workspace root that does not exist or is not a
// directory. It is fatal to the request: nothing below the scanner or the
// snapshot builder recovers from it.
var ErrInvalidRoot = errors.New("invalid workspace root")

// validateRoot checks that rootPath exists and is a directory. Both the
// scanner and the snapshot builder gate on this before touching the tree.
func validateRoot(rootPath string) error {
	info, err := os.Stat(rootPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s does not exist", ErrInvalidRoot, rootPath)
		}
		return fmt.Errorf("%w: %s: %v", ErrInvalidRoot, rootPath, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrInvalidRoot, rootPath)
	}
	return nil
}
