package checkers

import (
	"context"
	"fmt"
	"os"
)

// WritableDirChecker reports ready when a file can be created and removed in dir.
type WritableDirChecker struct {
	dir string
}

func NewWritableDirChecker(dir string) *WritableDirChecker {
	return &WritableDirChecker{dir: dir}
}

func (c *WritableDirChecker) Name() string { return "upload_dir" }

func (c *WritableDirChecker) Check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", c.dir, err)
	}
	f, err := os.CreateTemp(c.dir, ".probe-*")
	if err != nil {
		return fmt.Errorf("write %s: %w", c.dir, err)
	}
	name := f.Name()
	_ = f.Close()
	return os.Remove(name)
}
