package zipstore

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/zipstore/pool"
)

// fileTask carries one discovered file through the reader pool. Results
// land in an index-addressed slot so walk order is preserved regardless of
// which worker finishes first.
type fileTask struct {
	index int
	path  string
}

// CollectDir walks the project tree rooted at root and returns an entry per
// plain file, in lexical walk order, with slash-separated names relative to
// root. Directories are skipped, not represented. File contents are read by
// concurrency workers; reading stops at the first failure or when ctx is
// canceled.
func CollectDir(ctx context.Context, root string, concurrency int) ([]Entry, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Errorf("ERROR: could not determine absolute path of %s", root)
	}

	var tasks []fileTask
	var entries []Entry

	err = filepath.Walk(absRoot, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		name, err := filepath.Rel(absRoot, path)
		if err != nil {
			return errors.Errorf("ERROR: could not find relative path of %s to root %s", path, absRoot)
		}

		tasks = append(tasks, fileTask{index: len(entries), path: path})
		entries = append(entries, Entry{Name: filepath.ToSlash(name), Modified: info.ModTime()})
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "ERROR: could not walk directory %s", absRoot)
	}

	readExecutor := func(task *fileTask) error {
		content, err := os.ReadFile(task.path)
		if err != nil {
			return errors.Wrapf(err, "ERROR: could not read file %s", task.path)
		}

		entries[task.index].Content = content
		return nil
	}

	var readerPool pool.WorkerPool[fileTask]
	readerPool, err = pool.NewTaskPool(readExecutor, &pool.Config{Concurrency: concurrency, Capacity: len(tasks)})
	if err != nil {
		return nil, errors.Wrap(err, "ERROR: could not create file reader pool")
	}

	readerPool.Start(ctx)
	for i := range tasks {
		readerPool.Enqueue(&tasks[i])
	}
	if err := readerPool.Close(); err != nil {
		return nil, errors.Wrap(err, "ERROR: could not read project files")
	}

	return entries, nil
}
