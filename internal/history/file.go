package history

import "os"

// FileJournal opens the journal at Path for each operation and closes it
// again, so a long-running daemon does not keep the bbolt file locked
// against status and history commands.
type FileJournal struct {
	Path string
}

// Record appends run to the journal at Path
func (f FileJournal) Record(run Run) (Run, error) {
	j, err := Open(f.Path)
	if err != nil {
		return run, err
	}
	defer func() { _ = j.Close() }()

	return j.Record(run)
}

// List returns up to limit runs from the journal at Path, newest first.
// A journal that does not exist yet holds no runs and is not created.
func (f FileJournal) List(limit int) ([]Run, error) {
	if _, err := os.Stat(f.Path); os.IsNotExist(err) {
		return nil, nil
	}

	j, err := Open(f.Path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = j.Close() }()

	return j.List(limit)
}

// Close is a no-op; the file is closed after every operation
func (f FileJournal) Close() error {
	return nil
}
