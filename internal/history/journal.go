package history

import (
	"encoding/binary"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"github.com/shreyass0007/gitstreak/internal/errors"
)

const bucketRuns = "runs" // key: big-endian sequence -> Run JSON

// Outcome classifies a finished run
type Outcome string

const (
	// OutcomeComplete means every planned commit was pushed
	OutcomeComplete Outcome = "complete"
	// OutcomePartial means the commit loop stopped early
	OutcomePartial Outcome = "partial"
	// OutcomeSkipped means the run stopped before committing
	OutcomeSkipped Outcome = "skipped"
	// OutcomeFailed means the run aborted with an unexpected error
	OutcomeFailed Outcome = "failed"
)

// Run is one journal entry
type Run struct {
	ID            string    `json:"id"`
	Sequence      uint64    `json:"sequence"`
	StartedAt     time.Time `json:"started_at"`
	FinishedAt    time.Time `json:"finished_at"`
	Planned       int       `json:"planned"`
	Succeeded     int       `json:"succeeded"`
	Messages      []string  `json:"messages,omitempty"`
	Streak        int       `json:"streak"`
	StreakUpdated bool      `json:"streak_updated"`
	Outcome       Outcome   `json:"outcome"`
	Error         string    `json:"error,omitempty"`
}

// Duration returns how long the run took
func (r Run) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// Journal is an append-only log of runs kept in a bbolt file
type Journal struct {
	db *bbolt.DB
}

// Open opens or creates the journal at path. It waits at most one second
// for another process holding the file.
func Open(path string) (*Journal, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "opening history %s", path)
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketRuns))
		return err
	}); err != nil {
		_ = db.Close()

		return nil, err
	}

	return &Journal{db: db}, nil
}

// Record appends run to the journal. A missing ID is generated. The
// stored copy, with ID and Sequence filled in, is returned.
func (j *Journal) Record(run Run) (Run, error) {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}

	err := j.db.Update(func(tx *bbolt.Tx) error {
		runs := tx.Bucket([]byte(bucketRuns))

		seq, err := runs.NextSequence()
		if err != nil {
			return err
		}
		run.Sequence = seq

		data, err := json.Marshal(&run)
		if err != nil {
			return err
		}

		return runs.Put(itob(seq), data)
	})

	return run, err
}

// List returns up to limit runs, newest first. A limit of zero or less
// returns every run.
func (j *Journal) List(limit int) ([]Run, error) {
	var out []Run

	err := j.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket([]byte(bucketRuns)).Cursor()

		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			if limit > 0 && len(out) >= limit {
				break
			}

			var run Run
			if err := json.Unmarshal(v, &run); err != nil {
				return errors.Wrapf(err, "decoding run %d", binary.BigEndian.Uint64(k))
			}
			out = append(out, run)
		}

		return nil
	})

	return out, err
}

// Close closes the underlying database
func (j *Journal) Close() error {
	return j.db.Close()
}

func itob(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}
