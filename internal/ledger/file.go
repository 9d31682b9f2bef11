package ledger

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"product-order-system/pkg/logger"
	"product-order-system/pkg/models"

	"github.com/gofrs/flock"
)

// FileStore keeps the ledger in a single CSV file. A save is a
// read-concat-rewrite over the whole file, so the store holds an advisory
// lock for the duration; two processes saving at once serialize on it
// instead of silently dropping each other's rows.
type FileStore struct {
	path  string
	lock  *flock.Flock
	mylog *logger.Logger
}

func NewFileStore(path string, mylog *logger.Logger) *FileStore {
	return &FileStore{
		path:  path,
		lock:  flock.New(path + ".lock"),
		mylog: mylog,
	}
}

func (s *FileStore) Append(ctx context.Context, lines []models.OrderLine) error {
	if len(lines) == 0 {
		return nil
	}

	if err := s.lockFile(ctx); err != nil {
		return err
	}
	defer s.lock.Unlock()

	existing, err := s.readLocked()
	if err != nil {
		return err
	}
	return s.writeLocked(append(existing, lines...))
}

func (s *FileStore) ReadAll(ctx context.Context) ([]models.OrderLine, error) {
	if err := s.lockFile(ctx); err != nil {
		return nil, err
	}
	defer s.lock.Unlock()

	return s.readLocked()
}

func (s *FileStore) lockFile(ctx context.Context) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir ledger dir: %w", err)
		}
	}
	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("lock ledger: %w", err)
	}
	if err := ctx.Err(); err != nil {
		s.lock.Unlock()
		return err
	}
	return nil
}

func (s *FileStore) readLocked() ([]models.OrderLine, error) {
	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read ledger: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	lines := make([]models.OrderLine, 0, len(records)-1)
	for _, record := range records[1:] { // skip header
		line, err := fromRecord(record)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func (s *FileStore) writeLocked(lines []models.OrderLine) error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("create ledger: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		return err
	}
	for _, line := range lines {
		if err := w.Write(toRecord(line)); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write ledger: %w", err)
	}
	return nil
}
