package catalog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/nvalla/walletview/pkg/model"
)

// ImportJSONL loads a collections JSONL export into the catalog, one
// collection object per line. Malformed lines are skipped so a partially
// corrupt export still yields the readable remainder.
func (s *Store) ImportJSONL(path string) (int, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return 0, fmt.Errorf("no collections export found at %s", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open export file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	// Increase buffer size for large lines (collections can carry many assets)
	const maxCapacity = 1024 * 1024 * 10 // 10MB
	buf := make([]byte, maxCapacity)
	scanner.Buffer(buf, maxCapacity)

	imported := 0
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var c model.Collection
		if err := json.Unmarshal(line, &c); err != nil {
			// Skip malformed lines but continue loading the rest
			continue
		}
		if err := c.Validate(); err != nil {
			continue
		}
		for i := range c.Assets {
			c.Assets[i].AcquiredAt = touchedAt(c.Assets[i].AcquiredAt)
		}
		if err := s.Upsert(c); err != nil {
			return imported, fmt.Errorf("import %s: %w", c.UID, err)
		}
		imported++
	}

	if err := scanner.Err(); err != nil {
		return imported, fmt.Errorf("error reading export file: %w", err)
	}

	return imported, nil
}
