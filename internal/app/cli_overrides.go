package app

import (
	"strings"

	"github.com/olusolaa/filelog/internal/core/domain"
)

// parseLevels turns "info, error" into levels, dropping blanks and
// duplicates. An empty result means every level.
func parseLevels(raw string) ([]domain.Level, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	seen := make(map[domain.Level]struct{})
	var levels []domain.Level
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		level, err := domain.ParseLevel(part)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[level]; dup {
			continue
		}
		seen[level] = struct{}{}
		levels = append(levels, level)
	}
	return levels, nil
}
