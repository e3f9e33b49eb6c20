package testhelpers

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
)

// LoadFixtures loads SQL fixture files into the database
func LoadFixtures(db *sql.DB, fixturesPath string, files []string) error {
	for _, file := range files {
		path := filepath.Join(fixturesPath, file)
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read fixture %s: %w", file, err)
		}

		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("load fixture %s: %w", file, err)
		}
	}

	return nil
}

// SetClimateScores записывает оценки объекта напрямую в таблицу
func SetClimateScores(db *sql.DB, id int64, lst, ndvi, utfvi, uhi, overall int) error {
	_, err := db.ExecContext(context.Background(),
		`UPDATE properties
		 SET lst_score = $2, ndvi_score = $3, utfvi_score = $4, uhi_score = $5, overall_score = $6
		 WHERE id = $1`,
		id, lst, ndvi, utfvi, uhi, overall)
	if err != nil {
		return fmt.Errorf("set climate scores for property %d: %w", id, err)
	}
	return nil
}
