package postgres

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ownedBy is the single ownership predicate for the task store. Every
// per-user query in TaskRepositoryImpl goes through it.
func ownedBy(ownerID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("created_by = ?", ownerID)
	}
}

func inTrash(deleted bool) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("is_deleted = ?", deleted)
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsFold matches query case-insensitively as a substring of title or
// description. LIKE wildcards in query are matched literally.
func containsFold(query string) func(*gorm.DB) *gorm.DB {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(query)) + "%"
	return func(db *gorm.DB) *gorm.DB {
		lower := lowerFunc(db)
		return db.Where(
			fmt.Sprintf(`(%[1]s(title) LIKE ? ESCAPE '\' OR %[1]s(description) LIKE ? ESCAPE '\')`, lower),
			pattern, pattern,
		)
	}
}

// lowerFunc names a lower-casing SQL function that folds non-ASCII letters
// the same way strings.ToLower does.
func lowerFunc(db *gorm.DB) string {
	if db.Dialector.Name() == DriverSQLite {
		return "unicode_lower"
	}
	return "LOWER"
}
