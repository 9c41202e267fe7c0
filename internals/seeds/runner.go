// file: internals/seeds/runner.go
package seeds

import (
	"gorm.io/gorm"

	programs "hseplan_backend/internals/seeds/programs"
)

// RunAllSeeds dipanggil dari main saat RUN_SEEDS=true.
func RunAllSeeds(db *gorm.DB) {
	programs.SeedProgramsFromJSON(db, "internals/seeds/programs/data_programs.json")
}
