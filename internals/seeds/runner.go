package seeds

import (
	"gorm.io/gorm"

	users "sekolahku_backend/internals/seeds/users"
)

// RunAllSeeds dipanggil sekali lewat flag -seed di main.
func RunAllSeeds(db *gorm.DB) {
	users.SeedUsersFromJSON(db, "internals/seeds/users/data_users.json")
}
