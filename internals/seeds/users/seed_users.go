package users

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	userModel "sekolahku_backend/internals/features/users/auth/model"
)

type UserSeed struct {
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// SeedUsersFromJSON membuat user dari file JSON; yang sudah ada dilewati.
func SeedUsersFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file user:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []UserSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		var existing userModel.UserModel
		if err := db.Where("user_email = ?", data.Email).First(&existing).Error; err == nil {
			log.Printf("ℹ️ User dengan email '%s' sudah ada, dilewati.", data.Email)
			continue
		}

		newUser := userModel.UserModel{
			UserName:  data.UserName,
			UserEmail: data.Email,
			UserRole:  data.Role,
		}
		if err := newUser.SetPassword(data.Password); err != nil {
			log.Printf("❌ Gagal hash password untuk '%s': %v", data.Email, err)
			continue
		}

		if err := db.Create(&newUser).Error; err != nil {
			log.Printf("❌ Gagal membuat user '%s': %v", data.Email, err)
			continue
		}
		log.Printf("✅ User '%s' (%s) dibuat.", data.UserName, data.Role)
	}
}
