package seed

import (
	"time"

	"github.com/yiryeong/wanted-pre-onboarding/internal/logger"
	"github.com/yiryeong/wanted-pre-onboarding/internal/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const seedPassword = "funding123"

var demoUsers = []struct {
	Username string
	Email    string
	IsStaff  bool
}{
	{"demo_staff", "staff@demo.local", true},
	{"demo_backer1", "backer1@demo.local", false},
	{"demo_backer2", "backer2@demo.local", false},
}

// Run inserts demo accounts and one demo product. Skips when any user
// already exists.
func Run(db *gorm.DB) {
	var count int64
	if err := db.Model(&model.UserModel{}).Count(&count).Error; err != nil {
		logger.Fatal("seed check failed: %v", err)
	}
	if count > 0 {
		logger.Info("seed already applied, skipping")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Fatal("failed to hash seed password: %v", err)
	}
	hashed := string(hash)

	err = db.Transaction(func(tx *gorm.DB) error {
		var staff model.UserModel
		for _, u := range demoUsers {
			user := model.UserModel{
				Username: u.Username,
				Email:    u.Email,
				Password: hashed,
				IsStaff:  u.IsStaff,
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
			if u.IsStaff {
				staff = user
			}
		}

		product := model.ProductModel{
			UserId:         staff.Id,
			Title:          "demo campaign",
			Description:    "seeded funding campaign",
			TargetAmount:   35000,
			OneTimeFunding: 10,
			EndDate:        time.Now().AddDate(0, 1, 0),
		}
		return tx.Create(&product).Error
	})
	if err != nil {
		logger.Fatal("seed failed: %v", err)
	}

	logger.Info("seeded demo users: %s, %s, %s", demoUsers[0].Username, demoUsers[1].Username, demoUsers[2].Username)
}
