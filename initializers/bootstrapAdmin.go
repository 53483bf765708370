package initializers

import (
	"errors"

	"github.com/Kariqs/laptopzone-api/models"
	"github.com/Kariqs/laptopzone-api/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BootstrapAdmin makes sure the configured owner account exists and holds an
// active admins record. It is a no-op when no bootstrap email is set.
func BootstrapAdmin(db *gorm.DB, cfg Config) error {
	if cfg.BootstrapAdminEmail == "" || cfg.BootstrapAdminPassword == "" {
		return nil
	}

	var user models.User
	err := db.Where("email = ?", cfg.BootstrapAdminEmail).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		hashed, hashErr := utils.HashPassword(cfg.BootstrapAdminPassword)
		if hashErr != nil {
			return hashErr
		}
		user = models.User{Email: cfg.BootstrapAdminEmail, Password: hashed}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
		zap.S().Infof("Created bootstrap user %s", user.Email)
	} else if err != nil {
		return err
	}

	admin := models.Admin{UID: user.UID, Active: true}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "uid"}},
		DoUpdates: clause.AssignmentColumns([]string{"active", "updated_at"}),
	}).Create(&admin).Error
}
