package initializers

import (
	"github.com/Kariqs/laptopzone-api/models"
	"go.uber.org/zap"
)

func SyncDatabase() {
	if err := DB.AutoMigrate(&models.Product{}, &models.Admin{}, &models.User{}); err != nil {
		zap.S().Fatalf("failed to migrate database: %v", err)
	}
	zap.S().Info("Database synced successfully.")
}
