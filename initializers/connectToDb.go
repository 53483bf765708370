package initializers

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func ConnectToDB() {
	db, err := OpenDB(AppConfig)
	if err != nil {
		zap.S().Fatalf("failed to connect database: %v", err)
	}
	DB = db
	zap.S().Infof("Database connection successful, driver: %s", AppConfig.DBDriver)
}

// OpenDB opens the products/admins/users store for the configured driver.
func OpenDB(cfg Config) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	gormLogger := logger.Default.LogMode(logger.Silent)
	if cfg.Env == "development" {
		gormLogger = logger.Default.LogMode(logger.Info)
	}
	return gorm.Open(dialector, &gorm.Config{Logger: gormLogger})
}

func dialectorFor(cfg Config) (gorm.Dialector, error) {
	dsn := cfg.DBDSN
	switch cfg.DBDriver {
	case "mysql":
		if dsn == "" {
			port := cfg.DBPort
			if port == "" {
				port = "3306"
			}
			dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
				cfg.DBUser, cfg.DBPass, cfg.DBHost, port, cfg.DBName)
		}
		return mysql.Open(dsn), nil
	case "postgres":
		if dsn == "" {
			port := cfg.DBPort
			if port == "" {
				port = "5432"
			}
			dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
				cfg.DBHost, cfg.DBUser, cfg.DBPass, cfg.DBName, port)
		}
		return postgres.Open(dsn), nil
	case "sqlite":
		if dsn == "" {
			dsn = cfg.DBName + ".db"
		}
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}
