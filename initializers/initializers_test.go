package initializers

import (
	"testing"
	"time"

	"github.com/Kariqs/laptopzone-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "ENV", "DB_DRIVER", "TOKEN_TTL", "CORS_ORIGINS", "S3_REGION", "SESSION_MAX", "SESSION_TTL"} {
		t.Setenv(k, "")
	}
	cfg := LoadConfig()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "mysql", cfg.DBDriver)
	assert.Equal(t, 720*time.Hour, cfg.TokenTTL)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
	assert.Equal(t, "auto", cfg.S3Region)
	assert.Equal(t, 10000, cfg.MaxSessions)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("TOKEN_TTL", "90m")
	t.Setenv("CORS_ORIGINS", "https://laptopzonelb.com, ,http://localhost:3000")
	cfg := LoadConfig()
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 90*time.Minute, cfg.TokenTTL)
	assert.Equal(t, []string{"https://laptopzonelb.com", "http://localhost:3000"}, cfg.CORSOrigins)
}

func TestDialectorFor(t *testing.T) {
	d, err := dialectorFor(Config{DBDriver: "mysql", DBUser: "root", DBHost: "db", DBName: "shop"})
	require.NoError(t, err)
	assert.Equal(t, "root:@tcp(db:3306)/shop?charset=utf8mb4&parseTime=True&loc=Local", d.(*mysql.Dialector).DSN)

	d, err = dialectorFor(Config{DBDriver: "postgres", DBUser: "u", DBPass: "p", DBHost: "h", DBName: "n"})
	require.NoError(t, err)
	assert.Equal(t, "host=h user=u password=p dbname=n port=5432 sslmode=disable", d.(*postgres.Dialector).Config.DSN)

	d, err = dialectorFor(Config{DBDriver: "sqlite", DBName: "laptopzone"})
	require.NoError(t, err)
	assert.Equal(t, "laptopzone.db", d.(*sqlite.Dialector).DSN)

	_, err = dialectorFor(Config{DBDriver: "oracle"})
	assert.Error(t, err)
}

func TestBootstrapAdmin(t *testing.T) {
	cfg := Config{Env: "test", DBDriver: "sqlite", DBDSN: "file::memory:"}
	db, err := OpenDB(cfg)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.Admin{}, &models.User{}))

	require.NoError(t, BootstrapAdmin(db, cfg), "no-op without credentials")

	cfg.BootstrapAdminEmail = "owner@laptopzone.test"
	cfg.BootstrapAdminPassword = "hunter22"
	require.NoError(t, BootstrapAdmin(db, cfg))
	require.NoError(t, BootstrapAdmin(db, cfg), "idempotent")

	var users []models.User
	require.NoError(t, db.Find(&users).Error)
	require.Len(t, users, 1)
	assert.NotEqual(t, "hunter22", users[0].Password)

	var adminRow models.Admin
	require.NoError(t, db.First(&adminRow, "uid = ?", users[0].UID).Error)
	assert.True(t, adminRow.Active)
}
