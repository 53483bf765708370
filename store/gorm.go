package store

import (
	"context"
	"errors"

	"github.com/Kariqs/laptopzone-api/models"
	"gorm.io/gorm"
)

type GormStore struct {
	db     *gorm.DB
	assets Uploader
}

func NewGormStore(db *gorm.DB, assets Uploader) *GormStore {
	return &GormStore{db: db, assets: assets}
}

func (s *GormStore) FetchAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.WithContext(ctx).Order("created_at ASC").Find(&products).Error; err != nil {
		return nil, unavailable("fetch products", err)
	}
	return products, nil
}

func (s *GormStore) FetchBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var candidates []models.Product
	err := s.db.WithContext(ctx).
		Where("slug = ?", slug).
		Order("created_at ASC").
		Find(&candidates).Error
	if err != nil {
		return nil, unavailable("fetch product by slug", err)
	}
	return pickSlug(candidates, slug)
}

func (s *GormStore) Add(ctx context.Context, p *models.Product) (string, error) {
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		return "", unavailable("create product", err)
	}
	return p.ID, nil
}

func (s *GormStore) CheckPrivilege(ctx context.Context, uid string) (bool, error) {
	if uid == "" {
		return false, nil
	}
	var admin models.Admin
	err := s.db.WithContext(ctx).Where("uid = ?", uid).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, unavailable("check admin privilege", err)
	}
	return admin.Active, nil
}

func (s *GormStore) UploadAsset(ctx context.Context, obj Object, progress ProgressFunc) (string, error) {
	if s.assets == nil {
		return "", unavailable("upload asset", errors.New("object storage is not configured"))
	}
	url, err := s.assets.Upload(ctx, obj, progress)
	if err != nil {
		return "", unavailable("upload asset", err)
	}
	return url, nil
}

func (s *GormStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, unavailable("find user", err)
	}
	return &user, nil
}
