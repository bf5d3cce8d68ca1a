package devapi

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"shopadmin/internal/models"
)

// ErrNotFound is returned when a product row does not exist.
var ErrNotFound = errors.New("product not found")

// MustOpen opens (or creates) the SQLite database at path and migrates
// the schema. It exits the process on failure, like any broken devapi
// start should.
func MustOpen(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to open database: ", err)
	}
	if err := db.AutoMigrate(&AdminUser{}, &ProductRecord{}); err != nil {
		log.Fatal(err)
	}
	return db
}

// Store provides product and user access for the devapi handlers.
type Store struct {
	db *gorm.DB
}

// NewStore wraps an open database.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// EnsureAdmin creates or updates the admin account with the given
// credentials.
func (s *Store) EnsureAdmin(username, password string) error {
	hash, err := HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	var u AdminUser
	err = s.db.Where("username = ?", username).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.db.Create(&AdminUser{Username: username, PasswordHash: hash}).Error
	}
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return s.db.Save(&u).Error
}

// Authenticate checks a username/password pair against the users table.
func (s *Store) Authenticate(username, password string) bool {
	var u AdminUser
	if err := s.db.Where("username = ?", username).First(&u).Error; err != nil {
		return false
	}
	return CheckPassword(u.PasswordHash, password)
}

// ListProducts returns all products, newest first.
func (s *Store) ListProducts() ([]models.Product, error) {
	var rows []ProductRecord
	if err := s.db.Order("created_at desc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	out := make([]models.Product, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Wire())
	}
	return out, nil
}

// CreateProduct inserts a new row under the given id.
func (s *Store) CreateProduct(id string, p models.Product) error {
	row := recordFrom(p)
	row.ID = id
	if err := s.db.Create(&row).Error; err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

// UpdateProduct overwrites the row with the given id.
func (s *Store) UpdateProduct(id string, p models.Product) error {
	var existing ProductRecord
	if err := s.db.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("find product: %w", err)
	}
	row := recordFrom(p)
	row.ID = id
	row.CreatedAt = existing.CreatedAt
	if err := s.db.Save(&row).Error; err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// DeleteProduct removes the row with the given id.
func (s *Store) DeleteProduct(id string) error {
	res := s.db.Delete(&ProductRecord{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CountProducts reports how many rows exist (used to decide seeding).
func (s *Store) CountProducts() (int64, error) {
	var n int64
	err := s.db.Model(&ProductRecord{}).Count(&n).Error
	return n, err
}
