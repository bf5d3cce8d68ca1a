package devapi

import (
	"encoding/json"
	"time"

	"golang.org/x/crypto/bcrypt"

	"shopadmin/internal/models"
)

// ProductRecord is the products table. The secondary image list is
// stored as a JSON array in a text column.
type ProductRecord struct {
	ID          string `gorm:"primaryKey;size:36"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Title       string `gorm:"not null"`
	Category    string
	Unit        string
	OriginPrice float64
	Price       float64
	Description string `gorm:"type:text"`
	Content     string `gorm:"type:text"`
	ImageURL    string
	ImagesJSON  string `gorm:"type:text"`
	IsEnabled   int
}

// TableName returns the table name for ProductRecord.
func (ProductRecord) TableName() string { return "products" }

// Wire converts the row to the API's product shape.
func (r ProductRecord) Wire() models.Product {
	var images []string
	if r.ImagesJSON != "" {
		_ = json.Unmarshal([]byte(r.ImagesJSON), &images)
	}
	return models.Product{
		ID:          r.ID,
		Title:       r.Title,
		Category:    r.Category,
		Unit:        r.Unit,
		OriginPrice: r.OriginPrice,
		Price:       r.Price,
		Description: r.Description,
		Content:     r.Content,
		ImageURL:    r.ImageURL,
		ImagesURL:   images,
		IsEnabled:   r.IsEnabled,
	}
}

// recordFrom maps an incoming product onto a row. The id is left for
// the caller: assigned on create, fixed by the URL on update.
func recordFrom(p models.Product) ProductRecord {
	images := "[]"
	if p.ImagesURL != nil {
		if buf, err := json.Marshal(p.ImagesURL); err == nil {
			images = string(buf)
		}
	}
	return ProductRecord{
		Title:       p.Title,
		Category:    p.Category,
		Unit:        p.Unit,
		OriginPrice: p.OriginPrice,
		Price:       p.Price,
		Description: p.Description,
		Content:     p.Content,
		ImageURL:    p.ImageURL,
		ImagesJSON:  images,
		IsEnabled:   p.IsEnabled,
	}
}

// AdminUser is the users table: the single account allowed to sign in.
type AdminUser struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}

// TableName returns the table name for AdminUser.
func (AdminUser) TableName() string { return "users" }

// HashPassword turns a plain password into a bcrypt hash.
func HashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckPassword reports whether the password matches the hash.
func CheckPassword(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}
