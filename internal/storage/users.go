package storage

import (
	"errors"

	"studio-backoffice/internal/models"

	"gorm.io/gorm"
)

func (s *Store) UserByEmail(email string) (*models.User, error) {
	var u models.User
	if err := s.db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (s *Store) UserByID(id uint) (*models.User, error) {
	var u models.User
	if err := s.db.First(&u, id).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (s *Store) CreateUser(u *models.User) error {
	return translate(s.db.Create(u).Error)
}

// translate maps gorm's sentinel errors onto the store's taxonomy. Creates
// and lookups both route through here so unique-index violations come back
// as ErrConflict on every backend.
func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrConflict
	}
	return err
}
