package storage

import (
	"studio-backoffice/internal/models"

	"gorm.io/gorm"
)

func (s *Store) CreatePortfolioItem(item *models.PortfolioItem) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		pos, err := nextPosition(tx, &models.PortfolioItem{})
		if err != nil {
			return err
		}
		item.Position = pos
		return translate(tx.Create(item).Error)
	})
}

// nextPosition appends after the current tail. Row count is not usable here:
// soft-deleting a middle item leaves the tail position above the live count,
// and a count-based position would collide with it.
func nextPosition(tx *gorm.DB, model interface{}) (int, error) {
	var maxPos *int
	if err := tx.Model(model).Select("MAX(position)").Scan(&maxPos).Error; err != nil {
		return 0, err
	}
	if maxPos == nil {
		return 0, nil
	}
	return *maxPos + 1, nil
}

func (s *Store) ListPortfolio(publishedOnly bool) ([]models.PortfolioItem, error) {
	q := s.db.Order("position asc")
	if publishedOnly {
		q = q.Where("published = ?", true)
	}
	var items []models.PortfolioItem
	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) UpdatePortfolioItem(id uint, patch func(*models.PortfolioItem)) (*models.PortfolioItem, error) {
	var item models.PortfolioItem
	if err := s.db.First(&item, id).Error; err != nil {
		return nil, translate(err)
	}
	patch(&item)
	if err := s.db.Save(&item).Error; err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

// DeletePortfolioItem removes the item and closes the gap it leaves, so
// live positions stay contiguous 0..n-1.
func (s *Store) DeletePortfolioItem(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var item models.PortfolioItem
		if err := tx.First(&item, id).Error; err != nil {
			return translate(err)
		}
		if err := tx.Delete(&item).Error; err != nil {
			return err
		}
		return tx.Model(&models.PortfolioItem{}).
			Where("position > ?", item.Position).
			Update("position", gorm.Expr("position - 1")).Error
	})
}

// ReorderPortfolio rewrites positions 0..n-1 from the given id order inside
// one transaction, so a crash mid-batch never leaves a partial ordering.
// The id set must be exactly the current collection: unknown, missing or
// duplicate ids fail the whole batch. Retrying with the same list is a
// no-op rewrite of identical positions.
func (s *Store) ReorderPortfolio(orderedIDs []uint) error {
	return s.reorder(&models.PortfolioItem{}, orderedIDs)
}

func (s *Store) ReorderBlogPosts(orderedIDs []uint) error {
	return s.reorder(&models.BlogPost{}, orderedIDs)
}

func (s *Store) reorder(model interface{}, orderedIDs []uint) error {
	seen := make(map[uint]struct{}, len(orderedIDs))
	for _, id := range orderedIDs {
		if _, dup := seen[id]; dup {
			return ErrConflict
		}
		seen[id] = struct{}{}
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(model).Count(&count).Error; err != nil {
			return err
		}
		if int(count) != len(orderedIDs) {
			return ErrConflict
		}

		for pos, id := range orderedIDs {
			res := tx.Model(model).Where("id = ?", id).Update("position", pos)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrConflict
			}
		}
		return nil
	})
}

func (s *Store) CreateBlogPost(post *models.BlogPost) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		pos, err := nextPosition(tx, &models.BlogPost{})
		if err != nil {
			return err
		}
		post.Position = pos
		return translate(tx.Create(post).Error)
	})
}

func (s *Store) GetBlogPostBySlug(slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := s.db.Where("slug = ?", slug).First(&post).Error; err != nil {
		return nil, translate(err)
	}
	return &post, nil
}

func (s *Store) ListBlogPosts(publishedOnly bool) ([]models.BlogPost, error) {
	q := s.db.Order("position asc")
	if publishedOnly {
		q = q.Where("published = ?", true)
	}
	var posts []models.BlogPost
	if err := q.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *Store) UpdateBlogPost(id uint, patch func(*models.BlogPost)) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := s.db.First(&post, id).Error; err != nil {
		return nil, translate(err)
	}
	patch(&post)
	if err := s.db.Save(&post).Error; err != nil {
		return nil, translate(err)
	}
	return &post, nil
}

func (s *Store) DeleteBlogPost(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var post models.BlogPost
		if err := tx.First(&post, id).Error; err != nil {
			return translate(err)
		}
		if err := tx.Delete(&post).Error; err != nil {
			return err
		}
		return tx.Model(&models.BlogPost{}).
			Where("position > ?", post.Position).
			Update("position", gorm.Expr("position - 1")).Error
	})
}
