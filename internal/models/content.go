package models

import "gorm.io/gorm"

// PortfolioItem and BlogPost share the ordered-list shape: Position is
// contiguous 0..n-1 within the collection and is rewritten as a whole on
// reorder, never patched per row.

type PortfolioItem struct {
	gorm.Model
	Title    string `gorm:"size:255;not null" json:"title"`
	Slug     string `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Summary  string `gorm:"type:text" json:"summary"`
	ImageURL string `gorm:"size:512" json:"image_url"`

	Published bool `json:"published"`
	Position  int  `gorm:"not null" json:"position"`
}

type BlogPost struct {
	gorm.Model
	Title   string `gorm:"size:255;not null" json:"title"`
	Slug    string `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Summary string `gorm:"type:text" json:"summary"`
	Body    string `gorm:"type:text" json:"body"`

	AuthorID uint `json:"author_id"`
	Author   User `json:"-"`

	Published bool `json:"published"`
	Position  int  `gorm:"not null" json:"position"`
}
