package models

import (
	"time"

	"gorm.io/gorm"
)

type LeadProjectType string
type LeadStatus string

const (
	LeadWebsite  LeadProjectType = "website"
	LeadEshop    LeadProjectType = "eshop"
	LeadRedesign LeadProjectType = "redesign"
	LeadSEO      LeadProjectType = "seo"
	LeadOther    LeadProjectType = "other"

	LeadNew       LeadStatus = "new"
	LeadContacted LeadStatus = "contacted"
	LeadConverted LeadStatus = "converted"
	LeadArchived  LeadStatus = "archived"
)

// Lead is a contact/quote request submitted through the public form.
// Leads are never hard-deleted; archival is the gorm soft delete.
type Lead struct {
	gorm.Model
	PublicID string `gorm:"size:36;uniqueIndex;not null" json:"public_id"`

	Name    string          `gorm:"size:255;not null" json:"name"`
	Email   string          `gorm:"size:255;not null" json:"email"`
	Phone   string          `gorm:"size:50" json:"phone"`
	Company string          `gorm:"size:255;not null" json:"company"`
	Type    LeadProjectType `gorm:"type:varchar(20);not null" json:"project_type"`
	Message string          `gorm:"type:text;not null" json:"message"`

	Status      LeadStatus `gorm:"type:varchar(20);not null" json:"status"`
	ContactedAt *time.Time `json:"contacted_at,omitempty"`
	ConvertedAt *time.Time `json:"converted_at,omitempty"`
}

func ValidLeadProjectType(t LeadProjectType) bool {
	switch t {
	case LeadWebsite, LeadEshop, LeadRedesign, LeadSEO, LeadOther:
		return true
	}
	return false
}

func ValidLeadStatus(s LeadStatus) bool {
	switch s {
	case LeadNew, LeadContacted, LeadConverted, LeadArchived:
		return true
	}
	return false
}
