package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewsletterSource is where the subscription was captured
type NewsletterSource string

const (
	NewsletterSourceBlog     NewsletterSource = "blog"
	NewsletterSourceHomepage NewsletterSource = "homepage"
	NewsletterSourceOther    NewsletterSource = "other"
)

// NewsletterStatus is the subscription state
type NewsletterStatus string

const (
	NewsletterStatusActive       NewsletterStatus = "active"
	NewsletterStatusUnsubscribed NewsletterStatus = "unsubscribed"
)

// NewsletterSubscriber represents one newsletter email subscription
type NewsletterSubscriber struct {
	ID        string           `json:"id" gorm:"primaryKey;type:uuid"`
	Email     string           `json:"email" gorm:"uniqueIndex;not null"`
	Source    NewsletterSource `json:"source" gorm:"type:varchar(20);default:'other'"`
	Status    NewsletterStatus `json:"status" gorm:"type:varchar(20);default:'active'"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

func (NewsletterSubscriber) TableName() string {
	return "newsletter_subscribers"
}

func (n *NewsletterSubscriber) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}

// NewsletterSubscribe model for subscribing to the newsletter
type NewsletterSubscribe struct {
	Email  string `json:"email" binding:"required,email" example:"jane@example.com"`
	Source string `json:"source" example:"blog"`
}
