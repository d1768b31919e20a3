package cms

import (
	"time"

	"github.com/samber/lo"

	"github.com/top-system/light-news/models/database"
)

// Category 分类, 删除时其新闻的 category_id 置空
type Category struct {
	database.Model
	Name   string `gorm:"column:name;size:100;uniqueIndex;not null" json:"name"`
	UserID string `gorm:"column:user_id;type:char(36);not null;index" json:"userId"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
	News []News `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"-"`
}

type Categories []*Category

type CategoryForm struct {
	Name string `json:"name" validate:"required,max=100"`
}

type CategoryUpdateForm struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=100"`
}

type CategoryVO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	User      *UserRef  `json:"user,omitempty"`
}

// CategoryRef category summary embedded in news details
type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (a *Category) ToVO() *CategoryVO {
	return &CategoryVO{
		ID:        a.ID,
		Name:      a.Name,
		UserID:    a.UserID,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
		User:      a.User.ToRef(),
	}
}

func (a *Category) ToRef() *CategoryRef {
	if a == nil || a.ID == "" {
		return nil
	}
	return &CategoryRef{ID: a.ID, Name: a.Name}
}

func (a Categories) ToVOList() []*CategoryVO {
	return lo.Map(a, func(item *Category, _ int) *CategoryVO {
		return item.ToVO()
	})
}
