package cms

import (
	"time"

	"github.com/samber/lo"

	"github.com/top-system/light-news/models/database"
)

// Page 自定义页面, custom_url 全局唯一
type Page struct {
	database.Model
	CustomURL   string `gorm:"column:custom_url;size:191;uniqueIndex;not null" json:"customUrl"`
	PageContent string `gorm:"column:page_content;type:text;not null" json:"pageContent"`
	UserID      string `gorm:"column:user_id;type:char(36);not null;index" json:"userId"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

type Pages []*Page

type PageForm struct {
	CustomURL   string `json:"customUrl" validate:"required,max=191"`
	PageContent string `json:"pageContent" validate:"required"`
}

type PageUpdateForm struct {
	CustomURL   *string `json:"customUrl" validate:"omitempty,min=1,max=191"`
	PageContent *string `json:"pageContent" validate:"omitempty,min=1"`
}

type PageVO struct {
	ID          string    `json:"id"`
	CustomURL   string    `json:"customUrl"`
	PageContent string    `json:"pageContent"`
	UserID      string    `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	User        *UserRef  `json:"user,omitempty"`
}

func (a *Page) ToVO() *PageVO {
	return &PageVO{
		ID:          a.ID,
		CustomURL:   a.CustomURL,
		PageContent: a.PageContent,
		UserID:      a.UserID,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
		User:        a.User.ToRef(),
	}
}

func (a Pages) ToVOList() []*PageVO {
	return lo.Map(a, func(item *Page, _ int) *PageVO {
		return item.ToVO()
	})
}
