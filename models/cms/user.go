package cms

import (
	"github.com/top-system/light-news/models/database"
)

// User 用户, 删除时级联删除其分类、新闻与页面
type User struct {
	database.Model
	Username string `gorm:"column:username;size:64;uniqueIndex;not null" json:"username"`
	Password string `gorm:"column:password;size:255;not null" json:"-"`

	Categories []Category `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	News       []News     `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
	Pages      []Page     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// UserRef owner summary embedded in detail responses
type UserRef struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

func (a *User) ToRef() *UserRef {
	if a == nil || a.ID == "" {
		return nil
	}
	return &UserRef{ID: a.ID, Username: a.Username}
}
