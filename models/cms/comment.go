package cms

import (
	"time"

	"github.com/top-system/light-news/models/database"
)

// Comment 新闻评论, 匿名提交
type Comment struct {
	database.Model
	Name    string `gorm:"column:name;size:100;not null" json:"name"`
	Comment string `gorm:"column:comment;type:text;not null" json:"comment"`
	NewsID  string `gorm:"column:news_id;type:char(36);not null;index" json:"newsId"`

	News *News `gorm:"foreignKey:NewsID" json:"-"`
}

type CommentForm struct {
	Name    string `json:"name" validate:"required,max=100"`
	Comment string `json:"comment" validate:"required"`
}

type CommentVO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a Comment) ToVO() *CommentVO {
	return &CommentVO{
		ID:        a.ID,
		Name:      a.Name,
		Comment:   a.Comment,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
