package cms

import (
	"time"

	"github.com/samber/lo"
	"gorm.io/gorm/schema"

	"github.com/top-system/light-news/models/database"
)

// News 新闻, 删除时级联删除评论
type News struct {
	database.Model
	Content    string  `gorm:"column:content;type:text;not null" json:"content"`
	CategoryID *string `gorm:"column:category_id;type:char(36);index" json:"categoryId"`
	AuthorID   string  `gorm:"column:author_id;type:char(36);not null;index" json:"authorId"`

	Author   *User     `gorm:"foreignKey:AuthorID" json:"-"`
	Category *Category `gorm:"foreignKey:CategoryID" json:"-"`
	Comments []Comment `gorm:"foreignKey:NewsID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName keeps "news" uncountable while honouring the configured prefix
func (News) TableName(namer schema.Namer) string {
	if ns, ok := namer.(schema.NamingStrategy); ok {
		return ns.TablePrefix + "news"
	}
	return "news"
}

type NewsList []*News

type NewsForm struct {
	CategoryID string `json:"categoryId" validate:"required"`
	Content    string `json:"content" validate:"required"`
}

type NewsUpdateForm struct {
	CategoryID *string `json:"categoryId" validate:"omitempty,min=1"`
	Content    *string `json:"content" validate:"omitempty,min=1"`
}

type NewsVO struct {
	ID         string       `json:"id"`
	Content    string       `json:"content"`
	CategoryID *string      `json:"categoryId"`
	AuthorID   string       `json:"authorId"`
	CreatedAt  time.Time    `json:"createdAt"`
	UpdatedAt  time.Time    `json:"updatedAt"`
	Author     *UserRef     `json:"author,omitempty"`
	Category   *CategoryRef `json:"category,omitempty"`
	Comments   []*CommentVO `json:"comments,omitempty"`
}

func (a *News) ToVO() *NewsVO {
	vo := &NewsVO{
		ID:         a.ID,
		Content:    a.Content,
		CategoryID: a.CategoryID,
		AuthorID:   a.AuthorID,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
		Author:     a.Author.ToRef(),
		Category:   a.Category.ToRef(),
	}

	if a.Comments != nil {
		vo.Comments = lo.Map(a.Comments, func(item Comment, _ int) *CommentVO {
			return item.ToVO()
		})
	}

	return vo
}

func (a NewsList) ToVOList() []*NewsVO {
	return lo.Map(a, func(item *News, _ int) *NewsVO {
		return item.ToVO()
	})
}
