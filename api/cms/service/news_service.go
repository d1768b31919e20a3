package service

import (
	"gorm.io/gorm"

	"github.com/top-system/light-news/api/cms/repository"
	"github.com/top-system/light-news/constants"
	"github.com/top-system/light-news/errors"
	"github.com/top-system/light-news/lib"
	"github.com/top-system/light-news/models/cms"
	"github.com/top-system/light-news/pkg/websocket"
)

// NewsService service layer
type NewsService struct {
	logger             lib.Logger
	feed               *websocket.Hub
	userRepository     repository.UserRepository
	categoryRepository repository.CategoryRepository
	newsRepository     repository.NewsRepository
	commentRepository  repository.CommentRepository
}

// NewNewsService creates a new news service
func NewNewsService(
	logger lib.Logger,
	feed *websocket.Hub,
	userRepository repository.UserRepository,
	categoryRepository repository.CategoryRepository,
	newsRepository repository.NewsRepository,
	commentRepository repository.CommentRepository,
) NewsService {
	return NewsService{
		logger:             logger,
		feed:               feed,
		userRepository:     userRepository,
		categoryRepository: categoryRepository,
		newsRepository:     newsRepository,
		commentRepository:  commentRepository,
	}
}

// WithTrx delegates transaction to repository database
func (a NewsService) WithTrx(trxHandle *gorm.DB) NewsService {
	a.userRepository = a.userRepository.WithTrx(trxHandle)
	a.categoryRepository = a.categoryRepository.WithTrx(trxHandle)
	a.newsRepository = a.newsRepository.WithTrx(trxHandle)
	a.commentRepository = a.commentRepository.WithTrx(trxHandle)
	return a
}

func (a NewsService) Query() (cms.NewsList, error) {
	return a.newsRepository.Query()
}

func (a NewsService) Get(id string) (*cms.News, error) {
	news, err := a.newsRepository.Get(id)
	if err != nil {
		if errors.Is(err, errors.DatabaseRecordNotFound) {
			return nil, errors.NewsNotFound
		}
		return nil, err
	}

	return news, nil
}

func (a NewsService) Create(userID string, form *cms.NewsForm) (*cms.News, error) {
	if _, err := a.userRepository.Get(userID); err != nil {
		if errors.Is(err, errors.DatabaseRecordNotFound) {
			return nil, errors.AuthorNotFound
		}
		return nil, err
	}

	if err := a.checkCategory(form.CategoryID); err != nil {
		return nil, err
	}

	categoryID := form.CategoryID
	news := &cms.News{
		Content:    form.Content,
		CategoryID: &categoryID,
		AuthorID:   userID,
	}

	if err := a.newsRepository.Create(news); err != nil {
		return nil, err
	}

	return news, nil
}

// Update 仅允许作者修改, 更换分类时校验新分类存在
func (a NewsService) Update(userID, id string, form *cms.NewsUpdateForm) (*cms.News, error) {
	news, err := a.getOwned(userID, id)
	if err != nil {
		return nil, err
	}

	if form.CategoryID != nil && (news.CategoryID == nil || *form.CategoryID != *news.CategoryID) {
		if err := a.checkCategory(*form.CategoryID); err != nil {
			return nil, err
		}
		categoryID := *form.CategoryID
		news.CategoryID = &categoryID
	}

	if form.Content != nil {
		news.Content = *form.Content
	}

	if err := a.newsRepository.Update(news); err != nil {
		return nil, err
	}

	return news, nil
}

// Remove 删除新闻及其评论, 返回其最后状态
func (a NewsService) Remove(userID, id string) (*cms.News, error) {
	news, err := a.getOwned(userID, id)
	if err != nil {
		return nil, err
	}

	comments, err := a.commentRepository.CountByNews(news.ID)
	if err != nil {
		return nil, err
	}

	if err := a.newsRepository.Delete(news.ID); err != nil {
		return nil, err
	}

	a.logger.Zap.Infof("news %s removed with %d comments", news.ID, comments)
	return news, nil
}

// CreateComment 匿名评论, 新闻不存在时拒绝
func (a NewsService) CreateComment(newsID string, form *cms.CommentForm) (*cms.Comment, error) {
	exists, err := a.newsRepository.Exists(newsID)
	if err != nil {
		return nil, err
	} else if !exists {
		return nil, errors.NewsNotFound
	}

	comment := &cms.Comment{
		Name:    form.Name,
		Comment: form.Comment,
		NewsID:  newsID,
	}

	if err := a.commentRepository.Create(comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (a NewsService) getOwned(userID, id string) (*cms.News, error) {
	news, err := a.newsRepository.GetOwned(id, userID)
	if err != nil {
		if errors.Is(err, errors.DatabaseRecordNotFound) {
			return nil, errors.NewsNotFound
		}
		return nil, err
	}

	return news, nil
}

func (a NewsService) checkCategory(id string) error {
	if _, err := a.categoryRepository.Get(id); err != nil {
		if errors.Is(err, errors.DatabaseRecordNotFound) {
			return errors.CategoryNotFound
		}
		return err
	}

	return nil
}

// PublishCreated 推送新闻发布事件, 需在事务提交后调用
func (a NewsService) PublishCreated(news *cms.News) {
	a.publish(constants.EventNewsCreated, news.ToVO())
}

// PublishComment 推送评论事件, 需在事务提交后调用
func (a NewsService) PublishComment(comment *cms.Comment) {
	a.publish(constants.EventCommentCreated, map[string]interface{}{
		"newsId":  comment.NewsID,
		"comment": comment.ToVO(),
	})
}

func (a NewsService) publish(eventType string, data interface{}) {
	if a.feed == nil {
		return
	}
	a.feed.Publish(eventType, data)
}
