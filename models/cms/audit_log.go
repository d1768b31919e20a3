package cms

import (
	"time"

	"github.com/samber/lo"

	"github.com/top-system/light-news/models/dto"
)

// AuditLog 写操作审计日志, 用户删除后保留
type AuditLog struct {
	ID             uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID         *string   `gorm:"column:user_id;type:char(36);index" json:"userId"`
	Module         string    `gorm:"column:module;size:50;not null" json:"module"`
	Method         string    `gorm:"column:method;size:16;not null" json:"method"`
	Path           string    `gorm:"column:path;size:255" json:"path"`
	Route          string    `gorm:"column:route;size:255" json:"route"`
	IP             string    `gorm:"column:ip;size:45" json:"ip"`
	Browser        string    `gorm:"column:browser;size:100" json:"browser"`
	BrowserVersion string    `gorm:"column:browser_version;size:100" json:"browserVersion"`
	OS             string    `gorm:"column:os;size:100" json:"os"`
	StatusCode     int       `gorm:"column:status_code" json:"statusCode"`
	ExecutionTime  int64     `gorm:"column:execution_time" json:"executionTime"`
	RequestBody    string    `gorm:"column:request_body;type:text" json:"requestBody"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime;index" json:"createdAt"`
}

type AuditLogs []*AuditLog

type AuditLogQueryParam struct {
	dto.PaginationParam
	UserID string `query:"-"`
	Module string `query:"module"`
}

type AuditLogQueryResult struct {
	List       AuditLogs       `json:"list"`
	Pagination *dto.Pagination `json:"pagination"`
}

// AuditLogVO 日志视图对象, 不返回请求体
type AuditLogVO struct {
	ID             uint64    `json:"id"`
	Module         string    `json:"module"`
	Method         string    `json:"method"`
	Path           string    `json:"path"`
	IP             string    `json:"ip"`
	Browser        string    `json:"browser"`
	BrowserVersion string    `json:"browserVersion"`
	OS             string    `json:"os"`
	StatusCode     int       `json:"statusCode"`
	ExecutionTime  int64     `json:"executionTime"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (list AuditLogs) ToVOList() []*AuditLogVO {
	return lo.Map(list, func(item *AuditLog, _ int) *AuditLogVO {
		return &AuditLogVO{
			ID:             item.ID,
			Module:         item.Module,
			Method:         item.Method,
			Path:           item.Path,
			IP:             item.IP,
			Browser:        item.Browser,
			BrowserVersion: item.BrowserVersion,
			OS:             item.OS,
			StatusCode:     item.StatusCode,
			ExecutionTime:  item.ExecutionTime,
			CreatedAt:      item.CreatedAt,
		}
	})
}
