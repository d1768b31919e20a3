package constants

const (
	Version = "v1.0.0"
)

// echo context keys
const (
	CurrentUser      = "current_user"
	DBTransaction    = "db_trx"
	// 事务提交后执行的回调
	AfterCommitHooks = "after_commit_hooks"
)

const (
	RedisMainDB = 0

	// 验证码缓存前缀与有效期(秒)
	CaptchaKeyPrefix   = "captcha"
	CaptchaExpireTimes = 300

	// token id 缓存前缀, 登出后删除
	TokenKeyPrefix = "auth:token"
)

// 实时推送事件类型
const (
	EventNewsCreated    = "news.created"
	EventCommentCreated = "comment.created"
)

// 定时任务名称
const (
	TaskPurgeAuditLogs = "purge_audit_logs"
)
