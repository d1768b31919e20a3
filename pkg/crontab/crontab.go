package crontab

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/gofrs/uuid"
	"github.com/robfig/cron/v3"
)

type (
	// TaskFunc is the function type for cron tasks
	TaskFunc func(ctx context.Context)

	// Logger interface for crontab logging
	Logger interface {
		Info(format string, args ...interface{})
		Error(format string, args ...interface{})
	}

	task struct {
		spec    string
		fn      TaskFunc
		entryID cron.EntryID
	}

	// Crontab scheduler with named tasks, six-field specs (with seconds)
	Crontab struct {
		cron    *cron.Cron
		logger  Logger
		tasks   map[string]*task
		mu      sync.Mutex
		started bool
	}

	// TaskInfo represents information about a scheduled task
	TaskInfo struct {
		Name string    `json:"name"`
		Spec string    `json:"spec"`
		Next time.Time `json:"next"`
		Prev time.Time `json:"prev"`
	}

	correlationIDCtx struct{}
)

// New creates a new Crontab instance
func New(logger Logger) *Crontab {
	return &Crontab{
		cron:   cron.New(cron.WithSeconds()),
		logger: logger,
		tasks:  make(map[string]*task),
	}
}

// AddTask registers a task; the cron expression is validated immediately
func (c *Crontab) AddTask(name, spec string, fn TaskFunc) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.tasks[name]; ok {
		return fmt.Errorf("crontab: task %q already exists", name)
	}

	entryID, err := c.cron.AddFunc(spec, c.wrap(name, fn))
	if err != nil {
		return fmt.Errorf("crontab: invalid spec %q for task %q: %w", spec, name, err)
	}

	c.tasks[name] = &task{spec: spec, fn: fn, entryID: entryID}
	c.logger.Info("Cron task %q scheduled with spec %q", name, spec)
	return nil
}

// RemoveTask removes a cron task by name
func (c *Crontab) RemoveTask(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	t, ok := c.tasks[name]
	if !ok {
		return fmt.Errorf("crontab: task %q not found", name)
	}

	c.cron.Remove(t.entryID)
	delete(c.tasks, name)
	return nil
}

// RunTask runs a task immediately and waits for it
func (c *Crontab) RunTask(name string) error {
	c.mu.Lock()
	t, ok := c.tasks[name]
	c.mu.Unlock()
	if !ok {
		return fmt.Errorf("crontab: task %q not found", name)
	}

	c.wrap(name, t.fn)()
	return nil
}

// Start starts the cron scheduler
func (c *Crontab) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.started {
		return fmt.Errorf("crontab: already started")
	}

	c.cron.Start()
	c.started = true
	c.logger.Info("Crontab started with %d tasks", len(c.tasks))
	return nil
}

// Stop stops the scheduler, the returned context is done when running tasks finish
func (c *Crontab) Stop() context.Context {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.started {
		return context.Background()
	}

	c.started = false
	return c.cron.Stop()
}

// Tasks returns the registered tasks sorted by name
func (c *Crontab) Tasks() []TaskInfo {
	c.mu.Lock()
	defer c.mu.Unlock()

	infos := make([]TaskInfo, 0, len(c.tasks))
	for name, t := range c.tasks {
		entry := c.cron.Entry(t.entryID)
		infos = append(infos, TaskInfo{Name: name, Spec: t.spec, Next: entry.Next, Prev: entry.Prev})
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}

// wrap adds a correlation id, timing and panic recovery around a task
func (c *Crontab) wrap(name string, fn TaskFunc) func() {
	return func() {
		cid := uuid.Must(uuid.NewV4())
		ctx := context.WithValue(context.Background(), correlationIDCtx{}, cid)
		start := time.Now()

		defer func() {
			if r := recover(); r != nil {
				c.logger.Error("Cron task %q [%s] panicked: %v", name, cid, r)
				return
			}
			c.logger.Info("Cron task %q [%s] completed in %s", name, cid, time.Since(start))
		}()

		fn(ctx)
	}
}

// CorrelationIDFromContext retrieves the correlation ID of the running task
func CorrelationIDFromContext(ctx context.Context) uuid.UUID {
	if id, ok := ctx.Value(correlationIDCtx{}).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}
