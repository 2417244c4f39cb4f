package dtr

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const timesheetTTL = 10 * time.Minute

// Cache stores rendered timesheets keyed by employee, range and a
// per-employee version. Bumping the version on an approval makes every
// older timesheet unreachable without scanning keys; stale entries age
// out through the TTL.
type Cache struct {
	rdb    *redis.Client
	logger *zap.Logger
}

func NewCache(rdb *redis.Client, logger ...*zap.Logger) *Cache {
	l := zap.L().Named("dtr.cache")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dtr.cache")
	}
	return &Cache{rdb: rdb, logger: l}
}

func versionKey(employeeID string) string {
	return "dtr:ver:" + employeeID
}

func timesheetKey(employeeID, from, to string, version int64) string {
	return fmt.Sprintf("dtr:sheet:%s:%s:%s:v%d", employeeID, from, to, version)
}

// Version returns the employee's current cache version. A missing key
// reads as version 0.
func (c *Cache) Version(ctx context.Context, employeeID string) (int64, error) {
	v, err := c.rdb.Get(ctx, versionKey(employeeID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}

// BumpVersion invalidates every cached timesheet of the employee.
func (c *Cache) BumpVersion(ctx context.Context, employeeID string) error {
	return c.rdb.Incr(ctx, versionKey(employeeID)).Err()
}

func (c *Cache) GetTimesheet(ctx context.Context, employeeID, from, to string, version int64) (*TimesheetResponse, bool) {
	raw, err := c.rdb.Get(ctx, timesheetKey(employeeID, from, to, version)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("timesheet cache read failed",
				zap.String("employee_id", employeeID),
				zap.Error(err),
			)
		}
		return nil, false
	}

	var resp TimesheetResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		c.logger.Warn("timesheet cache decode failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return nil, false
	}
	return &resp, true
}

func (c *Cache) SetTimesheet(ctx context.Context, employeeID, from, to string, version int64, resp TimesheetResponse) {
	raw, err := json.Marshal(resp)
	if err != nil {
		c.logger.Warn("timesheet cache encode failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return
	}
	if err := c.rdb.Set(ctx, timesheetKey(employeeID, from, to, version), raw, timesheetTTL).Err(); err != nil {
		c.logger.Warn("timesheet cache write failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
	}
}
