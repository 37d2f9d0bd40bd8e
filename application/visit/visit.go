package visit

import (
	"context"
	"time"

	"github.com/decomizer/storefront/cmd/config"
	"github.com/decomizer/storefront/constant"
	redisrepo "github.com/decomizer/storefront/repository/redis"
	"github.com/decomizer/storefront/utils/errors"
	"github.com/decomizer/storefront/utils/logger"
	"go.uber.org/zap"
)

type VisitApp interface {
	// Record counts one page view against the current UTC day.
	Record(ctx context.Context) error
}

type visitAppImpl struct {
	config    *config.Config
	redisRepo redisrepo.RedisRepository
	now       func() time.Time
}

func NewVisitApp(config *config.Config, redisRepo redisrepo.RedisRepository, now func() time.Time) VisitApp {
	if now == nil {
		now = time.Now
	}
	return &visitAppImpl{config: config, redisRepo: redisRepo, now: now}
}

func (s *visitAppImpl) Record(ctx context.Context) error {
	day := s.now().UTC().Format("2006-01-02")
	if _, err := s.redisRepo.IncrVisits(ctx, day, s.config.Visit.CounterTTL); err != nil {
		logger.Error("[RecordVisit] err redisRepo.IncrVisits", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
