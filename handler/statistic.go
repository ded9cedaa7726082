package handler

import (
	"academy_manager/config"
	"academy_manager/constants"
	"academy_manager/database"
	"academy_manager/model"
	"academy_manager/utils"
	"context"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

var redisClient *redis.Client

const statsCacheKey = "admin:stats"

// InitRedis opens the stats cache connection. A dead redis is tolerated; the
// stats endpoint just computes on every call.
func InitRedis() {
	redisClient = redis.NewClient(&redis.Options{
		Addr: config.ConfigOr("REDIS_ADDR", "localhost:6379"),
	})
}

type adminStats struct {
	Consultations        int64 `json:"consultations"`
	PendingConsultations int64 `json:"pendingConsultations"`
	FranchiseInquiries   int64 `json:"franchiseInquiries"`
	HotLeads             int64 `json:"hotLeads"`
	Payments             int64 `json:"payments"`

	TodayRevenue  int64   `json:"todayRevenue"`
	RevenueGrowth float64 `json:"revenueGrowth"` // %
}

func GetAdminStats(c *fiber.Ctx) error {
	if !database.Available() {
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, constants.DATABASE_UNAVAILABLE, nil)
	}

	if redisClient != nil {
		ctx, cancel := context.WithTimeout(c.Context(), 500*time.Millisecond)
		defer cancel()
		if cached, err := redisClient.Get(ctx, statsCacheKey).Result(); err == nil {
			var stats adminStats
			if json.Unmarshal([]byte(cached), &stats) == nil {
				return utils.SuccessResponse(c, fiber.StatusOK, stats)
			}
		}
	}

	stats := computeAdminStats()

	if redisClient != nil {
		if raw, err := json.Marshal(stats); err == nil {
			ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
			defer cancel()
			redisClient.Set(ctx, statsCacheKey, raw, 60*time.Second)
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, stats)
}

func computeAdminStats() adminStats {
	db := database.DB
	var stats adminStats

	db.Model(&model.Consultation{}).Count(&stats.Consultations)
	db.Model(&model.Consultation{}).Where("status = ?", constants.CONSULT_PENDING).Count(&stats.PendingConsultations)
	db.Model(&model.FranchiseInquiry{}).Count(&stats.FranchiseInquiries)
	db.Model(&model.FranchiseInquiry{}).Where("lead_grade = ?", constants.LEAD_HOT).Count(&stats.HotLeads)
	db.Model(&model.Payment{}).Count(&stats.Payments)

	today := time.Now().In(time.Local)
	todayStart := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	todayEnd := todayStart.AddDate(0, 0, 1)

	db.Raw(`
        SELECT COALESCE(SUM(amount - discount_amount), 0)
        FROM payments
        WHERE status = 'PAID'
          AND paid_at >= ? AND paid_at < ?
    `, todayStart, todayEnd).Scan(&stats.TodayRevenue)

	yesterdayStart := todayStart.AddDate(0, 0, -1)
	var yesterdayRevenue int64
	db.Raw(`
        SELECT COALESCE(SUM(amount - discount_amount), 0)
        FROM payments
        WHERE status = 'PAID'
          AND paid_at >= ? AND paid_at < ?
    `, yesterdayStart, todayStart).Scan(&yesterdayRevenue)

	stats.RevenueGrowth = utils.CalculateGrowth(float64(stats.TodayRevenue), float64(yesterdayRevenue))
	return stats
}
