package worker

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/NatanielEscudero/QuickService/db"
	"github.com/NatanielEscudero/QuickService/models"
	"github.com/NatanielEscudero/QuickService/redis"
	"github.com/NatanielEscudero/QuickService/utils"
)

const statsCacheTTL = 5 * time.Minute

func statsCacheKey(workerID uint) string {
	return fmt.Sprintf("earnings:stats:%d", workerID)
}

// InvalidateStatsCache drops the cached earnings stats for a worker. Called
// whenever a price or appointment status write lands.
func InvalidateStatsCache(workerID uint) {
	if redis.Client == nil {
		return
	}
	if err := redis.Client.Del(redis.Ctx, statsCacheKey(workerID)).Err(); err != nil {
		log.Printf("Failed to invalidate stats cache for worker %d: %v", workerID, err)
	}
}

// GetEarnings returns the range-windowed earnings rollup with the transaction
// history.
func GetEarnings(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	rng := c.Query("range", "week")
	summary, err := models.SummarizeEarnings(db.DB, userID, rng)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to compute earnings",
			Error:   err.Error(),
		})
	}

	return c.JSON(summary)
}

// GetEarningsStats returns the fixed week/month/year stats, cached in Redis
// for a few minutes.
func GetEarningsStats(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	key := statsCacheKey(userID)
	if redis.Client != nil {
		if cached, err := redis.Client.Get(redis.Ctx, key).Result(); err == nil {
			var stats models.EarningsStats
			if json.Unmarshal([]byte(cached), &stats) == nil {
				return c.JSON(stats)
			}
		}
	}

	stats, err := models.GetEarningsStats(db.DB, userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to compute earnings stats",
			Error:   err.Error(),
		})
	}

	if redis.Client != nil {
		if payload, err := json.Marshal(stats); err == nil {
			redis.Client.Set(redis.Ctx, key, payload, statsCacheTTL)
		}
	}

	return c.JSON(stats)
}
