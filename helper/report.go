package helper

import (
	"academy_manager/config"
	"academy_manager/database"
	"academy_manager/model"
	"academy_manager/utils"
	"fmt"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

var reportScheduler gocron.Scheduler

// SendDailyReport texts the admin a summary of yesterday's submissions.
func SendDailyReport() {
	log.Println("[CRON] SendDailyReport triggered")

	if !database.Available() {
		log.Println("[CRON] database unavailable, skipping daily report")
		return
	}
	adminPhone := config.Config("ADMIN_PHONE")
	if adminPhone == "" {
		return
	}

	db := database.DB
	loc := time.FixedZone("KST", 9*3600)
	now := time.Now().In(loc)
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	yesterdayStart := todayStart.AddDate(0, 0, -1)

	var consultations, inquiries, payments int64
	var paidAmount int64
	db.Model(&model.Consultation{}).Where("created_at >= ? AND created_at < ?", yesterdayStart, todayStart).Count(&consultations)
	db.Model(&model.FranchiseInquiry{}).Where("created_at >= ? AND created_at < ?", yesterdayStart, todayStart).Count(&inquiries)
	db.Model(&model.Payment{}).Where("created_at >= ? AND created_at < ?", yesterdayStart, todayStart).Count(&payments)
	db.Raw(`
        SELECT COALESCE(SUM(amount - discount_amount), 0)
        FROM payments
        WHERE status = 'PAID'
          AND paid_at >= ? AND paid_at < ?
    `, yesterdayStart, todayStart).Scan(&paidAmount)

	text := fmt.Sprintf("[Daily] consultations %d / franchise %d / payments %d / paid %d won",
		consultations, inquiries, payments, paidAmount)
	if err := utils.SendSMS(adminPhone, text); err != nil {
		log.Printf("[CRON] daily report sms failed: %v", err)
	}
}

// StartDailyReportScheduler runs the summary every morning at 09:00 KST.
func StartDailyReportScheduler() {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.FixedZone("KST", 9*3600)),
	)
	if err != nil {
		log.Fatal(err)
	}

	reportScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(9, 0, 0),
			),
		),
		gocron.NewTask(SendDailyReport),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("[CRON] daily report scheduler started")
}

func StopDailyReportScheduler() {
	if reportScheduler != nil {
		_ = reportScheduler.Shutdown()
	}
}
