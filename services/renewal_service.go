package services

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"insuretrack-backend/models"
	"insuretrack-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// RenewalReminderService notifies customers whose policies renew soon and
// records each send attempt.
type RenewalReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
	days   int
}

func NewRenewalReminderService(db *gorm.DB) *RenewalReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	days := 7
	if v := os.Getenv("REMINDER_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			days = n
		}
	}

	return &RenewalReminderService{
		db:   db,
		days: days,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *RenewalReminderService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", s.SendDailyReminders)

	c.Start()
	log.Println("Renewal reminder scheduler started")
}

func (s *RenewalReminderService) SendDailyReminders() {
	log.Println("Starting renewal reminder processing...")

	today := models.Today()
	end := today.AddDays(s.days)

	var insurances []models.Insurance
	if err := s.db.Where("renewal_date BETWEEN ? AND ?", today.Time, end.Time).Find(&insurances).Error; err != nil {
		log.Printf("Failed to fetch upcoming renewals: %v", err)
		return
	}

	for _, insurance := range insurances {
		s.sendReminder(insurance)
	}

	log.Println("Renewal reminder processing completed")
}

func (s *RenewalReminderService) sendReminder(insurance models.Insurance) {
	var customer models.Customer
	if err := s.db.First(&customer, insurance.CustomerID).Error; err != nil {
		log.Printf("Insurance %d: customer lookup failed: %v", insurance.ID, err)
		return
	}
	if customer.Phone == "" {
		return
	}

	daysLeft := utils.DaysBetween(time.Now(), insurance.RenewalDate.Time)
	message := fmt.Sprintf("Hi %s, your %s insurance is due for renewal on %s (in %d days).",
		customer.Name, insurance.Type, insurance.RenewalDate, daysLeft)

	// Use WhatsApp when the phone is in E.164 format, SMS otherwise
	channel := "sms"
	to := customer.Phone
	if strings.HasPrefix(customer.Phone, "+") {
		to = "whatsapp:" + customer.Phone
		channel = "whatsapp"
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)
	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	entry := models.RenewalReminderLog{
		InsuranceID: insurance.ID,
		CustomerID:  customer.ID,
		Channel:     channel,
		Status:      "sent",
		SentAt:      time.Now(),
	}
	if _, err := s.client.Api.CreateMessage(params); err != nil {
		entry.Status = "failed"
		entry.ErrorMessage = err.Error()
		log.Printf("Insurance %d: reminder send failed: %v", insurance.ID, err)
	}

	if err := s.db.Create(&entry).Error; err != nil {
		log.Printf("Insurance %d: reminder log write failed: %v", insurance.ID, err)
	}
}
