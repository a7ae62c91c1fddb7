package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"guesthub/models"

	"gorm.io/gorm"
)

const orderNumberAttempts = 5

func randomDigits(n int) string {
	digits := ""
	for i := 0; i < n; i++ {
		d, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			// crypto/rand failing is effectively fatal; degrade to a
			// clock-derived digit rather than aborting checkout
			d = big.NewInt(time.Now().UnixNano() % 10)
		}
		digits += d.String()
	}
	return digits
}

// GenerateOrderNumber produces a unique order number with a read-then-check
// retry loop. Order numbers are not strictly sequential; after a few
// collisions it falls back to a timestamp plus random suffix that is unique
// for any practical purpose.
func GenerateOrderNumber(db *gorm.DB) (string, error) {
	datePart := time.Now().Format("060102")

	for attempt := 0; attempt < orderNumberAttempts; attempt++ {
		candidate := fmt.Sprintf("ORD-%s-%s", datePart, randomDigits(4))

		var count int64
		if err := db.Model(&models.Order{}).Where("order_number = ?", candidate).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
	}

	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixNano(), randomDigits(4)), nil
}
