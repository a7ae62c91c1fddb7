package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"net/smtp"
	"os"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

type UserInfo struct {
	UserId uint `json:"userid"`
	Role   int  `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

// GenerateToken issues a signed JWT for a user
func GenerateToken(userInfo UserInfo, expiryMinutes int, isAccessToken bool) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", fmt.Errorf("JWT_SECRET is not configured")
	}

	claims := Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Duration(expiryMinutes) * time.Minute).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// HashPassword hashes a plaintext password with bcrypt
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// GenerateVerificationCode produces a 6-digit one-time code
func GenerateVerificationCode() (string, error) {
	code := ""
	for i := 0; i < 6; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		code += n.String()
	}
	return code, nil
}

func smtpConfig() (from, password, host, port string) {
	return os.Getenv("SMTP_FROM"), os.Getenv("SMTP_PASSWORD"),
		os.Getenv("SMTP_HOST"), os.Getenv("SMTP_PORT")
}

func sendMail(to, subject, body string) error {
	from, password, host, port := smtpConfig()
	if from == "" || host == "" {
		return fmt.Errorf("SMTP is not configured")
	}

	msg := []byte("MIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n" +
		"Subject: " + subject + "\r\n\r\n" + body)

	auth := smtp.PlainAuth("", from, password, host)
	return smtp.SendMail(host+":"+port, auth, from, []string{to}, msg)
}

// SendVerificationEmail mails a one-time code to a new staff account
func SendVerificationEmail(email, code string) error {
	body := fmt.Sprintf(`
		<p>Hello,</p>
		<p>Your one-time verification code is: <strong>%s</strong></p>
		<p>If you did not request this code you can safely ignore this email.</p>
	`, code)
	return sendMail(email, "Your verification code", body)
}

// SendOrderConfirmationEmail mails an order summary to the guest
func SendOrderConfirmationEmail(email, orderNumber string, total float64, roomNumber string) error {
	body := fmt.Sprintf(`
		<p>Thank you for your order.</p>
		<p>Order <strong>%s</strong> for room %s has been received.</p>
		<p>Total: %.2f</p>
	`, orderNumber, roomNumber, total)
	return sendMail(email, "Order confirmation "+orderNumber, body)
}
