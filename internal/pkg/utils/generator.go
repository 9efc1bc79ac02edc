package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

func GenerateSessionID() string {
	return uuid.NewString()
}

func GenerateResetToken() string {
	return uuid.NewString()
}

func GenerateReceiptNumber() string {
	return fmt.Sprintf("RCPT-%s-%s", time.Now().Format("20060102"), uuid.NewString()[:8])
}

func GenerateObjectName(prefix, id, fileExtension string) string {
	timestamp := time.Now().Format("20060102_150405")
	return fmt.Sprintf("%s_%s_%s%s", prefix, id, timestamp, fileExtension)
}
