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

func GenerateFileName(prefix, fileExtension string) string {
	timestamp := time.Now().Format("20060102_150405.000000000")
	return fmt.Sprintf("%s_%s_%s%s", prefix, uuid.NewString(), timestamp, fileExtension)
}
