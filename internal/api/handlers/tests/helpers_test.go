package routes_test

import (
	"time"

	"github.com/google/uuid"

	"github.com/mdramjankhan/HireMe/internal/auth"
	"github.com/mdramjankhan/HireMe/internal/models"
)

const testJWTSecret = "test-secret"

func generateTestToken(userID uuid.UUID, role models.UserRole) (string, error) {
	return auth.GenerateToken(testJWTSecret, time.Hour, userID, role)
}
