package model

import "time"

const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

const (
	FrequencyDaily   = "daily"
	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"
)

func ValidRole(role string) bool {
	switch role {
	case RoleStudent, RoleInstructor, RoleAdmin:
		return true
	}
	return false
}

func ValidFrequency(frequency string) bool {
	switch frequency {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Course struct {
	ID           string
	Title        string
	Description  string
	Content      []string
	InstructorID string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Test struct {
	ID        string
	Topic     string
	Frequency string
	Questions []string
	CourseID  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
