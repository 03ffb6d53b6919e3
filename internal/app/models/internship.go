package models

import (
	"time"
)

// Internship defines the internship record model based on the 'internships'
// table. One record per student roll number.
type Internship struct {
	ID            int64     `json:"id" db:"id" example:"1"`
	StudentName   string    `json:"studentName" db:"student_name" example:"John Doe"`
	RollNumber    string    `json:"rollNumber" db:"roll_number" example:"21CS045"`
	Department    string    `json:"department" db:"department" example:"Computer Science"`
	Email         string    `json:"email" db:"email" example:"john@college.edu"`
	CompanyName   string    `json:"companyName" db:"company_name" example:"Acme Corp"`
	Location      string    `json:"location" db:"location" example:"Bengaluru"`
	StartDate     time.Time `json:"startDate" db:"start_date" example:"2024-01-01T00:00:00Z"`
	EndDate       time.Time `json:"endDate" db:"end_date" example:"2024-03-01T00:00:00Z"`
	Duration      string    `json:"duration,omitempty" db:"duration" example:"2 months"`
	Stipend       float64   `json:"stipend" db:"stipend" example:"15000"`
	MentorName    string    `json:"mentorName" db:"mentor_name" example:"Jane Smith"`
	MentorContact string    `json:"mentorContact" db:"mentor_contact" example:"+91-9876543210"`
	MentorRole    string    `json:"mentorRole" db:"mentor_role" example:"Engineering Manager"`
	Status        Status    `json:"status" db:"status" example:"pending"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}

// InternshipFilter narrows listing results. Zero-value fields are ignored.
type InternshipFilter struct {
	Department string
	Status     Status
	Search     string // case-insensitive substring over student name, roll and company
}
