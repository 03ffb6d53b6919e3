package dto

// CreateInternshipRequest represents the request to submit an internship
// record. Dates are calendar dates ("2006-01-02"); RFC3339 timestamps are
// accepted for legacy clients.
type CreateInternshipRequest struct {
	StudentName   string  `json:"studentName" binding:"required"`
	RollNumber    string  `json:"rollNumber" binding:"required"`
	Department    string  `json:"department" binding:"required"`
	Email         string  `json:"email" binding:"required,email"`
	CompanyName   string  `json:"companyName" binding:"required"`
	Location      string  `json:"location" binding:"required"`
	StartDate     string  `json:"startDate" binding:"required"`
	EndDate       string  `json:"endDate" binding:"required"`
	Duration      string  `json:"duration"`
	Stipend       float64 `json:"stipend" binding:"omitempty,gte=0"`
	MentorName    string  `json:"mentorName" binding:"required"`
	MentorContact string  `json:"mentorContact" binding:"required"`
	MentorRole    string  `json:"mentorRole" binding:"required"`
}

// UpdateInternshipRequest represents a partial update. Nil fields are left
// untouched. Status may only be set by faculty callers.
type UpdateInternshipRequest struct {
	StudentName   *string  `json:"studentName"`
	RollNumber    *string  `json:"rollNumber"`
	Department    *string  `json:"department"`
	Email         *string  `json:"email" binding:"omitempty,email"`
	CompanyName   *string  `json:"companyName"`
	Location      *string  `json:"location"`
	StartDate     *string  `json:"startDate"`
	EndDate       *string  `json:"endDate"`
	Duration      *string  `json:"duration"`
	Stipend       *float64 `json:"stipend" binding:"omitempty,gte=0"`
	MentorName    *string  `json:"mentorName"`
	MentorContact *string  `json:"mentorContact"`
	MentorRole    *string  `json:"mentorRole"`
	Status        *string  `json:"status" binding:"omitempty,oneof=pending approved rejected"`
}
