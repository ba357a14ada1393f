package model

// Appointment statuses. Scheduled is the initial state; the rest are
// terminal for scheduling purposes.
const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
	StatusNoShow    = "no-show"
)

func IsValidStatus(status string) bool {
	switch status {
	case StatusScheduled, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// WorkingHours are naive 24-hour "HH:MM" strings, start before end.
type WorkingHours struct {
	Start string `json:"start" validate:"required,hhmm"`
	End   string `json:"end" validate:"required,hhmm"`
}

type Service struct {
	ID              string  `json:"id" validate:"omitempty"`
	Name            string  `json:"name" validate:"required,min=2,max=100"`
	Category        string  `json:"category" validate:"required,min=2,max=50"`
	DurationMinutes int     `json:"duration_minutes" validate:"required,min=5,max=480"`
	Price           float64 `json:"price" validate:"min=0"`
	Description     string  `json:"description" validate:"omitempty,max=500"`
}

type StaffMember struct {
	ID            string       `json:"id" validate:"omitempty"`
	Name          string       `json:"name" validate:"required,min=2,max=100"`
	Role          string       `json:"role" validate:"required,min=2,max=100"`
	Specialties   []string     `json:"specialties" validate:"required,min=1,dive,required"`
	AvailableDays []string     `json:"available_days" validate:"required,min=1,max=7,dive,oneof=Sunday Monday Tuesday Wednesday Thursday Friday Saturday"`
	Hours         WorkingHours `json:"hours" validate:"required"`
}

// WorksOn reports whether the member works on the named weekday.
func (s StaffMember) WorksOn(weekday string) bool {
	for _, d := range s.AvailableDays {
		if d == weekday {
			return true
		}
	}
	return false
}

// HasSpecialty reports whether the member is qualified for a service
// category.
func (s StaffMember) HasSpecialty(category string) bool {
	for _, sp := range s.Specialties {
		if sp == category {
			return true
		}
	}
	return false
}

type Client struct {
	ID               string  `json:"id" validate:"omitempty"`
	Name             string  `json:"name" validate:"required,min=2,max=100"`
	Email            string  `json:"email" validate:"omitempty,email"`
	Phone            string  `json:"phone" validate:"required,min=7,max=20"`
	DateOfBirth      string  `json:"date_of_birth" validate:"omitempty,date"`
	Address          string  `json:"address" validate:"omitempty,max=200"`
	EmergencyContact string  `json:"emergency_contact" validate:"omitempty,max=200"`
	MedicalNotes     string  `json:"medical_notes" validate:"omitempty,max=1000"`
	CreatedAt        string  `json:"created_at" validate:"omitempty"`
	TotalVisits      int     `json:"total_visits" validate:"min=0"`
	TotalSpent       float64 `json:"total_spent" validate:"min=0"`
}

// Appointment carries denormalized name/duration/price snapshots taken at
// creation time; they are not kept in sync with later edits.
type Appointment struct {
	ID              string  `json:"id"`
	ClientID        string  `json:"client_id"`
	ClientName      string  `json:"client_name"`
	ServiceID       string  `json:"service_id"`
	ServiceName     string  `json:"service_name"`
	StaffID         string  `json:"staff_id"`
	StaffName       string  `json:"staff_name"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	DurationMinutes int     `json:"duration_minutes"`
	Price           float64 `json:"price"`
	Status          string  `json:"status"`
	Notes           string  `json:"notes"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at,omitempty"`
}
