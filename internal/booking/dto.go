package booking

// BookingRequest is the human-friendly booking form the voice flow
// produces: a service by (partial) name and a client by contact details.
type BookingRequest struct {
	ServiceName string `json:"service_name" validate:"required,min=2,max=100"`
	Date        string `json:"date" validate:"required,date"`
	Time        string `json:"time" validate:"required,hhmm"`
	ClientName  string `json:"client_name" validate:"required,min=2,max=100"`
	ClientPhone string `json:"client_phone" validate:"required,min=7,max=20"`
	ClientEmail string `json:"client_email" validate:"omitempty,email"`
	StaffID     string `json:"staff_id" validate:"omitempty"`
}

// Confirmation is the payload read back to the caller on success.
type Confirmation struct {
	AppointmentID string  `json:"appointment_id"`
	Service       string  `json:"service"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	Provider      string  `json:"provider"`
	Price         float64 `json:"price"`
	Duration      int     `json:"duration"`
	ClientName    string  `json:"client_name"`
	ClientPhone   string  `json:"client_phone"`
}

// Result is the orchestrator's only answer: expected failures come back as
// Success=false with a message the caller can read to an end user, never
// as an error.
type Result struct {
	Success             bool          `json:"success"`
	AppointmentID       string        `json:"appointment_id,omitempty"`
	Message             string        `json:"message"`
	ConfirmationDetails *Confirmation `json:"confirmation_details,omitempty"`
}

// ListFilter narrows ListAppointments; empty fields match everything.
type ListFilter struct {
	Date     string
	ClientID string
	Status   string
}
