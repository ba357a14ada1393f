package catalog

import (
	"medspa/internal/model"
	"medspa/internal/store"

	"medspa/pkg/logger"
)

// defaultServices is the fixed starter catalog seeded on first run.
func defaultServices() map[string]model.Service {
	return map[string]model.Service{
		"SVC001": {
			ID:              "SVC001",
			Name:            "Botox Treatment",
			Category:        "Injectables",
			DurationMinutes: 30,
			Price:           400.00,
			Description:     "Wrinkle reduction with Botox injections",
		},
		"SVC002": {
			ID:              "SVC002",
			Name:            "Dermal Fillers",
			Category:        "Injectables",
			DurationMinutes: 45,
			Price:           650.00,
			Description:     "Volume restoration with hyaluronic acid fillers",
		},
		"SVC003": {
			ID:              "SVC003",
			Name:            "Hydrafacial",
			Category:        "Facials",
			DurationMinutes: 60,
			Price:           250.00,
			Description:     "Deep cleansing and hydration facial treatment",
		},
		"SVC004": {
			ID:              "SVC004",
			Name:            "Laser Hair Removal",
			Category:        "Laser Treatments",
			DurationMinutes: 30,
			Price:           300.00,
			Description:     "Permanent hair reduction using laser technology",
		},
		"SVC005": {
			ID:              "SVC005",
			Name:            "Chemical Peel",
			Category:        "Skin Treatments",
			DurationMinutes: 45,
			Price:           200.00,
			Description:     "Skin resurfacing treatment for improved texture and tone",
		},
		"SVC006": {
			ID:              "SVC006",
			Name:            "Microneedling",
			Category:        "Skin Treatments",
			DurationMinutes: 60,
			Price:           350.00,
			Description:     "Collagen induction therapy for skin rejuvenation",
		},
		"SVC007": {
			ID:              "SVC007",
			Name:            "CoolSculpting",
			Category:        "Body Contouring",
			DurationMinutes: 90,
			Price:           800.00,
			Description:     "Non-invasive fat reduction treatment",
		},
	}
}

func defaultStaff() map[string]model.StaffMember {
	return map[string]model.StaffMember{
		"STF001": {
			ID:            "STF001",
			Name:          "Dr. Maria Rodriguez",
			Role:          "Medical Director",
			Specialties:   []string{"Injectables", "Laser Treatments"},
			AvailableDays: []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
			Hours:         model.WorkingHours{Start: "09:00", End: "17:00"},
		},
		"STF002": {
			ID:            "STF002",
			Name:          "Sarah Johnson",
			Role:          "Licensed Aesthetician",
			Specialties:   []string{"Facials", "Skin Treatments"},
			AvailableDays: []string{"Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
			Hours:         model.WorkingHours{Start: "10:00", End: "18:00"},
		},
		"STF003": {
			ID:            "STF003",
			Name:          "Jennifer Martinez",
			Role:          "Nurse Practitioner",
			Specialties:   []string{"Injectables", "Body Contouring"},
			AvailableDays: []string{"Monday", "Wednesday", "Friday", "Saturday"},
			Hours:         model.WorkingHours{Start: "09:00", End: "17:00"},
		},
	}
}

// EnsureDefaults seeds the services and staff collections on first run.
// Existing records are never touched.
func EnsureDefaults(st *store.Store, log *logger.Logger) error {
	services, err := st.Services.Load()
	if err != nil {
		return err
	}
	if len(services) == 0 {
		if err := st.Services.Save(defaultServices()); err != nil {
			return err
		}
		log.Info("Seeded default service catalog", "count", len(defaultServices()))
	}

	staff, err := st.Staff.Load()
	if err != nil {
		return err
	}
	if len(staff) == 0 {
		if err := st.Staff.Save(defaultStaff()); err != nil {
			return err
		}
		log.Info("Seeded default staff roster", "count", len(defaultStaff()))
	}

	return nil
}
