package core

// Specialty is an entry of the doctor specialty taxonomy shown to patients.
type Specialty struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

var specialties = []Specialty{
	{ID: "gp", Name: "General Physician", Description: "For general health concerns, check-ups, and common illnesses", Icon: "Stethoscope"},
	{ID: "pediatrician", Name: "Pediatrician", Description: "Specialized care for infants, children, and adolescents", Icon: "Baby"},
	{ID: "dermatologist", Name: "Dermatologist", Description: "Skin, hair, and nail conditions", Icon: "Sparkles"},
	{ID: "cardiologist", Name: "Cardiologist", Description: "Heart and cardiovascular system conditions", Icon: "Heart"},
	{ID: "ent", Name: "ENT Specialist", Description: "Ear, nose, and throat conditions", Icon: "Ear"},
	{ID: "neurologist", Name: "Neurologist", Description: "Brain, spinal cord, and nervous system disorders", Icon: "Brain"},
	{ID: "gastro", Name: "Gastroenterologist", Description: "Digestive system and gastrointestinal issues", Icon: "Activity"},
	{ID: "orthopedic", Name: "Orthopedic Surgeon", Description: "Bones, joints, ligaments, and musculoskeletal system", Icon: "Bone"},
}

// Specialties returns a copy of the specialty taxonomy.
func Specialties() []Specialty {
	out := make([]Specialty, len(specialties))
	copy(out, specialties)
	return out
}

// SpecialtyByID looks up a taxonomy entry.
func SpecialtyByID(id string) (Specialty, bool) {
	for _, s := range specialties {
		if s.ID == id {
			return s, true
		}
	}
	return Specialty{}, false
}
