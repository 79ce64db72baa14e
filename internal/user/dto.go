package user

// UserPatch carries the profile fields being changed. Identifiers are not
// patchable.
type UserPatch struct {
	FirstName               *string `json:"first_name,omitempty"`
	LastName                *string `json:"last_name,omitempty"`
	PreferredName           *string `json:"preferred_name,omitempty"`
	Age                     *int    `json:"age,omitempty"`
	FamilyStatus            *string `json:"family_status,omitempty"`
	City                    *string `json:"city,omitempty"`
	Timezone                *string `json:"timezone,omitempty"`
	Occupation              *string `json:"occupation,omitempty"`
	CompanyOrSchoolName     *string `json:"company_or_school_name,omitempty"`
	PositionOrFieldOfStudy  *string `json:"position_or_field_of_study,omitempty"`
	YearsAtJobOrStudy       *int    `json:"years_at_job_or_study,omitempty"`
	EmotionalStabilityNotes *string `json:"emotional_stability_notes,omitempty"`
	CommunicationStyle      *string `json:"communication_style,omitempty"`
	CustomNotes             *string `json:"custom_notes,omitempty"`
	CustomField             *string `json:"custom_field,omitempty"`
}

func (p UserPatch) Apply(u *User) {
	set := func(dst **string, src *string) {
		if src != nil {
			*dst = src
		}
	}
	set(&u.FirstName, p.FirstName)
	set(&u.LastName, p.LastName)
	set(&u.PreferredName, p.PreferredName)
	set(&u.FamilyStatus, p.FamilyStatus)
	set(&u.City, p.City)
	set(&u.Timezone, p.Timezone)
	set(&u.Occupation, p.Occupation)
	set(&u.CompanyOrSchoolName, p.CompanyOrSchoolName)
	set(&u.PositionOrFieldOfStudy, p.PositionOrFieldOfStudy)
	set(&u.EmotionalStabilityNotes, p.EmotionalStabilityNotes)
	set(&u.CommunicationStyle, p.CommunicationStyle)
	set(&u.CustomNotes, p.CustomNotes)
	set(&u.CustomField, p.CustomField)

	if p.Age != nil {
		u.Age = p.Age
	}
	if p.YearsAtJobOrStudy != nil {
		u.YearsAtJobOrStudy = p.YearsAtJobOrStudy
	}
}
