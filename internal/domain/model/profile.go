package model

import "time"

// Photo is one entry of a profile's ordered photo set. Slot 1 is the
// primary photo; slots 2..6 form the gated album.
type Photo struct {
	Slot int
	Key  string
}

// Profile is a snapshot of a member profile as the discovery engine sees
// it. Height is always stored in centimeters; Age is derived from
// Birthdate at query time and never persisted.
type Profile struct {
	UserID        int64
	DisplayName   string
	Gender        string
	Birthdate     time.Time
	HeightCM      int
	Religion      string
	Caste         string
	MotherTongue  string
	MaritalStatus string
	Diet          string
	Drinking      string
	Smoking       string
	Education     string
	Occupation    string
	AnnualIncome  int
	Country       string
	State         string
	City          string
	Lat           *float64
	Lon           *float64
	Verified      bool
	LastActiveAt  *time.Time
	CreatedAt     time.Time
	Photos        []Photo
}

func (p Profile) PrimaryPhoto() (Photo, bool) {
	for _, photo := range p.Photos {
		if photo.Slot == 1 {
			return photo, true
		}
	}
	return Photo{}, false
}

// Preference holds a member's saved partner preferences. Zero-valued
// ranges mean the preference is unset; empty lists mean "any".
type Preference struct {
	UserID          int64
	AgeMin          int
	AgeMax          int
	HeightMinCM     int
	HeightMaxCM     int
	IncomeMin       int
	IncomeMax       int
	Religions       []string
	Castes          []string
	MotherTongues   []string
	MaritalStatuses []string
	Diets           []string
	VerifiedOnly    bool
	AutoMatch       bool
	MinMatchScore   int
}
