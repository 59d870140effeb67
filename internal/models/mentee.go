package models

import "time"

// MenteeStatus enumerates the onboarding progression. The order below is the
// usual flow, but no transition table is enforced: any authorized caller may
// set any status.
type MenteeStatus string

const (
	StatusAssigned     MenteeStatus = "assigned"
	StatusContacted    MenteeStatus = "contacted"
	StatusInTouch      MenteeStatus = "in_touch"
	StatusArrived      MenteeStatus = "arrived"
	StatusMet          MenteeStatus = "met"
	StatusRejected     MenteeStatus = "rejected"
	StatusUnresponsive MenteeStatus = "unresponsive"
	StatusServed       MenteeStatus = "served"
)

func AllMenteeStatuses() []MenteeStatus {
	return []MenteeStatus{
		StatusAssigned,
		StatusContacted,
		StatusInTouch,
		StatusArrived,
		StatusMet,
		StatusRejected,
		StatusUnresponsive,
		StatusServed,
	}
}

func (status MenteeStatus) Valid() bool {
	for _, known := range AllMenteeStatuses() {
		if status == known {
			return true
		}
	}
	return false
}

type Mentee struct {
	ID             string       `json:"id"`
	BuddyID        string       `json:"buddyId"`
	CountryCode    string       `json:"countryCode"`
	HomeUniversity string       `json:"homeUniversity"`
	HostFaculty    string       `json:"hostFaculty"`
	Email          string       `json:"email"`
	Gender         string       `json:"gender"`
	Degree         string       `json:"degree"`
	AgreementStart time.Time    `json:"agreementStartDate"`
	AgreementEnd   time.Time    `json:"agreementEndDate"`
	Status         MenteeStatus `json:"status"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}
