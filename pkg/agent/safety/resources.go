package safety

import (
	"context"

	"legal-assist-be/pkg/agent/state"
)

// nationalResources are always-available fallbacks per category. The
// gate must never return an empty escalation.
var nationalResources = map[string][]state.CrisisResource{
	CategorySelfHarm: {
		{Name: "Lifeline", Phone: "13 11 14", URL: "https://www.lifeline.org.au", Description: "24/7 crisis support and suicide prevention"},
		{Name: "Beyond Blue", Phone: "1300 22 4636", URL: "https://www.beyondblue.org.au", Description: "Mental health support"},
	},
	CategoryFamilyViolence: {
		{Name: "1800RESPECT", Phone: "1800 737 732", URL: "https://www.1800respect.org.au", Description: "24/7 family violence counselling"},
		{Name: "Police (emergency)", Phone: "000", Description: "Call if you are in immediate danger"},
	},
	CategoryChildWelfare: {
		{Name: "Kids Helpline", Phone: "1800 55 1800", URL: "https://kidshelpline.com.au", Description: "24/7 counselling for young people"},
		{Name: "Police (emergency)", Phone: "000", Description: "Call if a child is in immediate danger"},
	},
	CategoryCriminal: {
		{Name: "Legal Aid", URL: "https://www.nationallegalaid.org", Description: "Free legal help, including duty lawyers at court"},
		{Name: "Law Society referral service", Description: "Referrals to criminal lawyers in your state"},
	},
}

// StaticResourceLookup serves the in-code national resource table.
// The container composes it behind the database-backed lookup so a
// missing row still yields usable contacts.
type StaticResourceLookup struct{}

func NewStaticResourceLookup() *StaticResourceLookup {
	return &StaticResourceLookup{}
}

func (s *StaticResourceLookup) ResourcesFor(_ context.Context, category, _ string) []state.CrisisResource {
	if resources, ok := nationalResources[category]; ok {
		return resources
	}
	// Unknown category still deserves a lifeline
	return nationalResources[CategorySelfHarm]
}
