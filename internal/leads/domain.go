// Package leads handles marketing: campaign launches, the lead inbox and
// generated ad copy.
package leads

// Lead is one prospect captured by a campaign. Area is the targeted
// locality, carried through to the inbox untouched.
type Lead struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Source      string `json:"source"`
	Area        string `json:"area"`
	Status      string `json:"status"`
	CampaignRef string `json:"campaign_ref"`
}

// StatusNew is the inbox state for an untouched lead.
const StatusNew = "New"

// CampaignResult reports one launched campaign and the leads it pulled.
type CampaignResult struct {
	Code  string `json:"code"`
	Area  string `json:"area"`
	Leads []Lead `json:"leads"`
}
