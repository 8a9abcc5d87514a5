package domain

// PlanKey identifica un plan (basic o premium).
type PlanKey string

const (
	PlanBasic   PlanKey = "basic"
	PlanPremium PlanKey = "premium"
)

// UnlimitedQuota marca un plan sin límite diario de mensajes.
const UnlimitedQuota = 0

type PlanProfile struct {
	Key        PlanKey `json:"key"`
	Label      string  `json:"label"`
	Price      string  `json:"price"`
	Cadence    string  `json:"cadence"`
	Welcome    string  `json:"welcome"`
	DailyQuota int     `json:"daily_quota"`
	Tone       string  `json:"tone"`
}

// Unlimited indica si el plan no aplica cuota.
func (p PlanProfile) Unlimited() bool {
	return p.DailyQuota <= UnlimitedQuota
}
