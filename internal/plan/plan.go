package plan

import (
	"strings"

	"english-tutor/internal/domain"
)

// QuotaExceededMessage se muestra cuando el usuario agota la cuota diaria.
const QuotaExceededMessage = "Bạn đã dùng hết lượt chat hôm nay. Nâng cấp lên Premium để chat không giới hạn!"

var profiles = map[domain.PlanKey]domain.PlanProfile{
	domain.PlanBasic: {
		Key:        domain.PlanBasic,
		Label:      "Basic",
		Price:      "0đ",
		Cadence:    "/tháng",
		Welcome:    "Xin chào! Mình là trợ lý học tiếng Anh (gói Basic). Bạn có 5 lượt chat mỗi ngày. Hãy hỏi mình về từ vựng, ngữ pháp hoặc bài tập nhé!",
		DailyQuota: 5,
		Tone:       "neutral",
	},
	domain.PlanPremium: {
		Key:        domain.PlanPremium,
		Label:      "Premium",
		Price:      "99.000đ",
		Cadence:    "/tháng",
		Welcome:    "Chào mừng bạn đến với gói Premium! Bạn được chat không giới hạn. Hôm nay bạn muốn học gì?",
		DailyQuota: domain.UnlimitedQuota,
		Tone:       "highlight",
	},
}

// Resolve interpreta el parámetro externo `plan`; cualquier valor desconocido cae en basic.
func Resolve(raw string) domain.PlanProfile {
	key := domain.PlanKey(strings.ToLower(strings.TrimSpace(raw)))
	if p, ok := profiles[key]; ok {
		return p
	}
	return profiles[domain.PlanBasic]
}

// Lookup devuelve el plan exacto, sin fallback.
func Lookup(key domain.PlanKey) (domain.PlanProfile, bool) {
	p, ok := profiles[key]
	return p, ok
}

// All devuelve los planes en orden fijo: basic, premium.
func All() []domain.PlanProfile {
	return []domain.PlanProfile{profiles[domain.PlanBasic], profiles[domain.PlanPremium]}
}
