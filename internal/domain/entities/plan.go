package entities

// PlanID identifies a subscription tier.

type PlanID string

const (
	PlanFree      PlanID = "FREE"
	PlanBasic     PlanID = "BASIC"
	PlanPro       PlanID = "PRO"
	PlanUnlimited PlanID = "UNLIMITED"
)

// UnlimitedReceipts is the monthly-limit sentinel for plans without a cap.
const UnlimitedReceipts = -1

// Plan is a static catalog entry. The catalog is not mutated at runtime.
//
// Price is in centavos (BRL).
type Plan struct {
	ID               PlanID   `json:"id"`
	Name             string   `json:"name"`
	Price            int      `json:"price"`
	ReceiptsPerMonth int      `json:"receipts_per_month"`
	Features         []string `json:"features"`
}

// Unlimited reports whether the plan has no monthly receipt cap.
func (p Plan) Unlimited() bool {
	return p.ReceiptsPerMonth == UnlimitedReceipts
}

var subscriptionPlans = map[PlanID]Plan{
	PlanFree: {
		ID:               PlanFree,
		Name:             "Plano Gratuito",
		Price:            0,
		ReceiptsPerMonth: 5,
		Features: []string{
			"5 recibos por mês",
			"Geração via WhatsApp",
			"PDF com assinatura digital",
			"Suporte básico",
		},
	},
	PlanBasic: {
		ID:               PlanBasic,
		Name:             "Plano Básico",
		Price:            1990,
		ReceiptsPerMonth: 50,
		Features: []string{
			"50 recibos por mês",
			"Geração via WhatsApp",
			"PDF com assinatura digital",
			"Dashboard web",
			"Histórico completo",
			"Suporte prioritário",
		},
	},
	PlanPro: {
		ID:               PlanPro,
		Name:             "Plano Profissional",
		Price:            3990,
		ReceiptsPerMonth: 200,
		Features: []string{
			"200 recibos por mês",
			"Geração via WhatsApp",
			"PDF com assinatura digital",
			"Dashboard web avançado",
			"Histórico completo",
			"Suporte premium",
		},
	},
	PlanUnlimited: {
		ID:               PlanUnlimited,
		Name:             "Plano Ilimitado",
		Price:            7990,
		ReceiptsPerMonth: UnlimitedReceipts,
		Features: []string{
			"Recibos ilimitados",
			"Geração via WhatsApp",
			"PDF com assinatura digital",
			"Dashboard web avançado",
			"Histórico completo",
			"Suporte premium 24/7",
		},
	},
}

// PlanByID resolves a catalog entry. Unknown IDs resolve to the free plan so a
// corrupt user record degrades to the most restrictive quota instead of failing.
func PlanByID(id PlanID) Plan {
	if p, ok := subscriptionPlans[id]; ok {
		return p
	}
	return subscriptionPlans[PlanFree]
}

// AllPlans returns the catalog in ascending price order.
func AllPlans() []Plan {
	return []Plan{
		subscriptionPlans[PlanFree],
		subscriptionPlans[PlanBasic],
		subscriptionPlans[PlanPro],
		subscriptionPlans[PlanUnlimited],
	}
}
