package entities

import "testing"

func TestPlanByID(t *testing.T) {
	t.Run("known plan", func(t *testing.T) {
		p := PlanByID(PlanPro)
		if p.ID != PlanPro || p.ReceiptsPerMonth != 200 {
			t.Fatalf("unexpected plan %+v", p)
		}
	})

	t.Run("unknown id degrades to free", func(t *testing.T) {
		p := PlanByID("GOLD")
		if p.ID != PlanFree || p.ReceiptsPerMonth != 5 {
			t.Fatalf("unexpected plan %+v", p)
		}
	})
}

func TestPlanUnlimited(t *testing.T) {
	if PlanByID(PlanFree).Unlimited() {
		t.Fatalf("free plan must be capped")
	}
	if !PlanByID(PlanUnlimited).Unlimited() {
		t.Fatalf("unlimited plan must have no cap")
	}
}

func TestAllPlansOrder(t *testing.T) {
	plans := AllPlans()
	if len(plans) != 4 {
		t.Fatalf("expected 4 plans, got %d", len(plans))
	}
	for i := 1; i < len(plans); i++ {
		if plans[i].Price < plans[i-1].Price {
			t.Fatalf("plans out of price order: %+v", plans)
		}
	}
}

func TestUserHasCompleteProfile(t *testing.T) {
	u := User{FullName: "João", CpfCnpj: "123"}
	if !u.HasCompleteProfile() {
		t.Fatalf("expected complete")
	}
	u.CpfCnpj = ""
	if u.HasCompleteProfile() {
		t.Fatalf("expected incomplete")
	}
}
