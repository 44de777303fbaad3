package dispersal

// HamacherP is the t-norm parameter the source model fixes.
const HamacherP = 0.5

// Hamacher is the parametrized fuzzy AND. Returns 0 whenever either input is
// exactly 0, which also sidesteps the 0/0 case at p=0.
func Hamacher(a, b, p float64) float64 {
	if a == 0 || b == 0 {
		return 0.0
	}
	return a * b / (p + (1-p)*(a+b-a*b))
}

// Breakdown records every intermediate of the dispersal sub-model, for the
// explain facility as much as for the score itself.
type Breakdown struct {
	Traits   Traits      `json:"traits"`
	Raw      Memberships `json:"raw_memberships"`
	Adjusted Memberships `json:"adjusted_memberships"`
	Category Category    `json:"category"`
	TNorm    float64     `json:"t_norm"`
	Score    float64     `json:"score"`
}

// Score runs the full dispersal sub-model: memberships, category modifier,
// then a left fold of the Hamacher t-norm in the fixed order
// (SF, ASR, VIA, LDD). The risk score is the complement 1−T: low
// compatibility with favourable establishment conditions means high risk.
func Score(t Traits) Breakdown {
	t = t.Clamped()
	raw := Evaluate(t)
	cat := Classify(t)
	adj := cat.Apply(raw)

	tn := Hamacher(adj.SF, adj.ASR, HamacherP)
	tn = Hamacher(tn, adj.VIA, HamacherP)
	tn = Hamacher(tn, adj.LDD, HamacherP)

	return Breakdown{
		Traits:   t,
		Raw:      raw,
		Adjusted: adj,
		Category: cat,
		TNorm:    tn,
		Score:    1.0 - tn,
	}
}
