// ABOUTME: Treatment plan module.
// ABOUTME: Replaces treatment plans with four presented or draft plans for demo patients.

package treatments

import (
	"context"
	"fmt"

	"github.com/2389/demoseed/internal/records"
	"github.com/2389/demoseed/modules/core"
	"github.com/2389/demoseed/modules/demo"
)

func init() {
	core.Register(&Module{})
}

// PlanID returns the fixed id of the n-th plan (1-based).
func PlanID(n int) string {
	return fmt.Sprintf("c0000001-0000-0000-0000-%012d", n)
}

// Module seeds treatment plans.
type Module struct{}

func (m *Module) Name() string        { return "treatments" }
func (m *Module) Description() string { return "Itemized treatment plans with insurance estimates" }
func (m *Module) Produces() []string  { return []string{"treatment_plans"} }
func (m *Module) Consumes() []string  { return []string{"patients"} }
func (m *Module) Clears() []string    { return []string{"treatment_plans"} }

func (m *Module) Seed(ctx context.Context, env core.Env) (core.Result, error) {
	res := core.NewResult()

	ps := plans()
	for i := range ps {
		ps[i].ID = PlanID(i + 1)
		ps[i].ProviderName = demo.Doctor
		if err := ps[i].Validate(); err != nil {
			return res, err
		}
	}
	env.Clear(ctx, &res, "treatment_plans")
	if err := env.Write(ctx, &res, "treatment_plans", records.Rows(ps), ""); err != nil {
		return res, err
	}
	return res, nil
}

func plans() []records.TreatmentPlan {
	return []records.TreatmentPlan{
		{
			PatientID: demo.PatientID(6),
			Title:     "Crown Restoration - Tooth #14",
			Status:    "presented",
			Procedures: []records.PlannedProcedure{
				{Name: "Porcelain Crown", Code: "D2740", Cost: 1200, Description: "Full porcelain crown to restore cracked molar.", Category: "Major Restorative"},
				{Name: "Core Buildup", Code: "D2950", Cost: 350, Description: "Foundation buildup to support the new crown.", Category: "Major Restorative"},
				{Name: "Local Anesthesia", Code: "D9210", Cost: 0, Description: "Numbing for your comfort.", Category: "Included"},
			},
			InsuranceEstimate: 775,
			AISummary:         "Michael's upper left first molar (#14) has a significant crack. A porcelain crown will restore full function and protect the tooth for 10-15+ years.",
		},
		{
			PatientID: demo.PatientID(2),
			Title:     "Single Tooth Implant - Tooth #8",
			Status:    "draft",
			Procedures: []records.PlannedProcedure{
				{Name: "Dental Implant", Code: "D6010", Cost: 2200, Description: "Titanium implant post surgically placed in the jawbone.", Category: "Implant"},
				{Name: "Implant Abutment", Code: "D6057", Cost: 800, Description: "Custom connector piece.", Category: "Implant"},
				{Name: "Implant Crown (Porcelain)", Code: "D6065", Cost: 1500, Description: "Custom porcelain crown.", Category: "Implant"},
				{Name: "CT Scan / 3D Imaging", Code: "D0367", Cost: 350, Description: "Advanced 3D imaging.", Category: "Diagnostic"},
				{Name: "Bone Graft (if needed)", Code: "D7953", Cost: 650, Description: "May be needed for sufficient bone density.", Category: "Surgical"},
			},
			InsuranceEstimate: 1500,
			AISummary:         "James lost his upper right central incisor (#8). A dental implant is the gold standard replacement with over 97% success rate.",
		},
		{
			PatientID: demo.PatientID(3),
			Title:     "Cosmetic Veneer Package - Upper Front 6",
			Status:    "presented",
			Procedures: []records.PlannedProcedure{
				{Name: "Porcelain Veneers (x6)", Code: "D2962", Cost: 7200, Description: "Six custom porcelain veneers for upper front teeth.", Category: "Cosmetic"},
				{Name: "Digital Smile Design", Code: "D0470", Cost: 500, Description: "Digital preview of your new smile.", Category: "Diagnostic"},
				{Name: "Temporary Veneers", Code: "D2999", Cost: 300, Description: "Custom temporaries while permanent set is crafted.", Category: "Cosmetic"},
			},
			AISummary: "Sarah is looking to transform her smile. Porcelain veneers on the upper front six teeth will create a stunning, camera-ready smile.",
		},
		{
			PatientID: demo.PatientID(5),
			Title:     "Orthodontic Treatment - Clear Aligners",
			Status:    "presented",
			Procedures: []records.PlannedProcedure{
				{Name: "Clear Aligner Treatment (Full)", Code: "D8090", Cost: 5500, Description: "Complete clear aligner therapy.", Category: "Orthodontics"},
				{Name: "Orthodontic Records", Code: "D8660", Cost: 300, Description: "Digital impressions, photos, and X-rays.", Category: "Diagnostic"},
				{Name: "Retainers (Set of 2)", Code: "D8680", Cost: 400, Description: "Custom retainers for after treatment.", Category: "Orthodontics"},
			},
			InsuranceEstimate: 1500,
			AISummary:         "Lisa wants to correct crowding and minor bite issues. Clear aligners offer a discreet alternative to traditional braces. Treatment typically takes 12-18 months.",
		},
	}
}
