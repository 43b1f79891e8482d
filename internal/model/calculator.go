package model

import "math"

// PurchaseEstimate holds the results of a roll purchasing calculation.
type PurchaseEstimate struct {
	TotalPieceArea   float64 `json:"total_piece_area"`   // Total area of all requested pieces (sq cm)
	RollArea         float64 `json:"roll_area"`          // Area of one roll (sq cm)
	RollsNeededExact float64 `json:"rolls_needed_exact"` // Exact fractional number of rolls
	RollsNeededMin   int     `json:"rolls_needed_min"`   // Minimum rolls (ceiling of exact)
	RollsWithWaste   int     `json:"rolls_with_waste"`   // Recommended rolls including waste factor
	WastePercent     float64 `json:"waste_percent"`      // Waste factor applied (e.g., 15 for 15%)
	EstimatedCost    float64 `json:"estimated_cost"`     // Total cost if pricing available
	PricePerRoll     float64 `json:"price_per_roll"`     // Price used for estimation
}

// CalculatePurchaseEstimate computes how many rolls to buy for a demand
// list. It works on areas only; the heuristic packer usually needs more
// material than the area bound suggests, which is what the waste factor
// is for.
func CalculatePurchaseEstimate(pieces []Piece, roll Roll, wastePercent, pricePerRoll float64) PurchaseEstimate {
	var totalPieceArea float64
	for _, p := range pieces {
		totalPieceArea += p.Area() * float64(p.Quantity)
	}

	rollArea := roll.Area()
	if rollArea <= 0 {
		return PurchaseEstimate{
			TotalPieceArea: totalPieceArea,
			WastePercent:   wastePercent,
		}
	}

	exactRolls := totalPieceArea / rollArea
	minRolls := int(math.Ceil(exactRolls))

	wasteFactor := 1.0 + (wastePercent / 100.0)
	rollsWithWaste := int(math.Ceil(exactRolls * wasteFactor))
	if rollsWithWaste < minRolls {
		rollsWithWaste = minRolls
	}

	return PurchaseEstimate{
		TotalPieceArea:   totalPieceArea,
		RollArea:         rollArea,
		RollsNeededExact: exactRolls,
		RollsNeededMin:   minRolls,
		RollsWithWaste:   rollsWithWaste,
		WastePercent:     wastePercent,
		EstimatedCost:    float64(rollsWithWaste) * pricePerRoll,
		PricePerRoll:     pricePerRoll,
	}
}
