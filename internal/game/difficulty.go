package game

import "math"

// CatchArmWidth returns the arm width for a difficulty level. Width
// shrinks 15% of the base per level and never drops below MinArmWidth.
func CatchArmWidth(level int) float64 {
	w := math.Round(BaseArmWidth * (1 - float64(level-1)*ArmWidthTaper))
	return math.Max(MinArmWidth, w)
}

// DifficultyFactor scales all spawn randomization for a level:
// 1.0 at level 1, +0.2 per level after that.
func DifficultyFactor(level int) float64 {
	return 1 + float64(level-1)*0.2
}

// AdvanceLevel returns the level after recording successCount total
// catches. The level rises only when the count reaches a positive
// multiple of CatchesPerLevel and is terminal at MaxLevel.
func AdvanceLevel(successCount, level int) int {
	if successCount > 0 && successCount%CatchesPerLevel == 0 && level < MaxLevel {
		return level + 1
	}
	return level
}
