package services

// ExperiencePerLevel is the flat experience step between levels.
const ExperiencePerLevel = 100

// LevelForExperience derives the level: one level per full 100 experience, starting at 1.
func LevelForExperience(exp int64) int {
	if exp < 0 {
		exp = 0
	}
	return int(exp/ExperiencePerLevel) + 1
}

// LeveledUp reports an upward level transition after an experience gain.
func LeveledUp(previousLevel int, exp int64) bool {
	return LevelForExperience(exp) > previousLevel
}

// ExperienceForNextLevel is the total experience at which the next level starts.
func ExperienceForNextLevel(level int) int64 {
	if level < 1 {
		level = 1
	}
	return int64(level) * ExperiencePerLevel
}
