package password

var labels = [MaxScore + 1]string{
	"Very Weak",
	"Weak",
	"Fair",
	"Strong",
	"Very Strong",
}

var colors = [MaxScore + 1]string{
	"bg-red-500",
	"bg-orange-500",
	"bg-yellow-500",
	"bg-green-500",
	"bg-emerald-600",
}

type Level struct {
	Score int
	Label string
	Color string
}

// Label maps a score to its display text. Out of range scores are clamped.
func Label(score int) string {
	return labels[clampScore(score)]
}

// Color maps a score to the css class used for the strength bar.
func Color(score int) string {
	return colors[clampScore(score)]
}

func Levels() []Level {
	levels := make([]Level, 0, MaxScore+1)
	for score := 0; score <= MaxScore; score++ {
		levels = append(levels, Level{
			Score: score,
			Label: labels[score],
			Color: colors[score],
		})
	}
	return levels
}

func clampScore(score int) int {
	return max(0, min(score, MaxScore))
}
