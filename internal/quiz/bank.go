package quiz

// Difficulty grades a question.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	}
	return "unknown"
}

// Bonus is the score awarded for a correct answer at this difficulty.
func (d Difficulty) Bonus() int {
	switch d {
	case Easy:
		return 100
	case Medium:
		return 300
	case Hard:
		return 500
	}
	return 0
}

// DifficultyFor picks the question difficulty for the current score.
func DifficultyFor(score int) Difficulty {
	switch {
	case score < 3000:
		return Easy
	case score < 12000:
		return Medium
	default:
		return Hard
	}
}

// Question is one multiple-choice or true/false prompt.
type Question struct {
	ID         string
	Text       string
	Options    []string
	Answer     int // index into Options
	Difficulty Difficulty
}

var trueFalse = []string{"True", "False"}

// DefaultBank is the built-in question set.
var DefaultBank = []Question{
	{ID: "e01", Difficulty: Easy, Text: "Which planet is known as the Red Planet?",
		Options: []string{"Mars", "Venus", "Jupiter", "Mercury"}, Answer: 0},
	{ID: "e02", Difficulty: Easy, Text: "The Sun is a star.",
		Options: trueFalse, Answer: 0},
	{ID: "e03", Difficulty: Easy, Text: "How many planets orbit the Sun?",
		Options: []string{"7", "8", "9", "10"}, Answer: 1},
	{ID: "e04", Difficulty: Easy, Text: "What is the name of Earth's natural satellite?",
		Options: []string{"Phobos", "Titan", "The Moon", "Europa"}, Answer: 2},
	{ID: "e05", Difficulty: Easy, Text: "Saturn is the largest planet in the Solar System.",
		Options: trueFalse, Answer: 1},
	{ID: "e06", Difficulty: Easy, Text: "Which gas do plants absorb from the air?",
		Options: []string{"Oxygen", "Nitrogen", "Helium", "Carbon dioxide"}, Answer: 3},

	{ID: "m01", Difficulty: Medium, Text: "Who was the first person to walk on the Moon?",
		Options: []string{"Buzz Aldrin", "Neil Armstrong", "Yuri Gagarin", "John Glenn"}, Answer: 1},
	{ID: "m02", Difficulty: Medium, Text: "Light from the Sun reaches Earth in about eight minutes.",
		Options: trueFalse, Answer: 0},
	{ID: "m03", Difficulty: Medium, Text: "Which planet has the shortest year?",
		Options: []string{"Venus", "Mars", "Mercury", "Earth"}, Answer: 2},
	{ID: "m04", Difficulty: Medium, Text: "What is the chemical symbol for iron?",
		Options: []string{"Ir", "Fe", "In", "I"}, Answer: 1},
	{ID: "m05", Difficulty: Medium, Text: "Sound travels faster in a vacuum than in air.",
		Options: trueFalse, Answer: 1},
	{ID: "m06", Difficulty: Medium, Text: "Which galaxy contains the Solar System?",
		Options: []string{"Andromeda", "Triangulum", "Milky Way", "Sombrero"}, Answer: 2},

	{ID: "h01", Difficulty: Hard, Text: "Which moon has a thick nitrogen atmosphere?",
		Options: []string{"Ganymede", "Titan", "Callisto", "Io"}, Answer: 1},
	{ID: "h02", Difficulty: Hard, Text: "A neutron star can spin hundreds of times per second.",
		Options: trueFalse, Answer: 0},
	{ID: "h03", Difficulty: Hard, Text: "What is the approximate escape velocity of Earth?",
		Options: []string{"7.9 km/s", "11.2 km/s", "16.7 km/s", "3.1 km/s"}, Answer: 1},
	{ID: "h04", Difficulty: Hard, Text: "Which element makes up most of the Sun's mass?",
		Options: []string{"Helium", "Oxygen", "Carbon", "Hydrogen"}, Answer: 3},
	{ID: "h05", Difficulty: Hard, Text: "Venus rotates in the same direction as most planets.",
		Options: trueFalse, Answer: 1},
}
