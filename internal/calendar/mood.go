package calendar

// Mood is one of the feelings a child can record for a day.
type Mood string

const (
	MoodAngry     Mood = "angry"
	MoodDisgusted Mood = "disgusted"
	MoodSad       Mood = "sad"
	MoodFearful   Mood = "fearful"
	MoodHappy     Mood = "happy"
)

// Moods lists every mood in display order.
var Moods = []Mood{MoodAngry, MoodDisgusted, MoodSad, MoodFearful, MoodHappy}

// Valid reports whether m is a known mood.
func (m Mood) Valid() bool {
	switch m {
	case MoodAngry, MoodDisgusted, MoodSad, MoodFearful, MoodHappy:
		return true
	}
	return false
}

// Emoji returns the face shown on the calendar for this mood.
func (m Mood) Emoji() string {
	switch m {
	case MoodAngry:
		return "😡"
	case MoodDisgusted:
		return "🤢"
	case MoodSad:
		return "😢"
	case MoodFearful:
		return "😨"
	case MoodHappy:
		return "😄"
	}
	return ""
}

// Label returns the display name shown under the mood picker.
func (m Mood) Label() string {
	switch m {
	case MoodAngry:
		return "Angry"
	case MoodDisgusted:
		return "Disgusted"
	case MoodSad:
		return "Sad"
	case MoodFearful:
		return "Fearful"
	case MoodHappy:
		return "Happy"
	}
	return string(m)
}
