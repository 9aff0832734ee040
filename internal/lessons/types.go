package lessons

// Document is the fully expanded lesson shown when a generated
// recommendation is opened. Sections is never empty.
type Document struct {
	Introduction string
	Sections     []Section
	Exercises    []Exercise
	Resources    []Resource
	Conclusion   string
}

// Section is one ordered block of lesson content.
type Section struct {
	Title      string
	Body       string
	CodeSample string
	Tips       []string
}

// ExerciseKind identifies the interaction style of an exercise.
type ExerciseKind string

const (
	KindMultipleChoice ExerciseKind = "multiple-choice"
	KindCoding         ExerciseKind = "coding"
	KindReflection     ExerciseKind = "reflection"
)

// DisplayName returns a human-readable label for the exercise kind.
func (k ExerciseKind) DisplayName() string {
	switch k {
	case KindMultipleChoice:
		return "Multiple Choice"
	case KindCoding:
		return "Coding"
	case KindReflection:
		return "Reflection"
	default:
		return string(k)
	}
}

// Exercise is a practice prompt embedded in a lesson.
type Exercise struct {
	Question string
	Answer   string
	Kind     ExerciseKind
	Options  []string
}

// Resource is an external reference attached to a lesson.
type Resource struct {
	Title        string
	URL          string
	ResourceType string
}
