package git

import (
	"fmt"
	"math/rand"
)

// TimestampLayout formats the time stamped into every appended line
const TimestampLayout = "2006-01-02 15:04:05"

// CommitMessages is the catalog commit messages are drawn from
var CommitMessages = []string{
	"Daily growth check-in",
	"Another day, another commit",
	"Keeping the streak alive",
	"Daily contribution",
	"Consistency is key",
	"Making progress",
	"Daily update",
	"Adding some color to the graph",
	"Level up: daily commit",
	"Coding rhythm continues",
	"Building momentum",
	"Step by step progress",
	"Daily coding practice",
	"Commit streak continues",
	"Another milestone reached",
	"Learning and growing",
	"Daily development check-in",
	"Small steps every day",
	"Progress over perfection",
	"Daily coding journey",
}

// ContentTemplates is the catalog the appended line is drawn from. Each
// template takes the timestamp as its only verb.
var ContentTemplates = []string{
	"Today's progress: %s",
	"Daily update at %s",
	"Commit streak: %s",
	"Another day of consistency: %s",
	"Daily check-in: %s",
	"Progress update: %s",
	"Streak continues: %s",
	"Daily contribution: %s",
	"Another milestone: %s",
	"Keeping the momentum: %s",
}

// Chooser picks uniformly among n alternatives
type Chooser interface {
	// Choose returns an index in [0, n). n is always positive.
	Choose(n int) int
}

// ChooserFunc adapts a function to the Chooser interface
type ChooserFunc func(n int) int

// Choose implements Chooser
func (f ChooserFunc) Choose(n int) int {
	return f(n)
}

// RandomChooser returns a Chooser backed by the global math/rand/v2 source
func RandomChooser() Chooser {
	return ChooserFunc(rand.Intn)
}

// ChooseBetween returns a value in [lo, hi] using c. It returns lo when
// hi is not greater than lo.
func ChooseBetween(c Chooser, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + c.Choose(hi-lo+1)
}

// RenderContent fills a content template with the formatted timestamp
func RenderContent(template, timestamp string) string {
	return fmt.Sprintf(template, timestamp)
}
