package timer

import "fmt"

const (
	LiftoffLine = "Blast off! 🚀"
	AbortLine   = "Launch aborted!"
)

func CountdownLine(count int) string {
	return fmt.Sprintf("Blast off in %d...", count)
}

func CountUpLine(count int) string {
	return fmt.Sprintf("The count is now %d...", count)
}
