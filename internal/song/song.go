// Package song generates the lyrics of the "99 Bottles of Beer" song.
//
// The song is a fixed, computable sequence: 99 verses counting down from
// FirstVerse, each three lines (two lyric lines and a blank separator),
// followed by a two-line closing couplet.
package song

import "fmt"

// FirstVerse is the bottle count the song starts from.
const FirstVerse = 99

// TotalLines is the number of lines in the complete song:
// three per verse plus the closing couplet.
const TotalLines = FirstVerse*3 + 2

// Verse returns the lines of verse n: the bottle count line, the
// "take one down" line, and the blank separator that follows every verse.
// n must be between 1 and FirstVerse inclusive.
func Verse(n int) []string {
	first := fmt.Sprintf("%d bottle%s of beer on the wall, %d bottle%s of beer.",
		n, plural(n), n, plural(n))

	var second string
	if n-1 > 0 {
		second = fmt.Sprintf("Take one down and pass it around, %d bottle%s of beer on the wall.",
			n-1, plural(n-1))
	} else {
		second = "Take one down and pass it around, no more bottles of beer on the wall."
	}

	return []string{first, second, ""}
}

// Closing returns the two lines that end the song after the last verse.
func Closing() []string {
	return []string{
		"No more bottles of beer on the wall, no more bottles of beer.",
		fmt.Sprintf("Go to the store and buy some more, %d bottles of beer on the wall.", FirstVerse),
	}
}

// Lyrics returns every line of the song in order, one string per line,
// without trailing newlines.
func Lyrics() []string {
	lines := make([]string, 0, TotalLines)
	for n := FirstVerse; n > 0; n-- {
		lines = append(lines, Verse(n)...)
	}
	return append(lines, Closing()...)
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
